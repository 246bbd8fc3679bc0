package payroll_test

import (
	"testing"

	"go-workforce/internal/payroll"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestGenerateLine(t *testing.T) {
	tests := []struct {
		name         string
		in           payroll.LineInput
		overtime     string
		short        string
		fines        string
		adjustments  string
		net          string
		wantNegative bool
	}{
		{
			name: "one hour overtime on default basis",
			in: payroll.LineInput{
				BaseSalary:       dec("4000"),
				ExtraMinutes:     60,
				RateBasisMinutes: 10560,
			},
			overtime: "22.73", short: "0.00", fines: "0.00", adjustments: "0.00",
			net: "4022.73",
		},
		{
			name: "short minutes deducted",
			in: payroll.LineInput{
				BaseSalary:       dec("4000"),
				ShortMinutes:     30,
				RateBasisMinutes: 10560,
			},
			overtime: "0.00", short: "11.36", fines: "0.00", adjustments: "0.00",
			net: "3988.64",
		},
		{
			name: "fines and signed adjustments",
			in: payroll.LineInput{
				BaseSalary:       dec("3000"),
				RateBasisMinutes: 9600,
				Fines:            []decimal.Decimal{dec("50"), dec("25.25")},
				Adjustments:      []decimal.Decimal{dec("100"), dec("-25.50")},
			},
			overtime: "0.00", short: "0.00", fines: "75.25", adjustments: "74.50",
			net: "2999.25",
		},
		{
			name: "negative net is kept and flagged",
			in: payroll.LineInput{
				BaseSalary:       dec("1000"),
				RateBasisMinutes: 9600,
				Fines:            []decimal.Decimal{dec("1500")},
			},
			overtime: "0.00", short: "0.00", fines: "1500.00", adjustments: "0.00",
			net: "-500.00", wantNegative: true,
		},
		{
			name: "zero basis yields no proration",
			in: payroll.LineInput{
				BaseSalary:   dec("2500"),
				ExtraMinutes: 120,
				ShortMinutes: 45,
			},
			overtime: "0.00", short: "0.00", fines: "0.00", adjustments: "0.00",
			net: "2500.00",
		},
		{
			name: "half cent rounds away from zero",
			in: payroll.LineInput{
				BaseSalary:       dec("1"),
				ExtraMinutes:     1,
				RateBasisMinutes: 8,
			},
			overtime: "0.13", short: "0.00", fines: "0.00", adjustments: "0.00",
			net: "1.13",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := payroll.GenerateLine(tt.in)
			assert.Equal(t, tt.overtime, got.OvertimeAmount.StringFixed(2))
			assert.Equal(t, tt.short, got.ShortDeduction.StringFixed(2))
			assert.Equal(t, tt.fines, got.FinesTotal.StringFixed(2))
			assert.Equal(t, tt.adjustments, got.AdjustmentsTotal.StringFixed(2))
			assert.Equal(t, tt.net, got.NetSalary.StringFixed(2))
			assert.Equal(t, tt.wantNegative, got.NegativeNet)
		})
	}
}

func TestRateBasisMinutes(t *testing.T) {
	assert.Equal(t, 7*60*20, payroll.RateBasisMinutes(7, 20, 8, 22, 4800))
	assert.Equal(t, 10560, payroll.RateBasisMinutes(0, 20, 8, 22, 4800))
	assert.Equal(t, 4800, payroll.RateBasisMinutes(0, 0, 0, 22, 4800))
	assert.Equal(t, 0, payroll.RateBasisMinutes(0, 0, 0, 0, 0))
}
