package payroll

import (
	"github.com/shopspring/decimal"
)

// LineInput is everything the line calculation depends on. Fines are
// positive amounts; adjustments carry their sign.
type LineInput struct {
	BaseSalary       decimal.Decimal
	WorkedMinutes    int
	ScheduledMinutes int
	ExtraMinutes     int
	ShortMinutes     int
	RateBasisMinutes int
	Fines            []decimal.Decimal
	Adjustments      []decimal.Decimal
}

type LineAmounts struct {
	OvertimeAmount   decimal.Decimal
	ShortDeduction   decimal.Decimal
	FinesTotal       decimal.Decimal
	AdjustmentsTotal decimal.Decimal
	NetSalary        decimal.Decimal
	// NegativeNet is set instead of clamping net pay at zero.
	NegativeNet bool
}

// GenerateLine computes one payroll line:
//
//	net = base + overtime - shortDeduction - fines + adjustments
//
// where overtime and shortDeduction are base*minutes/basis rounded half
// away from zero to cents. A zero basis yields zero for both.
func GenerateLine(in LineInput) LineAmounts {
	out := LineAmounts{
		OvertimeAmount:   prorate(in.BaseSalary, in.ExtraMinutes, in.RateBasisMinutes),
		ShortDeduction:   prorate(in.BaseSalary, in.ShortMinutes, in.RateBasisMinutes),
		FinesTotal:       sum(in.Fines),
		AdjustmentsTotal: sum(in.Adjustments),
	}
	out.NetSalary = in.BaseSalary.
		Add(out.OvertimeAmount).
		Sub(out.ShortDeduction).
		Sub(out.FinesTotal).
		Add(out.AdjustmentsTotal).
		Round(2)
	out.NegativeNet = out.NetSalary.IsNegative()
	return out
}

func prorate(base decimal.Decimal, minutes, basis int) decimal.Decimal {
	if basis <= 0 || minutes <= 0 {
		return decimal.Zero
	}
	return base.Mul(decimal.NewFromInt(int64(minutes))).
		Div(decimal.NewFromInt(int64(basis))).
		Round(2)
}

func sum(amounts []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total.Round(2)
}

// RateBasisMinutes picks the minutes that one base salary pays for: the
// member's own working pattern, else the org-wide default pattern, else
// the minutes actually scheduled in the period.
func RateBasisMinutes(hoursPerDay, daysPerMonth, defaultHours, defaultDays, periodScheduled int) int {
	if hoursPerDay > 0 && daysPerMonth > 0 {
		return hoursPerDay * 60 * daysPerMonth
	}
	if defaultHours > 0 && defaultDays > 0 {
		return defaultHours * 60 * defaultDays
	}
	if periodScheduled > 0 {
		return periodScheduled
	}
	return 0
}
