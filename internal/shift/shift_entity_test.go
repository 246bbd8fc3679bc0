package shift

import (
	"testing"
	"time"

	"go-workforce/internal/shared/civildate"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestShift_ScheduledMinutes(t *testing.T) {
	tests := []struct {
		name  string
		shift Shift
		want  int
	}{
		{"day shift", Shift{StartTime: "09:00", EndTime: "17:00"}, 480},
		{"break stays paid", Shift{StartTime: "08:00", EndTime: "17:00", BreakMinutes: 60}, 540},
		{"overnight", Shift{StartTime: "22:00", EndTime: "06:00", IsOvernight: true}, 480},
		{"full day overnight", Shift{StartTime: "07:00", EndTime: "07:00", IsOvernight: true}, 1440},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.shift.ScheduledMinutes())
		})
	}
}

func TestShift_Window(t *testing.T) {
	loc, _ := time.LoadLocation("Asia/Jakarta")
	s := Shift{StartTime: "22:00", EndTime: "06:00", IsOvernight: true}

	start, end := s.Window(civildate.New(2026, 3, 2), loc)
	assert.Equal(t, time.Date(2026, 3, 2, 22, 0, 0, 0, loc), start)
	assert.Equal(t, time.Date(2026, 3, 3, 6, 0, 0, 0, loc), end)
}

func TestShift_AnchorDate(t *testing.T) {
	overnight := Shift{StartTime: "22:00", EndTime: "06:00", IsOvernight: true}
	day := Shift{StartTime: "09:00", EndTime: "17:00"}

	afterMidnight := time.Date(2026, 3, 3, 1, 30, 0, 0, time.UTC)
	evening := time.Date(2026, 3, 2, 22, 5, 0, 0, time.UTC)

	assert.Equal(t, civildate.New(2026, 3, 2), overnight.AnchorDate(afterMidnight))
	assert.Equal(t, civildate.New(2026, 3, 2), overnight.AnchorDate(evening))
	assert.Equal(t, civildate.New(2026, 3, 3), day.AnchorDate(afterMidnight))
}

func TestActiveAssignment(t *testing.T) {
	march31 := civildate.New(2026, 3, 31)
	rows := []Assignment{
		{ID: uuid.New(), EffectiveFrom: civildate.New(2026, 1, 1), EffectiveTo: &march31},
		{ID: uuid.New(), EffectiveFrom: civildate.New(2026, 4, 1)},
		{ID: uuid.New(), EffectiveFrom: civildate.New(2026, 3, 15), EffectiveTo: &march31},
	}

	assert.Nil(t, ActiveAssignment(rows, civildate.New(2025, 12, 31)))
	assert.Equal(t, rows[0].ID, ActiveAssignment(rows, civildate.New(2026, 3, 1)).ID)
	// overlapping history resolves to the latest start
	assert.Equal(t, rows[2].ID, ActiveAssignment(rows, civildate.New(2026, 3, 20)).ID)
	assert.Equal(t, rows[1].ID, ActiveAssignment(rows, civildate.New(2026, 9, 1)).ID)
}
