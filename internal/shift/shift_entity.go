package shift

import (
	"fmt"
	"time"

	"go-workforce/internal/shared/civildate"

	"github.com/google/uuid"
)

const minutesPerDay = 24 * 60

type Shift struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrgID        uuid.UUID `gorm:"type:uuid;not null;index"`
	Name         string    `gorm:"type:varchar(120);not null"`
	StartTime    string    `gorm:"type:char(5);not null"`
	EndTime      string    `gorm:"type:char(5);not null"`
	IsOvernight  bool      `gorm:"not null;default:false"`
	GraceMinutes int       `gorm:"not null;default:0"`
	BreakMinutes int       `gorm:"not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Shift) TableName() string {
	return "shifts"
}

// ParseClock turns "HH:MM" into minutes after midnight.
func ParseClock(v string) (int, error) {
	t, err := time.Parse("15:04", v)
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %w", v, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

func (s Shift) StartMinute() int {
	m, _ := ParseClock(s.StartTime)
	return m
}

func (s Shift) EndMinute() int {
	m, _ := ParseClock(s.EndTime)
	return m
}

// ScheduledMinutes is the full shift length. Shift break minutes are paid and
// stay inside the schedule.
func (s Shift) ScheduledMinutes() int {
	d := s.EndMinute() - s.StartMinute()
	if s.IsOvernight {
		d += minutesPerDay
		if d > minutesPerDay {
			d -= minutesPerDay
		}
	}
	if d < 0 {
		return 0
	}
	return d
}

// Window returns the wall-clock bounds of the shift worked on civil date day.
// Overnight shifts end on the following civil day.
func (s Shift) Window(day time.Time, loc *time.Location) (time.Time, time.Time) {
	start := civildate.At(day, s.StartMinute(), loc)
	return start, start.Add(time.Duration(s.ScheduledMinutes()) * time.Minute)
}

// AnchorDate maps a local clock-in to the civil date the work belongs to. For
// an overnight shift, time before the shift end belongs to the previous day.
func (s Shift) AnchorDate(local time.Time) time.Time {
	day := civildate.Of(local, local.Location())
	if !s.IsOvernight {
		return day
	}
	if local.Hour()*60+local.Minute() < s.EndMinute() {
		return civildate.AddDays(day, -1)
	}
	return day
}

type Assignment struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrgID         uuid.UUID  `gorm:"type:uuid;not null"`
	MemberID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	ShiftID       uuid.UUID  `gorm:"type:uuid;not null"`
	EffectiveFrom time.Time  `gorm:"type:date;not null"`
	EffectiveTo   *time.Time `gorm:"type:date"`
	CreatedAt     time.Time
	Shift         *Shift `gorm:"foreignKey:ShiftID;references:ID"`
}

func (Assignment) TableName() string {
	return "shift_assignments"
}

// Covers reports whether the assignment is in effect on date.
func (a Assignment) Covers(date time.Time) bool {
	if date.Before(a.EffectiveFrom) {
		return false
	}
	return a.EffectiveTo == nil || !date.After(*a.EffectiveTo)
}

// ActiveAssignment picks the assignment in effect on date. When historical
// rows overlap, the one with the latest EffectiveFrom wins.
func ActiveAssignment(rows []Assignment, date time.Time) *Assignment {
	var best *Assignment
	for i := range rows {
		a := &rows[i]
		if !a.Covers(date) {
			continue
		}
		if best == nil || a.EffectiveFrom.After(best.EffectiveFrom) {
			best = a
		}
	}
	return best
}

type BreakRule struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrgID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Name       string    `gorm:"type:varchar(120);not null"`
	IsPaid     bool      `gorm:"not null;default:false"`
	MaxMinutes int       `gorm:"not null;default:0"`
	CreatedAt  time.Time
}

func (BreakRule) TableName() string {
	return "break_rules"
}
