package dailysummary

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusNormal       = "normal"
	StatusExtra        = "extra"
	StatusShort        = "short"
	StatusAbsent       = "absent"
	StatusUnconfigured = "unconfigured"
)

// DailySummary is derived from the clock ledger and shift configuration. It
// is safe to delete and recompute.
type DailySummary struct {
	OrgID            uuid.UUID `gorm:"column:org_id;type:uuid;primaryKey"`
	MemberID         uuid.UUID `gorm:"column:member_id;type:uuid;primaryKey"`
	SummaryDate      time.Time `gorm:"column:summary_date;type:date;primaryKey"`
	WorkedMinutes    int       `gorm:"column:worked_minutes;not null"`
	ExtraMinutes     int       `gorm:"column:extra_minutes;not null"`
	ShortMinutes     int       `gorm:"column:short_minutes;not null"`
	ScheduledMinutes int       `gorm:"column:scheduled_minutes;not null"`
	Status           string    `gorm:"column:status;type:varchar(20);not null"`
	ComputedAt       time.Time `gorm:"column:computed_at"`
}

func (DailySummary) TableName() string {
	return "daily_summaries"
}
