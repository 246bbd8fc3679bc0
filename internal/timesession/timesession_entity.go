package timesession

import (
	"time"

	"github.com/google/uuid"
)

const (
	SourceManual = "manual"
	SourceWeb    = "web"
	SourceMobile = "mobile"
	SourceAgent  = "agent"
	SourceKiosk  = "kiosk"
)

type Session struct {
	ID           uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	OrgID        uuid.UUID  `gorm:"column:org_id;type:uuid;not null"`
	MemberID     uuid.UUID  `gorm:"column:member_id;type:uuid;not null"`
	SessionDate  time.Time  `gorm:"column:session_date;type:date;not null"`
	StartTime    time.Time  `gorm:"column:start_time;type:timestamptz;not null"`
	EndTime      *time.Time `gorm:"column:end_time;type:timestamptz"`
	TotalMinutes *int       `gorm:"column:total_minutes"`
	Source       string     `gorm:"column:source;type:varchar(30);not null;default:manual"`
	CreatedAt    time.Time  `gorm:"column:created_at"`
	UpdatedAt    time.Time  `gorm:"column:updated_at"`
	Breaks       []Break    `gorm:"foreignKey:TimeSessionID;references:ID"`
}

func (Session) TableName() string {
	return "time_sessions"
}

func (s Session) IsOpen() bool {
	return s.EndTime == nil
}

type Break struct {
	ID            uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	TimeSessionID uuid.UUID  `gorm:"column:time_session_id;type:uuid;not null"`
	BreakRuleID   *uuid.UUID `gorm:"column:break_rule_id;type:uuid"`
	Label         *string    `gorm:"column:label;type:varchar(120)"`
	StartTime     time.Time  `gorm:"column:start_time;type:timestamptz;not null"`
	EndTime       *time.Time `gorm:"column:end_time;type:timestamptz"`
	TotalMinutes  *int       `gorm:"column:total_minutes"`
	IsPaid        bool       `gorm:"column:is_paid;not null;default:false"`
	CreatedAt     time.Time  `gorm:"column:created_at"`
	UpdatedAt     time.Time  `gorm:"column:updated_at"`
}

func (Break) TableName() string {
	return "break_sessions"
}

func (b Break) IsOpen() bool {
	return b.EndTime == nil
}

// ElapsedMinutes is whole wall-clock minutes between from and to, never negative.
func ElapsedMinutes(from, to time.Time) int {
	if !to.After(from) {
		return 0
	}
	return int(to.Sub(from) / time.Minute)
}
