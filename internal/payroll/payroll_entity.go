package payroll

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	StatusDraft      = "draft"
	StatusProcessing = "processing"
	StatusGenerated  = "generated"
	StatusApproved   = "approved"
	StatusLocked     = "locked"
)

const (
	ScopeAll  = "all"
	ScopeTeam = "team"
)

type Period struct {
	ID                  uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	OrgID               uuid.UUID  `gorm:"column:org_id;type:uuid;not null"`
	Code                string     `gorm:"column:code;type:varchar(30);not null"`
	PeriodStart         time.Time  `gorm:"column:period_start;type:date;not null"`
	PeriodEnd           time.Time  `gorm:"column:period_end;type:date;not null"`
	Status              string     `gorm:"column:status;type:varchar(20);not null;default:draft"`
	CreatedBy           uuid.UUID  `gorm:"column:created_by;type:uuid;not null"`
	ProcessingStartedAt *time.Time `gorm:"column:processing_started_at"`
	GeneratedAt         *time.Time `gorm:"column:generated_at"`
	ApprovedAt          *time.Time `gorm:"column:approved_at"`
	LockedAt            *time.Time `gorm:"column:locked_at"`
	LockedBy            *uuid.UUID `gorm:"column:locked_by;type:uuid"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (Period) TableName() string {
	return "payroll_periods"
}

// leaseHeld reports whether a generation started at ProcessingStartedAt is
// still within ttl at now.
func (p Period) leaseHeld(now time.Time, ttl time.Duration) bool {
	return p.Status == StatusProcessing &&
		p.ProcessingStartedAt != nil &&
		now.Before(p.ProcessingStartedAt.Add(ttl))
}

// Line is one member's computed pay for a period. Lines are replaced
// wholesale on every generation.
type Line struct {
	ID               uuid.UUID       `gorm:"column:id;type:uuid;primaryKey"`
	PayrollPeriodID  uuid.UUID       `gorm:"column:payroll_period_id;type:uuid;not null"`
	OrgID            uuid.UUID       `gorm:"column:org_id;type:uuid;not null"`
	MemberID         uuid.UUID       `gorm:"column:member_id;type:uuid;not null"`
	Member           *LineMember     `gorm:"foreignKey:MemberID;references:ID"`
	Currency         string          `gorm:"column:currency;type:char(3);not null"`
	BaseSalary       decimal.Decimal `gorm:"column:base_salary;type:numeric(20,2)"`
	WorkedMinutes    int             `gorm:"column:worked_minutes"`
	ScheduledMinutes int             `gorm:"column:scheduled_minutes"`
	ExtraMinutes     int             `gorm:"column:extra_minutes"`
	ShortMinutes     int             `gorm:"column:short_minutes"`
	RateBasisMinutes int             `gorm:"column:rate_basis_minutes"`
	OvertimeAmount   decimal.Decimal `gorm:"column:overtime_amount;type:numeric(20,2)"`
	ShortDeduction   decimal.Decimal `gorm:"column:short_deduction;type:numeric(20,2)"`
	FinesTotal       decimal.Decimal `gorm:"column:fines_total;type:numeric(20,2)"`
	AdjustmentsTotal decimal.Decimal `gorm:"column:adjustments_total;type:numeric(20,2)"`
	NetSalary        decimal.Decimal `gorm:"column:net_salary;type:numeric(20,2)"`
	NegativeNet      bool            `gorm:"column:negative_net"`
	Approved         bool            `gorm:"column:approved"`
	ApprovedBy       *uuid.UUID      `gorm:"column:approved_by;type:uuid"`
	ApprovedAt       *time.Time      `gorm:"column:approved_at"`
	CreatedAt        time.Time       `gorm:"column:created_at"`
}

func (Line) TableName() string {
	return "member_payroll_lines"
}

type LineMember struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName string    `gorm:"column:full_name"`
}

func (LineMember) TableName() string {
	return "members"
}
