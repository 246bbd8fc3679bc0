package events

import "time"

const (
	PayrollApprovedTopic = "wf.payroll.approved.v1"
	PayrollLockedTopic   = "wf.payroll.locked.v1"

	EventPayrollApproved = "payroll.approved"
	EventPayrollLocked   = "payroll.locked"
)

type PayrollApprovedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	PeriodID   string    `json:"period_id"`
	PeriodCode string    `json:"period_code"`
	OrgID      string    `json:"org_id"`
	ApprovedBy string    `json:"approved_by"`
	LineCount  int       `json:"line_count"`
	OccurredAt time.Time `json:"occurred_at"`
}

type PayrollLockedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	PeriodID   string    `json:"period_id"`
	PeriodCode string    `json:"period_code"`
	OrgID      string    `json:"org_id"`
	LockedBy   string    `json:"locked_by"`
	NetTotal   string    `json:"net_total"`
	Currency   string    `json:"currency"`
	OccurredAt time.Time `json:"occurred_at"`
}
