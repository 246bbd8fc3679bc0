package payroll

type CreatePeriodRequest struct {
	PeriodStart string `json:"period_start" binding:"required"`
	PeriodEnd   string `json:"period_end" binding:"required"`
}

type ApproveRequest struct {
	Scope string `json:"scope" binding:"required,oneof=all team"`
}

type ListLinesQuery struct {
	MemberID string `form:"member_id" binding:"omitempty,uuid"`
}

type ExportQuery struct {
	Format string `form:"format"`
}

type PeriodResponse struct {
	ID          string  `json:"id"`
	OrgID       string  `json:"org_id"`
	Code        string  `json:"code"`
	PeriodStart string  `json:"period_start"`
	PeriodEnd   string  `json:"period_end"`
	Status      string  `json:"status"`
	CreatedBy   string  `json:"created_by"`
	GeneratedAt *string `json:"generated_at,omitempty"`
	ApprovedAt  *string `json:"approved_at,omitempty"`
	LockedAt    *string `json:"locked_at,omitempty"`
	LockedBy    *string `json:"locked_by,omitempty"`
}

type LineResponse struct {
	ID               string  `json:"id"`
	PayrollPeriodID  string  `json:"payroll_period_id"`
	MemberID         string  `json:"member_id"`
	MemberName       string  `json:"member_name,omitempty"`
	Currency         string  `json:"currency"`
	BaseSalary       string  `json:"base_salary"`
	WorkedMinutes    int     `json:"worked_minutes"`
	ScheduledMinutes int     `json:"scheduled_minutes"`
	ExtraMinutes     int     `json:"extra_minutes"`
	ShortMinutes     int     `json:"short_minutes"`
	RateBasisMinutes int     `json:"rate_basis_minutes"`
	OvertimeAmount   string  `json:"overtime_amount"`
	ShortDeduction   string  `json:"short_deduction"`
	FinesTotal       string  `json:"fines_total"`
	AdjustmentsTotal string  `json:"adjustments_total"`
	NetSalary        string  `json:"net_salary"`
	NegativeNet      bool    `json:"negative_net"`
	Approved         bool    `json:"approved"`
	ApprovedBy       *string `json:"approved_by,omitempty"`
}

type ApproveResponse struct {
	Period   PeriodResponse `json:"period"`
	Scope    string         `json:"scope"`
	Approved int64          `json:"approved"`
	Pending  int64          `json:"pending"`
}
