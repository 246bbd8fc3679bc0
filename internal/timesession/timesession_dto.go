package timesession

type StartSessionRequest struct {
	Source string `json:"source" binding:"omitempty,oneof=manual web mobile agent kiosk"`
}

type StartBreakRequest struct {
	SessionID   *string `json:"session_id" binding:"omitempty,uuid"`
	BreakRuleID *string `json:"break_rule_id" binding:"omitempty,uuid"`
	Label       *string `json:"label" binding:"omitempty,max=120"`
	IsPaid      *bool   `json:"is_paid"`
}

type StopBreakRequest struct {
	SessionID *string `json:"session_id" binding:"omitempty,uuid"`
}

type ListSessionsQuery struct {
	MemberID string `form:"member_id" binding:"omitempty,uuid"`
	From     string `form:"from" binding:"required"`
	To       string `form:"to" binding:"required"`
}

type BreakResponse struct {
	ID            string  `json:"id"`
	TimeSessionID string  `json:"time_session_id"`
	BreakRuleID   *string `json:"break_rule_id,omitempty"`
	Label         *string `json:"label,omitempty"`
	StartTime     string  `json:"start_time"`
	EndTime       *string `json:"end_time,omitempty"`
	TotalMinutes  *int    `json:"total_minutes,omitempty"`
	IsPaid        bool    `json:"is_paid"`
	// OverLimitMinutes is set on stop when the break outlasted its rule.
	OverLimitMinutes *int `json:"over_limit_minutes,omitempty"`
}

type SessionResponse struct {
	ID           string          `json:"id"`
	OrgID        string          `json:"org_id"`
	MemberID     string          `json:"member_id"`
	Date         string          `json:"date"`
	StartTime    string          `json:"start_time"`
	EndTime      *string         `json:"end_time,omitempty"`
	TotalMinutes *int            `json:"total_minutes,omitempty"`
	Source       string          `json:"source"`
	Breaks       []BreakResponse `json:"breaks,omitempty"`
}
