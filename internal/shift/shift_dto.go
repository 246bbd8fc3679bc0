package shift

type ShiftRequest struct {
	Name         string `json:"name" binding:"required,max=120"`
	StartTime    string `json:"start_time" binding:"required,len=5"`
	EndTime      string `json:"end_time" binding:"required,len=5"`
	IsOvernight  bool   `json:"is_overnight"`
	GraceMinutes int    `json:"grace_minutes" binding:"gte=0,lte=240"`
	BreakMinutes int    `json:"break_minutes" binding:"gte=0,lte=480"`
}

type ShiftResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	StartTime        string `json:"start_time"`
	EndTime          string `json:"end_time"`
	IsOvernight      bool   `json:"is_overnight"`
	GraceMinutes     int    `json:"grace_minutes"`
	BreakMinutes     int    `json:"break_minutes"`
	ScheduledMinutes int    `json:"scheduled_minutes"`
}

type AssignShiftRequest struct {
	MemberID      string  `json:"member_id" binding:"required,uuid"`
	ShiftID       string  `json:"shift_id" binding:"required,uuid"`
	EffectiveFrom string  `json:"effective_from" binding:"required"`
	EffectiveTo   *string `json:"effective_to"`
}

type AssignmentResponse struct {
	ID            string  `json:"id"`
	MemberID      string  `json:"member_id"`
	ShiftID       string  `json:"shift_id"`
	EffectiveFrom string  `json:"effective_from"`
	EffectiveTo   *string `json:"effective_to,omitempty"`
}

type BreakRuleRequest struct {
	Name       string `json:"name" binding:"required,max=120"`
	IsPaid     bool   `json:"is_paid"`
	MaxMinutes int    `json:"max_minutes" binding:"gte=0"`
}

type BreakRuleResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	IsPaid     bool   `json:"is_paid"`
	MaxMinutes int    `json:"max_minutes"`
}
