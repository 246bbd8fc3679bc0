package member

type CreateMemberRequest struct {
	FullName            string  `json:"full_name" binding:"required,max=150"`
	Email               string  `json:"email" binding:"required,email"`
	ManagerID           *string `json:"manager_id" binding:"omitempty,uuid"`
	BaseSalary          string  `json:"base_salary" binding:"required"`
	WorkingHoursPerDay  int     `json:"working_hours_per_day" binding:"gte=0,lte=24"`
	WorkingDaysPerMonth int     `json:"working_days_per_month" binding:"gte=0,lte=31"`
	WorkingWeekdays     []int   `json:"working_weekdays" binding:"omitempty,dive,min=1,max=7"`
}

type SetManagerRequest struct {
	ManagerID *string `json:"manager_id" binding:"omitempty,uuid"`
}

type SetStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active inactive"`
}

type MemberResponse struct {
	ID                  string  `json:"id"`
	OrgID               string  `json:"org_id"`
	FullName            string  `json:"full_name"`
	Email               string  `json:"email"`
	Status              string  `json:"status"`
	ManagerID           *string `json:"manager_id,omitempty"`
	BaseSalary          string  `json:"base_salary"`
	WorkingHoursPerDay  int     `json:"working_hours_per_day"`
	WorkingDaysPerMonth int     `json:"working_days_per_month"`
	WorkingWeekdays     string  `json:"working_weekdays"`
}

type TeamResponse struct {
	ManagerID string   `json:"manager_id"`
	MemberIDs []string `json:"member_ids"`
}
