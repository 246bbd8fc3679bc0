package dailysummary

type DailySummaryQuery struct {
	Date     string `form:"date"`
	MemberID string `form:"member_id" binding:"omitempty,uuid"`
}

type SummaryResponse struct {
	OrgID            string `json:"org_id"`
	MemberID         string `json:"member_id"`
	Date             string `json:"date"`
	WorkedMinutes    int    `json:"worked_minutes"`
	ExtraMinutes     int    `json:"extra_minutes"`
	ShortMinutes     int    `json:"short_minutes"`
	ScheduledMinutes int    `json:"scheduled_minutes"`
	Status           string `json:"status"`
}

type ApplyRequest struct {
	MemberID string `json:"member_id" binding:"required,uuid"`
	Date     string `json:"date" binding:"required"`
}

// NightlyReport summarizes one RunNightly pass.
type NightlyReport struct {
	Orgs    int      `json:"orgs"`
	Applied int      `json:"applied"`
	Failed  int      `json:"failed"`
	Skipped []string `json:"skipped,omitempty"`
}
