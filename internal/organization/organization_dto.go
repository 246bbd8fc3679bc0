package organization

type CreateHolidayRequest struct {
	Date string `json:"date" binding:"required"`
	Name string `json:"name" binding:"required,max=120"`
}

type ListHolidaysQuery struct {
	From string `form:"from" binding:"required"`
	To   string `form:"to" binding:"required"`
}

type HolidayResponse struct {
	ID    string `json:"id"`
	OrgID string `json:"org_id"`
	Date  string `json:"date"`
	Name  string `json:"name"`
}
