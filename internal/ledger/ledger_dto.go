package ledger

type CreateEntryRequest struct {
	MemberID string `json:"member_id" binding:"required,uuid"`
	Date     string `json:"date" binding:"required"`
	Reason   string `json:"reason" binding:"required,max=500"`
	Amount   string `json:"amount" binding:"required"`
	Currency string `json:"currency" binding:"required,len=3"`
}

type ListEntriesQuery struct {
	MemberID string `form:"member_id" binding:"omitempty,uuid"`
	From     string `form:"from" binding:"required"`
	To       string `form:"to" binding:"required"`
}

type EntryResponse struct {
	ID        string `json:"id"`
	MemberID  string `json:"member_id"`
	Kind      string `json:"kind"`
	Date      string `json:"date"`
	Reason    string `json:"reason"`
	Amount    string `json:"amount"`
	Currency  string `json:"currency"`
	CreatedBy string `json:"created_by"`
	CreatedAt string `json:"created_at"`
}
