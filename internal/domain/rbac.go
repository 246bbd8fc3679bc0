package domain

// EnforceRequest asks whether a member may perform action on resource inside an org.
type EnforceRequest struct {
	MemberID string `json:"member_id" binding:"required"`
	OrgID    string `json:"org_id" binding:"required"`
	Resource string `json:"resource" binding:"required"`
	Action   string `json:"action" binding:"required"`
}
