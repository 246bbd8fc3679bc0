package events

import "time"

const (
	TimeSessionClosedTopic = "wf.time.session_closed.v1"
	TimeDailyClosedTopic   = "wf.time.daily_closed.v1"

	EventTimeSessionClosed = "time.session_closed"
	EventTimeDailyClosed   = "time.daily_closed"
)

// SessionClosedEvent is emitted when a work session is stopped. Consumers use
// it to recompute the member's daily summary for Date.
type SessionClosedEvent struct {
	EventType    string    `json:"event_type"`
	RequestID    string    `json:"request_id,omitempty"`
	SessionID    string    `json:"session_id"`
	OrgID        string    `json:"org_id"`
	MemberID     string    `json:"member_id"`
	Date         string    `json:"date"`
	TotalMinutes int       `json:"total_minutes"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// DailyClosedEvent is emitted once per org after the nightly batch finalizes a day.
type DailyClosedEvent struct {
	EventType  string    `json:"event_type"`
	OrgID      string    `json:"org_id"`
	Date       string    `json:"date"`
	Applied    int       `json:"applied"`
	Failed     int       `json:"failed"`
	OccurredAt time.Time `json:"occurred_at"`
}
