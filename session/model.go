package session

import "time"

// Record is the persisted form of a session.
type Record struct {
	ID        string    `json:"id"`
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"created_at"`
}

// Reason says why a session ended.
type Reason string

const (
	// ReasonUnauthorized: the backend answered 401 to a private request.
	ReasonUnauthorized Reason = "unauthorized"
	// ReasonLogout: the user logged out.
	ReasonLogout Reason = "logout"
)

// Event is delivered to OnInvalidate listeners once per ended session.
type Event struct {
	RecordID string
	Reason   Reason
	At       time.Time
}
