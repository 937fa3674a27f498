package models

// UserEventRegistered is the type of events published after a registration.
const UserEventRegistered = "user_registered"

// UserEvent is published to Kafka when a user account changes.
type UserEvent struct {
	EventID   string `json:"event_id"`
	Type      string `json:"type"`
	UserID    int64  `json:"user_id"`
	Username  string `json:"username"`
	Timestamp int64  `json:"timestamp"`
}
