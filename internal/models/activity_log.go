package models

import "time"

// ActivityLogEntry is a read-only audit row from the remote API
type ActivityLogEntry struct {
	ID        uint      `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Action    string    `json:"action" example:"Updated account"`
	Type      string    `json:"type" example:"user"`
	Details   string    `json:"details" example:"Changed contact number"`
	User      string    `json:"user" example:"staff01"`
}
