package models

import "time"

// PendingCheckout is a hosted checkout whose outcome is still being polled.
// Rows survive restarts so polling can resume.
type PendingCheckout struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	SessionID string    `json:"checkout_session_id" gorm:"column:checkout_session_id;uniqueIndex;size:191"`
	LotID     uint      `json:"lot_id" gorm:"column:lot_id"`
	YearMonth string    `json:"year_month" gorm:"column:year_month;size:7"`
	Actor     string    `json:"actor" gorm:"column:actor;size:191"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName sets the insert table name for PendingCheckout
func (PendingCheckout) TableName() string {
	return "pending_checkouts"
}
