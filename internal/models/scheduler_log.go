package models

import (
	"time"
)

// Scheduler run statuses
const (
	SchedulerStart   = "START"
	SchedulerRunning = "RUNNING"
	SchedulerSuccess = "SUCCESS"
	SchedulerFailed  = "FAILED"
	SchedulerSkipped = "SKIPPED"
)

// SchedulerLog is one status row of a scheduled job run
type SchedulerLog struct {
	ID         uint      `json:"id" gorm:"primarykey"`
	DocumentID string    `json:"document_id" gorm:"column:document_id;size:64;index"`
	JobCode    string    `json:"job_code" gorm:"column:job_code;size:64"`
	Message    string    `json:"message" gorm:"column:message"`
	Status     string    `json:"status" gorm:"column:status;size:16"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName sets the insert table name for SchedulerLog
func (SchedulerLog) TableName() string {
	return "scheduler_logs"
}
