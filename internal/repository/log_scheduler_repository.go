package repository

import (
	"memorial-park-svc/internal/models"

	"gorm.io/gorm"
)

// SchedulerLogRepository defines the interface for scheduler log data operations
type SchedulerLogRepository interface {
	Create(log *models.SchedulerLog) error
	ListByJob(jobCode string, limit int) ([]models.SchedulerLog, error)
}

// schedulerLogRepository implements SchedulerLogRepository
type schedulerLogRepository struct {
	db *gorm.DB
}

// NewSchedulerLogRepository creates a new instance of SchedulerLogRepository
func NewSchedulerLogRepository(db *gorm.DB) SchedulerLogRepository {
	return &schedulerLogRepository{
		db: db,
	}
}

// Create creates a new scheduler log record
func (r *schedulerLogRepository) Create(log *models.SchedulerLog) error {
	return r.db.Create(log).Error
}

// ListByJob returns the newest log rows of a job
func (r *schedulerLogRepository) ListByJob(jobCode string, limit int) ([]models.SchedulerLog, error) {
	var logs []models.SchedulerLog
	query := r.db.Order("id desc")
	if jobCode != "" {
		query = query.Where("job_code = ?", jobCode)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}
