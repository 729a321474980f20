package repository

import (
	"errors"
	"time"

	"memorial-park-svc/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ListPreferenceRepository defines the interface for list preference data operations
type ListPreferenceRepository interface {
	Get(actor, pageType string) (*models.ListPreference, error)
	Upsert(actor, pageType string, pageSize int) error
}

// listPreferenceRepository implements ListPreferenceRepository
type listPreferenceRepository struct {
	db *gorm.DB
}

// NewListPreferenceRepository creates a new instance of ListPreferenceRepository
func NewListPreferenceRepository(db *gorm.DB) ListPreferenceRepository {
	return &listPreferenceRepository{
		db: db,
	}
}

// Get returns nil when the actor never picked a size for the page
func (r *listPreferenceRepository) Get(actor, pageType string) (*models.ListPreference, error) {
	var pref models.ListPreference
	err := r.db.Where("actor = ? AND page_type = ?", actor, pageType).First(&pref).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &pref, nil
}

// Upsert stores the page size for (actor, page type)
func (r *listPreferenceRepository) Upsert(actor, pageType string, pageSize int) error {
	pref := models.ListPreference{
		Actor:     actor,
		PageType:  pageType,
		PageSize:  pageSize,
		UpdatedAt: time.Now(),
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "actor"}, {Name: "page_type"}},
		DoUpdates: clause.AssignmentColumns([]string{"page_size", "updated_at"}),
	}).Create(&pref).Error
}
