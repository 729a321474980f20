package repository

import (
	"errors"

	"memorial-park-svc/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PendingCheckoutRepository defines the interface for pending checkout data operations
type PendingCheckoutRepository interface {
	Save(pc *models.PendingCheckout) error
	GetBySessionID(sessionID string) (*models.PendingCheckout, error)
	List() ([]models.PendingCheckout, error)
	Delete(sessionID string) error
}

// pendingCheckoutRepository implements PendingCheckoutRepository
type pendingCheckoutRepository struct {
	db *gorm.DB
}

// NewPendingCheckoutRepository creates a new instance of PendingCheckoutRepository
func NewPendingCheckoutRepository(db *gorm.DB) PendingCheckoutRepository {
	return &pendingCheckoutRepository{
		db: db,
	}
}

// Save stores a pending checkout; saving the same session twice keeps the first row
func (r *pendingCheckoutRepository) Save(pc *models.PendingCheckout) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "checkout_session_id"}},
		DoNothing: true,
	}).Create(pc).Error
}

// GetBySessionID returns nil when the session is not pending
func (r *pendingCheckoutRepository) GetBySessionID(sessionID string) (*models.PendingCheckout, error) {
	var pc models.PendingCheckout
	err := r.db.Where("checkout_session_id = ?", sessionID).First(&pc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &pc, nil
}

// List returns every pending checkout, oldest first
func (r *pendingCheckoutRepository) List() ([]models.PendingCheckout, error) {
	var rows []models.PendingCheckout
	if err := r.db.Order("created_at asc, id asc").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Delete removes a pending checkout; deleting an unknown session is not an error
func (r *pendingCheckoutRepository) Delete(sessionID string) error {
	return r.db.Where("checkout_session_id = ?", sessionID).Delete(&models.PendingCheckout{}).Error
}
