package service

import (
	"memorial-park-svc/internal/listview"
	"memorial-park-svc/internal/repository"
	"memorial-park-svc/pkg/logger"
)

// ListPages are the list pages whose page size is remembered
var ListPages = []string{"accounts", "deceased", "lots", "activity", "reports", "payments"}

// PreferenceService remembers the page size each actor picked per list page
type PreferenceService interface {
	PageSize(actor, page string) int
	SetPageSize(actor, page string, size int) error
}

type preferenceService struct {
	repo   repository.ListPreferenceRepository
	logger *logger.Logger
}

// NewPreferenceService creates a new list preference service
func NewPreferenceService(repo repository.ListPreferenceRepository, logger *logger.Logger) PreferenceService {
	return &preferenceService{repo: repo, logger: logger}
}

// PageSize returns the stored size, or the default when none is stored or it is no longer allowed
func (s *preferenceService) PageSize(actor, page string) int {
	if actor == "" {
		return listview.DefaultPageSize
	}
	pref, err := s.repo.Get(actor, page)
	if err != nil {
		s.logger.WithError(err).WithFields(map[string]interface{}{
			"actor": actor,
			"page":  page,
		}).Warn("Failed to load list preference")
		return listview.DefaultPageSize
	}
	if pref == nil {
		return listview.DefaultPageSize
	}
	return listview.NormalizePageSize(pref.PageSize)
}

func (s *preferenceService) SetPageSize(actor, page string, size int) error {
	if !listview.ValidPageSize(size) {
		return ErrInvalidPageSize
	}
	if actor == "" {
		return nil
	}
	if err := s.repo.Upsert(actor, page, size); err != nil {
		s.logger.WithError(err).WithField("page", page).Error("Failed to save list preference")
		return err
	}
	return nil
}
