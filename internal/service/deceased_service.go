package service

import (
	"context"

	"memorial-park-svc/internal/apiclient"
	"memorial-park-svc/internal/listview"
	"memorial-park-svc/internal/models"
	"memorial-park-svc/internal/session"
	"memorial-park-svc/internal/validation"
	"memorial-park-svc/pkg/logger"
)

// DeceasedView is a deceased record with its name split for editing
type DeceasedView struct {
	models.DeceasedRecord
	FirstName  string `json:"first_name"`
	MiddleName string `json:"middle_name,omitempty"`
	LastName   string `json:"last_name"`
}

// NewDeceasedView splits the stored full name
func NewDeceasedView(r models.DeceasedRecord) DeceasedView {
	first, middle, last := models.SplitName(r.FullName)
	return DeceasedView{DeceasedRecord: r, FirstName: first, MiddleName: middle, LastName: last}
}

// DeceasedColumns is how the deceased records page searches and sorts
var DeceasedColumns = listview.Columns[DeceasedView]{
	Search: func(d DeceasedView) []string {
		return []string{
			d.FullName, d.FirstName, d.MiddleName, d.LastName, d.LotLabel,
			d.CauseOfDeath, d.FuneralHome, d.Notes,
			listview.FormatDate(d.DateOfBirth), listview.FormatDate(d.DateOfDeath), listview.FormatDate(d.BurialDate),
		}
	},
	Keys: map[string]func(DeceasedView) interface{}{
		"name":          deceasedNameKey,
		"date_of_birth": func(d DeceasedView) interface{} { return listview.Date(d.DateOfBirth) },
		"date_of_death": func(d DeceasedView) interface{} { return listview.Date(d.DateOfDeath) },
		"burial_date":   func(d DeceasedView) interface{} { return listview.Date(d.BurialDate) },
		"lot":           func(d DeceasedView) interface{} { return listview.Text(d.LotLabel) },
	},
}

// deceasedNameKey sorts by last name, then first and middle
func deceasedNameKey(d DeceasedView) interface{} {
	return listview.Text(d.LastName + " " + d.FirstName + " " + d.MiddleName)
}

// DeceasedService manages interment records
type DeceasedService interface {
	List(ctx context.Context, sess session.Session, state listview.State) (listview.Result[DeceasedView], error)
	Get(ctx context.Context, sess session.Session, id uint) (*DeceasedView, error)
	Create(ctx context.Context, sess session.Session, in models.DeceasedInput) (*DeceasedView, error)
	Update(ctx context.Context, sess session.Session, id uint, in models.DeceasedInput) (*DeceasedView, error)
	Delete(ctx context.Context, sess session.Session, id uint, confirm string) error
}

type deceasedService struct {
	client    *apiclient.Client
	validator *validation.Validator
	logger    *logger.Logger
}

// NewDeceasedService creates a new deceased record service
func NewDeceasedService(client *apiclient.Client, validator *validation.Validator, logger *logger.Logger) DeceasedService {
	return &deceasedService{
		client:    client,
		validator: validator,
		logger:    logger,
	}
}

func (s *deceasedService) List(ctx context.Context, sess session.Session, state listview.State) (listview.Result[DeceasedView], error) {
	records, err := s.client.ListDeceased(ctx, sess)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list deceased records")
		return listview.Result[DeceasedView]{}, err
	}

	views := make([]DeceasedView, 0, len(records))
	for _, r := range records {
		views = append(views, NewDeceasedView(r))
	}
	return listview.Apply(views, state, DeceasedColumns), nil
}

func (s *deceasedService) Get(ctx context.Context, sess session.Session, id uint) (*DeceasedView, error) {
	r, err := s.client.GetDeceased(ctx, sess, id)
	if err != nil {
		if apiclient.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	v := NewDeceasedView(*r)
	return &v, nil
}

func (s *deceasedService) Create(ctx context.Context, sess session.Session, in models.DeceasedInput) (*DeceasedView, error) {
	if err := s.validator.Deceased(in); err != nil {
		return nil, err
	}

	r, err := s.client.CreateDeceased(ctx, sess, in.Record())
	if err != nil {
		s.logger.WithError(err).WithField("lot_id", in.LotID).Error("Failed to create deceased record")
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"deceased_id": r.ID,
		"lot_id":      r.LotID,
		"actor":       sess.Actor,
	}).Info("Deceased record created successfully")
	v := NewDeceasedView(*r)
	return &v, nil
}

func (s *deceasedService) Update(ctx context.Context, sess session.Session, id uint, in models.DeceasedInput) (*DeceasedView, error) {
	if err := s.validator.Deceased(in); err != nil {
		return nil, err
	}

	rec := in.Record()
	rec.ID = id
	r, err := s.client.UpdateDeceased(ctx, sess, id, rec)
	if err != nil {
		if apiclient.IsNotFound(err) {
			return nil, ErrNotFound
		}
		s.logger.WithError(err).WithField("deceased_id", id).Error("Failed to update deceased record")
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"deceased_id": id,
		"actor":       sess.Actor,
	}).Info("Deceased record updated successfully")
	v := NewDeceasedView(*r)
	return &v, nil
}

// Delete removes a record after the caller typed the full name
func (s *deceasedService) Delete(ctx context.Context, sess session.Session, id uint, confirm string) error {
	r, err := s.client.GetDeceased(ctx, sess, id)
	if err != nil {
		if apiclient.IsNotFound(err) {
			return ErrNotFound
		}
		return err
	}
	if !confirmMatches(confirm, r.FullName) {
		return ErrConfirmationMismatch
	}

	if err := s.client.DeleteDeceased(ctx, sess, id); err != nil {
		s.logger.WithError(err).WithField("deceased_id", id).Error("Failed to delete deceased record")
		return err
	}

	s.logger.WithFields(map[string]interface{}{
		"deceased_id": id,
		"actor":       sess.Actor,
	}).Info("Deceased record deleted successfully")
	return nil
}
