package service

import (
	"context"

	"memorial-park-svc/internal/apiclient"
	"memorial-park-svc/internal/listview"
	"memorial-park-svc/internal/models"
	"memorial-park-svc/internal/session"
	"memorial-park-svc/pkg/logger"
)

// LotRow is a lot as listed on the lot search page
type LotRow struct {
	models.Lot
	Label           string `json:"label"`
	DisplayCategory string `json:"display_category"`
	VaultSummary    string `json:"vault_summary"`
	VaultLocked     bool   `json:"vault_locked"`
}

// NewLotRow derives the display fields of a lot
func NewLotRow(l models.Lot) LotRow {
	return LotRow{
		Lot:             l,
		Label:           l.Label(),
		DisplayCategory: l.Status.DisplayCategory(),
		VaultSummary:    l.Vault.Summary(),
		VaultLocked:     l.VaultLocked(),
	}
}

// LotColumns is how the lot search page searches and sorts
var LotColumns = listview.Columns[LotRow]{
	Search: func(l LotRow) []string {
		return []string{l.Label, l.Garden, l.Sector, l.BlockNumber, l.LotNumber, l.LotType, string(l.Status), l.DisplayCategory}
	},
	Keys: map[string]func(LotRow) interface{}{
		"garden": func(l LotRow) interface{} { return listview.Text(l.Garden) },
		"sector": func(l LotRow) interface{} { return listview.Text(l.Sector) },
		"block":  func(l LotRow) interface{} { return listview.Text(l.BlockNumber) },
		"lot":    func(l LotRow) interface{} { return listview.Text(l.LotNumber) },
		"type":   func(l LotRow) interface{} { return listview.Text(l.LotType) },
		"status": func(l LotRow) interface{} { return listview.Text(l.DisplayCategory) },
		"price":  func(l LotRow) interface{} { return l.Price },
	},
}

// VaultOption is a selectable vault configuration
type VaultOption struct {
	Config  models.VaultConfig `json:"config"`
	Summary string             `json:"summary"`
	models.VaultLayout
}

// VaultOptions lists the fixed vault layouts
func VaultOptions() []VaultOption {
	configs := []models.VaultConfig{models.VaultSingle, models.VaultSingleBone, models.VaultDouble}
	out := make([]VaultOption, 0, len(configs))
	for _, c := range configs {
		layout, _ := c.Layout()
		out = append(out, VaultOption{Config: c, Summary: c.Summary(), VaultLayout: layout})
	}
	return out
}

// LotService serves lot inventory and ownerships
type LotService interface {
	Search(ctx context.Context, sess session.Session, filter models.LotFilter, state listview.State) (listview.Result[LotRow], error)
	Get(ctx context.Context, sess session.Session, id uint) (*LotRow, error)
	UpdateVault(ctx context.Context, sess session.Session, id uint, vault models.VaultConfig) (*LotRow, error)
	Ownerships(ctx context.Context, sess session.Session, customerID *uint) ([]models.Ownership, error)
}

type lotService struct {
	client *apiclient.Client
	logger *logger.Logger
}

// NewLotService creates a new lot service
func NewLotService(client *apiclient.Client, logger *logger.Logger) LotService {
	return &lotService{
		client: client,
		logger: logger,
	}
}

func (s *lotService) Search(ctx context.Context, sess session.Session, filter models.LotFilter, state listview.State) (listview.Result[LotRow], error) {
	lots, err := s.client.ListLots(ctx, sess, filter)
	if err != nil {
		s.logger.WithError(err).WithField("filter", filter).Error("Failed to search lots")
		return listview.Result[LotRow]{}, err
	}

	rows := make([]LotRow, 0, len(lots))
	for _, l := range lots {
		rows = append(rows, NewLotRow(l))
	}
	return listview.Apply(rows, state, LotColumns), nil
}

func (s *lotService) Get(ctx context.Context, sess session.Session, id uint) (*LotRow, error) {
	lot, err := s.client.GetLot(ctx, sess, id)
	if err != nil {
		if apiclient.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	row := NewLotRow(*lot)
	return &row, nil
}

// UpdateVault changes the vault configuration unless an interment exists
func (s *lotService) UpdateVault(ctx context.Context, sess session.Session, id uint, vault models.VaultConfig) (*LotRow, error) {
	if _, ok := vault.Layout(); !ok {
		return nil, ErrUnknownVault
	}

	current, err := s.Get(ctx, sess, id)
	if err != nil {
		return nil, err
	}
	if current.VaultLocked {
		s.logger.WithFields(map[string]interface{}{
			"lot_id":         id,
			"interred_count": current.InterredCount,
		}).Warn("Vault change rejected, lot has interments")
		return nil, ErrVaultLocked
	}

	lot, err := s.client.UpdateLotVault(ctx, sess, id, vault)
	if err != nil {
		s.logger.WithError(err).WithField("lot_id", id).Error("Failed to update vault")
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"lot_id": id,
		"vault":  vault,
		"actor":  sess.Actor,
	}).Info("Vault configuration updated")
	row := NewLotRow(*lot)
	return &row, nil
}

// Ownerships lists ownerships with their vault summary filled in. The
// customer_id filter is staff-only; customer sessions are scoped to their
// own lots by the remote API through their token.
func (s *lotService) Ownerships(ctx context.Context, sess session.Session, customerID *uint) ([]models.Ownership, error) {
	if !sess.IsStaff() {
		customerID = nil
	}
	owns, err := s.client.ListOwnerships(ctx, sess, customerID)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list ownerships")
		return nil, err
	}
	for i := range owns {
		if owns[i].VaultSummary == "" {
			owns[i].VaultSummary = owns[i].Vault.Summary()
		}
	}
	return owns, nil
}
