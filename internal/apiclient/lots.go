package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"memorial-park-svc/internal/models"
	"memorial-park-svc/internal/session"
)

// ListLots searches the lot inventory
func (c *Client) ListLots(ctx context.Context, sess session.Session, filter models.LotFilter) ([]models.Lot, error) {
	q := url.Values{}
	setIf(q, "garden", filter.Garden)
	setIf(q, "sector", filter.Sector)
	setIf(q, "block", filter.Block)
	setIf(q, "status", filter.Status)

	var out []models.Lot
	if err := c.do(ctx, sess, http.MethodGet, "/lots", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetLot returns one lot
func (c *Client) GetLot(ctx context.Context, sess session.Session, id uint) (*models.Lot, error) {
	var out models.Lot
	if err := c.do(ctx, sess, http.MethodGet, fmt.Sprintf("/lots/%d", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateLotVault changes the vault configuration of a lot
func (c *Client) UpdateLotVault(ctx context.Context, sess session.Session, id uint, vault models.VaultConfig) (*models.Lot, error) {
	var out models.Lot
	body := map[string]interface{}{"vault_config": vault}
	if err := c.do(ctx, sess, http.MethodPut, fmt.Sprintf("/lots/%d/vault", id), nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListOwnerships returns lot ownerships, optionally for one customer
func (c *Client) ListOwnerships(ctx context.Context, sess session.Session, customerID *uint) ([]models.Ownership, error) {
	q := url.Values{}
	if customerID != nil {
		q.Set("customer_id", strconv.FormatUint(uint64(*customerID), 10))
	}

	var out []models.Ownership
	if err := c.do(ctx, sess, http.MethodGet, "/ownerships", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetSectorMap returns a sector image placement and its lot boxes
func (c *Client) GetSectorMap(ctx context.Context, sess session.Session, sectorID uint) (*models.SectorMap, error) {
	var out models.SectorMap
	if err := c.do(ctx, sess, http.MethodGet, fmt.Sprintf("/map/sectors/%d", sectorID), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetRoute returns the walking path waypoints to a lot
func (c *Client) GetRoute(ctx context.Context, sess session.Session, lotID uint) ([]models.GeoPoint, error) {
	q := url.Values{}
	q.Set("lot_id", strconv.FormatUint(uint64(lotID), 10))

	var out []models.GeoPoint
	if err := c.do(ctx, sess, http.MethodGet, "/map/route", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListPointsOfInterest returns the named park markers
func (c *Client) ListPointsOfInterest(ctx context.Context, sess session.Session) ([]models.PointOfInterest, error) {
	var out []models.PointOfInterest
	if err := c.do(ctx, sess, http.MethodGet, "/map/points-of-interest", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func setIf(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}
