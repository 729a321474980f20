package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"memorial-park-svc/internal/models"
	"memorial-park-svc/internal/session"
)

// ListDeceased returns every deceased record
func (c *Client) ListDeceased(ctx context.Context, sess session.Session) ([]models.DeceasedRecord, error) {
	var out []models.DeceasedRecord
	if err := c.do(ctx, sess, http.MethodGet, "/deceased", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetDeceased returns one deceased record
func (c *Client) GetDeceased(ctx context.Context, sess session.Session, id uint) (*models.DeceasedRecord, error) {
	var out models.DeceasedRecord
	if err := c.do(ctx, sess, http.MethodGet, fmt.Sprintf("/deceased/%d", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateDeceased creates a deceased record
func (c *Client) CreateDeceased(ctx context.Context, sess session.Session, rec models.DeceasedRecord) (*models.DeceasedRecord, error) {
	var out models.DeceasedRecord
	if err := c.do(ctx, sess, http.MethodPost, "/deceased", nil, rec, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateDeceased updates a deceased record
func (c *Client) UpdateDeceased(ctx context.Context, sess session.Session, id uint, rec models.DeceasedRecord) (*models.DeceasedRecord, error) {
	var out models.DeceasedRecord
	if err := c.do(ctx, sess, http.MethodPut, fmt.Sprintf("/deceased/%d", id), nil, rec, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteDeceased deletes a deceased record
func (c *Client) DeleteDeceased(ctx context.Context, sess session.Session, id uint) error {
	return c.do(ctx, sess, http.MethodDelete, fmt.Sprintf("/deceased/%d", id), nil, nil, nil)
}
