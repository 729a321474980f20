package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"memorial-park-svc/internal/models"
	"memorial-park-svc/internal/session"
)

// Import uploads a spreadsheet for bulk import of the given kind (accounts, deceased)
func (c *Client) Import(ctx context.Context, sess session.Session, kind, filename string, content []byte) (*models.ImportResult, error) {
	var out models.ImportResult
	path := fmt.Sprintf("/imports/%s", url.PathEscape(kind))
	if err := c.doMultipart(ctx, sess, path, "file", filename, content, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ActivityLogs returns the activity log
func (c *Client) ActivityLogs(ctx context.Context, sess session.Session) ([]models.ActivityLogEntry, error) {
	var out []models.ActivityLogEntry
	if err := c.do(ctx, sess, http.MethodGet, "/activity-logs", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Report returns an aggregate report dataset
func (c *Client) Report(ctx context.Context, sess session.Session, kind string, filter models.ReportFilter) (*models.ReportDataset, error) {
	q := url.Values{}
	setIf(q, "from", filter.From)
	setIf(q, "to", filter.To)
	setIf(q, "garden", filter.Garden)
	setIf(q, "section", filter.Section)
	setIf(q, "granularity", filter.Granularity)

	var out models.ReportDataset
	path := fmt.Sprintf("/reports/%s", url.PathEscape(kind))
	if err := c.do(ctx, sess, http.MethodGet, path, q, nil, &out); err != nil {
		return nil, err
	}
	if out.Kind == "" {
		out.Kind = kind
	}
	return &out, nil
}
