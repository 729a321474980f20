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

// MonthlyStatus returns the per-lot month arrays, optionally for one customer
func (c *Client) MonthlyStatus(ctx context.Context, sess session.Session, customerID *uint) ([]models.LotMonthlyStatus, error) {
	q := url.Values{}
	if customerID != nil {
		q.Set("customer_id", strconv.FormatUint(uint64(*customerID), 10))
	}

	var out []models.LotMonthlyStatus
	if err := c.do(ctx, sess, http.MethodGet, "/payments/monthly-status", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// LotMonthlyStatus returns the month array of one lot
func (c *Client) LotMonthlyStatus(ctx context.Context, sess session.Session, lotID uint) (*models.LotMonthlyStatus, error) {
	q := url.Values{}
	q.Set("lot_id", strconv.FormatUint(uint64(lotID), 10))

	var out []models.LotMonthlyStatus
	if err := c.do(ctx, sess, http.MethodGet, "/payments/monthly-status", q, nil, &out); err != nil {
		return nil, err
	}
	for i := range out {
		if out[i].LotID == lotID {
			return &out[i], nil
		}
	}
	return &models.LotMonthlyStatus{LotID: lotID}, nil
}

// PaymentPlans returns payment plans, optionally for one lot
func (c *Client) PaymentPlans(ctx context.Context, sess session.Session, lotID *uint) ([]models.PaymentPlan, error) {
	q := url.Values{}
	if lotID != nil {
		q.Set("lot_id", strconv.FormatUint(uint64(*lotID), 10))
	}

	var out []models.PaymentPlan
	if err := c.do(ctx, sess, http.MethodGet, "/payment-plans", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// RecordOfficePayment records a payment taken at the office
func (c *Client) RecordOfficePayment(ctx context.Context, sess session.Session, p models.OfficePayment) (*models.PaymentRecord, error) {
	var out models.PaymentRecord
	if err := c.do(ctx, sess, http.MethodPost, "/payments", nil, p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PaymentHistory lists recorded payments, optionally for one lot
func (c *Client) PaymentHistory(ctx context.Context, sess session.Session, lotID *uint) ([]models.PaymentRecord, error) {
	q := url.Values{}
	if lotID != nil {
		q.Set("lot_id", strconv.FormatUint(uint64(*lotID), 10))
	}

	var out []models.PaymentRecord
	if err := c.do(ctx, sess, http.MethodGet, "/payments/history", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateCheckout opens a hosted checkout session
func (c *Client) CreateCheckout(ctx context.Context, sess session.Session, req models.CheckoutRequest) (*models.CheckoutSession, error) {
	var out models.CheckoutSession
	if err := c.do(ctx, sess, http.MethodPost, "/payments/checkout", nil, req, &out); err != nil {
		return nil, err
	}
	if out.SessionID == "" {
		return nil, fmt.Errorf("checkout session id not found in response")
	}
	return &out, nil
}

// CheckoutStatus asks the remote API whether a checkout completed
func (c *Client) CheckoutStatus(ctx context.Context, sess session.Session, sessionID string) (*models.CheckoutStatus, error) {
	var out models.CheckoutStatus
	path := fmt.Sprintf("/payments/checkout/%s/status", url.PathEscape(sessionID))
	if err := c.do(ctx, sess, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FinalizeCheckout records a completed checkout as a payment
func (c *Client) FinalizeCheckout(ctx context.Context, sess session.Session, sessionID string) error {
	path := fmt.Sprintf("/payments/checkout/%s/finalize", url.PathEscape(sessionID))
	return c.do(ctx, sess, http.MethodPost, path, nil, nil, nil)
}

// SyncPayments triggers the remote reconciliation of gateway payments
func (c *Client) SyncPayments(ctx context.Context, sess session.Session) error {
	return c.do(ctx, sess, http.MethodPost, "/payments/sync", nil, nil, nil)
}
