package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"memorial-park-svc/internal/models"
	"memorial-park-svc/internal/session"
)

// Login exchanges credentials for a token
func (c *Client) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	var out models.LoginResponse
	if err := c.do(ctx, session.Session{}, http.MethodPost, "/auth/login", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListAccounts returns every account
func (c *Client) ListAccounts(ctx context.Context, sess session.Session) ([]models.Account, error) {
	var out []models.Account
	if err := c.do(ctx, sess, http.MethodGet, "/users", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetAccount returns one account
func (c *Client) GetAccount(ctx context.Context, sess session.Session, id uint) (*models.Account, error) {
	var out models.Account
	if err := c.do(ctx, sess, http.MethodGet, fmt.Sprintf("/users/%d", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateAccount creates an account
func (c *Client) CreateAccount(ctx context.Context, sess session.Session, in models.AccountInput) (*models.Account, error) {
	var out models.Account
	if err := c.do(ctx, sess, http.MethodPost, "/users", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateAccount updates an account
func (c *Client) UpdateAccount(ctx context.Context, sess session.Session, id uint, in models.AccountInput) (*models.Account, error) {
	var out models.Account
	if err := c.do(ctx, sess, http.MethodPut, fmt.Sprintf("/users/%d", id), nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteAccount deletes an account
func (c *Client) DeleteAccount(ctx context.Context, sess session.Session, id uint) error {
	return c.do(ctx, sess, http.MethodDelete, fmt.Sprintf("/users/%d", id), nil, nil, nil)
}

// GetCustomerProfile returns the customer profile of a user
func (c *Client) GetCustomerProfile(ctx context.Context, sess session.Session, userID uint) (*models.CustomerProfile, error) {
	var out models.CustomerProfile
	if err := c.do(ctx, sess, http.MethodGet, fmt.Sprintf("/users/%d/customer-profile", userID), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateCustomerProfile creates the customer profile of a user
func (c *Client) CreateCustomerProfile(ctx context.Context, sess session.Session, profile models.CustomerProfile) (*models.CustomerProfile, error) {
	var out models.CustomerProfile
	if err := c.do(ctx, sess, http.MethodPost, "/customer-profiles", nil, profile, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateCustomerProfile updates a customer profile
func (c *Client) UpdateCustomerProfile(ctx context.Context, sess session.Session, id uint, profile models.CustomerProfile) (*models.CustomerProfile, error) {
	var out models.CustomerProfile
	if err := c.do(ctx, sess, http.MethodPut, fmt.Sprintf("/customer-profiles/%d", id), nil, profile, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
