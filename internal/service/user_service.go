package service

import (
	"context"
	"strings"

	"memorial-park-svc/internal/apiclient"
	"memorial-park-svc/internal/config"
	"memorial-park-svc/internal/listview"
	"memorial-park-svc/internal/models"
	"memorial-park-svc/internal/session"
	"memorial-park-svc/internal/validation"
	"memorial-park-svc/pkg/logger"
)

// AccountRow is an account as listed, with its delete protection
type AccountRow struct {
	models.Account
	FullName  string `json:"full_name"`
	Protected bool   `json:"protected"`
}

// AccountDetail is an account with its customer profile, if any
type AccountDetail struct {
	AccountRow
	Profile *models.CustomerProfile `json:"profile,omitempty"`
}

// AccountColumns is how the accounts page searches and sorts
var AccountColumns = listview.Columns[AccountRow]{
	Search: func(a AccountRow) []string {
		created := ""
		if a.CreatedAt != nil {
			created = listview.FormatDate(a.CreatedAt)
		}
		return []string{a.Username, a.Email, a.FirstName, a.MiddleName, a.LastName, a.FullName, string(a.Role), a.ContactNumber, created}
	},
	Keys: map[string]func(AccountRow) interface{}{
		"username":   func(a AccountRow) interface{} { return listview.Text(a.Username) },
		"name":       func(a AccountRow) interface{} { return listview.Text(a.FullName) },
		"email":      func(a AccountRow) interface{} { return listview.Text(a.Email) },
		"role":       func(a AccountRow) interface{} { return listview.Text(string(a.Role)) },
		"created_at": func(a AccountRow) interface{} { return listview.Date(a.CreatedAt) },
	},
}

// UserService interface defines account service methods
type UserService interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error)
	ListAccounts(ctx context.Context, sess session.Session, state listview.State) (listview.Result[AccountRow], error)
	GetAccount(ctx context.Context, sess session.Session, id uint) (*AccountDetail, error)
	ValidateWizardStep(req models.AccountWizardRequest, step int) error
	FieldAvailability(in models.AccountInput) validation.Availability
	CreateAccount(ctx context.Context, sess session.Session, req models.AccountWizardRequest) (*AccountDetail, error)
	UpdateAccount(ctx context.Context, sess session.Session, id uint, req models.AccountWizardRequest) (*AccountDetail, error)
	DeleteAccount(ctx context.Context, sess session.Session, id uint, confirm string) error
}

// userService implements UserService interface
type userService struct {
	client    *apiclient.Client
	validator *validation.Validator
	console   config.ConsoleConfig
	logger    *logger.Logger
}

// NewUserService creates a new account service
func NewUserService(client *apiclient.Client, validator *validation.Validator, console config.ConsoleConfig, logger *logger.Logger) UserService {
	return &userService{
		client:    client,
		validator: validator,
		console:   console,
		logger:    logger,
	}
}

// IsRootAdmin reports whether an account is the protected root administrator
func IsRootAdmin(a models.Account, console config.ConsoleConfig) bool {
	if console.RootAdminUsername != "" && strings.EqualFold(strings.TrimSpace(a.Username), console.RootAdminUsername) {
		return true
	}
	return console.RootAdminEmail != "" && strings.EqualFold(strings.TrimSpace(a.Email), console.RootAdminEmail)
}

// Login forwards credentials to the remote API
func (s *userService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	res, err := s.client.Login(ctx, req)
	if err != nil {
		s.logger.WithError(err).WithField("username", req.Username).Warn("Login rejected")
		return nil, err
	}
	s.logger.WithField("username", req.Username).Info("User logged in")
	return res, nil
}

// ListAccounts lists accounts with query, sort and paging applied
func (s *userService) ListAccounts(ctx context.Context, sess session.Session, state listview.State) (listview.Result[AccountRow], error) {
	accounts, err := s.client.ListAccounts(ctx, sess)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list accounts")
		return listview.Result[AccountRow]{}, err
	}

	rows := make([]AccountRow, 0, len(accounts))
	for _, a := range accounts {
		rows = append(rows, s.row(a))
	}
	return listview.Apply(rows, state, AccountColumns), nil
}

func (s *userService) row(a models.Account) AccountRow {
	return AccountRow{Account: a, FullName: a.FullName(), Protected: IsRootAdmin(a, s.console)}
}

// GetAccount returns an account and, for customers, its profile
func (s *userService) GetAccount(ctx context.Context, sess session.Session, id uint) (*AccountDetail, error) {
	acc, err := s.client.GetAccount(ctx, sess, id)
	if err != nil {
		if apiclient.IsNotFound(err) {
			return nil, ErrNotFound
		}
		s.logger.WithError(err).WithField("account_id", id).Error("Failed to get account")
		return nil, err
	}

	detail := &AccountDetail{AccountRow: s.row(*acc)}
	if acc.Role == models.RoleCustomer {
		profile, err := s.client.GetCustomerProfile(ctx, sess, id)
		switch {
		case err == nil:
			detail.Profile = profile
		case apiclient.IsNotFound(err):
		default:
			s.logger.WithError(err).WithField("account_id", id).Error("Failed to get customer profile")
			return nil, err
		}
	}
	return detail, nil
}

// ValidateWizardStep validates one step of the account wizard without calling the remote API
func (s *userService) ValidateWizardStep(req models.AccountWizardRequest, step int) error {
	return s.validator.AccountWizard(req, step)
}

// FieldAvailability derives which account fields are enabled
func (s *userService) FieldAvailability(in models.AccountInput) validation.Availability {
	return validation.FieldAvailability(in)
}

// prepare validates both steps and normalizes contact numbers
func (s *userService) prepare(req models.AccountWizardRequest) (models.AccountWizardRequest, error) {
	if err := s.validator.AccountWizard(req, validation.StepAll); err != nil {
		return req, err
	}

	req.Account.ContactNumber, _ = validation.NormalizeContact(req.Account.ContactNumber)
	req.Account.Email = strings.TrimSpace(req.Account.Email)
	if !validation.NeedsProfile(req.Account.Role) {
		req.Profile = nil
	}
	if req.Profile != nil {
		profile := *req.Profile
		profile.EmergencyContactNumber, _ = validation.NormalizeContact(profile.EmergencyContactNumber)
		req.Profile = &profile
	}
	return req, nil
}

// CreateAccount validates both wizard steps, then creates the account and,
// for customers, the customer profile. Nothing is sent when validation fails.
func (s *userService) CreateAccount(ctx context.Context, sess session.Session, req models.AccountWizardRequest) (*AccountDetail, error) {
	req, err := s.prepare(req)
	if err != nil {
		return nil, err
	}

	acc, err := s.client.CreateAccount(ctx, sess, req.Account)
	if err != nil {
		s.logger.WithError(err).WithField("username", req.Account.Username).Error("Failed to create account")
		return nil, err
	}

	detail := &AccountDetail{AccountRow: s.row(*acc)}
	if req.Profile != nil {
		profile := *req.Profile
		profile.UserID = acc.ID
		created, err := s.client.CreateCustomerProfile(ctx, sess, profile)
		if err != nil {
			s.logger.WithError(err).WithField("account_id", acc.ID).Error("Account created but customer profile failed")
			return nil, err
		}
		detail.Profile = created
	}

	s.logger.WithFields(map[string]interface{}{
		"account_id": acc.ID,
		"username":   acc.Username,
		"role":       acc.Role,
		"actor":      sess.Actor,
	}).Info("Account created successfully")
	return detail, nil
}

// UpdateAccount updates the account and creates or updates the customer profile
func (s *userService) UpdateAccount(ctx context.Context, sess session.Session, id uint, req models.AccountWizardRequest) (*AccountDetail, error) {
	req, err := s.prepare(req)
	if err != nil {
		return nil, err
	}

	acc, err := s.client.UpdateAccount(ctx, sess, id, req.Account)
	if err != nil {
		if apiclient.IsNotFound(err) {
			return nil, ErrNotFound
		}
		s.logger.WithError(err).WithField("account_id", id).Error("Failed to update account")
		return nil, err
	}

	detail := &AccountDetail{AccountRow: s.row(*acc)}
	if req.Profile != nil {
		profile := *req.Profile
		profile.UserID = id

		existing, err := s.client.GetCustomerProfile(ctx, sess, id)
		switch {
		case err == nil:
			detail.Profile, err = s.client.UpdateCustomerProfile(ctx, sess, existing.ID, profile)
		case apiclient.IsNotFound(err):
			detail.Profile, err = s.client.CreateCustomerProfile(ctx, sess, profile)
		}
		if err != nil {
			s.logger.WithError(err).WithField("account_id", id).Error("Failed to save customer profile")
			return nil, err
		}
	}

	s.logger.WithFields(map[string]interface{}{
		"account_id": id,
		"actor":      sess.Actor,
	}).Info("Account updated successfully")
	return detail, nil
}

// DeleteAccount deletes an account after the caller typed its username.
// The root administrator can never be deleted.
func (s *userService) DeleteAccount(ctx context.Context, sess session.Session, id uint, confirm string) error {
	acc, err := s.client.GetAccount(ctx, sess, id)
	if err != nil {
		if apiclient.IsNotFound(err) {
			return ErrNotFound
		}
		return err
	}

	if IsRootAdmin(*acc, s.console) {
		s.logger.WithFields(map[string]interface{}{
			"account_id": id,
			"actor":      sess.Actor,
		}).Warn("Attempt to delete the root administrator")
		return ErrRootAdminProtected
	}
	if !confirmMatches(confirm, acc.Username, acc.FullName()) {
		return ErrConfirmationMismatch
	}

	if err := s.client.DeleteAccount(ctx, sess, id); err != nil {
		s.logger.WithError(err).WithField("account_id", id).Error("Failed to delete account")
		return err
	}

	s.logger.WithFields(map[string]interface{}{
		"account_id": id,
		"username":   acc.Username,
		"actor":      sess.Actor,
	}).Info("Account deleted successfully")
	return nil
}

func confirmMatches(confirm string, names ...string) bool {
	confirm = strings.Join(strings.Fields(confirm), " ")
	if confirm == "" {
		return false
	}
	for _, n := range names {
		if n != "" && strings.EqualFold(confirm, strings.Join(strings.Fields(n), " ")) {
			return true
		}
	}
	return false
}
