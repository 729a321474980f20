package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"memorial-park-svc/internal/listview"
	"memorial-park-svc/internal/models"
	"memorial-park-svc/internal/service"
	"memorial-park-svc/internal/session"
	"memorial-park-svc/internal/validation"
)

type stubUserService struct {
	service.UserService

	gotState   listview.State
	gotStep    int
	gotConfirm string
	created    int
	deleteErr  error
	createErr  error
}

func (s *stubUserService) ListAccounts(_ context.Context, _ session.Session, st listview.State) (listview.Result[service.AccountRow], error) {
	s.gotState = st
	rows := []service.AccountRow{
		{Account: models.Account{ID: 1, Username: "admin"}, Protected: true},
		{Account: models.Account{ID: 2, Username: "mreyes"}},
	}
	return listview.Apply(rows, st, service.AccountColumns), nil
}

func (s *stubUserService) ValidateWizardStep(req models.AccountWizardRequest, step int) error {
	s.gotStep = step
	if req.Account.Username == "" {
		verr := &validation.Errors{}
		verr.Add("username", validation.ReasonRequired)
		return verr
	}
	return nil
}

func (s *stubUserService) FieldAvailability(in models.AccountInput) validation.Availability {
	return validation.FieldAvailability(in)
}

func (s *stubUserService) CreateAccount(_ context.Context, _ session.Session, req models.AccountWizardRequest) (*service.AccountDetail, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	s.created++
	return &service.AccountDetail{AccountRow: service.AccountRow{Account: models.Account{ID: 9, Username: req.Account.Username}}}, nil
}

func (s *stubUserService) DeleteAccount(_ context.Context, _ session.Session, _ uint, confirm string) error {
	s.gotConfirm = confirm
	return s.deleteErr
}

func newUserRouter(svc *stubUserService, prefs *stubPrefs) http.Handler {
	h := NewUserHandler(svc, prefs, testLogger)
	r := newTestRouter()
	r.GET("/accounts", h.ListAccounts)
	r.POST("/accounts", h.CreateAccount)
	r.POST("/accounts/wizard/validate", h.ValidateWizardStep)
	r.DELETE("/accounts/:id", h.DeleteAccount)
	return r
}

func TestUserHandler_ListAccounts_UsesStoredPageSize(t *testing.T) {
	svc := &stubUserService{}
	prefs := newStubPrefs()
	prefs.sizes["tester/accounts"] = 25
	r := newUserRouter(svc, prefs)

	w := doRequest(t, r, http.MethodGet, "/accounts?q=re&sort=username&dir=DESC", nil, models.RoleStaff)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, 25, svc.gotState.PageSize)
	assert.Equal(t, "re", svc.gotState.Query)
	assert.Equal(t, listview.Sort{Key: "username", Direction: listview.Descending}, svc.gotState.Sort)

	env := decode(t, w)
	assert.Equal(t, int64(1), env.Pagination.Total)
	assert.Equal(t, 25, env.Pagination.PageSize)
}

func TestUserHandler_ListAccounts_RemembersExplicitPageSize(t *testing.T) {
	svc := &stubUserService{}
	prefs := newStubPrefs()
	r := newUserRouter(svc, prefs)

	w := doRequest(t, r, http.MethodGet, "/accounts?page_size=50", nil, models.RoleStaff)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 50, prefs.sizes["tester/accounts"])

	w = doRequest(t, r, http.MethodGet, "/accounts?page_size=7", nil, models.RoleStaff)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, listview.DefaultPageSize, svc.gotState.PageSize)
	assert.Equal(t, 50, prefs.sizes["tester/accounts"])
}

func TestUserHandler_ValidateWizardStep(t *testing.T) {
	svc := &stubUserService{}
	r := newUserRouter(svc, newStubPrefs())

	req := models.AccountWizardRequest{Account: models.AccountInput{Username: "jdelacruz", SexAtBirth: models.SexMale}}
	w := doRequest(t, r, http.MethodPost, "/accounts/wizard/validate?step=1", jsonBody(t, req), models.RoleStaff)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, validation.StepIdentity, svc.gotStep)

	var avail validation.Availability
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &avail))
	assert.True(t, avail.ContactEditable)

	w = doRequest(t, r, http.MethodPost, "/accounts/wizard/validate?step=1", jsonBody(t, models.AccountWizardRequest{}), models.RoleStaff)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = doRequest(t, r, http.MethodPost, "/accounts/wizard/validate?step=3", jsonBody(t, req), models.RoleStaff)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUserHandler_CreateAccount(t *testing.T) {
	svc := &stubUserService{}
	r := newUserRouter(svc, newStubPrefs())

	req := models.AccountWizardRequest{Account: models.AccountInput{Username: "cashier1"}}
	w := doRequest(t, r, http.MethodPost, "/accounts", jsonBody(t, req), models.RoleAdmin)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 1, svc.created)

	verr := &validation.Errors{}
	verr.Add("contact_number", validation.ReasonInvalid)
	svc.createErr = verr
	w = doRequest(t, r, http.MethodPost, "/accounts", jsonBody(t, req), models.RoleAdmin)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, 1, svc.created)
}

func TestUserHandler_DeleteAccount(t *testing.T) {
	svc := &stubUserService{deleteErr: service.ErrRootAdminProtected}
	r := newUserRouter(svc, newStubPrefs())

	w := doRequest(t, r, http.MethodDelete, "/accounts/1?confirm=admin", nil, models.RoleAdmin)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "admin", svc.gotConfirm)

	svc.deleteErr = nil
	w = doRequest(t, r, http.MethodDelete, "/accounts/2?confirm=mreyes", nil, models.RoleAdmin)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, r, http.MethodDelete, "/accounts/abc", nil, models.RoleAdmin)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
