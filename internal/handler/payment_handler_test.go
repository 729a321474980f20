package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"memorial-park-svc/internal/models"
	"memorial-park-svc/internal/schedule"
	"memorial-park-svc/internal/service"
	"memorial-park-svc/internal/session"
)

type stubPaymentService struct {
	service.PaymentService

	checkoutErr error
	gotLot      uint
	gotMonth    string
}

func (s *stubPaymentService) StartCheckout(_ context.Context, _ session.Session, lotID uint, yearMonth string) (*service.CheckoutStart, error) {
	s.gotLot, s.gotMonth = lotID, yearMonth
	if s.checkoutErr != nil {
		return nil, s.checkoutErr
	}
	return &service.CheckoutStart{
		CheckoutSession: models.CheckoutSession{SessionID: "cs_1", CheckoutURL: "https://pay.example/cs_1"},
		Quote:           schedule.Quote{Label: "Mar 15, 2025", OnlineAllowed: true, Charge: decimal.NewFromInt(2500)},
	}, nil
}

func (s *stubPaymentService) CheckoutStatus(_ context.Context, sessionID string) (*service.CheckoutOutcome, error) {
	if sessionID != "cs_1" {
		return nil, service.ErrNotFound
	}
	return &service.CheckoutOutcome{SessionID: sessionID, State: service.OutcomeTimedOut, Message: service.MessageCheckoutTimedOut}, nil
}

func newPaymentRouter(svc *stubPaymentService) http.Handler {
	h := NewPaymentHandler(svc, testLogger)
	r := newTestRouter()
	r.POST("/payments/checkout", h.StartCheckout)
	r.GET("/payments/checkout/:session_id", h.CheckoutStatus)
	return r
}

func TestPaymentHandler_StartCheckout(t *testing.T) {
	svc := &stubPaymentService{}
	r := newPaymentRouter(svc)

	w := doRequest(t, r, http.MethodPost, "/payments/checkout", jsonBody(t, CheckoutRequest{LotID: 301, YearMonth: "2025-03"}), models.RoleCustomer)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, uint(301), svc.gotLot)
	assert.Equal(t, "2025-03", svc.gotMonth)
	assert.Contains(t, w.Body.String(), `"checkout_session_id":"cs_1"`)
}

func TestPaymentHandler_StartCheckout_Refusals(t *testing.T) {
	for _, err := range []error{service.ErrOverdueOfficeOnly, service.ErrMonthOutOfOrder, service.ErrFullyPaid} {
		svc := &stubPaymentService{checkoutErr: err}
		w := doRequest(t, newPaymentRouter(svc), http.MethodPost, "/payments/checkout", jsonBody(t, CheckoutRequest{LotID: 301}), models.RoleCustomer)
		assert.Equal(t, http.StatusConflict, w.Code, err.Error())
	}

	w := doRequest(t, newPaymentRouter(&stubPaymentService{}), http.MethodPost, "/payments/checkout", jsonBody(t, map[string]string{"year_month": "2025-03"}), models.RoleCustomer)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPaymentHandler_CheckoutStatus(t *testing.T) {
	r := newPaymentRouter(&stubPaymentService{})

	w := doRequest(t, r, http.MethodGet, "/payments/checkout/cs_1", nil, models.RoleCustomer)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "please refresh manually")

	w = doRequest(t, r, http.MethodGet, "/payments/checkout/cs_missing", nil, models.RoleCustomer)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
