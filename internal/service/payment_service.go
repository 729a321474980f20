package service

import (
	"context"
	"fmt"

	"memorial-park-svc/internal/apiclient"
	"memorial-park-svc/internal/models"
	"memorial-park-svc/internal/repository"
	"memorial-park-svc/internal/schedule"
	"memorial-park-svc/internal/session"
	"memorial-park-svc/pkg/logger"
)

// MonthView is a schedule month with its display label
type MonthView struct {
	models.MonthEntry
	Label string `json:"label"`
}

// LotSchedule is the monthly payment schedule of one lot
type LotSchedule struct {
	LotID     uint                `json:"lot_id"`
	LotLabel  string              `json:"lot_label"`
	Plan      *models.PaymentPlan `json:"plan,omitempty"`
	Months    []MonthView         `json:"months"`
	Selection schedule.Selection  `json:"selection"`
}

// CheckoutStart is returned when a hosted checkout is opened
type CheckoutStart struct {
	models.CheckoutSession
	Quote schedule.Quote `json:"quote"`
}

// PaymentService covers the monthly schedule, checkout and office payments
type PaymentService interface {
	Schedule(ctx context.Context, sess session.Session, lotID uint) (*LotSchedule, error)
	PayableLots(ctx context.Context, sess session.Session, customerID *uint) ([]schedule.Selection, error)
	Plans(ctx context.Context, sess session.Session, lotID *uint) ([]models.PaymentPlan, error)
	History(ctx context.Context, sess session.Session, lotID *uint) ([]models.PaymentRecord, error)
	StartCheckout(ctx context.Context, sess session.Session, lotID uint, yearMonth string) (*CheckoutStart, error)
	CheckoutStatus(ctx context.Context, sessionID string) (*CheckoutOutcome, error)
	RecordOfficePayment(ctx context.Context, sess session.Session, p models.OfficePayment) (*models.PaymentRecord, error)
}

type paymentService struct {
	client  *apiclient.Client
	monitor *CheckoutMonitor
	pending repository.PendingCheckoutRepository
	logger  *logger.Logger
}

// NewPaymentService creates a new payment service
func NewPaymentService(client *apiclient.Client, monitor *CheckoutMonitor, pending repository.PendingCheckoutRepository, logger *logger.Logger) PaymentService {
	return &paymentService{
		client:  client,
		monitor: monitor,
		pending: pending,
		logger:  logger,
	}
}

func (s *paymentService) lotStatus(ctx context.Context, sess session.Session, lotID uint) (*models.LotMonthlyStatus, error) {
	lot, err := s.client.LotMonthlyStatus(ctx, sess, lotID)
	if err != nil {
		if apiclient.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if lot.Plan == nil {
		plans, err := s.client.PaymentPlans(ctx, sess, &lotID)
		if err != nil {
			s.logger.WithError(err).WithField("lot_id", lotID).Warn("Failed to load payment plan")
		}
		for i := range plans {
			if plans[i].LotID == lotID {
				lot.Plan = &plans[i]
				break
			}
		}
	}
	return lot, nil
}

// Schedule returns the months of a lot and the single month selected for payment
func (s *paymentService) Schedule(ctx context.Context, sess session.Session, lotID uint) (*LotSchedule, error) {
	lot, err := s.lotStatus(ctx, sess, lotID)
	if err != nil {
		s.logger.WithError(err).WithField("lot_id", lotID).Error("Failed to load payment schedule")
		return nil, err
	}

	months := make([]MonthView, 0, len(lot.Months))
	for _, m := range lot.Months {
		months = append(months, MonthView{MonthEntry: m, Label: schedule.FormatMonth(m)})
	}
	return &LotSchedule{
		LotID:     lot.LotID,
		LotLabel:  lot.LotLabel,
		Plan:      lot.Plan,
		Months:    months,
		Selection: schedule.Select(*lot),
	}, nil
}

// PayableLots lists the lots that still have a month to pay. Only staff
// may pick another customer's lots.
func (s *paymentService) PayableLots(ctx context.Context, sess session.Session, customerID *uint) ([]schedule.Selection, error) {
	if !sess.IsStaff() {
		customerID = nil
	}
	lots, err := s.client.MonthlyStatus(ctx, sess, customerID)
	if err != nil {
		s.logger.WithError(err).Error("Failed to load monthly payment status")
		return nil, err
	}

	plans, err := s.client.PaymentPlans(ctx, sess, nil)
	if err != nil {
		s.logger.WithError(err).Warn("Failed to load payment plans")
	}
	byLot := make(map[uint]*models.PaymentPlan, len(plans))
	for i := range plans {
		byLot[plans[i].LotID] = &plans[i]
	}
	for i := range lots {
		if lots[i].Plan == nil {
			lots[i].Plan = byLot[lots[i].LotID]
		}
	}

	return schedule.PayableLots(lots), nil
}

func (s *paymentService) Plans(ctx context.Context, sess session.Session, lotID *uint) ([]models.PaymentPlan, error) {
	plans, err := s.client.PaymentPlans(ctx, sess, lotID)
	if err != nil {
		s.logger.WithError(err).Error("Failed to load payment plans")
		return nil, err
	}
	return plans, nil
}

func (s *paymentService) History(ctx context.Context, sess session.Session, lotID *uint) ([]models.PaymentRecord, error) {
	records, err := s.client.PaymentHistory(ctx, sess, lotID)
	if err != nil {
		s.logger.WithError(err).Error("Failed to load payment history")
		return nil, err
	}
	return records, nil
}

// StartCheckout opens a hosted checkout for the next due month of a lot.
// Overdue months are refused; they are paid at the office.
func (s *paymentService) StartCheckout(ctx context.Context, sess session.Session, lotID uint, yearMonth string) (*CheckoutStart, error) {
	lot, err := s.lotStatus(ctx, sess, lotID)
	if err != nil {
		return nil, err
	}

	sel := schedule.Select(*lot)
	if sel.FullyPaid {
		return nil, ErrFullyPaid
	}
	quote := *sel.Next
	if yearMonth != "" && yearMonth != quote.Month.YearMonth {
		return nil, ErrMonthOutOfOrder
	}
	if !quote.OnlineAllowed {
		return nil, ErrOverdueOfficeOnly
	}

	cs, err := s.client.CreateCheckout(ctx, sess, models.CheckoutRequest{
		LotID:       lotID,
		YearMonth:   quote.Month.YearMonth,
		Amount:      quote.Charge,
		Description: fmt.Sprintf("%s - %s", lot.LotLabel, quote.Label),
	})
	if err != nil {
		s.logger.WithError(err).WithField("lot_id", lotID).Error("Failed to create checkout")
		return nil, err
	}

	if err := s.monitor.Track(models.PendingCheckout{
		SessionID: cs.SessionID,
		LotID:     lotID,
		YearMonth: quote.Month.YearMonth,
		Actor:     sess.Actor,
	}); err != nil {
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"checkout_session_id": cs.SessionID,
		"lot_id":              lotID,
		"year_month":          quote.Month.YearMonth,
		"amount":              quote.Charge.String(),
		"actor":               sess.Actor,
	}).Info("Checkout created")
	return &CheckoutStart{CheckoutSession: *cs, Quote: quote}, nil
}

// CheckoutStatus reports the monitor's view of a checkout session
func (s *paymentService) CheckoutStatus(ctx context.Context, sessionID string) (*CheckoutOutcome, error) {
	if out, ok := s.monitor.Result(sessionID); ok {
		return &out, nil
	}

	pc, err := s.pending.GetBySessionID(sessionID)
	if err != nil {
		return nil, err
	}
	if pc == nil {
		return nil, ErrNotFound
	}
	return &CheckoutOutcome{SessionID: pc.SessionID, LotID: pc.LotID, YearMonth: pc.YearMonth, State: OutcomePending}, nil
}

// RecordOfficePayment records a cash or check payment taken by staff. Only
// the next due month can be paid; overdue months include the penalty.
func (s *paymentService) RecordOfficePayment(ctx context.Context, sess session.Session, p models.OfficePayment) (*models.PaymentRecord, error) {
	if !sess.IsStaff() {
		return nil, ErrForbidden
	}

	lot, err := s.lotStatus(ctx, sess, p.LotID)
	if err != nil {
		return nil, err
	}
	if schedule.IsFullyPaid(*lot) {
		return nil, ErrFullyPaid
	}
	next, _ := schedule.NextDue(lot.Months)
	if p.YearMonth != next.YearMonth {
		return nil, ErrMonthOutOfOrder
	}

	rec, err := s.client.RecordOfficePayment(ctx, sess, p)
	if err != nil {
		s.logger.WithError(err).WithField("lot_id", p.LotID).Error("Failed to record office payment")
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"lot_id":     p.LotID,
		"year_month": p.YearMonth,
		"method":     p.Method,
		"amount":     p.Amount.String(),
		"actor":      sess.Actor,
	}).Info("Office payment recorded")
	return rec, nil
}
