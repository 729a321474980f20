package service

import (
	"context"
	"sync"
	"time"

	"memorial-park-svc/internal/config"
	"memorial-park-svc/internal/models"
	"memorial-park-svc/internal/repository"
	"memorial-park-svc/internal/session"
	"memorial-park-svc/pkg/logger"
)

// Checkout outcome states
const (
	OutcomePending   = "pending"
	OutcomeCompleted = "completed"
	OutcomeFailed    = "failed"
	OutcomeTimedOut  = "timed_out"
)

// Messages shown for resolved checkouts
const (
	MessageCheckoutCompleted = "Payment received, thank you"
	MessageCheckoutFailed    = "Payment was not completed"
	MessageCheckoutTimedOut  = "Payment status could not be confirmed yet, please refresh manually"
)

// ResultTTL is how long a resolved outcome stays queryable
const ResultTTL = 30 * time.Minute

// CheckoutGateway is the part of the remote API the monitor talks to
type CheckoutGateway interface {
	CheckoutStatus(ctx context.Context, sess session.Session, sessionID string) (*models.CheckoutStatus, error)
	FinalizeCheckout(ctx context.Context, sess session.Session, sessionID string) error
	SyncPayments(ctx context.Context, sess session.Session) error
}

// CheckoutOutcome is what the console shows for a checkout session
type CheckoutOutcome struct {
	SessionID  string     `json:"checkout_session_id"`
	LotID      uint       `json:"lot_id"`
	YearMonth  string     `json:"year_month"`
	State      string     `json:"state"`
	Message    string     `json:"message,omitempty"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
}

// CheckoutMonitor polls hosted checkouts until they resolve or the polling
// window closes. Each session is polled by at most one goroutine.
type CheckoutMonitor struct {
	gateway      CheckoutGateway
	repo         repository.PendingCheckoutRepository
	serviceToken string
	interval     time.Duration
	max          time.Duration
	resultTTL    time.Duration
	now          func() time.Time
	logger       *logger.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu      sync.Mutex
	active  map[string]models.PendingCheckout
	results map[string]CheckoutOutcome
	stopped bool
}

// NewCheckoutMonitor creates a checkout monitor
func NewCheckoutMonitor(gateway CheckoutGateway, repo repository.PendingCheckoutRepository, cfg config.CheckoutConfig, serviceToken string, logger *logger.Logger) *CheckoutMonitor {
	ctx, cancel := context.WithCancel(context.Background())
	return &CheckoutMonitor{
		gateway:      gateway,
		repo:         repo,
		serviceToken: serviceToken,
		interval:     cfg.PollInterval,
		max:          cfg.PollMax,
		resultTTL:    ResultTTL,
		now:          time.Now,
		logger:       logger,
		ctx:          ctx,
		cancel:       cancel,
		active:       make(map[string]models.PendingCheckout),
		results:      make(map[string]CheckoutOutcome),
	}
}

// Track persists a new pending checkout and starts polling it
func (m *CheckoutMonitor) Track(pc models.PendingCheckout) error {
	if pc.CreatedAt.IsZero() {
		pc.CreatedAt = m.now()
	}
	if err := m.repo.Save(&pc); err != nil {
		m.logger.WithError(err).WithField("checkout_session_id", pc.SessionID).Error("Failed to save pending checkout")
		return err
	}
	m.Watch(pc)
	return nil
}

// Watch starts polling a checkout. It returns false when the session is
// already being polled or the monitor has stopped.
func (m *CheckoutMonitor) Watch(pc models.PendingCheckout) bool {
	m.mu.Lock()
	if m.stopped {
		m.mu.Unlock()
		return false
	}
	if _, ok := m.active[pc.SessionID]; ok {
		m.mu.Unlock()
		return false
	}
	m.active[pc.SessionID] = pc
	delete(m.results, pc.SessionID)
	m.wg.Add(1)
	m.mu.Unlock()

	remaining := m.max
	if !pc.CreatedAt.IsZero() {
		remaining = pc.CreatedAt.Add(m.max).Sub(m.now())
	}

	m.logger.WithFields(map[string]interface{}{
		"checkout_session_id": pc.SessionID,
		"lot_id":              pc.LotID,
		"year_month":          pc.YearMonth,
		"remaining":           remaining.String(),
	}).Info("Watching checkout")

	go m.poll(pc, remaining)
	return true
}

// Resume re-watches every checkout left pending by a previous run
func (m *CheckoutMonitor) Resume() error {
	rows, err := m.repo.List()
	if err != nil {
		m.logger.WithError(err).Error("Failed to load pending checkouts")
		return err
	}
	for _, pc := range rows {
		m.Watch(pc)
	}
	m.logger.WithField("count", len(rows)).Info("Resumed pending checkouts")
	return nil
}

// Stop cancels every poller and waits for them. Pending rows stay so the
// next run resumes them.
func (m *CheckoutMonitor) Stop() {
	m.mu.Lock()
	m.stopped = true
	m.mu.Unlock()

	m.cancel()
	m.wg.Wait()
}

// Result returns the outcome of a session known to this process
func (m *CheckoutMonitor) Result(sessionID string) (CheckoutOutcome, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.expireLocked()

	if pc, ok := m.active[sessionID]; ok {
		return CheckoutOutcome{SessionID: sessionID, LotID: pc.LotID, YearMonth: pc.YearMonth, State: OutcomePending}, true
	}
	out, ok := m.results[sessionID]
	return out, ok
}

// Watching returns how many sessions are being polled
func (m *CheckoutMonitor) Watching() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.active)
}

func (m *CheckoutMonitor) poll(pc models.PendingCheckout, remaining time.Duration) {
	defer m.wg.Done()

	sess := session.Background(pc.Actor, m.serviceToken)

	if remaining <= 0 {
		m.resolve(pc, OutcomeTimedOut, MessageCheckoutTimedOut)
		return
	}
	deadline := time.NewTimer(remaining)
	defer deadline.Stop()
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-m.ctx.Done():
			m.release(pc.SessionID)
			return
		case <-deadline.C:
			m.logger.WithField("checkout_session_id", pc.SessionID).Warn("Checkout polling window closed")
			m.resolve(pc, OutcomeTimedOut, MessageCheckoutTimedOut)
			return
		case <-ticker.C:
		}

		status, err := m.gateway.CheckoutStatus(m.ctx, sess, pc.SessionID)
		if err != nil {
			if m.ctx.Err() != nil {
				m.release(pc.SessionID)
				return
			}
			m.logger.WithError(err).WithField("checkout_session_id", pc.SessionID).Warn("Checkout status check failed, retrying")
			continue
		}

		switch status.Status {
		case models.CheckoutPaid:
			if m.complete(sess, pc) {
				return
			}
		case models.CheckoutFailed, models.CheckoutExpired, models.CheckoutCancelled:
			m.logger.WithFields(map[string]interface{}{
				"checkout_session_id": pc.SessionID,
				"status":              status.Status,
			}).Info("Checkout did not complete")
			m.resolve(pc, OutcomeFailed, MessageCheckoutFailed)
			return
		}
	}
}

// complete finalizes a paid checkout. It returns false when finalize failed
// and the session must keep polling; the pending row is kept in that case.
func (m *CheckoutMonitor) complete(sess session.Session, pc models.PendingCheckout) bool {
	if err := m.gateway.FinalizeCheckout(m.ctx, sess, pc.SessionID); err != nil {
		if m.ctx.Err() != nil {
			m.release(pc.SessionID)
			return true
		}
		m.logger.WithError(err).WithField("checkout_session_id", pc.SessionID).Error("Failed to finalize paid checkout, retrying")
		return false
	}
	if err := m.gateway.SyncPayments(m.ctx, sess); err != nil {
		m.logger.WithError(err).WithField("checkout_session_id", pc.SessionID).Warn("Failed to refresh payments after checkout")
	}

	m.logger.WithFields(map[string]interface{}{
		"checkout_session_id": pc.SessionID,
		"lot_id":              pc.LotID,
		"year_month":          pc.YearMonth,
	}).Info("Checkout completed")
	m.resolve(pc, OutcomeCompleted, MessageCheckoutCompleted)
	return true
}

func (m *CheckoutMonitor) resolve(pc models.PendingCheckout, state, message string) {
	if err := m.repo.Delete(pc.SessionID); err != nil {
		m.logger.WithError(err).WithField("checkout_session_id", pc.SessionID).Error("Failed to delete pending checkout")
	}

	now := m.now()
	m.mu.Lock()
	m.expireLocked()
	delete(m.active, pc.SessionID)
	m.results[pc.SessionID] = CheckoutOutcome{
		SessionID:  pc.SessionID,
		LotID:      pc.LotID,
		YearMonth:  pc.YearMonth,
		State:      state,
		Message:    message,
		ResolvedAt: &now,
	}
	m.mu.Unlock()
}

func (m *CheckoutMonitor) release(sessionID string) {
	m.mu.Lock()
	delete(m.active, sessionID)
	m.mu.Unlock()
}

// expireLocked drops outcomes resolved longer than resultTTL ago. m.mu must be held.
func (m *CheckoutMonitor) expireLocked() {
	cutoff := m.now().Add(-m.resultTTL)
	for id, out := range m.results {
		if out.ResolvedAt != nil && out.ResolvedAt.Before(cutoff) {
			delete(m.results, id)
		}
	}
}
