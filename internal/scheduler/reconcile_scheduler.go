package scheduler

import (
	"context"
	"fmt"
	"time"

	"memorial-park-svc/internal/models"
	"memorial-park-svc/internal/repository"
	"memorial-park-svc/internal/session"
	"memorial-park-svc/pkg/logger"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

// ReconcileJobCode identifies reconciliation runs in scheduler_logs
const ReconcileJobCode = "PAYMENT_RECONCILIATION"

// PaymentSyncer triggers the remote reconciliation of gateway payments
type PaymentSyncer interface {
	SyncPayments(ctx context.Context, sess session.Session) error
}

// ViewRegistry reports whether any payment view is open
type ViewRegistry interface {
	HasActiveViews() bool
}

// ReconcileScheduler periodically asks the remote API to reconcile gateway
// payments while at least one payment view is open
type ReconcileScheduler struct {
	syncer         PaymentSyncer
	views          ViewRegistry
	logRepo        repository.SchedulerLogRepository
	logger         *logger.Logger
	cron           *cron.Cron
	cronExpression string
	sess           session.Session
	timeout        time.Duration
}

// NewReconcileScheduler creates a new reconciliation scheduler
func NewReconcileScheduler(syncer PaymentSyncer, views ViewRegistry, logRepo repository.SchedulerLogRepository, logger *logger.Logger, cronExpression, serviceToken string) *ReconcileScheduler {
	// Create cron with seconds precision
	c := cron.New(cron.WithSeconds())

	return &ReconcileScheduler{
		syncer:         syncer,
		views:          views,
		logRepo:        logRepo,
		logger:         logger,
		cron:           c,
		cronExpression: cronExpression,
		sess:           session.Background("reconciler", serviceToken),
		timeout:        time.Minute,
	}
}

// Start schedules the reconciliation job and starts the cron runner
func (s *ReconcileScheduler) Start() error {
	s.logger.Info("Starting reconciliation scheduler...")

	// Cron format: "seconds minutes hours day-of-month month day-of-week"
	s.logger.WithField("cron_expression", s.cronExpression).Info("Scheduling reconciliation job")
	if _, err := s.cron.AddFunc(s.cronExpression, s.reconcile); err != nil {
		return fmt.Errorf("failed to schedule reconciliation job: %w", err)
	}

	s.cron.Start()
	s.logger.Info("Reconciliation scheduler started successfully")
	return nil
}

// Stop waits for a running job, then stops the scheduler
func (s *ReconcileScheduler) Stop() {
	s.logger.Info("Stopping reconciliation scheduler...")
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Reconciliation scheduler stopped successfully")
}

// History returns the newest reconciliation log rows
func (s *ReconcileScheduler) History(limit int) ([]models.SchedulerLog, error) {
	return s.logRepo.ListByJob(ReconcileJobCode, limit)
}

// RunOnce runs one reconciliation immediately and returns the final status
func (s *ReconcileScheduler) RunOnce() string {
	return s.run()
}

func (s *ReconcileScheduler) reconcile() {
	s.run()
}

func (s *ReconcileScheduler) run() string {
	docID := uuid.New().String()

	if !s.views.HasActiveViews() {
		s.logScheduler(docID, "No payment views open, reconciliation skipped", models.SchedulerSkipped)
		s.logger.Debug("Reconciliation skipped, no active payment views")
		return models.SchedulerSkipped
	}

	s.logScheduler(docID, "Starting scheduled payment reconciliation", models.SchedulerStart)

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	s.logScheduler(docID, "Requesting payment sync from remote API", models.SchedulerRunning)
	started := time.Now()
	if err := s.syncer.SyncPayments(ctx, s.sess); err != nil {
		s.logScheduler(docID, fmt.Sprintf("Failed to reconcile payments: %v", err), models.SchedulerFailed)
		s.logger.WithError(err).Error("Failed to reconcile payments")
		return models.SchedulerFailed
	}

	elapsed := time.Since(started)
	s.logScheduler(docID, fmt.Sprintf("Payments reconciled successfully in %s", elapsed.Round(time.Millisecond)), models.SchedulerSuccess)
	s.logger.WithField("elapsed", elapsed.String()).Info("Scheduled payment reconciliation completed")
	return models.SchedulerSuccess
}

// logScheduler creates a new log entry in the database
func (s *ReconcileScheduler) logScheduler(documentID, message, status string) {
	entry := &models.SchedulerLog{
		DocumentID: documentID,
		JobCode:    ReconcileJobCode,
		Message:    message,
		Status:     status,
	}

	if err := s.logRepo.Create(entry); err != nil {
		s.logger.WithError(err).WithField("status", status).Error("Failed to create scheduler log entry")
		return
	}
	s.logger.WithField("status", status).WithField("document_id", documentID).Debug("Scheduler log entry created")
}
