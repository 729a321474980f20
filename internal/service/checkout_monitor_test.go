package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"memorial-park-svc/internal/config"
	"memorial-park-svc/internal/models"
	"memorial-park-svc/internal/session"
	"memorial-park-svc/pkg/logger"
)

type fakeGateway struct {
	mu        sync.Mutex
	statuses  map[string][]string
	checks    map[string]int
	finalized []string
	synced    int
	actors    []string

	// finalizeFailures makes the first n finalize calls fail
	finalizeFailures int
	// finalizeBlocked, when set, makes finalize wait for ctx and is closed on entry
	finalizeBlocked chan struct{}
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{statuses: make(map[string][]string), checks: make(map[string]int)}
}

// script sets the statuses returned by successive checks; the last one repeats
func (g *fakeGateway) script(sessionID string, statuses ...string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.statuses[sessionID] = statuses
}

func (g *fakeGateway) CheckoutStatus(ctx context.Context, sess session.Session, sessionID string) (*models.CheckoutStatus, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.actors = append(g.actors, sess.Actor)
	n := g.checks[sessionID]
	g.checks[sessionID]++

	script := g.statuses[sessionID]
	if len(script) == 0 {
		return nil, errors.New("unknown session")
	}
	if n >= len(script) {
		n = len(script) - 1
	}
	return &models.CheckoutStatus{SessionID: sessionID, Status: script[n]}, nil
}

func (g *fakeGateway) FinalizeCheckout(ctx context.Context, sess session.Session, sessionID string) error {
	g.mu.Lock()
	blocked := g.finalizeBlocked
	g.finalizeBlocked = nil
	if g.finalizeFailures > 0 {
		g.finalizeFailures--
		g.mu.Unlock()
		return errors.New("finalize rejected")
	}
	g.mu.Unlock()

	if blocked != nil {
		close(blocked)
		<-ctx.Done()
		return ctx.Err()
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.finalized = append(g.finalized, sessionID)
	return nil
}

func (g *fakeGateway) SyncPayments(ctx context.Context, sess session.Session) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.synced++
	return nil
}

func (g *fakeGateway) checkCount(sessionID string) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.checks[sessionID]
}

func newTestMonitor(gw CheckoutGateway, repo *memPendingRepo, interval, max time.Duration) *CheckoutMonitor {
	return NewCheckoutMonitor(gw, repo, config.CheckoutConfig{PollInterval: interval, PollMax: max}, "svc-token", logger.NewNopLogger())
}

func waitOutcome(t *testing.T, m *CheckoutMonitor, sessionID string) CheckoutOutcome {
	t.Helper()
	var out CheckoutOutcome
	require.Eventually(t, func() bool {
		o, ok := m.Result(sessionID)
		out = o
		return ok && o.State != OutcomePending
	}, 2*time.Second, 5*time.Millisecond)
	return out
}

func TestCheckoutMonitor_PaidIsFinalizedAndRefreshed(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	gw := newFakeGateway()
	gw.script("cs_1", models.CheckoutPending, models.CheckoutPending, models.CheckoutPaid)
	repo := &memPendingRepo{}
	m := newTestMonitor(gw, repo, 5*time.Millisecond, time.Second)
	defer m.Stop()

	require.NoError(t, m.Track(models.PendingCheckout{SessionID: "cs_1", LotID: 301, YearMonth: "2025-03", Actor: "jdelacruz"}))

	out := waitOutcome(t, m, "cs_1")
	assert.Equal(t, OutcomeCompleted, out.State)
	assert.Equal(t, uint(301), out.LotID)
	assert.NotNil(t, out.ResolvedAt)

	gw.mu.Lock()
	assert.Equal(t, []string{"cs_1"}, gw.finalized)
	assert.Equal(t, 1, gw.synced)
	assert.Equal(t, "jdelacruz", gw.actors[0])
	gw.mu.Unlock()
	assert.Equal(t, 0, repo.count())
}

func TestCheckoutMonitor_FailedStatuses(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	gw := newFakeGateway()
	gw.script("cs_failed", models.CheckoutFailed)
	gw.script("cs_expired", models.CheckoutExpired)
	gw.script("cs_cancelled", models.CheckoutCancelled)
	repo := &memPendingRepo{}
	m := newTestMonitor(gw, repo, 5*time.Millisecond, time.Second)
	defer m.Stop()

	for _, id := range []string{"cs_failed", "cs_expired", "cs_cancelled"} {
		require.NoError(t, m.Track(models.PendingCheckout{SessionID: id}))
	}
	for _, id := range []string{"cs_failed", "cs_expired", "cs_cancelled"} {
		out := waitOutcome(t, m, id)
		assert.Equal(t, OutcomeFailed, out.State, id)
		assert.Equal(t, MessageCheckoutFailed, out.Message)
	}

	gw.mu.Lock()
	assert.Empty(t, gw.finalized)
	gw.mu.Unlock()
	assert.Equal(t, 0, repo.count())
}

func TestCheckoutMonitor_TimesOut(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	gw := newFakeGateway()
	gw.script("cs_slow", models.CheckoutPending)
	repo := &memPendingRepo{}
	m := newTestMonitor(gw, repo, 5*time.Millisecond, 40*time.Millisecond)
	defer m.Stop()

	require.NoError(t, m.Track(models.PendingCheckout{SessionID: "cs_slow"}))

	out := waitOutcome(t, m, "cs_slow")
	assert.Equal(t, OutcomeTimedOut, out.State)
	assert.Contains(t, out.Message, "please refresh manually")
	assert.Equal(t, 0, repo.count())
	assert.Equal(t, 0, m.Watching())
}

func TestCheckoutMonitor_WatchIsDeduplicated(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	gw := newFakeGateway()
	gw.script("cs_dup", models.CheckoutPending)
	m := newTestMonitor(gw, &memPendingRepo{}, 5*time.Millisecond, time.Second)

	pc := models.PendingCheckout{SessionID: "cs_dup", CreatedAt: time.Now()}
	assert.True(t, m.Watch(pc))
	assert.False(t, m.Watch(pc))
	assert.Equal(t, 1, m.Watching())

	out, ok := m.Result("cs_dup")
	require.True(t, ok)
	assert.Equal(t, OutcomePending, out.State)

	m.Stop()
	assert.False(t, m.Watch(models.PendingCheckout{SessionID: "cs_late"}))
}

func TestCheckoutMonitor_StopKeepsRowsForResume(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	gw := newFakeGateway()
	gw.script("cs_keep", models.CheckoutPending)
	repo := &memPendingRepo{}
	m := newTestMonitor(gw, repo, 5*time.Millisecond, time.Minute)

	require.NoError(t, m.Track(models.PendingCheckout{SessionID: "cs_keep", LotID: 7}))
	require.Eventually(t, func() bool { return gw.checkCount("cs_keep") > 0 }, time.Second, 5*time.Millisecond)
	m.Stop()

	assert.Equal(t, 1, repo.count())
	assert.Equal(t, 0, m.Watching())

	gw.script("cs_keep", models.CheckoutPaid)
	resumed := newTestMonitor(gw, repo, 5*time.Millisecond, time.Minute)
	defer resumed.Stop()
	require.NoError(t, resumed.Resume())

	out := waitOutcome(t, resumed, "cs_keep")
	assert.Equal(t, OutcomeCompleted, out.State)
	assert.Equal(t, uint(7), out.LotID)
}

func TestCheckoutMonitor_ResumeExpiredRowTimesOutImmediately(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	gw := newFakeGateway()
	repo := &memPendingRepo{}
	require.NoError(t, repo.Save(&models.PendingCheckout{SessionID: "cs_old", CreatedAt: time.Now().Add(-time.Hour)}))

	m := newTestMonitor(gw, repo, 5*time.Millisecond, time.Minute)
	defer m.Stop()
	require.NoError(t, m.Resume())

	out := waitOutcome(t, m, "cs_old")
	assert.Equal(t, OutcomeTimedOut, out.State)
	assert.Equal(t, 0, gw.checkCount("cs_old"))
}

func TestCheckoutMonitor_StopDuringFinalizeKeepsRow(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	gw := newFakeGateway()
	gw.script("cs_paid", models.CheckoutPaid)
	entered := make(chan struct{})
	gw.finalizeBlocked = entered
	repo := &memPendingRepo{}
	m := newTestMonitor(gw, repo, 5*time.Millisecond, time.Minute)

	require.NoError(t, m.Track(models.PendingCheckout{SessionID: "cs_paid", LotID: 9, YearMonth: "2025-05"}))
	select {
	case <-entered:
	case <-time.After(2 * time.Second):
		t.Fatal("finalize was never called")
	}
	m.Stop()

	out, ok := m.Result("cs_paid")
	assert.False(t, ok && out.State == OutcomeCompleted, "cancelled finalize must not complete")
	assert.Equal(t, 1, repo.count())

	resumed := newTestMonitor(gw, repo, 5*time.Millisecond, time.Minute)
	defer resumed.Stop()
	require.NoError(t, resumed.Resume())

	out = waitOutcome(t, resumed, "cs_paid")
	assert.Equal(t, OutcomeCompleted, out.State)
	gw.mu.Lock()
	assert.Equal(t, []string{"cs_paid"}, gw.finalized)
	gw.mu.Unlock()
	assert.Equal(t, 0, repo.count())
}

func TestCheckoutMonitor_FinalizeFailureRetries(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	gw := newFakeGateway()
	gw.script("cs_retry", models.CheckoutPaid)
	gw.finalizeFailures = 2
	repo := &memPendingRepo{}
	m := newTestMonitor(gw, repo, 5*time.Millisecond, time.Second)
	defer m.Stop()

	require.NoError(t, m.Track(models.PendingCheckout{SessionID: "cs_retry"}))

	out := waitOutcome(t, m, "cs_retry")
	assert.Equal(t, OutcomeCompleted, out.State)
	assert.GreaterOrEqual(t, gw.checkCount("cs_retry"), 3)
	assert.Equal(t, 0, repo.count())
}

func TestCheckoutMonitor_FinalizeNeverSucceedsTimesOut(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	gw := newFakeGateway()
	gw.script("cs_stuck", models.CheckoutPaid)
	gw.finalizeFailures = 1 << 20
	repo := &memPendingRepo{}
	m := newTestMonitor(gw, repo, 5*time.Millisecond, 40*time.Millisecond)
	defer m.Stop()

	require.NoError(t, m.Track(models.PendingCheckout{SessionID: "cs_stuck"}))

	out := waitOutcome(t, m, "cs_stuck")
	assert.Equal(t, OutcomeTimedOut, out.State)
	gw.mu.Lock()
	assert.Empty(t, gw.finalized)
	assert.Equal(t, 0, gw.synced)
	gw.mu.Unlock()
}

func TestCheckoutMonitor_ResultsExpire(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	gw := newFakeGateway()
	gw.script("cs_old", models.CheckoutFailed)
	m := newTestMonitor(gw, &memPendingRepo{}, 5*time.Millisecond, time.Second)
	defer m.Stop()

	require.NoError(t, m.Track(models.PendingCheckout{SessionID: "cs_old"}))
	assert.Equal(t, OutcomeFailed, waitOutcome(t, m, "cs_old").State)

	m.mu.Lock()
	m.now = func() time.Time { return time.Now().Add(ResultTTL + time.Minute) }
	m.mu.Unlock()

	_, ok := m.Result("cs_old")
	assert.False(t, ok)
	m.mu.Lock()
	assert.Empty(t, m.results)
	m.mu.Unlock()
}
