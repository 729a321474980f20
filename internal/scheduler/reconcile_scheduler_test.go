package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"memorial-park-svc/internal/models"
	"memorial-park-svc/internal/session"
	"memorial-park-svc/pkg/logger"
)

type fakeSyncer struct {
	err   error
	calls int
	sess  session.Session
}

func (f *fakeSyncer) SyncPayments(ctx context.Context, sess session.Session) error {
	f.calls++
	f.sess = sess
	return f.err
}

type fakeViews bool

func (v fakeViews) HasActiveViews() bool { return bool(v) }

type memLogRepo struct {
	mu   sync.Mutex
	rows []models.SchedulerLog
}

func (r *memLogRepo) Create(log *models.SchedulerLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	log.ID = uint(len(r.rows) + 1)
	r.rows = append(r.rows, *log)
	return nil
}

func (r *memLogRepo) ListByJob(jobCode string, limit int) ([]models.SchedulerLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.SchedulerLog
	for i := len(r.rows) - 1; i >= 0; i-- {
		if r.rows[i].JobCode == jobCode {
			out = append(out, r.rows[i])
		}
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func statuses(rows []models.SchedulerLog) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Status)
	}
	return out
}

func TestReconcileScheduler_SkipsWithoutViews(t *testing.T) {
	syncer := &fakeSyncer{}
	repo := &memLogRepo{}
	s := NewReconcileScheduler(syncer, fakeViews(false), repo, logger.NewNopLogger(), "0 */2 * * * *", "svc")

	assert.Equal(t, models.SchedulerSkipped, s.RunOnce())
	assert.Equal(t, 0, syncer.calls)
	assert.Equal(t, []string{models.SchedulerSkipped}, statuses(repo.rows))
}

func TestReconcileScheduler_Success(t *testing.T) {
	syncer := &fakeSyncer{}
	repo := &memLogRepo{}
	s := NewReconcileScheduler(syncer, fakeViews(true), repo, logger.NewNopLogger(), "0 */2 * * * *", "svc")

	assert.Equal(t, models.SchedulerSuccess, s.RunOnce())
	assert.Equal(t, 1, syncer.calls)
	assert.Equal(t, "svc", syncer.sess.Token)
	assert.Equal(t, "reconciler", syncer.sess.Actor)
	assert.Equal(t, []string{models.SchedulerStart, models.SchedulerRunning, models.SchedulerSuccess}, statuses(repo.rows))

	docID := repo.rows[0].DocumentID
	for _, r := range repo.rows {
		assert.Equal(t, docID, r.DocumentID)
		assert.Equal(t, ReconcileJobCode, r.JobCode)
	}

	history, err := s.History(2)
	require.NoError(t, err)
	assert.Equal(t, []string{models.SchedulerSuccess, models.SchedulerRunning}, statuses(history))
}

func TestReconcileScheduler_Failure(t *testing.T) {
	syncer := &fakeSyncer{err: errors.New("remote down")}
	repo := &memLogRepo{}
	s := NewReconcileScheduler(syncer, fakeViews(true), repo, logger.NewNopLogger(), "0 */2 * * * *", "svc")

	assert.Equal(t, models.SchedulerFailed, s.RunOnce())
	last := repo.rows[len(repo.rows)-1]
	assert.Equal(t, models.SchedulerFailed, last.Status)
	assert.Contains(t, last.Message, "remote down")
}

func TestReconcileScheduler_StartRejectsBadExpression(t *testing.T) {
	s := NewReconcileScheduler(&fakeSyncer{}, fakeViews(false), &memLogRepo{}, logger.NewNopLogger(), "not a cron", "svc")
	assert.Error(t, s.Start())
}

func TestReconcileScheduler_StartStop(t *testing.T) {
	s := NewReconcileScheduler(&fakeSyncer{}, fakeViews(false), &memLogRepo{}, logger.NewNopLogger(), "0 */2 * * * *", "svc")
	require.NoError(t, s.Start())
	s.Stop()
}
