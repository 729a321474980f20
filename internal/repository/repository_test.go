package repository

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"memorial-park-svc/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.PendingCheckout{}, &models.ListPreference{}, &models.SchedulerLog{}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func TestPendingCheckoutRepository(t *testing.T) {
	repo := NewPendingCheckoutRepository(newTestDB(t))

	require.NoError(t, repo.Save(&models.PendingCheckout{SessionID: "cs_1", LotID: 301, YearMonth: "2025-03", Actor: "juan"}))
	require.NoError(t, repo.Save(&models.PendingCheckout{SessionID: "cs_2", LotID: 302, YearMonth: "2025-04", Actor: "ana"}))
	require.NoError(t, repo.Save(&models.PendingCheckout{SessionID: "cs_1", LotID: 999, YearMonth: "2099-01", Actor: "other"}), "duplicate session is ignored")

	rows, err := repo.List()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "cs_1", rows[0].SessionID)
	assert.Equal(t, uint(301), rows[0].LotID)

	pc, err := repo.GetBySessionID("cs_2")
	require.NoError(t, err)
	require.NotNil(t, pc)
	assert.Equal(t, "ana", pc.Actor)

	require.NoError(t, repo.Delete("cs_1"))
	require.NoError(t, repo.Delete("cs_missing"))

	pc, err = repo.GetBySessionID("cs_1")
	require.NoError(t, err)
	assert.Nil(t, pc)
}

func TestListPreferenceRepository(t *testing.T) {
	repo := NewListPreferenceRepository(newTestDB(t))

	pref, err := repo.Get("staff01", "accounts")
	require.NoError(t, err)
	assert.Nil(t, pref)

	require.NoError(t, repo.Upsert("staff01", "accounts", 25))
	require.NoError(t, repo.Upsert("staff01", "accounts", 50))
	require.NoError(t, repo.Upsert("staff01", "deceased", 5))

	pref, err = repo.Get("staff01", "accounts")
	require.NoError(t, err)
	require.NotNil(t, pref)
	assert.Equal(t, 50, pref.PageSize)

	pref, err = repo.Get("staff01", "deceased")
	require.NoError(t, err)
	assert.Equal(t, 5, pref.PageSize)

	pref, err = repo.Get("other", "accounts")
	require.NoError(t, err)
	assert.Nil(t, pref)
}

func TestSchedulerLogRepository(t *testing.T) {
	repo := NewSchedulerLogRepository(newTestDB(t))

	for _, status := range []string{models.SchedulerStart, models.SchedulerRunning, models.SchedulerSuccess} {
		require.NoError(t, repo.Create(&models.SchedulerLog{DocumentID: "doc", JobCode: "PAYMENT_RECONCILE", Status: status}))
	}
	require.NoError(t, repo.Create(&models.SchedulerLog{DocumentID: "x", JobCode: "OTHER", Status: models.SchedulerSkipped}))

	logs, err := repo.ListByJob("PAYMENT_RECONCILE", 2)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, models.SchedulerSuccess, logs[0].Status)
	assert.Equal(t, models.SchedulerRunning, logs[1].Status)

	all, err := repo.ListByJob("", 0)
	require.NoError(t, err)
	assert.Len(t, all, 4)
}
