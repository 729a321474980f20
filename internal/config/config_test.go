package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CHECKOUT_POLL_INTERVAL_SECONDS", "")
	t.Setenv("CHECKOUT_POLL_MAX_SECONDS", "")
	t.Setenv("RECONCILE_CRON_EXPRESSION", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5*time.Second, cfg.Checkout.PollInterval)
	assert.Equal(t, 3*time.Minute, cfg.Checkout.PollMax)
	assert.Equal(t, "0 */2 * * * *", cfg.Scheduler.ReconcileCronExpression)
	assert.Equal(t, 20, cfg.Map.GridSize)
	assert.Equal(t, "X-Actor", cfg.RemoteAPI.ActorHeader)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("REMOTE_API_BASE_URL", "https://api.example.test")
	t.Setenv("MAP_ORIGIN_LAT", "10.5")
	t.Setenv("MAP_ANIMATION_STEP_MS", "250")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.test", cfg.RemoteAPI.BaseURL)
	assert.InDelta(t, 10.5, cfg.Map.OriginLat, 1e-9)
	assert.Equal(t, 250*time.Millisecond, cfg.Map.AnimationStep)
}

func TestLoad_RejectsBadPollingWindow(t *testing.T) {
	t.Setenv("CHECKOUT_POLL_INTERVAL_SECONDS", "10")
	t.Setenv("CHECKOUT_POLL_MAX_SECONDS", "5")

	_, err := Load()
	assert.Error(t, err)
}

func TestGetDSN(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: 5432, User: "u", Password: "p", DBName: "n", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=n sslmode=disable", d.GetDSN())
}
