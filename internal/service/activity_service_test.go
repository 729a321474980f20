package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"memorial-park-svc/internal/activity"
	"memorial-park-svc/internal/listview"
	"memorial-park-svc/internal/models"
	"memorial-park-svc/pkg/logger"
)

func TestActivityService_ListNewestFirst(t *testing.T) {
	remote, client := newFakeRemote(t)
	base := time.Date(2025, time.March, 1, 8, 0, 0, 0, time.UTC)
	remote.reply("GET /activity-logs", []models.ActivityLogEntry{
		{ID: 1, Timestamp: base, Action: "Created account", Type: "user", User: "admin"},
		{ID: 2, Timestamp: base.Add(time.Hour), Action: "Recorded payment", Type: "payment", User: "cashier1"},
		{ID: 3, Timestamp: base.Add(2 * time.Hour), Action: "Exported revenue report", Type: "report", User: "staff01"},
	})
	svc := NewActivityService(client, logger.NewNopLogger())

	res, err := svc.List(context.Background(), staffSession, listview.State{PageSize: 10})
	require.NoError(t, err)
	require.Len(t, res.Items, 3)
	assert.Equal(t, uint(3), res.Items[0].ID)
	assert.Equal(t, activity.ImportExport, res.Items[0].Category)
	assert.Equal(t, activity.Payment, res.Items[1].Category)
	assert.Equal(t, activity.Create, res.Items[2].Category)

	_, err = svc.List(context.Background(), customerSession, listview.State{})
	assert.ErrorIs(t, err, ErrForbidden)
}
