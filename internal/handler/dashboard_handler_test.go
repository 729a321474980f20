package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"memorial-park-svc/internal/models"
	"memorial-park-svc/internal/service"
)

func TestDashboardHandler_ViewLifecycle(t *testing.T) {
	views := service.NewDashboardService(time.Minute, testLogger)
	h := NewDashboardHandler(views, testLogger)
	r := newTestRouter()
	r.GET("/dashboard/views", h.ActiveViews)
	r.POST("/dashboard/views", h.RegisterView)
	r.PUT("/dashboard/views/:id/heartbeat", h.Heartbeat)
	r.DELETE("/dashboard/views/:id", h.UnregisterView)

	w := doRequest(t, r, http.MethodPost, "/dashboard/views", jsonBody(t, RegisterViewRequest{Page: "payments"}), models.RoleCashier)
	require.Equal(t, http.StatusCreated, w.Code)

	var view service.DashboardView
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &view))
	assert.Equal(t, "tester", view.Actor)
	assert.True(t, views.HasActiveViews())

	w = doRequest(t, r, http.MethodPut, "/dashboard/views/"+view.ID+"/heartbeat", nil, models.RoleCashier)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, r, http.MethodDelete, "/dashboard/views/"+view.ID, nil, models.RoleCashier)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, views.HasActiveViews())

	w = doRequest(t, r, http.MethodDelete, "/dashboard/views/"+view.ID, nil, models.RoleCashier)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(t, r, http.MethodPost, "/dashboard/views", jsonBody(t, map[string]string{}), models.RoleCashier)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPreferenceHandler(t *testing.T) {
	prefs := newStubPrefs()
	h := NewPreferenceHandler(prefs, testLogger)
	r := newTestRouter()
	r.GET("/preferences/page-size/:page", h.GetPageSize)
	r.PUT("/preferences/page-size/:page", h.SetPageSize)

	w := doRequest(t, r, http.MethodPut, "/preferences/page-size/deceased", jsonBody(t, PageSizeRequest{PageSize: 25}), models.RoleStaff)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, r, http.MethodGet, "/preferences/page-size/deceased", nil, models.RoleStaff)
	require.Equal(t, http.StatusOK, w.Code)
	var got PageSizeResponse
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &got))
	assert.Equal(t, 25, got.PageSize)

	w = doRequest(t, r, http.MethodPut, "/preferences/page-size/deceased", jsonBody(t, PageSizeRequest{PageSize: 30}), models.RoleStaff)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, r, http.MethodGet, "/preferences/page-size/graves", nil, models.RoleStaff)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

type stubReconcileJob struct {
	runs int
}

func (j *stubReconcileJob) History(limit int) ([]models.SchedulerLog, error) {
	return []models.SchedulerLog{{ID: 1, JobCode: "PAYMENT_RECONCILIATION", Status: "SKIPPED"}}[:min(limit, 1)], nil
}

func (j *stubReconcileJob) RunOnce() string {
	j.runs++
	return "SUCCESS"
}

func TestSchedulerHandler(t *testing.T) {
	job := &stubReconcileJob{}
	h := NewSchedulerHandler(job, testLogger)
	r := newTestRouter()
	r.GET("/scheduler/logs", h.Logs)
	r.POST("/scheduler/reconcile", h.Run)

	w := doRequest(t, r, http.MethodGet, "/scheduler/logs?limit=5", nil, models.RoleAdmin)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "SKIPPED")

	w = doRequest(t, r, http.MethodGet, "/scheduler/logs?limit=-1", nil, models.RoleAdmin)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, r, http.MethodPost, "/scheduler/reconcile", nil, models.RoleAdmin)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, job.runs)
	assert.Contains(t, w.Body.String(), `"status":"SUCCESS"`)
}
