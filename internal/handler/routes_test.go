package handler

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"memorial-park-svc/internal/models"
	"memorial-park-svc/internal/service"
)

func newTestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	SetupRoutes(r, Services{
		User:        &stubUserService{},
		Dashboard:   service.NewDashboardService(service.DefaultViewTTL, testLogger),
		Preferences: newStubPrefs(),
		Reconcile:   &stubReconcileJob{},
	}, testLogger)
	return r
}

func TestSetupRoutes_Health(t *testing.T) {
	w := doRequest(t, newTestEngine(), http.MethodGet, "/api/v1/health", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestSetupRoutes_AccessControl(t *testing.T) {
	r := newTestEngine()

	cases := []struct {
		name   string
		method string
		path   string
		role   models.Role
		status int
	}{
		{"anonymous accounts", http.MethodGet, "/api/v1/accounts", "", http.StatusUnauthorized},
		{"customer accounts", http.MethodGet, "/api/v1/accounts", models.RoleCustomer, http.StatusForbidden},
		{"staff accounts", http.MethodGet, "/api/v1/accounts", models.RoleStaff, http.StatusOK},
		{"customer scheduler logs", http.MethodGet, "/api/v1/scheduler/logs", models.RoleCustomer, http.StatusForbidden},
		{"admin scheduler logs", http.MethodGet, "/api/v1/scheduler/logs", models.RoleAdmin, http.StatusOK},
		{"customer dashboard views", http.MethodGet, "/api/v1/dashboard/views", models.RoleCustomer, http.StatusOK},
		{"anonymous dashboard views", http.MethodGet, "/api/v1/dashboard/views", "", http.StatusUnauthorized},
		{"customer page size", http.MethodGet, "/api/v1/preferences/page-size/lots", models.RoleCustomer, http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doRequest(t, r, tc.method, tc.path, nil, tc.role)
			assert.Equal(t, tc.status, w.Code)
		})
	}
}
