package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"memorial-park-svc/internal/listview"
	"memorial-park-svc/internal/middleware"
	"memorial-park-svc/internal/models"
	"memorial-park-svc/internal/service"
	"memorial-park-svc/pkg/logger"
)

var testLogger = logger.NewNopLogger()

// envelope is the decoded response body
type envelope struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
	Error      string          `json:"error"`
	Pagination struct {
		Page     int   `json:"page"`
		PageSize int   `json:"page_size"`
		Total    int64 `json:"total"`
	} `json:"pagination"`
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.Session())
	return r
}

func doRequest(t *testing.T, r http.Handler, method, path string, body io.Reader, role models.Role) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if role != "" {
		req.Header.Set(middleware.ActorUsernameHeader, "tester")
		req.Header.Set(middleware.ActorRoleHeader, string(role))
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func jsonBody(t *testing.T, v interface{}) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return strings.NewReader(string(b))
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return env
}

// stubPrefs remembers page sizes in memory
type stubPrefs struct {
	sizes map[string]int
}

func newStubPrefs() *stubPrefs {
	return &stubPrefs{sizes: make(map[string]int)}
}

func (p *stubPrefs) PageSize(actor, page string) int {
	if n, ok := p.sizes[actor+"/"+page]; ok {
		return n
	}
	return listview.DefaultPageSize
}

func (p *stubPrefs) SetPageSize(actor, page string, size int) error {
	if !listview.ValidPageSize(size) {
		return service.ErrInvalidPageSize
	}
	p.sizes[actor+"/"+page] = size
	return nil
}
