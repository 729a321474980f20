package service

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"memorial-park-svc/internal/apiclient"
	"memorial-park-svc/internal/config"
	"memorial-park-svc/internal/models"
	"memorial-park-svc/internal/session"
	"memorial-park-svc/pkg/logger"
)

var (
	staffSession    = session.Session{Actor: "staff01", Role: models.RoleStaff, Token: "tok"}
	customerSession = session.Session{Actor: "jdelacruz", Role: models.RoleCustomer, Token: "tok"}

	testConsole = config.ConsoleConfig{
		CompanyName:       "Memorial Park",
		RootAdminUsername: "admin",
		RootAdminEmail:    "admin@memorialpark.com",
	}
)

// fakeRemote is an in-process stand-in for the remote API
type fakeRemote struct {
	mux *http.ServeMux

	mu     sync.Mutex
	hits   map[string]int
	bodies map[string][]byte
}

func newFakeRemote(t *testing.T) (*fakeRemote, *apiclient.Client) {
	t.Helper()
	f := &fakeRemote{
		mux:    http.NewServeMux(),
		hits:   make(map[string]int),
		bodies: make(map[string][]byte),
	}
	srv := httptest.NewServer(f.mux)
	t.Cleanup(srv.Close)

	client := apiclient.NewClient(config.RemoteAPIConfig{
		BaseURL:     srv.URL,
		Timeout:     5 * time.Second,
		ActorHeader: "X-Actor",
	}, logger.NewNopLogger())
	return f, client
}

// reply answers pattern with the success envelope around data
func (f *fakeRemote) reply(pattern string, data interface{}) {
	f.replyStatus(pattern, http.StatusOK, data)
}

func (f *fakeRemote) replyStatus(pattern string, status int, data interface{}) {
	f.mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
		f.record(pattern, r)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status >= http.StatusBadRequest {
			_ = json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "message": data})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "data": data})
	})
}

func writeEnvelope(w http.ResponseWriter, data interface{}) {
	_ = json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "data": data})
}

func (f *fakeRemote) record(pattern string, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	f.mu.Lock()
	f.hits[pattern]++
	f.bodies[pattern] = body
	f.mu.Unlock()
}

func (f *fakeRemote) hitCount(pattern string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hits[pattern]
}

func (f *fakeRemote) lastBody(pattern string, out interface{}) error {
	f.mu.Lock()
	body := f.bodies[pattern]
	f.mu.Unlock()
	return json.Unmarshal(body, out)
}

// memPendingRepo is an in-memory PendingCheckoutRepository
type memPendingRepo struct {
	mu   sync.Mutex
	rows []models.PendingCheckout
}

func (r *memPendingRepo) Save(pc *models.PendingCheckout) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, row := range r.rows {
		if row.SessionID == pc.SessionID {
			return nil
		}
	}
	r.rows = append(r.rows, *pc)
	return nil
}

func (r *memPendingRepo) GetBySessionID(sessionID string) (*models.PendingCheckout, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, row := range r.rows {
		if row.SessionID == sessionID {
			out := row
			return &out, nil
		}
	}
	return nil, nil
}

func (r *memPendingRepo) List() ([]models.PendingCheckout, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.PendingCheckout(nil), r.rows...), nil
}

func (r *memPendingRepo) Delete(sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.rows[:0]
	for _, row := range r.rows {
		if row.SessionID != sessionID {
			kept = append(kept, row)
		}
	}
	r.rows = kept
	return nil
}

func (r *memPendingRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rows)
}
