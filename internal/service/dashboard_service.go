package service

import (
	"sync"
	"time"

	"memorial-park-svc/pkg/logger"

	"github.com/google/uuid"
)

// DefaultViewTTL is how long a dashboard view stays registered without a heartbeat
const DefaultViewTTL = 5 * time.Minute

// DashboardView is a console page that consumes payment data
type DashboardView struct {
	ID           string    `json:"id"`
	Actor        string    `json:"actor"`
	Page         string    `json:"page"`
	RegisteredAt time.Time `json:"registered_at"`
	LastSeen     time.Time `json:"last_seen"`
}

// DashboardService tracks which payment views are open so background
// reconciliation only runs while someone is looking
type DashboardService interface {
	RegisterView(actor, page string) DashboardView
	Heartbeat(id string) bool
	UnregisterView(id string) bool
	ActiveViews() []DashboardView
	HasActiveViews() bool
}

// dashboardService implements DashboardService interface
type dashboardService struct {
	ttl    time.Duration
	now    func() time.Time
	logger *logger.Logger

	mu    sync.Mutex
	views map[string]DashboardView
}

// NewDashboardService creates a new dashboard view tracker
func NewDashboardService(ttl time.Duration, logger *logger.Logger) DashboardService {
	if ttl <= 0 {
		ttl = DefaultViewTTL
	}
	return &dashboardService{
		ttl:    ttl,
		now:    time.Now,
		logger: logger,
		views:  make(map[string]DashboardView),
	}
}

func (s *dashboardService) RegisterView(actor, page string) DashboardView {
	now := s.now()
	v := DashboardView{
		ID:           uuid.NewString(),
		Actor:        actor,
		Page:         page,
		RegisteredAt: now,
		LastSeen:     now,
	}

	s.mu.Lock()
	s.views[v.ID] = v
	count := len(s.views)
	s.mu.Unlock()

	s.logger.WithFields(map[string]interface{}{
		"view_id": v.ID,
		"actor":   actor,
		"page":    page,
		"active":  count,
	}).Info("Dashboard view registered")
	return v
}

func (s *dashboardService) Heartbeat(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expireLocked()

	v, ok := s.views[id]
	if !ok {
		return false
	}
	v.LastSeen = s.now()
	s.views[id] = v
	return true
}

func (s *dashboardService) UnregisterView(id string) bool {
	s.mu.Lock()
	_, ok := s.views[id]
	delete(s.views, id)
	s.mu.Unlock()

	if ok {
		s.logger.WithField("view_id", id).Info("Dashboard view unregistered")
	}
	return ok
}

func (s *dashboardService) ActiveViews() []DashboardView {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expireLocked()

	out := make([]DashboardView, 0, len(s.views))
	for _, v := range s.views {
		out = append(out, v)
	}
	return out
}

func (s *dashboardService) HasActiveViews() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expireLocked()
	return len(s.views) > 0
}

// expireLocked drops views whose browser stopped sending heartbeats
func (s *dashboardService) expireLocked() {
	cutoff := s.now().Add(-s.ttl)
	for id, v := range s.views {
		if v.LastSeen.Before(cutoff) {
			delete(s.views, id)
		}
	}
}
