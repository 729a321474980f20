// Package session carries the caller's identity explicitly through services
// instead of keeping it in package-level state.
package session

import (
	"strings"

	"memorial-park-svc/internal/models"
)

// Session identifies who is acting on behalf of a request
type Session struct {
	Actor string
	Role  models.Role
	Token string
}

// Anonymous reports whether no actor was supplied
func (s Session) Anonymous() bool {
	return strings.TrimSpace(s.Actor) == ""
}

// IsStaff reports whether the session may use back-office pages
func (s Session) IsStaff() bool {
	switch s.Role {
	case models.RoleAdmin, models.RoleStaff, models.RoleCashier:
		return true
	}
	return false
}

// Background builds the session used by jobs that run without a caller
func Background(actor, serviceToken string) Session {
	if actor == "" {
		actor = "system"
	}
	return Session{Actor: actor, Role: models.RoleAdmin, Token: serviceToken}
}
