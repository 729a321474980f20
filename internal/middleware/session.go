package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"memorial-park-svc/internal/models"
	"memorial-park-svc/internal/session"
	"memorial-park-svc/pkg/utils"
)

// Headers the console identifies its user with
const (
	ActorUsernameHeader = "X-Actor-Username"
	ActorRoleHeader     = "X-Actor-Role"
)

const sessionKey = "session"

// Session reads the caller's identity from the request headers. The remote
// API authenticates the forwarded bearer token; nothing is verified here.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := session.Session{
			Actor: strings.TrimSpace(c.GetHeader(ActorUsernameHeader)),
			Role:  models.Role(strings.ToLower(strings.TrimSpace(c.GetHeader(ActorRoleHeader)))),
		}
		if auth := c.GetHeader("Authorization"); len(auth) > 7 && strings.EqualFold(auth[:7], "bearer ") {
			sess.Token = strings.TrimSpace(auth[7:])
		}
		c.Set(sessionKey, sess)
		c.Next()
	}
}

// GetSession returns the session set by Session, or an empty one
func GetSession(c *gin.Context) session.Session {
	if v, ok := c.Get(sessionKey); ok {
		if sess, ok := v.(session.Session); ok {
			return sess
		}
	}
	return session.Session{}
}

// RequireActor rejects requests that do not name an actor
func RequireActor() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetSession(c).Anonymous() {
			utils.UnauthorizedResponse(c, "Please sign in to continue")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireStaff rejects customers from back-office routes
func RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !GetSession(c).IsStaff() {
			utils.ForbiddenResponse(c, "You do not have access to this page")
			c.Abort()
			return
		}
		c.Next()
	}
}
