// Package middleware contains the request gates shared by the page routes.
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"opportune-web/internal/model"
	"opportune-web/internal/session"
)

const (
	// CtxSessionID is the context key holding the browser session id.
	CtxSessionID = "sid"
	// CtxUser is the context key holding the authenticated user.
	CtxUser = "user"
	// CtxToken is the context key holding the backend bearer token.
	CtxToken = "token"
)

// RequireSession validates the browser session before a protected page
// loads. Session validation happens once here; handlers read the user and
// token from the context. Missing or invalid sessions redirect to the
// login page.
func RequireSession(sm *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid := sm.SessionID(c)
		c.Set(CtxSessionID, sid)

		s, err := sm.Check(c.Request.Context(), sid)
		if err != nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Set(CtxUser, s.User)
		c.Set(CtxToken, s.Token)
		c.Next()
	}
}

// ExtractUser returns the user set by RequireSession, or a zero user when
// the route is public and nobody is logged in.
func ExtractUser(c *gin.Context) model.User {
	if u, ok := c.Get(CtxUser); ok {
		if user, ok := u.(model.User); ok {
			return user
		}
	}
	return model.User{}
}

// ExtractToken returns the bearer token set by RequireSession, or "".
func ExtractToken(c *gin.Context) string {
	return c.GetString(CtxToken)
}

// ExtractSessionID returns the session id set by RequireSession or
// OptionalSession.
func ExtractSessionID(c *gin.Context) string {
	return c.GetString(CtxSessionID)
}

// OptionalSession loads the session when one exists but never redirects.
// Used by public pages that personalize for logged-in users.
func OptionalSession(sm *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid := sm.SessionID(c)
		c.Set(CtxSessionID, sid)

		if s, err := sm.Get(sid); err == nil {
			c.Set(CtxUser, s.User)
			c.Set(CtxToken, s.Token)
		}
		c.Next()
	}
}
