// Package session centralizes the bearer-token lifecycle. No other package
// reads or writes the token; controllers go through the Manager so a 401
// from any call clears exactly one place.
package session

import (
	"context"
	"errors"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"opportune-web/internal/api"
	"opportune-web/internal/model"
)

// CookieName is the browser cookie carrying the session identifier.
const CookieName = "opportune_session"

// ErrNoSession is returned when the session id is unknown or holds no token.
var ErrNoSession = errors.New("no active session")

// Session is the per-browser state: the backend bearer token and the cached
// user record it belongs to.
type Session struct {
	Token string
	User  model.User
}

// Manager owns every live session. Tab-wide mutable state in the original
// lives here instead, keyed by a cookie; access is guarded by a RWMutex so
// concurrent 401 handling stays idempotent.
type Manager struct {
	api *api.Client

	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewManager creates an empty session manager backed by the given API client.
func NewManager(client *api.Client) *Manager {
	return &Manager{
		api:      client,
		sessions: make(map[string]*Session),
	}
}

// SessionID returns the request's session id, issuing a fresh cookie when
// none is present. The id is random and carries no claims; all state stays
// server-side.
func (m *Manager) SessionID(c *gin.Context) string {
	if sid, err := c.Cookie(CookieName); err == nil && sid != "" {
		return sid
	}
	sid := uuid.NewString()
	c.SetCookie(CookieName, sid, int((30 * 24 * time.Hour).Seconds()), "/", "", false, true)
	return sid
}

// Renew issues a fresh session id regardless of what the browser sent,
// replacing the cookie. Called when a session transitions to logged-in so
// a cookie value planted before authentication never identifies the
// authenticated session.
func (m *Manager) Renew(c *gin.Context) string {
	sid := uuid.NewString()
	c.SetCookie(CookieName, sid, int((30 * 24 * time.Hour).Seconds()), "/", "", false, true)
	return sid
}

// Get returns a copy of the session for sid, or ErrNoSession.
func (m *Manager) Get(sid string) (Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[sid]
	if !ok || s.Token == "" {
		return Session{}, ErrNoSession
	}
	return *s, nil
}

// Login persists the token and the user from the login payload, then
// re-fetches the full profile to reconcile fields the login response
// omitted. A profile-fetch failure keeps the partial user rather than
// failing the login.
func (m *Manager) Login(ctx context.Context, sid string, auth model.AuthResponse) {
	m.mu.Lock()
	m.sessions[sid] = &Session{Token: auth.Token, User: auth.User}
	m.mu.Unlock()

	profile, err := m.api.Profile(ctx, auth.Token)
	if err != nil {
		log.Printf("profile fetch after login failed, keeping login payload: %v", err)
		return
	}
	m.UpdateUser(sid, profile)
}

// Logout drops the session. No backend call is made; the token simply
// stops being used.
func (m *Manager) Logout(sid string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, sid)
}

// UpdateUser replaces the cached user record, used after profile edits and
// after the authoritative profile fetch.
func (m *Manager) UpdateUser(sid string, user model.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[sid]; ok {
		s.User = user
	}
}

// Check validates an existing session. An unverified parse of the JWT
// expiry short-circuits the obvious case without a network call; otherwise
// the profile fetch is authoritative. Invalid sessions are cleared.
func (m *Manager) Check(ctx context.Context, sid string) (Session, error) {
	s, err := m.Get(sid)
	if err != nil {
		return Session{}, err
	}

	if tokenExpired(s.Token) {
		m.Logout(sid)
		return Session{}, ErrNoSession
	}

	profile, err := m.api.Profile(ctx, s.Token)
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			m.Logout(sid)
			return Session{}, ErrNoSession
		}
		// Backend trouble is not a reason to log the user out.
		return s, nil
	}

	m.UpdateUser(sid, profile)
	s.User = profile
	return s, nil
}

// HandleUnauthorized clears the session and redirects to the login page.
// Called for any 401 regardless of originating page; repeated calls for
// concurrent 401s are harmless.
func (m *Manager) HandleUnauthorized(c *gin.Context, sid string) {
	m.Logout(sid)
	c.Redirect(http.StatusFound, "/login")
	c.Abort()
}

// tokenExpired does an unverified claims parse to read exp. The signing
// key lives in the backend, so signature verification is impossible here;
// the profile fetch remains the real check.
func tokenExpired(token string) bool {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return false
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return claims.ExpiresAt.Before(time.Now())
}
