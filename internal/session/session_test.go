package session_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opportune-web/internal/api"
	"opportune-web/internal/model"
	"opportune-web/internal/session"
	"opportune-web/internal/testutil"
)

func newManager(t *testing.T) (*session.Manager, *testutil.StubBackend) {
	t.Helper()
	backend := testutil.NewStubBackend()
	t.Cleanup(backend.Close)
	return session.NewManager(api.New(backend.URL())), backend
}

func TestLogin_ProfileFetchIsAuthoritative(t *testing.T) {
	sm, backend := newManager(t)
	backend.On(http.MethodGet, "/auth/profile", http.StatusOK, model.User{
		ID:    7,
		Phone: "555-0100",
		Email: "full@example.com",
		Role:  model.RoleUser,
	})

	// The login payload omits the phone number.
	sm.Login(context.Background(), "sid-1", model.AuthResponse{
		Token: "tok",
		User:  model.User{ID: 7, Email: "partial@example.com"},
	})

	s, err := sm.Get("sid-1")
	require.NoError(t, err)
	assert.Equal(t, "555-0100", s.User.Phone)
	assert.Equal(t, "full@example.com", s.User.Email)
}

func TestLogin_KeepsPartialUserOnProfileFailure(t *testing.T) {
	sm, backend := newManager(t)
	backend.On(http.MethodGet, "/auth/profile", http.StatusInternalServerError, nil)

	sm.Login(context.Background(), "sid-1", model.AuthResponse{
		Token: "tok",
		User:  model.User{ID: 7, Email: "partial@example.com"},
	})

	s, err := sm.Get("sid-1")
	require.NoError(t, err)
	assert.Equal(t, "partial@example.com", s.User.Email)
	assert.Equal(t, "tok", s.Token)
}

func TestCheck_ClearsSessionOnUnauthorized(t *testing.T) {
	sm, backend := newManager(t)
	backend.On(http.MethodGet, "/auth/profile", http.StatusOK, model.User{ID: 7})
	sm.Login(context.Background(), "sid-1", model.AuthResponse{Token: "tok", User: model.User{ID: 7}})

	// Token has gone stale server-side.
	backend.On(http.MethodGet, "/auth/profile", http.StatusUnauthorized, nil)

	_, err := sm.Check(context.Background(), "sid-1")
	assert.ErrorIs(t, err, session.ErrNoSession)

	_, err = sm.Get("sid-1")
	assert.ErrorIs(t, err, session.ErrNoSession)
}

func TestCheck_KeepsSessionOnBackendTrouble(t *testing.T) {
	sm, backend := newManager(t)
	backend.On(http.MethodGet, "/auth/profile", http.StatusOK, model.User{ID: 7, Role: model.RoleUser})
	sm.Login(context.Background(), "sid-1", model.AuthResponse{Token: "tok", User: model.User{ID: 7}})

	backend.On(http.MethodGet, "/auth/profile", http.StatusBadGateway, nil)

	s, err := sm.Check(context.Background(), "sid-1")
	require.NoError(t, err)
	assert.Equal(t, "tok", s.Token)
}

func TestCheck_NoSession(t *testing.T) {
	sm, _ := newManager(t)
	_, err := sm.Check(context.Background(), "unknown")
	assert.ErrorIs(t, err, session.ErrNoSession)
}

func TestLogout_Idempotent(t *testing.T) {
	sm, backend := newManager(t)
	backend.On(http.MethodGet, "/auth/profile", http.StatusOK, model.User{ID: 7})
	sm.Login(context.Background(), "sid-1", model.AuthResponse{Token: "tok", User: model.User{ID: 7}})

	sm.Logout("sid-1")
	sm.Logout("sid-1")

	_, err := sm.Get("sid-1")
	assert.ErrorIs(t, err, session.ErrNoSession)
}

func TestUpdateUser_ReplacesCachedRecord(t *testing.T) {
	sm, backend := newManager(t)
	backend.On(http.MethodGet, "/auth/profile", http.StatusOK, model.User{ID: 7, FirstName: "Old"})
	sm.Login(context.Background(), "sid-1", model.AuthResponse{Token: "tok", User: model.User{ID: 7}})

	sm.UpdateUser("sid-1", model.User{ID: 7, FirstName: "New"})

	s, err := sm.Get("sid-1")
	require.NoError(t, err)
	assert.Equal(t, "New", s.User.FirstName)
}
