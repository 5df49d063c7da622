package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opportune-web/internal/model"
)

func TestClient_BearerInjection(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(model.User{ID: 1})
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.Profile(context.Background(), "tok-123")
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestClient_NoBearerWhenLoggedOut(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode([]model.JobPost{})
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.ListJobs(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestClient_StatusSentinels(t *testing.T) {
	cases := []struct {
		status int
		want   error
	}{
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusNotFound, ErrNotFound},
	}

	for _, tc := range cases {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
			_, _ = w.Write([]byte(`{"error":"nope"}`))
		}))

		c := New(srv.URL)
		_, err := c.Profile(context.Background(), "tok")
		assert.ErrorIs(t, err, tc.want, "status %d", tc.status)

		var se *StatusError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, tc.status, se.Code)
		assert.Equal(t, "nope", se.Message)

		srv.Close()
	}
}

func TestClient_GenericStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message":"database is down"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.Profile(context.Background(), "tok")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrUnauthorized))

	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusInternalServerError, se.Code)
	assert.Contains(t, se.Message, "database is down")
}

func TestClient_DefaultBaseURL(t *testing.T) {
	t.Setenv("OPPORTUNE_API_URL", "")
	assert.Equal(t, DefaultBaseURL, New("").BaseURL())

	t.Setenv("OPPORTUNE_API_URL", "http://backend:9999/api/")
	assert.Equal(t, "http://backend:9999/api", New("").BaseURL())
}
