package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opportune-web/internal/api"
	"opportune-web/internal/model"
	"opportune-web/internal/savedjobs"
	"opportune-web/internal/session"
	"opportune-web/internal/testutil"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

func newTestApp(t *testing.T) (*Server, *testutil.StubBackend, http.Handler) {
	t.Helper()

	backend := testutil.NewStubBackend()
	t.Cleanup(backend.Close)

	saved, err := savedjobs.Open(filepath.Join(t.TempDir(), "saved.db"))
	require.NoError(t, err)

	client := api.New(backend.URL())
	s := &Server{
		API:      client,
		Sessions: session.NewManager(client),
		Saved:    saved,
	}
	return s, backend, s.RegisterRoutes()
}

// loginAs seeds a session for the given role and stubs the profile
// endpoint so session checks pass.
func loginAs(t *testing.T, s *Server, backend *testutil.StubBackend, role string) string {
	t.Helper()

	user := model.User{ID: 7, Username: "casey", Role: role, Enabled: true}
	backend.On(http.MethodGet, "/auth/profile", http.StatusOK, user)

	sid := "sid-" + role
	s.Sessions.Login(context.Background(), sid, model.AuthResponse{Token: "tok-" + role, User: user})
	return sid
}

func TestProtectedPage_WrongRoleRendersAccessDenied(t *testing.T) {
	cases := []struct {
		role      string
		page      string
		dataPaths []string
	}{
		{model.RoleUser, "/admin", []string{"/admin/overview", "/admin/users"}},
		{model.RoleUser, "/hr-dashboard", []string{"/jobs/my-jobs"}},
		{model.RoleHR, "/applications", []string{"/applications/my"}},
		{model.RoleHR, "/files", []string{"/files/my"}},
		{model.RoleAdmin, "/candidates", []string{"/resume-analytics/search"}},
	}

	for _, tc := range cases {
		s, backend, r := newTestApp(t)
		sid := loginAs(t, s, backend, tc.role)

		rec := testutil.GetPage(r, tc.page, sid)

		assert.Equal(t, http.StatusForbidden, rec.Code, "%s as %s", tc.page, tc.role)
		assert.Contains(t, rec.Body.String(), "Access denied")
		for _, path := range tc.dataPaths {
			assert.Empty(t, backend.CallsTo(path), "no data fetch for %s as %s", tc.page, tc.role)
		}
	}
}

func TestUnauthorizedResponse_ClearsSessionAndRedirects(t *testing.T) {
	s, backend, r := newTestApp(t)
	sid := loginAs(t, s, backend, model.RoleUser)

	backend.On(http.MethodGet, "/applications/my", http.StatusUnauthorized, nil)

	rec := testutil.GetPage(r, "/applications", sid)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))

	_, err := s.Sessions.Get(sid)
	assert.ErrorIs(t, err, session.ErrNoSession)
}

func TestUpload_RejectsBadExtensionWithoutNetworkCall(t *testing.T) {
	s, backend, r := newTestApp(t)
	sid := loginAs(t, s, backend, model.RoleUser)

	rec := testutil.PostMultipart(r, "/files/upload", sid, "resume", "script.exe", []byte("content"))

	assert.Equal(t, http.StatusFound, rec.Code)
	loc := rec.Header().Get("Location")
	assert.Contains(t, loc, "/files?error=")
	assert.Contains(t, loc, "not+allowed")
	assert.Empty(t, backend.CallsTo("/files/upload"))
}

func TestUpload_ForwardsValidFile(t *testing.T) {
	s, backend, r := newTestApp(t)
	sid := loginAs(t, s, backend, model.RoleUser)

	backend.On(http.MethodPost, "/files/upload", http.StatusCreated, model.FileUpload{ID: 3, FileName: "resume.pdf"})

	rec := testutil.PostMultipart(r, "/files/upload", sid, "resume", "resume.pdf", []byte("%PDF-1.4"))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Contains(t, rec.Header().Get("Location"), "flash=")
	require.Len(t, backend.CallsTo("/files/upload"), 1)
}

func TestWithdraw_CallsBackendAndRedirects(t *testing.T) {
	s, backend, r := newTestApp(t)
	sid := loginAs(t, s, backend, model.RoleUser)

	backend.On(http.MethodDelete, "/applications/5", http.StatusOK, nil)

	rec := testutil.PostForm(r, "/applications/5/withdraw", sid, url.Values{})

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Contains(t, rec.Header().Get("Location"), "/applications?flash=")
	require.Len(t, backend.CallsTo("/applications/5"), 1)
	assert.Equal(t, http.MethodDelete, backend.CallsTo("/applications/5")[0].Method)
}

func TestApplicationsPage_ListsOwnApplications(t *testing.T) {
	s, backend, r := newTestApp(t)
	sid := loginAs(t, s, backend, model.RoleUser)

	backend.On(http.MethodGet, "/applications/my", http.StatusOK, []model.Application{
		{ID: 1, JobTitle: "Backend Engineer", Status: model.StatusApplied, AppliedAt: time.Now()},
		{ID: 2, JobTitle: "SRE", Status: model.StatusInterview, AppliedAt: time.Now()},
	})

	rec := testutil.GetPage(r, "/applications", sid)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Backend Engineer")
	// Withdraw is offered only while status is APPLIED.
	assert.Contains(t, body, "/applications/1/withdraw")
	assert.NotContains(t, body, "/applications/2/withdraw")
}

func TestJobsSearch_QueryOnlySendsFullTextSearch(t *testing.T) {
	_, backend, r := newTestApp(t)

	backend.On(http.MethodPost, "/jobs/search", http.StatusOK, model.JobPage{
		Content:       []model.JobPost{{ID: 1, Title: "React Developer"}},
		TotalPages:    1,
		TotalElements: 1,
	})

	rec := testutil.GetPage(r, "/jobs?q=react", "")
	require.Equal(t, http.StatusOK, rec.Code)

	calls := backend.CallsTo("/jobs/search")
	require.Len(t, calls, 1)

	var req model.JobSearchRequest
	require.NoError(t, json.Unmarshal(calls[0].Body, &req))
	assert.True(t, req.FullTextSearch)
	assert.Equal(t, "react", req.Keyword)
	assert.Empty(t, req.Location)
	assert.Zero(t, req.MinExp)
	assert.Zero(t, req.MinSalary)
}

func TestJobs_ClearFiltersRestoresUnfilteredListing(t *testing.T) {
	_, backend, r := newTestApp(t)

	backend.On(http.MethodGet, "/jobs", http.StatusOK, []model.JobPost{
		{ID: 1, Title: "Backend Engineer"},
		{ID: 2, Title: "Data Engineer"},
	})

	rec := testutil.GetPage(r, "/jobs", "")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Len(t, backend.CallsTo("/jobs"), 1)
	assert.Empty(t, backend.CallsTo("/jobs/search"))
	assert.Contains(t, rec.Body.String(), "Data Engineer")
}

func TestCreateInvite_HRRoleWithoutCompanyIsAccepted(t *testing.T) {
	s, backend, r := newTestApp(t)
	sid := loginAs(t, s, backend, model.RoleAdmin)

	backend.On(http.MethodPost, "/invites", http.StatusCreated, model.Invite{ID: 1, Email: "new@corp.example", Role: model.RoleHR})

	rec := testutil.PostForm(r, "/admin/invites", sid, url.Values{
		"email": {"new@corp.example"},
		"role":  {model.RoleHR},
	})

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Contains(t, rec.Header().Get("Location"), "flash=")

	calls := backend.CallsTo("/invites")
	require.Len(t, calls, 1)

	var req model.CreateInvite
	require.NoError(t, json.Unmarshal(calls[0].Body, &req))
	assert.Equal(t, model.RoleHR, req.Role)
	assert.Empty(t, req.CompanyName)
}

func TestLogin_BadCredentialsStaysInline(t *testing.T) {
	_, backend, r := newTestApp(t)

	backend.On(http.MethodPost, "/auth/login", http.StatusUnauthorized, map[string]string{"error": "bad credentials"})

	rec := testutil.PostForm(r, "/login", "", url.Values{
		"username": {"casey"},
		"password": {"wrong-password"},
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Username or password is incorrect")
}

func TestLogin_BackendOutageShowsGenericMessage(t *testing.T) {
	_, backend, r := newTestApp(t)

	backend.On(http.MethodPost, "/auth/login", http.StatusInternalServerError, map[string]string{"message": "boom"})

	rec := testutil.PostForm(r, "/login", "", url.Values{
		"username": {"casey"},
		"password": {"correct-password"},
	})

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "Something went wrong")
	assert.NotContains(t, rec.Body.String(), "Username or password is incorrect")
}

func TestLogin_RotatesSessionID(t *testing.T) {
	s, backend, r := newTestApp(t)

	user := model.User{ID: 7, Username: "casey", Role: model.RoleUser}
	backend.On(http.MethodPost, "/auth/login", http.StatusOK, model.AuthResponse{Token: "tok", User: user})
	backend.On(http.MethodGet, "/auth/profile", http.StatusOK, user)

	// A cookie planted before authentication must not identify the
	// logged-in session.
	rec := testutil.PostForm(r, "/login", "planted-sid", url.Values{
		"username": {"casey"},
		"password": {"correct-password"},
	})

	assert.Equal(t, http.StatusFound, rec.Code)

	var sid string
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == session.CookieName {
			sid = ck.Value
		}
	}
	require.NotEmpty(t, sid)
	assert.NotEqual(t, "planted-sid", sid)

	_, err := s.Sessions.Get("planted-sid")
	assert.ErrorIs(t, err, session.ErrNoSession)
	_, err = s.Sessions.Get(sid)
	assert.NoError(t, err)
}

func TestLogin_SuccessStartsSession(t *testing.T) {
	s, backend, r := newTestApp(t)

	user := model.User{ID: 7, Username: "casey", Role: model.RoleUser}
	backend.On(http.MethodPost, "/auth/login", http.StatusOK, model.AuthResponse{Token: "tok", User: user})
	backend.On(http.MethodGet, "/auth/profile", http.StatusOK, user)

	rec := testutil.PostForm(r, "/login", "", url.Values{
		"username": {"casey"},
		"password": {"correct-password"},
	})

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))

	var sid string
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == session.CookieName {
			sid = ck.Value
		}
	}
	require.NotEmpty(t, sid)

	sess, err := s.Sessions.Get(sid)
	require.NoError(t, err)
	assert.Equal(t, "tok", sess.Token)
}

func TestInvitePage_ExpiredInvite(t *testing.T) {
	_, backend, r := newTestApp(t)

	backend.On(http.MethodGet, "/invites/by-token", http.StatusOK, model.Invite{
		ID:        1,
		Email:     "new@corp.example",
		Role:      model.RoleHR,
		Status:    model.InvitePending,
		ExpiresAt: time.Now().Add(-time.Hour),
	})

	rec := testutil.GetPage(r, "/invite/some-token", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "expired")
	// The invite page renders without the shared navigation header.
	assert.NotContains(t, rec.Body.String(), `class="topnav"`)
}

func TestApplicationDetail_UnanalyzedResumeIsNotAnError(t *testing.T) {
	s, backend, r := newTestApp(t)
	sid := loginAs(t, s, backend, model.RoleHR)

	backend.On(http.MethodGet, "/applications/9", http.StatusOK, model.Application{
		ID:       9,
		JobTitle: "Backend Engineer",
		Status:   model.StatusApplied,
	})
	// No stub for the resume-analytics path: it returns 404.

	rec := testutil.GetPage(r, "/applications/9", sid)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Not yet analyzed")
}

func TestStatusUpdate_SubmitsSelectedStatus(t *testing.T) {
	s, backend, r := newTestApp(t)
	sid := loginAs(t, s, backend, model.RoleHR)

	backend.On(http.MethodPut, "/applications/9/status", http.StatusOK, model.Application{ID: 9, Status: model.StatusHired})

	rec := testutil.PostForm(r, "/applications/9/status", sid, url.Values{"status": {model.StatusHired}})

	assert.Equal(t, http.StatusFound, rec.Code)

	calls := backend.CallsTo("/applications/9/status")
	require.Len(t, calls, 1)
	assert.Contains(t, string(calls[0].Body), model.StatusHired)
}

func TestJobDetail_ForbiddenGetsItsOwnStatus(t *testing.T) {
	_, backend, r := newTestApp(t)

	backend.On(http.MethodGet, "/jobs/4", http.StatusForbidden, map[string]string{"error": "forbidden"})

	rec := testutil.GetPage(r, "/jobs/4", "")

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "permission")
}

func TestApplicationDetail_ForbiddenGetsItsOwnStatus(t *testing.T) {
	s, backend, r := newTestApp(t)
	sid := loginAs(t, s, backend, model.RoleUser)

	backend.On(http.MethodGet, "/applications/9", http.StatusForbidden, map[string]string{"error": "forbidden"})

	rec := testutil.GetPage(r, "/applications/9", sid)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "permission")
}

func TestResponses_CarryNoStoreHeader(t *testing.T) {
	_, _, r := newTestApp(t)

	rec := testutil.GetPage(r, "/login", "")

	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}

func TestRequestAccess_SubmitsForm(t *testing.T) {
	_, backend, r := newTestApp(t)

	backend.On(http.MethodPost, "/access-requests", http.StatusCreated, model.AccessRequest{ID: 1})

	rec := testutil.PostForm(r, "/request-access", "", url.Values{
		"name":  {"Casey"},
		"email": {"casey@corp.example"},
		"role":  {model.RoleHR},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Request submitted")
	require.Len(t, backend.CallsTo("/access-requests"), 1)
}
