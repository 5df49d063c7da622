// Package testutil provides utility functions for testing HTTP handlers.
package testutil

import (
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"

	"opportune-web/internal/session"
)

// Call is one request the stub backend received.
type Call struct {
	Method        string
	Path          string
	Query         string
	Authorization string
	Body          []byte
}

type stubResponse struct {
	status int
	body   interface{}
}

// StubBackend is a canned Opportune backend. It records every call so
// tests can assert what was (or was not) sent over the network.
type StubBackend struct {
	Server *httptest.Server

	mu        sync.Mutex
	calls     []Call
	responses map[string]stubResponse
}

// NewStubBackend starts a stub backend. Unstubbed paths return 404.
func NewStubBackend() *StubBackend {
	b := &StubBackend{
		responses: make(map[string]stubResponse),
	}
	b.Server = httptest.NewServer(http.HandlerFunc(b.handle))
	return b
}

func (b *StubBackend) handle(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	b.mu.Lock()
	b.calls = append(b.calls, Call{
		Method:        r.Method,
		Path:          r.URL.Path,
		Query:         r.URL.RawQuery,
		Authorization: r.Header.Get("Authorization"),
		Body:          body,
	})
	resp, ok := b.responses[r.Method+" "+r.URL.Path]
	b.mu.Unlock()

	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"not found"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.status)
	if resp.body != nil {
		_ = json.NewEncoder(w).Encode(resp.body)
	}
}

// On stubs one method+path with a status and JSON body.
func (b *StubBackend) On(method, path string, status int, body interface{}) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.responses[method+" "+path] = stubResponse{status: status, body: body}
}

// Calls returns a copy of everything received so far.
func (b *StubBackend) Calls() []Call {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Call(nil), b.calls...)
}

// CallCount reports how many backend requests were made.
func (b *StubBackend) CallCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.calls)
}

// CallsTo returns the calls for one path.
func (b *StubBackend) CallsTo(path string) []Call {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []Call
	for _, c := range b.calls {
		if c.Path == path {
			out = append(out, c)
		}
	}
	return out
}

// URL is the stub's base URL, passed to api.New.
func (b *StubBackend) URL() string {
	return b.Server.URL
}

// Close shuts the stub down.
func (b *StubBackend) Close() {
	b.Server.Close()
}

// GetPage issues a GET carrying the session cookie.
func GetPage(r http.Handler, target, sid string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, target, nil)
	if sid != "" {
		req.AddCookie(&http.Cookie{Name: session.CookieName, Value: sid})
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

// PostMultipart issues a multipart POST with one file field, carrying the
// session cookie.
func PostMultipart(r http.Handler, target, sid, field, filename string, content []byte) *httptest.ResponseRecorder {
	var buf strings.Builder
	mw := multipart.NewWriter(&buf)
	part, _ := mw.CreateFormFile(field, filename)
	_, _ = part.Write(content)
	_ = mw.Close()

	req, _ := http.NewRequest(http.MethodPost, target, strings.NewReader(buf.String()))
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if sid != "" {
		req.AddCookie(&http.Cookie{Name: session.CookieName, Value: sid})
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

// PostForm issues a form POST carrying the session cookie.
func PostForm(r http.Handler, target, sid string, form url.Values) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if sid != "" {
		req.AddCookie(&http.Cookie{Name: session.CookieName, Value: sid})
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}
