package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/chandan25sharma/portfolio/config"
	"github.com/chandan25sharma/portfolio/internal/jobs"
	"github.com/chandan25sharma/portfolio/internal/store"
	"github.com/chandan25sharma/portfolio/internal/views"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	admin    *Admin
	router   *gin.Engine
	visitors *store.VisitorRepository
	messages *store.MessageRepository
}

func setup(t *testing.T, opts ...Option) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := store.Open(filepath.Join(t.TempDir(), "admin.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	visitors := store.NewVisitorRepository(db)
	messages := store.NewMessageRepository(db)
	a := New(config.AdminConfig{Username: "owner", Password: "s3cret"}, visitors, messages,
		jobs.NewCleanup(visitors, 365*24*time.Hour), opts...)

	tmpl, err := views.Load()
	require.NoError(t, err)

	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	a.RegisterRoutes(r)

	return &testEnv{admin: a, router: r, visitors: visitors, messages: messages}
}

func (e *testEnv) do(t *testing.T, req *http.Request, authed bool) *httptest.ResponseRecorder {
	t.Helper()
	if authed {
		req.AddCookie(&http.Cookie{Name: cookieName, Value: e.admin.token})
	}
	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

func loginRequest(username, password string) *http.Request {
	form := url.Values{"username": {username}, "password": {password}}
	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestHashIP(t *testing.T) {
	a := New(config.AdminConfig{}, nil, nil, nil)
	h := a.HashIP("203.0.113.7")
	assert.Len(t, h, 16)
	assert.Equal(t, h, a.HashIP("203.0.113.7"))
	assert.NotEqual(t, h, a.HashIP("203.0.113.8"))
	assert.NotContains(t, h, "203")

	other := New(config.AdminConfig{}, nil, nil, nil)
	assert.NotEqual(t, h, other.HashIP("203.0.113.7"), "salt is per instance")
}

func TestDefaultCredentials(t *testing.T) {
	a := New(config.AdminConfig{}, nil, nil, nil)
	assert.True(t, a.validCredentials(defaultUsername, defaultPassword))
	assert.False(t, a.validCredentials(defaultUsername, "wrong"))
}

func TestLogin(t *testing.T) {
	e := setup(t)

	t.Run("login page", func(t *testing.T) {
		rr := e.do(t, httptest.NewRequest(http.MethodGet, "/admin/login", nil), false)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "Admin Login")
	})

	t.Run("bad credentials", func(t *testing.T) {
		rr := e.do(t, loginRequest("owner", "nope"), false)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Contains(t, rr.Body.String(), "Invalid credentials")
		assert.Empty(t, rr.Result().Cookies())
	})

	t.Run("good credentials", func(t *testing.T) {
		rr := e.do(t, loginRequest("owner", "s3cret"), false)
		assert.Equal(t, http.StatusFound, rr.Code)
		assert.Equal(t, "/admin/dashboard", rr.Header().Get("Location"))

		cookies := rr.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, cookieName, cookies[0].Name)
		assert.Equal(t, e.admin.token, cookies[0].Value)
		assert.Equal(t, "/admin", cookies[0].Path)
		assert.True(t, cookies[0].HttpOnly)
		assert.False(t, cookies[0].Secure)
	})

	t.Run("logout clears cookie", func(t *testing.T) {
		rr := e.do(t, httptest.NewRequest(http.MethodGet, "/admin/logout", nil), true)
		assert.Equal(t, http.StatusFound, rr.Code)
		cookies := rr.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Empty(t, cookies[0].Value)
		assert.Less(t, cookies[0].MaxAge, 0)
	})
}

func TestSecureCookie(t *testing.T) {
	e := setup(t, WithSecureCookie(true))

	rr := e.do(t, loginRequest("owner", "s3cret"), false)
	require.Equal(t, http.StatusFound, rr.Code)
	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.True(t, cookies[0].Secure)
	assert.True(t, cookies[0].HttpOnly)

	rr = e.do(t, httptest.NewRequest(http.MethodGet, "/admin/logout", nil), true)
	cookies = rr.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.True(t, cookies[0].Secure)
}

func TestAuthMiddleware(t *testing.T) {
	e := setup(t)

	for _, path := range []string{"/admin/dashboard", "/admin/api/stats", "/admin/visitors", "/admin/messages", "/admin/export/stats"} {
		t.Run(path, func(t *testing.T) {
			rr := e.do(t, httptest.NewRequest(http.MethodGet, path, nil), false)
			assert.Equal(t, http.StatusFound, rr.Code)
			assert.Equal(t, "/admin/login", rr.Header().Get("Location"))

			req := httptest.NewRequest(http.MethodGet, path, nil)
			req.AddCookie(&http.Cookie{Name: cookieName, Value: "forged"})
			rr = e.do(t, req, false)
			assert.Equal(t, http.StatusFound, rr.Code)
		})
	}
}

func TestDashboardAndStats(t *testing.T) {
	e := setup(t)
	ctx := context.Background()

	require.NoError(t, e.visitors.Record(ctx, store.Visit{HashedIP: "aaaa", Path: "/projects"}))
	require.NoError(t, e.visitors.Record(ctx, store.Visit{HashedIP: "aaaa", Path: "/"}))
	require.NoError(t, e.visitors.Record(ctx, store.Visit{HashedIP: "bbbb", Path: "/projects"}))
	require.NoError(t, e.messages.Create(ctx, &store.Message{Name: "Ada", Email: "ada@example.com", Subject: "Hi", Message: "Hello", Relay: "simulated", Status: store.MessageSent}))
	require.NoError(t, e.messages.Create(ctx, &store.Message{Name: "Bob", Email: "bob@example.com", Subject: "Hi", Message: "Hello", Relay: "emailjs", Status: store.MessageFailed, Error: "status 400"}))

	rr := e.do(t, httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil), true)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "/projects")
	assert.Contains(t, rr.Body.String(), "aaaa")

	rr = e.do(t, httptest.NewRequest(http.MethodGet, "/admin/api/stats", nil), true)
	require.Equal(t, http.StatusOK, rr.Code)

	var stats Stats
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &stats))
	assert.Equal(t, int64(3), stats.Visitors.TotalVisitors)
	assert.Equal(t, int64(2), stats.Visitors.UniqueVisitors)
	assert.Equal(t, int64(2), stats.Messages.Total)
	assert.Equal(t, int64(1), stats.Messages.Failed)
	require.NotEmpty(t, stats.Visitors.TopPaths)
	assert.Equal(t, "/projects", stats.Visitors.TopPaths[0].Path)
	assert.Len(t, stats.RecentVisitors, 3)

	rr = e.do(t, httptest.NewRequest(http.MethodGet, "/admin/export/stats", nil), true)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "attachment; filename=admin-stats.json", rr.Header().Get("Content-Disposition"))
}

func TestVisitorsAndMessages(t *testing.T) {
	e := setup(t)
	ctx := context.Background()

	require.NoError(t, e.visitors.Record(ctx, store.Visit{HashedIP: "cafe0123", Path: "/research", UserAgent: "curl/8"}))
	m := &store.Message{Name: "Ada", Email: "ada@example.com", Subject: "Engines", Message: "Hello", Relay: "simulated", Status: store.MessageSent}
	require.NoError(t, e.messages.Create(ctx, m))

	rr := e.do(t, httptest.NewRequest(http.MethodGet, "/admin/visitors", nil), true)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "cafe0123")
	assert.Contains(t, rr.Body.String(), "curl/8")

	rr = e.do(t, httptest.NewRequest(http.MethodGet, "/admin/messages", nil), true)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Engines")

	rr = e.do(t, httptest.NewRequest(http.MethodDelete, "/admin/messages/"+m.ID, nil), true)
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = e.do(t, httptest.NewRequest(http.MethodDelete, "/admin/messages/"+m.ID, nil), true)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	list, err := e.messages.List(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestDeleteMessage_HTMX(t *testing.T) {
	e := setup(t)
	m := &store.Message{Name: "Ada", Email: "ada@example.com", Subject: "s", Message: "m", Relay: "simulated", Status: store.MessageSent}
	require.NoError(t, e.messages.Create(context.Background(), m))

	req := httptest.NewRequest(http.MethodDelete, "/admin/messages/"+m.ID, nil)
	req.Header.Set("HX-Request", "true")
	rr := e.do(t, req, true)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, rr.Body.String())
}

func TestPrivacyCleanup(t *testing.T) {
	e := setup(t)
	ctx := context.Background()
	old := time.Now().AddDate(-2, 0, 0)
	require.NoError(t, e.visitors.Record(ctx, store.Visit{HashedIP: "old", Path: "/", Timestamp: old}))
	require.NoError(t, e.visitors.Record(ctx, store.Visit{HashedIP: "new", Path: "/"}))

	rr := e.do(t, httptest.NewRequest(http.MethodPost, "/admin/privacy/cleanup", nil), true)
	require.Equal(t, http.StatusOK, rr.Code)

	var body struct {
		Removed int64 `json:"removed"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, int64(1), body.Removed)
}

type failingStore struct{}

func (failingStore) Recent(context.Context, int) ([]store.Visit, error) {
	return nil, errors.New("db closed")
}

func (failingStore) Stats(context.Context, time.Time) (*store.VisitorStats, error) {
	return nil, errors.New("db closed")
}

func TestDashboard_StoreError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	a := New(config.AdminConfig{}, failingStore{}, nil, nil)
	tmpl, err := views.Load()
	require.NoError(t, err)
	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	a.RegisterRoutes(r)

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: cookieName, Value: a.token})
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), "Failed to load statistics")
}
