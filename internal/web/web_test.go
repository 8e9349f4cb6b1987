package web

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/chandan25sharma/portfolio/config"
	"github.com/chandan25sharma/portfolio/internal/contact"
	"github.com/chandan25sharma/portfolio/internal/content"
	"github.com/chandan25sharma/portfolio/internal/ratelimit"
	"github.com/chandan25sharma/portfolio/internal/requestid"
	"github.com/chandan25sharma/portfolio/internal/store"
	"github.com/chandan25sharma/portfolio/internal/views"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memVisits struct {
	mu     sync.Mutex
	visits []store.Visit
}

func (m *memVisits) Record(_ context.Context, v store.Visit) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.visits = append(m.visits, v)
	return nil
}

func (m *memVisits) paths() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(m.visits))
	for _, v := range m.visits {
		out = append(out, v.Path)
	}
	return out
}

type stubRelay struct {
	err error
	got []contact.Form
}

func (r *stubRelay) Name() string { return "stub" }

func (r *stubRelay) Send(_ context.Context, f contact.Form) error {
	r.got = append(r.got, f)
	return r.err
}

type denyAll struct{}

func (denyAll) Allow(context.Context, string) (bool, error) { return false, nil }

type testServer struct {
	router *gin.Engine
	relay  *stubRelay
	visits *memVisits
}

func newTestServer(t *testing.T, opts ...contact.Option) *testServer {
	t.Helper()
	return newTestServerWithConfig(t, nil, opts...)
}

func newTestServerWithConfig(t *testing.T, mutate func(*config.Config), opts ...contact.Option) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg, err := config.Parse()
	require.NoError(t, err)
	cfg.Server.ImagesDir = t.TempDir()
	if mutate != nil {
		mutate(cfg)
	}

	db, err := store.Open(filepath.Join(t.TempDir(), "web.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	tmpl, err := views.Load()
	require.NoError(t, err)

	relay := &stubRelay{}
	visits := &memVisits{}
	r := BuildRouter(RouterDeps{
		Config:    cfg,
		DB:        db,
		Templates: tmpl,
		Contact:   contact.NewService(relay, opts...),
		Visitors:  visits,
		HashIP:    func(ip string) string { return "hashed-" + ip },
	})
	return &testServer{router: r, relay: relay, visits: visits}
}

func (s *testServer) get(t *testing.T, target string, header ...string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)
	return rr
}

func (s *testServer) postContact(t *testing.T, form url.Values, htmx bool, header ...string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)
	return rr
}

func validContact() url.Values {
	return url.Values{
		"name":    {"Ada Lovelace"},
		"email":   {"ada@example.com"},
		"subject": {"Collaboration"},
		"message": {"Let's build an engine."},
	}
}

func TestHealthCheck(t *testing.T) {
	s := newTestServer(t)

	for _, path := range []string{"/health", "/healthz"} {
		rr := s.get(t, path)
		require.Equal(t, http.StatusOK, rr.Code)

		var resp HealthResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "healthy", resp.Status)
		assert.Equal(t, "portfolio", resp.Service)
		assert.Equal(t, "1.0.0", resp.Version)
		assert.Equal(t, "up", resp.DB)
	}
}

func TestHealthCheckWithoutDB(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHealthHandler("test-service", "2.0.0", nil).RegisterRoutes(r)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "disabled", resp.DB)
}

func TestRequestID(t *testing.T) {
	s := newTestServer(t)

	rr := s.get(t, "/health", "X-Request-Id", "abc-123")
	assert.Equal(t, "abc-123", rr.Header().Get("X-Request-Id"))

	rr = s.get(t, "/health")
	assert.Len(t, rr.Header().Get("X-Request-Id"), 36)
}

func TestRequestIDOnRequestContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestIDMiddleware())

	var seen string
	r.GET("/", func(c *gin.Context) {
		seen = requestid.FromContext(c.Request.Context())
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-Id", "rid-7")
	r.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "rid-7", seen)
}

func TestPages(t *testing.T) {
	s := newTestServer(t)

	for path, want := range map[string]string{
		"/":        content.SiteOwner.Name,
		"/about":   "Experience &amp; Education",
		"/privacy": "12 months",
		"/contact": `name="subject"`,
	} {
		t.Run(path, func(t *testing.T) {
			rr := s.get(t, path)
			require.Equal(t, http.StatusOK, rr.Code)
			assert.Contains(t, rr.Body.String(), want)
			assert.Contains(t, rr.Body.String(), "Quick Links", "footer chrome")
		})
	}
}

func TestNavMarksActivePage(t *testing.T) {
	s := newTestServer(t)
	body := s.get(t, "/projects").Body.String()
	assert.Contains(t, body, `href="/projects" class="nav-link active" aria-current="page"`)
	assert.Contains(t, body, `href="/about" class="nav-link"`)
}

func TestNotFound(t *testing.T) {
	s := newTestServer(t)

	rr := s.get(t, "/nope")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "does not exist")

	rr = s.get(t, "/api/nope")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error":"not found"}`, rr.Body.String())
}

func TestProjectsPage(t *testing.T) {
	s := newTestServer(t)

	t.Run("all by default", func(t *testing.T) {
		body := s.get(t, "/projects").Body.String()
		for _, p := range content.Projects() {
			assert.Contains(t, body, `/projects?project=`+p.ID)
		}
		assert.NotContains(t, body, `role="dialog"`)
	})

	t.Run("category filter", func(t *testing.T) {
		rr := s.get(t, "/projects?category=Productivity")
		require.Equal(t, http.StatusOK, rr.Code)
		body := rr.Body.String()
		assert.Contains(t, body, "Amutec")
		assert.NotContains(t, body, "Alungus AI Web Suite")
		assert.Contains(t, body, `class="filter active" aria-current="true">Productivity`)
	})

	t.Run("unknown category is empty", func(t *testing.T) {
		body := s.get(t, "/projects?category=Nope").Body.String()
		assert.Contains(t, body, "No projects in this category.")
	})

	t.Run("selected project opens one modal", func(t *testing.T) {
		body := s.get(t, "/projects?category=Productivity&project=amutec").Body.String()
		assert.Equal(t, 1, strings.Count(body, `role="dialog"`))
		assert.Contains(t, body, "Key Features")
		assert.Contains(t, body, `href="/projects?category=Productivity" class="modal-close"`)
	})

	t.Run("unknown project selects nothing", func(t *testing.T) {
		body := s.get(t, "/projects?project=missing").Body.String()
		assert.NotContains(t, body, `role="dialog"`)
	})
}

func TestResearchPage(t *testing.T) {
	s := newTestServer(t)

	t.Run("collapsed by default", func(t *testing.T) {
		body := s.get(t, "/research").Body.String()
		assert.Equal(t, len(content.Domains()), strings.Count(body, "Learn More"))
		assert.NotContains(t, body, "Show Less")
		assert.Contains(t, body, "Select a pillar or an experiment")
	})

	t.Run("one pillar expanded", func(t *testing.T) {
		body := s.get(t, "/research?domain=1").Body.String()
		assert.Equal(t, 1, strings.Count(body, "Show Less"))
		assert.Equal(t, len(content.Domains())-1, strings.Count(body, "Learn More"))
		assert.Contains(t, body, `href="/research" class="btn mt-4 inline-block">Show Less`)
	})

	t.Run("experiment modal keeps other state", func(t *testing.T) {
		body := s.get(t, "/research?domain=0&experiment=e1").Body.String()
		assert.Equal(t, 1, strings.Count(body, `role="dialog"`))
		assert.Contains(t, body, "MNIST-DVS, N-MNIST")
		assert.Contains(t, body, `href="/research?domain=0" class="modal-close"`)
	})

	t.Run("experiment focus", func(t *testing.T) {
		body := s.get(t, "/research?focus=experiment-e1").Body.String()
		assert.Contains(t, body, "Energy Reduction")
		assert.NotContains(t, body, "Select a pillar or an experiment")
	})

	t.Run("unknown focus falls back", func(t *testing.T) {
		body := s.get(t, "/research?focus=domain-42").Body.String()
		assert.Contains(t, body, "Select a pillar or an experiment")
	})
}

func TestContactSubmit(t *testing.T) {
	t.Run("htmx success returns fragment", func(t *testing.T) {
		s := newTestServer(t)
		rr := s.postContact(t, validContact(), true)
		require.Equal(t, http.StatusOK, rr.Code)
		body := rr.Body.String()
		assert.Contains(t, body, "Thank you for your message!")
		assert.NotContains(t, body, "<html")
		assert.NotContains(t, body, "Ada Lovelace", "fields reset after success")
		require.Len(t, s.relay.got, 1)
		assert.Equal(t, "ada@example.com", s.relay.got[0].Email)
	})

	t.Run("plain post renders the page", func(t *testing.T) {
		s := newTestServer(t)
		rr := s.postContact(t, validContact(), false)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "<html")
		assert.Contains(t, rr.Body.String(), "Thank you for your message!")
	})

	t.Run("invalid keeps values", func(t *testing.T) {
		s := newTestServer(t)
		form := validContact()
		form.Set("email", "not-an-email")
		rr := s.postContact(t, form, true)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), `value="not-an-email"`)
		assert.Contains(t, rr.Body.String(), `value="Ada Lovelace"`)
		assert.Empty(t, s.relay.got)
	})

	t.Run("relay failure keeps values", func(t *testing.T) {
		s := newTestServer(t)
		s.relay.err = errors.New("upstream 500")
		rr := s.postContact(t, validContact(), true)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "Failed to send message.")
		assert.Contains(t, rr.Body.String(), `value="Collaboration"`)
		assert.NotContains(t, rr.Body.String(), "upstream 500")
	})

	t.Run("rate limited", func(t *testing.T) {
		s := newTestServer(t, contact.WithLimiter(denyAll{}))
		rr := s.postContact(t, validContact(), true)
		assert.Equal(t, http.StatusTooManyRequests, rr.Code)
		assert.Contains(t, rr.Body.String(), "Too many messages")
		assert.Empty(t, s.relay.got)
	})
}

func newRedisLimiter(t *testing.T, limit int) *ratelimit.RedisLimiter {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return ratelimit.NewRedisLimiter(client, limit, time.Hour)
}

func TestContactRateLimitClientAddress(t *testing.T) {
	forwarded := []string{"198.51.100.1", "198.51.100.2", "198.51.100.3"}

	t.Run("forwarded headers ignored without trusted proxies", func(t *testing.T) {
		s := newTestServer(t, contact.WithLimiter(newRedisLimiter(t, 1)))

		var codes []int
		for _, ip := range forwarded {
			rr := s.postContact(t, validContact(), true, "X-Forwarded-For", ip, "X-Real-IP", ip)
			codes = append(codes, rr.Code)
		}
		assert.Equal(t, []int{http.StatusOK, http.StatusTooManyRequests, http.StatusTooManyRequests}, codes)
		assert.Len(t, s.relay.got, 1)
	})

	t.Run("trusted proxy forwards the client address", func(t *testing.T) {
		s := newTestServerWithConfig(t, func(cfg *config.Config) {
			cfg.Server.TrustedProxies = []string{"192.0.2.0/24"}
		}, contact.WithLimiter(newRedisLimiter(t, 1)))

		for _, ip := range forwarded {
			rr := s.postContact(t, validContact(), true, "X-Forwarded-For", ip)
			assert.Equal(t, http.StatusOK, rr.Code, ip)
		}
		assert.Len(t, s.relay.got, 3)

		rr := s.postContact(t, validContact(), true, "X-Forwarded-For", forwarded[0])
		assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	})
}

func TestContactRateLimitRemainingHeader(t *testing.T) {
	t.Run("counting limiter", func(t *testing.T) {
		s := newTestServer(t, contact.WithLimiter(newRedisLimiter(t, 2)))

		var left []string
		for i := 0; i < 3; i++ {
			left = append(left, s.postContact(t, validContact(), true).Header().Get("X-RateLimit-Remaining"))
		}
		assert.Equal(t, []string{"1", "0", "0"}, left)
	})

	t.Run("no limiter", func(t *testing.T) {
		s := newTestServer(t)
		rr := s.postContact(t, validContact(), true)
		assert.Empty(t, rr.Header().Values("X-RateLimit-Remaining"))
	})
}

func TestAPI(t *testing.T) {
	s := newTestServer(t)

	t.Run("projects", func(t *testing.T) {
		var all []content.Project
		require.NoError(t, json.Unmarshal(s.get(t, "/api/projects").Body.Bytes(), &all))
		assert.Len(t, all, len(content.Projects()))

		var filtered []content.Project
		require.NoError(t, json.Unmarshal(s.get(t, "/api/projects?category=Productivity").Body.Bytes(), &filtered))
		require.Len(t, filtered, 1)
		assert.Equal(t, "amutec", filtered[0].ID)
	})

	t.Run("project by id", func(t *testing.T) {
		rr := s.get(t, "/api/projects/ai-chatbot")
		require.Equal(t, http.StatusOK, rr.Code)
		var p content.Project
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &p))
		assert.Equal(t, "AI-Powered Chatbot", p.Title)

		assert.Equal(t, http.StatusNotFound, s.get(t, "/api/projects/missing").Code)
	})

	t.Run("categories", func(t *testing.T) {
		var cats []string
		require.NoError(t, json.Unmarshal(s.get(t, "/api/categories").Body.Bytes(), &cats))
		require.NotEmpty(t, cats)
		assert.Equal(t, "All", cats[0])
	})

	t.Run("research", func(t *testing.T) {
		var domains []content.Domain
		require.NoError(t, json.Unmarshal(s.get(t, "/api/research/domains").Body.Bytes(), &domains))
		assert.Len(t, domains, len(content.Domains()))

		var exps []content.Experiment
		target := "/api/research/experiments?domain=" + url.QueryEscape("Consciousness & AI Ethics")
		require.NoError(t, json.Unmarshal(s.get(t, target).Body.Bytes(), &exps))
		require.Len(t, exps, 2)
		assert.Equal(t, "e4", exps[0].ID)
		assert.Equal(t, "e6", exps[1].ID)

		rr := s.get(t, "/api/research/experiments/e2")
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, http.StatusNotFound, s.get(t, "/api/research/experiments/e99").Code)
	})

	t.Run("cors", func(t *testing.T) {
		rr := s.get(t, "/api/categories", "Origin", "https://example.org")
		assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestVisitorTracking(t *testing.T) {
	s := newTestServer(t)

	s.get(t, "/about", "DNT", "1")
	s.get(t, "/static/css/site.css")
	s.get(t, "/api/projects")
	s.get(t, "/missing")
	s.get(t, "/projects", "User-Agent", "test-agent")

	assert.Eventually(t, func() bool { return len(s.visits.paths()) >= 1 }, time.Second, 10*time.Millisecond)
	// give any stray goroutine a moment to land before asserting exclusivity
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, []string{"/projects"}, s.visits.paths())

	s.visits.mu.Lock()
	defer s.visits.mu.Unlock()
	assert.Equal(t, "hashed-192.0.2.1", s.visits.visits[0].HashedIP)
	assert.Equal(t, "test-agent", s.visits.visits[0].UserAgent)
}

func TestRetentionText(t *testing.T) {
	assert.Equal(t, "12 months", retentionText(8760*time.Hour))
	assert.Equal(t, "3 months", retentionText(90*24*time.Hour))
	assert.Equal(t, "10 days", retentionText(240*time.Hour))
	assert.Equal(t, "1 day", retentionText(24*time.Hour))
	assert.Equal(t, "1h0m0s", retentionText(time.Hour))
}
