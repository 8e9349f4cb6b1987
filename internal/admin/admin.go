// Package admin is the privacy-conscious admin area: a cookie-token login,
// visitor metrics, stored contact messages and the retention cleanup.
package admin

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"log"
	"time"

	"github.com/chandan25sharma/portfolio/config"
	"github.com/chandan25sharma/portfolio/internal/store"
	"github.com/gin-gonic/gin"
)

const (
	cookieName   = "admin_token"
	cookieMaxAge = 3600 * 24

	defaultUsername = "admin"
	defaultPassword = "admin123"
)

type VisitorStore interface {
	Recent(ctx context.Context, limit int) ([]store.Visit, error)
	Stats(ctx context.Context, now time.Time) (*store.VisitorStats, error)
}

type MessageStore interface {
	List(ctx context.Context, limit int) ([]store.Message, error)
	Delete(ctx context.Context, id string) error
	Counts(ctx context.Context) (store.MessageCounts, error)
}

// Cleaner runs the visitor retention cleanup.
type Cleaner interface {
	Run(ctx context.Context) (int64, error)
}

// Stats is what the dashboard and the export show.
type Stats struct {
	Visitors       store.VisitorStats  `json:"visitors"`
	Messages       store.MessageCounts `json:"messages"`
	RecentVisitors []store.Visit       `json:"recent_visitors"`
	GeneratedAt    time.Time           `json:"generated_at"`
}

type Admin struct {
	token    string
	salt     string
	username string
	password string

	visitors VisitorStore
	messages MessageStore
	cleaner  Cleaner
	now      func() time.Time
	secure   bool
}

type Option func(*Admin)

// WithSecureCookie marks the session cookie Secure so browsers only send it
// over HTTPS.
func WithSecureCookie(secure bool) Option { return func(a *Admin) { a.secure = secure } }

// New generates a fresh admin token and IP hashing salt. Both live only as
// long as the process, so a restart logs everyone out.
func New(cfg config.AdminConfig, visitors VisitorStore, messages MessageStore, cleaner Cleaner, opts ...Option) *Admin {
	a := &Admin{
		token:    generateToken(),
		salt:     generateToken(),
		username: cfg.Username,
		password: cfg.Password,
		visitors: visitors,
		messages: messages,
		cleaner:  cleaner,
		now:      time.Now,
	}
	for _, o := range opts {
		o(a)
	}

	if a.username == "" {
		a.username = defaultUsername
		if gin.Mode() == gin.DebugMode {
			log.Println("WARNING: Using default admin username. Set ADMIN_USERNAME environment variable.")
		}
	}
	if a.password == "" {
		a.password = defaultPassword
		if gin.Mode() == gin.DebugMode {
			log.Println("WARNING: Using default admin password. Set ADMIN_PASSWORD environment variable.")
		}
	}

	log.Printf("Admin access available at: /admin/login")
	log.Println("Privacy: Visitor tracking enabled with hashed IP addresses")
	return a
}

func generateToken() string {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		log.Fatal("Failed to generate admin token:", err)
	}
	return hex.EncodeToString(bytes)
}

// HashIP returns a salted, truncated SHA-256 of ip. It is stable for the
// lifetime of the process and never reversible to the address.
func (a *Admin) HashIP(ip string) string {
	hash := sha256.New()
	hash.Write([]byte(ip + a.salt))
	return hex.EncodeToString(hash.Sum(nil))[:16]
}

func (a *Admin) validCredentials(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(a.password)) == 1
	return userOK && passOK
}

func (a *Admin) validToken(token string) bool {
	return token != "" && subtle.ConstantTimeCompare([]byte(token), []byte(a.token)) == 1
}

// Stats gathers the dashboard numbers.
func (a *Admin) Stats(ctx context.Context) (*Stats, error) {
	now := a.now()

	visitors, err := a.visitors.Stats(ctx, now)
	if err != nil {
		return nil, err
	}
	counts, err := a.messages.Counts(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := a.visitors.Recent(ctx, 50)
	if err != nil {
		return nil, err
	}

	return &Stats{
		Visitors:       *visitors,
		Messages:       counts,
		RecentVisitors: recent,
		GeneratedAt:    now.UTC(),
	}, nil
}
