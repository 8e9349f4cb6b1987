package web

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/chandan25sharma/portfolio/internal/requestid"
	"github.com/chandan25sharma/portfolio/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDMiddleware reads X-Request-Id or generates one, exposes it on the
// gin and request contexts, echoes it back and logs the request line.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader("X-Request-Id")
		if strings.TrimSpace(rid) == "" {
			rid = uuid.NewString()
		}

		c.Set("request_id", rid)
		c.Request = c.Request.WithContext(requestid.NewContext(c.Request.Context(), rid))
		c.Writer.Header().Set("X-Request-Id", rid)

		start := time.Now()
		c.Next()

		log.Printf(
			"[req] id=%s method=%s path=%s status=%d latency=%s",
			rid,
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			time.Since(start),
		)
	}
}

var untrackedPrefixes = []string{
	"/static/",
	"/images/",
	"/admin",
	"/api/",
	"/health",
	"/favicon",
	"/privacy",
}

// VisitorTrackingMiddleware records successful page views with a hashed
// client IP. Asset, admin, API and health requests are skipped, and so is
// anyone sending DNT.
func VisitorTrackingMiddleware(visitors VisitRecorder, hashIP func(string) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if c.Request.Method != http.MethodGet || !trackable(path) || c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}

		c.Next()

		if c.FullPath() == "" || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		visit := store.Visit{
			HashedIP:  hashIP(c.ClientIP()),
			UserAgent: c.GetHeader("User-Agent"),
			Path:      path,
			Timestamp: time.Now(),
		}
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := visitors.Record(ctx, visit); err != nil {
				log.Printf("Error recording visitor: %v", err)
			}
		}()
	}
}

func trackable(path string) bool {
	for _, p := range untrackedPrefixes {
		if strings.HasPrefix(path, p) {
			return false
		}
	}
	return true
}
