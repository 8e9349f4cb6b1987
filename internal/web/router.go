// Package web builds the gin engine serving the portfolio pages, the JSON
// API and the health endpoints.
package web

import (
	"context"
	"database/sql"
	"html/template"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/chandan25sharma/portfolio/config"
	"github.com/chandan25sharma/portfolio/internal/contact"
	"github.com/chandan25sharma/portfolio/internal/store"
	"github.com/chandan25sharma/portfolio/internal/views"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// VisitRecorder stores a page view.
type VisitRecorder interface {
	Record(ctx context.Context, v store.Visit) error
}

// RouteRegistrar adds its own routes to the engine.
type RouteRegistrar interface {
	RegisterRoutes(r gin.IRouter)
}

type RouterDeps struct {
	Config    *config.Config
	DB        *sql.DB
	Templates *template.Template
	Contact   *contact.Service
	Visitors  VisitRecorder
	HashIP    func(ip string) string
	Admin     RouteRegistrar
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	// ClientIP feeds the contact rate limit, so forwarded headers are only
	// read from configured proxies.
	if err := r.SetTrustedProxies(dep.Config.Server.TrustedProxies); err != nil {
		log.Printf("Invalid trusted proxies %v, trusting none: %v", dep.Config.Server.TrustedProxies, err)
		_ = r.SetTrustedProxies(nil)
	}
	r.Use(gin.Recovery(), RequestIDMiddleware())
	r.SetHTMLTemplate(dep.Templates)

	r.StaticFS("/static", views.Static())
	if dir := dep.Config.Server.ImagesDir; dir != "" {
		r.Static("/images", dir)
	}

	healthHandler := NewHealthHandler("portfolio", dep.Config.App.Version, dep.DB)
	healthHandler.RegisterRoutes(r)

	hashIP := dep.HashIP
	if hashIP == nil {
		hashIP = func(ip string) string { return ip }
	}

	if dep.Visitors != nil {
		r.Use(VisitorTrackingMiddleware(dep.Visitors, hashIP))
	}

	pages := &Pages{
		contact:   dep.Contact,
		hashIP:    hashIP,
		retention: dep.Config.Database.VisitorRetention,
		now:       time.Now,
	}
	pages.RegisterRoutes(r)

	api := r.Group("/api")
	api.Use(cors.New(corsConfig(dep.Config.Server.AllowedOrigins)))
	RegisterAPI(api)

	if dep.Admin != nil {
		dep.Admin.RegisterRoutes(r)
	}

	r.NoRoute(pages.notFound)

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{http.MethodGet, http.MethodOptions}
	cfg.MaxAge = 12 * time.Hour
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	return cfg
}

func isHTMX(c *gin.Context) bool {
	return strings.EqualFold(c.GetHeader("HX-Request"), "true")
}
