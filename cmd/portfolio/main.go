// Command portfolio serves the portfolio site.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/chandan25sharma/portfolio/config"
	"github.com/chandan25sharma/portfolio/internal/admin"
	"github.com/chandan25sharma/portfolio/internal/contact"
	"github.com/chandan25sharma/portfolio/internal/jobs"
	"github.com/chandan25sharma/portfolio/internal/ratelimit"
	"github.com/chandan25sharma/portfolio/internal/store"
	"github.com/chandan25sharma/portfolio/internal/views"
	"github.com/chandan25sharma/portfolio/internal/web"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Fatalf("failed to serve: %v", err)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	if cfg.Server.GinMode != "" {
		gin.SetMode(cfg.Server.GinMode)
	} else if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := store.Open(cfg.Database.Path, store.WithMkdirAll())
	if err != nil {
		return err
	}
	defer db.Close()

	visitors := store.NewVisitorRepository(db)
	messages := store.NewMessageRepository(db)

	limiter, closeLimiter := newLimiter(ctx, cfg)
	defer closeLimiter()

	relay := contact.NewRelay(cfg)
	contactService := contact.NewService(relay,
		contact.WithLimiter(limiter),
		contact.WithRecorder(messages),
		contact.WithTimeout(cfg.Contact.RelayTimeout),
	)
	log.Printf("Contact relay: %s", contactService.RelayName())

	cleanup := jobs.NewCleanup(visitors, cfg.Database.VisitorRetention)
	if _, err := cleanup.Run(ctx); err != nil {
		log.Printf("Startup cleanup failed: %v", err)
	}
	scheduler := jobs.NewScheduler(cleanup)
	if err := scheduler.Start(jobs.Nightly); err != nil {
		return err
	}

	adm := admin.New(cfg.Admin, visitors, messages, cleanup, admin.WithSecureCookie(cfg.IsProduction()))

	tmpl, err := views.Load()
	if err != nil {
		return fmt.Errorf("load templates: %w", err)
	}

	router := web.BuildRouter(web.RouterDeps{
		Config:    cfg,
		DB:        db,
		Templates: tmpl,
		Contact:   contactService,
		Visitors:  visitors,
		HashIP:    adm.HashIP,
		Admin:     adm,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server starting on :%s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
	case <-ctx.Done():
		log.Println("Shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	scheduler.Stop(shutdownCtx)
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// newLimiter returns the Redis limiter when REDIS_ADDR is set and limiting is
// enabled, otherwise the no-op limiter.
func newLimiter(ctx context.Context, cfg *config.Config) (ratelimit.Limiter, func()) {
	if cfg.Redis.Addr == "" || cfg.Contact.RateLimit == 0 {
		log.Println("Contact rate limiting disabled")
		return ratelimit.Noop{}, func() {}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		// the limiter fails open on every call anyway
		log.Printf("Redis unavailable at %s: %v", cfg.Redis.Addr, err)
	}

	return ratelimit.NewRedisLimiter(client, cfg.Contact.RateLimit, cfg.Contact.RateWindow), func() { client.Close() }
}
