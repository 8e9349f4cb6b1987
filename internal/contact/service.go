// Package contact handles contact form submissions: cleaning and validating
// the four fields, throttling, relaying and recording the outcome.
package contact

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/chandan25sharma/portfolio/internal/ratelimit"
	"github.com/chandan25sharma/portfolio/internal/requestid"
	"github.com/chandan25sharma/portfolio/internal/store"
)

var (
	ErrInvalidForm = errors.New("invalid contact form")
	ErrRateLimited = errors.New("too many contact attempts")
	ErrRelayFailed = errors.New("contact relay failed")
)

// MessageRecorder stores the outcome of a relay attempt.
type MessageRecorder interface {
	Create(ctx context.Context, m *store.Message) error
}

// remainingReporter is implemented by limiters that can tell how many
// attempts a client has left.
type remainingReporter interface {
	Remaining(ctx context.Context, key string) (int64, error)
}

type Service struct {
	relay    Relay
	limiter  ratelimit.Limiter
	messages MessageRecorder
	timeout  time.Duration
	now      func() time.Time
}

type Option func(*Service)

func WithLimiter(l ratelimit.Limiter) Option { return func(s *Service) { s.limiter = l } }

func WithRecorder(r MessageRecorder) Option { return func(s *Service) { s.messages = r } }

// WithTimeout bounds a single relay call. Zero means no extra bound beyond the
// caller's context.
func WithTimeout(d time.Duration) Option { return func(s *Service) { s.timeout = d } }

func NewService(relay Relay, opts ...Option) *Service {
	s := &Service{
		relay:   relay,
		limiter: ratelimit.Noop{},
		now:     time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *Service) RelayName() string { return s.relay.Name() }

// Remaining reports how many submissions clientKey has left in the current
// window. ok is false when the limiter does not count or cannot be reached.
func (s *Service) Remaining(ctx context.Context, clientKey string) (left int64, ok bool) {
	r, counts := s.limiter.(remainingReporter)
	if !counts {
		return 0, false
	}
	left, err := r.Remaining(ctx, clientKey)
	if err != nil {
		log.Printf("[contact] id=%s reading rate limit: %v", requestid.FromContext(ctx), err)
		return 0, false
	}
	return left, true
}

// Submit cleans and validates the form, then relays it. It returns the cleaned
// form so callers can redisplay it on failure. clientKey identifies the sender
// for throttling and is stored with the message; it must already be hashed.
func (s *Service) Submit(ctx context.Context, f Form, clientKey string) (Form, error) {
	f = f.Clean()
	if err := f.Validate(); err != nil {
		return f, fmt.Errorf("%w: %v", ErrInvalidForm, err)
	}

	rid := requestid.FromContext(ctx)

	allowed, err := s.limiter.Allow(ctx, clientKey)
	if err != nil {
		// fail open, the form must keep working without Redis
		log.Printf("[contact] id=%s rate limiter unavailable: %v", rid, err)
		allowed = true
	}
	if !allowed {
		log.Printf("[contact] id=%s rate limited", rid)
		return f, ErrRateLimited
	}

	relayCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		relayCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	sendErr := s.relay.Send(relayCtx, f)
	s.record(ctx, f, clientKey, sendErr)

	if sendErr != nil {
		log.Printf("[contact] id=%s error sending via %s: %v", rid, s.relay.Name(), sendErr)
		return f, fmt.Errorf("%w: %v", ErrRelayFailed, sendErr)
	}

	log.Printf("[contact] id=%s relayed via %s from %s", rid, s.relay.Name(), f.Email)
	return f, nil
}

func (s *Service) record(ctx context.Context, f Form, clientKey string, sendErr error) {
	if s.messages == nil {
		return
	}

	m := &store.Message{
		Name:      f.Name,
		Email:     f.Email,
		Subject:   f.Subject,
		Message:   f.Message,
		Relay:     s.relay.Name(),
		Status:    store.MessageSent,
		HashedIP:  clientKey,
		CreatedAt: s.now(),
	}
	if sendErr != nil {
		m.Status = store.MessageFailed
		m.Error = sendErr.Error()
	}

	// the request may already be cancelled; the record should still land
	recCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if err := s.messages.Create(recCtx, m); err != nil {
		log.Printf("[contact] id=%s error recording message: %v", requestid.FromContext(ctx), err)
	}
}
