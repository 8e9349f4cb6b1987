package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/smtp"
	"strings"
	"time"

	"github.com/chandan25sharma/portfolio/config"
)

// Relay delivers a contact message to the site owner.
type Relay interface {
	Name() string
	Send(ctx context.Context, f Form) error
}

// NewRelay picks the relay the configuration supports: EmailJS when its
// three identifiers are set, then SMTP credentials, then the simulated relay.
func NewRelay(cfg *config.Config) Relay {
	switch {
	case cfg.EmailJS.Configured():
		return NewEmailJSRelay(cfg.EmailJS, &http.Client{Timeout: cfg.Contact.RelayTimeout})
	case cfg.SMTP.Configured():
		return NewSMTPRelay(cfg.SMTP)
	default:
		log.Println("Contact relay not configured, submissions are simulated")
		return NewSimulatedRelay(cfg.Contact.SimulateDelay)
	}
}

// EmailJSRelay posts to the EmailJS REST API. Server-side calls must be
// enabled for the account; the private key is sent as accessToken when set.
type EmailJSRelay struct {
	cfg    config.EmailJSConfig
	client *http.Client
}

type emailJSRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	AccessToken    string            `json:"accessToken,omitempty"`
	TemplateParams map[string]string `json:"template_params"`
}

func NewEmailJSRelay(cfg config.EmailJSConfig, client *http.Client) *EmailJSRelay {
	if client == nil {
		client = http.DefaultClient
	}
	return &EmailJSRelay{cfg: cfg, client: client}
}

func (r *EmailJSRelay) Name() string { return "emailjs" }

func (r *EmailJSRelay) Send(ctx context.Context, f Form) error {
	payload, err := json.Marshal(emailJSRequest{
		ServiceID:      r.cfg.ServiceID,
		TemplateID:     r.cfg.TemplateID,
		UserID:         r.cfg.PublicKey,
		AccessToken:    r.cfg.PrivateKey,
		TemplateParams: f.TemplateParams(),
	})
	if err != nil {
		return fmt.Errorf("emailjs: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.cfg.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("emailjs: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("emailjs: send: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("emailjs: status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return nil
}

// SMTPRelay sends the message as a plain-text email through an SMTP server.
type SMTPRelay struct {
	cfg  config.SMTPConfig
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewSMTPRelay(cfg config.SMTPConfig) *SMTPRelay {
	return &SMTPRelay{cfg: cfg, send: smtp.SendMail}
}

func (r *SMTPRelay) Name() string { return "smtp" }

func (r *SMTPRelay) Send(ctx context.Context, f Form) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	auth := smtp.PlainAuth("", r.cfg.User, r.cfg.Pass, r.cfg.Host)
	addr := r.cfg.Host + ":" + r.cfg.Port
	if err := r.send(addr, auth, r.cfg.User, []string{r.cfg.ToEmail}, composeEmail(r.cfg, f)); err != nil {
		return fmt.Errorf("smtp: send: %w", err)
	}
	return nil
}

func composeEmail(cfg config.SMTPConfig, f Form) []byte {
	// header values must stay on one line
	oneLine := strings.NewReplacer("\r", " ", "\n", " ")

	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Subject: %s
Message:
%s

---
Sent from your portfolio contact form
`, f.Name, f.Email, f.Subject, f.Message)

	return []byte("To: " + cfg.ToEmail + "\r\n" +
		"Subject: Portfolio Contact: " + oneLine.Replace(f.Subject) + "\r\n" +
		"From: " + cfg.User + "\r\n" +
		"Reply-To: " + oneLine.Replace(f.Email) + "\r\n" +
		"\r\n" +
		body + "\r\n")
}

// SimulatedRelay succeeds after a fixed delay without sending anything.
type SimulatedRelay struct {
	delay time.Duration
}

func NewSimulatedRelay(delay time.Duration) *SimulatedRelay {
	return &SimulatedRelay{delay: delay}
}

func (r *SimulatedRelay) Name() string { return "simulated" }

func (r *SimulatedRelay) Send(ctx context.Context, f Form) error {
	if r.delay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(r.delay)
	defer t.Stop()
	select {
	case <-t.C:
		log.Printf("Simulated contact message from %s (%s)", f.Name, f.Email)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
