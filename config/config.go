package config

import (
	"fmt"
	"log"
	"net/netip"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Contact  ContactConfig
	EmailJS  EmailJSConfig
	SMTP     SMTPConfig
	Redis    RedisConfig
	Admin    AdminConfig
	App      AppConfig
}

type ServerConfig struct {
	Port           string   `env:"PORT" envDefault:"8080"`
	GinMode        string   `env:"GIN_MODE"`
	ImagesDir      string   `env:"IMAGES_DIR" envDefault:"./images"`
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
	// TrustedProxies lists the proxy IPs or CIDRs whose X-Forwarded-For is
	// believed. Empty trusts none and uses the socket address.
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`
}

type DatabaseConfig struct {
	Path             string        `env:"DB_PATH" envDefault:"data/portfolio.db"`
	VisitorRetention time.Duration `env:"VISITOR_RETENTION" envDefault:"8760h"`
}

type ContactConfig struct {
	SimulateDelay time.Duration `env:"CONTACT_SIMULATE_DELAY" envDefault:"1s"`
	RelayTimeout  time.Duration `env:"CONTACT_RELAY_TIMEOUT" envDefault:"10s"`
	RateLimit     int           `env:"CONTACT_RATE_LIMIT" envDefault:"5"`
	RateWindow    time.Duration `env:"CONTACT_RATE_WINDOW" envDefault:"1h"`
}

// EmailJSConfig holds the three identifiers the relay needs. The private key is
// optional and only sent when the account enforces it.
type EmailJSConfig struct {
	ServiceID  string `env:"EMAILJS_SERVICE_ID"`
	TemplateID string `env:"EMAILJS_TEMPLATE_ID"`
	PublicKey  string `env:"EMAILJS_PUBLIC_KEY"`
	PrivateKey string `env:"EMAILJS_PRIVATE_KEY"`
	Endpoint   string `env:"EMAILJS_ENDPOINT" envDefault:"https://api.emailjs.com/api/v1.0/email/send"`
}

// Configured reports whether all three identifiers are present.
func (c EmailJSConfig) Configured() bool {
	return c.ServiceID != "" && c.TemplateID != "" && c.PublicKey != ""
}

type SMTPConfig struct {
	Host    string `env:"SMTP_HOST" envDefault:"smtp.gmail.com"`
	Port    string `env:"SMTP_PORT" envDefault:"587"`
	User    string `env:"SMTP_USER"`
	Pass    string `env:"SMTP_PASS"`
	ToEmail string `env:"TO_EMAIL"`
}

func (c SMTPConfig) Configured() bool {
	return c.User != "" && c.Pass != ""
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

type AdminConfig struct {
	Username string `env:"ADMIN_USERNAME"`
	Password string `env:"ADMIN_PASSWORD"`
}

type AppConfig struct {
	Environment string `env:"APP_ENV" envDefault:"development"`
	Version     string `env:"APP_VERSION" envDefault:"1.0.0"`
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := Parse()
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Parse reads the process environment without touching .env files.
func Parse() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.Server.Port) == "" {
		return fmt.Errorf("PORT is required")
	}

	if strings.TrimSpace(c.Database.Path) == "" {
		return fmt.Errorf("DB_PATH is required")
	}

	if c.Contact.RateLimit < 0 {
		return fmt.Errorf("CONTACT_RATE_LIMIT must not be negative")
	}

	if c.Contact.RateLimit > 0 && c.Contact.RateWindow <= 0 {
		return fmt.Errorf("CONTACT_RATE_WINDOW must be positive when rate limiting is enabled")
	}

	if c.Database.VisitorRetention <= 0 {
		return fmt.Errorf("VISITOR_RETENTION must be positive")
	}

	for _, p := range c.Server.TrustedProxies {
		if !validProxy(p) {
			return fmt.Errorf("TRUSTED_PROXIES: %q is not an IP or CIDR", p)
		}
	}

	if c.SMTP.Configured() && c.SMTP.ToEmail == "" {
		return fmt.Errorf("TO_EMAIL is required when SMTP credentials are set")
	}

	return nil
}

func validProxy(s string) bool {
	if strings.Contains(s, "/") {
		_, err := netip.ParsePrefix(s)
		return err == nil
	}
	_, err := netip.ParseAddr(s)
	return err == nil
}

// IsProduction reports whether the app runs with APP_ENV=production.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.App.Environment, "production")
}
