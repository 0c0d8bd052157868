package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/yungbote/portfolio-backend/internal/platform/logger"
)

type Config struct {
	Port    string `env:"PORT"     envDefault:"5000"`
	LogMode string `env:"LOG_MODE" envDefault:"development"`

	DBDriver    string `env:"DB_DRIVER"    envDefault:"sqlite"`
	DatabaseURL string `env:"DATABASE_URL"`
	SeedFile    string `env:"SEED_FILE"`

	UploadsMode         string `env:"UPLOADS_MODE"          envDefault:"local"`
	UploadsDir          string `env:"UPLOADS_DIR"           envDefault:"dist/public/uploads"`
	UploadsGCSBucket    string `env:"UPLOADS_GCS_BUCKET"`
	GCPCredentials      string `env:"GOOGLE_APPLICATION_CREDENTIALS_JSON"`
	StorageEmulatorHost string `env:"STORAGE_EMULATOR_HOST"`
	StaticDir           string `env:"STATIC_DIR"            envDefault:"dist/public"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`

	EmailUser       string        `env:"EMAIL_USER"`
	EmailPassword   string        `env:"EMAIL_PASSWORD"`
	EmailService    string        `env:"EMAIL_SERVICE"`
	EmailSMTPHost   string        `env:"EMAIL_SMTP_HOST"`
	EmailSMTPPort   int           `env:"EMAIL_SMTP_PORT"`
	EmailTimeout    time.Duration `env:"EMAIL_TIMEOUT"     envDefault:"15s"`
	SendGridBaseURL string        `env:"SENDGRID_BASE_URL"`

	StripeSecretKey  string `env:"STRIPE_SECRET_KEY"`
	StripeAPIBaseURL string `env:"STRIPE_API_BASE_URL"`

	MetricsEnabled  bool    `env:"METRICS_ENABLED"`
	OtelEnabled     bool    `env:"OTEL_ENABLED"`
	OtelServiceName string  `env:"OTEL_SERVICE_NAME"           envDefault:"portfolio-backend"`
	OtelEndpoint    string  `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OtelInsecure    bool    `env:"OTEL_EXPORTER_OTLP_INSECURE"`
	OtelSampleRatio float64 `env:"OTEL_SAMPLER_RATIO"          envDefault:"0.1"`
	Environment     string  `env:"APP_ENV"                     envDefault:"development"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// ParseConfig reads Config from the environment without logging.
func ParseConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// LoadConfig parses the environment and logs the effective non-secret settings.
func LoadConfig(log *logger.Logger) (Config, error) {
	cfg, err := ParseConfig()
	if err != nil {
		return Config{}, err
	}
	log.Info("Configuration loaded",
		"port", cfg.Port,
		"db_driver", cfg.DBDriver,
		"uploads_mode", cfg.UploadsMode,
		"uploads_dir", cfg.UploadsDir,
		"static_dir", cfg.StaticDir,
		"mail_service", cfg.EmailService,
		"mail_configured", cfg.EmailConfigured(),
		"stripe_configured", cfg.StripeConfigured(),
		"metrics_enabled", cfg.MetricsEnabled,
		"otel_enabled", cfg.OtelEnabled,
	)
	return cfg, nil
}

// EmailConfigured mirrors the contact mailer's requirement that user,
// password and service are all present.
func (c Config) EmailConfigured() bool {
	return strings.TrimSpace(c.EmailUser) != "" &&
		strings.TrimSpace(c.EmailPassword) != "" &&
		strings.TrimSpace(c.EmailService) != ""
}

func (c Config) StripeConfigured() bool {
	return strings.TrimSpace(c.StripeSecretKey) != ""
}

func (c Config) Addr() string {
	port := strings.TrimSpace(c.Port)
	if port == "" {
		port = "5000"
	}
	if strings.Contains(port, ":") {
		return port
	}
	return "0.0.0.0:" + port
}
