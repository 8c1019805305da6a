package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds runtime configuration sourced from env vars.
type Config struct {
	Port        string        `env:"PORT" envDefault:"8080"`
	DatabaseURL string        `env:"DATABASE_URL,required"`
	SiteURL     string        `env:"SITE_URL" envDefault:"https://luminainteriors.com"`
	DataDir     string        `env:"DATA_DIR" envDefault:"./data"`
	JWTSecret   string        `env:"JWT_SECRET,required"`
	JWTIssuer   string        `env:"JWT_ISSUER" envDefault:"lumina-backend"`
	JWTTTL      time.Duration `env:"JWT_TTL" envDefault:"24h"`
	// EncryptionKey seals contact PII at rest; must be exactly 32 bytes.
	EncryptionKey string   `env:"ENCRYPTION_KEY,required"`
	CORSOrigins   []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`

	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS" envDefault:"5"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"10"`

	MinioEndpoint  string `env:"MINIO_ENDPOINT"`
	MinioAccessKey string `env:"MINIO_ACCESS_KEY"`
	MinioSecretKey string `env:"MINIO_SECRET_KEY"`
	MinioBucket    string `env:"MINIO_BUCKET" envDefault:"lumina-media"`
	MinioUseSSL    bool   `env:"MINIO_USE_SSL" envDefault:"true"`
	// MinioPublicURL is the base URL clients use to fetch uploaded objects.
	MinioPublicURL string `env:"MINIO_PUBLIC_URL"`

	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUser     string `env:"SMTP_USER"`
	SMTPPassword string `env:"SMTP_PASSWORD"`
	MailFrom     string `env:"MAIL_FROM"`
	MailTo       string `env:"MAIL_TO"`

	SheetsCredentialsFile string `env:"SHEETS_CREDENTIALS_FILE"`
	SheetsSpreadsheetID   string `env:"SHEETS_SPREADSHEET_ID"`
	SheetsRange           string `env:"SHEETS_RANGE" envDefault:"Contacts!A:H"`
}

// Load parses environment variables and performs minimal validation.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if len(cfg.EncryptionKey) != 32 {
		return Config{}, errors.New("ENCRYPTION_KEY must be exactly 32 bytes")
	}
	return cfg, nil
}

// HTTPAddress returns the host:port pair for the HTTP server to bind to.
func (c Config) HTTPAddress() string {
	return fmt.Sprintf(":%s", c.Port)
}

// MailEnabled reports whether outbound mail is configured.
func (c Config) MailEnabled() bool {
	return c.SMTPHost != "" && c.MailTo != ""
}

// SheetsEnabled reports whether spreadsheet logging is configured.
func (c Config) SheetsEnabled() bool {
	return c.SheetsCredentialsFile != "" && c.SheetsSpreadsheetID != ""
}

// MinioEnabled reports whether object storage is configured.
func (c Config) MinioEnabled() bool {
	return c.MinioEndpoint != ""
}
