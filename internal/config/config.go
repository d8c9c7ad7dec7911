package config

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pranavc1515/email-sender/internal/constants"
	"github.com/pranavc1515/email-sender/internal/helpers"
)

const (
	DefaultPort        = "3000"
	DefaultSMTPHost    = "smtp.gmail.com"
	DefaultSMTPPort    = 465
	DefaultSMTPTimeout = 30 * time.Second
)

// SecretGetter resolves a secret either through an ARN held in
// secretArnEnvVar or directly from fallbackEnvVar.
type SecretGetter interface {
	GetSecretString(ctx context.Context, secretArnEnvVar string, fallbackEnvVar string) (string, error)
}

// Config is built once at startup and passed to everything that needs it.
type Config struct {
	Stage        string
	Port         string
	GinMode      string
	MailProvider string
	EnableDocs   bool
	SMTP         SMTPConfig
	Resend       ResendConfig
	CORS         CORSConfig
}

// SMTPConfig holds the SMTP submission settings.
type SMTPConfig struct {
	Host     string
	Port     int
	Secure   bool
	Username string
	Password string
	From     string
	Timeout  time.Duration
}

// ResendConfig holds the Resend API settings.
type ResendConfig struct {
	APIKey string
	From   string
}

// CORSConfig holds the cross-origin policy. An empty AllowedOrigins list
// allows every origin.
type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
	ExposedHeaders []string
}

// IsRelease reports whether gin runs in release mode.
func (c *Config) IsRelease() bool {
	return c.GinMode == "release"
}

// Sender returns the From address for the selected mail provider.
func (c *Config) Sender() string {
	if c.MailProvider == constants.ResendProvider {
		return c.Resend.From
	}
	return c.SMTP.From
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

// Load reads the configuration from the environment. Missing mail
// credentials are not an error: the service still starts and the send
// endpoints fail per call.
func Load(ctx context.Context, secrets SecretGetter) (*Config, []string, error) {
	var warnings []string

	stage := os.Getenv("STAGE")
	if stage == "" {
		stage = helpers.StageLocal
	}
	if !helpers.IsValidStage(stage) {
		return nil, nil, fmt.Errorf("invalid STAGE environment variable: '%s'. Must be one of: %s, %s, %s",
			stage, helpers.StageProd, helpers.StageDev, helpers.StageLocal)
	}

	cfg := &Config{
		Stage:        stage,
		Port:         getEnvWithDefault("PORT", DefaultPort),
		GinMode:      os.Getenv("GIN_MODE"),
		MailProvider: strings.ToLower(getEnvWithDefault("MAIL_PROVIDER", constants.SMTPProvider)),
	}

	switch cfg.MailProvider {
	case constants.SMTPProvider, constants.ResendProvider:
	default:
		return nil, nil, fmt.Errorf("invalid MAIL_PROVIDER: '%s'. Must be one of: %s, %s",
			cfg.MailProvider, constants.SMTPProvider, constants.ResendProvider)
	}

	var err error
	if cfg.EnableDocs, err = getBool("API_DOCS_ENABLED", true); err != nil {
		return nil, nil, err
	}

	smtpPort, err := getInt("SMTP_PORT", DefaultSMTPPort)
	if err != nil {
		return nil, nil, err
	}
	secure, err := getBool("SMTP_SECURE", smtpPort == DefaultSMTPPort)
	if err != nil {
		return nil, nil, err
	}
	timeout, err := getDuration("SMTP_TIMEOUT", DefaultSMTPTimeout)
	if err != nil {
		return nil, nil, err
	}

	cfg.SMTP = SMTPConfig{
		Host:    getEnvWithDefault("SMTP_HOST", DefaultSMTPHost),
		Port:    smtpPort,
		Secure:  secure,
		Timeout: timeout,
	}

	if cfg.SMTP.Username, err = secrets.GetSecretString(ctx, "EMAIL_USER_ARN", "EMAIL_USER"); err != nil {
		warnings = append(warnings, "EMAIL_USER is not configured, outgoing mail has no sender")
	}
	if cfg.MailProvider == constants.SMTPProvider {
		if cfg.SMTP.Password, err = secrets.GetSecretString(ctx, "EMAIL_PASS_ARN", "EMAIL_PASS"); err != nil {
			warnings = append(warnings, "EMAIL_PASS is not configured, SMTP authentication will fail")
		}
	}
	cfg.SMTP.From = getEnvWithDefault("EMAIL_FROM", cfg.SMTP.Username)

	if cfg.MailProvider == constants.ResendProvider {
		if cfg.Resend.APIKey, err = secrets.GetSecretString(ctx, "RESEND_API_KEY_ARN", "RESEND_API_KEY"); err != nil {
			warnings = append(warnings, "RESEND_API_KEY is not configured, Resend requests will be rejected")
		}
		cfg.Resend.From = cfg.SMTP.From
	}

	cfg.CORS = CORSConfig{
		AllowedOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
		AllowedMethods: splitList(os.Getenv("CORS_ALLOWED_METHODS")),
		AllowedHeaders: splitList(os.Getenv("CORS_ALLOWED_HEADERS")),
		ExposedHeaders: splitList(os.Getenv("CORS_EXPOSED_HEADERS")),
	}

	return cfg, warnings, nil
}

// getEnvWithDefault returns environment variable value or default
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

func getBool(key string, defaultValue bool) (bool, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

// getDuration accepts Go duration strings ("45s") or a plain number of seconds.
func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	if seconds, err := strconv.Atoi(raw); err == nil {
		return time.Duration(seconds) * time.Second, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
