package config

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mapSecrets resolves secrets from a fixed map keyed by the fallback var.
type mapSecrets map[string]string

func (m mapSecrets) GetSecretString(_ context.Context, _ string, fallbackEnvVar string) (string, error) {
	if v, ok := m[fallbackEnvVar]; ok {
		return v, nil
	}
	return "", fmt.Errorf("secret %s not found", fallbackEnvVar)
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"STAGE", "PORT", "GIN_MODE", "MAIL_PROVIDER", "API_DOCS_ENABLED",
		"SMTP_HOST", "SMTP_PORT", "SMTP_SECURE", "SMTP_TIMEOUT", "EMAIL_FROM",
		"CORS_ALLOWED_ORIGINS", "CORS_ALLOWED_METHODS", "CORS_ALLOWED_HEADERS", "CORS_EXPOSED_HEADERS",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, warnings, err := Load(context.Background(), mapSecrets{
		"EMAIL_USER": "sender@gmail.com",
		"EMAIL_PASS": "app-password",
	})
	require.NoError(t, err)
	assert.Empty(t, warnings)

	assert.Equal(t, "local", cfg.Stage)
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, ":3000", cfg.Addr())
	assert.Equal(t, "smtp", cfg.MailProvider)
	assert.True(t, cfg.EnableDocs)
	assert.False(t, cfg.IsRelease())

	assert.Equal(t, "smtp.gmail.com", cfg.SMTP.Host)
	assert.Equal(t, 465, cfg.SMTP.Port)
	assert.True(t, cfg.SMTP.Secure)
	assert.Equal(t, 30*time.Second, cfg.SMTP.Timeout)
	assert.Equal(t, "sender@gmail.com", cfg.SMTP.Username)
	assert.Equal(t, "app-password", cfg.SMTP.Password)
	assert.Equal(t, "sender@gmail.com", cfg.SMTP.From)

	assert.Empty(t, cfg.CORS.AllowedOrigins)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("STAGE", "prod")
	t.Setenv("PORT", "8080")
	t.Setenv("GIN_MODE", "release")
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_PORT", "587")
	t.Setenv("SMTP_TIMEOUT", "45s")
	t.Setenv("EMAIL_FROM", "Support <support@example.com>")
	t.Setenv("API_DOCS_ENABLED", "false")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com ,")

	cfg, _, err := Load(context.Background(), mapSecrets{"EMAIL_USER": "u", "EMAIL_PASS": "p"})
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Stage)
	assert.Equal(t, "8080", cfg.Port)
	assert.True(t, cfg.IsRelease())
	assert.False(t, cfg.EnableDocs)
	assert.Equal(t, "smtp.example.com", cfg.SMTP.Host)
	assert.Equal(t, 587, cfg.SMTP.Port)
	assert.False(t, cfg.SMTP.Secure, "non-465 ports default to STARTTLS")
	assert.Equal(t, 45*time.Second, cfg.SMTP.Timeout)
	assert.Equal(t, "Support <support@example.com>", cfg.SMTP.From)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_MissingCredentialsOnlyWarn(t *testing.T) {
	clearEnv(t)

	cfg, warnings, err := Load(context.Background(), mapSecrets{})
	require.NoError(t, err)
	assert.Len(t, warnings, 2)
	assert.Empty(t, cfg.SMTP.Username)
	assert.Empty(t, cfg.SMTP.Password)
}

func TestLoad_Resend(t *testing.T) {
	clearEnv(t)
	t.Setenv("MAIL_PROVIDER", "Resend")

	cfg, warnings, err := Load(context.Background(), mapSecrets{
		"EMAIL_USER":     "noreply@example.com",
		"RESEND_API_KEY": "re_test",
	})
	require.NoError(t, err)
	assert.Empty(t, warnings, "resend does not need EMAIL_PASS")
	assert.Equal(t, "resend", cfg.MailProvider)
	assert.Equal(t, "re_test", cfg.Resend.APIKey)
	assert.Equal(t, "noreply@example.com", cfg.Resend.From)
	assert.Equal(t, "noreply@example.com", cfg.Sender())
}

func TestConfig_Sender(t *testing.T) {
	cfg := &Config{
		MailProvider: "smtp",
		SMTP:         SMTPConfig{From: "smtp@example.com"},
		Resend:       ResendConfig{From: "resend@example.com"},
	}
	assert.Equal(t, "smtp@example.com", cfg.Sender())

	cfg.MailProvider = "resend"
	assert.Equal(t, "resend@example.com", cfg.Sender())
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "stage", key: "STAGE", val: "staging"},
		{name: "provider", key: "MAIL_PROVIDER", val: "carrier-pigeon"},
		{name: "port", key: "SMTP_PORT", val: "abc"},
		{name: "secure", key: "SMTP_SECURE", val: "maybe"},
		{name: "timeout", key: "SMTP_TIMEOUT", val: "soon"},
		{name: "docs", key: "API_DOCS_ENABLED", val: "sometimes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.val)

			_, _, err := Load(context.Background(), mapSecrets{})
			assert.Error(t, err)
		})
	}
}

func TestGetDuration_PlainSeconds(t *testing.T) {
	t.Setenv("SMTP_TIMEOUT", "12")
	d, err := getDuration("SMTP_TIMEOUT", time.Second)
	require.NoError(t, err)
	assert.Equal(t, 12*time.Second, d)
}
