package server

import (
	"context"
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	awsclient "github.com/pranavc1515/email-sender/internal/client/aws"
	"github.com/pranavc1515/email-sender/internal/config"
	"github.com/pranavc1515/email-sender/internal/logger"
)

var secretArnEnvVars = []string{"EMAIL_USER_ARN", "EMAIL_PASS_ARN", "RESEND_API_KEY_ARN"}

// NewRouter loads the configuration and returns a fully wired router.
func NewRouter(ctx context.Context) (*gin.Engine, *config.Config, error) {
	cfg, warnings, err := config.Load(ctx, newSecretGetter(ctx))
	if err != nil {
		return nil, nil, err
	}
	for _, w := range warnings {
		logger.Warn(w)
	}

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	h, err := InitializeHandlers(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	InitializeRoutes(router, cfg, h)

	logger.Info("Email sender configured",
		zap.String("stage", cfg.Stage),
		zap.String("provider", cfg.MailProvider),
		zap.String("smtp_host", cfg.SMTP.Host),
		zap.Int("smtp_port", cfg.SMTP.Port),
		zap.Bool("docs", cfg.EnableDocs),
	)
	return router, cfg, nil
}

// newSecretGetter uses Secrets Manager when any secret ARN is configured
// and plain environment variables otherwise.
func newSecretGetter(ctx context.Context) config.SecretGetter {
	for _, key := range secretArnEnvVars {
		if os.Getenv(key) == "" {
			continue
		}
		client, err := awsclient.NewSecretsManagerClient(ctx)
		if err != nil {
			logger.Warn("Secrets Manager unavailable, reading secrets from environment", zap.Error(err))
			return awsclient.EnvSecrets{}
		}
		return client
	}
	return awsclient.EnvSecrets{}
}
