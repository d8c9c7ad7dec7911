package server

import (
	"context"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/pranavc1515/email-sender/docs"
	"github.com/pranavc1515/email-sender/internal/config"
	"github.com/pranavc1515/email-sender/internal/handlers"
	"github.com/pranavc1515/email-sender/internal/logger"
	"github.com/pranavc1515/email-sender/internal/mailer"
	"github.com/pranavc1515/email-sender/internal/middleware"
	"github.com/pranavc1515/email-sender/internal/services"
)

// verifyTimeout bounds the startup connection check.
const verifyTimeout = 30 * time.Second

// Handlers holds the HTTP handlers served by the API.
type Handlers struct {
	Health *handlers.HealthHandler
	Email  *handlers.EmailHandler
}

// InitializeHandlers builds the mail transport selected by cfg, starts a
// background connection check and returns the handlers.
func InitializeHandlers(ctx context.Context, cfg *config.Config) (*Handlers, error) {
	sender, err := mailer.NewTransport(cfg)
	if err != nil {
		return nil, err
	}

	if v, ok := sender.(mailer.Verifier); ok {
		go verifyTransport(ctx, v, logger.Log)
	}

	return NewHandlers(sender, cfg.Sender()), nil
}

// NewHandlers wires the handlers over an existing transport.
func NewHandlers(sender mailer.Sender, from string) *Handlers {
	return &Handlers{
		Health: handlers.NewHealthHandler(),
		Email:  handlers.NewEmailHandler(services.NewEmailService(sender, from, logger.Log)),
	}
}

// verifyTransport logs whether the transport can connect and authenticate.
// A failure leaves the API running; sends will report the problem per call.
func verifyTransport(ctx context.Context, v mailer.Verifier, log *zap.Logger) error {
	ctx, cancel := context.WithTimeout(ctx, verifyTimeout)
	defer cancel()

	if err := v.Verify(ctx); err != nil {
		log.Error("Email transporter configuration error", zap.Error(err))
		return err
	}
	log.Info("Email server is ready to take our messages")
	return nil
}

// InitializeRoutes installs middleware and routes on router.
func InitializeRoutes(router *gin.Engine, cfg *config.Config, h *Handlers) {
	router.Use(configureCORS(cfg.CORS))

	// Add correlation ID middleware for request tracing
	router.Use(middleware.CorrelationIDMiddleware())

	isDevelopment := !cfg.IsRelease()
	router.Use(middleware.EnhancedLoggingMiddleware(isDevelopment))
	if !isDevelopment {
		router.Use(middleware.RequestLoggingMiddleware())
	}

	if cfg.EnableDocs {
		router.GET("/api-docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	router.GET("/", h.Health.Health)

	api := router.Group("/api")
	{
		api.POST("/send-email", h.Email.SendEmail)
		api.POST("/send-bulk-email", h.Email.SendBulkEmail)
	}
}

// configureCORS builds the CORS middleware. With no configured origins
// every origin is allowed.
func configureCORS(c config.CORSConfig) gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()

	if len(c.AllowedOrigins) == 0 {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = c.AllowedOrigins
	}

	if len(c.AllowedMethods) == 0 {
		corsConfig.AllowMethods = []string{"GET", "HEAD", "PUT", "PATCH", "POST", "DELETE", "OPTIONS"}
	} else {
		corsConfig.AllowMethods = c.AllowedMethods
	}

	if len(c.AllowedHeaders) == 0 {
		corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.CorrelationIDHeader}
	} else {
		corsConfig.AllowHeaders = c.AllowedHeaders
	}

	corsConfig.ExposeHeaders = []string{middleware.CorrelationIDHeader}
	if len(c.ExposedHeaders) > 0 {
		corsConfig.ExposeHeaders = append(corsConfig.ExposeHeaders, c.ExposedHeaders...)
	}

	return cors.New(corsConfig)
}
