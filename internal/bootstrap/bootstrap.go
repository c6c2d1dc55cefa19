package bootstrap

import (
	"context"
	"fmt"
	"time"

	"ltrack-server/internal/config"
	"ltrack-server/internal/observability"
	"ltrack-server/internal/ratelimit"
	"ltrack-server/internal/store"

	aiHandler "ltrack-server/internal/ai/handler"
	aiProcessor "ltrack-server/internal/ai/processor"
	"ltrack-server/internal/auth/handler"
	"ltrack-server/internal/auth/processor"
	"ltrack-server/internal/clients/geoip"
	"ltrack-server/internal/clients/mail"
	"ltrack-server/internal/email"
	lineHandler "ltrack-server/internal/line/handler"
	lineProcessor "ltrack-server/internal/line/processor"
	trackingHandler "ltrack-server/internal/tracking/handler"
	trackingProcessor "ltrack-server/internal/tracking/processor"
	"ltrack-server/internal/tracking/session"
	"ltrack-server/internal/webhooks/forwarder"
	webhookHandler "ltrack-server/internal/webhooks/handler"
	webhookProcessor "ltrack-server/internal/webhooks/processor"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store  store.Store
	Logger *observability.Logger

	// Handlers
	AuthHandler     handler.Handler
	LineHandler     lineHandler.Handler
	TrackingHandler trackingHandler.Handler
	WebhookHandler  webhookHandler.Handler
	AIHandler       aiHandler.Handler

	RateLimiter *ratelimit.Service
	Metrics     *observability.Metrics

	// Resources released on shutdown
	Forwarder *forwarder.Forwarder
	GeoIP     *geoip.Reader
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger:  logger,
		Metrics: observability.NewMetrics(),
	}

	// Initialize database store
	var err error
	deps.Store, err = store.New(cfg.Database.ConnectionString(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := deps.Store.Ping(pingCtx); err != nil {
		return nil, fmt.Errorf("failed to reach database: %w", err)
	}

	if cfg.Database.AutoMigrate {
		if err := deps.Store.Migrate(ctx); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		logger.Info(ctx, "database migrations applied")
	}

	// Initialize clients
	var sender email.Sender
	if cfg.Services.ResendAPIKey != "" {
		mailClient, err := mail.NewResendClient(cfg.Services.ResendAPIKey, cfg.Services.DefaultEmailSender, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create resend client: %w", err)
		}
		sender = mailClient
	} else {
		logger.Warn(ctx, "RESEND_API_KEY not set, welcome emails are disabled")
	}
	emailService := email.New(sender, cfg.Services.FrontendURL, logger)

	deps.GeoIP, err = geoip.Open(cfg.Services.GeoIPDatabasePath, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open geoip database: %w", err)
	}

	deps.Forwarder = forwarder.New(cfg.Webhook.ForwardURLs, cfg.Webhook.ForwardTimeout, logger)
	deps.RateLimiter = ratelimit.NewService(cfg.RateLimit.MaxRequests, cfg.RateLimit.Window, logger)

	// Initialize auth processor and handler
	authProc := processor.New(&deps.Store, cfg.Auth.JWTSecret, emailService, logger)
	deps.AuthHandler = handler.New(authProc, logger)

	// Initialize LINE account processor and handler
	lineProc := lineProcessor.New(&deps.Store, lineProcessor.WebhookSettings{
		BaseURL:       cfg.Webhook.BaseURL,
		SignatureMode: cfg.Webhook.SignatureMode,
	}, logger)
	deps.LineHandler = lineHandler.New(lineProc, logger)

	// Initialize tracking processor and handler
	sessions := session.New(cfg.Tracking.SessionCacheSize, cfg.Tracking.SessionTTL)
	trackingProc := trackingProcessor.New(&deps.Store, sessions, deps.GeoIP, trackingProcessor.Settings{
		BaseURL: cfg.Tracking.BaseURL,
	}, logger)
	deps.TrackingHandler = trackingHandler.New(trackingProc, cfg.Tracking.FallbackURL, deps.Metrics, logger)

	// Initialize webhook processor and handler
	policy, err := webhookProcessor.ParseSignaturePolicy(cfg.Webhook.SignatureMode)
	if err != nil {
		return nil, err
	}
	webhookProc := webhookProcessor.New(
		&deps.Store,
		webhookProcessor.NewSignatureVerifier(policy, logger),
		deps.Forwarder,
		webhookProcessor.Settings{
			GenericFallback: cfg.Webhook.GenericFallback,
			ChannelSecret:   cfg.Webhook.ChannelSecret,
		},
		logger,
	)
	deps.WebhookHandler = webhookHandler.New(webhookProc, deps.Metrics, logger)

	// Initialize prediction processor and handler
	aiProc := aiProcessor.New(&deps.Store, logger)
	deps.AIHandler = aiHandler.New(aiProc, logger)

	return deps, nil
}

// Cleanup waits for in-flight forwards and closes all resources
func (d *Dependencies) Cleanup() {
	ctx := context.Background()
	if d.Forwarder != nil {
		d.Forwarder.Wait()
	}
	if err := d.GeoIP.Close(); err != nil {
		d.Logger.Error(ctx, "failed to close geoip database", err)
	}
	if err := d.Store.Close(); err != nil {
		d.Logger.Error(ctx, "failed to close database", err)
	}
}
