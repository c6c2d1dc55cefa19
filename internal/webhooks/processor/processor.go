package processor

import (
	"context"
	"errors"

	"ltrack-server/internal/observability"
	"ltrack-server/internal/store"

	"github.com/google/uuid"
)

var (
	ErrLineAccountNotFound = errors.New("line account not found")
	ErrInvalidPayload      = errors.New("invalid webhook payload")
)

// Settings controls how the generic endpoint resolves its LINE account
type Settings struct {
	// GenericFallback lets /webhook/line attribute events to the first LINE account in the system
	GenericFallback bool
	// ChannelSecret verifies generic webhooks when no account is resolved
	ChannelSecret string
}

// WebhookProcessor ingests LINE platform webhooks
type WebhookProcessor struct {
	store     WebhookStore
	verifier  SignatureVerifier
	forwarder Forwarder
	settings  Settings
	logger    *observability.Logger
}

func New(store WebhookStore, verifier SignatureVerifier, forwarder Forwarder, settings Settings, logger *observability.Logger) WebhookProcessor {
	return WebhookProcessor{
		store:     store,
		verifier:  verifier,
		forwarder: forwarder,
		settings:  settings,
		logger:    logger,
	}
}

// resolveAccount loads the LINE account named in the webhook path. A
// malformed id is reported as not found.
func (p *WebhookProcessor) resolveAccount(ctx context.Context, rawID string) (store.LineAccount, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return store.LineAccount{}, ErrLineAccountNotFound
	}

	lineAccount, err := p.store.GetLineAccountByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.LineAccount{}, ErrLineAccountNotFound
		}
		p.logger.Error(ctx, "failed to get line account", err)
		return store.LineAccount{}, err
	}
	return lineAccount, nil
}

// resolveFallbackAccount returns the first LINE account when the generic
// fallback is enabled. found is false otherwise.
func (p *WebhookProcessor) resolveFallbackAccount(ctx context.Context) (lineAccount store.LineAccount, found bool, err error) {
	if !p.settings.GenericFallback {
		return store.LineAccount{}, false, nil
	}

	lineAccount, err = p.store.GetFirstLineAccount(ctx)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.LineAccount{}, false, nil
		}
		p.logger.Error(ctx, "failed to get fallback line account", err)
		return store.LineAccount{}, false, err
	}
	return lineAccount, true, nil
}
