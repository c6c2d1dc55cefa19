package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"ltrack-server/internal/observability"
	"ltrack-server/internal/store"

	"github.com/google/uuid"
)

// LineStore defines the database operations required by LineProcessor
type LineStore interface {
	GetAccountByUserID(ctx context.Context, userID uuid.UUID) (store.Account, error)
	CreateLineAccountForUser(ctx context.Context, userID uuid.UUID, accountName string, params store.CreateLineAccountParams) (store.LineAccount, error)
	ListLineAccountsByAccount(ctx context.Context, accountID uuid.UUID) ([]store.LineAccountWithCount, error)
	GetLineAccountForAccount(ctx context.Context, accountID, lineAccountID uuid.UUID) (store.LineAccount, error)
	UpdateLineAccount(ctx context.Context, accountID, lineAccountID uuid.UUID, params store.UpdateLineAccountParams) (store.LineAccount, error)
	SetLineAccountWebhookURL(ctx context.Context, accountID, lineAccountID uuid.UUID, webhookURL string) (store.LineAccount, error)
	DeleteLineAccount(ctx context.Context, accountID, lineAccountID uuid.UUID) error
	GetWebhookStats(ctx context.Context, accountID uuid.UUID, since time.Time) (store.WebhookStats, error)
}

var (
	ErrLineAccountNotFound = errors.New("line account not found")
	ErrInvalidPeriod       = errors.New("invalid period")
)

// WebhookSettings describes where LINE should deliver webhooks
type WebhookSettings struct {
	BaseURL       string
	SignatureMode string
}

type LineProcessor struct {
	store    LineStore
	webhooks WebhookSettings
	logger   *observability.Logger
}

func New(store LineStore, webhooks WebhookSettings, logger *observability.Logger) LineProcessor {
	webhooks.BaseURL = strings.TrimRight(webhooks.BaseURL, "/")
	return LineProcessor{
		store:    store,
		webhooks: webhooks,
		logger:   logger,
	}
}

// AccountName is the name given to an account created on a user's first write
func AccountName(email string) string {
	return fmt.Sprintf("%s's Account", email)
}

// WebhookSetup is the result of configuring a channel's webhook URL
type WebhookSetup struct {
	WebhookURL  string            `json:"webhookUrl"`
	LineAccount store.LineAccount `json:"account"`
}

// WebhookVerification reports whether a channel has a webhook URL configured
type WebhookVerification struct {
	Verified   bool    `json:"verified"`
	WebhookURL *string `json:"webhookUrl"`
}

type WebhookURLs struct {
	Specific string `json:"specific"`
	Generic  string `json:"generic"`
}

// WebhookInfo explains how to point the LINE console at this server
type WebhookInfo struct {
	WebhookURLs     WebhookURLs `json:"webhookUrls"`
	SignatureHeader string      `json:"signatureHeader"`
	SignatureMode   string      `json:"signatureMode"`
	SupportedEvents []string    `json:"supportedEvents"`
}

type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type WebhookActivity struct {
	TotalEvents        int            `json:"totalEvents"`
	EventTypes         map[string]int `json:"eventTypes"`
	FriendsAdded       int            `json:"friendsAdded"`
	ConversionsTracked int            `json:"conversionsTracked"`
}

// WebhookStatsResponse summarises webhook activity for a period
type WebhookStatsResponse struct {
	Period    string          `json:"period"`
	DateRange DateRange       `json:"dateRange"`
	Webhook   WebhookActivity `json:"webhook"`
}

var webhookStatsPeriods = map[string]time.Duration{
	"1h":  time.Hour,
	"24h": 24 * time.Hour,
	"7d":  7 * 24 * time.Hour,
	"30d": 30 * 24 * time.Hour,
}

// resolveAccount returns the caller's account id. found is false when the
// user has not created anything yet.
func (p *LineProcessor) resolveAccount(ctx context.Context, userID uuid.UUID) (accountID uuid.UUID, found bool, err error) {
	account, err := p.store.GetAccountByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return uuid.Nil, false, nil
		}
		p.logger.Error(ctx, "failed to get account by user id", err)
		return uuid.Nil, false, err
	}
	return account.ID, true, nil
}

// ListLineAccounts returns the caller's channels with their tracking code counts
func (p *LineProcessor) ListLineAccounts(ctx context.Context, userID uuid.UUID) ([]store.LineAccountWithCount, error) {
	accountID, found, err := p.resolveAccount(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !found {
		return []store.LineAccountWithCount{}, nil
	}

	lineAccounts, err := p.store.ListLineAccountsByAccount(ctx, accountID)
	if err != nil {
		p.logger.Error(ctx, "failed to list line accounts", err)
		return nil, err
	}
	return lineAccounts, nil
}

// CreateLineAccount registers a channel, creating the caller's account if needed
func (p *LineProcessor) CreateLineAccount(ctx context.Context, userID uuid.UUID, email string, params store.CreateLineAccountParams) (store.LineAccount, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "channel_id", Value: params.ChannelID})

	lineAccount, err := p.store.CreateLineAccountForUser(ctx, userID, AccountName(email), params)
	if err != nil {
		p.logger.Error(ctx, "failed to create line account", err)
		return store.LineAccount{}, err
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "line_account_id", Value: lineAccount.ID.String()})
	p.logger.Info(ctx, "line account created")
	return lineAccount, nil
}

// UpdateLineAccount applies a partial update to one of the caller's channels
func (p *LineProcessor) UpdateLineAccount(ctx context.Context, userID, lineAccountID uuid.UUID, params store.UpdateLineAccountParams) (store.LineAccount, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "line_account_id", Value: lineAccountID.String()})

	accountID, found, err := p.resolveAccount(ctx, userID)
	if err != nil {
		return store.LineAccount{}, err
	}
	if !found {
		return store.LineAccount{}, ErrLineAccountNotFound
	}

	lineAccount, err := p.store.UpdateLineAccount(ctx, accountID, lineAccountID, params)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.LineAccount{}, ErrLineAccountNotFound
		}
		p.logger.Error(ctx, "failed to update line account", err)
		return store.LineAccount{}, err
	}
	return lineAccount, nil
}

// DeleteLineAccount removes one of the caller's channels with its codes and events
func (p *LineProcessor) DeleteLineAccount(ctx context.Context, userID, lineAccountID uuid.UUID) error {
	ctx = observability.WithFields(ctx, observability.Field{Key: "line_account_id", Value: lineAccountID.String()})

	accountID, found, err := p.resolveAccount(ctx, userID)
	if err != nil {
		return err
	}
	if !found {
		return ErrLineAccountNotFound
	}

	if err := p.store.DeleteLineAccount(ctx, accountID, lineAccountID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrLineAccountNotFound
		}
		p.logger.Error(ctx, "failed to delete line account", err)
		return err
	}

	p.logger.Info(ctx, "line account deleted")
	return nil
}

func (p *LineProcessor) specificWebhookURL(lineAccountID uuid.UUID) string {
	return fmt.Sprintf("%s/webhook/line/%s", p.webhooks.BaseURL, lineAccountID)
}

// SetupWebhook stores the account specific webhook URL on the channel
func (p *LineProcessor) SetupWebhook(ctx context.Context, userID, lineAccountID uuid.UUID) (WebhookSetup, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "line_account_id", Value: lineAccountID.String()})

	accountID, found, err := p.resolveAccount(ctx, userID)
	if err != nil {
		return WebhookSetup{}, err
	}
	if !found {
		return WebhookSetup{}, ErrLineAccountNotFound
	}

	webhookURL := p.specificWebhookURL(lineAccountID)
	lineAccount, err := p.store.SetLineAccountWebhookURL(ctx, accountID, lineAccountID, webhookURL)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return WebhookSetup{}, ErrLineAccountNotFound
		}
		p.logger.Error(ctx, "failed to set webhook url", err)
		return WebhookSetup{}, err
	}

	p.logger.Info(observability.WithFields(ctx, observability.Field{Key: "webhook_url", Value: webhookURL}), "webhook url set")
	return WebhookSetup{WebhookURL: webhookURL, LineAccount: lineAccount}, nil
}

func (p *LineProcessor) getOwnedLineAccount(ctx context.Context, userID, lineAccountID uuid.UUID) (store.LineAccount, error) {
	accountID, found, err := p.resolveAccount(ctx, userID)
	if err != nil {
		return store.LineAccount{}, err
	}
	if !found {
		return store.LineAccount{}, ErrLineAccountNotFound
	}

	lineAccount, err := p.store.GetLineAccountForAccount(ctx, accountID, lineAccountID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.LineAccount{}, ErrLineAccountNotFound
		}
		p.logger.Error(ctx, "failed to get line account", err)
		return store.LineAccount{}, err
	}
	return lineAccount, nil
}

// VerifyWebhook reports whether the caller's channel has a webhook URL configured
func (p *LineProcessor) VerifyWebhook(ctx context.Context, userID, lineAccountID uuid.UUID) (WebhookVerification, error) {
	lineAccount, err := p.getOwnedLineAccount(ctx, userID, lineAccountID)
	if err != nil {
		return WebhookVerification{}, err
	}
	return WebhookVerification{
		Verified:   lineAccount.WebhookURL != nil && *lineAccount.WebhookURL != "",
		WebhookURL: lineAccount.WebhookURL,
	}, nil
}

// GetWebhookInfo returns the URLs and signature settings for one of the caller's channels
func (p *LineProcessor) GetWebhookInfo(ctx context.Context, userID, lineAccountID uuid.UUID) (WebhookInfo, error) {
	if _, err := p.getOwnedLineAccount(ctx, userID, lineAccountID); err != nil {
		return WebhookInfo{}, err
	}
	return WebhookInfo{
		WebhookURLs: WebhookURLs{
			Specific: p.specificWebhookURL(lineAccountID),
			Generic:  p.webhooks.BaseURL + "/webhook/line",
		},
		SignatureHeader: "X-Line-Signature",
		SignatureMode:   p.webhooks.SignatureMode,
		SupportedEvents: []string{"follow", "unfollow", "message", "postback"},
	}, nil
}

// GetWebhookStats aggregates webhook activity for the caller's account over period
func (p *LineProcessor) GetWebhookStats(ctx context.Context, userID uuid.UUID, period string, now time.Time) (WebhookStatsResponse, error) {
	if period == "" {
		period = "7d"
	}
	window, ok := webhookStatsPeriods[period]
	if !ok {
		return WebhookStatsResponse{}, ErrInvalidPeriod
	}
	since := now.Add(-window)

	resp := WebhookStatsResponse{
		Period:    period,
		DateRange: DateRange{Start: since, End: now},
		Webhook:   WebhookActivity{EventTypes: map[string]int{}},
	}

	accountID, found, err := p.resolveAccount(ctx, userID)
	if err != nil {
		return WebhookStatsResponse{}, err
	}
	if !found {
		return resp, nil
	}

	stats, err := p.store.GetWebhookStats(ctx, accountID, since)
	if err != nil {
		p.logger.Error(ctx, "failed to get webhook stats", err)
		return WebhookStatsResponse{}, err
	}

	for _, c := range stats.EventCounts {
		resp.Webhook.EventTypes[c.EventType] = c.Count
	}
	resp.Webhook.TotalEvents = stats.TotalEvents
	resp.Webhook.FriendsAdded = stats.FriendsAdded
	resp.Webhook.ConversionsTracked = stats.ConversionsTracked
	return resp, nil
}
