package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"strings"
	"time"

	"ltrack-server/internal/observability"
	"ltrack-server/internal/store"
	"ltrack-server/internal/tracking/session"

	"github.com/google/uuid"
)

// TrackingStore defines the database operations required by TrackingProcessor
type TrackingStore interface {
	GetAccountByUserID(ctx context.Context, userID uuid.UUID) (store.Account, error)
	CreateTrackingCodeForUser(ctx context.Context, userID uuid.UUID, accountName string, params store.CreateTrackingCodeParams) (store.TrackingCode, error)
	ListTrackingCodesWithStats(ctx context.Context, accountID uuid.UUID) ([]store.TrackingCodeWithStats, error)
	GetTrackingCodeByCodeForAccount(ctx context.Context, accountID uuid.UUID, code string) (store.TrackingCodeWithStats, error)
	GetTrackingCodeForAccount(ctx context.Context, accountID, trackingCodeID uuid.UUID) (store.TrackingCode, error)
	GetLineAccountForAccount(ctx context.Context, accountID, lineAccountID uuid.UUID) (store.LineAccount, error)
	UpdateTrackingCode(ctx context.Context, accountID, trackingCodeID uuid.UUID, params store.UpdateTrackingCodeParams) (store.TrackingCode, error)
	DeleteTrackingCode(ctx context.Context, accountID, trackingCodeID uuid.UUID) error
	GetTrackingCodeActivity(ctx context.Context, trackingCodeID uuid.UUID, now time.Time) (store.TrackingCodeActivity, error)
	ListRecentClicks(ctx context.Context, trackingCodeID uuid.UUID, limit int) ([]store.Click, error)
	ListRecentFriends(ctx context.Context, trackingCodeID uuid.UUID, limit int) ([]store.Friend, error)
	GetRedirectTarget(ctx context.Context, code string) (store.RedirectTarget, error)
	CreateClick(ctx context.Context, params store.CreateClickParams) (store.Click, error)
	GetDashboardStats(ctx context.Context, accountID uuid.UUID) (store.DashboardStatsResult, error)
	ListCodePeriodStats(ctx context.Context, accountID uuid.UUID, from, to time.Time) ([]store.CodePeriodStats, error)
}

// SessionCache stores the click sessions handed to LINE on redirect
type SessionCache interface {
	Put(id string, s session.Session)
	Get(id string) (session.Session, bool)
}

// CountryLookup resolves an IP address to an ISO country code, "" when unknown
type CountryLookup interface {
	Country(ip string) string
}

var (
	ErrTrackingCodeNotFound = errors.New("tracking code not found")
	ErrLineAccountNotFound  = errors.New("line account not found")
	ErrSessionNotFound      = errors.New("session not found")
	ErrInvalidPeriod        = errors.New("invalid period")
	ErrCodeGenerationFailed = errors.New("failed to generate a unique tracking code")
)

// Settings holds the public URLs used when building links
type Settings struct {
	BaseURL string
}

type TrackingProcessor struct {
	store    TrackingStore
	sessions SessionCache
	geo      CountryLookup
	settings Settings
	logger   *observability.Logger
}

func New(store TrackingStore, sessions SessionCache, geo CountryLookup, settings Settings, logger *observability.Logger) TrackingProcessor {
	settings.BaseURL = strings.TrimRight(settings.BaseURL, "/")
	return TrackingProcessor{
		store:    store,
		sessions: sessions,
		geo:      geo,
		settings: settings,
		logger:   logger,
	}
}

// resolveAccount returns the caller's account id. found is false when the
// user has not created anything yet.
func (p *TrackingProcessor) resolveAccount(ctx context.Context, userID uuid.UUID) (accountID uuid.UUID, found bool, err error) {
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

// TrackingURL is the public redirect link for code
func (p *TrackingProcessor) TrackingURL(code string) string {
	return p.settings.BaseURL + "/t/" + code
}

// QRCodeURL is the public QR image link for code
func (p *TrackingProcessor) QRCodeURL(code string) string {
	return p.settings.BaseURL + "/api/tracking/qr/" + code
}
