package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"time"

	"ltrack-server/internal/observability"
	"ltrack-server/internal/store"

	"github.com/google/uuid"
)

// AIStore defines the read-only aggregates the predictions are computed from
type AIStore interface {
	GetAccountByUserID(ctx context.Context, userID uuid.UUID) (store.Account, error)
	CountClicksSince(ctx context.Context, accountID uuid.UUID, since time.Time) (int, error)
	CountFriendsAddedBetween(ctx context.Context, accountID uuid.UUID, from, to time.Time) (int, error)
	CountConversionsSince(ctx context.Context, accountID uuid.UUID, since time.Time) (int, error)
	GetDailyClickCounts(ctx context.Context, accountID uuid.UUID, since time.Time) ([]store.DailyCount, error)
	GetDailyFriendCounts(ctx context.Context, accountID uuid.UUID, since time.Time) ([]store.DailyCount, error)
	ListFriendEngagement(ctx context.Context, accountID uuid.UUID) ([]store.FriendEngagement, error)
}

var ErrInvalidInvestmentAmount = errors.New("investment amount must be a positive number")

const (
	predictionPeriod = "30d"
	predictionWindow = 30 * 24 * time.Hour
)

// AIProcessor computes rule-based predictions over an account's history
type AIProcessor struct {
	store  AIStore
	logger *observability.Logger
}

func New(store AIStore, logger *observability.Logger) AIProcessor {
	return AIProcessor{
		store:  store,
		logger: logger,
	}
}

func (p *AIProcessor) resolveAccount(ctx context.Context, userID uuid.UUID) (uuid.UUID, bool, error) {
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
