package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"
	"time"

	"ltrack-server/internal/store"

	"github.com/google/uuid"
)

// WebhookStore defines the database operations required by WebhookProcessor
type WebhookStore interface {
	GetLineAccountByID(ctx context.Context, lineAccountID uuid.UUID) (store.LineAccount, error)
	GetFirstLineAccount(ctx context.Context) (store.LineAccount, error)
	GetFriendByLineUserID(ctx context.Context, lineUserID string) (store.Friend, error)
	CreateLineEvent(ctx context.Context, params store.CreateLineEventParams) (store.LineEvent, error)
	FindLatestClickInWindow(ctx context.Context, lineAccountID uuid.UUID, from, to time.Time) (store.Click, error)
	GetOldestTrackingCodeForLineAccount(ctx context.Context, lineAccountID uuid.UUID) (store.TrackingCode, error)
	CreateFriend(ctx context.Context, params store.CreateFriendParams) (store.Friend, error)
}

// Forwarder relays the raw webhook body to downstream tools without blocking
type Forwarder interface {
	Forward(ctx context.Context, body []byte, signature string)
}
