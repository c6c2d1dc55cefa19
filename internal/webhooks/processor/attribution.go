package processor

import (
	"context"
	"errors"
	"time"

	"ltrack-server/internal/observability"
	"ltrack-server/internal/store"

	"github.com/google/uuid"
)

const (
	DisplayNameTracked = "New Friend"
	DisplayNameDirect  = "Direct Add"

	ConversionFriendAdded = "friend_added"
	conversionValue       = 1.0
	conversionCurrency    = "JPY"
)

// AttributionWindows are tried in order; the first window containing a click wins
var AttributionWindows = []time.Duration{5 * time.Minute, 15 * time.Minute, 30 * time.Minute}

// handleFollow attributes a new follower to the most recent click on the
// channel's codes, or to the channel's oldest code as a direct add.
func (p *WebhookProcessor) handleFollow(ctx context.Context, lineAccount store.LineAccount, lineUserID string, at time.Time) error {
	existing, err := p.store.GetFriendByLineUserID(ctx, lineUserID)
	if err == nil {
		p.logger.Info(observability.WithFields(ctx, observability.Field{Key: "friend_id", Value: existing.ID.String()}), "friend re-followed")
		return nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return err
	}

	click, matched, err := p.findAttributedClick(ctx, lineAccount.ID, at)
	if err != nil {
		return err
	}

	if matched {
		ctx = observability.WithFields(ctx,
			observability.Field{Key: "tracking_code_id", Value: click.TrackingCodeID.String()},
			observability.Field{Key: "click_id", Value: click.ID.String()},
		)
		return p.recordFriend(ctx, store.CreateFriendParams{
			TrackingCodeID: click.TrackingCodeID,
			LineUserID:     lineUserID,
			DisplayName:    DisplayNameTracked,
			AddedAt:        at,
			Conversion: &store.CreateConversionParams{
				EventType: ConversionFriendAdded,
				Value:     conversionValue,
				Currency:  conversionCurrency,
				Timestamp: at,
			},
		})
	}

	defaultCode, err := p.store.GetOldestTrackingCodeForLineAccount(ctx, lineAccount.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			p.logger.Warn(ctx, "no tracking codes for line account, follow not recorded")
			return nil
		}
		return err
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "tracking_code_id", Value: defaultCode.ID.String()})
	return p.recordFriend(ctx, store.CreateFriendParams{
		TrackingCodeID: defaultCode.ID,
		LineUserID:     lineUserID,
		DisplayName:    DisplayNameDirect,
		AddedAt:        at,
	})
}

func (p *WebhookProcessor) findAttributedClick(ctx context.Context, lineAccountID uuid.UUID, at time.Time) (store.Click, bool, error) {
	for _, window := range AttributionWindows {
		click, err := p.store.FindLatestClickInWindow(ctx, lineAccountID, at.Add(-window), at)
		if err == nil {
			return click, true, nil
		}
		if !errors.Is(err, store.ErrNotFound) {
			return store.Click{}, false, err
		}
	}
	return store.Click{}, false, nil
}

// recordFriend writes the friend row. Losing the race to a concurrent
// follow for the same user is not an error.
func (p *WebhookProcessor) recordFriend(ctx context.Context, params store.CreateFriendParams) error {
	friend, err := p.store.CreateFriend(ctx, params)
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			p.logger.Info(ctx, "friend already recorded by a concurrent event")
			return nil
		}
		return err
	}

	p.logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "friend_id", Value: friend.ID.String()},
		observability.Field{Key: "display_name", Value: params.DisplayName},
	), "friend added")
	return nil
}
