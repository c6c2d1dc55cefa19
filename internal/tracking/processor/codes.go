package processor

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

const (
	codePrefix         = "ltk_"
	codeRandomLength   = 12
	maxCodeAttempts    = 5
	detailClicksLimit  = 100
	detailFriendsLimit = 50
)

// LineAccountSummary is the channel information shown next to a tracking code
type LineAccountSummary struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	ChannelID string    `json:"channelId"`
}

// TrackingCodeView is a tracking code with its public links
type TrackingCodeView struct {
	store.TrackingCode
	LineAccount *LineAccountSummary `json:"lineAccount,omitempty"`
	TrackingURL string              `json:"trackingUrl"`
	QRCodeURL   string              `json:"qrCodeUrl"`
}

type CodeStats struct {
	TotalClicks    int    `json:"totalClicks"`
	TotalFriends   int    `json:"totalFriends"`
	ConversionRate string `json:"conversionRate"`
}

// TrackingCodeListItem is one row of the tracking code list
type TrackingCodeListItem struct {
	TrackingCodeView
	Clicks      int       `json:"clicks"`
	Conversions int       `json:"conversions"`
	Stats       CodeStats `json:"stats"`
}

type PeriodCounts struct {
	Clicks  int `json:"clicks"`
	Friends int `json:"friends"`
}

type ActivityStats struct {
	Total     PeriodCounts `json:"total"`
	Last24h   PeriodCounts `json:"last24h"`
	Last7Days PeriodCounts `json:"last7days"`
}

type TrackingCodeDetail struct {
	TrackingCodeView
	Clicks  []store.Click  `json:"clicks"`
	Friends []store.Friend `json:"friends"`
}

// TrackingCodeDetails is the detail view of one code with recent activity
type TrackingCodeDetails struct {
	TrackingCode TrackingCodeDetail `json:"trackingCode"`
	Stats        ActivityStats      `json:"stats"`
}

type CreateTrackingCodeParams struct {
	Name          string
	Description   *string
	LineAccountID uuid.UUID
}

// GenerateCode returns a new random tracking code: "ltk_" and 12 lowercase hex characters
func GenerateCode() string {
	return codePrefix + strings.ReplaceAll(uuid.NewString(), "-", "")[:codeRandomLength]
}

// FormatConversionRate renders friends/clicks as a percentage with two decimals
func FormatConversionRate(clicks, friends int) string {
	return fmt.Sprintf("%.2f", conversionRate(clicks, friends))
}

func conversionRate(clicks, friends int) float64 {
	if clicks <= 0 {
		return 0
	}
	return float64(friends) / float64(clicks) * 100
}

func (p *TrackingProcessor) view(code store.TrackingCode, lineAccount *LineAccountSummary) TrackingCodeView {
	return TrackingCodeView{
		TrackingCode: code,
		LineAccount:  lineAccount,
		TrackingURL:  p.TrackingURL(code.Code),
		QRCodeURL:    p.QRCodeURL(code.Code),
	}
}

// CreateTrackingCode issues a new code bound to one of the caller's LINE accounts.
// A code collision is retried with a fresh code.
func (p *TrackingProcessor) CreateTrackingCode(ctx context.Context, userID uuid.UUID, email string, params CreateTrackingCodeParams) (TrackingCodeView, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "user_id", Value: userID.String()},
		observability.Field{Key: "line_account_id", Value: params.LineAccountID.String()},
	)

	accountName := fmt.Sprintf("%s's Account", email)
	for attempt := 1; attempt <= maxCodeAttempts; attempt++ {
		code := GenerateCode()
		created, err := p.store.CreateTrackingCodeForUser(ctx, userID, accountName, store.CreateTrackingCodeParams{
			LineAccountID: params.LineAccountID,
			Code:          code,
			Name:          params.Name,
			Description:   params.Description,
		})
		switch {
		case err == nil:
			ctx = observability.WithFields(ctx, observability.Field{Key: "tracking_code", Value: created.Code})
			p.logger.Info(ctx, "tracking code created")

			var summary *LineAccountSummary
			if lineAccount, err := p.store.GetLineAccountForAccount(ctx, created.AccountID, created.LineAccountID); err == nil {
				summary = &LineAccountSummary{ID: lineAccount.ID, Name: lineAccount.Name, ChannelID: lineAccount.ChannelID}
			}
			return p.view(created, summary), nil
		case errors.Is(err, store.ErrNotFound):
			return TrackingCodeView{}, ErrLineAccountNotFound
		case errors.Is(err, store.ErrConflict):
			p.logger.Warn(observability.WithFields(ctx, observability.Field{Key: "attempt", Value: attempt}), "tracking code collision, regenerating")
		default:
			p.logger.Error(ctx, "failed to create tracking code", err)
			return TrackingCodeView{}, err
		}
	}

	p.logger.Error(ctx, "exhausted tracking code attempts", ErrCodeGenerationFailed)
	return TrackingCodeView{}, ErrCodeGenerationFailed
}

// ListTrackingCodes returns the caller's codes, newest first, with lifetime stats
func (p *TrackingProcessor) ListTrackingCodes(ctx context.Context, userID uuid.UUID) ([]TrackingCodeListItem, error) {
	accountID, found, err := p.resolveAccount(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !found {
		return []TrackingCodeListItem{}, nil
	}

	codes, err := p.store.ListTrackingCodesWithStats(ctx, accountID)
	if err != nil {
		p.logger.Error(ctx, "failed to list tracking codes", err)
		return nil, err
	}

	items := make([]TrackingCodeListItem, 0, len(codes))
	for _, tc := range codes {
		items = append(items, TrackingCodeListItem{
			TrackingCodeView: p.view(tc.TrackingCode, &LineAccountSummary{
				ID:        tc.LineAccountID,
				Name:      tc.LineAccountName,
				ChannelID: tc.LineChannelID,
			}),
			Clicks:      tc.ClickCount,
			Conversions: tc.FriendCount,
			Stats: CodeStats{
				TotalClicks:    tc.ClickCount,
				TotalFriends:   tc.FriendCount,
				ConversionRate: FormatConversionRate(tc.ClickCount, tc.FriendCount),
			},
		})
	}
	return items, nil
}

// GetTrackingCodeDetails returns one of the caller's codes with recent clicks and friends
func (p *TrackingProcessor) GetTrackingCodeDetails(ctx context.Context, userID uuid.UUID, code string, now time.Time) (TrackingCodeDetails, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "tracking_code", Value: code})

	accountID, found, err := p.resolveAccount(ctx, userID)
	if err != nil {
		return TrackingCodeDetails{}, err
	}
	if !found {
		return TrackingCodeDetails{}, ErrTrackingCodeNotFound
	}

	tc, err := p.store.GetTrackingCodeByCodeForAccount(ctx, accountID, code)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return TrackingCodeDetails{}, ErrTrackingCodeNotFound
		}
		p.logger.Error(ctx, "failed to get tracking code", err)
		return TrackingCodeDetails{}, err
	}

	clicks, err := p.store.ListRecentClicks(ctx, tc.ID, detailClicksLimit)
	if err != nil {
		p.logger.Error(ctx, "failed to list recent clicks", err)
		return TrackingCodeDetails{}, err
	}
	friends, err := p.store.ListRecentFriends(ctx, tc.ID, detailFriendsLimit)
	if err != nil {
		p.logger.Error(ctx, "failed to list recent friends", err)
		return TrackingCodeDetails{}, err
	}
	activity, err := p.store.GetTrackingCodeActivity(ctx, tc.ID, now)
	if err != nil {
		p.logger.Error(ctx, "failed to get tracking code activity", err)
		return TrackingCodeDetails{}, err
	}

	return TrackingCodeDetails{
		TrackingCode: TrackingCodeDetail{
			TrackingCodeView: p.view(tc.TrackingCode, &LineAccountSummary{
				ID:        tc.LineAccountID,
				Name:      tc.LineAccountName,
				ChannelID: tc.LineChannelID,
			}),
			Clicks:  clicks,
			Friends: friends,
		},
		Stats: ActivityStats{
			Total:     PeriodCounts{Clicks: activity.TotalClicks, Friends: activity.TotalFriends},
			Last24h:   PeriodCounts{Clicks: activity.ClicksLast24h, Friends: activity.FriendsLast24h},
			Last7Days: PeriodCounts{Clicks: activity.ClicksLast7Days, Friends: activity.FriendsLast7Days},
		},
	}, nil
}

type UpdateTrackingCodeParams struct {
	Name          *string
	Description   *string
	LineAccountID *uuid.UUID
	IsActive      *bool
}

// UpdateTrackingCode applies a partial update to one of the caller's codes. A
// new LINE account must also belong to the caller.
func (p *TrackingProcessor) UpdateTrackingCode(ctx context.Context, userID, trackingCodeID uuid.UUID, params UpdateTrackingCodeParams) (TrackingCodeView, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "tracking_code_id", Value: trackingCodeID.String()})

	accountID, found, err := p.resolveAccount(ctx, userID)
	if err != nil {
		return TrackingCodeView{}, err
	}
	if !found {
		return TrackingCodeView{}, ErrTrackingCodeNotFound
	}

	if _, err := p.store.GetTrackingCodeForAccount(ctx, accountID, trackingCodeID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return TrackingCodeView{}, ErrTrackingCodeNotFound
		}
		p.logger.Error(ctx, "failed to get tracking code", err)
		return TrackingCodeView{}, err
	}

	if params.LineAccountID != nil {
		if _, err := p.store.GetLineAccountForAccount(ctx, accountID, *params.LineAccountID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return TrackingCodeView{}, ErrLineAccountNotFound
			}
			p.logger.Error(ctx, "failed to get line account", err)
			return TrackingCodeView{}, err
		}
	}

	updated, err := p.store.UpdateTrackingCode(ctx, accountID, trackingCodeID, store.UpdateTrackingCodeParams{
		Name:          params.Name,
		Description:   params.Description,
		LineAccountID: params.LineAccountID,
		IsActive:      params.IsActive,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return TrackingCodeView{}, ErrTrackingCodeNotFound
		}
		p.logger.Error(ctx, "failed to update tracking code", err)
		return TrackingCodeView{}, err
	}

	p.logger.Info(ctx, "tracking code updated")
	return p.view(updated, nil), nil
}

// DeleteTrackingCode removes one of the caller's codes with its clicks and friends
func (p *TrackingProcessor) DeleteTrackingCode(ctx context.Context, userID, trackingCodeID uuid.UUID) error {
	ctx = observability.WithFields(ctx, observability.Field{Key: "tracking_code_id", Value: trackingCodeID.String()})

	accountID, found, err := p.resolveAccount(ctx, userID)
	if err != nil {
		return err
	}
	if !found {
		return ErrTrackingCodeNotFound
	}

	if err := p.store.DeleteTrackingCode(ctx, accountID, trackingCodeID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrTrackingCodeNotFound
		}
		p.logger.Error(ctx, "failed to delete tracking code", err)
		return err
	}

	p.logger.Info(ctx, "tracking code deleted")
	return nil
}
