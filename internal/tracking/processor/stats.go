package processor

import (
	"context"
	"math"
	"time"

	"ltrack-server/internal/observability"

	"github.com/google/uuid"
)

// DashboardStats are lifetime totals for the caller's account
type DashboardStats struct {
	TotalClicks    int     `json:"totalClicks"`
	FriendsAdded   int     `json:"friendsAdded"`
	ConversionRate float64 `json:"conversionRate"`
	ActiveCodes    int     `json:"activeCodes"`
}

type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type AnalyticsSummary struct {
	TotalClicks    int    `json:"totalClicks"`
	TotalFriends   int    `json:"totalFriends"`
	ConversionRate string `json:"conversionRate"`
}

type CodeAnalytics struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Code           string    `json:"code"`
	Clicks         int       `json:"clicks"`
	Friends        int       `json:"friends"`
	ConversionRate string    `json:"conversionRate"`
}

// Analytics is the per-period breakdown of clicks and friends
type Analytics struct {
	Period        string           `json:"period"`
	DateRange     DateRange        `json:"dateRange"`
	Summary       AnalyticsSummary `json:"summary"`
	TrackingCodes []CodeAnalytics  `json:"trackingCodes"`
}

const DefaultAnalyticsPeriod = "7d"

var analyticsPeriods = map[string]time.Duration{
	"24h": 24 * time.Hour,
	"7d":  7 * 24 * time.Hour,
	"30d": 30 * 24 * time.Hour,
}

// GetDashboardStats returns lifetime click, friend and active code totals
func (p *TrackingProcessor) GetDashboardStats(ctx context.Context, userID uuid.UUID) (DashboardStats, error) {
	accountID, found, err := p.resolveAccount(ctx, userID)
	if err != nil {
		return DashboardStats{}, err
	}
	if !found {
		return DashboardStats{}, nil
	}

	res, err := p.store.GetDashboardStats(ctx, accountID)
	if err != nil {
		p.logger.Error(ctx, "failed to get dashboard stats", err)
		return DashboardStats{}, err
	}

	return DashboardStats{
		TotalClicks:    res.TotalClicks,
		FriendsAdded:   res.FriendsAdded,
		ConversionRate: math.Round(conversionRate(res.TotalClicks, res.FriendsAdded)*100) / 100,
		ActiveCodes:    res.ActiveCodes,
	}, nil
}

// GetAnalytics returns per-code activity over period. An empty period means 7d.
func (p *TrackingProcessor) GetAnalytics(ctx context.Context, userID uuid.UUID, period string, now time.Time) (Analytics, error) {
	if period == "" {
		period = DefaultAnalyticsPeriod
	}
	window, ok := analyticsPeriods[period]
	if !ok {
		return Analytics{}, ErrInvalidPeriod
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "period", Value: period})

	from := now.Add(-window)
	result := Analytics{
		Period:        period,
		DateRange:     DateRange{Start: from, End: now},
		Summary:       AnalyticsSummary{ConversionRate: FormatConversionRate(0, 0)},
		TrackingCodes: []CodeAnalytics{},
	}

	accountID, found, err := p.resolveAccount(ctx, userID)
	if err != nil {
		return Analytics{}, err
	}
	if !found {
		return result, nil
	}

	rows, err := p.store.ListCodePeriodStats(ctx, accountID, from, now)
	if err != nil {
		p.logger.Error(ctx, "failed to list code period stats", err)
		return Analytics{}, err
	}

	for _, r := range rows {
		result.Summary.TotalClicks += r.Clicks
		result.Summary.TotalFriends += r.Friends
		result.TrackingCodes = append(result.TrackingCodes, CodeAnalytics{
			ID:             r.ID,
			Name:           r.Name,
			Code:           r.Code,
			Clicks:         r.Clicks,
			Friends:        r.Friends,
			ConversionRate: FormatConversionRate(r.Clicks, r.Friends),
		})
	}
	result.Summary.ConversionRate = FormatConversionRate(result.Summary.TotalClicks, result.Summary.TotalFriends)
	return result, nil
}
