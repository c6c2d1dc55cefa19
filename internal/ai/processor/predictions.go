package processor

import (
	"context"
	"time"

	"ltrack-server/internal/observability"

	"github.com/google/uuid"
)

// PredictFriends forecasts the next 30 days of clicks and friends for the caller
func (p *AIProcessor) PredictFriends(ctx context.Context, userID uuid.UUID, now time.Time) (FriendPrediction, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "user_id", Value: userID})

	accountID, found, err := p.resolveAccount(ctx, userID)
	if err != nil {
		return FriendPrediction{}, err
	}
	if !found {
		return ForecastFriends(0, 0, nil, nil), nil
	}

	since := now.Add(-predictionWindow)
	clicks, err := p.store.CountClicksSince(ctx, accountID, since)
	if err != nil {
		p.logger.Error(ctx, "failed to count clicks for prediction", err)
		return FriendPrediction{}, err
	}
	friends, err := p.store.CountFriendsAddedBetween(ctx, accountID, since, now)
	if err != nil {
		p.logger.Error(ctx, "failed to count friends for prediction", err)
		return FriendPrediction{}, err
	}
	dailyClicks, err := p.store.GetDailyClickCounts(ctx, accountID, since)
	if err != nil {
		p.logger.Error(ctx, "failed to get daily clicks for prediction", err)
		return FriendPrediction{}, err
	}
	dailyFriends, err := p.store.GetDailyFriendCounts(ctx, accountID, since)
	if err != nil {
		p.logger.Error(ctx, "failed to get daily friends for prediction", err)
		return FriendPrediction{}, err
	}

	return ForecastFriends(clicks, friends, dailyClicks, dailyFriends), nil
}

// PredictROI projects return on the given investment from the last 30 days
func (p *AIProcessor) PredictROI(ctx context.Context, userID uuid.UUID, investment float64, now time.Time) (ROIPrediction, error) {
	if err := ValidateInvestment(investment); err != nil {
		return ROIPrediction{}, err
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "user_id", Value: userID})

	accountID, found, err := p.resolveAccount(ctx, userID)
	if err != nil {
		return ROIPrediction{}, err
	}
	if !found {
		return ProjectROI(investment, 0, 0, 0), nil
	}

	since := now.Add(-predictionWindow)
	clicks, err := p.store.CountClicksSince(ctx, accountID, since)
	if err != nil {
		p.logger.Error(ctx, "failed to count clicks for roi", err)
		return ROIPrediction{}, err
	}
	friends, err := p.store.CountFriendsAddedBetween(ctx, accountID, since, now)
	if err != nil {
		p.logger.Error(ctx, "failed to count friends for roi", err)
		return ROIPrediction{}, err
	}
	conversions, err := p.store.CountConversionsSince(ctx, accountID, since)
	if err != nil {
		p.logger.Error(ctx, "failed to count conversions for roi", err)
		return ROIPrediction{}, err
	}

	return ProjectROI(investment, clicks, friends, conversions), nil
}

// SegmentFriends classifies every friend of the caller's account
func (p *AIProcessor) SegmentFriends(ctx context.Context, userID uuid.UUID, now time.Time) (SegmentAnalysis, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "user_id", Value: userID})

	accountID, found, err := p.resolveAccount(ctx, userID)
	if err != nil {
		return SegmentAnalysis{}, err
	}
	if !found {
		return AnalyzeSegments(nil, now), nil
	}

	friends, err := p.store.ListFriendEngagement(ctx, accountID)
	if err != nil {
		return SegmentAnalysis{}, err
	}
	return AnalyzeSegments(friends, now), nil
}

// PredictChurnRisk compares the last two 30-day windows and rates each friend
func (p *AIProcessor) PredictChurnRisk(ctx context.Context, userID uuid.UUID, now time.Time) (ChurnPrediction, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "user_id", Value: userID})

	accountID, found, err := p.resolveAccount(ctx, userID)
	if err != nil {
		return ChurnPrediction{}, err
	}
	if !found {
		return PredictChurn(0, 0, nil, now), nil
	}

	recentStart := now.Add(-predictionWindow)
	previousStart := recentStart.Add(-predictionWindow)

	recent, err := p.store.CountFriendsAddedBetween(ctx, accountID, recentStart, now)
	if err != nil {
		p.logger.Error(ctx, "failed to count recent friends", err)
		return ChurnPrediction{}, err
	}
	previous, err := p.store.CountFriendsAddedBetween(ctx, accountID, previousStart, recentStart)
	if err != nil {
		p.logger.Error(ctx, "failed to count previous friends", err)
		return ChurnPrediction{}, err
	}
	friends, err := p.store.ListFriendEngagement(ctx, accountID)
	if err != nil {
		return ChurnPrediction{}, err
	}

	return PredictChurn(recent, previous, friends, now), nil
}
