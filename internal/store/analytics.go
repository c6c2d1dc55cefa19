package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DashboardStatsResult represents lifetime totals for an account
type DashboardStatsResult struct {
	TotalClicks  int `db:"total_clicks"`
	FriendsAdded int `db:"friends_added"`
	ActiveCodes  int `db:"active_codes"`
}

// CodePeriodStats represents one tracking code's activity in a window
type CodePeriodStats struct {
	ID      uuid.UUID `db:"id"`
	Name    string    `db:"name"`
	Code    string    `db:"code"`
	Clicks  int       `db:"clicks"`
	Friends int       `db:"friends"`
}

// DailyCount is an event count for one calendar day
type DailyCount struct {
	Date  time.Time `db:"date" json:"date"`
	Count int       `db:"count" json:"count"`
}

// FriendEngagement is the per-friend input to segmentation
type FriendEngagement struct {
	FriendID         uuid.UUID `db:"friend_id"`
	TrackingCodeName string    `db:"tracking_code_name"`
	AddedAt          time.Time `db:"added_at"`
	Conversions      int       `db:"conversions"`
	Monetary         float64   `db:"monetary"`
}

const sqlGetDashboardStats = `
SELECT
    (SELECT COUNT(*) FROM clicks c JOIN tracking_codes tc ON tc.id = c.tracking_code_id
      WHERE tc.account_id = $1) AS total_clicks,
    (SELECT COUNT(*) FROM friends f JOIN tracking_codes tc ON tc.id = f.tracking_code_id
      WHERE tc.account_id = $1) AS friends_added,
    (SELECT COUNT(*) FROM tracking_codes tc
      WHERE tc.account_id = $1 AND tc.is_active = TRUE) AS active_codes
`

// GetDashboardStats retrieves lifetime totals for an account
func (s *Store) GetDashboardStats(ctx context.Context, accountID uuid.UUID) (DashboardStatsResult, error) {
	var result DashboardStatsResult
	err := s.db.GetContext(ctx, &result, sqlGetDashboardStats, accountID)
	if err != nil {
		s.logger.Error(ctx, "failed to get dashboard stats", err)
		return DashboardStatsResult{}, fmt.Errorf("failed to get dashboard stats: %w", err)
	}
	return result, nil
}

const sqlListCodePeriodStats = `
SELECT tc.id, tc.name, tc.code,
       (SELECT COUNT(*) FROM clicks c
         WHERE c.tracking_code_id = tc.id AND c.timestamp >= $2 AND c.timestamp <= $3) AS clicks,
       (SELECT COUNT(*) FROM friends f
         WHERE f.tracking_code_id = tc.id AND f.added_at >= $2 AND f.added_at <= $3) AS friends
FROM tracking_codes tc
WHERE tc.account_id = $1
ORDER BY tc.created_at DESC
`

// ListCodePeriodStats counts clicks and friends per code within [from, to]
func (s *Store) ListCodePeriodStats(ctx context.Context, accountID uuid.UUID, from, to time.Time) ([]CodePeriodStats, error) {
	stats := []CodePeriodStats{}
	err := s.db.SelectContext(ctx, &stats, sqlListCodePeriodStats, accountID, from, to)
	if err != nil {
		s.logger.Error(ctx, "failed to list code period stats", err)
		return nil, fmt.Errorf("failed to list code period stats: %w", err)
	}
	return stats, nil
}

const sqlCountClicksSince = `
SELECT COUNT(*)
FROM clicks c
JOIN tracking_codes tc ON tc.id = c.tracking_code_id
WHERE tc.account_id = $1 AND c.timestamp >= $2
`

// CountClicksSince counts the account's clicks at or after since
func (s *Store) CountClicksSince(ctx context.Context, accountID uuid.UUID, since time.Time) (int, error) {
	var count int
	if err := s.db.GetContext(ctx, &count, sqlCountClicksSince, accountID, since); err != nil {
		return 0, fmt.Errorf("failed to count clicks: %w", err)
	}
	return count, nil
}

const sqlCountFriendsAddedBetween = `
SELECT COUNT(*)
FROM friends f
JOIN tracking_codes tc ON tc.id = f.tracking_code_id
WHERE tc.account_id = $1 AND f.added_at >= $2 AND f.added_at < $3
`

// CountFriendsAddedBetween counts the account's friends added in [from, to)
func (s *Store) CountFriendsAddedBetween(ctx context.Context, accountID uuid.UUID, from, to time.Time) (int, error) {
	var count int
	if err := s.db.GetContext(ctx, &count, sqlCountFriendsAddedBetween, accountID, from, to); err != nil {
		return 0, fmt.Errorf("failed to count friends: %w", err)
	}
	return count, nil
}

const sqlCountAllConversionsSince = `
SELECT COUNT(*)
FROM conversions cv
JOIN friends f ON f.id = cv.friend_id
JOIN tracking_codes tc ON tc.id = f.tracking_code_id
WHERE tc.account_id = $1 AND cv.timestamp >= $2
`

// CountConversionsSince counts conversions of every type for the account
func (s *Store) CountConversionsSince(ctx context.Context, accountID uuid.UUID, since time.Time) (int, error) {
	var count int
	if err := s.db.GetContext(ctx, &count, sqlCountAllConversionsSince, accountID, since); err != nil {
		return 0, fmt.Errorf("failed to count conversions: %w", err)
	}
	return count, nil
}

const sqlGetDailyClickCounts = `
SELECT DATE(c.timestamp) AS date, COUNT(*) AS count
FROM clicks c
JOIN tracking_codes tc ON tc.id = c.tracking_code_id
WHERE tc.account_id = $1 AND c.timestamp >= $2
GROUP BY DATE(c.timestamp)
ORDER BY date
`

// GetDailyClickCounts returns click counts per day since the given time.
// Days without clicks are omitted.
func (s *Store) GetDailyClickCounts(ctx context.Context, accountID uuid.UUID, since time.Time) ([]DailyCount, error) {
	counts := []DailyCount{}
	if err := s.db.SelectContext(ctx, &counts, sqlGetDailyClickCounts, accountID, since); err != nil {
		return nil, fmt.Errorf("failed to get daily click counts: %w", err)
	}
	return counts, nil
}

const sqlGetDailyFriendCounts = `
SELECT DATE(f.added_at) AS date, COUNT(*) AS count
FROM friends f
JOIN tracking_codes tc ON tc.id = f.tracking_code_id
WHERE tc.account_id = $1 AND f.added_at >= $2
GROUP BY DATE(f.added_at)
ORDER BY date
`

// GetDailyFriendCounts returns friend additions per day since the given time
func (s *Store) GetDailyFriendCounts(ctx context.Context, accountID uuid.UUID, since time.Time) ([]DailyCount, error) {
	counts := []DailyCount{}
	if err := s.db.SelectContext(ctx, &counts, sqlGetDailyFriendCounts, accountID, since); err != nil {
		return nil, fmt.Errorf("failed to get daily friend counts: %w", err)
	}
	return counts, nil
}

const sqlListFriendEngagement = `
SELECT f.id AS friend_id,
       tc.name AS tracking_code_name,
       f.added_at,
       COUNT(cv.id) AS conversions,
       COALESCE(SUM(cv.value), 0)::double precision AS monetary
FROM friends f
JOIN tracking_codes tc ON tc.id = f.tracking_code_id
LEFT JOIN conversions cv ON cv.friend_id = f.id
WHERE tc.account_id = $1
GROUP BY f.id, tc.name, f.added_at
ORDER BY f.added_at DESC
`

// ListFriendEngagement returns every friend of the account with conversion
// count and total conversion value
func (s *Store) ListFriendEngagement(ctx context.Context, accountID uuid.UUID) ([]FriendEngagement, error) {
	rows := []FriendEngagement{}
	if err := s.db.SelectContext(ctx, &rows, sqlListFriendEngagement, accountID); err != nil {
		s.logger.Error(ctx, "failed to list friend engagement", err)
		return nil, fmt.Errorf("failed to list friend engagement: %w", err)
	}
	return rows, nil
}
