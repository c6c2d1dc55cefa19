package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// CreateLineEventParams represents one inbound webhook event to audit
type CreateLineEventParams struct {
	LineAccountID uuid.UUID
	FriendID      *uuid.UUID
	EventType     string
	EventData     RawJSON
	Timestamp     time.Time
}

// EventTypeCount is the number of audited events of one type
type EventTypeCount struct {
	EventType string `db:"event_type" json:"eventType"`
	Count     int    `db:"count" json:"count"`
}

// WebhookStats summarises webhook activity for an account since a point in time
type WebhookStats struct {
	EventCounts        []EventTypeCount `json:"eventCounts"`
	TotalEvents        int              `json:"totalEvents"`
	FriendsAdded       int              `json:"friendsAdded"`
	ConversionsTracked int              `json:"conversionsTracked"`
}

const sqlCreateLineEvent = `
INSERT INTO line_events (line_account_id, friend_id, event_type, event_data, timestamp)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, line_account_id, friend_id, event_type, event_data, timestamp
`

// CreateLineEvent appends an audit row
func (s *Store) CreateLineEvent(ctx context.Context, params CreateLineEventParams) (LineEvent, error) {
	var event LineEvent
	err := s.db.GetContext(ctx, &event, sqlCreateLineEvent,
		params.LineAccountID,
		params.FriendID,
		params.EventType,
		params.EventData,
		params.Timestamp)
	if err != nil {
		return LineEvent{}, fmt.Errorf("failed to create line event: %w", err)
	}
	return event, nil
}

const sqlCountLineEventsByType = `
SELECT le.event_type, COUNT(*) AS count
FROM line_events le
JOIN line_accounts la ON la.id = le.line_account_id
WHERE la.account_id = $1 AND le.timestamp >= $2
GROUP BY le.event_type
ORDER BY count DESC, le.event_type
`

const sqlCountFriendsAddedSince = `
SELECT COUNT(*)
FROM friends f
JOIN tracking_codes tc ON tc.id = f.tracking_code_id
WHERE tc.account_id = $1 AND f.added_at >= $2
`

const sqlCountConversionsSince = `
SELECT COUNT(*)
FROM conversions cv
JOIN friends f ON f.id = cv.friend_id
JOIN tracking_codes tc ON tc.id = f.tracking_code_id
WHERE tc.account_id = $1 AND cv.event_type = $2 AND cv.timestamp >= $3
`

// GetWebhookStats aggregates audited events, friends and friend_added
// conversions for accountID since the given time
func (s *Store) GetWebhookStats(ctx context.Context, accountID uuid.UUID, since time.Time) (WebhookStats, error) {
	stats := WebhookStats{EventCounts: []EventTypeCount{}}

	err := s.db.SelectContext(ctx, &stats.EventCounts, sqlCountLineEventsByType, accountID, since)
	if err != nil {
		return WebhookStats{}, fmt.Errorf("failed to count line events: %w", err)
	}
	for _, c := range stats.EventCounts {
		stats.TotalEvents += c.Count
	}

	if err := s.db.GetContext(ctx, &stats.FriendsAdded, sqlCountFriendsAddedSince, accountID, since); err != nil {
		return WebhookStats{}, fmt.Errorf("failed to count friends added: %w", err)
	}
	if err := s.db.GetContext(ctx, &stats.ConversionsTracked, sqlCountConversionsSince, accountID, "friend_added", since); err != nil {
		return WebhookStats{}, fmt.Errorf("failed to count conversions: %w", err)
	}
	return stats, nil
}
