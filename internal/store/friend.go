package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// CreateConversionParams describes the conversion written with a friend
type CreateConversionParams struct {
	EventType string
	Value     float64
	Currency  string
	Timestamp time.Time
}

// CreateFriendParams represents parameters for recording a friend addition
type CreateFriendParams struct {
	TrackingCodeID uuid.UUID
	LineUserID     string
	DisplayName    string
	AddedAt        time.Time
	Conversion     *CreateConversionParams
}

const friendColumns = `id, tracking_code_id, line_user_id, display_name, added_at`

const sqlGetFriendByLineUserID = `
SELECT ` + friendColumns + `
FROM friends
WHERE line_user_id = $1
`

// GetFriendByLineUserID retrieves the friend row for a LINE user
func (s *Store) GetFriendByLineUserID(ctx context.Context, lineUserID string) (Friend, error) {
	var friend Friend
	err := s.db.GetContext(ctx, &friend, sqlGetFriendByLineUserID, lineUserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Friend{}, ErrNotFound
		}
		return Friend{}, fmt.Errorf("failed to get friend by line user id: %w", err)
	}
	return friend, nil
}

const sqlCreateFriend = `
INSERT INTO friends (tracking_code_id, line_user_id, display_name, added_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (line_user_id) DO NOTHING
RETURNING ` + friendColumns

const sqlCreateConversion = `
INSERT INTO conversions (friend_id, event_type, value, currency, timestamp)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, friend_id, event_type, value, currency, timestamp
`

// CreateFriend inserts a friend and, when given, its conversion in one
// transaction. If the LINE user already has a friend row nothing is written
// and ErrConflict is returned.
func (s *Store) CreateFriend(ctx context.Context, params CreateFriendParams) (Friend, error) {
	var friend Friend
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		err := tx.GetContext(ctx, &friend, sqlCreateFriend,
			params.TrackingCodeID,
			params.LineUserID,
			params.DisplayName,
			params.AddedAt)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrConflict
			}
			return fmt.Errorf("failed to create friend: %w", err)
		}

		if params.Conversion == nil {
			return nil
		}
		var conversion Conversion
		err = tx.GetContext(ctx, &conversion, sqlCreateConversion,
			friend.ID,
			params.Conversion.EventType,
			params.Conversion.Value,
			params.Conversion.Currency,
			params.Conversion.Timestamp)
		if err != nil {
			return fmt.Errorf("failed to create conversion: %w", err)
		}
		return nil
	})
	if err != nil {
		return Friend{}, err
	}
	return friend, nil
}

const sqlListRecentFriends = `
SELECT ` + friendColumns + `
FROM friends
WHERE tracking_code_id = $1
ORDER BY added_at DESC
LIMIT $2
`

// ListRecentFriends returns the newest friends attributed to a code
func (s *Store) ListRecentFriends(ctx context.Context, trackingCodeID uuid.UUID, limit int) ([]Friend, error) {
	friends := []Friend{}
	err := s.db.SelectContext(ctx, &friends, sqlListRecentFriends, trackingCodeID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent friends: %w", err)
	}
	return friends, nil
}
