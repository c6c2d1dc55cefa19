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

// CreateTrackingCodeParams represents parameters for creating a tracking code
type CreateTrackingCodeParams struct {
	LineAccountID uuid.UUID
	Code          string
	Name          string
	Description   *string
}

// UpdateTrackingCodeParams holds optional fields; nil leaves the column unchanged
type UpdateTrackingCodeParams struct {
	Name          *string
	Description   *string
	LineAccountID *uuid.UUID
	IsActive      *bool
}

// TrackingCodeActivity summarises clicks and friends for one code
type TrackingCodeActivity struct {
	TotalClicks      int `db:"total_clicks" json:"total"`
	ClicksLast24h    int `db:"clicks_last_24h" json:"last24h"`
	ClicksLast7Days  int `db:"clicks_last_7_days" json:"last7days"`
	TotalFriends     int `db:"total_friends" json:"totalFriends"`
	FriendsLast24h   int `db:"friends_last_24h" json:"friendsLast24h"`
	FriendsLast7Days int `db:"friends_last_7_days" json:"friendsLast7days"`
}

const trackingCodeColumns = `id, account_id, line_account_id, code, name, description, is_active, created_at, updated_at`

const sqlLineAccountBelongsToAccount = `
SELECT EXISTS(SELECT 1 FROM line_accounts WHERE id = $1 AND account_id = $2)
`

const sqlCreateTrackingCode = `
INSERT INTO tracking_codes (account_id, line_account_id, code, name, description)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + trackingCodeColumns

// CreateTrackingCodeForUser resolves or creates the user's account, checks
// that the LINE account belongs to it and inserts the code, all in one
// transaction. A foreign LINE account yields ErrNotFound and a code
// collision yields ErrConflict.
func (s *Store) CreateTrackingCodeForUser(ctx context.Context, userID uuid.UUID, accountName string, params CreateTrackingCodeParams) (TrackingCode, error) {
	var trackingCode TrackingCode
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		account, err := getOrCreateAccountTx(ctx, tx, userID, accountName)
		if err != nil {
			return err
		}

		var owned bool
		if err := tx.GetContext(ctx, &owned, sqlLineAccountBelongsToAccount, params.LineAccountID, account.ID); err != nil {
			return fmt.Errorf("failed to verify line account ownership: %w", err)
		}
		if !owned {
			return ErrNotFound
		}

		err = tx.GetContext(ctx, &trackingCode, sqlCreateTrackingCode,
			account.ID,
			params.LineAccountID,
			params.Code,
			params.Name,
			params.Description)
		if err != nil {
			if isUniqueViolation(err) {
				return ErrConflict
			}
			return fmt.Errorf("failed to create tracking code: %w", err)
		}
		return nil
	})
	if err != nil {
		return TrackingCode{}, err
	}
	return trackingCode, nil
}

const sqlListTrackingCodesWithStats = `
SELECT tc.id, tc.account_id, tc.line_account_id, tc.code, tc.name, tc.description, tc.is_active,
       tc.created_at, tc.updated_at,
       la.name AS line_account_name,
       la.channel_id AS line_channel_id,
       (SELECT COUNT(*) FROM clicks c WHERE c.tracking_code_id = tc.id) AS click_count,
       (SELECT COUNT(*) FROM friends f WHERE f.tracking_code_id = tc.id) AS friend_count
FROM tracking_codes tc
JOIN line_accounts la ON la.id = tc.line_account_id
WHERE tc.account_id = $1
ORDER BY tc.created_at DESC
`

// ListTrackingCodesWithStats lists the account's codes, newest first
func (s *Store) ListTrackingCodesWithStats(ctx context.Context, accountID uuid.UUID) ([]TrackingCodeWithStats, error) {
	codes := []TrackingCodeWithStats{}
	err := s.db.SelectContext(ctx, &codes, sqlListTrackingCodesWithStats, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tracking codes: %w", err)
	}
	return codes, nil
}

const sqlGetTrackingCodeByCodeForAccount = `
SELECT tc.id, tc.account_id, tc.line_account_id, tc.code, tc.name, tc.description, tc.is_active,
       tc.created_at, tc.updated_at,
       la.name AS line_account_name,
       la.channel_id AS line_channel_id,
       (SELECT COUNT(*) FROM clicks c WHERE c.tracking_code_id = tc.id) AS click_count,
       (SELECT COUNT(*) FROM friends f WHERE f.tracking_code_id = tc.id) AS friend_count
FROM tracking_codes tc
JOIN line_accounts la ON la.id = tc.line_account_id
WHERE tc.code = $1 AND tc.account_id = $2
`

// GetTrackingCodeByCodeForAccount retrieves one code by its short code,
// scoped to accountID
func (s *Store) GetTrackingCodeByCodeForAccount(ctx context.Context, accountID uuid.UUID, code string) (TrackingCodeWithStats, error) {
	var trackingCode TrackingCodeWithStats
	err := s.db.GetContext(ctx, &trackingCode, sqlGetTrackingCodeByCodeForAccount, code, accountID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return TrackingCodeWithStats{}, ErrNotFound
		}
		return TrackingCodeWithStats{}, fmt.Errorf("failed to get tracking code: %w", err)
	}
	return trackingCode, nil
}

const sqlGetTrackingCodeForAccount = `
SELECT ` + trackingCodeColumns + `
FROM tracking_codes
WHERE id = $1 AND account_id = $2
`

// GetTrackingCodeForAccount retrieves a code by id, scoped to accountID
func (s *Store) GetTrackingCodeForAccount(ctx context.Context, accountID, trackingCodeID uuid.UUID) (TrackingCode, error) {
	var trackingCode TrackingCode
	err := s.db.GetContext(ctx, &trackingCode, sqlGetTrackingCodeForAccount, trackingCodeID, accountID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return TrackingCode{}, ErrNotFound
		}
		return TrackingCode{}, fmt.Errorf("failed to get tracking code: %w", err)
	}
	return trackingCode, nil
}

const sqlGetRedirectTarget = `
SELECT tc.id AS tracking_code_id, tc.code, tc.line_account_id, la.channel_id
FROM tracking_codes tc
JOIN line_accounts la ON la.id = tc.line_account_id
WHERE tc.code = $1 AND tc.is_active = TRUE
`

// GetRedirectTarget resolves an active short code to its LINE channel.
// Unknown and inactive codes both yield ErrNotFound.
func (s *Store) GetRedirectTarget(ctx context.Context, code string) (RedirectTarget, error) {
	var target RedirectTarget
	err := s.db.GetContext(ctx, &target, sqlGetRedirectTarget, code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return RedirectTarget{}, ErrNotFound
		}
		return RedirectTarget{}, fmt.Errorf("failed to get redirect target: %w", err)
	}
	return target, nil
}

const sqlGetOldestTrackingCodeForLineAccount = `
SELECT ` + trackingCodeColumns + `
FROM tracking_codes
WHERE line_account_id = $1
ORDER BY created_at ASC
LIMIT 1
`

// GetOldestTrackingCodeForLineAccount returns the channel's first code, used
// as the default attribution target
func (s *Store) GetOldestTrackingCodeForLineAccount(ctx context.Context, lineAccountID uuid.UUID) (TrackingCode, error) {
	var trackingCode TrackingCode
	err := s.db.GetContext(ctx, &trackingCode, sqlGetOldestTrackingCodeForLineAccount, lineAccountID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return TrackingCode{}, ErrNotFound
		}
		return TrackingCode{}, fmt.Errorf("failed to get default tracking code: %w", err)
	}
	return trackingCode, nil
}

const sqlUpdateTrackingCode = `
UPDATE tracking_codes
SET name = COALESCE($3, name),
    description = COALESCE($4, description),
    line_account_id = COALESCE($5, line_account_id),
    is_active = COALESCE($6, is_active),
    updated_at = NOW()
WHERE id = $1 AND account_id = $2
  AND ($5::uuid IS NULL OR EXISTS (
      SELECT 1 FROM line_accounts la WHERE la.id = $5 AND la.account_id = $2))
RETURNING ` + trackingCodeColumns

// UpdateTrackingCode applies a partial update scoped to accountID. Moving the
// code to a LINE account outside accountID matches no row and yields ErrNotFound.
func (s *Store) UpdateTrackingCode(ctx context.Context, accountID, trackingCodeID uuid.UUID, params UpdateTrackingCodeParams) (TrackingCode, error) {
	var trackingCode TrackingCode
	err := s.db.GetContext(ctx, &trackingCode, sqlUpdateTrackingCode,
		trackingCodeID,
		accountID,
		params.Name,
		params.Description,
		params.LineAccountID,
		params.IsActive)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return TrackingCode{}, ErrNotFound
		}
		return TrackingCode{}, fmt.Errorf("failed to update tracking code: %w", err)
	}
	return trackingCode, nil
}

const (
	sqlLockTrackingCodeForAccount = `
SELECT id FROM tracking_codes WHERE id = $1 AND account_id = $2 FOR UPDATE
`
	sqlDeleteClicksByTrackingCode  = `DELETE FROM clicks WHERE tracking_code_id = $1`
	sqlDeleteFriendsByTrackingCode = `DELETE FROM friends WHERE tracking_code_id = $1`
	sqlDeleteTrackingCode          = `DELETE FROM tracking_codes WHERE id = $1`
)

// DeleteTrackingCode removes the code with all of its clicks and friends in
// one transaction, scoped to accountID
func (s *Store) DeleteTrackingCode(ctx context.Context, accountID, trackingCodeID uuid.UUID) error {
	return s.withTx(ctx, func(tx *sqlx.Tx) error {
		var id uuid.UUID
		if err := tx.GetContext(ctx, &id, sqlLockTrackingCodeForAccount, trackingCodeID, accountID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to lock tracking code: %w", err)
		}
		if _, err := tx.ExecContext(ctx, sqlDeleteClicksByTrackingCode, id); err != nil {
			return fmt.Errorf("failed to delete clicks: %w", err)
		}
		if _, err := tx.ExecContext(ctx, sqlDeleteFriendsByTrackingCode, id); err != nil {
			return fmt.Errorf("failed to delete friends: %w", err)
		}
		if _, err := tx.ExecContext(ctx, sqlDeleteTrackingCode, id); err != nil {
			return fmt.Errorf("failed to delete tracking code: %w", err)
		}
		return nil
	})
}

const sqlGetTrackingCodeActivity = `
SELECT
    (SELECT COUNT(*) FROM clicks WHERE tracking_code_id = $1) AS total_clicks,
    (SELECT COUNT(*) FROM clicks WHERE tracking_code_id = $1 AND timestamp >= $2) AS clicks_last_24h,
    (SELECT COUNT(*) FROM clicks WHERE tracking_code_id = $1 AND timestamp >= $3) AS clicks_last_7_days,
    (SELECT COUNT(*) FROM friends WHERE tracking_code_id = $1) AS total_friends,
    (SELECT COUNT(*) FROM friends WHERE tracking_code_id = $1 AND added_at >= $2) AS friends_last_24h,
    (SELECT COUNT(*) FROM friends WHERE tracking_code_id = $1 AND added_at >= $3) AS friends_last_7_days
`

// GetTrackingCodeActivity counts clicks and friends for a code relative to now
func (s *Store) GetTrackingCodeActivity(ctx context.Context, trackingCodeID uuid.UUID, now time.Time) (TrackingCodeActivity, error) {
	var activity TrackingCodeActivity
	err := s.db.GetContext(ctx, &activity, sqlGetTrackingCodeActivity,
		trackingCodeID,
		now.Add(-24*time.Hour),
		now.Add(-7*24*time.Hour))
	if err != nil {
		return TrackingCodeActivity{}, fmt.Errorf("failed to get tracking code activity: %w", err)
	}
	return activity, nil
}
