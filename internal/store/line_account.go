package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// CreateLineAccountParams represents parameters for registering a LINE channel
type CreateLineAccountParams struct {
	Name               string
	ChannelID          string
	ChannelSecret      string
	ChannelAccessToken string
}

// UpdateLineAccountParams holds optional fields; nil leaves the column unchanged
type UpdateLineAccountParams struct {
	Name               *string
	ChannelID          *string
	ChannelSecret      *string
	ChannelAccessToken *string
	IsActive           *bool
}

const lineAccountColumns = `id, account_id, name, channel_id, channel_secret, channel_access_token, webhook_url, is_active, created_at, updated_at`

const sqlCreateLineAccount = `
INSERT INTO line_accounts (account_id, name, channel_id, channel_secret, channel_access_token)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + lineAccountColumns

// CreateLineAccountForUser resolves or creates the user's account and adds
// the channel to it in one transaction.
func (s *Store) CreateLineAccountForUser(ctx context.Context, userID uuid.UUID, accountName string, params CreateLineAccountParams) (LineAccount, error) {
	var lineAccount LineAccount
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		account, err := getOrCreateAccountTx(ctx, tx, userID, accountName)
		if err != nil {
			return err
		}
		err = tx.GetContext(ctx, &lineAccount, sqlCreateLineAccount,
			account.ID,
			params.Name,
			params.ChannelID,
			params.ChannelSecret,
			params.ChannelAccessToken)
		if err != nil {
			return fmt.Errorf("failed to create line account: %w", err)
		}
		return nil
	})
	if err != nil {
		return LineAccount{}, err
	}
	return lineAccount, nil
}

const sqlListLineAccountsByAccount = `
SELECT la.id, la.account_id, la.name, la.channel_id, la.channel_secret, la.channel_access_token,
       la.webhook_url, la.is_active, la.created_at, la.updated_at,
       (SELECT COUNT(*) FROM tracking_codes tc WHERE tc.line_account_id = la.id) AS tracking_code_count
FROM line_accounts la
WHERE la.account_id = $1
ORDER BY la.created_at DESC
`

// ListLineAccountsByAccount lists the account's channels with code counts
func (s *Store) ListLineAccountsByAccount(ctx context.Context, accountID uuid.UUID) ([]LineAccountWithCount, error) {
	lineAccounts := []LineAccountWithCount{}
	err := s.db.SelectContext(ctx, &lineAccounts, sqlListLineAccountsByAccount, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list line accounts: %w", err)
	}
	return lineAccounts, nil
}

const sqlGetLineAccountByID = `
SELECT ` + lineAccountColumns + `
FROM line_accounts
WHERE id = $1
`

// GetLineAccountByID retrieves a channel without tenant scoping. Only the
// webhook ingester uses it, since LINE addresses channels by id.
func (s *Store) GetLineAccountByID(ctx context.Context, lineAccountID uuid.UUID) (LineAccount, error) {
	var lineAccount LineAccount
	err := s.db.GetContext(ctx, &lineAccount, sqlGetLineAccountByID, lineAccountID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return LineAccount{}, ErrNotFound
		}
		return LineAccount{}, fmt.Errorf("failed to get line account by id: %w", err)
	}
	return lineAccount, nil
}

const sqlGetLineAccountForAccount = `
SELECT ` + lineAccountColumns + `
FROM line_accounts
WHERE id = $1 AND account_id = $2
`

// GetLineAccountForAccount retrieves a channel only if accountID owns it
func (s *Store) GetLineAccountForAccount(ctx context.Context, accountID, lineAccountID uuid.UUID) (LineAccount, error) {
	var lineAccount LineAccount
	err := s.db.GetContext(ctx, &lineAccount, sqlGetLineAccountForAccount, lineAccountID, accountID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return LineAccount{}, ErrNotFound
		}
		return LineAccount{}, fmt.Errorf("failed to get line account: %w", err)
	}
	return lineAccount, nil
}

const sqlGetFirstLineAccount = `
SELECT ` + lineAccountColumns + `
FROM line_accounts
ORDER BY created_at ASC
LIMIT 1
`

// GetFirstLineAccount returns the oldest channel in the system
func (s *Store) GetFirstLineAccount(ctx context.Context) (LineAccount, error) {
	var lineAccount LineAccount
	err := s.db.GetContext(ctx, &lineAccount, sqlGetFirstLineAccount)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return LineAccount{}, ErrNotFound
		}
		return LineAccount{}, fmt.Errorf("failed to get first line account: %w", err)
	}
	return lineAccount, nil
}

const sqlUpdateLineAccount = `
UPDATE line_accounts
SET name = COALESCE($3, name),
    channel_id = COALESCE($4, channel_id),
    channel_secret = COALESCE($5, channel_secret),
    channel_access_token = COALESCE($6, channel_access_token),
    is_active = COALESCE($7, is_active),
    updated_at = NOW()
WHERE id = $1 AND account_id = $2
RETURNING ` + lineAccountColumns

// UpdateLineAccount applies a partial update scoped to accountID
func (s *Store) UpdateLineAccount(ctx context.Context, accountID, lineAccountID uuid.UUID, params UpdateLineAccountParams) (LineAccount, error) {
	var lineAccount LineAccount
	err := s.db.GetContext(ctx, &lineAccount, sqlUpdateLineAccount,
		lineAccountID,
		accountID,
		params.Name,
		params.ChannelID,
		params.ChannelSecret,
		params.ChannelAccessToken,
		params.IsActive)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return LineAccount{}, ErrNotFound
		}
		return LineAccount{}, fmt.Errorf("failed to update line account: %w", err)
	}
	return lineAccount, nil
}

const sqlSetLineAccountWebhookURL = `
UPDATE line_accounts
SET webhook_url = $3, updated_at = NOW()
WHERE id = $1 AND account_id = $2
RETURNING ` + lineAccountColumns

// SetLineAccountWebhookURL records the webhook endpoint configured for the channel
func (s *Store) SetLineAccountWebhookURL(ctx context.Context, accountID, lineAccountID uuid.UUID, webhookURL string) (LineAccount, error) {
	var lineAccount LineAccount
	err := s.db.GetContext(ctx, &lineAccount, sqlSetLineAccountWebhookURL, lineAccountID, accountID, webhookURL)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return LineAccount{}, ErrNotFound
		}
		return LineAccount{}, fmt.Errorf("failed to set webhook url: %w", err)
	}
	return lineAccount, nil
}

const sqlDeleteLineAccount = `
DELETE FROM line_accounts
WHERE id = $1 AND account_id = $2
`

// DeleteLineAccount removes the channel; tracking codes and events cascade
func (s *Store) DeleteLineAccount(ctx context.Context, accountID, lineAccountID uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, sqlDeleteLineAccount, lineAccountID, accountID)
	if err != nil {
		return fmt.Errorf("failed to delete line account: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
