package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const sqlGetAccountByUserID = `
SELECT id, name, user_id, created_at, updated_at
FROM accounts
WHERE user_id = $1
`

// GetAccountByUserID retrieves the account owned by userID
func (s *Store) GetAccountByUserID(ctx context.Context, userID uuid.UUID) (Account, error) {
	var account Account
	err := s.db.GetContext(ctx, &account, sqlGetAccountByUserID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Account{}, ErrNotFound
		}
		return Account{}, fmt.Errorf("failed to get account by user id: %w", err)
	}
	return account, nil
}

// The no-op update makes RETURNING yield the existing row on conflict, so
// concurrent first requests from one user converge on a single account.
const sqlUpsertAccountForUser = `
INSERT INTO accounts (name, user_id)
VALUES ($1, $2)
ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
RETURNING id, name, user_id, created_at, updated_at
`

// GetOrCreateAccount returns the user's account, creating it with name if absent
func (s *Store) GetOrCreateAccount(ctx context.Context, userID uuid.UUID, name string) (Account, error) {
	var account Account
	err := s.db.GetContext(ctx, &account, sqlUpsertAccountForUser, name, userID)
	if err != nil {
		return Account{}, fmt.Errorf("failed to get or create account: %w", err)
	}
	return account, nil
}

func getOrCreateAccountTx(ctx context.Context, tx *sqlx.Tx, userID uuid.UUID, name string) (Account, error) {
	var account Account
	err := tx.GetContext(ctx, &account, sqlUpsertAccountForUser, name, userID)
	if err != nil {
		return Account{}, fmt.Errorf("failed to get or create account: %w", err)
	}
	return account, nil
}
