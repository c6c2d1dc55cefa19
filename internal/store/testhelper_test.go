package store

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"

	"ltrack-server/internal/observability"

	"github.com/jmoiron/sqlx"
)

// TestDB is a Store bound to the shared test database
type TestDB struct {
	db    *sqlx.DB
	Store Store
}

var (
	migrateOnce sync.Once
	migrateErr  error
)

// SetupTestDB connects to PostgreSQL and applies the embedded migrations once
// per test binary. The test is skipped when no database is reachable.
//
// TEST_DATABASE_URL takes precedence over the TEST_DB_* variables.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	db, err := sqlx.Open("pgx", testConnectionString())
	if err != nil {
		t.Skipf("skipping store test, database unavailable: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping store test, database unavailable: %v", err)
	}
	t.Cleanup(func() {
		db.Close()
	})

	migrateOnce.Do(func() {
		migrateErr = runMigrations(context.Background(), db)
	})
	if migrateErr != nil {
		t.Fatalf("failed to run migrations: %v", migrateErr)
	}

	return &TestDB{
		db:    db,
		Store: Store{db: db, logger: observability.NewLogger()},
	}
}

func testConnectionString() string {
	if url := os.Getenv("TEST_DATABASE_URL"); url != "" {
		return url
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		getTestEnv("TEST_DB_USER", "ltrack_user"),
		getTestEnv("TEST_DB_PASSWORD", "ltrack_password"),
		getTestEnv("TEST_DB_HOST", "localhost"),
		getTestEnv("TEST_DB_PORT", "5432"),
		getTestEnv("TEST_DB_NAME", "ltrack_test"),
	)
}

func getTestEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

// CountRows returns the number of rows in table matching where
func (tdb *TestDB) CountRows(t *testing.T, table, where string, args ...interface{}) int {
	t.Helper()
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s", table)
	if where != "" {
		query += " WHERE " + where
	}
	var count int
	if err := tdb.db.Get(&count, query, args...); err != nil {
		t.Fatalf("failed to count rows: %v", err)
	}
	return count
}
