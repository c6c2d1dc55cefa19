package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Fixtures provides factory functions for creating test data.
// All factory methods use testify/require to fail fast on errors.
type Fixtures struct {
	t      *testing.T
	testDB *TestDB
	ctx    context.Context
}

// NewFixtures creates a new Fixtures instance for test data generation.
func NewFixtures(t *testing.T, testDB *TestDB) *Fixtures {
	t.Helper()
	return &Fixtures{
		t:      t,
		testDB: testDB,
		ctx:    context.Background(),
	}
}

// --- User Fixtures ---

// UserOpts customizes user creation.
type UserOpts struct {
	Email string
	Name  string
	Role  string
}

// CreateUser creates a test user with a unique email.
func (f *Fixtures) CreateUser(opts ...func(*UserOpts)) User {
	f.t.Helper()
	o := UserOpts{
		Email: "user-" + uuid.New().String() + "@example.com",
		Name:  "Test User",
		Role:  "admin",
	}
	for _, fn := range opts {
		fn(&o)
	}

	user, err := f.testDB.Store.CreateUser(f.ctx, CreateUserParams{
		Email:        o.Email,
		PasswordHash: "$2a$12$fixturehashfixturehashfixturehashfixturehashfixtureha",
		Name:         o.Name,
		Role:         o.Role,
	})
	require.NoError(f.t, err, "failed to create test user")
	return user
}

// --- Account Fixtures ---

// CreateAccount creates a user together with their account.
func (f *Fixtures) CreateAccount() (User, Account) {
	f.t.Helper()
	user := f.CreateUser()
	account, err := f.testDB.Store.GetOrCreateAccount(f.ctx, user.ID, user.Email+"'s Account")
	require.NoError(f.t, err, "failed to create test account")
	return user, account
}

// --- LINE Account Fixtures ---

// CreateLineAccount creates a LINE channel owned by userID.
func (f *Fixtures) CreateLineAccount(userID uuid.UUID) LineAccount {
	f.t.Helper()
	lineAccount, err := f.testDB.Store.CreateLineAccountForUser(f.ctx, userID, "Fixture Account", CreateLineAccountParams{
		Name:               "Fixture Channel",
		ChannelID:          "channel-" + uuid.New().String()[:8],
		ChannelSecret:      "secret",
		ChannelAccessToken: "token",
	})
	require.NoError(f.t, err, "failed to create test line account")
	return lineAccount
}

// --- Tracking Code Fixtures ---

// CreateTrackingCode creates a tracking code on lineAccount for userID.
func (f *Fixtures) CreateTrackingCode(userID uuid.UUID, lineAccountID uuid.UUID) TrackingCode {
	f.t.Helper()
	code, err := f.testDB.Store.CreateTrackingCodeForUser(f.ctx, userID, "Fixture Account", CreateTrackingCodeParams{
		LineAccountID: lineAccountID,
		Code:          "ltk_" + uuid.New().String()[:8] + "test",
		Name:          "Fixture Code",
	})
	require.NoError(f.t, err, "failed to create test tracking code")
	return code
}

// --- Click and Friend Fixtures ---

// CreateClick records a click on trackingCodeID at ts.
func (f *Fixtures) CreateClick(trackingCodeID uuid.UUID, ts time.Time) Click {
	f.t.Helper()
	click, err := f.testDB.Store.CreateClick(f.ctx, CreateClickParams{
		TrackingCodeID: trackingCodeID,
		Timestamp:      ts,
		IPAddress:      "203.0.113.10",
		UserAgent:      "fixture-agent",
		Country:        "JP",
		DeviceType:     "unknown",
		Browser:        "unknown",
		OS:             "unknown",
	})
	require.NoError(f.t, err, "failed to create test click")
	return click
}

// CreateFriend records a friend on trackingCodeID.
func (f *Fixtures) CreateFriend(trackingCodeID uuid.UUID, addedAt time.Time, conversion *CreateConversionParams) Friend {
	f.t.Helper()
	friend, err := f.testDB.Store.CreateFriend(f.ctx, CreateFriendParams{
		TrackingCodeID: trackingCodeID,
		LineUserID:     "U" + uuid.New().String(),
		DisplayName:    "Fixture Friend",
		AddedAt:        addedAt,
		Conversion:     conversion,
	})
	require.NoError(f.t, err, "failed to create test friend")
	return friend
}
