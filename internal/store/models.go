package store

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// RawJSON holds an unparsed JSON document stored in a JSONB column
type RawJSON json.RawMessage

// Value implements the driver.Valuer interface for RawJSON
func (j RawJSON) Value() (driver.Value, error) {
	if len(j) == 0 {
		return "{}", nil
	}
	if !json.Valid(j) {
		return nil, errors.New("invalid JSON for JSONB column")
	}
	return string(j), nil
}

// Scan implements the sql.Scanner interface for RawJSON
func (j *RawJSON) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*j = nil
	case []byte:
		*j = append((*j)[:0], v...)
	case string:
		*j = RawJSON(v)
	default:
		return errors.New("incompatible type for RawJSON")
	}
	return nil
}

// MarshalJSON emits the stored document as-is
func (j RawJSON) MarshalJSON() ([]byte, error) {
	if len(j) == 0 {
		return []byte("null"), nil
	}
	return []byte(j), nil
}

// UnmarshalJSON stores a copy of the document
func (j *RawJSON) UnmarshalJSON(data []byte) error {
	*j = append((*j)[:0], data...)
	return nil
}

type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Name         string    `db:"name" json:"name"`
	Role         string    `db:"role" json:"role"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}

// Account is the tenant boundary. Exactly one per user, created on demand.
type Account struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	UserID    uuid.UUID `db:"user_id" json:"userId"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// LineAccount is a LINE messaging channel credential bundle. Secrets never
// leave the server.
type LineAccount struct {
	ID                 uuid.UUID `db:"id" json:"id"`
	AccountID          uuid.UUID `db:"account_id" json:"accountId"`
	Name               string    `db:"name" json:"name"`
	ChannelID          string    `db:"channel_id" json:"channelId"`
	ChannelSecret      string    `db:"channel_secret" json:"-"`
	ChannelAccessToken string    `db:"channel_access_token" json:"-"`
	WebhookURL         *string   `db:"webhook_url" json:"webhookUrl"`
	IsActive           bool      `db:"is_active" json:"isActive"`
	CreatedAt          time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt          time.Time `db:"updated_at" json:"updatedAt"`
}

// LineAccountWithCount adds the number of tracking codes bound to the channel
type LineAccountWithCount struct {
	LineAccount
	TrackingCodeCount int `db:"tracking_code_count" json:"trackingCodeCount"`
}

type TrackingCode struct {
	ID            uuid.UUID `db:"id" json:"id"`
	AccountID     uuid.UUID `db:"account_id" json:"accountId"`
	LineAccountID uuid.UUID `db:"line_account_id" json:"lineAccountId"`
	Code          string    `db:"code" json:"code"`
	Name          string    `db:"name" json:"name"`
	Description   *string   `db:"description" json:"description"`
	IsActive      bool      `db:"is_active" json:"isActive"`
	CreatedAt     time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt     time.Time `db:"updated_at" json:"updatedAt"`
}

// TrackingCodeWithStats is a tracking code joined with its channel and
// lifetime click and friend counts
type TrackingCodeWithStats struct {
	TrackingCode
	LineAccountName string `db:"line_account_name" json:"lineAccountName"`
	LineChannelID   string `db:"line_channel_id" json:"lineChannelId"`
	ClickCount      int    `db:"click_count" json:"clickCount"`
	FriendCount     int    `db:"friend_count" json:"friendCount"`
}

// RedirectTarget is what the click redirector needs to resolve a short code
type RedirectTarget struct {
	TrackingCodeID uuid.UUID `db:"tracking_code_id"`
	Code           string    `db:"code"`
	LineAccountID  uuid.UUID `db:"line_account_id"`
	ChannelID      string    `db:"channel_id"`
}

type Click struct {
	ID             uuid.UUID `db:"id" json:"id"`
	TrackingCodeID uuid.UUID `db:"tracking_code_id" json:"trackingCodeId"`
	Timestamp      time.Time `db:"timestamp" json:"timestamp"`
	IPAddress      string    `db:"ip_address" json:"ipAddress"`
	UserAgent      string    `db:"user_agent" json:"userAgent"`
	Referer        string    `db:"referer" json:"referer"`
	UTMSource      *string   `db:"utm_source" json:"utmSource"`
	UTMMedium      *string   `db:"utm_medium" json:"utmMedium"`
	UTMCampaign    *string   `db:"utm_campaign" json:"utmCampaign"`
	Country        string    `db:"country" json:"country"`
	DeviceType     string    `db:"device_type" json:"deviceType"`
	Browser        string    `db:"browser" json:"browser"`
	OS             string    `db:"os" json:"os"`
}

type Friend struct {
	ID             uuid.UUID `db:"id" json:"id"`
	TrackingCodeID uuid.UUID `db:"tracking_code_id" json:"trackingCodeId"`
	LineUserID     string    `db:"line_user_id" json:"lineUserId"`
	DisplayName    string    `db:"display_name" json:"displayName"`
	AddedAt        time.Time `db:"added_at" json:"addedAt"`
}

type Conversion struct {
	ID        uuid.UUID `db:"id" json:"id"`
	FriendID  uuid.UUID `db:"friend_id" json:"friendId"`
	EventType string    `db:"event_type" json:"eventType"`
	Value     float64   `db:"value" json:"value"`
	Currency  string    `db:"currency" json:"currency"`
	Timestamp time.Time `db:"timestamp" json:"timestamp"`
}

// LineEvent is the append-only audit record of one inbound webhook event
type LineEvent struct {
	ID            uuid.UUID  `db:"id" json:"id"`
	LineAccountID uuid.UUID  `db:"line_account_id" json:"lineAccountId"`
	FriendID      *uuid.UUID `db:"friend_id" json:"friendId"`
	EventType     string     `db:"event_type" json:"eventType"`
	EventData     RawJSON    `db:"event_data" json:"eventData"`
	Timestamp     time.Time  `db:"timestamp" json:"timestamp"`
}
