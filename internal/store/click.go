package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// CreateClickParams represents the request metadata captured for one redirect
type CreateClickParams struct {
	TrackingCodeID uuid.UUID
	Timestamp      time.Time
	IPAddress      string
	UserAgent      string
	Referer        string
	UTMSource      *string
	UTMMedium      *string
	UTMCampaign    *string
	Country        string
	DeviceType     string
	Browser        string
	OS             string
}

const clickColumns = `id, tracking_code_id, timestamp, ip_address, user_agent, referer, utm_source, utm_medium, utm_campaign, country, device_type, browser, os`

const sqlCreateClick = `
INSERT INTO clicks (tracking_code_id, timestamp, ip_address, user_agent, referer, utm_source, utm_medium, utm_campaign, country, device_type, browser, os)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
RETURNING ` + clickColumns

// CreateClick appends a click row
func (s *Store) CreateClick(ctx context.Context, params CreateClickParams) (Click, error) {
	var click Click
	err := s.db.GetContext(ctx, &click, sqlCreateClick,
		params.TrackingCodeID,
		params.Timestamp,
		params.IPAddress,
		params.UserAgent,
		params.Referer,
		params.UTMSource,
		params.UTMMedium,
		params.UTMCampaign,
		params.Country,
		params.DeviceType,
		params.Browser,
		params.OS)
	if err != nil {
		return Click{}, fmt.Errorf("failed to create click: %w", err)
	}
	return click, nil
}

const sqlListRecentClicks = `
SELECT ` + clickColumns + `
FROM clicks
WHERE tracking_code_id = $1
ORDER BY timestamp DESC
LIMIT $2
`

// ListRecentClicks returns the newest clicks for a code
func (s *Store) ListRecentClicks(ctx context.Context, trackingCodeID uuid.UUID, limit int) ([]Click, error) {
	clicks := []Click{}
	err := s.db.SelectContext(ctx, &clicks, sqlListRecentClicks, trackingCodeID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent clicks: %w", err)
	}
	return clicks, nil
}

const sqlFindLatestClickInWindow = `
SELECT c.id, c.tracking_code_id, c.timestamp, c.ip_address, c.user_agent, c.referer,
       c.utm_source, c.utm_medium, c.utm_campaign, c.country, c.device_type, c.browser, c.os
FROM clicks c
JOIN tracking_codes tc ON tc.id = c.tracking_code_id
WHERE tc.line_account_id = $1
  AND c.timestamp >= $2
  AND c.timestamp <= $3
ORDER BY c.timestamp DESC
LIMIT 1
`

// FindLatestClickInWindow returns the most recent click on any of the LINE
// account's codes with from <= timestamp <= to
func (s *Store) FindLatestClickInWindow(ctx context.Context, lineAccountID uuid.UUID, from, to time.Time) (Click, error) {
	var click Click
	err := s.db.GetContext(ctx, &click, sqlFindLatestClickInWindow, lineAccountID, from, to)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Click{}, ErrNotFound
		}
		return Click{}, fmt.Errorf("failed to find click in window: %w", err)
	}
	return click, nil
}
