package processor

import (
	"context"
	"errors"
	"net/url"
	"time"

	"ltrack-server/internal/observability"
	"ltrack-server/internal/store"
	"ltrack-server/internal/tracking/session"

	"github.com/google/uuid"
)

const (
	lineAddFriendURL = "https://line.me/R/ti/p/"
	unknownValue     = "unknown"
)

// ClickRequest is the visitor metadata captured from one redirect request
type ClickRequest struct {
	Code          string
	IPAddress     string
	UserAgent     string
	Referer       string
	UTMSource     string
	UTMMedium     string
	UTMCampaign   string
	ViewerCountry string
	Timestamp     time.Time
}

// ClickResult tells the redirector where to send the visitor
type ClickResult struct {
	RedirectURL string
	SessionID   string
	ClickID     uuid.UUID
}

// RecordClick resolves an active code, appends one click row and opens a
// session. The caller redirects to the fallback URL on any error.
func (p *TrackingProcessor) RecordClick(ctx context.Context, req ClickRequest) (ClickResult, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "tracking_code", Value: req.Code})

	target, err := p.store.GetRedirectTarget(ctx, req.Code)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ClickResult{}, ErrTrackingCodeNotFound
		}
		p.logger.Error(ctx, "failed to resolve tracking code", err)
		return ClickResult{}, err
	}

	click, err := p.store.CreateClick(ctx, store.CreateClickParams{
		TrackingCodeID: target.TrackingCodeID,
		Timestamp:      req.Timestamp,
		IPAddress:      req.IPAddress,
		UserAgent:      req.UserAgent,
		Referer:        req.Referer,
		UTMSource:      optional(req.UTMSource),
		UTMMedium:      optional(req.UTMMedium),
		UTMCampaign:    optional(req.UTMCampaign),
		Country:        p.country(req),
		DeviceType:     unknownValue,
		Browser:        unknownValue,
		OS:             unknownValue,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to record click", err)
		return ClickResult{}, err
	}

	sessionID := uuid.NewString()
	p.sessions.Put(sessionID, session.Session{
		TrackingCodeID: target.TrackingCodeID,
		Code:           target.Code,
		CreatedAt:      req.Timestamp,
	})

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "click_id", Value: click.ID.String()},
		observability.Field{Key: "session_id", Value: sessionID},
	)
	p.logger.Info(ctx, "click recorded")

	return ClickResult{
		RedirectURL: LineRedirectURL(target.ChannelID, target.Code, sessionID),
		SessionID:   sessionID,
		ClickID:     click.ID,
	}, nil
}

// LineRedirectURL builds the LINE add-friend link carrying the campaign and session
func LineRedirectURL(channelID, code, sessionID string) string {
	q := url.Values{}
	q.Set("utm_source", "ltrack")
	q.Set("utm_medium", "tracking")
	q.Set("utm_campaign", code)
	q.Set("session", sessionID)
	return lineAddFriendURL + url.PathEscape(channelID) + "?" + q.Encode()
}

func (p *TrackingProcessor) country(req ClickRequest) string {
	if req.ViewerCountry != "" {
		return req.ViewerCountry
	}
	if p.geo != nil {
		if c := p.geo.Country(req.IPAddress); c != "" {
			return c
		}
	}
	return observability.UnknownCountry
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// SessionView is a cached click session
type SessionView struct {
	SessionID      string    `json:"sessionId"`
	TrackingCodeID uuid.UUID `json:"trackingCodeId"`
	Code           string    `json:"code"`
	CreatedAt      time.Time `json:"createdAt"`
}

// GetSession returns a live session whose tracking code belongs to the caller
func (p *TrackingProcessor) GetSession(ctx context.Context, userID uuid.UUID, sessionID string) (SessionView, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "session_id", Value: sessionID})

	s, ok := p.sessions.Get(sessionID)
	if !ok {
		return SessionView{}, ErrSessionNotFound
	}

	accountID, found, err := p.resolveAccount(ctx, userID)
	if err != nil {
		return SessionView{}, err
	}
	if !found {
		return SessionView{}, ErrSessionNotFound
	}

	if _, err := p.store.GetTrackingCodeForAccount(ctx, accountID, s.TrackingCodeID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return SessionView{}, ErrSessionNotFound
		}
		p.logger.Error(ctx, "failed to get tracking code for session", err)
		return SessionView{}, err
	}

	return SessionView{
		SessionID:      sessionID,
		TrackingCodeID: s.TrackingCodeID,
		Code:           s.Code,
		CreatedAt:      s.CreatedAt,
	}, nil
}
