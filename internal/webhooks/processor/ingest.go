package processor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"ltrack-server/internal/observability"
	"ltrack-server/internal/store"

	"github.com/google/uuid"
)

const (
	EventTypeFollow   = "follow"
	EventTypeUnfollow = "unfollow"
	EventTypeMessage  = "message"
	EventTypePostback = "postback"

	sourceTypeUser = "user"
)

// Payload is the LINE webhook request body. Events stay raw so the audit
// row keeps exactly what LINE sent.
type Payload struct {
	Destination string            `json:"destination"`
	Events      []json.RawMessage `json:"events"`
}

type EventSource struct {
	Type    string `json:"type"`
	UserID  string `json:"userId,omitempty"`
	GroupID string `json:"groupId,omitempty"`
	RoomID  string `json:"roomId,omitempty"`
}

// Event holds the fields of a LINE event the ingester dispatches on
type Event struct {
	Type      string      `json:"type"`
	Timestamp int64       `json:"timestamp"`
	Source    EventSource `json:"source"`
}

// Time returns the event's millisecond timestamp, or fallback when LINE sent none
func (e Event) Time(fallback time.Time) time.Time {
	if e.Timestamp <= 0 {
		return fallback
	}
	return time.UnixMilli(e.Timestamp).UTC()
}

// IngestResult reports how many events of a delivery were handled without error
type IngestResult struct {
	Total     int `json:"total"`
	Processed int `json:"processed"`
}

// HandleAccountWebhook ingests a delivery addressed to /webhook/line/:accountId
func (p *WebhookProcessor) HandleAccountWebhook(ctx context.Context, rawAccountID string, body []byte, signature string, receivedAt time.Time) (IngestResult, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "line_account_id", Value: rawAccountID})

	lineAccount, err := p.resolveAccount(ctx, rawAccountID)
	if err != nil {
		return IngestResult{}, err
	}

	if err := p.verifier.Verify(ctx, body, signature, lineAccount.ChannelSecret); err != nil {
		return IngestResult{}, err
	}

	payload, err := parsePayload(body)
	if err != nil {
		p.logger.InfoWithError(ctx, "rejecting malformed webhook body", err)
		return IngestResult{}, err
	}
	if len(payload.Events) == 0 {
		return IngestResult{}, nil
	}

	result := p.processEvents(ctx, lineAccount, payload.Events, receivedAt)
	p.forward(ctx, body, signature)
	return result, nil
}

// HandleGenericWebhook ingests a delivery addressed to /webhook/line. Events
// are only processed when the generic fallback resolves a LINE account.
func (p *WebhookProcessor) HandleGenericWebhook(ctx context.Context, body []byte, signature string, receivedAt time.Time) (IngestResult, error) {
	lineAccount, found, err := p.resolveFallbackAccount(ctx)
	if err != nil {
		return IngestResult{}, err
	}

	secret := p.settings.ChannelSecret
	if found {
		ctx = observability.WithFields(ctx, observability.Field{Key: "line_account_id", Value: lineAccount.ID.String()})
		if lineAccount.ChannelSecret != "" {
			secret = lineAccount.ChannelSecret
		}
	}

	if err := p.verifier.Verify(ctx, body, signature, secret); err != nil {
		return IngestResult{}, err
	}

	payload, err := parsePayload(body)
	if err != nil {
		p.logger.InfoWithError(ctx, "rejecting malformed webhook body", err)
		return IngestResult{}, err
	}
	if len(payload.Events) == 0 {
		return IngestResult{}, nil
	}

	if !found {
		p.logger.Warn(observability.WithFields(ctx,
			observability.Field{Key: "event_count", Value: len(payload.Events)},
		), "generic webhook has no line account, ignoring events")
		return IngestResult{Total: len(payload.Events)}, nil
	}

	result := p.processEvents(ctx, lineAccount, payload.Events, receivedAt)
	p.forward(ctx, body, signature)
	return result, nil
}

func parsePayload(body []byte) (Payload, error) {
	var payload Payload
	if err := json.Unmarshal(body, &payload); err != nil {
		return Payload{}, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	return payload, nil
}

func (p *WebhookProcessor) forward(ctx context.Context, body []byte, signature string) {
	if p.forwarder == nil {
		return
	}
	p.forwarder.Forward(ctx, body, signature)
}

// processEvents handles each event independently; one failure does not stop the rest
func (p *WebhookProcessor) processEvents(ctx context.Context, lineAccount store.LineAccount, events []json.RawMessage, receivedAt time.Time) IngestResult {
	result := IngestResult{Total: len(events)}
	for i, raw := range events {
		eventCtx := observability.WithFields(ctx, observability.Field{Key: "event_index", Value: i})
		if err := p.processEvent(eventCtx, lineAccount, raw, receivedAt); err != nil {
			p.logger.Error(eventCtx, "failed to process webhook event", err)
			continue
		}
		result.Processed++
	}

	p.logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "event_count", Value: result.Total},
		observability.Field{Key: "processed_count", Value: result.Processed},
	), "webhook events processed")
	return result
}

func (p *WebhookProcessor) processEvent(ctx context.Context, lineAccount store.LineAccount, raw json.RawMessage, receivedAt time.Time) error {
	var event Event
	if err := json.Unmarshal(raw, &event); err != nil {
		return fmt.Errorf("failed to decode event: %w", err)
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "event_type", Value: event.Type},
		observability.Field{Key: "source_type", Value: event.Source.Type},
	)
	isUser := event.Source.Type == sourceTypeUser && event.Source.UserID != ""
	if isUser {
		ctx = observability.WithFields(ctx, observability.Field{Key: "line_user_id", Value: event.Source.UserID})
	}

	p.audit(ctx, lineAccount, event, raw, receivedAt)

	if !isUser {
		p.logger.Debug(ctx, "skipping event without a user source")
		return nil
	}

	switch event.Type {
	case EventTypeFollow:
		return p.handleFollow(ctx, lineAccount, event.Source.UserID, event.Time(receivedAt))
	case EventTypeUnfollow:
		p.logger.Info(ctx, "user unfollowed")
	case EventTypeMessage:
		p.logger.Info(ctx, "message received")
	case EventTypePostback:
		p.logger.Info(ctx, "postback received")
	default:
		p.logger.Info(ctx, "unhandled event type")
	}
	return nil
}

// audit appends the LineEvent row. Failures are logged and do not stop dispatch.
func (p *WebhookProcessor) audit(ctx context.Context, lineAccount store.LineAccount, event Event, raw json.RawMessage, receivedAt time.Time) {
	var friendID *uuid.UUID
	if event.Source.Type == sourceTypeUser && event.Source.UserID != "" {
		friend, err := p.store.GetFriendByLineUserID(ctx, event.Source.UserID)
		switch {
		case err == nil:
			friendID = &friend.ID
		case !errors.Is(err, store.ErrNotFound):
			p.logger.InfoWithError(ctx, "failed to look up friend for audit", err)
		}
	}

	_, err := p.store.CreateLineEvent(ctx, store.CreateLineEventParams{
		LineAccountID: lineAccount.ID,
		FriendID:      friendID,
		EventType:     event.Type,
		EventData:     store.RawJSON(raw),
		Timestamp:     receivedAt,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to record line event", err)
	}
}
