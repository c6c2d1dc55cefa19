// Package mail sends transactional messages through Resend from one fixed
// sender identity.
package mail

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"ltrack-server/internal/observability"

	"github.com/resendlabs/resend-go"
)

var (
	ErrMissingAPIKey = errors.New("resend api key is empty")
	ErrMissingSender = errors.New("sender address is empty")
	ErrNoRecipient   = errors.New("message has no recipient")
)

// Message is one outgoing email. Category becomes a Resend tag so delivery
// events can be grouped by message kind.
type Message struct {
	To       string
	Subject  string
	HTML     string
	Category string
}

type ResendClient struct {
	client *resend.Client
	from   string
	logger *observability.Logger
}

// NewResendClient builds a client that sends every message as from,
// e.g. "L-TRACK <noreply@ltrack.app>"
func NewResendClient(apiKey, from string, logger *observability.Logger) (*ResendClient, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if from == "" {
		return nil, ErrMissingSender
	}

	return &ResendClient{
		client: resend.NewClient(apiKey),
		from:   from,
		logger: logger,
	}, nil
}

// WithBaseURL points the client at another Resend-compatible endpoint
func (c *ResendClient) WithBaseURL(raw string) (*ResendClient, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid resend base url: %w", err)
	}
	c.client.BaseURL = u
	return c, nil
}

// Send delivers msg and returns the provider message id
func (c *ResendClient) Send(ctx context.Context, msg Message) (string, error) {
	if msg.To == "" {
		return "", ErrNoRecipient
	}
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "email_to", Value: msg.To},
		observability.Field{Key: "email_category", Value: msg.Category},
	)

	params := &resend.SendEmailRequest{
		From:    c.from,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Html:    msg.HTML,
	}
	if msg.Category != "" {
		params.Tags = []resend.Tag{{Name: "category", Value: msg.Category}}
	}

	res, err := c.client.Emails.Send(params)
	if err != nil {
		c.logger.Error(ctx, "failed to send email", err)
		return "", fmt.Errorf("resend: failed to send email: %w", err)
	}

	c.logger.Info(observability.WithFields(ctx, observability.Field{Key: "email_id", Value: res.Id}), "email sent")
	return res.Id, nil
}
