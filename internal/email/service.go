package email

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"

	"ltrack-server/internal/clients/mail"
	"ltrack-server/internal/observability"
)

var (
	ErrSendingEmail  = errors.New("error sending email")
	ErrEmptyTemplate = errors.New("email template is empty")
)

// Sender delivers a rendered message. Implemented by mail.ResendClient.
type Sender interface {
	Send(ctx context.Context, msg mail.Message) (string, error)
}

// EmailService renders and sends transactional emails. A service without a
// sender is disabled and drops every message.
type EmailService struct {
	sender       Sender
	logger       *observability.Logger
	dashboardURL string
	templates    map[string]*template.Template
}

// TemplateData represents the data that can be used in templates
type TemplateData struct {
	Name         string
	Email        string
	DashboardURL string
}

const welcomeTemplate = `
<html>
	<body>
		<h1>Welcome to L-TRACK, {{.Name}}!</h1>
		<p>Your account {{.Email}} is ready.</p>
		<p>Connect a LINE channel and create your first tracking link to start measuring which campaigns bring you friends.</p>
		<p><a href="{{.DashboardURL}}" style="background-color: #06C755; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; display: inline-block;">Open dashboard</a></p>
	</body>
</html>
`

// New creates a new EmailService. sender may be nil.
func New(sender Sender, dashboardURL string, logger *observability.Logger) *EmailService {
	return &EmailService{
		sender:       sender,
		logger:       logger,
		dashboardURL: dashboardURL,
		templates: map[string]*template.Template{
			"welcome": template.Must(template.New("welcome").Parse(welcomeTemplate)),
		},
	}
}

// Enabled reports whether messages are actually delivered
func (s *EmailService) Enabled() bool {
	return s != nil && s.sender != nil
}

func (s *EmailService) renderTemplate(templateName string, data TemplateData) (string, error) {
	tmpl, ok := s.templates[templateName]
	if !ok {
		return "", fmt.Errorf("template %s not found", templateName)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

// SendWelcomeEmail sends a welcome email to a newly registered user
func (s *EmailService) SendWelcomeEmail(ctx context.Context, to, name string) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "email_type", Value: "welcome"},
		observability.Field{Key: "recipient", Value: to},
	)

	if !s.Enabled() {
		s.logger.Debug(ctx, "email disabled, skipping welcome email")
		return nil
	}

	htmlContent, err := s.renderTemplate("welcome", TemplateData{
		Name:         name,
		Email:        to,
		DashboardURL: s.dashboardURL,
	})
	if err != nil {
		s.logger.Error(ctx, "failed to render welcome email template", err)
		return fmt.Errorf("%w: %s", ErrEmptyTemplate, err.Error())
	}

	_, err = s.sender.Send(ctx, mail.Message{
		To:       to,
		Subject:  "Welcome to L-TRACK",
		HTML:     htmlContent,
		Category: "welcome",
	})
	if err != nil {
		s.logger.Error(ctx, "failed to send welcome email", err)
		return fmt.Errorf("%w: %s", ErrSendingEmail, err.Error())
	}

	return nil
}
