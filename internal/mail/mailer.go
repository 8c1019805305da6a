// Package mail sends transactional notifications over SMTP.
package mail

import (
	"context"
	"fmt"

	gomail "github.com/wneessen/go-mail"

	"github.com/luminainteriors/lumina-be/internal/models"
)

// Mailer delivers studio-inbox notifications for contact submissions.
type Mailer struct {
	client *gomail.Client
	from   string
	to     string
}

// New configures an SMTP client. user may be empty for unauthenticated relays.
func New(host string, port int, user, password, from, to string) (*Mailer, error) {
	opts := []gomail.Option{gomail.WithPort(port)}
	if user != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(user),
			gomail.WithPassword(password),
		)
	}
	client, err := gomail.NewClient(host, opts...)
	if err != nil {
		return nil, fmt.Errorf("init smtp client: %w", err)
	}
	return &Mailer{client: client, from: from, to: to}, nil
}

// SendContactNotice emails the studio inbox about a new submission.
func (m *Mailer) SendContactNotice(ctx context.Context, details models.ContactDetails, service, budget string, isSpam bool) error {
	msg := gomail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return fmt.Errorf("set from: %w", err)
	}
	if err := msg.To(m.to); err != nil {
		return fmt.Errorf("set to: %w", err)
	}

	subject := "New contact request from " + details.Name
	if isSpam {
		subject = "[spam] " + subject
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextPlain, fmt.Sprintf(
		"Name: %s\nEmail: %s\nPhone: %s\nService: %s\nBudget: %s\n\n%s\n",
		details.Name, details.Email, details.Phone, service, budget, details.Message))

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send contact notice: %w", err)
	}
	return nil
}
