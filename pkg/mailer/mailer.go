// Package mailer sends plain-text email through an external SMTP relay.
package mailer

import (
	"context"
	"fmt"
	"time"

	"videogen-portal/pkg/utils"

	"github.com/sethvargo/go-retry"
	"github.com/wneessen/go-mail"
	"go.uber.org/zap"
)

// Dispatcher is the outbound-mail collaborator consumed by the services.
// A failed Send never rolls back the mutation that triggered it; callers
// log the error and move on.
type Dispatcher interface {
	Send(ctx context.Context, to, subject, body string) error
}

type smtpMailer struct {
	client *mail.Client
	from   string
	log    *zap.Logger
}

// NewSMTPMailer builds a Dispatcher on top of the configured SMTP relay.
func NewSMTPMailer(config utils.EmailConfig, log *zap.Logger) (Dispatcher, error) {
	client, err := mail.NewClient(config.Host,
		mail.WithPort(config.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(config.User),
		mail.WithPassword(config.Password),
		mail.WithTLSPortPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return nil, fmt.Errorf("create SMTP client: %w", err)
	}

	return &smtpMailer{
		client: client,
		from:   config.From,
		log:    log.With(zap.String("component", "mailer")),
	}, nil
}

// Send delivers a plain-text message, retrying transient SMTP failures with
// exponential backoff before giving up.
func (m *smtpMailer) Send(ctx context.Context, to, subject, body string) error {
	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return fmt.Errorf("set sender %s: %w", m.from, err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("set recipient %s: %w", to, err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	backoff := retry.WithMaxRetries(3, retry.NewExponential(500*time.Millisecond))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
			m.log.Warn("SMTP send attempt failed",
				zap.Error(err),
				zap.String("to", to),
			)
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("send email to %s: %w", to, err)
	}

	m.log.Info("Email sent", zap.String("to", to), zap.String("subject", subject))
	return nil
}
