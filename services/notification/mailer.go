package notification

import (
	"context"
	"fmt"
	"strings"
	"time"

	"glowbook/config"

	"github.com/wneessen/go-mail"
)

// Mailer sends a plain text message.
type Mailer interface {
	Send(ctx context.Context, to []string, subject, body string) error
}

// SMTPMailer relays mail through an SMTP server, authenticating when a
// username is configured.
type SMTPMailer struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string

	// deliver is dialAndSend outside tests.
	deliver func(ctx context.Context, msg *mail.Msg) error
}

// NewSMTPMailer returns nil when no relay host is configured.
func NewSMTPMailer(cfg config.Config) *SMTPMailer {
	if cfg.SMTPHost == "" {
		return nil
	}
	m := &SMTPMailer{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.SMTPFrom,
	}
	m.deliver = m.dialAndSend
	return m
}

func (m *SMTPMailer) Send(ctx context.Context, to []string, subject, body string) error {
	if len(to) == 0 {
		return fmt.Errorf("smtp: no recipients")
	}
	msg, err := m.newMessage(to, subject, body)
	if err != nil {
		return err
	}
	deliver := m.deliver
	if deliver == nil {
		deliver = m.dialAndSend
	}
	if err := deliver(ctx, msg); err != nil {
		return fmt.Errorf("smtp: send to %s: %w", strings.Join(to, ","), err)
	}
	return nil
}

func (m *SMTPMailer) newMessage(to []string, subject, body string) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(m.From); err != nil {
		return nil, fmt.Errorf("smtp: invalid sender %q: %w", m.From, err)
	}
	if err := msg.To(to...); err != nil {
		return nil, fmt.Errorf("smtp: invalid recipient: %w", err)
	}
	msg.Subject(subject)
	msg.SetDate()
	msg.SetMessageID()
	msg.SetBodyString(mail.TypeTextPlain, body)
	return msg, nil
}

func (m *SMTPMailer) dialAndSend(ctx context.Context, msg *mail.Msg) error {
	opts := []mail.Option{
		mail.WithTLSPolicy(mail.TLSOpportunistic),
		mail.WithTimeout(15 * time.Second),
	}
	if m.Port > 0 {
		opts = append(opts, mail.WithPort(m.Port))
	}
	if m.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(m.Username),
			mail.WithPassword(m.Password),
		)
	}
	client, err := mail.NewClient(m.Host, opts...)
	if err != nil {
		return err
	}
	return client.DialAndSendWithContext(ctx, msg)
}
