package worker

import (
	"context"
	"fmt"
	"log/slog"

	"gopkg.in/gomail.v2"
)

// Mail is one outgoing plain-text e-mail.
type Mail struct {
	To      string
	Subject string
	Body    string
}

// MailSender defines the interface for delivering e-mail
type MailSender interface {
	Send(ctx context.Context, mail Mail) error
}

// SMTPConfig holds the SMTP relay settings.
type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

// smtpSender delivers mail through an SMTP relay
type smtpSender struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPSender creates a sender for the given relay
func NewSMTPSender(cfg SMTPConfig) MailSender {
	from := cfg.From
	if from == "" {
		from = cfg.User
	}
	return &smtpSender{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   from,
	}
}

// Send opens one SMTP session per mail. gomail has no context support, so
// cancellation is only honoured before dialing.
func (s *smtpSender) Send(ctx context.Context, mail Mail) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", mail.To)
	m.SetHeader("Subject", mail.Subject)
	m.SetBody("text/plain", mail.Body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("smtp send to %s: %w", mail.To, err)
	}
	return nil
}

// logSender writes mail to the log instead of sending it. It is used in
// development when no SMTP relay is configured.
type logSender struct {
	logger *slog.Logger
}

// NewLogSender creates a sender that only logs
func NewLogSender(logger *slog.Logger) MailSender {
	return &logSender{logger: logger}
}

func (s *logSender) Send(ctx context.Context, mail Mail) error {
	s.logger.InfoContext(ctx, "mail not sent, no SMTP relay configured",
		slog.String("to", mail.To),
		slog.String("subject", mail.Subject),
	)
	return nil
}
