package appointment

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/smtp"
	"net/textproto"
	"strconv"
	"strings"
	"time"
)

var (
	ErrMailerNotConfigured = errors.New("smtp credentials not configured")
	ErrAuthFailed          = errors.New("smtp authentication failed")
)

// Mailer delivers one plain-text message to every recipient.
type Mailer interface {
	Send(ctx context.Context, msg Email) error
}

type Email struct {
	To      []string
	Subject string
	Body    string
}

type SMTPSettings struct {
	Host     string
	Port     int
	Username string
	Password string
}

// SMTPMailer sends through a submission server with STARTTLS and PLAIN auth.
type SMTPMailer struct {
	settings SMTPSettings
	timeout  time.Duration
}

func NewSMTPMailer(settings SMTPSettings) *SMTPMailer {
	return &SMTPMailer{settings: settings, timeout: 30 * time.Second}
}

func (m *SMTPMailer) Send(ctx context.Context, msg Email) error {
	s := m.settings
	if s.Host == "" || s.Username == "" || s.Password == "" {
		return ErrMailerNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	addr := net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("dial %s: %w", addr, err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	c, err := smtp.NewClient(conn, s.Host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("smtp handshake: %w", err)
	}
	defer c.Close()

	if err := c.StartTLS(&tls.Config{ServerName: s.Host}); err != nil {
		return fmt.Errorf("starttls: %w", err)
	}

	if err := c.Auth(smtp.PlainAuth("", s.Username, s.Password, s.Host)); err != nil {
		if isAuthFailure(err) {
			return fmt.Errorf("%w: %v", ErrAuthFailed, err)
		}
		return fmt.Errorf("smtp auth: %w", err)
	}

	if err := c.Mail(s.Username); err != nil {
		return fmt.Errorf("smtp mail from: %w", err)
	}
	for _, rcpt := range msg.To {
		if err := c.Rcpt(rcpt); err != nil {
			return fmt.Errorf("smtp rcpt %s: %w", rcpt, err)
		}
	}

	w, err := c.Data()
	if err != nil {
		return fmt.Errorf("smtp data: %w", err)
	}
	if _, err := w.Write(compose(s.Username, msg, time.Now())); err != nil {
		return fmt.Errorf("smtp write: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("smtp data close: %w", err)
	}

	return c.Quit()
}

// isAuthFailure reports a 535 reply (authentication credentials invalid).
func isAuthFailure(err error) bool {
	var tpErr *textproto.Error
	return errors.As(err, &tpErr) && tpErr.Code == 535
}

func compose(from string, msg Email, now time.Time) []byte {
	var b strings.Builder
	header := func(k, v string) {
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(headerSafe(v))
		b.WriteString("\r\n")
	}

	header("From", from)
	header("To", strings.Join(msg.To, ", "))
	header("Subject", msg.Subject)
	header("Date", now.Format(time.RFC1123Z))
	header("MIME-Version", "1.0")
	header("Content-Type", `text/plain; charset="utf-8"`)
	b.WriteString("\r\n")
	b.WriteString(strings.ReplaceAll(strings.ReplaceAll(msg.Body, "\r\n", "\n"), "\n", "\r\n"))

	return []byte(b.String())
}

func headerSafe(v string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(v)
}
