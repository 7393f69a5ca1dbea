package mailer

import (
	"bytes"
	"context"
	"fmt"
	"net/smtp"
	"time"

	"blogapi/internal/pkg/logger"
)

// Mailer delivers transactional mail. Sends are best-effort from the
// workflows' perspective: failures are logged by the caller, never surfaced
// as a hard failure of registration or reset.
type Mailer interface {
	SendVerificationEmail(ctx context.Context, to, firstName, token string) error
	SendPasswordResetEmail(ctx context.Context, to, firstName, token string) error
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	// FrontendURL is the base for links embedded in mail bodies.
	FrontendURL string
}

// SMTPMailer sends HTML mail over plain SMTP with AUTH PLAIN.
type SMTPMailer struct {
	cfg SMTPConfig
}

func NewSMTPMailer(cfg SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) SendVerificationEmail(ctx context.Context, to, firstName, token string) error {
	verifyURL := fmt.Sprintf("%s/api/v1/auth/verify-email?token=%s", m.cfg.FrontendURL, token)
	body := fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
<h2>Hello %s,</h2>
<p>Thank you for registering with our blog. Please verify your email address by opening the link below:</p>
<p><a href="%s">Verify Email Address</a></p>
<p>%s</p>
<p>This link will expire in 24 hours.</p>
<p>If you didn't create an account, you can safely ignore this email.</p>
</div>`, firstName, verifyURL, verifyURL)

	return m.send(ctx, to, "Please verify your email address", body)
}

func (m *SMTPMailer) SendPasswordResetEmail(ctx context.Context, to, firstName, token string) error {
	resetURL := fmt.Sprintf("%s/api/v1/auth/reset-password", m.cfg.FrontendURL)
	body := fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
<h2>Hello %s,</h2>
<p>We received a request to reset your password. POST your reset token and new password to:</p>
<p><code>%s</code></p>
<p>Your reset token: <strong>%s</strong></p>
<p>This token will expire in 24 hours.</p>
<p>If you didn't request a password reset, you can safely ignore this email.</p>
</div>`, firstName, resetURL, token)

	return m.send(ctx, to, "Password Reset Request", body)
}

func (m *SMTPMailer) send(ctx context.Context, to, subject, htmlBody string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var msg bytes.Buffer
	fmt.Fprintf(&msg, "From: \"Blog System\" <%s>\r\n", m.cfg.From)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	fmt.Fprintf(&msg, "Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(htmlBody)

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	return smtp.SendMail(addr, auth, m.cfg.From, []string{to}, msg.Bytes())
}

// DevConsoleMailer logs mail instead of sending it. Used in dev and tests.
type DevConsoleMailer struct{}

func NewDevConsoleMailer() *DevConsoleMailer { return &DevConsoleMailer{} }

func (m *DevConsoleMailer) SendVerificationEmail(_ context.Context, to, _, token string) error {
	logger.Log.WithFields(map[string]interface{}{"to": to, "token": token}).
		Info("dev-mail: verification email")
	return nil
}

func (m *DevConsoleMailer) SendPasswordResetEmail(_ context.Context, to, _, token string) error {
	logger.Log.WithFields(map[string]interface{}{"to": to, "token": token}).
		Info("dev-mail: password reset email")
	return nil
}
