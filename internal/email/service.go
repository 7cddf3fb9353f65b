package email

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/smtp"
	"net/url"

	"github.com/zazzlife/zazz-api/internal/config"
	"github.com/zazzlife/zazz-api/internal/logging"
)

//go:embed templates/*.html
var templateFS embed.FS

var (
	verificationTemplate  = parseTemplate("templates/verification.html")
	passwordResetTemplate = parseTemplate("templates/password_reset.html")
)

func parseTemplate(content string) *template.Template {
	return template.Must(template.ParseFS(templateFS, "templates/layout.html", content))
}

// sendFunc matches smtp.SendMail
type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

type Service struct {
	smtpHost     string
	smtpPort     string
	smtpUser     string
	smtpPassword string
	fromEmail    string
	frontendURL  string
	send         sendFunc
}

func NewService(cfg config.EmailConfig) *Service {
	return &Service{
		smtpHost:     cfg.SMTPHost,
		smtpPort:     cfg.SMTPPort,
		smtpUser:     cfg.SMTPUser,
		smtpPassword: cfg.SMTPPassword,
		fromEmail:    cfg.SMTPUser,
		frontendURL:  cfg.FrontendURL,
		send:         smtp.SendMail,
	}
}

type message struct {
	Heading   string
	Username  string
	Link      string
	ExpiresIn string
}

// SendVerificationEmail sends an email verification link to the user.
// Callers usually run it in a goroutine.
func (s *Service) SendVerificationEmail(ctx context.Context, toEmail, username, token string) error {
	return s.deliver(ctx, toEmail, "Verify your email address", verificationTemplate, message{
		Heading:   "Welcome to Zazz!",
		Username:  username,
		Link:      s.link("/verify-email", token),
		ExpiresIn: "24 hours",
	})
}

// SendPasswordResetEmail sends a password reset link to the user
func (s *Service) SendPasswordResetEmail(ctx context.Context, toEmail, username, token string) error {
	return s.deliver(ctx, toEmail, "Reset your password", passwordResetTemplate, message{
		Heading:   "Password Reset Request",
		Username:  username,
		Link:      s.link("/reset-password", token),
		ExpiresIn: "1 hour",
	})
}

func (s *Service) link(path, token string) string {
	return fmt.Sprintf("%s%s?token=%s", s.frontendURL, path, url.QueryEscape(token))
}

func (s *Service) deliver(ctx context.Context, to, subject string, tmpl *template.Template, data message) error {
	logger := logging.GetLoggerFromContext(ctx)

	var body bytes.Buffer
	if err := tmpl.ExecuteTemplate(&body, "layout", data); err != nil {
		logger.Error("failed to render email template", "template", tmpl.Name(), "error", err)
		return fmt.Errorf("render template: %w", err)
	}

	if err := s.sendEmail(to, subject, body.String()); err != nil {
		logger.Error("failed to send email", "email", to, "subject", subject, "error", err)
		return fmt.Errorf("send email: %w", err)
	}

	logger.Info("email sent", "email", to, "subject", subject)
	return nil
}

func (s *Service) sendEmail(to, subject, body string) error {
	auth := smtp.PlainAuth("", s.smtpUser, s.smtpPassword, s.smtpHost)

	msg := []byte(fmt.Sprintf(
		"From: %s\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=UTF-8\r\n"+
			"\r\n"+
			"%s\r\n",
		s.fromEmail, to, subject, body,
	))

	addr := fmt.Sprintf("%s:%s", s.smtpHost, s.smtpPort)
	return s.send(addr, auth, s.fromEmail, []string{to}, msg)
}
