// Package mail delivers transactional email through a bounded in-process
// queue. Requests enqueue and return; a worker sends with retries.
package mail

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"

	"github.com/heartmarshall/typespeed-backend/internal/domain"
)

// Message is one outgoing HTML email.
type Message struct {
	To      string
	Subject string
	HTML    string
}

// Sender delivers a single message.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

const passwordResetSubject = "Password Reset Request"

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

type passwordResetData struct {
	User      *domain.User
	ResetLink string
}

// PasswordResetMessage renders the reset email for user.
func PasswordResetMessage(user *domain.User, resetLink string) (Message, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, "password_reset.html", passwordResetData{User: user, ResetLink: resetLink}); err != nil {
		return Message{}, fmt.Errorf("render password reset email: %w", err)
	}

	return Message{
		To:      user.Email,
		Subject: passwordResetSubject,
		HTML:    buf.String(),
	}, nil
}
