package recovery

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/typespeed-backend/internal/auth"
	"github.com/heartmarshall/typespeed-backend/internal/domain"
	authsvc "github.com/heartmarshall/typespeed-backend/internal/service/auth"
)

// RequestReset stores a fresh reset token for the account behind email and
// queues the reset message. Any previously issued token is replaced.
func (s *Service) RequestReset(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return domain.NewValidationError("email", "required")
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("recovery.RequestReset: %w", err)
	}

	raw, hash, err := auth.GenerateResetToken()
	if err != nil {
		return fmt.Errorf("recovery.RequestReset: %w", err)
	}

	expires := s.now().Add(s.ttl)
	if err := s.users.SetResetToken(ctx, user.ID, hash, expires); err != nil {
		return fmt.Errorf("recovery.RequestReset store token: %w", err)
	}

	if err := s.mail.SendPasswordReset(ctx, user, s.link(raw)); err != nil {
		return fmt.Errorf("recovery.RequestReset send mail: %w", err)
	}

	s.log.InfoContext(ctx, "password reset requested",
		slog.String("user_id", user.ID.String()),
		slog.Time("expires_at", expires))

	return nil
}

// RedeemResetInput carries the raw token from the reset link and the new password.
type RedeemResetInput struct {
	Token           string
	Password        string
	ConfirmPassword string
}

// RedeemReset replaces the password when the token matches an unexpired reset.
// A token can be redeemed once.
func (s *Service) RedeemReset(ctx context.Context, input RedeemResetInput) error {
	if input.Token == "" {
		return fmt.Errorf("recovery.RedeemReset: %w", domain.ErrInvalidResetToken)
	}

	now := s.now()
	hash := auth.HashToken(input.Token)

	user, err := s.users.GetByResetToken(ctx, hash, now)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("recovery.RedeemReset: %w", domain.ErrInvalidResetToken)
		}
		return fmt.Errorf("recovery.RedeemReset: %w", err)
	}

	if input.Password != input.ConfirmPassword {
		return fmt.Errorf("recovery.RedeemReset: %w", domain.ErrPasswordMismatch)
	}
	if errs := authsvc.ValidatePassword("password", input.Password); len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}

	if user.Security.ResetPasswordToken == nil || !auth.TokensEqual(*user.Security.ResetPasswordToken, hash) {
		return fmt.Errorf("recovery.RedeemReset: %w", domain.ErrInvalidResetToken)
	}

	passwordHash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return fmt.Errorf("recovery.RedeemReset hash: %w", err)
	}

	if err := s.users.CompleteReset(ctx, user.ID, hash, passwordHash, now); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("recovery.RedeemReset: %w", domain.ErrInvalidResetToken)
		}
		return fmt.Errorf("recovery.RedeemReset: %w", err)
	}

	s.log.InfoContext(ctx, "password reset completed", slog.String("user_id", user.ID.String()))
	return nil
}
