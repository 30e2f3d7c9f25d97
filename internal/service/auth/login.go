package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/typespeed-backend/internal/domain"
)

// Login authenticates a user with email + password and issues an access token.
// Unknown email → ErrNotFound; locked account → ErrLocked; wrong password → ErrUnauthorized.
func (s *Service) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("auth.Login get user: %w", err)
	}

	now := s.now()
	if user.Security.IsLocked(now) {
		return nil, fmt.Errorf("auth.Login: %w", domain.ErrLocked)
	}

	if !s.hasher.Verify(input.Password, user.PasswordHash) {
		s.recordFailure(ctx, user)
		return nil, domain.ErrUnauthorized
	}

	if err := s.users.RecordLoginSuccess(ctx, user.ID, now); err != nil {
		return nil, fmt.Errorf("auth.Login record success: %w", err)
	}
	user.Security.FailedLoginAttempts = 0
	user.Security.LockUntil = nil
	user.LastLogin = &now

	token, err := s.jwt.GenerateAccessToken(user.ID, user.Username)
	if err != nil {
		return nil, fmt.Errorf("auth.Login generate token: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in",
		slog.String("user_id", user.ID.String()))

	return &LoginResult{Token: token, User: user}, nil
}

// recordFailure counts a wrong password. Counting errors are logged only;
// the caller still gets ErrUnauthorized.
func (s *Service) recordFailure(ctx context.Context, user *domain.User) {
	if s.cfg.MaxFailedLogins <= 0 {
		return
	}

	_, lockUntil, err := s.users.RecordLoginFailure(ctx, user.ID, s.cfg.MaxFailedLogins, s.now().Add(s.cfg.LockoutDuration))
	if err != nil {
		s.log.ErrorContext(ctx, "record login failure",
			slog.String("user_id", user.ID.String()),
			slog.String("error", err.Error()))
		return
	}

	if lockUntil != nil && lockUntil.After(s.now()) {
		s.log.WarnContext(ctx, "account locked after repeated login failures",
			slog.String("user_id", user.ID.String()),
			slog.Time("lock_until", *lockUntil))
	}
}

// ValidateToken checks a bearer token and returns the user id and username it carries.
func (s *Service) ValidateToken(ctx context.Context, token string) (uuid.UUID, string, error) {
	userID, username, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		s.log.DebugContext(ctx, "invalid access token", slog.String("error", err.Error()))
		return uuid.Nil, "", fmt.Errorf("auth.ValidateToken: %w", domain.ErrUnauthorized)
	}
	return userID, username, nil
}
