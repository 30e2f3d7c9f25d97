package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/typespeed-backend/internal/domain"
)

// GetAccount returns the account with its full test history.
func (s *Service) GetAccount(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.GetAccount: %w", err)
	}

	history, err := s.history.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.GetAccount history: %w", err)
	}
	user.History = history

	return user, nil
}

// UpdateProfile applies a sparse profile update. A new username must not be
// held by another account.
func (s *Service) UpdateProfile(ctx context.Context, userID uuid.UUID, input UpdateProfileInput) (*domain.User, error) {
	if err := authorize(ctx, userID); err != nil {
		return nil, fmt.Errorf("user.UpdateProfile: %w", err)
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}
	patch := input.patch()

	current, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.UpdateProfile: %w", err)
	}

	if patch.Username != nil {
		if *patch.Username == current.Username {
			patch.Username = nil
		} else if err := s.ensureUsernameFree(ctx, *patch.Username); err != nil {
			return nil, fmt.Errorf("user.UpdateProfile: %w", err)
		}
	}

	// The unique constraint still decides races between the check and the update.
	user, err := s.users.UpdateProfile(ctx, userID, patch, s.now())
	if err != nil {
		return nil, fmt.Errorf("user.UpdateProfile: %w", err)
	}

	s.log.InfoContext(ctx, "profile updated",
		slog.String("user_id", userID.String()))

	return user, nil
}

func (s *Service) ensureUsernameFree(ctx context.Context, username string) error {
	_, err := s.users.GetByUsername(ctx, username)
	switch {
	case err == nil:
		return domain.ErrUsernameTaken
	case errors.Is(err, domain.ErrNotFound):
		return nil
	default:
		return fmt.Errorf("check username: %w", err)
	}
}
