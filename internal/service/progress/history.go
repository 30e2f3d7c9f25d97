package progress

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/typespeed-backend/internal/domain"
)

// BestTest returns the user's highest-wpm test, the earliest one on ties.
// Returns ErrNotFound when the user is unknown or has no tests.
func (s *Service) BestTest(ctx context.Context, userID uuid.UUID) (*domain.TestResult, error) {
	best, err := s.results.BestByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("progress.BestTest: %w", err)
	}
	return best, nil
}

// AllTests returns the user's history in chronological order.
// Returns ErrNotFound when the user is unknown or has no tests.
func (s *Service) AllTests(ctx context.Context, userID uuid.UUID) ([]domain.TestResult, error) {
	history, err := s.results.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("progress.AllTests: %w", err)
	}
	if len(history) == 0 {
		return nil, fmt.Errorf("progress.AllTests: user %s has no tests: %w", userID, domain.ErrNotFound)
	}
	return history, nil
}

// Leaderboard returns the top entries of a board with usernames resolved.
// Entries whose account no longer exists are skipped.
func (s *Service) Leaderboard(ctx context.Context, input LeaderboardInput) ([]domain.LeaderboardEntry, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if input.Limit == 0 {
		input.Limit = DefaultLeaderboardLimit
	}

	entries, err := s.ranking.Top(ctx, domain.LeaderboardKind(input.Kind), input.Limit)
	if err != nil {
		return nil, fmt.Errorf("progress.Leaderboard: %w", err)
	}

	ids := make([]uuid.UUID, len(entries))
	for i, e := range entries {
		ids[i] = e.UserID
	}
	names, err := s.users.UsernamesByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("progress.Leaderboard usernames: %w", err)
	}

	out := make([]domain.LeaderboardEntry, 0, len(entries))
	for _, e := range entries {
		name, ok := names[e.UserID]
		if !ok {
			continue
		}
		e.Username = name
		e.Rank = int64(len(out) + 1)
		out = append(out, e)
	}
	return out, nil
}
