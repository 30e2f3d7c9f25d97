package progress

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/typespeed-backend/internal/domain"
	"github.com/heartmarshall/typespeed-backend/internal/service/progress/typingstats"
	"github.com/heartmarshall/typespeed-backend/pkg/ctxutil"
)

// Record stores one typing test and folds it into the user's statistics.
// The account row stays locked for the whole read-modify-write, so concurrent
// submissions for the same user are applied one after another.
func (s *Service) Record(ctx context.Context, input RecordInput) (*domain.User, error) {
	if caller, ok := ctxutil.UserIDFromCtx(ctx); ok && caller != input.UserID {
		return nil, fmt.Errorf("progress.Record: %w", domain.ErrForbidden)
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}
	submission := input.submission()

	var user *domain.User
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		u, err := s.users.GetByIDForUpdate(txCtx, input.UserID)
		if err != nil {
			return fmt.Errorf("lock user: %w", err)
		}

		history, err := s.results.ListByUser(txCtx, u.ID)
		if err != nil {
			return fmt.Errorf("load history: %w", err)
		}
		u.History = history

		tr := typingstats.Apply(u, submission, s.now())

		if err := s.results.Insert(txCtx, &tr); err != nil {
			return fmt.Errorf("insert test result: %w", err)
		}
		if err := s.users.SaveStats(txCtx, u); err != nil {
			return fmt.Errorf("save stats: %w", err)
		}

		// Publishing under the row lock keeps the board in commit order for
		// concurrent submissions. A failed publish, or a commit that fails
		// after it, is corrected by the user's next submission.
		if err := s.ranking.Publish(txCtx, u.ID, u.Leaderboards); err != nil {
			s.log.WarnContext(ctx, "publish leaderboard scores",
				slog.String("user_id", u.ID.String()),
				slog.String("error", err.Error()))
		}

		user = u
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("progress.Record: %w", err)
	}

	s.log.InfoContext(ctx, "typing test recorded",
		slog.String("user_id", user.ID.String()),
		slog.Float64("wpm", submission.WPM),
		slog.Float64("avg_wpm", user.TypingStats.AvgWPM),
		slog.String("difficulty", user.TypingStats.Difficulty.String()))

	return user, nil
}
