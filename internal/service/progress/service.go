// Package progress records typing tests and serves per-user history and
// leaderboards.
package progress

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/typespeed-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type userRepo interface {
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.User, error)
	SaveStats(ctx context.Context, u *domain.User) error
	UsernamesByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error)
}

type resultRepo interface {
	Insert(ctx context.Context, tr *domain.TestResult) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.TestResult, error)
	BestByUser(ctx context.Context, userID uuid.UUID) (*domain.TestResult, error)
}

type rankingStore interface {
	Publish(ctx context.Context, userID uuid.UUID, scores domain.Leaderboards) error
	Top(ctx context.Context, kind domain.LeaderboardKind, limit int) ([]domain.LeaderboardEntry, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements test recording, history reads and leaderboard reads.
type Service struct {
	log     *slog.Logger
	users   userRepo
	results resultRepo
	ranking rankingStore
	tx      txManager
	now     func() time.Time
}

// NewService creates a new progress service.
func NewService(
	logger *slog.Logger,
	users userRepo,
	results resultRepo,
	ranking rankingStore,
	tx txManager,
) *Service {
	return &Service{
		log:     logger.With("service", "progress"),
		users:   users,
		results: results,
		ranking: ranking,
		tx:      tx,
		now:     time.Now,
	}
}
