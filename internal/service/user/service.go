package user

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/typespeed-backend/internal/domain"
	"github.com/heartmarshall/typespeed-backend/pkg/ctxutil"
)

// userRepo defines the account repository interface needed by user service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, patch domain.ProfilePatch, now time.Time) (*domain.User, error)
}

// historyRepo defines the test history interface needed by user service.
type historyRepo interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.TestResult, error)
}

// Service implements account read and profile update operations.
type Service struct {
	log     *slog.Logger
	users   userRepo
	history historyRepo
	now     func() time.Time
}

// NewService creates a new user service instance.
func NewService(logger *slog.Logger, users userRepo, history historyRepo) *Service {
	return &Service{
		log:     logger.With("service", "user"),
		users:   users,
		history: history,
		now:     time.Now,
	}
}

// authorize rejects an authenticated caller acting on someone else's account.
// Anonymous callers pass.
func authorize(ctx context.Context, target uuid.UUID) error {
	caller, ok := ctxutil.UserIDFromCtx(ctx)
	if ok && caller != target {
		return domain.ErrForbidden
	}
	return nil
}
