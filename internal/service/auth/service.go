package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/typespeed-backend/internal/config"
	"github.com/heartmarshall/typespeed-backend/internal/domain"
)

// userRepo defines the account repository interface needed by auth service.
type userRepo interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	RecordLoginFailure(ctx context.Context, id uuid.UUID, maxAttempts int, lockUntil time.Time) (int, *time.Time, error)
	RecordLoginSuccess(ctx context.Context, id uuid.UUID, now time.Time) error
}

// passwordHasher defines the password hashing interface needed by auth service.
type passwordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, hash string) bool
}

// jwtManager defines the JWT token management interface needed by auth service.
type jwtManager interface {
	GenerateAccessToken(userID uuid.UUID, username string) (string, error)
	ValidateAccessToken(token string) (uuid.UUID, string, error)
}

// Service implements registration, login and token validation.
type Service struct {
	log    *slog.Logger
	users  userRepo
	hasher passwordHasher
	jwt    jwtManager
	cfg    config.AuthConfig
	now    func() time.Time
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	hasher passwordHasher,
	jwt jwtManager,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:    logger.With("service", "auth"),
		users:  users,
		hasher: hasher,
		jwt:    jwt,
		cfg:    cfg,
		now:    time.Now,
	}
}

// LoginResult is returned by Login.
type LoginResult struct {
	Token string
	User  *domain.User
}
