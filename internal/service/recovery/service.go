// Package recovery implements password reset by emailed one-time token.
package recovery

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/typespeed-backend/internal/config"
	"github.com/heartmarshall/typespeed-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type userRepo interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByResetToken(ctx context.Context, tokenHash string, now time.Time) (*domain.User, error)
	SetResetToken(ctx context.Context, id uuid.UUID, tokenHash string, expires time.Time) error
	CompleteReset(ctx context.Context, id uuid.UUID, tokenHash, passwordHash string, now time.Time) error
}

type passwordHasher interface {
	Hash(plain string) (string, error)
}

type mailer interface {
	SendPasswordReset(ctx context.Context, user *domain.User, resetLink string) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service issues and redeems password-reset tokens.
type Service struct {
	log    *slog.Logger
	users  userRepo
	hasher passwordHasher
	mail   mailer
	ttl    time.Duration
	link   func(token string) string
	now    func() time.Time
}

// NewService creates a new recovery service.
func NewService(
	logger *slog.Logger,
	users userRepo,
	hasher passwordHasher,
	mail mailer,
	authCfg config.AuthConfig,
	mailCfg config.MailConfig,
) *Service {
	return &Service{
		log:    logger.With("service", "recovery"),
		users:  users,
		hasher: hasher,
		mail:   mail,
		ttl:    authCfg.ResetTokenTTL,
		link:   mailCfg.ResetLink,
		now:    time.Now,
	}
}
