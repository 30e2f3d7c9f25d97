// Package account implements the user account repository using PostgreSQL.
// Fixed queries are raw SQL constants; the sparse profile update is built
// with squirrel since its SET list depends on the patch.
package account

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/typespeed-backend/internal/adapter/postgres"
	"github.com/heartmarshall/typespeed-backend/internal/domain"
)

// Repo provides account persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new account repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const userColumns = `id, username, email, password_hash,
	first_name, last_name, age, gender, country, state, pincode,
	email_verified, failed_login_attempts, lock_until, reset_password_token, reset_password_expires,
	highest_wpm, total_tests, total_words_typed, total_time_spent,
	avg_wpm, accuracy, tests_completed, best_accuracy, difficulty,
	leaderboard_global, leaderboard_regional,
	last_login, last_test, created_at, updated_at`

const createSQL = `
INSERT INTO users (id, username, email, password_hash, first_name, last_name, age, gender, country, state, pincode, difficulty, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
RETURNING ` + userColumns

const getByIDSQL = `
SELECT ` + userColumns + `
FROM users
WHERE id = $1`

const getByIDForUpdateSQL = getByIDSQL + `
FOR UPDATE`

const getByEmailSQL = `
SELECT ` + userColumns + `
FROM users
WHERE email = $1`

const getByUsernameSQL = `
SELECT ` + userColumns + `
FROM users
WHERE username = $1`

const getByResetTokenSQL = `
SELECT ` + userColumns + `
FROM users
WHERE reset_password_token = $1 AND reset_password_expires > $2`

const saveStatsSQL = `
UPDATE users
SET highest_wpm = $2, total_tests = $3, total_words_typed = $4, total_time_spent = $5,
    avg_wpm = $6, accuracy = $7, tests_completed = $8, best_accuracy = $9, difficulty = $10,
    leaderboard_global = $11, leaderboard_regional = $12,
    last_test = $13, updated_at = $14
WHERE id = $1`

// recordLoginFailureSQL increments the counter and, when it reaches $2,
// locks the account until $3 and starts counting again from zero.
const recordLoginFailureSQL = `
UPDATE users
SET failed_login_attempts = CASE WHEN failed_login_attempts + 1 >= $2 THEN 0 ELSE failed_login_attempts + 1 END,
    lock_until            = CASE WHEN failed_login_attempts + 1 >= $2 THEN $3 ELSE lock_until END,
    updated_at            = now()
WHERE id = $1
RETURNING failed_login_attempts, lock_until`

const recordLoginSuccessSQL = `
UPDATE users
SET failed_login_attempts = 0, lock_until = NULL, last_login = $2, updated_at = $2
WHERE id = $1`

const setResetTokenSQL = `
UPDATE users
SET reset_password_token = $2, reset_password_expires = $3, updated_at = now()
WHERE id = $1`

// completeResetSQL swaps the password and clears the token in one statement;
// it matches nothing once the token was used or has expired.
const completeResetSQL = `
UPDATE users
SET password_hash = $3, reset_password_token = NULL, reset_password_expires = NULL, updated_at = $4
WHERE id = $1 AND reset_password_token = $2 AND reset_password_expires > $4`

const clearExpiredResetTokensSQL = `
UPDATE users
SET reset_password_token = NULL, reset_password_expires = NULL, updated_at = $1
WHERE reset_password_token IS NOT NULL AND reset_password_expires <= $1`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an account by primary key, without its history.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	u, err := scanUser(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return u, nil
}

// GetByIDForUpdate returns an account and locks its row until the enclosing
// transaction ends. Must be called inside TxManager.RunInTx.
func (r *Repo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	u, err := scanUser(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getByIDForUpdateSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return u, nil
}

// GetByEmail returns the account registered with email (already lower-cased).
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	u, err := scanUser(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getByEmailSQL, email))
	if err != nil {
		return nil, postgres.MapError(err, "user", email)
	}
	return u, nil
}

// GetByUsername returns the account with the given username.
func (r *Repo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	u, err := scanUser(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getByUsernameSQL, username))
	if err != nil {
		return nil, postgres.MapError(err, "user", username)
	}
	return u, nil
}

// GetByResetToken returns the account holding tokenHash with an expiry strictly after now.
func (r *Repo) GetByResetToken(ctx context.Context, tokenHash string, now time.Time) (*domain.User, error) {
	u, err := scanUser(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getByResetTokenSQL, tokenHash, now))
	if err != nil {
		return nil, postgres.MapError(err, "user", "reset token")
	}
	return u, nil
}

// UsernamesByIDs resolves usernames for a set of ids. Unknown ids are absent from the map.
func (r *Repo) UsernamesByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	out := make(map[uuid.UUID]string, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	query, args, err := psql.Select("id", "username").From("users").Where(sq.Eq{"id": ids}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build usernames query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query usernames: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id       uuid.UUID
			username string
		)
		if err := rows.Scan(&id, &username); err != nil {
			return nil, fmt.Errorf("scan username: %w", err)
		}
		out[id] = username
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate usernames: %w", err)
	}

	return out, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new account. Duplicate email or username yields
// domain.ErrEmailTaken or domain.ErrUsernameTaken.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, createSQL,
		u.ID, u.Username, u.Email, u.PasswordHash,
		u.Profile.FirstName, u.Profile.LastName, u.Profile.Age, u.Profile.Gender,
		u.Profile.Country, u.Profile.State, u.Profile.Pincode,
		string(u.TypingStats.Difficulty), u.CreatedAt, u.UpdatedAt,
	)

	created, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}
	return created, nil
}

// UpdateProfile applies the non-nil fields of patch and returns the updated account.
// An empty patch is a read.
func (r *Repo) UpdateProfile(ctx context.Context, id uuid.UUID, patch domain.ProfilePatch, now time.Time) (*domain.User, error) {
	if patch.IsEmpty() {
		return r.GetByID(ctx, id)
	}

	b := psql.Update("users")
	b = setIf(b, "username", patch.Username)
	b = setIf(b, "first_name", patch.FirstName)
	b = setIf(b, "last_name", patch.LastName)
	b = setIf(b, "age", patch.Age)
	b = setIf(b, "gender", patch.Gender)
	b = setIf(b, "country", patch.Country)
	b = setIf(b, "state", patch.State)
	b = setIf(b, "pincode", patch.Pincode)

	query, args, err := b.
		Set("updated_at", now).
		Where("id = ?", id).
		Suffix("RETURNING " + userColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build profile update: %w", err)
	}

	u, err := scanUser(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return u, nil
}

func setIf[T any](b sq.UpdateBuilder, column string, v *T) sq.UpdateBuilder {
	if v == nil {
		return b
	}
	return b.Set(column, *v)
}

// SaveStats persists the rollups, typing stats, leaderboard scores and last
// test timestamp of u.
func (r *Repo) SaveStats(ctx context.Context, u *domain.User) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, saveStatsSQL,
		u.ID,
		u.Rollups.HighestWPM, u.Rollups.TotalTests, u.Rollups.TotalWordsTyped, u.Rollups.TotalTimeSpent,
		u.TypingStats.AvgWPM, u.TypingStats.Accuracy, u.TypingStats.TestsCompleted,
		u.TypingStats.BestAccuracy, string(u.TypingStats.Difficulty),
		u.Leaderboards.Global, u.Leaderboards.Regional,
		u.LastTest, u.UpdatedAt,
	)
	if err != nil {
		return postgres.MapError(err, "user", u.ID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", u.ID, domain.ErrNotFound)
	}
	return nil
}

// RecordLoginFailure counts a failed password check. Once maxAttempts is
// reached the account is locked until lockUntil and the counter restarts.
// Returns the resulting counter and lock deadline.
func (r *Repo) RecordLoginFailure(ctx context.Context, id uuid.UUID, maxAttempts int, lockUntil time.Time) (int, *time.Time, error) {
	var (
		attempts int
		locked   *time.Time
	)
	err := postgres.QuerierFromCtx(ctx, r.db).
		QueryRow(ctx, recordLoginFailureSQL, id, maxAttempts, lockUntil).
		Scan(&attempts, &locked)
	if err != nil {
		return 0, nil, postgres.MapError(err, "user", id)
	}
	return attempts, locked, nil
}

// RecordLoginSuccess resets the failure counter, clears any lock and stamps last_login.
func (r *Repo) RecordLoginSuccess(ctx context.Context, id uuid.UUID, now time.Time) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, recordLoginSuccessSQL, id, now)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// SetResetToken stores a pending reset, replacing any previous one.
func (r *Repo) SetResetToken(ctx context.Context, id uuid.UUID, tokenHash string, expires time.Time) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, setResetTokenSQL, id, tokenHash, expires)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// CompleteReset replaces the password hash and clears the reset fields, provided
// tokenHash is still pending and unexpired at now. Returns domain.ErrNotFound
// when the token no longer matches.
func (r *Repo) CompleteReset(ctx context.Context, id uuid.UUID, tokenHash, passwordHash string, now time.Time) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, completeResetSQL, id, tokenHash, passwordHash, now)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s reset token: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ClearExpiredResetTokens drops reset tokens that expired at or before now
// and returns how many accounts were touched.
func (r *Repo) ClearExpiredResetTokens(ctx context.Context, now time.Time) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, clearExpiredResetTokensSQL, now)
	if err != nil {
		return 0, fmt.Errorf("clear expired reset tokens: %w", err)
	}
	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*domain.User, error) {
	var (
		u          domain.User
		difficulty string
	)
	err := row.Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash,
		&u.Profile.FirstName, &u.Profile.LastName, &u.Profile.Age, &u.Profile.Gender,
		&u.Profile.Country, &u.Profile.State, &u.Profile.Pincode,
		&u.Security.EmailVerified, &u.Security.FailedLoginAttempts, &u.Security.LockUntil,
		&u.Security.ResetPasswordToken, &u.Security.ResetPasswordExpires,
		&u.Rollups.HighestWPM, &u.Rollups.TotalTests, &u.Rollups.TotalWordsTyped, &u.Rollups.TotalTimeSpent,
		&u.TypingStats.AvgWPM, &u.TypingStats.Accuracy, &u.TypingStats.TestsCompleted,
		&u.TypingStats.BestAccuracy, &difficulty,
		&u.Leaderboards.Global, &u.Leaderboards.Regional,
		&u.LastLogin, &u.LastTest, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	u.TypingStats.Difficulty = domain.Difficulty(difficulty)
	return &u, nil
}
