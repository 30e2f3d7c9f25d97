package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/typespeed-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with default statistics and a placeholder password hash.
// Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.NewUser(
		"typist-"+suffix,
		"typist-"+suffix+"@example.com",
		"$2a$04$placeholderplaceholderplaceholderplaceholderplace",
		domain.Profile{FirstName: "Test", LastName: "User " + suffix},
		now,
	)

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, username, email, password_hash, first_name, last_name, difficulty, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		user.ID, user.Username, user.Email, user.PasswordHash,
		user.Profile.FirstName, user.Profile.LastName, string(user.TypingStats.Difficulty),
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return *user
}

// SeedTestResult inserts one test result for userID without touching the
// user's aggregates.
func SeedTestResult(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, wpm float64, at time.Time) domain.TestResult {
	t.Helper()

	tr := domain.TestResult{
		ID:            uuid.New(),
		UserID:        userID,
		WPM:           wpm,
		CPM:           wpm * 5,
		Accuracy:      95,
		TextUsed:      "the quick brown fox",
		Difficulty:    domain.DifficultyMedium,
		ChallengeType: domain.ChallengeTypeTime,
		Category:      domain.CategoryGeneral,
		Errors:        []string{},
		TestDate:      at.UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO test_results (id, user_id, wpm, cpm, accuracy, text_used, difficulty, challenge_type, category, errors, test_date, test_duration)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		tr.ID, tr.UserID, tr.WPM, tr.CPM, tr.Accuracy, tr.TextUsed,
		string(tr.Difficulty), string(tr.ChallengeType), string(tr.Category), tr.Errors,
		tr.TestDate, tr.TestDuration,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTestResult insert: %v", err)
	}

	return tr
}
