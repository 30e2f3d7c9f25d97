// Package testresult implements the typing-test history repository using PostgreSQL.
package testresult

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/typespeed-backend/internal/adapter/postgres"
	"github.com/heartmarshall/typespeed-backend/internal/domain"
)

// Repo provides test result persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new test result repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

const resultColumns = `id, user_id, wpm, cpm, accuracy, text_used, difficulty, challenge_type, category, errors, test_date, test_duration`

const insertSQL = `
INSERT INTO test_results (id, user_id, wpm, cpm, accuracy, text_used, difficulty, challenge_type, category, errors, test_date, test_duration)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

// History is append-only; seq preserves insertion order when test_date ties.
const listByUserSQL = `
SELECT ` + resultColumns + `
FROM test_results
WHERE user_id = $1
ORDER BY seq`

// bestByUserSQL picks the highest wpm, earliest recorded on ties.
const bestByUserSQL = `
SELECT ` + resultColumns + `
FROM test_results
WHERE user_id = $1
ORDER BY wpm DESC, seq
LIMIT 1`

type resultRow struct {
	ID            uuid.UUID `db:"id"`
	UserID        uuid.UUID `db:"user_id"`
	WPM           float64   `db:"wpm"`
	CPM           float64   `db:"cpm"`
	Accuracy      float64   `db:"accuracy"`
	TextUsed      string    `db:"text_used"`
	Difficulty    string    `db:"difficulty"`
	ChallengeType string    `db:"challenge_type"`
	Category      string    `db:"category"`
	Errors        []string  `db:"errors"`
	TestDate      time.Time `db:"test_date"`
	TestDuration  float64   `db:"test_duration"`
}

func (r resultRow) toDomain() domain.TestResult {
	return domain.TestResult{
		ID:            r.ID,
		UserID:        r.UserID,
		WPM:           r.WPM,
		CPM:           r.CPM,
		Accuracy:      r.Accuracy,
		TextUsed:      r.TextUsed,
		Difficulty:    domain.Difficulty(r.Difficulty),
		ChallengeType: domain.ChallengeType(r.ChallengeType),
		Category:      domain.Category(r.Category),
		Errors:        r.Errors,
		TestDate:      r.TestDate,
		TestDuration:  r.TestDuration,
	}
}

// Insert appends tr to its user's history.
func (r *Repo) Insert(ctx context.Context, tr *domain.TestResult) error {
	errs := tr.Errors
	if errs == nil {
		errs = []string{}
	}

	_, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, insertSQL,
		tr.ID, tr.UserID, tr.WPM, tr.CPM, tr.Accuracy, tr.TextUsed,
		string(tr.Difficulty), string(tr.ChallengeType), string(tr.Category), errs,
		tr.TestDate, tr.TestDuration,
	)
	if err != nil {
		return postgres.MapError(err, "test_result", tr.ID)
	}
	return nil
}

// ListByUser returns the user's history in chronological order.
// An unknown user and a user without tests both yield an empty slice.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.TestResult, error) {
	var rows []resultRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, listByUserSQL, userID); err != nil {
		return nil, fmt.Errorf("list test results for user %s: %w", userID, err)
	}

	out := make([]domain.TestResult, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

// BestByUser returns the highest-wpm test, the earliest one on ties.
// Returns domain.ErrNotFound when the user has no tests.
func (r *Repo) BestByUser(ctx context.Context, userID uuid.UUID) (*domain.TestResult, error) {
	var row resultRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, bestByUserSQL, userID); err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("test_result for user %s: %w", userID, domain.ErrNotFound)
		}
		return nil, postgres.MapError(err, "test_result for user", userID)
	}

	tr := row.toDomain()
	return &tr, nil
}
