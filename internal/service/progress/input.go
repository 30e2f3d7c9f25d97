package progress

import (
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/heartmarshall/typespeed-backend/internal/domain"
	"github.com/heartmarshall/typespeed-backend/internal/service/progress/typingstats"
)

const (
	maxTextLen   = 10000
	maxErrorList = 1000

	// Speed bounds. A positive WPM below MinWPM would make the derived test
	// duration unbounded.
	MinWPM = 0.01
	MaxWPM = 1000.0
	MaxCPM = 5000.0

	DefaultLeaderboardLimit = 10
	MaxLeaderboardLimit     = 100
)

// RecordInput is a typing-test submission. Empty enum values take their defaults.
type RecordInput struct {
	UserID        uuid.UUID
	WPM           *float64
	CPM           *float64
	Accuracy      *float64
	TextUsed      string
	Difficulty    string
	ChallengeType string
	Category      string
	Errors        []string
}

// Validate validates the submission.
func (i RecordInput) Validate() error {
	var errs []domain.FieldError

	if i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "userId", Message: "required"})
	}

	errs = append(errs, speed("wpm", i.WPM, MaxWPM)...)
	if i.WPM != nil && *i.WPM > 0 && *i.WPM < MinWPM {
		errs = append(errs, domain.FieldError{Field: "wpm", Message: fmt.Sprintf("must be 0 or at least %g", MinWPM)})
	}
	errs = append(errs, speed("cpm", i.CPM, MaxCPM)...)

	switch {
	case i.Accuracy == nil:
		errs = append(errs, domain.FieldError{Field: "accuracy", Message: "required"})
	case !(*i.Accuracy >= 0 && *i.Accuracy <= 100):
		errs = append(errs, domain.FieldError{Field: "accuracy", Message: "must be between 0 and 100"})
	}

	if i.TextUsed == "" {
		errs = append(errs, domain.FieldError{Field: "textUsed", Message: "required"})
	} else if len(i.TextUsed) > maxTextLen {
		errs = append(errs, domain.FieldError{Field: "textUsed", Message: "too long"})
	}

	if i.Difficulty != "" && !domain.Difficulty(i.Difficulty).IsValid() {
		errs = append(errs, domain.FieldError{Field: "difficulty", Message: "must be one of easy, medium, hard"})
	}
	if i.ChallengeType != "" && !domain.ChallengeType(i.ChallengeType).IsValid() {
		errs = append(errs, domain.FieldError{Field: "challengeType", Message: "must be one of time, accuracy, combo"})
	}
	if i.Category != "" && !domain.Category(i.Category).IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "must be one of general, coding, quotes, random"})
	}
	if len(i.Errors) > maxErrorList {
		errs = append(errs, domain.FieldError{Field: "errors", Message: "too many entries"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// speed requires a finite value in [0, max].
func speed(field string, v *float64, limit float64) []domain.FieldError {
	switch {
	case v == nil:
		return []domain.FieldError{{Field: field, Message: "required"}}
	case math.IsNaN(*v) || math.IsInf(*v, 0):
		return []domain.FieldError{{Field: field, Message: "must be a finite number"}}
	case *v < 0:
		return []domain.FieldError{{Field: field, Message: "must not be negative"}}
	case *v > limit:
		return []domain.FieldError{{Field: field, Message: fmt.Sprintf("must be at most %g", limit)}}
	}
	return nil
}

// submission converts a validated input, applying enum defaults.
func (i RecordInput) submission() typingstats.Submission {
	s := typingstats.Submission{
		WPM:           *i.WPM,
		CPM:           *i.CPM,
		Accuracy:      *i.Accuracy,
		TextUsed:      i.TextUsed,
		Difficulty:    domain.DifficultyMedium,
		ChallengeType: domain.ChallengeTypeTime,
		Category:      domain.CategoryGeneral,
		Errors:        i.Errors,
	}
	if i.Difficulty != "" {
		s.Difficulty = domain.Difficulty(i.Difficulty)
	}
	if i.ChallengeType != "" {
		s.ChallengeType = domain.ChallengeType(i.ChallengeType)
	}
	if i.Category != "" {
		s.Category = domain.Category(i.Category)
	}
	if s.Errors == nil {
		s.Errors = []string{}
	}
	return s
}

// LeaderboardInput selects a board and how many entries to return.
type LeaderboardInput struct {
	Kind  string
	Limit int
}

// Validate validates the leaderboard query. A zero limit means the default.
func (i LeaderboardInput) Validate() error {
	var errs []domain.FieldError

	if !domain.LeaderboardKind(i.Kind).IsValid() {
		errs = append(errs, domain.FieldError{Field: "board", Message: "must be global or regional"})
	}
	if i.Limit < 0 || i.Limit > MaxLeaderboardLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 1 and 100"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
