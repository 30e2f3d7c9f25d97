// Package typingstats folds typing-test submissions into a user's running
// statistics. Everything here is pure and operates on an in-memory user;
// persistence belongs to the caller.
package typingstats

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/typespeed-backend/internal/domain"
)

// Difficulty thresholds on the running average WPM.
const (
	HardAboveWPM = 60.0
	EasyBelowWPM = 40.0
)

// Submission is one completed typing test as reported by the client.
type Submission struct {
	WPM           float64
	CPM           float64
	Accuracy      float64
	TextUsed      string
	Difficulty    domain.Difficulty
	ChallengeType domain.ChallengeType
	Category      domain.Category
	Errors        []string
}

// WordCount counts whitespace-separated words.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// TestDuration derives the duration in seconds from words typed and speed.
// Zero when wpm is zero.
func TestDuration(words int, wpm float64) float64 {
	if wpm <= 0 {
		return 0
	}
	return float64(words) / wpm * 60
}

// Record appends the submission to u's history and updates the lifetime rollups.
func Record(u *domain.User, s Submission, now time.Time) domain.TestResult {
	words := WordCount(s.TextUsed)
	duration := TestDuration(words, s.WPM)

	tr := domain.TestResult{
		ID:            uuid.New(),
		UserID:        u.ID,
		WPM:           s.WPM,
		CPM:           s.CPM,
		Accuracy:      s.Accuracy,
		TextUsed:      s.TextUsed,
		Difficulty:    s.Difficulty,
		ChallengeType: s.ChallengeType,
		Category:      s.Category,
		Errors:        s.Errors,
		TestDate:      now,
		TestDuration:  duration,
	}

	u.History = append(u.History, tr)
	u.Rollups.TotalTests++
	u.Rollups.TotalWordsTyped += words
	u.Rollups.TotalTimeSpent += duration
	if s.WPM > u.Rollups.HighestWPM {
		u.Rollups.HighestWPM = s.WPM
	}
	u.LastTest = &now
	u.UpdatedAt = now

	return tr
}

// Aggregate folds one sample into the running means without replaying history.
func Aggregate(stats *domain.TypingStats, wpm, accuracy float64) {
	n := float64(stats.TestsCompleted)
	next := n + 1

	stats.AvgWPM = (stats.AvgWPM*n + wpm) / next
	stats.Accuracy = (stats.Accuracy*n + accuracy) / next
	stats.TestsCompleted++
	if accuracy > stats.BestAccuracy {
		stats.BestAccuracy = accuracy
	}
}

// AdjustDifficulty moves the tier to hard above HardAboveWPM and to easy below
// EasyBelowWPM. Nothing moves a user back to medium.
func AdjustDifficulty(current domain.Difficulty, avgWPM float64) domain.Difficulty {
	switch {
	case avgWPM > HardAboveWPM && current != domain.DifficultyHard:
		return domain.DifficultyHard
	case avgWPM < EasyBelowWPM && current != domain.DifficultyEasy:
		return domain.DifficultyEasy
	default:
		return current
	}
}

// Project derives leaderboard scores. Regional has no partitioning of its
// own and mirrors global.
func Project(stats domain.TypingStats) domain.Leaderboards {
	return domain.Leaderboards{
		Global:   stats.AvgWPM,
		Regional: stats.AvgWPM,
	}
}

// Apply runs the full submission pipeline on u: record, aggregate, adjust
// difficulty and project leaderboards. Returns the recorded test.
func Apply(u *domain.User, s Submission, now time.Time) domain.TestResult {
	tr := Record(u, s, now)
	Aggregate(&u.TypingStats, s.WPM, s.Accuracy)
	u.TypingStats.Difficulty = AdjustDifficulty(u.TypingStats.Difficulty, u.TypingStats.AvgWPM)
	u.Leaderboards = Project(u.TypingStats)
	return tr
}
