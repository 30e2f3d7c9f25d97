package domain

import (
	"time"

	"github.com/google/uuid"
)

// TestResult is one completed typing test. It is immutable once recorded.
type TestResult struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	WPM           float64
	CPM           float64
	Accuracy      float64
	TextUsed      string
	Difficulty    Difficulty
	ChallengeType ChallengeType
	Category      Category
	Errors        []string
	TestDate      time.Time
	TestDuration  float64 // seconds
}

// LeaderboardEntry is one ranked row of a leaderboard.
type LeaderboardEntry struct {
	Rank     int64
	UserID   uuid.UUID
	Username string
	Score    float64
}
