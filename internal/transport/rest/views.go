package rest

import (
	"time"

	"github.com/heartmarshall/typespeed-backend/internal/domain"
)

// userView is the public account representation. Password and reset-token
// fields are never exposed.
type userView struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Age       *int   `json:"age,omitempty"`
	Gender    string `json:"gender,omitempty"`
	Country   string `json:"country,omitempty"`
	State     string `json:"state,omitempty"`
	Pincode   *int   `json:"pincode,omitempty"`

	EmailVerified bool `json:"emailVerified"`

	TypingStats     typingStatsView  `json:"typingStats"`
	HighestWPM      float64          `json:"highestWpm"`
	BestSpeed       float64          `json:"bestSpeed"`
	TotalTests      int              `json:"totalTests"`
	TotalWordsTyped int              `json:"totalWordsTyped"`
	TotalTimeSpent  float64          `json:"totalTimeSpent"`
	Leaderboards    leaderboardsView `json:"leaderboards"`
	TypingHistory   []testResultView `json:"typingHistory"`

	LastLogin *time.Time `json:"lastLogin,omitempty"`
	LastTest  *time.Time `json:"lastTest,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

type typingStatsView struct {
	AvgWPM         float64 `json:"avgWpm"`
	Accuracy       float64 `json:"accuracy"`
	TestsCompleted int     `json:"testsCompleted"`
	BestAccuracy   float64 `json:"bestAccuracy"`
	Difficulty     string  `json:"difficulty"`
}

type leaderboardsView struct {
	Global   float64 `json:"global"`
	Regional float64 `json:"regional"`
}

type testResultView struct {
	ID            string    `json:"id"`
	WPM           float64   `json:"wpm"`
	CPM           float64   `json:"cpm"`
	Accuracy      float64   `json:"accuracy"`
	TextUsed      string    `json:"textUsed"`
	Difficulty    string    `json:"difficulty"`
	ChallengeType string    `json:"challengeType"`
	Category      string    `json:"category"`
	Errors        []string  `json:"errors"`
	TestDate      time.Time `json:"testDate"`
	TestDuration  float64   `json:"testDuration"`
}

type leaderboardEntryView struct {
	Rank     int64   `json:"rank"`
	UserID   string  `json:"userId"`
	Username string  `json:"username"`
	Score    float64 `json:"score"`
}

func toUserView(u *domain.User) userView {
	return userView{
		ID:              u.ID.String(),
		Username:        u.Username,
		Email:           u.Email,
		FirstName:       u.Profile.FirstName,
		LastName:        u.Profile.LastName,
		Age:             u.Profile.Age,
		Gender:          u.Profile.Gender,
		Country:         u.Profile.Country,
		State:           u.Profile.State,
		Pincode:         u.Profile.Pincode,
		EmailVerified:   u.Security.EmailVerified,
		TypingStats: typingStatsView{
			AvgWPM:         u.TypingStats.AvgWPM,
			Accuracy:       u.TypingStats.Accuracy,
			TestsCompleted: u.TypingStats.TestsCompleted,
			BestAccuracy:   u.TypingStats.BestAccuracy,
			Difficulty:     u.TypingStats.Difficulty.String(),
		},
		HighestWPM:      u.Rollups.HighestWPM,
		BestSpeed:       u.BestSpeed(),
		TotalTests:      u.Rollups.TotalTests,
		TotalWordsTyped: u.Rollups.TotalWordsTyped,
		TotalTimeSpent:  u.Rollups.TotalTimeSpent,
		Leaderboards:    leaderboardsView{Global: u.Leaderboards.Global, Regional: u.Leaderboards.Regional},
		TypingHistory:   toTestResultViews(u.History),
		LastLogin:       u.LastLogin,
		LastTest:        u.LastTest,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}

func toTestResultView(tr domain.TestResult) testResultView {
	errs := tr.Errors
	if errs == nil {
		errs = []string{}
	}
	return testResultView{
		ID:            tr.ID.String(),
		WPM:           tr.WPM,
		CPM:           tr.CPM,
		Accuracy:      tr.Accuracy,
		TextUsed:      tr.TextUsed,
		Difficulty:    tr.Difficulty.String(),
		ChallengeType: tr.ChallengeType.String(),
		Category:      tr.Category.String(),
		Errors:        errs,
		TestDate:      tr.TestDate,
		TestDuration:  tr.TestDuration,
	}
}

func toTestResultViews(history []domain.TestResult) []testResultView {
	out := make([]testResultView, len(history))
	for i, tr := range history {
		out[i] = toTestResultView(tr)
	}
	return out
}
