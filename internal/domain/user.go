package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered account together with its typing history and rollups.
type User struct {
	ID           uuid.UUID
	Username     string
	Email        string
	PasswordHash string

	Profile  Profile
	Security Security

	History      []TestResult
	Rollups      Rollups
	TypingStats  TypingStats
	Leaderboards Leaderboards

	LastLogin *time.Time
	LastTest  *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Profile holds the user-editable personal details.
type Profile struct {
	FirstName string
	LastName  string
	Age       *int
	Gender    string
	Country   string
	State     string
	Pincode   *int
}

// Security holds login-throttling and password-recovery state.
type Security struct {
	EmailVerified        bool
	FailedLoginAttempts  int
	LockUntil            *time.Time
	ResetPasswordToken   *string // SHA-256 hex of the token sent by email
	ResetPasswordExpires *time.Time
}

// Rollups are lifetime totals over the test history.
type Rollups struct {
	HighestWPM      float64
	TotalTests      int
	TotalWordsTyped int
	TotalTimeSpent  float64 // seconds
}

// TypingStats are running aggregates folded in one test at a time.
type TypingStats struct {
	AvgWPM         float64
	Accuracy       float64
	TestsCompleted int
	BestAccuracy   float64
	Difficulty     Difficulty
}

// Leaderboards holds the scores projected from TypingStats.
type Leaderboards struct {
	Global   float64
	Regional float64
}

// IsLocked reports whether logins are refused at the given instant.
func (s Security) IsLocked(now time.Time) bool {
	return s.LockUntil != nil && s.LockUntil.After(now)
}

// HasPendingReset reports whether an unexpired reset token exists.
func (s Security) HasPendingReset(now time.Time) bool {
	return s.ResetPasswordToken != nil && s.ResetPasswordExpires != nil && s.ResetPasswordExpires.After(now)
}

// BestSpeed is the highest WPM ever recorded. It is kept as a single field
// (Rollups.HighestWPM) and surfaced under both names.
func (u *User) BestSpeed() float64 {
	return u.Rollups.HighestWPM
}

// NewUser returns a freshly registered user with zeroed statistics.
func NewUser(username, email, passwordHash string, profile Profile, now time.Time) *User {
	return &User{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		Profile:      profile,
		TypingStats:  TypingStats{Difficulty: DifficultyMedium},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// ProfilePatch is a sparse profile update; nil fields are left untouched.
type ProfilePatch struct {
	Username  *string
	FirstName *string
	LastName  *string
	Age       *int
	Gender    *string
	Country   *string
	State     *string
	Pincode   *int
}

// IsEmpty reports whether the patch changes nothing.
func (p ProfilePatch) IsEmpty() bool {
	return p.Username == nil && p.FirstName == nil && p.LastName == nil && p.Age == nil &&
		p.Gender == nil && p.Country == nil && p.State == nil && p.Pincode == nil
}
