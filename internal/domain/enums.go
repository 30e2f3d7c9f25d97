package domain

// Difficulty is the difficulty tier of a typing test and of a user's adaptive level.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

func (d Difficulty) String() string { return string(d) }

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// ChallengeType describes what a typing test optimises for.
type ChallengeType string

const (
	ChallengeTypeTime     ChallengeType = "time"
	ChallengeTypeAccuracy ChallengeType = "accuracy"
	ChallengeTypeCombo    ChallengeType = "combo"
)

func (c ChallengeType) String() string { return string(c) }

func (c ChallengeType) IsValid() bool {
	switch c {
	case ChallengeTypeTime, ChallengeTypeAccuracy, ChallengeTypeCombo:
		return true
	}
	return false
}

// Category is the kind of passage a test was taken on.
type Category string

const (
	CategoryGeneral Category = "general"
	CategoryCoding  Category = "coding"
	CategoryQuotes  Category = "quotes"
	CategoryRandom  Category = "random"
)

func (c Category) String() string { return string(c) }

func (c Category) IsValid() bool {
	switch c {
	case CategoryGeneral, CategoryCoding, CategoryQuotes, CategoryRandom:
		return true
	}
	return false
}

// LeaderboardKind names one of the ranking boards.
type LeaderboardKind string

const (
	LeaderboardGlobal   LeaderboardKind = "global"
	LeaderboardRegional LeaderboardKind = "regional"
)

func (k LeaderboardKind) String() string { return string(k) }

func (k LeaderboardKind) IsValid() bool {
	switch k {
	case LeaderboardGlobal, LeaderboardRegional:
		return true
	}
	return false
}
