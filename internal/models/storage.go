package models

import "time"

// CompletedCase is an append-only history entry written when a verdict is
// submitted. It is never mutated after the write.
type CompletedCase struct {
	ID             string        `json:"id" db:"id"`
	CaseID         string        `json:"caseId" db:"case_id"`
	Verdict        Verdict       `json:"verdict" db:"verdict"`
	CorrectVerdict Verdict       `json:"correctVerdict" db:"correct_verdict"`
	WasCorrect     bool          `json:"wasCorrect" db:"was_correct"`
	CoinsEarned    int           `json:"coinsEarned" db:"coins_earned"`
	CompletedAt    time.Time     `json:"completedAt" db:"completed_at"`
	TimeSpent      time.Duration `json:"timeSpent" db:"time_spent"`
}

type ItemCategory string

const (
	ItemCategoryCourtroom  ItemCategory = "courtroom"
	ItemCategoryGavel      ItemCategory = "gavel"
	ItemCategoryRobe       ItemCategory = "robe"
	ItemCategoryDecoration ItemCategory = "decoration"
)

// CustomizationItem is a shop catalog entry. Owned is derived at read time
// by merging the catalog with the player's owned-id set.
type CustomizationItem struct {
	ID          string       `json:"id"`
	Category    ItemCategory `json:"category"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Price       int          `json:"price"`
	Owned       bool         `json:"owned"`
	ImageURL    string       `json:"imageUrl"`
}
