package game

import "github.com/myrjola/gavel/internal/models"

// Scoring is flat-rate on purpose: difficulty changes the case content,
// not the payout.
const (
	correctVerdictReward   = 50
	incorrectVerdictPenalty = -10
)

// EvaluateVerdict compares a submitted verdict to the correct one and
// returns the coin delta. Pure and total.
func EvaluateVerdict(submitted, correct models.Verdict) (bool, int) {
	if submitted == correct {
		return true, correctVerdictReward
	}
	return false, incorrectVerdictPenalty
}
