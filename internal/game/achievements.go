package game

import "github.com/myrjola/gavel/internal/models"

// Definitions returns the achievement table with every flag locked. The
// definitions are process-wide constants; only the unlocked flag varies
// per player.
func Definitions() []models.Achievement {
	return []models.Achievement{
		{ID: "first_case", Name: "First Judgment", Description: "Complete your first case", Unlocked: false, Reward: 25},
		{ID: "five_cases", Name: "Experienced Judge", Description: "Complete 5 cases", Unlocked: false, Reward: 50},
		{ID: "ten_cases", Name: "Veteran Judge", Description: "Complete 10 cases", Unlocked: false, Reward: 100},
		{ID: "perfect_five", Name: "Perfect Streak", Description: "Get 5 correct verdicts in a row", Unlocked: false, Reward: 150},
		{ID: "perfect_ten", Name: "Justice Incarnate", Description: "Get 10 correct verdicts in a row", Unlocked: false, Reward: 300},
		{ID: "eagle_eye", Name: "Eagle Eye", Description: "Discover all clues in a case", Unlocked: false, Reward: 75},
		{ID: "wealthy_judge", Name: "Wealthy Judge", Description: "Accumulate 500 coins", Unlocked: false, Reward: 100},
		{ID: "customizer", Name: "Customization Expert", Description: "Purchase 5 customization items", Unlocked: false, Reward: 50},
		{ID: "high_accuracy", Name: "Justice Prevails", Description: "Achieve 80% accuracy over 10+ cases", Unlocked: false, Reward: 200},
		{ID: "hard_case_master", Name: "Master Judge", Description: "Complete a hard case correctly", Unlocked: false, Reward: 150},
	}
}

// Observations carries per-case facts that the progress record does not
// retain but some predicates need.
type Observations struct {
	// FoundAllClues reports that every visual clue of the just-completed
	// case was discovered before the verdict.
	FoundAllClues bool
	// HardCaseCorrect reports a correct verdict on a hard case.
	HardCaseCorrect bool
}

// predicates maps achievement ids to their unlock conditions.
var predicates = map[string]func(models.GameState, Observations) bool{
	"first_case": func(s models.GameState, _ Observations) bool { return s.CompletedCases >= 1 },
	"five_cases": func(s models.GameState, _ Observations) bool { return s.CompletedCases >= 5 },
	"ten_cases":  func(s models.GameState, _ Observations) bool { return s.CompletedCases >= 10 },
	"perfect_five": func(s models.GameState, _ Observations) bool {
		return s.CurrentStreak >= 5
	},
	"perfect_ten": func(s models.GameState, _ Observations) bool {
		return s.CurrentStreak >= 10
	},
	"eagle_eye": func(_ models.GameState, obs Observations) bool { return obs.FoundAllClues },
	"wealthy_judge": func(s models.GameState, _ Observations) bool {
		return s.Coins >= 500
	},
	"customizer": func(s models.GameState, _ Observations) bool {
		return len(s.PurchasedItems) >= 5
	},
	"high_accuracy": func(s models.GameState, _ Observations) bool {
		if s.CompletedCases < 10 {
			return false
		}
		return s.CorrectVerdicts*100 >= s.CompletedCases*80
	},
	"hard_case_master": func(_ models.GameState, obs Observations) bool { return obs.HardCaseCorrect },
}

// CheckAchievements evaluates every locked achievement against the state
// and unlocks the ones whose predicate holds, awarding the reward through
// the state machine. Unlocked achievements are skipped, so calling this
// again with unchanged state is a no-op and each reward is granted exactly
// once per player.
func CheckAchievements(state models.GameState, obs Observations) (models.GameState, []models.Achievement) {
	var unlocked []models.Achievement
	for _, achievement := range state.Achievements {
		if achievement.Unlocked {
			continue
		}
		predicate, ok := predicates[achievement.ID]
		if !ok || !predicate(state, obs) {
			continue
		}
		state = Apply(state, UnlockAchievement{ID: achievement.ID})
		state = Apply(state, AddCoins{Amount: achievement.Reward})
		achievement.Unlocked = true
		unlocked = append(unlocked, achievement)
	}
	return state, unlocked
}

// MergeAchievements reconciles a persisted achievement list with the
// current definitions. For every current definition the persisted record
// wins when present, so unlocks survive catalog updates; definitions added
// later appear locked; persisted ids the catalog no longer defines are
// dropped.
func MergeAchievements(persisted []models.Achievement, definitions []models.Achievement) []models.Achievement {
	byID := make(map[string]models.Achievement, len(persisted))
	for _, achievement := range persisted {
		byID[achievement.ID] = achievement
	}
	merged := make([]models.Achievement, 0, len(definitions))
	for _, definition := range definitions {
		if saved, ok := byID[definition.ID]; ok {
			// Name, description and reward follow the current definition;
			// only the unlock flag is player state.
			definition.Unlocked = saved.Unlocked
		}
		merged = append(merged, definition)
	}
	return merged
}
