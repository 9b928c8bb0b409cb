package game

import "github.com/myrjola/gavel/internal/models"

// Action is a progression transition. The action set is closed but
// forward-compatible: Apply treats unknown kinds as no-ops.
type Action interface {
	isAction()
}

type SetScreen struct{ Screen models.Screen }

type StartCase struct{ Case models.Case }

type SubmitVerdict struct{ Verdict models.Verdict }

type AddCoins struct{ Amount int }

type SubtractCoins struct{ Amount int }

type PurchaseItem struct{ ItemID string }

type EquipItem struct {
	ItemID   string
	Category models.ItemCategory
}

type LoadState struct{ State models.GameState }

type UpdateSettings struct{ Patch models.SettingsPatch }

type UnlockAchievement struct{ ID string }

type CompleteTutorial struct{}

func (SetScreen) isAction()         {}
func (StartCase) isAction()         {}
func (SubmitVerdict) isAction()     {}
func (AddCoins) isAction()          {}
func (SubtractCoins) isAction()     {}
func (PurchaseItem) isAction()      {}
func (EquipItem) isAction()         {}
func (LoadState) isAction()         {}
func (UpdateSettings) isAction()    {}
func (UnlockAchievement) isAction() {}
func (CompleteTutorial) isAction()  {}

// Apply is the pure transition function over the progress record. It never
// mutates its input and never produces a negative coin balance or a best
// streak below the current streak.
func Apply(state models.GameState, action Action) models.GameState {
	switch a := action.(type) {
	case SetScreen:
		state.CurrentScreen = a.Screen
		return state

	case StartCase:
		active := a.Case
		state.CurrentCase = &active
		state.CurrentScreen = models.ScreenCase
		return state

	case SubmitVerdict:
		if state.CurrentCase == nil {
			return state
		}
		isCorrect, coinDelta := EvaluateVerdict(a.Verdict, state.CurrentCase.CorrectVerdict)
		state.Coins = max(0, state.Coins+coinDelta)
		state.CompletedCases++
		if isCorrect {
			state.CorrectVerdicts++
			state.CurrentStreak++
		} else {
			state.IncorrectVerdicts++
			state.CurrentStreak = 0
		}
		state.BestStreak = max(state.BestStreak, state.CurrentStreak)
		state.CurrentCase = nil
		return state

	case AddCoins:
		state.Coins += a.Amount
		return state

	case SubtractCoins:
		state.Coins = max(0, state.Coins-a.Amount)
		return state

	case PurchaseItem:
		state.PurchasedItems = append(append([]string(nil), state.PurchasedItems...), a.ItemID)
		return state

	case EquipItem:
		switch a.Category {
		case models.ItemCategoryCourtroom:
			state.Customization.CourtroomTheme = a.ItemID
		case models.ItemCategoryGavel:
			state.Customization.GavelDesign = a.ItemID
		case models.ItemCategoryRobe:
			state.Customization.JudgeRobe = a.ItemID
		case models.ItemCategoryDecoration:
			state.Customization.BenchDecoration = a.ItemID
		}
		return state

	case LoadState:
		return a.State

	case UpdateSettings:
		if a.Patch.SoundEnabled != nil {
			state.Settings.SoundEnabled = *a.Patch.SoundEnabled
		}
		if a.Patch.MusicEnabled != nil {
			state.Settings.MusicEnabled = *a.Patch.MusicEnabled
		}
		if a.Patch.Difficulty != nil {
			state.Settings.Difficulty = *a.Patch.Difficulty
		}
		if a.Patch.HintHighlightEnabled != nil {
			state.Settings.HintHighlightEnabled = *a.Patch.HintHighlightEnabled
		}
		return state

	case UnlockAchievement:
		achievements := append([]models.Achievement(nil), state.Achievements...)
		for i := range achievements {
			if achievements[i].ID == a.ID {
				achievements[i].Unlocked = true
			}
		}
		state.Achievements = achievements
		return state

	case CompleteTutorial:
		state.TutorialCompleted = true
		return state

	default:
		return state
	}
}
