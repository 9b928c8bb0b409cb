package models

// Screen identifies the view the presentation layer should render.
type Screen string

const (
	ScreenMenu         Screen = "menu"
	ScreenCase         Screen = "case"
	ScreenShop         Screen = "shop"
	ScreenStatistics   Screen = "statistics"
	ScreenAchievements Screen = "achievements"
	ScreenSettings     Screen = "settings"
)

// GameState is the persistent progress record of a player. It is mutated
// exclusively through the progression state machine and persisted after
// every transition.
type GameState struct {
	CurrentScreen     Screen        `json:"currentScreen"`
	Coins             int           `json:"coins"`
	CurrentCase       *Case         `json:"currentCase"`
	CompletedCases    int           `json:"completedCases"`
	CorrectVerdicts   int           `json:"correctVerdicts"`
	IncorrectVerdicts int           `json:"incorrectVerdicts"`
	CurrentStreak     int           `json:"currentStreak"`
	BestStreak        int           `json:"bestStreak"`
	Customization     Customization `json:"customization"`
	Settings          Settings      `json:"settings"`
	Achievements      []Achievement `json:"achievements"`
	PurchasedItems    []string      `json:"purchasedItems"`
	TutorialCompleted bool          `json:"tutorialCompleted"`
}

// Customization holds the equipped item id for each category.
type Customization struct {
	CourtroomTheme  string `json:"courtroomTheme"`
	GavelDesign     string `json:"gavelDesign"`
	JudgeRobe       string `json:"judgeRobe"`
	BenchDecoration string `json:"benchDecoration"`
}

type Settings struct {
	SoundEnabled         bool       `json:"soundEnabled"`
	MusicEnabled         bool       `json:"musicEnabled"`
	Difficulty           Difficulty `json:"difficulty"`
	HintHighlightEnabled bool       `json:"hintHighlightEnabled"`
}

// SettingsPatch is a partial settings update. Nil fields are left unchanged.
type SettingsPatch struct {
	SoundEnabled         *bool       `json:"soundEnabled,omitempty"`
	MusicEnabled         *bool       `json:"musicEnabled,omitempty"`
	Difficulty           *Difficulty `json:"difficulty,omitempty"`
	HintHighlightEnabled *bool       `json:"hintHighlightEnabled,omitempty"`
}

// Achievement definitions are process-wide constants; only the Unlocked
// flag varies per player and lives inside the progress record.
type Achievement struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Unlocked    bool   `json:"unlocked"`
	Reward      int    `json:"reward"`
}

// NewGameState returns the default progress record for a fresh player.
func NewGameState(achievements []Achievement) GameState {
	return GameState{
		CurrentScreen:     ScreenMenu,
		Coins:             100,
		CurrentCase:       nil,
		CompletedCases:    0,
		CorrectVerdicts:   0,
		IncorrectVerdicts: 0,
		CurrentStreak:     0,
		BestStreak:        0,
		Customization: Customization{
			CourtroomTheme:  "classic",
			GavelDesign:     "default",
			JudgeRobe:       "default",
			BenchDecoration: "none",
		},
		Settings: Settings{
			SoundEnabled:         true,
			MusicEnabled:         true,
			Difficulty:           DifficultyMedium,
			HintHighlightEnabled: true,
		},
		Achievements:      achievements,
		PurchasedItems:    nil,
		TutorialCompleted: false,
	}
}
