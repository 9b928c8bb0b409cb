package game

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/myrjola/gavel/internal/casegen"
	"github.com/myrjola/gavel/internal/catalog"
	"github.com/myrjola/gavel/internal/errors"
	"github.com/myrjola/gavel/internal/models"
	"github.com/myrjola/gavel/internal/repositories"
)

// ErrNoActiveCase is returned when a verdict is submitted without a case
// in progress.
var ErrNoActiveCase = errors.NewSentinel("no active case")

// VerdictResult is what the presentation layer needs to show after a
// submitted verdict.
type VerdictResult struct {
	WasCorrect      bool                 `json:"wasCorrect"`
	CorrectVerdict  models.Verdict       `json:"correctVerdict"`
	CoinsEarned     int                  `json:"coinsEarned"`
	NewAchievements []models.Achievement `json:"newAchievements"`
}

// Statistics is a read-only summary derived from the progress record.
type Statistics struct {
	CompletedCases       int     `json:"completedCases"`
	CorrectVerdicts      int     `json:"correctVerdicts"`
	IncorrectVerdicts    int     `json:"incorrectVerdicts"`
	Accuracy             float64 `json:"accuracy"`
	CurrentStreak        int     `json:"currentStreak"`
	BestStreak           int     `json:"bestStreak"`
	Coins                int     `json:"coins"`
	AchievementsUnlocked int     `json:"achievementsUnlocked"`
}

// Session is the single writer over the in-memory progress record. All
// mutations go through the pure state machine and are persisted
// write-through; when a save fails the in-memory state stays authoritative
// for the rest of the session.
type Session struct {
	mu            sync.Mutex
	state         models.GameState
	used          casegen.UsedSet
	discovered    map[string]struct{}
	caseStartedAt time.Time

	catalog *catalog.Catalog
	builder *casegen.Builder
	repos   *repositories.Repositories
	logger  *slog.Logger
	rng     *rand.Rand
	now     func() time.Time
}

// NewSession seeds the session from the persisted progress record, merging
// the stored achievement list against the current definitions so that
// achievements added in later versions appear for existing players. A
// missing save starts a fresh player.
func NewSession(
	ctx context.Context,
	cat *catalog.Catalog,
	builder *casegen.Builder,
	repos *repositories.Repositories,
	logger *slog.Logger,
	rng *rand.Rand,
) (*Session, error) {
	s := Session{
		state:      models.NewGameState(Definitions()),
		used:       casegen.UsedSet{},
		discovered: map[string]struct{}{},
		catalog:    cat,
		builder:    builder,
		repos:      repos,
		logger:     logger.With("source", "Session"),
		rng:        rng,
		now:        time.Now,
	}

	saved, err := repos.Progress.Load(ctx)
	switch {
	case err == nil:
		loaded := *saved
		loaded.Achievements = MergeAchievements(loaded.Achievements, Definitions())
		s.state = Apply(s.state, LoadState{State: loaded})
		s.caseStartedAt = s.now()
	case errors.Is(err, repositories.ErrNoSave):
		// Fresh player.
	default:
		return nil, errors.Wrap(err, "seed session")
	}

	return &s, nil
}

// State returns a copy of the progress record for rendering. The active
// case is copied so the caller cannot reach the session's own value.
func (s *Session) State() models.GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() models.GameState {
	snapshot := s.state
	if s.state.CurrentCase != nil {
		active := *s.state.CurrentCase
		snapshot.CurrentCase = &active
	}
	snapshot.Achievements = append([]models.Achievement(nil), s.state.Achievements...)
	snapshot.PurchasedItems = append([]string(nil), s.state.PurchasedItems...)
	return snapshot
}

// StartCase generates a case at the difficulty from the player's settings.
func (s *Session) StartCase(ctx context.Context) (models.Case, error) {
	return s.GenerateCase(ctx, s.State().Settings.Difficulty)
}

// GenerateCase builds a new case and makes it the active one.
func (s *Session) GenerateCase(ctx context.Context, difficulty models.Difficulty) (models.Case, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	newCase, used, err := s.builder.Generate(s.rng, difficulty, s.used, true)
	if err != nil {
		return models.Case{}, errors.Wrap(err, "generate case", slog.String("difficulty", string(difficulty)))
	}
	s.used = used
	s.discovered = map[string]struct{}{}
	s.caseStartedAt = s.now()
	s.state = Apply(s.state, StartCase{Case: newCase})
	s.saveLocked(ctx)
	return newCase, nil
}

// RevealClue marks a visual clue of the active case as discovered and
// returns it. Discovery state lives only for the duration of the case; it
// feeds the Eagle Eye achievement check on verdict submission.
func (s *Session) RevealClue(clueID string) (models.VisualClue, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.CurrentCase == nil {
		return models.VisualClue{}, false
	}
	for _, clue := range s.state.CurrentCase.VisualClues {
		if clue.ID == clueID {
			s.discovered[clueID] = struct{}{}
			return clue, true
		}
	}
	return models.VisualClue{}, false
}

// SubmitVerdict resolves the active case: it appends the history record,
// runs the verdict transition, evaluates achievements and persists the
// result.
func (s *Session) SubmitVerdict(ctx context.Context, verdict models.Verdict) (VerdictResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.CurrentCase == nil {
		return VerdictResult{}, ErrNoActiveCase
	}
	active := *s.state.CurrentCase

	isCorrect, coinDelta := EvaluateVerdict(verdict, active.CorrectVerdict)

	completedAt := s.now()
	record := models.CompletedCase{
		ID:             uuid.NewString(),
		CaseID:         active.ID,
		Verdict:        verdict,
		CorrectVerdict: active.CorrectVerdict,
		WasCorrect:     isCorrect,
		CoinsEarned:    coinDelta,
		CompletedAt:    completedAt,
		TimeSpent:      completedAt.Sub(s.caseStartedAt),
	}
	if err := s.repos.History.Append(ctx, record); err != nil {
		// History is best-effort; the progress record is the authority.
		s.logger.ErrorContext(ctx, "failed to append case history", errors.SlogError(err))
	}

	s.state = Apply(s.state, SubmitVerdict{Verdict: verdict})

	obs := Observations{
		FoundAllClues:   len(active.VisualClues) > 0 && s.foundAllCluesLocked(active),
		HardCaseCorrect: isCorrect && active.Difficulty == models.DifficultyHard,
	}
	var unlocked []models.Achievement
	s.state, unlocked = CheckAchievements(s.state, obs)

	s.saveLocked(ctx)

	return VerdictResult{
		WasCorrect:      isCorrect,
		CorrectVerdict:  active.CorrectVerdict,
		CoinsEarned:     coinDelta,
		NewAchievements: unlocked,
	}, nil
}

func (s *Session) foundAllCluesLocked(active models.Case) bool {
	for _, clue := range active.VisualClues {
		if _, found := s.discovered[clue.ID]; !found {
			return false
		}
	}
	return true
}

// PurchaseItem buys a customization item. It returns false without any
// state mutation when the item is unknown, free, already owned or the
// balance is insufficient. A declined purchase is a normal outcome, not an
// error.
func (s *Session) PurchaseItem(ctx context.Context, itemID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.catalog.Item(itemID)
	if !ok || item.Price == 0 {
		return false
	}
	if slices.Contains(s.state.PurchasedItems, itemID) {
		return false
	}
	if s.state.Coins < item.Price {
		return false
	}

	s.state = Apply(s.state, SubtractCoins{Amount: item.Price})
	s.state = Apply(s.state, PurchaseItem{ItemID: itemID})
	if err := s.repos.Inventory.MarkOwned(ctx, itemID); err != nil {
		s.logger.ErrorContext(ctx, "failed to persist ownership", errors.SlogError(err),
			slog.String("itemId", itemID))
	}
	s.state, _ = CheckAchievements(s.state, Observations{})
	s.saveLocked(ctx)
	return true
}

// EquipItem selects an owned item for its category.
func (s *Session) EquipItem(ctx context.Context, itemID string, category models.ItemCategory) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Apply(s.state, EquipItem{ItemID: itemID, Category: category})
	s.saveLocked(ctx)
}

// UpdateSettings merges the provided settings fields into the record.
func (s *Session) UpdateSettings(ctx context.Context, patch models.SettingsPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Apply(s.state, UpdateSettings{Patch: patch})
	s.saveLocked(ctx)
}

// CompleteTutorial marks the tutorial as done.
func (s *Session) CompleteTutorial(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Apply(s.state, CompleteTutorial{})
	s.saveLocked(ctx)
}

// SetScreen records the screen the player navigated to.
func (s *Session) SetScreen(ctx context.Context, screen models.Screen) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Apply(s.state, SetScreen{Screen: screen})
	s.saveLocked(ctx)
}

// Items returns the shop catalog with per-player ownership merged in.
func (s *Session) Items(ctx context.Context) []models.CustomizationItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	owned, err := s.repos.Inventory.OwnedIDs(ctx)
	if err != nil {
		// Degrade to the in-memory purchase list.
		s.logger.WarnContext(ctx, "failed to read owned items, using in-memory list", errors.SlogError(err))
		owned = make(map[string]struct{}, len(s.state.PurchasedItems))
		for _, id := range s.state.PurchasedItems {
			owned[id] = struct{}{}
		}
	}
	return s.catalog.MergeOwned(owned)
}

// History returns the completed-case log ordered by completion time.
func (s *Session) History(ctx context.Context) ([]models.CompletedCase, error) {
	records, err := s.repos.History.All(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "read case history")
	}
	return records, nil
}

// Statistics summarizes the progress record for the statistics screen.
func (s *Session) Statistics() Statistics {
	s.mu.Lock()
	defer s.mu.Unlock()

	accuracy := 0.0
	if s.state.CompletedCases > 0 {
		accuracy = float64(s.state.CorrectVerdicts) / float64(s.state.CompletedCases)
	}
	unlocked := 0
	for _, achievement := range s.state.Achievements {
		if achievement.Unlocked {
			unlocked++
		}
	}
	return Statistics{
		CompletedCases:       s.state.CompletedCases,
		CorrectVerdicts:      s.state.CorrectVerdicts,
		IncorrectVerdicts:    s.state.IncorrectVerdicts,
		Accuracy:             accuracy,
		CurrentStreak:        s.state.CurrentStreak,
		BestStreak:           s.state.BestStreak,
		Coins:                s.state.Coins,
		AchievementsUnlocked: unlocked,
	}
}

// Reset wipes all stores and reseeds a fresh progress record.
func (s *Session) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repos.ClearAll(ctx); err != nil {
		return errors.Wrap(err, "clear stores")
	}
	s.state = models.NewGameState(Definitions())
	s.used = casegen.UsedSet{}
	s.discovered = map[string]struct{}{}
	s.saveLocked(ctx)
	return nil
}

// saveLocked persists the current record write-through. Failures are
// logged and never fatal: saves are issued in transition order and each
// write replaces the whole record, so the next successful save converges.
func (s *Session) saveLocked(ctx context.Context) {
	if err := s.repos.Progress.Save(ctx, s.state); err != nil {
		s.logger.ErrorContext(ctx, "failed to save progress", errors.SlogError(err))
	}
}
