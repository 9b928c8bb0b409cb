package game_test

import (
	"context"
	"io"
	"math/rand/v2"
	"testing"

	"github.com/myrjola/gavel/internal/casegen"
	"github.com/myrjola/gavel/internal/catalog"
	"github.com/myrjola/gavel/internal/game"
	"github.com/myrjola/gavel/internal/models"
	"github.com/myrjola/gavel/internal/repositories"
	"github.com/myrjola/gavel/internal/sqlite"
	"github.com/myrjola/gavel/internal/testhelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepositories(t *testing.T) *repositories.Repositories {
	t.Helper()
	ctx := context.Background()
	logger := testhelpers.NewLogger(io.Discard)
	db, err := sqlite.NewDatabase(ctx, ":memory:", logger)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, db.Close())
	})
	return repositories.New(db, logger)
}

func newTestSession(t *testing.T, repos *repositories.Repositories, seed uint64) *game.Session {
	t.Helper()
	logger := testhelpers.NewLogger(io.Discard)
	cat := catalog.New(logger)
	session, err := game.NewSession(
		context.Background(),
		cat,
		casegen.NewBuilder(cat),
		repos,
		logger,
		rand.New(rand.NewPCG(seed, seed)),
	)
	require.NoError(t, err)
	return session
}

func TestSessionFreshPlayer(t *testing.T) {
	t.Parallel()
	session := newTestSession(t, newTestRepositories(t), 1)

	state := session.State()
	assert.Equal(t, 100, state.Coins)
	assert.Equal(t, models.ScreenMenu, state.CurrentScreen)
	assert.Equal(t, models.DifficultyMedium, state.Settings.Difficulty)
	assert.Len(t, state.Achievements, len(game.Definitions()))
	assert.Nil(t, state.CurrentCase)
}

func TestSessionCorrectVerdictScenario(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	session := newTestSession(t, newTestRepositories(t), 2)

	generated, err := session.GenerateCase(ctx, models.DifficultyMedium)
	require.NoError(t, err)
	require.NotNil(t, session.State().CurrentCase)

	result, err := session.SubmitVerdict(ctx, generated.CorrectVerdict)
	require.NoError(t, err)

	assert.True(t, result.WasCorrect)
	assert.Equal(t, 50, result.CoinsEarned)
	require.Len(t, result.NewAchievements, 1)
	assert.Equal(t, "first_case", result.NewAchievements[0].ID)

	// 100 start + 50 verdict + 25 first-case reward.
	state := session.State()
	assert.Equal(t, 175, state.Coins)
	assert.Equal(t, 1, state.CompletedCases)
	assert.Nil(t, state.CurrentCase)
}

func TestSessionIncorrectVerdictScenario(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	session := newTestSession(t, newTestRepositories(t), 3)

	generated, err := session.GenerateCase(ctx, models.DifficultyEasy)
	require.NoError(t, err)

	result, err := session.SubmitVerdict(ctx, generated.CorrectVerdict.Opposite())
	require.NoError(t, err)

	assert.False(t, result.WasCorrect)
	assert.Equal(t, -10, result.CoinsEarned)
	assert.Equal(t, generated.CorrectVerdict, result.CorrectVerdict)

	state := session.State()
	assert.Equal(t, 90, state.Coins)
	// Completing a case, even wrongly, still counts for first_case later.
	assert.Equal(t, 1, state.CompletedCases)
	assert.Equal(t, 0, state.CurrentStreak)
}

func TestSessionVerdictWithoutCase(t *testing.T) {
	t.Parallel()
	session := newTestSession(t, newTestRepositories(t), 4)

	_, err := session.SubmitVerdict(context.Background(), models.VerdictGuilty)

	require.ErrorIs(t, err, game.ErrNoActiveCase)
}

func TestSessionEagleEye(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	session := newTestSession(t, newTestRepositories(t), 5)

	generated, err := session.GenerateCase(ctx, models.DifficultyMedium)
	require.NoError(t, err)
	require.NotEmpty(t, generated.VisualClues)

	for _, clue := range generated.VisualClues {
		revealed, ok := session.RevealClue(clue.ID)
		require.True(t, ok)
		assert.Equal(t, clue.ID, revealed.ID)
	}
	_, ok := session.RevealClue("no_such_clue")
	assert.False(t, ok)

	result, err := session.SubmitVerdict(ctx, generated.CorrectVerdict)
	require.NoError(t, err)

	ids := unlockedIDs(result.NewAchievements)
	assert.Contains(t, ids, "eagle_eye")
}

func TestSessionPurchaseFlow(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	session := newTestSession(t, newTestRepositories(t), 6)

	t.Run("insufficient balance declines", func(t *testing.T) {
		assert.False(t, session.PurchaseItem(ctx, "ermine_robe"))
		assert.Equal(t, 100, session.State().Coins)
	})

	t.Run("unknown and free items decline", func(t *testing.T) {
		assert.False(t, session.PurchaseItem(ctx, "no_such_item"))
		assert.False(t, session.PurchaseItem(ctx, "classic"))
	})

	t.Run("affordable purchase succeeds once", func(t *testing.T) {
		require.True(t, session.PurchaseItem(ctx, "linen_robe"))
		assert.Equal(t, 30, session.State().Coins)
		assert.Contains(t, session.State().PurchasedItems, "linen_robe")

		assert.False(t, session.PurchaseItem(ctx, "linen_robe"), "already owned")
		assert.Equal(t, 30, session.State().Coins)
	})

	t.Run("remaining balance too small", func(t *testing.T) {
		assert.False(t, session.PurchaseItem(ctx, "scales_decoration"))
		assert.Equal(t, 30, session.State().Coins)
	})

	t.Run("shop listing reflects ownership", func(t *testing.T) {
		items := session.Items(ctx)
		byID := map[string]models.CustomizationItem{}
		for _, item := range items {
			byID[string(item.Category)+"/"+item.ID] = item
		}
		assert.True(t, byID["robe/linen_robe"].Owned)
		assert.True(t, byID["robe/default"].Owned, "free items always owned")
		assert.False(t, byID["robe/ermine_robe"].Owned)
	})
}

func TestSessionEquipAndSettings(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	session := newTestSession(t, newTestRepositories(t), 7)

	session.EquipItem(ctx, "golden_gavel", models.ItemCategoryGavel)
	assert.Equal(t, "golden_gavel", session.State().Customization.GavelDesign)

	hard := models.DifficultyHard
	session.UpdateSettings(ctx, models.SettingsPatch{Difficulty: &hard})
	assert.Equal(t, models.DifficultyHard, session.State().Settings.Difficulty)
	assert.True(t, session.State().Settings.SoundEnabled, "untouched settings keep defaults")

	session.CompleteTutorial(ctx)
	assert.True(t, session.State().TutorialCompleted)

	session.SetScreen(ctx, models.ScreenShop)
	assert.Equal(t, models.ScreenShop, session.State().CurrentScreen)
}

func TestSessionStatisticsAndHistory(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	session := newTestSession(t, newTestRepositories(t), 8)

	for range 3 {
		generated, err := session.GenerateCase(ctx, models.DifficultyEasy)
		require.NoError(t, err)
		_, err = session.SubmitVerdict(ctx, generated.CorrectVerdict)
		require.NoError(t, err)
	}
	generated, err := session.GenerateCase(ctx, models.DifficultyEasy)
	require.NoError(t, err)
	_, err = session.SubmitVerdict(ctx, generated.CorrectVerdict.Opposite())
	require.NoError(t, err)

	stats := session.Statistics()
	assert.Equal(t, 4, stats.CompletedCases)
	assert.Equal(t, 3, stats.CorrectVerdicts)
	assert.Equal(t, 1, stats.IncorrectVerdicts)
	assert.InDelta(t, 0.75, stats.Accuracy, 1e-9)
	assert.Equal(t, 0, stats.CurrentStreak)
	assert.Equal(t, 3, stats.BestStreak)

	records, err := session.History(ctx)
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.True(t, records[0].WasCorrect)
	assert.False(t, records[3].WasCorrect)
}

func TestSessionPersistsAcrossRestart(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repos := newTestRepositories(t)

	session := newTestSession(t, repos, 9)
	generated, err := session.GenerateCase(ctx, models.DifficultyMedium)
	require.NoError(t, err)
	_, err = session.SubmitVerdict(ctx, generated.CorrectVerdict)
	require.NoError(t, err)
	require.True(t, session.PurchaseItem(ctx, "linen_robe"))
	before := session.State()

	reloaded := newTestSession(t, repos, 10)
	after := reloaded.State()

	assert.Equal(t, before.Coins, after.Coins)
	assert.Equal(t, before.CompletedCases, after.CompletedCases)
	assert.Equal(t, before.PurchasedItems, after.PurchasedItems)
	assert.Equal(t, before.Achievements, after.Achievements)
	assert.Equal(t, before.Customization, after.Customization)
}

func TestSessionReset(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repos := newTestRepositories(t)
	session := newTestSession(t, repos, 11)

	generated, err := session.GenerateCase(ctx, models.DifficultyMedium)
	require.NoError(t, err)
	_, err = session.SubmitVerdict(ctx, generated.CorrectVerdict)
	require.NoError(t, err)
	require.NotEqual(t, 100, session.State().Coins)

	require.NoError(t, session.Reset(ctx))

	state := session.State()
	assert.Equal(t, 100, state.Coins)
	assert.Equal(t, 0, state.CompletedCases)
	records, err := session.History(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)

	reloaded := newTestSession(t, repos, 12)
	assert.Equal(t, 100, reloaded.State().Coins)
}
