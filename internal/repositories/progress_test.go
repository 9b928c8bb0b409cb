package repositories_test

import (
	"context"
	"testing"

	"github.com/myrjola/gavel/internal/game"
	"github.com/myrjola/gavel/internal/models"
	"github.com/myrjola/gavel/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repos, _ := newTestRepositories(t)

	state := models.NewGameState(game.Definitions())
	state.Coins = 320
	state.CompletedCases = 7
	state.CorrectVerdicts = 6
	state.CurrentStreak = 4
	state.BestStreak = 6
	state.PurchasedItems = []string{"golden_gavel", "linen_robe"}
	state.Customization.GavelDesign = "golden_gavel"
	state.TutorialCompleted = true
	state.Achievements[0].Unlocked = true

	require.NoError(t, repos.Progress.Save(ctx, state))

	loaded, err := repos.Progress.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, state, *loaded)
}

func TestProgressLoadWithoutSave(t *testing.T) {
	t.Parallel()
	repos, _ := newTestRepositories(t)

	_, err := repos.Progress.Load(context.Background())

	require.ErrorIs(t, err, repositories.ErrNoSave)
}

func TestProgressSaveReplacesPreviousRecord(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repos, _ := newTestRepositories(t)

	state := models.NewGameState(game.Definitions())
	require.NoError(t, repos.Progress.Save(ctx, state))
	state.Coins = 999
	require.NoError(t, repos.Progress.Save(ctx, state))

	loaded, err := repos.Progress.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 999, loaded.Coins)
}

func TestProgressFallbackSnapshot(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	saved := models.NewGameState(game.Definitions())
	saved.Coins = 450
	saved.CompletedCases = 9
	saved.CurrentStreak = 3
	saved.Customization.CourtroomTheme = "victorian_courtroom"
	saved.Achievements[0].Unlocked = true

	t.Run("missing primary record", func(t *testing.T) {
		repos, db := newTestRepositories(t)
		require.NoError(t, repos.Progress.Save(ctx, saved))
		_, err := db.ReadWrite.ExecContext(ctx, `DELETE FROM game_states`)
		require.NoError(t, err)

		loaded, err := repos.Progress.Load(ctx)
		require.NoError(t, err)

		assert.Equal(t, 450, loaded.Coins)
		assert.Equal(t, 9, loaded.CompletedCases)
		assert.Equal(t, "victorian_courtroom", loaded.Customization.CourtroomTheme)
		assert.Equal(t, "default", loaded.Customization.GavelDesign)
		// Only the snapshot fields survive; the rest are defaults.
		assert.Equal(t, 0, loaded.CurrentStreak)
		assert.Empty(t, loaded.Achievements)
	})

	t.Run("unreadable primary record", func(t *testing.T) {
		repos, db := newTestRepositories(t)
		require.NoError(t, repos.Progress.Save(ctx, saved))
		_, err := db.ReadWrite.ExecContext(ctx, `UPDATE game_states SET state = 'not json'`)
		require.NoError(t, err)

		loaded, err := repos.Progress.Load(ctx)
		require.NoError(t, err)

		assert.Equal(t, 450, loaded.Coins)
		assert.Equal(t, 9, loaded.CompletedCases)
	})
}
