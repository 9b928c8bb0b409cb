package repositories_test

import (
	"context"
	"io"
	"testing"

	"github.com/myrjola/gavel/internal/repositories"
	"github.com/myrjola/gavel/internal/sqlite"
	"github.com/myrjola/gavel/internal/testhelpers"
	"github.com/stretchr/testify/require"
)

// newTestRepositories opens a private in-memory database so tests can run
// in parallel without sharing state.
func newTestRepositories(t *testing.T) (*repositories.Repositories, *sqlite.Database) {
	t.Helper()
	ctx := context.Background()
	logger := testhelpers.NewLogger(io.Discard)
	db, err := sqlite.NewDatabase(ctx, ":memory:", logger)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, db.Close())
	})
	return repositories.New(db, logger), db
}
