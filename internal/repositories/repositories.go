package repositories

import (
	"context"
	"log/slog"

	"github.com/myrjola/gavel/internal/errors"
	"github.com/myrjola/gavel/internal/sqlite"
)

// Repositories bundles the persistence gateway stores over one database.
type Repositories struct {
	Progress  *ProgressRepository
	History   *HistoryRepository
	Inventory *InventoryRepository

	db *sqlite.Database
}

func New(db *sqlite.Database, logger *slog.Logger) *Repositories {
	return &Repositories{
		Progress:  NewProgressRepository(db, logger),
		History:   NewHistoryRepository(db, logger),
		Inventory: NewInventoryRepository(db, logger),
		db:        db,
	}
}

// ClearAll wipes every store. Administrative operation backing the
// reset-progress flow and the CLI wipe command.
func (r *Repositories) ClearAll(ctx context.Context) error {
	stmts := []string{
		`DELETE FROM game_states`,
		`DELETE FROM fallback_snapshots`,
		`DELETE FROM case_history`,
		`DELETE FROM owned_items`,
	}
	for _, stmt := range stmts {
		if _, err := r.db.ReadWrite.ExecContext(ctx, stmt); err != nil {
			return errors.Wrap(err, "clear store", slog.String("stmt", stmt))
		}
	}
	return nil
}
