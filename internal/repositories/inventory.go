package repositories

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/myrjola/gavel/internal/errors"
	"github.com/myrjola/gavel/internal/sqlite"
)

// InventoryRepository stores the set of purchased customization item ids.
// Ownership of the full item records is derived by merging this set with
// the customization catalog at read time.
type InventoryRepository struct {
	db     *sqlite.Database
	logger *slog.Logger
}

func NewInventoryRepository(db *sqlite.Database, logger *slog.Logger) *InventoryRepository {
	return &InventoryRepository{
		db:     db,
		logger: logger.With("source", "InventoryRepository"),
	}
}

// MarkOwned records a purchased item id. Marking an already-owned id is a
// no-op.
func (r *InventoryRepository) MarkOwned(ctx context.Context, itemID string) error {
	stmt := `INSERT INTO owned_items (item_id)
VALUES (@item_id)
ON CONFLICT (item_id) DO NOTHING`
	if _, err := r.db.ReadWrite.ExecContext(ctx, stmt, sql.Named("item_id", itemID)); err != nil {
		return errors.Wrap(err, "insert owned item", slog.String("itemId", itemID))
	}
	return nil
}

// OwnedIDs returns the purchased item ids as a set.
func (r *InventoryRepository) OwnedIDs(ctx context.Context) (map[string]struct{}, error) {
	rows, err := r.db.ReadOnly.QueryContext(ctx, `SELECT item_id FROM owned_items`)
	if err != nil {
		return nil, errors.Wrap(err, "query owned items")
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			r.logger.Error("could not close rows", errors.SlogError(closeErr))
		}
	}()

	owned := make(map[string]struct{})
	for rows.Next() {
		var itemID string
		if err = rows.Scan(&itemID); err != nil {
			return nil, errors.Wrap(err, "scan owned item")
		}
		owned[itemID] = struct{}{}
	}
	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "owned item rows")
	}

	return owned, nil
}
