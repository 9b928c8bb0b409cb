package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"

	"github.com/myrjola/gavel/internal/errors"
	"github.com/myrjola/gavel/internal/models"
	"github.com/myrjola/gavel/internal/sqlite"
)

// ErrNoSave is returned by Load when neither the primary record nor the
// fallback snapshot exists.
var ErrNoSave = errors.NewSentinel("no saved progress")

// saveKey is the fixed key of the singleton progress record.
const saveKey = "current"

// ProgressRepository stores the full progress record as a JSON document
// and, independently, a reduced snapshot so a minimal recovery is possible
// when the primary record is corrupted or unavailable.
type ProgressRepository struct {
	db     *sqlite.Database
	logger *slog.Logger
}

func NewProgressRepository(db *sqlite.Database, logger *slog.Logger) *ProgressRepository {
	return &ProgressRepository{
		db:     db,
		logger: logger.With("source", "ProgressRepository"),
	}
}

type fallbackSnapshot struct {
	Coins           int    `db:"coins"`
	CompletedCases  int    `db:"completed_cases"`
	CourtroomTheme  string `db:"courtroom_theme"`
	GavelDesign     string `db:"gavel_design"`
	JudgeRobe       string `db:"judge_robe"`
	BenchDecoration string `db:"bench_decoration"`
}

// Save writes the full record under the fixed key and upserts the fallback
// snapshot. The snapshot write is attempted even when the primary write
// fails so that partial durability survives a primary fault.
func (r *ProgressRepository) Save(ctx context.Context, state models.GameState) error {
	var errs []error

	payload, err := json.Marshal(state)
	if err != nil {
		errs = append(errs, errors.Wrap(err, "marshal progress record"))
	} else {
		stmt := `INSERT INTO game_states (id, state)
VALUES (@id, @state)
ON CONFLICT (id) DO UPDATE SET state      = excluded.state,
                               updated_at = strftime('%Y-%m-%dT%H:%M:%fZ', 'now')`
		if _, err = r.db.ReadWrite.ExecContext(ctx, stmt,
			sql.Named("id", saveKey),
			sql.Named("state", string(payload)),
		); err != nil {
			errs = append(errs, errors.Wrap(err, "write progress record"))
		}
	}

	stmt := `INSERT INTO fallback_snapshots (id, coins, completed_cases, courtroom_theme, gavel_design, judge_robe,
                                bench_decoration)
VALUES (@id, @coins, @completed_cases, @courtroom_theme, @gavel_design, @judge_robe, @bench_decoration)
ON CONFLICT (id) DO UPDATE SET coins            = excluded.coins,
                               completed_cases  = excluded.completed_cases,
                               courtroom_theme  = excluded.courtroom_theme,
                               gavel_design     = excluded.gavel_design,
                               judge_robe       = excluded.judge_robe,
                               bench_decoration = excluded.bench_decoration`
	if _, err = r.db.ReadWrite.ExecContext(ctx, stmt,
		sql.Named("id", saveKey),
		sql.Named("coins", state.Coins),
		sql.Named("completed_cases", state.CompletedCases),
		sql.Named("courtroom_theme", state.Customization.CourtroomTheme),
		sql.Named("gavel_design", state.Customization.GavelDesign),
		sql.Named("judge_robe", state.Customization.JudgeRobe),
		sql.Named("bench_decoration", state.Customization.BenchDecoration),
	); err != nil {
		errs = append(errs, errors.Wrap(err, "write fallback snapshot"))
	}

	return errors.Join(errs...)
}

// Load reads the primary record, degrading to the fallback snapshot when
// the primary is missing or unreadable. ErrNoSave means a fresh player.
func (r *ProgressRepository) Load(ctx context.Context) (*models.GameState, error) {
	var raw string
	err := r.db.ReadOnly.GetContext(ctx, &raw, `SELECT state FROM game_states WHERE id = ?`, saveKey)
	switch {
	case err == nil:
		var state models.GameState
		if err = json.Unmarshal([]byte(raw), &state); err != nil {
			r.logger.WarnContext(ctx, "progress record is unreadable, trying fallback snapshot",
				errors.SlogError(err))
			return r.loadFallback(ctx)
		}
		return &state, nil

	case errors.Is(err, sql.ErrNoRows):
		return r.loadFallback(ctx)

	default:
		r.logger.WarnContext(ctx, "primary store read failed, trying fallback snapshot", errors.SlogError(err))
		return r.loadFallback(ctx)
	}
}

// loadFallback reconstructs a minimal progress record from the snapshot.
// Everything not covered by the snapshot takes default values.
func (r *ProgressRepository) loadFallback(ctx context.Context) (*models.GameState, error) {
	var snapshot fallbackSnapshot
	err := r.db.ReadOnly.GetContext(ctx, &snapshot,
		`SELECT coins, completed_cases, courtroom_theme, gavel_design, judge_robe, bench_decoration
FROM fallback_snapshots
WHERE id = ?`, saveKey)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoSave
		}
		return nil, errors.Wrap(err, "read fallback snapshot")
	}

	state := models.NewGameState(nil)
	state.Coins = snapshot.Coins
	state.CompletedCases = snapshot.CompletedCases
	state.Customization = models.Customization{
		CourtroomTheme:  snapshot.CourtroomTheme,
		GavelDesign:     snapshot.GavelDesign,
		JudgeRobe:       snapshot.JudgeRobe,
		BenchDecoration: snapshot.BenchDecoration,
	}
	return &state, nil
}
