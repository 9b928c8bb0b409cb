package repositories

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/myrjola/gavel/internal/errors"
	"github.com/myrjola/gavel/internal/models"
	"github.com/myrjola/gavel/internal/sqlite"
)

// HistoryRepository is the append-only log of completed cases. Rows are
// never updated after the write.
type HistoryRepository struct {
	db     *sqlite.Database
	logger *slog.Logger
}

// completedAtFormat is RFC 3339 with a fixed-width fraction so that the
// lexicographic text ordering in the database matches chronological order.
const completedAtFormat = "2006-01-02T15:04:05.000000000Z07:00"

func NewHistoryRepository(db *sqlite.Database, logger *slog.Logger) *HistoryRepository {
	return &HistoryRepository{
		db:     db,
		logger: logger.With("source", "HistoryRepository"),
	}
}

// Append writes one completed-case record.
func (r *HistoryRepository) Append(ctx context.Context, record models.CompletedCase) error {
	stmt := `INSERT INTO case_history (id, case_id, verdict, correct_verdict, was_correct, coins_earned, completed_at,
                          time_spent)
VALUES (@id, @case_id, @verdict, @correct_verdict, @was_correct, @coins_earned, @completed_at, @time_spent)`
	if _, err := r.db.ReadWrite.ExecContext(ctx, stmt,
		sql.Named("id", record.ID),
		sql.Named("case_id", record.CaseID),
		sql.Named("verdict", string(record.Verdict)),
		sql.Named("correct_verdict", string(record.CorrectVerdict)),
		sql.Named("was_correct", record.WasCorrect),
		sql.Named("coins_earned", record.CoinsEarned),
		sql.Named("completed_at", record.CompletedAt.UTC().Format(completedAtFormat)),
		sql.Named("time_spent", record.TimeSpent.Milliseconds()),
	); err != nil {
		return errors.Wrap(err, "insert case history", slog.String("caseId", record.CaseID))
	}
	return nil
}

// All returns the full history ordered by completion time.
func (r *HistoryRepository) All(ctx context.Context) ([]models.CompletedCase, error) {
	stmt := `SELECT id, case_id, verdict, correct_verdict, was_correct, coins_earned, completed_at, time_spent
FROM case_history
ORDER BY completed_at`
	rows, err := r.db.ReadOnly.QueryContext(ctx, stmt)
	if err != nil {
		return nil, errors.Wrap(err, "query case history")
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			r.logger.Error("could not close rows", errors.SlogError(closeErr))
		}
	}()

	var records []models.CompletedCase
	for rows.Next() {
		var (
			record      models.CompletedCase
			completedAt string
			timeSpentMS int64
		)
		if err = rows.Scan(&record.ID, &record.CaseID, &record.Verdict, &record.CorrectVerdict,
			&record.WasCorrect, &record.CoinsEarned, &completedAt, &timeSpentMS); err != nil {
			return nil, errors.Wrap(err, "scan case history row")
		}
		if record.CompletedAt, err = time.Parse(time.RFC3339Nano, completedAt); err != nil {
			return nil, errors.Wrap(err, "parse completion time", slog.String("completedAt", completedAt))
		}
		record.TimeSpent = time.Duration(timeSpentMS) * time.Millisecond
		records = append(records, record)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "case history rows")
	}

	return records, nil
}
