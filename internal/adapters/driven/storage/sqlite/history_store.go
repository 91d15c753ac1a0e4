package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/custodia-labs/linesplit/internal/core/domain"
	"github.com/custodia-labs/linesplit/internal/core/ports/driven"
)

// timeLayout is fixed width so stored timestamps sort as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// historyStore implements driven.HistoryStore.
type historyStore struct {
	store *Store
}

var _ driven.HistoryStore = (*historyStore)(nil)

// Save creates or replaces a run together with its output paths.
func (s *historyStore) Save(ctx context.Context, run *domain.SplitRun) error {
	if run == nil || run.ID == "" {
		return domain.ErrInvalidInput
	}

	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO split_runs (id, source_path, parts, total_lines, started_at, ended_at, success, error)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			source_path = excluded.source_path,
			parts = excluded.parts,
			total_lines = excluded.total_lines,
			started_at = excluded.started_at,
			ended_at = excluded.ended_at,
			success = excluded.success,
			error = excluded.error
	`, run.ID, run.SourcePath, run.Parts, run.TotalLines,
		formatTime(run.StartedAt), formatNullableTime(run.EndedAt),
		boolToInt(run.Success), nullString(run.Error))
	if err != nil {
		return fmt.Errorf("saving split run: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM split_outputs WHERE run_id = ?", run.ID); err != nil {
		return fmt.Errorf("clearing split outputs: %w", err)
	}
	for i, path := range run.Outputs {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO split_outputs (run_id, part_idx, path) VALUES (?, ?, ?)",
			run.ID, i, path)
		if err != nil {
			return fmt.Errorf("saving split output %d: %w", i+1, err)
		}
	}

	return tx.Commit()
}

// Get retrieves a run by ID.
func (s *historyStore) Get(ctx context.Context, id string) (*domain.SplitRun, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, source_path, parts, total_lines, started_at, ended_at, success, error
		FROM split_runs WHERE id = ?
	`, id)

	run, err := scanSplitRun(row)
	if err != nil {
		return nil, err
	}
	if run.Outputs, err = s.outputs(ctx, run.ID); err != nil {
		return nil, err
	}
	return run, nil
}

// List returns runs, most recent first. A limit of zero or less returns all.
func (s *historyStore) List(ctx context.Context, limit int) ([]domain.SplitRun, error) {
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}

	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, source_path, parts, total_lines, started_at, ended_at, success, error
		FROM split_runs
		ORDER BY started_at DESC, id
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying split runs: %w", err)
	}

	var runs []domain.SplitRun //nolint:prealloc // size unknown from query
	for rows.Next() {
		run, err := scanSplitRun(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		runs = append(runs, *run)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("iterating split runs: %w", err)
	}
	rows.Close()

	for i := range runs {
		if runs[i].Outputs, err = s.outputs(ctx, runs[i].ID); err != nil {
			return nil, err
		}
	}
	return runs, nil
}

// Clear removes every run. Outputs cascade.
func (s *historyStore) Clear(ctx context.Context) error {
	if _, err := s.store.db.ExecContext(ctx, "DELETE FROM split_runs"); err != nil {
		return fmt.Errorf("clearing split runs: %w", err)
	}
	return nil
}

func (s *historyStore) outputs(ctx context.Context, runID string) ([]string, error) {
	rows, err := s.store.db.QueryContext(ctx,
		"SELECT path FROM split_outputs WHERE run_id = ? ORDER BY part_idx", runID)
	if err != nil {
		return nil, fmt.Errorf("querying split outputs: %w", err)
	}
	defer rows.Close()

	var paths []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("scanning split output: %w", err)
		}
		paths = append(paths, p)
	}
	return paths, rows.Err()
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanSplitRun(row rowScanner) (*domain.SplitRun, error) {
	var (
		run       domain.SplitRun
		startedAt string
		endedAt   sql.NullString
		success   int
		errMsg    sql.NullString
	)

	err := row.Scan(&run.ID, &run.SourcePath, &run.Parts, &run.TotalLines,
		&startedAt, &endedAt, &success, &errMsg)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning split run: %w", err)
	}

	run.StartedAt = parseTime(startedAt)
	if endedAt.Valid {
		run.EndedAt = parseTime(endedAt.String)
	}
	run.Success = success != 0
	run.Error = errMsg.String
	return &run, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// formatNullableTime stores the zero time as NULL.
func formatNullableTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return formatTime(t)
}

// parseTime returns the zero time for unparsable input.
func parseTime(s string) time.Time {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
