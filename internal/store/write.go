package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/roach88/seqdates/internal/seqdate"
	"github.com/roach88/seqdates/internal/summary"
	"github.com/roach88/seqdates/internal/table"
)

// Run is one invocation's output, ready to export.
type Run struct {
	ID        string
	CreatedAt time.Time
	Table     *table.Table
	Summaries []*summary.Summary
}

// WriteRun stores the run, its records and its summaries in a single
// transaction. Writing the same run ID twice fails on the primary key.
func (s *Store) WriteRun(ctx context.Context, run Run) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("write run: begin: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (id, created_at, record_count, dated_count)
		VALUES (?, ?, ?, ?)
	`, run.ID, run.CreatedAt.UTC().Format(time.RFC3339Nano), len(run.Table.Records), run.Table.Dated())
	if err != nil {
		return fmt.Errorf("write run %s: %w", run.ID, err)
	}

	if err := writeRecords(ctx, tx, run.ID, run.Table.Records); err != nil {
		return err
	}
	for _, sum := range run.Summaries {
		if err := writeSummary(ctx, tx, run.ID, sum); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("write run %s: commit: %w", run.ID, err)
	}
	return nil
}

func writeRecords(ctx context.Context, tx *sql.Tx, runID string, records []table.Record) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO records
		(run_id, seq, label, sequence, date_iso, date_year, date_month, date_day, length, source_path, source_offset)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("write records: %w", err)
	}
	defer stmt.Close()

	for i, r := range records {
		iso := nullString(r.Date.ISO(), r.Date.Known())
		year, month, day := dateColumns(r.Date)
		_, err := stmt.ExecContext(ctx,
			runID, i, r.Label, r.Sequence,
			iso, year, month, day,
			r.Length, r.SourcePath, r.SourceOffset,
		)
		if err != nil {
			return fmt.Errorf("write record %d: %w", i, err)
		}
	}
	return nil
}

func writeSummary(ctx context.Context, tx *sql.Tx, runID string, sum *summary.Summary) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO summaries (run_id, granularity, seq, date_year, date_month, date_day, count)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("write %s summary: %w", sum.Granularity, err)
	}
	defer stmt.Close()

	for i, b := range sum.Buckets {
		year, month, day := dateColumns(b.Date)
		if _, err := stmt.ExecContext(ctx, runID, sum.Granularity.Name(), i, year, month, day, b.Count); err != nil {
			return fmt.Errorf("write %s bucket %d: %w", sum.Granularity, i, err)
		}
	}
	return nil
}

func dateColumns(d seqdate.Date) (year, month, day sql.NullString) {
	cols := [3]*sql.NullString{&year, &month, &day}
	for i, col := range cols {
		v, ok := d.Part(i)
		*col = nullString(v, ok)
	}
	return year, month, day
}

func nullString(s string, ok bool) sql.NullString {
	return sql.NullString{String: s, Valid: ok}
}
