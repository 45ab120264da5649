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

// RunInfo describes a stored run without its rows.
type RunInfo struct {
	ID          string
	CreatedAt   time.Time
	RecordCount int
	DatedCount  int
}

// ListRuns returns every stored run, oldest first. UUIDv7 IDs sort by
// creation time, so the ID breaks timestamp ties.
func (s *Store) ListRuns(ctx context.Context) ([]RunInfo, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, created_at, record_count, dated_count
		FROM runs
		ORDER BY created_at ASC, id COLLATE BINARY ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	runs := []RunInfo{}
	for rows.Next() {
		var (
			info    RunInfo
			created string
		)
		if err := rows.Scan(&info.ID, &created, &info.RecordCount, &info.DatedCount); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		info.CreatedAt, err = time.Parse(time.RFC3339Nano, created)
		if err != nil {
			return nil, fmt.Errorf("run %s created_at: %w", info.ID, err)
		}
		runs = append(runs, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

// ReadRecords returns a run's records in their original order.
// Returns an empty slice (not nil) for an unknown run.
func (s *Store) ReadRecords(ctx context.Context, runID string) ([]table.Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT label, sequence, date_year, date_month, date_day, length, source_path, source_offset
		FROM records
		WHERE run_id = ?
		ORDER BY seq ASC
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()

	records := []table.Record{}
	for rows.Next() {
		var (
			r                table.Record
			year, month, day sql.NullString
		)
		if err := rows.Scan(&r.Label, &r.Sequence, &year, &month, &day, &r.Length, &r.SourcePath, &r.SourceOffset); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		r.Date = dateFromColumns(year, month, day)
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}
	return records, nil
}

// ReadBuckets returns a run's buckets for one granularity in stored order.
func (s *Store) ReadBuckets(ctx context.Context, runID string, g summary.Granularity) ([]summary.Bucket, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT date_year, date_month, date_day, count
		FROM summaries
		WHERE run_id = ? AND granularity = ?
		ORDER BY seq ASC
	`, runID, g.Name())
	if err != nil {
		return nil, fmt.Errorf("query %s buckets: %w", g, err)
	}
	defer rows.Close()

	buckets := []summary.Bucket{}
	for rows.Next() {
		var (
			b                summary.Bucket
			year, month, day sql.NullString
		)
		if err := rows.Scan(&year, &month, &day, &b.Count); err != nil {
			return nil, fmt.Errorf("scan %s bucket: %w", g, err)
		}
		b.Date = dateFromColumns(year, month, day)
		buckets = append(buckets, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s buckets: %w", g, err)
	}
	return buckets, nil
}

// dateFromColumns rebuilds a date from its leading non-NULL parts.
func dateFromColumns(cols ...sql.NullString) seqdate.Date {
	var parts []string
	for _, c := range cols {
		if !c.Valid {
			break
		}
		parts = append(parts, c.String)
	}
	return seqdate.FromParts(parts...)
}
