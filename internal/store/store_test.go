package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/seqdates/internal/summary"
)

func TestOpen_CreatesNewDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestOpen_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	for i := 0; i < 3; i++ {
		s, err := Open(path)
		require.NoError(t, err, "iteration %d", i)
		require.NoError(t, s.Close())
	}
}

func TestOpen_Pragmas(t *testing.T) {
	s := createTestStore(t)

	assert.NoError(t, s.verifyPragma("journal_mode", "wal"))
	assert.NoError(t, s.verifyPragma("foreign_keys", "1"))
	assert.NoError(t, s.verifyPragma("user_version", "1"))
}

func TestOpen_BadPath(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing-dir", "x.db"))
	assert.Error(t, err)
}

func TestNewRunID(t *testing.T) {
	id := NewRunID()
	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
	assert.NotEqual(t, id, NewRunID())
}

func TestWriteRun_ReadBack(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()
	run := createTestRun("run-1")

	require.NoError(t, s.WriteRun(ctx, run))

	records, err := s.ReadRecords(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, run.Table.Records, records)

	for _, sum := range run.Summaries {
		buckets, err := s.ReadBuckets(ctx, "run-1", sum.Granularity)
		require.NoError(t, err)
		assert.Equal(t, sum.Buckets, buckets, sum.Granularity.Name())
	}
}

func TestWriteRun_UnknownDateIsNull(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.WriteRun(ctx, createTestRun("run-1")))

	var nulls int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM records WHERE date_iso IS NULL AND date_year IS NULL`).Scan(&nulls)
	require.NoError(t, err)
	assert.Equal(t, 1, nulls)

	err = s.db.QueryRow(`SELECT COUNT(*) FROM summaries WHERE granularity = 'daily' AND date_year IS NULL`).Scan(&nulls)
	require.NoError(t, err)
	assert.Equal(t, 1, nulls)
}

func TestWriteRun_DuplicateIDFails(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.WriteRun(ctx, createTestRun("same")))
	require.Error(t, s.WriteRun(ctx, createTestRun("same")))

	// The failed write left nothing behind.
	records, err := s.ReadRecords(ctx, "same")
	require.NoError(t, err)
	assert.Len(t, records, 3)
}

func TestListRuns(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	runs, err := s.ListRuns(ctx)
	require.NoError(t, err)
	assert.Empty(t, runs)

	require.NoError(t, s.WriteRun(ctx, createTestRun("b-run")))
	require.NoError(t, s.WriteRun(ctx, createTestRun("a-run")))

	runs, err = s.ListRuns(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "a-run", runs[0].ID)
	assert.Equal(t, 3, runs[0].RecordCount)
	assert.Equal(t, 2, runs[0].DatedCount)
	assert.True(t, runs[0].CreatedAt.Equal(createTestRun("").CreatedAt))
}

func TestReadRecords_UnknownRun(t *testing.T) {
	s := createTestStore(t)
	records, err := s.ReadRecords(context.Background(), "nope")
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)

	buckets, err := s.ReadBuckets(context.Background(), "nope", summary.Yearly)
	require.NoError(t, err)
	assert.Empty(t, buckets)
}
