package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/roach88/seqdates/internal/fasta"
	"github.com/roach88/seqdates/internal/summary"
	"github.com/roach88/seqdates/internal/table"
)

// createTestStore opens a fresh database in a temp dir.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// createTestRun builds a run with two dated records and one undated one.
func createTestRun(id string) Run {
	tbl := table.Build([]fasta.Entry{
		{Label: "a|2020-01-01", Sequence: "ACGT", Source: "in.fasta", Offset: 0},
		{Label: "b|no-date", Sequence: "", Source: "in.fasta", Offset: 1},
		{Label: "c|2021-06-30", Sequence: "GG", Source: fasta.StdinName, Offset: 0},
	})
	var sums []*summary.Summary
	for _, g := range summary.All() {
		sums = append(sums, summary.Summarize(tbl.Records, g))
	}
	return Run{
		ID:        id,
		CreatedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		Table:     tbl,
		Summaries: sums,
	}
}
