package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteFile writes content to name inside dir and returns the full path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture %s: %v", path, err)
	}
	return path
}

// ReadFile returns the content of path, failing the test if it is missing.
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

// SampleFASTA is a small two-source-friendly fixture: two dated records,
// one undated record and one record with an empty sequence.
const SampleFASTA = `>seqA|2021-03-15 first sample
ACGT
ACGT
>seqB|no-date-here
GGCC
>seqC|2020-01-01
TTAA
>seqD|2020-01-01
`
