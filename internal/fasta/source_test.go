package fasta

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/seqdates/internal/testutil"
)

func TestOpenWith_OrderAndOffsets(t *testing.T) {
	dir := t.TempDir()
	first := testutil.WriteFile(t, dir, "first.fasta", ">a\nAA\n>b\nCC\n")
	second := testutil.WriteFile(t, dir, "second.fasta", ">c\nGG\n")

	srcs, err := OpenWith([]string{first, second}, strings.NewReader(""))
	require.NoError(t, err)
	defer srcs.Close()

	entries, err := srcs.ReadAll(nil)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "a", entries[0].Label)
	assert.Equal(t, first, entries[0].Source)
	assert.Equal(t, 0, entries[0].Offset)
	assert.Equal(t, 1, entries[1].Offset)
	assert.Equal(t, "c", entries[2].Label)
	assert.Equal(t, second, entries[2].Source)
	assert.Equal(t, 0, entries[2].Offset)
}

func TestOpenWith_DefaultsToStdin(t *testing.T) {
	srcs, err := OpenWith(nil, strings.NewReader(">s|2020-01-01\nAC\n"))
	require.NoError(t, err)
	defer srcs.Close()

	require.Len(t, srcs.List(), 1)
	assert.True(t, srcs.List()[0].Stdin)

	var noticed []string
	entries, err := srcs.ReadAll(func(s *Source) { noticed = append(noticed, s.Name) })
	require.NoError(t, err)
	assert.Equal(t, []string{StdinName}, noticed)
	require.Len(t, entries, 1)
	assert.Equal(t, StdinName, entries[0].Source)
}

func TestOpenWith_DashMeansStdin(t *testing.T) {
	path := testutil.WriteFile(t, t.TempDir(), "f.fasta", ">f\nA\n")

	srcs, err := OpenWith([]string{path, StdinPath}, strings.NewReader(">in\nC\n"))
	require.NoError(t, err)
	defer srcs.Close()

	calls := 0
	entries, err := srcs.ReadAll(func(*Source) { calls++ })
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	require.Len(t, entries, 2)
	assert.Equal(t, StdinName, entries[1].Source)
}

func TestOpenWith_MissingFileFails(t *testing.T) {
	dir := t.TempDir()
	good := testutil.WriteFile(t, dir, "good.fasta", ">g\nA\n")
	missing := filepath.Join(dir, "missing.fasta")

	srcs, err := OpenWith([]string{good, missing}, strings.NewReader(""))
	require.Error(t, err)
	assert.Nil(t, srcs)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.Contains(t, err.Error(), missing)
}

func TestSources_CloseIsRepeatable(t *testing.T) {
	path := testutil.WriteFile(t, t.TempDir(), "f.fasta", ">f\nA\n")

	srcs, err := OpenWith([]string{path}, strings.NewReader(""))
	require.NoError(t, err)
	require.NoError(t, srcs.Close())
	require.NoError(t, srcs.Close())
}

func TestSources_EmptyFile(t *testing.T) {
	path := testutil.WriteFile(t, t.TempDir(), "empty.fasta", "")

	srcs, err := OpenWith([]string{path}, strings.NewReader(""))
	require.NoError(t, err)
	defer srcs.Close()

	entries, err := srcs.ReadAll(nil)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
