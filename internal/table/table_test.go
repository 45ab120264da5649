package table

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/seqdates/internal/fasta"
	"github.com/roach88/seqdates/internal/render"
)

func TestBuild_DatedAndUndated(t *testing.T) {
	tbl := Build([]fasta.Entry{
		{Label: "seqA|2021-03-15", Sequence: "ACGT", Source: "in.fasta", Offset: 0},
		{Label: "seqB|no-date-here", Sequence: "GG", Source: "in.fasta", Offset: 1},
	})

	require.Len(t, tbl.Records, 2)
	a, b := tbl.Records[0], tbl.Records[1]

	assert.True(t, a.Date.Known())
	assert.Equal(t, "2021-03-15", a.Date.ISO())
	assert.Equal(t, 4, a.Length)
	assert.False(t, b.Date.Known())
	assert.Equal(t, 2, b.Length)

	assert.Equal(t, []string{"seqB|no-date-here"}, tbl.UnknownLabels)
	assert.Equal(t, 1, tbl.Dated())
	assert.Equal(t, 1, tbl.Undated())
}

func TestBuild_DuplicateUnknownLabels(t *testing.T) {
	tbl := Build([]fasta.Entry{
		{Label: "dup", Source: "a", Offset: 0},
		{Label: "x|2020-01-01", Source: "a", Offset: 1},
		{Label: "dup", Source: "b", Offset: 0},
	})
	assert.Equal(t, []string{"dup", "dup"}, tbl.UnknownLabels)
	assert.Equal(t, 1, tbl.Dated())
}

func TestBuild_Empty(t *testing.T) {
	tbl := Build(nil)
	assert.Zero(t, tbl.Len())
	assert.Zero(t, tbl.Dated())
	assert.Nil(t, tbl.UnknownLabels)
}

func TestBuild_EmptySequence(t *testing.T) {
	tbl := Build([]fasta.Entry{{Label: "empty|2020-01-01", Source: "s"}})
	require.Len(t, tbl.Records, 1)
	assert.Equal(t, "", tbl.Records[0].Sequence)
	assert.Zero(t, tbl.Records[0].Length)
}

func TestBuild_LengthCountsCharacters(t *testing.T) {
	entries, err := fasta.Parse(strings.NewReader(">bad|2020-01-01\nAC\xffGT\n>wide\nACGTé\n"), "in.fasta")
	require.NoError(t, err)

	tbl := Build(entries)
	require.Len(t, tbl.Records, 2)
	assert.Equal(t, "AC\uFFFDGT", tbl.Records[0].Sequence)
	assert.Equal(t, 5, tbl.Records[0].Length)
	assert.Equal(t, 5, tbl.Records[1].Length)
}

func TestTable_Rows(t *testing.T) {
	tbl := Build([]fasta.Entry{
		{Label: "seqA|2021-03-15", Sequence: "ACGT", Source: "in.fasta", Offset: 0},
		{Label: "seqB|no-date-here", Sequence: "", Source: fasta.StdinName, Offset: 3},
	})

	assert.Equal(t, Columns, tbl.Columns())

	var got []string
	for _, f := range tbl.Row(0) {
		got = append(got, f.String())
	}
	assert.Equal(t, []string{"seqA|2021-03-15", "ACGT", "2021-03-15", "2021", "03", "15", "4", "in.fasta", "0"}, got)

	got = got[:0]
	for _, f := range tbl.Row(1) {
		got = append(got, f.String())
	}
	assert.Equal(t, []string{"seqB|no-date-here", "", render.Unknown, render.Unknown, render.Unknown, render.Unknown, "0", "standard input", "3"}, got)
}

func TestTable_RenderJSON(t *testing.T) {
	tbl := Build([]fasta.Entry{{Label: "seqA|2021-03-15", Sequence: "AC", Source: "in.fasta"}})

	var buf bytes.Buffer
	require.NoError(t, render.Write(&buf, render.JSON, tbl))
	assert.Equal(t,
		`{"sequenceLabel":"seqA|2021-03-15","sequenceCharacters":"AC","sequenceDateISO":"2021-03-15","sequenceDateYear":"2021","sequenceDateMonth":"03","sequenceDateDay":"15","sequenceLength":2,"sequenceSourcePath":"in.fasta","sequenceSourceOffset":0}`+"\n",
		buf.String())
}
