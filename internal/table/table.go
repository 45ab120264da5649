// Package table assembles parsed records and their extracted dates into
// the flat record table every output is rendered from.
package table

import (
	"unicode/utf8"

	"github.com/roach88/seqdates/internal/fasta"
	"github.com/roach88/seqdates/internal/render"
	"github.com/roach88/seqdates/internal/seqdate"
)

// Columns of the record table, in output order.
var Columns = []string{
	"sequenceLabel",
	"sequenceCharacters",
	"sequenceDateISO",
	"sequenceDateYear",
	"sequenceDateMonth",
	"sequenceDateDay",
	"sequenceLength",
	"sequenceSourcePath",
	"sequenceSourceOffset",
}

// Record is one sequence entry with its derived fields. Records are not
// modified after Build returns.
type Record struct {
	Label        string
	Sequence     string
	Date         seqdate.Date
	Length       int // characters, not bytes
	SourcePath   string
	SourceOffset int
}

// Table is the ordered record collection for one run.
type Table struct {
	Records []Record

	// UnknownLabels lists, in encounter order, the label of every record
	// without a date. A label shared by two undated records appears twice.
	UnknownLabels []string
}

// Build pairs every entry with its extracted date.
func Build(entries []fasta.Entry) *Table {
	t := &Table{Records: make([]Record, 0, len(entries))}
	for _, e := range entries {
		date := seqdate.Extract(e.Label)
		if !date.Known() {
			t.UnknownLabels = append(t.UnknownLabels, e.Label)
		}
		t.Records = append(t.Records, Record{
			Label:        e.Label,
			Sequence:     e.Sequence,
			Date:         date,
			Length:       utf8.RuneCountInString(e.Sequence),
			SourcePath:   e.Source,
			SourceOffset: e.Offset,
		})
	}
	return t
}

// Dated returns how many records carry a date.
func (t *Table) Dated() int {
	return len(t.Records) - len(t.UnknownLabels)
}

// Undated returns how many records have no date.
func (t *Table) Undated() int {
	return len(t.UnknownLabels)
}

func (t *Table) Columns() []string { return Columns }

func (t *Table) Len() int { return len(t.Records) }

func (t *Table) Row(i int) []render.Field {
	r := t.Records[i]
	known := r.Date.Known()
	return []render.Field{
		render.Text(r.Label),
		render.Text(r.Sequence),
		render.Optional(r.Date.ISO(), known),
		render.Optional(r.Date.Year(), known),
		render.Optional(r.Date.Month(), known),
		render.Optional(r.Date.Day(), known),
		render.Int(r.Length),
		render.Text(r.SourcePath),
		render.Int(r.SourceOffset),
	}
}
