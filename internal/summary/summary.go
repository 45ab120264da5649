// Package summary counts records per date bucket at a fixed granularity.
package summary

import (
	"fmt"
	"sort"

	"github.com/roach88/seqdates/internal/render"
	"github.com/roach88/seqdates/internal/seqdate"
	"github.com/roach88/seqdates/internal/table"
)

// CountColumn names the bucket count column.
const CountColumn = "NumSequences"

// Granularity is the width of a summary's grouping key.
type Granularity int

const (
	Yearly Granularity = iota
	Monthly
	Daily
)

// All lists the granularities in output order.
func All() []Granularity {
	return []Granularity{Yearly, Monthly, Daily}
}

// Name is used as the summary file suffix.
func (g Granularity) Name() string {
	switch g {
	case Yearly:
		return "yearly"
	case Monthly:
		return "monthly"
	case Daily:
		return "daily"
	}
	return fmt.Sprintf("Granularity(%d)", int(g))
}

func (g Granularity) String() string {
	return g.Name()
}

// Width returns the number of date parts in the key.
func (g Granularity) Width() int {
	switch g {
	case Yearly:
		return seqdate.WidthYear
	case Monthly:
		return seqdate.WidthMonth
	}
	return seqdate.WidthDay
}

// Columns returns the key columns followed by the count column.
func (g Granularity) Columns() []string {
	keys := table.Columns[3 : 3+g.Width()]
	cols := make([]string, 0, len(keys)+1)
	cols = append(cols, keys...)
	return append(cols, CountColumn)
}

// Bucket is one distinct key and the number of records sharing it. An
// unknown Date is the bucket of every record without a date.
type Bucket struct {
	Date  seqdate.Date
	Count int
}

// Summary is the ordered bucket list for one granularity.
type Summary struct {
	Granularity Granularity
	Buckets     []Bucket
}

// Summarize groups records by their date truncated to g and sorts the
// buckets by key, unknown last.
func Summarize(records []table.Record, g Granularity) *Summary {
	width := g.Width()
	index := make(map[seqdate.Date]int)
	s := &Summary{Granularity: g}

	for _, r := range records {
		key := r.Date.Truncate(width)
		if i, ok := index[key]; ok {
			s.Buckets[i].Count++
			continue
		}
		index[key] = len(s.Buckets)
		s.Buckets = append(s.Buckets, Bucket{Date: key, Count: 1})
	}

	sort.Slice(s.Buckets, func(i, j int) bool {
		return seqdate.Compare(s.Buckets[i].Date, s.Buckets[j].Date) < 0
	})
	return s
}

// Total returns the sum of every bucket count.
func (s *Summary) Total() int {
	n := 0
	for _, b := range s.Buckets {
		n += b.Count
	}
	return n
}

func (s *Summary) Columns() []string { return s.Granularity.Columns() }

func (s *Summary) Len() int { return len(s.Buckets) }

func (s *Summary) Row(i int) []render.Field {
	b := s.Buckets[i]
	width := s.Granularity.Width()
	row := make([]render.Field, 0, width+1)
	for p := 0; p < width; p++ {
		v, ok := b.Date.Part(p)
		row = append(row, render.Optional(v, ok))
	}
	return append(row, render.Int(b.Count))
}
