package seqdate

import (
	"regexp"
	"strings"
)

// Width of each granularity, in date parts.
const (
	WidthYear  = 1
	WidthMonth = 2
	WidthDay   = 3
)

var datePattern = regexp.MustCompile(`[0-9]{4}-[0-9]{2}-[0-9]{2}`)

// Date is an optional YYYY-MM-DD date split into its parts.
// The zero value is the unknown date.
type Date struct {
	parts [3]string
	width int
}

// Extract returns the leftmost date-shaped substring of label.
func Extract(label string) Date {
	iso := datePattern.FindString(label)
	if iso == "" {
		return Date{}
	}
	// The pattern guarantees exactly three dash-separated parts.
	split := strings.SplitN(iso, "-", 3)
	return Date{parts: [3]string{split[0], split[1], split[2]}, width: WidthDay}
}

// Known reports whether a date was found.
func (d Date) Known() bool {
	return d.width > 0
}

// ISO returns the parts joined with dashes, or "" for the unknown date.
func (d Date) ISO() string {
	return strings.Join(d.parts[:d.width], "-")
}

func (d Date) Year() string { return d.part(0) }
func (d Date) Month() string { return d.part(1) }
func (d Date) Day() string   { return d.part(2) }

// Part returns the i-th part (0 year, 1 month, 2 day) and whether it is set.
func (d Date) Part(i int) (string, bool) {
	if i < 0 || i >= d.width {
		return "", false
	}
	return d.parts[i], true
}

func (d Date) part(i int) string {
	s, _ := d.Part(i)
	return s
}

// Width returns how many parts are set: 0 for unknown, 3 for a full date.
func (d Date) Width() int {
	return d.width
}

// Truncate keeps the first width parts. The unknown date stays unknown.
func (d Date) Truncate(width int) Date {
	if !d.Known() {
		return d
	}
	if width < 0 {
		width = 0
	}
	if width >= d.width {
		return d
	}
	out := Date{width: width}
	copy(out.parts[:width], d.parts[:width])
	return out
}

// Compare orders known dates part by part and puts the unknown date last.
// It returns -1, 0 or +1.
func Compare(a, b Date) int {
	switch {
	case !a.Known() && !b.Known():
		return 0
	case !a.Known():
		return 1
	case !b.Known():
		return -1
	}
	n := min(a.width, b.width)
	for i := 0; i < n; i++ {
		if c := strings.Compare(a.parts[i], b.parts[i]); c != 0 {
			return c
		}
	}
	switch {
	case a.width < b.width:
		return -1
	case a.width > b.width:
		return 1
	}
	return 0
}

// FromParts builds a date from up to three parts, year first. It is the
// inverse of reading Part for each set index. No parts gives the unknown
// date; extra parts are ignored.
func FromParts(parts ...string) Date {
	var d Date
	d.width = min(len(parts), WidthDay)
	copy(d.parts[:d.width], parts)
	return d
}
