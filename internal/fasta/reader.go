package fasta

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// HeaderMarker starts every record header line.
const HeaderMarker = '>'

// maxLineSize allows very long single-line sequences.
const maxLineSize = 64 * 1024 * 1024

// Entry is one parsed record.
type Entry struct {
	Label    string
	Sequence string
	Source   string // path, or StdinName
	Offset   int    // zero-based position within Source
}

// Parse reads every record from r. A byte-order mark, UTF-8 or UTF-16, is
// consumed and the stream decoded to UTF-8 before parsing.
func Parse(r io.Reader, source string) ([]Entry, error) {
	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))

	sc := bufio.NewScanner(decoded)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var (
		entries []Entry
		label   string
		seq     strings.Builder
		open    bool
	)
	flush := func() {
		if !open {
			return
		}
		entries = append(entries, Entry{
			Label:    label,
			Sequence: seq.String(),
			Source:   source,
			Offset:   len(entries),
		})
		seq.Reset()
	}

	for sc.Scan() {
		line := sc.Text()
		if len(line) > 0 && line[0] == HeaderMarker {
			flush()
			label = headerLabel(line[1:])
			open = true
			continue
		}
		if !open {
			continue
		}
		seq.WriteString(stripBlanks(line))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", source, err)
	}
	flush()

	return entries, nil
}

// headerLabel returns the header text up to the first whitespace.
func headerLabel(header string) string {
	fields := strings.Fields(header)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

func stripBlanks(line string) string {
	if !strings.ContainsAny(line, " \t\r") {
		return line
	}
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\r':
			return -1
		}
		return r
	}, line)
}
