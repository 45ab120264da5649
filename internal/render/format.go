package render

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrUnsupportedFormat is returned for a format name outside Formats().
var ErrUnsupportedFormat = errors.New("unsupported format")

// Format selects a serialization.
type Format int

const (
	JSON Format = iota
	CSV
	TSV
)

var formatNames = map[Format]string{
	JSON: "json",
	CSV:  "csv",
	TSV:  "tsv",
}

// writers holds one render function per format, shared by every output.
var writers = map[Format]func(io.Writer, Table) error{
	JSON: writeJSON,
	CSV:  func(w io.Writer, t Table) error { return writeDelimited(w, t, ',') },
	TSV:  func(w io.Writer, t Table) error { return writeDelimited(w, t, '\t') },
}

// Formats lists the accepted format names in a fixed order.
func Formats() []string {
	return []string{"json", "csv", "tsv"}
}

// ParseFormat maps a name from Formats to a Format.
func ParseFormat(name string) (Format, error) {
	for f, n := range formatNames {
		if n == name {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w %q: must be one of %s", ErrUnsupportedFormat, name, strings.Join(Formats(), ", "))
}

func (f Format) String() string {
	if n, ok := formatNames[f]; ok {
		return n
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// Write serializes t to w in format f.
func Write(w io.Writer, f Format, t Table) error {
	write, ok := writers[f]
	if !ok {
		return fmt.Errorf("%w %s", ErrUnsupportedFormat, f)
	}
	return write(w, t)
}
