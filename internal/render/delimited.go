package render

import (
	"encoding/csv"
	"fmt"
	"io"
)

// writeDelimited writes a header row and one line per row, quoting values
// that contain the delimiter, quotes or line breaks.
func writeDelimited(w io.Writer, t Table, comma rune) error {
	cw := csv.NewWriter(w)
	cw.Comma = comma

	cols := t.Columns()
	if err := cw.Write(cols); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	record := make([]string, len(cols))
	for r := 0; r < t.Len(); r++ {
		row := t.Row(r)
		if len(row) != len(cols) {
			return fmt.Errorf("row %d has %d fields, want %d", r, len(row), len(cols))
		}
		for i, f := range row {
			record[i] = f.String()
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write row %d: %w", r, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
