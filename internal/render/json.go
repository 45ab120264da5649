package render

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// writeJSON writes one object per row, one row per line. Keys follow
// column order. An empty table writes nothing.
func writeJSON(w io.Writer, t Table) error {
	cols := t.Columns()
	keys := make([][]byte, len(cols))
	for i, c := range cols {
		k, err := marshalString(c)
		if err != nil {
			return fmt.Errorf("encode column %q: %w", c, err)
		}
		keys[i] = k
	}

	bw := bufio.NewWriter(w)
	for r := 0; r < t.Len(); r++ {
		row := t.Row(r)
		if len(row) != len(cols) {
			return fmt.Errorf("row %d has %d fields, want %d", r, len(row), len(cols))
		}
		bw.WriteByte('{')
		for i, f := range row {
			if i > 0 {
				bw.WriteByte(',')
			}
			bw.Write(keys[i])
			bw.WriteByte(':')
			if f.IsInt() {
				bw.WriteString(f.String())
				continue
			}
			v, err := marshalString(f.String())
			if err != nil {
				return fmt.Errorf("row %d column %q: %w", r, cols[i], err)
			}
			bw.Write(v)
		}
		bw.WriteString("}\n")
	}
	return bw.Flush()
}

// marshalString encodes s as a JSON string without HTML escaping.
func marshalString(s string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
