package render

import (
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
)

// Sheet pairs a worksheet name with its table.
type Sheet struct {
	Name  string
	Table Table
}

// ErrNoSheets is returned by WriteWorkbook when called without sheets.
var ErrNoSheets = errors.New("workbook has no sheets")

// ErrCellTooLong is returned when a text field exceeds what a worksheet
// cell can hold. excelize would otherwise cut the text silently.
var ErrCellTooLong = fmt.Errorf("cell text longer than %d characters", excelize.TotalCellChars)

// WriteWorkbook writes every sheet, in order, as an XLSX document to w.
// Integer fields become numeric cells; everything else is text. A text
// field too long for a cell fails with ErrCellTooLong.
func WriteWorkbook(w io.Writer, sheets ...Sheet) error {
	if len(sheets) == 0 {
		return ErrNoSheets
	}

	f := excelize.NewFile()
	defer f.Close()

	for i, s := range sheets {
		if i == 0 {
			// Reuse the default sheet so the workbook opens on the first table.
			if err := f.SetSheetName(f.GetSheetName(0), s.Name); err != nil {
				return fmt.Errorf("workbook sheet %s: %w", s.Name, err)
			}
		} else if _, err := f.NewSheet(s.Name); err != nil {
			return fmt.Errorf("workbook sheet %s: %w", s.Name, err)
		}
		if err := fillSheet(f, s); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func fillSheet(f *excelize.File, s Sheet) error {
	cols := s.Table.Columns()
	header := make([]interface{}, len(cols))
	for i, c := range cols {
		header[i] = c
	}
	if err := f.SetSheetRow(s.Name, "A1", &header); err != nil {
		return fmt.Errorf("workbook sheet %s header: %w", s.Name, err)
	}

	for r := 0; r < s.Table.Len(); r++ {
		row := s.Table.Row(r)
		cells := make([]interface{}, len(row))
		for i, field := range row {
			if field.IsInt() {
				cells[i] = field.Int64()
				continue
			}
			text := field.String()
			if n := utf8.RuneCountInString(text); n > excelize.TotalCellChars {
				return fmt.Errorf("workbook sheet %s row %d column %s: %d characters: %w",
					s.Name, r, cols[i], n, ErrCellTooLong)
			}
			cells[i] = text
		}
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(s.Name, cell, &cells); err != nil {
			return fmt.Errorf("workbook sheet %s row %d: %w", s.Name, r, err)
		}
	}
	return nil
}
