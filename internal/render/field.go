package render

import "strconv"

// Unknown is written wherever a value could not be determined.
const Unknown = "unknown"

// Field is a single typed cell.
type Field struct {
	str   string
	num   int64
	isNum bool
}

// Text returns a string field.
func Text(s string) Field {
	return Field{str: s}
}

// Int returns an integer field. JSON writes it as a number.
func Int(n int) Field {
	return Field{num: int64(n), isNum: true}
}

// Optional returns Text(s) when ok, otherwise the Unknown placeholder.
func Optional(s string, ok bool) Field {
	if !ok {
		return Field{str: Unknown}
	}
	return Field{str: s}
}

// IsInt reports whether the field holds an integer.
func (f Field) IsInt() bool {
	return f.isNum
}

// Int64 returns the integer value; zero for text fields.
func (f Field) Int64() int64 {
	return f.num
}

// String returns the field as it appears in delimited output.
func (f Field) String() string {
	if f.isNum {
		return strconv.FormatInt(f.num, 10)
	}
	return f.str
}

// Table is a rectangular set of rows with named columns.
type Table interface {
	Columns() []string
	Len() int
	Row(i int) []Field
}

// Rows is a ready-made Table, handy for small ad-hoc outputs.
type Rows struct {
	Header []string
	Data   [][]Field
}

func (r *Rows) Columns() []string { return r.Header }
func (r *Rows) Len() int { return len(r.Data) }
func (r *Rows) Row(i int) []Field { return r.Data[i] }
