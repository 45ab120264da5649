// Package seqdate extracts collection dates embedded in sequence labels.
//
// A date is the leftmost substring shaped like YYYY-MM-DD. The digits are
// not checked against the calendar: "2021-13-45" is accepted as long as the
// shape matches. A label without such a substring yields the zero Date,
// whose Known method reports false.
//
// Date is an optional value. Callers never compare against a sentinel
// string; the textual placeholder for a missing date belongs to the
// serializer (see internal/render).
package seqdate
