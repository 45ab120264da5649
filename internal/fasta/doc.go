// Package fasta reads header-delimited sequence records.
//
// A record starts at a line beginning with '>'. The label is the header
// text up to the first whitespace; the rest of the header line is ignored.
// Every following line up to the next header is appended to the sequence
// with line breaks and blanks removed. Text before the first header is
// skipped, and an empty or headerless source yields no records.
//
// Sources are acquired together by Open and released together by
// Sources.Close, so a run can defer a single Close regardless of where it
// fails.
package fasta
