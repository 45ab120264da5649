// Package render serializes row tables as newline-delimited JSON, CSV or
// TSV, and optionally as an XLSX workbook.
//
// A Table exposes its column names and typed Field values. Output is
// byte-stable: columns and rows are written in the order the Table reports
// them and JSON objects keep column order, so the same table and format
// always produce the same bytes.
//
// Missing values are rendered as the Unknown placeholder. This package is
// the only place that placeholder is spelled out.
package render
