// Package store exports runs into a SQLite database.
//
// Each run is stored as one row in runs plus its records and its summary
// buckets. A missing date is stored as NULL rather than as a placeholder
// string. Reads order rows by their position in the run, so reading a run
// back yields records and buckets in the order they were written.
//
// # Database Configuration
//
//   - WAL mode
//   - synchronous=NORMAL
//   - busy_timeout=5000
//   - foreign_keys=ON
//
// The schema is embedded from schema.sql and upgraded through
// PRAGMA user_version migrations.
package store
