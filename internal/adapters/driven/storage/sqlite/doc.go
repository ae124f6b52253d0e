// Package sqlite provides a SQLite-based implementation of driven port interfaces.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO. It currently backs:
//
//   - HistoryStore: command invocation history
//
// # Schema
//
// The schema is managed through versioned migrations in the migrations/ directory.
// Each migration is a pair of NNN_name.up.sql and NNN_name.down.sql files; applied
// versions are recorded in schema_migrations.
//
// # Data Location
//
// By default, the database is stored at ~/.dsctl/data/history.db
//
// # Thread Safety
//
// All operations are safe for concurrent use. SQLite runs in WAL mode with a busy timeout.
package sqlite
