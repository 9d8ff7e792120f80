// Package database provides SQLite-based storage for pagescan.
//
// This package implements the HistoryDB, which stores:
//   - Analysis reports for historical comparison
//   - Per-dimension scores for trend queries without loading full reports
//
// Design decision: We use SQLite (via modernc.org/sqlite) instead of other
// databases because:
// 1. No external dependencies - the database is a single file
// 2. CGO-free implementation allows easy cross-compilation
// 3. Sufficient performance for our use case
// 4. WAL mode provides good concurrent read performance
package database
