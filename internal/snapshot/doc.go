// Package snapshot persists assembled collections as pretty-printed JSON
// arrays and loads them back read-only. It also writes CSV exports for
// spreadsheet users.
//
// Snapshot files are replaced atomically: the collection is written to a
// temporary file in the same directory and renamed over the target, so a
// dashboard never reads a half written snapshot.
package snapshot
