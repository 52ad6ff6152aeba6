// Package history persists console log events into a SQLite database so the
// CLI can replay output after the in-memory observer buffer rolls over.
//
// The store implements the logger hub's sink interface. Appends are
// best-effort: the pipeline never depends on the database being writable,
// and a failed insert drops the event rather than surfacing an error into
// the logging path.
package history
