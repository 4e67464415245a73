// Package audit records what was done to a store, and when.
//
// Every mutating operation (init, insert, set-tag, rm) and every read of a
// secret (show) appends one line to the store's audit log:
//
//	<data dir>/audit.jsonl
//
// Each entry contains:
//   - Timestamp (RFC3339 with microseconds, UTC)
//   - System user and store UUID
//   - Operation name
//   - Operation-specific counts
//
// Entries never contain logical entry names, tag names or secret content.
// The log is meant to answer "when was the store touched" without itself
// leaking what the store holds.
//
// # Failure Handling
//
// Audit logging is best-effort. Log returns an error so callers can warn,
// but operations never fail because the audit log could not be written.
//
// # Reading Logs
//
// ReadEntries parses the log for display. Malformed lines are skipped to
// tolerate partial writes.
package audit
