// Package workflows provides high-level orchestration for mine commands.
//
// Workflows coordinate the configs, keystore, repository, entry and audit
// packages to implement complete user-facing features. Each workflow handles
// a single command's business logic, independent of CLI concerns like flag
// parsing, spinners, and output formatting.
//
// # Available Workflows
//
//   - Init: generates the secret key and lays out an empty store
//   - Insert: encrypts a new secret under a name
//   - Show: decrypts an entry, or a single tag of it
//   - SetTag: adds or updates one tag of an existing entry
//   - Remove: deletes an entry
//   - List: lists the children of a namespace
//   - Find: matches names against a glob pattern
//   - Check: compares the index with the repository directory
//   - Log: reads and filters the audit log
//
// # Persistence
//
// Mutating workflows write the secret file first and the index second.
// A crash between the two leaves an orphan file that Check reports; it
// never leaves a name pointing at a missing file.
//
// # Error Handling
//
// Workflows return errors wrapping the sentinels in internal/errors:
//
//	result, err := workflows.Show(ctx, opts)
//	if errors.Is(err, kerrors.ErrNotFound) {
//	    // Show user-friendly message
//	}
//
// # Context Usage
//
// All workflow functions accept a context.Context as their first parameter
// and return early if it is already cancelled.
package workflows
