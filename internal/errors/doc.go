// Package errors provides typed error values for mine.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching.
//
// # Error Categories
//
// Every failure returned by the core packages carries exactly one category:
//
//   - ErrNotFound: a path is not in the index, or a key or file is absent
//   - ErrIO: creating, opening, reading, writing or removing a file failed
//   - ErrSerialization: a malformed index, key, secret file or entry
//   - ErrAuthentication: a ciphertext failed tag verification
//   - ErrAlreadyExists: a key is already present
//
// # Usage
//
// Wrap the category together with the underlying cause so both survive:
//
//	if err := os.WriteFile(path, data, 0600); err != nil {
//	    return fmt.Errorf("failed to write %s: %w: %w", path, errors.ErrIO, err)
//	}
//
// Handle errors in the CLI layer:
//
//	if errors.Is(err, kerrors.ErrNotFound) {
//	    // Show user-friendly message
//	}
package errors
