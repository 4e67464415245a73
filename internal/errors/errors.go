package errors

import "errors"

// Core failure categories.
var (
	// ErrNotFound indicates a path is not mapped, or a key or file is absent.
	ErrNotFound = errors.New("not found")

	// ErrIO indicates a filesystem operation failed.
	ErrIO = errors.New("i/o failure")

	// ErrSerialization indicates malformed index, key, secret or entry data.
	ErrSerialization = errors.New("serialization failure")

	// ErrAuthentication indicates a ciphertext failed authentication.
	ErrAuthentication = errors.New("authentication failure")

	// ErrAlreadyExists indicates a key is already present.
	ErrAlreadyExists = errors.New("already exists")
)

// Key errors indicate the key store is not in a usable state.
var (
	// ErrNoKey indicates an encrypt or decrypt call before a key was loaded or generated.
	ErrNoKey = errors.New("no secret key available")

	// ErrInvalidKeyLength indicates the key material has an unexpected length.
	ErrInvalidKeyLength = errors.New("invalid secret key length")
)

// Store errors indicate issues with the on-disk layout.
var (
	// ErrStoreNotInitialized indicates no key file exists for the store.
	ErrStoreNotInitialized = errors.New("store has not been initialized")

	// ErrNotADirectory indicates the repository path exists but is not a directory.
	ErrNotADirectory = errors.New("path exists and is not a directory")

	// ErrInconsistent indicates the index and the repository directory disagree.
	ErrInconsistent = errors.New("index and repository are inconsistent")
)

// Input errors indicate invalid user input.
var (
	// ErrInvalidPath indicates a path with no segments where a secret name is required.
	ErrInvalidPath = errors.New("invalid secret path")

	// ErrInvalidTag indicates an empty tag name.
	ErrInvalidTag = errors.New("invalid tag name")

	// ErrEmptySecret indicates no secret was provided.
	ErrEmptySecret = errors.New("secret is empty")

	// ErrInvalidPattern indicates a malformed glob pattern.
	ErrInvalidPattern = errors.New("invalid pattern")

	// ErrInvalidDateFormat indicates a date filter that is not YYYY-MM-DD.
	ErrInvalidDateFormat = errors.New("invalid date format")
)
