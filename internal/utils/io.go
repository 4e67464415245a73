package utils

import (
	"fmt"
	"io"
	"os"

	kerrors "github.com/kyrias/mine/internal/errors"
)

// IsPiped reports whether f is a pipe or file rather than a terminal.
func IsPiped(f *os.File) bool {
	stat, err := f.Stat()
	if err != nil {
		return false
	}
	// If ModeCharDevice is set, stdin is connected to a terminal.
	return (stat.Mode() & os.ModeCharDevice) == 0
}

// ReadSecret reads all content from r and strips a single trailing newline.
// Returns ErrEmptySecret if nothing was read.
func ReadSecret(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read secret: %w", err)
	}

	data = TrimNewline(data)
	if len(data) == 0 {
		return nil, fmt.Errorf("no secret provided on stdin: %w", kerrors.ErrEmptySecret)
	}

	return data, nil
}
