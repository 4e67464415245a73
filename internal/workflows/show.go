package workflows

import (
	"context"
	"fmt"

	"github.com/kyrias/mine/internal/audit"
	"github.com/kyrias/mine/internal/entry"
	kerrors "github.com/kyrias/mine/internal/errors"
)

// ShowOptions configures the show workflow.
type ShowOptions struct {
	Common

	// Name is the entry to decrypt.
	Name string

	// Tag selects a single tag. Empty means the whole entry.
	Tag string
}

// ShowResult contains the outcome of a show operation.
type ShowResult struct {
	// Entry is the decrypted entry.
	Entry *entry.Entry

	// Value is the selected tag's value when ShowOptions.Tag is set.
	Value string
}

// Show decrypts the entry stored under Name.
//
// Returns ErrNotFound if Name holds no entry, or Tag is set and missing.
// Returns ErrAuthentication if the secret file was tampered with or was
// encrypted under a different key.
func Show(ctx context.Context, opts ShowOptions) (*ShowResult, error) {
	s, err := openStore(ctx, opts.Common)
	if err != nil {
		return nil, err
	}

	e, err := s.readEntry(opts.Name)
	if err != nil {
		return nil, fmt.Errorf("showing secret: %w", err)
	}

	result := &ShowResult{Entry: e}
	if opts.Tag != "" {
		value, ok := e.Get(opts.Tag)
		if !ok {
			return nil, fmt.Errorf("tag %q: %w", opts.Tag, kerrors.ErrNotFound)
		}
		result.Value = value
	}

	s.record(audit.NewEntry(audit.OpShow, s.storeUUID))
	return result, nil
}
