package workflows

import (
	"context"
	"fmt"

	"github.com/kyrias/mine/internal/audit"
)

// SetTagOptions configures the set-tag workflow.
type SetTagOptions struct {
	Common

	// Name is the entry to modify.
	Name string

	// Tag and Value are the tag to add or update.
	Tag   string
	Value string
}

// SetTagResult contains the outcome of a set-tag operation.
type SetTagResult struct {
	// Created is true when the tag did not exist before.
	Created bool
}

// SetTag adds or updates one tag of the entry under Name. The entry is
// re-encrypted under a fresh nonce and written back in place.
//
// Returns ErrNotFound if Name holds no entry.
// Returns ErrInvalidTag if Tag is empty.
func SetTag(ctx context.Context, opts SetTagOptions) (*SetTagResult, error) {
	s, err := openStore(ctx, opts.Common)
	if err != nil {
		return nil, err
	}

	e, err := s.readEntry(opts.Name)
	if err != nil {
		return nil, fmt.Errorf("reading secret: %w", err)
	}

	_, existed := e.Get(opts.Tag)
	if err := e.Set(opts.Tag, opts.Value); err != nil {
		return nil, err
	}

	if err := s.writeEntry(opts.Name, e); err != nil {
		return nil, fmt.Errorf("writing secret: %w", err)
	}

	ae := audit.NewEntry(audit.OpSetTag, s.storeUUID)
	ae.Tags = e.Len()
	s.record(ae)

	return &SetTagResult{Created: !existed}, nil
}
