package workflows

import (
	"context"
	"fmt"

	"github.com/kyrias/mine/internal/audit"
	"github.com/kyrias/mine/internal/entry"
	kerrors "github.com/kyrias/mine/internal/errors"
	"github.com/kyrias/mine/internal/pathmap"
)

// InsertOptions configures the insert workflow.
type InsertOptions struct {
	Common

	// Name is the slash-separated name of the entry.
	Name string

	// Secret is stored under the password tag.
	Secret []byte
}

// InsertResult contains the outcome of an insert operation.
type InsertResult struct {
	// Replaced is true when Name already held an entry. Its tags are not kept.
	Replaced bool
}

// Insert stores Secret as the password of a new entry under Name.
//
// An existing entry under Name is overwritten in place.
//
// Returns ErrInvalidPath if Name has no segments.
// Returns ErrEmptySecret if Secret is empty.
// Returns ErrStoreNotInitialized if there is no secret key.
func Insert(ctx context.Context, opts InsertOptions) (*InsertResult, error) {
	if len(pathmap.Split(opts.Name)) == 0 {
		return nil, fmt.Errorf("%q: %w", opts.Name, kerrors.ErrInvalidPath)
	}
	if len(opts.Secret) == 0 {
		return nil, kerrors.ErrEmptySecret
	}

	s, err := openStore(ctx, opts.Common)
	if err != nil {
		return nil, err
	}

	listing, _ := s.repo.Lookup(opts.Name)
	e := entry.WithPassword(string(opts.Secret))

	if err := s.writeEntry(opts.Name, e); err != nil {
		return nil, fmt.Errorf("inserting secret: %w", err)
	}

	ae := audit.NewEntry(audit.OpInsert, s.storeUUID)
	ae.Replaced = listing.HasValue
	ae.Tags = e.Len()
	s.record(ae)

	return &InsertResult{Replaced: listing.HasValue}, nil
}
