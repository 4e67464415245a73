package workflows

import (
	"context"
	"errors"
	"fmt"

	"github.com/kyrias/mine/internal/audit"
	kerrors "github.com/kyrias/mine/internal/errors"
)

// RemoveOptions configures the rm workflow.
type RemoveOptions struct {
	Common

	// Name is the entry to delete.
	Name string
}

// Remove deletes the entry under Name and saves the index.
//
// The index is saved even if the secret file could not be removed; the
// leftover file is then reported as an orphan by Check.
//
// Returns ErrNotFound if Name holds no entry.
func Remove(ctx context.Context, opts RemoveOptions) error {
	s, err := openStore(ctx, opts.Common)
	if err != nil {
		return err
	}

	deleteErr := s.repo.Delete(opts.Name)
	if errors.Is(deleteErr, kerrors.ErrNotFound) {
		return fmt.Errorf("removing secret: %w", deleteErr)
	}

	if err := s.saveIndex(); err != nil {
		return err
	}

	s.record(audit.NewEntry(audit.OpRemove, s.storeUUID))

	if deleteErr != nil {
		return fmt.Errorf("removing secret file: %w", deleteErr)
	}
	return nil
}
