package workflows

import (
	"context"
	"fmt"

	kerrors "github.com/kyrias/mine/internal/errors"
	"github.com/kyrias/mine/internal/pathmap"
)

// ListOptions configures the ls workflow.
type ListOptions struct {
	Common

	// Path is the namespace to list. Empty means the root.
	Path string
}

// Child describes one immediate child of a listed namespace.
type Child struct {
	Name        string
	HasValue    bool
	HasChildren bool
}

// ListResult contains the outcome of a list operation.
type ListResult struct {
	// HasValue is true when Path itself holds an entry.
	HasValue bool

	// Children are sorted by name.
	Children []Child
}

// List returns the immediate children of Path.
//
// Returns ErrNotFound if Path is not a node of the index.
func List(ctx context.Context, opts ListOptions) (*ListResult, error) {
	s, err := openStore(ctx, opts.Common)
	if err != nil {
		return nil, err
	}

	listing, ok := s.repo.Lookup(opts.Path)
	if !ok {
		return nil, fmt.Errorf("listing %q: %w", opts.Path, kerrors.ErrNotFound)
	}

	prefix := pathmap.Split(opts.Path)
	result := &ListResult{
		HasValue: listing.HasValue,
		Children: make([]Child, 0, len(listing.Children)),
	}
	for _, name := range listing.Children {
		child, _ := s.repo.Lookup(pathmap.Join(append(prefix[:len(prefix):len(prefix)], name)))
		result.Children = append(result.Children, Child{
			Name:        name,
			HasValue:    child.HasValue,
			HasChildren: len(child.Children) > 0,
		})
	}
	return result, nil
}
