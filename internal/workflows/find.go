package workflows

import (
	"context"
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
	kerrors "github.com/kyrias/mine/internal/errors"
)

// FindOptions configures the find workflow.
type FindOptions struct {
	Common

	// Pattern is a glob over entry names. "**" crosses namespaces.
	Pattern string
}

// FindResult contains the outcome of a find operation.
type FindResult struct {
	// Matches are the matching entry names, sorted.
	Matches []string

	// Searched is the number of entries examined.
	Searched int
}

// Find returns the names of every entry matching Pattern.
//
// Returns ErrInvalidPattern if Pattern is malformed.
func Find(ctx context.Context, opts FindOptions) (*FindResult, error) {
	if !doublestar.ValidatePattern(opts.Pattern) {
		return nil, fmt.Errorf("%q: %w", opts.Pattern, kerrors.ErrInvalidPattern)
	}

	s, err := openStore(ctx, opts.Common)
	if err != nil {
		return nil, err
	}

	paths := s.repo.Paths()
	result := &FindResult{Matches: []string{}, Searched: len(paths)}
	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		ok, err := doublestar.Match(opts.Pattern, p)
		if err != nil {
			return nil, fmt.Errorf("%q: %w: %w", opts.Pattern, kerrors.ErrInvalidPattern, err)
		}
		if ok {
			result.Matches = append(result.Matches, p)
		}
	}
	return result, nil
}
