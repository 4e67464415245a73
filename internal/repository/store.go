package repository

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	kerrors "github.com/kyrias/mine/internal/errors"
)

// Load returns the Repository rooted at basePath. If indexPath exists the
// index is restored from it, otherwise an empty Repository is created.
func Load(basePath, indexPath string) (*Repository, error) {
	data, err := os.ReadFile(indexPath)
	if errors.Is(err, fs.ErrNotExist) {
		return New(basePath)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read index file: %w: %w", kerrors.ErrIO, err)
	}

	repo, err := Deserialize(data, basePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load index %s: %w", indexPath, err)
	}
	return repo, nil
}

// SaveIndex writes the index of r to indexPath.
func SaveIndex(r *Repository, indexPath string) error {
	data, err := r.Serialize()
	if err != nil {
		return fmt.Errorf("failed to serialize repository index: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(indexPath), 0700); err != nil {
		return fmt.Errorf("failed to create index directory: %w: %w", kerrors.ErrIO, err)
	}
	if err := os.WriteFile(indexPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write repository index to disk: %w: %w", kerrors.ErrIO, err)
	}

	return nil
}
