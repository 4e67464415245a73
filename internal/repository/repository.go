package repository

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"

	kerrors "github.com/kyrias/mine/internal/errors"
	"github.com/kyrias/mine/internal/pathmap"
)

// DirName is the name of the blob directory inside the base directory.
const DirName = "repository"

// Repository maps secret names to blob files.
type Repository struct {
	dir    string
	mapper *pathmap.Mapper
}

// New returns an empty Repository rooted at basePath, creating
// basePath/repository if needed.
func New(basePath string) (*Repository, error) {
	r := &Repository{
		dir:    filepath.Join(basePath, DirName),
		mapper: pathmap.New(),
	}
	if err := r.ensureDir(); err != nil {
		return nil, err
	}
	return r, nil
}

// Deserialize restores a Repository rooted at basePath from an index
// produced by Serialize. It does not touch the filesystem.
func Deserialize(data []byte, basePath string) (*Repository, error) {
	m, err := decodeIndex(data)
	if err != nil {
		return nil, err
	}
	return &Repository{
		dir:    filepath.Join(basePath, DirName),
		mapper: m,
	}, nil
}

// Serialize encodes the index. Blob contents are not included.
func (r *Repository) Serialize() ([]byte, error) {
	return encodeIndex(r.mapper)
}

// Dir returns the blob directory.
func (r *Repository) Dir() string {
	return r.dir
}

// Insert writes content for path, reusing the path's file if it already has
// one. Names must be valid UTF-8. The index change is in memory only until
// SaveIndex.
func (r *Repository) Insert(path string, content []byte) error {
	if len(pathmap.Split(path)) == 0 || !utf8.ValidString(path) {
		return fmt.Errorf("failed to insert %q: %w", path, kerrors.ErrInvalidPath)
	}

	_, existed := r.mapper.Find(path)
	filename, err := r.mapper.Insert(path)
	if err != nil {
		return fmt.Errorf("failed to allocate filename: %w", err)
	}

	if err := r.ensureDir(); err != nil {
		r.forget(path, existed)
		return err
	}

	if err := os.WriteFile(filepath.Join(r.dir, filename), content, 0600); err != nil {
		r.forget(path, existed)
		return fmt.Errorf("failed to write content to disk: %w: %w", kerrors.ErrIO, err)
	}

	return nil
}

// Get returns the content stored for path.
func (r *Repository) Get(path string) ([]byte, error) {
	filename, ok := r.mapper.Find(path)
	if !ok {
		return nil, fmt.Errorf("failed to find %q in index: %w", path, kerrors.ErrNotFound)
	}

	content, err := os.ReadFile(filepath.Join(r.dir, filename))
	if err != nil {
		return nil, fmt.Errorf("failed to read file content: %w: %w", kerrors.ErrIO, err)
	}

	return content, nil
}

// Delete removes path from the index and its file from disk. If the file
// cannot be removed the index entry stays removed and ErrIO is returned.
func (r *Repository) Delete(path string) error {
	filename, ok := r.mapper.Find(path)
	if !ok {
		return fmt.Errorf("failed to find %q in index: %w", path, kerrors.ErrNotFound)
	}

	r.mapper.Remove(path)

	if err := os.Remove(filepath.Join(r.dir, filename)); err != nil {
		return fmt.Errorf("failed to remove file: %w: %w", kerrors.ErrIO, err)
	}

	return nil
}

// List returns the immediate children of path. ok is false if path is not
// a node in the index.
func (r *Repository) List(path string) (children []string, ok bool) {
	return r.mapper.ListChildren(path)
}

// Lookup describes the node at path, including whether it holds a secret.
func (r *Repository) Lookup(path string) (pathmap.Listing, bool) {
	return r.mapper.Lookup(path)
}

// Paths returns every name that holds a secret, sorted.
func (r *Repository) Paths() []string {
	paths := make([]string, 0, r.mapper.Len())
	_ = r.mapper.Walk(func(segments []string, _ string) error {
		paths = append(paths, pathmap.Join(segments))
		return nil
	})
	return paths
}

// Len returns the number of stored secrets.
func (r *Repository) Len() int {
	return r.mapper.Len()
}

func (r *Repository) ensureDir() error {
	info, err := os.Stat(r.dir)
	switch {
	case err == nil && !info.IsDir():
		return fmt.Errorf("repository path '%s' already exists and isn't a directory: %w", r.dir, kerrors.ErrNotADirectory)
	case err == nil:
		return nil
	case !errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("failed to check repository path: %w: %w", kerrors.ErrIO, err)
	}

	if err := os.MkdirAll(r.dir, 0700); err != nil {
		return fmt.Errorf("failed to create repository path: %w: %w", kerrors.ErrIO, err)
	}
	return nil
}

// forget undoes a fresh allocation after a failed write, including any
// namespaces the allocation created. A path that was already mapped keeps its
// filename.
func (r *Repository) forget(path string, existed bool) {
	if !existed {
		r.mapper.Forget(path)
	}
}
