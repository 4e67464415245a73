package repository

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	kerrors "github.com/kyrias/mine/internal/errors"
	"github.com/kyrias/mine/internal/pathmap"
)

// Report lists disagreements between the index and the blob directory.
type Report struct {
	// Orphans are files in the blob directory that no index entry names.
	Orphans []string

	// Dangling are names whose file is missing from the blob directory.
	Dangling []string

	// Checked is the number of index entries examined.
	Checked int
}

// Consistent reports whether the index and the directory agree.
func (rep *Report) Consistent() bool {
	return len(rep.Orphans) == 0 && len(rep.Dangling) == 0
}

// Check compares the index with the blob directory. It only reports.
func (r *Repository) Check() (*Report, error) {
	rep := &Report{}
	indexed := make(map[string]struct{}, r.mapper.Len())

	err := r.mapper.Walk(func(segments []string, filename string) error {
		rep.Checked++
		indexed[filename] = struct{}{}

		_, err := os.Stat(filepath.Join(r.dir, filename))
		switch {
		case err == nil:
		case errors.Is(err, fs.ErrNotExist):
			rep.Dangling = append(rep.Dangling, pathmap.Join(segments))
		default:
			return fmt.Errorf("failed to stat %s: %w: %w", pathmap.Join(segments), kerrors.ErrIO, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(r.dir)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read repository directory: %w: %w", kerrors.ErrIO, err)
	}
	for _, e := range entries {
		if _, ok := indexed[e.Name()]; !ok {
			rep.Orphans = append(rep.Orphans, e.Name())
		}
	}
	sort.Strings(rep.Orphans)

	return rep, nil
}
