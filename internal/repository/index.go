package repository

import (
	"encoding/json"
	"fmt"

	kerrors "github.com/kyrias/mine/internal/errors"
	"github.com/kyrias/mine/internal/pathmap"
)

// indexVersion is bumped whenever the index layout changes.
const indexVersion = 1

type index struct {
	Version int          `json:"version"`
	Entries []indexEntry `json:"entries"`
}

type indexEntry struct {
	Path []string `json:"path"`
	File string   `json:"file"`
}

func encodeIndex(m *pathmap.Mapper) ([]byte, error) {
	idx := index{
		Version: indexVersion,
		Entries: make([]indexEntry, 0, m.Len()),
	}
	err := m.Walk(func(segments []string, filename string) error {
		idx.Entries = append(idx.Entries, indexEntry{
			Path: append([]string(nil), segments...),
			File: filename,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(idx)
	if err != nil {
		return nil, fmt.Errorf("failed to encode index: %w: %w", kerrors.ErrSerialization, err)
	}
	return data, nil
}

func decodeIndex(data []byte) (*pathmap.Mapper, error) {
	var idx index
	if err := json.Unmarshal(data, &idx); err != nil {
		return nil, fmt.Errorf("failed to decode index: %w: %w", kerrors.ErrSerialization, err)
	}
	if idx.Version != indexVersion {
		return nil, fmt.Errorf("failed to decode index: %w: unsupported version %d",
			kerrors.ErrSerialization, idx.Version)
	}

	m := pathmap.New()
	for _, e := range idx.Entries {
		if len(e.Path) == 0 {
			return nil, fmt.Errorf("failed to decode index: %w: entry without a path",
				kerrors.ErrSerialization)
		}
		if err := m.Associate(e.Path, e.File); err != nil {
			return nil, fmt.Errorf("failed to decode index: %w: %w", kerrors.ErrSerialization, err)
		}
	}

	return m, nil
}
