package configs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/google/uuid"
	kerrors "github.com/kyrias/mine/internal/errors"
)

// StoreMeta identifies a store. It is written once by init.
type StoreMeta struct {
	Store StoreInfo `toml:"store"`
}

// StoreInfo carries the store identity.
type StoreInfo struct {
	UUID      string    `toml:"store_uuid"`
	CreatedAt time.Time `toml:"created_at"`
}

// NewStoreMeta returns metadata for a store created now.
func NewStoreMeta() *StoreMeta {
	return &StoreMeta{
		Store: StoreInfo{
			UUID:      GenerateStoreUUID(),
			CreatedAt: time.Now().UTC(),
		},
	}
}

// GenerateStoreUUID generates a new UUID for a store.
func GenerateStoreUUID() string {
	return uuid.New().String()
}

// LoadStoreMeta reads the store metadata at path.
func LoadStoreMeta(path string) (*StoreMeta, error) {
	meta := &StoreMeta{}
	if err := LoadTOML(path, meta); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to find store metadata %s: %w", path, kerrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load store metadata %s: %w: %w", path, kerrors.ErrSerialization, err)
	}
	return meta, nil
}

// SaveStoreMeta writes the store metadata to path.
func SaveStoreMeta(path string, meta *StoreMeta) error {
	if err := SaveTOML(path, meta); err != nil {
		return fmt.Errorf("failed to save store metadata %s: %w: %w", path, kerrors.ErrIO, err)
	}
	return nil
}

// Exists reports whether path exists.
func Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, fmt.Errorf("failed to check %s: %w: %w", path, kerrors.ErrIO, err)
	}
}
