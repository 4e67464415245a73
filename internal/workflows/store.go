package workflows

import (
	"context"
	"errors"
	"fmt"

	"github.com/kyrias/mine/internal/audit"
	"github.com/kyrias/mine/internal/configs"
	"github.com/kyrias/mine/internal/entry"
	kerrors "github.com/kyrias/mine/internal/errors"
	"github.com/kyrias/mine/internal/keystore"
	logger "github.com/kyrias/mine/internal/logging"
	"github.com/kyrias/mine/internal/repository"
)

// Common holds options shared by every workflow.
type Common struct {
	// Settings locate the store. Nil means configs.Load().
	Settings *configs.Settings

	// Log receives warnings such as a failed audit write.
	Log logger.Logger
}

func (c Common) settings() (*configs.Settings, error) {
	if c.Settings != nil {
		return c.Settings, nil
	}
	settings, err := configs.Load()
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}
	return settings, nil
}

// store bundles an opened store.
type store struct {
	settings  *configs.Settings
	keys      *keystore.KeyStore
	repo      *repository.Repository
	storeUUID string
	log       logger.Logger
}

func openStore(ctx context.Context, c Common) (*store, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	settings, err := c.settings()
	if err != nil {
		return nil, err
	}

	keys := keystore.New()
	if err := keys.Load(settings.KeyPath); err != nil {
		if errors.Is(err, kerrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: no key at %s", kerrors.ErrStoreNotInitialized, settings.KeyPath)
		}
		return nil, fmt.Errorf("loading secret key: %w", err)
	}
	c.Log.Debugf("Loaded secret key from %s", settings.KeyPath)

	repo, err := repository.Load(settings.RepositoryBase, settings.IndexPath)
	if err != nil {
		return nil, fmt.Errorf("loading repository: %w", err)
	}
	c.Log.Debugf("Loaded index with %d entries", repo.Len())

	s := &store{
		settings: settings,
		keys:     keys,
		repo:     repo,
		log:      c.Log,
	}

	meta, err := configs.LoadStoreMeta(settings.StorePath)
	switch {
	case err == nil:
		s.storeUUID = meta.Store.UUID
	case errors.Is(err, kerrors.ErrNotFound):
		c.Log.Debugf("No store metadata at %s", settings.StorePath)
	default:
		c.Log.Warnf("Could not read store metadata: %v", err)
	}

	return s, nil
}

// readEntry loads, decrypts and decodes the entry stored under name.
func (s *store) readEntry(name string) (*entry.Entry, error) {
	data, err := s.repo.Get(name)
	if err != nil {
		return nil, err
	}

	enc, err := keystore.UnmarshalEncrypted(data)
	if err != nil {
		return nil, fmt.Errorf("reading secret file: %w", err)
	}

	plaintext, err := s.keys.Decrypt(enc)
	if err != nil {
		return nil, fmt.Errorf("decrypting secret: %w", err)
	}

	e, err := entry.Decode(plaintext)
	if err != nil {
		return nil, fmt.Errorf("decoding secret: %w", err)
	}
	return e, nil
}

// writeEntry encodes, encrypts and stores e under name, then saves the index.
func (s *store) writeEntry(name string, e *entry.Entry) error {
	plaintext, err := e.Encode()
	if err != nil {
		return fmt.Errorf("encoding secret: %w", err)
	}

	enc, err := s.keys.Encrypt(plaintext)
	if err != nil {
		return fmt.Errorf("encrypting secret: %w", err)
	}

	data, err := keystore.MarshalEncrypted(enc)
	if err != nil {
		return fmt.Errorf("encoding secret file: %w", err)
	}

	if err := s.repo.Insert(name, data); err != nil {
		return err
	}

	return s.saveIndex()
}

func (s *store) saveIndex() error {
	if err := repository.SaveIndex(s.repo, s.settings.IndexPath); err != nil {
		return fmt.Errorf("saving index: %w", err)
	}
	s.log.Debugf("Saved index with %d entries", s.repo.Len())
	return nil
}

// record appends to the audit log. Failures are logged, never returned.
func (s *store) record(e audit.Entry) {
	recordAudit(s.settings, s.log, e)
}

func recordAudit(settings *configs.Settings, log logger.Logger, e audit.Entry) {
	if !settings.Audit {
		return
	}
	if err := audit.Log(settings.AuditPath, e); err != nil {
		log.Warnf("Could not write audit log: %v", err)
	}
}
