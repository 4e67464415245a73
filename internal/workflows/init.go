package workflows

import (
	"context"
	"fmt"

	"github.com/kyrias/mine/internal/audit"
	"github.com/kyrias/mine/internal/configs"
	kerrors "github.com/kyrias/mine/internal/errors"
	"github.com/kyrias/mine/internal/keystore"
	"github.com/kyrias/mine/internal/repository"
)

// InitOptions configures the init workflow.
type InitOptions struct {
	Common
}

// InitResult contains the outcome of an init operation.
type InitResult struct {
	// DataDir is the directory holding the store.
	DataDir string

	// KeyPath is where the secret key was written.
	KeyPath string

	// StoreUUID is the unique identifier assigned to the store.
	StoreUUID string

	// IndexCreated is false when an existing index was kept.
	IndexCreated bool
}

// Init generates a secret key and lays out an empty store.
//
// The key is written last, so a store counts as initialized only once every
// other file is in place.
//
// Returns ErrAlreadyExists if the key file already exists.
func Init(ctx context.Context, opts InitOptions) (*InitResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	settings, err := opts.settings()
	if err != nil {
		return nil, err
	}
	log := opts.Log

	keyExists, err := configs.Exists(settings.KeyPath)
	if err != nil {
		return nil, err
	}
	if keyExists {
		return nil, fmt.Errorf("secret key %s: %w", settings.KeyPath, kerrors.ErrAlreadyExists)
	}

	keys := keystore.New()
	if err := keys.Generate(); err != nil {
		return nil, fmt.Errorf("generating secret key: %w", err)
	}
	log.Debugf("Generated secret key")

	repo, err := repository.New(settings.RepositoryBase)
	if err != nil {
		return nil, fmt.Errorf("creating repository: %w", err)
	}
	log.Infof("Repository directory is %s", repo.Dir())

	indexExists, err := configs.Exists(settings.IndexPath)
	if err != nil {
		return nil, err
	}
	if !indexExists {
		if err := repository.SaveIndex(repo, settings.IndexPath); err != nil {
			return nil, fmt.Errorf("saving index: %w", err)
		}
		log.Infof("Wrote empty index to %s", settings.IndexPath)
	} else {
		log.Warnf("Keeping existing index at %s", settings.IndexPath)
	}

	meta := configs.NewStoreMeta()
	if err := configs.SaveStoreMeta(settings.StorePath, meta); err != nil {
		return nil, err
	}

	if err := keys.Save(settings.KeyPath); err != nil {
		return nil, fmt.Errorf("saving secret key: %w", err)
	}
	log.Infof("Wrote secret key to %s", settings.KeyPath)

	recordAudit(settings, log, audit.NewEntry(audit.OpInit, meta.Store.UUID))

	return &InitResult{
		DataDir:      settings.DataDir,
		KeyPath:      settings.KeyPath,
		StoreUUID:    meta.Store.UUID,
		IndexCreated: !indexExists,
	}, nil
}
