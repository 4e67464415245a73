package configs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
	kerrors "github.com/kyrias/mine/internal/errors"
)

const (
	// AppName names the XDG subdirectories.
	AppName = "mine"

	// ConfigFileName is the name of the optional config file.
	ConfigFileName = "config.toml"

	DefaultKeyFile   = "secret_key"
	DefaultIndexFile = "index"
	StoreFileName    = "store.toml"
	AuditFileName    = "audit.jsonl"
)

// Config is the user-editable configuration.
type Config struct {
	Store StoreConfig `toml:"store" envPrefix:"MINE_"`
}

// StoreConfig locates the store files.
type StoreConfig struct {
	DataDir      string `toml:"data_dir" env:"DATA_DIR"`
	IndexFile    string `toml:"index_file" env:"INDEX_FILE"`
	KeyFile      string `toml:"key_file" env:"KEY_FILE"`
	DisableAudit *bool  `toml:"disable_audit" env:"DISABLE_AUDIT"`
}

// AuditEnabled reports whether audit logging is on. Unset means enabled.
func (c StoreConfig) AuditEnabled() bool {
	return c.DisableAudit == nil || !*c.DisableAudit
}

// LoadConfigFile reads a config file. A missing file yields an empty Config.
func LoadConfigFile(path string) (*Config, error) {
	cfg := &Config{}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err := LoadTOML(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w: %w", path, kerrors.ErrSerialization, err)
	}
	return cfg, nil
}

// SaveConfigFile writes cfg to path.
func SaveConfigFile(path string, cfg *Config) error {
	if err := SaveTOML(path, cfg); err != nil {
		return fmt.Errorf("failed to save config %s: %w: %w", path, kerrors.ErrIO, err)
	}
	return nil
}

// parseEnv populates a Config from MINE_* environment variables.
func parseEnv() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	return cfg, nil
}

// defaultConfig returns the configuration used when nothing is set.
func defaultConfig() (*Config, error) {
	dataDir, err := defaultDataDir()
	if err != nil {
		return nil, err
	}
	return &Config{
		Store: StoreConfig{
			DataDir:   dataDir,
			IndexFile: DefaultIndexFile,
			KeyFile:   DefaultKeyFile,
		},
	}, nil
}

// merge combines configs; earlier entries win over later ones. Pointer
// fields are compared by presence, so an explicit false still wins.
func merge(configs ...*Config) (*Config, error) {
	merged := &Config{}
	for _, cfg := range configs {
		if err := mergo.Merge(merged, cfg, mergo.WithoutDereference); err != nil {
			return nil, fmt.Errorf("failed to merge configs: %w", err)
		}
	}
	return merged, nil
}
