package configs

import (
	"fmt"
	"os"
	"path/filepath"
)

// Settings are the resolved, absolute locations of a store.
type Settings struct {
	ConfigDir      string
	ConfigPath     string
	DataDir        string
	KeyPath        string
	IndexPath      string
	RepositoryBase string
	StorePath      string
	AuditPath      string
	Audit          bool
}

// Load resolves Settings from the environment, the config file and defaults.
func Load() (*Settings, error) {
	configDir, err := defaultConfigDir()
	if err != nil {
		return nil, err
	}

	configPath := os.Getenv("MINE_CONFIG")
	if configPath == "" {
		configPath = filepath.Join(configDir, ConfigFileName)
	}

	envCfg, err := parseEnv()
	if err != nil {
		return nil, err
	}
	fileCfg, err := LoadConfigFile(configPath)
	if err != nil {
		return nil, err
	}
	defaults, err := defaultConfig()
	if err != nil {
		return nil, err
	}

	cfg, err := merge(envCfg, fileCfg, defaults)
	if err != nil {
		return nil, err
	}

	s := Resolve(cfg)
	s.ConfigDir = configDir
	s.ConfigPath = configPath
	return s, nil
}

// Resolve turns a merged Config into Settings.
func Resolve(cfg *Config) *Settings {
	dataDir := cfg.Store.DataDir
	return &Settings{
		DataDir:        dataDir,
		KeyPath:        resolveIn(dataDir, cfg.Store.KeyFile),
		IndexPath:      resolveIn(dataDir, cfg.Store.IndexFile),
		RepositoryBase: dataDir,
		StorePath:      filepath.Join(dataDir, StoreFileName),
		AuditPath:      filepath.Join(dataDir, AuditFileName),
		Audit:          cfg.Store.AuditEnabled(),
	}
}

func resolveIn(dir, name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(dir, name)
}

func defaultDataDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("error getting home directory: %w", err)
		}
		dataHome = filepath.Join(homeDir, ".local", "share")
	}
	return filepath.Join(dataHome, AppName), nil
}

func defaultConfigDir() (string, error) {
	configHome, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("error getting config directory: %w", err)
	}
	return filepath.Join(configHome, AppName), nil
}
