// Package configs resolves where a mine store lives and how it behaves.
//
// # Directories
//
// Directories follow the XDG base directory layout:
//
//   - Data: $XDG_DATA_HOME/mine (default ~/.local/share/mine)
//   - Config: $XDG_CONFIG_HOME/mine (os.UserConfigDir)
//
// The data directory holds the whole store:
//
//	secret_key     the symmetric key
//	index          the name -> filename index
//	repository/    one encrypted file per secret
//	store.toml     store identity (UUID, creation time)
//	audit.jsonl    operation log
//
// # Configuration Sources
//
// Settings are merged from three sources, highest precedence first:
//
//  1. Environment: MINE_DATA_DIR, MINE_INDEX_FILE, MINE_KEY_FILE, MINE_DISABLE_AUDIT
//  2. File: config.toml in the config directory (or $MINE_CONFIG)
//  3. Defaults
//
// Relative index and key paths are resolved against the data directory.
package configs
