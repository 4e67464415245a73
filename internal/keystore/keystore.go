package keystore

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	kerrors "github.com/kyrias/mine/internal/errors"
	"github.com/vmihailenco/msgpack/v5"
	"golang.org/x/crypto/nacl/secretbox"
)

const (
	// KeySize is the length of the symmetric key in bytes.
	KeySize = 32

	// NonceSize is the length of a nonce in bytes.
	NonceSize = 24

	// Overhead is the number of bytes encryption adds to a plaintext.
	Overhead = secretbox.Overhead
)

// Encrypted is one sealed payload.
type Encrypted struct {
	Nonce      [NonceSize]byte
	Ciphertext []byte
}

type keyFile struct {
	Key []byte `msgpack:"key"`
}

// KeyStore holds at most one key. The zero value holds none.
type KeyStore struct {
	key  *[KeySize]byte
	rand io.Reader
}

// New returns an empty KeyStore.
func New() *KeyStore {
	return &KeyStore{rand: rand.Reader}
}

// HasKey reports whether a key has been generated or loaded.
func (k *KeyStore) HasKey() bool {
	return k.key != nil
}

// Generate creates a fresh random key. It refuses to replace a key the
// KeyStore already holds.
func (k *KeyStore) Generate() error {
	if k.key != nil {
		return fmt.Errorf("failed to generate key: %w: key store already holds a key", kerrors.ErrAlreadyExists)
	}

	var key [KeySize]byte
	if _, err := io.ReadFull(k.random(), key[:]); err != nil {
		return fmt.Errorf("failed to generate key: %w", err)
	}
	k.key = &key

	return nil
}

// Save writes the key to path, creating parent directories with 0700.
func (k *KeyStore) Save(path string) error {
	if k.key == nil {
		return fmt.Errorf("failed to save key: %w", kerrors.ErrNoKey)
	}

	data, err := msgpack.Marshal(keyFile{Key: k.key[:]})
	if err != nil {
		return fmt.Errorf("failed to encode key: %w: %w", kerrors.ErrSerialization, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create key directory: %w: %w", kerrors.ErrIO, err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write key file %s: %w: %w", path, kerrors.ErrIO, err)
	}

	return nil
}

// Load reads the key at path into the KeyStore, replacing any key it held.
func (k *KeyStore) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to find key file %s: %w", path, kerrors.ErrNotFound)
		}
		return fmt.Errorf("failed to read key file %s: %w: %w", path, kerrors.ErrIO, err)
	}

	var kf keyFile
	if err := msgpack.Unmarshal(data, &kf); err != nil {
		return fmt.Errorf("failed to decode key file %s: %w: %w", path, kerrors.ErrSerialization, err)
	}
	if len(kf.Key) != KeySize {
		return fmt.Errorf("failed to decode key file %s: %w: %w: got %d bytes", path,
			kerrors.ErrSerialization, kerrors.ErrInvalidKeyLength, len(kf.Key))
	}

	var key [KeySize]byte
	copy(key[:], kf.Key)
	k.key = &key

	return nil
}

// Encrypt seals plaintext under a nonce drawn fresh for this call.
func (k *KeyStore) Encrypt(plaintext []byte) (*Encrypted, error) {
	if k.key == nil {
		return nil, fmt.Errorf("failed to encrypt: %w", kerrors.ErrNoKey)
	}

	var nonce [NonceSize]byte
	if _, err := io.ReadFull(k.random(), nonce[:]); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	return k.seal(nonce, plaintext), nil
}

// Decrypt opens a payload sealed by Encrypt. It returns ErrAuthentication
// and no plaintext if the key, nonce or ciphertext do not match.
func (k *KeyStore) Decrypt(enc *Encrypted) ([]byte, error) {
	if k.key == nil {
		return nil, fmt.Errorf("failed to decrypt: %w", kerrors.ErrNoKey)
	}

	plaintext, ok := secretbox.Open(nil, enc.Ciphertext, &enc.Nonce, k.key)
	if !ok {
		return nil, fmt.Errorf("failed to decrypt: %w", kerrors.ErrAuthentication)
	}
	if plaintext == nil {
		plaintext = []byte{}
	}

	return plaintext, nil
}

func (k *KeyStore) seal(nonce [NonceSize]byte, plaintext []byte) *Encrypted {
	return &Encrypted{
		Nonce:      nonce,
		Ciphertext: secretbox.Seal(nil, plaintext, &nonce, k.key),
	}
}

func (k *KeyStore) random() io.Reader {
	if k.rand == nil {
		return rand.Reader
	}
	return k.rand
}
