package keystore

import (
	"fmt"

	kerrors "github.com/kyrias/mine/internal/errors"
	"github.com/vmihailenco/msgpack/v5"
)

type wireEncrypted struct {
	Nonce      []byte `msgpack:"nonce"`
	Ciphertext []byte `msgpack:"ciphertext"`
}

// MarshalEncrypted encodes a payload for storage in a secret file.
func MarshalEncrypted(enc *Encrypted) ([]byte, error) {
	data, err := msgpack.Marshal(wireEncrypted{
		Nonce:      enc.Nonce[:],
		Ciphertext: enc.Ciphertext,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode secret: %w: %w", kerrors.ErrSerialization, err)
	}
	return data, nil
}

// UnmarshalEncrypted decodes a secret file.
func UnmarshalEncrypted(data []byte) (*Encrypted, error) {
	var w wireEncrypted
	if err := msgpack.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("failed to decode secret: %w: %w", kerrors.ErrSerialization, err)
	}
	if len(w.Nonce) != NonceSize {
		return nil, fmt.Errorf("failed to decode secret: %w: nonce is %d bytes, want %d",
			kerrors.ErrSerialization, len(w.Nonce), NonceSize)
	}
	if len(w.Ciphertext) < Overhead {
		return nil, fmt.Errorf("failed to decode secret: %w: ciphertext shorter than authentication tag",
			kerrors.ErrSerialization)
	}

	enc := &Encrypted{Ciphertext: w.Ciphertext}
	copy(enc.Nonce[:], w.Nonce)
	return enc, nil
}
