package pathmap

import (
	"crypto/rand"
	"fmt"
	"io"
	"strings"
)

// IdentifierLength is the number of characters in a generated identifier.
const IdentifierLength = 100

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// maxUnbiased is the largest multiple of len(alphabet) that fits in a byte.
// Bytes at or above it are rejected so every character is equally likely.
const maxUnbiased = 256 - 256%len(alphabet)

// NewIdentifier reads n random alphanumeric characters from r.
// Pass nil to use crypto/rand.
func NewIdentifier(r io.Reader, n int) (string, error) {
	if r == nil {
		r = rand.Reader
	}

	var b strings.Builder
	b.Grow(n)
	buf := make([]byte, n)
	for b.Len() < n {
		if _, err := io.ReadFull(r, buf); err != nil {
			return "", fmt.Errorf("failed to read random bytes: %w", err)
		}
		for _, c := range buf {
			if int(c) >= maxUnbiased {
				continue
			}
			b.WriteByte(alphabet[int(c)%len(alphabet)])
			if b.Len() == n {
				break
			}
		}
	}

	return b.String(), nil
}

// IsIdentifier reports whether s is non-empty and uses only identifier characters.
// Anything accepted here is safe to use as a single path element.
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(alphabet, s[i]) < 0 {
			return false
		}
	}
	return true
}
