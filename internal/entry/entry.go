// Package entry holds the decrypted content of one stored secret.
//
// An Entry is a set of tags, each a name mapped to a value. The primary
// secret lives under PasswordTag; any other tag (a username, a note, a URL)
// may be set next to it. Entries are encoded with MessagePack before
// encryption.
package entry

import (
	"bytes"
	"fmt"
	"sort"

	kerrors "github.com/kyrias/mine/internal/errors"
	"github.com/vmihailenco/msgpack/v5"
)

// PasswordTag is the tag that holds the primary secret.
const PasswordTag = "password"

// Entry maps tag names to values.
type Entry struct {
	tags map[string]string
}

type wireEntry struct {
	Tags map[string]string `msgpack:"tags"`
}

// New returns an Entry with no tags.
func New() *Entry {
	return &Entry{tags: make(map[string]string)}
}

// WithPassword returns an Entry holding only the primary secret.
func WithPassword(secret string) *Entry {
	e := New()
	e.tags[PasswordTag] = secret
	return e
}

// Set inserts or replaces a tag.
func (e *Entry) Set(tag, value string) error {
	if tag == "" {
		return kerrors.ErrInvalidTag
	}
	e.tags[tag] = value
	return nil
}

// Get returns the value of tag.
func (e *Entry) Get(tag string) (string, bool) {
	v, ok := e.tags[tag]
	return v, ok
}

// Password returns the primary secret.
func (e *Entry) Password() (string, bool) {
	return e.Get(PasswordTag)
}

// Delete removes a tag. Removing an absent tag is a no-op.
func (e *Entry) Delete(tag string) {
	delete(e.tags, tag)
}

// Tags returns all tag names in sorted order.
func (e *Entry) Tags() []string {
	names := make([]string, 0, len(e.tags))
	for name := range e.tags {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of tags.
func (e *Entry) Len() int {
	return len(e.tags)
}

// Encode serializes the entry. Map keys are written in sorted order so equal
// entries encode to equal bytes.
func (e *Entry) Encode() ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetSortMapKeys(true)
	if err := enc.Encode(wireEntry{Tags: e.tags}); err != nil {
		return nil, fmt.Errorf("failed to encode entry: %w: %w", kerrors.ErrSerialization, err)
	}
	return buf.Bytes(), nil
}

// Decode parses bytes produced by Encode.
func Decode(data []byte) (*Entry, error) {
	var w wireEntry
	if err := msgpack.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("failed to decode entry: %w: %w", kerrors.ErrSerialization, err)
	}
	if w.Tags == nil {
		w.Tags = make(map[string]string)
	}
	if _, empty := w.Tags[""]; empty {
		return nil, fmt.Errorf("failed to decode entry: %w: %w", kerrors.ErrSerialization, kerrors.ErrInvalidTag)
	}
	return &Entry{tags: w.Tags}, nil
}
