package pathmap

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode/utf8"
)

// Separator splits a name into segments.
const Separator = "/"

var (
	// ErrInvalidSegment indicates an empty segment, one containing the
	// separator, or one that is not valid UTF-8.
	ErrInvalidSegment = errors.New("invalid path segment")

	// ErrInvalidIdentifier indicates an identifier outside the identifier alphabet.
	ErrInvalidIdentifier = errors.New("invalid identifier")

	// ErrDuplicatePath indicates the path already holds an identifier.
	ErrDuplicatePath = errors.New("path is already mapped")

	// ErrDuplicateIdentifier indicates the identifier is already used by another path.
	ErrDuplicateIdentifier = errors.New("identifier is already in use")
)

type node struct {
	filename string
	hasValue bool
	children map[string]*node
}

func newNode() *node {
	return &node{children: make(map[string]*node)}
}

// Listing describes a single trie node.
type Listing struct {
	// HasValue is true when the node itself is mapped to an identifier.
	HasValue bool

	// Filename is the identifier when HasValue is true.
	Filename string

	// Children holds the names of the immediate child segments, sorted.
	Children []string
}

// Mapper is the trie from segment sequences to identifiers.
// It is not safe for concurrent use.
type Mapper struct {
	root  *node
	inUse map[string]struct{}
	rand  io.Reader
}

// New returns an empty Mapper that draws identifiers from crypto/rand.
func New() *Mapper {
	return &Mapper{
		root:  newNode(),
		inUse: make(map[string]struct{}),
	}
}

// Split turns a name into its segments.
func Split(path string) []string {
	parts := strings.Split(path, Separator)
	segments := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			segments = append(segments, p)
		}
	}
	return segments
}

// Join is the inverse of Split for valid segments.
func Join(segments []string) string {
	return strings.Join(segments, Separator)
}

// Insert returns the identifier for path, allocating one if the path is not
// mapped yet. An existing identifier is returned unchanged.
func (m *Mapper) Insert(path string) (string, error) {
	segments := Split(path)
	if err := checkSegments(segments); err != nil {
		return "", err
	}
	if n := m.get(segments); n != nil && n.hasValue {
		return n.filename, nil
	}

	filename, err := m.unusedIdentifier()
	if err != nil {
		return "", fmt.Errorf("failed to generate identifier: %w", err)
	}

	n := m.ensure(segments)
	n.filename = filename
	n.hasValue = true
	m.inUse[filename] = struct{}{}

	return filename, nil
}

// Associate maps segments to an existing identifier. It is used when
// restoring an index and rejects anything Insert could never have produced.
func (m *Mapper) Associate(segments []string, filename string) error {
	if err := checkSegments(segments); err != nil {
		return err
	}
	if !IsIdentifier(filename) {
		return fmt.Errorf("%w: %q", ErrInvalidIdentifier, filename)
	}
	if _, taken := m.inUse[filename]; taken {
		return fmt.Errorf("%w: %s", ErrDuplicateIdentifier, Join(segments))
	}
	if n := m.get(segments); n != nil && n.hasValue {
		return fmt.Errorf("%w: %s", ErrDuplicatePath, Join(segments))
	}

	n := m.ensure(segments)
	n.filename = filename
	n.hasValue = true
	m.inUse[filename] = struct{}{}

	return nil
}

// Remove drops the identifier mapped at path. Descendants keep their
// identifiers. A node left with neither identifier nor children is detached
// from its parent; ancestors are left in place.
func (m *Mapper) Remove(path string) {
	segments := Split(path)

	parent := m.root
	n := m.root
	for _, s := range segments {
		child, ok := n.children[s]
		if !ok {
			return
		}
		parent, n = n, child
	}
	if !n.hasValue {
		return
	}

	delete(m.inUse, n.filename)
	n.filename = ""
	n.hasValue = false

	if len(segments) > 0 && len(n.children) == 0 {
		delete(parent.children, segments[len(segments)-1])
	}
}

// Forget drops the identifier mapped at path and detaches every node on the
// way up that is left with neither identifier nor children.
func (m *Mapper) Forget(path string) {
	segments := Split(path)

	trail := make([]*node, 0, len(segments)+1)
	n := m.root
	trail = append(trail, n)
	for _, s := range segments {
		child, ok := n.children[s]
		if !ok {
			return
		}
		n = child
		trail = append(trail, n)
	}
	if !n.hasValue {
		return
	}

	delete(m.inUse, n.filename)
	n.filename = ""
	n.hasValue = false

	for i := len(segments); i > 0; i-- {
		if trail[i].hasValue || len(trail[i].children) > 0 {
			return
		}
		delete(trail[i-1].children, segments[i-1])
	}
}

// Find returns the identifier mapped at exactly path.
func (m *Mapper) Find(path string) (string, bool) {
	n := m.get(Split(path))
	if n == nil || !n.hasValue {
		return "", false
	}
	return n.filename, true
}

// ListChildren returns the sorted names of the immediate children of path.
// ok is false when path has no node; an existing leaf yields an empty, non-nil slice.
func (m *Mapper) ListChildren(path string) (children []string, ok bool) {
	n := m.get(Split(path))
	if n == nil {
		return nil, false
	}
	return sortedKeys(n.children), true
}

// Lookup describes the node at path.
func (m *Mapper) Lookup(path string) (Listing, bool) {
	n := m.get(Split(path))
	if n == nil {
		return Listing{}, false
	}
	return Listing{
		HasValue: n.hasValue,
		Filename: n.filename,
		Children: sortedKeys(n.children),
	}, true
}

// Walk calls fn for every association in lexical segment order.
// The segments slice is only valid for the duration of the call.
func (m *Mapper) Walk(fn func(segments []string, filename string) error) error {
	return walk(m.root, nil, fn)
}

// Len returns the number of associations.
func (m *Mapper) Len() int {
	return len(m.inUse)
}

func walk(n *node, prefix []string, fn func([]string, string) error) error {
	if n.hasValue {
		if err := fn(prefix, n.filename); err != nil {
			return err
		}
	}
	for _, name := range sortedKeys(n.children) {
		if err := walk(n.children[name], append(prefix, name), fn); err != nil {
			return err
		}
	}
	return nil
}

func checkSegments(segments []string) error {
	for _, s := range segments {
		if s == "" || strings.Contains(s, Separator) || !utf8.ValidString(s) {
			return fmt.Errorf("%w: %q", ErrInvalidSegment, s)
		}
	}
	return nil
}

func (m *Mapper) get(segments []string) *node {
	n := m.root
	for _, s := range segments {
		child, ok := n.children[s]
		if !ok {
			return nil
		}
		n = child
	}
	return n
}

func (m *Mapper) ensure(segments []string) *node {
	n := m.root
	for _, s := range segments {
		child, ok := n.children[s]
		if !ok {
			child = newNode()
			n.children[s] = child
		}
		n = child
	}
	return n
}

func (m *Mapper) unusedIdentifier() (string, error) {
	for {
		id, err := NewIdentifier(m.rand, IdentifierLength)
		if err != nil {
			return "", err
		}
		if _, taken := m.inUse[id]; !taken {
			return id, nil
		}
	}
}

func sortedKeys(children map[string]*node) []string {
	keys := make([]string, 0, len(children))
	for k := range children {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
