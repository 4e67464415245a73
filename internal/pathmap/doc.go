// Package pathmap maps hierarchical secret names to opaque on-disk identifiers.
//
// A name such as "alice/email" is split on "/" into the segments
// ["alice", "email"]. Empty segments are dropped, so leading, trailing and
// repeated separators are ignored. Segments compare as exact, case-sensitive
// strings.
//
// The Mapper is a trie keyed by segments. A node may carry an identifier and
// children at the same time; Lookup reports both so callers can tell a secret
// from a directory-like prefix.
//
// Identifiers are IdentifierLength characters drawn with crypto/rand from an
// alphanumeric alphabet, and are unique among the live associations of one
// Mapper. They reveal nothing about the name they stand for.
package pathmap
