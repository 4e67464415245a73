// Package repository stores opaque blobs under unguessable filenames.
//
// A Repository owns a directory, <base>/repository, and a pathmap.Mapper
// that resolves secret names to filenames inside it. Browsing the directory
// shows only random identifiers; the names live in the index, which is
// persisted separately with SaveIndex and restored with Load.
//
// # Persistence
//
// Insert and Delete change the in-memory index and the blob on disk, but the
// index file is only rewritten when the caller runs SaveIndex. The two steps
// are not atomic:
//
//   - A crash after Insert writes a new blob but before SaveIndex leaves an
//     orphan: a file nobody can reach. It is harmless and shows up in Check.
//   - An index that names a file which is missing (restored from an older
//     copy of the directory, or a blob removed by hand) is a dangling entry.
//     Get on it fails with ErrIO, and Check reports it.
//
// Nothing is repaired automatically.
//
// # Concurrency
//
// A Repository is not safe for concurrent use, and nothing coordinates two
// processes sharing a base directory. Each loads the index, mutates its own
// copy, and the last SaveIndex wins; the other process's index changes are
// lost. Writes to different filenames never conflict, writes to the same
// filename are last-writer-wins.
package repository
