// Package store provides a simple tree-structured file store. Keys are
// slash-separated relative paths, so a store looks like a directory tree
// of files. This is the boundary mcpack uses to read and write data
// packs, letting the same dump/load code target a real directory, an
// in-memory tree, or an S3 bucket.
//
// Probably the most important implementation is the FileSystem. The
// others are useful for testing or other specialized situations.
package store

import (
	"errors"
	"io"
)

var (
	// ErrNotExist means the given key has no file in the store.
	ErrNotExist = errors.New("key does not exist")
)

// Store is a tree of files addressed by slash-separated relative paths.
// An empty prefix refers to the root of the tree. Directories exist only
// as containers for files; implementations are not required to track
// empty directories.
type Store interface {
	// Create makes a new file under key and returns a writer for its
	// content, creating intermediate directories as needed. An existing
	// file under the same key is replaced.
	Create(key string) (io.WriteCloser, error)

	// Open returns a reader for the file under key. It returns an error
	// matching ErrNotExist if there is no such file.
	Open(key string) (io.ReadCloser, error)

	// List returns the key of every file at or below prefix. A prefix
	// naming no directory yields an empty list, not an error.
	List(prefix string) ([]string, error)

	// SubDirs returns the names of the immediate child directories of
	// prefix, sorted. A prefix naming no directory yields an empty list.
	SubDirs(prefix string) ([]string, error)

	// DirExists reports whether prefix names a directory in the store.
	DirExists(prefix string) (bool, error)

	// RemoveAll deletes the directory named by prefix and everything
	// below it. Removing an absent prefix is not an error.
	RemoveAll(prefix string) error
}
