package store

import (
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FileSystem implements a Store backed by a directory on disk. Keys map
// directly to file paths under the root, so a dumped data pack is
// readable and editable with ordinary tools.
type FileSystem struct {
	root string
}

var (
	// make sure it implements the Store interface
	_ Store = &FileSystem{}
)

// NewFileSystem creates a new FileSystem store based at the given root
// path. The root directory does not need to exist yet; it is created on
// the first Create call.
func NewFileSystem(root string) *FileSystem {
	return &FileSystem{root: root}
}

// resolve turns a slash-separated key into a path under the root.
func (s *FileSystem) resolve(key string) string {
	return filepath.Join(s.root, filepath.FromSlash(key))
}

// Create makes the file for key, along with any missing parent
// directories, and returns a writer for its content.
func (s *FileSystem) Create(key string) (io.WriteCloser, error) {
	fname := s.resolve(key)
	err := os.MkdirAll(filepath.Dir(fname), 0775)
	if err != nil {
		return nil, err
	}
	return os.Create(fname)
}

// Open returns a reader for the file under key.
func (s *FileSystem) Open(key string) (io.ReadCloser, error) {
	f, err := os.Open(s.resolve(key))
	if os.IsNotExist(err) {
		return nil, ErrNotExist
	}
	return f, err
}

// List walks the tree under prefix and returns the key of every file
// found. Keys are relative to the store root, in sorted order.
func (s *FileSystem) List(prefix string) ([]string, error) {
	var result []string
	base := s.resolve(prefix)
	info, err := os.Stat(base)
	if os.IsNotExist(err) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, nil
	}
	err = filepath.Walk(base, func(p string, fi os.FileInfo, err error) error {
		if err != nil || fi.IsDir() {
			return err
		}
		rel, err := filepath.Rel(s.root, p)
		if err != nil {
			return err
		}
		result = append(result, filepath.ToSlash(rel))
		return nil
	})
	sort.Strings(result)
	return result, err
}

// SubDirs returns the names of the immediate child directories of prefix.
func (s *FileSystem) SubDirs(prefix string) ([]string, error) {
	entries, err := os.ReadDir(s.resolve(prefix))
	if os.IsNotExist(err) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	var result []string
	for _, e := range entries {
		if e.IsDir() {
			result = append(result, e.Name())
		}
	}
	sort.Strings(result)
	return result, nil
}

// DirExists reports whether prefix names a directory under the root.
func (s *FileSystem) DirExists(prefix string) (bool, error) {
	info, err := os.Stat(s.resolve(prefix))
	if os.IsNotExist(err) {
		return false, nil
	} else if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}

// RemoveAll deletes the tree under prefix.
func (s *FileSystem) RemoveAll(prefix string) error {
	if strings.TrimLeft(prefix, "/.") == "" {
		// refuse to wipe the whole root through an empty prefix
		return os.ErrInvalid
	}
	return os.RemoveAll(s.resolve(prefix))
}
