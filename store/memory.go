package store

import (
	"bytes"
	"io"
	"sort"
	"strings"
	"sync"
)

// Memory implements a simple in-memory version of a store. It is
// intended mainly for testing. Directories are implied by the file keys,
// so an empty directory does not exist until a file is created under it.
type Memory struct {
	m     sync.RWMutex
	files map[string][]byte
}

var (
	// ensure Memory satisfies the Store interface
	_ Store = &Memory{}
)

// NewMemory returns a new, empty memory store.
func NewMemory() *Memory {
	return &Memory{files: make(map[string][]byte)}
}

// Create returns a writer whose content is saved under key when it is
// closed.
func (ms *Memory) Create(key string) (io.WriteCloser, error) {
	return &memWriter{parent: ms, key: key}, nil
}

// Open returns a reader over the content saved under key. The reader
// holds the stored slice itself; writers commit a fresh slice on Close
// rather than mutating, so the content never changes underneath it.
func (ms *Memory) Open(key string) (io.ReadCloser, error) {
	ms.m.RLock()
	b, ok := ms.files[key]
	ms.m.RUnlock()
	if !ok {
		return nil, ErrNotExist
	}
	return io.NopCloser(bytes.NewReader(b)), nil
}

// under reports whether key is inside the directory named by prefix.
func under(key, prefix string) bool {
	return prefix == "" || strings.HasPrefix(key, prefix+"/")
}

// List returns the key of every file at or below prefix, sorted.
func (ms *Memory) List(prefix string) ([]string, error) {
	var result []string
	ms.m.RLock()
	for k := range ms.files {
		if under(k, prefix) {
			result = append(result, k)
		}
	}
	ms.m.RUnlock()
	sort.Strings(result)
	return result, nil
}

// SubDirs returns the immediate child directories of prefix, derived
// from the file keys.
func (ms *Memory) SubDirs(prefix string) ([]string, error) {
	seen := make(map[string]bool)
	ms.m.RLock()
	for k := range ms.files {
		if !under(k, prefix) {
			continue
		}
		rest := k
		if prefix != "" {
			rest = k[len(prefix)+1:]
		}
		i := strings.Index(rest, "/")
		if i > 0 {
			seen[rest[:i]] = true
		}
	}
	ms.m.RUnlock()
	result := make([]string, 0, len(seen))
	for name := range seen {
		result = append(result, name)
	}
	sort.Strings(result)
	return result, nil
}

// DirExists reports whether any file lives below prefix.
func (ms *Memory) DirExists(prefix string) (bool, error) {
	if prefix == "" {
		return true, nil
	}
	ms.m.RLock()
	defer ms.m.RUnlock()
	for k := range ms.files {
		if under(k, prefix) {
			return true, nil
		}
	}
	return false, nil
}

// RemoveAll deletes every file at or below prefix.
func (ms *Memory) RemoveAll(prefix string) error {
	ms.m.Lock()
	for k := range ms.files {
		if under(k, prefix) {
			delete(ms.files, k)
		}
	}
	ms.m.Unlock()
	return nil
}

// memWriter buffers writes and commits them to the parent store on Close.
type memWriter struct {
	parent *Memory
	key    string
	buf    bytes.Buffer
}

func (w *memWriter) Write(p []byte) (int, error) {
	return w.buf.Write(p)
}

func (w *memWriter) Close() error {
	w.parent.m.Lock()
	w.parent.files[w.key] = w.buf.Bytes()
	w.parent.m.Unlock()
	return nil
}
