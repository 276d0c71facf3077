package store

import "io"

// NewWithPrefix wraps the store s by one which roots all its keys under
// the directory named by prefix. This provides a way to share one
// underlying store among a group of users, for example to keep several
// data packs in one bucket.
func NewWithPrefix(s Store, prefix string) Store {
	return prefixstore{s: s, p: prefix}
}

type prefixstore struct {
	s Store  // the store being wrapped
	p string // the directory our keys live under
}

func (ps prefixstore) join(key string) string {
	if key == "" {
		return ps.p
	}
	return ps.p + "/" + key
}

func (ps prefixstore) Create(key string) (io.WriteCloser, error) {
	return ps.s.Create(ps.join(key))
}

func (ps prefixstore) Open(key string) (io.ReadCloser, error) {
	return ps.s.Open(ps.join(key))
}

func (ps prefixstore) List(prefix string) ([]string, error) {
	keys, err := ps.s.List(ps.join(prefix))
	result := make([]string, 0, len(keys))
	for _, key := range keys {
		result = append(result, key[len(ps.p)+1:])
	}
	return result, err
}

func (ps prefixstore) SubDirs(prefix string) ([]string, error) {
	return ps.s.SubDirs(ps.join(prefix))
}

func (ps prefixstore) DirExists(prefix string) (bool, error) {
	return ps.s.DirExists(ps.join(prefix))
}

func (ps prefixstore) RemoveAll(prefix string) error {
	return ps.s.RemoveAll(ps.join(prefix))
}
