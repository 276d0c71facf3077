// Package storetest provides functions for facilitating the testing of
// anything implementing the Store interface.
package storetest

import (
	"io"
	"reflect"
	"testing"

	"github.com/mcpack/mcpack/store"
)

// write saves content under key, failing the test on any error.
func write(t *testing.T, s store.Store, key, content string) {
	t.Helper()
	w, err := s.Create(key)
	if err != nil {
		t.Fatalf("Create(%s): %s", key, err)
	}
	_, err = w.Write([]byte(content))
	if err != nil {
		t.Fatalf("Write(%s): %s", key, err)
	}
	if err = w.Close(); err != nil {
		t.Fatalf("Close(%s): %s", key, err)
	}
}

// read returns the content saved under key, failing the test on any error.
func read(t *testing.T, s store.Store, key string) string {
	t.Helper()
	r, err := s.Open(key)
	if err != nil {
		t.Fatalf("Open(%s): %s", key, err)
	}
	defer r.Close()
	b, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll(%s): %s", key, err)
	}
	return string(b)
}

// Exercise runs a given store through the Store contract: create, open,
// list, subdirectory enumeration, and recursive removal. The store must
// be empty when passed in; it is left empty on success.
func Exercise(t *testing.T, s store.Store) {
	// an empty store has nothing in it
	if keys, _ := s.List(""); len(keys) != 0 {
		t.Fatalf("List of empty store = %v", keys)
	}
	if ok, _ := s.DirExists("pack"); ok {
		t.Fatalf("DirExists(pack) on empty store = true")
	}

	write(t, s, "pack/pack.mcmeta", "meta")
	write(t, s, "pack/data/alpha/functions/hello.mcfunction", "say hi")
	write(t, s, "pack/data/alpha/functions/sub/deep.mcfunction", "say deep")
	write(t, s, "pack/data/beta/recipes/stick.json", "{}")

	if got := read(t, s, "pack/data/alpha/functions/hello.mcfunction"); got != "say hi" {
		t.Errorf("Open returned %q, expected %q", got, "say hi")
	}

	// replacing a file keeps one copy
	write(t, s, "pack/pack.mcmeta", "meta2")
	if got := read(t, s, "pack/pack.mcmeta"); got != "meta2" {
		t.Errorf("after rewrite Open returned %q, expected %q", got, "meta2")
	}

	_, err := s.Open("pack/data/alpha/missing.json")
	if err != store.ErrNotExist {
		t.Errorf("Open of missing key returned %v, expected ErrNotExist", err)
	}

	keys, err := s.List("pack/data/alpha")
	if err != nil {
		t.Fatalf("List: %s", err)
	}
	wantKeys := []string{
		"pack/data/alpha/functions/hello.mcfunction",
		"pack/data/alpha/functions/sub/deep.mcfunction",
	}
	if !reflect.DeepEqual(keys, wantKeys) {
		t.Errorf("List = %v, expected %v", keys, wantKeys)
	}

	if keys, _ = s.List("pack/data/gamma"); len(keys) != 0 {
		t.Errorf("List of absent dir = %v, expected none", keys)
	}

	dirs, err := s.SubDirs("pack/data")
	if err != nil {
		t.Fatalf("SubDirs: %s", err)
	}
	if !reflect.DeepEqual(dirs, []string{"alpha", "beta"}) {
		t.Errorf("SubDirs = %v, expected [alpha beta]", dirs)
	}
	if dirs, _ = s.SubDirs("pack/data/gamma"); len(dirs) != 0 {
		t.Errorf("SubDirs of absent dir = %v, expected none", dirs)
	}

	if ok, _ := s.DirExists("pack/data/alpha"); !ok {
		t.Errorf("DirExists(pack/data/alpha) = false")
	}
	if ok, _ := s.DirExists("pack/data/alpha/functions/hello.mcfunction/x"); ok {
		t.Errorf("DirExists below a file = true")
	}

	if err = s.RemoveAll("pack/data/alpha"); err != nil {
		t.Fatalf("RemoveAll: %s", err)
	}
	if ok, _ := s.DirExists("pack/data/alpha"); ok {
		t.Errorf("DirExists after RemoveAll = true")
	}
	if _, err = s.Open("pack/data/alpha/functions/hello.mcfunction"); err == nil {
		t.Errorf("Open succeeded after RemoveAll")
	}
	// the sibling namespace is untouched
	if got := read(t, s, "pack/data/beta/recipes/stick.json"); got != "{}" {
		t.Errorf("sibling content changed after RemoveAll")
	}

	if err = s.RemoveAll("pack"); err != nil {
		t.Fatalf("RemoveAll(pack): %s", err)
	}
	if keys, _ = s.List(""); len(keys) != 0 {
		t.Errorf("store not empty after final RemoveAll: %v", keys)
	}
}
