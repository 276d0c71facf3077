package mcpack

import (
	"reflect"
	"strings"

	"github.com/pkg/errors"

	"github.com/mcpack/mcpack/store"
)

// Namespace groups the items living under one namespace name, one map
// per item kind, keyed by the item's path relative to the kind folder.
// Paths may contain slashes to place an item in a subfolder. The same
// path string may appear under several kinds at once; the kinds dump
// into different folders, so this is never a conflict.
type Namespace struct {
	Advancements   map[string]*Advancement
	Functions      map[string]*Function
	LootTables     map[string]*LootTable
	Recipes        map[string]*Recipe
	Structures     map[string]*Structure
	BlockTags      map[string]*BlockTag
	ItemTags       map[string]*ItemTag
	FluidTags      map[string]*FluidTag
	FunctionTags   map[string]*FunctionTag
	EntityTypeTags map[string]*EntityTypeTag
}

// NewNamespace returns a namespace with every per-kind map allocated.
// Namespaces must be created through here (or through DataPack) so that
// Assign has maps to write into.
func NewNamespace() *Namespace {
	return &Namespace{
		Advancements:   make(map[string]*Advancement),
		Functions:      make(map[string]*Function),
		LootTables:     make(map[string]*LootTable),
		Recipes:        make(map[string]*Recipe),
		Structures:     make(map[string]*Structure),
		BlockTags:      make(map[string]*BlockTag),
		ItemTags:       make(map[string]*ItemTag),
		FluidTags:      make(map[string]*FluidTag),
		FunctionTags:   make(map[string]*FunctionTag),
		EntityTypeTags: make(map[string]*EntityTypeTag),
	}
}

// Assign routes it into the per-kind map matching its kind. An item
// already present under the same path for that kind is silently
// replaced.
func (ns *Namespace) Assign(path string, it Item) {
	it.Kind().def().assign(ns, path, it)
}

// Equal reports whether two namespaces hold equal items under equal
// paths for every kind.
func (ns *Namespace) Equal(other *Namespace) bool {
	return reflect.DeepEqual(ns, other)
}

// dump writes every item into s under dir, at
// dir/<kind folder>/<path><ext>.
func (ns *Namespace) dump(s store.Store, dir string) error {
	for i := range kinds {
		k := &kinds[i]
		err := k.each(ns, func(path string, it Item) error {
			key := dir + "/" + k.folder + "/" + path + k.ext
			w, err := s.Create(key)
			if err != nil {
				return errors.Wrapf(err, "creating %s", key)
			}
			err = k.codec.encode(w, it)
			cerr := w.Close()
			if err == nil {
				err = cerr
			}
			return errors.Wrapf(err, "writing %s", key)
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// loadNamespace reconstructs a namespace from the files below dir. For
// each registered kind it walks the kind folder and decodes every file
// carrying the kind's extension; the item path is the file key with the
// folder prefix and the extension stripped. A kind folder that does not
// exist contributes no items.
func loadNamespace(s store.Store, dir string) (*Namespace, error) {
	ns := NewNamespace()
	for i := range kinds {
		k := &kinds[i]
		base := dir + "/" + k.folder
		keys, err := s.List(base)
		if err != nil {
			return nil, errors.Wrapf(err, "listing %s", base)
		}
		for _, key := range keys {
			if !strings.HasSuffix(key, k.ext) {
				continue
			}
			path := strings.TrimPrefix(key, base+"/")
			path = strings.TrimSuffix(path, k.ext)
			r, err := s.Open(key)
			if err != nil {
				return nil, errors.Wrapf(err, "opening %s", key)
			}
			it, err := k.codec.decode(r)
			cerr := r.Close()
			if err == nil {
				err = cerr
			}
			if err != nil {
				return nil, errors.Wrapf(err, "loading %s", key)
			}
			k.assign(ns, path, it)
		}
	}
	return ns, nil
}
