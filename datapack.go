package mcpack

import (
	"path/filepath"
	"strings"

	"github.com/antonholmquist/jason"
	"github.com/pkg/errors"

	"github.com/mcpack/mcpack/store"
)

// MetaFilename is the name of the metadata file at the root of a pack.
const MetaFilename = "pack.mcmeta"

var (
	// ErrExists means the dump target directory is already present and
	// overwrite was not requested.
	ErrExists = errors.New("pack directory already exists")

	// ErrNoMetadata means the pack.mcmeta file of a pack being loaded
	// is missing, unparsable, or lacks a required key.
	ErrNoMetadata = errors.New("missing or malformed pack.mcmeta")
)

// DataPack is a complete data pack: metadata plus a set of namespaces.
// The Name is used as the root directory name when the pack is dumped.
type DataPack struct {
	Name        string
	Description string
	PackFormat  int
	namespaces  map[string]*Namespace
}

// New creates an empty data pack with the default pack format.
func New(name, description string) *DataPack {
	return &DataPack{
		Name:        name,
		Description: description,
		PackFormat:  1,
		namespaces:  make(map[string]*Namespace),
	}
}

// Namespace returns the namespace with the given name, creating it if
// it does not exist yet.
func (p *DataPack) Namespace(name string) *Namespace {
	ns, ok := p.namespaces[name]
	if !ok {
		ns = NewNamespace()
		p.namespaces[name] = ns
	}
	return ns
}

// Namespaces returns the pack's namespace mapping. The map is the live
// one, not a copy.
func (p *DataPack) Namespaces() map[string]*Namespace {
	return p.namespaces
}

// SetNamespace replaces the namespace under name wholesale.
func (p *DataPack) SetNamespace(name string, ns *Namespace) {
	p.namespaces[name] = ns
}

// Assign routes an item to the namespace and path named by key, which
// has the form "namespace:path". The namespace is created on first use.
func (p *DataPack) Assign(key string, it Item) error {
	nsName, path, ok := strings.Cut(key, ":")
	if !ok || nsName == "" || path == "" {
		return errors.Errorf("item key %q is not of the form namespace:path", key)
	}
	p.Namespace(nsName).Assign(path, it)
	return nil
}

// metadata of the pack, in the shape pack.mcmeta carries.
type packMeta struct {
	Pack struct {
		PackFormat  int    `json:"pack_format"`
		Description string `json:"description"`
	} `json:"pack"`
}

func (p *DataPack) meta() packMeta {
	var m packMeta
	m.Pack.PackFormat = p.PackFormat
	m.Pack.Description = p.Description
	return m
}

// Dump writes the pack into s under the directory named by p.Name:
// first pack.mcmeta, then every namespace below data/. If that
// directory already exists the dump fails with ErrExists, unless
// overwrite is set, in which case the directory is removed first. A
// dump that fails partway leaves a partially written tree behind.
func (p *DataPack) Dump(s store.Store, overwrite bool) error {
	exists, err := s.DirExists(p.Name)
	if err != nil {
		return err
	}
	if exists {
		if !overwrite {
			return errors.Wrap(ErrExists, p.Name)
		}
		if err = s.RemoveAll(p.Name); err != nil {
			return err
		}
	}

	w, err := s.Create(p.Name + "/" + MetaFilename)
	if err != nil {
		return err
	}
	err = writeJSON(w, p.meta())
	cerr := w.Close()
	if err == nil {
		err = cerr
	}
	if err != nil {
		return errors.Wrap(err, "writing pack.mcmeta")
	}

	for name, ns := range p.namespaces {
		if err = ns.dump(s, p.Name+"/data/"+name); err != nil {
			return err
		}
	}
	return nil
}

// DumpDir dumps the pack into the local directory parent, creating
// parent/<Name>.
func (p *DataPack) DumpDir(parent string, overwrite bool) error {
	return p.Dump(store.NewFileSystem(parent), overwrite)
}

// Load reads the pack named name from s. The description and pack
// format come from pack.mcmeta; every immediate subdirectory of data/
// is loaded as a namespace. A missing or unparsable metadata file is
// reported as ErrNoMetadata.
func Load(s store.Store, name string) (*DataPack, error) {
	metaKey := name + "/" + MetaFilename
	r, err := s.Open(metaKey)
	if err != nil {
		return nil, errors.Wrapf(ErrNoMetadata, "%s (%s)", metaKey, err)
	}
	obj, err := jason.NewObjectFromReader(r)
	cerr := r.Close()
	if err == nil {
		err = cerr
	}
	if err != nil {
		return nil, errors.Wrapf(ErrNoMetadata, "%s (%s)", metaKey, err)
	}
	description, err := obj.GetString("pack", "description")
	if err != nil {
		return nil, errors.Wrapf(ErrNoMetadata, "%s (no pack.description)", metaKey)
	}
	format, err := obj.GetInt64("pack", "pack_format")
	if err != nil {
		return nil, errors.Wrapf(ErrNoMetadata, "%s (no pack.pack_format)", metaKey)
	}

	p := New(name, description)
	p.PackFormat = int(format)

	nsNames, err := s.SubDirs(name + "/data")
	if err != nil {
		return nil, errors.Wrap(err, "listing namespaces")
	}
	for _, nsName := range nsNames {
		ns, err := loadNamespace(s, name+"/data/"+nsName)
		if err != nil {
			return nil, err
		}
		p.SetNamespace(nsName, ns)
	}
	return p, nil
}

// LoadDir loads the pack stored at the local directory dir. The pack
// name is the directory's own name.
func LoadDir(dir string) (*DataPack, error) {
	dir = filepath.Clean(dir)
	parent, name := filepath.Split(dir)
	return Load(store.NewFileSystem(parent), name)
}

// Equal reports whether two packs have equal names, descriptions, pack
// formats, and namespace mappings.
func (p *DataPack) Equal(q *DataPack) bool {
	if p.Name != q.Name || p.Description != q.Description ||
		p.PackFormat != q.PackFormat ||
		len(p.namespaces) != len(q.namespaces) {
		return false
	}
	for name, ns := range p.namespaces {
		other, ok := q.namespaces[name]
		if !ok || !ns.Equal(other) {
			return false
		}
	}
	return true
}
