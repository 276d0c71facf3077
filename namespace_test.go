package mcpack

import (
	"testing"

	"github.com/mcpack/mcpack/store"
)

func TestNamespaceRoundtrip(t *testing.T) {
	ns := NewNamespace()
	ns.Assign("hello", &Function{Body: "say hello"})
	ns.Assign("sub/deep", &Function{Body: "say deep"})
	ns.Assign("treasure", NewLootTable())
	ns.Assign("load", &FunctionTag{Tag{Values: []string{"demo:hello"}}})

	s := store.NewMemory()
	if err := ns.dump(s, "x"); err != nil {
		t.Fatal(err)
	}
	out, err := loadNamespace(s, "x")
	if err != nil {
		t.Fatal(err)
	}
	if !ns.Equal(out) {
		t.Errorf("namespace did not survive a round trip:\n in: %#v\nout: %#v", ns, out)
	}
}

// Assigning the same path under every kind must keep all ten items:
// each kind dumps into its own folder, so equal path strings across
// kinds never collide.
func TestCrossKindPathCollision(t *testing.T) {
	ns := NewNamespace()
	for _, it := range defaultItems() {
		ns.Assign("same/path", it)
	}

	s := store.NewMemory()
	if err := ns.dump(s, "x"); err != nil {
		t.Fatal(err)
	}
	out, err := loadNamespace(s, "x")
	if err != nil {
		t.Fatal(err)
	}

	for i := range kinds {
		k := &kinds[i]
		var n int
		var found bool
		k.each(out, func(path string, it Item) error {
			n++
			if path == "same/path" {
				found = true
			}
			return nil
		})
		if n != 1 || !found {
			t.Errorf("%v: %d items after reload, expected exactly one at same/path", k.kind, n)
		}
	}
	if !ns.Equal(out) {
		t.Errorf("namespace with colliding paths did not survive a round trip")
	}
}

// A kind whose folder is absent contributes no items, and is no error.
func TestMissingKindFolders(t *testing.T) {
	ns := NewNamespace()
	ns.Assign("only", &Function{Body: "say only"})

	s := store.NewMemory()
	if err := ns.dump(s, "x"); err != nil {
		t.Fatal(err)
	}
	out, err := loadNamespace(s, "x")
	if err != nil {
		t.Fatal(err)
	}
	if len(out.Functions) != 1 {
		t.Errorf("Functions has %d items, expected 1", len(out.Functions))
	}
	for i := range kinds {
		k := &kinds[i]
		if k.kind == KindFunction {
			continue
		}
		k.each(out, func(path string, it Item) error {
			t.Errorf("%v folder never dumped, but reload found %q", k.kind, path)
			return nil
		})
	}
}

// A subfolder sharing its name with a file stem must not confuse path
// reconstruction.
func TestStemAndSubfolderShareName(t *testing.T) {
	ns := NewNamespace()
	ns.Assign("sub", &Function{Body: "say sub"})
	ns.Assign("sub/hello", &Function{Body: "say sub hello"})

	s := store.NewMemory()
	if err := ns.dump(s, "x"); err != nil {
		t.Fatal(err)
	}
	out, err := loadNamespace(s, "x")
	if err != nil {
		t.Fatal(err)
	}
	if got := out.Functions["sub"].Body; got != "say sub" {
		t.Errorf("sub = %q", got)
	}
	if got := out.Functions["sub/hello"].Body; got != "say sub hello" {
		t.Errorf("sub/hello = %q", got)
	}
	if len(out.Functions) != 2 {
		t.Errorf("Functions has %d items, expected 2", len(out.Functions))
	}
}

// Files not carrying the kind's extension are invisible to load.
func TestLoadIgnoresForeignExtensions(t *testing.T) {
	s := store.NewMemory()
	w, _ := s.Create("x/functions/readme.txt")
	w.Write([]byte("not a function"))
	w.Close()
	w, _ = s.Create("x/functions/hello.mcfunction")
	w.Write([]byte("say hello"))
	w.Close()

	out, err := loadNamespace(s, "x")
	if err != nil {
		t.Fatal(err)
	}
	if len(out.Functions) != 1 {
		t.Errorf("Functions has %d items, expected 1", len(out.Functions))
	}
	if _, ok := out.Functions["hello"]; !ok {
		t.Errorf("hello.mcfunction was not loaded")
	}
}

func TestNamespaceEqual(t *testing.T) {
	a := NewNamespace()
	b := NewNamespace()
	if !a.Equal(b) {
		t.Errorf("two empty namespaces are not equal")
	}
	a.Assign("hello", &Function{Body: "say hi"})
	if a.Equal(b) {
		t.Errorf("namespaces with different items compare equal")
	}
	b.Assign("hello", &Function{Body: "say hi"})
	if !a.Equal(b) {
		t.Errorf("namespaces with the same items compare unequal")
	}
}
