package mcpack

import "testing"

func TestRegistryLayout(t *testing.T) {
	var table = []struct {
		kind   Kind
		folder string
		ext    string
	}{
		{KindAdvancement, "advancements", ".json"},
		{KindFunction, "functions", ".mcfunction"},
		{KindLootTable, "loot_tables", ".json"},
		{KindRecipe, "recipes", ".json"},
		{KindStructure, "structures", ".nbt"},
		{KindBlockTag, "tags/blocks", ".json"},
		{KindItemTag, "tags/items", ".json"},
		{KindFluidTag, "tags/fluids", ".json"},
		{KindFunctionTag, "tags/functions", ".json"},
		{KindEntityTypeTag, "tags/entity_types", ".json"},
	}

	if len(kinds) != len(table) {
		t.Fatalf("registry has %d kinds, expected %d", len(kinds), len(table))
	}
	for _, test := range table {
		def := test.kind.def()
		if def.kind != test.kind {
			t.Errorf("registry entry for %v holds kind %v", test.kind, def.kind)
		}
		if def.folder != test.folder {
			t.Errorf("%v folder = %q, expected %q", test.kind, def.folder, test.folder)
		}
		if def.ext != test.ext {
			t.Errorf("%v extension = %q, expected %q", test.kind, def.ext, test.ext)
		}
	}
}

// defaultItems returns a default-constructed instance of every kind.
func defaultItems() []Item {
	return []Item{
		NewAdvancement(),
		NewFunction(),
		NewLootTable(),
		NewRecipe(),
		NewStructure(),
		NewBlockTag(),
		NewItemTag(),
		NewFluidTag(),
		NewFunctionTag(),
		NewEntityTypeTag(),
	}
}

func TestRegistryCoversEveryKind(t *testing.T) {
	for _, it := range defaultItems() {
		def := it.Kind().def()
		if def.codec == nil || def.assign == nil || def.each == nil {
			t.Errorf("registry entry for %v is incomplete", it.Kind())
		}
	}
}

func TestAssignRouting(t *testing.T) {
	ns := NewNamespace()
	for _, it := range defaultItems() {
		ns.Assign("probe", it)
	}
	counts := []struct {
		kind Kind
		n    int
	}{
		{KindAdvancement, len(ns.Advancements)},
		{KindFunction, len(ns.Functions)},
		{KindLootTable, len(ns.LootTables)},
		{KindRecipe, len(ns.Recipes)},
		{KindStructure, len(ns.Structures)},
		{KindBlockTag, len(ns.BlockTags)},
		{KindItemTag, len(ns.ItemTags)},
		{KindFluidTag, len(ns.FluidTags)},
		{KindFunctionTag, len(ns.FunctionTags)},
		{KindEntityTypeTag, len(ns.EntityTypeTags)},
	}
	for _, c := range counts {
		if c.n != 1 {
			t.Errorf("%v map has %d entries after Assign, expected 1", c.kind, c.n)
		}
	}
}

func TestAssignOverwrites(t *testing.T) {
	ns := NewNamespace()
	ns.Assign("hello", &Function{Body: "say one"})
	ns.Assign("hello", &Function{Body: "say two"})
	if len(ns.Functions) != 1 {
		t.Fatalf("Functions has %d entries, expected 1", len(ns.Functions))
	}
	if got := ns.Functions["hello"].Body; got != "say two" {
		t.Errorf("body = %q, expected %q", got, "say two")
	}
}
