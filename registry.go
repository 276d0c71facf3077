package mcpack

// kindDef describes where and how one item kind is stored: its folder
// under a namespace, its file extension, its codec, and typed access
// into the per-kind map of a Namespace.
type kindDef struct {
	kind   Kind
	folder string // slash-separated, relative to the namespace directory
	ext    string // includes the leading dot, never empty
	codec  codec

	// typed map plumbing, built by defKind
	assign func(ns *Namespace, path string, it Item)
	each   func(ns *Namespace, fn func(path string, it Item) error) error
}

// defKind builds the registry entry for one item kind. The sel closure
// picks the kind's map out of a Namespace; everything else derives from
// it, so a kind cannot be registered without a backing Namespace field.
func defKind[T Item](kind Kind, folder, ext string, c codec, sel func(*Namespace) map[string]T) kindDef {
	return kindDef{
		kind:   kind,
		folder: folder,
		ext:    ext,
		codec:  c,
		assign: func(ns *Namespace, path string, it Item) {
			sel(ns)[path] = it.(T)
		},
		each: func(ns *Namespace, fn func(string, Item) error) error {
			for path, it := range sel(ns) {
				if err := fn(path, it); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// kinds is the registry: one entry per item kind, indexed by Kind. It
// is the single source of truth for dump dispatch and load discovery;
// a kind absent here would be invisible to both, which is why the table
// is a fixed enumeration rather than something mutable at runtime.
var kinds = []kindDef{
	defKind(KindAdvancement, "advancements", ".json",
		jsonCodec{fresh: func() Item { return NewAdvancement() }},
		func(ns *Namespace) map[string]*Advancement { return ns.Advancements }),
	defKind(KindFunction, "functions", ".mcfunction",
		textCodec{},
		func(ns *Namespace) map[string]*Function { return ns.Functions }),
	defKind(KindLootTable, "loot_tables", ".json",
		jsonCodec{fresh: func() Item { return NewLootTable() }},
		func(ns *Namespace) map[string]*LootTable { return ns.LootTables }),
	defKind(KindRecipe, "recipes", ".json",
		jsonCodec{fresh: func() Item { return NewRecipe() }},
		func(ns *Namespace) map[string]*Recipe { return ns.Recipes }),
	defKind(KindStructure, "structures", ".nbt",
		nbtCodec{},
		func(ns *Namespace) map[string]*Structure { return ns.Structures }),
	defKind(KindBlockTag, "tags/blocks", ".json",
		jsonCodec{fresh: func() Item { return NewBlockTag() }},
		func(ns *Namespace) map[string]*BlockTag { return ns.BlockTags }),
	defKind(KindItemTag, "tags/items", ".json",
		jsonCodec{fresh: func() Item { return NewItemTag() }},
		func(ns *Namespace) map[string]*ItemTag { return ns.ItemTags }),
	defKind(KindFluidTag, "tags/fluids", ".json",
		jsonCodec{fresh: func() Item { return NewFluidTag() }},
		func(ns *Namespace) map[string]*FluidTag { return ns.FluidTags }),
	defKind(KindFunctionTag, "tags/functions", ".json",
		jsonCodec{fresh: func() Item { return NewFunctionTag() }},
		func(ns *Namespace) map[string]*FunctionTag { return ns.FunctionTags }),
	defKind(KindEntityTypeTag, "tags/entity_types", ".json",
		jsonCodec{fresh: func() Item { return NewEntityTypeTag() }},
		func(ns *Namespace) map[string]*EntityTypeTag { return ns.EntityTypeTags }),
}

// def returns the registry entry for k.
func (k Kind) def() *kindDef {
	return &kinds[k]
}
