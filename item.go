package mcpack

// Kind identifies one of the content item variants a data pack can hold.
type Kind int

// The registered item kinds. The order here matches the registry table
// in registry.go.
const (
	KindAdvancement Kind = iota
	KindFunction
	KindLootTable
	KindRecipe
	KindStructure
	KindBlockTag
	KindItemTag
	KindFluidTag
	KindFunctionTag
	KindEntityTypeTag
)

func (k Kind) String() string {
	names := []string{
		"advancement",
		"function",
		"loot table",
		"recipe",
		"structure",
		"block tag",
		"item tag",
		"fluid tag",
		"function tag",
		"entity type tag",
	}
	if k < 0 || int(k) >= len(names) {
		return "unknown kind"
	}
	return names[k]
}

// Item is a single content unit of a data pack. The concrete types are
// Advancement, Function, LootTable, Recipe, Structure, and the tag
// types. Items are plain values with no identity beyond their content.
type Item interface {
	Kind() Kind
}

// Dict is a free-form JSON object, used for item fields whose shape the
// game defines but this package does not model.
type Dict = map[string]any

// Opt returns a pointer to v. It is a convenience for populating the
// optional item fields, which are pointers so that an absent field can
// be told apart from a present zero value.
func Opt[T any](v T) *T {
	return &v
}
