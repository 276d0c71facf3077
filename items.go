package mcpack

// The item types below mirror the JSON shapes the game reads. Field
// order in each struct is the order the keys appear in the dumped file.
// Optional fields are pointers and are omitted from the file while nil.

// Advancement is a Minecraft advancement.
type Advancement struct {
	Display      *Dict   `json:"display,omitempty"`
	Parent       *string `json:"parent,omitempty"`
	Criteria     Dict    `json:"criteria"`
	Requirements *[]any  `json:"requirements,omitempty"`
	Rewards      *Dict   `json:"rewards,omitempty"`
}

// NewAdvancement returns an advancement with all fields at their
// defaults.
func NewAdvancement() *Advancement {
	return &Advancement{Criteria: Dict{}}
}

// Kind implements Item.
func (*Advancement) Kind() Kind { return KindAdvancement }

// Function is a Minecraft function: the raw text of its commands, one
// per line. It is stored verbatim, not as JSON.
type Function struct {
	Body string
}

// NewFunction returns a function with an empty body.
func NewFunction() *Function { return &Function{} }

// Kind implements Item.
func (*Function) Kind() Kind { return KindFunction }

// LootTable is a Minecraft loot table.
type LootTable struct {
	Pools     []any  `json:"pools"`
	Type      string `json:"type"`
	Functions *[]any `json:"functions,omitempty"`
}

// NewLootTable returns a loot table with no pools and the default
// "generic" type.
func NewLootTable() *LootTable {
	return &LootTable{Pools: []any{}, Type: "generic"}
}

// Kind implements Item.
func (*LootTable) Kind() Kind { return KindLootTable }

// Recipe is a Minecraft recipe. Result holds either a Dict or a plain
// string, matching the two shapes the game accepts.
type Recipe struct {
	Type        string   `json:"type"`
	Group       *string  `json:"group,omitempty"`
	Pattern     []string `json:"pattern"`
	Key         Dict     `json:"key"`
	Ingredient  *Dict    `json:"ingredient,omitempty"`
	Ingredients *[]any   `json:"ingredients,omitempty"`
	Result      any      `json:"result"`
	Experience  *float64 `json:"experience,omitempty"`
	Cookingtime *int     `json:"cookingtime,omitempty"`
	Count       *int     `json:"count,omitempty"`
}

// NewRecipe returns a recipe with the default "crafting_shaped" type
// and empty pattern, key, and result.
func NewRecipe() *Recipe {
	return &Recipe{
		Type:    "crafting_shaped",
		Pattern: []string{},
		Key:     Dict{},
		Result:  Dict{},
	}
}

// Kind implements Item.
func (*Recipe) Kind() Kind { return KindRecipe }

// Tag is the shared shape of all tag items: a list of references plus
// the replace flag. It is embedded by the concrete tag types, which
// exist so each one routes to its own folder.
type Tag struct {
	Values  []string `json:"values"`
	Replace bool     `json:"replace"`
}

// BlockTag is a Minecraft block tag.
type BlockTag struct{ Tag }

// NewBlockTag returns an empty, non-replacing block tag.
func NewBlockTag() *BlockTag { return &BlockTag{Tag{Values: []string{}}} }

// Kind implements Item.
func (*BlockTag) Kind() Kind { return KindBlockTag }

// ItemTag is a Minecraft item tag.
type ItemTag struct{ Tag }

// NewItemTag returns an empty, non-replacing item tag.
func NewItemTag() *ItemTag { return &ItemTag{Tag{Values: []string{}}} }

// Kind implements Item.
func (*ItemTag) Kind() Kind { return KindItemTag }

// FluidTag is a Minecraft fluid tag.
type FluidTag struct{ Tag }

// NewFluidTag returns an empty, non-replacing fluid tag.
func NewFluidTag() *FluidTag { return &FluidTag{Tag{Values: []string{}}} }

// Kind implements Item.
func (*FluidTag) Kind() Kind { return KindFluidTag }

// FunctionTag is a Minecraft function tag.
type FunctionTag struct{ Tag }

// NewFunctionTag returns an empty, non-replacing function tag.
func NewFunctionTag() *FunctionTag { return &FunctionTag{Tag{Values: []string{}}} }

// Kind implements Item.
func (*FunctionTag) Kind() Kind { return KindFunctionTag }

// EntityTypeTag is a Minecraft entity type tag.
type EntityTypeTag struct{ Tag }

// NewEntityTypeTag returns an empty, non-replacing entity type tag.
func NewEntityTypeTag() *EntityTypeTag { return &EntityTypeTag{Tag{Values: []string{}}} }

// Kind implements Item.
func (*EntityTypeTag) Kind() Kind { return KindEntityTypeTag }
