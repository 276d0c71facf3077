package mcpack

// DataVersion is the game data version stamped into newly created
// structures.
const DataVersion = 1519

// Structure is a Minecraft structure. On disk it is a gzip-compressed
// NBT compound with an empty root name. The decoder enforces the shape
// below strictly: a top-level field that is missing, has the wrong type,
// or is not declared here is an error. The integer position and size
// fields are stored as NBT lists of ints, not int arrays, which is the
// form the structure files carry.
type Structure struct {
	DataVersion int32             `nbt:"DataVersion"`
	Author      string            `nbt:"author"`
	Size        []int32           `nbt:"size,list"`
	Palette     []BlockState      `nbt:"palette"`
	Palettes    [][]BlockState    `nbt:"palettes"`
	Blocks      []StructureBlock  `nbt:"blocks"`
	Entities    []StructureEntity `nbt:"entities"`
}

// BlockState names a block and its properties, as referenced from the
// block list by palette index.
type BlockState struct {
	Name       string            `nbt:"Name"`
	Properties map[string]string `nbt:"Properties"`
}

// StructureBlock places one palette entry at a position, optionally
// with attached block entity data.
type StructureBlock struct {
	State int32   `nbt:"state"`
	Pos   []int32 `nbt:"pos,list"`
	NBT   Dict    `nbt:"nbt"`
}

// StructureEntity records an entity inside the structure.
type StructureEntity struct {
	Pos      []float64 `nbt:"pos"`
	BlockPos []int32   `nbt:"blockPos,list"`
	NBT      Dict      `nbt:"nbt"`
}

// structureFields is the closed set of top-level fields a structure
// file may carry. The decoder rejects anything outside it and requires
// everything inside it.
var structureFields = []string{
	"DataVersion", "author", "size",
	"palette", "palettes", "blocks", "entities",
}

// NewStructure returns an empty structure stamped with the current
// DataVersion. Structures should be built from this so the collection
// fields are non-nil and a dumped and reloaded structure compares equal
// to the original.
func NewStructure() *Structure {
	return &Structure{
		DataVersion: DataVersion,
		Size:        []int32{0, 0, 0},
		Palette:     []BlockState{},
		Palettes:    [][]BlockState{},
		Blocks:      []StructureBlock{},
		Entities:    []StructureEntity{},
	}
}

// Kind implements Item.
func (*Structure) Kind() Kind { return KindStructure }

// normalize maps the loose ends of NBT decoding onto the conventions of
// this package: the top-level collections are non-nil, and empty nested
// compounds are nil, matching how literals are usually written.
func (s *Structure) normalize() {
	if s.Size == nil {
		s.Size = []int32{}
	}
	if s.Palette == nil {
		s.Palette = []BlockState{}
	}
	if s.Palettes == nil {
		s.Palettes = [][]BlockState{}
	}
	if s.Blocks == nil {
		s.Blocks = []StructureBlock{}
	}
	if s.Entities == nil {
		s.Entities = []StructureEntity{}
	}
	for i := range s.Palette {
		normalizeState(&s.Palette[i])
	}
	for i := range s.Palettes {
		for j := range s.Palettes[i] {
			normalizeState(&s.Palettes[i][j])
		}
	}
	for i := range s.Blocks {
		if len(s.Blocks[i].NBT) == 0 {
			s.Blocks[i].NBT = nil
		}
	}
	for i := range s.Entities {
		if len(s.Entities[i].NBT) == 0 {
			s.Entities[i].NBT = nil
		}
	}
}

func normalizeState(b *BlockState) {
	if len(b.Properties) == 0 {
		b.Properties = nil
	}
}
