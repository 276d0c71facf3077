/*
Package mcpack provides object-oriented abstractions to create and edit
Minecraft data packs. A pack is modeled as an in-memory graph: a DataPack
holds named Namespaces, and each Namespace holds the content items for
that namespace, one map per item kind. Dump writes the graph as the
standard data pack directory layout, and Load reads such a directory back
into an equal graph.

Example usage:

	pack := mcpack.New("My cool pack", "This is the description.")
	pack.Assign("my_cool_pack:hello", &mcpack.Function{Body: "say hello"})
	pack.Assign("minecraft:load", &mcpack.FunctionTag{
		Tag: mcpack.Tag{Values: []string{"my_cool_pack:hello"}},
	})
	err := pack.DumpDir("datapacks", false)
	...
	loaded, err := mcpack.LoadDir("datapacks/My cool pack")
	...
	pack.Equal(loaded) // true

Dump and Load work against a store.Store, so a pack can be written to a
plain directory, kept in memory, or synced with an S3 bucket. The
convenience functions DumpDir and LoadDir target the local filesystem.

Items holding free-form JSON values use Dict and []any. JSON numbers
decode as float64, so populate numeric values in a Dict with float64 if
the pack is compared for equality after a round trip.
*/
package mcpack
