package mcpack

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
)

// roundtrip encodes it with its kind's codec and decodes the result.
func roundtrip(t *testing.T, it Item) Item {
	t.Helper()
	def := it.Kind().def()
	var buf bytes.Buffer
	if err := def.codec.encode(&buf, it); err != nil {
		t.Fatalf("%v encode: %s", it.Kind(), err)
	}
	out, err := def.codec.decode(&buf)
	if err != nil {
		t.Fatalf("%v decode: %s", it.Kind(), err)
	}
	return out
}

func TestDefaultRoundtripEveryKind(t *testing.T) {
	for _, it := range defaultItems() {
		out := roundtrip(t, it)
		if !reflect.DeepEqual(it, out) {
			t.Errorf("%v default did not survive a round trip:\n in: %#v\nout: %#v",
				it.Kind(), it, out)
		}
	}
}

func TestPopulatedRoundtrip(t *testing.T) {
	var table = []Item{
		&Advancement{
			Display: &Dict{"title": "Swimming"},
			Parent:  Opt("pack:root"),
			Criteria: Dict{
				"swim": map[string]any{"trigger": "minecraft:enter_block"},
			},
			Requirements: &[]any{[]any{"swim"}},
			Rewards:      &Dict{"experience": 10.0},
		},
		&Function{Body: "say line one\nsay line two\n"},
		&LootTable{
			Pools: []any{map[string]any{"rolls": 1.0}},
			Type:  "fishing",
			Functions: &[]any{
				map[string]any{"function": "set_count"},
			},
		},
		&Recipe{
			Type:        "smelting",
			Group:       Opt("ores"),
			Pattern:     []string{"xx", "xx"},
			Key:         Dict{"x": map[string]any{"item": "minecraft:stone"}},
			Ingredient:  &Dict{"item": "minecraft:iron_ore"},
			Ingredients: &[]any{map[string]any{"item": "minecraft:dead_bush"}},
			Result:      "minecraft:iron_ingot",
			Experience:  Opt(0.7),
			Cookingtime: Opt(200),
			Count:       Opt(1),
		},
		&FunctionTag{Tag{Values: []string{"demo:hello"}, Replace: true}},
		&BlockTag{Tag{Values: []string{"minecraft:stone", "minecraft:dirt"}}},
	}
	for _, it := range table {
		out := roundtrip(t, it)
		if !reflect.DeepEqual(it, out) {
			t.Errorf("%v did not survive a round trip:\n in: %#v\nout: %#v",
				it.Kind(), it, out)
		}
	}
}

func TestJSONOmitsAbsentFields(t *testing.T) {
	var buf bytes.Buffer
	def := KindAdvancement.def()
	if err := def.codec.encode(&buf, NewAdvancement()); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, absent := range []string{"display", "parent", "requirements", "rewards"} {
		if strings.Contains(out, absent) {
			t.Errorf("default advancement JSON contains optional field %q:\n%s", absent, out)
		}
	}
	if !strings.Contains(out, `"criteria": {}`) {
		t.Errorf("default advancement JSON lacks criteria:\n%s", out)
	}
}

func TestJSONFieldOrder(t *testing.T) {
	var buf bytes.Buffer
	def := KindFunctionTag.def()
	it := &FunctionTag{Tag{Values: []string{"demo:hello"}}}
	if err := def.codec.encode(&buf, it); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if strings.Index(out, `"values"`) > strings.Index(out, `"replace"`) {
		t.Errorf("tag JSON keys out of declaration order:\n%s", out)
	}
}

func TestJSONWritesHTMLCharsRaw(t *testing.T) {
	it := NewAdvancement()
	it.Criteria = Dict{"text": `<tellraw> & friends`}
	var buf bytes.Buffer
	if err := KindAdvancement.def().codec.encode(&buf, it); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, `<tellraw> & friends`) {
		t.Errorf("advancement JSON escaped HTML characters:\n%s", out)
	}
	if strings.Contains(out, `\u003c`) || strings.Contains(out, `\u0026`) {
		t.Errorf("advancement JSON contains unicode escapes:\n%s", out)
	}
	if !strings.HasSuffix(out, "}") {
		t.Errorf("advancement JSON has trailing bytes after the object:\n%q", out)
	}
}

func TestJSONDecodeFillsDefaults(t *testing.T) {
	def := KindLootTable.def()
	it, err := def.codec.decode(strings.NewReader(`{"pools": []}`))
	if err != nil {
		t.Fatal(err)
	}
	lt := it.(*LootTable)
	if lt.Type != "generic" {
		t.Errorf("absent type decoded as %q, expected the %q default", lt.Type, "generic")
	}
}

func TestTextRoundtripExact(t *testing.T) {
	const body = "say Hello, world!"
	var buf bytes.Buffer
	def := KindFunction.def()
	if err := def.codec.encode(&buf, &Function{Body: body}); err != nil {
		t.Fatal(err)
	}
	if buf.String() != body {
		t.Errorf("function file = %q, expected %q", buf.String(), body)
	}
}
