package mcpack

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/Tnze/go-mc/nbt"
	"github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"
)

// codec is one dump/load strategy. Every item kind is bound to a codec
// in the registry; encode and decode are inverses for any valid item of
// the bound kind.
type codec interface {
	encode(w io.Writer, it Item) error
	decode(r io.Reader) (Item, error)
}

// textCodec stores the function body verbatim.
type textCodec struct{}

func (textCodec) encode(w io.Writer, it Item) error {
	_, err := io.WriteString(w, it.(*Function).Body)
	return err
}

func (textCodec) decode(r io.Reader) (Item, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return &Function{Body: string(b)}, nil
}

// jsonCodec stores the item's own fields as pretty printed JSON. Keys
// appear in struct declaration order; nil optional fields are omitted.
type jsonCodec struct {
	fresh func() Item // a default-valued instance to decode into
}

func (c jsonCodec) encode(w io.Writer, it Item) error {
	return writeJSON(w, it)
}

// decode fills a default instance, so any field absent from the file
// keeps its declared default.
func (c jsonCodec) decode(r io.Reader) (Item, error) {
	it := c.fresh()
	if err := json.NewDecoder(r).Decode(it); err != nil {
		return nil, err
	}
	return it, nil
}

// writeJSON writes pretty indented json data. HTML escaping is off, so
// <, >, and & appear in the file as themselves.
func writeJSON(w io.Writer, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(v); err != nil {
		return err
	}
	// Encode appends a newline the files do not carry
	_, err := w.Write(bytes.TrimSuffix(buf.Bytes(), []byte("\n")))
	return err
}

// nbtCodec stores a structure as a gzip-framed NBT compound rooted at
// an empty-named entry.
type nbtCodec struct{}

func (nbtCodec) encode(w io.Writer, it Item) error {
	gz := gzip.NewWriter(w)
	if err := nbt.NewEncoder(gz).Encode(it.(*Structure), ""); err != nil {
		gz.Close()
		return err
	}
	return gz.Close()
}

func (nbtCodec) decode(r io.Reader) (Item, error) {
	gz, err := gzip.NewReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading structure")
	}
	raw, err := io.ReadAll(gz)
	cerr := gz.Close()
	if err == nil {
		err = cerr
	}
	if err != nil {
		return nil, errors.Wrap(err, "reading structure")
	}

	// Check the top-level field set against the declared schema before
	// the typed decode. The typed decode catches wrongly typed fields
	// but would silently skip unknown ones and leave missing ones at
	// their defaults.
	var probe map[string]any
	if err := nbt.Unmarshal(raw, &probe); err != nil {
		return nil, errors.Wrap(err, "reading structure")
	}
	allowed := make(map[string]bool, len(structureFields))
	for _, name := range structureFields {
		allowed[name] = true
	}
	for name := range probe {
		if !allowed[name] {
			return nil, errors.Errorf("structure schema: unexpected field %q", name)
		}
	}
	for _, name := range structureFields {
		if _, ok := probe[name]; !ok {
			return nil, errors.Errorf("structure schema: missing field %q", name)
		}
	}

	s := NewStructure()
	if err := nbt.Unmarshal(raw, s); err != nil {
		return nil, errors.Wrap(err, "structure schema")
	}
	s.normalize()
	return s, nil
}
