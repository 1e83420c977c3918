// Package yad implements the YAD binary container format: a compact,
// tokenized encoding for structured records that sits between JSON
// (verbose text) and BSON (heavier, with many rarely-used domain types).
//
// Every datum in the wire format is prefixed by a one-byte tag that
// encodes both its semantic type and the width of any associated length
// field, producing a format that is cheap to parse, predictable under hex
// inspection, and free of context-dependent grammar.
//
// # Core Types
//
//   - Value: a tagged union over unsigned/signed integers at four widths,
//     three float representations plus a 64-bit float, UTF-8 strings,
//     heterogeneous arrays, and booleans.
//   - Key: a named Value.
//   - Row: a named, insertion-ordered collection of Keys, looked up by name.
//   - Container: a version header plus an insertion-ordered sequence of Rows.
//
// # Basic Usage
//
// Building and encoding a container:
//
//	c := yad.NewContainer(yad.Version{Major: 0, Minor: 0, Patch: 1, Beta: 1})
//
//	row := yad.NewRow("johan")
//	row.Set(yad.NewKey("name", yad.NewString("Johan")))
//	row.Set(yad.NewKey("age", yad.NewUint8(17)))
//	c.AddRow(row)
//
//	data, err := yad.Encode(c)
//
// Decoding a container:
//
//	c, err := yad.Decode(data)
//	row, ok := c.Row("johan")
//	key, ok := row.Key("age")
//	age, err := key.Value().Uint8()
//
// # Package Structure
//
// This package is the primary interface for working with YAD records. The
// leaf-level byte codecs (tag algebra, fixed-width scalars, length-prefix
// selection, float8/float16 conversion) live in the tag and codec
// subpackages for callers that need to work at that level directly (for
// example, a C-ABI language binding).
package yad
