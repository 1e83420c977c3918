package yad

import (
	"fmt"

	"github.com/KingsBeCattz/yad/codec"
	"github.com/KingsBeCattz/yad/errs"
	"github.com/KingsBeCattz/yad/internal/collision"
	"github.com/KingsBeCattz/yad/internal/pool"
	"github.com/KingsBeCattz/yad/tag"
)

// Row is a named, insertion-ordered collection of Keys, per §4.6. Lookup by
// name is backed by internal/collision.Tracker, generalized from the
// teacher's hash-collision tracker: Tracker.Track's duplicate rejection
// becomes Row.Set's errs.ErrDuplicateKeyName, and Tracker.Names()'s
// insertion-order guarantee becomes Row.Keys()'s insertion-order guarantee.
type Row struct {
	name    string
	keys    []*Key
	tracker *collision.Tracker
}

// NewRow creates an empty Row with the given name.
func NewRow(name string) *Row {
	return &Row{
		name:    name,
		keys:    make([]*Key, 0),
		tracker: collision.NewTracker(),
	}
}

// Name returns the row's name.
func (r *Row) Name() string { return r.name }

// Set adds k to the row. It returns errs.ErrDuplicateKeyName if a key with
// the same name is already present; the existing key is left unchanged.
func (r *Row) Set(k *Key) error {
	if _, ok := r.tracker.Track(k.name); !ok {
		return fmt.Errorf("%w: %q", errs.ErrDuplicateKeyName, k.name)
	}
	r.keys = append(r.keys, k)
	return nil
}

// Key looks up a key by name. ok is false if no key with that name exists.
func (r *Row) Key(name string) (*Key, bool) {
	idx, ok := r.tracker.Index(name)
	if !ok {
		return nil, false
	}
	return r.keys[idx], true
}

// Keys returns the row's keys in insertion order. The returned slice is
// owned by the caller.
func (r *Row) Keys() []*Key {
	cp := make([]*Key, len(r.keys))
	copy(cp, r.keys)
	return cp
}

// Len returns the number of keys in the row.
func (r *Row) Len() int { return len(r.keys) }

func (r *Row) addKey(k *Key) error {
	return r.Set(k)
}

// encodeRow appends the wire form of r to buf: 0xF1 · row-name · (key)* ·
// 0xF2, per §4.6.
func encodeRow(buf *pool.ByteBuffer, r *Row) error {
	if r.name == "" {
		return fmt.Errorf("%w: row name must be non-empty", errs.ErrMalformedRowNameVector)
	}
	if err := codec.ValidateUTF8([]byte(r.name)); err != nil {
		return fmt.Errorf("%w: row name is not valid UTF-8", errs.ErrMalformedRowNameVector)
	}

	buf.MustWriteByte(tag.RowStart)
	if err := encodeLengthPrefixedBytes(buf, tag.FamilyRowName, []byte(r.name)); err != nil {
		return fmt.Errorf("%w: %v", errs.ErrMalformedRowNameVector, err)
	}
	for _, k := range r.keys {
		if err := encodeKey(buf, k); err != nil {
			return err
		}
	}
	buf.MustWriteByte(tag.RowEnd)
	return nil
}

// decodeRow decodes one Row starting at data[off], where data[off] must be
// tag.RowStart. It returns the Row and the offset immediately past the
// closing 0xF2.
func decodeRow(data []byte, off int) (*Row, int, error) {
	if off >= len(data) || data[off] != tag.RowStart {
		return nil, off, fmt.Errorf("%w: expected row start", errs.ErrMalformedContainer)
	}
	pos := off + 1

	if pos >= len(data) {
		return nil, off, errs.ErrUnexpectedEOF
	}
	fam, w := tag.Split(data[pos])
	if fam != tag.FamilyRowName {
		return nil, off, fmt.Errorf("%w: expected row-name tag, got 0x%02X", errs.ErrMalformedRowNameVector, data[pos])
	}

	name, pos2, err := decodeLengthPrefixedBytes(data, pos, w)
	if err != nil {
		return nil, off, fmt.Errorf("%w: %v", errs.ErrMalformedRowNameVector, err)
	}
	if len(name) == 0 {
		return nil, off, fmt.Errorf("%w: row name must be non-empty", errs.ErrMalformedRowNameVector)
	}
	if err := codec.ValidateUTF8(name); err != nil {
		return nil, off, fmt.Errorf("%w: row name is not valid UTF-8", errs.ErrMalformedRowNameVector)
	}

	row := NewRow(string(name))
	pos = pos2

	for {
		if pos >= len(data) {
			return nil, off, errs.ErrUnexpectedEOF
		}
		if data[pos] == tag.RowEnd {
			return row, pos + 1, nil
		}
		if data[pos] != tag.KeyStart {
			return nil, off, errs.ErrMalformedRowVector
		}

		k, next, err := decodeKey(data, pos)
		if err != nil {
			return nil, off, err
		}
		if err := row.addKey(k); err != nil {
			return nil, off, err
		}
		pos = next
	}
}
