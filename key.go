package yad

import (
	"fmt"

	"github.com/KingsBeCattz/yad/codec"
	"github.com/KingsBeCattz/yad/errs"
	"github.com/KingsBeCattz/yad/internal/pool"
	"github.com/KingsBeCattz/yad/tag"
)

// Key is a named Value: the atomic name→datum pair a Row holds, per §4.5.
type Key struct {
	name  string
	value Value
}

// NewKey creates a Key with the given name and value. name must be non-empty
// UTF-8; that invariant is enforced at encode time (empty names and names
// that are not valid UTF-8 both fail with errs.ErrMalformedKeyNameVector),
// not here, so callers can build a Key before deciding on a final name.
func NewKey(name string, value Value) *Key {
	return &Key{name: name, value: value}
}

// Name returns the key's name.
func (k *Key) Name() string { return k.name }

// Value returns the key's value.
func (k *Key) Value() Value { return k.value }

// SetValue replaces the key's value in place.
func (k *Key) SetValue(v Value) { k.value = v }

// encodeKey appends the wire form of k to buf: 0xF3 · key-name · value ·
// 0xF4, per §4.5.
func encodeKey(buf *pool.ByteBuffer, k *Key) error {
	if k.name == "" {
		return fmt.Errorf("%w: key name must be non-empty", errs.ErrMalformedKeyNameVector)
	}
	if err := codec.ValidateUTF8([]byte(k.name)); err != nil {
		return fmt.Errorf("%w: key name is not valid UTF-8", errs.ErrMalformedKeyNameVector)
	}

	buf.MustWriteByte(tag.KeyStart)
	if err := encodeLengthPrefixedBytes(buf, tag.FamilyKeyName, []byte(k.name)); err != nil {
		return fmt.Errorf("%w: %v", errs.ErrMalformedKeyNameVector, err)
	}
	if err := encodeValue(buf, k.value); err != nil {
		return err
	}
	buf.MustWriteByte(tag.KeyEnd)
	return nil
}

// decodeKey decodes one Key starting at data[off], where data[off] must be
// tag.KeyStart. It returns the Key and the offset immediately past the
// closing 0xF4.
func decodeKey(data []byte, off int) (*Key, int, error) {
	if off >= len(data) || data[off] != tag.KeyStart {
		return nil, off, fmt.Errorf("%w: expected key start", errs.ErrMalformedRowVector)
	}
	pos := off + 1

	if pos >= len(data) {
		return nil, off, errs.ErrUnexpectedEOF
	}
	fam, w := tag.Split(data[pos])
	if fam != tag.FamilyKeyName {
		return nil, off, fmt.Errorf("%w: expected key-name tag, got 0x%02X", errs.ErrMalformedKeyNameVector, data[pos])
	}

	name, pos2, err := decodeLengthPrefixedBytes(data, pos, w)
	if err != nil {
		return nil, off, fmt.Errorf("%w: %v", errs.ErrMalformedKeyNameVector, err)
	}
	if len(name) == 0 {
		return nil, off, fmt.Errorf("%w: key name must be non-empty", errs.ErrMalformedKeyNameVector)
	}
	if err := codec.ValidateUTF8(name); err != nil {
		return nil, off, fmt.Errorf("%w: key name is not valid UTF-8", errs.ErrMalformedKeyNameVector)
	}

	val, pos3, err := decodeValue(data, pos2)
	if err != nil {
		return nil, off, err
	}

	if pos3 >= len(data) || data[pos3] != tag.KeyEnd {
		return nil, off, errs.ErrMalformedKeyVector
	}

	return &Key{name: string(name), value: val}, pos3 + 1, nil
}
