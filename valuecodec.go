package yad

import (
	"fmt"
	"math"

	"github.com/KingsBeCattz/yad/codec"
	"github.com/KingsBeCattz/yad/errs"
	"github.com/KingsBeCattz/yad/internal/pool"
	"github.com/KingsBeCattz/yad/tag"
)

// encodeValue appends the wire form of v to buf, per §4.4's encode rules:
// emit the tag for the variant (preserving declared width for numerics),
// then the payload. Strings and arrays always get the minimal length
// prefix width for their length.
func encodeValue(buf *pool.ByteBuffer, v Value) error {
	switch v.kind {
	case KindUint8, KindUint16, KindUint32, KindUint64:
		return encodeUint(buf, v)
	case KindInt8, KindInt16, KindInt32, KindInt64:
		return encodeInt(buf, v)
	case KindFloat8, KindFloat16, KindFloat32, KindFloat64:
		return encodeFloat(buf, v)
	case KindString:
		return encodeLengthPrefixedBytes(buf, tag.FamilyString, []byte(v.str))
	case KindArray:
		return encodeArray(buf, v)
	case KindBool:
		if v.b {
			buf.MustWriteByte(tag.BoolTrue)
		} else {
			buf.MustWriteByte(tag.BoolFalse)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown value kind %v", errs.ErrMalformedValue, v.kind)
	}
}

func kindByteWidth(k Kind) int {
	switch k {
	case KindUint8, KindInt8:
		return 1
	case KindUint16, KindInt16:
		return 2
	case KindUint32, KindInt32:
		return 4
	case KindUint64, KindInt64:
		return 8
	default:
		return 0
	}
}

func encodeUint(buf *pool.ByteBuffer, v Value) error {
	byteWidth := kindByteWidth(v.kind)
	w, ok := tag.WidthForByteWidth(byteWidth)
	if !ok {
		return fmt.Errorf("%w: invalid uint width", errs.ErrMalformedValue)
	}

	buf.MustWriteByte(tag.Make(tag.FamilyUint, w))

	off := buf.ExtendOrGrow(byteWidth)
	codec.PutUint(buf.B, off, byteWidth, v.u64)
	return nil
}

func encodeInt(buf *pool.ByteBuffer, v Value) error {
	byteWidth := kindByteWidth(v.kind)
	w, ok := tag.WidthForByteWidth(byteWidth)
	if !ok {
		return fmt.Errorf("%w: invalid int width", errs.ErrMalformedValue)
	}

	buf.MustWriteByte(tag.Make(tag.FamilyInt, w))

	off := buf.ExtendOrGrow(byteWidth)
	codec.PutUint(buf.B, off, byteWidth, uint64(v.i64))
	return nil
}

func encodeFloat(buf *pool.ByteBuffer, v Value) error {
	switch v.kind {
	case KindFloat8:
		b, err := codec.Float32ToFloat8(v.f32)
		if err != nil {
			return fmt.Errorf("%w: Float8 %v", err, v.f32)
		}
		buf.MustWriteByte(tag.Make(tag.FamilyFloat, tag.Width1))
		buf.MustWriteByte(b)
		return nil
	case KindFloat16:
		bits, err := codec.Float32ToFloat16(v.f32)
		if err != nil {
			return fmt.Errorf("%w: Float16 %v", err, v.f32)
		}
		buf.MustWriteByte(tag.Make(tag.FamilyFloat, tag.Width2))
		off := buf.ExtendOrGrow(2)
		codec.PutUint(buf.B, off, 2, uint64(bits))
		return nil
	case KindFloat32:
		bits := math.Float32bits(v.f32)
		buf.MustWriteByte(tag.Make(tag.FamilyFloat, tag.Width3))
		off := buf.ExtendOrGrow(4)
		codec.PutUint(buf.B, off, 4, uint64(bits))
		return nil
	case KindFloat64:
		bits := math.Float64bits(v.f64)
		buf.MustWriteByte(tag.Make(tag.FamilyFloat, tag.Width4))
		off := buf.ExtendOrGrow(8)
		codec.PutUint(buf.B, off, 8, bits)
		return nil
	default:
		return fmt.Errorf("%w: unknown float kind %v", errs.ErrMalformedValue, v.kind)
	}
}

// encodeLengthPrefixedBytes appends a <family><len:L><bytes> triple using
// the minimal length-prefix width for len(data), per §4.4.
func encodeLengthPrefixedBytes(buf *pool.ByteBuffer, fam tag.Family, data []byte) error {
	w := codec.MinimalWidth(uint64(len(data)))
	buf.MustWriteByte(tag.Make(fam, w))

	prefixWidth := w.ByteWidth()
	off := buf.ExtendOrGrow(prefixWidth)
	codec.PutLength(buf.B, off, w, uint64(len(data)))

	buf.MustWrite(data)
	return nil
}

func encodeArray(buf *pool.ByteBuffer, v Value) error {
	w := codec.MinimalWidth(uint64(len(v.arr)))
	buf.MustWriteByte(tag.Make(tag.FamilyArray, w))

	prefixWidth := w.ByteWidth()
	off := buf.ExtendOrGrow(prefixWidth)
	codec.PutLength(buf.B, off, w, uint64(len(v.arr)))

	for _, elem := range v.arr {
		if err := encodeValue(buf, elem); err != nil {
			return err
		}
	}
	return nil
}

// decodeValue decodes one Value starting at data[off], per §4.4's decode
// rules. It returns the Value and the offset immediately past it.
func decodeValue(data []byte, off int) (Value, int, error) {
	if off >= len(data) {
		return Value{}, off, errs.ErrUnexpectedEOF
	}

	b := data[off]

	if tag.IsBool(b) {
		return NewBool(tag.BoolValue(b)), off + 1, nil
	}

	fam, w := tag.Split(b)
	switch fam {
	case tag.FamilyUint:
		return decodeUint(data, off, w)
	case tag.FamilyInt:
		return decodeInt(data, off, w)
	case tag.FamilyFloat:
		return decodeFloat(data, off, w)
	case tag.FamilyString:
		return decodeString(data, off, w)
	case tag.FamilyArray:
		return decodeArray(data, off, w)
	default:
		return Value{}, off, fmt.Errorf("%w: unexpected tag 0x%02X", errs.ErrMalformedValue, b)
	}
}

func decodeUint(data []byte, off int, w tag.Width) (Value, int, error) {
	if !tag.ValidWidth(w) {
		return Value{}, off, fmt.Errorf("%w: invalid uint width nibble", errs.ErrMalformedValue)
	}
	byteWidth := w.ByteWidth()
	pos := off + 1
	if pos+byteWidth > len(data) {
		return Value{}, off, errs.ErrUnexpectedEOF
	}
	n := codec.Uint(data, pos, byteWidth)

	var v Value
	switch byteWidth {
	case 1:
		v = NewUint8(uint8(n))
	case 2:
		v = NewUint16(uint16(n))
	case 4:
		v = NewUint32(uint32(n))
	case 8:
		v = NewUint64(n)
	}
	return v, pos + byteWidth, nil
}

func decodeInt(data []byte, off int, w tag.Width) (Value, int, error) {
	if !tag.ValidWidth(w) {
		return Value{}, off, fmt.Errorf("%w: invalid int width nibble", errs.ErrMalformedValue)
	}
	byteWidth := w.ByteWidth()
	pos := off + 1
	if pos+byteWidth > len(data) {
		return Value{}, off, errs.ErrUnexpectedEOF
	}
	n := codec.Uint(data, pos, byteWidth)

	var v Value
	switch byteWidth {
	case 1:
		v = NewInt8(int8(n))
	case 2:
		v = NewInt16(int16(n))
	case 4:
		v = NewInt32(int32(n))
	case 8:
		v = NewInt64(int64(n))
	}
	return v, pos + byteWidth, nil
}

func decodeFloat(data []byte, off int, w tag.Width) (Value, int, error) {
	pos := off + 1
	switch w {
	case tag.Width1:
		if pos+1 > len(data) {
			return Value{}, off, errs.ErrUnexpectedEOF
		}
		f := codec.Float8ToFloat32(data[pos])
		return NewFloat8(f), pos + 1, nil
	case tag.Width2:
		if pos+2 > len(data) {
			return Value{}, off, errs.ErrUnexpectedEOF
		}
		bits := uint16(codec.Uint(data, pos, 2))
		f := codec.Float16ToFloat32(bits)
		return NewFloat16(f), pos + 2, nil
	case tag.Width3:
		if pos+4 > len(data) {
			return Value{}, off, errs.ErrUnexpectedEOF
		}
		bits := uint32(codec.Uint(data, pos, 4))
		return NewFloat32(math.Float32frombits(bits)), pos + 4, nil
	case tag.Width4:
		if pos+8 > len(data) {
			return Value{}, off, errs.ErrUnexpectedEOF
		}
		bits := codec.Uint(data, pos, 8)
		return NewFloat64(math.Float64frombits(bits)), pos + 8, nil
	default:
		return Value{}, off, fmt.Errorf("%w: invalid float width nibble", errs.ErrMalformedValue)
	}
}

func decodeString(data []byte, off int, w tag.Width) (Value, int, error) {
	b, pos, err := decodeLengthPrefixedBytes(data, off, w)
	if err != nil {
		return Value{}, off, err
	}
	if err := codec.ValidateUTF8(b); err != nil {
		return Value{}, off, err
	}
	return NewString(string(b)), pos, nil
}

func decodeArray(data []byte, off int, w tag.Width) (Value, int, error) {
	if !tag.ValidWidth(w) {
		return Value{}, off, fmt.Errorf("%w: invalid array length width nibble", errs.ErrMalformedValue)
	}
	prefixWidth := w.ByteWidth()
	pos := off + 1
	if pos+prefixWidth > len(data) {
		return Value{}, off, errs.ErrUnexpectedEOF
	}
	count := codec.Length(data, pos, w)
	pos += prefixWidth

	// count is attacker-controlled and unbounded (up to 2^64-1 for a
	// width-4 prefix); every element is at least one byte on the wire, so
	// the remaining input length is a hard ceiling on how many elements it
	// could possibly supply. Capping the preallocation to that ceiling
	// keeps a malicious or truncated count from driving an immediate
	// makeslice OOM/panic before the first element is even read.
	capHint := count
	if remaining := uint64(len(data) - pos); capHint > remaining {
		capHint = remaining
	}

	elems := make([]Value, 0, int(capHint))
	for i := uint64(0); i < count; i++ {
		elem, next, err := decodeValue(data, pos)
		if err != nil {
			return Value{}, off, err
		}
		elems = append(elems, elem)
		pos = next
	}

	return Value{kind: KindArray, arr: elems}, pos, nil
}

// decodeLengthPrefixedBytes reads <len:L><bytes> at data[off+1:] where the
// tag byte at data[off] already carries the length-prefix width w. It
// returns the raw payload bytes and the offset immediately past them.
func decodeLengthPrefixedBytes(data []byte, off int, w tag.Width) ([]byte, int, error) {
	if !tag.ValidWidth(w) {
		return nil, off, fmt.Errorf("%w: invalid length-prefix width nibble", errs.ErrMalformedValue)
	}
	prefixWidth := w.ByteWidth()
	pos := off + 1
	if pos+prefixWidth > len(data) {
		return nil, off, errs.ErrUnexpectedEOF
	}
	n := codec.Length(data, pos, w)
	pos += prefixWidth

	if pos+int(n) > len(data) {
		return nil, off, errs.ErrUnexpectedEOF
	}

	out := make([]byte, n)
	copy(out, data[pos:pos+int(n)])
	return out, pos + int(n), nil
}
