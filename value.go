package yad

import "github.com/KingsBeCattz/yad/errs"

// Kind identifies the concrete variant held by a Value. Kind is the Go
// realisation of the tag's (Family, Width) pair per spec §9's "closed
// algebraic sum" design note: each width gets its own arm instead of a
// single numeric type plus a runtime width field, so a Uint16 can never be
// silently re-encoded as a Uint8.
type Kind uint8

const (
	KindUint8 Kind = iota
	KindUint16
	KindUint32
	KindUint64
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindFloat8
	KindFloat16
	KindFloat32
	KindFloat64
	KindString
	KindArray
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindUint8:
		return "Uint8"
	case KindUint16:
		return "Uint16"
	case KindUint32:
		return "Uint32"
	case KindUint64:
		return "Uint64"
	case KindInt8:
		return "Int8"
	case KindInt16:
		return "Int16"
	case KindInt32:
		return "Int32"
	case KindInt64:
		return "Int64"
	case KindFloat8:
		return "Float8"
	case KindFloat16:
		return "Float16"
	case KindFloat32:
		return "Float32"
	case KindFloat64:
		return "Float64"
	case KindString:
		return "String"
	case KindArray:
		return "Array"
	case KindBool:
		return "Bool"
	default:
		return "Unknown"
	}
}

// Value is a tagged datum: one of the numeric widths, a UTF-8 string, a
// heterogeneous array of Values, or a boolean.
//
// Value is an immutable value type; constructors return a Value by value,
// and NewArray and Array copy the element slice, so a Value shares no
// backing array with its caller (mirroring the "no interior sharing"
// lifecycle rule in spec §3).
type Value struct {
	kind Kind
	u64  uint64
	i64  int64
	f32  float32
	f64  float64
	str  string
	arr  []Value
	b    bool
}

// Kind returns the concrete variant held by v.
func (v Value) Kind() Kind { return v.kind }

// Constructors, one per variant arm.

func NewUint8(n uint8) Value   { return Value{kind: KindUint8, u64: uint64(n)} }
func NewUint16(n uint16) Value { return Value{kind: KindUint16, u64: uint64(n)} }
func NewUint32(n uint32) Value { return Value{kind: KindUint32, u64: uint64(n)} }
func NewUint64(n uint64) Value { return Value{kind: KindUint64, u64: n} }

func NewInt8(n int8) Value   { return Value{kind: KindInt8, i64: int64(n)} }
func NewInt16(n int16) Value { return Value{kind: KindInt16, i64: int64(n)} }
func NewInt32(n int32) Value { return Value{kind: KindInt32, i64: int64(n)} }
func NewInt64(n int64) Value { return Value{kind: KindInt64, i64: n} }

func NewFloat8(n float32) Value  { return Value{kind: KindFloat8, f32: n} }
func NewFloat16(n float32) Value { return Value{kind: KindFloat16, f32: n} }
func NewFloat32(n float32) Value { return Value{kind: KindFloat32, f32: n} }
func NewFloat64(n float64) Value { return Value{kind: KindFloat64, f64: n} }

func NewString(s string) Value { return Value{kind: KindString, str: s} }

// NewArray wraps elems as a heterogeneous Array Value. elems is copied
// defensively so later mutation of the caller's slice does not affect v.
func NewArray(elems []Value) Value {
	cp := make([]Value, len(elems))
	copy(cp, elems)
	return Value{kind: KindArray, arr: cp}
}

func NewBool(b bool) Value { return Value{kind: KindBool, b: b} }

// Extractors. Each returns errs.ErrValueIsNotA<Family> if v does not hold
// the requested kind.

func (v Value) Uint8() (uint8, error) {
	if v.kind != KindUint8 {
		return 0, errs.ErrValueIsNotAUint
	}
	return uint8(v.u64), nil
}

func (v Value) Uint16() (uint16, error) {
	if v.kind != KindUint16 {
		return 0, errs.ErrValueIsNotAUint
	}
	return uint16(v.u64), nil
}

func (v Value) Uint32() (uint32, error) {
	if v.kind != KindUint32 {
		return 0, errs.ErrValueIsNotAUint
	}
	return uint32(v.u64), nil
}

func (v Value) Uint64() (uint64, error) {
	if v.kind != KindUint64 {
		return 0, errs.ErrValueIsNotAUint
	}
	return v.u64, nil
}

func (v Value) Int8() (int8, error) {
	if v.kind != KindInt8 {
		return 0, errs.ErrValueIsNotAnInt
	}
	return int8(v.i64), nil
}

func (v Value) Int16() (int16, error) {
	if v.kind != KindInt16 {
		return 0, errs.ErrValueIsNotAnInt
	}
	return int16(v.i64), nil
}

func (v Value) Int32() (int32, error) {
	if v.kind != KindInt32 {
		return 0, errs.ErrValueIsNotAnInt
	}
	return int32(v.i64), nil
}

func (v Value) Int64() (int64, error) {
	if v.kind != KindInt64 {
		return 0, errs.ErrValueIsNotAnInt
	}
	return v.i64, nil
}

func (v Value) Float8() (float32, error) {
	if v.kind != KindFloat8 {
		return 0, errs.ErrValueIsNotAFloat
	}
	return v.f32, nil
}

func (v Value) Float16() (float32, error) {
	if v.kind != KindFloat16 {
		return 0, errs.ErrValueIsNotAFloat
	}
	return v.f32, nil
}

func (v Value) Float32() (float32, error) {
	if v.kind != KindFloat32 {
		return 0, errs.ErrValueIsNotAFloat
	}
	return v.f32, nil
}

func (v Value) Float64() (float64, error) {
	if v.kind != KindFloat64 {
		return 0, errs.ErrValueIsNotAFloat
	}
	return v.f64, nil
}

func (v Value) String() (string, error) {
	if v.kind != KindString {
		return "", errs.ErrValueIsNotAString
	}
	return v.str, nil
}

// Array returns the elements of an Array Value. The returned slice is
// owned by the caller; it is a defensive copy of v's backing array.
func (v Value) Array() ([]Value, error) {
	if v.kind != KindArray {
		return nil, errs.ErrValueIsNotAnArray
	}
	cp := make([]Value, len(v.arr))
	copy(cp, v.arr)
	return cp, nil
}

func (v Value) Bool() (bool, error) {
	if v.kind != KindBool {
		return false, errs.ErrValueIsNotABool
	}
	return v.b, nil
}

// Equal reports whether v and other hold the same Kind and logical value.
// Float8/Float16/Float32 are compared via their Go float32 representation;
// NaN is considered equal to NaN for this purpose (unlike Go's native ==),
// whatever the payload, since the codec's round-trip properties are stated
// over decoded values and Float8/Float16 NaN payloads are canonicalised on
// encode (§4.2).
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}

	switch v.kind {
	case KindUint8, KindUint16, KindUint32, KindUint64:
		return v.u64 == other.u64
	case KindInt8, KindInt16, KindInt32, KindInt64:
		return v.i64 == other.i64
	case KindFloat8, KindFloat16, KindFloat32:
		return floatEqual(float64(v.f32), float64(other.f32))
	case KindFloat64:
		return floatEqual(v.f64, other.f64)
	case KindString:
		return v.str == other.str
	case KindBool:
		return v.b == other.b
	case KindArray:
		if len(v.arr) != len(other.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(other.arr[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func floatEqual(a, b float64) bool {
	if a != a && b != b { // both NaN
		return true
	}
	return a == b
}
