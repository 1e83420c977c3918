package yad

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KingsBeCattz/yad/internal/pool"
	"github.com/KingsBeCattz/yad/tag"
)

func roundTripValue(t *testing.T, v Value) Value {
	t.Helper()

	buf := pool.Get()
	defer pool.Put(buf)

	require.NoError(t, encodeValue(buf, v))

	got, pos, err := decodeValue(buf.Bytes(), 0)
	require.NoError(t, err)
	require.Equal(t, buf.Len(), pos)
	return got
}

func TestEncodeDecodeValue_Scalars(t *testing.T) {
	values := []Value{
		NewUint8(1), NewUint16(300), NewUint32(70000), NewUint64(1 << 40),
		NewInt8(-1), NewInt16(-300), NewInt32(-70000), NewInt64(-(1 << 40)),
		NewFloat8(2), NewFloat16(2.5), NewFloat32(3.14), NewFloat64(2.71828),
		NewString("Johan"), NewBool(true), NewBool(false),
	}

	for _, v := range values {
		got := roundTripValue(t, v)
		require.True(t, v.Equal(got), "%v != %v", v, got)
	}
}

func TestEncodeDecodeValue_Array(t *testing.T) {
	v := NewArray([]Value{NewUint8(1), NewString("x"), NewBool(true)})
	got := roundTripValue(t, v)
	require.True(t, v.Equal(got))
}

func TestEncodeDecodeValue_NestedArray(t *testing.T) {
	inner := NewArray([]Value{NewUint8(1), NewUint8(2)})
	outer := NewArray([]Value{inner, NewString("tag")})

	got := roundTripValue(t, outer)
	require.True(t, outer.Equal(got))
}

func TestEncodeDecodeValue_ArrayOf256ElementsPromotesLengthPrefixWidth(t *testing.T) {
	elems := make([]Value, 256)
	for i := range elems {
		elems[i] = NewUint8(uint8(i))
	}
	v := NewArray(elems)

	buf := pool.Get()
	defer pool.Put(buf)

	require.NoError(t, encodeValue(buf, v))

	fam, w := tag.Split(buf.Bytes()[0])
	require.Equal(t, tag.FamilyArray, fam)
	require.Equal(t, tag.Width2, w, "256 elements must promote the length prefix from 8-bit to 16-bit")

	got, pos, err := decodeValue(buf.Bytes(), 0)
	require.NoError(t, err)
	require.Equal(t, buf.Len(), pos)
	require.True(t, v.Equal(got))
}

func TestEncodeDecodeValue_DeeplyNestedArray(t *testing.T) {
	depth3 := NewArray([]Value{NewUint8(1), NewUint8(2)})
	depth2 := NewArray([]Value{depth3, NewString("leaf")})
	depth1 := NewArray([]Value{depth2, NewBool(true)})

	got := roundTripValue(t, depth1)
	require.True(t, depth1.Equal(got))
}

func TestEncodeDecodeValue_EmptyArray(t *testing.T) {
	v := NewArray(nil)
	got := roundTripValue(t, v)
	require.True(t, v.Equal(got))
}

func TestDecodeValue_UnrecognisedTagFails(t *testing.T) {
	_, _, err := decodeValue([]byte{0x90}, 0)
	require.Error(t, err)
}

func TestDecodeValue_TruncatedInputFails(t *testing.T) {
	_, _, err := decodeValue([]byte{0x12}, 0)
	require.Error(t, err)
}

func TestEncodeValue_StringMinimizesLengthPrefixWidth(t *testing.T) {
	buf := pool.Get()
	defer pool.Put(buf)

	require.NoError(t, encodeValue(buf, NewString("hi")))
	require.Equal(t, byte(0x41), buf.Bytes()[0]) // family 0x4, width 1
}
