package yad

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValue_Kind(t *testing.T) {
	require.Equal(t, KindUint8, NewUint8(1).Kind())
	require.Equal(t, KindInt64, NewInt64(-1).Kind())
	require.Equal(t, KindFloat64, NewFloat64(1.5).Kind())
	require.Equal(t, KindString, NewString("x").Kind())
	require.Equal(t, KindBool, NewBool(true).Kind())
	require.Equal(t, KindArray, NewArray(nil).Kind())
}

func TestValue_ExtractorMismatchReturnsError(t *testing.T) {
	v := NewUint8(5)

	_, err := v.Int8()
	require.Error(t, err)

	_, err = v.String()
	require.Error(t, err)

	n, err := v.Uint8()
	require.NoError(t, err)
	require.Equal(t, uint8(5), n)
}

func TestValue_ArrayIsDefensivelyCopied(t *testing.T) {
	elems := []Value{NewUint8(1), NewUint8(2)}
	v := NewArray(elems)

	elems[0] = NewUint8(99)

	out, err := v.Array()
	require.NoError(t, err)
	n, err := out[0].Uint8()
	require.NoError(t, err)
	require.Equal(t, uint8(1), n)
}

func TestValue_EqualNaNEqualsNaN(t *testing.T) {
	a := NewFloat64(math.NaN())
	b := NewFloat64(math.NaN())
	require.True(t, a.Equal(b))
}

func TestValue_EqualDifferentKindsAreNotEqual(t *testing.T) {
	require.False(t, NewUint8(1).Equal(NewInt8(1)))
}

func TestValue_EqualArraysCompareElementwise(t *testing.T) {
	a := NewArray([]Value{NewUint8(1), NewString("x")})
	b := NewArray([]Value{NewUint8(1), NewString("x")})
	c := NewArray([]Value{NewUint8(1), NewString("y")})

	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
}

func TestKind_String(t *testing.T) {
	require.Equal(t, "Uint8", KindUint8.String())
	require.Equal(t, "Array", KindArray.String())
	require.Equal(t, "Unknown", Kind(255).String())
}
