package tag

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMakeSplit_RoundTrips(t *testing.T) {
	b := Make(FamilyUint, Width3)
	fam, w := Split(b)
	require.Equal(t, FamilyUint, fam)
	require.Equal(t, Width3, w)
}

func TestWidthForByteWidth(t *testing.T) {
	cases := []struct {
		byteWidth int
		want      Width
		ok        bool
	}{
		{1, Width1, true},
		{2, Width2, true},
		{4, Width3, true},
		{8, Width4, true},
		{3, 0, false},
	}

	for _, c := range cases {
		w, ok := WidthForByteWidth(c.byteWidth)
		require.Equal(t, c.ok, ok)
		if c.ok {
			require.Equal(t, c.want, w)
		}
	}
}

func TestWidth_ByteWidthAndPrefixBits(t *testing.T) {
	require.Equal(t, 1, Width1.ByteWidth())
	require.Equal(t, 8, Width1.PrefixBits())
	require.Equal(t, 8, Width4.ByteWidth())
	require.Equal(t, 64, Width4.PrefixBits())
}

func TestIsBoolAndBoolValue(t *testing.T) {
	require.True(t, IsBool(BoolFalse))
	require.True(t, IsBool(BoolTrue))
	require.True(t, IsBool(0x8F))
	require.False(t, IsBool(0x11))

	require.False(t, BoolValue(BoolFalse))
	require.True(t, BoolValue(BoolTrue))
	require.True(t, BoolValue(0x8F))
}

func TestValidWidth(t *testing.T) {
	require.True(t, ValidWidth(Width1))
	require.True(t, ValidWidth(Width4))
	require.False(t, ValidWidth(Width(0)))
	require.False(t, ValidWidth(Width(5)))
}

func TestFamily_String(t *testing.T) {
	require.Equal(t, "Uint", FamilyUint.String())
	require.Equal(t, "KeyName", FamilyKeyName.String())
	require.Equal(t, "Unknown", Family(0xFF).String())
}

func TestWidth_String(t *testing.T) {
	require.Equal(t, "Width1", Width1.String())
	require.Equal(t, "Unknown", Width(0).String())
}
