package yad

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KingsBeCattz/yad/errs"
	"github.com/KingsBeCattz/yad/internal/pool"
	"github.com/KingsBeCattz/yad/tag"
)

func TestRow_SetAndKey(t *testing.T) {
	r := NewRow("johan")
	require.NoError(t, r.Set(NewKey("name", NewString("Johan"))))
	require.NoError(t, r.Set(NewKey("age", NewUint8(17))))

	k, ok := r.Key("age")
	require.True(t, ok)
	n, err := k.Value().Uint8()
	require.NoError(t, err)
	require.Equal(t, uint8(17), n)

	_, ok = r.Key("missing")
	require.False(t, ok)
}

func TestRow_SetDuplicateKeyNameFails(t *testing.T) {
	r := NewRow("johan")
	require.NoError(t, r.Set(NewKey("age", NewUint8(17))))

	err := r.Set(NewKey("age", NewUint8(18)))
	require.ErrorIs(t, err, errs.ErrDuplicateKeyName)
}

func TestRow_KeysPreservesInsertionOrder(t *testing.T) {
	r := NewRow("johan")
	require.NoError(t, r.Set(NewKey("name", NewString("Johan"))))
	require.NoError(t, r.Set(NewKey("age", NewUint8(17))))

	keys := r.Keys()
	require.Len(t, keys, 2)
	require.Equal(t, "name", keys[0].Name())
	require.Equal(t, "age", keys[1].Name())
}

func TestRow_EncodeDecodeRoundTrip(t *testing.T) {
	r := NewRow("johan")
	require.NoError(t, r.Set(NewKey("name", NewString("Johan"))))
	require.NoError(t, r.Set(NewKey("age", NewUint8(17))))

	buf := pool.Get()
	defer pool.Put(buf)

	require.NoError(t, encodeRow(buf, r))

	got, pos, err := decodeRow(buf.Bytes(), 0)
	require.NoError(t, err)
	require.Equal(t, buf.Len(), pos)
	require.Equal(t, "johan", got.Name())
	require.Equal(t, 2, got.Len())

	k, ok := got.Key("name")
	require.True(t, ok)
	s, err := k.Value().String()
	require.NoError(t, err)
	require.Equal(t, "Johan", s)
}

func TestRow_EncodeEmptyNameFails(t *testing.T) {
	r := NewRow("")
	require.NoError(t, r.Set(NewKey("age", NewUint8(17))))

	buf := pool.Get()
	defer pool.Put(buf)

	err := encodeRow(buf, r)
	require.ErrorIs(t, err, errs.ErrMalformedRowNameVector)
}

func TestRow_DecodeEmptyNameFails(t *testing.T) {
	data := []byte{0xF1, 0x61, 0x00, 0xF2}
	_, _, err := decodeRow(data, 0)
	require.ErrorIs(t, err, errs.ErrMalformedRowNameVector)
}

func TestRow_DecodeDuplicateKeyNameFails(t *testing.T) {
	buf := pool.Get()
	defer pool.Put(buf)

	buf.MustWriteByte(tag.RowStart)
	require.NoError(t, encodeLengthPrefixedBytes(buf, tag.FamilyRowName, []byte("johan")))
	require.NoError(t, encodeKey(buf, NewKey("age", NewUint8(17))))
	require.NoError(t, encodeKey(buf, NewKey("age", NewUint8(18))))
	buf.MustWriteByte(tag.RowEnd)

	_, _, err := decodeRow(buf.Bytes(), 0)
	require.ErrorIs(t, err, errs.ErrDuplicateKeyName)
}
