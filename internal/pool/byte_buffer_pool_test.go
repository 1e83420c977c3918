package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteBuffer_MustWrite(t *testing.T) {
	bb := NewByteBuffer(0)
	bb.MustWrite([]byte{1, 2, 3})

	require.Equal(t, []byte{1, 2, 3}, bb.Bytes())
	require.Equal(t, 3, bb.Len())
}

func TestByteBuffer_MustWriteByte(t *testing.T) {
	bb := NewByteBuffer(0)
	bb.MustWriteByte(0xF0)
	bb.MustWriteByte(0x01)

	require.Equal(t, []byte{0xF0, 0x01}, bb.Bytes())
}

func TestByteBuffer_Grow_PreservesExistingData(t *testing.T) {
	bb := NewByteBuffer(2)
	bb.MustWrite([]byte{1, 2})
	bb.Grow(1024)

	require.GreaterOrEqual(t, bb.Cap(), 1026)
	require.Equal(t, []byte{1, 2}, bb.Bytes())
}

func TestByteBuffer_Reset(t *testing.T) {
	bb := NewByteBuffer(0)
	bb.MustWrite([]byte{1, 2, 3})
	bb.Reset()

	require.Equal(t, 0, bb.Len())
	require.Equal(t, []byte{}, bb.Bytes())
}

func TestByteBuffer_ExtendOrGrow_WritesAtReturnedOffset(t *testing.T) {
	bb := NewByteBuffer(0)
	bb.MustWrite([]byte{0xAA})

	off := bb.ExtendOrGrow(2)
	require.Equal(t, 1, off)
	require.Equal(t, 3, bb.Len())

	bb.B[off] = 0x01
	bb.B[off+1] = 0x02
	require.Equal(t, []byte{0xAA, 0x01, 0x02}, bb.Bytes())
}

func TestByteBuffer_Extend_FailsWithoutSpareCapacity(t *testing.T) {
	bb := NewByteBuffer(1)
	bb.MustWrite([]byte{0x01})

	ok := bb.Extend(1024)
	require.False(t, ok)
	require.Equal(t, 1, bb.Len())
}

func TestByteBufferPool_GetPut(t *testing.T) {
	p := NewByteBufferPool(16, 64)

	bb := p.Get()
	require.NotNil(t, bb)
	bb.MustWrite([]byte{1, 2, 3})

	p.Put(bb)

	bb2 := p.Get()
	require.Equal(t, 0, bb2.Len())
}

func TestByteBufferPool_DiscardsOversizedBuffers(t *testing.T) {
	p := NewByteBufferPool(4, 8)

	bb := p.Get()
	bb.Grow(1024)
	p.Put(bb) // exceeds maxThreshold, should be discarded rather than pooled

	bb2 := p.Get()
	require.Less(t, bb2.Cap(), 1024) // fresh buffer from New(), not the oversized one
}

func TestGetPut_DefaultPool(t *testing.T) {
	bb := Get()
	require.NotNil(t, bb)
	require.Equal(t, 0, bb.Len())

	bb.MustWrite([]byte{1, 2, 3, 4})
	Put(bb)
}
