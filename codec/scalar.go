// Package codec implements the leaf-level byte codecs the YAD value codec
// composes: fixed-width big-endian scalars, the length-prefix codec, the
// UTF-8 string codec, and the float8/float16 converters.
//
// Every function here is a pure transformation over a byte slice; none of
// them know about rows or containers, and only the length-prefix helpers
// use the tag package (for its Width class). Package yad (the root package)
// is the only caller.
package codec

import (
	"encoding/binary"

	"github.com/KingsBeCattz/yad/errs"
)

// PutUint writes v into buf using the given byte width (1, 2, 4, or 8),
// big-endian. buf must have a length of at least off+width.
func PutUint(buf []byte, off int, width int, v uint64) {
	switch width {
	case 1:
		buf[off] = byte(v)
	case 2:
		binary.BigEndian.PutUint16(buf[off:], uint16(v))
	case 4:
		binary.BigEndian.PutUint32(buf[off:], uint32(v))
	case 8:
		binary.BigEndian.PutUint64(buf[off:], v)
	}
}

// Uint reads a big-endian unsigned integer of the given byte width from
// buf at off. The caller must have already checked that len(buf)-off >= width.
func Uint(buf []byte, off int, width int) uint64 {
	switch width {
	case 1:
		return uint64(buf[off])
	case 2:
		return uint64(binary.BigEndian.Uint16(buf[off:]))
	case 4:
		return uint64(binary.BigEndian.Uint32(buf[off:]))
	case 8:
		return binary.BigEndian.Uint64(buf[off:])
	default:
		return 0
	}
}

// FitsUnsigned reports whether v fits in an unsigned integer of byteWidth
// bytes (1, 2, 4, or 8).
func FitsUnsigned(v uint64, byteWidth int) bool {
	switch byteWidth {
	case 1:
		return v <= 0xFF
	case 2:
		return v <= 0xFFFF
	case 4:
		return v <= 0xFFFFFFFF
	case 8:
		return true
	default:
		return false
	}
}

// FitsSigned reports whether v fits in a two's-complement signed integer of
// byteWidth bytes (1, 2, 4, or 8).
func FitsSigned(v int64, byteWidth int) bool {
	switch byteWidth {
	case 1:
		return v >= -128 && v <= 127
	case 2:
		return v >= -32768 && v <= 32767
	case 4:
		return v >= -2147483648 && v <= 2147483647
	case 8:
		return true
	default:
		return false
	}
}

// CheckWidth validates that byteWidth is one of the four recognised scalar
// widths, returning errs.ErrMalformedValue otherwise.
func CheckWidth(byteWidth int) error {
	switch byteWidth {
	case 1, 2, 4, 8:
		return nil
	default:
		return errs.ErrMalformedValue
	}
}
