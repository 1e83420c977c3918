package codec

import "github.com/KingsBeCattz/yad/tag"

// MinimalWidth chooses the smallest length-prefix Width class that can
// represent n, per §4.3: the smallest w in {8,16,32,64} bits such that
// n < 2^w.
func MinimalWidth(n uint64) tag.Width {
	switch {
	case n <= 0xFF:
		return tag.Width1
	case n <= 0xFFFF:
		return tag.Width2
	case n <= 0xFFFFFFFF:
		return tag.Width3
	default:
		return tag.Width4
	}
}

// PutLength writes n into buf at off as a big-endian integer of the byte
// width implied by w (1, 2, 4, or 8 bytes for Width1..Width4).
func PutLength(buf []byte, off int, w tag.Width, n uint64) {
	PutUint(buf, off, w.ByteWidth(), n)
}

// Length reads a length prefix of the byte width implied by w from buf at
// off.
func Length(buf []byte, off int, w tag.Width) uint64 {
	return Uint(buf, off, w.ByteWidth())
}
