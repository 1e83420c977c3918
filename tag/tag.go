// Package tag defines the one-byte tag algebra that prefixes every datum in
// the YAD wire format.
//
// A tag partitions as THHHH_LLLL: the high nibble selects a type Family, the
// low nibble selects a Width class (byte width for numerics, length-prefix
// width for strings/arrays). Bool is the exception and uses the full byte.
package tag

// Family is the high nibble of a tag byte, selecting the semantic type of
// the datum that follows.
type Family uint8

const (
	FamilyUint    Family = 0x1
	FamilyInt     Family = 0x2
	FamilyFloat   Family = 0x3
	FamilyString  Family = 0x4
	FamilyArray   Family = 0x5
	FamilyRowName Family = 0x6
	FamilyKeyName Family = 0x7
	FamilyBool    Family = 0x8
)

func (f Family) String() string {
	switch f {
	case FamilyUint:
		return "Uint"
	case FamilyInt:
		return "Int"
	case FamilyFloat:
		return "Float"
	case FamilyString:
		return "String"
	case FamilyArray:
		return "Array"
	case FamilyRowName:
		return "RowName"
	case FamilyKeyName:
		return "KeyName"
	case FamilyBool:
		return "Bool"
	default:
		return "Unknown"
	}
}

// Width is the low nibble of a tag byte for the scalar/string/array
// families. It denotes either a scalar byte width (1/2/4/8) or a
// length-prefix bit width (8/16/32/64), depending on the enclosing family.
type Width uint8

const (
	Width1 Width = 0x1 // byte width 1, or an 8-bit length prefix
	Width2 Width = 0x2 // byte width 2, or a 16-bit length prefix
	Width3 Width = 0x3 // byte width 4, or a 32-bit length prefix
	Width4 Width = 0x4 // byte width 8, or a 64-bit length prefix
)

func (w Width) String() string {
	switch w {
	case Width1:
		return "Width1"
	case Width2:
		return "Width2"
	case Width3:
		return "Width3"
	case Width4:
		return "Width4"
	default:
		return "Unknown"
	}
}

// ByteWidth returns the scalar payload width in bytes for a numeric Width
// class (1/2/4/8). For Families that carry a length-prefix instead of a
// scalar (String, Array, RowName, KeyName) it is the byte width of that
// prefix, i.e. PrefixBits()/8.
func (w Width) ByteWidth() int {
	switch w {
	case Width1:
		return 1
	case Width2:
		return 2
	case Width3:
		return 4
	case Width4:
		return 8
	default:
		return 0
	}
}

// PrefixBits returns the length-prefix bit width for a length-carrying
// Width class (8/16/32/64).
func (w Width) PrefixBits() int {
	switch w {
	case Width1:
		return 8
	case Width2:
		return 16
	case Width3:
		return 32
	case Width4:
		return 64
	default:
		return 0
	}
}

// WidthForByteWidth maps a scalar byte width (1/2/4/8) back to its Width
// class. ok is false for any other byte width.
func WidthForByteWidth(byteWidth int) (w Width, ok bool) {
	switch byteWidth {
	case 1:
		return Width1, true
	case 2:
		return Width2, true
	case 4:
		return Width3, true
	case 8:
		return Width4, true
	default:
		return 0, false
	}
}

// Reserved framing sentinel bytes. These are never composed from a
// Family/Width pair; they stand alone as full tag bytes.
const (
	VersionHeader byte = 0xF0
	RowStart      byte = 0xF1
	RowEnd        byte = 0xF2
	KeyStart      byte = 0xF3
	KeyEnd        byte = 0xF4
)

// Bool tag bytes. The canonical encoder emits only these two, but decode
// must tolerate the full 0x81..0x8F range as "true" (see IsBool/BoolValue).
const (
	BoolFalse byte = 0x80
	BoolTrue  byte = 0x81
)

// Make composes a tag byte from a Family and a Width.
func Make(f Family, w Width) byte {
	return byte(f)<<4 | byte(w)
}

// Split decomposes a tag byte into its Family and Width.
func Split(b byte) (Family, Width) {
	return Family(b >> 4), Width(b & 0x0F)
}

// IsBool reports whether b falls in the bool tag range 0x80..0x8F.
func IsBool(b byte) bool {
	return b&0xF0 == 0x80
}

// BoolValue decodes a bool tag byte in the 0x80..0x8F range. 0x80 is
// false; any other byte in range is true, per spec.
func BoolValue(b byte) bool {
	return b != BoolFalse
}

// ValidWidth reports whether w is one of the four recognised width classes.
func ValidWidth(w Width) bool {
	switch w {
	case Width1, Width2, Width3, Width4:
		return true
	default:
		return false
	}
}
