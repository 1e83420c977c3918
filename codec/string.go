package codec

import (
	"unicode/utf8"

	"github.com/KingsBeCattz/yad/errs"
)

// ValidateUTF8 returns errs.ErrInvalidUTF8 if b is not well-formed UTF-8.
func ValidateUTF8(b []byte) error {
	if !utf8.Valid(b) {
		return errs.ErrInvalidUTF8
	}
	return nil
}
