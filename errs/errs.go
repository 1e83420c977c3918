// Package errs defines the closed set of sentinel errors returned by the
// YAD codec. Operations that need to attach context wrap one of these with
// fmt.Errorf("%w: detail", errs.ErrXxx) so callers can still match with
// errors.Is while getting an informative message.
package errs

import "errors"

// Domain errors: the caller supplied an invalid in-memory value.
var (
	ErrNumberOutOfRange = errors.New("number out of range for target type")
	ErrInvalidUTF8      = errors.New("invalid UTF-8")
	ErrNullPointer      = errors.New("null pointer")
)

// Structural errors: the input bytes are malformed.
var (
	ErrMalformedVersionHeader = errors.New("malformed version header")
	ErrMalformedContainer     = errors.New("malformed container")
	ErrMalformedRowVector     = errors.New("malformed row vector")
	ErrMalformedRowNameVector = errors.New("malformed row name vector")
	ErrMalformedKeyVector     = errors.New("malformed key vector")
	ErrMalformedKeyNameVector = errors.New("malformed key name vector")
	ErrMalformedValue         = errors.New("malformed value")
	ErrUnexpectedEOF          = errors.New("unexpected end of input")
	ErrDuplicateKeyName       = errors.New("duplicate key name")
	ErrDuplicateRowName       = errors.New("duplicate row name")
)

// Type-mismatch errors: a decoded Value does not match the requested
// extraction.
var (
	ErrValueIsNotAUint   = errors.New("value is not a Uint")
	ErrValueIsNotAnInt   = errors.New("value is not an Int")
	ErrValueIsNotAFloat  = errors.New("value is not a Float")
	ErrValueIsNotAString = errors.New("value is not a String")
	ErrValueIsNotAnArray = errors.New("value is not an Array")
	ErrValueIsNotABool   = errors.New("value is not a Bool")
)
