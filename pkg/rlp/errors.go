package rlp

import (
	"errors"
	"fmt"
)

// Sentinel errors for the fixed-shape decode failures. These carry no
// per-call context, so a package-level value compared with errors.Is is
// enough.
var (
	// ErrExpectedList is returned when a data item is encountered where a
	// list was expected (ItemCount, At, Iter on a non-list View).
	ErrExpectedList = errors.New("rlp: expected list")

	// ErrExpectedData is returned when a list is encountered where a data
	// item was expected (Data on a non-data View), and by String's decoder
	// when the payload is not valid UTF-8.
	ErrExpectedData = errors.New("rlp: expected data")

	// ErrDataLenWithZeroPrefix is returned when a long-form length field's
	// first byte is zero (invariant I2).
	ErrDataLenWithZeroPrefix = errors.New("rlp: long-form length has a leading zero byte")

	// ErrInvalidIndirection is returned when a non-minimal encoding is
	// detected: a single byte value wrapped in a short-string header (I1),
	// a long-form header whose decoded length is <= 55 (I3), or a
	// fixed-width integer payload with a leading zero byte (I4).
	ErrInvalidIndirection = errors.New("rlp: non-canonical (non-minimal) encoding")

	// ErrNullTerminatedString is returned when a string payload contains a
	// NUL byte (invariant I7).
	ErrNullTerminatedString = errors.New("rlp: string contains a NUL byte")

	// ErrIncorrectListLen is returned when an Optional-shaped list has a
	// length outside {0, 1}.
	ErrIncorrectListLen = errors.New("rlp: list length must be 0 or 1 for an optional value")
)

// TooShortError is returned when a buffer ends before the declared payload
// completes. Expected and Got are usually byte counts (bytes needed versus
// bytes available); View.At's declared-payload bounds check instead reports
// header-inclusive offsets within the list item (the offset reached versus
// the last offset of the declared payload).
type TooShortError struct {
	requireKeyedFields
	Expected int
	Got      int
}

func (e *TooShortError) Error() string {
	return fmt.Sprintf("rlp: input too short: expected %d bytes, got %d", e.Expected, e.Got)
}

// TooBigError is returned when a decoded payload exceeds the target type's
// fixed capacity (e.g. 9 bytes into a uint64, 33 bytes into a 256-bit
// integer, or more bytes than a fixed hash's declared size).
type TooBigError struct {
	requireKeyedFields
	Capacity int
	Got      int
}

func (e *TooBigError) Error() string {
	return fmt.Sprintf("rlp: payload too big: capacity %d bytes, got %d", e.Capacity, e.Got)
}

// InvalidLengthError is returned when computing payload bounds overflows
// the platform int range while decoding a long-form length field.
type InvalidLengthError struct {
	requireKeyedFields
	Expected int
	Got      int
}

func (e *InvalidLengthError) Error() string {
	return fmt.Sprintf("rlp: invalid length: expected %d, got %d", e.Expected, e.Got)
}

// InconsistentLengthAndDataError is returned when a declared payload length
// runs past the bytes actually available in the buffer.
type InconsistentLengthAndDataError struct {
	requireKeyedFields
	Max   int
	Index int
}

func (e *InconsistentLengthAndDataError) Error() string {
	return fmt.Sprintf("rlp: declared length runs past available data: have %d bytes, need index %d", e.Max, e.Index)
}

// requireKeyedFields forces struct literals of these error types to use
// keyed fields (Field: value), so a future field addition can't silently
// shift positional arguments at call sites.
type requireKeyedFields struct{}
