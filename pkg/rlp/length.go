package rlp

import "math"

// wordBytes is the number of bytes in the platform's native int, matching
// the spec's "usize" length-field ceiling.
const wordBytes = 32 << (^uint(0) >> 63) / 8

// DecodeUsize decodes a big-endian length field of 1..=8 (platform word
// size) bytes, rejecting a leading zero byte (invariant I2). It is used to
// read the long-form length-of-length field of a header, and is exposed so
// callers building their own length-prefixed formats on top of this
// package can reuse the same overflow-checked arithmetic.
func DecodeUsize(bytes []byte) (int, error) {
	if len(bytes) == 0 {
		return 0, &TooShortError{Expected: 1, Got: 0}
	}
	if len(bytes) > wordBytes {
		return 0, &TooBigError{Capacity: wordBytes, Got: len(bytes)}
	}
	if bytes[0] == 0 {
		return 0, ErrInvalidIndirection
	}
	var res uint64
	for _, b := range bytes {
		res = res<<8 | uint64(b)
	}
	// A full wordBytes-byte big-endian value can reach 2^64-1, which
	// overflows the platform's signed int range; this is scenario 4 of
	// the testable properties (a crafted 8-byte length field mapping to
	// an unrepresentable value must be rejected, not wrapped or panicked).
	if res > math.MaxInt {
		return 0, &InvalidLengthError{Expected: math.MaxInt, Got: math.MaxInt}
	}
	return int(res), nil
}
