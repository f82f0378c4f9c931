package rlp

import (
	"math"
	"strconv"
)

// Prototype classifies the shape of an RLP item: an empty buffer, a data
// item of a given byte length, or a list of a given child count.
type Prototype struct {
	kind  prototypeKind
	count int // data byte length, or list item count
}

type prototypeKind uint8

const (
	protoNull prototypeKind = iota
	protoData
	protoList
)

// IsNull reports whether the prototype describes an empty buffer.
func (p Prototype) IsNull() bool { return p.kind == protoNull }

// IsData reports whether the prototype describes a data item, and if so,
// its payload length.
func (p Prototype) IsData() (int, bool) { return p.count, p.kind == protoData }

// IsList reports whether the prototype describes a list, and if so, its
// item count.
func (p Prototype) IsList() (int, bool) { return p.count, p.kind == protoList }

func (p Prototype) String() string {
	switch p.kind {
	case protoData:
		return "Data(" + strconv.Itoa(p.count) + ")"
	case protoList:
		return "List(" + strconv.Itoa(p.count) + ")"
	default:
		return "Null"
	}
}

// PayloadInfo describes the header/payload split of a single RLP item
// located at the start of a byte slice.
type PayloadInfo struct {
	// HeaderLen is the number of prefix bytes (0 for the single-byte form,
	// whose prefix byte is the value itself; 1 for short forms; 1+lenOfLen
	// for long forms).
	HeaderLen int
	// ValueLen is the number of payload bytes following the header.
	ValueLen int
}

// Total returns HeaderLen + ValueLen, the total size in bytes of the item.
func (pi PayloadInfo) Total() int { return pi.HeaderLen + pi.ValueLen }

// PayloadInfoFrom inspects the first 1+8 bytes of bytes (at most) and
// returns the header/payload split of the item starting there. It does not
// check that the full payload is actually present in bytes; callers that
// need that guarantee use payloadInfo (in view.go), which adds the bounds
// check against the buffer length.
func PayloadInfoFrom(bytes []byte) (PayloadInfo, error) {
	if len(bytes) == 0 {
		return PayloadInfo{}, &TooShortError{Expected: 1, Got: 0}
	}
	b0 := bytes[0]
	switch {
	case b0 <= 0x7f:
		return PayloadInfo{HeaderLen: 0, ValueLen: 1}, nil
	case b0 <= 0xb7:
		return PayloadInfo{HeaderLen: 1, ValueLen: int(b0 - 0x80)}, nil
	case b0 <= 0xbf:
		return longFormPayloadInfo(bytes, int(b0-0xb7))
	case b0 <= 0xf7:
		return PayloadInfo{HeaderLen: 1, ValueLen: int(b0 - 0xc0)}, nil
	default:
		return longFormPayloadInfo(bytes, int(b0-0xf7))
	}
}

// longFormPayloadInfo decodes the length-of-length byte lenOfLen for a
// long-form data or list header and validates invariants I2 (no
// zero-prefixed length) and I3 (long form forbidden for payload <= 55).
func longFormPayloadInfo(bytes []byte, lenOfLen int) (PayloadInfo, error) {
	headerLen := 1 + lenOfLen
	if len(bytes) < 2 {
		return PayloadInfo{}, &TooShortError{Expected: 2, Got: len(bytes)}
	}
	if bytes[1] == 0 {
		return PayloadInfo{}, ErrDataLenWithZeroPrefix
	}
	if len(bytes) < headerLen {
		return PayloadInfo{}, &TooShortError{Expected: headerLen, Got: len(bytes)}
	}
	valueLen, err := DecodeUsize(bytes[1:headerLen])
	if err != nil {
		return PayloadInfo{}, err
	}
	if valueLen <= 55 {
		return PayloadInfo{}, ErrInvalidIndirection
	}
	if valueLen > math.MaxInt-headerLen {
		return PayloadInfo{}, &InvalidLengthError{Expected: math.MaxInt, Got: math.MaxInt}
	}
	return PayloadInfo{HeaderLen: headerLen, ValueLen: valueLen}, nil
}
