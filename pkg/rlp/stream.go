package rlp

import (
	"encoding/binary"
	"errors"
)

// ErrEndListMismatch is returned when EndList is called without a matching,
// still-open BeginList.
var ErrEndListMismatch = errors.New("rlp: EndList called without matching BeginList")

// Stream builds an RLP encoding incrementally. Byte strings and fixed-size
// values know their length before any bytes are written, so their headers
// are written directly; a list's length isn't known until every child has
// been appended, so BeginList reserves a single placeholder header byte and
// EndList patches it once the payload length is final — rewriting that byte
// in place for a short-form header (payload <= 55 bytes), or splicing in the
// extra length-of-length bytes a long-form header needs.
type Stream struct {
	out       []byte
	listStack []int
}

// NewStream returns an empty Stream ready for appends.
func NewStream() *Stream {
	return &Stream{}
}

// Reset discards any buffered output and open lists, so the Stream can be
// reused (see EncoderPool).
func (s *Stream) Reset() {
	s.out = s.out[:0]
	s.listStack = s.listStack[:0]
}

// Out returns the bytes encoded so far. It is only well-formed once every
// BeginList has a matching EndList; the result aliases the Stream's internal
// buffer and must be copied before the Stream is reused or reset.
func (s *Stream) Out() []byte { return s.out }

// AppendValue encodes v by invoking its EncodeRLP method.
func (s *Stream) AppendValue(v Encoder) error {
	return v.EncodeRLP(s)
}

// AppendRaw copies already-encoded RLP bytes (e.g. from a View) directly
// into the stream, unchanged.
func (s *Stream) AppendRaw(raw []byte) {
	s.out = append(s.out, raw...)
}

// AppendEmptyData appends the canonical empty byte string, 0x80.
func (s *Stream) AppendEmptyData() {
	s.out = append(s.out, 0x80)
}

// Append appends data as an RLP byte string, applying the single-byte
// shortcut (invariant I1) and the short/long form boundary (invariant I3).
func (s *Stream) Append(data []byte) {
	s.out = AppendBytes(s.out, data)
}

// BeginList reserves a placeholder list header and pushes it onto the open-list
// stack. Every BeginList must be paired with exactly one EndList, in LIFO
// order; nested lists are built by calling BeginList again before closing
// the outer one.
func (s *Stream) BeginList() {
	s.listStack = append(s.listStack, len(s.out))
	s.out = append(s.out, 0)
}

// EndList closes the most recently opened list, computing its payload
// length from everything appended since the matching BeginList and writing
// the final header.
func (s *Stream) EndList() error {
	n := len(s.listStack)
	if n == 0 {
		return ErrEndListMismatch
	}
	offset := s.listStack[n-1]
	s.listStack = s.listStack[:n-1]
	payloadLen := len(s.out) - offset - 1
	s.patchListHeader(offset, payloadLen)
	return nil
}

// patchListHeader writes the final list header at offset, where a single
// placeholder byte was previously reserved by BeginList.
func (s *Stream) patchListHeader(offset, payloadLen int) {
	if payloadLen <= 55 {
		s.out[offset] = 0xc0 + byte(payloadLen)
		return
	}
	lb := putUintBE(uint64(payloadLen))
	header := make([]byte, 1+len(lb))
	header[0] = 0xf7 + byte(len(lb))
	copy(header[1:], lb)

	tail := append(header, s.out[offset+1:]...)
	s.out = append(s.out[:offset], tail...)

	extra := len(header) - 1
	for i := range s.listStack {
		if s.listStack[i] > offset {
			s.listStack[i] += extra
		}
	}
}

// AppendBytes appends the RLP encoding of data to dst: the single-byte
// shortcut (I1) for a lone byte below 0x80, a short-form header for
// payloads up to 55 bytes, and a long-form header beyond that (I3).
func AppendBytes(dst, data []byte) []byte {
	n := len(data)
	if n == 1 && data[0] <= 0x7f {
		return append(dst, data[0])
	}
	if n <= 55 {
		dst = append(dst, 0x80+byte(n))
		return append(dst, data...)
	}
	lb := putUintBE(uint64(n))
	dst = append(dst, 0xb7+byte(len(lb)))
	dst = append(dst, lb...)
	return append(dst, data...)
}

// putUintBE encodes u as big-endian with no leading zero bytes; u == 0
// encodes as a single zero byte, matching the length-of-length field's
// minimum width of one byte.
func putUintBE(u uint64) []byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], u)
	for i := 0; i < 8; i++ {
		if buf[i] != 0 {
			return buf[i:]
		}
	}
	return buf[7:]
}
