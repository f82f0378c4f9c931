package rlp

import "unicode/utf8"

// Bytes wraps a []byte with RLP encoding as a plain byte string: the data
// is appended as-is, with no length restriction beyond what the header
// grammar itself allows.
type Bytes []byte

func (b Bytes) EncodeRLP(s *Stream) error {
	s.Append(b)
	return nil
}

func (b *Bytes) DecodeRLP(v *View) error {
	data, err := v.Data()
	if err != nil {
		return err
	}
	out := make([]byte, len(data))
	copy(out, data)
	*b = out
	return nil
}

// String wraps a string with RLP encoding as a byte string, rejecting
// payloads that are not valid UTF-8 or that contain a NUL byte (invariant
// I7).
type String string

func (s String) EncodeRLP(st *Stream) error {
	st.Append([]byte(s))
	return nil
}

func (s *String) DecodeRLP(v *View) error {
	data, err := v.Data()
	if err != nil {
		return err
	}
	for _, b := range data {
		if b == 0 {
			return ErrNullTerminatedString
		}
	}
	if !utf8.Valid(data) {
		return ErrExpectedData
	}
	*s = String(data)
	return nil
}

// encodeFixedBytes and decodeFixedBytes encode and decode an n-byte array as
// a plain RLP byte string of exactly n bytes; decoding errors on any other
// payload length.
func encodeFixedBytes(s *Stream, b []byte) error {
	s.Append(b)
	return nil
}

func decodeFixedBytes(v *View, dst []byte) error {
	data, err := v.Data()
	if err != nil {
		return err
	}
	switch {
	case len(data) < len(dst):
		return &TooShortError{Expected: len(dst), Got: len(data)}
	case len(data) > len(dst):
		return &TooBigError{Capacity: len(dst), Got: len(data)}
	}
	copy(dst, data)
	return nil
}

// Bytes16 is a fixed 16-byte value (e.g. a 128-bit hash or identifier).
type Bytes16 [16]byte

func (b Bytes16) EncodeRLP(s *Stream) error { return encodeFixedBytes(s, b[:]) }
func (b *Bytes16) DecodeRLP(v *View) error  { return decodeFixedBytes(v, b[:]) }

// Bytes20 is a fixed 20-byte value (e.g. an address).
type Bytes20 [20]byte

func (b Bytes20) EncodeRLP(s *Stream) error { return encodeFixedBytes(s, b[:]) }
func (b *Bytes20) DecodeRLP(v *View) error  { return decodeFixedBytes(v, b[:]) }

// Bytes32 is a fixed 32-byte value (e.g. a 256-bit hash or storage key).
type Bytes32 [32]byte

func (b Bytes32) EncodeRLP(s *Stream) error { return encodeFixedBytes(s, b[:]) }
func (b *Bytes32) DecodeRLP(v *View) error  { return decodeFixedBytes(v, b[:]) }

// Bytes64 is a fixed 64-byte value (e.g. a 512-bit value or an uncompressed
// public key's coordinate pair).
type Bytes64 [64]byte

func (b Bytes64) EncodeRLP(s *Stream) error { return encodeFixedBytes(s, b[:]) }
func (b *Bytes64) DecodeRLP(v *View) error  { return decodeFixedBytes(v, b[:]) }

// Bytes65 is a fixed 65-byte value (e.g. an uncompressed public key with
// its leading format byte, or a recoverable signature).
type Bytes65 [65]byte

func (b Bytes65) EncodeRLP(s *Stream) error { return encodeFixedBytes(s, b[:]) }
func (b *Bytes65) DecodeRLP(v *View) error  { return decodeFixedBytes(v, b[:]) }
