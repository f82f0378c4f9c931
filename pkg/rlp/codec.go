package rlp

// Encoder is implemented by any value that knows how to append its own RLP
// encoding to a Stream.
type Encoder interface {
	EncodeRLP(s *Stream) error
}

// Decoder is implemented by any value that knows how to populate itself
// from a View.
type Decoder interface {
	DecodeRLP(v *View) error
}

// Bool wraps a bool with RLP encoding: true is the single byte 0x01, false
// is the single byte 0x00. Both are single bytes below 0x80, so Append's
// own I1 shortcut writes them out literally rather than wrapping them in a
// one-byte string header; decoding also accepts the canonical empty string
// 0x80 as false, since it too carries zero value bytes.
type Bool bool

func (b Bool) EncodeRLP(s *Stream) error {
	if b {
		s.Append([]byte{1})
	} else {
		s.Append([]byte{0})
	}
	return nil
}

func (b *Bool) DecodeRLP(v *View) error {
	data, err := v.Data()
	if err != nil {
		return err
	}
	switch len(data) {
	case 0:
		*b = false
	case 1:
		*b = data[0] != 0
	default:
		return &TooBigError{Capacity: 1, Got: len(data)}
	}
	return nil
}

// Uint8 wraps a uint8 with RLP encoding: zero is the canonical empty string,
// any other value is its single byte, written bare when below 0x80 (the
// single-byte shortcut I1) and behind a 0x81 header from 0x80 up.
type Uint8 uint8

func (u Uint8) EncodeRLP(s *Stream) error {
	if u == 0 {
		s.Append(nil)
	} else {
		s.Append([]byte{byte(u)})
	}
	return nil
}

func (u *Uint8) DecodeRLP(v *View) error {
	data, err := v.Data()
	if err != nil {
		return err
	}
	switch len(data) {
	case 0:
		*u = 0
	case 1:
		// Data only rejects the 0x81-wrapped shape (I1); a bare single
		// byte below 0x80 reaches here unwrapped and must still be
		// rejected as a non-canonical zero (I4) if it is 0x00 — the only
		// single-byte value a minimal encoding never produces, since 0
		// always encodes as the empty string.
		if data[0] == 0 {
			return ErrInvalidIndirection
		}
		*u = Uint8(data[0])
	default:
		return &TooBigError{Capacity: 1, Got: len(data)}
	}
	return nil
}

// Uint16 wraps a uint16 with RLP encoding: the minimal big-endian byte
// string with no leading zero (invariant I4), falling back to Uint8's
// zero/single-byte shortcuts for values below 256.
type Uint16 uint16

func (u Uint16) EncodeRLP(s *Stream) error {
	s.Append(trimUint64(uint64(u)))
	return nil
}

func (u *Uint16) DecodeRLP(v *View) error {
	n, err := decodeUint(v, 2)
	if err != nil {
		return err
	}
	*u = Uint16(n)
	return nil
}

// Uint32 wraps a uint32 with RLP encoding, following the same minimal
// big-endian convention as Uint16.
type Uint32 uint32

func (u Uint32) EncodeRLP(s *Stream) error {
	s.Append(trimUint64(uint64(u)))
	return nil
}

func (u *Uint32) DecodeRLP(v *View) error {
	n, err := decodeUint(v, 4)
	if err != nil {
		return err
	}
	*u = Uint32(n)
	return nil
}

// Uint64 wraps a uint64 with RLP encoding, following the same minimal
// big-endian convention as Uint16.
type Uint64 uint64

func (u Uint64) EncodeRLP(s *Stream) error {
	s.Append(trimUint64(uint64(u)))
	return nil
}

func (u *Uint64) DecodeRLP(v *View) error {
	n, err := decodeUint(v, 8)
	if err != nil {
		return err
	}
	*u = Uint64(n)
	return nil
}

// Uint wraps a platform-native uint (Go's usize equivalent) with RLP
// encoding identical to Uint64: the decoded value is narrowed from a
// uint64, rejecting a payload wider than the platform word (invariant I6).
type Uint uint

func (u Uint) EncodeRLP(s *Stream) error {
	s.Append(trimUint64(uint64(u)))
	return nil
}

func (u *Uint) DecodeRLP(v *View) error {
	n, err := decodeUint(v, wordBytes)
	if err != nil {
		return err
	}
	*u = Uint(n)
	return nil
}

// trimUint64 returns the minimal big-endian encoding of v: no bytes for
// zero, otherwise the value with leading zero bytes stripped. Encoding a
// single byte below 0x80 this way lets Stream.Append's own I1 shortcut take
// over, matching the original's u8-special-cased fast path for every
// integer width rather than just u8.
func trimUint64(v uint64) []byte {
	if v == 0 {
		return nil
	}
	var buf [8]byte
	for i := 7; i >= 0; i-- {
		buf[i] = byte(v)
		v >>= 8
	}
	i := 0
	for i < 8 && buf[i] == 0 {
		i++
	}
	out := make([]byte, 8-i)
	copy(out, buf[i:])
	return out
}

// decodeUint decodes a View's data payload as a minimal big-endian integer
// of at most maxBytes width, enforcing invariant I4 (no leading zero byte).
// A payload of 0 bytes is the canonical zero; a payload of exactly 1 byte
// shares Uint8's rule that a bare 0x00 is non-canonical (zero always encodes
// as the empty string), so it is rejected the same way a multi-byte leading
// zero is.
func decodeUint(v *View, maxBytes int) (uint64, error) {
	data, err := v.Data()
	if err != nil {
		return 0, err
	}
	switch {
	case len(data) == 0:
		return 0, nil
	case len(data) > maxBytes:
		return 0, &TooBigError{Capacity: maxBytes, Got: len(data)}
	}
	if data[0] == 0 {
		return 0, ErrInvalidIndirection
	}
	if len(data) == 1 {
		return uint64(data[0]), nil
	}
	var res uint64
	for _, b := range data {
		res = res<<8 | uint64(b)
	}
	return res, nil
}
