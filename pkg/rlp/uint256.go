package rlp

import "github.com/holiman/uint256"

// Uint256 wraps *uint256.Int with RLP encoding as a minimal big-endian byte
// string of at most 32 bytes (invariants I4 and I6), following the same
// convention as Uint16/32/64 but sized for the 256-bit range.
type Uint256 struct {
	*uint256.Int
}

// NewUint256 wraps u for RLP encoding; a nil u encodes as zero.
func NewUint256(u *uint256.Int) Uint256 {
	return Uint256{u}
}

func (u Uint256) EncodeRLP(s *Stream) error {
	if u.Int == nil || u.IsZero() {
		s.Append(nil)
		return nil
	}
	buf := u.Bytes() // minimal big-endian, no leading zero byte
	s.Append(buf)
	return nil
}

func (u *Uint256) DecodeRLP(v *View) error {
	data, err := v.Data()
	if err != nil {
		return err
	}
	switch {
	case len(data) == 0:
		u.Int = new(uint256.Int)
		return nil
	case len(data) > 32:
		return &TooBigError{Capacity: 32, Got: len(data)}
	}
	if data[0] == 0 {
		return ErrInvalidIndirection
	}
	u.Int = new(uint256.Int).SetBytes(data)
	return nil
}
