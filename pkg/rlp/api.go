package rlp

// EncodeToBytes returns the RLP encoding of v as a freshly allocated byte
// slice.
func EncodeToBytes(v Encoder) ([]byte, error) {
	s := NewStream()
	if err := v.EncodeRLP(s); err != nil {
		return nil, err
	}
	out := make([]byte, len(s.Out()))
	copy(out, s.Out())
	return out, nil
}

// DecodeBytes decodes data into a freshly zeroed value of type T, which
// must implement Decoder through a pointer receiver. It errors if data
// contains more than a single top-level RLP item.
func DecodeBytes[T any, PT interface {
	*T
	Decoder
}](data []byte) (T, error) {
	var out T
	v := NewView(data)
	if err := PT(&out).DecodeRLP(v); err != nil {
		return out, err
	}
	size, err := itemSize(data)
	if err != nil {
		return out, err
	}
	if size != len(data) {
		return out, &TooBigError{Capacity: size, Got: len(data)}
	}
	return out, nil
}

// itemSize returns the total encoded size (header plus payload) of the
// single RLP item at the start of data.
func itemSize(data []byte) (int, error) {
	pi, err := PayloadInfoFrom(data)
	if err != nil {
		return 0, err
	}
	return pi.Total(), nil
}
