package rlp

// codec is the minimal shape a generic container needs from its element
// type: both directions of Encoder/Decoder, on a pointer receiver so
// DecodeRLP can populate the zero value.
type codec[T any] interface {
	Encoder
	*T
	Decoder
}

// Optional wraps a value that may be absent, following the original's
// convention of representing it as a one- or zero-element RLP list rather
// than a sentinel byte: an absent value is the empty list 0xc0, a present
// value is a one-element list wrapping its encoding.
type Optional[T any, PT codec[T]] struct {
	Value   T
	Present bool
}

// Some wraps v as a present Optional value.
func Some[T any, PT codec[T]](v T) Optional[T, PT] {
	return Optional[T, PT]{Value: v, Present: true}
}

// None returns an absent Optional value.
func None[T any, PT codec[T]]() Optional[T, PT] {
	return Optional[T, PT]{}
}

func (o Optional[T, PT]) EncodeRLP(s *Stream) error {
	if !o.Present {
		s.BeginList()
		return s.EndList()
	}
	s.BeginList()
	if err := PT(&o.Value).EncodeRLP(s); err != nil {
		return err
	}
	return s.EndList()
}

func (o *Optional[T, PT]) DecodeRLP(v *View) error {
	n, err := v.ItemCount()
	if err != nil {
		return err
	}
	switch n {
	case 0:
		o.Present = false
		var zero T
		o.Value = zero
		return nil
	case 1:
		child, err := v.At(0)
		if err != nil {
			return err
		}
		if err := PT(&o.Value).DecodeRLP(child); err != nil {
			return err
		}
		o.Present = true
		return nil
	default:
		return ErrIncorrectListLen
	}
}

// List wraps a homogeneous slice of elements with RLP encoding as a list:
// each element is encoded in turn and the results wrapped in a list header,
// mirroring the original's Vec<T> blanket impl.
type List[T any, PT codec[T]] []T

func (l List[T, PT]) EncodeRLP(s *Stream) error {
	s.BeginList()
	for i := range l {
		if err := PT(&l[i]).EncodeRLP(s); err != nil {
			return err
		}
	}
	return s.EndList()
}

func (l *List[T, PT]) DecodeRLP(v *View) error {
	n, err := v.ItemCount()
	if err != nil {
		return err
	}
	out := make([]T, n)
	for i := 0; i < n; i++ {
		child, err := v.At(i)
		if err != nil {
			return err
		}
		if err := PT(&out[i]).DecodeRLP(child); err != nil {
			return err
		}
	}
	*l = out
	return nil
}
