package rlp

import "encoding/hex"

// offsetCache remembers the byte offset (relative to the start of this
// item's bytes, header included) reached after navigating to the last
// child index visited by At, so monotone or sequential access resumes from
// there instead of rescanning from the start of the list.
type offsetCache struct {
	valid bool
	index int
	value int
}

// View is a zero-copy, read-only handle over a single RLP item: the header
// bytes and its full payload, never more. Navigating into a list child
// (At, Iter) returns a new View over exactly that child's bytes; nothing is
// copied until a Decoder's DecodeRLP materializes an owned Go value. The
// package has no generic View-level decode helper; DecodeBytes is the
// generic entry point, and it starts from a byte slice.
//
// A View is not safe for concurrent use by multiple goroutines: At and
// ItemCount mutate the internal offset/count cache through a pointer
// receiver. Independent Views over the same backing buffer may be used
// concurrently; call Clone to hand a caller its own cache.
type View struct {
	bytes []byte
	offC  offsetCache
	cntC  struct {
		valid bool
		value int
	}
}

// NewView wraps bytes in a View without validating them; bytes is assumed
// to contain exactly one RLP item (header plus payload). Validation happens
// lazily, the first time an operation needs to look past the prefix byte.
func NewView(bytes []byte) *View {
	return &View{bytes: bytes}
}

// Clone returns an independent View over the same bytes, with its own copy
// of the offset/count caches, safe to navigate from a different goroutine.
func (v *View) Clone() *View {
	c := *v
	return &c
}

// AsRaw returns the raw bytes this View was constructed over, header
// included.
func (v *View) AsRaw() []byte { return v.bytes }

// IsNull reports whether this View wraps an empty buffer.
func (v *View) IsNull() bool { return len(v.bytes) == 0 }

// IsData reports whether this View names a data item.
func (v *View) IsData() bool { return !v.IsNull() && v.bytes[0] < 0xc0 }

// IsList reports whether this View names a list item.
func (v *View) IsList() bool { return !v.IsNull() && v.bytes[0] >= 0xc0 }

// IsEmpty reports whether this View names the canonical empty data item
// (0x80) or the canonical empty list (0xc0).
func (v *View) IsEmpty() bool {
	return !v.IsNull() && (v.bytes[0] == 0x80 || v.bytes[0] == 0xc0)
}

// Prototype classifies this View as Null, Data(len), or List(count).
func (v *View) Prototype() (Prototype, error) {
	switch {
	case v.IsData():
		return Prototype{kind: protoData, count: v.Size()}, nil
	case v.IsList():
		n, err := v.ItemCount()
		if err != nil {
			return Prototype{}, err
		}
		return Prototype{kind: protoList, count: n}, nil
	default:
		return Prototype{kind: protoNull}, nil
	}
}

// payloadInfo returns the header/payload split of this View's item,
// additionally checking that the full payload actually fits in the
// backing bytes (spec invariant I5).
func (v *View) payloadInfo() (PayloadInfo, error) {
	pi, err := PayloadInfoFrom(v.bytes)
	if err != nil {
		return PayloadInfo{}, err
	}
	total := pi.Total()
	if total < 0 || total > len(v.bytes) {
		return PayloadInfo{}, &InconsistentLengthAndDataError{Max: len(v.bytes), Index: total}
	}
	return pi, nil
}

// Size returns the data payload length of this View, or 0 if it is not a
// well-formed data item (including if it is a list). This mirrors the
// original implementation's lenient behavior: a malformed data item's size
// silently reads as 0 rather than surfacing payloadInfo's error. A
// stricter design would propagate the error instead; this is flagged as an
// open, deliberately unresolved tightening in DESIGN.md.
func (v *View) Size() int {
	if !v.IsData() {
		return 0
	}
	pi, err := v.payloadInfo()
	if err != nil {
		return 0
	}
	return pi.ValueLen
}

// Data returns the raw payload slice of this View (header excluded). It
// errors if this View is a list, and rejects the one non-canonical shape a
// bare length/payload split can't otherwise catch: a single byte below
// 0x80 wrapped in a one-byte short-string header (0x81 xx) instead of
// using the single-byte form directly (invariant I1).
func (v *View) Data() ([]byte, error) {
	pi, err := v.payloadInfo()
	if err != nil {
		return nil, err
	}
	if v.IsList() {
		return nil, ErrExpectedData
	}
	payload := v.bytes[pi.HeaderLen : pi.HeaderLen+pi.ValueLen]
	if v.bytes[0] == 0x81 && payload[0] < 0x80 {
		return nil, ErrInvalidIndirection
	}
	return payload, nil
}

// ItemCount returns the number of children of this list View, memoizing
// the result. It errors if this View is a data item.
func (v *View) ItemCount() (int, error) {
	if !v.IsList() {
		return 0, ErrExpectedList
	}
	if v.cntC.valid {
		return v.cntC.value, nil
	}
	n := 0
	it := v.Iter()
	for it.Next() {
		n++
	}
	v.cntC.valid = true
	v.cntC.value = n
	return n, nil
}

// consumeListPayload returns this list's payload bytes (children,
// concatenated) and the number of header bytes consumed to reach them.
func (v *View) consumeListPayload() ([]byte, int, error) {
	pi, err := v.payloadInfo()
	if err != nil {
		return nil, 0, err
	}
	return v.bytes[pi.HeaderLen : pi.HeaderLen+pi.ValueLen], pi.HeaderLen, nil
}

// consumeItems skips n whole items from the front of bytes and returns
// what remains, along with the number of bytes consumed.
func consumeItems(bytes []byte, n int) ([]byte, int, error) {
	rest := bytes
	consumed := 0
	for i := 0; i < n; i++ {
		pi, err := PayloadInfoFrom(rest)
		if err != nil {
			return nil, 0, err
		}
		total := pi.Total()
		if total > len(rest) {
			return nil, 0, &TooShortError{Expected: total, Got: len(rest)}
		}
		rest = rest[total:]
		consumed += total
	}
	return rest, consumed, nil
}

// At navigates to the index-th child of this list View, returning a new
// View over exactly that child's bytes (header included).
//
// The offset cache is consulted first: if it holds a hint for an index
// less than or equal to index, navigation resumes from that cached byte
// offset and only skips the remaining (index - cachedIndex) items,
// amortizing repeated or monotonically increasing access to O(n) total
// instead of O(n^2). A cache miss (no hint, or a hint past index) restarts
// from the beginning of the list payload.
func (v *View) At(index int) (*View, error) {
	if !v.IsList() {
		return nil, ErrExpectedList
	}

	// Cache offsets are relative to the start of v.bytes (header
	// included), not to the start of the payload, so that a cached hint
	// can be used to reslice v.bytes directly — this must match exactly,
	// since the bounds check below compares against
	// headerLen+valueLen-1, also header-inclusive.
	var rest []byte
	var toSkip int
	var consumedBase int
	if v.offC.valid && v.offC.index <= index {
		if v.offC.value > len(v.bytes) {
			return nil, &TooShortError{Expected: v.offC.value, Got: len(v.bytes)}
		}
		rest = v.bytes[v.offC.value:]
		toSkip = index - v.offC.index
		consumedBase = v.offC.value
	} else {
		payload, headerLen, err := v.consumeListPayload()
		if err != nil {
			return nil, err
		}
		rest = payload
		toSkip = index
		consumedBase = headerLen
	}

	skipped, consumed, err := consumeItems(rest, toSkip)
	if err != nil {
		return nil, err
	}

	pi, err := v.payloadInfo()
	if err != nil {
		return nil, err
	}
	offsetMax := pi.HeaderLen + pi.ValueLen - 1
	newOffset := consumedBase + consumed
	if newOffset > offsetMax {
		return nil, &TooShortError{Expected: newOffset, Got: offsetMax}
	}

	v.offC = offsetCache{valid: true, index: index, value: newOffset}

	childInfo, err := PayloadInfoFrom(skipped)
	if err != nil {
		return nil, err
	}
	total := childInfo.Total()
	if total > len(skipped) {
		return nil, &TooShortError{Expected: total, Got: len(skipped)}
	}
	return NewView(skipped[:total]), nil
}

// Iterator yields successive children of a list View via repeated calls to
// At, benefiting from the same offset cache; it stops at the first error,
// treating it as end of list.
type Iterator struct {
	v     *View
	index int
	cur   *View
}

// Iter returns an Iterator over this list View's children.
func (v *View) Iter() *Iterator {
	return &Iterator{v: v}
}

// Next advances the iterator and reports whether a child is available.
func (it *Iterator) Next() bool {
	child, err := it.v.At(it.index)
	if err != nil {
		it.cur = nil
		return false
	}
	it.cur = child
	it.index++
	return true
}

// View returns the child View produced by the most recent call to Next.
func (it *Iterator) View() *View { return it.cur }

// String renders a debug representation of this View: a data item renders
// as a quoted "0x"-prefixed hex string, a list renders as a bracketed,
// comma-separated sequence of its children's representations, and a
// malformed item renders its decode error. This is the one pretty-printer
// this package owns; richer formatting belongs to the caller.
func (v *View) String() string {
	proto, err := v.Prototype()
	if err != nil {
		return err.Error()
	}
	if proto.IsNull() {
		return "null"
	}
	if n, ok := proto.IsData(); ok {
		_ = n
		data, err := v.Data()
		if err != nil {
			return err.Error()
		}
		return "\"0x" + hex.EncodeToString(data) + "\""
	}
	n, _ := proto.IsList()
	out := "["
	for i := 0; i < n; i++ {
		if i > 0 {
			out += ", "
		}
		child, err := v.At(i)
		if err != nil {
			out += err.Error()
			continue
		}
		out += child.String()
	}
	return out + "]"
}
