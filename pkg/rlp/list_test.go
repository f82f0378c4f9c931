package rlp

import (
	"bytes"
	"testing"
)

func TestListOfUint64RoundTrip(t *testing.T) {
	want := List[Uint64, *Uint64]{1, 2, 3, 256}
	got := encodeOne(t, want)
	if got[0] < 0xc0 {
		t.Fatalf("expected a list header, got %x", got[0])
	}
	decoded, err := DecodeBytes[List[Uint64, *Uint64], *List[Uint64, *Uint64]](got)
	if err != nil {
		t.Fatal(err)
	}
	if len(decoded) != len(want) {
		t.Fatalf("got %d items, want %d", len(decoded), len(want))
	}
	for i := range want {
		if decoded[i] != want[i] {
			t.Fatalf("item %d: got %d, want %d", i, decoded[i], want[i])
		}
	}
}

func TestListOfBytesMatchesVecOfBytesEncoding(t *testing.T) {
	want := List[Bytes, *Bytes]{{0, 1, 2, 3, 4}, {5, 6, 7}, {}, {8, 9}}
	got := encodeOne(t, want)
	expected := encodeVecOfBytes([][]byte{{0, 1, 2, 3, 4}, {5, 6, 7}, {}, {8, 9}})
	if !bytes.Equal(got, expected) {
		t.Fatalf("got %x, want %x", got, expected)
	}
}

func TestEmptyListRoundTrip(t *testing.T) {
	want := List[Uint64, *Uint64]{}
	got := encodeOne(t, want)
	if !bytes.Equal(got, []byte{0xc0}) {
		t.Fatalf("got %x, want c0", got)
	}
	decoded, err := DecodeBytes[List[Uint64, *Uint64], *List[Uint64, *Uint64]](got)
	if err != nil {
		t.Fatal(err)
	}
	if len(decoded) != 0 {
		t.Fatalf("got %d items, want 0", len(decoded))
	}
}

func TestOptionalRoundTrip(t *testing.T) {
	some := Some[Uint64, *Uint64](42)
	got := encodeOne(t, some)
	decoded, err := DecodeBytes[Optional[Uint64, *Uint64], *Optional[Uint64, *Uint64]](got)
	if err != nil {
		t.Fatal(err)
	}
	if !decoded.Present || decoded.Value != 42 {
		t.Fatalf("got %+v, want Present=true Value=42", decoded)
	}

	none := None[Uint64, *Uint64]()
	got = encodeOne(t, none)
	if !bytes.Equal(got, []byte{0xc0}) {
		t.Fatalf("got %x, want c0", got)
	}
	decoded, err = DecodeBytes[Optional[Uint64, *Uint64], *Optional[Uint64, *Uint64]](got)
	if err != nil {
		t.Fatal(err)
	}
	if decoded.Present {
		t.Fatalf("got Present=true, want false")
	}
}

func TestOptionalRejectsMultiElementList(t *testing.T) {
	s := NewStream()
	s.BeginList()
	s.Append([]byte{1})
	s.Append([]byte{2})
	s.EndList()
	_, err := DecodeBytes[Optional[Uint64, *Uint64], *Optional[Uint64, *Uint64]](s.Out())
	if err != ErrIncorrectListLen {
		t.Fatalf("got %v, want ErrIncorrectListLen", err)
	}
}
