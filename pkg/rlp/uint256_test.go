package rlp

import (
	"bytes"
	"testing"

	"github.com/holiman/uint256"
)

func TestUint256RoundTrip(t *testing.T) {
	tests := []*uint256.Int{
		uint256.NewInt(0),
		uint256.NewInt(1),
		uint256.NewInt(255),
		uint256.NewInt(256),
		new(uint256.Int).Lsh(uint256.NewInt(1), 200),
	}
	for _, want := range tests {
		got := encodeOne(t, NewUint256(want))
		decoded, err := DecodeBytes[Uint256, *Uint256](got)
		if err != nil {
			t.Fatalf("decode %s: %v", want, err)
		}
		if decoded.Int == nil || decoded.Cmp(want) != 0 {
			t.Fatalf("got %v, want %v", decoded.Int, want)
		}
	}
}

func TestUint256ZeroIsEmptyString(t *testing.T) {
	got := encodeOne(t, NewUint256(uint256.NewInt(0)))
	if !bytes.Equal(got, []byte{0x80}) {
		t.Fatalf("got %x, want 80", got)
	}
}

func TestUint256RejectsOversizedPayload(t *testing.T) {
	data := encodeOne(t, Bytes(make([]byte, 33)))
	if _, err := DecodeBytes[Uint256, *Uint256](data); err == nil {
		t.Fatal("expected an error on a 33-byte payload")
	}
}

func TestUint256RejectsLeadingZero(t *testing.T) {
	data := encodeOne(t, Bytes([]byte{0x00, 0x01}))
	if _, err := DecodeBytes[Uint256, *Uint256](data); err != ErrInvalidIndirection {
		t.Fatalf("got %v, want ErrInvalidIndirection", err)
	}
}
