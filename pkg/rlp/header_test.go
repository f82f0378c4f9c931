package rlp

import "testing"

func TestPayloadInfoFrom(t *testing.T) {
	tests := []struct {
		name       string
		bytes      []byte
		wantHeader int
		wantValue  int
	}{
		{"single byte", []byte{0x0f}, 0, 1},
		{"single byte zero", []byte{0x00}, 0, 1},
		{"single byte max", []byte{0x7f}, 0, 1},
		{"empty string", []byte{0x80}, 1, 0},
		{"short string", []byte{0x83, 0x64, 0x6f, 0x67}, 1, 3},
		{"boundary short string", append([]byte{0xb7}, make([]byte, 55)...), 1, 55},
		{"long string", append([]byte{0xb8, 56}, make([]byte, 56)...), 2, 56},
		{"empty list", []byte{0xc0}, 1, 0},
		{"short list", []byte{0xc8, 0x83, 0x63, 0x61, 0x74, 0x83, 0x64, 0x6f, 0x67}, 1, 8},
		{"long list", append([]byte{0xf8, 56}, make([]byte, 56)...), 2, 56},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pi, err := PayloadInfoFrom(tt.bytes)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if pi.HeaderLen != tt.wantHeader || pi.ValueLen != tt.wantValue {
				t.Fatalf("got {%d,%d}, want {%d,%d}", pi.HeaderLen, pi.ValueLen, tt.wantHeader, tt.wantValue)
			}
		})
	}
}

func TestPayloadInfoFromRejectsNonCanonical(t *testing.T) {
	tests := []struct {
		name  string
		bytes []byte
	}{
		{"long string length <= 55", []byte{0xb8, 10}},
		{"long string leading zero length byte", []byte{0xb9, 0x00, 0x01}},
		{"long list length <= 55", []byte{0xf8, 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := PayloadInfoFrom(tt.bytes); err == nil {
				t.Fatal("expected an error, got nil")
			}
		})
	}
}

func TestPayloadInfoFromEmpty(t *testing.T) {
	if _, err := PayloadInfoFrom(nil); err == nil {
		t.Fatal("expected TooShortError on empty input")
	}
}

func TestPayloadInfoFromLengthOverflow(t *testing.T) {
	// 0xbf => long-form string with an 8-byte length field; all 0xff bytes
	// overflow the platform int range. Matches the 13-byte adversarial
	// vector bf ff*11 e5.
	buf := append([]byte{0xbf}, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff)
	buf = append(buf, 0xe5)
	_, err := PayloadInfoFrom(buf)
	if err == nil {
		t.Fatal("expected an error")
	}
	ile, ok := err.(*InvalidLengthError)
	if !ok {
		t.Fatalf("got error of type %T, want *InvalidLengthError", err)
	}
	if ile.Expected != ile.Got {
		t.Fatalf("expected Expected == Got == math.MaxInt, got {%d,%d}", ile.Expected, ile.Got)
	}
}

func TestPrototypeString(t *testing.T) {
	tests := []struct {
		p    Prototype
		want string
	}{
		{Prototype{kind: protoNull}, "Null"},
		{Prototype{kind: protoData, count: 3}, "Data(3)"},
		{Prototype{kind: protoList, count: 2}, "List(2)"},
	}
	for _, tt := range tests {
		if got := tt.p.String(); got != tt.want {
			t.Fatalf("got %q, want %q", got, tt.want)
		}
	}
}
