package x86

import (
	"testing"

	"golang.org/x/arch/x86/x86asm"
)

// TestLengthAgainstXArch cross-checks instruction lengths on a hand-picked
// corpus against golang.org/x/arch. Only the length is compared: the two
// decoders disagree on mnemonic spelling, but a length disagreement always
// means one of them mis-parsed the encoding.
func TestLengthAgainstXArch(t *testing.T) {
	corpus := []struct {
		bits int
		code string
	}{
		{64, "90"},
		{64, "48 89 e5"},
		{64, "c3"},
		{64, "ff 25 00 00 00 00"},
		{64, "0f 05"},
		{64, "55"},
		{64, "41 57"},
		{64, "48 83 ec 20"},
		{64, "8b 45 fc"},
		{64, "e8 00 00 00 00"},
		{64, "eb fe"},
		{64, "74 05"},
		{64, "b8 78 56 34 12"},
		{64, "48 b8 88 77 66 55 44 33 22 11"},
		{64, "4c 89 f7"},
		{64, "cc"},
		{64, "f7 d8"},
		{64, "0f b6 c0"},
		{64, "0f af c3"},
		{64, "48 63 c0"},
		{64, "c9"},
		{64, "0f 1f 40 00"},
		{64, "66 0f 1f 44 00 00"},
		{64, "64 48 8b 04 25 28 00 00 00"},
		{64, "6a 01"},
		{64, "c7 45 f8 0a 00 00 00"},
		{64, "f0 ff 05 10 00 00 00"},
		{64, "f3 48 ab"},
		{64, "f3 90"},
		{64, "49 90"},
		{64, "48 98"},
		{64, "66 0f ef c0"},
		{64, "f2 0f 58 c1"},
		{64, "f3 0f 10 05 04 00 00 00"},
		{64, "66 0f 6f 00"},
		{64, "dd 04 24"},
		{64, "d9 ee"},
		{64, "de c1"},
		{64, "48 0f 45 c2"},
		{64, "0f 97 c0"},
		{64, "40 0f 93 c4"},
		{64, "d1 e0"},
		{64, "48 d3 f8"},
		{64, "48 8d 04 8d 00 00 00 00"},
		{64, "67 8b 00"},
		{64, "41 0f ca"},
		{64, "f3 48 0f b8 c7"},
		{64, "f3 0f bc c2"},
		{64, "0f a2"},
		{64, "0f 31"},
		{64, "0f ae f0"},
		{64, "0f 28 c8"},
		{64, "f2 48 0f 2a c7"},
		{64, "a1 08 00 00 00 00 00 00 00"},
		{64, "a8 01"},
		{64, "83 f0 ff"},
		{32, "40"},
		{32, "60"},
		{32, "06"},
		{32, "89 e5"},
		{32, "8d 44 24 04"},
		{32, "8b 15 44 33 22 11"},
		{32, "67 8b 07"},
		{32, "67 8b 46 02"},
		{32, "c4 18"},
		{32, "ea 78 56 34 12 14 00"},
		{32, "66 b8 34 12"},
	}

	for _, c := range corpus {
		code := mustBytes(t, c.code)
		want, err := x86asm.Decode(code, c.bits)
		if err != nil {
			// Encodings outside the oracle's tables prove nothing
			// either way.
			continue
		}
		got := Decode(code, 0, c.bits)
		if !got.Valid {
			t.Errorf("bits=%d % x: oracle decodes %v, we report invalid", c.bits, code, want)
			continue
		}
		if got.Len != want.Len {
			t.Errorf("bits=%d % x: len %d, oracle %d (%v)", c.bits, code, got.Len, want.Len, want)
		}
	}
}
