package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"peview/internal/pex"
	"peview/internal/x86"
)

func TestParseAddr(t *testing.T) {
	tests := []struct {
		in      string
		want    uint64
		wantErr bool
	}{
		{"0x1000", 0x1000, false},
		{"0X140001000", 0x140001000, false},
		{"401000", 0x401000, false},
		{"deadBEEF", 0xdeadbeef, false},
		{"zzz", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseAddr(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseAddr(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("parseAddr(%q) = %#x, want %#x", tt.in, got, tt.want)
			}
		})
	}
}

func testImage(code []byte) *pex.Image {
	return &pex.Image{
		Path:       "fixture.exe",
		Bits:       64,
		Machine:    "x86-64",
		ImageBase:  0x140000000,
		EntryPoint: 0x140001000,
		Text:       pex.Section{Name: ".text", VA: 0x140001000, Size: uint64(len(code))},
		Syms: []pex.Sym{
			{Name: "main", Demangled: "main", Addr: 0x140001000},
		},
	}
}

func TestWriteListing(t *testing.T) {
	t.Setenv("PEVIEW_NO_COLOR", "1")

	code := []byte{0x55, 0x48, 0x89, 0xe5, 0xc3}
	im := testImage(code)
	insts, err := x86.DecodeAll(code, im.Text.VA, im.Bits)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := writeListing(&buf, im, insts); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	if !strings.Contains(out, "main:") {
		t.Errorf("listing missing symbol label:\n%s", out)
	}
	for _, want := range []string{"push rbp", "mov rbp, rsp", "ret", "140001000", "48 89 e5"} {
		if !strings.Contains(out, want) {
			t.Errorf("listing missing %q:\n%s", want, out)
		}
	}
}

func TestWriteJSON(t *testing.T) {
	code := []byte{0x90, 0xc3}
	im := testImage(code)
	insts, err := x86.DecodeAll(code, im.Text.VA, im.Bits)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := writeJSON(&buf, im, insts); err != nil {
		t.Fatal(err)
	}

	var out JSONOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if out.Bits != 64 || out.Machine != "x86-64" || out.Section != ".text" {
		t.Errorf("header fields wrong: %+v", out)
	}
	if len(out.Instructions) != 2 {
		t.Fatalf("got %d instructions, want 2", len(out.Instructions))
	}
	first := out.Instructions[0]
	if first.Address != "0x140001000" || first.Text != "nop" || first.Length != 1 || !first.Valid {
		t.Errorf("first record wrong: %+v", first)
	}
}

func TestDecodeSectionSmall(t *testing.T) {
	insts, err := decodeSection([]byte{0x90, 0x90, 0xc3}, 0, 64)
	if err != nil {
		t.Fatal(err)
	}
	if len(insts) != 3 {
		t.Errorf("got %d instructions, want 3", len(insts))
	}
}
