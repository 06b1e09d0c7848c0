package pex

import (
	"bytes"
	"testing"
)

// testImage builds an Image over an in-memory byte layout:
// a header region, then a code section at file offset 0x200 mapped at
// 0x140001000, then a data section at 0x400 mapped at 0x140002000.
func testImage() *Image {
	all := make([]byte, 0x600)
	for i := range all {
		all[i] = byte(i)
	}
	text := Section{
		Name: ".text", VA: 0x140001000, Off: 0x200, Size: 0x200,
		VirtualSize: 0x1f0, Characteristics: scnMemExecute | scnMemRead | scnCntCode,
	}
	data := Section{
		Name: ".data", VA: 0x140002000, Off: 0x400, Size: 0x200,
		VirtualSize: 0x200, Characteristics: scnMemRead | scnMemWrite,
	}
	return &Image{
		Path:       "test.exe",
		All:        all,
		Bits:       64,
		Machine:    "x86-64",
		ImageBase:  0x140000000,
		EntryPoint: 0x140001000,
		Sections:   []Section{text, data},
		Text:       text,
		Syms: []Sym{
			{Name: "_Z3foov", Demangled: "foo()", Addr: 0x140001010},
		},
	}
}

func TestVA2Off(t *testing.T) {
	im := testImage()
	tests := []struct {
		name string
		va   uint64
		off  uint64
		ok   bool
	}{
		{"text start", 0x140001000, 0x200, true},
		{"text middle", 0x140001080, 0x280, true},
		{"data start", 0x140002000, 0x400, true},
		{"below image", 0x140000000, 0, false},
		{"gap between sections", 0x140001a00, 0, false},
		{"past last section", 0x140002200, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			off, ok := im.VA2Off(tt.va)
			if ok != tt.ok || off != tt.off {
				t.Errorf("VA2Off(%#x) = (%#x, %v), want (%#x, %v)", tt.va, off, ok, tt.off, tt.ok)
			}
		})
	}
}

func TestSliceVA(t *testing.T) {
	im := testImage()
	b, ok := im.SliceVA(0x140001000, 4)
	if !ok || !bytes.Equal(b, im.All[0x200:0x204]) {
		t.Errorf("SliceVA = (% x, %v), want first text bytes", b, ok)
	}
	if _, ok := im.SliceVA(0x140002000, 0x300); ok {
		t.Error("SliceVA past end of file should fail")
	}
	if b, ok := im.SliceVA(0x140001000, 0); !ok || len(b) != 0 {
		t.Error("zero-size slice of a mapped VA should succeed")
	}
}

func TestTextBytes(t *testing.T) {
	im := testImage()
	code, va, err := im.TextBytes()
	if err != nil {
		t.Fatal(err)
	}
	if va != 0x140001000 {
		t.Errorf("va = %#x, want 0x140001000", va)
	}
	if len(code) != 0x200 || !bytes.Equal(code, im.All[0x200:0x400]) {
		t.Errorf("code slice does not match section bounds")
	}

	im.Text = Section{}
	if _, _, err := im.TextBytes(); err == nil {
		t.Error("image without executable section should error")
	}
}

func TestSectionFlags(t *testing.T) {
	im := testImage()
	if !im.Sections[0].Executable() || im.Sections[0].Writable() {
		t.Error("text section flags misread")
	}
	if im.Sections[1].Executable() || !im.Sections[1].Writable() {
		t.Error("data section flags misread")
	}
}

func TestSymbolAt(t *testing.T) {
	im := testImage()
	sym, ok := im.SymbolAt(0x140001010)
	if !ok || sym.Demangled != "foo()" {
		t.Errorf("SymbolAt = (%+v, %v), want foo()", sym, ok)
	}
	if _, ok := im.SymbolAt(0x140001011); ok {
		t.Error("SymbolAt should only match exact starts")
	}
}

func TestReadUint(t *testing.T) {
	im := testImage()
	im.All[0x200], im.All[0x201], im.All[0x202], im.All[0x203] = 0x78, 0x56, 0x34, 0x12
	v, ok := im.ReadUint(0x140001000, 4)
	if !ok || v != 0x12345678 {
		t.Errorf("ReadUint = (%#x, %v), want 0x12345678", v, ok)
	}
	if _, ok := im.ReadUint(0x140002000, 3); ok {
		t.Error("odd widths should be rejected")
	}
}
