package cmd

import (
	"bytes"
	"debug/pe"
	"strings"
	"testing"

	"peview/internal/pex"
)

func headersImage() *pex.Image {
	oh := &pe.OptionalHeader64{
		Magic:               0x20b,
		ImageBase:           0x140000000,
		SectionAlignment:    0x1000,
		FileAlignment:       0x200,
		SizeOfImage:         0x4000,
		Subsystem:           3,
		NumberOfRvaAndSizes: 16,
	}
	oh.DataDirectory[1] = pe.DataDirectory{VirtualAddress: 0x2000, Size: 0x140}
	oh.DataDirectory[12] = pe.DataDirectory{VirtualAddress: 0x2140, Size: 0x80}

	return &pex.Image{
		Path:       "fixture.exe",
		Bits:       64,
		Machine:    "x86-64",
		ImageBase:  0x140000000,
		EntryPoint: 0x140001000,
		File: &pe.File{
			FileHeader: pe.FileHeader{
				Machine:          pe.IMAGE_FILE_MACHINE_AMD64,
				NumberOfSections: 2,
			},
			OptionalHeader: oh,
		},
		Sections: []pex.Section{
			{Name: ".text", VA: 0x140001000, Size: 0x200, VirtualSize: 0x180},
			{Name: ".rdata", VA: 0x140002000, Size: 0x400, VirtualSize: 0x3c0},
		},
		Imports: []pex.Import{
			{Symbol: "ExitProcess", Library: "kernel32.dll"},
		},
	}
}

func TestWriteHeaders(t *testing.T) {
	t.Setenv("PEVIEW_NO_COLOR", "1")

	var buf bytes.Buffer
	if err := writeHeaders(&buf, headersImage()); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	for _, want := range []string{
		"COFF header",
		"Optional header",
		"Data directories",
		"Sections",
		".text",
		"kernel32.dll",
		"ExitProcess",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("headers output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteDataDirectories(t *testing.T) {
	t.Setenv("PEVIEW_NO_COLOR", "1")

	dirs := make([]pe.DataDirectory, 16)
	dirs[1] = pe.DataDirectory{VirtualAddress: 0x2000, Size: 0x140}
	dirs[9] = pe.DataDirectory{VirtualAddress: 0x3000, Size: 0x28}
	dirs[12] = pe.DataDirectory{VirtualAddress: 0x2140, Size: 0x80}

	var buf bytes.Buffer
	writeDataDirectories(&buf, dirs)
	out := buf.String()

	for _, want := range []string{"Import", "TLS", "IAT", "0x2000", "0x140", "0x3000"} {
		if !strings.Contains(out, want) {
			t.Errorf("data directory table missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Export") {
		t.Errorf("zero-valued directory should be omitted:\n%s", out)
	}
	if strings.Contains(out, "Resource") {
		t.Errorf("zero-valued directory should be omitted:\n%s", out)
	}
}
