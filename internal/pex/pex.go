// Package pex provides helpers for opening PE binaries, locating sections,
// and mapping virtual addresses to file offsets.
package pex

import (
	"debug/pe"
	"encoding/binary"
	"fmt"
	"os"
	"syscall"

	"github.com/ianlancetaylor/demangle"
)

// Section characteristics bits we care about.
const (
	scnMemExecute = 0x20000000
	scnMemRead    = 0x40000000
	scnMemWrite   = 0x80000000
	scnCntCode    = 0x00000020
)

type Image struct {
	Path       string
	File       *pe.File
	All        []byte
	Bits       int    // 32 or 64, from the COFF machine type
	Machine    string // human-readable machine name
	ImageBase  uint64
	EntryPoint uint64 // virtual address, ImageBase already applied
	Sections   []Section
	Text       Section
	Syms       []Sym
	Imports    []Import
	f          *os.File
}

type Section struct {
	Name            string
	VA, Off, Size   uint64 // Size is the on-disk size
	VirtualSize     uint64
	Characteristics uint32
}

// Executable reports whether the section is mapped executable.
func (s Section) Executable() bool {
	return s.Characteristics&(scnMemExecute|scnCntCode) != 0
}

func (s Section) Readable() bool { return s.Characteristics&scnMemRead != 0 }
func (s Section) Writable() bool { return s.Characteristics&scnMemWrite != 0 }

type Sym struct {
	Name      string
	Demangled string
	Addr      uint64
}

type Import struct {
	Symbol  string
	Library string
}

func Open(path string) (*Image, error) {
	f, err := pe.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pe: %w", err)
	}

	of, err := os.OpenFile(path, os.O_RDONLY, 0)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("open file: %w", err)
	}

	fi, err := of.Stat()
	if err != nil {
		of.Close()
		f.Close()
		return nil, fmt.Errorf("stat file: %w", err)
	}

	all, err := syscall.Mmap(int(of.Fd()), 0, int(fi.Size()), syscall.PROT_READ, syscall.MAP_SHARED)
	if err != nil {
		of.Close()
		f.Close()
		return nil, fmt.Errorf("mmap file: %w", err)
	}

	im := &Image{Path: path, File: f, All: all, f: of}

	switch f.Machine {
	case pe.IMAGE_FILE_MACHINE_AMD64:
		im.Bits, im.Machine = 64, "x86-64"
	case pe.IMAGE_FILE_MACHINE_I386:
		im.Bits, im.Machine = 32, "x86"
	default:
		im.Close()
		return nil, fmt.Errorf("unsupported machine type %#x", f.Machine)
	}

	var entryRVA uint64
	switch oh := f.OptionalHeader.(type) {
	case *pe.OptionalHeader64:
		im.ImageBase = oh.ImageBase
		entryRVA = uint64(oh.AddressOfEntryPoint)
	case *pe.OptionalHeader32:
		im.ImageBase = uint64(oh.ImageBase)
		entryRVA = uint64(oh.AddressOfEntryPoint)
	default:
		im.Close()
		return nil, fmt.Errorf("missing optional header")
	}
	im.EntryPoint = im.ImageBase + entryRVA

	for _, s := range f.Sections {
		im.Sections = append(im.Sections, Section{
			Name:            s.Name,
			VA:              im.ImageBase + uint64(s.VirtualAddress),
			Off:             uint64(s.Offset),
			Size:            uint64(s.Size),
			VirtualSize:     uint64(s.VirtualSize),
			Characteristics: s.Characteristics,
		})
	}

	// Prefer the section named .text; stripped or packed images may carry
	// their code elsewhere, so fall back to the first executable section.
	for _, s := range im.Sections {
		if s.Name == ".text" {
			im.Text = s
			break
		}
	}
	if im.Text.Size == 0 {
		for _, s := range im.Sections {
			if s.Executable() && s.Size > 0 {
				im.Text = s
				break
			}
		}
	}

	im.loadSymbols()
	im.loadImports()
	return im, nil
}

// Close unmaps the memory and closes the underlying files.
func (im *Image) Close() error {
	var err1, err2 error
	if im.All != nil {
		err1 = syscall.Munmap(im.All)
		im.All = nil
	}
	if im.f != nil {
		err2 = im.f.Close()
		im.f = nil
	}
	if im.File != nil {
		err3 := im.File.Close()
		if err3 != nil && err2 == nil {
			err2 = err3
		}
		im.File = nil
	}
	if err1 != nil {
		return err1
	}
	return err2
}

// VA2Off translates a virtual address into a file offset using the section
// table. It returns false if the VA is unmapped.
func (im *Image) VA2Off(va uint64) (uint64, bool) {
	for _, s := range im.Sections {
		if va >= s.VA && va < s.VA+s.Size {
			return s.Off + (va - s.VA), true
		}
	}
	return 0, false
}

// SliceVA returns a subslice of the mapped file corresponding to the
// virtual address range [va, va+size). It returns (nil, false) if the VA is
// unmapped or the range is out of bounds.
func (im *Image) SliceVA(va uint64, size uint64) ([]byte, bool) {
	off, ok := im.VA2Off(va)
	if !ok {
		return nil, false
	}
	if size == 0 {
		return []byte{}, true
	}
	end := off + size
	if end > uint64(len(im.All)) {
		return nil, false
	}
	return im.All[off:end], true
}

// TextBytes returns the raw bytes of the code section together with its
// load address.
func (im *Image) TextBytes() ([]byte, uint64, error) {
	if im.Text.Size == 0 {
		return nil, 0, fmt.Errorf("%s: no executable section", im.Path)
	}
	end := im.Text.Off + im.Text.Size
	if end > uint64(len(im.All)) {
		return nil, 0, fmt.Errorf("%s: section %s extends past end of file", im.Path, im.Text.Name)
	}
	return im.All[im.Text.Off:end], im.Text.VA, nil
}

// SymbolAt returns the demangled symbol starting exactly at va, if any.
func (im *Image) SymbolAt(va uint64) (Sym, bool) {
	for _, sym := range im.Syms {
		if sym.Addr == va {
			return sym, true
		}
	}
	return Sym{}, false
}

// loadSymbols collects COFF symbols that resolve to an address inside a
// section. Fully stripped images simply yield an empty table.
func (im *Image) loadSymbols() {
	for _, sym := range im.File.Symbols {
		if sym.SectionNumber <= 0 || int(sym.SectionNumber) > len(im.Sections) {
			continue
		}
		sec := im.Sections[sym.SectionNumber-1]
		name := sym.Name
		d := demangle.Filter(name, demangle.NoClones)
		if d == "" {
			d = name
		}
		im.Syms = append(im.Syms, Sym{
			Name:      name,
			Demangled: d,
			Addr:      sec.VA + uint64(sym.Value),
		})
	}
}

// loadImports records the import table as symbol/DLL pairs.
func (im *Image) loadImports() {
	syms, err := im.File.ImportedSymbols()
	if err != nil {
		return
	}
	for _, s := range syms {
		// debug/pe encodes each entry as "name:DLL".
		name, lib := s, ""
		for i := len(s) - 1; i >= 0; i-- {
			if s[i] == ':' {
				name, lib = s[:i], s[i+1:]
				break
			}
		}
		im.Imports = append(im.Imports, Import{Symbol: name, Library: lib})
	}
}

// ReadUint reads a little-endian integer of the given byte width from a
// virtual address.
func (im *Image) ReadUint(va uint64, size int) (uint64, bool) {
	b, ok := im.SliceVA(va, uint64(size))
	if !ok {
		return 0, false
	}
	switch size {
	case 1:
		return uint64(b[0]), true
	case 2:
		return uint64(binary.LittleEndian.Uint16(b)), true
	case 4:
		return uint64(binary.LittleEndian.Uint32(b)), true
	case 8:
		return binary.LittleEndian.Uint64(b), true
	}
	return 0, false
}
