// Package x86 decodes x86 and x86-64 machine code into structured
// instruction records and renders them as Intel-syntax assembly text.
//
// Decoding is a pure function of (buffer, cursor, bitness): the opcode
// tables are immutable package data, so any number of decode runs may share
// them concurrently without synchronization.
package x86

import (
	"fmt"
	"strings"
)

// MaxInstLen is the architectural ceiling on x86 instruction length.
const MaxInstLen = 15

// Arg is one instruction operand. It is a closed sum over Reg, Mem, Imm
// and Rel; no other type implements it.
type Arg interface {
	isArg()
	String() string
}

// Mem is a memory operand: segment:[base+index*scale+disp].
type Mem struct {
	Seg   Reg   // segment override, RegNone when absent
	Base  Reg   // RegNone when absent; RIP for RIP-relative operands
	Index Reg   // RegNone when absent
	Scale uint8 // 1, 2, 4 or 8; 0 when Index is absent
	Disp  int64
	Width uint8 // operand width in bits; 0 when not implied by the opcode
}

func (Mem) isArg() {}

// RIPRelative reports whether the effective address is computed relative
// to the address of the next instruction.
func (m Mem) RIPRelative() bool { return m.Base == RIP }

func (m Mem) String() string {
	var b strings.Builder
	if m.Seg != RegNone {
		b.WriteString(m.Seg.String())
		b.WriteByte(':')
	}
	b.WriteByte('[')
	needPlus := false
	if m.Base != RegNone {
		b.WriteString(m.Base.String())
		needPlus = true
	}
	if m.Index != RegNone {
		if needPlus {
			b.WriteByte('+')
		}
		b.WriteString(m.Index.String())
		fmt.Fprintf(&b, "*%d", m.Scale)
		needPlus = true
	}
	switch {
	case m.Disp == 0 && needPlus:
		// elide zero displacement
	case !needPlus:
		fmt.Fprintf(&b, "0x%x", uint64(m.Disp))
	case m.Disp < 0:
		fmt.Fprintf(&b, "-0x%x", uint64(-m.Disp))
	default:
		fmt.Fprintf(&b, "+0x%x", uint64(m.Disp))
	}
	b.WriteByte(']')
	return b.String()
}

// Imm is an immediate operand, sign-extended to 64 bits.
type Imm struct {
	Val   int64
	Width uint8 // encoded width in bits
}

func (Imm) isArg() {}

func (i Imm) String() string {
	if i.Val < 0 {
		return fmt.Sprintf("-0x%x", uint64(-i.Val))
	}
	return fmt.Sprintf("0x%x", uint64(i.Val))
}

// Rel is a branch displacement relative to the address of the next
// instruction. The absolute target is resolved at render time from the
// owning record's address and length.
type Rel struct {
	Disp  int32
	Width uint8 // encoded width in bits
}

func (Rel) isArg() {}

func (r Rel) String() string {
	if r.Disp < 0 {
		return fmt.Sprintf(".-0x%x", uint32(-r.Disp))
	}
	return fmt.Sprintf(".+0x%x", uint32(r.Disp))
}

// Prefixes records the legacy and REX prefixes consumed ahead of the
// opcode.
type Prefixes struct {
	Lock     bool
	Rep      bool // F3
	Repne    bool // F2
	Seg      Reg  // segment override, RegNone when absent
	OpSize   bool // 66
	AddrSize bool // 67
	REX      byte // raw REX byte (0x40..0x4F), 0 when absent
}

// HasREX reports whether a REX prefix was present.
func (p Prefixes) HasREX() bool { return p.REX != 0 }

func (p Prefixes) RexW() bool { return p.REX&0x08 != 0 }
func (p Prefixes) RexR() bool { return p.REX&0x04 != 0 }
func (p Prefixes) RexX() bool { return p.REX&0x02 != 0 }
func (p Prefixes) RexB() bool { return p.REX&0x01 != 0 }

// Inst is one fully decoded instruction record.
type Inst struct {
	Addr   uint64 // virtual address of the first byte
	Op     Op
	Args   []Arg // destination first, at most 4
	Prefix Prefixes
	Len    int    // bytes consumed, 1..15
	Raw    []byte // exactly the Len bytes consumed
	Valid  bool   // false marks a resynchronization placeholder
}

// Target resolves a Rel or RIP-relative Mem operand to the absolute
// address it refers to.
func (i Inst) Target(a Arg) uint64 {
	next := i.Addr + uint64(i.Len)
	switch v := a.(type) {
	case Rel:
		return next + uint64(int64(v.Disp))
	case Mem:
		if v.RIPRelative() {
			return next + uint64(v.Disp)
		}
	}
	return 0
}
