package x86

import (
	"fmt"
	"strings"
)

// Syntax selects the assembly dialect used by Format. Only Intel syntax
// (destination first) is implemented; unknown values fall back to it.
type Syntax int

const (
	SyntaxIntel Syntax = iota
)

// Format renders an instruction record as an assembly text line and the
// matching raw-byte line. Invalid records render the fixed "(bad)"
// placeholder so the byte view never loses coverage.
func Format(inst Inst, syntax Syntax) (text, raw string) {
	_ = syntax
	return intelText(inst), hexText(inst)
}

func hexText(inst Inst) string {
	var b strings.Builder
	for i, c := range inst.Raw {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%02x", c)
	}
	return b.String()
}

// repOps are the string operations that honor a printed rep/repne prefix.
var repOps = map[Op]bool{
	MOVSB: true, MOVSW: true, MOVSD: true, MOVSQ: true,
	CMPSB: true, CMPSW: true, CMPSD: true, CMPSQ: true,
	STOSB: true, STOSW: true, STOSD: true, STOSQ: true,
	LODSB: true, LODSW: true, LODSD: true, LODSQ: true,
	SCASB: true, SCASW: true, SCASD: true, SCASQ: true,
	INSB: true, INSW: true, INSD: true,
	OUTSB: true, OUTSW: true, OUTSD: true,
}

func intelText(inst Inst) string {
	if !inst.Valid {
		return INVALID.String()
	}

	var b strings.Builder
	if inst.Prefix.Lock {
		b.WriteString("lock ")
	}
	if repOps[inst.Op] {
		switch {
		case inst.Prefix.Repne:
			b.WriteString("repne ")
		case inst.Prefix.Rep:
			b.WriteString("rep ")
		}
	}
	b.WriteString(inst.Op.String())

	// Far immediates print as a seg:offset pair.
	if (inst.Op == LJMP || inst.Op == LCALL) && len(inst.Args) == 2 {
		if seg, ok := inst.Args[0].(Imm); ok {
			off := inst.Args[1].(Imm)
			fmt.Fprintf(&b, " 0x%x:0x%x", uint64(seg.Val), uint64(off.Val))
			return b.String()
		}
	}

	for i, a := range inst.Args {
		if i == 0 {
			b.WriteByte(' ')
		} else {
			b.WriteString(", ")
		}
		b.WriteString(formatArg(inst, a))
	}
	return b.String()
}

func formatArg(inst Inst, a Arg) string {
	switch v := a.(type) {
	case Rel:
		return fmt.Sprintf("0x%x", inst.Target(v))
	case Mem:
		return formatMem(inst, v)
	default:
		return a.String()
	}
}

var ptrNames = map[uint8]string{
	8:   "byte ptr",
	16:  "word ptr",
	32:  "dword ptr",
	64:  "qword ptr",
	80:  "tbyte ptr",
	128: "xmmword ptr",
}

func formatMem(inst Inst, m Mem) string {
	var b strings.Builder
	if p, ok := ptrNames[m.Width]; ok {
		b.WriteString(p)
		b.WriteByte(' ')
	}
	if m.RIPRelative() {
		// Resolve to the absolute target, the way the displacement is
		// actually used.
		if m.Seg != RegNone {
			fmt.Fprintf(&b, "%s:", m.Seg)
		}
		fmt.Fprintf(&b, "[0x%x]", inst.Target(m))
		return b.String()
	}
	b.WriteString(m.String())
	return b.String()
}
