package x86

// special intercepts opcodes whose meaning is carried by the whole ModRM
// byte rather than its fields: the fence forms of group 15, the register
// forms of group 7, and the F3-prefixed endbr marks. It runs after ModRM
// has been read. A handled result with Op==INVALID means the combination
// is architecturally undefined.
func (d *decoder) special(escape int, opcode byte) (Inst, bool) {
	if escape != 2 {
		return Inst{}, false
	}
	switch opcode {
	case 0xAE:
		if d.mod != 3 {
			return Inst{}, false
		}
		var op Op
		switch d.regOp & 7 {
		case 5:
			op = LFENCE
		case 6:
			op = MFENCE
		case 7:
			op = SFENCE
		}
		return Inst{Op: op, Prefix: d.pfx, Valid: op != INVALID}, true
	case 0x01:
		if d.mod != 3 {
			return Inst{}, false
		}
		var op Op
		switch d.modrm {
		case 0xC8:
			op = MONITOR
		case 0xC9:
			op = MWAIT
		case 0xD0:
			op = XGETBV
		case 0xD1:
			op = XSETBV
		case 0xF8:
			if d.bits == 64 {
				op = SWAPGS
			}
		case 0xF9:
			op = RDTSCP
		}
		return Inst{Op: op, Prefix: d.pfx, Valid: op != INVALID}, true
	case 0x1E:
		if !d.pfx.Rep {
			return Inst{}, false
		}
		switch d.modrm {
		case 0xFA:
			return Inst{Op: ENDBR64, Prefix: d.pfx, Valid: true}, true
		case 0xFB:
			return Inst{Op: ENDBR32, Prefix: d.pfx, Valid: true}, true
		}
	}
	return Inst{}, false
}

// sized selects among the 16/32/64-bit spellings of one mnemonic.
func sized(size int, w, d, q Op) Op {
	switch size {
	case 16:
		return w
	case 64:
		return q
	default:
		return d
	}
}

// scalarMemWidth narrows the memory operand of scalar SSE forms, whose
// templates share the 128-bit W encoding with the packed forms.
var scalarMemWidth = map[Op]uint8{
	MOVSS: 32, ADDSS: 32, SUBSS: 32, MULSS: 32, DIVSS: 32,
	MINSS: 32, MAXSS: 32, SQRTSS: 32, CMPSS: 32,
	UCOMISS: 32, COMISS: 32, CVTSS2SD: 32, CVTSS2SI: 32, CVTTSS2SI: 32,
	ROUNDSS: 32, INSERTPS: 32,
	MOVSD_XMM: 64, ADDSD: 64, SUBSD: 64, MULSD: 64, DIVSD: 64,
	MINSD: 64, MAXSD: 64, SQRTSD: 64, CMPSD_XMM: 64,
	UCOMISD: 64, COMISD: 64, CVTSD2SS: 64, CVTSD2SI: 64, CVTTSD2SI: 64,
	ROUNDSD: 64, MOVQ: 64,
}

// fixup resolves the mnemonics that depend on effective operand or address
// size, and the REX.W-promoted forms.
func (d *decoder) fixup(inst *Inst, escape int, opcode byte) {
	if w, ok := scalarMemWidth[inst.Op]; ok {
		for i, a := range inst.Args {
			if m, isMem := a.(Mem); isMem && m.Width == 128 {
				m.Width = w
				inst.Args[i] = m
			}
		}
	}
	switch escape {
	case 1:
		switch opcode {
		case 0x60:
			inst.Op = sized(d.opsize, PUSHA, PUSHAD, PUSHAD)
		case 0x61:
			inst.Op = sized(d.opsize, POPA, POPAD, POPAD)
		case 0x6D:
			inst.Op = sized(d.opsize, INSW, INSD, INSD)
		case 0x6F:
			inst.Op = sized(d.opsize, OUTSW, OUTSD, OUTSD)
		case 0x90:
			switch {
			case d.pfx.Rep:
				inst.Op = PAUSE
			case d.opReg != 0:
				// REX.B turns the short nop back into xchg r8,rax.
				inst.Op = XCHG
				inst.Args = []Arg{gpr(d.opsize, d.opReg, true), gpr(d.opsize, 0, false)}
			}
		case 0x98:
			inst.Op = sized(d.opsize, CBW, CWDE, CDQE)
		case 0x99:
			inst.Op = sized(d.opsize, CWD, CDQ, CQO)
		case 0x9C:
			inst.Op = sized(d.opsize, PUSHF, PUSHFD, PUSHFQ)
		case 0x9D:
			inst.Op = sized(d.opsize, POPF, POPFD, POPFQ)
		case 0xA5:
			inst.Op = sized(d.opsize, MOVSW, MOVSD, MOVSQ)
		case 0xA7:
			inst.Op = sized(d.opsize, CMPSW, CMPSD, CMPSQ)
		case 0xAB:
			inst.Op = sized(d.opsize, STOSW, STOSD, STOSQ)
		case 0xAD:
			inst.Op = sized(d.opsize, LODSW, LODSD, LODSQ)
		case 0xAF:
			inst.Op = sized(d.opsize, SCASW, SCASD, SCASQ)
		case 0xCF:
			inst.Op = sized(d.opsize, IRET, IRETD, IRETQ)
		case 0xE3:
			inst.Op = sized(d.addrsize, JCXZ, JECXZ, JRCXZ)
		}
	case 2:
		switch opcode {
		case 0x6E, 0x7E:
			if inst.Op == MOVD && d.pfx.RexW() {
				inst.Op = MOVQ
			}
		case 0xC7:
			if inst.Op == CMPXCHG8B && d.pfx.RexW() {
				inst.Op = CMPXCHG16B
			}
		}
	case 4:
		switch opcode {
		case 0x16:
			if d.pfx.RexW() {
				inst.Op = PEXTRQ
			}
		case 0x22:
			if d.pfx.RexW() {
				inst.Op = PINSRQ
			}
		}
	}
}
