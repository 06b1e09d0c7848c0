package x86

// x87 escape decoding (opcodes D8-DF). The memory forms are fully regular:
// one operation table per escape byte, selected by the ModRM reg field.
// The register forms are handled per escape; combinations outside the
// architectural set decode as undefined and resynchronize.

type fpuMemOp struct {
	op    Op
	width uint8 // memory operand width in bits, 0 when untyped
}

var fpuMem = [8][8]fpuMemOp{
	{ // D8: m32fp arithmetic
		{FADD, 32}, {FMUL, 32}, {FCOM, 32}, {FCOMP, 32},
		{FSUB, 32}, {FSUBR, 32}, {FDIV, 32}, {FDIVR, 32},
	},
	{ // D9
		{FLD, 32}, {}, {FST, 32}, {FSTP, 32},
		{FLDENV, 0}, {FLDCW, 16}, {FNSTENV, 0}, {FNSTCW, 16},
	},
	{ // DA: m32int arithmetic
		{FIADD, 32}, {FIMUL, 32}, {FICOM, 32}, {FICOMP, 32},
		{FISUB, 32}, {FISUBR, 32}, {FIDIV, 32}, {FIDIVR, 32},
	},
	{ // DB
		{FILD, 32}, {FISTTP, 32}, {FIST, 32}, {FISTP, 32},
		{}, {FLD, 80}, {}, {FSTP, 80},
	},
	{ // DC: m64fp arithmetic
		{FADD, 64}, {FMUL, 64}, {FCOM, 64}, {FCOMP, 64},
		{FSUB, 64}, {FSUBR, 64}, {FDIV, 64}, {FDIVR, 64},
	},
	{ // DD
		{FLD, 64}, {FISTTP, 64}, {FST, 64}, {FSTP, 64},
		{FRSTOR, 0}, {}, {FNSAVE, 0}, {FNSTSW, 16},
	},
	{ // DE: m16int arithmetic
		{FIADD, 16}, {FIMUL, 16}, {FICOM, 16}, {FICOMP, 16},
		{FISUB, 16}, {FISUBR, 16}, {FIDIV, 16}, {FIDIVR, 16},
	},
	{ // DF
		{FILD, 16}, {FISTTP, 16}, {FIST, 16}, {FISTP, 16},
		{FBLD, 80}, {FILD, 64}, {FBSTP, 80}, {FISTP, 64},
	},
}

// d9Singles covers the no-operand register forms of D9 E0-FF.
var d9Singles = map[byte]Op{
	0xE0: FCHS, 0xE1: FABS, 0xE4: FTST, 0xE5: FXAM,
	0xE8: FLD1, 0xE9: FLDL2T, 0xEA: FLDL2E, 0xEB: FLDPI,
	0xEC: FLDLG2, 0xED: FLDLN2, 0xEE: FLDZ,
	0xF0: F2XM1, 0xF1: FYL2X, 0xF2: FPTAN, 0xF3: FPATAN,
	0xF4: FXTRACT, 0xF5: FPREM1, 0xF6: FDECSTP, 0xF7: FINCSTP,
	0xF8: FPREM, 0xF9: FYL2XP1, 0xFA: FSQRT, 0xFB: FSINCOS,
	0xFC: FRNDINT, 0xFD: FSCALE, 0xFE: FSIN, 0xFF: FCOS,
}

func (d *decoder) decodeFPU(opcode byte) (Inst, bool) {
	if !d.readModRM() {
		return Inst{}, false
	}
	idx := opcode - 0xD8
	reg := d.regOp & 7
	sti := st(d.modrm & 7)

	if d.mod != 3 {
		m := fpuMem[idx][reg]
		if m.op == INVALID {
			return Inst{}, false
		}
		if !d.decodeAddress() {
			return Inst{}, false
		}
		mem := d.mem
		mem.Width = m.width
		return d.finish(Inst{Op: m.op, Prefix: d.pfx, Valid: true, Args: []Arg{mem}})
	}

	mk := func(op Op, args ...Arg) (Inst, bool) {
		if op == INVALID {
			return Inst{}, false
		}
		return d.finish(Inst{Op: op, Prefix: d.pfx, Valid: true, Args: args})
	}

	switch opcode {
	case 0xD8:
		switch reg {
		case 2, 3: // fcom/fcomp take a single stack operand
			return mk(fpuMem[0][reg].op, sti)
		default:
			return mk(fpuMem[0][reg].op, ST0, sti)
		}
	case 0xD9:
		switch reg {
		case 0:
			return mk(FLD, sti)
		case 1:
			return mk(FXCH, sti)
		case 2:
			if d.modrm == 0xD0 {
				return mk(FNOP)
			}
		default:
			if op, ok := d9Singles[d.modrm]; ok {
				return mk(op)
			}
		}
	case 0xDA:
		switch reg {
		case 0:
			return mk(FCMOVB, ST0, sti)
		case 1:
			return mk(FCMOVE, ST0, sti)
		case 2:
			return mk(FCMOVBE, ST0, sti)
		case 3:
			return mk(FCMOVU, ST0, sti)
		case 5:
			if d.modrm == 0xE9 {
				return mk(FUCOMPP)
			}
		}
	case 0xDB:
		switch reg {
		case 0:
			return mk(FCMOVNB, ST0, sti)
		case 1:
			return mk(FCMOVNE, ST0, sti)
		case 2:
			return mk(FCMOVNBE, ST0, sti)
		case 3:
			return mk(FCMOVNU, ST0, sti)
		case 4:
			switch d.modrm {
			case 0xE2:
				return mk(FNCLEX)
			case 0xE3:
				return mk(FNINIT)
			}
		case 5:
			return mk(FUCOMI, ST0, sti)
		case 6:
			return mk(FCOMI, ST0, sti)
		}
	case 0xDC:
		switch reg {
		case 0:
			return mk(FADD, sti, ST0)
		case 1:
			return mk(FMUL, sti, ST0)
		case 4:
			return mk(FSUBR, sti, ST0)
		case 5:
			return mk(FSUB, sti, ST0)
		case 6:
			return mk(FDIVR, sti, ST0)
		case 7:
			return mk(FDIV, sti, ST0)
		}
	case 0xDD:
		switch reg {
		case 0:
			return mk(FFREE, sti)
		case 2:
			return mk(FST, sti)
		case 3:
			return mk(FSTP, sti)
		case 4:
			return mk(FUCOM, sti)
		case 5:
			return mk(FUCOMP, sti)
		}
	case 0xDE:
		switch reg {
		case 0:
			return mk(FADDP, sti, ST0)
		case 1:
			return mk(FMULP, sti, ST0)
		case 3:
			if d.modrm == 0xD9 {
				return mk(FCOMPP)
			}
		case 4:
			return mk(FSUBRP, sti, ST0)
		case 5:
			return mk(FSUBP, sti, ST0)
		case 6:
			return mk(FDIVRP, sti, ST0)
		case 7:
			return mk(FDIVP, sti, ST0)
		}
	case 0xDF:
		switch reg {
		case 4:
			if d.modrm == 0xE0 {
				return mk(FNSTSW, AX)
			}
		case 5:
			return mk(FUCOMIP, ST0, sti)
		case 6:
			return mk(FCOMIP, ST0, sti)
		}
	}
	return Inst{}, false
}
