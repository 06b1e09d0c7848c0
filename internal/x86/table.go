package x86

// The opcode tables below are the static decode maps: one fixed 256-entry
// array per escape class, group tables keyed by the ModRM reg field, and
// variant tables for opcodes whose meaning is selected by a mandatory
// 66/F3/F2 prefix. All of it is immutable package data built at process
// start; decode runs only ever read it.

// argField describes how one operand of a template is encoded. The
// letter/size convention follows the architectural opcode reference
// (E = ModRM r/m, G = ModRM reg, I = immediate, J = branch displacement...).
type argField uint8

const (
	xNone argField = iota
	xEb            // r/m, 8-bit
	xEv            // r/m, operand size
	xEw            // r/m, 16-bit
	xEd            // r/m, 32-bit
	xEy            // r/m, 32/64-bit by REX.W
	xGb            // reg, 8-bit
	xGv            // reg, operand size
	xGw            // reg, 16-bit
	xGd            // reg, 32-bit
	xGy            // reg, 32/64-bit by REX.W
	xM             // r/m, memory only, width implied elsewhere
	xRv            // r/m, register only, operand size
	xSw            // segment register from reg field
	xCr            // control register from reg field
	xDr            // debug register from reg field
	xPq            // MMX register from reg field
	xQq            // MMX register or 64-bit memory from r/m
	xVx            // XMM register from reg field
	xWx            // XMM register or 128-bit memory from r/m
	xIb            // imm8, sign-extended
	xIbu           // imm8, zero-extended
	xIw            // imm16
	xIz            // imm16/32 by operand size, sign-extended
	xIv            // immediate of full operand size, including 64
	xJb            // rel8
	xJz            // rel16/32 by operand size
	xAp            // far pointer immediate (16:16 or 16:32)
	xAL
	xCL
	xDX
	xEAX // ax/eax/rax by operand size
	xOne // the constant 1 of the short shift forms
	xOb  // moffs, 8-bit data
	xOv  // moffs, operand-size data
	xRegB
	xRegV
	xES
	xCS
	xSS
	xDS
	xFS
	xGS
)

type opFlag uint8

const (
	fModRM opFlag = 1 << iota
	fI64          // undefined in 64-bit mode
	fO64          // only defined in 64-bit mode
	fD64          // operand size defaults to 64 in 64-bit mode
	fGroup        // mnemonic comes from groupTab[group][modrm.reg]
	fFP           // x87 escape, decoded by decodeFPU
)

// optab is one instruction template.
type optab struct {
	op    Op
	flags opFlag
	group uint8
	args  [3]argField
}

func (t optab) defined() bool { return t.op != INVALID || t.flags != 0 }

func ent(op Op, flags opFlag, args ...argField) optab {
	t := optab{op: op, flags: flags}
	copy(t.args[:], args)
	return t
}

func grp(g uint8, flags opFlag, args ...argField) optab {
	t := optab{flags: flags | fGroup | fModRM, group: g}
	copy(t.args[:], args)
	return t
}

// Group table indices.
const (
	grp1 = iota
	grp1A
	grp2
	grp3b
	grp3v
	grp4
	grp5
	grp6
	grp7
	grp8
	grp9
	grp11b
	grp11v
	grp12
	grp13
	grp14
	grp15
	grp16
	grpPrefetchW
	grpCount
)

var groupTab = [grpCount][8]optab{
	grp1: {
		ent(ADD, fModRM), ent(OR, fModRM), ent(ADC, fModRM), ent(SBB, fModRM),
		ent(AND, fModRM), ent(SUB, fModRM), ent(XOR, fModRM), ent(CMP, fModRM),
	},
	grp1A: {
		0: ent(POP, fModRM|fD64),
	},
	grp2: {
		ent(ROL, fModRM), ent(ROR, fModRM), ent(RCL, fModRM), ent(RCR, fModRM),
		ent(SHL, fModRM), ent(SHR, fModRM), ent(SHL, fModRM), ent(SAR, fModRM),
	},
	grp3b: {
		ent(TEST, fModRM, xEb, xIb), ent(TEST, fModRM, xEb, xIb),
		ent(NOT, fModRM, xEb), ent(NEG, fModRM, xEb),
		ent(MUL, fModRM, xEb), ent(IMUL, fModRM, xEb),
		ent(DIV, fModRM, xEb), ent(IDIV, fModRM, xEb),
	},
	grp3v: {
		ent(TEST, fModRM, xEv, xIz), ent(TEST, fModRM, xEv, xIz),
		ent(NOT, fModRM, xEv), ent(NEG, fModRM, xEv),
		ent(MUL, fModRM, xEv), ent(IMUL, fModRM, xEv),
		ent(DIV, fModRM, xEv), ent(IDIV, fModRM, xEv),
	},
	grp4: {
		ent(INC, fModRM, xEb), ent(DEC, fModRM, xEb),
	},
	grp5: {
		ent(INC, fModRM, xEv), ent(DEC, fModRM, xEv),
		ent(CALL, fModRM|fD64, xEv), ent(LCALL, fModRM, xM),
		ent(JMP, fModRM|fD64, xEv), ent(LJMP, fModRM, xM),
		ent(PUSH, fModRM|fD64, xEv),
	},
	grp6: {
		ent(SLDT, fModRM, xEv), ent(STR, fModRM, xEv),
		ent(LLDT, fModRM, xEw), ent(LTR, fModRM, xEw),
		ent(VERR, fModRM, xEw), ent(VERW, fModRM, xEw),
	},
	grp7: {
		ent(SGDT, fModRM, xM), ent(SIDT, fModRM, xM),
		ent(LGDT, fModRM, xM), ent(LIDT, fModRM, xM),
		ent(SMSW, fModRM, xEv), optab{},
		ent(LMSW, fModRM, xEw), ent(INVLPG, fModRM, xM),
	},
	grp8: {
		4: ent(BT, fModRM), 5: ent(BTS, fModRM),
		6: ent(BTR, fModRM), 7: ent(BTC, fModRM),
	},
	grp9: {
		1: ent(CMPXCHG8B, fModRM, xM),
		6: ent(RDRAND, fModRM, xRv),
		7: ent(RDSEED, fModRM, xRv),
	},
	grp11b: {
		0: ent(MOV, fModRM, xEb, xIb),
	},
	grp11v: {
		0: ent(MOV, fModRM, xEv, xIz),
	},
	grp12: {
		2: ent(PSRLW, fModRM), 4: ent(PSRAW, fModRM), 6: ent(PSLLW, fModRM),
	},
	grp13: {
		2: ent(PSRLD, fModRM), 4: ent(PSRAD, fModRM), 6: ent(PSLLD, fModRM),
	},
	grp14: {
		2: ent(PSRLQ, fModRM), 6: ent(PSLLQ, fModRM),
	},
	grp15: {
		ent(FXSAVE, fModRM, xM), ent(FXRSTOR, fModRM, xM),
		ent(LDMXCSR, fModRM, xM), ent(STMXCSR, fModRM, xM),
		ent(XSAVE, fModRM, xM), ent(XRSTOR, fModRM, xM),
		ent(XSAVEOPT, fModRM, xM), ent(CLFLUSH, fModRM, xM),
	},
	grp16: {
		ent(PREFETCHNTA, fModRM, xM), ent(PREFETCHT0, fModRM, xM),
		ent(PREFETCHT1, fModRM, xM), ent(PREFETCHT2, fModRM, xM),
		ent(NOP, fModRM, xEv), ent(NOP, fModRM, xEv),
		ent(NOP, fModRM, xEv), ent(NOP, fModRM, xEv),
	},
	grpPrefetchW: {
		0: ent(PREFETCHW, fModRM, xM), 1: ent(PREFETCHW, fModRM, xM),
		2: ent(PREFETCHW, fModRM, xM), 3: ent(PREFETCHW, fModRM, xM),
	},
}

// oneByte is the legacy one-byte opcode map. Bytes handled by the prefix
// scanner (26, 2E, 36, 3E, 64-67, F0, F2, F3, and 40-4F in 64-bit mode)
// have no entry; they never reach lookup on a well-formed stream, and an
// undefined entry resynchronizes if they do.
var oneByte = [256]optab{
	0x00: ent(ADD, fModRM, xEb, xGb),
	0x01: ent(ADD, fModRM, xEv, xGv),
	0x02: ent(ADD, fModRM, xGb, xEb),
	0x03: ent(ADD, fModRM, xGv, xEv),
	0x04: ent(ADD, 0, xAL, xIb),
	0x05: ent(ADD, 0, xEAX, xIz),
	0x06: ent(PUSH, fI64, xES),
	0x07: ent(POP, fI64, xES),
	0x08: ent(OR, fModRM, xEb, xGb),
	0x09: ent(OR, fModRM, xEv, xGv),
	0x0A: ent(OR, fModRM, xGb, xEb),
	0x0B: ent(OR, fModRM, xGv, xEv),
	0x0C: ent(OR, 0, xAL, xIb),
	0x0D: ent(OR, 0, xEAX, xIz),
	0x0E: ent(PUSH, fI64, xCS),

	0x10: ent(ADC, fModRM, xEb, xGb),
	0x11: ent(ADC, fModRM, xEv, xGv),
	0x12: ent(ADC, fModRM, xGb, xEb),
	0x13: ent(ADC, fModRM, xGv, xEv),
	0x14: ent(ADC, 0, xAL, xIb),
	0x15: ent(ADC, 0, xEAX, xIz),
	0x16: ent(PUSH, fI64, xSS),
	0x17: ent(POP, fI64, xSS),
	0x18: ent(SBB, fModRM, xEb, xGb),
	0x19: ent(SBB, fModRM, xEv, xGv),
	0x1A: ent(SBB, fModRM, xGb, xEb),
	0x1B: ent(SBB, fModRM, xGv, xEv),
	0x1C: ent(SBB, 0, xAL, xIb),
	0x1D: ent(SBB, 0, xEAX, xIz),
	0x1E: ent(PUSH, fI64, xDS),
	0x1F: ent(POP, fI64, xDS),

	0x20: ent(AND, fModRM, xEb, xGb),
	0x21: ent(AND, fModRM, xEv, xGv),
	0x22: ent(AND, fModRM, xGb, xEb),
	0x23: ent(AND, fModRM, xGv, xEv),
	0x24: ent(AND, 0, xAL, xIb),
	0x25: ent(AND, 0, xEAX, xIz),
	0x27: ent(DAA, fI64),
	0x28: ent(SUB, fModRM, xEb, xGb),
	0x29: ent(SUB, fModRM, xEv, xGv),
	0x2A: ent(SUB, fModRM, xGb, xEb),
	0x2B: ent(SUB, fModRM, xGv, xEv),
	0x2C: ent(SUB, 0, xAL, xIb),
	0x2D: ent(SUB, 0, xEAX, xIz),
	0x2F: ent(DAS, fI64),

	0x30: ent(XOR, fModRM, xEb, xGb),
	0x31: ent(XOR, fModRM, xEv, xGv),
	0x32: ent(XOR, fModRM, xGb, xEb),
	0x33: ent(XOR, fModRM, xGv, xEv),
	0x34: ent(XOR, 0, xAL, xIb),
	0x35: ent(XOR, 0, xEAX, xIz),
	0x37: ent(AAA, fI64),
	0x38: ent(CMP, fModRM, xEb, xGb),
	0x39: ent(CMP, fModRM, xEv, xGv),
	0x3A: ent(CMP, fModRM, xGb, xEb),
	0x3B: ent(CMP, fModRM, xGv, xEv),
	0x3C: ent(CMP, 0, xAL, xIb),
	0x3D: ent(CMP, 0, xEAX, xIz),
	0x3F: ent(AAS, fI64),

	// 40-4F are REX prefixes in 64-bit mode and never reach the table
	// there; in 32-bit mode they are the short inc/dec forms.
	0x40: ent(INC, fI64, xRegV),
	0x41: ent(INC, fI64, xRegV),
	0x42: ent(INC, fI64, xRegV),
	0x43: ent(INC, fI64, xRegV),
	0x44: ent(INC, fI64, xRegV),
	0x45: ent(INC, fI64, xRegV),
	0x46: ent(INC, fI64, xRegV),
	0x47: ent(INC, fI64, xRegV),
	0x48: ent(DEC, fI64, xRegV),
	0x49: ent(DEC, fI64, xRegV),
	0x4A: ent(DEC, fI64, xRegV),
	0x4B: ent(DEC, fI64, xRegV),
	0x4C: ent(DEC, fI64, xRegV),
	0x4D: ent(DEC, fI64, xRegV),
	0x4E: ent(DEC, fI64, xRegV),
	0x4F: ent(DEC, fI64, xRegV),

	0x50: ent(PUSH, fD64, xRegV),
	0x51: ent(PUSH, fD64, xRegV),
	0x52: ent(PUSH, fD64, xRegV),
	0x53: ent(PUSH, fD64, xRegV),
	0x54: ent(PUSH, fD64, xRegV),
	0x55: ent(PUSH, fD64, xRegV),
	0x56: ent(PUSH, fD64, xRegV),
	0x57: ent(PUSH, fD64, xRegV),
	0x58: ent(POP, fD64, xRegV),
	0x59: ent(POP, fD64, xRegV),
	0x5A: ent(POP, fD64, xRegV),
	0x5B: ent(POP, fD64, xRegV),
	0x5C: ent(POP, fD64, xRegV),
	0x5D: ent(POP, fD64, xRegV),
	0x5E: ent(POP, fD64, xRegV),
	0x5F: ent(POP, fD64, xRegV),

	0x60: ent(PUSHA, fI64),
	0x61: ent(POPA, fI64),
	0x62: ent(BOUND, fModRM|fI64, xGv, xM),
	0x63: ent(ARPL, fModRM, xEw, xGw), // MOVSXD in 64-bit mode, fixed up in decode
	0x68: ent(PUSH, fD64, xIz),
	0x69: ent(IMUL, fModRM, xGv, xEv, xIz),
	0x6A: ent(PUSH, fD64, xIb),
	0x6B: ent(IMUL, fModRM, xGv, xEv, xIb),
	0x6C: ent(INSB, 0),
	0x6D: ent(INSD, 0), // insw with 66
	0x6E: ent(OUTSB, 0),
	0x6F: ent(OUTSD, 0), // outsw with 66

	0x70: ent(JO, fD64, xJb),
	0x71: ent(JNO, fD64, xJb),
	0x72: ent(JB, fD64, xJb),
	0x73: ent(JAE, fD64, xJb),
	0x74: ent(JE, fD64, xJb),
	0x75: ent(JNE, fD64, xJb),
	0x76: ent(JBE, fD64, xJb),
	0x77: ent(JA, fD64, xJb),
	0x78: ent(JS, fD64, xJb),
	0x79: ent(JNS, fD64, xJb),
	0x7A: ent(JP, fD64, xJb),
	0x7B: ent(JNP, fD64, xJb),
	0x7C: ent(JL, fD64, xJb),
	0x7D: ent(JGE, fD64, xJb),
	0x7E: ent(JLE, fD64, xJb),
	0x7F: ent(JG, fD64, xJb),

	0x80: grp(grp1, 0, xEb, xIb),
	0x81: grp(grp1, 0, xEv, xIz),
	0x82: grp(grp1, fI64, xEb, xIb),
	0x83: grp(grp1, 0, xEv, xIb),
	0x84: ent(TEST, fModRM, xEb, xGb),
	0x85: ent(TEST, fModRM, xEv, xGv),
	0x86: ent(XCHG, fModRM, xEb, xGb),
	0x87: ent(XCHG, fModRM, xEv, xGv),
	0x88: ent(MOV, fModRM, xEb, xGb),
	0x89: ent(MOV, fModRM, xEv, xGv),
	0x8A: ent(MOV, fModRM, xGb, xEb),
	0x8B: ent(MOV, fModRM, xGv, xEv),
	0x8C: ent(MOV, fModRM, xEv, xSw),
	0x8D: ent(LEA, fModRM, xGv, xM),
	0x8E: ent(MOV, fModRM, xSw, xEw),
	0x8F: grp(grp1A, 0, xEv),

	0x90: ent(NOP, 0), // xchg r8,rax with REX.B, pause with F3
	0x91: ent(XCHG, 0, xRegV, xEAX),
	0x92: ent(XCHG, 0, xRegV, xEAX),
	0x93: ent(XCHG, 0, xRegV, xEAX),
	0x94: ent(XCHG, 0, xRegV, xEAX),
	0x95: ent(XCHG, 0, xRegV, xEAX),
	0x96: ent(XCHG, 0, xRegV, xEAX),
	0x97: ent(XCHG, 0, xRegV, xEAX),
	0x98: ent(CWDE, 0), // cbw/cdqe by operand size
	0x99: ent(CDQ, 0),  // cwd/cqo by operand size
	0x9A: ent(LCALL, fI64, xAp),
	0x9B: ent(WAIT, 0),
	0x9C: ent(PUSHF, fD64),
	0x9D: ent(POPF, fD64),
	0x9E: ent(SAHF, 0),
	0x9F: ent(LAHF, 0),

	0xA0: ent(MOV, 0, xAL, xOb),
	0xA1: ent(MOV, 0, xEAX, xOv),
	0xA2: ent(MOV, 0, xOb, xAL),
	0xA3: ent(MOV, 0, xOv, xEAX),
	0xA4: ent(MOVSB, 0),
	0xA5: ent(MOVSD, 0), // movsw/movsq by operand size
	0xA6: ent(CMPSB, 0),
	0xA7: ent(CMPSD, 0),
	0xA8: ent(TEST, 0, xAL, xIb),
	0xA9: ent(TEST, 0, xEAX, xIz),
	0xAA: ent(STOSB, 0),
	0xAB: ent(STOSD, 0),
	0xAC: ent(LODSB, 0),
	0xAD: ent(LODSD, 0),
	0xAE: ent(SCASB, 0),
	0xAF: ent(SCASD, 0),

	0xB0: ent(MOV, 0, xRegB, xIbu),
	0xB1: ent(MOV, 0, xRegB, xIbu),
	0xB2: ent(MOV, 0, xRegB, xIbu),
	0xB3: ent(MOV, 0, xRegB, xIbu),
	0xB4: ent(MOV, 0, xRegB, xIbu),
	0xB5: ent(MOV, 0, xRegB, xIbu),
	0xB6: ent(MOV, 0, xRegB, xIbu),
	0xB7: ent(MOV, 0, xRegB, xIbu),
	0xB8: ent(MOV, 0, xRegV, xIv),
	0xB9: ent(MOV, 0, xRegV, xIv),
	0xBA: ent(MOV, 0, xRegV, xIv),
	0xBB: ent(MOV, 0, xRegV, xIv),
	0xBC: ent(MOV, 0, xRegV, xIv),
	0xBD: ent(MOV, 0, xRegV, xIv),
	0xBE: ent(MOV, 0, xRegV, xIv),
	0xBF: ent(MOV, 0, xRegV, xIv),

	0xC0: grp(grp2, 0, xEb, xIbu),
	0xC1: grp(grp2, 0, xEv, xIbu),
	0xC2: ent(RET, fD64, xIw),
	0xC3: ent(RET, fD64),
	0xC4: ent(LES, fModRM|fI64, xGv, xM),
	0xC5: ent(LDS, fModRM|fI64, xGv, xM),
	0xC6: grp(grp11b, 0),
	0xC7: grp(grp11v, 0),
	0xC8: ent(ENTER, 0, xIw, xIbu),
	0xC9: ent(LEAVE, fD64),
	0xCA: ent(LRET, 0, xIw),
	0xCB: ent(LRET, 0),
	0xCC: ent(INT3, 0),
	0xCD: ent(INT, 0, xIbu),
	0xCE: ent(INTO, fI64),
	0xCF: ent(IRETD, 0), // iret/iretq by operand size

	0xD0: grp(grp2, 0, xEb, xOne),
	0xD1: grp(grp2, 0, xEv, xOne),
	0xD2: grp(grp2, 0, xEb, xCL),
	0xD3: grp(grp2, 0, xEv, xCL),
	0xD4: ent(AAM, fI64, xIbu),
	0xD5: ent(AAD, fI64, xIbu),
	0xD6: ent(SALC, fI64),
	0xD7: ent(XLATB, 0),
	0xD8: ent(INVALID, fModRM|fFP),
	0xD9: ent(INVALID, fModRM|fFP),
	0xDA: ent(INVALID, fModRM|fFP),
	0xDB: ent(INVALID, fModRM|fFP),
	0xDC: ent(INVALID, fModRM|fFP),
	0xDD: ent(INVALID, fModRM|fFP),
	0xDE: ent(INVALID, fModRM|fFP),
	0xDF: ent(INVALID, fModRM|fFP),

	0xE0: ent(LOOPNE, fD64, xJb),
	0xE1: ent(LOOPE, fD64, xJb),
	0xE2: ent(LOOP, fD64, xJb),
	0xE3: ent(JECXZ, fD64, xJb), // jcxz/jrcxz by address size
	0xE4: ent(IN, 0, xAL, xIbu),
	0xE5: ent(IN, 0, xEAX, xIbu),
	0xE6: ent(OUT, 0, xIbu, xAL),
	0xE7: ent(OUT, 0, xIbu, xEAX),
	0xE8: ent(CALL, fD64, xJz),
	0xE9: ent(JMP, fD64, xJz),
	0xEA: ent(LJMP, fI64, xAp),
	0xEB: ent(JMP, fD64, xJb),
	0xEC: ent(IN, 0, xAL, xDX),
	0xED: ent(IN, 0, xEAX, xDX),
	0xEE: ent(OUT, 0, xDX, xAL),
	0xEF: ent(OUT, 0, xDX, xEAX),

	0xF1: ent(INT1, 0),
	0xF4: ent(HLT, 0),
	0xF5: ent(CMC, 0),
	0xF6: grp(grp3b, 0),
	0xF7: grp(grp3v, 0),
	0xF8: ent(CLC, 0),
	0xF9: ent(STC, 0),
	0xFA: ent(CLI, 0),
	0xFB: ent(STI, 0),
	0xFC: ent(CLD, 0),
	0xFD: ent(STD, 0),
	0xFE: grp(grp4, 0),
	0xFF: grp(grp5, 0),
}

// twoByte is the 0F escape map for opcodes without mandatory-prefix
// variants; opcodes that do have variants live in twoByteSSE and win the
// lookup when present.
var twoByte = [256]optab{
	0x00: grp(grp6, 0),
	0x01: grp(grp7, 0),
	0x02: ent(LAR, fModRM, xGv, xEw),
	0x03: ent(LSL, fModRM, xGv, xEw),
	0x05: ent(SYSCALL, 0),
	0x06: ent(CLTS, 0),
	0x07: ent(SYSRET, 0),
	0x08: ent(INVD, 0),
	0x09: ent(WBINVD, 0),
	0x0B: ent(UD2, 0),
	0x0D: grp(grpPrefetchW, 0),
	0x18: grp(grp16, 0),
	0x19: ent(NOP, fModRM, xEv),
	0x1A: ent(NOP, fModRM, xEv),
	0x1B: ent(NOP, fModRM, xEv),
	0x1C: ent(NOP, fModRM, xEv),
	0x1D: ent(NOP, fModRM, xEv),
	0x1E: ent(NOP, fModRM, xEv), // F3-prefixed endbr32/endbr64 fixed up in decode
	0x1F: ent(NOP, fModRM, xEv),

	0x20: ent(MOV, fModRM|fD64, xRv, xCr),
	0x21: ent(MOV, fModRM|fD64, xRv, xDr),
	0x22: ent(MOV, fModRM|fD64, xCr, xRv),
	0x23: ent(MOV, fModRM|fD64, xDr, xRv),

	0x30: ent(WRMSR, 0),
	0x31: ent(RDTSC, 0),
	0x32: ent(RDMSR, 0),
	0x33: ent(RDPMC, 0),
	0x34: ent(SYSENTER, 0),
	0x35: ent(SYSEXIT, 0),

	0x40: ent(CMOVO, fModRM, xGv, xEv),
	0x41: ent(CMOVNO, fModRM, xGv, xEv),
	0x42: ent(CMOVB, fModRM, xGv, xEv),
	0x43: ent(CMOVAE, fModRM, xGv, xEv),
	0x44: ent(CMOVE, fModRM, xGv, xEv),
	0x45: ent(CMOVNE, fModRM, xGv, xEv),
	0x46: ent(CMOVBE, fModRM, xGv, xEv),
	0x47: ent(CMOVA, fModRM, xGv, xEv),
	0x48: ent(CMOVS, fModRM, xGv, xEv),
	0x49: ent(CMOVNS, fModRM, xGv, xEv),
	0x4A: ent(CMOVP, fModRM, xGv, xEv),
	0x4B: ent(CMOVNP, fModRM, xGv, xEv),
	0x4C: ent(CMOVL, fModRM, xGv, xEv),
	0x4D: ent(CMOVGE, fModRM, xGv, xEv),
	0x4E: ent(CMOVLE, fModRM, xGv, xEv),
	0x4F: ent(CMOVG, fModRM, xGv, xEv),

	0x77: ent(EMMS, 0),

	0x80: ent(JO, fD64, xJz),
	0x81: ent(JNO, fD64, xJz),
	0x82: ent(JB, fD64, xJz),
	0x83: ent(JAE, fD64, xJz),
	0x84: ent(JE, fD64, xJz),
	0x85: ent(JNE, fD64, xJz),
	0x86: ent(JBE, fD64, xJz),
	0x87: ent(JA, fD64, xJz),
	0x88: ent(JS, fD64, xJz),
	0x89: ent(JNS, fD64, xJz),
	0x8A: ent(JP, fD64, xJz),
	0x8B: ent(JNP, fD64, xJz),
	0x8C: ent(JL, fD64, xJz),
	0x8D: ent(JGE, fD64, xJz),
	0x8E: ent(JLE, fD64, xJz),
	0x8F: ent(JG, fD64, xJz),

	0x90: ent(SETO, fModRM, xEb),
	0x91: ent(SETNO, fModRM, xEb),
	0x92: ent(SETB, fModRM, xEb),
	0x93: ent(SETAE, fModRM, xEb),
	0x94: ent(SETE, fModRM, xEb),
	0x95: ent(SETNE, fModRM, xEb),
	0x96: ent(SETBE, fModRM, xEb),
	0x97: ent(SETA, fModRM, xEb),
	0x98: ent(SETS, fModRM, xEb),
	0x99: ent(SETNS, fModRM, xEb),
	0x9A: ent(SETP, fModRM, xEb),
	0x9B: ent(SETNP, fModRM, xEb),
	0x9C: ent(SETL, fModRM, xEb),
	0x9D: ent(SETGE, fModRM, xEb),
	0x9E: ent(SETLE, fModRM, xEb),
	0x9F: ent(SETG, fModRM, xEb),

	0xA0: ent(PUSH, fD64, xFS),
	0xA1: ent(POP, fD64, xFS),
	0xA2: ent(CPUID, 0),
	0xA3: ent(BT, fModRM, xEv, xGv),
	0xA4: ent(SHLD, fModRM, xEv, xGv, xIbu),
	0xA5: ent(SHLD, fModRM, xEv, xGv, xCL),
	0xA8: ent(PUSH, fD64, xGS),
	0xA9: ent(POP, fD64, xGS),
	0xAA: ent(RSM, 0),
	0xAB: ent(BTS, fModRM, xEv, xGv),
	0xAC: ent(SHRD, fModRM, xEv, xGv, xIbu),
	0xAD: ent(SHRD, fModRM, xEv, xGv, xCL),
	0xAE: grp(grp15, 0),
	0xAF: ent(IMUL, fModRM, xGv, xEv),

	0xB0: ent(CMPXCHG, fModRM, xEb, xGb),
	0xB1: ent(CMPXCHG, fModRM, xEv, xGv),
	0xB2: ent(LSS, fModRM, xGv, xM),
	0xB3: ent(BTR, fModRM, xEv, xGv),
	0xB4: ent(LFS, fModRM, xGv, xM),
	0xB5: ent(LGS, fModRM, xGv, xM),
	0xB6: ent(MOVZX, fModRM, xGv, xEb),
	0xB7: ent(MOVZX, fModRM, xGv, xEw),
	0xB9: ent(UD1, fModRM, xGv, xEv),
	0xBA: grp(grp8, 0, xEv, xIbu),
	0xBB: ent(BTC, fModRM, xEv, xGv),
	0xBE: ent(MOVSX, fModRM, xGv, xEb),
	0xBF: ent(MOVSX, fModRM, xGv, xEw),

	0xC0: ent(XADD, fModRM, xEb, xGb),
	0xC1: ent(XADD, fModRM, xEv, xGv),
	0xC3: ent(MOVNTI, fModRM, xM, xGy),
	0xC7: grp(grp9, 0),
	0xC8: ent(BSWAP, 0, xRegV),
	0xC9: ent(BSWAP, 0, xRegV),
	0xCA: ent(BSWAP, 0, xRegV),
	0xCB: ent(BSWAP, 0, xRegV),
	0xCC: ent(BSWAP, 0, xRegV),
	0xCD: ent(BSWAP, 0, xRegV),
	0xCE: ent(BSWAP, 0, xRegV),
	0xCF: ent(BSWAP, 0, xRegV),
}

// prefixIndex selects the variant slot of an sseVariants entry.
const (
	pNone = iota
	p66
	pF3
	pF2
)

// sseVariants holds the four mandatory-prefix variants of one opcode.
type sseVariants [4]optab

// twoByteSSE maps 0F-escape opcodes whose meaning depends on a mandatory
// prefix. A zero slot means that combination is architecturally undefined.
var twoByteSSE = map[byte]sseVariants{
	0x10: {
		pNone: ent(MOVUPS, fModRM, xVx, xWx),
		p66:   ent(MOVUPD, fModRM, xVx, xWx),
		pF3:   ent(MOVSS, fModRM, xVx, xWx),
		pF2:   ent(MOVSD_XMM, fModRM, xVx, xWx),
	},
	0x11: {
		pNone: ent(MOVUPS, fModRM, xWx, xVx),
		p66:   ent(MOVUPD, fModRM, xWx, xVx),
		pF3:   ent(MOVSS, fModRM, xWx, xVx),
		pF2:   ent(MOVSD_XMM, fModRM, xWx, xVx),
	},
	0x28: {
		pNone: ent(MOVAPS, fModRM, xVx, xWx),
		p66:   ent(MOVAPD, fModRM, xVx, xWx),
	},
	0x29: {
		pNone: ent(MOVAPS, fModRM, xWx, xVx),
		p66:   ent(MOVAPD, fModRM, xWx, xVx),
	},
	0x2A: {
		pNone: ent(CVTPI2PS, fModRM, xVx, xQq),
		p66:   ent(CVTPI2PD, fModRM, xVx, xQq),
		pF3:   ent(CVTSI2SS, fModRM, xVx, xEy),
		pF2:   ent(CVTSI2SD, fModRM, xVx, xEy),
	},
	0x2B: {
		pNone: ent(MOVNTPS, fModRM, xM, xVx),
		p66:   ent(MOVNTPD, fModRM, xM, xVx),
	},
	0x2C: {
		pF3: ent(CVTTSS2SI, fModRM, xGy, xWx),
		pF2: ent(CVTTSD2SI, fModRM, xGy, xWx),
	},
	0x2D: {
		pF3: ent(CVTSS2SI, fModRM, xGy, xWx),
		pF2: ent(CVTSD2SI, fModRM, xGy, xWx),
	},
	0x2E: {
		pNone: ent(UCOMISS, fModRM, xVx, xWx),
		p66:   ent(UCOMISD, fModRM, xVx, xWx),
	},
	0x2F: {
		pNone: ent(COMISS, fModRM, xVx, xWx),
		p66:   ent(COMISD, fModRM, xVx, xWx),
	},
	0x50: {
		pNone: ent(MOVMSKPS, fModRM, xGd, xWx),
		p66:   ent(MOVMSKPD, fModRM, xGd, xWx),
	},
	0x51: {
		pNone: ent(SQRTPS, fModRM, xVx, xWx),
		p66:   ent(SQRTPD, fModRM, xVx, xWx),
		pF3:   ent(SQRTSS, fModRM, xVx, xWx),
		pF2:   ent(SQRTSD, fModRM, xVx, xWx),
	},
	0x54: {
		pNone: ent(ANDPS, fModRM, xVx, xWx),
		p66:   ent(ANDPD, fModRM, xVx, xWx),
	},
	0x55: {
		pNone: ent(ANDNPS, fModRM, xVx, xWx),
		p66:   ent(ANDNPD, fModRM, xVx, xWx),
	},
	0x56: {
		pNone: ent(ORPS, fModRM, xVx, xWx),
		p66:   ent(ORPD, fModRM, xVx, xWx),
	},
	0x57: {
		pNone: ent(XORPS, fModRM, xVx, xWx),
		p66:   ent(XORPD, fModRM, xVx, xWx),
	},
	0x58: {
		pNone: ent(ADDPS, fModRM, xVx, xWx),
		p66:   ent(ADDPD, fModRM, xVx, xWx),
		pF3:   ent(ADDSS, fModRM, xVx, xWx),
		pF2:   ent(ADDSD, fModRM, xVx, xWx),
	},
	0x59: {
		pNone: ent(MULPS, fModRM, xVx, xWx),
		p66:   ent(MULPD, fModRM, xVx, xWx),
		pF3:   ent(MULSS, fModRM, xVx, xWx),
		pF2:   ent(MULSD, fModRM, xVx, xWx),
	},
	0x5A: {
		pNone: ent(CVTPS2PD, fModRM, xVx, xWx),
		p66:   ent(CVTPD2PS, fModRM, xVx, xWx),
		pF3:   ent(CVTSS2SD, fModRM, xVx, xWx),
		pF2:   ent(CVTSD2SS, fModRM, xVx, xWx),
	},
	0x5B: {
		pNone: ent(CVTDQ2PS, fModRM, xVx, xWx),
		p66:   ent(CVTPS2DQ, fModRM, xVx, xWx),
		pF3:   ent(CVTTPS2DQ, fModRM, xVx, xWx),
	},
	0x5C: {
		pNone: ent(SUBPS, fModRM, xVx, xWx),
		p66:   ent(SUBPD, fModRM, xVx, xWx),
		pF3:   ent(SUBSS, fModRM, xVx, xWx),
		pF2:   ent(SUBSD, fModRM, xVx, xWx),
	},
	0x5D: {
		pNone: ent(MINPS, fModRM, xVx, xWx),
		p66:   ent(MINPD, fModRM, xVx, xWx),
		pF3:   ent(MINSS, fModRM, xVx, xWx),
		pF2:   ent(MINSD, fModRM, xVx, xWx),
	},
	0x5E: {
		pNone: ent(DIVPS, fModRM, xVx, xWx),
		p66:   ent(DIVPD, fModRM, xVx, xWx),
		pF3:   ent(DIVSS, fModRM, xVx, xWx),
		pF2:   ent(DIVSD, fModRM, xVx, xWx),
	},
	0x5F: {
		pNone: ent(MAXPS, fModRM, xVx, xWx),
		p66:   ent(MAXPD, fModRM, xVx, xWx),
		pF3:   ent(MAXSS, fModRM, xVx, xWx),
		pF2:   ent(MAXSD, fModRM, xVx, xWx),
	},
	0x60: mmxOrXMM(PUNPCKLBW),
	0x61: mmxOrXMM(PUNPCKLWD),
	0x62: mmxOrXMM(PUNPCKLDQ),
	0x63: mmxOrXMM(PACKSSWB),
	0x64: mmxOrXMM(PCMPGTB),
	0x65: mmxOrXMM(PCMPGTW),
	0x66: mmxOrXMM(PCMPGTD),
	0x67: mmxOrXMM(PACKUSWB),
	0x68: mmxOrXMM(PUNPCKHBW),
	0x69: mmxOrXMM(PUNPCKHWD),
	0x6A: mmxOrXMM(PUNPCKHDQ),
	0x6B: mmxOrXMM(PACKSSDW),
	0x6C: {p66: ent(PUNPCKLQDQ, fModRM, xVx, xWx)},
	0x6D: {p66: ent(PUNPCKHQDQ, fModRM, xVx, xWx)},
	0x6E: {
		pNone: ent(MOVD, fModRM, xPq, xEy), // movq with REX.W
		p66:   ent(MOVD, fModRM, xVx, xEy),
	},
	0x6F: {
		pNone: ent(MOVQ, fModRM, xPq, xQq),
		p66:   ent(MOVDQA, fModRM, xVx, xWx),
		pF3:   ent(MOVDQU, fModRM, xVx, xWx),
	},
	0x70: {
		pNone: ent(PSHUFW, fModRM, xPq, xQq, xIbu),
		p66:   ent(PSHUFD, fModRM, xVx, xWx, xIbu),
		pF3:   ent(PSHUFHW, fModRM, xVx, xWx, xIbu),
		pF2:   ent(PSHUFLW, fModRM, xVx, xWx, xIbu),
	},
	0x71: {
		pNone: grp(grp12, 0, xQq, xIbu),
		p66:   grp(grp12, 0, xWx, xIbu),
	},
	0x72: {
		pNone: grp(grp13, 0, xQq, xIbu),
		p66:   grp(grp13, 0, xWx, xIbu),
	},
	0x73: {
		pNone: grp(grp14, 0, xQq, xIbu),
		p66:   grp(grp14, 0, xWx, xIbu),
	},
	0x74: mmxOrXMM(PCMPEQB),
	0x75: mmxOrXMM(PCMPEQW),
	0x76: mmxOrXMM(PCMPEQD),
	0x7E: {
		pNone: ent(MOVD, fModRM, xEy, xPq), // movq with REX.W
		p66:   ent(MOVD, fModRM, xEy, xVx),
		pF3:   ent(MOVQ, fModRM, xVx, xWx),
	},
	0x7F: {
		pNone: ent(MOVQ, fModRM, xQq, xPq),
		p66:   ent(MOVDQA, fModRM, xWx, xVx),
		pF3:   ent(MOVDQU, fModRM, xWx, xVx),
	},
	0xB8: {
		pF3: ent(POPCNT, fModRM, xGv, xEv),
	},
	0xBC: {
		pNone: ent(BSF, fModRM, xGv, xEv),
		p66:   ent(BSF, fModRM, xGv, xEv),
		pF3:   ent(TZCNT, fModRM, xGv, xEv),
	},
	0xBD: {
		pNone: ent(BSR, fModRM, xGv, xEv),
		p66:   ent(BSR, fModRM, xGv, xEv),
		pF3:   ent(LZCNT, fModRM, xGv, xEv),
	},
	0xC2: {
		pNone: ent(CMPPS, fModRM, xVx, xWx, xIbu),
		p66:   ent(CMPPD, fModRM, xVx, xWx, xIbu),
		pF3:   ent(CMPSS, fModRM, xVx, xWx, xIbu),
		pF2:   ent(CMPSD_XMM, fModRM, xVx, xWx, xIbu),
	},
	0xC4: {
		pNone: ent(PINSRW, fModRM, xPq, xEd, xIbu),
		p66:   ent(PINSRW, fModRM, xVx, xEd, xIbu),
	},
	0xC5: {
		pNone: ent(PEXTRW, fModRM, xGd, xQq, xIbu),
		p66:   ent(PEXTRW, fModRM, xGd, xWx, xIbu),
	},
	0xC6: {
		pNone: ent(SHUFPS, fModRM, xVx, xWx, xIbu),
		p66:   ent(SHUFPD, fModRM, xVx, xWx, xIbu),
	},
	0xD1: mmxOrXMM(PSRLW),
	0xD2: mmxOrXMM(PSRLD),
	0xD3: mmxOrXMM(PSRLQ),
	0xD4: mmxOrXMM(PADDQ),
	0xD5: mmxOrXMM(PMULLW),
	0xD6: {p66: ent(MOVQ, fModRM, xWx, xVx)},
	0xD7: {
		pNone: ent(PMOVMSKB, fModRM, xGd, xQq),
		p66:   ent(PMOVMSKB, fModRM, xGd, xWx),
	},
	0xD8: mmxOrXMM(PSUBUSB),
	0xD9: mmxOrXMM(PSUBUSW),
	0xDA: mmxOrXMM(PMINUB),
	0xDB: mmxOrXMM(PAND),
	0xDC: mmxOrXMM(PADDUSB),
	0xDD: mmxOrXMM(PADDUSW),
	0xDE: mmxOrXMM(PMAXUB),
	0xDF: mmxOrXMM(PANDN),
	0xE0: mmxOrXMM(PAVGB),
	0xE1: mmxOrXMM(PSRAW),
	0xE2: mmxOrXMM(PSRAD),
	0xE3: mmxOrXMM(PAVGW),
	0xE4: mmxOrXMM(PMULHUW),
	0xE5: mmxOrXMM(PMULHW),
	0xE7: {p66: ent(MOVNTDQ, fModRM, xM, xVx)},
	0xE8: mmxOrXMM(PSUBSB),
	0xE9: mmxOrXMM(PSUBSW),
	0xEA: mmxOrXMM(PMINSW),
	0xEB: mmxOrXMM(POR),
	0xEC: mmxOrXMM(PADDSB),
	0xED: mmxOrXMM(PADDSW),
	0xEE: mmxOrXMM(PMAXSW),
	0xEF: mmxOrXMM(PXOR),
	0xF1: mmxOrXMM(PSLLW),
	0xF2: mmxOrXMM(PSLLD),
	0xF3: mmxOrXMM(PSLLQ),
	0xF4: mmxOrXMM(PMULUDQ),
	0xF5: mmxOrXMM(PMADDWD),
	0xF6: mmxOrXMM(PSADBW),
	0xF7: {p66: ent(MASKMOVDQU, fModRM, xVx, xWx)},
	0xF8: mmxOrXMM(PSUBB),
	0xF9: mmxOrXMM(PSUBW),
	0xFA: mmxOrXMM(PSUBD),
	0xFB: mmxOrXMM(PSUBQ),
	0xFC: mmxOrXMM(PADDB),
	0xFD: mmxOrXMM(PADDW),
	0xFE: mmxOrXMM(PADDD),
}

// mmxOrXMM builds the common packed-integer shape: the bare opcode
// operates on the MMX registers, the 66-prefixed form on XMM.
func mmxOrXMM(op Op) sseVariants {
	return sseVariants{
		pNone: ent(op, fModRM, xPq, xQq),
		p66:   ent(op, fModRM, xVx, xWx),
	}
}

// threeByte38 is the 0F 38 escape map.
var threeByte38 = map[byte]sseVariants{
	0x00: mmxOrXMM(PSHUFB),
	0x01: mmxOrXMM(PHADDW),
	0x02: mmxOrXMM(PHADDD),
	0x03: mmxOrXMM(PHADDSW),
	0x04: mmxOrXMM(PMADDUBSW),
	0x05: mmxOrXMM(PHSUBW),
	0x06: mmxOrXMM(PHSUBD),
	0x07: mmxOrXMM(PHSUBSW),
	0x08: mmxOrXMM(PSIGNB),
	0x09: mmxOrXMM(PSIGNW),
	0x0A: mmxOrXMM(PSIGND),
	0x0B: mmxOrXMM(PMULHRSW),
	0x10: {p66: ent(PBLENDVB, fModRM, xVx, xWx)},
	0x14: {p66: ent(BLENDVPS, fModRM, xVx, xWx)},
	0x15: {p66: ent(BLENDVPD, fModRM, xVx, xWx)},
	0x17: {p66: ent(PTEST, fModRM, xVx, xWx)},
	0x1C: mmxOrXMM(PABSB),
	0x1D: mmxOrXMM(PABSW),
	0x1E: mmxOrXMM(PABSD),
	0x20: {p66: ent(PMOVSXBW, fModRM, xVx, xWx)},
	0x21: {p66: ent(PMOVSXBD, fModRM, xVx, xWx)},
	0x22: {p66: ent(PMOVSXBQ, fModRM, xVx, xWx)},
	0x23: {p66: ent(PMOVSXWD, fModRM, xVx, xWx)},
	0x24: {p66: ent(PMOVSXWQ, fModRM, xVx, xWx)},
	0x25: {p66: ent(PMOVSXDQ, fModRM, xVx, xWx)},
	0x28: {p66: ent(PMULDQ, fModRM, xVx, xWx)},
	0x29: {p66: ent(PCMPEQQ, fModRM, xVx, xWx)},
	0x2A: {p66: ent(MOVNTDQA, fModRM, xVx, xM)},
	0x2B: {p66: ent(PACKUSDW, fModRM, xVx, xWx)},
	0x30: {p66: ent(PMOVZXBW, fModRM, xVx, xWx)},
	0x31: {p66: ent(PMOVZXBD, fModRM, xVx, xWx)},
	0x32: {p66: ent(PMOVZXBQ, fModRM, xVx, xWx)},
	0x33: {p66: ent(PMOVZXWD, fModRM, xVx, xWx)},
	0x34: {p66: ent(PMOVZXWQ, fModRM, xVx, xWx)},
	0x35: {p66: ent(PMOVZXDQ, fModRM, xVx, xWx)},
	0x37: {p66: ent(PCMPGTQ, fModRM, xVx, xWx)},
	0x38: {p66: ent(PMINSB, fModRM, xVx, xWx)},
	0x39: {p66: ent(PMINSD, fModRM, xVx, xWx)},
	0x3A: {p66: ent(PMINUW, fModRM, xVx, xWx)},
	0x3B: {p66: ent(PMINUD, fModRM, xVx, xWx)},
	0x3C: {p66: ent(PMAXSB, fModRM, xVx, xWx)},
	0x3D: {p66: ent(PMAXSD, fModRM, xVx, xWx)},
	0x3E: {p66: ent(PMAXUW, fModRM, xVx, xWx)},
	0x3F: {p66: ent(PMAXUD, fModRM, xVx, xWx)},
	0x40: {p66: ent(PMULLD, fModRM, xVx, xWx)},
	0x41: {p66: ent(PHMINPOSUW, fModRM, xVx, xWx)},
	0xF0: {
		pNone: ent(MOVBE, fModRM, xGv, xM),
		pF2:   ent(CRC32, fModRM, xGd, xEb),
	},
	0xF1: {
		pNone: ent(MOVBE, fModRM, xM, xGv),
		pF2:   ent(CRC32, fModRM, xGd, xEv),
	},
	0xF6: {
		p66: ent(ADCX, fModRM, xGy, xEy),
		pF3: ent(ADOX, fModRM, xGy, xEy),
	},
}

// threeByte3A is the 0F 3A escape map; every defined entry carries a
// trailing imm8.
var threeByte3A = map[byte]sseVariants{
	0x08: {p66: ent(ROUNDPS, fModRM, xVx, xWx, xIbu)},
	0x09: {p66: ent(ROUNDPD, fModRM, xVx, xWx, xIbu)},
	0x0A: {p66: ent(ROUNDSS, fModRM, xVx, xWx, xIbu)},
	0x0B: {p66: ent(ROUNDSD, fModRM, xVx, xWx, xIbu)},
	0x0C: {p66: ent(BLENDPS, fModRM, xVx, xWx, xIbu)},
	0x0D: {p66: ent(BLENDPD, fModRM, xVx, xWx, xIbu)},
	0x0E: {p66: ent(PBLENDW, fModRM, xVx, xWx, xIbu)},
	0x0F: {
		pNone: ent(PALIGNR, fModRM, xPq, xQq, xIbu),
		p66:   ent(PALIGNR, fModRM, xVx, xWx, xIbu),
	},
	0x14: {p66: ent(PEXTRB, fModRM, xEd, xVx, xIbu)},
	0x15: {p66: ent(PEXTRW, fModRM, xEd, xVx, xIbu)},
	0x16: {p66: ent(PEXTRD, fModRM, xEy, xVx, xIbu)}, // pextrq with REX.W
	0x17: {p66: ent(EXTRACTPS, fModRM, xEd, xVx, xIbu)},
	0x20: {p66: ent(PINSRB, fModRM, xVx, xEd, xIbu)},
	0x21: {p66: ent(INSERTPS, fModRM, xVx, xWx, xIbu)},
	0x22: {p66: ent(PINSRD, fModRM, xVx, xEy, xIbu)}, // pinsrq with REX.W
	0x40: {p66: ent(DPPS, fModRM, xVx, xWx, xIbu)},
	0x41: {p66: ent(DPPD, fModRM, xVx, xWx, xIbu)},
	0x42: {p66: ent(MPSADBW, fModRM, xVx, xWx, xIbu)},
	0x44: {p66: ent(PCLMULQDQ, fModRM, xVx, xWx, xIbu)},
	0x60: {p66: ent(PCMPESTRM, fModRM, xVx, xWx, xIbu)},
	0x61: {p66: ent(PCMPESTRI, fModRM, xVx, xWx, xIbu)},
	0x62: {p66: ent(PCMPISTRM, fModRM, xVx, xWx, xIbu)},
	0x63: {p66: ent(PCMPISTRI, fModRM, xVx, xWx, xIbu)},
	0xDF: {p66: ent(AESKEYGENASSIST, fModRM, xVx, xWx, xIbu)},
}
