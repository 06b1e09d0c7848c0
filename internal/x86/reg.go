package x86

// Reg is a single machine register. The zero value means "no register",
// which is how absent base/index registers are represented in Mem.
type Reg uint8

const (
	RegNone Reg = iota

	// 8-bit
	AL
	CL
	DL
	BL
	AH
	CH
	DH
	BH
	SPL
	BPL
	SIL
	DIL
	R8B
	R9B
	R10B
	R11B
	R12B
	R13B
	R14B
	R15B

	// 16-bit
	AX
	CX
	DX
	BX
	SP
	BP
	SI
	DI
	R8W
	R9W
	R10W
	R11W
	R12W
	R13W
	R14W
	R15W

	// 32-bit
	EAX
	ECX
	EDX
	EBX
	ESP
	EBP
	ESI
	EDI
	R8D
	R9D
	R10D
	R11D
	R12D
	R13D
	R14D
	R15D

	// 64-bit
	RAX
	RCX
	RDX
	RBX
	RSP
	RBP
	RSI
	RDI
	R8
	R9
	R10
	R11
	R12
	R13
	R14
	R15
	RIP

	// Segment registers
	ES
	CS
	SS
	DS
	FS
	GS

	// x87 stack registers
	ST0
	ST1
	ST2
	ST3
	ST4
	ST5
	ST6
	ST7

	// MMX
	M0
	M1
	M2
	M3
	M4
	M5
	M6
	M7

	// SSE
	X0
	X1
	X2
	X3
	X4
	X5
	X6
	X7
	X8
	X9
	X10
	X11
	X12
	X13
	X14
	X15

	// Control registers
	CR0
	CR1
	CR2
	CR3
	CR4
	CR5
	CR6
	CR7
	CR8
	CR9
	CR10
	CR11
	CR12
	CR13
	CR14
	CR15

	// Debug registers
	DR0
	DR1
	DR2
	DR3
	DR4
	DR5
	DR6
	DR7
	DR8
	DR9
	DR10
	DR11
	DR12
	DR13
	DR14
	DR15

	regMax
)

var regNames = [regMax]string{
	RegNone: "",

	AL: "al", CL: "cl", DL: "dl", BL: "bl",
	AH: "ah", CH: "ch", DH: "dh", BH: "bh",
	SPL: "spl", BPL: "bpl", SIL: "sil", DIL: "dil",
	R8B: "r8b", R9B: "r9b", R10B: "r10b", R11B: "r11b",
	R12B: "r12b", R13B: "r13b", R14B: "r14b", R15B: "r15b",

	AX: "ax", CX: "cx", DX: "dx", BX: "bx",
	SP: "sp", BP: "bp", SI: "si", DI: "di",
	R8W: "r8w", R9W: "r9w", R10W: "r10w", R11W: "r11w",
	R12W: "r12w", R13W: "r13w", R14W: "r14w", R15W: "r15w",

	EAX: "eax", ECX: "ecx", EDX: "edx", EBX: "ebx",
	ESP: "esp", EBP: "ebp", ESI: "esi", EDI: "edi",
	R8D: "r8d", R9D: "r9d", R10D: "r10d", R11D: "r11d",
	R12D: "r12d", R13D: "r13d", R14D: "r14d", R15D: "r15d",

	RAX: "rax", RCX: "rcx", RDX: "rdx", RBX: "rbx",
	RSP: "rsp", RBP: "rbp", RSI: "rsi", RDI: "rdi",
	R8: "r8", R9: "r9", R10: "r10", R11: "r11",
	R12: "r12", R13: "r13", R14: "r14", R15: "r15",
	RIP: "rip",

	ES: "es", CS: "cs", SS: "ss", DS: "ds", FS: "fs", GS: "gs",

	ST0: "st(0)", ST1: "st(1)", ST2: "st(2)", ST3: "st(3)",
	ST4: "st(4)", ST5: "st(5)", ST6: "st(6)", ST7: "st(7)",

	M0: "mm0", M1: "mm1", M2: "mm2", M3: "mm3",
	M4: "mm4", M5: "mm5", M6: "mm6", M7: "mm7",

	X0: "xmm0", X1: "xmm1", X2: "xmm2", X3: "xmm3",
	X4: "xmm4", X5: "xmm5", X6: "xmm6", X7: "xmm7",
	X8: "xmm8", X9: "xmm9", X10: "xmm10", X11: "xmm11",
	X12: "xmm12", X13: "xmm13", X14: "xmm14", X15: "xmm15",

	CR0: "cr0", CR1: "cr1", CR2: "cr2", CR3: "cr3",
	CR4: "cr4", CR5: "cr5", CR6: "cr6", CR7: "cr7",
	CR8: "cr8", CR9: "cr9", CR10: "cr10", CR11: "cr11",
	CR12: "cr12", CR13: "cr13", CR14: "cr14", CR15: "cr15",

	DR0: "dr0", DR1: "dr1", DR2: "dr2", DR3: "dr3",
	DR4: "dr4", DR5: "dr5", DR6: "dr6", DR7: "dr7",
	DR8: "dr8", DR9: "dr9", DR10: "dr10", DR11: "dr11",
	DR12: "dr12", DR13: "dr13", DR14: "dr14", DR15: "dr15",
}

func (r Reg) String() string {
	if r >= regMax {
		return "reg?"
	}
	return regNames[r]
}

func (Reg) isArg() {}

// gpr8 maps a 4-bit register number to its 8-bit register. The legacy
// encodings 4-7 mean ah/ch/dh/bh without REX but spl/bpl/sil/dil when any
// REX prefix is present.
func gpr8(n byte, rex bool) Reg {
	switch {
	case n >= 8:
		return R8B + Reg(n-8)
	case n >= 4 && rex:
		return SPL + Reg(n-4)
	case n >= 4:
		return AH + Reg(n-4)
	}
	return AL + Reg(n)
}

func gpr16(n byte) Reg { return AX + Reg(n) }
func gpr32(n byte) Reg { return EAX + Reg(n) }
func gpr64(n byte) Reg { return RAX + Reg(n) }

// gpr selects a general-purpose register of the given width in bits.
func gpr(width int, n byte, rex bool) Reg {
	switch width {
	case 8:
		return gpr8(n, rex)
	case 16:
		return gpr16(n)
	case 64:
		return gpr64(n)
	default:
		return gpr32(n)
	}
}

func xmm(n byte) Reg  { return X0 + Reg(n) }
func mmx(n byte) Reg  { return M0 + Reg(n&7) }
func st(n byte) Reg   { return ST0 + Reg(n&7) }
func sreg(n byte) Reg { return ES + Reg(n%6) }
func creg(n byte) Reg { return CR0 + Reg(n) }
func dreg(n byte) Reg { return DR0 + Reg(n) }
