package x86

// Op identifies the operation an instruction performs. INVALID marks
// resynchronization placeholder records.
type Op uint16

const (
	INVALID Op = iota
	ADD
	OR
	ADC
	SBB
	AND
	SUB
	XOR
	CMP
	TEST
	NOT
	NEG
	MUL
	IMUL
	DIV
	IDIV
	INC
	DEC
	MOV
	MOVSX
	MOVSXD
	MOVZX
	LEA
	XCHG
	BSWAP
	XADD
	CMPXCHG
	CMPXCHG8B
	CMPXCHG16B
	MOVBE
	MOVNTI
	PUSH
	POP
	PUSHA
	PUSHAD
	POPA
	POPAD
	PUSHF
	PUSHFD
	PUSHFQ
	POPF
	POPFD
	POPFQ
	ENTER
	LEAVE
	JMP
	LJMP
	CALL
	LCALL
	RET
	LRET
	IRET
	IRETD
	IRETQ
	JA
	JAE
	JB
	JBE
	JCXZ
	JECXZ
	JRCXZ
	JE
	JG
	JGE
	JL
	JLE
	JNE
	JNO
	JNP
	JNS
	JO
	JP
	JS
	LOOP
	LOOPE
	LOOPNE
	INT
	INT1
	INT3
	INTO
	SYSCALL
	SYSRET
	SYSENTER
	SYSEXIT
	UD1
	UD2
	CLC
	STC
	CMC
	CLD
	STD
	CLI
	STI
	SAHF
	LAHF
	SALC
	CBW
	CWDE
	CDQE
	CWD
	CDQ
	CQO
	ROL
	ROR
	RCL
	RCR
	SHL
	SHR
	SAR
	SHLD
	SHRD
	BT
	BTS
	BTR
	BTC
	BSF
	BSR
	TZCNT
	LZCNT
	POPCNT
	MOVSB
	MOVSW
	MOVSD
	MOVSQ
	CMPSB
	CMPSW
	CMPSD
	CMPSQ
	STOSB
	STOSW
	STOSD
	STOSQ
	LODSB
	LODSW
	LODSD
	LODSQ
	SCASB
	SCASW
	SCASD
	SCASQ
	INSB
	INSW
	INSD
	OUTSB
	OUTSW
	OUTSD
	XLATB
	IN
	OUT
	NOP
	PAUSE
	HLT
	WAIT
	CPUID
	RDTSC
	RDTSCP
	RDMSR
	WRMSR
	RDPMC
	RSM
	INVD
	WBINVD
	INVLPG
	CLTS
	LAR
	LSL
	ARPL
	BOUND
	DAA
	DAS
	AAA
	AAS
	AAM
	AAD
	LDS
	LES
	LSS
	LFS
	LGS
	SETA
	SETAE
	SETB
	SETBE
	SETE
	SETG
	SETGE
	SETL
	SETLE
	SETNE
	SETNO
	SETNP
	SETNS
	SETO
	SETP
	SETS
	CMOVA
	CMOVAE
	CMOVB
	CMOVBE
	CMOVE
	CMOVG
	CMOVGE
	CMOVL
	CMOVLE
	CMOVNE
	CMOVNO
	CMOVNP
	CMOVNS
	CMOVO
	CMOVP
	CMOVS
	SLDT
	STR
	LLDT
	LTR
	VERR
	VERW
	SGDT
	SIDT
	LGDT
	LIDT
	SMSW
	LMSW
	SWAPGS
	MONITOR
	MWAIT
	XGETBV
	XSETBV
	FXSAVE
	FXRSTOR
	LDMXCSR
	STMXCSR
	XSAVE
	XRSTOR
	XSAVEOPT
	CLFLUSH
	LFENCE
	MFENCE
	SFENCE
	PREFETCHNTA
	PREFETCHT0
	PREFETCHT1
	PREFETCHT2
	PREFETCHW
	ENDBR32
	ENDBR64
	RDRAND
	RDSEED
	FADD
	FMUL
	FCOM
	FCOMP
	FSUB
	FSUBR
	FDIV
	FDIVR
	FLD
	FST
	FSTP
	FLDENV
	FLDCW
	FNSTENV
	FNSTCW
	FIADD
	FIMUL
	FICOM
	FICOMP
	FISUB
	FISUBR
	FIDIV
	FIDIVR
	FILD
	FISTTP
	FIST
	FISTP
	FBLD
	FBSTP
	FXCH
	FNOP
	FCHS
	FABS
	FTST
	FXAM
	FLD1
	FLDL2T
	FLDL2E
	FLDPI
	FLDLG2
	FLDLN2
	FLDZ
	F2XM1
	FYL2X
	FPTAN
	FPATAN
	FXTRACT
	FPREM1
	FDECSTP
	FINCSTP
	FPREM
	FYL2XP1
	FSQRT
	FSINCOS
	FRNDINT
	FSCALE
	FSIN
	FCOS
	FUCOM
	FUCOMP
	FUCOMPP
	FCOMPP
	FADDP
	FMULP
	FSUBP
	FSUBRP
	FDIVP
	FDIVRP
	FFREE
	FRSTOR
	FNSAVE
	FNSTSW
	FUCOMI
	FCOMI
	FUCOMIP
	FCOMIP
	FCMOVB
	FCMOVE
	FCMOVBE
	FCMOVU
	FCMOVNB
	FCMOVNE
	FCMOVNBE
	FCMOVNU
	FNCLEX
	FNINIT
	MOVUPS
	MOVUPD
	MOVSS
	MOVSD_XMM
	MOVAPS
	MOVAPD
	MOVDQA
	MOVDQU
	MOVD
	MOVQ
	UCOMISS
	UCOMISD
	COMISS
	COMISD
	MOVMSKPS
	MOVMSKPD
	PMOVMSKB
	SQRTPS
	SQRTPD
	SQRTSS
	SQRTSD
	ANDPS
	ANDPD
	ANDNPS
	ANDNPD
	ORPS
	ORPD
	XORPS
	XORPD
	ADDPS
	ADDPD
	ADDSS
	ADDSD
	MULPS
	MULPD
	MULSS
	MULSD
	SUBPS
	SUBPD
	SUBSS
	SUBSD
	MINPS
	MINPD
	MINSS
	MINSD
	DIVPS
	DIVPD
	DIVSS
	DIVSD
	MAXPS
	MAXPD
	MAXSS
	MAXSD
	CVTPS2PD
	CVTPD2PS
	CVTSS2SD
	CVTSD2SS
	CVTDQ2PS
	CVTPS2DQ
	CVTTPS2DQ
	CVTSI2SS
	CVTSI2SD
	CVTTSS2SI
	CVTTSD2SI
	CVTSS2SI
	CVTSD2SI
	CVTPI2PS
	CVTPI2PD
	PUNPCKLBW
	PUNPCKLWD
	PUNPCKLDQ
	PACKSSWB
	PCMPGTB
	PCMPGTW
	PCMPGTD
	PACKUSWB
	PUNPCKHBW
	PUNPCKHWD
	PUNPCKHDQ
	PACKSSDW
	PUNPCKLQDQ
	PUNPCKHQDQ
	PSHUFW
	PSHUFD
	PSHUFHW
	PSHUFLW
	PCMPEQB
	PCMPEQW
	PCMPEQD
	EMMS
	PSRLW
	PSRLD
	PSRLQ
	PADDQ
	PMULLW
	PSUBUSB
	PSUBUSW
	PMINUB
	PAND
	PADDUSB
	PADDUSW
	PMAXUB
	PANDN
	PAVGB
	PSRAW
	PSRAD
	PAVGW
	PMULHUW
	PMULHW
	PSUBSB
	PSUBSW
	PMINSW
	POR
	PADDSB
	PADDSW
	PMAXSW
	PXOR
	PSLLW
	PSLLD
	PSLLQ
	PMULUDQ
	PMADDWD
	PSADBW
	PSUBB
	PSUBW
	PSUBD
	PSUBQ
	PADDB
	PADDW
	PADDD
	PEXTRW
	PINSRW
	SHUFPS
	SHUFPD
	CMPPS
	CMPPD
	CMPSS
	CMPSD_XMM
	MOVNTPS
	MOVNTPD
	MOVNTDQ
	MASKMOVDQU
	PSHUFB
	PHADDW
	PHADDD
	PHADDSW
	PMADDUBSW
	PHSUBW
	PHSUBD
	PHSUBSW
	PSIGNB
	PSIGNW
	PSIGND
	PMULHRSW
	PBLENDVB
	BLENDVPS
	BLENDVPD
	PTEST
	PABSB
	PABSW
	PABSD
	PMOVSXBW
	PMOVSXBD
	PMOVSXBQ
	PMOVSXWD
	PMOVSXWQ
	PMOVSXDQ
	PMULDQ
	PCMPEQQ
	MOVNTDQA
	PACKUSDW
	PMOVZXBW
	PMOVZXBD
	PMOVZXBQ
	PMOVZXWD
	PMOVZXWQ
	PMOVZXDQ
	PCMPGTQ
	PMINSB
	PMINSD
	PMINUW
	PMINUD
	PMAXSB
	PMAXSD
	PMAXUW
	PMAXUD
	PMULLD
	PHMINPOSUW
	CRC32
	ADCX
	ADOX
	ROUNDPS
	ROUNDPD
	ROUNDSS
	ROUNDSD
	BLENDPS
	BLENDPD
	PBLENDW
	PALIGNR
	PEXTRB
	PEXTRD
	PEXTRQ
	EXTRACTPS
	PINSRB
	INSERTPS
	PINSRD
	PINSRQ
	DPPS
	DPPD
	MPSADBW
	PCLMULQDQ
	PCMPESTRM
	PCMPESTRI
	PCMPISTRM
	PCMPISTRI
	AESKEYGENASSIST
	opMax
)

var opNames = [opMax]string{
	INVALID: "(bad)",
	ADD: "add",
	OR: "or",
	ADC: "adc",
	SBB: "sbb",
	AND: "and",
	SUB: "sub",
	XOR: "xor",
	CMP: "cmp",
	TEST: "test",
	NOT: "not",
	NEG: "neg",
	MUL: "mul",
	IMUL: "imul",
	DIV: "div",
	IDIV: "idiv",
	INC: "inc",
	DEC: "dec",
	MOV: "mov",
	MOVSX: "movsx",
	MOVSXD: "movsxd",
	MOVZX: "movzx",
	LEA: "lea",
	XCHG: "xchg",
	BSWAP: "bswap",
	XADD: "xadd",
	CMPXCHG: "cmpxchg",
	CMPXCHG8B: "cmpxchg8b",
	CMPXCHG16B: "cmpxchg16b",
	MOVBE: "movbe",
	MOVNTI: "movnti",
	PUSH: "push",
	POP: "pop",
	PUSHA: "pusha",
	PUSHAD: "pushad",
	POPA: "popa",
	POPAD: "popad",
	PUSHF: "pushf",
	PUSHFD: "pushfd",
	PUSHFQ: "pushfq",
	POPF: "popf",
	POPFD: "popfd",
	POPFQ: "popfq",
	ENTER: "enter",
	LEAVE: "leave",
	JMP: "jmp",
	LJMP: "ljmp",
	CALL: "call",
	LCALL: "lcall",
	RET: "ret",
	LRET: "lret",
	IRET: "iret",
	IRETD: "iretd",
	IRETQ: "iretq",
	JA: "ja",
	JAE: "jae",
	JB: "jb",
	JBE: "jbe",
	JCXZ: "jcxz",
	JECXZ: "jecxz",
	JRCXZ: "jrcxz",
	JE: "je",
	JG: "jg",
	JGE: "jge",
	JL: "jl",
	JLE: "jle",
	JNE: "jne",
	JNO: "jno",
	JNP: "jnp",
	JNS: "jns",
	JO: "jo",
	JP: "jp",
	JS: "js",
	LOOP: "loop",
	LOOPE: "loope",
	LOOPNE: "loopne",
	INT: "int",
	INT1: "int1",
	INT3: "int3",
	INTO: "into",
	SYSCALL: "syscall",
	SYSRET: "sysret",
	SYSENTER: "sysenter",
	SYSEXIT: "sysexit",
	UD1: "ud1",
	UD2: "ud2",
	CLC: "clc",
	STC: "stc",
	CMC: "cmc",
	CLD: "cld",
	STD: "std",
	CLI: "cli",
	STI: "sti",
	SAHF: "sahf",
	LAHF: "lahf",
	SALC: "salc",
	CBW: "cbw",
	CWDE: "cwde",
	CDQE: "cdqe",
	CWD: "cwd",
	CDQ: "cdq",
	CQO: "cqo",
	ROL: "rol",
	ROR: "ror",
	RCL: "rcl",
	RCR: "rcr",
	SHL: "shl",
	SHR: "shr",
	SAR: "sar",
	SHLD: "shld",
	SHRD: "shrd",
	BT: "bt",
	BTS: "bts",
	BTR: "btr",
	BTC: "btc",
	BSF: "bsf",
	BSR: "bsr",
	TZCNT: "tzcnt",
	LZCNT: "lzcnt",
	POPCNT: "popcnt",
	MOVSB: "movsb",
	MOVSW: "movsw",
	MOVSD: "movsd",
	MOVSQ: "movsq",
	CMPSB: "cmpsb",
	CMPSW: "cmpsw",
	CMPSD: "cmpsd",
	CMPSQ: "cmpsq",
	STOSB: "stosb",
	STOSW: "stosw",
	STOSD: "stosd",
	STOSQ: "stosq",
	LODSB: "lodsb",
	LODSW: "lodsw",
	LODSD: "lodsd",
	LODSQ: "lodsq",
	SCASB: "scasb",
	SCASW: "scasw",
	SCASD: "scasd",
	SCASQ: "scasq",
	INSB: "insb",
	INSW: "insw",
	INSD: "insd",
	OUTSB: "outsb",
	OUTSW: "outsw",
	OUTSD: "outsd",
	XLATB: "xlatb",
	IN: "in",
	OUT: "out",
	NOP: "nop",
	PAUSE: "pause",
	HLT: "hlt",
	WAIT: "wait",
	CPUID: "cpuid",
	RDTSC: "rdtsc",
	RDTSCP: "rdtscp",
	RDMSR: "rdmsr",
	WRMSR: "wrmsr",
	RDPMC: "rdpmc",
	RSM: "rsm",
	INVD: "invd",
	WBINVD: "wbinvd",
	INVLPG: "invlpg",
	CLTS: "clts",
	LAR: "lar",
	LSL: "lsl",
	ARPL: "arpl",
	BOUND: "bound",
	DAA: "daa",
	DAS: "das",
	AAA: "aaa",
	AAS: "aas",
	AAM: "aam",
	AAD: "aad",
	LDS: "lds",
	LES: "les",
	LSS: "lss",
	LFS: "lfs",
	LGS: "lgs",
	SETA: "seta",
	SETAE: "setae",
	SETB: "setb",
	SETBE: "setbe",
	SETE: "sete",
	SETG: "setg",
	SETGE: "setge",
	SETL: "setl",
	SETLE: "setle",
	SETNE: "setne",
	SETNO: "setno",
	SETNP: "setnp",
	SETNS: "setns",
	SETO: "seto",
	SETP: "setp",
	SETS: "sets",
	CMOVA: "cmova",
	CMOVAE: "cmovae",
	CMOVB: "cmovb",
	CMOVBE: "cmovbe",
	CMOVE: "cmove",
	CMOVG: "cmovg",
	CMOVGE: "cmovge",
	CMOVL: "cmovl",
	CMOVLE: "cmovle",
	CMOVNE: "cmovne",
	CMOVNO: "cmovno",
	CMOVNP: "cmovnp",
	CMOVNS: "cmovns",
	CMOVO: "cmovo",
	CMOVP: "cmovp",
	CMOVS: "cmovs",
	SLDT: "sldt",
	STR: "str",
	LLDT: "lldt",
	LTR: "ltr",
	VERR: "verr",
	VERW: "verw",
	SGDT: "sgdt",
	SIDT: "sidt",
	LGDT: "lgdt",
	LIDT: "lidt",
	SMSW: "smsw",
	LMSW: "lmsw",
	SWAPGS: "swapgs",
	MONITOR: "monitor",
	MWAIT: "mwait",
	XGETBV: "xgetbv",
	XSETBV: "xsetbv",
	FXSAVE: "fxsave",
	FXRSTOR: "fxrstor",
	LDMXCSR: "ldmxcsr",
	STMXCSR: "stmxcsr",
	XSAVE: "xsave",
	XRSTOR: "xrstor",
	XSAVEOPT: "xsaveopt",
	CLFLUSH: "clflush",
	LFENCE: "lfence",
	MFENCE: "mfence",
	SFENCE: "sfence",
	PREFETCHNTA: "prefetchnta",
	PREFETCHT0: "prefetcht0",
	PREFETCHT1: "prefetcht1",
	PREFETCHT2: "prefetcht2",
	PREFETCHW: "prefetchw",
	ENDBR32: "endbr32",
	ENDBR64: "endbr64",
	RDRAND: "rdrand",
	RDSEED: "rdseed",
	FADD: "fadd",
	FMUL: "fmul",
	FCOM: "fcom",
	FCOMP: "fcomp",
	FSUB: "fsub",
	FSUBR: "fsubr",
	FDIV: "fdiv",
	FDIVR: "fdivr",
	FLD: "fld",
	FST: "fst",
	FSTP: "fstp",
	FLDENV: "fldenv",
	FLDCW: "fldcw",
	FNSTENV: "fnstenv",
	FNSTCW: "fnstcw",
	FIADD: "fiadd",
	FIMUL: "fimul",
	FICOM: "ficom",
	FICOMP: "ficomp",
	FISUB: "fisub",
	FISUBR: "fisubr",
	FIDIV: "fidiv",
	FIDIVR: "fidivr",
	FILD: "fild",
	FISTTP: "fisttp",
	FIST: "fist",
	FISTP: "fistp",
	FBLD: "fbld",
	FBSTP: "fbstp",
	FXCH: "fxch",
	FNOP: "fnop",
	FCHS: "fchs",
	FABS: "fabs",
	FTST: "ftst",
	FXAM: "fxam",
	FLD1: "fld1",
	FLDL2T: "fldl2t",
	FLDL2E: "fldl2e",
	FLDPI: "fldpi",
	FLDLG2: "fldlg2",
	FLDLN2: "fldln2",
	FLDZ: "fldz",
	F2XM1: "f2xm1",
	FYL2X: "fyl2x",
	FPTAN: "fptan",
	FPATAN: "fpatan",
	FXTRACT: "fxtract",
	FPREM1: "fprem1",
	FDECSTP: "fdecstp",
	FINCSTP: "fincstp",
	FPREM: "fprem",
	FYL2XP1: "fyl2xp1",
	FSQRT: "fsqrt",
	FSINCOS: "fsincos",
	FRNDINT: "frndint",
	FSCALE: "fscale",
	FSIN: "fsin",
	FCOS: "fcos",
	FUCOM: "fucom",
	FUCOMP: "fucomp",
	FUCOMPP: "fucompp",
	FCOMPP: "fcompp",
	FADDP: "faddp",
	FMULP: "fmulp",
	FSUBP: "fsubp",
	FSUBRP: "fsubrp",
	FDIVP: "fdivp",
	FDIVRP: "fdivrp",
	FFREE: "ffree",
	FRSTOR: "frstor",
	FNSAVE: "fnsave",
	FNSTSW: "fnstsw",
	FUCOMI: "fucomi",
	FCOMI: "fcomi",
	FUCOMIP: "fucomip",
	FCOMIP: "fcomip",
	FCMOVB: "fcmovb",
	FCMOVE: "fcmove",
	FCMOVBE: "fcmovbe",
	FCMOVU: "fcmovu",
	FCMOVNB: "fcmovnb",
	FCMOVNE: "fcmovne",
	FCMOVNBE: "fcmovnbe",
	FCMOVNU: "fcmovnu",
	FNCLEX: "fnclex",
	FNINIT: "fninit",
	MOVUPS: "movups",
	MOVUPD: "movupd",
	MOVSS: "movss",
	MOVSD_XMM: "movsd",
	MOVAPS: "movaps",
	MOVAPD: "movapd",
	MOVDQA: "movdqa",
	MOVDQU: "movdqu",
	MOVD: "movd",
	MOVQ: "movq",
	UCOMISS: "ucomiss",
	UCOMISD: "ucomisd",
	COMISS: "comiss",
	COMISD: "comisd",
	MOVMSKPS: "movmskps",
	MOVMSKPD: "movmskpd",
	PMOVMSKB: "pmovmskb",
	SQRTPS: "sqrtps",
	SQRTPD: "sqrtpd",
	SQRTSS: "sqrtss",
	SQRTSD: "sqrtsd",
	ANDPS: "andps",
	ANDPD: "andpd",
	ANDNPS: "andnps",
	ANDNPD: "andnpd",
	ORPS: "orps",
	ORPD: "orpd",
	XORPS: "xorps",
	XORPD: "xorpd",
	ADDPS: "addps",
	ADDPD: "addpd",
	ADDSS: "addss",
	ADDSD: "addsd",
	MULPS: "mulps",
	MULPD: "mulpd",
	MULSS: "mulss",
	MULSD: "mulsd",
	SUBPS: "subps",
	SUBPD: "subpd",
	SUBSS: "subss",
	SUBSD: "subsd",
	MINPS: "minps",
	MINPD: "minpd",
	MINSS: "minss",
	MINSD: "minsd",
	DIVPS: "divps",
	DIVPD: "divpd",
	DIVSS: "divss",
	DIVSD: "divsd",
	MAXPS: "maxps",
	MAXPD: "maxpd",
	MAXSS: "maxss",
	MAXSD: "maxsd",
	CVTPS2PD: "cvtps2pd",
	CVTPD2PS: "cvtpd2ps",
	CVTSS2SD: "cvtss2sd",
	CVTSD2SS: "cvtsd2ss",
	CVTDQ2PS: "cvtdq2ps",
	CVTPS2DQ: "cvtps2dq",
	CVTTPS2DQ: "cvttps2dq",
	CVTSI2SS: "cvtsi2ss",
	CVTSI2SD: "cvtsi2sd",
	CVTTSS2SI: "cvttss2si",
	CVTTSD2SI: "cvttsd2si",
	CVTSS2SI: "cvtss2si",
	CVTSD2SI: "cvtsd2si",
	CVTPI2PS: "cvtpi2ps",
	CVTPI2PD: "cvtpi2pd",
	PUNPCKLBW: "punpcklbw",
	PUNPCKLWD: "punpcklwd",
	PUNPCKLDQ: "punpckldq",
	PACKSSWB: "packsswb",
	PCMPGTB: "pcmpgtb",
	PCMPGTW: "pcmpgtw",
	PCMPGTD: "pcmpgtd",
	PACKUSWB: "packuswb",
	PUNPCKHBW: "punpckhbw",
	PUNPCKHWD: "punpckhwd",
	PUNPCKHDQ: "punpckhdq",
	PACKSSDW: "packssdw",
	PUNPCKLQDQ: "punpcklqdq",
	PUNPCKHQDQ: "punpckhqdq",
	PSHUFW: "pshufw",
	PSHUFD: "pshufd",
	PSHUFHW: "pshufhw",
	PSHUFLW: "pshuflw",
	PCMPEQB: "pcmpeqb",
	PCMPEQW: "pcmpeqw",
	PCMPEQD: "pcmpeqd",
	EMMS: "emms",
	PSRLW: "psrlw",
	PSRLD: "psrld",
	PSRLQ: "psrlq",
	PADDQ: "paddq",
	PMULLW: "pmullw",
	PSUBUSB: "psubusb",
	PSUBUSW: "psubusw",
	PMINUB: "pminub",
	PAND: "pand",
	PADDUSB: "paddusb",
	PADDUSW: "paddusw",
	PMAXUB: "pmaxub",
	PANDN: "pandn",
	PAVGB: "pavgb",
	PSRAW: "psraw",
	PSRAD: "psrad",
	PAVGW: "pavgw",
	PMULHUW: "pmulhuw",
	PMULHW: "pmulhw",
	PSUBSB: "psubsb",
	PSUBSW: "psubsw",
	PMINSW: "pminsw",
	POR: "por",
	PADDSB: "paddsb",
	PADDSW: "paddsw",
	PMAXSW: "pmaxsw",
	PXOR: "pxor",
	PSLLW: "psllw",
	PSLLD: "pslld",
	PSLLQ: "psllq",
	PMULUDQ: "pmuludq",
	PMADDWD: "pmaddwd",
	PSADBW: "psadbw",
	PSUBB: "psubb",
	PSUBW: "psubw",
	PSUBD: "psubd",
	PSUBQ: "psubq",
	PADDB: "paddb",
	PADDW: "paddw",
	PADDD: "paddd",
	PEXTRW: "pextrw",
	PINSRW: "pinsrw",
	SHUFPS: "shufps",
	SHUFPD: "shufpd",
	CMPPS: "cmpps",
	CMPPD: "cmppd",
	CMPSS: "cmpss",
	CMPSD_XMM: "cmpsd",
	MOVNTPS: "movntps",
	MOVNTPD: "movntpd",
	MOVNTDQ: "movntdq",
	MASKMOVDQU: "maskmovdqu",
	PSHUFB: "pshufb",
	PHADDW: "phaddw",
	PHADDD: "phaddd",
	PHADDSW: "phaddsw",
	PMADDUBSW: "pmaddubsw",
	PHSUBW: "phsubw",
	PHSUBD: "phsubd",
	PHSUBSW: "phsubsw",
	PSIGNB: "psignb",
	PSIGNW: "psignw",
	PSIGND: "psignd",
	PMULHRSW: "pmulhrsw",
	PBLENDVB: "pblendvb",
	BLENDVPS: "blendvps",
	BLENDVPD: "blendvpd",
	PTEST: "ptest",
	PABSB: "pabsb",
	PABSW: "pabsw",
	PABSD: "pabsd",
	PMOVSXBW: "pmovsxbw",
	PMOVSXBD: "pmovsxbd",
	PMOVSXBQ: "pmovsxbq",
	PMOVSXWD: "pmovsxwd",
	PMOVSXWQ: "pmovsxwq",
	PMOVSXDQ: "pmovsxdq",
	PMULDQ: "pmuldq",
	PCMPEQQ: "pcmpeqq",
	MOVNTDQA: "movntdqa",
	PACKUSDW: "packusdw",
	PMOVZXBW: "pmovzxbw",
	PMOVZXBD: "pmovzxbd",
	PMOVZXBQ: "pmovzxbq",
	PMOVZXWD: "pmovzxwd",
	PMOVZXWQ: "pmovzxwq",
	PMOVZXDQ: "pmovzxdq",
	PCMPGTQ: "pcmpgtq",
	PMINSB: "pminsb",
	PMINSD: "pminsd",
	PMINUW: "pminuw",
	PMINUD: "pminud",
	PMAXSB: "pmaxsb",
	PMAXSD: "pmaxsd",
	PMAXUW: "pmaxuw",
	PMAXUD: "pmaxud",
	PMULLD: "pmulld",
	PHMINPOSUW: "phminposuw",
	CRC32: "crc32",
	ADCX: "adcx",
	ADOX: "adox",
	ROUNDPS: "roundps",
	ROUNDPD: "roundpd",
	ROUNDSS: "roundss",
	ROUNDSD: "roundsd",
	BLENDPS: "blendps",
	BLENDPD: "blendpd",
	PBLENDW: "pblendw",
	PALIGNR: "palignr",
	PEXTRB: "pextrb",
	PEXTRD: "pextrd",
	PEXTRQ: "pextrq",
	EXTRACTPS: "extractps",
	PINSRB: "pinsrb",
	INSERTPS: "insertps",
	PINSRD: "pinsrd",
	PINSRQ: "pinsrq",
	DPPS: "dpps",
	DPPD: "dppd",
	MPSADBW: "mpsadbw",
	PCLMULQDQ: "pclmulqdq",
	PCMPESTRM: "pcmpestrm",
	PCMPESTRI: "pcmpestri",
	PCMPISTRM: "pcmpistrm",
	PCMPISTRI: "pcmpistri",
	AESKEYGENASSIST: "aeskeygenassist",
}

func (op Op) String() string {
	if op >= opMax {
		return "op?"
	}
	return opNames[op]
}
