package x86

import (
	"bytes"
	"encoding/hex"
	"math/rand"
	"reflect"
	"strings"
	"testing"
)

func mustBytes(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(strings.ReplaceAll(s, " ", ""))
	if err != nil {
		t.Fatalf("bad hex %q: %v", s, err)
	}
	return b
}

func TestDecodeGolden64(t *testing.T) {
	tests := []struct {
		name string
		code string
		addr uint64
		op   Op
		len  int
		text string
	}{
		{
			name: "nop",
			code: "90",
			op:   NOP,
			len:  1,
			text: "nop",
		},
		{
			name: "mov rbp rsp",
			code: "48 89 e5",
			op:   MOV,
			len:  3,
			text: "mov rbp, rsp",
		},
		{
			name: "ret",
			code: "c3",
			op:   RET,
			len:  1,
			text: "ret",
		},
		{
			name: "syscall",
			code: "0f 05",
			op:   SYSCALL,
			len:  2,
			text: "syscall",
		},
		{
			name: "rip relative jmp",
			code: "ff 25 00 00 00 00",
			addr: 0x1000,
			op:   JMP,
			len:  6,
			text: "jmp qword ptr [0x1006]",
		},
		{
			name: "push rbp",
			code: "55",
			op:   PUSH,
			len:  1,
			text: "push rbp",
		},
		{
			name: "push r15",
			code: "41 57",
			op:   PUSH,
			len:  2,
			text: "push r15",
		},
		{
			name: "sub rsp imm8",
			code: "48 83 ec 20",
			op:   SUB,
			len:  4,
			text: "sub rsp, 0x20",
		},
		{
			name: "mov eax frame slot",
			code: "8b 45 fc",
			op:   MOV,
			len:  3,
			text: "mov eax, dword ptr [rbp-0x4]",
		},
		{
			name: "call next",
			code: "e8 00 00 00 00",
			addr: 0x2000,
			op:   CALL,
			len:  5,
			text: "call 0x2005",
		},
		{
			name: "jmp self",
			code: "eb fe",
			addr: 0x40,
			op:   JMP,
			len:  2,
			text: "jmp 0x40",
		},
		{
			name: "je forward",
			code: "74 05",
			addr: 0x100,
			op:   JE,
			len:  2,
			text: "je 0x107",
		},
		{
			name: "mov eax imm32",
			code: "b8 78 56 34 12",
			op:   MOV,
			len:  5,
			text: "mov eax, 0x12345678",
		},
		{
			name: "mov rax imm64",
			code: "48 b8 88 77 66 55 44 33 22 11",
			op:   MOV,
			len:  10,
			text: "mov rax, 0x1122334455667788",
		},
		{
			name: "mov rdi r14",
			code: "4c 89 f7",
			op:   MOV,
			len:  3,
			text: "mov rdi, r14",
		},
		{
			name: "int3",
			code: "cc",
			op:   INT3,
			len:  1,
			text: "int3",
		},
		{
			name: "neg eax",
			code: "f7 d8",
			op:   NEG,
			len:  2,
			text: "neg eax",
		},
		{
			name: "movzx eax al",
			code: "0f b6 c0",
			op:   MOVZX,
			len:  3,
			text: "movzx eax, al",
		},
		{
			name: "imul eax ebx",
			code: "0f af c3",
			op:   IMUL,
			len:  3,
			text: "imul eax, ebx",
		},
		{
			name: "movsxd rax eax",
			code: "48 63 c0",
			op:   MOVSXD,
			len:  3,
			text: "movsxd rax, eax",
		},
		{
			name: "leave",
			code: "c9",
			op:   LEAVE,
			len:  1,
			text: "leave",
		},
		{
			name: "multi byte nop",
			code: "0f 1f 40 00",
			op:   NOP,
			len:  4,
			text: "nop dword ptr [rax]",
		},
		{
			name: "nopw with sib",
			code: "66 0f 1f 44 00 00",
			op:   NOP,
			len:  6,
			text: "nop word ptr [rax+rax*1]",
		},
		{
			name: "endbr64",
			code: "f3 0f 1e fa",
			op:   ENDBR64,
			len:  4,
			text: "endbr64",
		},
		{
			name: "stack canary load",
			code: "64 48 8b 04 25 28 00 00 00",
			op:   MOV,
			len:  9,
			text: "mov rax, qword ptr fs:[0x28]",
		},
		{
			name: "push imm8",
			code: "6a 01",
			op:   PUSH,
			len:  2,
			text: "push 0x1",
		},
		{
			name: "mov store imm32",
			code: "c7 45 f8 0a 00 00 00",
			op:   MOV,
			len:  7,
			text: "mov dword ptr [rbp-0x8], 0xa",
		},
		{
			name: "lock inc riprel",
			code: "f0 ff 05 10 00 00 00",
			addr: 0x500,
			op:   INC,
			len:  7,
			text: "lock inc dword ptr [0x517]",
		},
		{
			name: "rep stosq",
			code: "f3 48 ab",
			op:   STOSQ,
			len:  3,
			text: "rep stosq",
		},
		{
			name: "pause",
			code: "f3 90",
			op:   PAUSE,
			len:  2,
			text: "pause",
		},
		{
			name: "xchg r8 rax",
			code: "49 90",
			op:   XCHG,
			len:  2,
			text: "xchg r8, rax",
		},
		{
			name: "cdqe",
			code: "48 98",
			op:   CDQE,
			len:  2,
			text: "cdqe",
		},
		{
			name: "pxor xmm0 xmm0",
			code: "66 0f ef c0",
			op:   PXOR,
			len:  4,
			text: "pxor xmm0, xmm0",
		},
		{
			name: "addsd xmm0 xmm1",
			code: "f2 0f 58 c1",
			op:   ADDSD,
			len:  4,
			text: "addsd xmm0, xmm1",
		},
		{
			name: "movss riprel",
			code: "f3 0f 10 05 04 00 00 00",
			addr: 0x3000,
			op:   MOVSS,
			len:  8,
			text: "movss xmm0, dword ptr [0x300c]",
		},
		{
			name: "movdqa load",
			code: "66 0f 6f 00",
			op:   MOVDQA,
			len:  4,
			text: "movdqa xmm0, xmmword ptr [rax]",
		},
		{
			name: "fld qword",
			code: "dd 04 24",
			op:   FLD,
			len:  3,
			text: "fld qword ptr [rsp]",
		},
		{
			name: "fldz",
			code: "d9 ee",
			op:   FLDZ,
			len:  2,
			text: "fldz",
		},
		{
			name: "faddp",
			code: "de c1",
			op:   FADDP,
			len:  2,
			text: "faddp st(1), st(0)",
		},
		{
			name: "cmovne",
			code: "48 0f 45 c2",
			op:   CMOVNE,
			len:  4,
			text: "cmovne rax, rdx",
		},
		{
			name: "seta",
			code: "0f 97 c0",
			op:   SETA,
			len:  3,
			text: "seta al",
		},
		{
			name: "setae spl needs rex",
			code: "40 0f 93 c4",
			op:   SETAE,
			len:  4,
			text: "setae spl",
		},
		{
			name: "mov sil al neutral rex",
			code: "40 88 c6",
			op:   MOV,
			len:  3,
			text: "mov sil, al",
		},
		{
			name: "mov dh al without rex",
			code: "88 c6",
			op:   MOV,
			len:  2,
			text: "mov dh, al",
		},
		{
			name: "mov r8b imm",
			code: "41 b0 01",
			op:   MOV,
			len:  3,
			text: "mov r8b, 0x1",
		},
		{
			name: "mov r15b imm",
			code: "41 b7 01",
			op:   MOV,
			len:  3,
			text: "mov r15b, 0x1",
		},
		{
			name: "cmp r12b cl",
			code: "41 38 cc",
			op:   CMP,
			len:  3,
			text: "cmp r12b, cl",
		},
		{
			name: "shl eax 1",
			code: "d1 e0",
			op:   SHL,
			len:  2,
			text: "shl eax, 0x1",
		},
		{
			name: "sar rax cl",
			code: "48 d3 f8",
			op:   SAR,
			len:  3,
			text: "sar rax, cl",
		},
		{
			name: "lea with scaled index",
			code: "48 8d 04 8d 00 00 00 00",
			op:   LEA,
			len:  8,
			text: "lea rax, [rcx*4]",
		},
		{
			name: "addr32 override",
			code: "67 8b 00",
			op:   MOV,
			len:  3,
			text: "mov eax, dword ptr [eax]",
		},
		{
			name: "bswap r10d",
			code: "41 0f ca",
			op:   BSWAP,
			len:  3,
			text: "bswap r10d",
		},
		{
			name: "popcnt",
			code: "f3 48 0f b8 c7",
			op:   POPCNT,
			len:  5,
			text: "popcnt rax, rdi",
		},
		{
			name: "tzcnt",
			code: "f3 0f bc c2",
			op:   TZCNT,
			len:  4,
			text: "tzcnt eax, edx",
		},
		{
			name: "cpuid",
			code: "0f a2",
			op:   CPUID,
			len:  2,
			text: "cpuid",
		},
		{
			name: "rdtsc",
			code: "0f 31",
			op:   RDTSC,
			len:  2,
			text: "rdtsc",
		},
		{
			name: "mfence",
			code: "0f ae f0",
			op:   MFENCE,
			len:  3,
			text: "mfence",
		},
		{
			name: "movaps",
			code: "0f 28 c8",
			op:   MOVAPS,
			len:  3,
			text: "movaps xmm1, xmm0",
		},
		{
			name: "cvtsi2sd from r64",
			code: "f2 48 0f 2a c7",
			op:   CVTSI2SD,
			len:  5,
			text: "cvtsi2sd xmm0, rdi",
		},
		{
			name: "movabs moffs",
			code: "a1 08 00 00 00 00 00 00 00",
			op:   MOV,
			len:  9,
			text: "mov eax, dword ptr [0x8]",
		},
		{
			name: "test al imm",
			code: "a8 01",
			op:   TEST,
			len:  2,
			text: "test al, 0x1",
		},
		{
			name: "xor negative imm",
			code: "83 f0 ff",
			op:   XOR,
			len:  3,
			text: "xor eax, -0x1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code := mustBytes(t, tt.code)
			inst := Decode(code, tt.addr, 64)
			if !inst.Valid {
				t.Fatalf("Decode(%s) invalid, want %s", tt.code, tt.op)
			}
			if inst.Op != tt.op {
				t.Errorf("op = %s, want %s", inst.Op, tt.op)
			}
			if inst.Len != tt.len {
				t.Errorf("len = %d, want %d", inst.Len, tt.len)
			}
			if !bytes.Equal(inst.Raw, code[:tt.len]) {
				t.Errorf("raw = % x, want % x", inst.Raw, code[:tt.len])
			}
			text, _ := Format(inst, SyntaxIntel)
			if text != tt.text {
				t.Errorf("text = %q, want %q", text, tt.text)
			}
		})
	}
}

func TestDecodeGolden32(t *testing.T) {
	tests := []struct {
		name string
		code string
		op   Op
		len  int
		text string
	}{
		{"inc eax short form", "40", INC, 1, "inc eax"},
		{"pushad", "60", PUSHAD, 1, "pushad"},
		{"push es", "06", PUSH, 1, "push es"},
		{"mov ebp esp", "89 e5", MOV, 2, "mov ebp, esp"},
		{"lea esp scaled", "8d 44 24 04", LEA, 4, "lea eax, [esp+0x4]"},
		{"absolute load", "8b 15 44 33 22 11", MOV, 6, "mov edx, dword ptr [0x11223344]"},
		{"addr16 override", "67 8b 07", MOV, 3, "mov eax, dword ptr [bx]"},
		{"addr16 bp disp", "67 8b 46 02", MOV, 4, "mov eax, dword ptr [bp+0x2]"},
		{"les", "c4 18", LES, 2, "les ebx, [eax]"},
		{"ljmp direct", "ea 78 56 34 12 14 00", LJMP, 7, "ljmp 0x14:0x12345678"},
		{"operand size mov", "66 b8 34 12", MOV, 4, "mov ax, 0x1234"},
		{"aam", "d4 0a", AAM, 2, "aam 0xa"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code := mustBytes(t, tt.code)
			inst := Decode(code, 0, 32)
			if !inst.Valid {
				t.Fatalf("Decode(%s) invalid, want %s", tt.code, tt.op)
			}
			if inst.Op != tt.op || inst.Len != tt.len {
				t.Errorf("got %s len %d, want %s len %d", inst.Op, inst.Len, tt.op, tt.len)
			}
			text, _ := Format(inst, SyntaxIntel)
			if text != tt.text {
				t.Errorf("text = %q, want %q", text, tt.text)
			}
		})
	}
}

func TestDecodeInvalid(t *testing.T) {
	tests := []struct {
		name   string
		code   string
		minLen int
	}{
		{"undefined two byte", "0f ff", 2},
		{"truncated modrm", "0f 10", 2},
		{"truncated immediate", "b8 01 02", 1},
		{"lone rex", "48", 1},
		{"lone prefix", "66", 1},
		{"lea register form", "8d c0", 2},
		{"prefix run past ceiling", "f0 f0 f0 f0 f0 f0 f0 f0 f0 f0 f0 f0 f0 f0 f0 f0", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code := mustBytes(t, tt.code)
			inst := Decode(code, 0, 64)
			if inst.Valid {
				t.Fatalf("Decode(%s) = %s, want invalid", tt.code, inst.Op)
			}
			if inst.Op != INVALID {
				t.Errorf("op = %s, want INVALID", inst.Op)
			}
			if inst.Len < tt.minLen || inst.Len > MaxInstLen {
				t.Errorf("len = %d, want %d..%d", inst.Len, tt.minLen, MaxInstLen)
			}
			if len(inst.Raw) != inst.Len {
				t.Errorf("raw length %d != len %d", len(inst.Raw), inst.Len)
			}
			text, _ := Format(inst, SyntaxIntel)
			if text != "(bad)" {
				t.Errorf("text = %q, want %q", text, "(bad)")
			}
		})
	}
}

func TestDecodeEmptyBuffer(t *testing.T) {
	for _, bits := range []int{32, 64} {
		inst := Decode(nil, 0x1000, bits)
		if inst.Valid || inst.Op != INVALID {
			t.Errorf("bits=%d: Decode(nil) = %s, want INVALID", bits, inst.Op)
		}
		if inst.Len != 0 {
			t.Errorf("bits=%d: len = %d, want 0", bits, inst.Len)
		}
		if inst.Addr != 0x1000 {
			t.Errorf("bits=%d: addr = %#x, want 0x1000", bits, inst.Addr)
		}
	}
}

func TestDecodeMakesProgress(t *testing.T) {
	// Every non-empty buffer must come back with Len >= 1, or a caller
	// advancing by Len would never terminate.
	for b := 0; b < 256; b++ {
		inst := Decode([]byte{byte(b)}, 0, 64)
		if inst.Len < 1 {
			t.Errorf("Decode(%#02x) len = %d, want >= 1", b, inst.Len)
		}
	}
}

func TestResynchronization(t *testing.T) {
	// An undefined opcode must not swallow the valid instructions after it.
	code := mustBytes(t, "0f ff 90 c3")
	insts, err := DecodeAll(code, 0x1000, 64)
	if err != nil {
		t.Fatal(err)
	}
	if len(insts) != 3 {
		t.Fatalf("got %d records, want 3", len(insts))
	}
	if insts[0].Valid {
		t.Error("first record should be invalid")
	}
	if insts[1].Op != NOP || insts[2].Op != RET {
		t.Errorf("resync decoded %s, %s; want nop, ret", insts[1].Op, insts[2].Op)
	}
}

func TestScannerConfigErrors(t *testing.T) {
	if _, err := NewScanner(nil, 0, 64); err == nil {
		t.Error("empty buffer should be rejected")
	}
	if _, err := NewScanner([]byte{0x90}, 0, 16); err == nil {
		t.Error("16-bit mode should be rejected")
	}
	if _, err := NewScanner([]byte{0x90}, 0, 0); err == nil {
		t.Error("zero bitness should be rejected")
	}
}

// randomCode builds a deterministic pseudo-random buffer seasoned with
// byte values that stress the decoder (prefixes, escapes, ModRM shapes).
func randomCode(seed int64, n int) []byte {
	rng := rand.New(rand.NewSource(seed))
	spice := []byte{0x0F, 0x66, 0x67, 0xF0, 0xF2, 0xF3, 0x40, 0x48, 0x4F, 0xFF, 0x05, 0x24, 0x25, 0xD8, 0xDF}
	buf := make([]byte, n)
	for i := range buf {
		if rng.Intn(3) == 0 {
			buf[i] = spice[rng.Intn(len(spice))]
		} else {
			buf[i] = byte(rng.Intn(256))
		}
	}
	return buf
}

func TestFullCoverage(t *testing.T) {
	for _, bits := range []int{32, 64} {
		for seed := int64(0); seed < 20; seed++ {
			buf := randomCode(seed, 4096)
			insts, err := DecodeAll(buf, 0x400000, bits)
			if err != nil {
				t.Fatal(err)
			}
			total := 0
			addr := uint64(0x400000)
			for i, inst := range insts {
				if inst.Len < 1 || inst.Len > MaxInstLen {
					t.Fatalf("bits=%d seed=%d inst %d: len %d out of range", bits, seed, i, inst.Len)
				}
				if len(inst.Raw) != inst.Len {
					t.Fatalf("bits=%d seed=%d inst %d: raw %d != len %d", bits, seed, i, len(inst.Raw), inst.Len)
				}
				if inst.Addr != addr {
					t.Fatalf("bits=%d seed=%d inst %d: addr %#x, want %#x", bits, seed, i, inst.Addr, addr)
				}
				if !bytes.Equal(inst.Raw, buf[total:total+inst.Len]) {
					t.Fatalf("bits=%d seed=%d inst %d: raw bytes do not match buffer", bits, seed, i)
				}
				addr += uint64(inst.Len)
				total += inst.Len
			}
			if total != len(buf) {
				t.Fatalf("bits=%d seed=%d: records cover %d bytes, buffer has %d", bits, seed, total, len(buf))
			}
		}
	}
}

func TestDecodeDeterministic(t *testing.T) {
	buf := randomCode(7, 2048)
	a, err := DecodeAll(buf, 0x1000, 64)
	if err != nil {
		t.Fatal(err)
	}
	b, err := DecodeAll(buf, 0x1000, 64)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("two decode runs over the same buffer differ")
	}
}

func TestRestartAtBoundary(t *testing.T) {
	// Decoding a sub-buffer that starts exactly at a record boundary must
	// reproduce the same record: no context leaks across instructions.
	buf := randomCode(11, 1024)
	insts, err := DecodeAll(buf, 0x8000, 64)
	if err != nil {
		t.Fatal(err)
	}
	off := 0
	for i, want := range insts {
		got := Decode(buf[off:], want.Addr, 64)
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("inst %d at offset %d: restarted decode differs", i, off)
		}
		off += want.Len
	}
}

func TestDecodeConcurrent(t *testing.T) {
	buf := randomCode(3, 1<<16)
	insts, err := DecodeConcurrent(buf, 0x400000, 64, 8)
	if err != nil {
		t.Fatal(err)
	}
	total := 0
	last := uint64(0)
	for _, inst := range insts {
		if inst.Addr < last {
			t.Fatalf("records out of address order at %#x", inst.Addr)
		}
		last = inst.Addr
		total += inst.Len
	}
	if total != len(buf) {
		t.Fatalf("records cover %d bytes, buffer has %d", total, len(buf))
	}

	single, err := DecodeConcurrent(buf[:64], 0, 64, 8)
	if err != nil {
		t.Fatal(err)
	}
	seq, err := DecodeAll(buf[:64], 0, 64)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(single, seq) {
		t.Error("small buffers should take the sequential path unchanged")
	}
}

func TestScannerReset(t *testing.T) {
	buf := mustBytes(t, "55 48 89 e5 c3")
	s, err := NewScanner(buf, 0, 64)
	if err != nil {
		t.Fatal(err)
	}
	var first []Inst
	for {
		inst, ok := s.Next()
		if !ok {
			break
		}
		first = append(first, inst)
	}
	s.Reset()
	var second []Inst
	for {
		inst, ok := s.Next()
		if !ok {
			break
		}
		second = append(second, inst)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("scanner pass after Reset differs from first pass")
	}
}
