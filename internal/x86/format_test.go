package x86

import "testing"

func TestMemString(t *testing.T) {
	tests := []struct {
		name string
		mem  Mem
		want string
	}{
		{"base only", Mem{Base: RAX}, "[rax]"},
		{"base disp8", Mem{Base: RBP, Disp: -8}, "[rbp-0x8]"},
		{"base index scale", Mem{Base: RDX, Index: RCX, Scale: 4, Disp: 0x10}, "[rdx+rcx*4+0x10]"},
		{"index only", Mem{Index: RSI, Scale: 8}, "[rsi*8]"},
		{"bare disp", Mem{Disp: 0x601040}, "[0x601040]"},
		{"segmented", Mem{Seg: GS, Disp: 0x30}, "gs:[0x30]"},
		{"sixteen bit pair", Mem{Base: BX, Index: SI, Scale: 1}, "[bx+si*1]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.mem.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHexText(t *testing.T) {
	inst := Decode(mustBytes(t, "48 89 e5"), 0, 64)
	_, raw := Format(inst, SyntaxIntel)
	if raw != "48 89 e5" {
		t.Errorf("raw = %q, want %q", raw, "48 89 e5")
	}
}

func TestTarget(t *testing.T) {
	inst := Inst{Addr: 0x1000, Len: 2}
	if got := inst.Target(Rel{Disp: -2, Width: 8}); got != 0x1000 {
		t.Errorf("backward branch target = %#x, want 0x1000", got)
	}
	if got := inst.Target(Rel{Disp: 0x10, Width: 32}); got != 0x1012 {
		t.Errorf("forward branch target = %#x, want 0x1012", got)
	}
	if got := inst.Target(Mem{Base: RIP, Disp: 4}); got != 0x1006 {
		t.Errorf("rip-relative target = %#x, want 0x1006", got)
	}
	if got := inst.Target(Mem{Base: RAX}); got != 0 {
		t.Errorf("non-relative operand target = %#x, want 0", got)
	}
}

func TestGPR8(t *testing.T) {
	noREX := []Reg{AL, CL, DL, BL, AH, CH, DH, BH}
	withREX := []Reg{AL, CL, DL, BL, SPL, BPL, SIL, DIL,
		R8B, R9B, R10B, R11B, R12B, R13B, R14B, R15B}
	for n, want := range noREX {
		if got := gpr8(byte(n), false); got != want {
			t.Errorf("gpr8(%d, false) = %s, want %s", n, got, want)
		}
	}
	for n, want := range withREX {
		if got := gpr8(byte(n), true); got != want {
			t.Errorf("gpr8(%d, true) = %s, want %s", n, got, want)
		}
	}
}

func TestRegString(t *testing.T) {
	pairs := []struct {
		r    Reg
		want string
	}{
		{RAX, "rax"}, {R15, "r15"}, {EAX, "eax"}, {AX, "ax"},
		{AL, "al"}, {AH, "ah"}, {SPL, "spl"}, {R8B, "r8b"},
		{RIP, "rip"}, {FS, "fs"}, {ST0, "st(0)"}, {M7, "mm7"},
		{X15, "xmm15"}, {CR4, "cr4"}, {DR7, "dr7"},
	}
	for _, p := range pairs {
		if got := p.r.String(); got != p.want {
			t.Errorf("%d.String() = %q, want %q", p.r, got, p.want)
		}
	}
}
