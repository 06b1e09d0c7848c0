package x86

// Decode decodes the single instruction at the start of buf. It never
// fails outward: undefined opcodes and truncated operands come back as a
// record with Valid=false, Op=INVALID and Len covering whatever bytes were
// consumed (at least one), so a caller looping over a buffer always makes
// progress. addr is the virtual address of buf[0] and is recorded on the
// result; bits selects 32- or 64-bit decoding.
//
// buf must be non-empty: the progress guarantee (Len >= 1) only holds when
// there is at least one byte to consume. An empty buf returns an invalid
// record with Len=0, which would stall a caller that advances by Len.
func Decode(buf []byte, addr uint64, bits int) Inst {
	if len(buf) == 0 {
		return Inst{Op: INVALID, Addr: addr}
	}
	win := buf
	if len(win) > MaxInstLen {
		win = win[:MaxInstLen]
	}
	d := decoder{win: win, bits: bits}
	inst, ok := d.run()
	if !ok {
		n := d.pos
		if n < 1 {
			n = 1
		}
		if n > len(win) {
			n = len(win)
		}
		inst = Inst{Op: INVALID, Prefix: d.pfx, Len: n}
	}
	inst.Addr = addr
	inst.Raw = buf[:inst.Len]
	return inst
}

// decoder carries the cursor and per-instruction state for one decode
// attempt. It is created fresh per call; nothing is shared.
type decoder struct {
	win  []byte // decode window, capped at MaxInstLen bytes
	pos  int
	bits int

	pfx      Prefixes
	opsize   int // 16, 32 or 64
	addrsize int // 16, 32 or 64

	modrm    byte
	mod      byte
	regOp    byte // reg field widened by REX.R
	rm       byte // rm field widened by REX.B (register forms only)
	opReg    byte // register from the opcode's low bits, widened by REX.B

	mem Mem // decoded addressing form when mod != 11
}

func (d *decoder) readByte() (byte, bool) {
	if d.pos >= len(d.win) {
		return 0, false
	}
	b := d.win[d.pos]
	d.pos++
	return b, true
}

func (d *decoder) readUint(n int) (uint64, bool) {
	if d.pos+n > len(d.win) {
		// Consume what is there so the invalid record accounts for it.
		d.pos = len(d.win)
		return 0, false
	}
	var v uint64
	for i := 0; i < n; i++ {
		v |= uint64(d.win[d.pos+i]) << (8 * i)
	}
	d.pos += n
	return v, true
}

// run is the linear decode pipeline: prefixes, opcode, template lookup,
// operands. A false return means "no instruction here" for any reason;
// Decode turns that into the resynchronization record.
func (d *decoder) run() (Inst, bool) {
	var n int
	d.pfx, n = scanPrefixes(d.win, d.bits)
	d.pos = n

	opcode, ok := d.readByte()
	if !ok {
		return Inst{}, false
	}

	escape := 1
	if opcode == 0x0F {
		if opcode, ok = d.readByte(); !ok {
			return Inst{}, false
		}
		switch opcode {
		case 0x38:
			escape = 3
			if opcode, ok = d.readByte(); !ok {
				return Inst{}, false
			}
		case 0x3A:
			escape = 4
			if opcode, ok = d.readByte(); !ok {
				return Inst{}, false
			}
		default:
			escape = 2
		}
	}

	t, mandatory := d.lookup(escape, opcode)
	if !t.defined() {
		return Inst{}, false
	}
	if t.flags&fI64 != 0 && d.bits == 64 {
		return Inst{}, false
	}
	if t.flags&fO64 != 0 && d.bits != 64 {
		return Inst{}, false
	}

	// Mode-dependent overload: 63 is movsxd in 64-bit mode, arpl in
	// 32-bit mode.
	if escape == 1 && opcode == 0x63 && d.bits == 64 {
		t = ent(MOVSXD, fModRM, xGv, xEd)
	}

	d.setSizes(t, mandatory)

	d.opReg = opcode & 7
	if d.pfx.RexB() {
		d.opReg |= 8
	}

	if t.flags&fFP != 0 {
		return d.decodeFPU(opcode)
	}

	if t.flags&(fModRM|fGroup) != 0 {
		if !d.readModRM() {
			return Inst{}, false
		}
		if sp, handled := d.special(escape, opcode); handled {
			if sp.Op == INVALID {
				return Inst{}, false
			}
			return d.finish(sp)
		}
		if t.flags&fGroup != 0 {
			sub := groupTab[t.group][d.regOp&7]
			if !sub.defined() {
				return Inst{}, false
			}
			if sub.args[0] == xNone {
				sub.args = t.args
			}
			sub.flags |= t.flags &^ fGroup
			t = sub
			d.setSizes(t, mandatory)
		}
		if d.mod != 3 {
			if !d.decodeAddress() {
				return Inst{}, false
			}
		}
	}

	inst := Inst{Op: t.op, Prefix: d.pfx, Valid: true}
	for _, f := range t.args {
		if f == xNone {
			break
		}
		args, ok := d.arg(f)
		if !ok {
			return Inst{}, false
		}
		inst.Args = append(inst.Args, args...)
	}

	d.fixup(&inst, escape, opcode)
	if inst.Op == INVALID {
		return Inst{}, false
	}
	return d.finish(inst)
}

func (d *decoder) finish(inst Inst) (Inst, bool) {
	inst.Len = d.pos
	return inst, true
}

// lookup selects the template for (escape class, opcode), consulting the
// mandatory-prefix variant tables first. The second result reports whether
// a 66/F3/F2 prefix was consumed as a mandatory selector rather than as a
// size or repeat prefix.
func (d *decoder) lookup(escape int, opcode byte) (optab, bool) {
	var variants sseVariants
	var inMap bool
	switch escape {
	case 2:
		variants, inMap = twoByteSSE[opcode]
	case 3:
		variants, inMap = threeByte38[opcode]
	case 4:
		variants, inMap = threeByte3A[opcode]
	}
	if inMap {
		idx := pNone
		switch {
		case d.pfx.Repne:
			idx = pF2
		case d.pfx.Rep:
			idx = pF3
		case d.pfx.OpSize:
			idx = p66
		}
		if v := variants[idx]; v.defined() {
			return v, idx != pNone
		}
		// Repeat/size prefixes that are not mandatory for this opcode
		// are ignored, matching hardware behavior.
		if v := variants[pNone]; v.defined() {
			return v, false
		}
		return optab{}, false
	}
	switch escape {
	case 1:
		return oneByte[opcode], false
	case 2:
		return twoByte[opcode], false
	}
	return optab{}, false
}

// setSizes computes the effective operand and address sizes from the mode,
// the prefixes and the template flags. A 66 prefix consumed as a mandatory
// SSE selector does not shrink the operand size.
func (d *decoder) setSizes(t optab, mandatory bool) {
	opOverride := d.pfx.OpSize && !mandatory
	if d.bits == 64 {
		switch {
		case d.pfx.RexW():
			d.opsize = 64
		case opOverride:
			d.opsize = 16
		case t.flags&fD64 != 0:
			d.opsize = 64
		default:
			d.opsize = 32
		}
		d.addrsize = 64
		if d.pfx.AddrSize {
			d.addrsize = 32
		}
	} else {
		d.opsize = 32
		if opOverride {
			d.opsize = 16
		}
		d.addrsize = 32
		if d.pfx.AddrSize {
			d.addrsize = 16
		}
	}
}

func (d *decoder) readModRM() bool {
	b, ok := d.readByte()
	if !ok {
		return false
	}
	d.modrm = b
	d.mod = b >> 6
	d.regOp = (b >> 3) & 7
	d.rm = b & 7
	if d.pfx.RexR() {
		d.regOp |= 8
	}
	if d.mod == 3 && d.pfx.RexB() {
		d.rm |= 8
	}
	return true
}

// decodeAddress decodes the memory form selected by ModRM: an optional SIB
// byte and displacement, honoring the effective address size.
func (d *decoder) decodeAddress() bool {
	d.mem = Mem{Seg: d.pfx.Seg}

	if d.addrsize == 16 {
		return d.decodeAddress16()
	}

	gprA := gpr32
	if d.addrsize == 64 {
		gprA = gpr64
	}

	rm := d.rm & 7
	dispSize := 0
	switch d.mod {
	case 0:
		if rm == 5 {
			// No base; disp32. RIP-relative in 64-bit mode.
			v, ok := d.readUint(4)
			if !ok {
				return false
			}
			d.mem.Disp = int64(int32(uint32(v)))
			if d.bits == 64 {
				d.mem.Base = RIP
			}
			return true
		}
	case 1:
		dispSize = 1
	case 2:
		dispSize = 4
	}

	if rm == 4 {
		sib, ok := d.readByte()
		if !ok {
			return false
		}
		scale := byte(1) << (sib >> 6)
		index := (sib >> 3) & 7
		base := sib & 7
		if index != 4 || d.pfx.RexX() {
			if d.pfx.RexX() {
				index |= 8
			}
			d.mem.Index = gprA(index)
			d.mem.Scale = scale
		}
		if base == 5 && d.mod == 0 {
			v, ok := d.readUint(4)
			if !ok {
				return false
			}
			d.mem.Disp = int64(int32(uint32(v)))
			return true
		}
		if d.pfx.RexB() {
			base |= 8
		}
		d.mem.Base = gprA(base)
	} else {
		if d.pfx.RexB() {
			rm |= 8
		}
		d.mem.Base = gprA(rm)
	}

	switch dispSize {
	case 1:
		v, ok := d.readUint(1)
		if !ok {
			return false
		}
		d.mem.Disp = int64(int8(uint8(v)))
	case 4:
		v, ok := d.readUint(4)
		if !ok {
			return false
		}
		d.mem.Disp = int64(int32(uint32(v)))
	}
	return true
}

// 16-bit addressing pairs, indexed by rm.
var addr16 = [8][2]Reg{
	{BX, SI}, {BX, DI}, {BP, SI}, {BP, DI},
	{SI, RegNone}, {DI, RegNone}, {BP, RegNone}, {BX, RegNone},
}

func (d *decoder) decodeAddress16() bool {
	rm := d.rm & 7
	dispSize := 0
	switch d.mod {
	case 0:
		if rm == 6 {
			v, ok := d.readUint(2)
			if !ok {
				return false
			}
			d.mem.Disp = int64(int16(uint16(v)))
			return true
		}
	case 1:
		dispSize = 1
	case 2:
		dispSize = 2
	}
	pair := addr16[rm]
	d.mem.Base = pair[0]
	if pair[1] != RegNone {
		d.mem.Index = pair[1]
		d.mem.Scale = 1
	}
	switch dispSize {
	case 1:
		v, ok := d.readUint(1)
		if !ok {
			return false
		}
		d.mem.Disp = int64(int8(uint8(v)))
	case 2:
		v, ok := d.readUint(2)
		if !ok {
			return false
		}
		d.mem.Disp = int64(int16(uint16(v)))
	}
	return true
}

// rmArg materializes the r/m operand at the given width in bits; width 0
// means "memory with no implied width" (lea and the system table ops).
func (d *decoder) rmArg(width int) (Arg, bool) {
	if d.mod == 3 {
		if width == 0 {
			// Memory-only encodings are undefined with register forms.
			return nil, false
		}
		return gpr(width, d.rm, d.pfx.HasREX()), true
	}
	m := d.mem
	m.Width = uint8(width)
	return m, true
}

func (d *decoder) regArg(width int) Arg {
	return gpr(width, d.regOp, d.pfx.HasREX())
}

func (d *decoder) ySize() int {
	if d.bits == 64 && d.pfx.RexW() {
		return 64
	}
	return 32
}

// arg decodes a single template operand. Most fields produce one Arg; the
// far-pointer immediate produces two.
func (d *decoder) arg(f argField) ([]Arg, bool) {
	one := func(a Arg) ([]Arg, bool) { return []Arg{a}, true }
	switch f {
	case xEb:
		a, ok := d.rmArg(8)
		return []Arg{a}, ok
	case xEv:
		a, ok := d.rmArg(d.opsize)
		return []Arg{a}, ok
	case xEw:
		a, ok := d.rmArg(16)
		return []Arg{a}, ok
	case xEd:
		a, ok := d.rmArg(32)
		return []Arg{a}, ok
	case xEy:
		a, ok := d.rmArg(d.ySize())
		return []Arg{a}, ok
	case xM:
		a, ok := d.rmArg(0)
		return []Arg{a}, ok
	case xRv:
		// Register-only form; the control/debug moves ignore mod.
		rm := d.rm & 7
		if d.pfx.RexB() {
			rm |= 8
		}
		return one(gpr(d.opsize, rm, d.pfx.HasREX()))
	case xGb:
		return one(d.regArg(8))
	case xGv:
		return one(d.regArg(d.opsize))
	case xGw:
		return one(d.regArg(16))
	case xGd:
		return one(d.regArg(32))
	case xGy:
		return one(d.regArg(d.ySize()))
	case xSw:
		if d.regOp&7 >= 6 {
			return nil, false
		}
		return one(sreg(d.regOp & 7))
	case xCr:
		return one(creg(d.regOp))
	case xDr:
		return one(dreg(d.regOp))
	case xPq:
		return one(mmx(d.regOp))
	case xQq:
		if d.mod == 3 {
			return one(mmx(d.rm))
		}
		m := d.mem
		m.Width = 64
		return one(m)
	case xVx:
		n := d.regOp
		return one(xmm(n))
	case xWx:
		if d.mod == 3 {
			return one(xmm(d.rm))
		}
		m := d.mem
		m.Width = 128
		return one(m)
	case xIb:
		v, ok := d.readUint(1)
		if !ok {
			return nil, false
		}
		return one(Imm{Val: int64(int8(uint8(v))), Width: 8})
	case xIbu:
		v, ok := d.readUint(1)
		if !ok {
			return nil, false
		}
		return one(Imm{Val: int64(v), Width: 8})
	case xIw:
		v, ok := d.readUint(2)
		if !ok {
			return nil, false
		}
		return one(Imm{Val: int64(v), Width: 16})
	case xIz:
		if d.opsize == 16 {
			v, ok := d.readUint(2)
			if !ok {
				return nil, false
			}
			return one(Imm{Val: int64(int16(uint16(v))), Width: 16})
		}
		v, ok := d.readUint(4)
		if !ok {
			return nil, false
		}
		return one(Imm{Val: int64(int32(uint32(v))), Width: 32})
	case xIv:
		switch d.opsize {
		case 16:
			v, ok := d.readUint(2)
			if !ok {
				return nil, false
			}
			return one(Imm{Val: int64(int16(uint16(v))), Width: 16})
		case 64:
			v, ok := d.readUint(8)
			if !ok {
				return nil, false
			}
			return one(Imm{Val: int64(v), Width: 64})
		default:
			v, ok := d.readUint(4)
			if !ok {
				return nil, false
			}
			return one(Imm{Val: int64(int32(uint32(v))), Width: 32})
		}
	case xJb:
		v, ok := d.readUint(1)
		if !ok {
			return nil, false
		}
		return one(Rel{Disp: int32(int8(uint8(v))), Width: 8})
	case xJz:
		if d.opsize == 16 && d.bits != 64 {
			v, ok := d.readUint(2)
			if !ok {
				return nil, false
			}
			return one(Rel{Disp: int32(int16(uint16(v))), Width: 16})
		}
		v, ok := d.readUint(4)
		if !ok {
			return nil, false
		}
		return one(Rel{Disp: int32(uint32(v)), Width: 32})
	case xAp:
		offSize := 4
		offWidth := uint8(32)
		if d.opsize == 16 {
			offSize, offWidth = 2, 16
		}
		off, ok := d.readUint(offSize)
		if !ok {
			return nil, false
		}
		seg, ok := d.readUint(2)
		if !ok {
			return nil, false
		}
		return []Arg{Imm{Val: int64(seg), Width: 16}, Imm{Val: int64(off), Width: offWidth}}, true
	case xAL:
		return one(AL)
	case xCL:
		return one(CL)
	case xDX:
		return one(DX)
	case xEAX:
		return one(gpr(d.opsize, 0, false))
	case xOne:
		return one(Imm{Val: 1, Width: 8})
	case xOb, xOv:
		v, ok := d.readUint(d.addrsize / 8)
		if !ok {
			return nil, false
		}
		w := uint8(8)
		if f == xOv {
			w = uint8(d.opsize)
		}
		return one(Mem{Seg: d.pfx.Seg, Disp: int64(v), Width: w})
	case xRegB:
		return one(gpr8(d.opReg, d.pfx.HasREX()))
	case xRegV:
		return one(gpr(d.opsize, d.opReg, d.pfx.HasREX()))
	case xES:
		return one(ES)
	case xCS:
		return one(CS)
	case xSS:
		return one(SS)
	case xDS:
		return one(DS)
	case xFS:
		return one(FS)
	case xGS:
		return one(GS)
	}
	return nil, false
}
