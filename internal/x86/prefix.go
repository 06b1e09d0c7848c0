package x86

// maxLegacyPrefixes bounds the prefix scan so a run of prefix bytes can
// never push an instruction past the 15-byte ceiling.
const maxLegacyPrefixes = 14

// scanPrefixes consumes legacy prefixes and, in 64-bit mode, an optional
// trailing REX byte starting at buf[0]. It returns the accumulated prefix
// state and the number of bytes consumed. An empty run is valid.
func scanPrefixes(buf []byte, bits int) (Prefixes, int) {
	var p Prefixes
	n := 0
	for n < len(buf) && n < maxLegacyPrefixes {
		switch buf[n] {
		case 0x66:
			p.OpSize = true
		case 0x67:
			p.AddrSize = true
		case 0xF0:
			p.Lock = true
		case 0xF2:
			p.Repne = true
		case 0xF3:
			p.Rep = true
		case 0x26:
			p.Seg = ES
		case 0x2E:
			p.Seg = CS
		case 0x36:
			p.Seg = SS
		case 0x3E:
			p.Seg = DS
		case 0x64:
			p.Seg = FS
		case 0x65:
			p.Seg = GS
		default:
			goto rex
		}
		n++
	}
rex:
	// REX is only meaningful in 64-bit mode and must immediately precede
	// the opcode; it is scanned exactly once, after all legacy prefixes.
	if bits == 64 && n < len(buf) && buf[n]&0xF0 == 0x40 {
		p.REX = buf[n]
		n++
	}
	return p, n
}
