package x86

import (
	"fmt"
	"sync"
)

// Scanner walks a code buffer and yields one Inst per call to Next,
// covering every byte of the buffer with no gaps and no overlaps. It is a
// lazy sequence: nothing is decoded ahead of the cursor, and Reset rewinds
// it for another identical pass. Scanners are cheap; use one per goroutine
// when decoding independent ranges concurrently.
type Scanner struct {
	buf  []byte
	base uint64
	bits int
	pos  int
}

// NewScanner validates the decode context and returns a scanner positioned
// at the start of buf. base is the virtual address of buf[0]. Bitness
// outside {32, 64} and an empty buffer are caller misconfiguration, the
// only errors this package surfaces.
func NewScanner(buf []byte, base uint64, bits int) (*Scanner, error) {
	if bits != 32 && bits != 64 {
		return nil, fmt.Errorf("x86: unsupported bitness %d (want 32 or 64)", bits)
	}
	if len(buf) == 0 {
		return nil, fmt.Errorf("x86: empty code buffer")
	}
	return &Scanner{buf: buf, base: base, bits: bits}, nil
}

// Next decodes the instruction at the cursor and advances past it. The
// second result is false once the buffer is exhausted.
func (s *Scanner) Next() (Inst, bool) {
	if s.pos >= len(s.buf) {
		return Inst{}, false
	}
	inst := Decode(s.buf[s.pos:], s.base+uint64(s.pos), s.bits)
	s.pos += inst.Len
	return inst, true
}

// Reset rewinds the scanner to the start of the buffer.
func (s *Scanner) Reset() { s.pos = 0 }

// Pos returns the current cursor offset into the buffer.
func (s *Scanner) Pos() int { return s.pos }

// DecodeAll eagerly decodes the whole buffer. The returned records tile
// the buffer exactly: the lengths sum to len(buf).
func DecodeAll(buf []byte, base uint64, bits int) ([]Inst, error) {
	s, err := NewScanner(buf, base, bits)
	if err != nil {
		return nil, err
	}
	// Most instructions in compiled code run 3-5 bytes.
	out := make([]Inst, 0, len(buf)/4+1)
	for {
		inst, ok := s.Next()
		if !ok {
			return out, nil
		}
		out = append(out, inst)
	}
}

// DecodeConcurrent decodes the buffer as workers independent ranges and
// concatenates the records in address order. Each range is treated as its
// own code buffer, so a record never spans a range seam; variable-length
// x86 streams resynchronize within a few bytes of a seam in practice.
// Useful for very large code sections, where decoding dominates.
func DecodeConcurrent(buf []byte, base uint64, bits int, workers int) ([]Inst, error) {
	if workers <= 1 || len(buf) <= MaxInstLen*workers {
		return DecodeAll(buf, base, bits)
	}
	if _, err := NewScanner(buf, base, bits); err != nil {
		return nil, err
	}

	chunk := (len(buf) + workers - 1) / workers
	parts := make([][]Inst, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		lo := i * chunk
		hi := lo + chunk
		if hi > len(buf) {
			hi = len(buf)
		}
		if lo >= hi {
			break
		}
		wg.Add(1)
		go func(i, lo, hi int) {
			defer wg.Done()
			parts[i], _ = DecodeAll(buf[lo:hi], base+uint64(lo), bits)
		}(i, lo, hi)
	}
	wg.Wait()

	var out []Inst
	for _, p := range parts {
		out = append(out, p...)
	}
	return out, nil
}
