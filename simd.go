package jscan

import (
	"math/bits"
	"unsafe"
)

// Mask is a per-lane match bitmap, bit i set iff lane i matched. 64 bits is
// more than the widest chunk (32) ever needs; the excess bits are always
// zero.
type Mask uint64

// NextSet returns the index of the lowest set bit and a mask with that bit
// cleared. It must not be called on a zero mask.
func (m Mask) NextSet() (int, Mask) {
	i := bits.TrailingZeros64(uint64(m))
	return i, m &^ (1 << uint(i))
}

// Any reports whether any lane matched.
func (m Mask) Any() bool { return m != 0 }

// Search scans v with p, invoking visit(offset) once per matching byte in
// ascending order, where offset is the byte's index within v. Search stops
// early if visit returns false.
//
// v is split into an unaligned prefix, a run of pointer-aligned chunks of
// the CPU-appropriate width, and an unaligned suffix — mirroring the
// align-then-vectorize shape of a real SIMD memchr, even though every lane
// here is just a Go byte slice under the hood. All three regions are walked
// through ordinary bounds-checked slicing; only the split points are
// computed via pointer arithmetic.
func Search[S any](state *S, p Predicate[S], v []byte, visit func(offset int) bool) {
	if len(v) == 0 {
		return
	}
	if !vectorEnabled || len(v) < width {
		scalarSearch(state, p, v, 0, visit)
		return
	}

	pre, mid, post := alignedBounds(v, width)

	if !scalarSearch(state, p, v[:pre], 0, visit) {
		return
	}

	for off := 0; off+width <= len(mid); off += width {
		chunk := mid[off : off+width]
		m := p.ForSIMD(state, chunk)
		for m.Any() {
			var i int
			i, m = m.NextSet()
			if !visit(pre + off + i) {
				return
			}
		}
	}

	scalarSearch(state, p, post, pre+len(mid), visit)
}

// scalarSearch evaluates p one byte at a time starting at baseOffset within
// the original buffer, used for the unaligned head/tail and for inputs too
// short to vectorize at all. Returns false if visit asked to stop.
func scalarSearch[S any](state *S, p Predicate[S], v []byte, baseOffset int, visit func(offset int) bool) bool {
	for i, b := range v {
		if p.ForTest(state, b) {
			if !visit(baseOffset + i) {
				return false
			}
		}
	}
	return true
}

// alignedBounds splits v into (prefix, aligned-middle, suffix) such that the
// middle slice's address is a multiple of align and its length is the
// largest multiple of align that fits. It never reads through the computed
// pointers; it only uses them to decide where to cut v with ordinary
// slicing, so the result is exactly as safe as any other slice expression.
func alignedBounds(v []byte, align int) (pre int, mid []byte, post []byte) {
	if len(v) == 0 {
		return 0, nil, nil
	}
	addr := uintptr(unsafe.Pointer(&v[0]))
	offset := int(addr % uintptr(align))
	if offset != 0 {
		pre = align - offset
	}
	if pre > len(v) {
		pre = len(v)
	}
	remaining := v[pre:]
	midLen := (len(remaining) / align) * align
	return pre, remaining[:midLen], remaining[midLen:]
}
