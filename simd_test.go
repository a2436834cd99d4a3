package jscan

import (
	"math/rand"
	"testing"
)

func TestAlignedBoundsCoverWholeSlice(t *testing.T) {
	buf := make([]byte, 257)
	for _, align := range []int{16, 32} {
		pre, mid, post := alignedBounds(buf, align)
		if pre+len(mid)+len(post) != len(buf) {
			t.Fatalf("align=%d: pre(%d)+mid(%d)+post(%d) != %d", align, pre, len(mid), len(post), len(buf))
		}
		if len(mid)%align != 0 {
			t.Fatalf("align=%d: mid length %d not a multiple of align", align, len(mid))
		}
	}
}

func TestAlignedBoundsEmpty(t *testing.T) {
	pre, mid, post := alignedBounds(nil, 16)
	if pre != 0 || mid != nil || post != nil {
		t.Fatalf("expected all-zero for empty input, got pre=%d mid=%v post=%v", pre, mid, post)
	}
}

// TestSearchMatchesScalarReference checks Search's output against a plain
// byte-by-byte scan across a range of buffer lengths straddling the
// prefix/aligned/suffix boundaries, so the alignment split can't silently
// drop or duplicate a match.
func TestSearchMatchesScalarReference(t *testing.T) {
	p := Eq[struct{}]('#')
	rng := rand.New(rand.NewSource(1))

	for _, n := range []int{0, 1, 15, 16, 17, 31, 32, 33, 63, 64, 65, 200} {
		buf := make([]byte, n)
		for i := range buf {
			if rng.Intn(8) == 0 {
				buf[i] = '#'
			} else {
				buf[i] = byte('a' + rng.Intn(26))
			}
		}

		var want []int
		for i, b := range buf {
			if b == '#' {
				want = append(want, i)
			}
		}

		var got []int
		s := struct{}{}
		Search(&s, p.Predicate, buf, func(offset int) bool {
			got = append(got, offset)
			return true
		})

		if len(got) != len(want) {
			t.Fatalf("n=%d: got %d matches, want %d (%v vs %v)", n, len(got), len(want), got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("n=%d: match %d = %d, want %d", n, i, got[i], want[i])
			}
		}
	}
}

func TestSearchEarlyStop(t *testing.T) {
	p := Eq[struct{}]('x')
	s := struct{}{}
	var got []int
	Search(&s, p.Predicate, []byte("xxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx"), func(offset int) bool {
		got = append(got, offset)
		return len(got) < 3
	})
	if len(got) != 3 {
		t.Fatalf("expected Search to stop after 3 matches, got %d", len(got))
	}
}

// TestStatefulExecMatchesScalarAcrossChunkBoundaries is the stateful
// differential test spec.md §9 asks for: a non-terminating Exec predicate
// (count 'x' occurrences, never signal a stop) must reach the same final
// state via Search — which may route through the aligned vector path — as
// a plain byte-by-byte reference count, for buffer lengths straddling the
// prefix/aligned/suffix split at every vector width the kernel supports.
func TestStatefulExecMatchesScalarAcrossChunkBoundaries(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	type counter struct{ n int }

	for _, n := range []int{0, 1, 15, 16, 17, 31, 32, 33, 47, 48, 49, 63, 64, 65, 200} {
		buf := make([]byte, n)
		for i := range buf {
			if rng.Intn(5) == 0 {
				buf[i] = 'x'
			} else {
				buf[i] = byte('a' + rng.Intn(26))
			}
		}

		want := 0
		for _, b := range buf {
			if b == 'x' {
				want++
			}
		}

		p := ExecOf[counter](Eq[counter]('x'), func(s *counter, matched bool) bool {
			if matched {
				s.n++
			}
			return false
		})
		var s counter
		Search(&s, p.Predicate, buf, func(int) bool { return true })
		if s.n != want {
			t.Fatalf("n=%d: count = %d, want %d", n, s.n, want)
		}
	}
}

// TestStatefulDualExecMatchesScalarAcrossChunkBoundaries is the terminating
// counterpart: a DualExec predicate counts 'y' occurrences and stops at the
// first 'x', for every placement of that 'x' across buffer lengths
// straddling the vector-width boundary. Both the offset Search reports and
// the accumulated 'y' count at the point of termination must agree with a
// hand-rolled scalar reference — this is exactly the property that would
// have caught ForSIMD applying side effects for lanes past the one Search
// actually reports.
func TestStatefulDualExecMatchesScalarAcrossChunkBoundaries(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	type counter struct{ ys int }

	for _, n := range []int{16, 17, 31, 32, 33, 47, 48, 49, 63, 64, 65, 100} {
		for _, xAt := range []int{0, 1, n / 2, n - 2, n - 1} {
			if xAt < 0 || xAt >= n {
				continue
			}
			buf := make([]byte, n)
			for i := range buf {
				switch {
				case i == xAt:
					buf[i] = 'x'
				case rng.Intn(3) == 0:
					buf[i] = 'y'
				default:
					buf[i] = byte('a' + rng.Intn(26))
				}
			}

			wantOffset, wantYs := -1, 0
			for i, b := range buf {
				if b == 'x' {
					wantOffset = i
					break
				}
				if b == 'y' {
					wantYs++
				}
			}

			p := DualExecOf[counter](Eq[counter]('y'), Eq[counter]('x'),
				func(s *counter, isY, isX bool) bool {
					if isY {
						s.ys++
					}
					return isX
				},
			)
			var s counter
			gotOffset := -1
			Search(&s, p.Predicate, buf, func(offset int) bool {
				gotOffset = offset
				return false
			})

			if gotOffset != wantOffset {
				t.Fatalf("n=%d xAt=%d: offset = %d, want %d", n, xAt, gotOffset, wantOffset)
			}
			if s.ys != wantYs {
				t.Fatalf("n=%d xAt=%d: ys = %d, want %d", n, xAt, s.ys, wantYs)
			}
		}
	}
}

func TestMaskNextSet(t *testing.T) {
	m := Mask(0b1010)
	i, rest := m.NextSet()
	if i != 1 {
		t.Fatalf("first set bit = %d, want 1", i)
	}
	i2, rest2 := rest.NextSet()
	if i2 != 3 {
		t.Fatalf("second set bit = %d, want 3", i2)
	}
	if rest2 != 0 {
		t.Fatalf("expected mask exhausted, got %b", rest2)
	}
}
