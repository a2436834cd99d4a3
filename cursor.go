package jscan

// Cursor is a read-only position into a byte buffer. It never copies the
// buffer and never allocates; every method either moves Offset or reads
// from Buf.
type Cursor struct {
	Buf    []byte
	Offset int
}

// NewCursor returns a Cursor positioned at the start of buf.
func NewCursor(buf []byte) Cursor {
	return Cursor{Buf: buf}
}

// Done reports whether the cursor has consumed the whole buffer.
func (c *Cursor) Done() bool { return c.Offset >= len(c.Buf) }

// Remaining returns the unconsumed tail of the buffer.
func (c *Cursor) Remaining() []byte { return c.Buf[c.Offset:] }

// Peek returns the next byte without consuming it, and false at end of
// input.
func (c *Cursor) Peek() (byte, bool) {
	if c.Done() {
		return 0, false
	}
	return c.Buf[c.Offset], true
}

// Next consumes and returns the next byte, and false at end of input.
func (c *Cursor) Next() (byte, bool) {
	b, ok := c.Peek()
	if ok {
		c.Offset++
	}
	return b, ok
}

// Rewind moves the cursor back by one byte. It must only be called
// immediately after the cursor advanced by at least one byte (a successful
// Next, or an Advance of n >= 1).
func (c *Cursor) Rewind() {
	if c.Offset > 0 {
		c.Offset--
	}
}

// Advance consumes n bytes unconditionally; it is the caller's
// responsibility to ensure n bytes remain.
func (c *Cursor) Advance(n int) { c.Offset += n }

// SkipFast advances the cursor past every leading byte matched by p,
// running the SIMD search kernel over the remaining buffer and stopping at
// the first byte p does not match (or at end of input). It returns the
// number of bytes skipped.
//
// SkipFast is a free function, not a method, because a method on a
// concrete (non-generic) receiver type cannot itself introduce a new type
// parameter in Go.
func SkipFast[S any](c *Cursor, state *S, p Predicate[S]) int {
	rem := c.Remaining()
	stop := len(rem)
	Search(state, Not[S](p), rem, func(offset int) bool {
		stop = offset
		return false
	})
	c.Advance(stop)
	return stop
}

// SkipWhile advances the cursor while f returns true for the next byte,
// without vectorization; it is used where the stop condition itself
// carries state too fine-grained to express as a Predicate (e.g. tracking
// nesting depth one byte at a time).
func SkipWhile[S any](c *Cursor, state *S, f func(*S, byte) bool) int {
	n := 0
	for {
		b, ok := c.Peek()
		if !ok || !f(state, b) {
			break
		}
		c.Advance(1)
		n++
	}
	return n
}
