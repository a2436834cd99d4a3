package jscan

// structuralByte classifies the five bytes that affect how deep SkipValue
// needs to descend: the four bracket bytes and the quote that opens a
// string. A backslash only matters inside a string, and strings are handed
// to skipString as a whole, so it is not part of this set. Scanning for
// this fixed set by value (rather than by boolean match) is why the
// container walk below branches on the byte Search actually reports
// instead of composing Exec/DualExec: none of the combinators hand back
// which of five alternatives fired, only whether any did.
var structuralByte = Eq[struct{}]('{').OrEq('}').OrEq('[').OrEq(']').OrEq('"')

// SkipValue advances past exactly one JSON value starting at the
// tokenizer's current position — an object, array, string, number, or
// literal — without allocating a representation of it. It returns the byte
// offset range [start, end) the value occupied in the buffer.
//
// SkipValue does not validate the value as strictly as Step does: strings
// are scanned for their closing quote without checking escape codes, and
// numbers are scanned for their extent without validating exponent syntax.
// Malformed input can make SkipValue consume more or less than a strict
// parse would; it never reads past the end of the buffer.
func (t *Tokenizer) SkipValue() (start, end int, err error) {
	t.skipWhitespace()
	start = t.c.Offset

	b, ok := t.c.Peek()
	if !ok {
		return start, start, &Error{Kind: UnexpectedEndOfInput, Offset: t.c.Offset}
	}

	switch {
	case b == '{' || b == '[':
		if err := t.skipContainer(); err != nil {
			return start, t.c.Offset, err
		}
	case b == '"':
		if err := t.skipString(); err != nil {
			return start, t.c.Offset, err
		}
	case b == '-' || (b >= '0' && b <= '9'):
		t.skipNumber()
	case b == 't' || b == 'T':
		t.c.Advance(1)
		if err := t.skipLiteral(3); err != nil {
			return start, t.c.Offset, err
		}
	case b == 'f' || b == 'F':
		t.c.Advance(1)
		if err := t.skipLiteral(4); err != nil {
			return start, t.c.Offset, err
		}
	case b == 'n' || b == 'N':
		t.c.Advance(1)
		if err := t.skipLiteral(3); err != nil {
			return start, t.c.Offset, err
		}
	default:
		return start, start, &Error{Kind: UnexpectedBeginChar, Offset: t.c.Offset}
	}

	return start, t.c.Offset, nil
}

// skipContainer walks an object or array to its matching close bracket by
// tracking nesting depth, using the SIMD search kernel to jump straight to
// the next structurally significant byte and branching on its identity.
// Quoted strings are skipped in full (including any brackets or quotes they
// contain) whenever a '"' is reached, so depth only ever tracks bracket
// bytes outside of strings.
func (t *Tokenizer) skipContainer() error {
	depth := 0
	for {
		found := false
		var hit byte
		Search(new(struct{}), structuralByte.Predicate, t.c.Remaining(), func(offset int) bool {
			hit = t.c.Remaining()[offset]
			t.c.Advance(offset + 1)
			found = true
			return false
		})
		if !found {
			t.c.Advance(len(t.c.Remaining()))
			return &Error{Kind: UnexpectedEndOfInput, Offset: t.c.Offset}
		}

		switch hit {
		case '{', '[':
			depth++
		case '}', ']':
			depth--
			if depth == 0 {
				return nil
			}
		case '"':
			t.c.Rewind()
			if err := t.skipString(); err != nil {
				return err
			}
		}
	}
}

// quoteOrBackslash is the stateless predicate for skipString's first pass:
// find the first byte that could either close the string or introduce an
// escape. It carries no state, so — unlike the escape tracking below —
// it's safe to run through the SIMD kernel's chunk-skipping fast path.
var quoteOrBackslash = Eq[struct{}]('"').OrEq('\\')

// skipString scans from an opening quote to the matching close, honoring
// backslash-escapes but not validating them — this is the non-validating
// counterpart to Step's parseString. The common escape-free case is a
// single SIMD-accelerated bulk scan for the closing quote or a backslash;
// only once a backslash is actually seen does it fall back to a
// byte-at-a-time loop tracking whether the previous byte was an unconsumed
// escape — the same two-phase structure skip_string uses in the reference
// scanner, and for the same reason: that escape bit must decay on every
// byte it sees, including bytes that are neither a quote nor a backslash,
// and the SIMD predicate kernel's documented chunk-skip optimization
// (spec.md §4.B: DualExec may skip a chunk's callback entirely when neither
// input matches anywhere in it) would let a pending escape go stale across
// an all-plain chunk. Routing the second phase through a plain Go loop
// instead of DualExecOf sidesteps that case entirely, matching how the
// source keeps this particular scan scalar even in its SIMD-oriented
// variant.
func (t *Tokenizer) skipString() error {
	t.c.Advance(1) // opening quote

	first := -1
	Search(new(struct{}), quoteOrBackslash.Predicate, t.c.Remaining(), func(offset int) bool {
		first = offset
		return false
	})
	if first < 0 {
		t.c.Advance(len(t.c.Remaining()))
		return &Error{Kind: UnexpectedEndOfInput, Offset: t.c.Offset}
	}
	hit := t.c.Remaining()[first]
	t.c.Advance(first + 1)
	if hit == '"' {
		return nil
	}

	// hit == '\\': the very next byte is escaped unconditionally, whatever
	// it is; escaped then decays back to false until another backslash.
	escaped := true
	for {
		b, ok := t.c.Next()
		if !ok {
			return &Error{Kind: UnexpectedEndOfInput, Offset: t.c.Offset}
		}
		if escaped {
			escaped = false
			continue
		}
		switch b {
		case '"':
			return nil
		case '\\':
			escaped = true
		}
	}
}

// skipNumber advances past an optional leading '-' and then every following
// byte that is a digit, '.', 'e', 'E', '+' or '-'. Unlike parseNumber it
// checks no grammar and does no classification (so "0123" is skipped as one
// run), since SkipValue's callers only need the byte extent.
func (t *Tokenizer) skipNumber() {
	if b, ok := t.c.Peek(); ok && b == '-' {
		t.c.Advance(1)
	}
	SkipWhile(&t.c, new(struct{}), func(_ *struct{}, b byte) bool {
		return (b >= '0' && b <= '9') || b == '.' || b == 'e' || b == 'E' || b == '+' || b == '-'
	})
}

// skipLiteral blindly advances n bytes — the remainder of a "true"/"false"/
// "null" literal after its leading letter has already been consumed by the
// caller — without checking their content, mirroring skip_true/skip_false/
// skip_null's read_multi::<N> in the source: SkipValue's contract is
// positional, not semantic, so a malformed literal body is not this layer's
// concern.
func (t *Tokenizer) skipLiteral(n int) error {
	if len(t.c.Remaining()) < n {
		t.c.Advance(len(t.c.Remaining()))
		return &Error{Kind: UnexpectedEndOfInput, Offset: t.c.Offset}
	}
	t.c.Advance(n)
	return nil
}
