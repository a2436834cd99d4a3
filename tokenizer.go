package jscan

// whitespace matches the four JSON whitespace bytes: space, tab, newline,
// carriage return.
var whitespace = Eq[struct{}](' ').OrEq('\t').OrEq('\n').OrEq('\r')

// Tokenizer turns a byte buffer into a stream of Tokens. It is permissive:
// it does not enforce RFC 8259 structure (object/array nesting, key
// ordering, trailing commas) — it only recognizes the shape of the next
// value and hands back a slice into the input. Callers that need a
// conforming parse must layer that on top.
//
// A Tokenizer holds no heap state beyond its Cursor; the Bytes of every
// token other than End alias the buffer passed to New, and End's Bytes is
// empty.
type Tokenizer struct {
	c Cursor
}

// New returns a Tokenizer over buf.
func New(buf []byte) Tokenizer {
	return Tokenizer{c: NewCursor(buf)}
}

// Offset returns the tokenizer's current byte offset into its buffer.
func (t *Tokenizer) Offset() int { return t.c.Offset }

// Step returns the next token. Once it returns a Kind of End, every
// subsequent call also returns End, nil. Returning an error leaves the
// tokenizer's position undefined; callers must not call Step again.
func (t *Tokenizer) Step() (Token, error) {
	t.skipWhitespace()

	b, ok := t.c.Peek()
	if !ok {
		return Token{Kind: End}, nil
	}

	switch {
	case b == '{':
		t.c.Advance(1)
		return Token{Kind: ObjectStart, Bytes: t.c.Buf[t.c.Offset-1 : t.c.Offset]}, nil
	case b == '}':
		t.c.Advance(1)
		return Token{Kind: ObjectEnd, Bytes: t.c.Buf[t.c.Offset-1 : t.c.Offset]}, nil
	case b == '[':
		t.c.Advance(1)
		return Token{Kind: ArrayStart, Bytes: t.c.Buf[t.c.Offset-1 : t.c.Offset]}, nil
	case b == ']':
		t.c.Advance(1)
		return Token{Kind: ArrayEnd, Bytes: t.c.Buf[t.c.Offset-1 : t.c.Offset]}, nil
	case b == ':':
		t.c.Advance(1)
		return Token{Kind: ObjectKeyDelim, Bytes: t.c.Buf[t.c.Offset-1 : t.c.Offset]}, nil
	case b == ',':
		t.c.Advance(1)
		return Token{Kind: ListDelim, Bytes: t.c.Buf[t.c.Offset-1 : t.c.Offset]}, nil
	case b == '"':
		return t.parseString()
	case b == '-' || (b >= '0' && b <= '9'):
		return t.parseNumber()
	case b == 't' || b == 'T':
		return t.parseLiteral("true", True, UnexpectedCharInTrueLiteral)
	case b == 'f' || b == 'F':
		return t.parseLiteral("false", False, UnexpectedCharInFalseLiteral)
	case b == 'n' || b == 'N':
		return t.parseLiteral("null", Null, UnexpectedCharInNullLiteral)
	default:
		return Token{}, &Error{Kind: UnexpectedBeginChar, Offset: t.c.Offset}
	}
}

func (t *Tokenizer) skipWhitespace() {
	SkipFast(&t.c, new(struct{}), whitespace.Predicate)
}

// parseLiteral matches lit case-insensitively (the permissive dispatch table
// in spec.md §4.D accepts "TRUE"/"tRuE" and so on), consuming exactly
// len(lit) bytes starting at the tokenizer's current offset.
func (t *Tokenizer) parseLiteral(lit string, kind Kind, errKind ErrorKind) (Token, error) {
	start := t.c.Offset
	for i := 0; i < len(lit); i++ {
		b, ok := t.c.Next()
		if !ok {
			return Token{}, &Error{Kind: UnexpectedEndOfInput, Offset: t.c.Offset}
		}
		if lowerASCII(b) != lit[i] {
			return Token{}, &Error{Kind: errKind, Offset: t.c.Offset - 1}
		}
	}
	return Token{Kind: kind, Bytes: t.c.Buf[start:t.c.Offset]}, nil
}

// parseString validates and slices a JSON string literal, including its
// surrounding quotes. It reports EscString whenever the string contains at
// least one backslash escape, String otherwise, so callers can skip
// unescaping entirely for the common unescaped case.
func (t *Tokenizer) parseString() (Token, error) {
	start := t.c.Offset
	t.c.Advance(1) // opening quote

	escaped := false
	for {
		b, ok := t.c.Next()
		if !ok {
			return Token{}, &Error{Kind: UnexpectedEndOfInput, Offset: t.c.Offset}
		}
		switch b {
		case '"':
			kind := String
			if escaped {
				kind = EscString
			}
			return Token{Kind: kind, Bytes: t.c.Buf[start:t.c.Offset]}, nil
		case '\\':
			escaped = true
			esc, ok := t.c.Next()
			if !ok {
				return Token{}, &Error{Kind: UnexpectedEndOfInput, Offset: t.c.Offset}
			}
			switch esc {
			case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
				// single-byte escape, nothing more to consume
			case 'u':
				for i := 0; i < 4; i++ {
					h, ok := t.c.Next()
					if !ok {
						return Token{}, &Error{Kind: UnexpectedEndOfInput, Offset: t.c.Offset}
					}
					if !isHex(h) {
						return Token{}, &Error{Kind: UnexpectedEscapeCode, Offset: t.c.Offset - 1}
					}
				}
			default:
				return Token{}, &Error{Kind: UnexpectedEscapeCode, Offset: t.c.Offset - 1}
			}
		}
	}
}

// lowerASCII lowercases a single ASCII letter; non-letters pass through
// unchanged, which is fine since parseLiteral only ever compares it against
// a lowercase literal byte.
func lowerASCII(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

func isHex(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

// numState is the number sub-machine's state, named after the grammar
// position it represents rather than a generic s0..sN scheme.
type numState int

const (
	numNeg numState = iota
	numZero
	numOne
	numDot
	numDot0
	numExp
	numExpSign
	numExp0
)

// parseNumber recognizes JSON's number grammar and classifies the result as
// Integer (no '.' or exponent) or Number. It preserves a specific historical
// quirk: a leading zero followed immediately by another digit (e.g. "0123")
// is not an error — the zero is accepted as a complete Integer and the
// cursor is left on the following digit, exactly as the reference scanner
// this was ported from does.
func (t *Tokenizer) parseNumber() (Token, error) {
	start := t.c.Offset
	state := numNeg
	isNumber := false

	if b, _ := t.c.Peek(); b == '-' {
		t.c.Advance(1)
	}

	for {
		b, ok := t.c.Next()
		if !ok {
			b, ok = 0, false
		}

		switch state {
		case numNeg:
			if !ok {
				return Token{}, &Error{Kind: UnexpectedCharInNumericLiteral, Offset: t.c.Offset}
			}
			switch {
			case b == '0':
				state = numZero
			case b >= '1' && b <= '9':
				state = numOne
			default:
				return Token{}, &Error{Kind: UnexpectedCharInNumericLiteral, Offset: t.c.Offset - 1}
			}
		case numZero:
			switch {
			case !ok:
				return t.finishNumber(start, isNumber), nil
			case b == '.':
				state = numDot
				isNumber = true
			case b == 'e' || b == 'E':
				state = numExp
				isNumber = true
			default:
				t.c.Rewind()
				return t.finishNumber(start, isNumber), nil
			}
		case numOne:
			switch {
			case !ok:
				return t.finishNumber(start, isNumber), nil
			case b >= '0' && b <= '9':
				// stay in numOne
			case b == '.':
				state = numDot
				isNumber = true
			case b == 'e' || b == 'E':
				state = numExp
				isNumber = true
			default:
				t.c.Rewind()
				return t.finishNumber(start, isNumber), nil
			}
		case numDot:
			if !ok || b < '0' || b > '9' {
				return Token{}, &Error{Kind: UnexpectedCharInNumericLiteral, Offset: t.c.Offset}
			}
			state = numDot0
		case numDot0:
			switch {
			case !ok:
				return t.finishNumber(start, isNumber), nil
			case b >= '0' && b <= '9':
				// stay
			case b == 'e' || b == 'E':
				state = numExp
				isNumber = true
			default:
				t.c.Rewind()
				return t.finishNumber(start, isNumber), nil
			}
		case numExp:
			if !ok {
				return Token{}, &Error{Kind: UnexpectedCharInExponentLiteral, Offset: t.c.Offset}
			}
			switch {
			case b == '+' || b == '-':
				state = numExpSign
			case b >= '0' && b <= '9':
				state = numExp0
			default:
				return Token{}, &Error{Kind: UnexpectedCharInExponentLiteral, Offset: t.c.Offset - 1}
			}
		case numExpSign:
			if !ok || b < '0' || b > '9' {
				return Token{}, &Error{Kind: UnexpectedCharInExponentLiteral, Offset: t.c.Offset}
			}
			state = numExp0
		case numExp0:
			switch {
			case !ok:
				return t.finishNumber(start, isNumber), nil
			case b >= '0' && b <= '9':
				// stay
			default:
				t.c.Rewind()
				return t.finishNumber(start, isNumber), nil
			}
		}
	}
}

func (t *Tokenizer) finishNumber(start int, isNumber bool) Token {
	kind := Integer
	if isNumber {
		kind = Number
	}
	return Token{Kind: kind, Bytes: t.c.Buf[start:t.c.Offset]}
}
