package syntax

import "strconv"

// Tokenize converts pattern source text into a flat token stream.
//
// Whitespace separates tokens and is never itself a literal; to match a
// literal space, write ' ' or " ". Quoted literals accept the escapes
// \n \r \t \0 \\ \' \" and \xHH, and may carry an optional b prefix
// (b"abc", b'x') for parity with byte-literal notation.
//
// A repeat suffix `xN` binds to the term it directly abuts: after a quoted
// literal it is lexed as its own token ("ab"x2), and inside an identifier run
// a trailing xN is split off at the last x provided a non-empty head precedes
// it (countx3, _x2). A consequence is that capture names cannot end in `x`
// followed by digits.
//
// Example:
//
//	toks, err := syntax.Tokenize(`"one" _ "two"x2 [rest]`)
func Tokenize(src string) ([]Token, error) {
	var toks []Token

	// afterLiteral reports whether the previous token was a quoted literal
	// with no separator consumed since; only then is a bare `xN` run a
	// repeat suffix rather than an identifier.
	afterLiteral := false

	pos := 0
	for pos < len(src) {
		c := src[pos]
		switch {
		case isSpace(c):
			pos++
			afterLiteral = false

		case c == '[':
			toks = append(toks, Token{Kind: TokenOpenBracket, Pos: pos})
			pos++
			afterLiteral = false

		case c == ']':
			toks = append(toks, Token{Kind: TokenCloseBracket, Pos: pos})
			pos++
			afterLiteral = false

		case c == '\'' || c == '"':
			tok, next, err := lexQuoted(src, pos, pos)
			if err != nil {
				return nil, err
			}
			toks = append(toks, tok)
			pos = next
			afterLiteral = true

		case c == 'b' && pos+1 < len(src) && (src[pos+1] == '\'' || src[pos+1] == '"'):
			tok, next, err := lexQuoted(src, pos+1, pos)
			if err != nil {
				return nil, err
			}
			toks = append(toks, tok)
			pos = next
			afterLiteral = true

		case isIdentStart(c):
			runToks, next, err := lexIdentRun(src, pos, afterLiteral)
			if err != nil {
				return nil, err
			}
			toks = append(toks, runToks...)
			pos = next
			afterLiteral = false

		default:
			return nil, &LexError{Kind: InvalidChar, Pos: pos}
		}
	}

	return toks, nil
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentChar(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// lexQuoted lexes a single- or double-quoted literal starting at the quote
// character src[pos]. tokPos is the token's reported position (the b of a
// byte-literal prefix, otherwise the quote itself). Returns the token and the
// offset just past the closing quote.
func lexQuoted(src string, pos, tokPos int) (Token, int, error) {
	quote := src[pos]
	pos++

	var buf []byte
	for {
		if pos >= len(src) {
			return Token{}, 0, &LexError{Kind: UnterminatedLiteral, Pos: tokPos}
		}
		c := src[pos]
		if c == quote {
			pos++
			break
		}
		if c == '\\' {
			b, next, err := decodeEscape(src, pos)
			if err != nil {
				return Token{}, 0, err
			}
			buf = append(buf, b)
			pos = next
			continue
		}
		buf = append(buf, c)
		pos++
	}

	if quote == '\'' {
		// Char literals are exactly one byte after escape resolution.
		if len(buf) != 1 {
			return Token{}, 0, &LexError{Kind: BadCharLiteral, Pos: tokPos}
		}
		return Token{Kind: TokenLiteralChar, Bytes: buf, Pos: tokPos}, pos, nil
	}
	return Token{Kind: TokenLiteralString, Bytes: buf, Pos: tokPos}, pos, nil
}

// decodeEscape decodes the backslash sequence starting at src[pos] == '\\'.
// Returns the decoded byte and the offset just past the sequence.
func decodeEscape(src string, pos int) (byte, int, error) {
	if pos+1 >= len(src) {
		return 0, 0, &LexError{Kind: UnterminatedLiteral, Pos: pos}
	}
	switch src[pos+1] {
	case 'n':
		return '\n', pos + 2, nil
	case 'r':
		return '\r', pos + 2, nil
	case 't':
		return '\t', pos + 2, nil
	case '0':
		return 0, pos + 2, nil
	case '\\':
		return '\\', pos + 2, nil
	case '\'':
		return '\'', pos + 2, nil
	case '"':
		return '"', pos + 2, nil
	case 'x':
		if pos+3 >= len(src) {
			return 0, 0, &LexError{Kind: InvalidEscape, Pos: pos}
		}
		hi, ok1 := hexVal(src[pos+2])
		lo, ok2 := hexVal(src[pos+3])
		if !ok1 || !ok2 {
			return 0, 0, &LexError{Kind: InvalidEscape, Pos: pos}
		}
		return hi<<4 | lo, pos + 4, nil
	default:
		return 0, 0, &LexError{Kind: InvalidEscape, Pos: pos}
	}
}

func hexVal(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}

// lexIdentRun lexes a maximal identifier run starting at src[pos] and resolves
// the repeat-suffix ambiguity. It emits one or two tokens:
//
//	"abc"x2   (afterLiteral) → [Repeat 2]
//	_         → [Wildcard]
//	name      → [Identifier name]
//	_x2       → [Wildcard, Repeat 2]
//	namex2    → [Identifier name, Repeat 2]
//	x2        (not after a literal) → [Identifier "x2"]
func lexIdentRun(src string, pos int, afterLiteral bool) ([]Token, int, error) {
	start := pos
	for pos < len(src) && isIdentChar(src[pos]) {
		pos++
	}
	run := src[start:pos]

	if afterLiteral {
		if count, isSuffix, err := repeatCount(run, start); isSuffix {
			if err != nil {
				return nil, 0, err
			}
			return []Token{{Kind: TokenRepeat, Count: count, Pos: start}}, pos, nil
		}
	}

	head, suffixAt := splitRepeat(run)
	if suffixAt >= 0 {
		count, _, err := repeatCount(run[suffixAt:], start+suffixAt)
		if err != nil {
			return nil, 0, err
		}
		var lead Token
		if head == "_" {
			lead = Token{Kind: TokenWildcard, Pos: start}
		} else {
			lead = Token{Kind: TokenIdentifier, Name: head, Pos: start}
		}
		return []Token{lead, {Kind: TokenRepeat, Count: count, Pos: start + suffixAt}}, pos, nil
	}

	if run == "_" {
		return []Token{{Kind: TokenWildcard, Pos: start}}, pos, nil
	}
	return []Token{{Kind: TokenIdentifier, Name: run, Pos: start}}, pos, nil
}

// repeatCount parses a run of the exact form x<digits>. isSuffix reports
// whether the run has that shape at all; err reports a count that does not
// fit in an int.
func repeatCount(run string, pos int) (count int, isSuffix bool, err error) {
	if len(run) < 2 || run[0] != 'x' {
		return 0, false, nil
	}
	for i := 1; i < len(run); i++ {
		if !isDigit(run[i]) {
			return 0, false, nil
		}
	}
	n, perr := strconv.Atoi(run[1:])
	if perr != nil {
		return 0, true, &LexError{Kind: BadRepeatCount, Pos: pos}
	}
	return n, true, nil
}

// splitRepeat finds a trailing x<digits> suffix inside an identifier run with
// a non-empty head before it. Returns the head and the index of the x, or
// (-1) when the run has no such split.
func splitRepeat(run string) (head string, suffixAt int) {
	i := len(run)
	for i > 0 && isDigit(run[i-1]) {
		i--
	}
	// Need at least one digit, an x before the digits, and a non-empty head.
	if i == len(run) || i < 2 || run[i-1] != 'x' {
		return "", -1
	}
	return run[:i-1], i - 1
}
