package syntax

import "fmt"

// LexErrorKind enumerates the structural defects Tokenize can report.
type LexErrorKind int

const (
	// UnterminatedLiteral is a quote with no matching closing quote.
	UnterminatedLiteral LexErrorKind = iota

	// InvalidEscape is a backslash sequence the lexer does not recognize.
	InvalidEscape

	// BadCharLiteral is a terminated single-quoted literal whose content is
	// not exactly one byte after escape resolution, e.g. '' or 'ab'.
	BadCharLiteral

	// BadRepeatCount is a repeat suffix whose digits do not fit in an int.
	BadRepeatCount

	// InvalidChar is a character that cannot start any token.
	InvalidChar
)

// String returns a human-readable name for the lex error kind.
func (k LexErrorKind) String() string {
	switch k {
	case UnterminatedLiteral:
		return "unterminated literal"
	case InvalidEscape:
		return "invalid escape"
	case BadCharLiteral:
		return "char literal must be one byte"
	case BadRepeatCount:
		return "bad repeat count"
	case InvalidChar:
		return "invalid character"
	default:
		return "unknown lex error"
	}
}

// LexError reports a structural defect in pattern text found during lexing.
// Pos is the byte offset of the offending character in the source.
type LexError struct {
	Kind LexErrorKind
	Pos  int
}

// Error implements the error interface.
func (e *LexError) Error() string {
	return fmt.Sprintf("lex error at offset %d: %s", e.Pos, e.Kind)
}

// ParseErrorKind enumerates the structural defects Parse can report.
type ParseErrorKind int

const (
	// UnexpectedToken is a token that cannot start or continue a term.
	UnexpectedToken ParseErrorKind = iota

	// DuplicateBinding is a capture name bound more than once.
	DuplicateBinding

	// RestNotLast is a rest term followed by further terms.
	RestNotLast

	// MultipleRest is a second rest term in one pattern.
	MultipleRest

	// BracketMismatch is a bracket group with anything other than a single
	// `_` or identifier between `[` and `]`, or a dangling bracket.
	BracketMismatch
)

// String returns a human-readable name for the parse error kind.
func (k ParseErrorKind) String() string {
	switch k {
	case UnexpectedToken:
		return "unexpected token"
	case DuplicateBinding:
		return "duplicate binding"
	case RestNotLast:
		return "rest capture not last"
	case MultipleRest:
		return "multiple rest captures"
	case BracketMismatch:
		return "bracket mismatch"
	default:
		return "unknown parse error"
	}
}

// ParseError reports a structural defect in the token stream found during
// parsing. Pos is the byte offset of the offending token in the source.
type ParseError struct {
	Kind ParseErrorKind
	Pos  int
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at offset %d: %s", e.Pos, e.Kind)
}
