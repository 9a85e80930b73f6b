// Package syntax implements lexing and parsing of strmatch pattern text.
//
// The pattern language describes a fixed-layout byte matcher: quoted literal
// runs, single-byte wildcards (anonymous `_` or named), an `xN` repeat suffix,
// and an optional trailing bracketed rest capture that consumes everything
// remaining. The grammar, informally:
//
//	pattern       = term* [rest]
//	term          = literal | wildcard
//	literal       = (char_lit | string_lit) [repeat_suffix]
//	wildcard      = ("_" | identifier) [repeat_suffix]
//	rest          = "[" ("_" | identifier) "]"
//	repeat_suffix = "x" digit+
//
// Tokenize turns pattern text into a flat token stream; Parse turns that
// stream into a validated Pattern AST. Both are deterministic total functions
// over their input: they either succeed or report a structured error with a
// source position, and never recover silently.
package syntax

import (
	"fmt"
	"strconv"
)

// TokenKind identifies the lexical class of a Token.
type TokenKind int

const (
	// TokenLiteralChar is a single-quoted one-byte literal, e.g. 'x' or '\n'.
	TokenLiteralChar TokenKind = iota

	// TokenLiteralString is a double-quoted literal run, e.g. "abc".
	TokenLiteralString

	// TokenIdentifier is a bare name used for a named wildcard or rest capture.
	TokenIdentifier

	// TokenWildcard is the `_` marker.
	TokenWildcard

	// TokenRepeat is an `xN` repeat suffix fused to the preceding term.
	TokenRepeat

	// TokenOpenBracket is `[`.
	TokenOpenBracket

	// TokenCloseBracket is `]`.
	TokenCloseBracket
)

// String returns a human-readable name for the token kind.
func (k TokenKind) String() string {
	switch k {
	case TokenLiteralChar:
		return "char literal"
	case TokenLiteralString:
		return "string literal"
	case TokenIdentifier:
		return "identifier"
	case TokenWildcard:
		return "wildcard"
	case TokenRepeat:
		return "repeat suffix"
	case TokenOpenBracket:
		return "'['"
	case TokenCloseBracket:
		return "']'"
	default:
		return "unknown token"
	}
}

// Token is one lexical unit of pattern text.
//
// Bytes holds the decoded payload of a literal token (escapes resolved).
// Name holds the identifier text. Count holds the repeat count of a TokenRepeat.
// Pos is the byte offset of the token's first character in the source text.
type Token struct {
	Kind  TokenKind
	Bytes []byte
	Name  string
	Count int
	Pos   int
}

// String renders the token for diagnostics.
func (t Token) String() string {
	switch t.Kind {
	case TokenLiteralChar, TokenLiteralString:
		return fmt.Sprintf("%s %q", t.Kind, t.Bytes)
	case TokenIdentifier:
		return fmt.Sprintf("identifier %q", t.Name)
	case TokenRepeat:
		return "x" + strconv.Itoa(t.Count)
	default:
		return t.Kind.String()
	}
}
