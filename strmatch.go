// Package strmatch compiles compact pattern descriptions into deterministic
// matchers over fixed byte sequences, returning named captures on success.
//
// The pattern language covers exact literal runs, single-byte wildcards
// (anonymous or named), fixed-count repetition, and one optional trailing
// rest capture — enough to validate and destructure protocol headers,
// fixed-format log lines, and simple tokenized input without a full regex
// engine. There is no alternation and no unbounded quantifier, so matching
// is a single linear pass with no backtracking and no allocation beyond the
// returned captures, which borrow from the input.
//
// Basic usage:
//
//	// Compile a pattern (once)
//	p, err := strmatch.Compile(`"one" ' ' "two"x2 space "three"x2 [rest]`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Match (safe to call from multiple goroutines)
//	caps, ok := p.Match([]byte("one twotwo threethreethree"))
//	if ok {
//	    space, _ := caps.Byte("space")  // ' '
//	    rest, _ := caps.Slice("rest")   // "three"
//	    _ = space
//	    _ = rest
//	}
//
// Pattern syntax:
//   - "abc", 'x' — literal runs and single-byte literals, with the escapes
//     \n \r \t \0 \\ \' \" \xHH; b"abc" and b'x' are accepted synonyms
//   - _ — discard one byte; name — capture one byte
//   - "abc"x3, _x4, namex4 — repeat a literal or wildcard a fixed count
//   - [rest], [_] — capture or discard everything remaining (final term only)
//   - whitespace separates terms and never matches itself
//
// A failed match is an expected outcome, not an error: Match returns ok ==
// false and callers fall through to the next candidate pattern. For ordered
// multi-pattern dispatch see the dispatch subpackage.
package strmatch

import (
	"fmt"

	"github.com/coregx/strmatch/engine"
	"github.com/coregx/strmatch/syntax"
)

// Pattern is a compiled pattern description.
//
// A Pattern is immutable after Compile and safe to share across any number
// of concurrent Match calls without locking; per-match state is call-local.
// Compile once (typically at startup) and reuse.
type Pattern struct {
	engine *engine.Engine
	source string
}

// CompileError wraps a lex or parse failure with the pattern text that
// produced it. Unwrap exposes the underlying *syntax.LexError or
// *syntax.ParseError carrying the defect kind and source offset.
type CompileError struct {
	Pattern string
	Err     error
}

// Error implements the error interface.
func (e *CompileError) Error() string {
	return fmt.Sprintf("strmatch: compiling %q: %v", e.Pattern, e.Err)
}

// Unwrap returns the underlying error.
func (e *CompileError) Unwrap() error {
	return e.Err
}

// Compile compiles pattern source text.
//
// Lexing and parsing reject structural defects (unterminated literals,
// misplaced rest captures, duplicate binding names, dangling brackets) with
// a *CompileError; lowering the validated pattern never fails. The empty
// pattern is valid and matches only zero-length input.
//
// Example:
//
//	p, err := strmatch.Compile(`"v=" major '.' minor [rest]`)
func Compile(source string) (*Pattern, error) {
	toks, err := syntax.Tokenize(source)
	if err != nil {
		return nil, &CompileError{Pattern: source, Err: err}
	}
	ast, err := syntax.Parse(toks)
	if err != nil {
		return nil, &CompileError{Pattern: source, Err: err}
	}
	return &Pattern{
		engine: engine.Compile(ast),
		source: source,
	}, nil
}

// MustCompile compiles pattern source text and panics if it fails.
// Useful for patterns known to be valid at program start.
//
// Example:
//
//	var headerPat = strmatch.MustCompile(`"HTTP/" major '.' minor`)
func MustCompile(source string) *Pattern {
	p, err := Compile(source)
	if err != nil {
		panic("strmatch: Compile(`" + source + "`): " + err.Error())
	}
	return p
}

// Match runs the pattern against input.
//
// ok reports whether the input matched; on success caps holds the bound
// captures, borrowing subslices of input. The caller must keep input alive
// and unmodified while the captures are in use. Patterns with no bound
// names return an empty (but non-nil) Captures on success.
func (p *Pattern) Match(input []byte) (caps *engine.Captures, ok bool) {
	return p.engine.Run(input)
}

// MatchString runs the pattern against a string.
func (p *Pattern) MatchString(input string) (caps *engine.Captures, ok bool) {
	return p.engine.Run([]byte(input))
}

// IsMatch reports whether input matches without materializing captures.
func (p *Pattern) IsMatch(input []byte) bool {
	return p.engine.IsMatch(input)
}

// IsMatchString reports whether a string matches without materializing
// captures.
func (p *Pattern) IsMatchString(input string) bool {
	return p.engine.IsMatch([]byte(input))
}

// String returns the source text used to compile the pattern.
func (p *Pattern) String() string {
	return p.source
}

// MinLen returns the number of input bytes consumed by all non-rest terms:
// the exact required input length when the pattern has no rest term, the
// minimum otherwise.
func (p *Pattern) MinLen() int {
	return p.engine.PrefixLen()
}

// HasRest reports whether the pattern ends in a rest term and therefore
// accepts any input length >= MinLen.
func (p *Pattern) HasRest() bool {
	return p.engine.HasRest()
}

// LiteralPrefix returns the literal bytes every match must start with, or
// nil when the pattern does not begin with a literal term.
func (p *Pattern) LiteralPrefix() []byte {
	return p.engine.LiteralPrefix()
}

// CaptureNames returns the bound capture names in declaration order.
func (p *Pattern) CaptureNames() []string {
	return p.engine.CaptureNames()
}

// CaptureKind returns the statically known kind (byte or slice) of a named
// capture; ok is false when the pattern binds no such name.
func (p *Pattern) CaptureKind(name string) (kind engine.CaptureKind, ok bool) {
	return p.engine.CaptureKind(name)
}

// ByteAccessor resolves a single-byte capture name once so that subsequent
// matches can be queried with no name lookup or kind check. Fails with
// engine.ErrUnknownCapture or engine.ErrWrongCaptureKind, which — since
// capture kinds are fixed at compile time — surfaces programmer errors at
// pattern scope instead of per access.
//
// Example:
//
//	p := strmatch.MustCompile(`"v" major '.' minor`)
//	getMajor, _ := p.ByteAccessor("major")
//	if caps, ok := p.Match(input); ok {
//	    version := getMajor.Get(caps)
//	    _ = version
//	}
func (p *Pattern) ByteAccessor(name string) (engine.ByteAccessor, error) {
	return p.engine.ByteAccessor(name)
}

// SliceAccessor resolves a slice capture name once, at pattern scope.
// The counterpart of ByteAccessor for slice-kind captures.
func (p *Pattern) SliceAccessor(name string) (engine.SliceAccessor, error) {
	return p.engine.SliceAccessor(name)
}
