// Package engine lowers a validated syntax.Pattern into an executable
// fixed-layout matcher.
//
// Because the pattern grammar has no alternation and no unbounded
// quantifiers, every non-rest term sits at a byte offset known at compile
// time. Lowering exploits that: adjacent literal runs are fused into maximal
// contiguous segments, capture positions become static (offset, length)
// slots, and the required input length collapses to a single integer. The
// resulting matcher is one length check, a short loop of window compares,
// and a slot fill, with no backtracking and no per-byte dispatch.
//
// An Engine is immutable after Compile and safe for concurrent use from any
// number of goroutines; all per-match state lives in the call frame and the
// returned Captures.
package engine

import (
	"bytes"

	"github.com/coregx/strmatch/internal/conv"
	"github.com/coregx/strmatch/syntax"
)

// CaptureKind is the statically known shape of a named capture.
type CaptureKind int

const (
	// CaptureByte is a single-byte capture: a bound wildcard with repeat 1.
	CaptureByte CaptureKind = iota

	// CaptureSlice is a variable- or multi-byte capture: a bound wildcard
	// with repeat != 1, or a bound rest term.
	CaptureSlice
)

// String returns a human-readable name for the capture kind.
func (k CaptureKind) String() string {
	switch k {
	case CaptureByte:
		return "byte"
	case CaptureSlice:
		return "slice"
	default:
		return "unknown kind"
	}
}

// segment is a maximal contiguous run of expected literal bytes at a fixed
// input offset. Replication and adjacent-literal fusion are resolved at
// compile time, so matching a segment is one bytes.Equal over a window.
type segment struct {
	offset uint32
	bytes  []byte
}

// slot is one named capture at a statically known position. A rest slot has
// rest == true; its offset is the fixed prefix length and its length is
// input-dependent.
type slot struct {
	name   string
	kind   CaptureKind
	offset uint32
	length uint32
	rest   bool
}

// Engine is the compiled, immutable form of a pattern.
//
// Length discipline: an input can match only if len(input) == PrefixLen()
// exactly (no rest term) or len(input) >= PrefixLen() (rest term present).
type Engine struct {
	segments  []segment
	slots     []slot
	prefixLen int
	hasRest   bool
}

// Compile lowers a validated pattern into an Engine. It is total: every
// Pattern produced by syntax.Parse compiles; all rejection happened at parse
// time and lowering is pure arithmetic.
func Compile(p *syntax.Pattern) *Engine {
	e := &Engine{}

	offset := 0
	var lit []byte // pending literal segment, grown across adjacent terms
	litStart := 0

	flush := func() {
		if len(lit) > 0 {
			e.segments = append(e.segments, segment{
				offset: conv.IntToUint32(litStart),
				bytes:  lit,
			})
		}
		lit = nil
	}

	for _, t := range p.Terms {
		switch t.Kind {
		case syntax.TermLiteral:
			width := conv.MulInt(len(t.Bytes), t.Repeat)
			if width == 0 {
				break
			}
			if len(lit) == 0 {
				litStart = offset
			}
			lit = append(lit, bytes.Repeat(t.Bytes, t.Repeat)...)
			offset += width

		case syntax.TermWildcard:
			flush()
			if t.Binding != "" {
				kind := CaptureSlice
				if t.Repeat == 1 {
					kind = CaptureByte
				}
				e.slots = append(e.slots, slot{
					name:   t.Binding,
					kind:   kind,
					offset: conv.IntToUint32(offset),
					length: conv.IntToUint32(t.Repeat),
				})
			}
			offset += t.Repeat

		case syntax.TermRest:
			flush()
			e.hasRest = true
			if t.Binding != "" {
				e.slots = append(e.slots, slot{
					name:   t.Binding,
					kind:   CaptureSlice,
					offset: conv.IntToUint32(offset),
					rest:   true,
				})
			}
		}
	}
	flush()

	e.prefixLen = offset
	return e
}

// PrefixLen returns the number of input bytes consumed by all non-rest
// terms: the exact required input length when no rest term exists, the
// minimum otherwise.
func (e *Engine) PrefixLen() int {
	return e.prefixLen
}

// HasRest reports whether the pattern ends in a rest term.
func (e *Engine) HasRest() bool {
	return e.hasRest
}

// LiteralPrefix returns the literal bytes every match must start with, or
// nil when the pattern does not begin with a literal term. Dispatch sets use
// this to prefilter candidate arms.
func (e *Engine) LiteralPrefix() []byte {
	if len(e.segments) == 0 || e.segments[0].offset != 0 {
		return nil
	}
	return e.segments[0].bytes
}

// CaptureNames returns the bound capture names in declaration order.
// The returned slice is freshly allocated.
func (e *Engine) CaptureNames() []string {
	names := make([]string, len(e.slots))
	for i, s := range e.slots {
		names[i] = s.name
	}
	return names
}

// CaptureKind returns the statically known kind of a named capture.
// ok is false when the pattern binds no such name.
func (e *Engine) CaptureKind(name string) (kind CaptureKind, ok bool) {
	for _, s := range e.slots {
		if s.name == name {
			return s.kind, true
		}
	}
	return 0, false
}

func (e *Engine) slotIndex(name string) int {
	for i, s := range e.slots {
		if s.name == name {
			return i
		}
	}
	return -1
}
