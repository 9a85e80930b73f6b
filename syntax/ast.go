package syntax

import (
	"fmt"
	"strings"
)

// TermKind identifies the variant of a Term.
type TermKind int

const (
	// TermLiteral is an exact byte run, optionally replicated Repeat times.
	TermLiteral TermKind = iota

	// TermWildcard matches exactly Repeat arbitrary bytes, optionally bound.
	TermWildcard

	// TermRest matches all remaining input bytes, optionally bound. At most
	// one per pattern, always last.
	TermRest
)

// Term is one unit of a Pattern.
//
// For TermLiteral, Bytes holds the un-replicated literal bytes and Repeat the
// replication count (default 1). For TermWildcard, Repeat is the number of
// bytes consumed and Binding the capture name ("" when unbound). For TermRest,
// only Binding is meaningful.
type Term struct {
	Kind    TermKind
	Bytes   []byte
	Binding string
	Repeat  int
	Pos     int
}

// Width returns the number of input bytes the term consumes, or -1 for a
// rest term whose width depends on the input.
func (t Term) Width() int {
	switch t.Kind {
	case TermLiteral:
		return len(t.Bytes) * t.Repeat
	case TermWildcard:
		return t.Repeat
	default:
		return -1
	}
}

// String renders the term in pattern-source notation.
func (t Term) String() string {
	switch t.Kind {
	case TermLiteral:
		if t.Repeat != 1 {
			return fmt.Sprintf("%qx%d", t.Bytes, t.Repeat)
		}
		return fmt.Sprintf("%q", t.Bytes)
	case TermWildcard:
		name := t.Binding
		if name == "" {
			name = "_"
		}
		if t.Repeat != 1 {
			return fmt.Sprintf("%sx%d", name, t.Repeat)
		}
		return name
	case TermRest:
		if t.Binding == "" {
			return "[_]"
		}
		return "[" + t.Binding + "]"
	default:
		return "<invalid term>"
	}
}

// Pattern is a validated ordered sequence of terms.
//
// Invariants established by Parse and relied on by the engine:
//   - at most one rest term, and if present it is the last term
//   - bound capture names are pairwise distinct
//   - repeat counts are non-negative (zero degenerates a term to a no-op)
type Pattern struct {
	Terms []Term
}

// HasRest reports whether the pattern ends in a rest term.
func (p *Pattern) HasRest() bool {
	n := len(p.Terms)
	return n > 0 && p.Terms[n-1].Kind == TermRest
}

// PrefixLen returns the number of input bytes consumed by all non-rest terms.
func (p *Pattern) PrefixLen() int {
	total := 0
	for _, t := range p.Terms {
		if w := t.Width(); w > 0 {
			total += w
		}
	}
	return total
}

// String renders the pattern in source notation, terms space-separated.
func (p *Pattern) String() string {
	parts := make([]string, len(p.Terms))
	for i, t := range p.Terms {
		parts[i] = t.String()
	}
	return strings.Join(parts, " ")
}
