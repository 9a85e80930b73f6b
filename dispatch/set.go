// Package dispatch provides ordered multi-pattern matching: a Set tries a
// sequence of named patterns against an input and returns the first arm
// that matches, mirroring a multi-arm match construct.
//
// Sets with many arms avoid running every pattern per input through a
// prefilter: arms whose pattern starts with a literal run are indexed in an
// Aho-Corasick keyword matcher, and only arms whose leading literal actually
// occurs in the input (plus arms with no leading literal) are tried. The
// prefilter never changes results, only skips arms that cannot match.
package dispatch

import (
	"github.com/cloudflare/ahocorasick"

	"github.com/coregx/strmatch"
	"github.com/coregx/strmatch/engine"
)

// Arm is one named pattern in a Set.
type Arm struct {
	// Name identifies the arm in results and rule files.
	Name string

	// Pattern is the compiled pattern this arm tries.
	Pattern *strmatch.Pattern

	// Description is optional free-form documentation carried from rule files.
	Description string
}

// Result reports which arm matched an input.
type Result struct {
	// Name of the matching arm.
	Name string

	// Index of the matching arm in declaration order.
	Index int

	// Captures bound by the arm's pattern; borrows from the input.
	Captures *engine.Captures
}

// Set is an ordered collection of arms with a shared prefilter.
// Immutable after NewSet and safe for concurrent Match calls.
type Set struct {
	arms []Arm

	// prefilter state: keyword i maps to the arms requiring it. Arms whose
	// pattern has no leading literal are always candidates.
	matcher     *ahocorasick.Matcher
	keywordArms [][]int
	alwaysArms  []int
}

// NewSet builds a Set from arms, preserving declaration order.
func NewSet(arms []Arm) *Set {
	s := &Set{arms: arms}

	keywordIndex := make(map[string]int)
	var keywords [][]byte
	for i, arm := range arms {
		prefix := arm.Pattern.LiteralPrefix()
		if len(prefix) == 0 {
			s.alwaysArms = append(s.alwaysArms, i)
			continue
		}
		ki, seen := keywordIndex[string(prefix)]
		if !seen {
			ki = len(keywords)
			keywordIndex[string(prefix)] = ki
			keywords = append(keywords, prefix)
			s.keywordArms = append(s.keywordArms, nil)
		}
		s.keywordArms[ki] = append(s.keywordArms[ki], i)
	}

	if len(keywords) > 0 {
		s.matcher = ahocorasick.NewMatcher(keywords)
	}
	return s
}

// Len returns the number of arms.
func (s *Set) Len() int {
	return len(s.arms)
}

// Arms returns the arms in declaration order. The returned slice is shared
// and must not be modified.
func (s *Set) Arms() []Arm {
	return s.arms
}

// Match tries the arms in declaration order and returns the first that
// matches. ok is false when no arm matches; like a single pattern's
// no-match, that is an expected outcome, not an error.
func (s *Set) Match(input []byte) (res Result, ok bool) {
	for _, i := range s.candidates(input) {
		caps, matched := s.arms[i].Pattern.Match(input)
		if matched {
			return Result{Name: s.arms[i].Name, Index: i, Captures: caps}, true
		}
	}
	return Result{}, false
}

// MatchString is Match over a string input.
func (s *Set) MatchString(input string) (res Result, ok bool) {
	return s.Match([]byte(input))
}

// candidates returns the indexes of arms worth trying for input, in
// declaration order. Without a prefilter every arm is a candidate.
func (s *Set) candidates(input []byte) []int {
	if s.matcher == nil {
		idx := make([]int, len(s.arms))
		for i := range s.arms {
			idx[i] = i
		}
		return idx
	}

	eligible := make([]bool, len(s.arms))
	for _, i := range s.alwaysArms {
		eligible[i] = true
	}
	for _, hit := range s.matcher.Match(input) {
		for _, i := range s.keywordArms[hit] {
			eligible[i] = true
		}
	}

	idx := make([]int, 0, len(s.arms))
	for i := range s.arms {
		if eligible[i] {
			idx = append(idx, i)
		}
	}
	return idx
}
