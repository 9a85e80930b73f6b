package engine

import "bytes"

// Run executes the engine against input in a single linear pass.
//
// The length precondition is checked first: without a rest term the input
// length must equal PrefixLen exactly, with one it must be at least
// PrefixLen. Then every literal segment is compared against its window; a
// wildcard never causes a mismatch, so segment compares are the only failure
// points. On success the returned Captures borrows subslices of input — the
// caller must keep input alive and unmodified while the captures are in use.
//
// ok is false on no-match. A failed match is an expected outcome, not an
// error; callers dispatching over several patterns fall through to the next.
func (e *Engine) Run(input []byte) (caps *Captures, ok bool) {
	if e.hasRest {
		if len(input) < e.prefixLen {
			return nil, false
		}
	} else if len(input) != e.prefixLen {
		return nil, false
	}

	for _, seg := range e.segments {
		off := int(seg.offset)
		if !bytes.Equal(input[off:off+len(seg.bytes)], seg.bytes) {
			return nil, false
		}
	}

	caps = &Captures{engine: e}
	if len(e.slots) > 0 {
		caps.values = make([][]byte, len(e.slots))
		for i, s := range e.slots {
			if s.rest {
				caps.values[i] = input[e.prefixLen:]
				continue
			}
			off := int(s.offset)
			caps.values[i] = input[off : off+int(s.length)]
		}
	}
	return caps, true
}

// IsMatch reports whether input matches without materializing captures.
func (e *Engine) IsMatch(input []byte) bool {
	if e.hasRest {
		if len(input) < e.prefixLen {
			return false
		}
	} else if len(input) != e.prefixLen {
		return false
	}
	for _, seg := range e.segments {
		off := int(seg.offset)
		if !bytes.Equal(input[off:off+len(seg.bytes)], seg.bytes) {
			return false
		}
	}
	return true
}
