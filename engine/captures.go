package engine

import (
	"errors"
	"fmt"
)

// Capture access errors. Both indicate the caller queried a Captures value
// inconsistently with the pattern that produced it; neither can occur through
// the pre-bound accessors returned by ByteAccessor and SliceAccessor.
var (
	// ErrUnknownCapture indicates the pattern binds no capture of that name.
	ErrUnknownCapture = errors.New("unknown capture name")

	// ErrWrongCaptureKind indicates the capture exists but was declared with
	// the other kind (byte vs slice).
	ErrWrongCaptureKind = errors.New("wrong capture kind")
)

// Captures is the result of one successful match: bound names mapped to
// byte or slice values borrowed from the matched input.
//
// A Captures value never outlives the validity of the input slice it borrows
// from; callers must not mutate the input while captures are in use. Unbound
// terms contribute nothing.
type Captures struct {
	engine *Engine
	values [][]byte
}

// Len returns the number of bound captures.
func (c *Captures) Len() int {
	return len(c.values)
}

// Names returns the bound capture names in declaration order.
func (c *Captures) Names() []string {
	return c.engine.CaptureNames()
}

// Byte returns the value of a single-byte capture.
func (c *Captures) Byte(name string) (byte, error) {
	i := c.engine.slotIndex(name)
	if i < 0 {
		return 0, fmt.Errorf("capture %q: %w", name, ErrUnknownCapture)
	}
	if c.engine.slots[i].kind != CaptureByte {
		return 0, fmt.Errorf("capture %q is a slice: %w", name, ErrWrongCaptureKind)
	}
	return c.values[i][0], nil
}

// Slice returns the value of a slice capture. The returned slice is a view
// into the matched input, possibly empty for a rest capture or a repeat-0
// wildcard.
func (c *Captures) Slice(name string) ([]byte, error) {
	i := c.engine.slotIndex(name)
	if i < 0 {
		return nil, fmt.Errorf("capture %q: %w", name, ErrUnknownCapture)
	}
	if c.engine.slots[i].kind != CaptureSlice {
		return nil, fmt.Errorf("capture %q is a byte: %w", name, ErrWrongCaptureKind)
	}
	return c.values[i], nil
}

// ByteAccessor fetches a single-byte capture without per-access checks.
// Obtain one from Engine.ByteAccessor after compiling the pattern.
type ByteAccessor struct {
	index int
}

// Get returns the captured byte. caps must come from the engine that issued
// the accessor.
func (a ByteAccessor) Get(caps *Captures) byte {
	return caps.values[a.index][0]
}

// SliceAccessor fetches a slice capture without per-access checks.
// Obtain one from Engine.SliceAccessor after compiling the pattern.
type SliceAccessor struct {
	index int
}

// Get returns the captured slice. caps must come from the engine that issued
// the accessor.
func (a SliceAccessor) Get(caps *Captures) []byte {
	return caps.values[a.index]
}

// ByteAccessor resolves a single-byte capture name once, at pattern scope,
// so matches can be queried with no name lookup and no kind check. Since
// capture kinds are fixed at compile time, the kind error surfaces here
// rather than on every access.
func (e *Engine) ByteAccessor(name string) (ByteAccessor, error) {
	i := e.slotIndex(name)
	if i < 0 {
		return ByteAccessor{}, fmt.Errorf("capture %q: %w", name, ErrUnknownCapture)
	}
	if e.slots[i].kind != CaptureByte {
		return ByteAccessor{}, fmt.Errorf("capture %q is a slice: %w", name, ErrWrongCaptureKind)
	}
	return ByteAccessor{index: i}, nil
}

// SliceAccessor resolves a slice capture name once, at pattern scope.
// The counterpart of ByteAccessor for slice-kind captures.
func (e *Engine) SliceAccessor(name string) (SliceAccessor, error) {
	i := e.slotIndex(name)
	if i < 0 {
		return SliceAccessor{}, fmt.Errorf("capture %q: %w", name, ErrUnknownCapture)
	}
	if e.slots[i].kind != CaptureSlice {
		return SliceAccessor{}, fmt.Errorf("capture %q is a byte: %w", name, ErrWrongCaptureKind)
	}
	return SliceAccessor{index: i}, nil
}
