// Package nfa provides a Thompson NFA (Non-deterministic Finite Automaton)
// implementation for regular-language membership.
//
// The package covers the whole nondeterministic path: state allocation,
// transition maps with free (epsilon) moves, immutable automaton designs,
// per-match runtimes, and the Thompson compiler that turns a pattern.Pattern
// into a Design.
package nfa

import (
	"fmt"
	"sync/atomic"

	"github.com/coregx/thompson/internal/conv"
)

// State identifies one automaton node. States carry no payload; two states
// are equal iff their ids are equal.
type State uint32

// InvalidState is never issued by an Allocator.
const InvalidState State = 0xFFFFFFFF

// String returns the state's DOT-style name, e.g. "q3".
func (s State) String() string {
	if s == InvalidState {
		return "q?"
	}
	return fmt.Sprintf("q%d", s)
}

// Allocator issues fresh states. Every call to Fresh returns an id never
// returned before by the same allocator, so fragments compiled from one
// allocator never alias and can be merged safely.
//
// Allocator is safe for concurrent use. It is the only mutable resource shared
// between compilations, and only when callers choose to share it.
type Allocator struct {
	next atomic.Uint64
}

// NewAllocator returns an allocator whose first state is 0.
func NewAllocator() *Allocator {
	return &Allocator{}
}

// Fresh returns a new, never-issued state.
// Panics when the 32-bit id space is exhausted.
func (a *Allocator) Fresh() State {
	id := conv.Uint64ToUint32(a.next.Add(1) - 1)
	if State(id) == InvalidState {
		panic("nfa: state id space exhausted")
	}
	return State(id)
}

// Issued returns the number of states handed out so far.
func (a *Allocator) Issued() int {
	return int(a.next.Load())
}
