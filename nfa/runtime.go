package nfa

// Runtime is the mutable state of one NFA simulation.
//
// It tracks the moving set: the states reached by the last consumed
// character. Acceptance and stepping always work on the moving set closed
// under free moves, never on the raw set. A Runtime belongs to a single match
// attempt and must not be shared between goroutines.
type Runtime struct {
	design  *Design
	moving  *StateSet
	scratch *StateSet
	stack   []State
}

// Reset returns the runtime to the design's start state.
func (r *Runtime) Reset() {
	if r.moving == nil {
		r.moving = &StateSet{}
		r.scratch = &StateSet{}
	}
	r.moving.Clear()
	r.moving.Add(r.design.start)
}

// close extends the moving set to its free closure.
func (r *Runtime) close() {
	r.stack = r.design.transitions.closeOver(r.moving, r.stack)
}

// Read consumes one character.
func (r *Runtime) Read(c rune) {
	r.close()
	r.scratch.Clear()
	r.design.transitions.nextInto(r.scratch, r.moving, Char(c))
	r.moving, r.scratch = r.scratch, r.moving
}

// ReadString consumes every character of s in order.
func (r *Runtime) ReadString(s string) {
	for _, c := range s {
		r.Read(c)
	}
}

// Current returns a copy of the current state set, closed under free moves.
func (r *Runtime) Current() *StateSet {
	r.close()
	return r.moving.Clone()
}

// Accepting reports whether the current states include an accept state.
func (r *Runtime) Accepting() bool {
	r.close()
	return r.moving.Intersects(&r.design.accepts)
}

// Dead reports whether no state is active; no further input can lead to
// acceptance.
func (r *Runtime) Dead() bool {
	return r.moving.IsEmpty()
}
