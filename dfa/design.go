package dfa

import (
	"fmt"
	"io"

	"github.com/coregx/thompson/internal/dot"
	"github.com/coregx/thompson/nfa"
)

// Design is an immutable DFA blueprint. Like nfa.Design it can spawn any
// number of Runtimes and is safe for concurrent use.
type Design struct {
	start       nfa.State
	accepts     *nfa.StateSet
	transitions *TransitionMap
}

// NewDesign builds a DFA from an explicit rule list. The rules should be
// total over the intended alphabet; Accepts panics on a missing transition.
func NewDesign(start nfa.State, accepts []nfa.State, rules []nfa.Rule) *Design {
	return &Design{
		start:       start,
		accepts:     nfa.NewStateSet(accepts...),
		transitions: NewTransitionMap(rules...),
	}
}

// Start returns the start state.
func (d *Design) Start() nfa.State {
	return d.start
}

// AcceptStates returns the accept states in ascending order.
func (d *Design) AcceptStates() []nfa.State {
	return d.accepts.States()
}

// IsAccept reports whether s is an accept state.
func (d *Design) IsAccept(s nfa.State) bool {
	return d.accepts.Contains(s)
}

// Transitions returns the transition map. Callers must not modify it.
func (d *Design) Transitions() *TransitionMap {
	return d.transitions
}

// States returns every state of the design in ascending order.
func (d *Design) States() []nfa.State {
	set := nfa.NewStateSet(d.start)
	set.UnionWith(d.accepts)
	for _, r := range d.transitions.Rules() {
		set.Add(r.From)
		set.Add(r.To)
	}
	return set.States()
}

// NewRuntime returns a runtime positioned at the start state.
func (d *Design) NewRuntime() *Runtime {
	return &Runtime{design: d, current: d.start}
}

// Accepts reports whether the DFA accepts input.
// Panics with a *LookupError if input reaches an undefined transition.
func (d *Design) Accepts(input string) bool {
	r := d.NewRuntime()
	r.ReadString(input)
	return r.Accepting()
}

// Recognize is like Accepts but treats an undefined transition as rejection.
// It suits partial DFAs, such as a determinized automaton fed characters
// outside its alphabet.
func (d *Design) Recognize(input string) bool {
	s := d.start
	for _, c := range input {
		next, ok := d.transitions.Lookup(s, nfa.Char(c))
		if !ok {
			return false
		}
		s = next
	}
	return d.accepts.Contains(s)
}

// String returns a summary of the design.
func (d *Design) String() string {
	return fmt.Sprintf("DFA{start: %s, accepts: %s, rules: %d}",
		d.start, d.accepts.String(), d.transitions.Len())
}

// WriteDOT renders the design in Graphviz DOT format.
func (d *Design) WriteDOT(w io.Writer) error {
	g := dot.Graph{
		Prefix: "d",
		Start:  uint32(d.start),
	}
	for _, s := range d.States() {
		g.Nodes = append(g.Nodes, uint32(s))
	}
	for _, s := range d.AcceptStates() {
		g.Accepts = append(g.Accepts, uint32(s))
	}
	for _, r := range d.transitions.Rules() {
		label := "ε"
		if c, ok := r.On.Rune(); ok {
			label = string(c)
		}
		g.Edges = append(g.Edges, dot.Edge{From: uint32(r.From), To: uint32(r.To), Label: label})
	}
	return dot.Write(w, g)
}

// Runtime is the mutable state of one DFA run: a single current state.
// It must not be shared between goroutines.
type Runtime struct {
	design  *Design
	current nfa.State
}

// Current returns the current state.
func (r *Runtime) Current() nfa.State {
	return r.current
}

// Read consumes one character.
// Panics with a *LookupError if no transition is defined.
func (r *Runtime) Read(c rune) {
	r.current = r.design.transitions.Next(r.current, nfa.Char(c))
}

// ReadString consumes every character of s in order.
func (r *Runtime) ReadString(s string) {
	for _, c := range s {
		r.Read(c)
	}
}

// Accepting reports whether the current state is an accept state.
func (r *Runtime) Accepting() bool {
	return r.design.accepts.Contains(r.current)
}
