package nfa

import (
	"fmt"
	"io"

	"github.com/coregx/thompson/internal/dot"
)

// Design is an immutable NFA blueprint: a start state, a set of accept states
// and a transition map. A Design never changes after construction and can
// spawn any number of independent Runtimes, including from several goroutines
// at once.
type Design struct {
	start       State
	accepts     StateSet
	transitions *TransitionMap
}

// NewDesign builds a design from an explicit rule list.
func NewDesign(start State, accepts []State, rules []Rule) *Design {
	return newDesign(start, NewStateSet(accepts...), NewTransitionMap(rules...))
}

func newDesign(start State, accepts *StateSet, tm *TransitionMap) *Design {
	return &Design{
		start:       start,
		accepts:     *accepts.Clone(),
		transitions: tm,
	}
}

// Start returns the start state.
func (d *Design) Start() State {
	return d.start
}

// AcceptStates returns the accept states in ascending order.
func (d *Design) AcceptStates() []State {
	return d.accepts.States()
}

// Transitions returns the transition map. Callers must not modify it.
func (d *Design) Transitions() *TransitionMap {
	return d.transitions
}

// IsAccepting reports whether states, closed under free moves, contains an
// accept state.
func (d *Design) IsAccepting(states *StateSet) bool {
	return d.transitions.FreeClosure(states).Intersects(&d.accepts)
}

// States returns every state of the design in ascending order.
func (d *Design) States() []State {
	set := NewStateSet(d.start)
	set.UnionWith(&d.accepts)
	for _, s := range d.transitions.States() {
		set.Add(s)
	}
	return set.States()
}

// NewRuntime returns a fresh runtime positioned at the start state.
func (d *Design) NewRuntime() *Runtime {
	r := &Runtime{design: d}
	r.Reset()
	return r
}

// Accepts reports whether the automaton accepts input, consuming it one
// character at a time. Each call uses its own Runtime, so calls never
// influence each other.
func (d *Design) Accepts(input string) bool {
	r := d.NewRuntime()
	r.ReadString(input)
	return r.Accepting()
}

// AcceptsSubstring reports whether some substring of input is accepted.
// The start state is re-entered before every character, so a match may
// begin at any position; the search stops at the first accepting position.
func (d *Design) AcceptsSubstring(input string) bool {
	r := d.NewRuntime()
	if r.Accepting() {
		return true
	}
	for _, c := range input {
		r.Read(c)
		r.moving.Add(d.start)
		if r.Accepting() {
			return true
		}
	}
	return false
}

// String returns a summary of the design.
func (d *Design) String() string {
	return fmt.Sprintf("NFA{start: %s, accepts: %s, rules: %d}",
		d.start, d.accepts.String(), d.transitions.Len())
}

// WriteDOT renders the design in Graphviz DOT format.
func (d *Design) WriteDOT(w io.Writer) error {
	g := dot.Graph{
		Prefix: "q",
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
