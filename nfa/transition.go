package nfa

import (
	"slices"
)

// edge is one outgoing transition stored in a state's row.
type edge struct {
	on Symbol
	to State
}

// TransitionMap maps (state, symbol) to a set of target states.
//
// Rows are stored in a flat table indexed by state id. Rules with the same
// (state, symbol) key accumulate their targets; adding an identical rule twice
// is a no-op. A TransitionMap is never mutated once it is reachable from a
// Design.
type TransitionMap struct {
	rows  [][]edge
	count int
}

// NewTransitionMap builds a map from the given rules.
func NewTransitionMap(rules ...Rule) *TransitionMap {
	m := &TransitionMap{}
	for _, r := range rules {
		m.add(r)
	}
	return m
}

// add inserts r, ignoring exact duplicates.
func (m *TransitionMap) add(r Rule) {
	if int(r.From) >= len(m.rows) {
		m.rows = append(m.rows, make([][]edge, int(r.From)+1-len(m.rows))...)
	}
	row := m.rows[r.From]
	for _, e := range row {
		if e.on == r.On && e.to == r.To {
			return
		}
	}
	m.rows[r.From] = append(row, edge{on: r.On, to: r.To})
	m.count++
}

// row returns the outgoing edges of s, or nil when s has none.
func (m *TransitionMap) row(s State) []edge {
	if int(s) >= len(m.rows) {
		return nil
	}
	return m.rows[s]
}

// hasKey reports whether any rule is keyed on (s, on).
func (m *TransitionMap) hasKey(s State, on Symbol) bool {
	for _, e := range m.row(s) {
		if e.on == on {
			return true
		}
	}
	return false
}

// Targets returns the targets of (s, on) in insertion order.
func (m *TransitionMap) Targets(s State, on Symbol) []State {
	var out []State
	for _, e := range m.row(s) {
		if e.on == on {
			out = append(out, e.to)
		}
	}
	return out
}

// Next returns the union of the targets of every state in states on sym.
// States without a matching rule contribute nothing; an empty result is a
// dead end, not an error.
func (m *TransitionMap) Next(states *StateSet, sym Symbol) *StateSet {
	out := &StateSet{}
	m.nextInto(out, states, sym)
	return out
}

// nextInto adds the targets of states on sym to dst.
func (m *TransitionMap) nextInto(dst, states *StateSet, sym Symbol) {
	states.Each(func(s State) {
		for _, e := range m.row(s) {
			if e.on == sym {
				dst.Add(e.to)
			}
		}
	})
}

// FreeClosure returns states together with every state reachable from them
// by Free moves alone. The result always contains states itself, so
// FreeClosure(FreeClosure(S)) equals FreeClosure(S).
func (m *TransitionMap) FreeClosure(states *StateSet) *StateSet {
	out := states.Clone()
	m.closeOver(out, nil)
	return out
}

// closeOver extends set in place to its free closure. stack is scratch space
// for the work-list and is returned for reuse.
func (m *TransitionMap) closeOver(set *StateSet, stack []State) []State {
	stack = stack[:0]
	set.Each(func(s State) { stack = append(stack, s) })
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, e := range m.row(s) {
			if e.on.free && set.Add(e.to) {
				stack = append(stack, e.to)
			}
		}
	}
	return stack
}

// Merge returns a new map holding the rules of both m and other.
//
// Maps built from one Allocator never share keys, so merging fragments is a
// plain union. If a (state, symbol) key does appear in both maps, m's targets
// for that key are kept and other's are dropped.
func (m *TransitionMap) Merge(other *TransitionMap) *TransitionMap {
	out := &TransitionMap{}
	out.absorb(m)
	out.absorb(other)
	return out
}

// absorb adds the rules of other whose keys m does not already define.
func (m *TransitionMap) absorb(other *TransitionMap) {
	for from, row := range other.rows {
		s := State(from)
		var taken []Symbol
		for _, e := range row {
			if !slices.Contains(taken, e.on) {
				if m.hasKey(s, e.on) {
					continue
				}
				taken = append(taken, e.on)
			}
			m.add(Rule{From: s, On: e.on, To: e.to})
		}
	}
}

// Rules returns every rule, ordered by source state and then insertion order.
func (m *TransitionMap) Rules() []Rule {
	out := make([]Rule, 0, m.count)
	for from, row := range m.rows {
		for _, e := range row {
			out = append(out, Rule{From: State(from), On: e.on, To: e.to})
		}
	}
	return out
}

// Len returns the number of rules.
func (m *TransitionMap) Len() int {
	return m.count
}

// Alphabet returns the distinct characters consumed by any rule, ascending.
func (m *TransitionMap) Alphabet() []rune {
	var out []rune
	for _, row := range m.rows {
		for _, e := range row {
			if r, ok := e.on.Rune(); ok && !slices.Contains(out, r) {
				out = append(out, r)
			}
		}
	}
	slices.Sort(out)
	return out
}

// States returns every state that appears as a source or target, ascending.
func (m *TransitionMap) States() []State {
	set := &StateSet{}
	for from, row := range m.rows {
		for _, e := range row {
			set.Add(State(from))
			set.Add(e.to)
		}
	}
	return set.States()
}
