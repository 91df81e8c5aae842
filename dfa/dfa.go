// Package dfa implements deterministic finite automata over the same states,
// symbols and rules as package nfa.
//
// A DFA is either built by hand from a rule list, in which case the caller is
// responsible for supplying a transition for every reachable (state, symbol)
// pair, or derived from an nfa.Design by Determinize.
package dfa

import (
	"errors"
	"fmt"

	"github.com/coregx/thompson/nfa"
)

// ErrTooManyStates indicates that determinization would exceed its state limit.
var ErrTooManyStates = errors.New("DFA state limit exceeded")

// LookupError reports a (state, symbol) pair with no transition. A DFA is
// expected to be total over its alphabet, so this signals a malformed
// automaton. Design.Accepts and TransitionMap.Next panic with a *LookupError.
type LookupError struct {
	State  nfa.State
	Symbol nfa.Symbol
}

// Error implements the error interface
func (e *LookupError) Error() string {
	return fmt.Sprintf("dfa: no transition from %s on %s", e.State, e.Symbol)
}

// TransitionMap maps each (state, symbol) pair to exactly one target.
// Rows live in a flat table indexed by state id. When two rules share a key
// the later one wins.
type TransitionMap struct {
	rows  [][]edge
	count int
}

type edge struct {
	on nfa.Symbol
	to nfa.State
}

// NewTransitionMap builds a map from rules. Duplicate keys are last-write-wins.
func NewTransitionMap(rules ...nfa.Rule) *TransitionMap {
	m := &TransitionMap{}
	for _, r := range rules {
		m.set(r)
	}
	return m
}

func (m *TransitionMap) set(r nfa.Rule) {
	if int(r.From) >= len(m.rows) {
		m.rows = append(m.rows, make([][]edge, int(r.From)+1-len(m.rows))...)
	}
	row := m.rows[r.From]
	for i := range row {
		if row[i].on == r.On {
			row[i].to = r.To
			return
		}
	}
	m.rows[r.From] = append(row, edge{on: r.On, to: r.To})
	m.count++
}

// Lookup returns the target of (s, sym) and whether a rule defines it.
func (m *TransitionMap) Lookup(s nfa.State, sym nfa.Symbol) (nfa.State, bool) {
	if int(s) >= len(m.rows) {
		return nfa.InvalidState, false
	}
	for _, e := range m.rows[s] {
		if e.on == sym {
			return e.to, true
		}
	}
	return nfa.InvalidState, false
}

// Next returns the target of (s, sym).
// Panics with a *LookupError if no rule defines the pair.
func (m *TransitionMap) Next(s nfa.State, sym nfa.Symbol) nfa.State {
	to, ok := m.Lookup(s, sym)
	if !ok {
		panic(&LookupError{State: s, Symbol: sym})
	}
	return to
}

// Rules returns every rule ordered by source state, then insertion order.
func (m *TransitionMap) Rules() []nfa.Rule {
	out := make([]nfa.Rule, 0, m.count)
	for from, row := range m.rows {
		for _, e := range row {
			out = append(out, nfa.Rule{From: nfa.State(from), On: e.on, To: e.to})
		}
	}
	return out
}

// Len returns the number of rules.
func (m *TransitionMap) Len() int {
	return m.count
}

// Alphabet returns the distinct characters with at least one rule, ascending.
func (m *TransitionMap) Alphabet() []rune {
	return nfa.NewTransitionMap(m.Rules()...).Alphabet()
}
