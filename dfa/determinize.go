package dfa

import (
	"fmt"

	"github.com/coregx/thompson/nfa"
)

// Determinize converts d into an equivalent DFA by subset construction.
//
// Each DFA state stands for a free-closed set of NFA states. The result is
// total over the NFA's alphabet: the empty set becomes an ordinary
// non-accepting state that loops to itself, and it only exists when some
// transition needs it. Characters outside the alphabet have no transition, so
// callers feeding arbitrary input should use Design.Recognize.
//
// maxStates caps the number of DFA states; exceeding it returns an error
// wrapping ErrTooManyStates. maxStates <= 0 means no limit.
func Determinize(d *nfa.Design, maxStates int) (*Design, error) {
	tm := d.Transitions()
	b := &subsetBuilder{
		accepts:   nfa.NewStateSet(d.AcceptStates()...),
		alloc:     nfa.NewAllocator(),
		ids:       make(map[string]nfa.State),
		maxStates: maxStates,
	}

	start, err := b.intern(tm.FreeClosure(nfa.NewStateSet(d.Start())))
	if err != nil {
		return nil, err
	}

	alphabet := tm.Alphabet()
	var rules []nfa.Rule
	for i := 0; i < len(b.sets); i++ {
		from, set := b.order[i], b.sets[i]
		for _, c := range alphabet {
			next := tm.FreeClosure(tm.Next(set, nfa.Char(c)))
			to, err := b.intern(next)
			if err != nil {
				return nil, err
			}
			rules = append(rules, nfa.Rule{From: from, On: nfa.Char(c), To: to})
		}
	}

	return NewDesign(start, b.acceptIDs, rules), nil
}

// subsetBuilder assigns DFA states to NFA state sets in discovery order.
type subsetBuilder struct {
	accepts   *nfa.StateSet
	alloc     *nfa.Allocator
	ids       map[string]nfa.State
	order     []nfa.State
	sets      []*nfa.StateSet
	acceptIDs []nfa.State
	maxStates int
}

// intern returns the DFA state for set, creating it on first sight.
func (b *subsetBuilder) intern(set *nfa.StateSet) (nfa.State, error) {
	key := set.Key()
	if id, ok := b.ids[key]; ok {
		return id, nil
	}
	if b.maxStates > 0 && len(b.sets) >= b.maxStates {
		return nfa.InvalidState, fmt.Errorf("determinize: %w (limit %d)", ErrTooManyStates, b.maxStates)
	}

	id := b.alloc.Fresh()
	b.ids[key] = id
	b.order = append(b.order, id)
	b.sets = append(b.sets, set)
	if set.Intersects(b.accepts) {
		b.acceptIDs = append(b.acceptIDs, id)
	}
	return id, nil
}
