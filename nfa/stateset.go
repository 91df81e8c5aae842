package nfa

import (
	"encoding/binary"
	"strings"

	"github.com/bits-and-blooms/bitset"

	"github.com/coregx/thompson/internal/conv"
)

// StateSet is a set of states, stored as a bitset indexed by state id.
// The zero value is an empty set ready to use. Iteration is in ascending
// state order.
type StateSet struct {
	bits bitset.BitSet
}

// NewStateSet returns a set holding the given states.
func NewStateSet(states ...State) *StateSet {
	s := &StateSet{}
	for _, st := range states {
		s.Add(st)
	}
	return s
}

// Add inserts st and reports whether it was absent.
func (s *StateSet) Add(st State) bool {
	if s.bits.Test(uint(st)) {
		return false
	}
	s.bits.Set(uint(st))
	return true
}

// Contains reports whether st is in the set.
func (s *StateSet) Contains(st State) bool {
	return s.bits.Test(uint(st))
}

// Len returns the number of states in the set.
func (s *StateSet) Len() int {
	return int(s.bits.Count())
}

// IsEmpty reports whether the set has no states.
func (s *StateSet) IsEmpty() bool {
	return s.bits.None()
}

// Clear removes all states, keeping the allocated storage.
func (s *StateSet) Clear() {
	s.bits.ClearAll()
}

// Clone returns an independent copy of the set.
func (s *StateSet) Clone() *StateSet {
	c := &StateSet{}
	c.bits.InPlaceUnion(&s.bits)
	return c
}

// UnionWith adds every state of other to s.
func (s *StateSet) UnionWith(other *StateSet) {
	s.bits.InPlaceUnion(&other.bits)
}

// Union returns a new set holding the states of both s and other.
func (s *StateSet) Union(other *StateSet) *StateSet {
	u := s.Clone()
	u.UnionWith(other)
	return u
}

// Intersects reports whether s and other share at least one state.
func (s *StateSet) Intersects(other *StateSet) bool {
	return s.bits.IntersectionCardinality(&other.bits) > 0
}

// Equal reports whether s and other hold exactly the same states.
func (s *StateSet) Equal(other *StateSet) bool {
	return s.bits.SymmetricDifferenceCardinality(&other.bits) == 0
}

// Each calls fn for every state in ascending order.
func (s *StateSet) Each(fn func(State)) {
	for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
		fn(State(conv.UintToUint32(i)))
	}
}

// States returns the members in ascending order.
func (s *StateSet) States() []State {
	out := make([]State, 0, s.Len())
	s.Each(func(st State) { out = append(out, st) })
	return out
}

// Key returns a string that is equal for equal sets and distinct for
// different ones, whatever their size. Used to index subset construction
// tables.
func (s *StateSet) Key() string {
	words := s.bits.Bytes()
	for len(words) > 0 && words[len(words)-1] == 0 {
		words = words[:len(words)-1]
	}
	buf := make([]byte, 8*len(words))
	for i, w := range words {
		binary.LittleEndian.PutUint64(buf[8*i:], w)
	}
	return string(buf)
}

// String returns the members in set notation, e.g. "{q0, q3}".
func (s *StateSet) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	s.Each(func(st State) {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		sb.WriteString(st.String())
	})
	sb.WriteByte('}')
	return sb.String()
}
