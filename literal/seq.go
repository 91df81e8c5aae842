// Package literal provides types and operations for representing and matching
// the finite languages of pattern trees.
//
// A pattern without unbounded repetition denotes a finite set of strings,
// e.g. (foo|bar)baz denotes {"foobaz", "barbaz"}. Extracting that set lets
// the meta engine answer substring queries with a multi-pattern Aho-Corasick
// search instead of simulating the NFA.
//
// Key concepts:
//   - A Literal is one member string of the language, as UTF-8 bytes
//   - A Seq is the whole language: distinct literals in byte order
//   - A Matcher finds any member of a Seq inside a haystack
package literal

import (
	"bytes"
	"slices"
)

// Literal represents one string of a finite language.
//
// Example:
//   - Pattern ab|c → Literal{[]byte("ab")}, Literal{[]byte("c")}
type Literal struct {
	// Bytes contains the UTF-8 encoding of the string.
	Bytes []byte
}

// NewLiteral creates a new Literal from the given byte sequence.
//
// Example:
//
//	lit := literal.NewLiteral([]byte("hello"))
//	fmt.Println(lit.Len()) // Output: 5
func NewLiteral(b []byte) Literal {
	return Literal{Bytes: b}
}

// Len returns the length of the literal in bytes.
func (l Literal) Len() int {
	return len(l.Bytes)
}

// String returns a string representation of the literal for debugging purposes.
func (l Literal) String() string {
	return "literal{" + string(l.Bytes) + "}"
}

// Seq represents a finite language as a set of distinct literals kept in
// byte-wise order.
//
// Example:
//
//	seq := literal.NewSeq(
//	    literal.NewLiteral([]byte("foo")),
//	    literal.NewLiteral([]byte("bar")),
//	    literal.NewLiteral([]byte("foo")),
//	)
//	fmt.Println(seq.Len())            // Output: 2
//	fmt.Println(string(seq.Get(0).Bytes)) // Output: bar
type Seq struct {
	literals []Literal
}

// NewSeq creates a new sequence from the given literals, dropping duplicates.
func NewSeq(lits ...Literal) *Seq {
	s := &Seq{literals: slices.Clone(lits)}
	s.normalize()
	return s
}

// normalize sorts the literals and removes duplicates.
func (s *Seq) normalize() {
	slices.SortFunc(s.literals, func(a, b Literal) int {
		return bytes.Compare(a.Bytes, b.Bytes)
	})
	s.literals = slices.CompactFunc(s.literals, func(a, b Literal) bool {
		return bytes.Equal(a.Bytes, b.Bytes)
	})
}

// Len returns the number of literals in the sequence.
func (s *Seq) Len() int {
	if s == nil {
		return 0
	}
	return len(s.literals)
}

// Get returns the literal at the specified index.
// Panics if index is out of bounds.
func (s *Seq) Get(i int) Literal {
	return s.literals[i]
}

// IsEmpty returns true if the sequence has no literals. An empty sequence is
// the empty language, which matches nothing.
func (s *Seq) IsEmpty() bool {
	return s == nil || len(s.literals) == 0
}

// HasEmpty reports whether the empty string is a member.
func (s *Seq) HasEmpty() bool {
	return !s.IsEmpty() && len(s.literals[0].Bytes) == 0
}

// Contains reports whether b is a member.
func (s *Seq) Contains(b []byte) bool {
	if s.IsEmpty() {
		return false
	}
	_, found := slices.BinarySearchFunc(s.literals, b, func(l Literal, t []byte) int {
		return bytes.Compare(l.Bytes, t)
	})
	return found
}

// Strings returns the members as strings, in order.
func (s *Seq) Strings() []string {
	out := make([]string, 0, s.Len())
	for i := 0; i < s.Len(); i++ {
		out = append(out, string(s.literals[i].Bytes))
	}
	return out
}

// Clone returns a deep copy of the sequence.
func (s *Seq) Clone() *Seq {
	if s == nil {
		return nil
	}

	cloned := make([]Literal, len(s.literals))
	for i, lit := range s.literals {
		cloned[i] = Literal{Bytes: bytes.Clone(lit.Bytes)}
	}
	return &Seq{literals: cloned}
}
