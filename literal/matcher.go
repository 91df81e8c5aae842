package literal

import (
	"errors"
	"fmt"

	"github.com/coregx/ahocorasick"
)

// ErrEmptyLanguage indicates a Matcher was requested for a sequence with no
// literals.
var ErrEmptyLanguage = errors.New("literal sequence is empty")

// Matcher reports whether any literal of a Seq occurs in a haystack, using an
// Aho-Corasick automaton for O(n) multi-pattern search.
//
// A Matcher is immutable and safe for concurrent use.
type Matcher struct {
	auto *ahocorasick.Automaton

	// matchAll is set when the empty string is a member; it occurs
	// everywhere, so no automaton is built.
	matchAll bool
}

// NewMatcher builds a matcher for seq.
func NewMatcher(seq *Seq) (*Matcher, error) {
	if seq.IsEmpty() {
		return nil, ErrEmptyLanguage
	}
	if seq.HasEmpty() {
		return &Matcher{matchAll: true}, nil
	}

	builder := ahocorasick.NewBuilder()
	for i := 0; i < seq.Len(); i++ {
		builder.AddPattern(seq.Get(i).Bytes)
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("literal: build Aho-Corasick automaton: %w", err)
	}
	return &Matcher{auto: auto}, nil
}

// IsMatch reports whether some literal occurs in haystack.
func (m *Matcher) IsMatch(haystack []byte) bool {
	if m.matchAll {
		return true
	}
	return m.auto.IsMatch(haystack)
}

// Find returns the span of the leftmost literal occurrence in haystack.
func (m *Matcher) Find(haystack []byte) (start, end int, ok bool) {
	if m.matchAll {
		return 0, 0, true
	}
	match := m.auto.Find(haystack, 0)
	if match == nil {
		return -1, -1, false
	}
	return match.Start, match.End, true
}
