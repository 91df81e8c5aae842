package meta

import (
	"sync/atomic"
	"unicode/utf8"

	"github.com/coregx/thompson/dfa"
	"github.com/coregx/thompson/literal"
	"github.com/coregx/thompson/nfa"
)

// Engine is the meta-engine that routes queries to the selected automaton.
//
// Thread safety: every automaton is immutable after Compile and each query
// creates its own runtime state, so an Engine may be shared by goroutines.
// Statistics are updated atomically.
type Engine struct {
	// IMPORTANT: stats MUST be first field for proper 8-byte alignment on 32-bit platforms.
	stats Stats

	nfa      *nfa.Design
	dfa      *dfa.Design
	literals *literal.Seq
	matcher  *literal.Matcher

	strategy       Strategy
	searchStrategy Strategy
	config         Config
}

// Stats tracks execution statistics for performance analysis.
type Stats struct {
	// NFASearches counts queries answered by NFA simulation
	NFASearches uint64

	// DFASearches counts queries answered by the DFA
	DFASearches uint64

	// AhoCorasickSearches counts substring queries answered by Aho-Corasick
	AhoCorasickSearches uint64
}

// Accepts reports whether the whole of input is in the language.
func (e *Engine) Accepts(input string) bool {
	if e.strategy == UseDFA {
		atomic.AddUint64(&e.stats.DFASearches, 1)
		return e.dfa.Recognize(input)
	}
	atomic.AddUint64(&e.stats.NFASearches, 1)
	return e.nfa.Accepts(input)
}

// Contains reports whether some substring of input is in the language.
//
// Invalid UTF-8 input is always searched with the NFA, which reads each bad
// byte as utf8.RuneError.
func (e *Engine) Contains(input string) bool {
	if e.searchStrategy == UseAhoCorasick && utf8.ValidString(input) {
		atomic.AddUint64(&e.stats.AhoCorasickSearches, 1)
		return e.matcher.IsMatch([]byte(input))
	}
	atomic.AddUint64(&e.stats.NFASearches, 1)
	return e.nfa.AcceptsSubstring(input)
}

// Strategy returns the strategy used by Accepts.
func (e *Engine) Strategy() Strategy {
	return e.strategy
}

// SearchStrategy returns the strategy used by Contains.
func (e *Engine) SearchStrategy() Strategy {
	return e.searchStrategy
}

// Stats returns a snapshot of execution statistics.
//
// Example:
//
//	stats := engine.Stats()
//	println("NFA searches:", stats.NFASearches)
//	println("DFA searches:", stats.DFASearches)
func (e *Engine) Stats() Stats {
	return Stats{
		NFASearches:         atomic.LoadUint64(&e.stats.NFASearches),
		DFASearches:         atomic.LoadUint64(&e.stats.DFASearches),
		AhoCorasickSearches: atomic.LoadUint64(&e.stats.AhoCorasickSearches),
	}
}

// ResetStats resets execution statistics to zero.
func (e *Engine) ResetStats() {
	atomic.StoreUint64(&e.stats.NFASearches, 0)
	atomic.StoreUint64(&e.stats.DFASearches, 0)
	atomic.StoreUint64(&e.stats.AhoCorasickSearches, 0)
}

// NFA returns the underlying NFA.
func (e *Engine) NFA() *nfa.Design {
	return e.nfa
}

// DFA returns the determinized automaton, or nil when Strategy is UseNFA.
func (e *Engine) DFA() *dfa.Design {
	return e.dfa
}

// Literals returns the extracted finite language, or nil when the language
// is infinite or extraction was disabled.
func (e *Engine) Literals() *literal.Seq {
	return e.literals
}
