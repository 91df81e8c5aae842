// Package thompson recognizes regular languages with Thompson NFAs.
//
// Patterns are built as trees rather than parsed from text:
//
//	// (ab|a)*
//	p := pattern.Star(pattern.Alt(pattern.Str("ab"), pattern.Lit('a')))
//
//	re := thompson.Compile(p)
//	re.Accepts("aab")    // true
//	re.Accepts("b")      // false
//	re.Contains("xabax") // true
//	re.String()          // "(ab|a)*"
//
// Compilation follows Thompson's construction: each pattern node becomes a
// small automaton, glued to its neighbours by free moves. The resulting NFA
// is determinized when that is cheap, and patterns with a finite language
// additionally get an Aho-Corasick matcher for substring search.
//
// Advanced usage:
//
//	// Custom configuration
//	config := thompson.DefaultConfig()
//	config.MaxDFAStates = 500
//	re, err := thompson.CompileWithConfig(p, config)
//
// Lower-level building blocks live in subpackages: pattern (trees), nfa
// (transition maps, designs and runtimes), dfa (deterministic automata and
// subset construction) and literal (finite-language extraction).
package thompson

import (
	"github.com/coregx/thompson/meta"
	"github.com/coregx/thompson/nfa"
	"github.com/coregx/thompson/pattern"
)

// Regex represents a compiled pattern.
//
// A Regex is safe to use concurrently from multiple goroutines, except for
// methods that modify internal state (like ResetStats).
//
// Example:
//
//	re := thompson.Compile(pattern.Str("hello"))
//	if re.Contains("hello world") {
//	    println("matched!")
//	}
type Regex struct {
	engine  *meta.Engine
	pattern pattern.Pattern
}

// Config controls compilation. See meta.Config.
type Config = meta.Config

// DefaultConfig returns the default compilation configuration.
func DefaultConfig() Config {
	return meta.DefaultConfig()
}

// Compile compiles a pattern tree using the default configuration.
// Compilation cannot fail.
//
// Example:
//
//	re := thompson.Compile(pattern.Concat(pattern.Alt(pattern.Lit('a'), pattern.Lit('b')), pattern.Star(pattern.Lit('c'))))
//	re.Accepts("bccc") // true
func Compile(p pattern.Pattern) *Regex {
	re, err := CompileWithConfig(p, DefaultConfig())
	if err != nil {
		// DefaultConfig always validates.
		panic("thompson: Compile: " + err.Error())
	}
	return re
}

// CompileWithConfig compiles a pattern tree with custom configuration.
// The error reports an invalid configuration.
func CompileWithConfig(p pattern.Pattern, config Config) (*Regex, error) {
	engine, err := meta.Compile(p, config)
	if err != nil {
		return nil, err
	}
	return &Regex{engine: engine, pattern: p}, nil
}

// Accepts reports whether the whole of s is in the pattern's language.
func (r *Regex) Accepts(s string) bool {
	return r.engine.Accepts(s)
}

// Contains reports whether some substring of s is in the pattern's language.
func (r *Regex) Contains(s string) bool {
	return r.engine.Contains(s)
}

// String returns the pattern rendered with minimal brackets.
func (r *Regex) String() string {
	return r.pattern.String()
}

// Pattern returns the pattern tree the Regex was compiled from.
func (r *Regex) Pattern() pattern.Pattern {
	return r.pattern
}

// NFA returns the compiled Thompson automaton.
func (r *Regex) NFA() *nfa.Design {
	return r.engine.NFA()
}

// Strategy returns the engine used for whole-string recognition.
func (r *Regex) Strategy() meta.Strategy {
	return r.engine.Strategy()
}

// Stats returns execution statistics.
func (r *Regex) Stats() meta.Stats {
	return r.engine.Stats()
}

// ResetStats resets execution statistics to zero.
func (r *Regex) ResetStats() {
	r.engine.ResetStats()
}
