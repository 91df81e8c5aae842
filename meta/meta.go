// Package meta implements the meta-engine orchestrator that selects the
// execution strategy for a compiled pattern.
//
// The meta-engine coordinates three engines:
//   - NFA: Thompson automaton simulation over sets of states (always available)
//   - DFA: subset-constructed automaton, one table lookup per character
//   - Aho-Corasick: multi-literal search for patterns with a finite language
//
// Strategy selection is based on:
//   - Determinization cost (the DFA is used only when it fits MaxDFAStates)
//   - Literal extraction (finite languages enable Aho-Corasick substring search)
//
// All engines recognize the same language; the meta-engine only decides
// which one answers a query.
package meta

import (
	"errors"
	"log/slog"

	"github.com/coregx/thompson/dfa"
	"github.com/coregx/thompson/literal"
	"github.com/coregx/thompson/nfa"
	"github.com/coregx/thompson/pattern"
)

// ErrNilDesign is returned by NewEngine when given no NFA.
var ErrNilDesign = errors.New("meta: nil NFA design")

// Compile compiles a pattern tree into an Engine with the given configuration.
//
// Compilation itself never fails; the error reports an invalid configuration.
//
// Example:
//
//	p := pattern.Star(pattern.Alt(pattern.Str("ab"), pattern.Lit('a')))
//	engine, err := meta.Compile(p, meta.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//	engine.Accepts("aab") // true
func Compile(p pattern.Pattern, config Config) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return build(nfa.Compile(p), p, config), nil
}

// NewEngine wraps a hand-built NFA in an Engine.
//
// Without a pattern tree no literals can be extracted, so substring search
// always simulates the NFA.
func NewEngine(d *nfa.Design, config Config) (*Engine, error) {
	if d == nil {
		return nil, ErrNilDesign
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return build(d, nil, config), nil
}

func build(d *nfa.Design, p pattern.Pattern, config Config) *Engine {
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	e := &Engine{
		nfa:            d,
		strategy:       UseNFA,
		searchStrategy: UseNFA,
		config:         config,
	}

	if config.EnableDFA {
		det, err := dfa.Determinize(d, config.MaxDFAStates)
		if err != nil {
			logger.Debug("meta: DFA unavailable, falling back to NFA",
				"limit", config.MaxDFAStates,
				"error", err)
		} else {
			e.dfa = det
			e.strategy = UseDFA
		}
	}

	if config.EnableLiterals && p != nil {
		e.literals, e.matcher = buildLiterals(p, config.MaxLiterals)
		if e.matcher != nil {
			e.searchStrategy = UseAhoCorasick
		}
	}

	attrs := []any{
		"strategy", e.strategy,
		"search_strategy", e.searchStrategy,
		"nfa_states", len(d.States()),
	}
	if e.dfa != nil {
		attrs = append(attrs, "dfa_states", len(e.dfa.States()))
	}
	if e.literals != nil {
		attrs = append(attrs, "literals", e.literals.Len())
	}
	logger.Debug("meta: engine built", attrs...)

	return e
}

// buildLiterals extracts the finite language of p and, when it is non-empty
// and excludes the empty string, builds an Aho-Corasick matcher for it.
func buildLiterals(p pattern.Pattern, limit int) (*literal.Seq, *literal.Matcher) {
	seq, ok := literal.Extract(p, limit)
	if !ok || seq.IsEmpty() {
		return nil, nil
	}
	if seq.HasEmpty() {
		return seq, nil
	}
	m, err := literal.NewMatcher(seq)
	if err != nil {
		return seq, nil
	}
	return seq, m
}
