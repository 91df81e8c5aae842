package nfa

import "strconv"

// Symbol labels a transition: either a concrete input character or Free.
type Symbol struct {
	char rune
	free bool
}

// Free labels a transition the automaton may take without consuming input.
var Free = Symbol{free: true}

// Char returns the symbol that consumes the character r.
func Char(r rune) Symbol {
	return Symbol{char: r}
}

// IsFree reports whether s is the Free pseudo-symbol.
func (s Symbol) IsFree() bool {
	return s.free
}

// Rune returns the character consumed by s. Returns (0, false) for Free.
func (s Symbol) Rune() (rune, bool) {
	if s.free {
		return 0, false
	}
	return s.char, true
}

// String returns "ε" for Free and the quoted character otherwise.
func (s Symbol) String() string {
	if s.free {
		return "ε"
	}
	return strconv.QuoteRune(s.char)
}

// Rule is a single transition (From, On) -> To.
type Rule struct {
	From State
	On   Symbol
	To   State
}

// FreeMove returns the rule from -> to on Free.
func FreeMove(from, to State) Rule {
	return Rule{From: from, On: Free, To: to}
}

// String returns a human-readable representation like "q0 --'a'--> q1".
func (r Rule) String() string {
	return r.From.String() + " --" + r.On.String() + "--> " + r.To.String()
}
