package meta

// Strategy represents the engine that answers a query.
type Strategy int

const (
	// UseNFA simulates the Thompson NFA over sets of states.
	// Selected when:
	//   - EnableDFA is false in config
	//   - Determinization would exceed MaxDFAStates
	//   - The language is infinite (for substring search)
	UseNFA Strategy = iota

	// UseDFA runs the determinized automaton, one lookup per character.
	UseDFA

	// UseAhoCorasick searches for the members of a finite language.
	// Only used for substring search.
	UseAhoCorasick
)

// String returns a human-readable representation of the Strategy.
func (s Strategy) String() string {
	switch s {
	case UseNFA:
		return "UseNFA"
	case UseDFA:
		return "UseDFA"
	case UseAhoCorasick:
		return "UseAhoCorasick"
	default:
		return "Unknown"
	}
}
