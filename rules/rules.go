package rules

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2/lexer"

	"github.com/coregx/thompson/dfa"
	"github.com/coregx/thompson/nfa"
)

var (
	// ErrNoStart indicates a file without a start statement.
	ErrNoStart = errors.New("no start state")

	// ErrMultipleStart indicates a file with more than one start statement.
	ErrMultipleStart = errors.New("multiple start states")

	// ErrFreeMove indicates a free move in a file read as a DFA.
	ErrFreeMove = errors.New("free move in deterministic automaton")

	// ErrConflict indicates two moves from the same state on the same
	// character in a file read as a DFA.
	ErrConflict = errors.New("conflicting moves in deterministic automaton")

	// ErrUnknownChar indicates a character literal that is not exactly one
	// rune.
	ErrUnknownChar = errors.New("character literal must be exactly one rune")
)

// Error locates a semantic error in a rules file.
type Error struct {
	Pos lexer.Position
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("rules: %s: %v", e.Pos, e.Err)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Parse parses a rules file. name is used in error positions.
func Parse(name, src string) (*File, error) {
	f, err := parser.ParseString(name, src)
	if err != nil {
		return nil, fmt.Errorf("rules: %w", err)
	}
	return f, nil
}

// ParseFile reads and parses the rules file at path.
func ParseFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("rules: %w", err)
	}
	return Parse(path, string(data))
}

// NFA builds a nondeterministic automaton from the file.
//
// Each state name is given a fresh state, in order of first appearance, so
// the first name becomes q0.
func (f *File) NFA() (*nfa.Design, error) {
	b, err := f.resolve()
	if err != nil {
		return nil, err
	}
	return nfa.NewDesign(b.start, b.accepts, b.rules), nil
}

// DFA builds a deterministic automaton from the file. Free moves and two
// moves from one state on the same character are errors.
func (f *File) DFA() (*dfa.Design, error) {
	b, err := f.resolve()
	if err != nil {
		return nil, err
	}

	type key struct {
		from nfa.State
		on   nfa.Symbol
	}
	seen := make(map[key]bool, len(b.rules))
	for i, r := range b.rules {
		if r.On.IsFree() {
			return nil, &Error{Pos: b.positions[i], Err: ErrFreeMove}
		}
		k := key{r.From, r.On}
		if seen[k] {
			return nil, &Error{Pos: b.positions[i], Err: ErrConflict}
		}
		seen[k] = true
	}
	return dfa.NewDesign(b.start, b.accepts, b.rules), nil
}

// StateNames returns the state names in order of first appearance. The name
// at index i is the state qi in the automata built from f.
func (f *File) StateNames() []string {
	n := newNamer()
	for _, stmt := range f.Statements {
		switch {
		case stmt.Start != nil:
			n.state(stmt.Start.State)
		case stmt.Accept != nil:
			for _, name := range stmt.Accept.States {
				n.state(name)
			}
		case stmt.Move != nil:
			n.state(stmt.Move.From)
			n.state(stmt.Move.To)
		}
	}
	return n.names
}

// resolved holds the file translated to states.
type resolved struct {
	start     nfa.State
	accepts   []nfa.State
	rules     []nfa.Rule
	positions []lexer.Position
}

func (f *File) resolve() (*resolved, error) {
	n := newNamer()
	b := &resolved{start: nfa.InvalidState}

	for _, stmt := range f.Statements {
		switch {
		case stmt.Start != nil:
			if b.start != nfa.InvalidState {
				return nil, &Error{Pos: stmt.Pos, Err: ErrMultipleStart}
			}
			b.start = n.state(stmt.Start.State)
		case stmt.Accept != nil:
			for _, name := range stmt.Accept.States {
				b.accepts = append(b.accepts, n.state(name))
			}
		case stmt.Move != nil:
			sym, err := stmt.Move.On.symbol()
			if err != nil {
				return nil, &Error{Pos: stmt.Move.Pos, Err: err}
			}
			from := n.state(stmt.Move.From)
			to := n.state(stmt.Move.To)
			b.rules = append(b.rules, nfa.Rule{From: from, On: sym, To: to})
			b.positions = append(b.positions, stmt.Move.Pos)
		}
	}

	if b.start == nfa.InvalidState {
		return nil, &Error{Pos: f.Pos, Err: ErrNoStart}
	}
	return b, nil
}

func (l *Label) symbol() (nfa.Symbol, error) {
	if l.Free {
		return nfa.Free, nil
	}
	s, err := strconv.Unquote(*l.Char)
	if err != nil || utf8.RuneCountInString(s) != 1 {
		return nfa.Symbol{}, fmt.Errorf("%s: %w", *l.Char, ErrUnknownChar)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return nfa.Char(r), nil
}

// namer assigns fresh states to names in order of first appearance.
type namer struct {
	alloc  *nfa.Allocator
	states map[string]nfa.State
	names  []string
}

func newNamer() *namer {
	return &namer{alloc: nfa.NewAllocator(), states: make(map[string]nfa.State)}
}

func (n *namer) state(name string) nfa.State {
	if s, ok := n.states[name]; ok {
		return s
	}
	s := n.alloc.Fresh()
	n.states[name] = s
	n.names = append(n.names, name)
	return s
}
