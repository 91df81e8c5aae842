// Package rules reads automata written as plain-text transition rules.
//
// A rules file lists a start state, accept states and one transition per
// line:
//
//	# third character from the end is b
//	start q0
//	accept q3
//	q0 'a' -> q0
//	q0 'b' -> q0
//	q0 'b' -> q1
//	q1 'a' -> q2
//	q1 free -> q2
//
// Characters are Go rune literals, so '\n' and 'é' work. The words
// start, accept and free are reserved and cannot name states.
package rules

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// File is a parsed rules file.
type File struct {
	Pos lexer.Position

	Statements []*Statement `parser:"( @@ | EOL )*"`
}

// Statement is one line of a rules file.
type Statement struct {
	Pos lexer.Position

	Start  *Start      `parser:"  @@"`
	Accept *Accept     `parser:"| @@"`
	Move   *Transition `parser:"| @@"`
}

// Start names the start state.
type Start struct {
	State string `parser:"'start' @Ident"`
}

// Accept names one or more accept states.
type Accept struct {
	States []string `parser:"'accept' @Ident+"`
}

// Transition is a single move between named states.
type Transition struct {
	Pos lexer.Position

	From string `parser:"@Ident"`
	On   *Label `parser:"@@"`
	To   string `parser:"'->' @Ident"`
}

// Label is the symbol a Transition reads: a quoted character or the
// keyword free.
type Label struct {
	Char *string `parser:"  @Char"`
	Free bool    `parser:"| @'free'"`
}

var rulesLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "EOL", Pattern: `\n`},
	{Name: "Whitespace", Pattern: `[ \t\r]+`},
	{Name: "Char", Pattern: `'(\\.|[^'\\\n])*'`},
	{Name: "Arrow", Pattern: `->`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
})

var parser = participle.MustBuild[File](
	participle.Lexer(rulesLexer),
	participle.Elide("Comment", "Whitespace"),
)
