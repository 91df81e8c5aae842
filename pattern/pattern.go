// Package pattern defines the compositional regular-expression tree that the
// nfa compiler consumes.
//
// A Pattern is one of five variants: Empty, Literal, Concatenate, Choose and
// Repeat. The set is closed: Pattern carries an unexported method, so a type
// switch over the five variants is exhaustive. Patterns are built in code,
// never parsed from text:
//
//	// (ab|a)*
//	p := pattern.Repeat{Inner: pattern.Choose{
//	    Left:  pattern.Concatenate{Left: pattern.Literal{Char: 'a'}, Right: pattern.Literal{Char: 'b'}},
//	    Right: pattern.Literal{Char: 'a'},
//	}}
//	fmt.Println(p) // (ab|a)*
//
// Trees are immutable values; every node owns its children.
package pattern

import "strings"

// Precedence ranks used when rendering. Lower binds looser.
const (
	PrecChoose = iota
	PrecConcatenate
	PrecRepeat
	PrecAtom
)

// Pattern is a node of the regular-expression tree.
type Pattern interface {
	// String renders the pattern with the minimum parentheses needed.
	// Characters are written unescaped, so Lit('|') and a Choose both
	// produce "|"; the output is for display, not for parsing back.
	String() string

	precedence() int
	render(sb *strings.Builder)
}

// Empty matches only the empty string.
type Empty struct{}

// Literal matches exactly one character.
type Literal struct {
	Char rune
}

// Concatenate matches Left followed by Right.
type Concatenate struct {
	Left, Right Pattern
}

// Choose matches either Left or Right.
type Choose struct {
	Left, Right Pattern
}

// Repeat matches zero or more repetitions of Inner (Kleene star).
type Repeat struct {
	Inner Pattern
}

func (Empty) precedence() int       { return PrecAtom }
func (Literal) precedence() int     { return PrecAtom }
func (Concatenate) precedence() int { return PrecConcatenate }
func (Choose) precedence() int      { return PrecChoose }
func (Repeat) precedence() int      { return PrecRepeat }

func (Empty) render(*strings.Builder) {}

func (l Literal) render(sb *strings.Builder) {
	sb.WriteRune(l.Char)
}

func (c Concatenate) render(sb *strings.Builder) {
	bracket(sb, c.Left, PrecConcatenate)
	bracket(sb, c.Right, PrecConcatenate)
}

func (c Choose) render(sb *strings.Builder) {
	bracket(sb, c.Left, PrecChoose)
	sb.WriteByte('|')
	bracket(sb, c.Right, PrecChoose)
}

func (r Repeat) render(sb *strings.Builder) {
	bracket(sb, r.Inner, PrecRepeat)
	sb.WriteByte('*')
}

// bracket renders p, parenthesized iff its precedence is strictly lower than
// the precedence required by the enclosing position.
func bracket(sb *strings.Builder, p Pattern, outer int) {
	if p.precedence() < outer {
		sb.WriteByte('(')
		p.render(sb)
		sb.WriteByte(')')
		return
	}
	p.render(sb)
}

func (e Empty) String() string       { return toString(e) }
func (l Literal) String() string     { return toString(l) }
func (c Concatenate) String() string { return toString(c) }
func (c Choose) String() string      { return toString(c) }
func (r Repeat) String() string      { return toString(r) }

func toString(p Pattern) string {
	var sb strings.Builder
	p.render(&sb)
	return sb.String()
}

// Precedence returns the rendering rank of p's root node.
func Precedence(p Pattern) int {
	return p.precedence()
}

// Inspect renders p between slashes, e.g. /(a|b)c*/.
func Inspect(p Pattern) string {
	return "/" + p.String() + "/"
}
