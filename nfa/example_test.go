package nfa_test

import (
	"fmt"

	"github.com/coregx/thompson/nfa"
	"github.com/coregx/thompson/pattern"
)

// ExampleCompile compiles (ab|a)* and tests a few strings.
func ExampleCompile() {
	p := pattern.Repeat{Inner: pattern.Choose{
		Left:  pattern.Concatenate{Left: pattern.Literal{Char: 'a'}, Right: pattern.Literal{Char: 'b'}},
		Right: pattern.Literal{Char: 'a'},
	}}
	d := nfa.Compile(p)

	for _, s := range []string{"", "aba", "abb"} {
		fmt.Printf("%s %q: %v\n", p, s, d.Accepts(s))
	}
	// Output:
	// (ab|a)* "": true
	// (ab|a)* "aba": true
	// (ab|a)* "abb": false
}

// ExampleNewDesign builds an NFA by hand from explicit rules.
func ExampleNewDesign() {
	alloc := nfa.NewAllocator()
	q0, q1, q2 := alloc.Fresh(), alloc.Fresh(), alloc.Fresh()

	d := nfa.NewDesign(q0, []nfa.State{q2}, []nfa.Rule{
		{From: q0, On: nfa.Char('a'), To: q1},
		nfa.FreeMove(q1, q2),
		{From: q2, On: nfa.Char('b'), To: q2},
	})

	fmt.Println(d.Accepts("a"), d.Accepts("abbb"), d.Accepts("b"))
	// Output: true true false
}

// ExampleRuntime steps a runtime one character at a time.
func ExampleRuntime() {
	d := nfa.Compile(pattern.Str("hi"))
	r := d.NewRuntime()

	r.Read('h')
	fmt.Println(r.Accepting())
	r.Read('i')
	fmt.Println(r.Accepting())
	// Output:
	// false
	// true
}
