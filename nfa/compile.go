package nfa

import (
	"github.com/coregx/thompson/pattern"
)

// Compiler translates pattern trees into NFA designs using Thompson's
// construction. Every fragment draws its states from the compiler's
// Allocator, so designs produced by one Compiler never share state ids.
type Compiler struct {
	alloc *Allocator
}

// NewCompiler returns a compiler drawing states from alloc.
// A nil alloc gets a private allocator.
//
// Transition tables and state sets are indexed by state id, so a design's
// memory grows with the largest id it uses. When many designs share one
// allocator, later designs pay for every id issued before them, however
// small they are.
func NewCompiler(alloc *Allocator) *Compiler {
	if alloc == nil {
		alloc = NewAllocator()
	}
	return &Compiler{alloc: alloc}
}

// Compile compiles p with a fresh allocator.
func Compile(p pattern.Pattern) *Design {
	return NewCompiler(nil).Compile(p)
}

// Allocator returns the allocator the compiler draws states from.
func (c *Compiler) Allocator() *Allocator {
	return c.alloc
}

// Compile compiles p into a design. Compilation never fails: every pattern
// variant has a total construction.
func (c *Compiler) Compile(p pattern.Pattern) *Design {
	f := c.compile(p)
	return newDesign(f.start, f.accepts, f.tm)
}

// fragment is a design under construction. Fragments are owned by the
// compiler, so their maps are extended in place rather than copied.
type fragment struct {
	start   State
	accepts *StateSet
	tm      *TransitionMap
}

// compile recursively compiles a pattern node.
func (c *Compiler) compile(p pattern.Pattern) fragment {
	switch p := p.(type) {
	case pattern.Empty:
		return c.compileEmpty()
	case pattern.Literal:
		return c.compileLiteral(p.Char)
	case pattern.Concatenate:
		return c.compileConcatenate(p.Left, p.Right)
	case pattern.Choose:
		return c.compileChoose(p.Left, p.Right)
	case pattern.Repeat:
		return c.compileRepeat(p.Inner)
	default:
		// Pattern is sealed; this is unreachable for trees built from the
		// pattern package.
		panic("nfa: unknown pattern variant")
	}
}

// compileEmpty compiles the empty language's single-state automaton:
// start and accept coincide and there are no transitions.
func (c *Compiler) compileEmpty() fragment {
	s := c.alloc.Fresh()
	return fragment{
		start:   s,
		accepts: NewStateSet(s),
		tm:      NewTransitionMap(),
	}
}

// compileLiteral compiles s0 --c--> s1.
func (c *Compiler) compileLiteral(ch rune) fragment {
	s0 := c.alloc.Fresh()
	s1 := c.alloc.Fresh()
	return fragment{
		start:   s0,
		accepts: NewStateSet(s1),
		tm:      NewTransitionMap(Rule{From: s0, On: Char(ch), To: s1}),
	}
}

// compileConcatenate runs left then right: every accept state of left gets a
// free move to the start of right.
func (c *Compiler) compileConcatenate(left, right pattern.Pattern) fragment {
	l := c.compile(left)
	r := c.compile(right)

	tm := l.tm
	tm.absorb(r.tm)
	l.accepts.Each(func(s State) {
		tm.add(FreeMove(s, r.start))
	})

	return fragment{start: l.start, accepts: r.accepts, tm: tm}
}

// compileChoose adds a new start state with free moves into both branches.
// The accept states are those of both branches.
func (c *Compiler) compileChoose(left, right pattern.Pattern) fragment {
	l := c.compile(left)
	r := c.compile(right)

	start := c.alloc.Fresh()
	tm := l.tm
	tm.absorb(r.tm)
	tm.add(FreeMove(start, l.start))
	tm.add(FreeMove(start, r.start))

	accepts := l.accepts
	accepts.UnionWith(r.accepts)

	return fragment{start: start, accepts: accepts, tm: tm}
}

// compileRepeat builds the Kleene star. A new state s is both the start and
// an accept state, so zero repetitions match directly. s enters the body by a
// free move and each accept state of the body loops back to the body's start.
func (c *Compiler) compileRepeat(inner pattern.Pattern) fragment {
	body := c.compile(inner)

	s := c.alloc.Fresh()
	tm := body.tm
	tm.add(FreeMove(s, body.start))
	body.accepts.Each(func(a State) {
		tm.add(FreeMove(a, body.start))
	})

	accepts := body.accepts
	accepts.Add(s)

	return fragment{start: s, accepts: accepts, tm: tm}
}
