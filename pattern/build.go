package pattern

// Lit returns the Literal pattern for r.
func Lit(r rune) Pattern {
	return Literal{Char: r}
}

// Str returns the concatenation of the characters of s, or Empty for "".
func Str(s string) Pattern {
	var ps []Pattern
	for _, r := range s {
		ps = append(ps, Literal{Char: r})
	}
	return Concat(ps...)
}

// Concat folds ps left to right into nested Concatenate nodes.
// Concat() is Empty and Concat(p) is p.
func Concat(ps ...Pattern) Pattern {
	if len(ps) == 0 {
		return Empty{}
	}
	out := ps[0]
	for _, p := range ps[1:] {
		out = Concatenate{Left: out, Right: p}
	}
	return out
}

// Alt folds ps left to right into nested Choose nodes.
// Alt() is Empty and Alt(p) is p.
func Alt(ps ...Pattern) Pattern {
	if len(ps) == 0 {
		return Empty{}
	}
	out := ps[0]
	for _, p := range ps[1:] {
		out = Choose{Left: out, Right: p}
	}
	return out
}

// Star returns Repeat{Inner: p}.
func Star(p Pattern) Pattern {
	return Repeat{Inner: p}
}

// Walk visits p and its descendants in depth-first pre-order. Children of a
// node are skipped when fn returns false for it.
func Walk(p Pattern, fn func(Pattern) bool) {
	stack := []Pattern{p}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(n) {
			continue
		}
		switch n := n.(type) {
		case Concatenate:
			stack = append(stack, n.Right, n.Left)
		case Choose:
			stack = append(stack, n.Right, n.Left)
		case Repeat:
			stack = append(stack, n.Inner)
		}
	}
}

// Size returns the number of nodes in p.
func Size(p Pattern) int {
	n := 0
	Walk(p, func(Pattern) bool {
		n++
		return true
	})
	return n
}
