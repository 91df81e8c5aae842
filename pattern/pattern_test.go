package pattern

import "testing"

func TestString(t *testing.T) {
	a, b, c := Literal{Char: 'a'}, Literal{Char: 'b'}, Literal{Char: 'c'}

	tests := []struct {
		name string
		p    Pattern
		want string
	}{
		{"empty", Empty{}, ""},
		{"literal", a, "a"},
		{"concatenate", Concatenate{Left: a, Right: b}, "ab"},
		{"choose", Choose{Left: a, Right: b}, "a|b"},
		{"repeat", Repeat{Inner: a}, "a*"},
		{"star of alternation", Repeat{Inner: Choose{Left: Concatenate{Left: a, Right: b}, Right: a}}, "(ab|a)*"},
		{"alternation then star", Concatenate{Left: Choose{Left: a, Right: b}, Right: Repeat{Inner: c}}, "(a|b)c*"},
		{"star of concatenation", Repeat{Inner: Concatenate{Left: a, Right: b}}, "(ab)*"},
		{"concatenation inside choice", Choose{Left: Concatenate{Left: a, Right: b}, Right: c}, "ab|c"},
		{"right nested concatenation", Concatenate{Left: a, Right: Concatenate{Left: b, Right: c}}, "abc"},
		{"nested choice", Choose{Left: a, Right: Choose{Left: b, Right: c}}, "a|b|c"},
		{"double star", Repeat{Inner: Repeat{Inner: a}}, "a**"},
		{"empty in choice", Choose{Left: Empty{}, Right: a}, "|a"},
		{"metacharacters unescaped", Concatenate{Left: Literal{Char: '|'}, Right: Literal{Char: '*'}}, "|*"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInspect(t *testing.T) {
	p := Star(Alt(Str("ab"), Lit('a')))
	if got := Inspect(p); got != "/(ab|a)*/" {
		t.Errorf("Inspect() = %q, want /(ab|a)*/", got)
	}
}

func TestPrecedenceOrder(t *testing.T) {
	a := Lit('a')
	ranks := []int{
		Precedence(Choose{Left: a, Right: a}),
		Precedence(Concatenate{Left: a, Right: a}),
		Precedence(Repeat{Inner: a}),
		Precedence(a),
	}
	for i := 1; i < len(ranks); i++ {
		if ranks[i-1] >= ranks[i] {
			t.Errorf("precedence ranks not increasing: %v", ranks)
		}
	}
	if Precedence(Empty{}) != Precedence(a) {
		t.Error("Empty and Literal should share the atom rank")
	}
}

func TestBuilders(t *testing.T) {
	tests := []struct {
		name string
		p    Pattern
		want string
	}{
		{"Str empty", Str(""), ""},
		{"Str", Str("abc"), "abc"},
		{"Concat none", Concat(), ""},
		{"Concat one", Concat(Lit('x')), "x"},
		{"Alt none", Alt(), ""},
		{"Alt many", Alt(Lit('a'), Lit('b'), Lit('c')), "a|b|c"},
		{"Star", Star(Str("ab")), "(ab)*"},
		{"unicode", Str("héllo"), "héllo"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}

	if _, ok := Str("").(Empty); !ok {
		t.Errorf("Str(\"\") = %T, want Empty", Str(""))
	}
	if _, ok := Concat(Lit('a'), Lit('b')).(Concatenate); !ok {
		t.Error("Concat of two patterns should be a Concatenate node")
	}
}

func TestWalkAndSize(t *testing.T) {
	p := Concatenate{Left: Choose{Left: Lit('a'), Right: Lit('b')}, Right: Repeat{Inner: Lit('c')}}

	var order []string
	Walk(p, func(n Pattern) bool {
		order = append(order, n.String())
		return true
	})
	want := []string{"(a|b)c*", "a|b", "a", "b", "c*", "c"}
	if len(order) != len(want) {
		t.Fatalf("Walk visited %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("visit %d = %q, want %q", i, order[i], want[i])
		}
	}

	if got := Size(p); got != 6 {
		t.Errorf("Size() = %d, want 6", got)
	}

	visited := 0
	Walk(p, func(n Pattern) bool {
		visited++
		_, isChoose := n.(Choose)
		return !isChoose
	})
	if visited != 4 {
		t.Errorf("pruned Walk visited %d nodes, want 4", visited)
	}
}
