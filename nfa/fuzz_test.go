package nfa

import (
	"regexp"
	"strings"
	"testing"

	"github.com/coregx/thompson/pattern"
)

// genPattern decodes a small pattern over {a, b} from data. Used to derive
// arbitrary trees from fuzz input.
func genPattern(data []byte, depth int) (pattern.Pattern, []byte) {
	if len(data) == 0 || depth > 6 {
		return pattern.Literal{Char: 'a'}, data
	}
	op, data := data[0], data[1:]
	switch op % 6 {
	case 0:
		return pattern.Empty{}, data
	case 1:
		return pattern.Literal{Char: 'a' + rune(op/6%2)}, data
	case 2:
		l, data := genPattern(data, depth+1)
		r, data := genPattern(data, depth+1)
		return pattern.Concatenate{Left: l, Right: r}, data
	case 3:
		l, data := genPattern(data, depth+1)
		r, data := genPattern(data, depth+1)
		return pattern.Choose{Left: l, Right: r}, data
	case 4:
		inner, data := genPattern(data, depth+1)
		return pattern.Repeat{Inner: inner}, data
	default:
		return pattern.Literal{Char: 'b'}, data
	}
}

// toGoRegexp converts p to an equivalent fully grouped stdlib pattern.
func toGoRegexp(p pattern.Pattern) string {
	var sb strings.Builder
	var walk func(pattern.Pattern)
	walk = func(p pattern.Pattern) {
		switch p := p.(type) {
		case pattern.Empty:
			sb.WriteString("(?:)")
		case pattern.Literal:
			sb.WriteString(regexp.QuoteMeta(string(p.Char)))
		case pattern.Concatenate:
			sb.WriteString("(?:")
			walk(p.Left)
			walk(p.Right)
			sb.WriteString(")")
		case pattern.Choose:
			sb.WriteString("(?:")
			walk(p.Left)
			sb.WriteString("|")
			walk(p.Right)
			sb.WriteString(")")
		case pattern.Repeat:
			sb.WriteString("(?:")
			walk(p.Inner)
			sb.WriteString(")*")
		}
	}
	walk(p)
	return sb.String()
}

func TestCompile_AgreesWithStdlib(t *testing.T) {
	patterns := []pattern.Pattern{
		pattern.Star(pattern.Alt(pattern.Str("ab"), litA)),
		pattern.Concat(pattern.Alt(litA, litB), pattern.Star(litC)),
		pattern.Star(pattern.Concat(pattern.Star(litA), litB, pattern.Empty{})),
		pattern.Alt(pattern.Empty{}, pattern.Str("abc"), pattern.Star(pattern.Str("ba"))),
	}
	inputs := []string{"", "a", "b", "c", "ab", "ba", "aab", "abc", "bab", "abab", "acc", "bcc", "baba", "cab"}

	for _, p := range patterns {
		re := regexp.MustCompile("^" + toGoRegexp(p) + "$")
		d := Compile(p)
		for _, in := range inputs {
			if got, want := d.Accepts(in), re.MatchString(in); got != want {
				t.Errorf("%s Accepts(%q) = %v, stdlib says %v", p, in, got, want)
			}
		}
	}
}

func FuzzCompile(f *testing.F) {
	f.Add([]byte{4, 3, 2, 1, 7, 1}, "abab")
	f.Add([]byte{2, 0, 1}, "a")
	f.Add([]byte{4, 4, 0}, "")
	f.Add([]byte{3, 1, 7, 4, 1}, "bbb")

	f.Fuzz(func(t *testing.T, shape []byte, input string) {
		if len(shape) > 64 || len(input) > 64 {
			return
		}
		p, _ := genPattern(shape, 0)
		re, err := regexp.Compile("^" + toGoRegexp(p) + "$")
		if err != nil {
			t.Fatalf("oracle rejected %s: %v", toGoRegexp(p), err)
		}

		d := Compile(p)
		if got, want := d.Accepts(input), re.MatchString(input); got != want {
			t.Errorf("%s Accepts(%q) = %v, stdlib says %v", p, input, got, want)
		}

		re = regexp.MustCompile(toGoRegexp(p))
		if got, want := d.AcceptsSubstring(input), re.MatchString(input); got != want {
			t.Errorf("%s AcceptsSubstring(%q) = %v, stdlib says %v", p, input, got, want)
		}
	})
}
