package literal

import (
	"bytes"
	"unicode/utf8"

	"github.com/coregx/thompson/pattern"
)

// ExtractorConfig configures literal extraction limits.
//
// These limits keep extraction cheap for patterns whose language is finite
// but large, such as long chains of alternations.
type ExtractorConfig struct {
	// MaxLiterals limits the number of strings in an extracted language.
	// Default: 256.
	MaxLiterals int

	// MaxLiteralLen limits the byte length of each extracted string.
	// Default: 256.
	MaxLiteralLen int
}

// DefaultConfig returns the default extractor configuration.
func DefaultConfig() ExtractorConfig {
	return ExtractorConfig{
		MaxLiterals:   256,
		MaxLiteralLen: 256,
	}
}

// Extractor computes the finite languages of pattern trees.
//
// Example:
//
//	p := pattern.Concat(pattern.Alt(pattern.Str("foo"), pattern.Str("bar")), pattern.Str("baz"))
//	seq, ok := literal.New(literal.DefaultConfig()).Extract(p)
//	// ok == true, seq = ["barbaz", "foobaz"]
type Extractor struct {
	config ExtractorConfig
}

// New creates a new Extractor with the given configuration.
func New(config ExtractorConfig) *Extractor {
	return &Extractor{config: config}
}

// Extract returns the language of p when it is finite and within the
// configured limits. It reports false otherwise: when p repeats a body that
// can consume characters, when a limit would be exceeded, or when p has a
// literal that is not a valid rune (including utf8.RuneError).
func (e *Extractor) Extract(p pattern.Pattern) (*Seq, bool) {
	lits, ok := e.extract(p)
	if !ok {
		return nil, false
	}
	return NewSeq(lits...), true
}

// Extract computes the finite language of p using DefaultConfig limits,
// with MaxLiterals overridden by limit.
func Extract(p pattern.Pattern, limit int) (*Seq, bool) {
	config := DefaultConfig()
	config.MaxLiterals = limit
	return New(config).Extract(p)
}

func (e *Extractor) extract(p pattern.Pattern) ([]Literal, bool) {
	switch p := p.(type) {
	case pattern.Empty:
		return []Literal{{Bytes: []byte{}}}, true
	case pattern.Literal:
		// Invalid runes have no byte form of their own; leave them to the NFA.
		if p.Char == utf8.RuneError || !utf8.ValidRune(p.Char) {
			return nil, false
		}
		return []Literal{{Bytes: utf8.AppendRune(nil, p.Char)}}, true
	case pattern.Concatenate:
		return e.extractConcat(p.Left, p.Right)
	case pattern.Choose:
		return e.extractChoose(p.Left, p.Right)
	case pattern.Repeat:
		return e.extractRepeat(p.Inner)
	default:
		return nil, false
	}
}

// extractConcat forms the cross product of both sides' languages.
func (e *Extractor) extractConcat(left, right pattern.Pattern) ([]Literal, bool) {
	ls, ok := e.extract(left)
	if !ok {
		return nil, false
	}
	rs, ok := e.extract(right)
	if !ok {
		return nil, false
	}
	if len(ls)*len(rs) > e.config.MaxLiterals {
		return nil, false
	}

	out := make([]Literal, 0, len(ls)*len(rs))
	for _, l := range ls {
		for _, r := range rs {
			if l.Len()+r.Len() > e.config.MaxLiteralLen {
				return nil, false
			}
			b := make([]byte, 0, l.Len()+r.Len())
			b = append(b, l.Bytes...)
			b = append(b, r.Bytes...)
			out = appendUnique(out, Literal{Bytes: b})
		}
	}
	return out, true
}

// extractChoose unions both sides' languages.
func (e *Extractor) extractChoose(left, right pattern.Pattern) ([]Literal, bool) {
	ls, ok := e.extract(left)
	if !ok {
		return nil, false
	}
	rs, ok := e.extract(right)
	if !ok {
		return nil, false
	}

	out := ls
	for _, r := range rs {
		out = appendUnique(out, r)
	}
	if len(out) > e.config.MaxLiterals {
		return nil, false
	}
	return out, true
}

// extractRepeat handles the star. Its language is finite only when the body
// cannot consume anything, in which case it is {""}.
func (e *Extractor) extractRepeat(inner pattern.Pattern) ([]Literal, bool) {
	lits, ok := e.extract(inner)
	if !ok {
		return nil, false
	}
	for _, l := range lits {
		if l.Len() > 0 {
			return nil, false
		}
	}
	return []Literal{{Bytes: []byte{}}}, true
}

func appendUnique(lits []Literal, lit Literal) []Literal {
	for _, l := range lits {
		if bytes.Equal(l.Bytes, lit.Bytes) {
			return lits
		}
	}
	return append(lits, lit)
}
