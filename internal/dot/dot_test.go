package dot

import (
	"errors"
	"strings"
	"testing"
)

func TestWrite(t *testing.T) {
	g := Graph{
		Prefix:  "q",
		Nodes:   []uint32{1, 0},
		Start:   0,
		Accepts: []uint32{1},
		Edges:   []Edge{{From: 0, To: 1, Label: "a"}},
	}

	var sb strings.Builder
	if err := Write(&sb, g); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	out := sb.String()

	for _, want := range []string{
		"digraph G {",
		"q0 [shape=circle];",
		"q1 [shape=doublecircle];",
		`q0 -> q1 [label="a"];`,
		"_start -> q0;",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "q0 [") > strings.Index(out, "q1 [") {
		t.Error("nodes should be emitted in ascending id order")
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteError(t *testing.T) {
	err := Write(failingWriter{}, Graph{Prefix: "n"})
	if err == nil || err.Error() != "disk full" {
		t.Errorf("Write() error = %v, want disk full", err)
	}
}
