// Command fa runs finite automata described in rules files.
//
// Usage:
//
//	fa -rules FILE [-dfa | -determinize] [-dot] [-log-level LEVEL] input...
//
// Each input is printed with its verdict:
//
//	accept "abab"
//	reject "ba"
//
// With -dfa the file must describe a deterministic automaton; reading a
// character with no transition is an error. With -determinize the file is
// read as an NFA and converted by subset construction first. -dot writes the
// automaton in Graphviz format instead of running it.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/coregx/thompson/dfa"
	"github.com/coregx/thompson/rules"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// recognizer is the common surface of nfa.Design and dfa.Design.
type recognizer interface {
	Accepts(input string) bool
	WriteDOT(w io.Writer) error
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "fa: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("fa", flag.ContinueOnError)
	fs.SetOutput(stderr)
	rulesPath := fs.String("rules", "", "path to rules file")
	useDFA := fs.Bool("dfa", false, "read the rules as a deterministic automaton")
	determinize := fs.Bool("determinize", false, "determinize the rules before running")
	maxStates := fs.Int("max-states", 10000, "state limit for -determinize (0 for none)")
	dot := fs.Bool("dot", false, "write the automaton in Graphviz DOT format")
	logLevel := fs.String("log-level", getEnv("FA_LOG_LEVEL", "warn"), "log level: debug, info, warn, error")
	if err := fs.Parse(args); err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: parseLogLevel(*logLevel),
	}))

	if *rulesPath == "" {
		return errors.New("-rules is required")
	}
	if *useDFA && *determinize {
		return errors.New("-dfa and -determinize are mutually exclusive")
	}

	f, err := rules.ParseFile(*rulesPath)
	if err != nil {
		return err
	}
	logger.Debug("rules loaded",
		"version", Version,
		"path", *rulesPath,
		"statements", len(f.Statements),
		"states", len(f.StateNames()),
	)

	rec, err := load(f, *useDFA, *determinize, *maxStates, logger)
	if err != nil {
		return err
	}

	if *dot {
		return rec.WriteDOT(stdout)
	}

	for _, input := range fs.Args() {
		ok, err := accepts(rec, input)
		if err != nil {
			return err
		}
		verdict := "reject"
		if ok {
			verdict = "accept"
		}
		logger.Debug("input read", "input", input, "verdict", verdict)
		if _, err := fmt.Fprintf(stdout, "%s %q\n", verdict, input); err != nil {
			return err
		}
	}
	return nil
}

func load(f *rules.File, useDFA, determinize bool, maxStates int, logger *slog.Logger) (recognizer, error) {
	if useDFA {
		d, err := f.DFA()
		if err != nil {
			return nil, err
		}
		return d, nil
	}

	d, err := f.NFA()
	if err != nil {
		return nil, err
	}
	if !determinize {
		return d, nil
	}

	det, err := dfa.Determinize(d, maxStates)
	if err != nil {
		return nil, err
	}
	logger.Info("determinized",
		"nfa_states", len(d.States()),
		"dfa_states", len(det.States()),
	)
	return partial{det}, nil
}

// partial runs a determinized automaton. Its alphabet holds only the
// characters the NFA mentions, so any other character rejects.
type partial struct {
	*dfa.Design
}

func (p partial) Accepts(input string) bool {
	return p.Recognize(input)
}

// accepts runs rec on input, turning an undefined DFA transition into an
// error.
func accepts(rec recognizer, input string) (ok bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			lookupErr, isLookup := r.(*dfa.LookupError)
			if !isLookup {
				panic(r)
			}
			err = fmt.Errorf("input %q: %w", input, lookupErr)
		}
	}()
	return rec.Accepts(input), nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
