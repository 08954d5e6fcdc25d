// Package regexfsm compiles a restricted ASCII regex dialect into a
// deterministic finite automaton and matches strings against it.
//
// The pipeline is parse → Thompson NFA construction → subset construction,
// each stage implemented in its own package (parse, nfa, dfa); this
// package is the one-shot facade plus the matcher that drives the
// resulting DFA.
//
// Basic usage:
//
//	re, err := regexfsm.Compile(`[a-z]+@[a-z]+\.[a-z]+`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	re.Accepts("user@example.com") // true
//	re.Test("contact user@example.com today") // true
package regexfsm

import (
	"github.com/coregx/regexfsm/dfa"
	"github.com/coregx/regexfsm/literal"
	"github.com/coregx/regexfsm/nfa"
	"github.com/coregx/regexfsm/parse"
	"github.com/coregx/regexfsm/prefilter"
)

// Matcher is a compiled pattern: an immutable DFA plus an optional literal
// prefilter. A Matcher is safe for concurrent use by multiple goroutines,
// since nothing about Accepts or Test mutates it.
type Matcher struct {
	dfa       *dfa.DFA
	pattern   string
	prefilter *prefilter.Prefilter
}

// Compile parses and compiles pattern, returning a *CompileError wrapping
// the underlying parse.InvalidCharactersError, parse.UnexpectedTokenError,
// or parse.UnexpectedEndOfInputError on failure.
//
// Example:
//
//	re, err := regexfsm.Compile(`\d\d\d-\d\d\d\d`)
func Compile(pattern string) (*Matcher, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// MustCompile compiles pattern and panics if it fails. Useful for patterns
// known to be valid at compile time, e.g. package-level var initializers.
//
// Example:
//
//	var wordPattern = regexfsm.MustCompile(`\w+`)
func MustCompile(pattern string) *Matcher {
	m, err := Compile(pattern)
	if err != nil {
		panic("regexfsm: Compile(" + pattern + "): " + err.Error())
	}
	return m
}

// CompileWithConfig compiles pattern under a caller-supplied Config.
func CompileWithConfig(pattern string, config Config) (*Matcher, error) {
	root, err := parse.Parse(pattern)
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}

	n := nfa.Build(root)
	d := dfa.Build(n)

	m := &Matcher{dfa: d, pattern: pattern}

	if config.EnablePrefilter {
		if lit, _ := literal.Extract(root); lit != "" {
			m.prefilter = prefilter.New(lit)
		}
	}

	return m, nil
}

// Accepts reports whether input, taken as a whole, is matched by the
// compiled pattern: starting at the DFA's start state, consume input one
// character at a time, following the edge labelled by that character;
// any character with no matching edge rejects immediately. After the last
// character, the result is the current state's accepting flag.
func (m *Matcher) Accepts(input string) bool {
	state := m.dfa.Start
	for _, c := range input {
		next, ok := m.dfa.Step(state, c)
		if !ok {
			return false
		}
		state = next
	}
	return m.dfa.IsAccepting(state)
}

// Test reports whether any substring of input is Accepts-matched.
//
// Rather than trying every (i, j) substring pair and re-running Accepts on
// each, this runs every start offset's DFA simulation concurrently in a
// single left-to-right pass: at each position a new thread begins at the
// start state, and every live thread steps on the current character in
// parallel, dying the moment its edge is missing. O(n^2) worst case, same
// decision as the naive scan.
func (m *Matcher) Test(input string) bool {
	if m.prefilter != nil && !m.prefilter.MayMatch([]byte(input)) {
		return false
	}

	var active []string
	for _, c := range input {
		active = append(active, m.dfa.Start)

		live := active[:0]
		for _, state := range active {
			next, ok := m.dfa.Step(state, c)
			if !ok {
				continue
			}
			if m.dfa.IsAccepting(next) {
				return true
			}
			live = append(live, next)
		}
		active = live
	}

	return false
}

// String returns the source pattern the Matcher was compiled from.
func (m *Matcher) String() string {
	return m.pattern
}
