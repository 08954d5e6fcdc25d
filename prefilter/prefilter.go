// Package prefilter provides a fast-reject check ahead of the DFA-based
// substring scan in Matcher.Test: if a pattern requires a literal
// substring somewhere in its match, an input that doesn't contain that
// literal anywhere can be rejected without ever running the DFA.
//
// Built on a single github.com/coregx/ahocorasick automaton over the one
// required literal that package literal can extract from a pattern's AST.
package prefilter

import "github.com/coregx/ahocorasick"

// Prefilter wraps an Aho-Corasick automaton built over a single required
// literal.
type Prefilter struct {
	automaton *ahocorasick.Automaton
}

// New builds a Prefilter that rejects any haystack not containing lit.
// Returns nil if the automaton fails to build (e.g. an empty literal), in
// which case callers should skip prefiltering rather than treat it as a
// hard compile error: the prefilter is an optimization, not a correctness
// requirement.
func New(lit string) *Prefilter {
	if lit == "" {
		return nil
	}
	builder := ahocorasick.NewBuilder()
	builder.AddPattern([]byte(lit))
	automaton, err := builder.Build()
	if err != nil {
		return nil
	}
	return &Prefilter{automaton: automaton}
}

// MayMatch reports whether haystack could possibly satisfy the pattern
// this Prefilter was built from. A false return is conclusive: the
// pattern cannot match anywhere in haystack. A true return means the
// caller must still run the real matcher.
func (p *Prefilter) MayMatch(haystack []byte) bool {
	if p == nil {
		return true
	}
	return p.automaton.IsMatch(haystack)
}
