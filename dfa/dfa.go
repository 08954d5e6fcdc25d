// Package dfa implements subset construction: converting an nfa.NFA into a
// deterministic finite automaton by treating each reachable ε-closure as
// one DFA state.
//
// Construction here is eager and unconditional. Every reachable closure is
// explored up front, with no lazy on-demand expansion, no state-count cap,
// and no cache eviction: this dialect's alphabet is bounded by whatever
// literals and classes actually appear in the pattern, so the full state
// space is always small enough to build in one pass.
package dfa

import (
	"sort"

	"github.com/coregx/regexfsm/nfa"
)

// Edge is one outgoing transition: on Char, move to the state identified by
// To. Within a single State's edge list there is at most one edge per
// character.
type Edge struct {
	Char rune
	To   string
}

// State is one DFA node: its canonical ID, whether it accepts, and its
// outgoing edges. A missing edge for a character means rejection from this
// state on that input.
type State struct {
	ID        string
	Accepting bool
	Edges     []Edge
}

// DFA maps each reachable state ID to its node, plus the distinguished
// start ID.
type DFA struct {
	States map[string]*State
	Start  string
}

// Build runs subset construction over n:
//  1. E0 = ε-closure({n.Start}); create its DFA state; push it on a work stack.
//  2. While the stack is non-empty, pop a closure E and, for every character
//     in n.CharacterSet, compute the move set M = move(E, c). If M is
//     non-empty, find or create the DFA state for ε-closure(M) and add an
//     edge (c, that state) from E's state.
func Build(n *nfa.NFA) *DFA {
	chars := sortedCharacterSet(n.CharacterSet)

	start := n.EpsilonClosure(n.Start)
	d := &DFA{
		States: map[string]*State{start.ID: newState(start)},
		Start:  start.ID,
	}

	stack := []nfa.Closure{start}
	for len(stack) > 0 {
		closure := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, c := range chars {
			moveSet := n.MoveSet(closure, c)
			if len(moveSet) == 0 {
				continue
			}

			next := n.EpsilonClosureSet(moveSet)
			if _, exists := d.States[next.ID]; !exists {
				d.States[next.ID] = newState(next)
				stack = append(stack, next)
			}

			cur := d.States[closure.ID]
			cur.Edges = append(cur.Edges, Edge{Char: c, To: next.ID})
		}
	}

	return d
}

func newState(c nfa.Closure) *State {
	return &State{ID: c.ID, Accepting: c.Accepting}
}

func sortedCharacterSet(set map[rune]struct{}) []rune {
	out := make([]rune, 0, len(set))
	for c := range set {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Step follows the edge labelled c from the state identified by id, if one
// exists. Used by both the single-start Accepts path and the multi-start
// Test path in the root package's Matcher.
func (d *DFA) Step(id string, c rune) (string, bool) {
	state, ok := d.States[id]
	if !ok {
		return "", false
	}
	for _, e := range state.Edges {
		if e.Char == c {
			return e.To, true
		}
	}
	return "", false
}

// IsAccepting reports whether the state identified by id accepts.
func (d *DFA) IsAccepting(id string) bool {
	state, ok := d.States[id]
	return ok && state.Accepting
}
