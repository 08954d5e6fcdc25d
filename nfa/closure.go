package nfa

import (
	"strconv"
	"strings"

	"github.com/coregx/regexfsm/internal/conv"
	"github.com/coregx/regexfsm/internal/sparse"
)

// Closure is the ε-closure of a set of NFA states: the set itself (sorted,
// for a stable identity), whether any member is accepting, and a canonical
// string ID used to deduplicate DFA states during subset construction.
//
// The ID joins state indices in ascending order, so two closures with the
// same membership always produce the same ID regardless of the order their
// states were discovered or inserted in.
type Closure struct {
	ID        string
	Accepting bool
	States    []StateID
}

// EpsilonClosure computes the ε-closure of a single state.
func (n *NFA) EpsilonClosure(seed StateID) Closure {
	return n.EpsilonClosureSet([]StateID{seed})
}

// EpsilonClosureSet computes the ε-closure of a set of states: seed a stack
// with the input set, repeatedly pop a state and follow every ε-edge to a
// target not already in the closure, until the stack is empty.
func (n *NFA) EpsilonClosureSet(seeds []StateID) Closure {
	closure := sparse.NewSet(conv.IntToUint32(len(n.States)))
	stack := append([]StateID(nil), seeds...)

	for len(stack) > 0 {
		idx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		closure.Insert(uint32(idx))

		for _, e := range n.States[idx].Edges {
			if e.Epsilon && !closure.Contains(uint32(e.To)) {
				stack = append(stack, e.To)
			}
		}
	}

	sorted := closure.SortedValues()
	states := make([]StateID, len(sorted))
	accepting := false
	for i, v := range sorted {
		states[i] = StateID(v)
		if n.States[v].Accepting {
			accepting = true
		}
	}

	return Closure{
		ID:        canonicalID(sorted),
		Accepting: accepting,
		States:    states,
	}
}

// MoveSet computes the set of states reachable from closure on a single
// labelled edge c.
func (n *NFA) MoveSet(closure Closure, c rune) []StateID {
	seen := sparse.NewSet(conv.IntToUint32(len(n.States)))
	var out []StateID
	for _, s := range closure.States {
		for _, e := range n.States[s].Edges {
			if e.Epsilon || e.Char != c {
				continue
			}
			if !seen.Contains(uint32(e.To)) {
				seen.Insert(uint32(e.To))
				out = append(out, e.To)
			}
		}
	}
	return out
}

// canonicalID joins already-sorted state indices with commas. Two sets with
// the same membership always produce the same ID, regardless of discovery
// order.
func canonicalID(sorted []uint32) string {
	if len(sorted) == 0 {
		return ""
	}
	var sb strings.Builder
	for i, v := range sorted {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatUint(uint64(v), 10))
	}
	return sb.String()
}
