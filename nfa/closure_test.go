package nfa

import (
	"testing"

	"github.com/coregx/regexfsm/ast"
)

func TestEpsilonClosureSetIDIsOrderIndependent(t *testing.T) {
	n := Build(ast.NewAlternation(ast.NewLiteral('a'), ast.NewLiteral('b')))

	seeds := []StateID{n.Start}
	a := n.EpsilonClosureSet(seeds)

	reversed := append([]StateID(nil), a.States...)
	for i, j := 0, len(reversed)-1; i < j; i, j = i+1, j-1 {
		reversed[i], reversed[j] = reversed[j], reversed[i]
	}
	b := n.EpsilonClosureSet(reversed)

	if a.ID != b.ID {
		t.Errorf("closure ID depends on seed order: %q vs %q", a.ID, b.ID)
	}
}

func TestEpsilonClosureSetDistinctStatesDistinctIDs(t *testing.T) {
	n := Build(ast.NewConcat(ast.NewLiteral('a'), ast.NewLiteral('b')))

	start := n.EpsilonClosure(n.Start)
	afterA := n.EpsilonClosureSet(n.MoveSet(start, 'a'))

	if start.ID == afterA.ID {
		t.Errorf("distinct state sets produced the same canonical ID")
	}
}

func TestMoveSetDeduplicatesTargets(t *testing.T) {
	// a|a: both alternatives consume 'a' and, after Thompson construction,
	// can reach overlapping target states. MoveSet must not return
	// duplicate StateIDs.
	n := Build(ast.NewAlternation(ast.NewLiteral('a'), ast.NewLiteral('a')))
	start := n.EpsilonClosure(n.Start)

	moves := n.MoveSet(start, 'a')
	seen := make(map[StateID]bool)
	for _, s := range moves {
		if seen[s] {
			t.Fatalf("MoveSet returned duplicate state %v", s)
		}
		seen[s] = true
	}
}
