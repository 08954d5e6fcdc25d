// Package literal extracts a required literal substring from a pattern's
// AST, when one exists, so callers can fast-reject an input before ever
// running the DFA.
//
// The extraction is narrow: this dialect's AST has no capture groups or
// anchors to reason about, only a pure spine of Concat nodes over Literal
// leaves.
package literal

import "github.com/coregx/regexfsm/ast"

// Extract walks root and returns the literal string it spells out, along
// with whether that string is an exact match for the whole pattern (true)
// or merely a required substring (false, e.g. a literal spine followed by
// a quantifier, alternation, or class).
//
// Extract returns ("", false) when no useful literal can be pulled out,
// for example a pattern that is a bare Dot, CharClass, or Alternation at
// its root.
func Extract(root ast.Node) (lit string, exact bool) {
	runes, exact := extract(root)
	if len(runes) == 0 {
		return "", false
	}
	return string(runes), exact
}

// extract recurses over a node, returning the literal characters it
// spells out exactly, and whether every character consumed by root was
// accounted for in that spelling (false as soon as any sub-node isn't a
// Literal or a Concat of such).
func extract(node ast.Node) (runes []rune, exact bool) {
	switch n := node.(type) {
	case *ast.Literal:
		return []rune{n.Value}, true

	case *ast.Concat:
		left, leftExact := extract(n.Left)
		if !leftExact {
			return left, false
		}
		right, rightExact := extract(n.Right)
		return append(left, right...), rightExact

	default:
		return nil, false
	}
}
