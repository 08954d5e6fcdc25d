package ast

import "github.com/coregx/regexfsm/alphabet"

// Characters returns the concrete character set a predefined class node
// matches, applying negation against alphabet.All() when requested.
func (c *CharClass) Characters() map[rune]struct{} {
	return classCharacters(c.Kind, c.Negated)
}

// ClassKindCharacters is the exported form of classCharacters, used by
// package nfa to expand a flattened CharClass layer (which only carries the
// kind/negated pair, not the original node pointer).
func ClassKindCharacters(kind ClassKind, negated bool) map[rune]struct{} {
	return classCharacters(kind, negated)
}

func classCharacters(kind ClassKind, negated bool) map[rune]struct{} {
	switch kind {
	case ClassDigit:
		return alphabet.Digits(negated)
	case ClassWord:
		return alphabet.Word(negated)
	case ClassWhitespace:
		return alphabet.Whitespace(negated)
	default:
		return map[rune]struct{}{}
	}
}

// Characters expands a bracketed class to its concrete character set,
// unioning every item (literals, ranges, nested predefined classes) and
// then complementing against alphabet.All() if the class is negated. The
// expansion is computed once and cached; later calls are free.
func (b *ClassBracketed) Characters() map[rune]struct{} {
	b.once.Do(func() {
		set := make(map[rune]struct{})
		for _, item := range b.Items {
			switch it := item.(type) {
			case ClassItemLiteral:
				set[it.Value] = struct{}{}
			case ClassItemRange:
				if it.Start <= it.End {
					for r := it.Start; r <= it.End; r++ {
						set[r] = struct{}{}
					}
				}
			case ClassItemClass:
				for r := range classCharacters(it.Kind, it.Negated) {
					set[r] = struct{}{}
				}
			}
		}

		if b.Negated {
			negated := make(map[rune]struct{})
			for r := range alphabet.All() {
				if _, in := set[r]; !in {
					negated[r] = struct{}{}
				}
			}
			set = negated
		}

		b.chars = set
	})
	return b.chars
}
