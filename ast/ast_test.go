package ast

import "testing"

func TestClassBracketedCharactersLiteralsAndRanges(t *testing.T) {
	node := NewClassBracketed(false, []ClassItem{
		ClassItemLiteral{Value: 'x'},
		ClassItemRange{Start: 'a', End: 'c'},
	})
	cb := node.(*ClassBracketed)
	chars := cb.Characters()

	for _, want := range []rune{'x', 'a', 'b', 'c'} {
		if _, ok := chars[want]; !ok {
			t.Errorf("Characters() missing %q", want)
		}
	}
	if _, ok := chars['d']; ok {
		t.Errorf("Characters() should not contain 'd'")
	}
}

func TestClassBracketedCharactersNegated(t *testing.T) {
	node := NewClassBracketed(true, []ClassItem{
		ClassItemRange{Start: 'a', End: 'z'},
	})
	cb := node.(*ClassBracketed)
	chars := cb.Characters()

	if _, ok := chars['m']; ok {
		t.Errorf("negated class should not contain 'm'")
	}
	if _, ok := chars['5']; !ok {
		t.Errorf("negated class should contain '5'")
	}
}

func TestClassBracketedCharactersMalformedRangeDropped(t *testing.T) {
	// A malformed range (start > end) should never reach ClassBracketed in
	// practice (package parse drops it), but Characters must not panic if
	// it somehow did: it should simply contribute nothing.
	node := NewClassBracketed(false, []ClassItem{
		ClassItemRange{Start: 'z', End: 'a'},
		ClassItemLiteral{Value: 'q'},
	})
	cb := node.(*ClassBracketed)
	chars := cb.Characters()

	if len(chars) != 1 {
		t.Fatalf("Characters() = %v, want exactly {'q'}", chars)
	}
	if _, ok := chars['q']; !ok {
		t.Errorf("Characters() should contain 'q'")
	}
}

func TestClassBracketedCharactersMemoized(t *testing.T) {
	node := NewClassBracketed(false, []ClassItem{ClassItemLiteral{Value: 'a'}})
	cb := node.(*ClassBracketed)

	first := cb.Characters()
	second := cb.Characters()

	if len(first) != len(second) {
		t.Fatalf("memoized Characters() call returned a different result")
	}
}

func TestClassBracketedCharactersNestedClass(t *testing.T) {
	node := NewClassBracketed(false, []ClassItem{
		ClassItemClass{Kind: ClassDigit},
	})
	cb := node.(*ClassBracketed)
	chars := cb.Characters()

	if _, ok := chars['5']; !ok {
		t.Errorf("Characters() should contain '5' from nested \\d")
	}
	if _, ok := chars['a']; ok {
		t.Errorf("Characters() should not contain 'a'")
	}
}

func TestCharClassCharacters(t *testing.T) {
	cc := &CharClass{Kind: ClassWhitespace}
	chars := cc.Characters()
	if _, ok := chars[' ']; !ok {
		t.Errorf("Characters() should contain ' '")
	}
	if _, ok := chars['a']; ok {
		t.Errorf("Characters() should not contain 'a'")
	}
}

func TestRepKindString(t *testing.T) {
	tests := []struct {
		kind RepKind
		want string
	}{
		{ZeroOrOne, "?"},
		{ZeroOrMore, "*"},
		{OneOrMore, "+"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("RepKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
