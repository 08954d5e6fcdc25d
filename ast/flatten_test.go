package ast

import "testing"

func TestFlattenSingleLiteral(t *testing.T) {
	layers := Flatten(NewLiteral('a'))
	if len(layers) != 1 {
		t.Fatalf("len(layers) = %d, want 1", len(layers))
	}
	if layers[0].Kind != LayerLiteral || layers[0].Char != 'a' {
		t.Errorf("layers[0] = %+v, want Literal 'a'", layers[0])
	}
}

func TestFlattenConcatChildIndicesPointAtChildren(t *testing.T) {
	root := NewConcat(NewLiteral('a'), NewLiteral('b'))
	layers := Flatten(root)

	if len(layers) != 3 {
		t.Fatalf("len(layers) = %d, want 3", len(layers))
	}
	if layers[0].Kind != LayerConcat {
		t.Fatalf("layers[0].Kind = %v, want LayerConcat", layers[0].Kind)
	}

	left := layers[layers[0].Left]
	right := layers[layers[0].Right]
	if left.Kind != LayerLiteral || left.Char != 'a' {
		t.Errorf("left child = %+v, want Literal 'a'", left)
	}
	if right.Kind != LayerLiteral || right.Char != 'b' {
		t.Errorf("right child = %+v, want Literal 'b'", right)
	}
}

func TestFlattenEveryChildIndexExceedsItsParent(t *testing.T) {
	root := NewAlternation(
		NewConcat(NewLiteral('a'), NewLiteral('b')),
		NewRepetition(ZeroOrMore, NewLiteral('c')),
	)
	layers := Flatten(root)

	for i, layer := range layers {
		switch layer.Kind {
		case LayerAlternation, LayerConcat:
			if layer.Left <= i || layer.Right <= i {
				t.Errorf("layer %d: children (%d, %d) must both exceed parent index", i, layer.Left, layer.Right)
			}
		case LayerRepetition:
			if layer.Left <= i {
				t.Errorf("layer %d: child %d must exceed parent index", i, layer.Left)
			}
		}
	}
}

func TestFlattenDotAndCharClassAreLeaves(t *testing.T) {
	root := NewConcat(NewDot(), NewCharClass(ClassDigit, false))
	layers := Flatten(root)

	left := layers[layers[0].Left]
	right := layers[layers[0].Right]
	if left.Kind != LayerDot {
		t.Errorf("left.Kind = %v, want LayerDot", left.Kind)
	}
	if right.Kind != LayerCharClass || right.ClassKind != ClassDigit {
		t.Errorf("right = %+v, want CharClass(Digit)", right)
	}
}
