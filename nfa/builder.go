package nfa

import (
	"sort"

	"github.com/coregx/regexfsm/alphabet"
	"github.com/coregx/regexfsm/ast"
	"github.com/coregx/regexfsm/internal/conv"
)

// frag is a subgraph's entry/exit pair, the `(start, end)` Thompson
// fragment built per AST node.
type frag struct {
	start, end StateID
}

// builder accumulates states while walking a flattened AST in reverse.
type builder struct {
	states       []State
	characterSet map[rune]struct{}
}

// Build compiles an AST into an NFA via Thompson construction, walking
// ast.Flatten(root) in reverse so every child fragment is already built by
// the time its parent is processed.
func Build(root ast.Node) *NFA {
	layers := ast.Flatten(root)

	b := &builder{
		states:       make([]State, 0, len(layers)*2),
		characterSet: make(map[rune]struct{}),
	}

	results := make([]frag, len(layers))
	for i := len(layers) - 1; i >= 0; i-- {
		results[i] = b.compileLayer(layers[i], results)
	}

	root0 := results[0]
	b.states[root0.end].Accepting = true

	return &NFA{
		States:       b.states,
		Start:        root0.start,
		CharacterSet: b.characterSet,
	}
}

func (b *builder) compileLayer(layer ast.Layer, results []frag) frag {
	switch layer.Kind {
	case ast.LayerAlternation:
		left, right := results[layer.Left], results[layer.Right]
		start, end := b.addNode(), b.addNode()
		b.epsilon(start, left.start)
		b.epsilon(start, right.start)
		b.epsilon(left.end, end)
		b.epsilon(right.end, end)
		return frag{start, end}

	case ast.LayerConcat:
		left, right := results[layer.Left], results[layer.Right]
		b.epsilon(left.end, right.start)
		return frag{left.start, right.end}

	case ast.LayerRepetition:
		child := results[layer.Left]
		start, end := b.addNode(), b.addNode()
		b.epsilon(start, child.start)
		b.epsilon(child.end, end)
		switch layer.RepKind {
		case ast.ZeroOrMore:
			b.epsilon(child.start, end)
			b.epsilon(child.end, child.start)
		case ast.OneOrMore:
			b.epsilon(child.end, child.start)
		case ast.ZeroOrOne:
			b.epsilon(child.start, end)
		}
		return frag{start, end}

	case ast.LayerDot:
		return b.alternationOverCharacters(alphabet.All())

	case ast.LayerCharClass:
		return b.alternationOverCharacters(ast.ClassKindCharacters(layer.ClassKind, layer.Negated))

	case ast.LayerClassBracketed:
		return b.alternationOverCharacters(layer.Bracketed.Characters())

	case ast.LayerLiteral:
		start, end := b.addNode(), b.addNode()
		b.literal(start, end, layer.Char)
		return frag{start, end}

	default:
		panic("nfa: Build encountered an unknown AST layer kind")
	}
}

// alternationOverCharacters builds `s --c1--> e`, `s --c2--> e`, ... for
// every character in chars: the NFA fragment for Dot, a predefined class,
// or a bracketed class, all of which reduce to "match any one character in
// this set".
func (b *builder) alternationOverCharacters(chars map[rune]struct{}) frag {
	ordered := make([]rune, 0, len(chars))
	for c := range chars {
		ordered = append(ordered, c)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i] < ordered[j] })

	start, end := b.addNode(), b.addNode()
	for _, c := range ordered {
		b.literal(start, end, c)
	}
	return frag{start, end}
}

func (b *builder) addNode() StateID {
	id := StateID(conv.IntToUint32(len(b.states)))
	b.states = append(b.states, State{})
	return id
}

func (b *builder) literal(from, to StateID, c rune) {
	b.states[from].Edges = append(b.states[from].Edges, Edge{Char: c, To: to})
	b.characterSet[c] = struct{}{}
}

func (b *builder) epsilon(from, to StateID) {
	b.states[from].Edges = append(b.states[from].Edges, Edge{Epsilon: true, To: to})
}
