// Package parse implements a recursive-descent parser over a restricted
// regex grammar, pattern string in, ast.Node out:
//
//	regexp        -> concatenation ('|' concatenation)*
//	concatenation -> quantifier (quantifier)*
//	quantifier    -> factor ('*' | '+' | '?')?
//	factor        -> '(' regexp ')' | '\' escape | '.' | '[' class_bracketed ']' | literal
//	class_bracketed -> '^'? class_item*
//	class_item    -> '\' escape | literal '-' literal | literal
//	escape        -> 'd'|'D'|'w'|'W'|'s'|'S' | any_char
//
// The parser is a cursor over the pattern with one character of lookahead;
// `(rune, bool)` returns stand in for an optional character.
package parse

import (
	"github.com/coregx/regexfsm/alphabet"
	"github.com/coregx/regexfsm/ast"
)

// Parser holds the parse cursor. It is not safe for concurrent use: each
// call to Parse constructs its own Parser.
type Parser struct {
	pattern []rune
	offset  int
}

// Parse parses pattern into an AST, or returns one of
// *InvalidCharactersError, *UnexpectedTokenError, *UnexpectedEndOfInputError.
// Parse never panics; every failure comes back as a typed error.
func Parse(pattern string) (ast.Node, error) {
	runes := []rune(pattern)

	var invalid []rune
	for _, c := range runes {
		if !alphabet.IsValid(c) {
			invalid = append(invalid, c)
		}
	}
	if len(invalid) > 0 {
		return nil, &InvalidCharactersError{Chars: invalid}
	}

	p := &Parser{pattern: runes}
	node, err := p.parseRegexp()
	if err != nil {
		return nil, err
	}

	// The grammar above never requires the whole pattern to be consumed by
	// itself (parseConcatenation simply stops extending once the next
	// character doesn't start a factor), but a second quantifier in a row,
	// or any other leftover character, has nothing left to attach to and is
	// a genuine error: quantifiers are non-chaining.
	if p.offset != len(p.pattern) {
		return nil, &UnexpectedTokenError{Actual: p.pattern[p.offset]}
	}
	return node, nil
}

func (p *Parser) parseRegexp() (ast.Node, error) {
	left, err := p.parseConcatenation()
	if err != nil {
		return nil, err
	}
	for {
		if _, ok := p.matchChar('|'); !ok {
			break
		}
		right, err := p.parseConcatenation()
		if err != nil {
			return nil, err
		}
		left = ast.NewAlternation(left, right)
	}
	return left, nil
}

func (p *Parser) parseConcatenation() (ast.Node, error) {
	left, err := p.parseQuantifier()
	if err != nil {
		return nil, err
	}
	for {
		c, ok := p.peek()
		if !ok || !p.inFactorFirstSet(c) {
			break
		}
		// Not consumed here: the character is part of FIRST(factor), so
		// parseQuantifier (via parseFactor) will consume it itself.
		right, err := p.parseQuantifier()
		if err != nil {
			return nil, err
		}
		left = ast.NewConcat(left, right)
	}
	return left, nil
}

func (p *Parser) parseQuantifier() (ast.Node, error) {
	factor, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	c, ok := p.matchCond(alphabet.IsQuantifier)
	if !ok {
		return factor, nil
	}
	var kind ast.RepKind
	switch c {
	case '*':
		kind = ast.ZeroOrMore
	case '+':
		kind = ast.OneOrMore
	case '?':
		kind = ast.ZeroOrOne
	}
	return ast.NewRepetition(kind, factor), nil
}

func (p *Parser) parseFactor() (ast.Node, error) {
	c, ok := p.next()
	if !ok {
		return nil, &UnexpectedEndOfInputError{}
	}

	switch {
	case c == '(':
		inner, err := p.parseRegexp()
		if err != nil {
			return nil, err
		}
		if _, ok := p.matchChar(')'); !ok {
			return nil, &UnexpectedEndOfInputError{}
		}
		return inner, nil

	case c == '\\':
		v, ok := p.next()
		if !ok {
			return nil, &UnexpectedEndOfInputError{}
		}
		if kind, negated, isClass := classFromEscape(v); isClass {
			return ast.NewCharClass(kind, negated), nil
		}
		return ast.NewLiteral(v), nil

	case !alphabet.IsSpecial(c):
		return ast.NewLiteral(c), nil

	case c == '.':
		return ast.NewDot(), nil

	case c == '[':
		inner, err := p.parseClassBracketed()
		if err != nil {
			return nil, err
		}
		if _, ok := p.matchChar(']'); !ok {
			return nil, &UnexpectedEndOfInputError{}
		}
		return inner, nil

	default:
		return nil, &UnexpectedTokenError{Actual: c}
	}
}

func (p *Parser) parseClassBracketed() (ast.Node, error) {
	negated := false
	if _, ok := p.matchChar('^'); ok {
		negated = true
	}

	var items []ast.ClassItem
	for {
		start, ok := p.matchCond(func(c rune) bool { return c != ']' })
		if !ok {
			break
		}

		if start == '\\' {
			v, ok := p.next()
			if !ok {
				return nil, &UnexpectedEndOfInputError{}
			}
			if kind, neg, isClass := classFromEscape(v); isClass {
				items = append(items, ast.ClassItemClass{Kind: kind, Negated: neg})
			} else {
				items = append(items, ast.ClassItemLiteral{Value: v})
			}
			continue
		}

		if _, ok := p.matchChar('-'); ok {
			end, ok := p.next()
			if !ok {
				return nil, &UnexpectedEndOfInputError{}
			}
			if start > end {
				// x-y with x > y is silently dropped, not an error.
				continue
			}
			items = append(items, ast.ClassItemRange{Start: start, End: end})
			continue
		}

		items = append(items, ast.ClassItemLiteral{Value: start})
	}

	return ast.NewClassBracketed(negated, items), nil
}

// inFactorFirstSet reports whether c can start a factor, i.e. whether
// concatenation should keep extending onto another quantifier/factor.
func (p *Parser) inFactorFirstSet(c rune) bool {
	return !alphabet.IsSpecial(c) || c == '(' || c == '\\' || c == '.' || c == '['
}

func (p *Parser) peek() (rune, bool) {
	if p.offset >= len(p.pattern) {
		return 0, false
	}
	return p.pattern[p.offset], true
}

func (p *Parser) matchCond(pred func(rune) bool) (rune, bool) {
	c, ok := p.peek()
	if !ok || !pred(c) {
		return 0, false
	}
	p.offset++
	return c, true
}

func (p *Parser) matchChar(expected rune) (rune, bool) {
	return p.matchCond(func(c rune) bool { return c == expected })
}

func (p *Parser) next() (rune, bool) {
	c, ok := p.peek()
	if !ok {
		return 0, false
	}
	p.offset++
	return c, true
}

// classFromEscape maps an escaped letter to a predefined character class.
// Any other character is a plain escaped literal.
func classFromEscape(v rune) (kind ast.ClassKind, negated bool, ok bool) {
	switch v {
	case 'd':
		return ast.ClassDigit, false, true
	case 'D':
		return ast.ClassDigit, true, true
	case 'w':
		return ast.ClassWord, false, true
	case 'W':
		return ast.ClassWord, true, true
	case 's':
		return ast.ClassWhitespace, false, true
	case 'S':
		return ast.ClassWhitespace, true, true
	default:
		return 0, false, false
	}
}
