// Package alphabet defines the fixed set of characters this regex dialect
// understands, and the three predefined character classes (whitespace,
// digits, word characters) derived from it.
//
// The table and every derived set are process-wide and immutable once
// computed: a pattern's validity and a character's class membership never
// depend on anything but the character itself.
package alphabet

import "sync"

// entry records, for one supported character, whether it is reserved by the
// regex syntax and whether it is specifically one of the postfix
// quantifier symbols.
type entry struct {
	special    bool
	quantifier bool
}

// table is the static catalogue of every character this dialect accepts,
// either in a pattern or in an input string being matched against a
// compiled pattern. Characters absent from this map are invalid wherever
// they appear.
var table = map[rune]entry{
	'\t': {},
	'\n': {},
	'\r': {},
	' ':  {},
	'!':  {},
	'"':  {special: true},
	'#':  {},
	'$':  {},
	'%':  {},
	'&':  {},
	'\'': {},
	'(':  {special: true},
	')':  {special: true},
	'*':  {special: true, quantifier: true},
	'+':  {special: true, quantifier: true},
	',':  {},
	'-':  {},
	'.':  {special: true},
	'/':  {},
	':':  {},
	';':  {},
	'<':  {},
	'=':  {},
	'>':  {},
	'?':  {special: true, quantifier: true},
	'@':  {},
	'[':  {special: true},
	'\\': {special: true},
	']':  {special: true},
	'^':  {special: true},
	'_':  {},
	'`':  {},
	'{':  {},
	'|':  {special: true},
	'}':  {},
	'~':  {},
}

func init() {
	for c := '0'; c <= '9'; c++ {
		table[c] = entry{}
	}
	for c := 'A'; c <= 'Z'; c++ {
		table[c] = entry{}
	}
	for c := 'a'; c <= 'z'; c++ {
		table[c] = entry{}
	}
}

// IsValid reports whether r is part of the supported alphabet.
func IsValid(r rune) bool {
	_, ok := table[r]
	return ok
}

// IsSpecial reports whether r is reserved by the regex syntax (grouping,
// quantifiers, escapes, class brackets, alternation).
func IsSpecial(r rune) bool {
	return table[r].special
}

// IsQuantifier reports whether r is one of the postfix quantifier symbols
// `*`, `+`, `?`.
func IsQuantifier(r rune) bool {
	return table[r].quantifier
}

var (
	allOnce sync.Once
	allSet  map[rune]struct{}
)

// All returns every character in the alphabet. Computed once and cached;
// callers must treat the returned map as read-only.
func All() map[rune]struct{} {
	allOnce.Do(func() {
		allSet = make(map[rune]struct{}, len(table))
		for c := range table {
			allSet[c] = struct{}{}
		}
	})
	return allSet
}

var whitespaceChars = []rune{' ', '\t', '\n', '\r'}

var digitChars = func() []rune {
	cs := make([]rune, 0, 10)
	for c := '0'; c <= '9'; c++ {
		cs = append(cs, c)
	}
	return cs
}()

var wordChars = func() []rune {
	var cs []rune
	for c := 'a'; c <= 'z'; c++ {
		cs = append(cs, c)
	}
	for c := 'A'; c <= 'Z'; c++ {
		cs = append(cs, c)
	}
	for c := '0'; c <= '9'; c++ {
		cs = append(cs, c)
	}
	cs = append(cs, '_')
	return cs
}()

type classCache struct {
	once    sync.Once
	base    map[rune]struct{}
	negOnce sync.Once
	negated map[rune]struct{}
}

var (
	whitespaceCache classCache
	digitCache      classCache
	wordCache       classCache
)

func (c *classCache) get(base []rune, negated bool) map[rune]struct{} {
	if negated {
		c.negOnce.Do(func() {
			all := All()
			b := toSet(base)
			c.negated = make(map[rune]struct{}, len(all))
			for r := range all {
				if _, in := b[r]; !in {
					c.negated[r] = struct{}{}
				}
			}
		})
		return c.negated
	}
	c.once.Do(func() {
		c.base = toSet(base)
	})
	return c.base
}

func toSet(rs []rune) map[rune]struct{} {
	m := make(map[rune]struct{}, len(rs))
	for _, r := range rs {
		m[r] = struct{}{}
	}
	return m
}

// Whitespace returns {' ', '\t', '\n', '\r'}, or its complement within All()
// when negated is true.
func Whitespace(negated bool) map[rune]struct{} { return whitespaceCache.get(whitespaceChars, negated) }

// Digits returns '0'..'9', or its complement within All() when negated is true.
func Digits(negated bool) map[rune]struct{} { return digitCache.get(digitChars, negated) }

// Word returns 'A'..'Z' ∪ 'a'..'z' ∪ '0'..'9' ∪ '_', or its complement
// within All() when negated is true.
func Word(negated bool) map[rune]struct{} { return wordCache.get(wordChars, negated) }
