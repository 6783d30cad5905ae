package pregex

import (
	"fmt"
	"strings"

	"github.com/manoss96/pregex/internal/ranges"
)

// Class is a character class: a canonical set of rune ranges plus a
// polarity. A regular class matches any character inside the set, a negated
// class any character outside it. Class embeds its compiled Pregex form, so
// a class can be used anywhere a pattern is expected.
type Class struct {
	Pregex
	negated bool
	set     []ranges.Range
}

func newClass(set []ranges.Range, negated bool) *Class {
	set = ranges.Normalize(set)
	c := &Class{negated: negated, set: set}
	c.Pregex = *newPregex(classText(set, negated), kindClass)
	return c
}

// classMetachars must be escaped inside a bracket expression.
const classMetachars = `\^]-`

// classRune renders a single rune for use inside brackets. Common control
// characters get their mnemonic escapes so compiled patterns stay readable.
func classRune(r rune) string {
	switch r {
	case '\t':
		return `\t`
	case '\n':
		return `\n`
	case '\v':
		return `\v`
	case '\f':
		return `\f`
	case '\r':
		return `\r`
	}
	if strings.ContainsRune(classMetachars, r) {
		return `\` + string(r)
	}
	return string(r)
}

// classText compiles a canonical range set to regex text. A regular class
// holding exactly one character compiles to that bare character rather than
// a bracket expression.
func classText(set []ranges.Range, negated bool) string {
	if !negated && len(set) == 1 && set[0].Size() == 1 {
		return Text(string(set[0].Lo)).Regex()
	}
	var b strings.Builder
	b.WriteByte('[')
	if negated {
		b.WriteByte('^')
	}
	for _, r := range set {
		switch r.Size() {
		case 1:
			b.WriteString(classRune(r.Lo))
		case 2:
			b.WriteString(classRune(r.Lo))
			b.WriteString(classRune(r.Hi))
		default:
			b.WriteString(classRune(r.Lo))
			b.WriteByte('-')
			b.WriteString(classRune(r.Hi))
		}
	}
	b.WriteByte(']')
	return b.String()
}

// Negated reports whether the class matches the complement of its set.
func (c *Class) Negated() bool {
	return c.negated
}

// MatchesRune reports whether the class covers the rune r, taking polarity
// into account.
func (c *Class) MatchesRune(r rune) bool {
	return ranges.Contains(c.set, r) != c.negated
}

// Union returns a class matching any character that c or any of the others
// matches. All operands must share c's polarity.
func (c *Class) Union(others ...*Class) (*Class, error) {
	set := c.set
	for _, o := range others {
		if o.negated != c.negated {
			return nil, fmt.Errorf("union of %q and %q: %w", c.Regex(), o.Regex(), ErrIncompatiblePolarity)
		}
		set = ranges.Union(set, o.set)
	}
	return newClass(set, c.negated), nil
}

// Subtract returns a class whose set is c's set with every character of the
// others removed. All operands must share c's polarity, and the result must
// keep at least one character.
func (c *Class) Subtract(others ...*Class) (*Class, error) {
	set := c.set
	for _, o := range others {
		if o.negated != c.negated {
			return nil, fmt.Errorf("subtraction of %q from %q: %w", o.Regex(), c.Regex(), ErrIncompatiblePolarity)
		}
		set = ranges.Subtract(set, o.set)
	}
	if len(set) == 0 {
		return nil, fmt.Errorf("subtraction from %q: %w", c.Regex(), ErrEmptyClass)
	}
	return newClass(set, c.negated), nil
}

// Negate returns the class with its polarity flipped. The underlying set is
// unchanged.
func (c *Class) Negate() *Class {
	return newClass(c.set, !c.negated)
}

// Any returns a pattern matching any character. Patterns compile with the
// single-line option, so this includes newlines.
func Any() *Pregex {
	return newPregex(".", kindClass)
}

var (
	lowercaseSet  = []ranges.Range{{Lo: 'a', Hi: 'z'}}
	uppercaseSet  = []ranges.Range{{Lo: 'A', Hi: 'Z'}}
	letterSet     = []ranges.Range{{Lo: 'A', Hi: 'Z'}, {Lo: 'a', Hi: 'z'}}
	digitSet      = []ranges.Range{{Lo: '0', Hi: '9'}}
	wordSet       = []ranges.Range{{Lo: '0', Hi: '9'}, {Lo: 'A', Hi: 'Z'}, {Lo: '_', Hi: '_'}, {Lo: 'a', Hi: 'z'}}
	whitespaceSet = []ranges.Range{{Lo: '\t', Hi: '\r'}, {Lo: ' ', Hi: ' '}}
	punctSet      = []ranges.Range{{Lo: '!', Hi: '/'}, {Lo: ':', Hi: '@'}, {Lo: '[', Hi: '`'}, {Lo: '{', Hi: '~'}}
)

// AnyLowercaseLetter matches any character in a-z.
func AnyLowercaseLetter() *Class {
	return newClass(lowercaseSet, false)
}

// AnyUppercaseLetter matches any character in A-Z.
func AnyUppercaseLetter() *Class {
	return newClass(uppercaseSet, false)
}

// AnyLetter matches any ASCII letter.
func AnyLetter() *Class {
	return newClass(letterSet, false)
}

// AnyDigit matches any decimal digit.
func AnyDigit() *Class {
	return newClass(digitSet, false)
}

// AnyWordChar matches any letter, digit or underscore.
func AnyWordChar() *Class {
	return newClass(wordSet, false)
}

// AnyWhitespace matches any ASCII whitespace character.
func AnyWhitespace() *Class {
	return newClass(whitespaceSet, false)
}

// AnyPunctuation matches any ASCII punctuation character.
func AnyPunctuation() *Class {
	return newClass(punctSet, false)
}

// AnyBetween matches any character in the inclusive range lo-hi.
func AnyBetween(lo, hi rune) (*Class, error) {
	if lo > hi {
		return nil, fmt.Errorf("character range %q-%q: %w", lo, hi, ErrInvalidRange)
	}
	return newClass([]ranges.Range{{Lo: lo, Hi: hi}}, false), nil
}

// AnyFrom matches any of the given characters. At least one character must
// be provided.
func AnyFrom(chars ...rune) (*Class, error) {
	if len(chars) == 0 {
		return nil, fmt.Errorf("class needs at least one character: %w", ErrInvalidArgumentValue)
	}
	set := make([]ranges.Range, 0, len(chars))
	for _, c := range chars {
		set = append(set, ranges.Single(c))
	}
	return newClass(set, false), nil
}

// AnyButLowercaseLetter matches any character except a-z.
func AnyButLowercaseLetter() *Class {
	return newClass(lowercaseSet, true)
}

// AnyButUppercaseLetter matches any character except A-Z.
func AnyButUppercaseLetter() *Class {
	return newClass(uppercaseSet, true)
}

// AnyButLetter matches any character except ASCII letters.
func AnyButLetter() *Class {
	return newClass(letterSet, true)
}

// AnyButDigit matches any character except decimal digits.
func AnyButDigit() *Class {
	return newClass(digitSet, true)
}

// AnyButWordChar matches any character except letters, digits and
// underscore.
func AnyButWordChar() *Class {
	return newClass(wordSet, true)
}

// AnyButWhitespace matches any character except ASCII whitespace.
func AnyButWhitespace() *Class {
	return newClass(whitespaceSet, true)
}

// AnyButPunctuation matches any character except ASCII punctuation.
func AnyButPunctuation() *Class {
	return newClass(punctSet, true)
}

// AnyButBetween matches any character outside the inclusive range lo-hi.
func AnyButBetween(lo, hi rune) (*Class, error) {
	if lo > hi {
		return nil, fmt.Errorf("character range %q-%q: %w", lo, hi, ErrInvalidRange)
	}
	return newClass([]ranges.Range{{Lo: lo, Hi: hi}}, true), nil
}

// AnyButFrom matches any character except the given ones.
func AnyButFrom(chars ...rune) (*Class, error) {
	c, err := AnyFrom(chars...)
	if err != nil {
		return nil, err
	}
	return c.Negate(), nil
}
