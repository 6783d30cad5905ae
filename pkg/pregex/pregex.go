// Package pregex builds regular expressions programmatically, by composing
// small typed constructs (literals, classes, quantifiers, groups, assertions)
// instead of writing regex syntax by hand. Patterns compile to the
// .NET-compatible dialect of github.com/dlclark/regexp2, which is what the
// matching side of the package runs on.
package pregex

import (
	"strings"
)

// kind classifies a pattern node. The kind decides when a pattern must be
// wrapped in a non-capturing group before it is combined with others.
type kind uint8

const (
	kindEmpty kind = iota
	kindToken
	kindClass
	kindGroup
	kindQuantifier
	kindAlternation
	kindAssertion
	kindChain
)

// groupingRule states whether a pattern of some kind needs a non-capturing
// group when concatenated, quantified, or used as the base of an assertion.
type groupingRule struct {
	onConcat   bool
	onQuantify bool
	onAssert   bool
}

var groupingRules = map[kind]groupingRule{
	kindEmpty:       {false, false, false},
	kindToken:       {false, false, false},
	kindClass:       {false, false, false},
	kindGroup:       {false, false, false},
	kindQuantifier:  {false, true, false},
	kindAlternation: {true, true, true},
	kindAssertion:   {false, true, false},
	kindChain:       {false, true, false},
}

// groupRef is a backreference that has not yet been resolved against a
// capturing group to its left. For index references, need counts how many
// more groups must precede the reference; for named references, name holds
// the group name still to be defined.
type groupRef struct {
	index int
	need  int
	name  string
}

// Pregex is an immutable pattern value. Combinators never modify their
// operands; they return fresh values carrying the combined pattern text and
// the metadata (kind, capture groups, pending references) needed to keep
// composing correctly.
type Pregex struct {
	pattern string
	kind    kind
	// caps holds one entry per capturing group, in construction order
	// (left to right in the compiled text). Unnamed groups are "".
	caps []string
	refs []groupRef
	lazy bool
}

// Pattern is anything that can take part in pattern composition. It is
// implemented by *Pregex and by *Class, so classes are usable wherever a
// pattern is expected.
type Pattern interface {
	// Regex returns the pattern's regular-expression text.
	Regex() string

	node() *Pregex
}

func newPregex(pattern string, k kind) *Pregex {
	return &Pregex{pattern: pattern, kind: k}
}

// Empty returns the empty pattern. It is the identity of concatenation,
// quantification, grouping and positive lookaround probes.
func Empty() *Pregex {
	return newPregex("", kindEmpty)
}

// textMetachars is the set of characters Text escapes. Escaping happens
// exactly once, at construction; compiled text is never re-escaped.
const textMetachars = `\^$(){}[].?+*|/`

// Text returns a pattern matching the given string literally. Regex
// metacharacters in s are escaped.
func Text(s string) *Pregex {
	var b strings.Builder
	n := 0
	for _, r := range s {
		if strings.ContainsRune(textMetachars, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
		n++
	}
	k := kindChain
	switch n {
	case 0:
		k = kindEmpty
	case 1:
		k = kindToken
	}
	return newPregex(b.String(), k)
}

// Raw returns a pattern from an already-written regular expression. The
// string is taken as-is, with no escaping and no grammar validation; a
// malformed expression is only rejected by the engine at Compile time. The
// node kind and the capture-group layout are inferred by a structural scan
// so that Raw patterns compose correctly with everything else.
func Raw(s string) *Pregex {
	p := newPregex(s, inferKind(s))
	p.caps = countGroups(s)
	return p
}

// Regex returns the pattern's regular-expression text.
func (p *Pregex) Regex() string {
	return p.pattern
}

// String returns the pattern's regular-expression text.
func (p *Pregex) String() string {
	return p.pattern
}

// GroupCount returns the number of capturing groups in the pattern.
func (p *Pregex) GroupCount() int {
	return len(p.caps)
}

// Groups returns one entry per capturing group in construction order,
// holding the group's name, or "" for unnamed groups.
func (p *Pregex) Groups() []string {
	out := make([]string, len(p.caps))
	copy(out, p.caps)
	return out
}

// GroupNames returns the names of the pattern's named capturing groups, in
// definition order.
func (p *Pregex) GroupNames() []string {
	var out []string
	for _, name := range p.caps {
		if name != "" {
			out = append(out, name)
		}
	}
	return out
}

func (p *Pregex) node() *Pregex {
	return p
}

func (p *Pregex) isEmpty() bool {
	return p.kind == kindEmpty
}

// rule returns the grouping rule for the pattern's kind.
func (p *Pregex) rule() groupingRule {
	return groupingRules[p.kind]
}

// concatText returns the pattern text as it must appear inside a
// concatenation, wrapping it in a non-capturing group if its kind binds
// looser than concatenation does.
func (p *Pregex) concatText() string {
	if p.rule().onConcat {
		return "(?:" + p.pattern + ")"
	}
	return p.pattern
}

// quantifyText is concatText for quantification context.
func (p *Pregex) quantifyText() string {
	if p.rule().onQuantify {
		return "(?:" + p.pattern + ")"
	}
	return p.pattern
}

// assertText is concatText for lookaround-base context.
func (p *Pregex) assertText() string {
	if p.rule().onAssert {
		return "(?:" + p.pattern + ")"
	}
	return p.pattern
}

// derive returns a copy of p with new text and kind but the same group and
// reference bookkeeping. Used by combinators that do not add or remove
// capturing groups.
func (p *Pregex) derive(pattern string, k kind) *Pregex {
	out := newPregex(pattern, k)
	out.caps = p.caps
	out.refs = p.refs
	return out
}

// shiftRefs resolves the references of a right-hand operand against the
// groups defined by everything to its left. References whose demand is
// fully met are dropped; the rest are returned with their remaining demand.
func shiftRefs(refs []groupRef, leftCaps []string) []groupRef {
	var out []groupRef
	for _, ref := range refs {
		if ref.name != "" {
			if containsName(leftCaps, ref.name) {
				continue
			}
			out = append(out, ref)
			continue
		}
		if ref.need <= len(leftCaps) {
			continue
		}
		out = append(out, groupRef{index: ref.index, need: ref.need - len(leftCaps)})
	}
	return out
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

// sequence merges the bookkeeping of two patterns composed left-to-right
// (concatenation, alternation, lookarounds). Group indices of the right
// operand shift past the left operand's groups, which may resolve some of
// the right operand's pending references.
func sequence(out *Pregex, left, right *Pregex) *Pregex {
	out.caps = append(append([]string{}, left.caps...), right.caps...)
	out.refs = append(append([]groupRef{}, left.refs...), shiftRefs(right.refs, left.caps)...)
	return out
}

// concat concatenates two patterns, applying the concat grouping rule to
// both sides. Empty is the identity.
func concat(left, right *Pregex) *Pregex {
	if left.isEmpty() {
		return right
	}
	if right.isEmpty() {
		return left
	}
	out := newPregex(left.concatText()+right.concatText(), kindChain)
	return sequence(out, left, right)
}

// inferKind classifies an arbitrary regular expression by a light structural
// scan of its top-level units. It is deliberately approximate: it only has
// to be right about precedence, not about grammar.
func inferKind(s string) kind {
	if s == "" {
		return kindEmpty
	}
	units, ok := splitUnits(s)
	if !ok {
		// Unbalanced input. Treat it as a chain; the engine will
		// reject it at compile time anyway.
		return kindChain
	}
	for _, u := range units {
		if u == "|" {
			return kindAlternation
		}
	}
	if len(units) == 1 {
		return classifyUnit(units[0])
	}
	first, last := units[0], units[len(units)-1]
	if isLookbehind(first) || isAnchor(first) || isLookahead(last) || isAnchor(last) {
		return kindAssertion
	}
	if len(units) == 2 && isQuantifierUnit(units[1]) {
		return kindQuantifier
	}
	if len(units) == 3 && isQuantifierUnit(units[1]) && units[2] == "?" {
		return kindQuantifier
	}
	return kindChain
}

// splitUnits cuts a regular expression into its top-level units: escape
// sequences, bracket classes, balanced groups, and single characters.
func splitUnits(s string) ([]string, bool) {
	var units []string
	rs := []rune(s)
	for i := 0; i < len(rs); {
		switch rs[i] {
		case '\\':
			if i+1 >= len(rs) {
				return nil, false
			}
			units = append(units, string(rs[i:i+2]))
			i += 2
		case '[':
			j := i + 1
			for j < len(rs) && rs[j] != ']' {
				if rs[j] == '\\' {
					j++
				}
				j++
			}
			if j >= len(rs) {
				return nil, false
			}
			units = append(units, string(rs[i:j+1]))
			i = j + 1
		case '(':
			depth := 0
			j := i
			for ; j < len(rs); j++ {
				switch rs[j] {
				case '\\':
					j++
				case '(':
					depth++
				case ')':
					depth--
				case '[':
					for j++; j < len(rs) && rs[j] != ']'; j++ {
						if rs[j] == '\\' {
							j++
						}
					}
				}
				if depth == 0 {
					break
				}
			}
			if j >= len(rs) {
				return nil, false
			}
			units = append(units, string(rs[i:j+1]))
			i = j + 1
		case '{':
			j := i + 1
			for j < len(rs) && rs[j] != '}' {
				j++
			}
			if j < len(rs) && isQuantifierUnit(string(rs[i:j+1])) {
				units = append(units, string(rs[i:j+1]))
				i = j + 1
				continue
			}
			// A brace that opens no quantifier is a literal.
			units = append(units, string(rs[i]))
			i++
		default:
			units = append(units, string(rs[i]))
			i++
		}
	}
	return units, true
}

func classifyUnit(u string) kind {
	switch {
	case isAnchor(u), isLookahead(u), isLookbehind(u):
		return kindAssertion
	case u == ".", strings.HasPrefix(u, "["):
		return kindClass
	case u == `\w`, u == `\W`, u == `\d`, u == `\D`, u == `\s`, u == `\S`:
		return kindClass
	case strings.HasPrefix(u, "("):
		return kindGroup
	default:
		return kindToken
	}
}

func isAnchor(u string) bool {
	switch u {
	case "^", "$", `\A`, `\z`, `\Z`, `\b`, `\B`:
		return true
	}
	return false
}

func isLookahead(u string) bool {
	return strings.HasPrefix(u, "(?=") || strings.HasPrefix(u, "(?!")
}

func isLookbehind(u string) bool {
	return strings.HasPrefix(u, "(?<=") || strings.HasPrefix(u, "(?<!")
}

func isQuantifierUnit(u string) bool {
	switch u {
	case "?", "*", "+":
		return true
	}
	if len(u) < 3 || u[0] != '{' || u[len(u)-1] != '}' {
		return false
	}
	digitsComma := u[1 : len(u)-1]
	seenComma := false
	for _, c := range digitsComma {
		switch {
		case c >= '0' && c <= '9':
		case c == ',' && !seenComma:
			seenComma = true
		default:
			return false
		}
	}
	return true
}

// countGroups scans a raw expression for capturing groups and returns one
// entry per group in definition order, holding the group's name or "" for
// unnamed groups.
func countGroups(s string) []string {
	var caps []string
	rs := []rune(s)
	for i := 0; i < len(rs); i++ {
		switch rs[i] {
		case '\\':
			i++
		case '[':
			for i++; i < len(rs) && rs[i] != ']'; i++ {
				if rs[i] == '\\' {
					i++
				}
			}
		case '(':
			if i+1 >= len(rs) || rs[i+1] != '?' {
				caps = append(caps, "")
				continue
			}
			// (?<name>…) and (?'name'…) capture; (?<= and (?<! do not.
			if i+2 < len(rs) && (rs[i+2] == '<' || rs[i+2] == '\'') {
				closer := rs[i+2]
				if closer == '<' {
					closer = '>'
				}
				j := i + 3
				if j < len(rs) && rs[j] != '=' && rs[j] != '!' {
					for j < len(rs) && rs[j] != closer {
						j++
					}
					if j < len(rs) {
						caps = append(caps, string(rs[i+3:j]))
						i = j
					}
				}
			}
		}
	}
	return caps
}
