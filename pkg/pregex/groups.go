package pregex

import (
	"fmt"
	"strings"
)

// validGroupName reports whether name is a legal capturing-group name: word
// characters only, not starting with a digit.
func validGroupName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_':
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// namedGroup reports whether a group-kind pattern is a named capturing
// group, i.e. starts with "(?<" but is not a lookbehind.
func (p *Pregex) namedGroup() bool {
	return strings.HasPrefix(p.pattern, "(?<") &&
		!strings.HasPrefix(p.pattern, "(?<=") &&
		!strings.HasPrefix(p.pattern, "(?<!")
}

// Capture wraps the pattern in a capturing group. Capturing a pattern that
// already is a capturing group is a no-op, and capturing a non-capturing
// group converts it in place instead of nesting. The empty pattern is
// returned unchanged.
func Capture(pre Pattern) *Pregex {
	p := pre.node()
	if p.isEmpty() {
		return p
	}
	if p.kind == kindGroup {
		switch {
		case strings.HasPrefix(p.pattern, "(?:"):
			out := p.derive("("+p.pattern[3:], kindGroup)
			out.caps = append([]string{""}, p.caps...)
			return out
		case p.namedGroup():
			return p
		case !strings.HasPrefix(p.pattern, "(?"):
			return p
		}
		// Some other extension group, e.g. a conditional. Wrap it.
	}
	out := p.derive("("+p.pattern+")", kindGroup)
	out.caps = append([]string{""}, p.caps...)
	return out
}

// CaptureAs wraps the pattern in a capturing group named name. Naming an
// unnamed capturing group assigns the name in place, and naming an
// already-named group replaces its name. The empty pattern is returned
// unchanged.
func CaptureAs(pre Pattern, name string) (*Pregex, error) {
	if !validGroupName(name) {
		return nil, fmt.Errorf("group name %q: %w", name, ErrInvalidGroupName)
	}
	p := pre.node()
	if p.isEmpty() {
		return p, nil
	}
	open := "(?<" + name + ">"
	if p.kind == kindGroup {
		switch {
		case strings.HasPrefix(p.pattern, "(?:"):
			out := p.derive(open+p.pattern[3:], kindGroup)
			out.caps = append([]string{name}, p.caps...)
			return out, nil
		case p.namedGroup():
			gt := strings.IndexByte(p.pattern, '>')
			out := p.derive(open+p.pattern[gt+1:], kindGroup)
			out.caps = append([]string{name}, p.caps[1:]...)
			return out, nil
		case !strings.HasPrefix(p.pattern, "(?"):
			out := p.derive(open+p.pattern[1:], kindGroup)
			out.caps = append([]string{name}, p.caps[1:]...)
			return out, nil
		}
	}
	out := p.derive(open+p.pattern+")", kindGroup)
	out.caps = append([]string{name}, p.caps...)
	return out, nil
}

// Group wraps the pattern in a non-capturing group. Grouping a capturing
// group converts it in place, discarding its capture slot and name. The
// empty pattern is returned unchanged.
func Group(pre Pattern) *Pregex {
	p := pre.node()
	if p.isEmpty() {
		return p
	}
	if p.kind == kindGroup {
		switch {
		case strings.HasPrefix(p.pattern, "(?:"):
			return p
		case p.namedGroup():
			gt := strings.IndexByte(p.pattern, '>')
			out := p.derive("(?:"+p.pattern[gt+1:], kindGroup)
			out.caps = p.caps[1:]
			return out
		case !strings.HasPrefix(p.pattern, "(?"):
			out := p.derive("(?:"+p.pattern[1:], kindGroup)
			out.caps = p.caps[1:]
			return out
		}
	}
	return p.derive("(?:"+p.pattern+")", kindGroup)
}

// Backreference matches the same text as the n-th capturing group of the
// final expression. The reference is validated when the pattern compiles:
// at least n capturing groups must by then exist to its left.
func Backreference(n int) (*Pregex, error) {
	if n < 1 || n > 99 {
		return nil, fmt.Errorf("group index %d is outside [1, 99]: %w", n, ErrInvalidArgumentValue)
	}
	p := newPregex(fmt.Sprintf(`\%d`, n), kindToken)
	p.refs = []groupRef{{index: n, need: n}}
	return p, nil
}

// NamedBackreference matches the same text as the capturing group named
// name. The name must be defined to the reference's left by the time the
// pattern compiles.
func NamedBackreference(name string) (*Pregex, error) {
	if !validGroupName(name) {
		return nil, fmt.Errorf("group name %q: %w", name, ErrInvalidGroupName)
	}
	p := newPregex("\\k<"+name+">", kindToken)
	p.refs = []groupRef{{name: name}}
	return p, nil
}

// Conditional matches then if the capturing group named name participated
// in the match, and otherwise (which may be omitted) if it did not. The
// named group must exist to the conditional's left when the pattern
// compiles.
func Conditional(name string, then Pattern, otherwise ...Pattern) (*Pregex, error) {
	if !validGroupName(name) {
		return nil, fmt.Errorf("group name %q: %w", name, ErrInvalidGroupName)
	}
	if len(otherwise) > 1 {
		return nil, fmt.Errorf("conditional takes at most one alternative: %w", ErrInvalidArgumentValue)
	}
	t := then.node()
	if t.isEmpty() {
		return nil, fmt.Errorf("conditional needs a non-empty pattern: %w", ErrInvalidArgumentValue)
	}

	text := "(?(" + name + ")" + t.concatText()
	merged := t
	if len(otherwise) == 1 && !otherwise[0].node().isEmpty() {
		o := otherwise[0].node()
		text += "|" + o.concatText()
		merged = sequence(newPregex("", kindEmpty), t, o)
	}
	out := newPregex(text+")", kindGroup)
	out.caps = merged.caps
	out.refs = append([]groupRef{{name: name}}, merged.refs...)
	return out, nil
}
