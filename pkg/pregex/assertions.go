package pregex

import "fmt"

// Assertions are zero-width: they constrain where a pattern may match
// without consuming characters. Any pattern whose kind is assertion cannot
// be quantified.

// MatchAtStart anchors the pattern to the start of the input.
func MatchAtStart(pre Pattern) *Pregex {
	p := pre.node()
	return p.derive(`\A`+p.assertText(), kindAssertion)
}

// MatchAtEnd anchors the pattern to the end of the input.
func MatchAtEnd(pre Pattern) *Pregex {
	p := pre.node()
	return p.derive(p.assertText()+`\z`, kindAssertion)
}

// MatchAtLineStart anchors the pattern to the start of a line.
func MatchAtLineStart(pre Pattern) *Pregex {
	p := pre.node()
	return p.derive("^"+p.assertText(), kindAssertion)
}

// MatchAtLineEnd anchors the pattern to the end of a line.
func MatchAtLineEnd(pre Pattern) *Pregex {
	p := pre.node()
	return p.derive(p.assertText()+"$", kindAssertion)
}

// MatchAtWordBoundary requires word boundaries on both sides of the
// pattern.
func MatchAtWordBoundary(pre Pattern) *Pregex {
	p := pre.node()
	return p.derive(`\b`+p.assertText()+`\b`, kindAssertion)
}

// WordBoundary matches the zero-width boundary between a word character and
// a non-word character.
func WordBoundary() *Pregex {
	return newPregex(`\b`, kindAssertion)
}

// NonWordBoundary matches at any position that is not a word boundary.
func NonWordBoundary() *Pregex {
	return newPregex(`\B`, kindAssertion)
}

// FollowedBy matches base only where probe matches right after it. An empty
// probe returns base unchanged.
func FollowedBy(base, probe Pattern) *Pregex {
	b, q := base.node(), probe.node()
	if q.isEmpty() {
		return b
	}
	out := newPregex(b.assertText()+"(?="+q.pattern+")", kindAssertion)
	return sequence(out, b, q)
}

// NotFollowedBy matches base only where none of the probes matches right
// after it. Probes must be non-empty: a negative assertion on the empty
// pattern can never hold.
func NotFollowedBy(base Pattern, probes ...Pattern) (*Pregex, error) {
	if len(probes) == 0 {
		return nil, fmt.Errorf("negative lookahead needs at least one pattern: %w", ErrInvalidArgumentValue)
	}
	out := base.node()
	text := out.assertText()
	for _, probe := range probes {
		q := probe.node()
		if q.isEmpty() {
			return nil, fmt.Errorf("negative lookahead: %w", ErrEmptyNegativeAssertion)
		}
		text += "(?!" + q.pattern + ")"
		out = sequence(newPregex("", kindEmpty), out, q)
	}
	out.pattern = text
	out.kind = kindAssertion
	return out, nil
}

// PrecededBy matches base only where probe matches right before it. An
// empty probe returns base unchanged.
func PrecededBy(base, probe Pattern) *Pregex {
	b, q := base.node(), probe.node()
	if q.isEmpty() {
		return b
	}
	out := newPregex("(?<="+q.pattern+")"+b.assertText(), kindAssertion)
	return sequence(out, q, b)
}

// NotPrecededBy matches base only where none of the probes matches right
// before it. Probes must be non-empty.
func NotPrecededBy(base Pattern, probes ...Pattern) (*Pregex, error) {
	if len(probes) == 0 {
		return nil, fmt.Errorf("negative lookbehind needs at least one pattern: %w", ErrInvalidArgumentValue)
	}
	b := base.node()
	text := ""
	merged := newPregex("", kindEmpty)
	for _, probe := range probes {
		q := probe.node()
		if q.isEmpty() {
			return nil, fmt.Errorf("negative lookbehind: %w", ErrEmptyNegativeAssertion)
		}
		text += "(?<!" + q.pattern + ")"
		merged = sequence(newPregex("", kindEmpty), merged, q)
	}
	out := sequence(newPregex("", kindEmpty), merged, b)
	out.pattern = text + b.assertText()
	out.kind = kindAssertion
	return out, nil
}

// EnclosedBy matches base only where probe matches both right before and
// right after it.
func EnclosedBy(base, probe Pattern) *Pregex {
	return FollowedBy(PrecededBy(base, probe), probe)
}

// NotEnclosedBy matches base only where probe matches neither right before
// nor right after it.
func NotEnclosedBy(base, probe Pattern) (*Pregex, error) {
	behind, err := NotPrecededBy(base, probe)
	if err != nil {
		return nil, err
	}
	return NotFollowedBy(behind, probe)
}

// FollowedBy narrows the pattern to positions where another pattern matches
// right after it.
func (p *Pregex) FollowedBy(probe Pattern) *Pregex {
	return FollowedBy(p, probe)
}

// PrecededBy narrows the pattern to positions where another pattern matches
// right before it.
func (p *Pregex) PrecededBy(probe Pattern) *Pregex {
	return PrecededBy(p, probe)
}
