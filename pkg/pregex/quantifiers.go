package pregex

import "fmt"

// quantify applies a repetition suffix to a pattern, wrapping it first if
// its kind requires grouping under quantification. Quantifying the empty
// pattern is the identity; assertions cannot be quantified at all.
func quantify(pre Pattern, suffix string) (*Pregex, error) {
	p := pre.node()
	if p.isEmpty() {
		return p, nil
	}
	if p.kind == kindAssertion {
		return nil, fmt.Errorf("pattern %q: %w", p.pattern, ErrNotQuantifiable)
	}
	return p.derive(p.quantifyText()+suffix, kindQuantifier), nil
}

// Optional matches the pattern either once or not at all.
func Optional(pre Pattern) (*Pregex, error) {
	return quantify(pre, "?")
}

// Indefinite matches the pattern zero or more times.
func Indefinite(pre Pattern) (*Pregex, error) {
	return quantify(pre, "*")
}

// OneOrMore matches the pattern one or more times.
func OneOrMore(pre Pattern) (*Pregex, error) {
	return quantify(pre, "+")
}

// Exactly matches the pattern exactly n times. Zero repetitions collapse to
// the empty pattern and a single repetition to the pattern itself.
func Exactly(pre Pattern, n int) (*Pregex, error) {
	switch {
	case n < 0:
		return nil, fmt.Errorf("exactly %d: %w", n, ErrInvalidRange)
	case n == 0:
		return Empty(), nil
	case n == 1:
		return pre.node(), nil
	}
	return quantify(pre, fmt.Sprintf("{%d}", n))
}

// AtLeast matches the pattern n or more times.
func AtLeast(pre Pattern, n int) (*Pregex, error) {
	switch {
	case n < 0:
		return nil, fmt.Errorf("at least %d: %w", n, ErrInvalidRange)
	case n == 0:
		return Indefinite(pre)
	case n == 1:
		return OneOrMore(pre)
	}
	return quantify(pre, fmt.Sprintf("{%d,}", n))
}

// AtMost matches the pattern no more than n times.
func AtMost(pre Pattern, n int) (*Pregex, error) {
	switch {
	case n < 0:
		return nil, fmt.Errorf("at most %d: %w", n, ErrInvalidRange)
	case n == 0:
		return Empty(), nil
	case n == 1:
		return Optional(pre)
	}
	return quantify(pre, fmt.Sprintf("{0,%d}", n))
}

// AtLeastAtMost matches the pattern between n and m times inclusive.
func AtLeastAtMost(pre Pattern, n, m int) (*Pregex, error) {
	switch {
	case n < 0 || m < 0 || m < n:
		return nil, fmt.Errorf("between %d and %d: %w", n, m, ErrInvalidRange)
	case n == m:
		return Exactly(pre, n)
	case n == 0 && m == 1:
		return Optional(pre)
	}
	return quantify(pre, fmt.Sprintf("{%d,%d}", n, m))
}

// Lazy converts a greedy quantified pattern into its lazy form, which
// matches as few repetitions as possible. Applied to anything other than a
// greedy quantifier it returns the pattern unchanged.
func (p *Pregex) Lazy() *Pregex {
	if p.kind != kindQuantifier || p.lazy {
		return p
	}
	out := p.derive(p.pattern+"?", kindQuantifier)
	out.lazy = true
	return out
}
