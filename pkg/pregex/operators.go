package pregex

// Concat concatenates the given patterns left to right. Alternation
// operands are wrapped in non-capturing groups so they keep their meaning;
// empty operands disappear. With no operands the result is the empty
// pattern.
func Concat(pres ...Pattern) *Pregex {
	out := Empty()
	for _, pre := range pres {
		out = concat(out, pre.node())
	}
	return out
}

// Either matches any one of the given patterns, preferring earlier ones.
// Empty operands are elided; with a single remaining operand the result is
// that operand itself.
func Either(pres ...Pattern) *Pregex {
	var ops []*Pregex
	for _, pre := range pres {
		if p := pre.node(); !p.isEmpty() {
			ops = append(ops, p)
		}
	}
	switch len(ops) {
	case 0:
		return Empty()
	case 1:
		return ops[0]
	}
	out := ops[0]
	for _, p := range ops[1:] {
		out = sequence(newPregex(out.pattern+"|"+p.pattern, kindAlternation), out, p)
	}
	return out
}

// Enclose concatenates each enclosing pattern to both sides of pre, inner
// first. Enclose(p, q, r) therefore matches r q p q r.
func Enclose(pre Pattern, enclosing ...Pattern) *Pregex {
	out := pre.node()
	for _, e := range enclosing {
		out = Concat(e, out, e)
	}
	return out
}
