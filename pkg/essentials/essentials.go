// Package essentials provides ready-made patterns for common text shapes,
// composed entirely out of the pregex building blocks.
package essentials

import "github.com/manoss96/pregex/pkg/pregex"

// must unwraps combinator results that cannot fail for the fixed inputs
// used in this package.
func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Integer matches a base-10 integer with an optional sign and no leading
// zeros.
func Integer() *pregex.Pregex {
	sign := must(pregex.Optional(pregex.Either(pregex.Text("+"), pregex.Text("-"))))
	nonZero := must(pregex.AnyBetween('1', '9'))
	digits := must(pregex.Indefinite(pregex.AnyDigit()))
	return pregex.Concat(
		sign,
		pregex.Either(pregex.Concat(nonZero, digits), pregex.Text("0")),
	)
}

// Decimal matches a base-10 decimal number: an integer part followed by a
// point and at least one fractional digit.
func Decimal() *pregex.Pregex {
	fraction := must(pregex.OneOrMore(pregex.AnyDigit()))
	return pregex.Concat(Integer(), pregex.Text("."), fraction)
}

// ipv4Octet matches a single IPv4 octet, 0 through 255.
func ipv4Octet() *pregex.Pregex {
	digit := pregex.AnyDigit()
	return pregex.Either(
		pregex.Concat(pregex.Text("25"), must(pregex.AnyBetween('0', '5'))),
		pregex.Concat(pregex.Text("2"), must(pregex.AnyBetween('0', '4')), digit),
		pregex.Concat(must(pregex.Optional(must(pregex.AnyFrom('0', '1')))), digit, must(pregex.Optional(digit))),
	)
}

// IPv4 matches a dotted-quad IPv4 address.
func IPv4() *pregex.Pregex {
	octet := ipv4Octet()
	rest := must(pregex.Exactly(pregex.Concat(pregex.Text("."), octet), 3))
	return pregex.Concat(octet, rest)
}

// HTTPURL matches an HTTP or HTTPS URL. With captureDomain set, the
// second-level domain name is wrapped in a capturing group.
func HTTPURL(captureDomain bool) *pregex.Pregex {
	domainChar := must(pregex.AnyWordChar().Union(must(pregex.AnyFrom('-'))))
	domain := must(pregex.OneOrMore(domainChar))
	if captureDomain {
		domain = pregex.Capture(domain)
	}
	tld := must(pregex.OneOrMore(domainChar))
	port := must(pregex.Optional(pregex.Concat(
		pregex.Text(":"),
		must(pregex.OneOrMore(pregex.AnyDigit())),
	)))
	path := must(pregex.Indefinite(pregex.AnyButWhitespace()))
	return pregex.Concat(
		pregex.Text("http"),
		must(pregex.Optional(pregex.Text("s"))),
		pregex.Text("://"),
		must(pregex.Optional(pregex.Text("www."))),
		domain,
		pregex.Text("."),
		tld,
		port,
		path,
	)
}
