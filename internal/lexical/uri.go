package lexical

import "github.com/jacoelho/xsdtype/internal/revm"

// xs:anyURI is checked against the IRI-reference production of
// RFC 3987. The grammar below follows the RFC rule names; the counted
// repetitions of the IPv6 rule are expanded at compile time.

func ucscharRanges() []revm.Range {
	return []revm.Range{
		rng(0xA0, 0xD7FF),
		rng(0xF900, 0xFDCF),
		rng(0xFDF0, 0xFFEF),
		rng(0x10000, 0x1FFFD),
		rng(0x20000, 0x2FFFD),
		rng(0x30000, 0x3FFFD),
		rng(0x40000, 0x4FFFD),
		rng(0x50000, 0x5FFFD),
		rng(0x60000, 0x6FFFD),
		rng(0x70000, 0x7FFFD),
		rng(0x80000, 0x8FFFD),
		rng(0x90000, 0x9FFFD),
		rng(0xA0000, 0xAFFFD),
		rng(0xB0000, 0xBFFFD),
		rng(0xC0000, 0xCFFFD),
		rng(0xD0000, 0xDFFFD),
		rng(0xE1000, 0xEFFFD),
	}
}

// a-zA-Z0-9-._~ plus ucschar
func iunreserved() revm.Expr {
	ranges := []revm.Range{
		one('-'), one('.'),
		rng('0', '9'),
		rng('A', 'Z'),
		one('_'),
		rng('a', 'z'),
		one('~'),
	}
	return set(append(ranges, ucscharRanges()...)...)
}

// !$&'()*+,;=
func subDelims() revm.Expr {
	return set(one('!'), one('$'), rng('&', ','), one(';'), one('='))
}

func pctEncoded() revm.Expr {
	return revm.Seq(revm.Lit('%'), hexDigit(), hexDigit())
}

func anyURIExpr() revm.Expr {
	d := revm.Digit()

	scheme := revm.Seq(
		set(rng('A', 'Z'), rng('a', 'z')),
		revm.Star(set(one('+'), rng('-', '.'), rng('0', '9'), rng('A', 'Z'), rng('a', 'z'))),
	)

	iuserinfo := revm.Star(revm.Alt(iunreserved(), pctEncoded(), subDelims(), revm.Lit(':')))

	h16 := revm.Repeat(hexDigit(), 1, 4)
	decOctet := revm.Alt(
		revm.Seq(revm.Str("25"), set(rng('0', '5'))),
		revm.Seq(revm.Lit('2'), set(rng('0', '4')), d),
		revm.Seq(revm.Lit('1'), d, d),
		revm.Seq(set(rng('1', '9')), d),
		d,
	)
	ipv4 := revm.Seq(
		decOctet, revm.Lit('.'), decOctet, revm.Lit('.'),
		decOctet, revm.Lit('.'), decOctet,
	)
	ls32 := revm.Alt(revm.Seq(h16, revm.Lit(':'), h16), ipv4)

	h16Colon := revm.Seq(h16, revm.Lit(':'))
	// (h16:){,n}h16, the left side of the elided "::".
	upTo := func(n int) revm.Expr {
		return revm.Seq(revm.Repeat(h16Colon, 0, n), h16)
	}
	gap := revm.Str("::")
	ipv6 := revm.Alt(
		revm.Seq(revm.Repeat(h16Colon, 6, 6), ls32),
		revm.Seq(gap, revm.Repeat(h16Colon, 5, 5), ls32),
		revm.Seq(revm.Opt(h16), gap, revm.Repeat(h16Colon, 4, 4), ls32),
		revm.Seq(revm.Opt(upTo(1)), gap, revm.Repeat(h16Colon, 3, 3), ls32),
		revm.Seq(revm.Opt(upTo(2)), gap, revm.Repeat(h16Colon, 2, 2), ls32),
		revm.Seq(revm.Opt(upTo(3)), gap, h16Colon, ls32),
		revm.Seq(revm.Opt(upTo(4)), gap, ls32),
		revm.Seq(revm.Opt(upTo(5)), gap, h16),
		revm.Seq(revm.Opt(upTo(6)), gap),
	)

	unreserved := set(one('-'), one('.'), rng('0', '9'), rng('A', 'Z'), one('_'), rng('a', 'z'), one('~'))
	ipvFuture := revm.Seq(
		set(one('V'), one('v')),
		revm.Plus(hexDigit()),
		revm.Lit('.'),
		revm.Plus(revm.Alt(unreserved, subDelims(), revm.Lit(':'))),
	)
	ipLiteral := revm.Seq(revm.Lit('['), revm.Alt(ipv6, ipvFuture), revm.Lit(']'))

	iregName := revm.Star(revm.Alt(iunreserved(), pctEncoded(), subDelims()))
	ihost := revm.Alt(ipLiteral, ipv4, iregName)
	port := revm.Star(d)
	iauthority := revm.Seq(
		revm.Opt(revm.Seq(iuserinfo, revm.Lit('@'))),
		ihost,
		revm.Opt(revm.Seq(revm.Lit(':'), port)),
	)

	ipchar := revm.Alt(iunreserved(), pctEncoded(), subDelims(), set(one(':'), one('@')))
	isegment := revm.Star(ipchar)
	isegmentNz := revm.Plus(ipchar)
	isegmentNzNc := revm.Plus(revm.Alt(iunreserved(), pctEncoded(), subDelims(), revm.Lit('@')))

	slashSegments := revm.Star(revm.Seq(revm.Lit('/'), isegment))
	ipathAbempty := slashSegments
	ipathAbsolute := revm.Seq(
		revm.Lit('/'),
		revm.Opt(revm.Seq(isegmentNz, slashSegments)),
	)
	ipathRootless := revm.Seq(isegmentNz, slashSegments)
	ipathNoscheme := revm.Seq(isegmentNzNc, slashSegments)
	ipathEmpty := revm.Seq()

	ihierPart := revm.Alt(
		revm.Seq(revm.Str("//"), iauthority, ipathAbempty),
		ipathAbsolute,
		ipathRootless,
		ipathEmpty,
	)
	irelativePart := revm.Alt(
		revm.Seq(revm.Str("//"), iauthority, ipathAbempty),
		ipathAbsolute,
		ipathNoscheme,
		ipathEmpty,
	)

	iprivate := set(
		rng(0xE000, 0xF8FF),
		rng(0xF0000, 0xFFFFD),
		rng(0x100000, 0x10FFFD),
	)
	iquery := revm.Star(revm.Alt(ipchar, iprivate, set(one('/'), one('?'))))
	ifragment := revm.Star(revm.Alt(ipchar, set(one('/'), one('?'))))

	querySuffix := revm.Opt(revm.Seq(revm.Lit('?'), iquery))
	fragmentSuffix := revm.Opt(revm.Seq(revm.Lit('#'), ifragment))

	iri := revm.Seq(scheme, revm.Lit(':'), ihierPart, querySuffix, fragmentSuffix)
	irelativeRef := revm.Seq(irelativePart, querySuffix, fragmentSuffix)

	return revm.Alt(iri, irelativeRef)
}

var anyURIProgram = revm.Compile(anyURIExpr())

// MatchesAnyURI reports whether value conforms to the xs:anyURI
// pattern (an RFC 3987 IRI reference).
func MatchesAnyURI(value string) bool { return anyURIProgram.Matches(value) }
