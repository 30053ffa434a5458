package lexical

import "github.com/jacoelho/xsdtype/internal/revm"

// -?P(date-part (T time-part)? | T time-part) with at least one field
// present on each side, per the durationRep production of
// https://www.w3.org/TR/xmlschema-2/#duration.
func durationExpr() revm.Expr {
	d := revm.Digit()
	number := revm.Plus(d)
	fractional := revm.Seq(number, revm.Opt(revm.Seq(revm.Lit('.'), number)))

	years := revm.Seq(number, revm.Lit('Y'))
	months := revm.Seq(number, revm.Lit('M'))
	days := revm.Seq(number, revm.Lit('D'))
	hours := revm.Seq(number, revm.Lit('H'))
	minutes := revm.Seq(number, revm.Lit('M'))
	seconds := revm.Seq(fractional, revm.Lit('S'))

	// The alternation guarantees a non-empty tail after T.
	timePart := revm.Seq(
		revm.Lit('T'),
		revm.Alt(
			revm.Seq(hours, revm.Opt(minutes), revm.Opt(seconds)),
			revm.Seq(minutes, revm.Opt(seconds)),
			seconds,
		),
	)
	datePart := revm.Alt(
		revm.Seq(years, revm.Opt(months), revm.Opt(days)),
		revm.Seq(months, revm.Opt(days)),
		days,
	)

	return revm.Seq(
		revm.Opt(revm.Lit('-')),
		revm.Lit('P'),
		revm.Alt(
			revm.Seq(datePart, revm.Opt(timePart)),
			timePart,
		),
	)
}

// The base64Binary production groups characters into quads and
// restricts the characters before padding to those whose bit-string
// value ends in zeros; single spaces are allowed between characters
// but not after the last one.
func base64BinaryExpr() revm.Expr {
	b64Char := set(rng('+', '+'), rng('/', '9'), rng('A', 'Z'), rng('a', 'z'))
	// Characters whose six-bit value ends in 0000.
	b04Char := set(one('A'), one('Q'), one('g'), one('w'))
	// Characters whose six-bit value ends in 00.
	b16Char := set(
		one('A'), one('E'), one('I'), one('M'), one('Q'), one('U'),
		one('Y'), one('c'), one('g'), one('k'), one('o'), one('s'),
		one('w'), one('0'), one('4'), one('8'),
	)
	space := revm.Opt(revm.Lit(' '))

	b64 := revm.Seq(b64Char, space)
	b04 := revm.Seq(b04Char, space)
	b16 := revm.Seq(b16Char, space)

	quad := revm.Seq(b64, b64, b64, b64)
	finalQuad := revm.Seq(b64, b64, b64, b64Char)
	padded8 := revm.Seq(b64, b04, revm.Lit('='), space, revm.Lit('='))
	padded16 := revm.Seq(b64, b64, b16, revm.Lit('='))
	final := revm.Alt(finalQuad, padded16, padded8)

	return revm.Opt(revm.Seq(revm.Star(quad), final))
}

var (
	// true|false|1|0
	booleanProgram = revm.Compile(revm.Alt(
		revm.Str("true"), revm.Str("false"), revm.Lit('1'), revm.Lit('0'),
	))

	// The XML 1.0 Char production, star-quantified: tab, LF, CR, the
	// BMP minus surrogates and FFFE/FFFF, and the supplementary planes.
	stringProgram = revm.Compile(revm.Star(set(
		one('\t'), one('\n'), one('\r'),
		rng(0x20, 0xD7FF),
		rng(0xE000, 0xFFFD),
		rng(0x10000, 0x10FFFF),
	)))

	// ([0-9a-fA-F]{2})*
	hexBinaryProgram = revm.Compile(revm.Star(revm.Seq(hexDigit(), hexDigit())))

	base64BinaryProgram = revm.Compile(base64BinaryExpr())

	durationProgram = revm.Compile(durationExpr())
)

// MatchesBoolean reports whether value conforms to the xs:boolean pattern.
func MatchesBoolean(value string) bool { return booleanProgram.Matches(value) }

// MatchesString reports whether value conforms to the xs:string pattern.
func MatchesString(value string) bool { return stringProgram.Matches(value) }

// MatchesHexBinary reports whether value conforms to the xs:hexBinary pattern.
func MatchesHexBinary(value string) bool { return hexBinaryProgram.Matches(value) }

// MatchesBase64Binary reports whether value conforms to the
// xs:base64Binary pattern.
func MatchesBase64Binary(value string) bool { return base64BinaryProgram.Matches(value) }

// MatchesDuration reports whether value conforms to the xs:duration pattern.
func MatchesDuration(value string) bool { return durationProgram.Matches(value) }
