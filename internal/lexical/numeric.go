package lexical

import "github.com/jacoelho/xsdtype/internal/revm"

// The integer grammars bound the digit count per bit width (3, 5, 10
// or 20 significant digits after any leading zeros), so the lexical
// layer already rejects absurd magnitudes; the exact range check is a
// separate numeric refinement.

// (\+|-)?([0-9]+\.[0-9]+|\.[0-9]+)|(\+|-)?[0-9]+
func decimalExpr() revm.Expr {
	d := revm.Digit()
	unsignedDecimalPt := revm.Alt(
		revm.Seq(revm.Plus(d), revm.Lit('.'), revm.Plus(d)),
		revm.Seq(revm.Lit('.'), revm.Plus(d)),
	)
	return revm.Alt(
		revm.Seq(revm.Opt(sign()), unsignedDecimalPt),
		revm.Seq(revm.Opt(sign()), revm.Plus(d)),
	)
}

// (\+|-)?([0-9]+(\.[0-9]*)?|\.[0-9]+)([Ee](\+|-)?[0-9]+)?|-?INF|NaN
//
// The special values are case sensitive: "nan" and "inf" are not in
// the lexical space, and neither is "+INF".
func floatExpr() revm.Expr {
	d := revm.Digit()
	mantissa := revm.Alt(
		revm.Seq(revm.Plus(d), revm.Opt(revm.Seq(revm.Lit('.'), revm.Star(d)))),
		revm.Seq(revm.Lit('.'), revm.Plus(d)),
	)
	exponent := revm.Seq(set(one('E'), one('e')), revm.Opt(sign()), revm.Plus(d))
	return revm.Alt(
		revm.Seq(revm.Opt(sign()), mantissa, revm.Opt(exponent)),
		revm.Seq(revm.Opt(revm.Lit('-')), revm.Str("INF")),
		revm.Str("NaN"),
	)
}

// [\-+]?0*[0-9]{1,n}
func boundedIntegerExpr(n int) revm.Expr {
	return revm.Seq(
		revm.Opt(sign()),
		revm.Star(revm.Lit('0')),
		digits(1, n),
	)
}

// -0|\+?0*[0-9]{1,n}
func boundedUnsignedExpr(n int) revm.Expr {
	return revm.Alt(
		revm.Str("-0"),
		revm.Seq(
			revm.Opt(revm.Lit('+')),
			revm.Star(revm.Lit('0')),
			digits(1, n),
		),
	)
}

var (
	decimalProgram = revm.Compile(decimalExpr())

	// xs:float and xs:double share one lexical form; they differ only
	// in the numeric range refinement.
	floatProgram = revm.Compile(floatExpr())

	// [\-+]?[0-9]+
	integerProgram = revm.Compile(revm.Seq(
		revm.Opt(sign()), revm.Plus(revm.Digit()),
	))

	longProgram  = revm.Compile(boundedIntegerExpr(20))
	intProgram   = revm.Compile(boundedIntegerExpr(10))
	shortProgram = revm.Compile(boundedIntegerExpr(5))
	byteProgram  = revm.Compile(boundedIntegerExpr(3))

	unsignedLongProgram  = revm.Compile(boundedUnsignedExpr(20))
	unsignedIntProgram   = revm.Compile(boundedUnsignedExpr(10))
	unsignedShortProgram = revm.Compile(boundedUnsignedExpr(5))
	unsignedByteProgram  = revm.Compile(boundedUnsignedExpr(3))

	// -0|\+?[0-9]+
	nonNegativeIntegerProgram = revm.Compile(revm.Alt(
		revm.Str("-0"),
		revm.Seq(revm.Opt(revm.Lit('+')), revm.Plus(revm.Digit())),
	))

	// \+?0*[1-9][0-9]*
	positiveIntegerProgram = revm.Compile(revm.Seq(
		revm.Opt(revm.Lit('+')),
		revm.Star(revm.Lit('0')),
		set(rng('1', '9')),
		revm.Star(revm.Digit()),
	))

	// \+0|0|-[0-9]+
	nonPositiveIntegerProgram = revm.Compile(revm.Alt(
		revm.Str("+0"),
		revm.Lit('0'),
		revm.Seq(revm.Lit('-'), revm.Plus(revm.Digit())),
	))

	// -0*[1-9][0-9]*
	negativeIntegerProgram = revm.Compile(revm.Seq(
		revm.Lit('-'),
		revm.Star(revm.Lit('0')),
		set(rng('1', '9')),
		revm.Star(revm.Digit()),
	))
)

// MatchesDecimal reports whether value conforms to the xs:decimal pattern.
func MatchesDecimal(value string) bool { return decimalProgram.Matches(value) }

// MatchesFloat reports whether value conforms to the xs:float pattern.
func MatchesFloat(value string) bool { return floatProgram.Matches(value) }

// MatchesDouble reports whether value conforms to the xs:double pattern.
func MatchesDouble(value string) bool { return floatProgram.Matches(value) }

// MatchesInteger reports whether value conforms to the xs:integer pattern.
func MatchesInteger(value string) bool { return integerProgram.Matches(value) }

// MatchesLong reports whether value conforms to the xs:long pattern.
func MatchesLong(value string) bool { return longProgram.Matches(value) }

// MatchesInt reports whether value conforms to the xs:int pattern.
func MatchesInt(value string) bool { return intProgram.Matches(value) }

// MatchesShort reports whether value conforms to the xs:short pattern.
func MatchesShort(value string) bool { return shortProgram.Matches(value) }

// MatchesByte reports whether value conforms to the xs:byte pattern.
func MatchesByte(value string) bool { return byteProgram.Matches(value) }

// MatchesUnsignedLong reports whether value conforms to the xs:unsignedLong pattern.
func MatchesUnsignedLong(value string) bool { return unsignedLongProgram.Matches(value) }

// MatchesUnsignedInt reports whether value conforms to the xs:unsignedInt pattern.
func MatchesUnsignedInt(value string) bool { return unsignedIntProgram.Matches(value) }

// MatchesUnsignedShort reports whether value conforms to the xs:unsignedShort pattern.
func MatchesUnsignedShort(value string) bool { return unsignedShortProgram.Matches(value) }

// MatchesUnsignedByte reports whether value conforms to the xs:unsignedByte pattern.
func MatchesUnsignedByte(value string) bool { return unsignedByteProgram.Matches(value) }

// MatchesNonNegativeInteger reports whether value conforms to the
// xs:nonNegativeInteger pattern.
func MatchesNonNegativeInteger(value string) bool { return nonNegativeIntegerProgram.Matches(value) }

// MatchesPositiveInteger reports whether value conforms to the
// xs:positiveInteger pattern.
func MatchesPositiveInteger(value string) bool { return positiveIntegerProgram.Matches(value) }

// MatchesNonPositiveInteger reports whether value conforms to the
// xs:nonPositiveInteger pattern.
func MatchesNonPositiveInteger(value string) bool { return nonPositiveIntegerProgram.Matches(value) }

// MatchesNegativeInteger reports whether value conforms to the
// xs:negativeInteger pattern.
func MatchesNegativeInteger(value string) bool { return negativeIntegerProgram.Matches(value) }
