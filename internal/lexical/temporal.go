package lexical

import "github.com/jacoelho/xsdtype/internal/revm"

// Fragments of the date/time grammars, shared across the family.
// See https://www.w3.org/TR/xmlschema-2/#dateTime and the lexical
// representation notes of the related types.

// -?(([1-9][0-9][0-9][0-9]+)|(0[0-9][0-9][0-9]))
func yearFrag() revm.Expr {
	d := revm.Digit()
	return revm.Seq(
		revm.Opt(revm.Lit('-')),
		revm.Alt(
			revm.Seq(set(rng('1', '9')), d, d, revm.Plus(d)),
			revm.Seq(revm.Lit('0'), d, d, d),
		),
	)
}

// (0[1-9])|(1[0-2])
func monthFrag() revm.Expr {
	return revm.Alt(
		revm.Seq(revm.Lit('0'), set(rng('1', '9'))),
		revm.Seq(revm.Lit('1'), set(rng('0', '2'))),
	)
}

// (0[1-9])|([12][0-9])|(3[01])
func dayFrag() revm.Expr {
	return revm.Alt(
		revm.Seq(revm.Lit('0'), set(rng('1', '9'))),
		revm.Seq(set(rng('1', '2')), revm.Digit()),
		revm.Seq(revm.Lit('3'), set(rng('0', '1'))),
	)
}

// ([01][0-9])|(2[0-3])
func hourFrag() revm.Expr {
	return revm.Alt(
		revm.Seq(set(rng('0', '1')), revm.Digit()),
		revm.Seq(revm.Lit('2'), set(rng('0', '3'))),
	)
}

// [0-5][0-9]
func minuteFrag() revm.Expr {
	return revm.Seq(set(rng('0', '5')), revm.Digit())
}

// ([0-5][0-9])(\.[0-9]+)?
func secondFrag() revm.Expr {
	return revm.Seq(
		minuteFrag(),
		revm.Opt(revm.Seq(revm.Lit('.'), revm.Plus(revm.Digit()))),
	)
}

// 24:00:00(\.0+)?
func endOfDayFrag() revm.Expr {
	return revm.Seq(
		revm.Str("24:00:00"),
		revm.Opt(revm.Seq(revm.Lit('.'), revm.Plus(revm.Lit('0')))),
	)
}

// Z|(\+|-)((0[0-9]|1[0-3]):[0-5][0-9]|14:00)
func timezoneFrag() revm.Expr {
	return revm.Alt(
		revm.Lit('Z'),
		revm.Seq(
			sign(),
			revm.Alt(
				revm.Seq(
					revm.Alt(
						revm.Seq(revm.Lit('0'), revm.Digit()),
						revm.Seq(revm.Lit('1'), set(rng('0', '3'))),
					),
					revm.Lit(':'),
					minuteFrag(),
				),
				revm.Str("14:00"),
			),
		),
	)
}

// (hour:minute:second)|endOfDay
func timeOfDayFrag() revm.Expr {
	return revm.Alt(
		revm.Seq(hourFrag(), revm.Lit(':'), minuteFrag(), revm.Lit(':'), secondFrag()),
		endOfDayFrag(),
	)
}

func dateFrag() revm.Expr {
	return revm.Seq(yearFrag(), revm.Lit('-'), monthFrag(), revm.Lit('-'), dayFrag())
}

var (
	dateProgram = revm.Compile(revm.Seq(dateFrag(), revm.Opt(timezoneFrag())))

	dateTimeProgram = revm.Compile(revm.Seq(
		dateFrag(),
		revm.Lit('T'),
		timeOfDayFrag(),
		revm.Opt(timezoneFrag()),
	))

	// The UTC variant pins the offset to Z, +00:00 or -00:00 and makes
	// it mandatory.
	dateTimeUTCProgram = revm.Compile(revm.Seq(
		dateFrag(),
		revm.Lit('T'),
		timeOfDayFrag(),
		revm.Alt(revm.Lit('Z'), revm.Str("+00:00"), revm.Str("-00:00")),
	))

	timeProgram = revm.Compile(revm.Seq(timeOfDayFrag(), revm.Opt(timezoneFrag())))

	gDayProgram = revm.Compile(revm.Seq(
		revm.Str("---"), dayFrag(), revm.Opt(timezoneFrag()),
	))

	gMonthProgram = revm.Compile(revm.Seq(
		revm.Str("--"), monthFrag(), revm.Opt(timezoneFrag()),
	))

	gMonthDayProgram = revm.Compile(revm.Seq(
		revm.Str("--"), monthFrag(), revm.Lit('-'), dayFrag(), revm.Opt(timezoneFrag()),
	))

	gYearProgram = revm.Compile(revm.Seq(yearFrag(), revm.Opt(timezoneFrag())))

	gYearMonthProgram = revm.Compile(revm.Seq(
		yearFrag(), revm.Lit('-'), monthFrag(), revm.Opt(timezoneFrag()),
	))

	// -?[0-9]+-[0-9]{2}-[0-9]{2}, matched in prefix mode to isolate the
	// year-month-day portion ahead of a timezone or time suffix.
	datePrefixProgram = revm.Compile(revm.Seq(
		revm.Opt(revm.Lit('-')),
		revm.Plus(revm.Digit()),
		revm.Lit('-'),
		digits(2, 2),
		revm.Lit('-'),
		digits(2, 2),
	))
)

// MatchesDate reports whether value conforms to the xs:date pattern.
func MatchesDate(value string) bool { return dateProgram.Matches(value) }

// MatchesDateTime reports whether value conforms to the xs:dateTime pattern.
func MatchesDateTime(value string) bool { return dateTimeProgram.Matches(value) }

// MatchesDateTimeUTC reports whether value conforms to the xs:dateTime
// pattern with the time zone fixed to UTC.
func MatchesDateTimeUTC(value string) bool { return dateTimeUTCProgram.Matches(value) }

// MatchesTime reports whether value conforms to the xs:time pattern.
func MatchesTime(value string) bool { return timeProgram.Matches(value) }

// MatchesGDay reports whether value conforms to the xs:gDay pattern.
func MatchesGDay(value string) bool { return gDayProgram.Matches(value) }

// MatchesGMonth reports whether value conforms to the xs:gMonth pattern.
func MatchesGMonth(value string) bool { return gMonthProgram.Matches(value) }

// MatchesGMonthDay reports whether value conforms to the xs:gMonthDay pattern.
func MatchesGMonthDay(value string) bool { return gMonthDayProgram.Matches(value) }

// MatchesGYear reports whether value conforms to the xs:gYear pattern.
func MatchesGYear(value string) bool { return gYearProgram.Matches(value) }

// MatchesGYearMonth reports whether value conforms to the xs:gYearMonth pattern.
func MatchesGYearMonth(value string) bool { return gYearMonthProgram.Matches(value) }

// MatchesDatePrefix reports whether value starts with a
// year-month-day date portion.
func MatchesDatePrefix(value string) bool { return datePrefixProgram.MatchesPrefix(value) }
