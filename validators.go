package xsdtype

import (
	"fmt"
	"strings"

	"github.com/jacoelho/xsdtype/internal/calendar"
	"github.com/jacoelho/xsdtype/internal/lexical"
	"github.com/jacoelho/xsdtype/internal/num"
)

// The predicates below are the per-type semantic validators: a lexical
// pattern match, plus where needed a refinement a pattern cannot
// express (fixed-width overflow, calendar validity). A numeral that
// matched its lexical pattern but fails to parse indicates the pattern
// and the parser disagree; that is a defect and panics rather than
// reporting false.

// IsBoolean reports whether value is a valid xs:boolean.
func IsBoolean(value string) bool { return lexical.MatchesBoolean(value) }

// IsString reports whether value is a valid xs:string.
func IsString(value string) bool { return lexical.MatchesString(value) }

// IsAnyURI reports whether value is a valid xs:anyURI.
func IsAnyURI(value string) bool { return lexical.MatchesAnyURI(value) }

// IsHexBinary reports whether value is a valid xs:hexBinary.
func IsHexBinary(value string) bool { return lexical.MatchesHexBinary(value) }

// IsBase64Binary reports whether value is a valid xs:base64Binary.
func IsBase64Binary(value string) bool { return lexical.MatchesBase64Binary(value) }

// IsDecimal reports whether value is a valid xs:decimal.
func IsDecimal(value string) bool { return lexical.MatchesDecimal(value) }

// IsDuration reports whether value is a valid xs:duration.
func IsDuration(value string) bool { return lexical.MatchesDuration(value) }

// IsInteger reports whether value is a valid xs:integer.
func IsInteger(value string) bool { return lexical.MatchesInteger(value) }

// IsNonNegativeInteger reports whether value is a valid xs:nonNegativeInteger.
func IsNonNegativeInteger(value string) bool { return lexical.MatchesNonNegativeInteger(value) }

// IsNonPositiveInteger reports whether value is a valid xs:nonPositiveInteger.
func IsNonPositiveInteger(value string) bool { return lexical.MatchesNonPositiveInteger(value) }

// IsPositiveInteger reports whether value is a valid xs:positiveInteger.
func IsPositiveInteger(value string) bool { return lexical.MatchesPositiveInteger(value) }

// IsNegativeInteger reports whether value is a valid xs:negativeInteger.
func IsNegativeInteger(value string) bool { return lexical.MatchesNegativeInteger(value) }

// IsLong reports whether value is a valid xs:long (64-bit signed).
func IsLong(value string) bool {
	return signedInRange(value, lexical.MatchesLong, 64, "long")
}

// IsInt reports whether value is a valid xs:int (32-bit signed).
func IsInt(value string) bool {
	return signedInRange(value, lexical.MatchesInt, 32, "int")
}

// IsShort reports whether value is a valid xs:short (16-bit signed).
func IsShort(value string) bool {
	return signedInRange(value, lexical.MatchesShort, 16, "short")
}

// IsByte reports whether value is a valid xs:byte (8-bit signed).
func IsByte(value string) bool {
	return signedInRange(value, lexical.MatchesByte, 8, "byte")
}

// IsUnsignedLong reports whether value is a valid xs:unsignedLong (64-bit unsigned).
func IsUnsignedLong(value string) bool {
	return unsignedInRange(value, lexical.MatchesUnsignedLong, 64, "unsignedLong")
}

// IsUnsignedInt reports whether value is a valid xs:unsignedInt (32-bit unsigned).
func IsUnsignedInt(value string) bool {
	return unsignedInRange(value, lexical.MatchesUnsignedInt, 32, "unsignedInt")
}

// IsUnsignedShort reports whether value is a valid xs:unsignedShort (16-bit unsigned).
func IsUnsignedShort(value string) bool {
	return unsignedInRange(value, lexical.MatchesUnsignedShort, 16, "unsignedShort")
}

// IsUnsignedByte reports whether value is a valid xs:unsignedByte (8-bit unsigned).
func IsUnsignedByte(value string) bool {
	return unsignedInRange(value, lexical.MatchesUnsignedByte, 8, "unsignedByte")
}

// IsFloat reports whether value is a valid xs:float (32-bit IEEE).
func IsFloat(value string) bool {
	if !lexical.MatchesFloat(value) {
		return false
	}
	return floatInRange(value, 32, "float")
}

// IsDouble reports whether value is a valid xs:double (64-bit IEEE).
func IsDouble(value string) bool {
	if !lexical.MatchesDouble(value) {
		return false
	}
	return floatInRange(value, 64, "double")
}

// IsDate reports whether value is a valid xs:date, including calendar
// validity of the day within month and year. Year 1 BCE (lexically
// "-0001") is the last leap BCE year; year zero does not exist.
func IsDate(value string) bool {
	if !lexical.MatchesDate(value) {
		return false
	}
	return datePortionValid(value)
}

// IsDateTime reports whether value is a valid xs:dateTime.
func IsDateTime(value string) bool {
	if !lexical.MatchesDateTime(value) {
		return false
	}
	return dateOfDateTimeValid(value)
}

// IsDateTimeUTC reports whether value is a valid xs:dateTime with the
// time zone fixed to UTC (Z, +00:00 or -00:00).
func IsDateTimeUTC(value string) bool {
	if !lexical.MatchesDateTimeUTC(value) {
		return false
	}
	return dateOfDateTimeValid(value)
}

// IsTime reports whether value is a valid xs:time.
func IsTime(value string) bool { return lexical.MatchesTime(value) }

// IsGDay reports whether value is a valid xs:gDay.
func IsGDay(value string) bool { return lexical.MatchesGDay(value) }

// IsGMonth reports whether value is a valid xs:gMonth.
func IsGMonth(value string) bool { return lexical.MatchesGMonth(value) }

// IsGMonthDay reports whether value is a valid xs:gMonthDay. February
// is treated as having 29 days since there is no year to decide
// leapness.
func IsGMonthDay(value string) bool {
	if !lexical.MatchesGMonthDay(value) {
		return false
	}
	// --MM-DD...
	month := int(value[2]-'0')*10 + int(value[3]-'0')
	day := int(value[5]-'0')*10 + int(value[6]-'0')
	return calendar.ValidMonthDay(month, day)
}

// IsGYear reports whether value is a valid xs:gYear.
func IsGYear(value string) bool { return lexical.MatchesGYear(value) }

// IsGYearMonth reports whether value is a valid xs:gYearMonth.
func IsGYearMonth(value string) bool { return lexical.MatchesGYearMonth(value) }

func signedInRange(value string, matches func(string) bool, bits int, typeName string) bool {
	if !matches(value) {
		return false
	}
	if err := num.FitsSigned(value, bits); err != nil {
		if err.Kind == num.ParseRange {
			return false
		}
		panic(fmt.Sprintf("xsdtype: %s matched the %s pattern but failed to parse: %v", quoted(value), typeName, err))
	}
	return true
}

func unsignedInRange(value string, matches func(string) bool, bits int, typeName string) bool {
	if !matches(value) {
		return false
	}
	if err := num.FitsUnsigned(value, bits); err != nil {
		if err.Kind == num.ParseRange {
			return false
		}
		panic(fmt.Sprintf("xsdtype: %s matched the %s pattern but failed to parse: %v", quoted(value), typeName, err))
	}
	return true
}

func floatInRange(value string, bits int, typeName string) bool {
	if err := num.FitsFloat(value, bits); err != nil {
		if err.Kind == num.ParseRange {
			return false
		}
		panic(fmt.Sprintf("xsdtype: %s matched the %s pattern but failed to parse: %v", quoted(value), typeName, err))
	}
	return true
}

// datePortionValid applies the calendar check to a value that starts
// with a year-month-day date. The lexical match has already
// established the shape, so a missing prefix is a defect.
func datePortionValid(value string) bool {
	if !lexical.MatchesDatePrefix(value) {
		panic(fmt.Sprintf("xsdtype: %s matched the date pattern but has no year-month-day prefix", quoted(value)))
	}
	yearDigits, bce, month, day := calendar.SplitDatePrefix(value)
	return calendar.ValidDate(yearDigits, bce, month, day)
}

func dateOfDateTimeValid(value string) bool {
	date, _, ok := strings.Cut(value, "T")
	if !ok {
		panic(fmt.Sprintf("xsdtype: %s matched the dateTime pattern but contains no 'T' separator", quoted(value)))
	}
	return datePortionValid(date)
}

func quoted(value string) string {
	return fmt.Sprintf("%q", value)
}
