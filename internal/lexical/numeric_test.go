package lexical

import (
	"strings"
	"testing"
)

func TestMatchesDecimal(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"123.456", true},
		{"+1234.456", true},
		{"-1234.456", true},
		{"-.456", true},
		{"-456", true},
		{"0", true},
		{"00123", true},
		{"456.", false},
		{"1 234.456", false},
		{"1234.456E+2", false},
		{"+ 1234.456", false},
		{"+1,234.456", false},
		{"", false},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			if got := MatchesDecimal(tc.input); got != tc.want {
				t.Fatalf("MatchesDecimal(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestMatchesFloatAndDouble(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"123.456", true},
		{"+1234.456", true},
		{"-1.2344e56", true},
		{"-.45E-6", true},
		{"1.", true},
		{"INF", true},
		{"-INF", true},
		{"NaN", true},
		// The special values are case sensitive and +INF is excluded.
		{"+INF", false},
		{"inf", false},
		{"nan", false},
		{"NAN", false},
		{"1E", false},
		{"e26", false},
		{".", false},
		{"+", false},
		{"", false},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			if got := MatchesFloat(tc.input); got != tc.want {
				t.Fatalf("MatchesFloat(%q) = %v, want %v", tc.input, got, tc.want)
			}
			if got := MatchesDouble(tc.input); got != tc.want {
				t.Fatalf("MatchesDouble(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestMatchesIntegerFamily(t *testing.T) {
	tests := []struct {
		name    string
		matches func(string) bool
		input   string
		want    bool
	}{
		{"integer plain", MatchesInteger, "123", true},
		{"integer negative", MatchesInteger, "-123", true},
		{"integer plus", MatchesInteger, "+123", true},
		{"integer huge", MatchesInteger, strings.Repeat("9", 100), true},
		{"integer decimal", MatchesInteger, "1.5", false},
		{"integer empty", MatchesInteger, "", false},

		{"long 20 digits", MatchesLong, "99999999999999999999", true},
		{"long leading zeros", MatchesLong, "000099999999999999999999", true},
		{"long 21 digits", MatchesLong, "999999999999999999999", false},

		{"int 10 digits", MatchesInt, "9999999999", true},
		{"int signed", MatchesInt, "-2147483648", true},
		{"int 11 digits", MatchesInt, "99999999999", false},

		{"short 5 digits", MatchesShort, "99999", true},
		{"short 6 digits", MatchesShort, "999999", false},

		{"byte 3 digits", MatchesByte, "999", true},
		{"byte padded", MatchesByte, "000127", true},
		{"byte 4 digits", MatchesByte, "9999", false},

		{"unsignedLong zero", MatchesUnsignedLong, "0", true},
		{"unsignedLong minus zero", MatchesUnsignedLong, "-0", true},
		{"unsignedLong plus", MatchesUnsignedLong, "+18446744073709551615", true},
		{"unsignedLong negative", MatchesUnsignedLong, "-1", false},

		{"unsignedInt plain", MatchesUnsignedInt, "4294967295", true},
		{"unsignedInt 11 digits", MatchesUnsignedInt, "99999999999", false},

		{"unsignedShort plain", MatchesUnsignedShort, "65535", true},
		{"unsignedShort 6 digits", MatchesUnsignedShort, "999999", false},

		{"unsignedByte plain", MatchesUnsignedByte, "255", true},
		{"unsignedByte minus zero", MatchesUnsignedByte, "-0", true},
		{"unsignedByte 4 digits", MatchesUnsignedByte, "9999", false},

		{"nonNegative zero", MatchesNonNegativeInteger, "0", true},
		{"nonNegative minus zero", MatchesNonNegativeInteger, "-0", true},
		{"nonNegative plus", MatchesNonNegativeInteger, "+123", true},
		{"nonNegative negative", MatchesNonNegativeInteger, "-1", false},

		{"positive plain", MatchesPositiveInteger, "1", true},
		{"positive padded", MatchesPositiveInteger, "+0042", true},
		{"positive zero", MatchesPositiveInteger, "0", false},
		{"positive negative", MatchesPositiveInteger, "-1", false},

		{"nonPositive zero", MatchesNonPositiveInteger, "0", true},
		{"nonPositive plus zero", MatchesNonPositiveInteger, "+0", true},
		{"nonPositive negative", MatchesNonPositiveInteger, "-123", true},
		{"nonPositive positive", MatchesNonPositiveInteger, "1", false},
		{"nonPositive padded zero", MatchesNonPositiveInteger, "00", false},

		{"negative plain", MatchesNegativeInteger, "-1", true},
		{"negative padded", MatchesNegativeInteger, "-0042", true},
		{"negative zero", MatchesNegativeInteger, "0", false},
		{"negative minus zero", MatchesNegativeInteger, "-0", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.matches(tc.input); got != tc.want {
				t.Fatalf("matches(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}
