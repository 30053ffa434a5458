// Package num refines lexically valid numerals against fixed bit
// widths. Widths are explicit (8/16/32/64-bit signed and unsigned,
// 32/64-bit floating point) so overflow detection never depends on the
// platform's native type sizes.
//
// Callers are expected to have matched the numeral's lexical form
// first: an out-of-range numeral is an ordinary, expected outcome,
// while a syntax failure after a lexical match means the pattern and
// the parser disagree.
package num

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ParseError describes why a numeral did not fit.
type ParseError struct {
	Kind ParseErrKind
}

// Error returns the formatted error message.
func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	return e.Kind.String()
}

// ParseErrKind identifies a fit-failure category.
type ParseErrKind uint8

const (
	// ParseRange marks a syntactically valid numeral whose magnitude
	// exceeds the requested width. An ordinary validation outcome.
	ParseRange ParseErrKind = iota
	// ParseBadSyntax marks a numeral the parser rejected outright.
	// After a lexical match this is an internal-consistency defect.
	ParseBadSyntax
)

// String returns a stable label for the kind.
func (k ParseErrKind) String() string {
	switch k {
	case ParseRange:
		return "out of range"
	case ParseBadSyntax:
		return "bad syntax"
	default:
		return "invalid"
	}
}

// FitsSigned reports whether lexical, a signed decimal numeral, lies
// within the bits-wide two's-complement range. A nil result means it
// fits.
func FitsSigned(lexical string, bits int) *ParseError {
	if _, err := strconv.ParseInt(lexical, 10, bits); err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return &ParseError{Kind: ParseRange}
		}
		return &ParseError{Kind: ParseBadSyntax}
	}
	return nil
}

// FitsUnsigned reports whether lexical lies within [0, 2^bits - 1].
// The XSD unsigned lexical space admits "-0" and a leading "+", which
// strconv does not; both are normalized away first.
func FitsUnsigned(lexical string, bits int) *ParseError {
	if lexical == "-0" {
		lexical = "0"
	}
	lexical = strings.TrimPrefix(lexical, "+")
	if _, err := strconv.ParseUint(lexical, 10, bits); err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return &ParseError{Kind: ParseRange}
		}
		return &ParseError{Kind: ParseBadSyntax}
	}
	return nil
}

// FitsFloat reports whether lexical is representable as a bits-wide
// IEEE floating point number. The literal special values INF, -INF and
// NaN always fit; a finite numeral fails only when its magnitude
// rounds to infinity. Underflow rounds towards zero and fits.
func FitsFloat(lexical string, bits int) *ParseError {
	switch lexical {
	case "INF", "-INF", "NaN":
		return nil
	}
	f, err := strconv.ParseFloat(lexical, bits)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			if math.IsInf(f, 0) {
				return &ParseError{Kind: ParseRange}
			}
			return nil
		}
		return &ParseError{Kind: ParseBadSyntax}
	}
	return nil
}
