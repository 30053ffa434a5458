// Package xsdtype validates that string-encoded values conform to the
// lexical and value spaces of the XSD primitive data types
// (https://www.w3.org/TR/xmlschema-2/).
//
// Validation is a pure function of its inputs: a false result means
// the text is not a valid literal of the declared type and is an
// expected outcome, not an error. All pattern programs and the
// dispatch table are built once at package initialization and never
// mutated, so any number of goroutines may validate concurrently
// without synchronization.
//
// Pattern matching uses a compiled instruction VM rather than a
// regular-expression engine, so matching time is linear in the input
// length for every type.
package xsdtype

import (
	"errors"
	"fmt"
)

// ErrUnknownValueType is returned by Validate for a value type outside
// the closed enumeration. Match it with errors.Is.
var ErrUnknownValueType = errors.New("unknown value type")

// validators maps every ValueType to its semantic validator. Built
// once, read-only thereafter; the exhaustiveness over the enumeration
// is asserted by a test rather than re-checked per call.
var validators = map[ValueType]func(string) bool{
	AnyURI:             IsAnyURI,
	Base64Binary:       IsBase64Binary,
	Boolean:            IsBoolean,
	Byte:               IsByte,
	Date:               IsDate,
	DateTime:           IsDateTime,
	Decimal:            IsDecimal,
	Double:             IsDouble,
	Duration:           IsDuration,
	Float:              IsFloat,
	GDay:               IsGDay,
	GMonth:             IsGMonth,
	GMonthDay:          IsGMonthDay,
	GYear:              IsGYear,
	GYearMonth:         IsGYearMonth,
	HexBinary:          IsHexBinary,
	Int:                IsInt,
	Integer:            IsInteger,
	Long:               IsLong,
	NegativeInteger:    IsNegativeInteger,
	NonNegativeInteger: IsNonNegativeInteger,
	NonPositiveInteger: IsNonPositiveInteger,
	PositiveInteger:    IsPositiveInteger,
	Short:              IsShort,
	String:             IsString,
	Time:               IsTime,
	UnsignedByte:       IsUnsignedByte,
	UnsignedInt:        IsUnsignedInt,
	UnsignedLong:       IsUnsignedLong,
	UnsignedShort:      IsUnsignedShort,
}

// Validate reports whether value is a valid literal of valueType. It
// returns ErrUnknownValueType when valueType is outside the
// enumeration; every other outcome is the boolean verdict.
func Validate(value string, valueType ValueType) (bool, error) {
	validator, ok := validators[valueType]
	if !ok {
		return false, fmt.Errorf("%w: %d", ErrUnknownValueType, uint8(valueType))
	}
	return validator(value), nil
}
