package xsdtype

// ValueType identifies an XSD primitive data type. The set is closed;
// Validate rejects anything outside it.
type ValueType uint8

const (
	AnyURI ValueType = iota
	Base64Binary
	Boolean
	Byte
	Date
	DateTime
	Decimal
	Double
	Duration
	Float
	GDay
	GMonth
	GMonthDay
	GYear
	GYearMonth
	HexBinary
	Int
	Integer
	Long
	NegativeInteger
	NonNegativeInteger
	NonPositiveInteger
	PositiveInteger
	Short
	String
	Time
	UnsignedByte
	UnsignedInt
	UnsignedLong
	UnsignedShort

	valueTypeCount
)

// String returns the XSD local name of the type.
func (t ValueType) String() string {
	switch t {
	case AnyURI:
		return "anyURI"
	case Base64Binary:
		return "base64Binary"
	case Boolean:
		return "boolean"
	case Byte:
		return "byte"
	case Date:
		return "date"
	case DateTime:
		return "dateTime"
	case Decimal:
		return "decimal"
	case Double:
		return "double"
	case Duration:
		return "duration"
	case Float:
		return "float"
	case GDay:
		return "gDay"
	case GMonth:
		return "gMonth"
	case GMonthDay:
		return "gMonthDay"
	case GYear:
		return "gYear"
	case GYearMonth:
		return "gYearMonth"
	case HexBinary:
		return "hexBinary"
	case Int:
		return "int"
	case Integer:
		return "integer"
	case Long:
		return "long"
	case NegativeInteger:
		return "negativeInteger"
	case NonNegativeInteger:
		return "nonNegativeInteger"
	case NonPositiveInteger:
		return "nonPositiveInteger"
	case PositiveInteger:
		return "positiveInteger"
	case Short:
		return "short"
	case String:
		return "string"
	case Time:
		return "time"
	case UnsignedByte:
		return "unsignedByte"
	case UnsignedInt:
		return "unsignedInt"
	case UnsignedLong:
		return "unsignedLong"
	case UnsignedShort:
		return "unsignedShort"
	default:
		return "unknown"
	}
}
