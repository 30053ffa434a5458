// Package calendar decides Gregorian date validity for XSD date
// lexical values.
//
// Years are handled as digit strings, never as parsed integers: XSD
// allows arbitrarily long year numerals, and because the Gregorian
// leap pattern repeats every 400 years the last four digits decide
// leapness regardless of how many digits precede them (10000 is a
// multiple of 400). This removes any need for big-integer arithmetic.
package calendar

// daysInMonth holds the maximum day per month. The February entry is
// the leap maximum; use Leap to decide between 28 and 29 when a year
// is available.
var daysInMonth = [13]int{0, 31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// Leap reports whether the year written as yearDigits (without sign)
// is a leap year. bce marks a year with a leading '-'.
//
// XSD has no year zero: '-0001' denotes 1 BCE, which is astronomical
// year 0, so BCE years are shifted by one before the mod-4/100/400
// rule. That shift makes 1 BCE a leap year.
func Leap(yearDigits string, bce bool) bool {
	tail := yearDigits
	if len(tail) > 4 {
		tail = tail[len(tail)-4:]
	}
	n := 0
	for i := range len(tail) {
		n = n*10 + int(tail[i]-'0')
	}
	if bce {
		n--
		if n < 0 {
			n += 400
		}
	}
	return n%4 == 0 && (n%100 != 0 || n%400 == 0)
}

// ValidDate reports whether the isolated date parts form a real date.
// The year of all zero digits is the forbidden year zero, with or
// without the BCE sign.
func ValidDate(yearDigits string, bce bool, month, day int) bool {
	if allZero(yearDigits) {
		return false
	}
	if month < 1 || month > 12 {
		return false
	}
	if day < 1 {
		return false
	}
	max := daysInMonth[month]
	if month == 2 && !Leap(yearDigits, bce) {
		max = 28
	}
	return day <= max
}

// ValidMonthDay reports whether day exists in month for some year.
// February is treated as having 29 days since a bare month-day has no
// year to decide leapness.
func ValidMonthDay(month, day int) bool {
	if month < 1 || month > 12 {
		return false
	}
	return day >= 1 && day <= daysInMonth[month]
}

// SplitDatePrefix isolates the leading year digits, era, month and day
// of a value that starts with a year-month-day date portion. The
// caller must have established the prefix lexically; a malformed value
// fails loudly via the bounds checks rather than returning a wrong
// date.
func SplitDatePrefix(value string) (yearDigits string, bce bool, month, day int) {
	i := 0
	if value[0] == '-' {
		bce = true
		i = 1
	}
	start := i
	for i < len(value) && value[i] >= '0' && value[i] <= '9' {
		i++
	}
	yearDigits = value[start:i]
	month = twoDigits(value, i+1)
	day = twoDigits(value, i+4)
	return yearDigits, bce, month, day
}

func twoDigits(value string, at int) int {
	return int(value[at]-'0')*10 + int(value[at+1]-'0')
}

func allZero(digits string) bool {
	for i := range len(digits) {
		if digits[i] != '0' {
			return false
		}
	}
	return true
}
