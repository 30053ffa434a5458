// Package lexical holds one compiled pattern program per XSD primitive
// type, built once at package initialization from the W3C lexical
// grammars and shared by every validation call.
//
// Every matcher here checks surface syntax only. Matchers are
// whole-string except MatchesDatePrefix, which deliberately accepts a
// leading date inside a longer value (a date found inside a dateTime
// must not consume the whole input).
package lexical

import "github.com/jacoelho/xsdtype/internal/revm"

func rng(lo, hi rune) revm.Range {
	return revm.Range{Lo: lo, Hi: hi}
}

func one(c rune) revm.Range {
	return revm.Range{Lo: c, Hi: c}
}

func set(ranges ...revm.Range) revm.Expr {
	return revm.Set(ranges...)
}

// digits repeated between min and max times; the common shape of the
// width-bounded integer grammars.
func digits(min, max int) revm.Expr {
	return revm.Repeat(revm.Digit(), min, max)
}

func hexDigit() revm.Expr {
	return set(rng('0', '9'), rng('A', 'F'), rng('a', 'f'))
}

func sign() revm.Expr {
	return set(one('+'), one('-'))
}
