package revm

import "fmt"

// Expr is a pattern fragment. Fragments are combined with Seq, Alt and
// the repetition constructors and compiled exactly once into a Program.
// An Expr emits its instructions into a fixed slot of the program and
// falls through to the position immediately after that slot.
type Expr interface {
	size() int
	emit(p Program, at int)
}

// Unbounded marks an open upper bound for Repeat.
const Unbounded = -1

// Lit matches a single literal code point.
func Lit(c rune) Expr {
	return litExpr(c)
}

// Str matches the literal code points of s in sequence.
func Str(s string) Expr {
	parts := make([]Expr, 0, len(s))
	for _, c := range s {
		parts = append(parts, litExpr(c))
	}
	return Seq(parts...)
}

// Set matches one code point inside any of the inclusive ranges.
func Set(ranges ...Range) Expr {
	for _, r := range ranges {
		if r.Lo > r.Hi {
			panic(fmt.Sprintf("revm: inverted range %q-%q", r.Lo, r.Hi))
		}
	}
	return setExpr(ranges)
}

// Digit matches one decimal digit. It appears in nearly every grammar,
// so it gets a name.
func Digit() Expr {
	return Set(Range{'0', '9'})
}

// Seq matches the concatenation of the given fragments.
func Seq(exprs ...Expr) Expr {
	switch len(exprs) {
	case 0:
		return seqExpr(nil)
	case 1:
		return exprs[0]
	}
	return seqExpr(exprs)
}

// Alt matches any one of the given fragments, preferring earlier ones.
func Alt(exprs ...Expr) Expr {
	if len(exprs) == 0 {
		panic("revm: empty alternation")
	}
	e := exprs[len(exprs)-1]
	for i := len(exprs) - 2; i >= 0; i-- {
		e = altExpr{a: exprs[i], b: e}
	}
	return e
}

// Opt matches e or the empty string.
func Opt(e Expr) Expr {
	return optExpr{e: e}
}

// Star matches zero or more occurrences of e.
func Star(e Expr) Expr {
	return starExpr{e: e}
}

// Plus matches one or more occurrences of e.
func Plus(e Expr) Expr {
	return plusExpr{e: e}
}

// Repeat matches between min and max occurrences of e; max may be
// Unbounded. Counted repetition is expanded at construction time, so
// it must only be used with the small fixed bounds of the grammars.
func Repeat(e Expr, min, max int) Expr {
	if min < 0 || (max != Unbounded && max < min) {
		panic(fmt.Sprintf("revm: invalid repetition bounds {%d,%d}", min, max))
	}
	parts := make([]Expr, 0, min+1)
	for range min {
		parts = append(parts, e)
	}
	switch {
	case max == Unbounded:
		parts = append(parts, Star(e))
	case max > min:
		// {min,max} desugars to min copies followed by nested options,
		// so every prefix of the remaining count is reachable.
		tail := Expr(optExpr{e: e})
		for range max - min - 1 {
			tail = optExpr{e: Seq(e, tail)}
		}
		parts = append(parts, tail)
	}
	return Seq(parts...)
}

// Compile lays the fragment out as a Program terminated by OpMatch.
func Compile(e Expr) Program {
	p := make(Program, e.size()+1)
	e.emit(p, 0)
	p[len(p)-1] = Instruction{Op: OpMatch}
	return p
}

type litExpr rune

func (e litExpr) size() int { return 1 }

func (e litExpr) emit(p Program, at int) {
	p[at] = Instruction{Op: OpChar, Rune: rune(e)}
}

type setExpr []Range

func (e setExpr) size() int { return 1 }

func (e setExpr) emit(p Program, at int) {
	p[at] = Instruction{Op: OpSet, Ranges: e}
}

type seqExpr []Expr

func (e seqExpr) size() int {
	n := 0
	for _, c := range e {
		n += c.size()
	}
	return n
}

func (e seqExpr) emit(p Program, at int) {
	for _, c := range e {
		c.emit(p, at)
		at += c.size()
	}
}

type altExpr struct {
	a Expr
	b Expr
}

func (e altExpr) size() int { return e.a.size() + e.b.size() + 2 }

func (e altExpr) emit(p Program, at int) {
	sizeA := e.a.size()
	end := at + e.size()
	p[at] = Instruction{Op: OpSplit, A: at + 1, B: at + sizeA + 2}
	e.a.emit(p, at+1)
	p[at+sizeA+1] = Instruction{Op: OpJump, A: end}
	e.b.emit(p, at+sizeA+2)
}

type optExpr struct {
	e Expr
}

func (e optExpr) size() int { return e.e.size() + 1 }

func (e optExpr) emit(p Program, at int) {
	p[at] = Instruction{Op: OpSplit, A: at + 1, B: at + e.size()}
	e.e.emit(p, at+1)
}

type starExpr struct {
	e Expr
}

func (e starExpr) size() int { return e.e.size() + 2 }

func (e starExpr) emit(p Program, at int) {
	end := at + e.size()
	p[at] = Instruction{Op: OpSplit, A: at + 1, B: end}
	e.e.emit(p, at+1)
	p[end-1] = Instruction{Op: OpJump, A: at}
}

type plusExpr struct {
	e Expr
}

func (e plusExpr) size() int { return e.e.size() + 1 }

func (e plusExpr) emit(p Program, at int) {
	end := at + e.size()
	e.e.emit(p, at)
	p[end-1] = Instruction{Op: OpSplit, A: at, B: end}
}
