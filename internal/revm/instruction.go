// Package revm implements a small regular-expression virtual machine.
//
// Patterns are compiled ahead of time into position-addressed programs
// of five instructions and executed with a breadth-first thread-set
// simulation (Thompson/Pike style). The machine runs in time linear in
// len(program) x len(input) regardless of how many alternations or
// repetitions the pattern contains, so it cannot exhibit the
// exponential backtracking of recursive matchers.
//
// See Thompson, "Regular expression search algorithm", CACM 11(6),
// and https://swtch.com/~rsc/regexp/regexp2.html.
package revm

// Op identifies an instruction kind.
type Op uint8

const (
	// OpChar consumes one code point and succeeds iff it equals Rune.
	OpChar Op = iota
	// OpSet consumes one code point and succeeds iff it lies in one of
	// the instruction's inclusive ranges.
	OpSet
	// OpSplit continues at both A and B without consuming input.
	OpSplit
	// OpJump continues at A without consuming input.
	OpJump
	// OpMatch accepts.
	OpMatch
)

// String returns a stable label for the op.
func (o Op) String() string {
	switch o {
	case OpChar:
		return "char"
	case OpSet:
		return "set"
	case OpSplit:
		return "split"
	case OpJump:
		return "jump"
	case OpMatch:
		return "match"
	default:
		return "invalid"
	}
}

// Range is an inclusive code-point range.
type Range struct {
	Lo rune
	Hi rune
}

// Instruction is one program step. Which fields are meaningful depends
// on Op: Rune for OpChar, Ranges for OpSet, A and B for OpSplit, A for
// OpJump, none for OpMatch.
type Instruction struct {
	Op     Op
	Rune   rune
	Ranges []Range
	A      int
	B      int
}

// Program is an immutable instruction sequence addressed by index.
// Programs are built once, at package initialization, and shared by
// every subsequent call.
type Program []Instruction

func (r Range) contains(c rune) bool {
	return r.Lo <= c && c <= r.Hi
}

func inRanges(ranges []Range, c rune) bool {
	for _, r := range ranges {
		if r.contains(c) {
			return true
		}
	}
	return false
}
