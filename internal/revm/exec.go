package revm

// The executor simulates every viable instruction pointer ("thread")
// breadth-first over the input. Non-consuming instructions (OpSplit,
// OpJump) are followed to a fixed point before the next code point is
// consumed, and thread positions are deduplicated, so the live set is
// bounded by the program length and the whole run is linear in
// len(program) x len(text).
//
// Programs are assumed well formed: a dangling jump target is a
// construction-time defect and panics via the slice bounds check
// rather than being reported as a non-match.

// Matches reports whether text, in its entirety, matches the program.
func (p Program) Matches(text string) bool {
	return p.run(text, false)
}

// MatchesPrefix reports whether some prefix of text (possibly empty,
// possibly all of it) matches the program.
func (p Program) MatchesPrefix(text string) bool {
	return p.run(text, true)
}

func (p Program) run(text string, prefix bool) bool {
	curr := newThreadSet(len(p))
	next := newThreadSet(len(p))
	p.addThread(curr, 0)
	if prefix && curr.matched {
		return true
	}
	for _, c := range text {
		if len(curr.dense) == 0 {
			return false
		}
		next.clear()
		for _, pc := range curr.dense {
			in := p[pc]
			switch in.Op {
			case OpChar:
				if in.Rune == c {
					p.addThread(next, pc+1)
				}
			case OpSet:
				if inRanges(in.Ranges, c) {
					p.addThread(next, pc+1)
				}
			}
		}
		curr, next = next, curr
		if prefix && curr.matched {
			return true
		}
	}
	return curr.matched
}

// addThread records pc in the set, following non-consuming
// instructions eagerly. Reaching OpMatch marks the set as accepting;
// only consuming instructions are kept for the next input position.
func (p Program) addThread(s *threadSet, pc int) {
	if s.seen[pc] {
		return
	}
	s.seen[pc] = true
	switch in := p[pc]; in.Op {
	case OpJump:
		p.addThread(s, in.A)
	case OpSplit:
		p.addThread(s, in.A)
		p.addThread(s, in.B)
	case OpMatch:
		s.matched = true
	default:
		s.dense = append(s.dense, pc)
	}
}

// threadSet is the deduplicated set of live thread positions at one
// input offset. It is call-local scratch, sized by the program.
type threadSet struct {
	dense   []int
	seen    []bool
	matched bool
}

func newThreadSet(n int) *threadSet {
	return &threadSet{dense: make([]int, 0, n), seen: make([]bool, n)}
}

func (s *threadSet) clear() {
	s.dense = s.dense[:0]
	clear(s.seen)
	s.matched = false
}
