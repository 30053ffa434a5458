package revm

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCompileLit(t *testing.T) {
	got := Compile(Lit('a'))
	want := Program{
		{Op: OpChar, Rune: 'a'},
		{Op: OpMatch},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("program mismatch (-want +got):\n%s", diff)
	}
}

func TestCompileAlt(t *testing.T) {
	got := Compile(Alt(Lit('a'), Lit('b')))
	want := Program{
		{Op: OpSplit, A: 1, B: 3},
		{Op: OpChar, Rune: 'a'},
		{Op: OpJump, A: 4},
		{Op: OpChar, Rune: 'b'},
		{Op: OpMatch},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("program mismatch (-want +got):\n%s", diff)
	}
}

func TestCompileStar(t *testing.T) {
	got := Compile(Star(Lit('a')))
	want := Program{
		{Op: OpSplit, A: 1, B: 3},
		{Op: OpChar, Rune: 'a'},
		{Op: OpJump, A: 0},
		{Op: OpMatch},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("program mismatch (-want +got):\n%s", diff)
	}
}

func TestCompilePlus(t *testing.T) {
	got := Compile(Plus(Lit('a')))
	want := Program{
		{Op: OpChar, Rune: 'a'},
		{Op: OpSplit, A: 0, B: 2},
		{Op: OpMatch},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("program mismatch (-want +got):\n%s", diff)
	}
}

func TestCompileOpt(t *testing.T) {
	got := Compile(Opt(Lit('a')))
	want := Program{
		{Op: OpSplit, A: 1, B: 2},
		{Op: OpChar, Rune: 'a'},
		{Op: OpMatch},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("program mismatch (-want +got):\n%s", diff)
	}
}

func TestCompileSetRanges(t *testing.T) {
	got := Compile(Set(Range{'0', '9'}, Range{'a', 'f'}))
	want := Program{
		{Op: OpSet, Ranges: []Range{{'0', '9'}, {'a', 'f'}}},
		{Op: OpMatch},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("program mismatch (-want +got):\n%s", diff)
	}
}

func TestRepeatBounds(t *testing.T) {
	tests := []struct {
		name  string
		min   int
		max   int
		input string
		want  bool
	}{
		{name: "below min", min: 2, max: 4, input: "a", want: false},
		{name: "at min", min: 2, max: 4, input: "aa", want: true},
		{name: "inside", min: 2, max: 4, input: "aaa", want: true},
		{name: "at max", min: 2, max: 4, input: "aaaa", want: true},
		{name: "above max", min: 2, max: 4, input: "aaaaa", want: false},
		{name: "exact count", min: 3, max: 3, input: "aaa", want: true},
		{name: "exact count off by one", min: 3, max: 3, input: "aa", want: false},
		{name: "zero min empty", min: 0, max: 2, input: "", want: true},
		{name: "unbounded", min: 1, max: Unbounded, input: "aaaaaaaaaa", want: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := Compile(Repeat(Lit('a'), tc.min, tc.max))
			if got := p.Matches(tc.input); got != tc.want {
				t.Fatalf("Matches(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestInvalidConstruction(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{name: "inverted range", fn: func() { Set(Range{'z', 'a'}) }},
		{name: "negative min", fn: func() { Repeat(Lit('a'), -1, 2) }},
		{name: "max below min", fn: func() { Repeat(Lit('a'), 3, 2) }},
		{name: "empty alternation", fn: func() { Alt() }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatalf("expected panic")
				}
			}()
			tc.fn()
		})
	}
}

func TestJumpTargetsInBounds(t *testing.T) {
	// Representative of the grammar shapes used by the lexical
	// matchers; every Split/Jump target must address the same program.
	exprs := []Expr{
		Lit('a'),
		Str("true"),
		Seq(Opt(Lit('-')), Plus(Digit())),
		Alt(Str("INF"), Str("NaN"), Seq(Plus(Digit()), Opt(Seq(Lit('.'), Star(Digit()))))),
		Repeat(Alt(Lit('a'), Set(Range{'0', '9'})), 0, 5),
		Star(Alt(Seq(Lit('x'), Opt(Lit('y'))), Plus(Lit('z')))),
	}

	for _, e := range exprs {
		p := Compile(e)
		for pc, in := range p {
			switch in.Op {
			case OpSplit:
				if in.A < 0 || in.A >= len(p) || in.B < 0 || in.B >= len(p) {
					t.Fatalf("instruction %d: split target out of bounds: %+v", pc, in)
				}
			case OpJump:
				if in.A < 0 || in.A >= len(p) {
					t.Fatalf("instruction %d: jump target out of bounds: %+v", pc, in)
				}
			}
		}
		if p[len(p)-1].Op != OpMatch {
			t.Fatalf("program does not end in match: %+v", p)
		}
	}
}
