package twborder

import (
	"strings"
	"testing"

	"github.com/olekukonko/gridrender/tw"
	"github.com/olekukonko/gridrender/twspan"
)

func TestRuleTopASCII(t *testing.T) {
	sym := tw.NewSymbols(tw.StyleASCII)
	got := Rule(sym, []int{3, 3}, nil, Top)
	want := "+---+---+"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRuleBottomUnicode(t *testing.T) {
	sym := tw.NewSymbols(tw.StyleLight)
	got := Rule(sym, []int{2, 2}, nil, Bottom)
	if !strings.HasPrefix(got, "└") || !strings.HasSuffix(got, "┘") {
		t.Errorf("got %q, want light bottom corners", got)
	}
}

func TestRuleSuppressesCrossing(t *testing.T) {
	sym := tw.NewSymbols(tw.StyleASCII)
	got := Rule(sym, []int{3, 3}, []int{0}, Middle)
	want := "+   +---+"
	if got != want {
		t.Errorf("expected the crossed column's segment to be blank: got %q, want %q", got, want)
	}
}

func TestContentLineJoinsCells(t *testing.T) {
	sym := tw.NewSymbols(tw.StyleASCII)
	got := ContentLine(sym, []string{" a ", " b "}, nil, 0)
	want := "| a | b |"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestContentLineSuppressesSpanJoin(t *testing.T) {
	sym := tw.NewSymbols(tw.StyleASCII)
	plan, err := twspan.Build(1, 2, []twspan.Descriptor{{Row: 0, Col: 0, ColSpan: 2}})
	if err != nil {
		t.Fatal(err)
	}
	got := ContentLine(sym, []string{" a ", " b "}, plan, 0)
	if strings.Contains(got, "|") && strings.Count(got, "|") != 2 {
		t.Errorf("expected interior join suppressed, got %q", got)
	}
}

func TestVoidPresetEmitsNothing(t *testing.T) {
	sym := tw.NewSymbols(tw.BorderStyle(99)) // unknown style falls back to void
	got := Rule(sym, []int{3}, nil, Top)
	if strings.TrimSpace(got) != "" {
		t.Errorf("void preset should emit no visible glyphs, got %q", got)
	}
}
