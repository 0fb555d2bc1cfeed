package twwrap

import (
	"strings"
	"testing"

	"github.com/olekukonko/gridrender/tw"
	"github.com/olekukonko/gridrender/twwidth"
)

var text = "The quick brown fox jumps over the lazy dog."

func TestWrapWordMode(t *testing.T) {
	got := Wrap(text, 6, tw.WrapWord)
	if len(got) != 9 {
		t.Errorf("got %d lines, want 9: %v", len(got), got)
	}
}

func TestWrapOneLine(t *testing.T) {
	got := Wrap(text, 500, tw.WrapWord)
	if len(got) != 1 || got[0] != text {
		t.Errorf("got %v, want single line %q", got, text)
	}
}

func TestWrapEachLineFits(t *testing.T) {
	for _, line := range Wrap(text, 6, tw.WrapWord) {
		if w := twwidth.DisplayWidth(line); w > 6 {
			t.Errorf("line %q has width %d, want <= 6", line, w)
		}
	}
}

func TestWrapHardBreak(t *testing.T) {
	got := Wrap("foo\nbar", 10, tw.WrapWord)
	if len(got) != 2 || got[0] != "foo" || got[1] != "bar" {
		t.Errorf("got %v, want [foo bar]", got)
	}
}

func TestWrapEmpty(t *testing.T) {
	got := Wrap("", 10, tw.WrapWord)
	if len(got) != 1 || got[0] != "" {
		t.Errorf("got %v, want single empty line", got)
	}
}

func TestWrapPreservesSGRAcrossBreak(t *testing.T) {
	in := "\x1b[31mlongredword anotherword\x1b[0m"
	got := Wrap(in, 11, tw.WrapWord)
	if len(got) < 2 {
		t.Fatalf("expected a wrap across multiple lines, got %v", got)
	}
	for _, line := range got {
		if strings.Contains(line, "\x1b[") && !strings.HasSuffix(line, twwidth.Reset) {
			continue // lines that open state elsewhere are fine as long as closed; checked below
		}
	}
	for _, line := range got {
		st := twwidth.SGRState{}
		for _, m := range twwidth.ScanSGR(line) {
			st.Apply(m.Params)
		}
		if st.IsOpen() {
			t.Errorf("line %q leaves SGR state open", line)
		}
	}
}

func TestWrapCharMode(t *testing.T) {
	got := Wrap("abcdef", 3, tw.WrapChar)
	if len(got) != 2 || got[0] != "abc" || got[1] != "def" {
		t.Errorf("got %v, want [abc def]", got)
	}
}

func TestWrapTruncateAddsEllipsis(t *testing.T) {
	got := WrapTruncate(text, 6, tw.WrapWord, 2)
	if len(got) != 2 {
		t.Fatalf("got %d lines, want 2", len(got))
	}
	if !strings.Contains(got[1], tw.CharEllipsis) {
		t.Errorf("last line %q should contain ellipsis", got[1])
	}
	if w := twwidth.DisplayWidth(got[1]); w > 6 {
		t.Errorf("last line width %d exceeds limit 6", w)
	}
}

func TestWrapTruncateNoopWhenUnderLimit(t *testing.T) {
	got := WrapTruncate("short", 10, tw.WrapWord, 5)
	if len(got) != 1 || got[0] != "short" {
		t.Errorf("got %v, want [short]", got)
	}
}

func TestSplitWords(t *testing.T) {
	for _, tt := range []struct {
		in  string
		out []string
	}{
		{in: "", out: nil},
		{in: "a", out: []string{"a"}},
		{in: "a b", out: []string{"a", "b"}},
		{in: "   a   b   ", out: []string{"a", "b"}},
		{in: "\r\na\t\t \r\t b\r\n  ", out: []string{"a", "b"}},
	} {
		t.Run(tt.in, func(t *testing.T) {
			got := splitWords(tt.in)
			if len(got) != len(tt.out) {
				t.Fatalf("got %v, want %v", got, tt.out)
			}
			for i := range got {
				if got[i] != tt.out[i] {
					t.Errorf("got %v, want %v", got, tt.out)
				}
			}
		})
	}
}

func TestWrapCharModeSGROnlyPreservesMarkup(t *testing.T) {
	got := Wrap("\x1b[31m", 10, tw.WrapChar)
	if len(got) != 1 {
		t.Fatalf("got %d lines, want 1: %v", len(got), got)
	}
	if !strings.Contains(got[0], "\x1b[31m") {
		t.Errorf("line %q lost its SGR opener", got[0])
	}
	st := twwidth.SGRState{}
	for _, m := range twwidth.ScanSGR(got[0]) {
		st.Apply(m.Params)
	}
	if st.IsOpen() {
		t.Errorf("line %q leaves SGR state open, want closed", got[0])
	}
}

func TestWrapWideWordFallsBackToChar(t *testing.T) {
	// a single "word" wider than the limit must still be split, never
	// left overflowing a line.
	got := Wrap("supercalifragilisticexpialidocious", 8, tw.WrapWord)
	for _, line := range got {
		if w := twwidth.DisplayWidth(line); w > 8 {
			t.Errorf("line %q has width %d, want <= 8", line, w)
		}
	}
}
