package twlayout

import (
	"strings"
	"testing"

	"github.com/olekukonko/gridrender/tw"
	"github.com/olekukonko/gridrender/twspan"
	"github.com/olekukonko/gridrender/twwidth"
)

func mustPlan(t *testing.T, rows, cols int, descs []twspan.Descriptor) *twspan.Plan {
	t.Helper()
	p, err := twspan.Build(rows, cols, descs)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestFormatCellPadsWidth(t *testing.T) {
	cfg := ColumnConfig{Align: tw.AlignLeft, PadLeft: " ", PadRight: " "}
	lines := FormatCell("hi", 6, 1, cfg)
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	if w := twwidth.DisplayWidth(lines[0]); w != 6 {
		t.Errorf("width = %d, want 6: %q", w, lines[0])
	}
}

func TestFormatCellRightAlign(t *testing.T) {
	cfg := ColumnConfig{Align: tw.AlignRight, PadLeft: " ", PadRight: " "}
	lines := FormatCell("hi", 6, 1, cfg)
	if !strings.HasSuffix(lines[0], "hi ") {
		t.Errorf("got %q, want right-aligned", lines[0])
	}
}

func TestFormatCellVAlignMiddle(t *testing.T) {
	cfg := ColumnConfig{Align: tw.AlignLeft, VAlign: tw.VAlignMiddle, PadLeft: " ", PadRight: " "}
	lines := FormatCell("x", 3, 3, cfg)
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if strings.TrimSpace(lines[0]) != "" || strings.TrimSpace(lines[2]) != "" {
		t.Errorf("expected blank top/bottom lines, got %q / %q", lines[0], lines[2])
	}
	if strings.TrimSpace(lines[1]) != "x" {
		t.Errorf("expected content on middle line, got %q", lines[1])
	}
}

func TestFormatCellTruncateAddsEllipsis(t *testing.T) {
	cfg := ColumnConfig{Align: tw.AlignLeft, PadLeft: " ", PadRight: " "}
	lines := FormatCell("one two three four five six", 6, 1, cfg)
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	if !strings.Contains(lines[0], tw.CharEllipsis) {
		t.Errorf("expected ellipsis in %q", lines[0])
	}
}

func TestFormatCellZeroWidth(t *testing.T) {
	lines := FormatCell("anything", 0, 2, ColumnConfig{})
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
}

func TestJustifyDistributesSpaces(t *testing.T) {
	got := justifyLine("a b c", 4)
	if twwidth.DisplayWidth(got) != twwidth.DisplayWidth("a b c")+4 {
		t.Errorf("justify did not preserve total width: %q", got)
	}
	if strings.Contains(got, "  ") == false {
		t.Errorf("expected extra spacing inserted: %q", got)
	}
}

func TestJustifyLastLineRevertsToLeft(t *testing.T) {
	cfg := ColumnConfig{Align: tw.AlignJustify, PadLeft: "", PadRight: ""}
	got := padLine("a b", 7, cfg, true)
	want := padLine("a b", 7, ColumnConfig{Align: tw.AlignLeft}, true)
	if got != want {
		t.Errorf("last line of justify = %q, want left-aligned %q", got, want)
	}
}

func TestResolveWidthsExplicit(t *testing.T) {
	rows := [][]string{{"hello", "x"}}
	cfgs := []ColumnConfig{{Width: 10}, {}}
	widths := ResolveWidths(rows, cfgs, mustPlan(t, 1, 2, nil))
	if widths[0] != 10 {
		t.Errorf("explicit width not honored: %v", widths)
	}
	if widths[1] != 1 { // "x" (1), cfg carries no explicit padding here
		t.Errorf("computed width = %d, want 1", widths[1])
	}
}
