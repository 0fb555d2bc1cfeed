// Package twborder composes the literal border and content lines of a
// rendered table from column widths, a span plan, and a tw.Symbols glyph
// table.
//
// Grounded on the teacher's renderer/default.go:renderLine (left/body/join/
// right composition per row) and renderer/junction.go (deciding which
// junction glyph applies at a span boundary), reshaped around a
// twspan.Plan's precomputed Crossings instead of the teacher's per-row
// MergeState walk.
package twborder

import (
	"strings"

	"github.com/olekukonko/gridrender/tw"
	"github.com/olekukonko/gridrender/twspan"
)

// Line is one of the three horizontal-rule roles a border can render.
type Line int

const (
	Top Line = iota
	Middle
	Bottom
)

// Rule renders one horizontal border line (top, a row separator, or
// bottom) given column widths and the set of column indices a span crosses
// at this boundary (nil or empty when no span crosses it). The horizontal
// segment of a crossed column is left blank.
func Rule(sym tw.Symbols, widths []int, crossing []int, line Line) string {
	if sym == nil || len(widths) == 0 {
		return ""
	}
	crosses := make(map[int]bool, len(crossing))
	for _, c := range crossing {
		crosses[c] = true
	}

	var left, join, right, body string
	switch line {
	case Top:
		left, join, right, body = sym.TopLeft(), sym.TopMid(), sym.TopRight(), sym.Row()
	case Bottom:
		left, join, right, body = sym.BottomLeft(), sym.BottomMid(), sym.BottomRight(), sym.BottomRow()
	default:
		left, join, right, body = sym.MidLeft(), sym.Center(), sym.MidRight(), sym.Row()
	}

	var b strings.Builder
	b.WriteString(left)
	for c, w := range widths {
		if w > 0 {
			if crosses[c] {
				b.WriteString(strings.Repeat(" ", w))
			} else {
				b.WriteString(strings.Repeat(body, w))
			}
		}
		if c < len(widths)-1 {
			b.WriteString(join)
		}
	}
	b.WriteString(right)
	return b.String()
}

// HeaderRule renders the separator directly beneath the header row, which
// uses the Symbols table's dedicated Header* glyphs instead of the plain
// mid-rule ones. As in Rule, a crossed column's segment is left blank.
func HeaderRule(sym tw.Symbols, widths []int, crossing []int) string {
	if sym == nil || len(widths) == 0 {
		return ""
	}
	crosses := make(map[int]bool, len(crossing))
	for _, c := range crossing {
		crosses[c] = true
	}
	var b strings.Builder
	b.WriteString(sym.HeaderLeft())
	for c, w := range widths {
		if w > 0 {
			if crosses[c] {
				b.WriteString(strings.Repeat(" ", w))
			} else {
				b.WriteString(strings.Repeat(sym.Row(), w))
			}
		}
		if c < len(widths)-1 {
			b.WriteString(sym.HeaderMid())
		}
	}
	b.WriteString(sym.HeaderRight())
	return b.String()
}

// ContentLine composes one visual line of a content row: cells joined by
// the vertical column glyph. Where a column-span crosses a join within this
// row nothing is written there, since the span owner's cell is already as
// wide as the columns and separators it covers.
func ContentLine(sym tw.Symbols, cells []string, plan *twspan.Plan, row int) string {
	var b strings.Builder
	b.WriteString(sym.ColumnLeft())
	for c, cell := range cells {
		b.WriteString(cell)
		if c < len(cells)-1 {
			if !spanCrossesJoin(plan, row, c) {
				b.WriteString(sym.ColumnJoin())
			}
		}
	}
	b.WriteString(sym.ColumnRight())
	return b.String()
}

// spanCrossesJoin reports whether the column-span owning (row, c) also
// covers (row, c+1), meaning the vertical separator between them should be
// suppressed.
func spanCrossesJoin(plan *twspan.Plan, row, c int) bool {
	if plan == nil {
		return false
	}
	tagA, idxA := plan.At(row, c)
	tagB, idxB := plan.At(row, c+1)
	if tagA == twspan.None || tagB == twspan.None {
		return false
	}
	return idxA == idxB
}

func separatorWidth(sym tw.Symbols) int {
	if sym.ColumnJoin() == "" {
		return 0
	}
	return 1
}
