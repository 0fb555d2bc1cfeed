// Package twlayout resolves column widths from table data and configuration,
// then formats each cell's wrapped lines into its assigned w x h rectangle.
//
// Grounded on the teacher's config.go width accounting (explicit vs.
// computed widths) and renderer/default.go's formatCell/renderLine padding
// and alignment logic, generalized to consume a twspan.Plan for span-aware
// sizing instead of the teacher's per-row HMerge/VMerge bookkeeping.
package twlayout

import (
	"github.com/olekukonko/gridrender/tw"
	"github.com/olekukonko/gridrender/twspan"
	"github.com/olekukonko/gridrender/twwidth"
)

// ColumnConfig configures one column's sizing and cell formatting.
type ColumnConfig struct {
	Width    int // explicit width in display cells; 0 means "compute"
	WordWrap bool
	Truncate int // max lines before truncation with ellipsis; 0 disables
	Align    tw.Align
	VAlign   tw.VAlign
	PadLeft  string
	PadRight string
}

// WithDefaults returns a copy of c with the spec's defaults (char-wrap,
// left/top alignment, padding 1/1) applied to zero-valued fields.
func (c ColumnConfig) WithDefaults() ColumnConfig {
	if c.Align == "" {
		c.Align = tw.AlignLeft
	}
	if c.VAlign == "" {
		c.VAlign = tw.VAlignTop
	}
	if c.PadLeft == "" {
		c.PadLeft = tw.Space
	}
	if c.PadRight == "" {
		c.PadRight = tw.Space
	}
	return c
}

func (c ColumnConfig) padWidth() int {
	return twwidth.DisplayWidth(c.PadLeft) + twwidth.DisplayWidth(c.PadRight)
}

// PadWidth exposes padWidth to callers outside this package (the streaming
// driver needs it to size lines before calling FormatCell).
func (c ColumnConfig) PadWidth() int {
	return c.padWidth()
}

func (c ColumnConfig) wrapPolicy() tw.WrapPolicy {
	if c.WordWrap {
		return tw.WrapWord
	}
	return tw.WrapChar
}

// WrapPolicy exposes wrapPolicy to callers outside this package.
func (c ColumnConfig) WrapPolicy() tw.WrapPolicy {
	return c.wrapPolicy()
}

// NaturalWidth is the widest \n-separated segment of content, plus c's
// padding; exported so the streaming driver can derive widths from a single
// row without reaching past this package's API.
func NaturalWidth(content string, c ColumnConfig) int {
	return naturalWidth(content, c)
}

// naturalWidth is the widest \n-separated segment of content, plus padding.
func naturalWidth(content string, c ColumnConfig) int {
	max := 0
	start := 0
	for i := 0; i <= len(content); i++ {
		if i == len(content) || content[i] == '\n' {
			if w := twwidth.DisplayWidth(content[start:i]); w > max {
				max = w
			}
			start = i + 1
		}
	}
	return max + c.padWidth()
}

// ResolveWidths implements the column sizer (spec 4.3): explicit widths are
// fixed, remaining columns take the max natural width over all rows in that
// column, and spanning cells enlarge their covered columns when the span's
// own natural width exceeds the sum of what its columns would otherwise be,
// distributing any deficit equally with the remainder to the leftmost
// spanned column.
func ResolveWidths(rows [][]string, cfgs []ColumnConfig, plan *twspan.Plan) []int {
	cols := len(cfgs)
	widths := make([]int, cols)
	for c, cfg := range cfgs {
		if cfg.Width > 0 {
			widths[c] = cfg.Width
		}
	}
	for r, row := range rows {
		for c := 0; c < cols && c < len(row); c++ {
			if cfgs[c].Width > 0 {
				continue
			}
			tag, _ := plan.At(r, c)
			if tag != twspan.None {
				continue // spanning cells are sized below, not per-column
			}
			if w := naturalWidth(row[c], cfgs[c]); w > widths[c] {
				widths[c] = w
			}
		}
	}
	for r, row := range rows {
		for c := 0; c < cols && c < len(row); c++ {
			tag, idx := plan.At(r, c)
			if tag != twspan.Owner {
				continue
			}
			d := plan.Descriptors[idx]
			need := naturalWidth(row[c], cfgs[c])
			enlargeSpan(widths, d.Col, d.ColSpan, need)
		}
	}
	return widths
}

func enlargeSpan(widths []int, col, span, need int) {
	if span < 1 {
		span = 1
	}
	sum := 0
	for i := col; i < col+span && i < len(widths); i++ {
		sum += widths[i]
	}
	sum += span - 1 // inter-column separator cells
	if sum >= need {
		return
	}
	deficit := need - sum
	share := deficit / span
	extra := deficit % span
	for i := 0; i < span && col+i < len(widths); i++ {
		widths[col+i] += share
		if i == 0 {
			widths[col+i] += extra
		}
	}
}
