package twlayout

import (
	"strings"

	"github.com/olekukonko/gridrender/tw"
	"github.com/olekukonko/gridrender/twwidth"
	"github.com/olekukonko/gridrender/twwrap"
)

// FormatCell implements the cell formatter (spec 4.4): wrap content to the
// column's content width, truncate or pad to the assigned height h, then
// pad and align each line to the full width w (including cfg's padding).
func FormatCell(content string, w, h int, cfg ColumnConfig) []string {
	if w <= 0 {
		return make([]string, max(h, 1))
	}
	contentWidth := w - cfg.padWidth()
	if contentWidth < 0 {
		contentWidth = 0
	}
	lines := twwrap.WrapTruncate(content, contentWidth, cfg.wrapPolicy(), cfg.Truncate)
	return FormatLines(lines, w, h, cfg)
}

// FormatLines aligns and pads lines that have already been wrapped
// elsewhere into a w x h cell, truncating with an ellipsis if lines
// exceeds h. Row-span flattening uses this directly: the owner's content
// is wrapped once across its full width, then sliced into one chunk per
// spanned row, and each chunk is formatted through here without being
// re-wrapped.
func FormatLines(lines []string, w, h int, cfg ColumnConfig) []string {
	if w <= 0 {
		return make([]string, max(h, 1))
	}
	contentWidth := w - cfg.padWidth()
	if contentWidth < 0 {
		contentWidth = 0
	}
	if h <= 0 {
		h = 1
	}
	if len(lines) > h {
		lines = append([]string{}, lines[:h]...)
		lines[h-1] = ellipsizeLine(lines[h-1], contentWidth)
	}

	out := make([]string, len(lines))
	for i, line := range lines {
		isLast := i == len(lines)-1
		out[i] = padLine(line, contentWidth, cfg, isLast)
	}
	return PadVertical(out, h, cfg, contentWidth)
}

func ellipsizeLine(line string, w int) string {
	mark := tw.CharEllipsis
	markW := twwidth.DisplayWidth(mark)
	if w <= markW {
		return twwidth.SliceByWidth(line, 0, w)
	}
	head := twwidth.SliceByWidth(line, 0, w-markW)
	if strings.HasSuffix(head, twwidth.Reset) {
		return head[:len(head)-len(twwidth.Reset)] + mark + twwidth.Reset
	}
	return head + mark
}

// PadVertical pads a cell's already-wrapped lines to height h per valign,
// adding blank (fully-padded) lines above, below, or split between.
func PadVertical(lines []string, h int, cfg ColumnConfig, contentWidth int) []string {
	if len(lines) >= h {
		return lines
	}
	blank := padLine("", contentWidth, cfg, true)
	deficit := h - len(lines)
	switch cfg.VAlign {
	case tw.VAlignBottom:
		pad := make([]string, deficit)
		for i := range pad {
			pad[i] = blank
		}
		return append(pad, lines...)
	case tw.VAlignMiddle:
		top := deficit / 2
		bottom := deficit - top
		out := make([]string, 0, h)
		for i := 0; i < top; i++ {
			out = append(out, blank)
		}
		out = append(out, lines...)
		for i := 0; i < bottom; i++ {
			out = append(out, blank)
		}
		return out
	default: // VAlignTop
		out := make([]string, 0, h)
		out = append(out, lines...)
		for i := 0; i < deficit; i++ {
			out = append(out, blank)
		}
		return out
	}
}

// padLine aligns one already-wrapped line to contentWidth, then wraps it
// with the column's left/right padding. isLastOfParagraph controls whether
// justify alignment applies (it reverts to left on a paragraph's final
// line, per spec).
func padLine(line string, contentWidth int, cfg ColumnConfig, isLastOfParagraph bool) string {
	lw := twwidth.DisplayWidth(line)
	remaining := contentWidth - lw
	if remaining < 0 {
		remaining = 0
	}

	align := cfg.Align
	if align == tw.AlignJustify && isLastOfParagraph {
		align = tw.AlignLeft
	}

	var body string
	switch align {
	case tw.AlignRight:
		body = strings.Repeat(" ", remaining) + line
	case tw.AlignCenter:
		left := remaining / 2
		right := remaining - left
		body = strings.Repeat(" ", left) + line + strings.Repeat(" ", right)
	case tw.AlignJustify:
		body = justifyLine(line, remaining)
	default: // AlignLeft
		body = line + strings.Repeat(" ", remaining)
	}

	padLeft := cfg.PadLeft
	if padLeft == "" {
		padLeft = tw.Space
	}
	padRight := cfg.PadRight
	if padRight == "" {
		padRight = tw.Space
	}
	return padLeft + body + padRight
}

// justifyLine distributes extra spaces between the word groups of line,
// left to right, remainder to the earliest gaps.
func justifyLine(line string, extra int) string {
	if extra <= 0 {
		return line
	}
	words := strings.Split(line, " ")
	if len(words) < 2 {
		return line + strings.Repeat(" ", extra)
	}
	gaps := len(words) - 1
	share := extra / gaps
	rem := extra % gaps
	var b strings.Builder
	for i, w := range words {
		b.WriteString(w)
		if i < gaps {
			n := 1 + share
			if i < rem {
				n++
			}
			b.WriteString(strings.Repeat(" ", n))
		}
	}
	return b.String()
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
