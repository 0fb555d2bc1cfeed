// Package tw holds the small shared vocabulary used across the rendering
// pipeline: alignment constants, wrap policy, and the Symbols border-glyph
// interface. Nothing in this package depends on any other package in the
// module.
package tw

// Empty string sentinels, matching how border glyphs are frequently
// compared against or defaulted to "" throughout the renderer.
const (
	Empty   = ""
	Space   = " "
	NewLine = "\n"
)

// Align is the horizontal alignment of a cell's content within its column.
type Align string

const (
	AlignLeft    Align = "left"
	AlignRight   Align = "right"
	AlignCenter  Align = "center"
	AlignJustify Align = "justify"
)

// VAlign is the vertical alignment of a cell's wrapped lines within its row.
type VAlign string

const (
	VAlignTop    VAlign = "top"
	VAlignMiddle VAlign = "middle"
	VAlignBottom VAlign = "bottom"
)

// WrapPolicy selects how the wrapper breaks long lines.
type WrapPolicy int

const (
	WrapWord WrapPolicy = iota
	WrapChar
)

// Position identifies which section of the table a row belongs to. The
// engine only special-cases Header (row 0) for style/border overrides; Row
// exists so callers and border-selection logic have vocabulary to describe
// position without magic row indices leaking further down the pipeline.
type Position string

const (
	Header Position = "header"
	Row    Position = "row"
)

// CharEllipsis is the truncation marker appended when a wrapped cell is cut
// short to fit a fixed line count or display width. A single-width rune is
// used so the "shorten to keep width <= w" truncation arithmetic in the
// wrapper never has to account for a multi-cell marker.
const CharEllipsis = "…"
