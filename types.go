package gridrender

import (
	"github.com/olekukonko/gridrender/tw"
	"github.com/olekukonko/gridrender/twlayout"
	"github.com/olekukonko/gridrender/twspan"
)

// TableData is a validated, rectangular grid of Cells. Construct it with
// NewTableData rather than a struct literal so the ShapeError invariants
// (non-empty, uniform row length, at least one column) are enforced once
// up front instead of at every consumer.
type TableData struct {
	rows [][]string
}

// NewTableData validates rows and returns a TableData, or a KindShape
// Error if rows is empty, any row has a different cell count than row 0,
// or row 0 has zero cells.
func NewTableData(rows [][]string) (TableData, error) {
	if len(rows) == 0 {
		return TableData{}, newError(KindShape, "table data must have at least one row")
	}
	cols := len(rows[0])
	if cols == 0 {
		return TableData{}, newError(KindShape, "table data must have at least one column")
	}
	for i, r := range rows {
		if len(r) != cols {
			return TableData{}, newError(KindShape, "row %d has %d cells, want %d (row 0's count)", i, len(r), cols)
		}
	}
	return TableData{rows: rows}, nil
}

// Rows returns the underlying grid. The returned slices must not be
// mutated; TableData is meant to be treated as immutable for the lifetime
// of a render.
func (d TableData) Rows() [][]string { return d.rows }

// RowCount and ColCount report the grid's dimensions.
func (d TableData) RowCount() int { return len(d.rows) }
func (d TableData) ColCount() int {
	if len(d.rows) == 0 {
		return 0
	}
	return len(d.rows[0])
}

// ColumnConfig configures one column's sizing and cell formatting; it is
// the public alias of twlayout.ColumnConfig so callers never need to
// import the layout package directly.
type ColumnConfig = twlayout.ColumnConfig

// BorderConfig maps the seventeen named border positions to a single-glyph
// string each. An empty string at any position means "emit nothing there",
// which is how the void preset is expressed.
type BorderConfig struct {
	Name string

	TopLeft, Top, TopJoin, TopRight       string
	BodyLeft, BodyRight, BodyJoin         string
	LeftJoin, CrossJoin, RightJoin        string
	BottomLeft, Bottom, BottomJoin, BottomRight string
	HeaderLeftJoin, HeaderCrossJoin, HeaderRightJoin string
}

// toSymbols adapts a BorderConfig into the tw.Symbols shape the layout and
// border-rendering packages consume.
func (b BorderConfig) toSymbols() tw.Symbols {
	return &tw.SymbolCustom{
		NameV:        b.Name,
		CenterV:      b.CrossJoin,
		RowV:         b.Top,
		BottomRowV:   b.Bottom,
		ColumnLeftV:  b.BodyLeft,
		ColumnRightV: b.BodyRight,
		ColumnJoinV:  b.BodyJoin,
		TopLeftV:     b.TopLeft,
		TopMidV:      b.TopJoin,
		TopRightV:    b.TopRight,
		MidLeftV:     b.LeftJoin,
		MidRightV:    b.RightJoin,
		BottomLeftV:  b.BottomLeft,
		BottomMidV:   b.BottomJoin,
		BottomRightV: b.BottomRight,
		HeaderLeftV:  b.HeaderLeftJoin,
		HeaderMidV:   b.HeaderCrossJoin,
		HeaderRightV: b.HeaderRightJoin,
	}
}

// SpanDescriptor names a merged region of the grid: RowSpan rows starting
// at Row, ColSpan columns starting at Col, with optional alignment
// overrides applied to the owner cell's formatting.
type SpanDescriptor struct {
	Row, Col         int
	RowSpan, ColSpan int
	Align            tw.Align
	VAlign           tw.VAlign
}

func (s SpanDescriptor) toPlanDescriptor() twspan.Descriptor {
	return twspan.Descriptor{Row: s.Row, Col: s.Col, RowSpan: s.RowSpan, ColSpan: s.ColSpan}
}

// TableConfig is the complete styling input to Render/RenderStreaming: a
// border, a default column config, optional per-column overrides, an
// optional header override, a single-line flag, and the span plan.
type TableConfig struct {
	Border       BorderConfig
	Default      ColumnConfig
	Columns      []ColumnConfig // per-column override; Columns[i] overrides Default for column i
	Header       *ColumnConfig  // overrides Default/Columns for row 0 only
	HeaderBorder *BorderConfig  // if set, used for the header's bottom separator only
	SingleLine   bool
	Spans        []SpanDescriptor
	Strict       bool // when true, non-empty covered cells produce a Warning instead of being silently dropped
}

// columnConfigFor resolves the effective ColumnConfig for column c, row r,
// applying the header override when r == 0 and one is configured.
func (cfg TableConfig) columnConfigFor(r, c int) ColumnConfig {
	base := cfg.Default
	if c < len(cfg.Columns) {
		base = mergeColumnConfig(base, cfg.Columns[c])
	}
	if r == 0 && cfg.Header != nil {
		base = mergeColumnConfig(base, *cfg.Header)
	}
	return base.WithDefaults()
}

// mergeColumnConfig overlays override's non-zero fields onto base.
func mergeColumnConfig(base, override ColumnConfig) ColumnConfig {
	if override.Width > 0 {
		base.Width = override.Width
	}
	if override.WordWrap {
		base.WordWrap = true
	}
	if override.Truncate > 0 {
		base.Truncate = override.Truncate
	}
	if override.Align != "" {
		base.Align = override.Align
	}
	if override.VAlign != "" {
		base.VAlign = override.VAlign
	}
	if override.PadLeft != "" {
		base.PadLeft = override.PadLeft
	}
	if override.PadRight != "" {
		base.PadRight = override.PadRight
	}
	return base
}
