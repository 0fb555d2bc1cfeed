package gridrender

import (
	"io"
	"strings"

	"github.com/olekukonko/gridrender/twborder"
	"github.com/olekukonko/gridrender/twlayout"
	"github.com/olekukonko/gridrender/twspan"
	"github.com/olekukonko/gridrender/twstream"
	"github.com/olekukonko/gridrender/twwrap"
)

// Render sizes columns from the full data, resolves the span plan, then
// composes the top border, every content row (each of its h visual lines),
// the separators between rows (suppressed across span crossings and
// entirely when cfg.SingleLine is set), and the bottom border.
//
// Grounded on the teacher's stream.go lifecycle (begin/push_row/end,
// reshaped here into a single pass since all data is known up front) and
// renderer/default.go's per-line composition, now delegating the actual
// glyph assembly to twborder so this function is pure orchestration.
func Render(data TableData, cfg TableConfig) (string, []Warning, error) {
	plan, err := buildPlan(data, cfg)
	if err != nil {
		return "", nil, err
	}

	cols := data.ColCount()
	colCfgs := make([]twlayout.ColumnConfig, cols)
	for c := 0; c < cols; c++ {
		colCfgs[c] = cfg.columnConfigFor(0, c)
	}
	widths := twlayout.ResolveWidths(data.Rows(), colCfgs, plan)

	var warnings []Warning
	if cfg.Strict {
		warnings = collectCoverageWarnings(data, plan)
	}

	sym := cfg.Border.toSymbols()
	headerSym := sym
	if cfg.HeaderBorder != nil {
		headerSym = cfg.HeaderBorder.toSymbols()
	}
	spans := buildSpanContents(data, cfg, widths)
	spanLineCounts := make(map[int]int, len(spans))
	for idx, sc := range spans {
		spanLineCounts[idx] = len(sc.lines)
	}

	var buf strings.Builder

	buf.WriteString(twborder.Rule(sym, widths, nil, twborder.Top))
	buf.WriteByte('\n')

	for r, row := range data.Rows() {
		rowCfgs := make([]twlayout.ColumnConfig, cols)
		for c := 0; c < cols; c++ {
			rowCfgs[c] = cfg.columnConfigFor(r, c)
		}
		lineCounts := naturalLineCounts(row, rowCfgs, widths)
		h := plan.RowHeight(r, lineCounts, spanLineCounts)

		formatted := make([][]string, cols)
		for c := 0; c < cols; c++ {
			tag, idx := plan.At(r, c)
			switch tag {
			case twspan.Owner:
				d := plan.Descriptors[idx]
				formatted[c] = renderSpanChunk(spans[idx], d, r, h)
			case twspan.Covered:
				d := plan.Descriptors[idx]
				if c == d.Col {
					// Leftmost column of a row-span's range: render this
					// row's chunk of the owner's flattened content, not a
					// blank, so the span's content spreads across every
					// row it covers instead of being confined to the
					// owner's own row.
					formatted[c] = renderSpanChunk(spans[idx], d, r, h)
				} else {
					// An interior column of a col-span: its width is
					// already accounted for by the leftmost cell above.
					formatted[c] = twlayout.FormatCell("", 0, h, rowCfgs[c])
				}
			default:
				formatted[c] = twlayout.FormatCell(row[c], widths[c], h, rowCfgs[c])
			}
		}

		for line := 0; line < h; line++ {
			cells := make([]string, cols)
			for c := 0; c < cols; c++ {
				cells[c] = formatted[c][line]
			}
			buf.WriteString(twborder.ContentLine(sym, cells, plan, r))
			buf.WriteByte('\n')
		}

		if r < data.RowCount()-1 {
			crossing := crossingAfter(plan, r)
			if r == 0 && !cfg.SingleLine {
				buf.WriteString(twborder.HeaderRule(headerSym, widths, crossing))
				buf.WriteByte('\n')
			} else if !cfg.SingleLine {
				buf.WriteString(twborder.Rule(sym, widths, crossing, twborder.Middle))
				buf.WriteByte('\n')
			}
		}
	}

	buf.WriteString(twborder.Rule(sym, widths, nil, twborder.Bottom))
	buf.WriteByte('\n')

	return buf.String(), warnings, nil
}

// spanWidth sums the widths of a column-span's covered columns plus the
// inter-column separators the span swallows.
func spanWidth(widths []int, d twspan.Descriptor) int {
	span := d.ColSpan
	if span < 1 {
		span = 1
	}
	sum := 0
	for i := d.Col; i < d.Col+span && i < len(widths); i++ {
		sum += widths[i]
	}
	return sum + (span - 1)
}

func crossingAfter(plan *twspan.Plan, row int) []int {
	if row < 0 || row >= len(plan.Crossings) {
		return nil
	}
	return plan.Crossings[row]
}

// spanContent holds a span owner's content wrapped once across its full
// merged width, plus the per-row chunk size that flattens it evenly over
// every row the span covers.
type spanContent struct {
	lines     []string
	chunkSize int
	width     int
	cfg       twlayout.ColumnConfig
}

// buildSpanContents wraps each span owner's content exactly once (using the
// owner's own column config, with the descriptor's Align/VAlign overriding
// it when set, and the span's full merged width), so the
// content can be sliced into one chunk per spanned row instead of being
// wrapped, and therefore also truncated, independently per row.
func buildSpanContents(data TableData, cfg TableConfig, widths []int) map[int]spanContent {
	out := make(map[int]spanContent, len(cfg.Spans))
	for idx, s := range cfg.Spans {
		d := s.toPlanDescriptor()
		ownerCfg := cfg.columnConfigFor(d.Row, d.Col)
		if s.Align != "" {
			ownerCfg.Align = s.Align
		}
		if s.VAlign != "" {
			ownerCfg.VAlign = s.VAlign
		}
		width := spanWidth(widths, d)
		contentWidth := width - ownerCfg.PadWidth()
		if contentWidth < 0 {
			contentWidth = 0
		}
		content := ""
		if d.Row < data.RowCount() && d.Col < data.ColCount() {
			content = data.Rows()[d.Row][d.Col]
		}
		lines := twwrap.WrapTruncate(content, contentWidth, ownerCfg.WrapPolicy(), ownerCfg.Truncate)
		rowSpan := d.RowSpan
		if rowSpan < 1 {
			rowSpan = 1
		}
		out[idx] = spanContent{
			lines:     lines,
			chunkSize: ceilDiv(len(lines), rowSpan),
			width:     width,
			cfg:       ownerCfg,
		}
	}
	return out
}

// renderSpanChunk formats the slice of a span owner's flattened content that
// belongs to row r (r - d.Row chunks of sc.chunkSize lines each), padded or
// truncated to height h like any other cell.
func renderSpanChunk(sc spanContent, d twspan.Descriptor, r, h int) []string {
	localRow := r - d.Row
	start := localRow * sc.chunkSize
	var chunk []string
	if start < len(sc.lines) {
		end := start + sc.chunkSize
		if end > len(sc.lines) {
			end = len(sc.lines)
		}
		chunk = sc.lines[start:end]
	}
	return twlayout.FormatLines(chunk, sc.width, h, sc.cfg)
}

func ceilDiv(a, b int) int {
	if b <= 0 {
		b = 1
	}
	if a <= 0 {
		return 1
	}
	return (a + b - 1) / b
}

// naturalLineCounts measures, per column, how many lines that column's
// cell in this row would wrap to before any height-driven truncation —
// the input twspan.Plan.RowHeight needs to compute each row's height.
func naturalLineCounts(row []string, cfgs []twlayout.ColumnConfig, widths []int) map[int]int {
	out := make(map[int]int, len(row))
	for c, cell := range row {
		cw := widths[c] - cfgs[c].PadWidth()
		if cw < 0 {
			cw = 0
		}
		lines := twwrap.WrapTruncate(cell, cw, cfgs[c].WrapPolicy(), cfgs[c].Truncate)
		out[c] = len(lines)
	}
	return out
}

// RenderStreaming returns a Driver that emits directly to w: Begin()
// writes the top border (when widths is nil, the first PushRow writes it
// instead, after deriving widths from that row), PushRow(row) writes one
// data row at a time, and End() writes the bottom border. Unlike Render, the streaming driver does
// not special-case row 0 as a header and does not support spans (both
// require knowing the full grid up front); see DESIGN.md.
func RenderStreaming(w io.Writer, cfg TableConfig, colCfgs []ColumnConfig, widths []int) *Driver {
	sym := cfg.Border.toSymbols()
	resolved := make([]twlayout.ColumnConfig, len(colCfgs))
	for i, c := range colCfgs {
		resolved[i] = mergeColumnConfig(cfg.Default, c).WithDefaults()
	}
	opts := singleLineOpt(cfg)
	if widths != nil {
		opts = append(opts, twstream.WithWidths(widths))
	}
	return &Driver{inner: twstream.New(w, sym, resolved, opts...)}
}

// Driver is the public streaming handle returned by RenderStreaming.
type Driver struct {
	inner *twstream.Driver
}

func (d *Driver) Begin() error               { return wrapStreamErr(d.inner.Begin()) }
func (d *Driver) PushRow(row []string) error { return wrapStreamErr(d.inner.PushRow(row)) }
func (d *Driver) End() error                  { return wrapStreamErr(d.inner.End()) }

func singleLineOpt(cfg TableConfig) []twstream.Option {
	if cfg.SingleLine {
		return []twstream.Option{twstream.WithSingleLine()}
	}
	return nil
}

func buildPlan(data TableData, cfg TableConfig) (*twspan.Plan, error) {
	descs := make([]twspan.Descriptor, len(cfg.Spans))
	for i, s := range cfg.Spans {
		descs[i] = s.toPlanDescriptor()
	}
	plan, err := twspan.Build(data.RowCount(), data.ColCount(), descs)
	if err != nil {
		return nil, newError(KindSpan, "%s", err.Error())
	}
	return plan, nil
}

func collectCoverageWarnings(data TableData, plan *twspan.Plan) []Warning {
	var warnings []Warning
	for r, row := range data.Rows() {
		for c, cell := range row {
			tag, _ := plan.At(r, c)
			if tag == twspan.Covered && strings.TrimSpace(cell) != "" {
				warnings = append(warnings, Warning{Row: r, Col: c, Message: "non-empty content in a covered (spanned-over) cell was ignored"})
			}
		}
	}
	return warnings
}

func wrapStreamErr(err error) error {
	if err == nil {
		return nil
	}
	return newError(KindStreamingState, "%s", err.Error())
}
