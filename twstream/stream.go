// Package twstream implements the incremental, one-row-at-a-time render
// driver: begin() emits the top border (or leaves it to the first
// push_row() when widths are derived from that row), push_row() emits a separator plus
// the row's formatted content lines, end() emits the bottom border.
//
// Grounded on the teacher's stream.go (Start/Close lifecycle, the
// CREATED/OPEN/CLOSED discipline enforced by hasPrinted and similar guard
// fields, and its use of github.com/olekukonko/errors for state-machine
// violations and github.com/olekukonko/ll for opt-in tracing), reshaped
// around the column/cell primitives in twlayout/twborder instead of the
// teacher's Formatting/CellContext machinery.
package twstream

import (
	"fmt"
	"io"

	"github.com/olekukonko/errors"
	"github.com/olekukonko/gridrender/tw"
	"github.com/olekukonko/gridrender/twborder"
	"github.com/olekukonko/gridrender/twlayout"
	"github.com/olekukonko/gridrender/twwrap"
	"github.com/olekukonko/ll"
)

// State names one point in the driver's lifecycle.
type State int

const (
	Created State = iota
	Open
	Closed
)

func (s State) String() string {
	switch s {
	case Created:
		return "created"
	case Open:
		return "open"
	case Closed:
		return "closed"
	}
	return "unknown"
}

// Driver is a stateful, single-owner row emitter. It is not safe for
// concurrent use.
type Driver struct {
	w       io.Writer
	sym     tw.Symbols
	cfgs    []twlayout.ColumnConfig
	widths  []int
	single  bool
	state   State
	rowSeen bool
	log     *ll.Logger
}

// Option configures a Driver at construction.
type Option func(*Driver)

// WithSingleLine suppresses interior row separators, leaving only the top
// and bottom borders.
func WithSingleLine() Option {
	return func(d *Driver) { d.single = true }
}

// WithWidths finalizes column widths eagerly instead of deriving them from
// the first pushed row.
func WithWidths(widths []int) Option {
	return func(d *Driver) { d.widths = widths }
}

// New constructs a Driver in the Created state. cfgs supplies one
// ColumnConfig per column; widths, if not supplied via WithWidths, are
// derived from the first row pushed.
func New(w io.Writer, sym tw.Symbols, cfgs []twlayout.ColumnConfig, opts ...Option) *Driver {
	d := &Driver{w: w, sym: sym, cfgs: cfgs, state: Created, log: ll.New("twstream")}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Begin transitions Created -> Open and emits the top border when widths
// were supplied via WithWidths. Without them Begin emits nothing; the first
// PushRow derives the widths from its row and emits the top border then.
func (d *Driver) Begin() error {
	if d.state != Created {
		return errors.New(fmt.Sprintf("begin() called in state %s, want created", d.state))
	}
	d.log.Debug("begin: emitting top border")
	if d.widths != nil {
		fmt.Fprintln(d.w, twborder.Rule(d.sym, d.widths, nil, twborder.Top))
	}
	d.state = Open
	return nil
}

// PushRow validates row's cell count against the configured column count,
// formats each cell, emits the separator above it (skipped for the first
// row after Begin, and always skipped when single-line mode is set), then
// emits the row's content lines.
func (d *Driver) PushRow(row []string) error {
	if d.state != Open {
		return errors.New(fmt.Sprintf("push_row() called in state %s, want open", d.state))
	}
	if len(row) != len(d.cfgs) {
		return errors.New(fmt.Sprintf("row has %d cells, want %d", len(row), len(d.cfgs)))
	}

	if d.widths == nil {
		d.widths = naturalWidthsFromRow(row, d.cfgs)
		fmt.Fprintln(d.w, twborder.Rule(d.sym, d.widths, nil, twborder.Top))
	}

	if d.rowSeen && !d.single {
		d.log.Debug("push_row: emitting row separator")
		fmt.Fprintln(d.w, twborder.Rule(d.sym, d.widths, nil, twborder.Middle))
	}

	height := 1
	for c, cell := range row {
		cfg := d.cfgs[c].WithDefaults()
		contentWidth := d.widths[c] - cfg.PadWidth()
		if n := len(twwrap.WrapTruncate(cell, contentWidth, cfg.WrapPolicy(), cfg.Truncate)); n > height {
			height = n
		}
	}
	formatted := make([][]string, len(row))
	for c := range row {
		cfg := d.cfgs[c].WithDefaults()
		formatted[c] = twlayout.FormatCell(row[c], d.widths[c], height, cfg)
	}

	for line := 0; line < height; line++ {
		cells := make([]string, len(formatted))
		for c := range formatted {
			cells[c] = formatted[c][line]
		}
		fmt.Fprintln(d.w, twborder.ContentLine(d.sym, cells, nil, 0))
	}

	d.rowSeen = true
	return nil
}

// End transitions Open -> Closed and emits the bottom border.
func (d *Driver) End() error {
	if d.state != Open {
		return errors.New(fmt.Sprintf("end() called in state %s, want open", d.state))
	}
	d.log.Debug("end: emitting bottom border")
	fmt.Fprintln(d.w, twborder.Rule(d.sym, d.widths, nil, twborder.Bottom))
	d.state = Closed
	return nil
}

func naturalWidthsFromRow(row []string, cfgs []twlayout.ColumnConfig) []int {
	widths := make([]int, len(row))
	for c := range row {
		cfg := cfgs[c].WithDefaults()
		if cfg.Width > 0 {
			widths[c] = cfg.Width
			continue
		}
		widths[c] = twlayout.NaturalWidth(row[c], cfg)
	}
	return widths
}
