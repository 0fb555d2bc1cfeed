package gridrender

import (
	"github.com/olekukonko/gridrender/tw"
	"github.com/olekukonko/gridrender/twwidth"
	"github.com/olekukonko/gridrender/twwrap"
)

// DisplayWidth returns the number of terminal cells s occupies, ignoring
// any well-formed SGR escape sequence.
func DisplayWidth(s string) int { return twwidth.DisplayWidth(s) }

// StripSGR removes every well-formed SGR escape sequence from s.
func StripSGR(s string) string { return twwidth.StripSGR(s) }

// Wrap breaks s into lines of display width <= width under policy,
// honoring embedded newlines as hard breaks and carrying SGR state across
// the lines it spills into.
func Wrap(s string, width int, policy tw.WrapPolicy) []string {
	return twwrap.Wrap(s, width, policy)
}
