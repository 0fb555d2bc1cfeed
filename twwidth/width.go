// Package twwidth computes the terminal display width of strings that may
// carry SGR escape sequences, and slices such strings by display width
// without breaking a wide glyph or losing open style state across the cut.
//
// Grounded on the teacher's twfn.DisplayWidth/TruncateString (ANSI-stripping
// regex + github.com/mattn/go-runewidth measurement) and its pkg/twwidth
// package, generalized here into the SGR-state-aware primitives the wrapper
// and cell formatter both need.
package twwidth

import (
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"
)

// sgrPattern matches one well-formed SGR escape: ESC '[' {digits/;}* 'm'.
// Only the SGR subset is recognised (spec §6); cursor-movement, erase and
// other escape sequences pass through unchanged and are not measured as a
// unit: their ESC byte has width 0 and the bytes after it count like any
// other characters.
var sgrPattern = regexp.MustCompile("\x1b\\[[0-9;]*m")

// Reset is the SGR sequence that clears every attribute.
const Reset = "\x1b[0m"

// DisplayWidth returns the number of terminal cells s occupies once every
// well-formed SGR sequence is ignored. Wide/fullwidth code points count as
// 2, zero-width marks as 0, everything else as 1 or 0 per go-runewidth's
// East-Asian-Width table.
func DisplayWidth(s string) int {
	if !strings.ContainsRune(s, '\x1b') {
		return runewidth.StringWidth(s)
	}
	return runewidth.StringWidth(sgrPattern.ReplaceAllLiteralString(s, ""))
}

// StripSGR removes every well-formed SGR escape sequence from s.
func StripSGR(s string) string {
	if !strings.ContainsRune(s, '\x1b') {
		return s
	}
	return sgrPattern.ReplaceAllLiteralString(s, "")
}

// SGRMatch is one escape sequence located by ScanSGR.
type SGRMatch struct {
	Start, End int      // byte offsets [Start,End) of the full sequence in the source
	Raw        string   // the full "\x1b[...m" text
	Params     []string // semicolon-separated parameter fields; {"0"} for a bare reset
}

// ScanSGR returns every well-formed SGR escape sequence present in s, in
// left-to-right order, with byte offsets and decoded parameter lists.
func ScanSGR(s string) []SGRMatch {
	locs := sgrPattern.FindAllStringIndex(s, -1)
	if locs == nil {
		return nil
	}
	out := make([]SGRMatch, 0, len(locs))
	for _, loc := range locs {
		raw := s[loc[0]:loc[1]]
		out = append(out, SGRMatch{Start: loc[0], End: loc[1], Raw: raw, Params: paramsOf(raw)})
	}
	return out
}

func paramsOf(seq string) []string {
	raw := seq[2 : len(seq)-1] // strip "\x1b[" and trailing "m"
	if raw == "" {
		return []string{"0"}
	}
	return strings.Split(raw, ";")
}

// Token is one unit of a tokenized string: either a verbatim SGR escape
// (zero width, state-changing) or a single rune with its display width.
// Exported so the wrapper can walk the same token stream that
// SliceByWidth uses, instead of re-deriving ANSI-splitting logic.
type Token struct {
	SGR   string // full "\x1b[...m" text; "" when this token is a Rune
	Rune  rune
	Width int
	IsSGR bool
}

type token = Token

func tokenize(s string) []token {
	return Tokenize(s)
}

// Tokenize splits s into a left-to-right stream of SGR escapes and runes.
func Tokenize(s string) []Token {
	matches := sgrPattern.FindAllStringIndex(s, -1)
	var toks []token
	pos, mi := 0, 0
	for pos < len(s) {
		if mi < len(matches) && matches[mi][0] == pos {
			toks = append(toks, token{IsSGR: true, SGR: s[matches[mi][0]:matches[mi][1]]})
			pos = matches[mi][1]
			mi++
			continue
		}
		end := len(s)
		if mi < len(matches) {
			end = matches[mi][0]
		}
		for _, r := range s[pos:end] {
			toks = append(toks, token{Rune: r, Width: runewidth.RuneWidth(r)})
		}
		pos = end
	}
	return toks
}

// SliceByWidth returns the substring of s whose visible display width falls
// in [lo, hi), replaying any SGR state still open at lo and appending a
// reset if state is still open at hi. A wide glyph that straddles lo or hi
// is dropped rather than split; the gap it would have occupied is padded
// with spaces so the result's display width is always exactly hi-lo (when
// s has at least that much content) or less (when s runs out first).
func SliceByWidth(s string, lo, hi int) string {
	if hi <= lo {
		return ""
	}
	toks := tokenize(s)
	state := SGRState{}
	var out strings.Builder
	cur := 0
	emitted := false

	ensureOpener := func() {
		if !emitted {
			out.WriteString(state.Replay())
			emitted = true
		}
	}

	for _, t := range toks {
		if t.IsSGR {
			state.Apply(paramsOf(t.SGR))
			if cur >= lo && cur < hi {
				out.WriteString(t.SGR)
			}
			continue
		}
		if cur >= hi {
			break
		}
		w := t.Width
		if w == 0 {
			if cur >= lo {
				ensureOpener()
				out.WriteRune(t.Rune)
			}
			continue
		}
		switch {
		case cur+w > hi:
			// Glyph straddles the hi boundary: drop it, pad the remainder.
			if cur >= lo {
				ensureOpener()
				out.WriteString(strings.Repeat(" ", hi-cur))
			}
			cur += w
		case cur < lo && cur+w > lo:
			// Glyph straddles the lo boundary: drop it, pad its visible tail.
			ensureOpener()
			out.WriteString(strings.Repeat(" ", (cur+w)-lo))
			cur += w
		case cur >= lo:
			ensureOpener()
			out.WriteRune(t.Rune)
			cur += w
		default:
			cur += w
		}
	}
	if emitted && state.IsOpen() {
		out.WriteString(Reset)
	}
	return out.String()
}
