// Package twwrap breaks a cell string into physical lines that each fit a
// target display width, honoring existing newlines as hard breaks and
// carrying open SGR state across the line it spills into.
//
// Grounded on the teacher's wrap.go (WrapWords/WrapString: minimal-raggedness
// word wrapping by dynamic program over word lengths), generalized here to
// walk twwidth.Token streams instead of plain runes so that SGR state
// survives a line break, and to support a char-mode fallback alongside the
// word-mode default.
package twwrap

import (
	"math"
	"strings"
	"unicode"

	"github.com/olekukonko/gridrender/tw"
	"github.com/olekukonko/gridrender/twwidth"
)

const defaultPenalty = 1e5

// Wrap breaks s into lines of display width <= w, following policy. Each
// logical (\n-separated) segment is wrapped independently and the results
// concatenated. SGR state open at the end of a line is closed with a reset
// and replayed at the start of the next.
func Wrap(s string, w int, policy tw.WrapPolicy) []string {
	var lines []string
	var state twwidth.SGRState
	for _, seg := range strings.Split(s, "\n") {
		lines = append(lines, wrapSegment(seg, w, policy, &state)...)
	}
	return lines
}

// WrapTruncate wraps s like Wrap, then if the result exceeds t lines,
// truncates to t and appends an ellipsis to the last kept line, shortening
// it as needed to keep display width <= w. t <= 0 disables truncation.
func WrapTruncate(s string, w int, policy tw.WrapPolicy, t int) []string {
	lines := Wrap(s, w, policy)
	if t <= 0 || len(lines) <= t {
		return lines
	}
	lines = lines[:t]
	lines[t-1] = ellipsize(lines[t-1], w)
	return lines
}

// ellipsize shortens line so that its display width, including the trailing
// ellipsis marker, is <= w, preserving any SGR state it carries.
func ellipsize(line string, w int) string {
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

// wrapSegment wraps one \n-free segment to width w under policy, starting
// from (and updating) the SGR state carried in from earlier segments.
func wrapSegment(seg string, w int, policy tw.WrapPolicy, state *twwidth.SGRState) []string {
	if seg == "" {
		return []string{""}
	}
	if seg == " " {
		return []string{" "}
	}
	atoms := splitAtoms(seg, w, policy)
	if len(atoms) == 0 {
		return []string{""}
	}
	groups := wrapAtoms(atoms, w)
	lines := make([]string, 0, len(groups))
	for _, g := range groups {
		lines = append(lines, joinWithCarry(g, state))
	}
	return lines
}

// joinWithCarry concatenates atoms into one line, prepending any SGR state
// still open from a previous line and closing it again if still open at the
// line's own end.
func joinWithCarry(atoms []string, state *twwidth.SGRState) string {
	var b strings.Builder
	if opener := state.Replay(); opener != "" {
		b.WriteString(opener)
	}
	for i, a := range atoms {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(a)
		for _, m := range twwidth.ScanSGR(a) {
			state.Apply(m.Params)
		}
	}
	if state.IsOpen() {
		b.WriteString(twwidth.Reset)
	}
	return b.String()
}

// splitAtoms breaks seg into the units the wrap DP operates on: maximal
// non-whitespace runs in word mode (matching the teacher's splitWords), with
// any atom wider than w itself char-split per spec's word-mode fallback;
// runs of code points packed up to width w (SGR escapes carried with the
// rune they precede) in char mode.
func splitAtoms(seg string, w int, policy tw.WrapPolicy) []string {
	if policy == tw.WrapChar {
		return splitAtomsChar(seg, w)
	}
	words := splitWords(seg)
	out := make([]string, 0, len(words))
	for _, wd := range words {
		if twwidth.DisplayWidth(wd) > w {
			out = append(out, splitAtomsChar(wd, w)...)
			continue
		}
		out = append(out, wd)
	}
	return out
}

func splitWords(s string) []string {
	words := make([]string, 0, len(s)/5+1)
	var b strings.Builder
	pending := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			if pending {
				words = append(words, b.String())
				b.Reset()
				pending = false
			}
			continue
		}
		b.WriteRune(r)
		pending = true
	}
	if pending {
		words = append(words, b.String())
	}
	return words
}

// splitAtomsChar packs the runes of s greedily into atoms of display width
// <= w (at least one rune per atom), so consecutive runes are never
// separated by the space wrapAtoms puts between atoms. Any SGR escapes
// immediately preceding a rune stay in front of it; a trailing run of SGR
// escapes with no following rune attaches to the previous atom instead of
// being dropped.
func splitAtomsChar(s string, w int) []string {
	toks := twwidth.Tokenize(s)
	out := make([]string, 0, len(toks))
	var pendingSGR strings.Builder
	curW := 0
	for _, t := range toks {
		if t.IsSGR {
			pendingSGR.WriteString(t.SGR)
			continue
		}
		atom := pendingSGR.String() + string(t.Rune)
		pendingSGR.Reset()
		if len(out) > 0 && curW+t.Width <= w {
			out[len(out)-1] += atom
			curW += t.Width
			continue
		}
		out = append(out, atom)
		curW = t.Width
	}
	if pendingSGR.Len() > 0 {
		if len(out) > 0 {
			out[len(out)-1] += pendingSGR.String()
		} else {
			// No rune followed the trailing SGR run at all (an SGR-only
			// segment): keep it as its own zero-width atom so the markup
			// survives instead of being dropped.
			out = append(out, pendingSGR.String())
		}
	}
	return out
}

// wrapAtoms is the teacher's WrapWords dynamic program, generalized from
// plain runes to display-width-measured atoms (which may carry embedded SGR
// escapes that do not count toward width). lim is raised to the widest
// atom's width so a single overlong atom (already char-split by splitAtoms
// when possible) still gets a line to itself rather than an impossible
// split.
func wrapAtoms(atoms []string, lim int) [][]string {
	n := len(atoms)
	if n == 0 {
		return nil
	}
	lengths := make([]int, n)
	for i := 0; i < n; i++ {
		lengths[i] = twwidth.DisplayWidth(atoms[i])
		if lengths[i] > lim {
			lim = lengths[i]
		}
	}
	const spc = 1
	nbrk := make([]int, n)
	cost := make([]int, n)
	for i := range cost {
		cost[i] = math.MaxInt32
	}
	remainderLen := lengths[n-1]
	for i := n - 1; i >= 0; i-- {
		if i < n-1 {
			remainderLen += spc + lengths[i]
		}
		if remainderLen <= lim {
			cost[i] = 0
			nbrk[i] = n
			continue
		}
		phraseLen := lengths[i]
		for j := i + 1; j < n; j++ {
			if j > i+1 {
				phraseLen += spc + lengths[j-1]
			}
			d := lim - phraseLen
			c := d*d + cost[j]
			if phraseLen > lim {
				c += defaultPenalty
			}
			if c < cost[i] {
				cost[i] = c
				nbrk[i] = j
			}
		}
	}
	var lines [][]string
	i := 0
	for i < n {
		lines = append(lines, atoms[i:nbrk[i]])
		i = nbrk[i]
	}
	return lines
}
