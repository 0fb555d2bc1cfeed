package twwidth

import (
	"sort"
	"strconv"
	"strings"
)

// SGRState is the small explicit value that carries "which SGR attributes
// are active" across a line break, exactly the shared-state design spec §9
// calls for: a set of boolean attributes plus one foreground and one
// background colour group, threaded through the wrapper instead of any
// hidden global.
type SGRState struct {
	Attrs map[string]bool // "1","2","3","4","5","7","9" (bold/dim/italic/underline/blink/reverse/strike)
	FG    string          // raw parameter group, e.g. "31", "38;5;196", "38;2;10;20;30"
	BG    string          // same shape for background
}

// onCodes lists the boolean attribute parameters; offTargets maps each
// "off" parameter to the attributes it clears (22 clears both bold and dim).
var onCodes = map[string]bool{"1": true, "2": true, "3": true, "4": true, "5": true, "7": true, "9": true}

func offTargets(off string) []string {
	switch off {
	case "21":
		return []string{"1"}
	case "22":
		return []string{"1", "2"}
	case "23":
		return []string{"3"}
	case "24":
		return []string{"4"}
	case "25":
		return []string{"5"}
	case "27":
		return []string{"7"}
	case "29":
		return []string{"9"}
	}
	return nil
}

// Apply mutates st to reflect the effect of one escape sequence's decoded
// parameter list (as returned by ScanSGR/paramsOf).
func (st *SGRState) Apply(params []string) {
	if st.Attrs == nil {
		st.Attrs = map[string]bool{}
	}
	i := 0
	for i < len(params) {
		p := params[i]
		switch {
		case p == "" || p == "0":
			st.Attrs = map[string]bool{}
			st.FG = ""
			st.BG = ""
		case onCodes[p]:
			st.Attrs[p] = true
		case offTargets(p) != nil:
			for _, t := range offTargets(p) {
				delete(st.Attrs, t)
			}
		case p == "39":
			st.FG = ""
		case p == "49":
			st.BG = ""
		case p == "38" || p == "48":
			if i+1 < len(params) && params[i+1] == "5" && i+2 < len(params) {
				group := strings.Join(params[i:i+3], ";")
				if p == "38" {
					st.FG = group
				} else {
					st.BG = group
				}
				i += 2
			} else if i+1 < len(params) && params[i+1] == "2" && i+4 < len(params) {
				group := strings.Join(params[i:i+5], ";")
				if p == "38" {
					st.FG = group
				} else {
					st.BG = group
				}
				i += 4
			}
			// malformed extended-colour introducer: ignored, not carried forward
		default:
			if n, err := strconv.Atoi(p); err == nil {
				switch {
				case (n >= 30 && n <= 37) || (n >= 90 && n <= 97):
					st.FG = p
				case (n >= 40 && n <= 47) || (n >= 100 && n <= 107):
					st.BG = p
				}
			}
		}
		i++
	}
}

// IsOpen reports whether any attribute, foreground, or background is active.
func (st SGRState) IsOpen() bool {
	return len(st.Attrs) > 0 || st.FG != "" || st.BG != ""
}

// Clone returns an independent copy of st.
func (st SGRState) Clone() SGRState {
	out := SGRState{FG: st.FG, BG: st.BG}
	if len(st.Attrs) > 0 {
		out.Attrs = make(map[string]bool, len(st.Attrs))
		for k, v := range st.Attrs {
			out.Attrs[k] = v
		}
	}
	return out
}

// Replay returns the SGR escape sequence that would re-establish the
// current state from scratch, or "" if no state is open.
func (st SGRState) Replay() string {
	if !st.IsOpen() {
		return ""
	}
	var parts []string
	keys := make([]string, 0, len(st.Attrs))
	for k := range st.Attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts = append(parts, keys...)
	if st.FG != "" {
		parts = append(parts, st.FG)
	}
	if st.BG != "" {
		parts = append(parts, st.BG)
	}
	if len(parts) == 0 {
		return ""
	}
	return "\x1b[" + strings.Join(parts, ";") + "m"
}
