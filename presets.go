package gridrender

// Preset border tables. Encoded as data, not branching logic, so adding a
// new named preset never touches the renderer (see DESIGN.md).
var presets = map[string]BorderConfig{
	"honeywell": {
		Name:             "honeywell",
		TopLeft:          "┌", Top: "─", TopJoin: "┬", TopRight: "┐",
		BodyLeft:         "│", BodyRight: "│", BodyJoin: "│",
		LeftJoin:         "├", CrossJoin: "┼", RightJoin: "┤",
		BottomLeft:       "└", Bottom: "─", BottomJoin: "┴", BottomRight: "┘",
		HeaderLeftJoin:   "├", HeaderCrossJoin: "┼", HeaderRightJoin: "┤",
	},
	"norc": {
		Name:             "norc",
		TopLeft:          "╔", Top: "═", TopJoin: "╦", TopRight: "╗",
		BodyLeft:         "║", BodyRight: "║", BodyJoin: "║",
		LeftJoin:         "╠", CrossJoin: "╬", RightJoin: "╣",
		BottomLeft:       "╚", Bottom: "═", BottomJoin: "╩", BottomRight: "╝",
		HeaderLeftJoin:   "╠", HeaderCrossJoin: "╬", HeaderRightJoin: "╣",
	},
	"ramac": {
		Name:             "ramac",
		TopLeft:          "+", Top: "-", TopJoin: "+", TopRight: "+",
		BodyLeft:         "|", BodyRight: "|", BodyJoin: "|",
		LeftJoin:         "+", CrossJoin: "+", RightJoin: "+",
		BottomLeft:       "+", Bottom: "-", BottomJoin: "+", BottomRight: "+",
		HeaderLeftJoin:   "+", HeaderCrossJoin: "+", HeaderRightJoin: "+",
	},
	"void": {
		Name: "void",
	},
}

// BorderPreset looks up one of the four named border tables: honeywell
// (single-line box), norc (double-line box), ramac (ASCII + - |), void
// (emits no border glyphs at all). An unknown name is a KindConfig Error.
func BorderPreset(name string) (BorderConfig, error) {
	b, ok := presets[name]
	if !ok {
		return BorderConfig{}, newError(KindConfig, "unknown border preset %q", name)
	}
	return b, nil
}
