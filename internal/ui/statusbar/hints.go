package statusbar

import "github.com/elenalowe/tasktide/internal/types"

// GetHints returns the keybinding hints for the given mode
func GetHints(mode types.Mode) string {
	switch mode {
	case types.ModeNormal:
		return "n: new  Space: done  s: focus  f: filter  /: search  ?: help  q: quit"
	case types.ModeGoto:
		return "g: top  e: end  h: first col  l: last col  Esc: cancel"
	case types.ModeSearch:
		return "Type to search  Enter: confirm  Esc: cancel"
	default:
		return ""
	}
}
