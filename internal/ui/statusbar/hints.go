package statusbar

import "github.com/riordanpawley/todo/internal/types"

// GetHints returns the keybinding hints for the given mode
func GetHints(mode types.Mode) string {
	switch mode {
	case types.ModeNormal:
		return "a: add  d: delete  s: status  p/t: sort  /: search  f: filter  w: save  ?: help  q: quit"
	case types.ModeSearch:
		return "Type to search  Enter: keep  Esc: clear"
	case types.ModeAdd:
		return "Tab: next field  1/2/3: priority  Enter: add  Esc: cancel"
	case types.ModeConfirm:
		return "y: yes  n: no  Esc: cancel"
	case types.ModeHelp:
		return "j/k: scroll  Esc: close"
	default:
		return ""
	}
}
