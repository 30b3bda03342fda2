package renderer

import "github.com/gdamore/tcell/v2"

var namedKeys = map[tcell.Key]string{
	tcell.KeyUp:         "Up",
	tcell.KeyDown:       "Down",
	tcell.KeyLeft:       "Left",
	tcell.KeyRight:      "Right",
	tcell.KeyHome:       "Home",
	tcell.KeyEnd:        "End",
	tcell.KeyPgUp:       "PgUp",
	tcell.KeyPgDn:       "PgDn",
	tcell.KeyEscape:     "Esc",
	tcell.KeyEnter:      "Enter",
	tcell.KeyBackspace:  "Backspace",
	tcell.KeyBackspace2: "Backspace",
	tcell.KeyTab:        "Tab",
}

// KeyName returns the keymap name of a key event: "j", "A-x", "S-Down",
// "C-d" and so on. Unnamed keys yield "".
func KeyName(ev *tcell.EventKey) string {
	mod := ev.Modifiers()

	if ev.Key() == tcell.KeyRune {
		name := string(ev.Rune())
		if mod&tcell.ModAlt != 0 {
			return "A-" + name
		}
		if mod&tcell.ModCtrl != 0 {
			return "C-" + name
		}
		return name
	}

	if name, ok := namedKeys[ev.Key()]; ok {
		if mod&tcell.ModShift != 0 {
			return "S-" + name
		}
		return name
	}

	if k := ev.Key(); k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return "C-" + string(rune('a'+k-tcell.KeyCtrlA))
	}
	return ""
}
