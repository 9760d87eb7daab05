package editor

// input.go is the key/mouse dispatch table. Hosts translate their
// platform events (tcell, test harnesses) into these small codes before
// calling in; the editor never sees platform key numbering.

type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyBackspace
	KeyDelete
	KeyEnter
	KeyTab
	KeyRune // any single printable character, carried in KeyEvent.Rune
)

type Mod uint8

const (
	ModShift Mod = 1 << iota
	ModCtrl
	ModAlt
)

type KeyEvent struct {
	Key  Key
	Rune rune
	Mod  Mod
}

// HandleKey applies ev to st and reports whether the event was consumed.
func HandleKey(st *State, cfg Config, ev KeyEvent) bool {
	switch ev.Key {
	case KeyLeft:
		st.MoveCursorLeft()
	case KeyRight:
		st.MoveCursorRight()
	case KeyUp:
		st.MoveCursorUp()
	case KeyDown:
		st.MoveCursorDown()
	case KeyHome:
		if ev.Mod&ModCtrl != 0 {
			st.MoveCursorToBufferStart()
		} else {
			st.MoveCursorToLineStart()
		}
	case KeyEnd:
		if ev.Mod&ModCtrl != 0 {
			st.MoveCursorToBufferEnd()
		} else {
			st.MoveCursorToLineEnd()
		}
	case KeyBackspace:
		st.BackspaceAtCursor()
	case KeyDelete:
		st.DeleteAtCursor()
	case KeyEnter:
		st.InsertNewlineAtCursor()
	case KeyTab:
		st.InsertTabAtCursor(cfg.UseSoftTabs)
	case KeyRune:
		if ev.Rune == 0 {
			return false
		}
		st.InsertRuneAtCursor(ev.Rune)
	default:
		return false
	}
	return true
}

type MouseKind int

const (
	MousePressEvent MouseKind = iota
	MouseDragEvent
	MouseReleaseEvent
)

// MouseEvent carries buffer coordinates, already translated by the host
// from screen cells (gutter offset and scroll applied).
type MouseEvent struct {
	Kind  MouseKind
	Pos   Pos
	Shift bool
}

func HandleMouse(st *State, ev MouseEvent, contentHeight int) {
	switch ev.Kind {
	case MousePressEvent:
		st.MousePress(ev.Pos, ev.Shift)
	case MouseDragEvent:
		st.MouseDrag(ev.Pos, contentHeight)
	case MouseReleaseEvent:
		st.MouseRelease()
	}
}
