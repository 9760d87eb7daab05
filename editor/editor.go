package editor

import (
	"log"

	"texteditor/textbuf"
)

// Pos addresses a buffer position. Col is a rune index, not a byte offset
// and not a display column.
type Pos struct {
	Line, Col int
}

// Selection endpoints are not normalized: Start may come after End in
// document order, consumers min/max when interpreting. When Active is
// false the endpoints are meaningless.
type Selection struct {
	Active     bool
	Start, End Pos
}

// Config is pure display configuration.
type Config struct {
	ShowLineNumbers      bool `json:"showLineNumbers"`
	LineNumberWidth      int  `json:"lineNumberWidth"`
	ShowScrollbar        bool `json:"showScrollbar"`
	HighlightCurrentLine bool `json:"highlightCurrentLine"`
	WrapLines            bool `json:"wrapLines"` // reserved
	UseSoftTabs          bool `json:"useSoftTabs"`
	TabWidth             int  `json:"tabWidth"`
}

func DefaultConfig() Config {
	return Config{
		ShowLineNumbers:      true,
		LineNumberWidth:      4,
		ShowScrollbar:        true,
		HighlightCurrentLine: true,
		UseSoftTabs:          true,
		TabWidth:             4,
	}
}

// State owns one buffer plus cursor, selection and scroll offsets. All
// mutation goes through its methods; the cursor is kept inside the buffer
// bounds at all times (col may sit one past the last rune).
type State struct {
	Buf    *textbuf.Buffer
	Cursor Pos
	Sel    Selection

	ScrollX, ScrollY int

	TabWidth   int
	InsertMode bool // reserved

	// column the cursor returns to when moving vertically through
	// shorter lines
	desiredCol int

	log *log.Logger
}

func NewState(text string, logger *log.Logger) *State {
	return &State{
		Buf:        textbuf.NewBuffer(text, logger),
		TabWidth:   4,
		InsertMode: true,
		log:        logger,
	}
}

func (st *State) clampCursor() {
	if st.Cursor.Line < 0 {
		st.Cursor.Line = 0
	}
	if st.Cursor.Line >= st.Buf.LineCount() {
		st.Cursor.Line = st.Buf.LineCount() - 1
	}
	if st.Cursor.Col < 0 {
		st.Cursor.Col = 0
	}
	if n := st.Buf.LineLen(st.Cursor.Line); st.Cursor.Col > n {
		st.Cursor.Col = n
	}
}

func (st *State) clampPos(p Pos) Pos {
	if p.Line < 0 {
		p.Line = 0
	}
	if p.Line >= st.Buf.LineCount() {
		p.Line = st.Buf.LineCount() - 1
	}
	if p.Col < 0 {
		p.Col = 0
	}
	if n := st.Buf.LineLen(p.Line); p.Col > n {
		p.Col = n
	}
	return p
}

// MoveCursor is an absolute jump. It cancels any selection; extending a
// selection is the mouse handlers' explicit path.
func (st *State) MoveCursor(line, col int) {
	st.Cursor = Pos{line, col}
	st.clampCursor()
	st.desiredCol = st.Cursor.Col
	st.Sel.Active = false
}

func (st *State) MoveCursorUp() {
	if st.Cursor.Line == 0 {
		return
	}
	st.Cursor.Line--
	st.Cursor.Col = min(st.desiredCol, st.Buf.LineLen(st.Cursor.Line))
}

func (st *State) MoveCursorDown() {
	if st.Cursor.Line >= st.Buf.LineCount()-1 {
		return
	}
	st.Cursor.Line++
	st.Cursor.Col = min(st.desiredCol, st.Buf.LineLen(st.Cursor.Line))
}

func (st *State) MoveCursorLeft() {
	if st.Cursor.Col > 0 {
		st.Cursor.Col--
	} else if st.Cursor.Line > 0 {
		st.Cursor.Line--
		st.Cursor.Col = st.Buf.LineLen(st.Cursor.Line)
	}
	st.desiredCol = st.Cursor.Col
}

func (st *State) MoveCursorRight() {
	if st.Cursor.Col < st.Buf.LineLen(st.Cursor.Line) {
		st.Cursor.Col++
	} else if st.Cursor.Line < st.Buf.LineCount()-1 {
		st.Cursor.Line++
		st.Cursor.Col = 0
	}
	st.desiredCol = st.Cursor.Col
}

func (st *State) MoveCursorToLineStart() {
	st.Cursor.Col = 0
	st.desiredCol = 0
}

func (st *State) MoveCursorToLineEnd() {
	st.Cursor.Col = st.Buf.LineLen(st.Cursor.Line)
	st.desiredCol = st.Cursor.Col
}

func (st *State) MoveCursorToBufferStart() {
	st.Cursor = Pos{0, 0}
	st.desiredCol = 0
}

func (st *State) MoveCursorToBufferEnd() {
	st.Cursor.Line = st.Buf.LineCount() - 1
	st.Cursor.Col = st.Buf.LineLen(st.Cursor.Line)
	st.desiredCol = st.Cursor.Col
}

func (st *State) InsertRuneAtCursor(r rune) {
	st.Buf.InsertRune(st.Cursor.Line, st.Cursor.Col, r)
	st.Cursor.Col++
	st.desiredCol = st.Cursor.Col
}

// InsertTextAtCursor advances the cursor by the rune count of text, so a
// multi-byte character moves it by exactly one column.
func (st *State) InsertTextAtCursor(text string) {
	st.Buf.InsertText(st.Cursor.Line, st.Cursor.Col, text)
	st.Cursor.Col += len([]rune(text))
	st.desiredCol = st.Cursor.Col
}

// DeleteAtCursor is the forward delete: the rune under the cursor, or a
// join with the next line when the cursor sits at end of line.
func (st *State) DeleteAtCursor() {
	if st.Cursor.Col < st.Buf.LineLen(st.Cursor.Line) {
		st.Buf.DeleteRune(st.Cursor.Line, st.Cursor.Col)
	} else if st.Cursor.Line < st.Buf.LineCount()-1 {
		st.Buf.DeleteNewline(st.Cursor.Line)
	}
}

// BackspaceAtCursor deletes the rune before the cursor, or joins with the
// previous line at column 0, landing the cursor on the join point.
func (st *State) BackspaceAtCursor() {
	if st.Cursor.Col > 0 {
		st.Buf.DeleteRuneBackward(st.Cursor.Line, st.Cursor.Col)
		st.Cursor.Col--
		st.desiredCol = st.Cursor.Col
	} else if st.Cursor.Line > 0 {
		joinCol := st.Buf.LineLen(st.Cursor.Line - 1)
		st.Buf.DeleteNewline(st.Cursor.Line - 1)
		st.Cursor.Line--
		st.Cursor.Col = joinCol
		st.desiredCol = joinCol
	}
}

func (st *State) InsertNewlineAtCursor() {
	st.Buf.InsertNewline(st.Cursor.Line, st.Cursor.Col)
	st.Cursor.Line++
	st.Cursor.Col = 0
	st.desiredCol = 0
}

// InsertTabAtCursor inserts spaces up to the next tab stop, or a literal
// tab advancing one column.
func (st *State) InsertTabAtCursor(useSoftTabs bool) {
	if useSoftTabs {
		n := st.TabWidth - st.Cursor.Col%st.TabWidth
		for i := 0; i < n; i++ {
			st.Buf.InsertRune(st.Cursor.Line, st.Cursor.Col, ' ')
			st.Cursor.Col++
		}
	} else {
		st.Buf.InsertRune(st.Cursor.Line, st.Cursor.Col, '\t')
		st.Cursor.Col++
	}
	st.desiredCol = st.Cursor.Col
}

// UpdateScroll keeps the cursor inside the viewport and the offsets inside
// the document. Hosts call it after input handling, before drawing.
func (st *State) UpdateScroll(contentWidth, contentHeight int) {
	if contentHeight > 0 {
		if st.Cursor.Line < st.ScrollY {
			st.ScrollY = st.Cursor.Line
		}
		if st.Cursor.Line >= st.ScrollY+contentHeight {
			st.ScrollY = st.Cursor.Line - contentHeight + 1
		}
		maxY := st.Buf.LineCount() - contentHeight
		if maxY < 0 {
			maxY = 0
		}
		st.ScrollY = min(max(st.ScrollY, 0), maxY)
	}
	if contentWidth > 0 {
		if st.Cursor.Col < st.ScrollX {
			st.ScrollX = st.Cursor.Col
		}
		if st.Cursor.Col >= st.ScrollX+contentWidth {
			st.ScrollX = st.Cursor.Col - contentWidth + 1
		}
		maxX := st.Buf.LineLen(st.Cursor.Line) - contentWidth + 1
		if maxX < 0 {
			maxX = 0
		}
		st.ScrollX = min(max(st.ScrollX, 0), maxX)
	}
}
