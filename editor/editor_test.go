package editor

import (
	"strings"
	"testing"
)

func expectString(a, b string, t *testing.T) {
	t.Helper()
	if a != b {
		t.Fatalf("expected '%v', got '%v'", a, b)
	}
}

func expectInt(a, b int, t *testing.T) {
	t.Helper()
	if a != b {
		t.Fatalf("expected %v, got %v", a, b)
	}
}

func expectCursor(st *State, line, col int, t *testing.T) {
	t.Helper()
	if st.Cursor != (Pos{line, col}) {
		t.Fatalf("expected cursor (%v,%v), got (%v,%v)", line, col, st.Cursor.Line, st.Cursor.Col)
	}
}

func expectCursorInBounds(st *State, t *testing.T) {
	t.Helper()
	if st.Cursor.Line < 0 || st.Cursor.Line >= st.Buf.LineCount() {
		t.Fatalf("cursor line %v out of bounds", st.Cursor.Line)
	}
	if st.Cursor.Col < 0 || st.Cursor.Col > st.Buf.LineLen(st.Cursor.Line) {
		t.Fatalf("cursor col %v out of bounds on line %v", st.Cursor.Col, st.Cursor.Line)
	}
}

func TestStickyColumn(t *testing.T) {
	st := NewState(strings.Repeat("x", 10)+"\nxx\n"+strings.Repeat("x", 10), nil)
	st.MoveCursor(0, 8)
	st.MoveCursorDown()
	expectCursor(st, 1, 2, t)
	st.MoveCursorDown()
	expectCursor(st, 2, 8, t)
	st.MoveCursorUp()
	expectCursor(st, 1, 2, t)
	st.MoveCursorUp()
	expectCursor(st, 0, 8, t)
}

func TestMoveCursorClampsAndClearsSelection(t *testing.T) {
	st := NewState("ab\ncd", nil)
	st.Sel = Selection{Active: true, Start: Pos{0, 0}, End: Pos{1, 1}}
	st.MoveCursor(99, 99)
	expectCursor(st, 1, 2, t)
	if st.Sel.Active {
		t.Fatal("absolute jump must cancel the selection")
	}
}

func TestMoveLeftWrapsToPreviousLine(t *testing.T) {
	st := NewState("abc\ndef", nil)
	st.MoveCursor(1, 0)
	st.MoveCursorLeft()
	expectCursor(st, 0, 3, t)
	st.MoveCursorLeft()
	expectCursor(st, 0, 2, t)
}

func TestMoveRightWrapsToNextLine(t *testing.T) {
	st := NewState("abc\ndef", nil)
	st.MoveCursor(0, 3)
	st.MoveCursorRight()
	expectCursor(st, 1, 0, t)
}

func TestMoveAtBufferBoundariesIsNoop(t *testing.T) {
	st := NewState("abc", nil)
	st.MoveCursorUp()
	expectCursor(st, 0, 0, t)
	st.MoveCursorDown()
	expectCursor(st, 0, 0, t)
	st.MoveCursorLeft()
	expectCursor(st, 0, 0, t)
	st.MoveCursorToBufferEnd()
	st.MoveCursorRight()
	expectCursor(st, 0, 3, t)
}

func TestInsertBackspaceInverse(t *testing.T) {
	st := NewState("hello", nil)
	st.MoveCursor(0, 2)
	st.InsertRuneAtCursor('X')
	expectString("heXllo", st.Buf.Line(0), t)
	st.BackspaceAtCursor()
	expectString("hello", st.Buf.Line(0), t)
	expectCursor(st, 0, 2, t)
}

func TestNewlineSplitJoinInverse(t *testing.T) {
	st := NewState("hello world", nil)
	st.MoveCursor(0, 5)
	st.InsertNewlineAtCursor()
	expectCursor(st, 1, 0, t)
	expectString("hello", st.Buf.Line(0), t)
	expectString(" world", st.Buf.Line(1), t)
	st.BackspaceAtCursor()
	expectString("hello world", st.Buf.String(), t)
	expectCursor(st, 0, 5, t)
}

func TestInsertNewlineScenario(t *testing.T) {
	st := NewState("hello\nworld", nil)
	st.MoveCursor(0, 5)
	st.InsertNewlineAtCursor()
	expectString("hello\n\nworld", st.Buf.String(), t)
	expectCursor(st, 1, 0, t)
}

func TestBackspaceAtBufferStartIsNoop(t *testing.T) {
	st := NewState("abc", nil)
	st.BackspaceAtCursor()
	expectString("abc", st.Buf.String(), t)
	expectCursor(st, 0, 0, t)
}

func TestBackspaceJoinsLines(t *testing.T) {
	st := NewState("ab\ncd", nil)
	st.MoveCursor(1, 0)
	st.BackspaceAtCursor()
	expectString("abcd", st.Buf.String(), t)
	expectCursor(st, 0, 2, t)
}

func TestDeleteAtCursor(t *testing.T) {
	st := NewState("abc\ndef", nil)
	st.MoveCursor(0, 1)
	st.DeleteAtCursor()
	expectString("ac\ndef", st.Buf.String(), t)
	st.MoveCursor(0, 2)
	st.DeleteAtCursor() // at end of line, joins with the next
	expectString("acdef", st.Buf.String(), t)
	expectCursor(st, 0, 2, t)
}

func TestUnicodeAdvancesOneColumn(t *testing.T) {
	st := NewState("abc", nil)
	st.MoveCursor(0, 1)
	st.InsertRuneAtCursor('é')
	expectCursor(st, 0, 2, t)
	expectInt(4, st.Buf.LineLen(0), t)
	st.InsertTextAtCursor("🙂木")
	expectCursor(st, 0, 4, t)
	expectInt(6, st.Buf.LineLen(0), t)
	expectString("aé🙂木bc", st.Buf.Line(0), t)
}

func TestInsertTab(t *testing.T) {
	st := NewState("ab", nil)
	st.MoveCursor(0, 2)
	st.InsertTabAtCursor(true)
	expectString("ab  ", st.Buf.Line(0), t) // two spaces to the next stop
	expectCursor(st, 0, 4, t)

	st = NewState("", nil)
	st.InsertTabAtCursor(false)
	expectString("\t", st.Buf.Line(0), t)
	expectCursor(st, 0, 1, t)
}

func TestLineAndBufferJumps(t *testing.T) {
	st := NewState("abc\ndefgh", nil)
	st.MoveCursor(1, 2)
	st.MoveCursorToLineEnd()
	expectCursor(st, 1, 5, t)
	st.MoveCursorToLineStart()
	expectCursor(st, 1, 0, t)
	st.MoveCursorToBufferEnd()
	expectCursor(st, 1, 5, t)
	st.MoveCursorToBufferStart()
	expectCursor(st, 0, 0, t)
}

func TestCursorStaysInBoundsUnderEdits(t *testing.T) {
	st := NewState("one\ntwo\nthree", nil)
	ops := []func(){
		func() { st.MoveCursor(2, 5) },
		st.InsertNewlineAtCursor,
		st.BackspaceAtCursor,
		st.MoveCursorUp,
		st.DeleteAtCursor,
		st.MoveCursorDown,
		func() { st.InsertTextAtCursor("词语") },
		st.MoveCursorRight,
		st.BackspaceAtCursor,
		st.MoveCursorLeft,
	}
	for _, op := range ops {
		op()
		expectCursorInBounds(st, t)
	}
}

func TestUpdateScrollFollowsCursor(t *testing.T) {
	lines := make([]string, 50)
	for i := range lines {
		lines[i] = strings.Repeat("x", 30)
	}
	st := NewState(strings.Join(lines, "\n"), nil)

	st.MoveCursor(40, 0)
	st.UpdateScroll(20, 10)
	if st.Cursor.Line < st.ScrollY || st.Cursor.Line >= st.ScrollY+10 {
		t.Fatalf("cursor line %d not inside [%d,%d)", st.Cursor.Line, st.ScrollY, st.ScrollY+10)
	}
	expectInt(31, st.ScrollY, t)

	st.MoveCursor(0, 0)
	st.UpdateScroll(20, 10)
	expectInt(0, st.ScrollY, t)

	st.MoveCursor(0, 25)
	st.UpdateScroll(20, 10)
	expectInt(6, st.ScrollX, t)
	st.MoveCursor(0, 0)
	st.UpdateScroll(20, 10)
	expectInt(0, st.ScrollX, t)
}

func TestUpdateScrollNeverNegativeOrBeyondEnd(t *testing.T) {
	st := NewState("a\nb", nil)
	st.ScrollY = 99
	st.ScrollX = 99
	st.UpdateScroll(20, 10)
	expectInt(0, st.ScrollY, t)
	expectInt(0, st.ScrollX, t)
}
