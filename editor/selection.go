package editor

// selection.go drives the selection from mouse gestures. Drag deliberately
// mutates Cursor and desiredCol directly instead of going through
// MoveCursor, which would cancel the selection being made.

// MousePress anchors a new selection at pos, or with shift held extends the
// end of an existing one without moving the anchor.
func (st *State) MousePress(pos Pos, shift bool) {
	pos = st.clampPos(pos)
	if shift && st.Sel.Active {
		st.Sel.End = pos
	} else {
		st.Sel = Selection{Active: true, Start: pos, End: pos}
	}
	st.Cursor = pos
	st.desiredCol = pos.Col
}

// MouseDrag tracks the pointer while a selection is active, auto-scrolling
// one line when the drag point touches the viewport's top or bottom row.
func (st *State) MouseDrag(pos Pos, contentHeight int) {
	if !st.Sel.Active {
		return
	}
	pos = st.clampPos(pos)
	st.Sel.End = pos
	st.Cursor = pos
	st.desiredCol = pos.Col

	if contentHeight <= 0 {
		return
	}
	if pos.Line <= st.ScrollY && st.ScrollY > 0 {
		st.ScrollY--
	} else if pos.Line >= st.ScrollY+contentHeight-1 {
		maxY := st.Buf.LineCount() - contentHeight
		if st.ScrollY < maxY {
			st.ScrollY++
		}
	}
}

// MouseRelease settles the gesture: a click without a drag never leaves a
// degenerate selection behind.
func (st *State) MouseRelease() {
	if st.Sel.Active && st.Sel.Start == st.Sel.End {
		st.Sel.Active = false
	}
}

func (st *State) ClearSelection() {
	st.Sel.Active = false
}

// NormalizedSelection orders the endpoints by document position (line
// first, then column). ok is false when no selection is active.
func (st *State) NormalizedSelection() (start, end Pos, ok bool) {
	return normalize(st.Sel)
}

func normalize(sel Selection) (start, end Pos, ok bool) {
	if !sel.Active {
		return Pos{}, Pos{}, false
	}
	start, end = sel.Start, sel.End
	if end.Line < start.Line || (end.Line == start.Line && end.Col < start.Col) {
		start, end = end, start
	}
	return start, end, true
}

// covers reports whether the normalized span [start, end) touches any
// column in [colLo, colHi) of line.
func covers(start, end Pos, line, colLo, colHi int) bool {
	if line < start.Line || line > end.Line {
		return false
	}
	lo, hi := 0, int(^uint(0)>>1)
	if line == start.Line {
		lo = start.Col
	}
	if line == end.Line {
		hi = end.Col
	}
	return lo < hi && colLo < hi && colHi > lo
}
