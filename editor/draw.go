package editor

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"texteditor/layout"
)

// Surface is the cell grid the editor draws into. A terminal screen, an
// offscreen simulation buffer, anything addressed by (x, y).
type Surface interface {
	SetCell(x, y int, r rune, style tcell.Style)
}

// Styles resolves a style name to a concrete style. Injected so the editor
// never reaches into ambient theme state.
type Styles interface {
	Style(name string) tcell.Style
}

const minimapWidth = 8 // 7 density columns plus the indicator column

// ContentSize reports the text window inside dims once the line-number and
// minimap gutters are taken out. Hosts use it for scroll sync and for
// translating mouse cells to buffer positions.
func ContentSize(st *State, cfg Config, dims layout.Dimensions) (w, h int) {
	w, h = dims.Width, dims.Height
	if cfg.ShowLineNumbers {
		w -= cfg.LineNumberWidth
	}
	if cfg.ShowScrollbar && st.Buf.LineCount() > h {
		w -= minimapWidth
	}
	return w, h
}

// Draw renders st into dims: line-number gutter, visible text window,
// selection and cursor inversion, and a minimap gutter once the document
// overflows the viewport. Callers run UpdateScroll first.
func Draw(s Surface, styles Styles, st *State, cfg Config, dims layout.Dimensions) {
	textStyle := styles.Style("text")
	contentH := dims.Height
	if contentH <= 0 || dims.Width <= 0 {
		return
	}

	gutterW := 0
	if cfg.ShowLineNumbers {
		gutterW = cfg.LineNumberWidth
	}
	mmW := 0
	if cfg.ShowScrollbar && st.Buf.LineCount() > contentH {
		mmW = minimapWidth
	}
	contentW := dims.Width - gutterW - mmW
	if contentW <= 0 {
		return
	}

	selStart, selEnd, hasSel := normalize(st.Sel)

	for row := 0; row < contentH; row++ {
		y := dims.Origin.Y + row
		for x := 0; x < dims.Width; x++ {
			s.SetCell(dims.Origin.X+x, y, ' ', textStyle)
		}
		docLine := st.ScrollY + row
		if docLine >= st.Buf.LineCount() {
			continue
		}

		if gutterW > 0 {
			numStyle := styles.Style("linenumber")
			if cfg.HighlightCurrentLine && docLine == st.Cursor.Line {
				numStyle = styles.Style("linenumber.current")
			}
			num := fmt.Sprintf("%*d ", gutterW-1, docLine+1)
			for i, r := range num {
				if i >= gutterW {
					break
				}
				s.SetCell(dims.Origin.X+i, y, r, numStyle)
			}
		}

		x := dims.Origin.X + gutterW
		limit := dims.Origin.X + gutterW + contentW
		for col := st.ScrollX; col < st.Buf.LineLen(docLine) && x < limit; col++ {
			r := st.Buf.RuneAt(docLine, col)
			if r == 0 {
				break
			}
			if r == '\t' {
				r = ' ' // tabs occupy one cell; soft tabs are the usual path
			}
			style := textStyle
			if hasSel && covers(selStart, selEnd, docLine, col, col+1) {
				style = textStyle.Reverse(true)
			}
			s.SetCell(x, y, r, style)
			x += runewidth.RuneWidth(r)
		}
	}

	drawCursor(s, st, dims, gutterW, contentW, contentH, textStyle)

	if mmW > 0 {
		drawMinimap(s, styles, st, dims, contentH, mmW)
	}
}

func drawCursor(s Surface, st *State, dims layout.Dimensions, gutterW, contentW, contentH int, textStyle tcell.Style) {
	if st.Cursor.Line < st.ScrollY || st.Cursor.Line >= st.ScrollY+contentH {
		return
	}
	if st.Cursor.Col < st.ScrollX || st.Cursor.Col >= st.ScrollX+contentW {
		return
	}
	// walk the preceding runes with the same per-rune cell accounting as
	// the text loop, tabs included
	x := dims.Origin.X + gutterW
	limit := dims.Origin.X + gutterW + contentW
	for col := st.ScrollX; col < st.Cursor.Col; col++ {
		r := st.Buf.RuneAt(st.Cursor.Line, col)
		if r == '\t' {
			r = ' '
		}
		x += runewidth.RuneWidth(r)
	}
	if x >= limit {
		return
	}
	y := dims.Origin.Y + st.Cursor.Line - st.ScrollY
	r := st.Buf.RuneAt(st.Cursor.Line, st.Cursor.Col)
	if r == 0 || r == '\t' {
		r = ' '
	}
	s.SetCell(x, y, r, textStyle.Reverse(true))
}

func drawMinimap(s Surface, styles Styles, st *State, dims layout.Dimensions, contentH, mmW int) {
	mmStyle := styles.Style("minimap")
	x0 := dims.Origin.X + dims.Width - mmW

	content, mask := Minimap(st.Buf, mmW-1, contentH, st.ScrollY, contentH, st.Sel)
	for row := 0; row < contentH; row++ {
		for col := 0; col < mmW-1; col++ {
			style := mmStyle
			if mask[row][col] {
				style = mmStyle.Reverse(true)
			}
			s.SetCell(x0+col, dims.Origin.Y+row, content[row][col], style)
		}
	}

	// proportional viewport indicator in the last column
	lineCount := st.Buf.LineCount()
	barH := contentH * contentH / lineCount
	if barH < 1 {
		barH = 1
	}
	maxScroll := lineCount - contentH
	if maxScroll < 1 {
		maxScroll = 1
	}
	barY := st.ScrollY * (contentH - barH) / maxScroll
	barStyle := styles.Style("scrollbar")
	for row := 0; row < contentH; row++ {
		r := '│'
		style := barStyle
		if row >= barY && row < barY+barH {
			r = '█'
			style = barStyle.Reverse(true)
		}
		s.SetCell(x0+mmW-1, dims.Origin.Y+row, r, style)
	}
}
