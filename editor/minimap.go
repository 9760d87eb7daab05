package editor

import "texteditor/textbuf"

// minimap.go projects the buffer onto a small grid of density glyphs, a
// lossy downsampling at braille-cell granularity: every output cell covers
// minimapLinesPerCell source lines by minimapColsPerCell source columns.

const (
	minimapLinesPerCell = 4
	minimapColsPerCell  = 2

	// documents longer than this multiple of the minimap's reach get the
	// window re-centered around the viewport instead of anchored at the top
	minimapCenterFactor = 3
)

// density 0..4 -> blank plus four braille dot patterns
var densityGlyphs = [5]rune{' ', '⠂', '⠒', '⠖', '⠿'}

// Minimap renders buf into a width x height glyph grid plus a parallel
// selection mask. scrollY and viewportHeight describe the host viewport
// and only matter for dynamic centering.
func Minimap(buf *textbuf.Buffer, width, height, scrollY, viewportHeight int, sel Selection) (content [][]rune, selected [][]bool) {
	content = make([][]rune, height)
	selected = make([][]bool, height)
	for i := range content {
		content[i] = make([]rune, width)
		for j := range content[i] {
			content[i][j] = ' '
		}
		selected[i] = make([]bool, width)
	}
	if width <= 0 || height <= 0 || buf == nil {
		return content, selected
	}

	window := height * minimapLinesPerCell
	startLine := 0
	if buf.LineCount() > minimapCenterFactor*window {
		center := scrollY + viewportHeight/2
		startLine = center - window/2
		if startLine > buf.LineCount()-window {
			startLine = buf.LineCount() - window
		}
		if startLine < 0 {
			startLine = 0
		}
	}

	selStart, selEnd, hasSel := normalize(sel)

	for row := 0; row < height; row++ {
		top := startLine + row*minimapLinesPerCell
		for col := 0; col < width; col++ {
			threshold := col * minimapColsPerCell
			density := 0
			inSel := false
			for i := top; i < top+minimapLinesPerCell && i < buf.LineCount(); i++ {
				if buf.LineLen(i) > threshold {
					density++
				}
				if hasSel && covers(selStart, selEnd, i, threshold, threshold+minimapColsPerCell) {
					inSel = true
				}
			}
			content[row][col] = densityGlyphs[density]
			selected[row][col] = inSel
		}
	}
	return content, selected
}
