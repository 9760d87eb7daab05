package editor

import (
	"strings"
	"testing"

	"texteditor/textbuf"
)

func minimapBuffer(lines ...string) *textbuf.Buffer {
	return textbuf.NewBufferFromLines(lines, nil)
}

func TestMinimapDensityLevels(t *testing.T) {
	// four lines per cell; line lengths chosen so column 0 (threshold 0)
	// sees 4 non-empty lines, column 1 (threshold 2) sees 2, column 2
	// (threshold 4) sees 1, column 3 sees none
	buf := minimapBuffer("xxxxx", "xxx", "x", "x")
	content, _ := Minimap(buf, 4, 1, 0, 10, Selection{})

	expectRune(densityGlyphs[4], content[0][0], t)
	expectRune(densityGlyphs[2], content[0][1], t)
	expectRune(densityGlyphs[1], content[0][2], t)
	expectRune(densityGlyphs[0], content[0][3], t)
}

func expectRune(a, b rune, t *testing.T) {
	t.Helper()
	if a != b {
		t.Fatalf("expected %q, got %q", a, b)
	}
}

func TestMinimapDensityMonotonicity(t *testing.T) {
	long := minimapBuffer("xxxxxxxx", "xx", "xx", "xx")
	short := minimapBuffer("xxxx", "xx", "xx", "xx")

	longContent, _ := Minimap(long, 5, 1, 0, 10, Selection{})
	shortContent, _ := Minimap(short, 5, 1, 0, 10, Selection{})

	rank := func(r rune) int {
		for i, g := range densityGlyphs {
			if g == r {
				return i
			}
		}
		t.Fatalf("unknown glyph %q", r)
		return -1
	}
	for col := 0; col < 5; col++ {
		if rank(longContent[0][col]) < rank(shortContent[0][col]) {
			t.Fatalf("col %d: longer line got lower density", col)
		}
	}
}

func TestMinimapEmptyLinesAreBlank(t *testing.T) {
	buf := minimapBuffer("", "", "", "")
	content, _ := Minimap(buf, 3, 2, 0, 10, Selection{})
	for _, row := range content {
		for _, r := range row {
			expectRune(' ', r, t)
		}
	}
}

func TestMinimapAnchoredForShortDocuments(t *testing.T) {
	// 20 lines, minimap reach 8*4=32: no re-centering regardless of scroll
	lines := make([]string, 20)
	for i := range lines {
		lines[i] = "text"
	}
	buf := textbuf.NewBuffer(strings.Join(lines, "\n"), nil)

	a, _ := Minimap(buf, 3, 8, 0, 10, Selection{})
	b, _ := Minimap(buf, 3, 8, 10, 10, Selection{})
	for row := range a {
		for col := range a[row] {
			if a[row][col] != b[row][col] {
				t.Fatal("short documents must stay anchored at the top")
			}
		}
	}
}

func TestMinimapDynamicCentering(t *testing.T) {
	// 100 lines where only line 60 has text; minimap reach 4*4=16 lines,
	// document is >3x that, so the window re-centers on the viewport
	lines := make([]string, 100)
	lines[60] = "only text here"
	buf := textbuf.NewBufferFromLines(lines, nil)

	top, _ := Minimap(buf, 4, 4, 0, 10, Selection{})
	for _, row := range top {
		for _, r := range row {
			expectRune(' ', r, t) // window [0,16) sees nothing
		}
	}

	centered, _ := Minimap(buf, 4, 4, 55, 10, Selection{})
	// window centered on 55+5=60 covers [52,68): line 60 lands in row 2
	found := false
	for _, r := range centered[2] {
		if r != ' ' {
			found = true
		}
	}
	if !found {
		t.Fatal("centered window must show line 60")
	}
}

func TestMinimapCenteringClampsAtDocumentEnd(t *testing.T) {
	lines := make([]string, 100)
	for i := range lines {
		lines[i] = "x"
	}
	buf := textbuf.NewBufferFromLines(lines, nil)
	// scrolled to the very end: the window must not run past line 99
	content, _ := Minimap(buf, 4, 4, 90, 10, Selection{})
	for row := 0; row < 4; row++ {
		expectRune(densityGlyphs[4], content[row][0], t)
	}
}

func TestMinimapSelectionMask(t *testing.T) {
	buf := minimapBuffer("aaaa", "bbbb", "cccc", "dddd", "eeee", "ffff", "gggg", "hhhh")
	sel := Selection{Active: true, Start: Pos{4, 0}, End: Pos{7, 4}}
	_, mask := Minimap(buf, 2, 2, 0, 10, sel)

	if mask[0][0] || mask[0][1] {
		t.Fatal("rows above the selection must not be masked")
	}
	if !mask[1][0] || !mask[1][1] {
		t.Fatal("selected rows must be masked")
	}
}

func TestMinimapSelectionMaskColumnBoundaries(t *testing.T) {
	buf := minimapBuffer("aaaaaaaa", "bbbbbbbb", "cccccccc", "dddddddd")
	// single-line selection over columns [0,2) of line 1
	sel := Selection{Active: true, Start: Pos{1, 0}, End: Pos{1, 2}}
	_, mask := Minimap(buf, 4, 1, 0, 10, sel)

	if !mask[0][0] {
		t.Fatal("first cell overlaps the selection")
	}
	for col := 1; col < 4; col++ {
		if mask[0][col] {
			t.Fatalf("cell %d lies right of the selection span", col)
		}
	}
}
