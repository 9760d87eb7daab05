package textbuf

// line.go implements the per-line gap buffer. The gap is the half-open
// index range [gapStart, gapEnd) inside runes that holds no logical
// content; it slides to the edit point so repeated edits at a stable
// cursor cost amortized O(1) instead of O(n) splicing.

const minGapGrowth = 32

type Line struct {
	runes    []rune
	gapStart int
	gapEnd   int
}

// NewLine builds a line from text with a zero-width gap at the end.
func NewLine(text string) *Line {
	rs := []rune(text)
	return &Line{runes: rs, gapStart: len(rs), gapEnd: len(rs)}
}

// Len is the logical rune count, excluding the gap.
func (l *Line) Len() int {
	return len(l.runes) - (l.gapEnd - l.gapStart)
}

func (l *Line) String() string {
	out := make([]rune, 0, l.Len())
	out = append(out, l.runes[:l.gapStart]...)
	out = append(out, l.runes[l.gapEnd:]...)
	return string(out)
}

// RuneAt maps a logical column through the gap. Out of range yields the
// zero rune, which callers must treat as "no character".
func (l *Line) RuneAt(col int) rune {
	if col < 0 || col >= l.Len() {
		return 0
	}
	if col < l.gapStart {
		return l.runes[col]
	}
	return l.runes[col+(l.gapEnd-l.gapStart)]
}

// moveGap slides the gap so that gapStart == col, shifting the minimal
// number of runes.
func (l *Line) moveGap(col int) {
	if col < 0 {
		col = 0
	}
	if col > l.Len() {
		col = l.Len()
	}
	if col == l.gapStart {
		return
	}
	if col < l.gapStart {
		d := l.gapStart - col
		copy(l.runes[l.gapEnd-d:l.gapEnd], l.runes[col:l.gapStart])
		l.gapStart -= d
		l.gapEnd -= d
		return
	}
	d := col - l.gapStart
	copy(l.runes[l.gapStart:l.gapStart+d], l.runes[l.gapEnd:l.gapEnd+d])
	l.gapStart += d
	l.gapEnd += d
}

// growGap enlarges an exhausted gap by at least minGapGrowth, keeping
// both sides of the old gap in place around the new one.
func (l *Line) growGap(need int) {
	if l.gapEnd-l.gapStart >= need {
		return
	}
	extra := need - (l.gapEnd - l.gapStart)
	if extra < minGapGrowth {
		extra = minGapGrowth
	}
	grown := make([]rune, len(l.runes)+extra)
	copy(grown, l.runes[:l.gapStart])
	tail := len(l.runes) - l.gapEnd
	copy(grown[len(grown)-tail:], l.runes[l.gapEnd:])
	l.gapEnd = len(grown) - tail
	l.runes = grown
}

// InsertRune writes r at logical column col. Out-of-range columns are
// clamped into [0, Len] by the gap move.
func (l *Line) InsertRune(col int, r rune) {
	l.moveGap(col)
	l.growGap(1)
	l.runes[l.gapStart] = r
	l.gapStart++
}

// DeleteRune removes the rune at col (forward delete). No-op when col is
// outside [0, Len).
func (l *Line) DeleteRune(col int) {
	if col < 0 || col >= l.Len() {
		return
	}
	l.moveGap(col)
	l.gapEnd++
}

// DeleteRuneBackward removes the rune before col. Requires col in (0, Len].
func (l *Line) DeleteRuneBackward(col int) {
	if col <= 0 || col > l.Len() {
		return
	}
	l.moveGap(col)
	l.gapStart--
}
