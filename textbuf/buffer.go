package textbuf

import (
	"log"
	"strings"
)

// Buffer owns the document: an ordered list of gap-buffer lines. A buffer
// never has zero lines; an empty document is one empty line. Out-of-range
// indices are dropped silently (a keystroke landing one frame after a
// buffer change must not crash the session), optionally logged.
type Buffer struct {
	lines    []*Line
	Modified bool

	log *log.Logger
}

// NewBuffer splits text on '\n' into one Line per segment.
func NewBuffer(text string, logger *log.Logger) *Buffer {
	segs := strings.Split(text, "\n")
	lines := make([]*Line, len(segs))
	for i, s := range segs {
		lines[i] = NewLine(s)
	}
	return &Buffer{lines: lines, log: logger}
}

// NewBufferFromLines builds a buffer from pre-split line strings.
func NewBufferFromLines(strs []string, logger *log.Logger) *Buffer {
	if len(strs) == 0 {
		strs = []string{""}
	}
	lines := make([]*Line, len(strs))
	for i, s := range strs {
		lines[i] = NewLine(s)
	}
	return &Buffer{lines: lines, log: logger}
}

func (b *Buffer) LineCount() int {
	return len(b.lines)
}

func (b *Buffer) Line(i int) string {
	if i < 0 || i >= len(b.lines) {
		return ""
	}
	return b.lines[i].String()
}

func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	for i, l := range b.lines {
		out[i] = l.String()
	}
	return out
}

func (b *Buffer) LineLen(i int) int {
	if i < 0 || i >= len(b.lines) {
		return 0
	}
	return b.lines[i].Len()
}

func (b *Buffer) RuneAt(line, col int) rune {
	if line < 0 || line >= len(b.lines) {
		return 0
	}
	return b.lines[line].RuneAt(col)
}

func (b *Buffer) String() string {
	return strings.Join(b.Lines(), "\n")
}

func (b *Buffer) InsertRune(line, col int, r rune) {
	if line < 0 || line >= len(b.lines) {
		b.dropped("InsertRune", line, col)
		return
	}
	b.lines[line].InsertRune(col, r)
	b.Modified = true
}

// InsertText inserts text rune-wise so multi-byte characters occupy one
// column each. Embedded newlines are not interpreted here; use
// InsertNewline for splits.
func (b *Buffer) InsertText(line, col int, text string) {
	if line < 0 || line >= len(b.lines) {
		b.dropped("InsertText", line, col)
		return
	}
	// clamp once so runes keep their order; re-clamping a negative col on
	// every iteration would write them reversed
	if col < 0 {
		col = 0
	}
	if n := b.lines[line].Len(); col > n {
		col = n
	}
	for _, r := range text {
		b.lines[line].InsertRune(col, r)
		col++
	}
	b.Modified = true
}

func (b *Buffer) DeleteRune(line, col int) {
	if line < 0 || line >= len(b.lines) {
		b.dropped("DeleteRune", line, col)
		return
	}
	b.lines[line].DeleteRune(col)
	b.Modified = true
}

func (b *Buffer) DeleteRuneBackward(line, col int) {
	if line < 0 || line >= len(b.lines) {
		b.dropped("DeleteRuneBackward", line, col)
		return
	}
	b.lines[line].DeleteRuneBackward(col)
	b.Modified = true
}

// InsertNewline splits line at col into head and tail lines. col <= 0
// moves all text into the tail, col >= length keeps it all in the head.
func (b *Buffer) InsertNewline(line, col int) {
	if line < 0 || line >= len(b.lines) {
		b.dropped("InsertNewline", line, col)
		return
	}
	rs := []rune(b.lines[line].String())
	if col < 0 {
		col = 0
	}
	if col > len(rs) {
		col = len(rs)
	}
	head, tail := string(rs[:col]), string(rs[col:])
	b.lines[line] = NewLine(head)
	rest := append([]*Line{NewLine(tail)}, b.lines[line+1:]...)
	b.lines = append(b.lines[:line+1], rest...)
	b.Modified = true
}

// DeleteNewline joins line with line+1. Requires a next line to exist.
func (b *Buffer) DeleteNewline(line int) {
	if line < 0 || line >= len(b.lines)-1 {
		b.dropped("DeleteNewline", line, 0)
		return
	}
	joined := b.lines[line].String() + b.lines[line+1].String()
	b.lines[line] = NewLine(joined)
	b.lines = append(b.lines[:line+1], b.lines[line+2:]...)
	b.Modified = true
}

func (b *Buffer) dropped(op string, line, col int) {
	if b.log != nil {
		b.log.Printf("%s dropped: line %d col %d out of range (%d lines)", op, line, col, len(b.lines))
	}
}
