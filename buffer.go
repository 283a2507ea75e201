package canopy

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Buffer is the output of a render pass: an ordered list of lines, each a
// string that may contain embedded ANSI styling sequences. Width is the
// maximum visible width across lines; height is the line count. An empty
// buffer has width 0 and height 0.
//
// Buffers are never mutated once returned — every transform (pad, border,
// composite) allocates a new one.
type Buffer struct {
	lines []string
	width int
}

// NewBuffer creates a buffer from the given lines, measuring visible width.
func NewBuffer(lines ...string) *Buffer {
	b := &Buffer{lines: lines}
	for _, line := range lines {
		if w := VisibleWidth(line); w > b.width {
			b.width = w
		}
	}
	return b
}

// NewBufferFromString splits s on newlines. An empty string yields an empty
// buffer, not a buffer with one empty line.
func NewBufferFromString(s string) *Buffer {
	if s == "" {
		return &Buffer{}
	}
	return NewBuffer(strings.Split(s, "\n")...)
}

// EmptyBuffer returns a buffer with no lines (width 0, height 0).
func EmptyBuffer() *Buffer {
	return &Buffer{}
}

// Width returns the maximum visible line width.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the number of lines.
func (b *Buffer) Height() int {
	return len(b.lines)
}

// Line returns the line at index y, or "" if out of range.
func (b *Buffer) Line(y int) string {
	if y < 0 || y >= len(b.lines) {
		return ""
	}
	return b.lines[y]
}

// Lines returns a copy of the underlying lines.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	copy(out, b.lines)
	return out
}

// String joins the lines with newlines, styling sequences included. This is
// the byte-exact artifact handed to the terminal.
func (b *Buffer) String() string {
	return strings.Join(b.lines, "\n")
}

// VisibleWidth returns the user-perceived width of a line, skipping embedded
// ANSI control sequences entirely. All width math in the engine goes through
// this, never len or rune count.
func VisibleWidth(line string) int {
	return ansi.StringWidth(line)
}

// PadToWidth right-pads line with plain spaces until its visible width
// reaches width. Lines already at or beyond width are returned unchanged.
func PadToWidth(line string, width int) string {
	w := VisibleWidth(line)
	if w >= width {
		return line
	}
	return line + strings.Repeat(" ", width-w)
}

// PadLines returns a new buffer with every line padded to the buffer width,
// producing a true rectangle. Useful before compositing or side-bordering.
func (b *Buffer) PadLines() *Buffer {
	lines := make([]string, len(b.lines))
	for i, line := range b.lines {
		lines[i] = PadToWidth(line, b.width)
	}
	return &Buffer{lines: lines, width: b.width}
}

// Extend returns a new buffer grown to at least width x height, padding
// short lines with spaces and appending blank lines as needed.
func (b *Buffer) Extend(width, height int) *Buffer {
	if width < b.width {
		width = b.width
	}
	if height < len(b.lines) {
		height = len(b.lines)
	}
	lines := make([]string, height)
	for i := range lines {
		lines[i] = PadToWidth(b.Line(i), width)
	}
	return &Buffer{lines: lines, width: width}
}

// blankLine returns width spaces.
func blankLine(width int) string {
	if width <= 0 {
		return ""
	}
	return strings.Repeat(" ", width)
}
