package canopy

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

const sgrReset = "\x1b[0m"

// Compose overlays overlay onto base with its top-left corner at (x, y),
// returning a new buffer. The overlay occupies the rectangle
// [x, x+overlay.Width()) x [y, y+overlay.Height()), clipped to base's
// bounds; base content outside that rectangle is preserved unchanged.
//
// Splicing is ANSI-aware: escape sequences in the base line are preserved on
// both sides of the overlay, and a style reset is inserted at the overlay's
// horizontal edges whenever styling could bleed across them. Composing two
// overlays onto disjoint rectangles is order-independent, byte for byte.
func Compose(base, overlay *Buffer, x, y int) *Buffer {
	if overlay == nil || overlay.Height() == 0 || overlay.Width() == 0 {
		return NewBuffer(base.Lines()...)
	}

	// Rectangle semantics: short overlay lines cover their full rectangle
	// width with spaces rather than letting base content show through.
	overlay = overlay.PadLines()

	lines := base.Lines()
	for i, overlayLine := range overlay.lines {
		row := y + i
		if row < 0 || row >= len(lines) {
			continue
		}

		startX := x
		if startX < 0 {
			// Clip the overlay's left edge against the base.
			overlayLine = ansi.TruncateLeft(overlayLine, -startX, "")
			startX = 0
		}
		if startX >= base.width {
			continue
		}
		// Clip the overlay's right edge against the base.
		if avail := base.width - startX; VisibleWidth(overlayLine) > avail {
			overlayLine = ansi.Truncate(overlayLine, avail, "")
		}
		if overlayLine == "" {
			continue
		}

		lines[row] = spliceLine(lines[row], overlayLine, startX)
	}
	return NewBuffer(lines...)
}

// spliceLine replaces the visible columns [x, x+width(overlay)) of line with
// overlay, keeping the styled prefix and suffix intact.
//
// Resets are inserted only where styling would otherwise bleed across an
// edge: after the prefix when it leaves a style open, and after the overlay
// when the overlay opens a style it does not close itself. Both conditions
// depend only on the bytes on their own side of the edge, which is what
// keeps splicing onto disjoint rectangles byte-commutative.
func spliceLine(line, overlay string, x int) string {
	lineWidth := VisibleWidth(line)

	var out strings.Builder
	prefix := ""
	if x > 0 {
		prefix = ansi.Truncate(line, x, "")
		// The base line may end before the overlay starts.
		prefix = PadToWidth(prefix, x)
	}
	out.WriteString(prefix)
	if styleOpen(prefix) {
		out.WriteString(sgrReset)
	}
	out.WriteString(overlay)

	suffixStart := x + VisibleWidth(overlay)
	suffix := ""
	if suffixStart < lineWidth {
		suffix = ansi.TruncateLeft(line, suffixStart, "")
	}
	if suffix != "" && styleOpen(overlay) {
		out.WriteString(sgrReset)
	}
	out.WriteString(suffix)
	return out.String()
}

// styleOpen reports whether s ends with SGR styling still in effect: it
// contains an escape sequence and the last one is not a reset.
func styleOpen(s string) bool {
	i := strings.LastIndexByte(s, '\x1b')
	if i < 0 {
		return false
	}
	seq := s[i:]
	m := strings.IndexByte(seq, 'm')
	if m < 0 {
		return false
	}
	seq = seq[:m+1]
	return seq != sgrReset && seq != "\x1b[m"
}
