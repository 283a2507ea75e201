package canopy

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// VStack renders its children top to bottom, aligned on the horizontal axis.
// Children are rendered in order against the stack's available space; each
// child's identity path descends by its position.
type VStack struct {
	Children  []View
	Alignment HorizontalAlignment
	Gap       int // blank rows between children
}

var _ Primitive = VStack{}

// Render implements Primitive.
func (v VStack) Render(ctx Context) *Buffer {
	var parts []string
	for i, child := range v.Children {
		b := Render(child, ctx.Child(strconv.Itoa(i)))
		if b.Height() == 0 {
			continue
		}
		if len(parts) > 0 && v.Gap > 0 {
			for range v.Gap {
				parts = append(parts, "")
			}
		}
		parts = append(parts, b.String())
	}
	if len(parts) == 0 {
		return EmptyBuffer()
	}
	joined := lipgloss.JoinVertical(v.Alignment.position(), parts...)
	return NewBufferFromString(joined)
}

// HStack renders its children left to right. With Justify unset, children
// are joined directly, separated by Gap columns and aligned on the vertical
// axis. With Justify set, leftover width is distributed across the N+1 gaps
// around the children so the row spans the full available width.
type HStack struct {
	Children  []View
	Alignment VerticalAlignment
	Gap       int  // columns between children (ignored when justifying)
	Justify   bool // distribute leftover width across gaps
}

var _ Primitive = HStack{}

// Render implements Primitive.
func (h HStack) Render(ctx Context) *Buffer {
	var bufs []*Buffer
	for i, child := range h.Children {
		b := Render(child, ctx.Child(strconv.Itoa(i)))
		if b.Width() == 0 && b.Height() == 0 {
			continue
		}
		bufs = append(bufs, b)
	}
	if len(bufs) == 0 {
		return EmptyBuffer()
	}
	if h.Justify {
		return justifyRow(bufs, ctx.Width, h.Alignment)
	}

	parts := make([]string, 0, len(bufs)*2)
	gap := blankLine(h.Gap)
	for i, b := range bufs {
		if i > 0 && gap != "" {
			parts = append(parts, gap)
		}
		parts = append(parts, b.PadLines().String())
	}
	return NewBufferFromString(lipgloss.JoinHorizontal(h.Alignment.position(), parts...))
}

// justifyRow lays the buffers across width with justified gaps. A single
// item ends up centered: one gap on each side.
func justifyRow(bufs []*Buffer, width int, align VerticalAlignment) *Buffer {
	widths := make([]int, len(bufs))
	for i, b := range bufs {
		widths[i] = b.Width()
	}
	gaps := justifyGaps(widths, width)

	parts := make([]string, 0, len(bufs)*2+1)
	for i, b := range bufs {
		parts = append(parts, blankLine(gaps[i]))
		parts = append(parts, b.PadLines().String())
	}
	parts = append(parts, blankLine(gaps[len(bufs)]))
	return NewBufferFromString(lipgloss.JoinHorizontal(align.position(), parts...))
}

// justifyGaps distributes the width left over after the items across the
// N+1 gaps around N items: every gap gets the same base share, and the
// leftmost gaps absorb the remainder one column each. The result always
// satisfies sum(gaps) + sum(widths) == total (when total fits the content)
// and no two gaps differ by more than one column.
func justifyGaps(widths []int, total int) []int {
	content := 0
	for _, w := range widths {
		content += w
	}
	gapCount := len(widths) + 1
	slack := max(total-content, 0)
	base := slack / gapCount
	remainder := slack % gapCount

	gaps := make([]int, gapCount)
	for i := range gaps {
		gaps[i] = base
		if i < remainder {
			gaps[i]++
		}
	}
	return gaps
}

// ZStack layers its children: the first child is the base, each subsequent
// child is composited over it per the stack alignment.
type ZStack struct {
	Children  []View
	Alignment Alignment
}

var _ Primitive = ZStack{}

// Render implements Primitive.
func (z ZStack) Render(ctx Context) *Buffer {
	if len(z.Children) == 0 {
		return EmptyBuffer()
	}
	base := Render(z.Children[0], ctx.Child("0")).PadLines()
	for i, child := range z.Children[1:] {
		overlay := Render(child, ctx.Child(strconv.Itoa(i+1)))
		if overlay.Height() == 0 {
			continue
		}
		x, y := placeIn(base, overlay, z.Alignment)
		base = Compose(base, overlay, x, y)
	}
	return base
}

// placeIn computes the top-left offset that places overlay within base
// according to the alignment.
func placeIn(base, overlay *Buffer, a Alignment) (x, y int) {
	switch a.Horizontal {
	case AlignCenter:
		x = (base.Width() - overlay.Width()) / 2
	case AlignTrailing:
		x = base.Width() - overlay.Width()
	}
	switch a.Vertical {
	case AlignMiddle:
		y = (base.Height() - overlay.Height()) / 2
	case AlignBottom:
		y = base.Height() - overlay.Height()
	}
	return max(x, 0), max(y, 0)
}

// Rule is a horizontal divider: a run of a single glyph drawn with the
// palette's border style. Zero values take the environment border set's
// horizontal glyph and span the available width.
type Rule struct {
	Glyph rune
	Width int
}

var _ Primitive = Rule{}

// Render implements Primitive.
func (r Rule) Render(ctx Context) *Buffer {
	width := r.Width
	if width <= 0 {
		width = ctx.Width
	}
	if width <= 0 {
		return EmptyBuffer()
	}
	glyph := r.Glyph
	if glyph == 0 {
		glyph = ctx.Env.BorderSet().Horizontal
	}
	style := ctx.Env.Palette().BorderStyle()
	return NewBuffer(style.Render(strings.Repeat(string(glyph), width)))
}
