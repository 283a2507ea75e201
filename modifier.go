package canopy

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Padding adds blank columns and rows around its child on the requested
// edges. It is a pure buffer transform: the output is exactly the child's
// buffer plus the insets, and the environment is untouched.
type Padding struct {
	Child  View
	Insets Insets
}

var _ Primitive = Padding{}

// Render implements Primitive.
func (p Padding) Render(ctx Context) *Buffer {
	in := p.Insets.clamped()
	inner := ctx.WithSize(ctx.Width-in.Left-in.Right, ctx.Height-in.Top-in.Bottom)
	content := Render(p.Child, inner.Child("pad"))

	width := content.Width() + in.Left + in.Right
	lines := make([]string, 0, content.Height()+in.Top+in.Bottom)
	for range in.Top {
		lines = append(lines, blankLine(width))
	}
	left := blankLine(in.Left)
	for _, line := range content.lines {
		lines = append(lines, left+PadToWidth(line, content.Width())+blankLine(in.Right))
	}
	for range in.Bottom {
		lines = append(lines, blankLine(width))
	}
	return NewBuffer(lines...)
}

// Padded wraps v with uniform insets of n on all edges.
func Padded(v View, n int) Padding {
	return Padding{Child: v, Insets: UniformInsets(n)}
}

// Frame sizes its child to a resolved target rectangle and embeds the
// child's buffer into it with the requested alignment, padding the
// non-content sides with spaces.
//
// Per axis the target resolves from, in priority order: a fill constraint
// (equals the available space), a fixed constraint (capped by available
// space), else the content size with available space as an upper bound. The
// result is then clamped upward to any explicit minimum and downward to 0.
type Frame struct {
	Child     View
	Width     Constraint
	Height    Constraint
	MinWidth  int
	MinHeight int
	Alignment Alignment
}

var _ Primitive = Frame{}

// Render implements Primitive.
func (f Frame) Render(ctx Context) *Buffer {
	inner := ctx.WithSize(f.Width.available(ctx.Width), f.Height.available(ctx.Height))
	content := Render(f.Child, inner.Child("frame"))

	width := f.Width.resolve(ctx.Width, content.Width(), f.MinWidth)
	height := f.Height.resolve(ctx.Height, content.Height(), f.MinHeight)
	if width == 0 || height == 0 {
		return EmptyBuffer()
	}
	if width == content.Width() && height == content.Height() {
		return content
	}

	content = clipBuffer(content, width, height)
	placed := lipgloss.Place(width, height,
		f.Alignment.Horizontal.position(), f.Alignment.Vertical.position(),
		content.String())
	return NewBufferFromString(placed)
}

// clipBuffer truncates content that overflows the target rectangle,
// ANSI-aware on the horizontal axis.
func clipBuffer(b *Buffer, width, height int) *Buffer {
	if b.Width() <= width && b.Height() <= height {
		return b
	}
	n := min(b.Height(), height)
	lines := make([]string, n)
	for i := range n {
		line := b.lines[i]
		if VisibleWidth(line) > width {
			line = ansi.Truncate(line, width, "")
		}
		lines[i] = line
	}
	return NewBuffer(lines...)
}

// Styled overrides the environment text style for its subtree.
type Styled struct {
	Child View
	Style lipgloss.Style
}

var _ Primitive = Styled{}

// Render implements Primitive.
func (s Styled) Render(ctx Context) *Buffer {
	return Render(s.Child, ctx.WithEnv(EnvTextStyle, s.Style))
}

// EnvValue sets an arbitrary environment override for its subtree.
type EnvValue struct {
	Child View
	Key   EnvKey
	Value any
}

var _ Primitive = EnvValue{}

// Render implements Primitive.
func (e EnvValue) Render(ctx Context) *Buffer {
	return Render(e.Child, ctx.WithEnv(e.Key, e.Value))
}
