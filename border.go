package canopy

import "strings"

// BorderSet is the glyph set for one border style. Block selects the
// half-block rendering family instead of box drawing; the two families are
// mutually exclusive.
type BorderSet struct {
	Horizontal  rune
	Vertical    rune
	TopLeft     rune
	TopRight    rune
	BottomLeft  rune
	BottomRight rune
	LeftTee     rune
	RightTee    rune
	Block       bool
}

// Standard border sets.
var (
	BorderSingle = BorderSet{
		Horizontal: '─', Vertical: '│',
		TopLeft: '┌', TopRight: '┐', BottomLeft: '└', BottomRight: '┘',
		LeftTee: '├', RightTee: '┤',
	}
	BorderRounded = BorderSet{
		Horizontal: '─', Vertical: '│',
		TopLeft: '╭', TopRight: '╮', BottomLeft: '╰', BottomRight: '╯',
		LeftTee: '├', RightTee: '┤',
	}
	BorderDouble = BorderSet{
		Horizontal: '═', Vertical: '║',
		TopLeft: '╔', TopRight: '╗', BottomLeft: '╚', BottomRight: '╝',
		LeftTee: '╠', RightTee: '╣',
	}
	BorderHeavy = BorderSet{
		Horizontal: '━', Vertical: '┃',
		TopLeft: '┏', TopRight: '┓', BottomLeft: '┗', BottomRight: '┛',
		LeftTee: '┣', RightTee: '┫',
	}
	BorderBlock = BorderSet{Block: true}
)

// Box draws a frame around its child using the environment's border set. An
// optional title is spliced into the top edge; an optional footer renders
// below the body, separated by a tee divider when FooterDivider is set.
//
// With a Block border set the half-block family takes over; see BlockBox.
type Box struct {
	Child         View
	Title         string
	Footer        View
	FooterDivider bool
}

var _ Primitive = Box{}

// Render implements Primitive.
func (bx Box) Render(ctx Context) *Buffer {
	set := ctx.Env.BorderSet()
	if set.Block {
		return BlockBox{Body: bx.Child, Footer: bx.Footer, Title: bx.Title}.Render(ctx)
	}

	inner := ctx.WithSize(ctx.Width-2, ctx.Height-2)
	body := Render(bx.Child, inner.Child("body"))
	var footer *Buffer
	if bx.Footer != nil {
		footer = Render(bx.Footer, inner.Child("footer"))
	}

	titleBlock := ""
	if bx.Title != "" {
		titleBlock = " " + bx.Title + " "
	}

	// All three zones share one frame width. The title needs its block plus
	// the single leading horizontal run.
	innerWidth := body.Width()
	if footer != nil && footer.Width() > innerWidth {
		innerWidth = footer.Width()
	}
	if tw := VisibleWidth(titleBlock) + 1; titleBlock != "" && tw > innerWidth {
		innerWidth = tw
	}

	style := ctx.Env.Palette().BorderStyle()
	h := string(set.Horizontal)
	left := style.Render(string(set.Vertical))
	right := left

	var lines []string

	// Top edge, with the title spliced in after one horizontal run.
	if titleBlock == "" {
		lines = append(lines, style.Render(string(set.TopLeft)+strings.Repeat(h, innerWidth)+string(set.TopRight)))
	} else {
		trailing := max(0, innerWidth-1-VisibleWidth(titleBlock))
		top := style.Render(string(set.TopLeft)+h) +
			titleBlock +
			style.Render(strings.Repeat(h, trailing)+string(set.TopRight))
		lines = append(lines, top)
	}

	for _, line := range body.lines {
		lines = append(lines, wrapBordered(line, innerWidth, left, right))
	}

	if footer != nil {
		if bx.FooterDivider {
			lines = append(lines, style.Render(string(set.LeftTee)+strings.Repeat(h, innerWidth)+string(set.RightTee)))
		}
		for _, line := range footer.lines {
			lines = append(lines, wrapBordered(line, innerWidth, left, right))
		}
	}

	lines = append(lines, style.Render(string(set.BottomLeft)+strings.Repeat(h, innerWidth)+string(set.BottomRight)))
	return NewBuffer(lines...)
}

// wrapBordered pads a content line to the frame's inner width and wraps it
// with the side glyphs. A reset boundary keeps the content's trailing style
// from bleeding into the right border.
func wrapBordered(line string, innerWidth int, left, right string) string {
	padded := PadToWidth(line, innerWidth)
	if strings.ContainsRune(padded, '\x1b') {
		return left + padded + sgrReset + right
	}
	return left + padded + right
}
