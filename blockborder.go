package canopy

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// BlockBox draws the half-block frame family: a panel of up to three
// colored zones (header, body, footer) whose seams blend smoothly.
//
// The seam rule: every transition glyph is drawn with its foreground set to
// the background of the zone above it and no explicit background, so the
// zone below shows through the unlit half of the glyph. Side borders take
// the background of the line's own zone. The top and bottom outer edges use
// the header/footer background when that zone exists, else the body's.
type BlockBox struct {
	Header View
	Body   View
	Footer View

	// Title renders as the header when Header is nil.
	Title string

	// Zone backgrounds; zero values fall back to the environment palette
	// (header and footer darker, body lighter).
	HeaderBackground lipgloss.TerminalColor
	BodyBackground   lipgloss.TerminalColor
	FooterBackground lipgloss.TerminalColor
}

var _ Primitive = BlockBox{}

// Half-block glyphs. Lower opens a zone (top edges, body-to-footer seams),
// upper closes one (bottom edges, header-to-body seams), full paints the
// sides.
const (
	blockLower = '▄'
	blockUpper = '▀'
	blockFull  = '█'
)

// Render implements Primitive.
func (bb BlockBox) Render(ctx Context) *Buffer {
	pal := ctx.Env.Palette()
	headerBG := bb.HeaderBackground
	if headerBG == nil {
		headerBG = pal.PanelHeader
	}
	bodyBG := bb.BodyBackground
	if bodyBG == nil {
		bodyBG = pal.PanelBody
	}
	footerBG := bb.FooterBackground
	if footerBG == nil {
		footerBG = pal.PanelFooter
	}

	header := bb.Header
	if header == nil && bb.Title != "" {
		header = Text{Content: bb.Title}
	}

	inner := ctx.WithSize(ctx.Width-2, ctx.Height-2)
	var headerBuf, footerBuf *Buffer
	if header != nil {
		headerBuf = Render(header, inner.Child("header").WithEnv(EnvTextStyle,
			ctx.Env.TextStyle().Background(headerBG)))
	}
	body := Render(bb.Body, inner.Child("body").WithEnv(EnvTextStyle,
		ctx.Env.TextStyle().Background(bodyBG)))
	if bb.Footer != nil {
		footerBuf = Render(bb.Footer, inner.Child("footer").WithEnv(EnvTextStyle,
			ctx.Env.TextStyle().Background(footerBG)))
	}

	innerWidth := body.Width()
	if headerBuf != nil && headerBuf.Width() > innerWidth {
		innerWidth = headerBuf.Width()
	}
	if footerBuf != nil && footerBuf.Width() > innerWidth {
		innerWidth = footerBuf.Width()
	}
	outerWidth := innerWidth + 2

	var lines []string

	// Top edge opens the topmost zone.
	topBG := bodyBG
	if headerBuf != nil {
		topBG = headerBG
	}
	lines = append(lines, seamLine(blockLower, outerWidth, topBG))

	if headerBuf != nil {
		lines = append(lines, zoneLines(headerBuf, innerWidth, headerBG)...)
		lines = append(lines, seamLine(blockUpper, outerWidth, headerBG))
	}

	lines = append(lines, zoneLines(body, innerWidth, bodyBG)...)

	if footerBuf != nil {
		lines = append(lines, seamLine(blockLower, outerWidth, bodyBG))
		lines = append(lines, zoneLines(footerBuf, innerWidth, footerBG)...)
	}

	// Bottom edge closes the bottommost zone.
	bottomBG := bodyBG
	if footerBuf != nil {
		bottomBG = footerBG
	}
	lines = append(lines, seamLine(blockUpper, outerWidth, bottomBG))

	return NewBuffer(lines...)
}

// seamLine draws a full-width run of a transition glyph. Foreground only:
// setting a background here would break the blend with the adjacent zone.
func seamLine(glyph rune, width int, above lipgloss.TerminalColor) string {
	return lipgloss.NewStyle().Foreground(above).Render(strings.Repeat(string(glyph), width))
}

// zoneLines wraps each content line with side blocks colored by the zone's
// own background, padding the content to the frame width with
// background-colored spaces.
func zoneLines(content *Buffer, innerWidth int, bg lipgloss.TerminalColor) []string {
	side := lipgloss.NewStyle().Foreground(bg).Render(string(blockFull))
	fill := lipgloss.NewStyle().Background(bg)
	lines := make([]string, content.Height())
	for i, line := range content.lines {
		if pad := innerWidth - VisibleWidth(line); pad > 0 {
			line += fill.Render(blankLine(pad))
		}
		lines[i] = side + line + side
	}
	return lines
}
