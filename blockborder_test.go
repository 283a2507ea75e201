package canopy

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func blockPanel() BlockBox {
	return BlockBox{
		Header:           Label("head"),
		Body:             Label("body line"),
		Footer:           Label("foot"),
		HeaderBackground: lipgloss.Color("#336699"),
		BodyBackground:   lipgloss.Color("#6699cc"),
		FooterBackground: lipgloss.Color("#336699"),
	}
}

// Foreground/background SGR fragments for the explicit panel colors under a
// true-color profile.
const (
	fgHeader = "38;2;51;102;153"
	bgHeader = "48;2;51;102;153"
	fgBody   = "38;2;102;153;204"
)

func TestBlockBox_Structure(t *testing.T) {
	trueColorProfile(t)
	b := blockPanel().Render(testContext(40, 20))

	// top + header + seam + body + seam + footer + bottom
	if b.Height() != 7 {
		t.Fatalf("height = %d, want 7", b.Height())
	}
	// Inner width is the widest zone (9) plus the two side columns.
	if b.Width() != 11 {
		t.Errorf("width = %d, want 11", b.Width())
	}
	for y := range b.Height() {
		if VisibleWidth(b.Line(y)) != b.Width() {
			t.Errorf("line %d not full width: %q", y, b.Line(y))
		}
	}
}

func TestBlockBox_SeamColorRule(t *testing.T) {
	trueColorProfile(t)
	b := blockPanel().Render(testContext(40, 20))

	// Header/body seam: upper half-blocks whose foreground is the header
	// background, with no background of their own.
	seam := b.Line(2)
	if !strings.Contains(seam, "▀") {
		t.Fatalf("expected upper half-blocks in seam: %q", seam)
	}
	if !strings.Contains(seam, fgHeader) {
		t.Errorf("seam foreground should be the header background: %q", seam)
	}
	if strings.Contains(seam, "48;") {
		t.Errorf("seam must not set an explicit background: %q", seam)
	}

	// Body/footer seam opens downward with lower half-blocks colored by
	// the zone above (the body).
	seam = b.Line(4)
	if !strings.Contains(seam, "▄") || !strings.Contains(seam, fgBody) {
		t.Errorf("body/footer seam = %q", seam)
	}
	if strings.Contains(seam, "48;") {
		t.Errorf("seam must not set an explicit background: %q", seam)
	}
}

func TestBlockBox_OuterEdges(t *testing.T) {
	trueColorProfile(t)
	b := blockPanel().Render(testContext(40, 20))

	top := b.Line(0)
	if !strings.Contains(top, "▄") || !strings.Contains(top, fgHeader) {
		t.Errorf("top edge should open with the header background: %q", top)
	}
	bottom := b.Line(b.Height() - 1)
	if !strings.Contains(bottom, "▀") || !strings.Contains(bottom, fgHeader) {
		t.Errorf("bottom edge should close with the footer background: %q", bottom)
	}
}

func TestBlockBox_SidesUseZoneBackground(t *testing.T) {
	trueColorProfile(t)
	b := blockPanel().Render(testContext(40, 20))

	header := b.Line(1)
	if !strings.HasPrefix(stripToGlyph(header), "█") {
		t.Fatalf("header line should start with a side block: %q", header)
	}
	if !strings.Contains(header, fgHeader) {
		t.Errorf("header sides should carry the header background as foreground: %q", header)
	}
	body := b.Line(3)
	if !strings.Contains(body, fgBody) {
		t.Errorf("body sides should carry the body background as foreground: %q", body)
	}
}

func TestBlockBox_NoHeaderNoFooter(t *testing.T) {
	trueColorProfile(t)
	b := BlockBox{
		Body:           Label("x"),
		BodyBackground: lipgloss.Color("#6699cc"),
	}.Render(testContext(40, 20))

	if b.Height() != 3 {
		t.Fatalf("height = %d, want 3", b.Height())
	}
	// Both outer edges fall back to the body background.
	if !strings.Contains(b.Line(0), fgBody) || !strings.Contains(b.Line(2), fgBody) {
		t.Errorf("edges should use the body background:\n%q\n%q", b.Line(0), b.Line(2))
	}
}

func TestBlockBox_ZonePaddingCarriesBackground(t *testing.T) {
	trueColorProfile(t)
	b := blockPanel().Render(testContext(40, 20))
	// "head" is narrower than the body, so the header pad must be painted
	// with the header background rather than left transparent.
	if !strings.Contains(b.Line(1), bgHeader) {
		t.Errorf("header padding lost its background: %q", b.Line(1))
	}
}

// stripToGlyph drops leading escape sequences, returning the string from
// the first non-control character.
func stripToGlyph(s string) string {
	for len(s) > 0 && s[0] == '\x1b' {
		if i := strings.IndexByte(s, 'm'); i >= 0 {
			s = s[i+1:]
		} else {
			break
		}
	}
	return s
}
