package canopy

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

// Palette is the color set themed rendering draws from. It travels in the
// environment (EnvPalette); unset styling falls back to it silently.
type Palette struct {
	Text   lipgloss.Color
	Muted  lipgloss.Color
	Accent lipgloss.Color
	Danger lipgloss.Color
	Border lipgloss.Color

	// Half-block panel zones: header and footer share the darker shade,
	// the body sits one step lighter.
	PanelHeader lipgloss.Color
	PanelBody   lipgloss.Color
	PanelFooter lipgloss.Color
}

// PaletteDark is the default palette for dark terminal backgrounds.
var PaletteDark = Palette{
	Text:        lipgloss.Color("#d8dee9"),
	Muted:       lipgloss.Color("#6b7089"),
	Accent:      lipgloss.Color("#5fd7d7"),
	Danger:      lipgloss.Color("#e06c75"),
	Border:      lipgloss.Color("#4c566a"),
	PanelHeader: Darken(lipgloss.Color("#3b4252"), 0.35),
	PanelBody:   lipgloss.Color("#3b4252"),
	PanelFooter: Darken(lipgloss.Color("#3b4252"), 0.35),
}

// PaletteLight mirrors PaletteDark for light backgrounds.
var PaletteLight = Palette{
	Text:        lipgloss.Color("#2e3440"),
	Muted:       lipgloss.Color("#8a91a3"),
	Accent:      lipgloss.Color("#0b7285"),
	Danger:      lipgloss.Color("#c92a2a"),
	Border:      lipgloss.Color("#aab2c4"),
	PanelHeader: Darken(lipgloss.Color("#e5e9f0"), 0.12),
	PanelBody:   lipgloss.Color("#e5e9f0"),
	PanelFooter: Darken(lipgloss.Color("#e5e9f0"), 0.12),
}

// DetectPalette probes the terminal background and picks the matching
// palette. Defaults to dark when the probe is inconclusive.
func DetectPalette() Palette {
	if !termenv.HasDarkBackground() {
		return PaletteLight
	}
	return PaletteDark
}

// BorderStyle returns the style for box-drawing border glyphs.
func (p Palette) BorderStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(p.Border)
}

// TextStyle returns the default text style.
func (p Palette) TextStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(p.Text)
}

// MutedStyle returns the de-emphasized text style.
func (p Palette) MutedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(p.Muted)
}

// AccentStyle returns the highlight text style.
func (p Palette) AccentStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(p.Accent).Bold(true)
}

// Darken shades a hex color toward black by amount (0 leaves it unchanged,
// 1 is black). Non-hex colors are returned unchanged.
func Darken(c lipgloss.Color, amount float64) lipgloss.Color {
	col, err := colorful.Hex(string(c))
	if err != nil {
		return c
	}
	h, s, l := col.Hsl()
	l *= 1 - clamp01(amount)
	return lipgloss.Color(colorful.Hsl(h, s, l).Hex())
}

// Lighten shades a hex color toward white by amount.
func Lighten(c lipgloss.Color, amount float64) lipgloss.Color {
	col, err := colorful.Hex(string(c))
	if err != nil {
		return c
	}
	h, s, l := col.Hsl()
	l += (1 - l) * clamp01(amount)
	return lipgloss.Color(colorful.Hsl(h, s, l).Hex())
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
