package canopy

import "github.com/charmbracelet/lipgloss"

// EnvKey identifies a value carried down the view tree.
type EnvKey string

// Well-known environment keys.
const (
	EnvTextStyle EnvKey = "textStyle" // lipgloss.Style applied to Text
	EnvBorderSet EnvKey = "borderSet" // BorderSet used by Box
	EnvPalette   EnvKey = "palette"   // Palette for themed rendering
	EnvSection   EnvKey = "section"   // focus section id for registrations
)

// Environment is an immutable, copy-on-write key/value chain inherited down
// the view tree. A child sees its ancestors' values unless overridden; an
// override creates a new layer and never propagates upward or sideways.
//
// The zero value (nil) is an empty environment.
type Environment struct {
	parent *Environment
	key    EnvKey
	value  any
}

// With returns a new environment layering key=value over e. e is unchanged.
func (e *Environment) With(key EnvKey, value any) *Environment {
	return &Environment{parent: e, key: key, value: value}
}

// Value returns the innermost value set for key, or (nil, false).
func (e *Environment) Value(key EnvKey) (any, bool) {
	for layer := e; layer != nil; layer = layer.parent {
		if layer.key == key {
			return layer.value, true
		}
	}
	return nil, false
}

// TextStyle returns the inherited text style, or a zero style if unset.
func (e *Environment) TextStyle() lipgloss.Style {
	if v, ok := e.Value(EnvTextStyle); ok {
		if s, ok := v.(lipgloss.Style); ok {
			return s
		}
	}
	return lipgloss.NewStyle()
}

// BorderSet returns the inherited border set, defaulting to BorderSingle.
func (e *Environment) BorderSet() BorderSet {
	if v, ok := e.Value(EnvBorderSet); ok {
		if s, ok := v.(BorderSet); ok {
			return s
		}
	}
	return BorderSingle
}

// Palette returns the inherited palette, defaulting to PaletteDark.
func (e *Environment) Palette() Palette {
	if v, ok := e.Value(EnvPalette); ok {
		if p, ok := v.(Palette); ok {
			return p
		}
	}
	return PaletteDark
}

// SectionID returns the focus section id interactive views register under.
// Empty when no enclosing Section view has set one.
func (e *Environment) SectionID() string {
	if v, ok := e.Value(EnvSection); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}
