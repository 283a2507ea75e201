package canopy

import "github.com/charmbracelet/bubbles/key"

// Modal presents content centered over a base layer while isolating the
// base from interaction.
//
// The base is rendered through a throwaway focus manager and dispatcher, so
// none of its sections, focusables, or key handlers reach the live frame.
// The content renders normally under a freshly activated section. The
// dismiss binding registers before the content's own handlers, which are
// therefore tried first; dismiss only fires when the content declines the
// key.
type Modal struct {
	Base    View
	Content View

	// SectionID names the modal's isolated focus section.
	SectionID string

	// Dismiss fires on the dismiss key (Escape unless DismissKey is set).
	// The callback is expected to drop the Modal from the next frame's
	// tree; the engine does not remove it itself.
	Dismiss    func()
	DismissKey *key.Binding
}

var _ Primitive = Modal{}

// Render implements Primitive.
func (m Modal) Render(ctx Context) *Buffer {
	// Isolated pass for the base: registrations go to throwaway handles,
	// discarded when this frame ends.
	baseCtx := ctx
	baseCtx.Focus = NewFocusManager()
	baseCtx.Keys = NewDispatcher()
	base := Render(m.Base, baseCtx.Child("base")).PadLines()

	dismiss := key.NewBinding(key.WithKeys("esc"))
	if m.DismissKey != nil {
		dismiss = *m.DismissKey
	}
	ctx.Bind(dismiss, m.Dismiss)

	section := m.SectionID
	if section == "" {
		section = ctx.Path + "/modal"
	}
	content := Render(
		InSection{ID: section, Activate: true, Child: m.Content},
		ctx.Child("content").WithSize(base.Width(), base.Height()),
	)

	x, y := placeIn(base, content, Centered)
	return Compose(base, content, x, y)
}
