package canopy

// InSection scopes its subtree to a focus section. Rendering registers the
// section (created on first sight, looked up afterwards) and carries its id
// in the environment so interactive descendants register under it. With
// Activate set, rendering also makes it the active section.
type InSection struct {
	ID       string
	Child    View
	Activate bool
}

var _ Primitive = InSection{}

// Render implements Primitive.
func (s InSection) Render(ctx Context) *Buffer {
	ctx.RegisterSection(s.ID)
	if s.Activate {
		ctx.ActivateSection(s.ID)
	}
	return Render(s.Child, ctx.Child(s.ID).WithEnv(EnvSection, s.ID))
}

// Interactive registers its subtree as a focusable element of the enclosing
// section. While the element is the active section's selection, the subtree
// renders with the inherited text style reversed. Disabled elements keep
// their registration (and so their navigation slot) but are skipped by
// navigation and never activated.
type Interactive struct {
	// ID identifies the element within its section. Empty falls back to
	// the identity path, which is stable across passes for static trees.
	ID         string
	Disabled   bool
	OnActivate func()
	Child      View
}

var _ Primitive = Interactive{}

// Render implements Primitive.
func (iv Interactive) Render(ctx Context) *Buffer {
	id := iv.ID
	if id == "" {
		id = ctx.Path
	}
	ctx.RegisterFocusable(id, !iv.Disabled, iv.OnActivate)

	child := ctx.Child(id)
	if ctx.IsSelected(id) {
		child = child.WithEnv(EnvTextStyle, ctx.Env.TextStyle().Reverse(true))
	}
	return Render(iv.Child, child)
}
