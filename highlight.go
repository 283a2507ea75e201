package canopy

import "github.com/charmbracelet/lipgloss"

// ChangeHighlight renders its child with an alternate text style on any
// frame where the tracked value differs from the previous frame. The value
// is tracked in the session store under the identity path, so the
// comparison is explicit and survives re-rendering; measuring passes do not
// advance it.
type ChangeHighlight struct {
	Value any // must be comparable
	Style lipgloss.Style
	Child View
}

var _ Primitive = ChangeHighlight{}

// Render implements Primitive.
func (ch ChangeHighlight) Render(ctx Context) *Buffer {
	if !ctx.Measuring && ctx.State.Changed(ctx.Path+"/tracked", ch.Value) {
		return Render(ch.Child, ctx.Child("hl").WithEnv(EnvTextStyle, ch.Style))
	}
	return Render(ch.Child, ctx.Child("hl"))
}
