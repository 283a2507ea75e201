package canopy

import (
	"fmt"
	"strings"
)

// View is a node in the tree: an immutable value description of a piece of
// UI. Every View is either a Primitive, which renders itself directly into a
// Buffer, or a Composite, which resolves to exactly one child view. Passing
// anything else to Render is a construction bug and panics.
type View interface{}

// Primitive renders itself into a buffer given the current context.
type Primitive interface {
	Render(ctx Context) *Buffer
}

// Composite delegates to a single child view. The walker rewrites the
// composite into its body and renders that — there is no other indirection.
type Composite interface {
	Body(ctx Context) View
}

// Render walks the view tree and produces the styled buffer for v.
//
// This is the engine's render contract: primitives draw, composites are
// rewritten to their body in place. Interactive primitives register into the
// frame's focus manager and key dispatcher through ctx as a side channel of
// the same walk.
func Render(v View, ctx Context) *Buffer {
	for {
		switch n := v.(type) {
		case nil:
			return EmptyBuffer()
		case Primitive:
			return n.Render(ctx)
		case Composite:
			v = n.Body(ctx)
		default:
			panic(fmt.Sprintf("canopy: %T is neither a Primitive nor a Composite", v))
		}
	}
}

// Measure renders v in a measuring pass and reports its intrinsic size.
// Focus and key-handler registration is suppressed for the whole subtree,
// so measuring the same view any number of times within a frame leaves
// interaction state untouched.
func Measure(v View, ctx Context) (width, height int) {
	b := Render(v, ctx.measured())
	return b.Width(), b.Height()
}

// Text is a primitive that renders its content styled by the environment's
// text style. Multi-line content renders one buffer line per input line; no
// wrapping is performed.
type Text struct {
	Content string
}

var _ Primitive = Text{}

// Render implements Primitive.
func (t Text) Render(ctx Context) *Buffer {
	if t.Content == "" {
		return EmptyBuffer()
	}
	style := ctx.Env.TextStyle()
	raw := strings.Split(t.Content, "\n")
	lines := make([]string, len(raw))
	for i, line := range raw {
		lines[i] = style.Render(line)
	}
	return NewBuffer(lines...)
}

// Label is shorthand for Text{Content: s}.
func Label(s string) Text {
	return Text{Content: s}
}

// Spacer is a primitive that renders a blank rectangle. A zero Spacer is
// empty; either axis may be fixed independently.
type Spacer struct {
	Width  int
	Height int
}

var _ Primitive = Spacer{}

// Render implements Primitive.
func (s Spacer) Render(Context) *Buffer {
	w := max(s.Width, 0)
	h := max(s.Height, 0)
	if w == 0 && h == 0 {
		return EmptyBuffer()
	}
	if h == 0 {
		h = 1
	}
	lines := make([]string, h)
	for i := range lines {
		lines[i] = blankLine(w)
	}
	return NewBuffer(lines...)
}

// Group assembles an ordered child list. It is the explicit builder behind
// container views: Add accumulates, Views returns the ordered slice.
type Group struct {
	views []View
}

// Add appends children in order and returns the group for chaining.
func (g *Group) Add(children ...View) *Group {
	g.views = append(g.views, children...)
	return g
}

// Views returns the accumulated children.
func (g *Group) Views() []View {
	return g.views
}
