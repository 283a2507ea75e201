package canopy

import "github.com/charmbracelet/bubbles/key"

// ScrollKeymap holds the bindings a Scroll view responds to. Arrow keys are
// deliberately left to focus navigation.
type ScrollKeymap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
}

// DefaultScrollKeymap returns the standard scroll bindings.
func DefaultScrollKeymap() ScrollKeymap {
	return ScrollKeymap{
		Up:       key.NewBinding(key.WithKeys("ctrl+u")),
		Down:     key.NewBinding(key.WithKeys("ctrl+d")),
		PageUp:   key.NewBinding(key.WithKeys("pgup")),
		PageDown: key.NewBinding(key.WithKeys("pgdown")),
	}
}

// Scroll windows tall content to the available height. The offset persists
// in the session store under the view's identity path, so it survives
// re-rendering; it is clamped whenever the content height changes between
// frames. Key handlers adjust the offset one line (or one page) at a time.
type Scroll struct {
	Child  View
	Keymap *ScrollKeymap // nil uses DefaultScrollKeymap
}

var _ Primitive = Scroll{}

// Render implements Primitive.
func (sc Scroll) Render(ctx Context) *Buffer {
	content := Render(sc.Child, ctx.Child("scroll"))
	window := ctx.Height
	if window <= 0 || content.Height() <= window {
		return content
	}

	stateKey := ctx.Path + "/scrollOffset"
	maxOffset := content.Height() - window

	// The clamp also covers content shrinking between frames.
	offset := min(max(ctx.State.Int(stateKey, 0), 0), maxOffset)
	if !ctx.Measuring {
		ctx.State.Set(stateKey, offset)
	}

	km := sc.Keymap
	if km == nil {
		def := DefaultScrollKeymap()
		km = &def
	}
	scrollBy := func(delta int) func() {
		return func() {
			next := min(max(offset+delta, 0), maxOffset)
			ctx.State.Set(stateKey, next)
		}
	}
	ctx.Bind(km.Up, scrollBy(-1))
	ctx.Bind(km.Down, scrollBy(1))
	ctx.Bind(km.PageUp, scrollBy(-window))
	ctx.Bind(km.PageDown, scrollBy(window))

	return NewBuffer(content.lines[offset : offset+window]...)
}
