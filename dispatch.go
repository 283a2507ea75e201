package canopy

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyHandler inspects a key event and reports whether it consumed it.
type KeyHandler func(tea.KeyMsg) bool

// Dispatcher is the frame-scoped key routing chain. It is cleared and
// rebuilt by every render pass; handlers registered later in the pass are
// tried first, which is what lets overlay content (rendered after the base
// layer) intercept keys before the base layer sees them.
type Dispatcher struct {
	handlers []KeyHandler
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Reset discards all handlers. Called at the start of each render pass.
func (d *Dispatcher) Reset() {
	d.handlers = d.handlers[:0]
}

// AddHandler appends a handler to the chain.
func (d *Dispatcher) AddHandler(h KeyHandler) {
	if h == nil {
		return
	}
	d.handlers = append(d.handlers, h)
}

// Bind appends a handler that runs action and consumes the event when the
// binding matches.
func (d *Dispatcher) Bind(b key.Binding, action func()) {
	d.AddHandler(func(msg tea.KeyMsg) bool {
		if key.Matches(msg, b) {
			if action != nil {
				action()
			}
			return true
		}
		return false
	})
}

// Dispatch offers the event to handlers in reverse registration order and
// stops at the first one that consumes it. Returns whether any did.
func (d *Dispatcher) Dispatch(msg tea.KeyMsg) bool {
	for i := len(d.handlers) - 1; i >= 0; i-- {
		if d.handlers[i](msg) {
			return true
		}
	}
	return false
}

// Len returns the number of registered handlers.
func (d *Dispatcher) Len() int {
	return len(d.handlers)
}
