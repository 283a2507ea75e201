package canopy

import "github.com/charmbracelet/bubbles/key"

// Context is the per-call bundle passed down the render walk. It is a value:
// helpers return modified copies, so a child's context never leaks upward or
// sideways.
type Context struct {
	// Width and Height are the space available to the view being rendered.
	Width  int
	Height int

	// Env carries inherited values; see Environment.
	Env *Environment

	// Path is the stable identity of the current tree position, used to key
	// persistent state such as focus ids and scroll offsets.
	Path string

	// Measuring marks a sizing-only pass. Registration helpers on Context
	// become no-ops so a measuring walk cannot corrupt the live frame's
	// focus or key-handler state.
	Measuring bool

	// Focus and Keys are the frame's interaction handles. State persists
	// for the session.
	Focus *FocusManager
	Keys  *Dispatcher
	State *Store
}

// NewContext returns a root context for one render pass.
func NewContext(width, height int, focus *FocusManager, keys *Dispatcher, state *Store) Context {
	return Context{
		Width:  max(width, 0),
		Height: max(height, 0),
		Path:   "root",
		Focus:  focus,
		Keys:   keys,
		State:  state,
	}
}

// WithSize returns a copy with the available space replaced. Negative sizes
// clamp to zero rather than failing.
func (c Context) WithSize(width, height int) Context {
	c.Width = max(width, 0)
	c.Height = max(height, 0)
	return c
}

// WithEnv returns a copy carrying an environment override.
func (c Context) WithEnv(key EnvKey, value any) Context {
	c.Env = c.Env.With(key, value)
	return c
}

// Child returns a copy whose identity path descends into name.
func (c Context) Child(name string) Context {
	c.Path = c.Path + "/" + name
	return c
}

// measured returns a copy flagged as a measuring pass.
func (c Context) measured() Context {
	c.Measuring = true
	return c
}

// RegisterSection registers a focus section, creating it on first sight.
// Idempotent; suppressed while measuring.
func (c Context) RegisterSection(id string) {
	if c.Measuring || c.Focus == nil {
		return
	}
	c.Focus.RegisterSection(id)
}

// ActivateSection makes id the active focus section. Suppressed while
// measuring so a sizing walk cannot steal activation from the live frame.
func (c Context) ActivateSection(id string) {
	if c.Measuring || c.Focus == nil {
		return
	}
	c.Focus.ActivateSection(id)
}

// RegisterFocusable registers an interactive element under the enclosing
// section (EnvSection). Re-registration updates the callback and enabled
// flag in place without disturbing navigation order. Suppressed while
// measuring.
func (c Context) RegisterFocusable(id string, enabled bool, activate func()) {
	if c.Measuring || c.Focus == nil {
		return
	}
	c.Focus.RegisterFocusable(c.Env.SectionID(), id, enabled, activate)
}

// IsSelected reports whether the focusable id is the current selection of
// its enclosing section, and that section is active. Safe during measuring.
func (c Context) IsSelected(id string) bool {
	if c.Focus == nil {
		return false
	}
	return c.Focus.IsSelected(c.Env.SectionID(), id)
}

// AddKeyHandler appends a handler to the frame's dispatch chain. Handlers
// registered later are tried first. Suppressed while measuring.
func (c Context) AddKeyHandler(h KeyHandler) {
	if c.Measuring || c.Keys == nil {
		return
	}
	c.Keys.AddHandler(h)
}

// Bind registers a key binding with an action; the event is consumed when
// the binding matches. Suppressed while measuring.
func (c Context) Bind(b key.Binding, action func()) {
	if c.Measuring || c.Keys == nil {
		return
	}
	c.Keys.Bind(b, action)
}
