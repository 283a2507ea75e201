package canopy

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// NavKeymap holds the bindings the program routes to focus navigation when
// no frame handler consumes them.
type NavKeymap struct {
	Next     key.Binding
	Prev     key.Binding
	Activate key.Binding
	Quit     key.Binding
}

// DefaultNavKeymap returns the standard navigation bindings.
func DefaultNavKeymap() NavKeymap {
	return NavKeymap{
		Next:     key.NewBinding(key.WithKeys("tab", "down", "right")),
		Prev:     key.NewBinding(key.WithKeys("shift+tab", "up", "left")),
		Activate: key.NewBinding(key.WithKeys("enter", " ")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// Program owns the render loop for a view tree: it is the Bubble Tea model
// that feeds resize and key messages into the engine and emits the rendered
// buffer. The focus manager and state store it owns persist for the
// session; the dispatcher is rebuilt by every render pass.
type Program struct {
	root   View
	focus  *FocusManager
	keys   *Dispatcher
	state  *Store
	env    *Environment
	keymap NavKeymap
	tracer oteltrace.Tracer

	width  int
	height int
}

// Option configures a Program.
type Option func(*Program)

// WithPalette carries the palette in the root environment.
func WithPalette(p Palette) Option {
	return func(pr *Program) {
		pr.env = pr.env.With(EnvPalette, p)
	}
}

// WithEnv adds an environment override at the root.
func WithEnv(k EnvKey, v any) Option {
	return func(pr *Program) {
		pr.env = pr.env.With(k, v)
	}
}

// WithNavKeymap replaces the default navigation bindings.
func WithNavKeymap(km NavKeymap) Option {
	return func(pr *Program) {
		pr.keymap = km
	}
}

// WithInitialSection registers and activates a focus section before the
// first render, so the first frame already has an active section.
func WithInitialSection(id string) Option {
	return func(pr *Program) {
		pr.focus.RegisterSection(id)
		pr.focus.ActivateSection(id)
	}
}

// WithTracerProvider enables a render-pass span per frame.
func WithTracerProvider(tp oteltrace.TracerProvider) Option {
	return func(pr *Program) {
		pr.tracer = tp.Tracer("canopy")
	}
}

// WithSize sets the initial terminal size, overriding detection. Mostly for
// tests and non-tty output.
func WithSize(width, height int) Option {
	return func(pr *Program) {
		pr.width = max(width, 0)
		pr.height = max(height, 0)
	}
}

// NewProgram creates a program for the given root view. The initial size
// comes from the controlling terminal when one is attached; the first
// WindowSizeMsg corrects it either way.
func NewProgram(root View, opts ...Option) *Program {
	p := &Program{
		root:   root,
		focus:  NewFocusManager(),
		keys:   NewDispatcher(),
		state:  NewStore(),
		keymap: DefaultNavKeymap(),
		width:  80,
		height: 24,
	}
	if w, h, err := terminalSize(os.Stdout); err == nil {
		p.width, p.height = w, h
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Focus exposes the session focus manager, e.g. to pre-select an element.
func (p *Program) Focus() *FocusManager {
	return p.focus
}

// State exposes the session state store.
func (p *Program) State() *Store {
	return p.state
}

// Init implements tea.Model.
func (p *Program) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. Key events go to the frame's dispatcher
// first (newest handler wins); unconsumed events fall through to focus
// navigation.
func (p *Program) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width, p.height = msg.Width, msg.Height
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, p.keymap.Quit):
			return p, tea.Quit
		case p.keys.Dispatch(msg):
		case key.Matches(msg, p.keymap.Next):
			p.focus.Next()
		case key.Matches(msg, p.keymap.Prev):
			p.focus.Prev()
		case key.Matches(msg, p.keymap.Activate):
			p.focus.Activate()
		}
	}
	return p, nil
}

// View implements tea.Model: one full render pass. The dispatcher is reset
// and repopulated by the walk, so handler order always reflects this
// frame's tree. Identical tree and environment produce identical bytes.
func (p *Program) View() string {
	if p.tracer != nil {
		_, span := p.tracer.Start(context.Background(), "canopy.render",
			oteltrace.WithAttributes(
				attribute.Int("terminal.width", p.width),
				attribute.Int("terminal.height", p.height),
			))
		defer span.End()
	}

	p.keys.Reset()
	ctx := NewContext(p.width, p.height, p.focus, p.keys, p.state)
	ctx.Env = p.env
	return Render(p.root, ctx).String()
}

// Run starts the Bubble Tea loop in the alternate screen and blocks until
// quit.
func (p *Program) Run() error {
	if _, err := tea.NewProgram(p, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
