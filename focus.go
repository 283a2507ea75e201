package canopy

// FocusManager tracks named sections of focusable elements and routes
// navigation to the single active section. Sections are created the first
// time they are encountered in a render pass and persist across passes;
// re-rendering never resets a section's selection.
//
// All methods tolerate unknown ids: activating or navigating a section that
// does not exist is a no-op, since conditional content may legitimately
// disappear between frames.
type FocusManager struct {
	sections map[string]*Section
	active   string
}

// NewFocusManager creates an empty manager.
func NewFocusManager() *FocusManager {
	return &FocusManager{sections: make(map[string]*Section)}
}

// RegisterSection creates the section if it does not exist and returns it.
// Idempotent: an existing section is returned untouched.
func (m *FocusManager) RegisterSection(id string) *Section {
	if s, ok := m.sections[id]; ok {
		return s
	}
	s := &Section{id: id}
	m.sections[id] = s
	return s
}

// Section returns the section with the given id, or nil.
func (m *FocusManager) Section(id string) *Section {
	return m.sections[id]
}

// ClearSection removes a section entirely, forgetting its elements and
// selection. Deactivates it first if it was active.
func (m *FocusManager) ClearSection(id string) {
	if m.active == id {
		m.Deactivate()
	}
	delete(m.sections, id)
}

// ActivateSection deactivates any currently active section and activates the
// target. The previous section is suspended, not destroyed: its selection is
// preserved and resumes if it is activated again. Unknown ids are a no-op.
func (m *FocusManager) ActivateSection(id string) {
	if _, ok := m.sections[id]; !ok {
		return
	}
	m.active = id
}

// Deactivate leaves no section active.
func (m *FocusManager) Deactivate() {
	m.active = ""
}

// ActiveID returns the id of the active section, or "".
func (m *FocusManager) ActiveID() string {
	return m.active
}

// ActiveSection returns the active section, or nil.
func (m *FocusManager) ActiveSection() *Section {
	if m.active == "" {
		return nil
	}
	return m.sections[m.active]
}

// RegisterFocusable registers an element under the given section, creating
// the section if needed. Re-registering an existing element id updates its
// callback and enabled flag in place without disturbing navigation order.
func (m *FocusManager) RegisterFocusable(sectionID, id string, enabled bool, activate func()) {
	if sectionID == "" {
		return
	}
	m.RegisterSection(sectionID).Register(id, enabled, activate)
}

// IsSelected reports whether id is the current selection of sectionID and
// that section is active.
func (m *FocusManager) IsSelected(sectionID, id string) bool {
	if sectionID == "" || m.active != sectionID {
		return false
	}
	s := m.sections[sectionID]
	return s != nil && s.SelectedID() == id
}

// Next advances the active section's selection forward.
func (m *FocusManager) Next() {
	if s := m.ActiveSection(); s != nil {
		s.Next()
	}
}

// Prev advances the active section's selection backward.
func (m *FocusManager) Prev() {
	if s := m.ActiveSection(); s != nil {
		s.Prev()
	}
}

// Activate invokes the active section's selected element.
func (m *FocusManager) Activate() {
	if s := m.ActiveSection(); s != nil {
		s.ActivateSelected()
	}
}

// Section is a named, navigable group of interactive elements. Registration
// order is navigation order. Disabled elements stay registered, so their ids
// remain stable, but navigation skips them and they cannot be activated.
type Section struct {
	id       string
	elements []*focusElement
	selected int
}

type focusElement struct {
	id       string
	enabled  bool
	activate func()
}

// ID returns the section id.
func (s *Section) ID() string {
	return s.id
}

// Register adds an element, or updates it in place if the id already exists.
func (s *Section) Register(id string, enabled bool, activate func()) {
	for _, e := range s.elements {
		if e.id == id {
			e.enabled = enabled
			e.activate = activate
			return
		}
	}
	s.elements = append(s.elements, &focusElement{id: id, enabled: enabled, activate: activate})
}

// Len returns the number of registered elements, enabled or not.
func (s *Section) Len() int {
	return len(s.elements)
}

// SelectedID returns the id of the selected element, or "" for an empty
// section.
func (s *Section) SelectedID() string {
	if s.selected < 0 || s.selected >= len(s.elements) {
		return ""
	}
	return s.elements[s.selected].id
}

// Select moves the selection to the element with the given id. Unknown or
// disabled ids are a no-op.
func (s *Section) Select(id string) {
	for i, e := range s.elements {
		if e.id == id && e.enabled {
			s.selected = i
			return
		}
	}
}

// Next advances the selection to the next enabled element, wrapping around.
// With no enabled elements the selection is left alone.
func (s *Section) Next() {
	s.step(1)
}

// Prev advances the selection to the previous enabled element, wrapping.
func (s *Section) Prev() {
	s.step(-1)
}

func (s *Section) step(delta int) {
	n := len(s.elements)
	if n == 0 {
		return
	}
	i := s.selected
	for range n {
		i = (i + delta + n) % n
		if s.elements[i].enabled {
			s.selected = i
			return
		}
	}
}

// ActivateSelected invokes the selected element's callback. Disabled or
// missing elements never receive activation.
func (s *Section) ActivateSelected() {
	if s.selected < 0 || s.selected >= len(s.elements) {
		return
	}
	e := s.elements[s.selected]
	if e.enabled && e.activate != nil {
		e.activate()
	}
}
