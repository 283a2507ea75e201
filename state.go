package canopy

// Store is a session-lived set of mutable cells keyed by identity path. It
// backs persistent per-view state (scroll offsets, change tracking) that
// must survive render passes, which themselves only ever see immutable view
// values.
type Store struct {
	cells   map[string]any
	tracked map[string]any
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		cells:   make(map[string]any),
		tracked: make(map[string]any),
	}
}

// Get returns the cell value for id, or (nil, false).
func (s *Store) Get(id string) (any, bool) {
	v, ok := s.cells[id]
	return v, ok
}

// Set writes the cell value for id.
func (s *Store) Set(id string, v any) {
	s.cells[id] = v
}

// Delete removes the cell for id.
func (s *Store) Delete(id string) {
	delete(s.cells, id)
}

// Int reads the cell as an int, returning def when unset or of another type.
func (s *Store) Int(id string, def int) int {
	if v, ok := s.cells[id]; ok {
		if n, ok := v.(int); ok {
			return n
		}
	}
	return def
}

// Changed records v under id and reports whether it differs from the value
// recorded on the previous call. The first observation of an id reports
// false. Values must be comparable.
func (s *Store) Changed(id string, v any) bool {
	prev, seen := s.tracked[id]
	s.tracked[id] = v
	return seen && prev != v
}
