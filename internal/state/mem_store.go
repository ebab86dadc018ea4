package state

// memStore holds the document in memory only. It backs the "none" store type
// and lets tests assert dedup behavior without touching a filesystem.
type memStore struct {
	st State
}

// NewMemory returns a store that never touches disk.
func NewMemory() Store {
	return &memStore{}
}

func (m *memStore) Close() error { return nil }

func (m *memStore) Load() (State, error) {
	return m.st.clone(), nil
}

func (m *memStore) Save(st State) error {
	m.st = st.clone()
	return nil
}
