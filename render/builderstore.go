package render

// Store - keyed registry of rendering artifacts.
type Store[T any] struct {
	entries map[string]T
}

func NewStore[T any]() *Store[T] {
	return &Store[T]{entries: make(map[string]T)}
}

func (s *Store[T]) Store(key string, entry T) {
	s.entries[key] = entry
}

func (s *Store[T]) Get(key string) (T, bool) {
	e, ok := s.entries[key]
	return e, ok
}

func (s *Store[T]) Remove(key string) {
	delete(s.entries, key)
}
