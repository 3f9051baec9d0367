package ecs

// componentStore is the type-erased view the world uses to clean up a
// destroyed entity's components.
type componentStore interface {
	has(id entityID) bool
	remove(id entityID) bool
}

// sparseSet stores one component type keyed by entity slot id. Dense order
// is insertion order and removal keeps it, so iteration over a store is
// stable across a match: platforms are resolved in the order they were
// placed.
type sparseSet[T any] struct {
	dense  []entityID
	values []*T
	sparse map[entityID]int
}

func newSparseSet[T any]() *sparseSet[T] {
	return &sparseSet[T]{sparse: make(map[entityID]int)}
}

func (s *sparseSet[T]) has(id entityID) bool {
	_, ok := s.sparse[id]
	return ok
}

func (s *sparseSet[T]) get(id entityID) (*T, bool) {
	idx, ok := s.sparse[id]
	if !ok {
		return nil, false
	}
	return s.values[idx], true
}

func (s *sparseSet[T]) set(id entityID, v *T) {
	if idx, ok := s.sparse[id]; ok {
		s.values[idx] = v
		return
	}
	s.dense = append(s.dense, id)
	s.values = append(s.values, v)
	s.sparse[id] = len(s.dense) - 1
}

func (s *sparseSet[T]) remove(id entityID) bool {
	idx, ok := s.sparse[id]
	if !ok {
		return false
	}
	copy(s.dense[idx:], s.dense[idx+1:])
	copy(s.values[idx:], s.values[idx+1:])
	last := len(s.dense) - 1
	s.values[last] = nil
	s.dense = s.dense[:last]
	s.values = s.values[:last]
	delete(s.sparse, id)
	for i := idx; i < len(s.dense); i++ {
		s.sparse[s.dense[i]] = i
	}
	return true
}

// ids returns a copy of the dense id list so callers may mutate the world
// while iterating.
func (s *sparseSet[T]) ids() []entityID {
	out := make([]entityID, len(s.dense))
	copy(out, s.dense)
	return out
}

func (s *sparseSet[T]) len() int {
	return len(s.dense)
}
