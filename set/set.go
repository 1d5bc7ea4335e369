package set

// Set represents a collection of unique elements.
// Rosters and id lists come out of Firestore as plain slices, so this is
// the de-duplication point whenever one of them is mutated.
type Set[T comparable] struct {
	items map[T]struct{}
	order []T
}

// New creates and returns a new empty Set.
func New[T comparable]() *Set[T] {
	return &Set[T]{
		items: make(map[T]struct{}),
	}
}

// FromSlice creates a new Set from the provided slice of items.
// Duplicates are dropped, first occurrence wins, insertion order is kept.
func FromSlice[T comparable](items []T) *Set[T] {
	set := New[T]()
	for _, item := range items {
		set.Add(item)
	}
	return set
}

// Add adds an item to the Set.
// If the item already exists, the Set remains unchanged.
func (s *Set[T]) Add(item T) {
	if _, exists := s.items[item]; exists {
		return
	}
	s.items[item] = struct{}{}
	s.order = append(s.order, item)
}

// Contains checks if the item exists in the Set.
func (s *Set[T]) Contains(item T) bool {
	_, exists := s.items[item]
	return exists
}

// Size returns the number of items in the Set.
func (s *Set[T]) Size() int {
	return len(s.items)
}

// ToSlice returns all the items in the Set in insertion order.
func (s *Set[T]) ToSlice() []T {
	result := make([]T, len(s.order))
	copy(result, s.order)
	return result
}
