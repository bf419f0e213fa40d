package model

import "iter"

// Arena is an append-only table of resources addressed by their insertion index.
//
// Entries are never removed or reordered, so an index handed out by Add stays valid for
// the life of the arena. Lookups with an index outside the table report absence instead
// of panicking; documents routinely reference ids their producer never wrote.
type Arena[T any] struct {
	items []T
}

// Add appends v and returns its index.
func (a *Arena[T]) Add(v T) int {
	a.items = append(a.items, v)
	return len(a.items) - 1
}

// Get returns the entry at index i.
func (a *Arena[T]) Get(i int) (T, bool) {
	if i < 0 || i >= len(a.items) {
		var zero T
		return zero, false
	}

	return a.items[i], true
}

// Update calls fn with a pointer to the entry at index i. It reports false, without
// calling fn, when i is out of range.
func (a *Arena[T]) Update(i int, fn func(*T)) bool {
	if i < 0 || i >= len(a.items) {
		return false
	}
	fn(&a.items[i])

	return true
}

// Len returns the number of entries.
func (a *Arena[T]) Len() int {
	return len(a.items)
}

// All iterates entries in index order.
func (a *Arena[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range a.items {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Values returns a copy of the entries in index order.
func (a *Arena[T]) Values() []T {
	out := make([]T, len(a.items))
	copy(out, a.items)

	return out
}
