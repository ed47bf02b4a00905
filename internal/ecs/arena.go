package ecs

import "iter"

// entry is one arena slot. A vacant slot keeps its generation so the next
// occupant can be issued generation+1.
type entry[T any] struct {
	generation uint32
	occupied   bool
	value      T
}

// Arena is a slot-reusing store addressed by generational refs.
// Freed slots are reused oldest first.
type Arena[T any] struct {
	entries []entry[T]
	free    []int // FIFO queue of vacant slot indices
	live    int
}

// NewArena creates an empty Arena.
func NewArena[T any]() *Arena[T] {
	return &Arena[T]{}
}

// Insert stores v and returns its ref.
func (a *Arena[T]) Insert(v T) EntityRef {
	if len(a.free) > 0 {
		slot := a.free[0]
		a.free = a.free[1:]
		e := &a.entries[slot]
		e.generation++
		e.occupied = true
		e.value = v
		a.live++
		return EntityRef{Slot: slot, Generation: e.generation}
	}
	a.entries = append(a.entries, entry[T]{occupied: true, value: v})
	a.live++
	return EntityRef{Slot: len(a.entries) - 1, Generation: 0}
}

// Remove deletes the value ref points at and returns it. A stale,
// out-of-range or already vacant ref returns false and changes nothing.
func (a *Arena[T]) Remove(ref EntityRef) (T, bool) {
	if !a.Contains(ref) {
		var zero T
		return zero, false
	}
	return a.vacate(ref.Slot), true
}

// RemoveAt deletes whatever occupies slot, regardless of generation.
func (a *Arena[T]) RemoveAt(slot int) (T, bool) {
	if slot < 0 || slot >= len(a.entries) || !a.entries[slot].occupied {
		var zero T
		return zero, false
	}
	return a.vacate(slot), true
}

func (a *Arena[T]) vacate(slot int) T {
	e := &a.entries[slot]
	v := e.value
	var zero T
	e.value = zero
	e.occupied = false
	a.free = append(a.free, slot)
	a.live--
	return v
}

// Contains reports whether ref still resolves.
func (a *Arena[T]) Contains(ref EntityRef) bool {
	if ref.Slot < 0 || ref.Slot >= len(a.entries) {
		return false
	}
	e := &a.entries[ref.Slot]
	return e.occupied && e.generation == ref.Generation
}

// Get returns a copy of the value ref points at.
func (a *Arena[T]) Get(ref EntityRef) (T, bool) {
	if !a.Contains(ref) {
		var zero T
		return zero, false
	}
	return a.entries[ref.Slot].value, true
}

// GetMut returns a pointer to the value ref points at, or nil.
// The pointer is invalidated by the next Insert.
func (a *Arena[T]) GetMut(ref EntityRef) *T {
	if !a.Contains(ref) {
		return nil
	}
	return &a.entries[ref.Slot].value
}

// GetAt returns a pointer to whatever occupies slot, or nil.
func (a *Arena[T]) GetAt(slot int) *T {
	if slot < 0 || slot >= len(a.entries) || !a.entries[slot].occupied {
		return nil
	}
	return &a.entries[slot].value
}

// GetTwoMut resolves two refs at once so both values can be mutated in the
// same step. Each ref is validated on its own; the second result is nil
// when both refs name the same slot.
func (a *Arena[T]) GetTwoMut(first, second EntityRef) (*T, *T) {
	pa := a.GetMut(first)
	if second.Slot == first.Slot {
		return pa, nil
	}
	return pa, a.GetMut(second)
}

// Clear removes every value. All outstanding refs become stale.
func (a *Arena[T]) Clear() {
	for slot := range a.entries {
		a.RemoveAt(slot)
	}
}

// Len is the number of slots, vacant ones included.
func (a *Arena[T]) Len() int { return len(a.entries) }

// Live is the number of occupied slots.
func (a *Arena[T]) Live() int { return a.live }

// All yields every stored value in slot order.
func (a *Arena[T]) All() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for i := range a.entries {
			if !a.entries[i].occupied {
				continue
			}
			if !yield(&a.entries[i].value) {
				return
			}
		}
	}
}

// Refs yields every stored value together with its ref, in slot order.
func (a *Arena[T]) Refs() iter.Seq2[EntityRef, *T] {
	return func(yield func(EntityRef, *T) bool) {
		for i := range a.entries {
			e := &a.entries[i]
			if !e.occupied {
				continue
			}
			if !yield(EntityRef{Slot: i, Generation: e.generation}, &e.value) {
				return
			}
		}
	}
}
