package storage

import "unsafe"

// Cell is storage for exactly one value of type T.
//
// The zero Cell is vacant and ready to use.
type Cell[T any] struct {
	noCopy noCopy

	value T
	live  bool
}

// Create stores v. The cell must be vacant: a live value is overwritten
// without being destroyed.
func (c *Cell[T]) Create(v T) {
	assertVacant(c.live)
	c.value = v
	c.live = true
}

// CreateWith constructs the value in place. construct receives a pointer to
// the zeroed slot.
func (c *Cell[T]) CreateWith(construct func(*T)) {
	assertVacant(c.live)
	var zero T
	c.value = zero
	construct(&c.value)
	c.live = true
}

// Destroy runs the value's Destroy method, if it has one, and leaves the
// cell vacant. The cell must be live.
func (c *Cell[T]) Destroy() {
	assertLive(c.live)
	DestroyValue(&c.value)
	var zero T
	c.value = zero
	c.live = false
}

// Get returns a pointer to the live value. The pointer is only meaningful
// until the next Destroy.
func (c *Cell[T]) Get() *T {
	assertLive(c.live)
	return &c.value
}

// Value returns a copy of the live value.
func (c *Cell[T]) Value() T {
	assertLive(c.live)
	return c.value
}

// Raw returns the address of the slot. It is stable for the cell's lifetime.
func (c *Cell[T]) Raw() unsafe.Pointer {
	return unsafe.Pointer(&c.value)
}

// Live reports whether the cell currently holds a value.
func (c *Cell[T]) Live() bool {
	return c.live
}
