// Package storage provides fixed-capacity cells with explicit construction
// and destruction.
//
// Cell holds exactly one value of a statically known type. Poly holds one
// value of any concrete type that implements a base interface and fits a
// declared capacity. Both are building blocks: they carry no synchronization
// and, outside debug builds, no precondition checks.
//
// # Lifecycle
//
// A cell is either vacant or live. Create/Emplace make it live, Destroy runs
// the payload's Destroy method (if any) and makes it vacant again. The same
// cell may go through this cycle any number of times.
//
// Calling Get or Destroy on a vacant cell, or Create on a live one, is a
// caller bug. Release builds do not detect it. Building with
//
//	go test -tags boundeddebug ./...
//
// turns every such violation into a panic carrying ErrNotLive or
// ErrAlreadyLive.
//
// # Capacity
//
// Poly is parameterized by one of the BytesN buffer types. A payload is
// admitted only if its size and alignment fit that buffer and a pointer to it
// implements the base interface. Rejection happens before the cell is
// touched.
//
// # Copying
//
// Cells must not be copied after first use; go vet reports copies. Moving a
// payload between cells is the job of the layer above (see package bounded).
//
// IMPORTANT: nothing in this package is safe for concurrent use. Guard a
// shared cell externally or, better, don't share it.
package storage
