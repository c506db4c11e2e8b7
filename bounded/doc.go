// Package bounded provides Function, a move-only callable wrapper whose
// target lives in fixed-capacity polymorphic storage.
//
// Function is to func values what storage.Poly is to interface values: the
// concrete callable type is erased behind a small adapter, the size of what
// it holds by value is checked against a declared capacity when it is
// stored, and ownership moves explicitly between wrappers instead of being
// shared.
//
// Capacity bounds only by-value state. A closure given to Set is a single
// pointer and fits any capacity; the variables it captures live on the heap
// and are not counted. A Callable struct given to Emplace carries its fields
// inline, and those are what the capacity limits.
//
//	var sum bounded.Function[int, int, bounded.Bytes64]
//	total := 0
//	_ = sum.Set(func(x int) int { total += x; return total })
//
//	sum.MustCall(1) // 1
//	sum.MustCall(2) // 3
//
//	var moved bounded.Function[int, int, bounded.Bytes64]
//	moved.MoveFrom(&sum)
//	moved.MustCall(5) // 8
//	_, err := sum.Call(1) // ErrEmptyFunction
//
// A callable that owns a resource can implement storage.Destroyer; its
// Destroy runs exactly once, when the wrapper that finally holds it is
// destroyed, no matter how many times it was moved before.
//
// IMPORTANT: Function is not safe for concurrent use and must not be copied
// after first use (go vet reports copies). Use MoveFrom to transfer it.
package bounded
