package bounded

import "github.com/on-the-ground/bounded_go/storage"

// Callable is anything that can be invoked with an A to produce an R.
type Callable[A, R any] interface {
	Call(A) R
}

// callablePtr lets a value type with a pointer-receiver Call be stored by
// value, so its state counts against the wrapper's capacity.
type callablePtr[F any, A, R any] interface {
	*F
	Callable[A, R]
}

// Func adapts an ordinary function to Callable.
type Func[A, R any] func(A) R

// Call calls f(a).
func (f Func[A, R]) Call(a A) R {
	return f(a)
}

// target is the erased view of a stored callable.
type target[A, R any, C storage.Capacity] interface {
	storage.Destroyer
	invoke(A) R
	// moveInto emplaces a target of the same concrete type into dst,
	// taking the callable with it. The receiver is left holding a zero
	// callable and must be vacated, not destroyed.
	moveInto(dst *Function[A, R, C])
}

// adapter retains one concrete callable by value.
type adapter[F any, PF callablePtr[F, A, R], A, R any, C storage.Capacity] struct {
	fn F
}

func (t *adapter[F, PF, A, R, C]) invoke(a A) R {
	return PF(&t.fn).Call(a)
}

func (t *adapter[F, PF, A, R, C]) moveInto(dst *Function[A, R, C]) {
	moved := t.fn
	var zero F
	t.fn = zero
	storage.MustEmplace(&dst.cell, adapter[F, PF, A, R, C]{fn: moved})
}

func (t *adapter[F, PF, A, R, C]) Destroy() {
	storage.DestroyValue(&t.fn)
	var zero F
	t.fn = zero
}
