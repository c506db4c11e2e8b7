package bounded

import (
	"fmt"

	"github.com/on-the-ground/bounded_go/shared/helper"
	"github.com/on-the-ground/bounded_go/storage"
	"go.uber.org/zap"
)

// Function holds at most one callable taking A and returning R, stored in a
// cell of capacity C. The zero Function is empty.
//
// Invariant: valid is true exactly when cell holds a live target.
type Function[A, R any, C storage.Capacity] struct {
	cell  storage.Poly[target[A, R, C], C]
	valid bool
}

// Emplace stores fn in f, releasing whatever f held before.
//
// fn is stored by value; Call may have a value or a pointer receiver on F.
// To store a pointer, wrap its method value with Func.
//
// fn's size and alignment are checked against C first; if it does not fit,
// the error wraps storage.ErrCapacityExceeded or storage.ErrMisaligned and f
// is left exactly as it was. Only what F holds by value is measured: memory
// F reaches through pointers, slices, maps or closures is not counted.
//
// A nil Func is rejected with an error wrapping ErrEmptyFunction, again
// leaving f as it was.
func Emplace[F any, PF callablePtr[F, A, R], A, R any, C storage.Capacity](f *Function[A, R, C], fn F) error {
	if fp, ok := any(fn).(Func[A, R]); ok && fp == nil {
		logger.Warn("rejected nil func")
		return errNilFunc
	}
	if err := storage.Admit[adapter[F, PF, A, R, C], target[A, R, C], C](); err != nil {
		logger.Warn("rejected callable", zap.String("type", fmt.Sprintf("%T", fn)), zap.Error(err))
		return fmt.Errorf("bounded: emplace %T: %w", fn, err)
	}
	f.clear()
	storage.MustEmplace(&f.cell, adapter[F, PF, A, R, C]{fn: fn})
	f.valid = true
	return nil
}

// MustEmplace is the panic-on-failure variant of Emplace.
func MustEmplace[F any, PF callablePtr[F, A, R], A, R any, C storage.Capacity](f *Function[A, R, C], fn F) {
	helper.MustDo(Emplace[F, PF](f, fn))
}

// Set stores an ordinary function, releasing whatever f held before.
//
// A func value is one pointer wide, so it fits every capacity: variables a
// closure captures live outside f and are not checked against C. To bound a
// callable's state, give it to Emplace as a struct that holds that state by
// value. A nil fn is rejected with an error wrapping ErrEmptyFunction and f
// is left as it was.
func (f *Function[A, R, C]) Set(fn func(A) R) error {
	if fn == nil {
		logger.Warn("rejected nil func")
		return errNilFunc
	}
	return Emplace(f, Func[A, R](fn))
}

// Call invokes the held target. It returns ErrEmptyFunction, and the zero R,
// if f is empty.
func (f *Function[A, R, C]) Call(a A) (R, error) {
	if !f.valid {
		var zero R
		logger.Warn("call of empty function")
		return zero, ErrEmptyFunction
	}
	return f.cell.Get().invoke(a), nil
}

// MustCall invokes the held target and panics with ErrEmptyFunction if f is
// empty.
func (f *Function[A, R, C]) MustCall(a A) R {
	return helper.Must(f.Call(a))
}

// Valid reports whether f holds a target.
func (f *Function[A, R, C]) Valid() bool {
	return f.valid
}

// MoveFrom transfers src's target into f and leaves src empty. Whatever f
// held before is destroyed first. If src is empty, f ends up empty too.
// Moving a Function into itself does nothing.
//
// The target relocates itself; its Destroy does not run on either side.
func (f *Function[A, R, C]) MoveFrom(src *Function[A, R, C]) {
	if f == src {
		return
	}
	f.clear()
	if !src.valid {
		return
	}
	src.cell.Get().moveInto(f)
	f.valid = true
	src.cell.Vacate()
	src.valid = false
	logger.Debug("moved function")
}

// Destroy releases the held target, running its Destroy if it has one, and
// leaves f empty. Destroying an empty Function does nothing.
func (f *Function[A, R, C]) Destroy() {
	f.clear()
}

func (f *Function[A, R, C]) clear() {
	if f.valid {
		f.cell.Destroy()
		f.valid = false
	}
}
