package bounded

import "github.com/on-the-ground/bounded_go/storage"

// Function takes one argument and returns one result. Other shapes are
// packed into the types below; the SetIxOy helpers adapt plain funcs of
// x arguments and y results.

// Args2 packs two arguments.
type Args2[A1, A2 any] struct {
	A1 A1
	A2 A2
}

// Args3 packs three arguments.
type Args3[A1, A2, A3 any] struct {
	A1 A1
	A2 A2
	A3 A3
}

// Pair packs two results.
type Pair[O1, O2 any] struct {
	O1 O1
	O2 O2
}

// SetI0O0 stores a func of no arguments and no results.
func SetI0O0[C storage.Capacity](f *Function[struct{}, struct{}, C], fn func()) error {
	if fn == nil {
		return errNilFunc
	}
	return f.Set(func(struct{}) struct{} {
		fn()
		return struct{}{}
	})
}

// SetI0O1 stores a func of no arguments and one result.
func SetI0O1[O1 any, C storage.Capacity](f *Function[struct{}, O1, C], fn func() O1) error {
	if fn == nil {
		return errNilFunc
	}
	return f.Set(func(struct{}) O1 {
		return fn()
	})
}

// SetI1O0 stores a func of one argument and no results.
func SetI1O0[I1 any, C storage.Capacity](f *Function[I1, struct{}, C], fn func(I1)) error {
	if fn == nil {
		return errNilFunc
	}
	return f.Set(func(i1 I1) struct{} {
		fn(i1)
		return struct{}{}
	})
}

// SetI2O1 stores a func of two arguments, packed as Args2, and one result.
func SetI2O1[I1, I2, O1 any, C storage.Capacity](f *Function[Args2[I1, I2], O1, C], fn func(I1, I2) O1) error {
	if fn == nil {
		return errNilFunc
	}
	return f.Set(func(args Args2[I1, I2]) O1 {
		return fn(args.A1, args.A2)
	})
}

// SetI3O1 stores a func of three arguments, packed as Args3, and one result.
func SetI3O1[I1, I2, I3, O1 any, C storage.Capacity](f *Function[Args3[I1, I2, I3], O1, C], fn func(I1, I2, I3) O1) error {
	if fn == nil {
		return errNilFunc
	}
	return f.Set(func(args Args3[I1, I2, I3]) O1 {
		return fn(args.A1, args.A2, args.A3)
	})
}

// SetI1O2 stores a func of one argument and two results, packed as Pair.
func SetI1O2[I1, O1, O2 any, C storage.Capacity](f *Function[I1, Pair[O1, O2], C], fn func(I1) (O1, O2)) error {
	if fn == nil {
		return errNilFunc
	}
	return f.Set(func(i1 I1) Pair[O1, O2] {
		o1, o2 := fn(i1)
		return Pair[O1, O2]{O1: o1, O2: o2}
	})
}

// Call0 invokes a Function that takes no arguments.
func Call0[R any, C storage.Capacity](f *Function[struct{}, R, C]) (R, error) {
	return f.Call(struct{}{})
}

// Call2 invokes a Function of two packed arguments.
func Call2[I1, I2, R any, C storage.Capacity](f *Function[Args2[I1, I2], R, C], i1 I1, i2 I2) (R, error) {
	return f.Call(Args2[I1, I2]{A1: i1, A2: i2})
}

// Call3 invokes a Function of three packed arguments.
func Call3[I1, I2, I3, R any, C storage.Capacity](f *Function[Args3[I1, I2, I3], R, C], i1 I1, i2 I2, i3 I3) (R, error) {
	return f.Call(Args3[I1, I2, I3]{A1: i1, A2: i2, A3: i3})
}
