package storage

// Destroyer is the release contract for stored values. It plays the role of
// a virtual destructor: Poly reaches the concrete implementation through the
// base interface, so the base interface must embed Destroyer.
type Destroyer interface {
	Destroy()
}

// DestroyValue runs v's Destroy method if T or *T has one.
func DestroyValue[T any](v *T) {
	if d, ok := any(v).(Destroyer); ok {
		d.Destroy()
		return
	}
	if d, ok := any(*v).(Destroyer); ok {
		d.Destroy()
	}
}
