package storage

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/on-the-ground/bounded_go/shared/helper"
)

// Poly is storage for one value of any concrete type whose pointer
// implements B and whose size and alignment fit capacity C.
//
// B must embed Destroyer so Destroy reaches the concrete payload.
// The zero Poly is vacant and ready to use.
type Poly[B Destroyer, C Capacity] struct {
	noCopy noCopy

	obj  B
	data unsafe.Pointer
	live bool
}

// Admit reports whether a D can be emplaced into a Poly[B, C].
// It returns ErrCapacityExceeded, ErrMisaligned or ErrNotSubtype, wrapped
// with the offending type, or nil.
func Admit[D any, B Destroyer, C Capacity]() error {
	var d D
	typ := reflect.TypeOf((*D)(nil)).Elem()
	if size, capSize := unsafe.Sizeof(d), SizeOf[C](); size > capSize {
		return fmt.Errorf("%w: %v needs %d bytes, capacity is %d", ErrCapacityExceeded, typ, size, capSize)
	}
	if align, capAlign := unsafe.Alignof(d), AlignOf[C](); align > capAlign {
		return fmt.Errorf("%w: %v needs %d-byte alignment, capacity gives %d", ErrMisaligned, typ, align, capAlign)
	}
	if _, ok := any((*D)(nil)).(B); !ok {
		return fmt.Errorf("%w: *%v does not implement %v", ErrNotSubtype, typ, reflect.TypeOf((*B)(nil)).Elem())
	}
	return nil
}

// Emplace stores v in p and exposes it through B. The checks of Admit run
// first; on failure p is left untouched. p must be vacant.
func Emplace[D any, B Destroyer, C Capacity](p *Poly[B, C], v D) error {
	if err := Admit[D, B, C](); err != nil {
		return err
	}
	assertVacant(p.live)
	obj := new(D)
	*obj = v
	p.obj = any(obj).(B)
	p.data = unsafe.Pointer(obj)
	p.live = true
	return nil
}

// MustEmplace is the panic-on-failure variant of Emplace.
func MustEmplace[D any, B Destroyer, C Capacity](p *Poly[B, C], v D) {
	helper.MustDo(Emplace(p, v))
}

// Destroy runs the payload's Destroy through B and leaves the cell vacant.
// The cell must be live.
func (p *Poly[B, C]) Destroy() {
	assertLive(p.live)
	p.obj.Destroy()
	p.Vacate()
}

// Vacate leaves the cell vacant without running Destroy. It is meant for a
// payload that has already relocated its state into another cell.
func (p *Poly[B, C]) Vacate() {
	var zero B
	p.obj = zero
	p.data = nil
	p.live = false
}

// Get returns the payload through its base interface. The cell must be live.
func (p *Poly[B, C]) Get() B {
	assertLive(p.live)
	return p.obj
}

// Raw returns the address of the live payload, the same address As hands
// out, or nil if the cell is vacant. Each Emplace places a new payload, so
// the address changes between lifetimes.
func (p *Poly[B, C]) Raw() unsafe.Pointer {
	return p.data
}

// Live reports whether the cell currently holds a payload.
func (p *Poly[B, C]) Live() bool {
	return p.live
}

// As returns the payload as its concrete type D, if that is what p holds.
func As[D any, B Destroyer, C Capacity](p *Poly[B, C]) (*D, bool) {
	return helper.GetTypedValueOf2[*D](func() (any, bool) {
		return p.obj, p.live
	})
}
