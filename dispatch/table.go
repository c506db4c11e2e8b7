package dispatch

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/on-the-ground/bounded_go/bounded"
	"github.com/on-the-ground/bounded_go/storage"
	"go.uber.org/zap"
)

// Handle identifies one registration. A handle outlives its registration:
// once the name is unregistered or taken, the handle is stale.
type Handle struct {
	ID   uuid.UUID
	Name string
	slot int
}

type slotState uint8

const (
	slotVacant slotState = iota
	slotUsed
	slotDeleted
)

type entry[A, R any, C storage.Capacity] struct {
	state slotState
	name  string
	id    uuid.UUID
	fn    bounded.Function[A, R, C]
}

// Table is a fixed number of named slots, each able to own one
// bounded.Function. Slots are chosen by hashing the name and probing
// linearly, so a Table never grows after NewTable.
//
// IMPORTANT: Table is not safe for concurrent use.
type Table[A, R any, C storage.Capacity] struct {
	entries []entry[A, R, C]
	size    int
	logger  *zap.Logger
}

func NewTable[A, R any, C storage.Capacity](cfg Config) *Table[A, R, C] {
	cfg = NewConfig(cfg.Slots, cfg.Logger)
	return &Table[A, R, C]{
		entries: make([]entry[A, R, C], cfg.Slots),
		logger:  cfg.Logger.Named("dispatch"),
	}
}

func (t *Table[A, R, C]) home(name string) int {
	return int(xxhash.Sum64String(name) % uint64(len(t.entries)))
}

// find returns the slot holding name, or -1.
func (t *Table[A, R, C]) find(name string) int {
	start := t.home(name)
	for i := 0; i < len(t.entries); i++ {
		idx := (start + i) % len(t.entries)
		e := &t.entries[idx]
		switch {
		case e.state == slotVacant:
			return -1
		case e.state == slotUsed && e.name == name:
			return idx
		}
	}
	return -1
}

// Register moves fn into a free slot under name. fn is left empty on
// success and untouched on failure.
func (t *Table[A, R, C]) Register(name string, fn *bounded.Function[A, R, C]) (Handle, error) {
	if !fn.Valid() {
		return Handle{}, fmt.Errorf("%w: %q", ErrEmptyFunction, name)
	}
	if t.find(name) >= 0 {
		return Handle{}, fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}

	start := t.home(name)
	for i := 0; i < len(t.entries); i++ {
		idx := (start + i) % len(t.entries)
		e := &t.entries[idx]
		if e.state == slotUsed {
			continue
		}
		e.state = slotUsed
		e.name = name
		e.id = uuid.New()
		e.fn.MoveFrom(fn)
		t.size++
		t.logger.Debug("registered",
			zap.String("name", name),
			zap.Stringer("id", e.id),
			zap.Int("slot", idx),
		)
		return Handle{ID: e.id, Name: name, slot: idx}, nil
	}
	return Handle{}, fmt.Errorf("%w: %q (%d slots)", ErrTableFull, name, len(t.entries))
}

// Invoke calls the function registered under name.
func (t *Table[A, R, C]) Invoke(name string, a A) (R, error) {
	idx := t.find(name)
	if idx < 0 {
		var zero R
		return zero, fmt.Errorf("%w: %q", ErrNotRegistered, name)
	}
	return t.entries[idx].fn.Call(a)
}

// Take moves the function registered under name into dst and frees its slot.
// Whatever dst held before is destroyed.
func (t *Table[A, R, C]) Take(name string, dst *bounded.Function[A, R, C]) error {
	idx := t.find(name)
	if idx < 0 {
		return fmt.Errorf("%w: %q", ErrNotRegistered, name)
	}
	e := &t.entries[idx]
	dst.MoveFrom(&e.fn)
	t.release(idx)
	t.logger.Debug("taken", zap.String("name", name), zap.Int("slot", idx))
	return nil
}

// Unregister destroys the function behind h.
func (t *Table[A, R, C]) Unregister(h Handle) error {
	if h.slot < 0 || h.slot >= len(t.entries) {
		return fmt.Errorf("%w: %q", ErrStaleHandle, h.Name)
	}
	e := &t.entries[h.slot]
	if e.state != slotUsed || e.id != h.ID {
		return fmt.Errorf("%w: %q", ErrStaleHandle, h.Name)
	}
	e.fn.Destroy()
	t.release(h.slot)
	t.logger.Debug("unregistered", zap.String("name", h.Name), zap.Stringer("id", h.ID))
	return nil
}

func (t *Table[A, R, C]) release(idx int) {
	e := &t.entries[idx]
	e.state = slotDeleted
	e.name = ""
	e.id = uuid.Nil
	t.size--
}

// Len returns the number of registered functions.
func (t *Table[A, R, C]) Len() int {
	return t.size
}

// Close destroys every registered function. The table stays usable.
func (t *Table[A, R, C]) Close() {
	for idx := range t.entries {
		e := &t.entries[idx]
		if e.state == slotUsed {
			e.fn.Destroy()
		}
		e.state = slotVacant
		e.name = ""
		e.id = uuid.Nil
	}
	t.size = 0
	t.logger.Debug("closed")
}
