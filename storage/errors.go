package storage

import "errors"

var (
	// ErrCapacityExceeded is returned when a payload is larger than the cell's capacity.
	ErrCapacityExceeded = errors.New("payload exceeds cell capacity")

	// ErrMisaligned is returned when a payload needs stricter alignment than the cell provides.
	// Every BytesN is aligned like uint64. On 64-bit targets no Go type needs
	// more, so it never fires there. On 32-bit targets uint64 is only 4-byte
	// aligned while sync/atomic's 64-bit types are 8-byte aligned, so a payload
	// holding one is rejected.
	ErrMisaligned = errors.New("payload alignment exceeds cell alignment")

	// ErrNotSubtype is returned when a payload does not implement the cell's base interface.
	ErrNotSubtype = errors.New("payload does not implement base interface")

	// ErrNotLive is the panic value for accessing a vacant cell in debug builds.
	ErrNotLive = errors.New("cell holds no live value")

	// ErrAlreadyLive is the panic value for creating into a live cell in debug builds.
	ErrAlreadyLive = errors.New("cell already holds a live value")
)
