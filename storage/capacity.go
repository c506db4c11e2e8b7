package storage

import "unsafe"

// Buffer shapes usable as a Poly capacity. Each is word aligned.
type (
	Bytes8   [1]uint64
	Bytes16  [2]uint64
	Bytes32  [4]uint64
	Bytes64  [8]uint64
	Bytes128 [16]uint64
	Bytes256 [32]uint64
	Bytes512 [64]uint64
)

// Capacity is the closed set of buffer shapes a Poly can be declared with.
type Capacity interface {
	Bytes8 | Bytes16 | Bytes32 | Bytes64 | Bytes128 | Bytes256 | Bytes512
}

// SizeOf returns the number of bytes capacity C provides.
func SizeOf[C Capacity]() uintptr {
	var c C
	return unsafe.Sizeof(c)
}

// AlignOf returns the alignment capacity C guarantees.
func AlignOf[C Capacity]() uintptr {
	var c C
	return unsafe.Alignof(c)
}
