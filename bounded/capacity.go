package bounded

import "github.com/on-the-ground/bounded_go/storage"

// Capacity aliases so callers need not import storage for the common case.
type (
	Bytes8   = storage.Bytes8
	Bytes16  = storage.Bytes16
	Bytes32  = storage.Bytes32
	Bytes64  = storage.Bytes64
	Bytes128 = storage.Bytes128
	Bytes256 = storage.Bytes256
	Bytes512 = storage.Bytes512
)
