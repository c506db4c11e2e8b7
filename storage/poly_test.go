package storage_test

import (
	"sync/atomic"
	"testing"
	"unsafe"

	"github.com/on-the-ground/bounded_go/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type shape interface {
	storage.Destroyer
	Area() int
}

type square struct {
	side      int
	destroyed *int
}

func (s *square) Area() int { return s.side * s.side }
func (s *square) Destroy()  { *s.destroyed++ }

type rect struct {
	w, h      int
	destroyed *int
}

func (r *rect) Area() int { return r.w * r.h }
func (r *rect) Destroy()  { *r.destroyed++ }

type huge struct {
	payload [64]byte
}

func (*huge) Area() int { return 0 }
func (*huge) Destroy()  {}

type notAShape struct{ side int }

func (*notAShape) Destroy() {}

func TestPoly_EmplaceDerivedAndAccessThroughBase(t *testing.T) {
	destroyed := 0
	var sut storage.Poly[shape, storage.Bytes32]

	err := storage.Emplace(&sut, square{side: 3, destroyed: &destroyed})

	require.NoError(t, err)
	assert.True(t, sut.Live())
	assert.Equal(t, 9, sut.Get().Area())
}

func TestPoly_DestroyRunsDerivedDestructorExactlyOnce(t *testing.T) {
	destroyed := 0
	var sut storage.Poly[shape, storage.Bytes32]
	storage.MustEmplace(&sut, rect{w: 2, h: 5, destroyed: &destroyed})

	sut.Destroy()

	assert.Equal(t, 1, destroyed)
	assert.False(t, sut.Live())
}

func TestPoly_HoldsDifferentTypesOverItsLifetime(t *testing.T) {
	destroyed := 0
	var sut storage.Poly[shape, storage.Bytes32]

	storage.MustEmplace(&sut, square{side: 2, destroyed: &destroyed})
	assert.Equal(t, 4, sut.Get().Area())
	sut.Destroy()

	storage.MustEmplace(&sut, rect{w: 2, h: 3, destroyed: &destroyed})
	assert.Equal(t, 6, sut.Get().Area())
	sut.Destroy()

	assert.Equal(t, 2, destroyed)
}

func TestPoly_GetMutatesStoredPayload(t *testing.T) {
	destroyed := 0
	var sut storage.Poly[shape, storage.Bytes32]
	storage.MustEmplace(&sut, square{side: 2, destroyed: &destroyed})

	sq, ok := storage.As[square](&sut)
	require.True(t, ok)
	sq.side = 4

	assert.Equal(t, 16, sut.Get().Area())
}

func TestPoly_AsRejectsOtherTypes(t *testing.T) {
	destroyed := 0
	var sut storage.Poly[shape, storage.Bytes32]

	_, ok := storage.As[square](&sut)
	assert.False(t, ok, "vacant cell")

	storage.MustEmplace(&sut, square{side: 2, destroyed: &destroyed})
	_, ok = storage.As[rect](&sut)
	assert.False(t, ok)
}

func TestPoly_OversizedPayloadIsRejectedBeforeTouchingCell(t *testing.T) {
	var sut storage.Poly[shape, storage.Bytes32]

	err := storage.Emplace(&sut, huge{})

	assert.ErrorIs(t, err, storage.ErrCapacityExceeded)
	assert.False(t, sut.Live())
}

func TestPoly_LargerCapacityAdmitsSamePayload(t *testing.T) {
	var sut storage.Poly[shape, storage.Bytes64]

	err := storage.Emplace(&sut, huge{})

	assert.NoError(t, err)
}

func TestPoly_UnrelatedPayloadIsRejected(t *testing.T) {
	var sut storage.Poly[shape, storage.Bytes32]

	err := storage.Emplace(&sut, notAShape{side: 1})

	assert.ErrorIs(t, err, storage.ErrNotSubtype)
	assert.False(t, sut.Live())
}

func TestPoly_MustEmplacePanicsOnRejection(t *testing.T) {
	var sut storage.Poly[shape, storage.Bytes8]

	assert.Panics(t, func() {
		storage.MustEmplace(&sut, huge{})
	})
}

func TestPoly_AdmitMatchesCapacity(t *testing.T) {
	assert.NoError(t, storage.Admit[square, shape, storage.Bytes16]())
	assert.ErrorIs(t, storage.Admit[huge, shape, storage.Bytes32](), storage.ErrCapacityExceeded)
	assert.ErrorIs(t, storage.Admit[notAShape, shape, storage.Bytes512](), storage.ErrNotSubtype)
}

func TestPoly_VacateSkipsDestructor(t *testing.T) {
	destroyed := 0
	var sut storage.Poly[shape, storage.Bytes32]
	storage.MustEmplace(&sut, square{side: 1, destroyed: &destroyed})

	sut.Vacate()

	assert.Zero(t, destroyed)
	assert.False(t, sut.Live())
}

func TestCapacity_Sizes(t *testing.T) {
	assert.EqualValues(t, 8, storage.SizeOf[storage.Bytes8]())
	assert.EqualValues(t, 64, storage.SizeOf[storage.Bytes64]())
	assert.EqualValues(t, 512, storage.SizeOf[storage.Bytes512]())
}

type hitCounter struct {
	hits atomic.Int64
}

func (h *hitCounter) Area() int { return int(h.hits.Load()) }
func (h *hitCounter) Destroy()  {}

func TestPoly_AlignmentIsCheckedAgainstCapacity(t *testing.T) {
	var h hitCounter
	err := storage.Admit[hitCounter, shape, storage.Bytes64]()

	if unsafe.Alignof(h) > storage.AlignOf[storage.Bytes64]() {
		assert.ErrorIs(t, err, storage.ErrMisaligned)
	} else {
		assert.NoError(t, err)
	}
	assert.Equal(t, unsafe.Alignof(uint64(0)), storage.AlignOf[storage.Bytes8]())
	assert.Equal(t, storage.AlignOf[storage.Bytes8](), storage.AlignOf[storage.Bytes512]())
}

func TestPoly_RawPointsAtLivePayload(t *testing.T) {
	destroyed := 0
	var sut storage.Poly[shape, storage.Bytes32]
	assert.Nil(t, sut.Raw(), "vacant cell")

	storage.MustEmplace(&sut, square{side: 3, destroyed: &destroyed})
	sq, ok := storage.As[square](&sut)
	require.True(t, ok)

	assert.Equal(t, unsafe.Pointer(sq), sut.Raw())
	assert.Equal(t, 3, (*square)(sut.Raw()).side)

	sut.Destroy()
	assert.Nil(t, sut.Raw())
}
