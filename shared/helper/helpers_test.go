package helper_test

import (
	"errors"
	"testing"

	"github.com/on-the-ground/bounded_go/shared/helper"
	"github.com/stretchr/testify/assert"
)

func TestGetTypedValueOf2(t *testing.T) {
	v, ok := helper.GetTypedValueOf2[int](func() (any, bool) { return 3, true })
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	_, ok = helper.GetTypedValueOf2[string](func() (any, bool) { return 3, true })
	assert.False(t, ok, "type mismatch")

	_, ok = helper.GetTypedValueOf2[int](func() (any, bool) { return 3, false })
	assert.False(t, ok, "getter reported nothing")
}

func TestMust(t *testing.T) {
	assert.Equal(t, 1, helper.Must(1, nil))

	boom := errors.New("boom")
	assert.PanicsWithError(t, "boom", func() { helper.Must(0, boom) })
	assert.PanicsWithError(t, "boom", func() { helper.MustDo(boom) })
}
