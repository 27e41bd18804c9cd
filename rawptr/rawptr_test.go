package rawptr

import (
	"fmt"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRaw_LoadStore(t *testing.T) {
	arr := [4]int32{10, 20, 30, 40}
	r := New[int32](unsafe.Pointer(&arr[0]))

	assert.Equal(t, 4, r.ElemSize())
	assert.Equal(t, int32(10), r.Load(0))
	assert.Equal(t, int32(30), r.Load(2))

	r.Store(1, -7)
	assert.Equal(t, int32(-7), arr[1])
}

func TestRaw_AddressArithmetic(t *testing.T) {
	arr := [4]int64{1, 2, 3, 4}
	r := New[int64](unsafe.Pointer(&arr[0]))

	assert.Equal(t, uintptr(unsafe.Pointer(&arr[3])), uintptr(r.At(3)))

	moved := r.Move(2)
	assert.Equal(t, uintptr(unsafe.Pointer(&arr[2])), moved.Addr())
	assert.Equal(t, int64(3), moved.Load(0))

	// Negative index walks back toward the base.
	assert.Equal(t, int64(1), moved.Load(-2))

	back := moved.Move(-2)
	assert.Equal(t, r.Addr(), back.Addr())
}

func TestRaw_String(t *testing.T) {
	var v uint16 = 1
	r := New[uint16](unsafe.Pointer(&v))

	require.False(t, r.IsNil())
	assert.Equal(t, fmt.Sprintf("uint16 @ 0x%X", r.Addr()), r.String())

	var nilPtr Raw[uint16] = New[uint16](nil)
	require.True(t, nilPtr.IsNil())
	assert.Equal(t, "uint16 @ nil", nilPtr.String())
}
