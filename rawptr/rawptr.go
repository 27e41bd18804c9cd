package rawptr

import (
	"fmt"
	"unsafe"

	"github.com/BranchAndLink/saferaw/elem"
)

// Raw is an unchecked typed pointer: a current address plus the element
// metadata used for address arithmetic. It stores and moves addresses, reads
// and writes elements by relative index, and nothing more — lifetime and
// range validation are layered on top of it by composition.
type Raw[T elem.Value] struct {
	addr unsafe.Pointer
	info elem.Info
}

func New[T elem.Value](addr unsafe.Pointer) Raw[T] {
	return Raw[T]{addr: addr, info: elem.Of[T]()}
}

func (r Raw[T]) Addr() uintptr {
	return uintptr(r.addr)
}

func (r Raw[T]) Base() unsafe.Pointer { return r.addr }

func (r Raw[T]) Info() elem.Info { return r.info }

func (r Raw[T]) ElemSize() int { return int(r.info.Size) }

func (r Raw[T]) IsNil() bool { return r.addr == nil }

// At returns the address of the element i slots from the current one.
// No bounds check of any kind.
func (r Raw[T]) At(i int) unsafe.Pointer {
	return unsafe.Add(r.addr, i*int(r.info.Size))
}

// Load reads the element i slots from the current address.
func (r Raw[T]) Load(i int) T {
	return *(*T)(r.At(i))
}

// Store writes the element i slots from the current address.
func (r Raw[T]) Store(i int, v T) {
	*(*T)(r.At(i)) = v
}

// Move returns a pointer shifted by delta elements.
func (r Raw[T]) Move(delta int) Raw[T] {
	return Raw[T]{addr: r.At(delta), info: r.info}
}

func (r Raw[T]) String() string {
	if r.addr == nil {
		return fmt.Sprintf("%s @ nil", r.info)
	}
	return fmt.Sprintf("%s @ 0x%X", r.info, r.Addr())
}
