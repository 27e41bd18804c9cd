// Package bounded implements a bounds-checked, resizable pointer over one
// manually managed allocation. It layers lifetime and range validation on
// rawptr.Raw: every access is checked against the live allocation, cursor
// arithmetic tolerates the classic one-past-the-end loop overshoot, and
// release is deterministic and idempotent.
package bounded

import (
	"math"
	"runtime"

	"github.com/BranchAndLink/saferaw/elem"
	"github.com/BranchAndLink/saferaw/mem"
	"github.com/BranchAndLink/saferaw/rawptr"
)

// Pointer is a checked view over a single allocation. The raw pointer holds
// the current address; offset tracks how far that address sits, in elements,
// from the block's first element. The block base never moves between
// reallocations, so the first element address is always block.Base().
// Not safe for concurrent use.
type Pointer[T elem.Value] struct {
	raw        rawptr.Raw[T]
	block      mem.Block
	alloc      mem.Allocator
	allocBytes int
	offset     int
	allocated  bool
}

type config struct {
	alloc mem.Allocator
}

type Option func(*config)

// WithAllocator selects the backing allocator. Defaults to mem.Default.
func WithAllocator(a mem.Allocator) Option {
	return func(c *config) { c.alloc = a }
}

// New allocates room for count elements, all zero-valued, with the cursor on
// the first element. Fails with mem.AllocError when the allocator cannot
// satisfy the request or count is not positive.
func New[T elem.Value](count int, opts ...Option) (*Pointer[T], error) {
	cfg := config{alloc: mem.Default}
	for _, o := range opts {
		o(&cfg)
	}

	size, err := byteSize(count, int(elem.Of[T]().Size))
	if err != nil {
		return nil, err
	}
	blk, err := cfg.alloc.Alloc(size)
	if err != nil {
		return nil, err
	}

	p := &Pointer[T]{
		raw:        rawptr.New[T](blk.Base()),
		block:      blk,
		alloc:      cfg.alloc,
		allocBytes: blk.Size(),
		allocated:  true,
	}
	// Safety net for owners that never call Release. The allocated flag
	// guard makes an explicit Release win without a double free.
	runtime.SetFinalizer(p, (*Pointer[T]).Release)
	return p, nil
}

// byteSize converts an element count to a byte count, rejecting counts the
// multiplication would mangle. allocBytes is only ever written as
// count*esize, which keeps it an exact multiple of the element size.
func byteSize(count, esize int) (int, error) {
	if count < 1 {
		return 0, mem.AllocError{Bytes: count * esize, Cause: mem.ErrBadSize}
	}
	if count > math.MaxInt/esize {
		return 0, mem.AllocError{Bytes: math.MaxInt, Cause: mem.ErrBadSize}
	}
	return count * esize, nil
}

// IsAllocated reports whether the pointer still owns its allocation.
func (p *Pointer[T]) IsAllocated() bool { return p.allocated }

// AllocatedBytes returns the size of the live allocation in bytes, zero once
// released.
func (p *Pointer[T]) AllocatedBytes() int { return p.allocBytes }

// Count returns the number of elements in the live allocation.
func (p *Pointer[T]) Count() int {
	if !p.allocated {
		return 0
	}
	return p.allocBytes / p.raw.ElemSize()
}

// Capacity is Count under its resize-facing name.
func (p *Pointer[T]) Capacity() int { return p.Count() }

// Offset is the cursor displacement, in elements, from the first element.
func (p *Pointer[T]) Offset() int { return p.offset }

// Bounds returns the legal index range relative to the current cursor:
// index Start designates the first element, End the last.
func (p *Pointer[T]) Bounds() (start, end int) {
	return -p.offset, -p.offset + p.Count() - 1
}

// Address returns the current address, zero once released.
func (p *Pointer[T]) Address() uintptr {
	if !p.allocated {
		return 0
	}
	return p.raw.Addr()
}

// First returns the address of logical element 0, independent of the cursor.
func (p *Pointer[T]) First() uintptr {
	if !p.allocated {
		return 0
	}
	return uintptr(p.block.Base())
}

// Last returns the address of logical element count-1.
func (p *Pointer[T]) Last() uintptr {
	if !p.allocated {
		return 0
	}
	return uintptr(p.raw.At(p.Count() - 1 - p.offset))
}

// Get reads the element at index, relative to the cursor. A released pointer
// reads as a null pointer: zero value, no error.
func (p *Pointer[T]) Get(index int) (T, error) {
	var zero T
	if !p.allocated {
		return zero, nil
	}
	if err := p.check(index); err != nil {
		return zero, err
	}
	return p.raw.Load(index), nil
}

// Set writes the element at index, relative to the cursor. Writes through a
// released pointer are dropped silently.
func (p *Pointer[T]) Set(index int, v T) error {
	if !p.allocated {
		return nil
	}
	if err := p.check(index); err != nil {
		return err
	}
	p.raw.Store(index, v)
	return nil
}

func (p *Pointer[T]) check(index int) error {
	start, end := p.Bounds()
	if index < start || index > end {
		return IndexError{Index: index, Start: start, End: end}
	}
	return nil
}

// SetCapacity reallocates to exactly count elements; there is no amortized
// growth. The reallocation targets the first element, not the cursor, so
// content at logical indices below the old count is preserved, added
// trailing elements are zero-valued, and the cursor returns to the first
// element. On allocator failure the old allocation and every bookkeeping
// field stay untouched. A released pointer stays null: the call is a no-op.
func (p *Pointer[T]) SetCapacity(count int) error {
	if !p.allocated {
		return nil
	}
	size, err := byteSize(count, p.raw.ElemSize())
	if err != nil {
		return err
	}
	blk, err := p.alloc.Realloc(p.block, size)
	if err != nil {
		return err
	}
	p.block = blk
	p.allocBytes = blk.Size()
	p.offset = 0
	p.raw = rawptr.New[T](blk.Base())
	return nil
}

// Release frees the allocation, zeroes the bookkeeping, and permanently
// invalidates the pointer. Safe to call more than once; the second call is
// a no-op, never a double free.
func (p *Pointer[T]) Release() {
	if !p.allocated {
		return
	}
	p.allocated = false
	p.alloc.Free(p.block)
	p.block = mem.Block{}
	p.allocBytes = 0
	p.offset = 0
	p.raw = rawptr.New[T](nil)
	runtime.SetFinalizer(p, nil)
}
