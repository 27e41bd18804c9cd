package mem

import (
	"errors"
	"fmt"
	"unsafe"
)

// ErrOutOfMemory signals that the allocator could not satisfy a request.
var ErrOutOfMemory = errors.New("out of memory")

// ErrBadSize signals a request for zero, negative, or overflowing byte counts.
var ErrBadSize = errors.New("invalid allocation size")

// AllocError reports a failed allocate or reallocate request.
type AllocError struct {
	Bytes int
	Cause error
}

func (e AllocError) Error() string {
	return fmt.Sprintf("alloc %d bytes: %v", e.Bytes, e.cause())
}

func (e AllocError) Unwrap() error { return e.cause() }

func (e AllocError) cause() error {
	if e.Cause != nil {
		return e.Cause
	}
	return ErrOutOfMemory
}

// Block is one contiguous allocation. The backing slice reference keeps the
// block reachable, and the Go heap does not move objects, so Base stays
// stable for the block's whole lifetime.
type Block struct {
	buf []byte
}

// BlockOf wraps an existing slice as a block. Intended for tests and for
// allocator implementations.
func BlockOf(buf []byte) Block { return Block{buf: buf} }

// Base returns the address of the block's first byte, nil for the zero Block.
func (b Block) Base() unsafe.Pointer {
	if len(b.buf) == 0 {
		return nil
	}
	return unsafe.Pointer(&b.buf[0])
}

func (b Block) Size() int { return len(b.buf) }

func (b Block) Bytes() []byte { return b.buf }

func (b Block) IsNil() bool { return b.buf == nil }

// Allocator hands out and reclaims blocks. Implementations are not safe for
// concurrent use unless stated otherwise.
type Allocator interface {
	// Alloc returns a zeroed block of exactly size bytes.
	Alloc(size int) (Block, error)
	// Realloc returns a block of exactly size bytes holding a copy of b's
	// prefix. The old block is reclaimed only after the new one exists, so a
	// failed Realloc leaves b fully valid.
	Realloc(b Block, size int) (Block, error)
	// Free reclaims the block. Freeing the zero Block is a no-op.
	Free(b Block)
}

// HeapAllocator delegates to the Go heap. Free scrubs the block so stale
// reads through a leaked address fail loudly rather than returning old data.
type HeapAllocator struct{}

func (HeapAllocator) Alloc(size int) (Block, error) {
	if size <= 0 {
		return Block{}, AllocError{Bytes: size, Cause: ErrBadSize}
	}
	return Block{buf: make([]byte, size)}, nil
}

func (a HeapAllocator) Realloc(b Block, size int) (Block, error) {
	nb, err := a.Alloc(size)
	if err != nil {
		return Block{}, err
	}
	copy(nb.buf, b.buf)
	a.Free(b)
	return nb, nil
}

func (HeapAllocator) Free(b Block) {
	clear(b.buf)
}

// Default is the allocator used when a caller does not pick one.
var Default Allocator = HeapAllocator{}
