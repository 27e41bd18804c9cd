package mem

import (
	"math/bits"
	"sync"
)

var blockSizeClass = [...]int{16, 32, 64, 128, 256, 512, 1024, 2048, 4096, 8192, 16384, 32768}

// sizeClassIndex maps a byte count to the smallest class that fits it,
// or -1 when the request falls outside the classed range.
func sizeClassIndex(n int) int {
	if n <= 0 || n > 32768 {
		return -1
	}
	idx := bits.Len(uint(n))
	if idx < 5 {
		return 0
	}
	if n&(n-1) == 0 {
		return idx - 5
	}
	return idx - 4
}

// PooledAllocator recycles class-sized buffers through sync.Pool and hands
// out exact-size views over them. Requests past the largest class fall back
// to plain heap blocks. Blocks from the pool arrive zeroed; recycled buffers
// are scrubbed on Free so a double-free after reuse corrupts live data —
// which is exactly the hazard callers guard against with idempotent release.
type PooledAllocator struct {
	pools [len(blockSizeClass)]sync.Pool
}

func NewPooledAllocator() *PooledAllocator {
	var a PooledAllocator
	for i, sz := range blockSizeClass {
		size := sz
		a.pools[i].New = func() any {
			b := make([]byte, size)
			return &b
		}
	}
	return &a
}

func (a *PooledAllocator) Alloc(size int) (Block, error) {
	if size <= 0 {
		return Block{}, AllocError{Bytes: size, Cause: ErrBadSize}
	}
	idx := sizeClassIndex(size)
	if idx < 0 {
		return Block{buf: make([]byte, size)}, nil
	}
	bufPtr := a.pools[idx].Get().(*[]byte)
	return Block{buf: (*bufPtr)[:size]}, nil
}

func (a *PooledAllocator) Realloc(b Block, size int) (Block, error) {
	nb, err := a.Alloc(size)
	if err != nil {
		return Block{}, err
	}
	copy(nb.buf, b.buf)
	a.Free(b)
	return nb, nil
}

// Free scrubs the buffer and returns it to its pool if its capacity matches
// a size class.
func (a *PooledAllocator) Free(b Block) {
	if b.buf == nil {
		return
	}
	buf := b.buf[:cap(b.buf)]
	clear(buf)
	c := cap(buf)
	if c&(c-1) != 0 || c < 16 || c > 32768 {
		return // not a class-sized buffer
	}
	idx := bits.Len(uint(c)) - 5
	if blockSizeClass[idx] == c {
		a.pools[idx].Put(&buf)
	}
}
