package mem

// LimitAllocator enforces a total-bytes budget over an inner allocator.
// Requests past the budget fail with AllocError instead of growing the heap,
// which makes allocator-failure paths testable without exhausting memory.
type LimitAllocator struct {
	inner Allocator
	limit int
	used  int
}

func NewLimitAllocator(inner Allocator, limit int) *LimitAllocator {
	if inner == nil {
		inner = Default
	}
	return &LimitAllocator{inner: inner, limit: limit}
}

func (a *LimitAllocator) Alloc(size int) (Block, error) {
	if size > 0 && a.used+size > a.limit {
		return Block{}, AllocError{Bytes: size, Cause: ErrOutOfMemory}
	}
	b, err := a.inner.Alloc(size)
	if err == nil {
		a.used += b.Size()
	}
	return b, err
}

// Realloc requires room for the old and new blocks at once, since the old
// block must stay valid until the copy is done.
func (a *LimitAllocator) Realloc(b Block, size int) (Block, error) {
	nb, err := a.Alloc(size)
	if err != nil {
		return Block{}, err
	}
	copy(nb.Bytes(), b.Bytes())
	a.Free(b)
	return nb, nil
}

func (a *LimitAllocator) Free(b Block) {
	a.used -= b.Size()
	a.inner.Free(b)
}

// Used returns the bytes currently counted against the budget.
func (a *LimitAllocator) Used() int { return a.used }
