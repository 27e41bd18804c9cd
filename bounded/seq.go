package bounded

import "iter"

// Values returns a lazy, finite sequence over the block's logical elements,
// index 0 through count-1, read through Get. Each call starts over at the
// first element; no state carries across sequences. Releasing the pointer
// mid-iteration does not stop the sequence — remaining reads go through the
// null-pointer path and yield zero values, never an error.
func (p *Pointer[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		count := p.Count()
		for i := 0; i < count; i++ {
			start, _ := p.Bounds()
			v, err := p.Get(start + i)
			if err != nil {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// All is Values paired with the logical index of each element.
func (p *Pointer[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		count := p.Count()
		for i := 0; i < count; i++ {
			start, _ := p.Bounds()
			v, err := p.Get(start + i)
			if err != nil {
				return
			}
			if !yield(i, v) {
				return
			}
		}
	}
}
