package bounded

import (
	"fmt"
	"strings"
	"text/tabwriter"
)

// String is a one-line summary of the pointer's position and extent.
func (p *Pointer[T]) String() string {
	if !p.allocated {
		return fmt.Sprintf("%s (released)", p.raw)
	}
	start, end := p.Bounds()
	return fmt.Sprintf("%s offset=%d range=[%d , %d]", p.raw, p.offset, start, end)
}

// Dump renders the bookkeeping fields as a small table. Human-readable
// output only; nothing parses it.
func (p *Pointer[T]) Dump() string {
	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 4, 2, ' ', 0)

	start, end := p.Bounds()
	fmt.Fprintf(w, "Allocated\t%v\n", p.allocated)
	fmt.Fprintf(w, "Address\t0x%X\n", p.Address())
	fmt.Fprintf(w, "First\t0x%X\n", p.First())
	fmt.Fprintf(w, "Last\t0x%X\n", p.Last())
	fmt.Fprintf(w, "Element\t%s\n", p.raw.Info())
	fmt.Fprintf(w, "Count\t%d\n", p.Count())
	fmt.Fprintf(w, "Bytes\t%d\n", p.allocBytes)
	fmt.Fprintf(w, "Offset\t%d\n", p.offset)
	fmt.Fprintf(w, "Range\t[%d , %d]\n", start, end)
	w.Flush()
	return sb.String()
}

// Elements lists every element with its address, cursor-relative index, and
// value.
func (p *Pointer[T]) Elements() string {
	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 4, 2, ' ', 0)

	fmt.Fprintln(w, "Address\tIndex\tValue")
	start, _ := p.Bounds()
	for i := 0; i < p.Count(); i++ {
		rel := start + i
		fmt.Fprintf(w, "0x%X\t%d\t%v\n", uintptr(p.raw.At(rel)), rel, p.raw.Load(rel))
	}
	w.Flush()
	return sb.String()
}
