package bounded

// move classifies a cursor step before any state changes.
type move int

const (
	// moveVerified lands inside the live range; apply it.
	moveVerified move = iota
	// moveBounce is a unit step exactly one element past an edge; the cursor
	// holds the edge instead of erroring. Loops that advance inside their
	// condition overshoot by exactly one before the test rejects them, and
	// that overshoot must not blow up.
	moveBounce
	// moveOut is any other step outside the range; reject, mutate nothing.
	moveOut
)

// classify decides how a delta applied at offset behaves against a block of
// count elements. Pure: it reads and writes no pointer state, so the whole
// decision table is testable on its own.
func classify(offset, delta, count int) move {
	next := offset + delta
	if next >= 0 && next < count {
		return moveVerified
	}
	if delta == 1 && next == count {
		return moveBounce
	}
	if delta == -1 && next == -1 {
		return moveBounce
	}
	return moveOut
}

// Advance moves the cursor forward delta elements. The offset and the
// address change together or not at all. A released pointer is null;
// arithmetic on it is dropped like any other write.
func (p *Pointer[T]) Advance(delta int) error {
	if !p.allocated {
		return nil
	}
	switch classify(p.offset, delta, p.Count()) {
	case moveVerified:
		p.offset += delta
		p.raw = p.raw.Move(delta)
		return nil
	case moveBounce:
		// A unit step only steps one past an edge when the cursor already
		// sits on it, so bouncing back means staying put. Repeating the
		// step bounces again: the clamp is idempotent.
		return nil
	default:
		start, end := p.Bounds()
		return IndexError{Index: delta, Start: start, End: end}
	}
}

// Retreat moves the cursor backward delta elements.
func (p *Pointer[T]) Retreat(delta int) error {
	return p.Advance(-delta)
}

// Inc is the unary forward step.
func (p *Pointer[T]) Inc() error { return p.Advance(1) }

// Dec is the unary backward step.
func (p *Pointer[T]) Dec() error { return p.Advance(-1) }
