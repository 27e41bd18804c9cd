package bounded

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is the sentinel behind every IndexError.
var ErrIndexOutOfRange = errors.New("index out of range")

// IndexError reports an index, or a cursor move expressed as a relative
// index, that falls outside the live range. Start and End are relative to
// the cursor at the time of the call.
type IndexError struct {
	Index int
	Start int
	End   int
}

func (e IndexError) Error() string {
	if e.Index < e.Start {
		return fmt.Sprintf("index %d below %d, valid range [%d , %d]",
			e.Index, e.Start, e.Start, e.End)
	}
	return fmt.Sprintf("index %d above %d, valid range [%d , %d]",
		e.Index, e.End, e.Start, e.End)
}

func (e IndexError) Unwrap() error { return ErrIndexOutOfRange }
