// Package snapshot captures a bounded pointer's bookkeeping and contents as
// a detached value that can be serialized, inspected, or replayed into a
// fresh allocation.
package snapshot

import (
	"fmt"

	gojson "github.com/goccy/go-json"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/BranchAndLink/saferaw/bounded"
	"github.com/BranchAndLink/saferaw/elem"
)

// Snapshot is a point-in-time copy of a pointer, detached from its
// allocation. Address is informational: it identifies the allocation the
// snapshot came from and is never dereferenced.
type Snapshot[T elem.Value] struct {
	Count    int    `json:"count" msgpack:"count"`
	Offset   int    `json:"offset" msgpack:"offset"`
	Address  uint64 `json:"address" msgpack:"address"`
	Elements []T    `json:"elements" msgpack:"elements"`
}

// Capture reads through the bounded access path, so a released pointer
// produces an empty snapshot rather than an error.
func Capture[T elem.Value](p *bounded.Pointer[T]) Snapshot[T] {
	s := Snapshot[T]{
		Count:    p.Count(),
		Offset:   p.Offset(),
		Address:  uint64(p.Address()),
		Elements: make([]T, 0, p.Count()),
	}
	for v := range p.Values() {
		s.Elements = append(s.Elements, v)
	}
	return s
}

// Restore allocates a fresh pointer holding the snapshot's elements, cursor
// on the first element.
func Restore[T elem.Value](s Snapshot[T], opts ...bounded.Option) (*bounded.Pointer[T], error) {
	p, err := bounded.New[T](s.Count, opts...)
	if err != nil {
		return nil, fmt.Errorf("restore snapshot: %w", err)
	}
	for i, v := range s.Elements {
		if err := p.Set(i, v); err != nil {
			p.Release()
			return nil, fmt.Errorf("restore snapshot: element %d: %w", i, err)
		}
	}
	return p, nil
}

// JSON encodes the snapshot with goccy/go-json.
func (s Snapshot[T]) JSON() ([]byte, error) {
	return gojson.Marshal(s)
}

// FromJSON decodes a snapshot produced by JSON.
func FromJSON[T elem.Value](data []byte) (Snapshot[T], error) {
	var s Snapshot[T]
	if err := gojson.Unmarshal(data, &s); err != nil {
		return Snapshot[T]{}, fmt.Errorf("snapshot json decode: %w", err)
	}
	return s, nil
}

// Msgpack encodes the snapshot in MessagePack.
func (s Snapshot[T]) Msgpack() ([]byte, error) {
	return msgpack.Marshal(s)
}

// FromMsgpack decodes a snapshot produced by Msgpack.
func FromMsgpack[T elem.Value](data []byte) (Snapshot[T], error) {
	var s Snapshot[T]
	if err := msgpack.Unmarshal(data, &s); err != nil {
		return Snapshot[T]{}, fmt.Errorf("snapshot msgpack decode: %w", err)
	}
	return s, nil
}
