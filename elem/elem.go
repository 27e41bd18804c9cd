package elem

import (
	"fmt"
	"reflect"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Value enumerates the element types that may live in a manually managed
// block: fixed-size and pointer-free, so a block never holds anything the
// collector would need to trace.
type Value interface {
	constraints.Integer | constraints.Float | ~bool
}

// Kind is a coarse tag describing how an element's bytes are interpreted.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindInt
	KindUint
	KindFloat
	KindBool
)

// String returns the human-readable name of the kind
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	default:
		return "invalid"
	}
}

// Info is the per-element metadata record a raw pointer carries: the byte
// size used for all address arithmetic plus the interpretation tag.
type Info struct {
	Size uintptr
	Kind Kind
}

func (i Info) String() string {
	return fmt.Sprintf("%s%d", i.Kind, i.Size*8)
}

// Of returns the metadata record for T. Size is fixed at compile time and
// never mutated afterward.
func Of[T Value]() Info {
	var z T
	return Info{Size: unsafe.Sizeof(z), Kind: kindOf(z)}
}

func kindOf(v any) Kind {
	switch reflect.TypeOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return KindInt
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32,
		reflect.Uint64, reflect.Uintptr:
		return KindUint
	case reflect.Float32, reflect.Float64:
		return KindFloat
	case reflect.Bool:
		return KindBool
	default:
		return KindInvalid
	}
}
