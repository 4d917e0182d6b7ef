package hexcodec

import (
	"fmt"
	"reflect"

	"github.com/google/uuid"
)

// Conversion maps a domain type T to and from its byte representation.
//
// Implementations are used through their zero value and must not carry state. The two
// methods should round-trip: FromBytes(copy of ToBytes(&x)) yields a value equal to x.
type Conversion[T any] interface {
	// ToBytes returns a view of v's bytes. It may alias v.
	ToBytes(v *T) []byte
	// FromBytes rebuilds a value. b belongs to the callee.
	FromBytes(b []byte) (T, error)
}

// ConstConversion is a Conversion whose byte representation always has Size bytes.
//
// FromBytes receives exactly Size bytes in a scratch buffer that is reused after the
// call returns, so implementations must copy anything they keep.
type ConstConversion[T any] interface {
	Size() int
	ToBytes(v *T) []byte
	FromBytes(b []byte) (T, error)
}

// Bytes is the identity conversion for []byte.
type Bytes struct{}

func (Bytes) ToBytes(v *[]byte) []byte { return *v }

func (Bytes) FromBytes(b []byte) ([]byte, error) { return b, nil }

// Slice is the identity conversion for any named byte slice type.
type Slice[S ~[]byte] struct{}

func (Slice[S]) ToBytes(v *S) []byte { return []byte(*v) }

func (Slice[S]) FromBytes(b []byte) (S, error) { return S(b), nil }

// Array is the identity conversion for a byte array type such as [32]byte or a named
// type defined over one. Using it with any other type panics on first use.
type Array[A any] struct{}

func (Array[A]) Size() int {
	t := reflect.TypeFor[A]()
	if t.Kind() != reflect.Array || t.Elem().Kind() != reflect.Uint8 {
		panic(fmt.Sprintf("hexcodec: Array used with %v, which is not a byte array", t))
	}
	return t.Len()
}

func (Array[A]) ToBytes(v *A) []byte {
	return reflect.ValueOf(v).Elem().Bytes()
}

func (Array[A]) FromBytes(b []byte) (A, error) {
	var a A
	copy(reflect.ValueOf(&a).Elem().Bytes(), b)
	return a, nil
}

// UUID converts github.com/google/uuid values through their 16 raw bytes.
type UUID struct{}

func (UUID) Size() int { return 16 }

func (UUID) ToBytes(v *uuid.UUID) []byte { return v[:] }

func (UUID) FromBytes(b []byte) (uuid.UUID, error) { return uuid.FromBytes(b) }

var (
	_ Conversion[[]byte]         = Bytes{}
	_ ConstConversion[[4]byte]   = Array[[4]byte]{}
	_ ConstConversion[uuid.UUID] = UUID{}
	_ Conversion[uuid.UUID]      = UUID{}
)
