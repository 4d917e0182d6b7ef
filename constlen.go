package hexcodec

import (
	"fmt"
	"reflect"

	"github.com/puzpuzpuz/xsync/v4"
)

// sizeCache holds the validated Size of every ConstConversion type seen so far, so the
// check runs once per type instead of on every call.
var sizeCache = xsync.NewMap[reflect.Type, int]()

// constSize returns C's fixed length. A conversion reporting a non-positive size is a
// programming error and panics on first use.
func constSize[T any, C ConstConversion[T]]() int {
	key := reflect.TypeFor[C]()
	if size, ok := sizeCache.Load(key); ok {
		return size
	}

	var c C
	size := c.Size()
	if size <= 0 {
		panic(fmt.Sprintf("hexcodec: %v reports invalid size %d", key, size))
	}
	sizeCache.Store(key, size)
	return size
}

// ConstHex serializes values whose byte length is fixed by their ConstConversion.
//
// The binary representation carries no length prefix, and decoding never allocates a
// per-call buffer: bytes are staged in a pooled scratch buffer before FromBytes runs.
type ConstHex[T any, C ConstConversion[T]] struct{}

// Size returns the fixed byte length of the representation.
func (ConstHex[T, C]) Size() int { return constSize[T, C]() }

// Serialize writes v as a lowercase hex string of 2*Size characters when s is
// human-readable, and as exactly Size raw bytes otherwise.
func (ConstHex[T, C]) Serialize(v *T, s Serializer) error {
	var c C
	size := constSize[T, C]()
	b := c.ToBytes(v)
	if len(b) != size {
		panic(fmt.Sprintf("hexcodec: %v.ToBytes returned %d bytes, want %d", reflect.TypeFor[C](), len(b), size))
	}
	if !s.IsHumanReadable() {
		return s.SerializeByteArray(b)
	}

	p := getScratch(2 * size)
	defer putScratch(p)
	return s.SerializeString(encodeHexTo(*p, b))
}

// Deserialize reads a value written by Serialize through the same kind of format.
// A hex string decoding to a byte count other than Size fails with ErrLengthMismatch.
func (ConstHex[T, C]) Deserialize(d Deserializer) (T, error) {
	var (
		c    C
		zero T
	)
	size := constSize[T, C]()
	p := getScratch(size)
	defer putScratch(p)
	buf := *p

	if d.IsHumanReadable() {
		s, err := d.DeserializeString()
		if err != nil {
			return zero, err
		}
		if err := decodeHexTo(buf, s); err != nil {
			return zero, err
		}
	} else if err := d.DeserializeByteArray(buf); err != nil {
		return zero, err
	}

	v, err := c.FromBytes(buf)
	if err != nil {
		return zero, &ConversionError{Err: err}
	}
	return v, nil
}
