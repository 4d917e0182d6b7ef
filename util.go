package hexcodec

import (
	"encoding/binary"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"
)

var (
	BE = binary.BigEndian
	LE = binary.LittleEndian
	// Order is the default byte order of length prefixes in the binary stream.
	Order binary.ByteOrder = BE
)

// MaxBytesLen bounds a single length-prefixed sequence in the binary stream. It keeps a
// corrupt prefix from turning into a multi-gigabyte allocation.
const MaxBytesLen = 64 << 20

// checkLen validates a length prefix in either direction.
func checkLen[T constraints.Integer](n T) error {
	if n < 0 || uint64(n) > MaxBytesLen {
		return errors.Wrapf(ErrBytesTooLong, "length %d, limit %d", n, MaxBytesLen)
	}
	return nil
}

// CheckBufferNotZeros verifies that every byte of b is zero. Parsers use it on the bytes
// left over after a decode, where anything other than padding means the payload was
// not what the decoder expected.
func CheckBufferNotZeros(b []byte) error {
	for i, c := range b {
		if c != 0 {
			return errors.Wrapf(ErrTrailingData, "found non-zero byte 0x%02x at offset %d", c, i)
		}
	}
	return nil
}
