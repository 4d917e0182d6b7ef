package hexcodec

import (
	"bytes"
	"io"

	"github.com/cockroachdb/errors"
)

// MarshalBinaryGeneric provides an `encoding.BinaryMarshaler` implementation on top of
// Size and WriteTo.
func MarshalBinaryGeneric[T interface {
	Size() int
	io.WriterTo
}](v T) ([]byte, error) {
	expectedSize := v.Size()
	buf := bytes.NewBuffer(make([]byte, 0, expectedSize))
	n, err := v.WriteTo(buf)
	if err != nil {
		return nil, err
	}
	if n < int64(expectedSize) {
		return nil, errors.Wrapf(ErrTruncatedData, "expected at least %d bytes, but write %d", expectedSize, n)
	}
	return buf.Bytes(), nil
}

// UnmarshalBinaryGeneric provides an `encoding.BinaryUnmarshaler` implementation on top of
// ReadFrom and rejects non-zero trailing data.
func UnmarshalBinaryGeneric[T interface {
	io.ReaderFrom
	Size() int
}](v T, data []byte) error {
	n, err := v.ReadFrom(bytes.NewReader(data))
	if err != nil {
		return err
	}
	expectedSize := v.Size()

	if n < int64(expectedSize) {
		return errors.Wrapf(ErrTruncatedData, "expected at least %d bytes, but read %d", expectedSize, n)
	}

	// Zero padding after the value is tolerated.
	if len(data) > int(n) {
		return CheckBufferNotZeros(data[n:])
	}
	return nil
}

// MarshalToGeneric provides a MarshalTo implementation that writes into p without
// growing it.
func MarshalToGeneric[T interface {
	Size() int
	io.WriterTo
}](v T, p []byte) (int, error) {
	size := v.Size()
	if len(p) < size {
		return 0, io.ErrShortWrite
	}
	// p has room for size bytes, so the buffer never reallocates away from p.
	buf := bytes.NewBuffer(p[:0:size])
	n, err := v.WriteTo(buf)
	if err != nil {
		return int(n), err
	}
	if n < int64(size) {
		return int(n), io.ErrShortWrite
	}
	return int(n), nil
}
