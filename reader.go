package hexcodec

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"io"
)

// Reader is the read half of the binary format. It tracks the first error; subsequent
// reads become no-ops.
type Reader struct {
	r     io.Reader
	count int64 // bytes consumed from r
	err   error // latched
	order binary.ByteOrder
}

var _ Deserializer = (*Reader)(nil)

// NewReaderSize creates a new Reader that buffers r with the given size.
//
// Buffering reads ahead of what has been decoded. Use NewUnbufferedReader when r is
// shared with other consumers.
func NewReaderSize(r io.Reader, size int) (*Reader, error) {
	if r == nil {
		return nil, ErrNilIO
	}

	switch reader := r.(type) {
	// Reuse the underlying source if it's already a Reader.
	case *Reader:
		return &Reader{r: reader.r, order: reader.order}, nil

	// A caller-owned buffer is used only if it is large enough.
	case *bufio.Reader:
		if reader.Size() >= size {
			return &Reader{r: reader, order: Order}, nil
		}
		return nil, ErrAlreadyBuffered

	// In-memory sources need no buffer.
	case *bytes.Reader:
		return &Reader{r: reader, order: Order}, nil
	case *bytes.Buffer:
		return &Reader{r: reader, order: Order}, nil
	}

	if size < 16 {
		return nil, ErrSizeTooSmall
	}
	return &Reader{r: bufio.NewReaderSize(r, size), order: Order}, nil
}

// NewReader creates a new buffered Reader with bufio's default size.
func NewReader(r io.Reader) (*Reader, error) {
	return NewReaderSize(r, 4096)
}

// NewUnbufferedReader creates a Reader that never consumes more from r than it decodes.
func NewUnbufferedReader(r io.Reader) (*Reader, error) {
	if r == nil {
		return nil, ErrNilIO
	}
	if reader, ok := r.(*Reader); ok {
		return &Reader{r: reader.r, order: reader.order}, nil
	}
	return &Reader{r: r, order: Order}, nil
}

// WithByteOrder sets the byte order of length prefixes and returns r for chaining.
func (r *Reader) WithByteOrder(order binary.ByteOrder) *Reader {
	r.order = order
	return r
}

// Read counts and forwards to the source, latching the first failure.
func (r *Reader) Read(p []byte) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	n, err := r.r.Read(p)
	r.count += int64(n)
	r.setError(err)
	return n, r.err
}

func (r *Reader) Count() int64 { return r.count }
func (r *Reader) Err() error   { return r.err }
func (r *Reader) IsEOF() bool  { return r.err == io.EOF }

// setError keeps only the first error.
func (r *Reader) setError(err error) {
	if r.err == nil && err != nil {
		r.err = err
	}
}

// Result reports the byte count and latched error.
func (r *Reader) Result() (int64, error) {
	return r.count, r.err
}

// readChunk bounds the up-front allocation in ReadBytes. Longer bodies grow as data arrives.
const readChunk = 64 << 10

// ReadBytes returns the next n bytes in a new slice, or nil after an error.
func (r *Reader) ReadBytes(n int) []byte {
	if r.err != nil || n < 0 {
		return nil
	}
	if n <= readChunk {
		buf := make([]byte, n)
		r.ReadBytesTo(buf)
		if r.err != nil {
			return nil
		}
		return buf
	}

	var buf bytes.Buffer
	buf.Grow(readChunk)
	m, err := io.CopyN(&buf, r.r, int64(n))
	r.count += m
	if err == io.EOF && m > 0 {
		err = io.ErrUnexpectedEOF
	}
	r.setError(err)
	if r.err != nil {
		return nil
	}
	return buf.Bytes()
}

// ReadBytesTo fills dest completely.
func (r *Reader) ReadBytesTo(dest []byte) {
	if r.err != nil || len(dest) == 0 {
		return
	}
	n, err := io.ReadFull(r.r, dest)
	r.count += int64(n)
	r.setError(err)
}

func (r *Reader) ReadUint32(dest *uint32) {
	var buf [4]byte
	r.ReadBytesTo(buf[:])
	if r.err == nil {
		*dest = r.order.Uint32(buf[:])
	}
}

// readLen reads a length prefix and rejects lengths above MaxBytesLen before anything is
// allocated for them.
func (r *Reader) readLen() int {
	var n uint32
	r.ReadUint32(&n)
	if r.err != nil {
		return 0
	}
	if err := checkLen(n); err != nil {
		r.setError(err)
		return 0
	}
	return int(n)
}

// --- Deserializer ---

// IsHumanReadable reports false: the stream carries raw bytes.
func (r *Reader) IsHumanReadable() bool { return false }

// DeserializeString reads a length-prefixed string.
func (r *Reader) DeserializeString() (string, error) {
	b, err := r.DeserializeBytes()
	return string(b), err
}

// DeserializeBytes reads a length-prefixed byte sequence into a new slice.
func (r *Reader) DeserializeBytes() ([]byte, error) {
	n := r.readLen()
	if r.err != nil {
		return nil, r.err
	}
	b := r.ReadBytes(n)
	if r.err == io.EOF {
		// The prefix promised a body.
		r.err = io.ErrUnexpectedEOF
	}
	return b, r.err
}

// DeserializeByteArray reads exactly len(dst) bytes.
func (r *Reader) DeserializeByteArray(dst []byte) error {
	r.ReadBytesTo(dst)
	return r.err
}
