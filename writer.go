package hexcodec

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"io"
)

type writer interface {
	io.Writer
	io.StringWriter
	Flush() error
	Size() int
}

// Writer is the binary (non-human-readable) format: a buffered writer that tracks the
// first error that occurs. After an error, all subsequent writes become no-ops.
//
// As a Serializer it frames byte sequences and strings with a uint32 length prefix in the
// configured byte order, and writes fixed-size arrays bare.
type Writer struct {
	w     writer
	count int64 // bytes accepted by w
	err   error // latched; every later write is skipped
	depth int
	order binary.ByteOrder
}

var _ Serializer = (*Writer)(nil)

// NewWriterSize wraps w for the binary format, buffering it with at least size bytes.
// A *bufio.Writer smaller than size is refused with ErrAlreadyBuffered rather than
// wrapped a second time.
func NewWriterSize(w io.Writer, size int) (*Writer, error) {
	if w == nil {
		return nil, ErrNilIO
	}

	switch bw := w.(type) {
	// Nested field writers share the parent's buffer and leave flushing to it.
	case *Writer:
		if bw.w.Size() >= size {
			return &Writer{w: bw.w, depth: bw.depth + 1, order: bw.order}, nil
		}

	// The caller owns this buffer and its flush.
	case *bufio.Writer:
		if bw.Size() >= size {
			return &Writer{w: bw, depth: 1, order: Order}, nil
		}
		return nil, ErrAlreadyBuffered

	case *bytesBufferWriterAdapter:
		return &Writer{w: bw, depth: 1, order: Order}, nil

	// Already in memory.
	case *bytes.Buffer:
		return &Writer{w: &bytesBufferWriterAdapter{bw}, order: Order}, nil
	}

	return &Writer{w: bufio.NewWriterSize(w, size), order: Order}, nil
}

// NewWriter is NewWriterSize with bufio's default size.
func NewWriter(w io.Writer) (*Writer, error) {
	return NewWriterSize(w, 0)
}

// WithByteOrder sets the byte order of length prefixes and returns w for chaining.
func (w *Writer) WithByteOrder(order binary.ByteOrder) *Writer {
	w.order = order
	return w
}

// Write counts and forwards buf, latching the first failure.
func (w *Writer) Write(buf []byte) (int, error) {
	if buf == nil || w.err != nil {
		return 0, w.err
	}
	n, err := w.w.Write(buf)
	w.count += int64(n)
	w.setError(err)
	return n, w.err
}

// WriteString implements the io.StringWriter interface.
func (w *Writer) WriteString(str string) (int, error) {
	if str == "" || w.err != nil {
		return 0, w.err
	}
	n, err := w.w.WriteString(str)
	w.count += int64(n)
	w.setError(err)
	return n, w.err
}

func (w *Writer) Count() int64 { return w.count }
func (w *Writer) Err() error   { return w.err }

// setError keeps only the first error.
func (w *Writer) setError(err error) {
	if w.err == nil && err != nil {
		w.err = err
	}
}

// Result flushes (outermost writer only) and reports the byte count and latched error.
func (w *Writer) Result() (int64, error) {
	w.Flush()
	return w.count, w.err
}

// Flush pushes buffered bytes to the destination. Nested writers and writers over a
// caller-owned bufio.Writer do nothing here.
func (w *Writer) Flush() error {
	if w.depth > 0 || w.err != nil {
		return w.err
	}
	err := w.w.Flush()
	w.setError(err)
	return err
}

// WriteBytes writes buf as is. Empty input writes nothing.
func (w *Writer) WriteBytes(buf []byte) {
	if len(buf) == 0 || w.err != nil {
		return
	}
	_, _ = w.Write(buf)
}

func (w *Writer) WriteUint32(v uint32) {
	if w.err != nil {
		return
	}
	var buf [4]byte
	w.order.PutUint32(buf[:], v)
	_, _ = w.Write(buf[:])
}

// writeLen writes a length prefix, refusing lengths a Reader would reject.
func (w *Writer) writeLen(n int) {
	if w.err != nil {
		return
	}
	if err := checkLen(n); err != nil {
		w.setError(err)
		return
	}
	w.WriteUint32(uint32(n))
}

// --- Serializer ---

// IsHumanReadable reports false: the stream carries raw bytes.
func (w *Writer) IsHumanReadable() bool { return false }

// SerializeString writes a length-prefixed UTF-8 string.
func (w *Writer) SerializeString(s string) error {
	w.writeLen(len(s))
	_, _ = w.WriteString(s)
	return w.err
}

// SerializeBytes writes a length-prefixed byte sequence.
func (w *Writer) SerializeBytes(b []byte) error {
	w.writeLen(len(b))
	w.WriteBytes(b)
	return w.err
}

// SerializeByteArray writes b without a prefix.
func (w *Writer) SerializeByteArray(b []byte) error {
	w.WriteBytes(b)
	return w.err
}
