// Package hexcodec encodes byte-buffer types as lowercase hex strings in human-readable
// formats (JSON, YAML, TOML, text) and as raw bytes in binary formats (the package's own
// length-prefixed stream, CBOR, protobuf wire).
//
// Callers describe their type with a Conversion (or ConstConversion for fixed-size
// buffers) and either call the Hex / ConstHex adapters directly against a Serializer, or
// wrap the value in a Field / ConstField and let the surrounding encoder do the work.
package hexcodec

import (
	"encoding"
	"io"
)

// Sizer reports how many bytes a value takes in the binary stream, so callers can size
// a buffer up front.
type Sizer interface {
	// Size returns the size of the type in bytes when written to the binary stream.
	Size() int
}

// Marshaler defines the methods for writing a value into the binary stream.
type Marshaler interface {
	encoding.BinaryMarshaler // Method: MarshalBinary() ([]byte, error)
	io.WriterTo              // Method: WriteTo(writer io.Writer) (int64, error)

	// MarshalTo encodes the value into a pre-allocated buffer, returning
	// io.ErrShortWrite if the buffer is too small.
	MarshalTo(buf []byte) (int, error)
}

// Unmarshaler defines the methods for reading a value back from the binary stream.
type Unmarshaler interface {
	encoding.BinaryUnmarshaler // Method: UnmarshalBinary(data []byte) error
	io.ReaderFrom              // Method: ReadFrom(r io.Reader) (int64, error)
}

// Codec aggregates the binary stream interfaces. Field, ConstField and Record implement it.
type Codec interface {
	Sizer
	Marshaler
	Unmarshaler
}
