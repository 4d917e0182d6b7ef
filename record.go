package hexcodec

import "io"

// Record lays a fixed sequence of fields out back to back in the binary stream, in the
// order given. It is how a struct with hex fields is written to the binary format:
//
//	rec := hexcodec.NewRecord(&v.Buffer, &v.ArrayBuffer)
//	data, err := rec.MarshalBinary()
type Record struct {
	fields []Codec
}

var _ Codec = (*Record)(nil)

// NewRecord creates a Record over the given fields. Decoding writes into them.
func NewRecord(fields ...Codec) *Record {
	return &Record{fields: fields}
}

// Len returns the number of fields.
func (r *Record) Len() int { return len(r.fields) }

// Size returns the total binary size of the fields.
func (r *Record) Size() int {
	total := 0
	for _, f := range r.fields {
		total += f.Size()
	}
	return total
}

// WriteTo writes every field to writer, stopping at the first error.
func (r *Record) WriteTo(writer io.Writer) (int64, error) {
	w, err := NewWriter(writer)
	if err != nil {
		return 0, err
	}

	var n int64
	for _, f := range r.fields {
		written, err := f.WriteTo(w)
		n += written
		if err != nil {
			return n, err
		}
	}
	_, err = w.Result()
	return n, err
}

// ReadFrom reads every field from reader. An end of stream after the first field means
// the record was cut short and is reported as io.ErrUnexpectedEOF.
func (r *Record) ReadFrom(reader io.Reader) (int64, error) {
	br, err := NewUnbufferedReader(reader)
	if err != nil {
		return 0, err
	}

	var n int64
	for i, f := range r.fields {
		read, err := f.ReadFrom(br)
		n += read
		if err != nil {
			if err == io.EOF && (i > 0 || read > 0) {
				err = io.ErrUnexpectedEOF
			}
			return n, err
		}
	}
	return n, nil
}

func (r *Record) MarshalBinary() ([]byte, error) {
	return MarshalBinaryGeneric(r)
}

func (r *Record) UnmarshalBinary(data []byte) error {
	return UnmarshalBinaryGeneric(r, data)
}

func (r *Record) MarshalTo(buf []byte) (int, error) {
	return MarshalToGeneric(r, buf)
}
