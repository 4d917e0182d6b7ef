// Package demo holds the round-trip fixture behind cmd/hexreverse: a record with one
// dynamic-length and one fixed-length hex field that can be decoded, reversed and
// re-encoded in every supported format.
package demo

import (
	"bytes"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/fxamacker/cbor/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/pelletier/go-toml/v2"
	"github.com/samber/lo/mutable"
	"gopkg.in/yaml.v3"

	"github.com/oy3o/hexcodec"
)

// Format names a serialization format understood by Encode and Decode.
type Format string

const (
	JSON   Format = "json"
	YAML   Format = "yaml"
	TOML   Format = "toml"
	CBOR   Format = "cbor"
	Binary Format = "binary"
)

// ErrUnknownFormat is returned for a Format outside the constants above.
var ErrUnknownFormat = errors.New("demo: unknown format")

// Formats lists every supported format.
var Formats = []Format{JSON, YAML, TOML, CBOR, Binary}

// ParseFormat matches s case-insensitively against Formats.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(s))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", errors.Wrapf(ErrUnknownFormat, "%q", s)
}

// TestData is the fixture record.
type TestData struct {
	Buffer      hexcodec.Field[[]byte, hexcodec.Bytes]                `json:"buffer" yaml:"buffer" toml:"buffer" cbor:"buffer"`
	ArrayBuffer hexcodec.ConstField[[4]byte, hexcodec.Array[[4]byte]] `json:"array_buffer" yaml:"array_buffer" toml:"array_buffer" cbor:"array_buffer"`
	OtherData   string                                                `json:"other_data" yaml:"other_data" toml:"other_data" cbor:"other_data"`
}

// Reverse reverses the byte order of both buffers in place.
func (d *TestData) Reverse() {
	mutable.Reverse(d.Buffer.V)
	mutable.Reverse(d.ArrayBuffer.V[:])
}

// WriteTo writes the binary layout: buffer (length-prefixed), array_buffer (4 bare
// bytes), other_data (length-prefixed).
func (d *TestData) WriteTo(w io.Writer) (int64, error) {
	bw, err := hexcodec.NewWriter(w)
	if err != nil {
		return 0, err
	}
	n, err := hexcodec.NewRecord(&d.Buffer, &d.ArrayBuffer).WriteTo(bw)
	if err != nil {
		return n, err
	}
	_ = bw.SerializeString(d.OtherData)
	m, err := bw.Result()
	return n + m, err
}

// ReadFrom reads the layout written by WriteTo.
func (d *TestData) ReadFrom(r io.Reader) (int64, error) {
	br, err := hexcodec.NewUnbufferedReader(r)
	if err != nil {
		return 0, err
	}
	n, err := hexcodec.NewRecord(&d.Buffer, &d.ArrayBuffer).ReadFrom(br)
	if err != nil {
		return n, err
	}
	d.OtherData, err = br.DeserializeString()
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return n + br.Count(), err
}

// Encode serializes d in the given format.
func Encode(d *TestData, format Format) ([]byte, error) {
	switch format {
	case JSON:
		return jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(d)
	case YAML:
		return yaml.Marshal(d)
	case TOML:
		return toml.Marshal(d)
	case CBOR:
		return cbor.Marshal(d)
	case Binary:
		var buf bytes.Buffer
		if _, err := d.WriteTo(&buf); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
	return nil, errors.Wrapf(ErrUnknownFormat, "%q", format)
}

// Decode parses data in the given format. Binary input may be followed only by zero
// padding.
func Decode(data []byte, format Format) (*TestData, error) {
	var (
		d   TestData
		err error
	)
	switch format {
	case JSON:
		err = jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(data, &d)
	case YAML:
		err = yaml.Unmarshal(data, &d)
	case TOML:
		err = toml.Unmarshal(data, &d)
	case CBOR:
		err = cbor.Unmarshal(data, &d)
	case Binary:
		var n int64
		if n, err = d.ReadFrom(bytes.NewReader(data)); err == nil && n < int64(len(data)) {
			err = hexcodec.CheckBufferNotZeros(data[n:])
		}
	default:
		err = errors.Wrapf(ErrUnknownFormat, "%q", format)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", format)
	}
	return &d, nil
}

// Reverse decodes data, reverses both buffers and re-encodes in the same format.
func Reverse(data []byte, format Format) ([]byte, error) {
	d, err := Decode(data, format)
	if err != nil {
		return nil, err
	}
	d.Reverse()
	return Encode(d, format)
}
