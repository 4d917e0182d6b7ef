package hexcodec

import (
	"io"

	"gopkg.in/yaml.v3"
)

// Field holds a value that encodes through Hex[T, C]. Embed it in a struct in place of
// the raw value:
//
//	type Envelope struct {
//		Payload hexcodec.Field[[]byte, hexcodec.Bytes] `json:"payload" yaml:"payload"`
//	}
//
// JSON, YAML, TOML and other text encoders see a lowercase hex string; CBOR and the
// binary stream see the raw bytes.
type Field[T any, C Conversion[T]] struct {
	V T
}

var _ Codec = (*Field[[]byte, Bytes])(nil)

func (f Field[T, C]) serialize(s Serializer) error {
	return Hex[T, C]{}.Serialize(&f.V, s)
}

func (f *Field[T, C]) deserialize(d Deserializer) error {
	v, err := Hex[T, C]{}.Deserialize(d)
	if err != nil {
		return err
	}
	f.V = v
	return nil
}

// String returns the lowercase hex form.
func (f Field[T, C]) String() string {
	var c C
	return encodeHex(c.ToBytes(&f.V))
}

func (f Field[T, C]) MarshalJSON() ([]byte, error) { return marshalJSON(f.serialize) }

func (f *Field[T, C]) UnmarshalJSON(data []byte) error { return unmarshalJSON(data, f.deserialize) }

func (f Field[T, C]) MarshalText() ([]byte, error) { return marshalText(f.serialize) }

func (f *Field[T, C]) UnmarshalText(text []byte) error {
	return f.deserialize(&textDeserializer{text: text})
}

func (f Field[T, C]) MarshalYAML() (any, error) { return marshalYAML(f.serialize) }

func (f *Field[T, C]) UnmarshalYAML(node *yaml.Node) error {
	return f.deserialize(YAMLDeserializer{Node: node})
}

func (f Field[T, C]) MarshalCBOR() ([]byte, error) { return marshalCBOR(f.serialize) }

func (f *Field[T, C]) UnmarshalCBOR(data []byte) error {
	if isCBORNull(data) {
		return nil
	}
	return f.deserialize(CBORDeserializer{Data: data})
}

// Size returns the binary stream size: a 4-byte length prefix plus the bytes.
func (f Field[T, C]) Size() int {
	var c C
	return 4 + len(c.ToBytes(&f.V))
}

// WriteTo writes the length-prefixed bytes to w.
func (f Field[T, C]) WriteTo(w io.Writer) (int64, error) {
	bw, err := NewWriter(w)
	if err != nil {
		return 0, err
	}
	_ = f.serialize(bw)
	return bw.Result()
}

// ReadFrom reads length-prefixed bytes without consuming anything past them.
func (f *Field[T, C]) ReadFrom(r io.Reader) (int64, error) {
	br, err := NewUnbufferedReader(r)
	if err != nil {
		return 0, err
	}
	err = f.deserialize(br)
	return br.Count(), err
}

func (f Field[T, C]) MarshalBinary() ([]byte, error) { return MarshalBinaryGeneric(f) }

func (f *Field[T, C]) UnmarshalBinary(data []byte) error { return UnmarshalBinaryGeneric(f, data) }

func (f Field[T, C]) MarshalTo(p []byte) (int, error) { return MarshalToGeneric(f, p) }

// ConstField holds a value that encodes through ConstHex[T, C]. In the binary stream it
// occupies exactly C.Size() bytes with no prefix.
type ConstField[T any, C ConstConversion[T]] struct {
	V T
}

var _ Codec = (*ConstField[[4]byte, Array[[4]byte]])(nil)

func (f ConstField[T, C]) serialize(s Serializer) error {
	return ConstHex[T, C]{}.Serialize(&f.V, s)
}

func (f *ConstField[T, C]) deserialize(d Deserializer) error {
	v, err := ConstHex[T, C]{}.Deserialize(d)
	if err != nil {
		return err
	}
	f.V = v
	return nil
}

// String returns the lowercase hex form.
func (f ConstField[T, C]) String() string {
	var c C
	return encodeHex(c.ToBytes(&f.V))
}

func (f ConstField[T, C]) MarshalJSON() ([]byte, error) { return marshalJSON(f.serialize) }

func (f *ConstField[T, C]) UnmarshalJSON(data []byte) error {
	return unmarshalJSON(data, f.deserialize)
}

func (f ConstField[T, C]) MarshalText() ([]byte, error) { return marshalText(f.serialize) }

func (f *ConstField[T, C]) UnmarshalText(text []byte) error {
	return f.deserialize(&textDeserializer{text: text})
}

func (f ConstField[T, C]) MarshalYAML() (any, error) { return marshalYAML(f.serialize) }

func (f *ConstField[T, C]) UnmarshalYAML(node *yaml.Node) error {
	return f.deserialize(YAMLDeserializer{Node: node})
}

func (f ConstField[T, C]) MarshalCBOR() ([]byte, error) { return marshalCBOR(f.serialize) }

func (f *ConstField[T, C]) UnmarshalCBOR(data []byte) error {
	if isCBORNull(data) {
		return nil
	}
	return f.deserialize(CBORDeserializer{Data: data})
}

// Size returns the fixed length C.Size().
func (f ConstField[T, C]) Size() int { return constSize[T, C]() }

func (f ConstField[T, C]) WriteTo(w io.Writer) (int64, error) {
	bw, err := NewWriter(w)
	if err != nil {
		return 0, err
	}
	_ = f.serialize(bw)
	return bw.Result()
}

func (f *ConstField[T, C]) ReadFrom(r io.Reader) (int64, error) {
	br, err := NewUnbufferedReader(r)
	if err != nil {
		return 0, err
	}
	err = f.deserialize(br)
	return br.Count(), err
}

func (f ConstField[T, C]) MarshalBinary() ([]byte, error) { return MarshalBinaryGeneric(f) }

func (f *ConstField[T, C]) UnmarshalBinary(data []byte) error {
	return UnmarshalBinaryGeneric(f, data)
}

func (f ConstField[T, C]) MarshalTo(p []byte) (int, error) { return MarshalToGeneric(f, p) }
