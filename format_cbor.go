package hexcodec

import (
	"github.com/fxamacker/cbor/v2"
)

// cborEnc uses Core Deterministic Encoding, so equal values always produce equal bytes.
var cborEnc cbor.EncMode

func init() {
	var err error
	if cborEnc, err = cbor.CoreDetEncOptions().EncMode(); err != nil {
		panic(err)
	}
}

// CBORSerializer encodes a single CBOR data item into Out. CBOR is a binary format:
// byte sequences become CBOR byte strings, whose header carries the length.
type CBORSerializer struct {
	Out []byte
}

var _ Serializer = (*CBORSerializer)(nil)

func (*CBORSerializer) IsHumanReadable() bool { return false }

func (s *CBORSerializer) SerializeString(v string) (err error) {
	s.Out, err = cborEnc.Marshal(v)
	return err
}

func (s *CBORSerializer) SerializeBytes(b []byte) (err error) {
	s.Out, err = cborEnc.Marshal(b)
	return err
}

// SerializeByteArray writes a byte string as well; CBOR has no unframed bytes.
func (s *CBORSerializer) SerializeByteArray(b []byte) error { return s.SerializeBytes(b) }

// CBORDeserializer decodes a single CBOR data item.
type CBORDeserializer struct {
	Data []byte
}

var _ Deserializer = CBORDeserializer{}

func (CBORDeserializer) IsHumanReadable() bool { return false }

func (d CBORDeserializer) DeserializeString() (string, error) {
	var s string
	err := cbor.Unmarshal(d.Data, &s)
	return s, err
}

func (d CBORDeserializer) DeserializeBytes() ([]byte, error) {
	var b []byte
	if err := cbor.Unmarshal(d.Data, &b); err != nil {
		return nil, err
	}
	if b == nil {
		b = []byte{}
	}
	return b, nil
}

// DeserializeByteArray rejects byte strings whose length differs from len(dst).
func (d CBORDeserializer) DeserializeByteArray(dst []byte) error {
	b, err := d.DeserializeBytes()
	if err != nil {
		return err
	}
	if len(b) != len(dst) {
		return lengthMismatch(len(b), len(dst))
	}
	copy(dst, b)
	return nil
}

func marshalCBOR(serialize func(Serializer) error) ([]byte, error) {
	var s CBORSerializer
	if err := serialize(&s); err != nil {
		return nil, err
	}
	return s.Out, nil
}

// isCBORNull reports whether data is the CBOR null or undefined simple value.
func isCBORNull(data []byte) bool {
	return len(data) == 1 && (data[0] == 0xf6 || data[0] == 0xf7)
}
