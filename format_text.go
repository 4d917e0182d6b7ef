package hexcodec

import "encoding/base64"

// textSerializer backs MarshalText, which TOML, XML and YAML map-key encoders use. Text
// is human-readable, so the byte paths only exist to complete the interface.
type textSerializer struct {
	out []byte
}

func (*textSerializer) IsHumanReadable() bool { return true }

func (s *textSerializer) SerializeString(v string) error {
	s.out = append(s.out[:0], v...)
	return nil
}

func (s *textSerializer) SerializeBytes(b []byte) error {
	s.out = base64.StdEncoding.AppendEncode(s.out[:0], b)
	return nil
}

func (s *textSerializer) SerializeByteArray(b []byte) error { return s.SerializeBytes(b) }

type textDeserializer struct {
	text []byte
}

func (*textDeserializer) IsHumanReadable() bool { return true }

func (d *textDeserializer) DeserializeString() (string, error) { return string(d.text), nil }

func (d *textDeserializer) DeserializeBytes() ([]byte, error) {
	return base64.StdEncoding.AppendDecode([]byte{}, d.text)
}

func (d *textDeserializer) DeserializeByteArray(dst []byte) error {
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

func marshalText(serialize func(Serializer) error) ([]byte, error) {
	var s textSerializer
	if err := serialize(&s); err != nil {
		return nil, err
	}
	return s.out, nil
}
