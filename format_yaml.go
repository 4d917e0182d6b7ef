package hexcodec

import (
	"encoding/base64"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// yamlSerializer collects the value a yaml.Marshaler hands back to the encoder.
type yamlSerializer struct {
	value any
}

func (*yamlSerializer) IsHumanReadable() bool { return true }

func (s *yamlSerializer) SerializeString(v string) error {
	// The encoder quotes strings such as "1234" or "1e10" that would otherwise resolve
	// to numbers.
	s.value = v
	return nil
}

func (s *yamlSerializer) SerializeBytes(b []byte) error {
	s.value = &yaml.Node{
		Kind:  yaml.ScalarNode,
		Tag:   "!!binary",
		Value: base64.StdEncoding.EncodeToString(b),
	}
	return nil
}

func (s *yamlSerializer) SerializeByteArray(b []byte) error { return s.SerializeBytes(b) }

// YAMLDeserializer reads a single yaml.v3 node.
type YAMLDeserializer struct {
	Node *yaml.Node
}

var _ Deserializer = YAMLDeserializer{}

func (YAMLDeserializer) IsHumanReadable() bool { return true }

// DeserializeString accepts any scalar, so an unquoted all-digit hex string that YAML
// resolves as a number is still read as text.
func (d YAMLDeserializer) DeserializeString() (string, error) {
	if d.Node.Kind != yaml.ScalarNode {
		return "", errors.Wrapf(ErrUnexpectedKind, "expected YAML scalar at line %d", d.Node.Line)
	}
	return d.Node.Value, nil
}

func (d YAMLDeserializer) DeserializeBytes() ([]byte, error) {
	if d.Node.Kind != yaml.ScalarNode {
		return nil, errors.Wrapf(ErrUnexpectedKind, "expected YAML !!binary scalar at line %d", d.Node.Line)
	}
	b, err := base64.StdEncoding.AppendDecode([]byte{}, []byte(d.Node.Value))
	if err != nil {
		return nil, errors.Wrapf(err, "line %d", d.Node.Line)
	}
	return b, nil
}

func (d YAMLDeserializer) DeserializeByteArray(dst []byte) error {
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

func marshalYAML(serialize func(Serializer) error) (any, error) {
	var s yamlSerializer
	if err := serialize(&s); err != nil {
		return nil, err
	}
	return s.value, nil
}
