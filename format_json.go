package hexcodec

import (
	"bytes"
	"io"
	"strconv"

	"github.com/cockroachdb/errors"
	jsoniter "github.com/json-iterator/go"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// JSONSerializer writes to a jsoniter stream. JSON is human-readable.
type JSONSerializer struct {
	Stream *jsoniter.Stream
}

var _ Serializer = JSONSerializer{}

func (JSONSerializer) IsHumanReadable() bool { return true }

func (s JSONSerializer) SerializeString(v string) error {
	s.Stream.WriteString(v)
	return s.Stream.Error
}

// SerializeBytes writes b the way encoding/json does: as a base64 string.
func (s JSONSerializer) SerializeBytes(b []byte) error {
	s.Stream.WriteVal(b)
	return s.Stream.Error
}

func (s JSONSerializer) SerializeByteArray(b []byte) error { return s.SerializeBytes(b) }

// JSONDeserializer reads the next value from a jsoniter iterator.
type JSONDeserializer struct {
	Iter *jsoniter.Iterator
}

var _ Deserializer = JSONDeserializer{}

func (JSONDeserializer) IsHumanReadable() bool { return true }

func (d JSONDeserializer) DeserializeString() (string, error) {
	if next := d.Iter.WhatIsNext(); next != jsoniter.StringValue {
		if err := d.err(); err != nil {
			return "", err
		}
		return "", errors.Wrapf(ErrUnexpectedKind, "expected JSON string, found %s", jsonKind(next))
	}
	s := d.Iter.ReadString()
	return s, d.err()
}

func (d JSONDeserializer) DeserializeBytes() ([]byte, error) {
	if next := d.Iter.WhatIsNext(); next != jsoniter.StringValue {
		return nil, errors.Wrapf(ErrUnexpectedKind, "expected base64 JSON string, found %s", jsonKind(next))
	}
	var b []byte
	d.Iter.ReadVal(&b)
	if err := d.err(); err != nil {
		return nil, err
	}
	if b == nil {
		b = []byte{}
	}
	return b, nil
}

func (d JSONDeserializer) DeserializeByteArray(dst []byte) error {
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

func (d JSONDeserializer) err() error {
	if d.Iter.Error != nil && d.Iter.Error != io.EOF {
		return d.Iter.Error
	}
	return nil
}

func jsonKind(t jsoniter.ValueType) string {
	switch t {
	case jsoniter.StringValue:
		return "string"
	case jsoniter.NumberValue:
		return "number"
	case jsoniter.NilValue:
		return "null"
	case jsoniter.BoolValue:
		return "bool"
	case jsoniter.ArrayValue:
		return "array"
	case jsoniter.ObjectValue:
		return "object"
	default:
		return "invalid value #" + strconv.Itoa(int(t))
	}
}

func marshalJSON(serialize func(Serializer) error) ([]byte, error) {
	stream := jsonAPI.BorrowStream(nil)
	defer jsonAPI.ReturnStream(stream)
	if err := serialize(JSONSerializer{Stream: stream}); err != nil {
		return nil, err
	}
	return append([]byte(nil), stream.Buffer()...), nil
}

func unmarshalJSON(data []byte, deserialize func(Deserializer) error) error {
	// JSON null leaves the value untouched, as encoding/json does for its own types.
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	iter := jsonAPI.BorrowIterator(data)
	defer jsonAPI.ReturnIterator(iter)
	return deserialize(JSONDeserializer{Iter: iter})
}
