package hexcodec

import (
	"github.com/cockroachdb/errors"
	"google.golang.org/protobuf/encoding/protowire"
)

// ProtoSerializer appends one length-delimited field numbered Num to Buf in protobuf wire
// format. Protobuf is a binary format; strings, byte sequences and byte arrays all use
// wire type 2.
type ProtoSerializer struct {
	Num protowire.Number
	Buf []byte
}

var _ Serializer = (*ProtoSerializer)(nil)

func (*ProtoSerializer) IsHumanReadable() bool { return false }

func (s *ProtoSerializer) SerializeString(v string) error {
	s.Buf = protowire.AppendTag(s.Buf, s.Num, protowire.BytesType)
	s.Buf = protowire.AppendString(s.Buf, v)
	return nil
}

func (s *ProtoSerializer) SerializeBytes(b []byte) error {
	s.Buf = protowire.AppendTag(s.Buf, s.Num, protowire.BytesType)
	s.Buf = protowire.AppendBytes(s.Buf, b)
	return nil
}

func (s *ProtoSerializer) SerializeByteArray(b []byte) error { return s.SerializeBytes(b) }

// ProtoDeserializer consumes one length-delimited field numbered Num from the front of
// Buf, advancing Buf past it.
type ProtoDeserializer struct {
	Num protowire.Number
	Buf []byte
}

var _ Deserializer = (*ProtoDeserializer)(nil)

func (*ProtoDeserializer) IsHumanReadable() bool { return false }

func (d *ProtoDeserializer) DeserializeString() (string, error) {
	v, err := d.consume()
	return string(v), err
}

func (d *ProtoDeserializer) DeserializeBytes() ([]byte, error) {
	v, err := d.consume()
	if err != nil {
		return nil, err
	}
	return append([]byte{}, v...), nil
}

func (d *ProtoDeserializer) DeserializeByteArray(dst []byte) error {
	v, err := d.consume()
	if err != nil {
		return err
	}
	if len(v) != len(dst) {
		return lengthMismatch(len(v), len(dst))
	}
	copy(dst, v)
	return nil
}

func (d *ProtoDeserializer) consume() ([]byte, error) {
	num, typ, n := protowire.ConsumeTag(d.Buf)
	if n < 0 {
		return nil, protowire.ParseError(n)
	}
	if num != d.Num || typ != protowire.BytesType {
		return nil, errors.Wrapf(ErrUnexpectedKind, "expected field %d of wire type %d, found field %d of wire type %d",
			d.Num, protowire.BytesType, num, typ)
	}
	v, m := protowire.ConsumeBytes(d.Buf[n:])
	if m < 0 {
		return nil, protowire.ParseError(m)
	}
	d.Buf = d.Buf[n+m:]
	return v, nil
}
