package hexcodec

// Hex serializes values whose byte length is only known at runtime.
//
// Hex is never instantiated with state; use its zero value:
//
//	err := hexcodec.Hex[ed25519.PublicKey, KeyHex]{}.Serialize(&pk, s)
type Hex[T any, C Conversion[T]] struct{}

// Serialize writes v as a lowercase hex string when s is human-readable, and as a framed
// byte sequence otherwise.
func (Hex[T, C]) Serialize(v *T, s Serializer) error {
	var c C
	b := c.ToBytes(v)
	if s.IsHumanReadable() {
		return s.SerializeString(encodeHex(b))
	}
	return s.SerializeBytes(b)
}

// Deserialize reads a value written by Serialize through the same kind of format.
func (Hex[T, C]) Deserialize(d Deserializer) (T, error) {
	var (
		c    C
		zero T
		b    []byte
		err  error
	)
	if d.IsHumanReadable() {
		var s string
		if s, err = d.DeserializeString(); err != nil {
			return zero, err
		}
		b, err = decodeHex(s)
	} else {
		b, err = d.DeserializeBytes()
	}
	if err != nil {
		return zero, err
	}
	v, err := c.FromBytes(b)
	if err != nil {
		return zero, &ConversionError{Err: err}
	}
	return v, nil
}
