package hexcodec

// Serializer is the write half of a serialization format as seen by the hex adapters.
//
// IsHumanReadable is asked on every call and decides the representation: a hex string
// for human-readable formats, raw bytes otherwise. How the chosen primitive is framed on
// the wire belongs to the implementation.
type Serializer interface {
	IsHumanReadable() bool

	// SerializeString writes a text value.
	SerializeString(s string) error
	// SerializeBytes writes a byte sequence whose length the reader does not know in
	// advance, so the format frames it (usually with a length prefix).
	SerializeBytes(b []byte) error
	// SerializeByteArray writes a byte sequence whose length both sides agree on.
	// Formats without a fixed-size primitive may treat it like SerializeBytes.
	SerializeByteArray(b []byte) error
}

// Deserializer is the read half of a serialization format.
type Deserializer interface {
	IsHumanReadable() bool

	DeserializeString() (string, error)
	// DeserializeBytes returns a buffer owned by the caller.
	DeserializeBytes() ([]byte, error)
	// DeserializeByteArray fills dst completely. Formats that carry an explicit length
	// must reject a value whose length differs from len(dst).
	DeserializeByteArray(dst []byte) error
}
