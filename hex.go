package hexcodec

import (
	"encoding/hex"
	"strings"

	"github.com/cockroachdb/errors"
)

// encodeHex returns the lowercase hex form of b.
func encodeHex(b []byte) string {
	return hex.EncodeToString(b)
}

// encodeHexTo encodes b into dst, which must hold at least 2*len(b) bytes.
func encodeHexTo(dst, b []byte) string {
	n := hex.Encode(dst, b)
	return string(dst[:n])
}

// decodeHex decodes s into a freshly allocated buffer.
func decodeHex(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, hexError(s, err)
	}
	return b, nil
}

// decodeHexTo decodes s into dst, which must be exactly hex.DecodedLen(len(s)) bytes long
// for the decode to succeed. Character errors take precedence over length errors.
func decodeHexTo(dst []byte, s string) error {
	if len(s)%2 != 0 {
		return hexError(s, hex.ErrLength)
	}
	if got := len(s) / 2; got != len(dst) {
		if pos := invalidHexIndex(s); pos >= 0 {
			return &MalformedHexError{Pos: pos, Char: s[pos]}
		}
		return errors.Wrapf(ErrLengthMismatch, "hex string decodes to %d bytes, expected hex-encoded byte array of length %d", got, len(dst))
	}
	if _, err := hex.Decode(dst, []byte(s)); err != nil {
		return hexError(s, err)
	}
	return nil
}

// hexError maps an encoding/hex error onto MalformedHexError. encoding/hex reports the
// bad byte but not its offset, so the offset is recovered from s.
func hexError(s string, err error) error {
	var invalid hex.InvalidByteError
	switch {
	case errors.As(err, &invalid):
		pos := strings.IndexByte(s, byte(invalid))
		return &MalformedHexError{Pos: pos, Char: byte(invalid)}
	case errors.Is(err, hex.ErrLength):
		if pos := invalidHexIndex(s); pos >= 0 {
			return &MalformedHexError{Pos: pos, Char: s[pos]}
		}
		return &MalformedHexError{Pos: -1}
	default:
		return errors.Wrap(ErrMalformedHex, err.Error())
	}
}

func invalidHexIndex(s string) int {
	return strings.IndexFunc(s, func(r rune) bool {
		return !('0' <= r && r <= '9' || 'a' <= r && r <= 'f' || 'A' <= r && r <= 'F')
	})
}
