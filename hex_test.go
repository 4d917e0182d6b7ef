package hexcodec

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeHex(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    []byte
		wantPos int // -2 means no error
		char    byte
	}{
		{name: "Lowercase", in: "c0ffee", want: []byte{0xc0, 0xff, 0xee}, wantPos: -2},
		{name: "Uppercase", in: "C0FFEE", want: []byte{0xc0, 0xff, 0xee}, wantPos: -2},
		{name: "MixedCase", in: "C0ffEE", want: []byte{0xc0, 0xff, 0xee}, wantPos: -2},
		{name: "OddLength", in: "c0ffe", wantPos: -1},
		{name: "InvalidChar", in: "c0ffeg", wantPos: 5, char: 'g'},
		{name: "InvalidFirstChar", in: "x0", wantPos: 0, char: 'x'},
		{name: "Whitespace", in: "c0 ffe", wantPos: 2, char: ' '},
		{name: "Prefix", in: "0xc0ff", wantPos: 1, char: 'x'},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := decodeHex(tc.in)
			if tc.wantPos == -2 {
				require.NoError(t, err)
				assert.Equal(t, tc.want, got)
				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedHex)
			var mhe *MalformedHexError
			require.True(t, errors.As(err, &mhe))
			assert.Equal(t, tc.wantPos, mhe.Pos)
			assert.Equal(t, tc.char, mhe.Char)
		})
	}
}

func TestDecodeHexEmpty(t *testing.T) {
	got, err := decodeHex("")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDecodeHexTo(t *testing.T) {
	t.Run("ExactLength", func(t *testing.T) {
		var dst [4]byte
		require.NoError(t, decodeHexTo(dst[:], "DEADbeef"))
		assert.Equal(t, [4]byte{0xde, 0xad, 0xbe, 0xef}, dst)
	})

	t.Run("TooShort", func(t *testing.T) {
		var dst [4]byte
		err := decodeHexTo(dst[:], "c0ffee")
		assert.ErrorIs(t, err, ErrLengthMismatch)
		assert.NotErrorIs(t, err, ErrMalformedHex)
		assert.Contains(t, err.Error(), "decodes to 3 bytes")
	})

	t.Run("TooLong", func(t *testing.T) {
		var dst [4]byte
		err := decodeHexTo(dst[:], "c0ffeec0ff")
		assert.ErrorIs(t, err, ErrLengthMismatch)
	})

	t.Run("InvalidCharBeatsLength", func(t *testing.T) {
		var dst [4]byte
		err := decodeHexTo(dst[:], "c0ffeg")
		var mhe *MalformedHexError
		require.True(t, errors.As(err, &mhe))
		assert.Equal(t, 5, mhe.Pos)
	})

	t.Run("OddLength", func(t *testing.T) {
		var dst [4]byte
		err := decodeHexTo(dst[:], "deadbee")
		var mhe *MalformedHexError
		require.True(t, errors.As(err, &mhe))
		assert.Equal(t, -1, mhe.Pos)
	})

	t.Run("InvalidCharRightLength", func(t *testing.T) {
		var dst [2]byte
		err := decodeHexTo(dst[:], "c0zz")
		var mhe *MalformedHexError
		require.True(t, errors.As(err, &mhe))
		assert.Equal(t, 2, mhe.Pos)
		assert.Equal(t, byte('z'), mhe.Char)
	})
}

func TestMalformedHexErrorMessage(t *testing.T) {
	assert.Equal(t, "hexcodec: malformed hex string: odd length", (&MalformedHexError{Pos: -1}).Error())
	assert.Equal(t,
		`hexcodec: malformed hex string: invalid character 'g' at position 5`,
		(&MalformedHexError{Pos: 5, Char: 'g'}).Error())
}

func TestEncodeHexIsLowercase(t *testing.T) {
	assert.Equal(t, "00abcdef", encodeHex([]byte{0x00, 0xab, 0xcd, 0xef}))
	assert.Equal(t, "", encodeHex(nil))

	dst := make([]byte, 4)
	assert.Equal(t, "ffee", encodeHexTo(dst, []byte{0xff, 0xee}))
}
