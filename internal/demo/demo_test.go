package demo

import (
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/oy3o/hexcodec"
)

func fixture() *TestData {
	d := &TestData{OtherData: "payload"}
	d.Buffer.V = []byte{0xc0, 0xff, 0xee}
	d.ArrayBuffer.V = [4]byte{0xde, 0xad, 0xbe, 0xef}
	return d
}

func equalData(t *testing.T, want, got *TestData) {
	t.Helper()
	assert.Equal(t, want.Buffer.V, got.Buffer.V)
	assert.Equal(t, want.ArrayBuffer.V, got.ArrayBuffer.V)
	assert.Equal(t, want.OtherData, got.OtherData)
}

type DemoTestSuite struct {
	suite.Suite
}

func (s *DemoTestSuite) TestRoundTripAllFormats() {
	for _, format := range Formats {
		s.T().Run(string(format), func(t *testing.T) {
			data, err := Encode(fixture(), format)
			require.NoError(t, err)

			got, err := Decode(data, format)
			require.NoError(t, err)
			equalData(t, fixture(), got)
		})
	}
}

func (s *DemoTestSuite) TestReverseAllFormats() {
	want := fixture()
	want.Reverse()

	for _, format := range Formats {
		s.T().Run(string(format), func(t *testing.T) {
			data, err := Encode(fixture(), format)
			require.NoError(t, err)

			reversed, err := Reverse(data, format)
			require.NoError(t, err)

			got, err := Decode(reversed, format)
			require.NoError(t, err)
			equalData(t, want, got)
		})
	}
}

func (s *DemoTestSuite) TestJSONShape() {
	data, err := Encode(fixture(), JSON)
	s.Require().NoError(err)
	s.Equal(`{"buffer":"c0ffee","array_buffer":"deadbeef","other_data":"payload"}`, string(data))

	reversed, err := Reverse(data, JSON)
	s.Require().NoError(err)
	s.Equal(`{"buffer":"eeffc0","array_buffer":"efbeadde","other_data":"payload"}`, string(reversed))
}

func (s *DemoTestSuite) TestBinaryShape() {
	data, err := Encode(fixture(), Binary)
	s.Require().NoError(err)

	want := []byte{
		0x00, 0x00, 0x00, 0x03, 0xc0, 0xff, 0xee,
		0xde, 0xad, 0xbe, 0xef,
		0x00, 0x00, 0x00, 0x07, 'p', 'a', 'y', 'l', 'o', 'a', 'd',
	}
	if diff := cmp.Diff(want, data); diff != "" {
		s.Failf("binary layout mismatch", "(-want +got):\n%s", diff)
	}
}

func (s *DemoTestSuite) TestDecodeErrors() {
	s.T().Run("MalformedHex", func(t *testing.T) {
		_, err := Decode([]byte(`{"buffer":"c0ffe"}`), YAML)
		assert.ErrorIs(t, err, hexcodec.ErrMalformedHex)
	})

	s.T().Run("ArrayLength", func(t *testing.T) {
		_, err := Decode([]byte("array_buffer: c0ffee\n"), YAML)
		assert.ErrorIs(t, err, hexcodec.ErrLengthMismatch)
	})

	s.T().Run("TruncatedBinary", func(t *testing.T) {
		data, err := Encode(fixture(), Binary)
		require.NoError(t, err)
		_, err = Decode(data[:11], Binary)
		assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	})

	s.T().Run("TrailingBinary", func(t *testing.T) {
		data, err := Encode(fixture(), Binary)
		require.NoError(t, err)

		_, err = Decode(append(data, 0x00, 0x00), Binary)
		assert.NoError(t, err, "zero padding is tolerated")

		_, err = Decode(append(data, 0x01), Binary)
		assert.ErrorIs(t, err, hexcodec.ErrTrailingData)

		_, err = Reverse(append(data, 0x01), Binary)
		assert.ErrorIs(t, err, hexcodec.ErrTrailingData)
	})

	s.T().Run("UnknownFormat", func(t *testing.T) {
		_, err := Decode(nil, Format("ini"))
		assert.ErrorIs(t, err, ErrUnknownFormat)
	})
}

func (s *DemoTestSuite) TestParseFormat() {
	f, err := ParseFormat("CBOR")
	s.Require().NoError(err)
	s.Equal(CBOR, f)

	_, err = ParseFormat("xml")
	s.ErrorIs(err, ErrUnknownFormat)
}

func TestDemo(t *testing.T) {
	suite.Run(t, new(DemoTestSuite))
}
