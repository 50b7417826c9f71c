package codec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vikdevelop/bintrans/codec"
)

func TestClassify(t *testing.T) {
	assert.Equal(t, codec.Encoded, codec.Classify("hello"))
	assert.Equal(t, codec.Encoded, codec.Classify(""))
	assert.Equal(t, codec.Encoded, codec.Classify("000"))
	assert.Equal(t, codec.Decoded, codec.Classify("01101000"))
	assert.Equal(t, codec.Decoded, codec.Classify("1st"))
}

func TestTranslate_Auto(t *testing.T) {
	got, err := codec.Translate("hello", codec.ModeAuto)
	require.NoError(t, err)
	assert.Equal(t, codec.Encoded, got.Direction)
	assert.Equal(t, "0110100001100101011011000110110001101111", got.Output)

	got, err = codec.Translate("01101000", codec.ModeAuto)
	require.NoError(t, err)
	assert.Equal(t, codec.Decoded, got.Direction)
	assert.Equal(t, "h", got.Output)
}

// Plain text containing the digit 1 is routed to the decoder.
func TestTranslate_AutoMisclassifiesDigitOne(t *testing.T) {
	_, err := codec.Translate("1st", codec.ModeAuto)
	assert.ErrorIs(t, err, codec.ErrInvalidDigit)

	got, err := codec.Translate("1st", codec.ModeEncode)
	require.NoError(t, err)
	assert.Equal(t, "001100010111001101110100", got.Output)
}

func TestTranslate_ForcedModes(t *testing.T) {
	got, err := codec.Translate("00", codec.ModeEncode)
	require.NoError(t, err)
	assert.Equal(t, "0011000000110000", got.Output)

	got, err = codec.Translate("0110100001101001", codec.ModeDecode)
	require.NoError(t, err)
	assert.Equal(t, "hi", got.Output)

	_, err = codec.Translate("x", codec.Mode(42))
	assert.ErrorIs(t, err, codec.ErrUnknownMode)
}

func TestTranslate_StrictOptionReachesDecoder(t *testing.T) {
	_, err := codec.Translate("0110100", codec.ModeAuto, codec.WithStrictLength())
	assert.ErrorIs(t, err, codec.ErrInvalidGroupLength)
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    codec.Mode
		wantErr bool
	}{
		{in: "", want: codec.ModeAuto},
		{in: "auto", want: codec.ModeAuto},
		{in: "Encode", want: codec.ModeEncode},
		{in: " decode ", want: codec.ModeDecode},
		{in: "binary", want: codec.ModeDecode},
		{in: "sideways", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := codec.ParseMode(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, codec.ErrUnknownMode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, mustParse(t, got.String()))
		})
	}
}

func mustParse(t *testing.T, s string) codec.Mode {
	t.Helper()
	m, err := codec.ParseMode(s)
	require.NoError(t, err)
	return m
}
