package attr

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeLength(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "plain integer", input: "240", want: 240},
		{name: "negative integer", input: "-120", want: -120},
		{name: "points rounded down", input: "12.4pt", want: 12},
		{name: "points rounded up", input: "12.6pt", want: 13},
		{name: "half rounds away from zero", input: "2.5", want: 3},
		{name: "negative half rounds away from zero", input: "-2.5", want: -3},
		{name: "centimetres", input: "1cm", want: 1},
		{name: "millimetres", input: "10mm", want: 10},
		{name: "inches", input: "1in", want: 1},
		{name: "picas", input: "3pc", want: 3},
		{name: "pi alias", input: "3pi", want: 3},
		{name: "em", input: "2em", want: 2},
		{name: "percent", input: "50%", want: 50},
		{name: "surrounding whitespace", input: "  720  ", want: 720},
		{name: "space before unit", input: "11.5 pt", want: 12},
		{name: "exponent", input: "1e3", want: 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeLength(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeLengthInvalid(t *testing.T) {
	tests := []string{
		"abcpt",
		"",
		"pt",
		"NaN",
		"Inf",
		"-Infinity",
		"12px",
		"1e400",
		"0x1p4",
		"-0X10",
		"0x10pt",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			_, err := DecodeLength(input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidNumber), "got %v", err)

			var attrErr *Error
			require.ErrorAs(t, err, &attrErr)
			assert.Equal(t, input, attrErr.Value)
		})
	}
}

func TestEncodeLength(t *testing.T) {
	assert.Equal(t, "240", EncodeLength(240))
	assert.Equal(t, "-15", EncodeLength(-15))
	assert.Equal(t, "0", EncodeLength(0))
}

func TestLengthRoundTrip(t *testing.T) {
	for _, v := range []int{0, 1, -1, 240, 1440, -720, math.MaxInt32, math.MinInt32} {
		got, err := DecodeLength(EncodeLength(v))
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestLengthIdempotentAfterFirstDecode(t *testing.T) {
	first, err := DecodeLength("17.8pt")
	require.NoError(t, err)

	second, err := DecodeLength(EncodeLength(first))
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, "18", EncodeLength(second))
}
