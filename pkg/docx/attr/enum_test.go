package attr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVMergeCodec(t *testing.T) {
	v, err := VMerge.Decode("restart")
	require.NoError(t, err)
	assert.Equal(t, VMergeRestart, v)

	v, err = VMerge.Decode("continue")
	require.NoError(t, err)
	assert.Equal(t, VMergeContinue, v)

	assert.Equal(t, "restart", VMerge.Encode(VMergeRestart))
	assert.Equal(t, "continue", VMergeContinue.String())
}

func TestEnumUnknownValue(t *testing.T) {
	_, err := VMerge.Decode("bogus")
	require.ErrorIs(t, err, ErrUnknownEnumValue)
	assert.Contains(t, err.Error(), "vMerge")
	assert.Contains(t, err.Error(), `"bogus"`)

	// Literals are case sensitive.
	_, err = Justification.Decode("Center")
	assert.ErrorIs(t, err, ErrUnknownEnumValue)
}

func TestEnumUnsetEncodesEmpty(t *testing.T) {
	assert.Equal(t, "", VMerge.Encode(VMergeUnset))
	assert.Equal(t, "", Break.Encode(BreakType(99)))
}

func TestEnumRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		literals []string
		decode   func(string) (string, error)
	}{
		{
			name:     "jc",
			literals: Justification.Literals(),
			decode: func(s string) (string, error) {
				v, err := Justification.Decode(s)
				return Justification.Encode(v), err
			},
		},
		{
			name:     "br",
			literals: Break.Literals(),
			decode: func(s string) (string, error) {
				v, err := Break.Decode(s)
				return Break.Encode(v), err
			},
		},
		{
			name:     "vAlign",
			literals: VerticalAlign.Literals(),
			decode: func(s string) (string, error) {
				v, err := VerticalAlign.Decode(s)
				return VerticalAlign.Encode(v), err
			},
		},
		{
			name:     "width type",
			literals: Width.Literals(),
			decode: func(s string) (string, error) {
				v, err := Width.Decode(s)
				return Width.Encode(v), err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NotEmpty(t, tt.literals)
			for _, lit := range tt.literals {
				got, err := tt.decode(lit)
				require.NoError(t, err)
				assert.Equal(t, lit, got)
			}
		})
	}
}

func TestEnumLiteralsSorted(t *testing.T) {
	assert.Equal(t, []string{"continue", "restart"}, VMerge.Literals())
	assert.Equal(t, "vMerge", VMerge.Name())
}
