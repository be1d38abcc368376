package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidEntropyStrength(t *testing.T) {
	for _, bits := range []int{128, 160, 192, 224, 256} {
		assert.True(t, ValidEntropyStrength(bits), "strength %d should be valid", bits)
	}
	for _, bits := range []int{0, 64, 127, 129, 255, 288, -128} {
		assert.False(t, ValidEntropyStrength(bits), "strength %d should be invalid", bits)
	}
}

func TestParseDerivationPath_Valid(t *testing.T) {
	tests := []struct {
		input    string
		expected DerivationPath
	}{
		{
			input: "m/44'/175'/0'/0/0",
			expected: DerivationPath{
				{Index: 44, Hardened: true},
				{Index: 175, Hardened: true},
				{Index: 0, Hardened: true},
				{Index: 0, Hardened: false},
				{Index: 0, Hardened: false},
			},
		},
		{
			input:    "0/1",
			expected: DerivationPath{{Index: 0}, {Index: 1}},
		},
		{
			input:    "m/0h/2147483647",
			expected: DerivationPath{{Index: 0, Hardened: true}, {Index: 2147483647}},
		},
		{
			input:    "m/5H",
			expected: DerivationPath{{Index: 5, Hardened: true}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			path, err := ParseDerivationPath(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, path)
		})
	}
}

func TestParseDerivationPath_Invalid(t *testing.T) {
	inputs := []string{
		"",
		"m/",
		"m",
		"m//0",
		"m/44'/'",
		"m/abc",
		"m/-1",
		"m/2147483648", // >= 2^31
		"m/1.5",
		"m/44''",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := ParseDerivationPath(input)
			assert.Error(t, err)
		})
	}
}

func TestDerivationPath_String(t *testing.T) {
	path, err := ParseDerivationPath("m/44'/175'/0'/0/0")
	require.NoError(t, err)
	assert.Equal(t, "m/44'/175'/0'/0/0", path.String())

	// h and H markers normalize to '
	path, err = ParseDerivationPath("m/0h/1H/2")
	require.NoError(t, err)
	assert.Equal(t, "m/0'/1'/2", path.String())
}

func TestPathSegment_ChildIndex(t *testing.T) {
	assert.Equal(t, uint32(44), PathSegment{Index: 44}.ChildIndex())
	assert.Equal(t, uint32(0x80000000+44), PathSegment{Index: 44, Hardened: true}.ChildIndex())
}
