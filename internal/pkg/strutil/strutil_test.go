//go:build unit
// +build unit

package strutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDecimal(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
		ok       bool
	}{
		{"3.5", 3.5, true},
		{"3", 3, true},
		{" 4.0 ", 4, true},
		{"-1.25", -1.25, true},
		{"+2", 2, true},
		{".5", 0.5, true},
		{"3.", 3, true},
		{"1e1", 10, true},
		{"", 0, false},
		{"Alice", 0, false},
		{"A1", 0, false},
		{"3.5a", 0, false},
		{"NaN", 0, false},
		{"Inf", 0, false},
		{"0x1p-2", 0, false},
		{"1_000", 0, false},
		{"1e400", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			value, ok := ParseDecimal(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, value)
		})
	}
}

func TestConvertToInt(t *testing.T) {
	value, err := ConvertToInt("42")
	require.NoError(t, err)
	assert.Equal(t, 42, value)

	_, err = ConvertToInt("forty-two")
	assert.Error(t, err)
}

func TestValueOrEmptyAndPtrOrNil(t *testing.T) {
	assert.Equal(t, "", ValueOrEmpty(nil))

	name := "Alice"
	assert.Equal(t, "Alice", ValueOrEmpty(&name))

	assert.Nil(t, PtrOrNil("   "))
	require.NotNil(t, PtrOrNil("Bob"))
	assert.Equal(t, "Bob", *PtrOrNil("Bob"))
}
