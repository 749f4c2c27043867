package stego

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	l, err := ParseLevel("medium")
	require.NoError(t, err)
	assert.Equal(t, Medium, l)

	_, err = ParseLevel("extreme")
	require.Error(t, err)
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "low", Low.String())
	assert.Equal(t, "medium", Medium.String())
	assert.Equal(t, "high", High.String())
}

func TestZeroOverwritesBuffer(t *testing.T) {
	b := []byte{1, 2, 3, 4}
	zero(b)
	for _, v := range b {
		assert.Equal(t, byte(0), v)
	}
}
