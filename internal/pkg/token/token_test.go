package token

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateLength(t *testing.T) {
	raw, err := Generate(DefaultLength)
	require.NoError(t, err)

	// hex doubles the byte length
	assert.Len(t, raw, DefaultLength*2)

	_, err = hex.DecodeString(raw)
	assert.NoError(t, err)
}

func TestGenerateUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		raw, err := Generate(DefaultLength)
		require.NoError(t, err)
		assert.False(t, seen[raw], "duplicate token generated")
		seen[raw] = true
	}
}
