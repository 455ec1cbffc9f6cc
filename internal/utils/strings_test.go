package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomAlphanumeric(t *testing.T) {
	pattern := regexp.MustCompile(`^[A-Za-z0-9]{32}$`)
	seen := make(map[string]bool)

	for i := 0; i < 200; i++ {
		s, err := RandomAlphanumeric(32)
		require.NoError(t, err)
		assert.Regexp(t, pattern, s)
		assert.False(t, seen[s], "duplicate token generated")
		seen[s] = true
	}
}

func TestRandomDigits(t *testing.T) {
	code, err := RandomDigits(5)
	require.NoError(t, err)
	assert.Regexp(t, `^[0-9]{5}$`, code)
}

func TestGenerateRandomHex(t *testing.T) {
	s, err := GenerateRandomHex(9)
	require.NoError(t, err)
	assert.Len(t, s, 9)
	assert.Regexp(t, `^[0-9a-f]+$`, s)
}

func TestMaskPhoneNumber(t *testing.T) {
	assert.Equal(t, "*******6789", MaskPhoneNumber("09123456789"))
	assert.Equal(t, "123", MaskPhoneNumber("123"))
}
