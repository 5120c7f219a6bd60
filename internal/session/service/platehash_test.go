package service

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePlate(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{input: "abc1234", want: "ABC1234"},
		{input: "ABC-1234", want: "ABC1234"},
		{input: "abc 1234", want: "ABC1234"},
		{input: "  aBc-12 34 ", want: "ABC1234"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizePlate(tc.input))
	}
}

func TestPlateHasher_Hash(t *testing.T) {
	sessionKey := make([]byte, 32)
	_, err := rand.Read(sessionKey)
	require.NoError(t, err)

	hasher, err := NewPlateHasher(sessionKey)
	require.NoError(t, err)

	t.Run("digest is 32 bytes and deterministic", func(t *testing.T) {
		first := hasher.Hash("ABC-1234")
		second := hasher.Hash("ABC-1234")

		assert.Len(t, first, 32)
		assert.Equal(t, first, second)
	})

	t.Run("equivalent plate spellings digest identically", func(t *testing.T) {
		assert.Equal(t, hasher.Hash("abc 1234"), hasher.Hash("ABC-1234"))
	})

	t.Run("different plates digest differently", func(t *testing.T) {
		assert.NotEqual(t, hasher.Hash("ABC-1234"), hasher.Hash("ABC-1235"))
	})

	t.Run("digest is keyed", func(t *testing.T) {
		otherKey := make([]byte, 32)
		_, err := rand.Read(otherKey)
		require.NoError(t, err)

		other, err := NewPlateHasher(otherKey)
		require.NoError(t, err)

		assert.NotEqual(t, hasher.Hash("ABC-1234"), other.Hash("ABC-1234"))
	})

	t.Run("digest key differs from the session key usage", func(t *testing.T) {
		// The derived digest key must not equal the raw session key.
		h := hasher.(*hmacPlateHasher)
		assert.NotEqual(t, sessionKey, h.digestKey)
	})
}
