package service

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sessionDomain "github.com/allisson/parkledger/internal/session/domain"
)

func TestParseSessionKey(t *testing.T) {
	rawKey := bytes.Repeat([]byte{0xab}, 32)
	hexKey := hex.EncodeToString(rawKey)
	base64Key := base64.StdEncoding.EncodeToString(rawKey)

	t.Run("hex and base64 forms of the same key are identical", func(t *testing.T) {
		fromHex, err := ParseSessionKey(hexKey)
		require.NoError(t, err)

		fromBase64, err := ParseSessionKey(base64Key)
		require.NoError(t, err)

		assert.Equal(t, rawKey, fromHex)
		assert.Equal(t, fromHex, fromBase64)
	})

	t.Run("uppercase hex", func(t *testing.T) {
		key, err := ParseSessionKey(strings.ToUpper(hexKey))
		require.NoError(t, err)
		assert.Equal(t, rawKey, key)
	})

	t.Run("surrounding whitespace is trimmed", func(t *testing.T) {
		key, err := ParseSessionKey("  " + hexKey + "\n")
		require.NoError(t, err)
		assert.Equal(t, rawKey, key)

		key, err = ParseSessionKey("\t" + base64Key + " ")
		require.NoError(t, err)
		assert.Equal(t, rawKey, key)
	})

	t.Run("rejected shapes report the input length", func(t *testing.T) {
		cases := []struct {
			name  string
			input string
		}{
			{name: "empty", input: ""},
			{name: "short hex", input: hexKey[:63]},
			{name: "long hex", input: hexKey + "0"},
			{name: "hex with invalid character", input: hexKey[:63] + "g"},
			{name: "unpadded base64", input: strings.TrimRight(base64Key, "=")},
			{name: "base64 of 16 bytes", input: base64.StdEncoding.EncodeToString(bytes.Repeat([]byte{0xfe}, 16))},
			{name: "base64 of 48 bytes", input: base64.StdEncoding.EncodeToString(bytes.Repeat([]byte{0xfe}, 48))},
			{name: "random text", input: "not-a-key"},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := ParseSessionKey(tc.input)
				require.Error(t, err)
				assert.ErrorIs(t, err, sessionDomain.ErrInvalidKeyEncoding)
				assert.Contains(t, err.Error(), "characters")
			})
		}
	})

	t.Run("parsed key works with the envelope", func(t *testing.T) {
		key, err := ParseSessionKey(hexKey)
		require.NoError(t, err)

		_, err = NewAESGCMEnvelope(key)
		assert.NoError(t, err)
	})
}
