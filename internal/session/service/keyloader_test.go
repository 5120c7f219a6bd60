package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/secrets"

	sessionDomain "github.com/allisson/parkledger/internal/session/domain"
)

func TestLoadSessionKey(t *testing.T) {
	ctx := context.Background()
	rawKey := bytes.Repeat([]byte{0x11}, 32)
	hexKey := hex.EncodeToString(rawKey)

	t.Run("without keeper the key text is parsed directly", func(t *testing.T) {
		key, err := LoadSessionKey(ctx, hexKey, "")
		require.NoError(t, err)
		assert.Equal(t, rawKey, key)
	})

	t.Run("without keeper invalid text fails", func(t *testing.T) {
		_, err := LoadSessionKey(ctx, "short", "")
		assert.ErrorIs(t, err, sessionDomain.ErrInvalidKeyEncoding)
	})

	t.Run("with keeper the wrapped key is unwrapped then parsed", func(t *testing.T) {
		// base64key is the local driver; it lets the unwrap path run offline.
		keeperURI := "base64key://smGbjm71Nxd1Ig5FS0wj9SlbzAIrnolCz9bQQ6uAhl4="

		keeper, err := secrets.OpenKeeper(ctx, keeperURI)
		require.NoError(t, err)
		defer keeper.Close()

		wrapped, err := keeper.Encrypt(ctx, []byte(hexKey))
		require.NoError(t, err)

		key, err := LoadSessionKey(ctx, base64.StdEncoding.EncodeToString(wrapped), keeperURI)
		require.NoError(t, err)
		assert.Equal(t, rawKey, key)
	})

	t.Run("with keeper non-base64 ciphertext fails", func(t *testing.T) {
		keeperURI := "base64key://smGbjm71Nxd1Ig5FS0wj9SlbzAIrnolCz9bQQ6uAhl4="

		_, err := LoadSessionKey(ctx, "%%%not-base64%%%", keeperURI)
		assert.ErrorIs(t, err, sessionDomain.ErrInvalidKeyEncoding)
	})

	t.Run("with unknown keeper scheme fails", func(t *testing.T) {
		_, err := LoadSessionKey(ctx, hexKey, "bogus://nope")
		assert.Error(t, err)
	})
}
