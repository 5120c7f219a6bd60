package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"gocloud.dev/secrets"

	sessionDomain "github.com/allisson/parkledger/internal/session/domain"

	// Register all KMS provider drivers
	_ "gocloud.dev/secrets/awskms"
	_ "gocloud.dev/secrets/azurekeyvault"
	_ "gocloud.dev/secrets/gcpkms"
	_ "gocloud.dev/secrets/hashivault"
	_ "gocloud.dev/secrets/localsecrets"
)

// LoadSessionKey resolves the configured session key material into a 32-byte key.
//
// With an empty keeperURI the key text is parsed directly (hex or base64, see
// ParseSessionKey). With a keeperURI the key text is treated as the
// base64-encoded KMS ciphertext of the key string: the keeper is opened via
// gocloud.dev/secrets (gcpkms://, awskms://, azurekeyvault://, hashivault://,
// base64key://), the ciphertext unwrapped, and the recovered text parsed.
// Temporary plaintext buffers are zeroed before returning.
func LoadSessionKey(ctx context.Context, keyText, keeperURI string) ([]byte, error) {
	if keeperURI == "" {
		return ParseSessionKey(keyText)
	}

	keeper, err := secrets.OpenKeeper(ctx, keeperURI)
	if err != nil {
		return nil, fmt.Errorf("failed to open KMS keeper: %w", err)
	}
	defer keeper.Close()

	wrapped, err := base64.StdEncoding.DecodeString(strings.TrimSpace(keyText))
	if err != nil {
		return nil, fmt.Errorf("%w: wrapped key is not valid base64", sessionDomain.ErrInvalidKeyEncoding)
	}

	plain, err := keeper.Decrypt(ctx, wrapped)
	if err != nil {
		return nil, fmt.Errorf("failed to unwrap session key: %w", err)
	}
	defer sessionDomain.Zero(plain)

	return ParseSessionKey(string(plain))
}
