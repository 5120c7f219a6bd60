package commands

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"

	"gocloud.dev/secrets"

	sessionDomain "github.com/allisson/parkledger/internal/session/domain"
)

// RunCreateSessionKey generates a cryptographically secure 32-byte session key
// used for plate digests and metadata envelope encryption.
//
// Without a KMS key URI the key is printed in both accepted encodings (hex and
// base64) for direct use in SESSION_KEY. With a KMS key URI the key is wrapped
// with the keeper first and printed as the base64 ciphertext alongside the
// SESSION_KEY_URI needed to unwrap it at startup. Key material is zeroed from
// memory before returning.
func RunCreateSessionKey(ctx context.Context, w io.Writer, kmsKeyURI string) error {
	sessionKey := make([]byte, 32)
	if _, err := rand.Read(sessionKey); err != nil {
		return fmt.Errorf("failed to generate session key: %w", err)
	}
	defer sessionDomain.Zero(sessionKey)

	if kmsKeyURI == "" {
		fmt.Fprintln(w, "# Session Key Configuration")
		fmt.Fprintln(w, "# Copy one of these environment variables to your .env file or secrets manager")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "SESSION_KEY=%q\n", hex.EncodeToString(sessionKey))
		fmt.Fprintf(w, "# or: SESSION_KEY=%q\n", base64.StdEncoding.EncodeToString(sessionKey))
		return nil
	}

	keeper, err := secrets.OpenKeeper(ctx, kmsKeyURI)
	if err != nil {
		return fmt.Errorf("failed to open KMS keeper: %w", err)
	}
	defer func() {
		if closeErr := keeper.Close(); closeErr != nil {
			fmt.Fprintf(w, "# Warning: failed to close KMS keeper: %v\n", closeErr)
		}
	}()

	// The keeper wraps the hex encoding so the unwrapped text parses the same
	// way a plain SESSION_KEY does.
	ciphertext, err := keeper.Encrypt(ctx, []byte(hex.EncodeToString(sessionKey)))
	if err != nil {
		return fmt.Errorf("failed to encrypt session key with KMS: %w", err)
	}

	fmt.Fprintln(w, "# Session Key Configuration (KMS Mode)")
	fmt.Fprintln(w, "# Copy these environment variables to your .env file or secrets manager")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "SESSION_KEY=%q\n", base64.StdEncoding.EncodeToString(ciphertext))
	fmt.Fprintf(w, "SESSION_KEY_URI=%q\n", kmsKeyURI)

	return nil
}
