package service

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"

	sessionDomain "github.com/allisson/parkledger/internal/session/domain"
)

// Accepted session key shapes. The two are mutually exclusive by length and
// alphabet, so there is never ambiguity over which branch applies.
var (
	hexKeyPattern    = regexp.MustCompile(`^[0-9a-fA-F]{64}$`)
	base64KeyPattern = regexp.MustCompile(`^(?:[A-Za-z0-9+/]{43}=|[A-Za-z0-9+/]{42}==)$`)
)

// ParseSessionKey turns a configured key string into a 32-byte symmetric key.
//
// Surrounding whitespace is trimmed, then the input must be either 64 hex
// characters or standard padded base64 (43 characters plus "=", or 42 plus
// "==") decoding to exactly 32 bytes. Any other shape fails wrapping
// ErrInvalidKeyEncoding with the observed input length for diagnosability.
func ParseSessionKey(text string) ([]byte, error) {
	trimmed := strings.TrimSpace(text)

	if hexKeyPattern.MatchString(trimmed) {
		key, err := hex.DecodeString(trimmed)
		if err != nil {
			return nil, fmt.Errorf("%w: got %d characters", sessionDomain.ErrInvalidKeyEncoding, len(trimmed))
		}
		return key, nil
	}

	if base64KeyPattern.MatchString(trimmed) {
		key, err := base64.StdEncoding.DecodeString(trimmed)
		if err != nil || len(key) != 32 {
			return nil, fmt.Errorf("%w: got %d characters", sessionDomain.ErrInvalidKeyEncoding, len(trimmed))
		}
		return key, nil
	}

	return nil, fmt.Errorf("%w: got %d characters", sessionDomain.ErrInvalidKeyEncoding, len(trimmed))
}
