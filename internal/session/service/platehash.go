package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"io"
	"strings"

	"golang.org/x/crypto/hkdf"
)

// hmacPlateHasher implements PlateHasher using HMAC-SHA256 with a digest key
// derived from the session key via HKDF-SHA256.
//
// Deriving a dedicated digest key separates encryption key usage from digest
// key usage; the info string is versioned so a future algorithm change can
// derive a different key from the same material. Because the digest is keyed,
// on-ledger records are unlinkable to plates without the key.
type hmacPlateHasher struct {
	digestKey []byte
}

// NewPlateHasher derives the plate digest key from the 32-byte session key.
func NewPlateHasher(sessionKey []byte) (PlateHasher, error) {
	info := []byte("plate-digest-v1")
	kdf := hkdf.New(sha256.New, sessionKey, nil, info)

	digestKey := make([]byte, 32)
	if _, err := io.ReadFull(kdf, digestKey); err != nil {
		return nil, err
	}

	return &hmacPlateHasher{digestKey: digestKey}, nil
}

// Hash returns the 32-byte digest of the normalized plate number.
func (h *hmacPlateHasher) Hash(plate string) []byte {
	mac := hmac.New(sha256.New, h.digestKey)
	mac.Write([]byte(NormalizePlate(plate)))
	return mac.Sum(nil)
}

// NormalizePlate canonicalizes a plate number before hashing: uppercase with
// spaces and hyphens removed, so "abc 1234" and "ABC-1234" digest identically.
func NormalizePlate(plate string) string {
	normalized := strings.ToUpper(strings.TrimSpace(plate))
	normalized = strings.ReplaceAll(normalized, " ", "")
	normalized = strings.ReplaceAll(normalized, "-", "")
	return normalized
}
