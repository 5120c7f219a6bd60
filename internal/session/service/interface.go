// Package service provides the cryptographic services for session metadata:
// the AES-256-GCM envelope around the binary codec, session key parsing and
// loading, and the keyed plate digest.
package service

import (
	sessionDomain "github.com/allisson/parkledger/internal/session/domain"
)

// Envelope seals session metadata into the versioned on-ledger frame and
// opens frames back into metadata.
type Envelope interface {
	// Seal encodes the metadata and encrypts it into a
	// [version][iv][ciphertext][tag] frame with a fresh IV.
	Seal(meta sessionDomain.SessionMetadata) ([]byte, error)

	// Open decrypts a frame and decodes the recovered plaintext.
	//
	// It reports ok=false instead of an error: it runs once per record while
	// scanning a ledger that may hold foreign or key-rotated entries, so a
	// failed open is a cheap, non-fatal outcome, never a partial result.
	Open(frame []byte) (sessionDomain.SessionMetadata, bool)
}

// PlateHasher turns a raw plate number into its 32-byte one-way digest.
// The raw plate never travels further than this boundary.
type PlateHasher interface {
	Hash(plate string) []byte
}
