package service

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"

	sessionDomain "github.com/allisson/parkledger/internal/session/domain"
)

// Envelope frame layout constants.
//
// The frame is the durable artifact persisted as token metadata on the ledger
// and returned base64-encoded by the mirror, so it must remain byte-compatible:
//
//	[0]            version (currently 0x01)
//	[1..13)        IV (12 bytes, fresh per encryption)
//	[13..len-16)   ciphertext (same length as the plaintext)
//	[len-16..len)  GCM authentication tag (16 bytes)
const (
	// EnvelopeVersion is the only frame version currently produced or accepted.
	EnvelopeVersion = 0x01

	ivSize  = 12
	tagSize = 16

	// minFrameSize is the smallest structurally valid frame: version, IV and
	// tag around an empty ciphertext. Real frames are larger because the
	// plaintext codec has its own minimum, but Open lets the codec decide that.
	minFrameSize = 1 + ivSize + tagSize
)

// AESGCMEnvelope implements Envelope using AES-256-GCM.
//
// The instance is stateless after construction and safe for concurrent use;
// each Seal draws an independent random IV. Reusing an IV under the same key
// breaks GCM entirely, which is why the IV is generated inside Seal and never
// accepted from callers.
type AESGCMEnvelope struct {
	aead cipher.AEAD
}

// NewAESGCMEnvelope creates an envelope bound to a 32-byte session key.
//
// The key is borrowed: the envelope derives its cipher state from it and does
// not retain or manage the key material's lifecycle.
func NewAESGCMEnvelope(key []byte) (*AESGCMEnvelope, error) {
	if len(key) != 32 {
		return nil, errors.New("key must be exactly 32 bytes")
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES cipher: %w", err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	return &AESGCMEnvelope{aead: aead}, nil
}

// Seal encodes the metadata and wraps it in a fresh encrypted frame.
//
// Returns a codec error when the metadata violates its layout limits (digest
// not 32 bytes, lot id over 255 bytes) before any encryption happens.
func (e *AESGCMEnvelope) Seal(meta sessionDomain.SessionMetadata) ([]byte, error) {
	plaintext, err := meta.Encode()
	if err != nil {
		return nil, err
	}

	iv := make([]byte, ivSize)
	if _, err := rand.Read(iv); err != nil {
		return nil, fmt.Errorf("failed to generate iv: %w", err)
	}

	frame := make([]byte, 0, 1+ivSize+len(plaintext)+tagSize)
	frame = append(frame, EnvelopeVersion)
	frame = append(frame, iv...)
	frame = e.aead.Seal(frame, iv, plaintext, nil)

	return frame, nil
}

// Open authenticates and decrypts a frame back into session metadata.
//
// ok is false when the frame is shorter than the minimum size, carries an
// unrecognized version byte, fails tag verification, or its plaintext does
// not parse as a codec record. A failed tag check yields no partial output.
func (e *AESGCMEnvelope) Open(frame []byte) (sessionDomain.SessionMetadata, bool) {
	if len(frame) < minFrameSize {
		return sessionDomain.SessionMetadata{}, false
	}
	if frame[0] != EnvelopeVersion {
		return sessionDomain.SessionMetadata{}, false
	}

	iv := frame[1 : 1+ivSize]
	plaintext, err := e.aead.Open(nil, iv, frame[1+ivSize:], nil)
	if err != nil {
		return sessionDomain.SessionMetadata{}, false
	}

	meta, err := sessionDomain.DecodeSessionMetadata(plaintext)
	if err != nil {
		return sessionDomain.SessionMetadata{}, false
	}

	return meta, true
}
