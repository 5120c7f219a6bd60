package domain

import (
	"encoding/binary"
	"fmt"
)

// Binary layout constants for the on-ledger session metadata record.
//
// The encoded form is the durable artifact persisted as token metadata, so the
// layout is fixed and must remain byte-compatible:
//
//	[0..32)      plateHash raw bytes
//	[32]         lotID length L (uint8)
//	[33..33+L)   lotID UTF-8 bytes
//	[33+L..37+L) entryTime (uint32, big-endian)
const (
	// PlateHashSize is the exact length of a plate digest in bytes.
	PlateHashSize = 32

	// MaxLotIDBytes is the maximum encoded length of a lot identifier.
	MaxLotIDBytes = 255

	// MinEncodedSize is the size of an encoded record with an empty lot ID.
	MinEncodedSize = PlateHashSize + 1 + 4
)

// SessionMetadata is the plaintext session record embedded (encrypted) in each
// minted token.
//
// PlateHash is always a one-way digest, never the raw plate text; the raw plate
// must not enter this subsystem. EntryTime is unix seconds and fits in 32 bits.
type SessionMetadata struct {
	PlateHash []byte
	LotID     string
	EntryTime uint32
}

// Encode serializes the metadata into its fixed binary layout.
//
// Returns an error wrapping ErrInvalidPlateHashSize if the digest is not
// exactly 32 bytes, or ErrLotIDTooLong if the UTF-8 encoded lot ID exceeds
// 255 bytes.
func (m SessionMetadata) Encode() ([]byte, error) {
	if len(m.PlateHash) != PlateHashSize {
		return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidPlateHashSize, len(m.PlateHash))
	}

	lotID := []byte(m.LotID)
	if len(lotID) > MaxLotIDBytes {
		return nil, fmt.Errorf("%w: got %d bytes", ErrLotIDTooLong, len(lotID))
	}

	buf := make([]byte, 0, MinEncodedSize+len(lotID))
	buf = append(buf, m.PlateHash...)
	buf = append(buf, byte(len(lotID)))
	buf = append(buf, lotID...)
	buf = binary.BigEndian.AppendUint32(buf, m.EntryTime)

	return buf, nil
}

// DecodeSessionMetadata parses a buffer produced by Encode.
//
// It is only ever invoked on plaintext recovered from an authenticated
// decrypt, so it defends against truncation (to avoid panics) but not against
// arbitrary adversarial input.
func DecodeSessionMetadata(data []byte) (SessionMetadata, error) {
	if len(data) < MinEncodedSize {
		return SessionMetadata{}, fmt.Errorf("%w: got %d bytes", ErrTruncatedMetadata, len(data))
	}

	lotIDLen := int(data[PlateHashSize])
	if len(data) != MinEncodedSize+lotIDLen {
		return SessionMetadata{}, fmt.Errorf(
			"%w: expected %d bytes, got %d",
			ErrTruncatedMetadata,
			MinEncodedSize+lotIDLen,
			len(data),
		)
	}

	plateHash := make([]byte, PlateHashSize)
	copy(plateHash, data[:PlateHashSize])

	lotIDStart := PlateHashSize + 1
	lotID := string(data[lotIDStart : lotIDStart+lotIDLen])
	entryTime := binary.BigEndian.Uint32(data[lotIDStart+lotIDLen:])

	return SessionMetadata{
		PlateHash: plateHash,
		LotID:     lotID,
		EntryTime: entryTime,
	}, nil
}
