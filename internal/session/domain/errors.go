package domain

import (
	"github.com/allisson/parkledger/internal/errors"
)

// Session domain error definitions.
//
// These domain-specific errors wrap standard errors from internal/errors
// so handlers can map them to appropriate HTTP status codes.
var (
	// ErrInvalidPlateHashSize indicates a plate digest is not exactly 32 bytes.
	ErrInvalidPlateHashSize = errors.Wrap(errors.ErrInvalidInput, "plate hash must be 32 bytes")

	// ErrLotIDTooLong indicates a lot identifier exceeds 255 encoded bytes.
	ErrLotIDTooLong = errors.Wrap(errors.ErrInvalidInput, "lot id exceeds 255 bytes")

	// ErrTruncatedMetadata indicates an encoded metadata buffer is shorter than
	// its layout requires.
	ErrTruncatedMetadata = errors.Wrap(errors.ErrInvalidInput, "truncated metadata")

	// ErrInvalidKeyEncoding indicates the configured session key string is
	// neither 64 hex characters nor padded base64 of a 32-byte key.
	ErrInvalidKeyEncoding = errors.Wrap(errors.ErrInvalidInput, "invalid session key encoding")

	// ErrSessionNotFound indicates no active session exists for the plate.
	ErrSessionNotFound = errors.Wrap(errors.ErrNotFound, "session not found")

	// ErrSessionAlreadyActive indicates the plate already has an active session.
	// Uniqueness is enforced by the authoritative store, not the ledger client.
	ErrSessionAlreadyActive = errors.Wrap(errors.ErrConflict, "plate already has an active session")
)
