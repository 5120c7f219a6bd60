// Package domain defines the session entities, the binary metadata codec and
// the domain errors for parking session tracking.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Status represents the lifecycle state of a parking session.
type Status string

const (
	// StatusActive indicates the vehicle is currently parked and the session
	// token exists on the ledger.
	StatusActive Status = "active"

	// StatusClosed indicates the session ended and its token was burned.
	StatusClosed Status = "closed"
)

// Session is the authoritative database record for one parking session.
//
// The ledger only ever sees the encrypted metadata envelope; this row is the
// canonical source of truth and the only place where the active-session-per-plate
// invariant is enforced (via a partial unique index, not by the ledger client).
type Session struct {
	ID            uuid.UUID
	PlateHash     []byte
	LotID         string
	TokenID       string
	Serial        int64
	TransactionID string
	EntryTime     time.Time
	ExitTime      *time.Time
	Status        Status
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewSession creates an active session for a hashed plate at the given lot.
func NewSession(plateHash []byte, lotID, tokenID string, entryTime time.Time) (*Session, error) {
	if len(plateHash) != PlateHashSize {
		return nil, ErrInvalidPlateHashSize
	}

	now := time.Now().UTC()
	return &Session{
		ID:        uuid.Must(uuid.NewV7()),
		PlateHash: plateHash,
		LotID:     lotID,
		TokenID:   tokenID,
		EntryTime: entryTime.UTC(),
		Status:    StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Metadata builds the plaintext record embedded in the session's token.
func (s *Session) Metadata() SessionMetadata {
	return SessionMetadata{
		PlateHash: s.PlateHash,
		LotID:     s.LotID,
		EntryTime: uint32(s.EntryTime.Unix()),
	}
}

// Close marks the session as ended at the given time.
func (s *Session) Close(exitTime time.Time) {
	exit := exitTime.UTC()
	s.ExitTime = &exit
	s.Status = StatusClosed
	s.UpdatedAt = time.Now().UTC()
}

// StatusSource identifies which backend answered a plate status lookup.
type StatusSource string

const (
	// SourceDatabase means the authoritative store answered.
	SourceDatabase StatusSource = "database"

	// SourceMirror means the answer came from the bounded mirror scan while
	// the primary store was unreachable; it may lag by minutes.
	SourceMirror StatusSource = "mirror"

	// SourceUnknown means neither backend produced a definitive answer.
	SourceUnknown StatusSource = "unknown"
)

// PlateStatus is the advisory answer to "is this plate currently parked".
type PlateStatus struct {
	Parked bool
	LotID  string
	Serial int64
	Source StatusSource
}
