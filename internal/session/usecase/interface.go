// Package usecase defines the interfaces and implementations for parking
// session use cases. Use cases orchestrate the authoritative store, the token
// ledger client and the mirror fallback to implement the session lifecycle.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	ledgerDomain "github.com/allisson/parkledger/internal/ledger/domain"
	mirrorDomain "github.com/allisson/parkledger/internal/mirror/domain"
	sessionDomain "github.com/allisson/parkledger/internal/session/domain"
)

// SessionRepository defines the interface for session persistence operations.
type SessionRepository interface {
	Create(ctx context.Context, session *sessionDomain.Session) error
	GetActiveByPlateHash(ctx context.Context, plateHash []byte) (*sessionDomain.Session, error)
	Update(ctx context.Context, session *sessionDomain.Session) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, offset, limit int) ([]*sessionDomain.Session, error)
}

// TokenMinter defines the interface for opening and closing on-ledger session
// records.
type TokenMinter interface {
	Mint(ctx context.Context, tokenID string, meta sessionDomain.SessionMetadata) (*ledgerDomain.MintResult, error)
	Burn(ctx context.Context, tokenID string, serial int64) error
}

// MirrorScanner defines the interface for the bounded mirror scan used as a
// read fallback when the authoritative store is unreachable.
type MirrorScanner interface {
	FindActiveByPlateHash(ctx context.Context, tokenID string, plateHash []byte) (*mirrorDomain.ActiveRecord, bool)
}

// PlateHasher defines the interface for deriving the fixed-size plate digest.
type PlateHasher interface {
	Hash(plate string) []byte
}

// StatusCache defines the interface for the short-lived plate status cache.
// Implementations must treat every failure as a miss.
type StatusCache interface {
	Get(ctx context.Context, plateHash []byte) (*sessionDomain.PlateStatus, bool)
	Set(ctx context.Context, plateHash []byte, status *sessionDomain.PlateStatus)
	Invalidate(ctx context.Context, plateHash []byte)
}

// NopStatusCache is a StatusCache that never stores anything, used when the
// cache is disabled.
type NopStatusCache struct{}

// Get always misses.
func (NopStatusCache) Get(ctx context.Context, plateHash []byte) (*sessionDomain.PlateStatus, bool) {
	return nil, false
}

// Set does nothing.
func (NopStatusCache) Set(ctx context.Context, plateHash []byte, status *sessionDomain.PlateStatus) {
}

// Invalidate does nothing.
func (NopStatusCache) Invalidate(ctx context.Context, plateHash []byte) {}

// SessionUseCase defines the interface for parking session business logic.
type SessionUseCase interface {
	// Park opens a session for the plate: mints the session token with the
	// encrypted metadata envelope and persists the authoritative row.
	Park(ctx context.Context, plate, lotID string, entryTime time.Time) (*sessionDomain.Session, error)
	// Leave closes the active session for the plate: burns the token serial
	// and marks the row closed. Burn failures propagate and leave the
	// session active.
	Leave(ctx context.Context, plate string, exitTime time.Time) (*sessionDomain.Session, error)
	// Status answers "is this plate currently parked". The answer is
	// advisory; when the store is unreachable it degrades to the bounded
	// mirror scan and labels the answer with its source.
	Status(ctx context.Context, plate string) (*sessionDomain.PlateStatus, error)
	// List returns sessions ordered by entry time with pagination.
	List(ctx context.Context, offset, limit int) ([]*sessionDomain.Session, error)
}
