package usecase

import (
	"context"
	"encoding/hex"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	apperrors "github.com/allisson/parkledger/internal/errors"
	sessionDomain "github.com/allisson/parkledger/internal/session/domain"
)

// sessionUseCase implements the SessionUseCase interface.
type sessionUseCase struct {
	sessionRepo SessionRepository
	minter      TokenMinter
	mirror      MirrorScanner
	hasher      PlateHasher
	cache       StatusCache
	tokenID     string
	logger      *slog.Logger

	// statusGroup collapses concurrent status lookups for the same plate
	// into a single backend round trip.
	statusGroup singleflight.Group
}

// NewSessionUseCase creates a new session use case instance with the provided dependencies.
func NewSessionUseCase(
	sessionRepo SessionRepository,
	minter TokenMinter,
	mirror MirrorScanner,
	hasher PlateHasher,
	cache StatusCache,
	tokenID string,
	logger *slog.Logger,
) SessionUseCase {
	return &sessionUseCase{
		sessionRepo: sessionRepo,
		minter:      minter,
		mirror:      mirror,
		hasher:      hasher,
		cache:       cache,
		tokenID:     tokenID,
		logger:      logger,
	}
}

// Park opens a session: mint first, then persist. The store's unique index is
// the only enforcement of one-active-session-per-plate; a conflicting insert
// triggers a compensating burn of the just-minted serial.
func (s *sessionUseCase) Park(
	ctx context.Context,
	plate, lotID string,
	entryTime time.Time,
) (*sessionDomain.Session, error) {
	plateHash := s.hasher.Hash(plate)

	session, err := sessionDomain.NewSession(plateHash, lotID, s.tokenID, entryTime)
	if err != nil {
		return nil, err
	}

	result, err := s.minter.Mint(ctx, s.tokenID, session.Metadata())
	if err != nil {
		return nil, err
	}
	session.Serial = result.Serial
	session.TransactionID = result.TransactionID

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		if apperrors.Is(err, apperrors.ErrConflict) {
			s.compensateMint(ctx, result.Serial)
			return nil, sessionDomain.ErrSessionAlreadyActive
		}
		return nil, err
	}

	s.cache.Invalidate(ctx, plateHash)

	s.logger.Info("session opened",
		slog.String("session_id", session.ID.String()),
		slog.String("lot_id", lotID),
		slog.Int64("serial", session.Serial))

	return session, nil
}

// compensateMint burns a serial whose session row could not be persisted.
// Failure here leaves an orphaned token on the ledger, which is harmless for
// correctness but logged for operator cleanup.
func (s *sessionUseCase) compensateMint(ctx context.Context, serial int64) {
	if err := s.minter.Burn(ctx, s.tokenID, serial); err != nil {
		s.logger.Error("compensating burn failed",
			slog.Int64("serial", serial),
			slog.Any("error", err))
	}
}

// Leave closes the active session for the plate. The burn happens before the
// row update: if the ledger rejects the burn the session stays active and the
// error propagates.
func (s *sessionUseCase) Leave(
	ctx context.Context,
	plate string,
	exitTime time.Time,
) (*sessionDomain.Session, error) {
	plateHash := s.hasher.Hash(plate)

	session, err := s.sessionRepo.GetActiveByPlateHash(ctx, plateHash)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			return nil, sessionDomain.ErrSessionNotFound
		}
		return nil, err
	}

	if err := s.minter.Burn(ctx, session.TokenID, session.Serial); err != nil {
		return nil, err
	}

	session.Close(exitTime)
	if err := s.sessionRepo.Update(ctx, session); err != nil {
		// The token is already burned; the row must reflect that eventually.
		s.logger.Error("session close not persisted after burn",
			slog.String("session_id", session.ID.String()),
			slog.Any("error", err))
		return nil, err
	}

	s.cache.Invalidate(ctx, plateHash)

	s.logger.Info("session closed",
		slog.String("session_id", session.ID.String()),
		slog.Int64("serial", session.Serial))

	return session, nil
}

// Status answers whether the plate is currently parked.
//
// Lookup order: cache, authoritative store, bounded mirror scan. The mirror
// path only runs when the store is unreachable; a not-found row from the
// store is a definitive "not parked" and never falls through to the mirror.
func (s *sessionUseCase) Status(ctx context.Context, plate string) (*sessionDomain.PlateStatus, error) {
	plateHash := s.hasher.Hash(plate)

	if status, ok := s.cache.Get(ctx, plateHash); ok {
		return status, nil
	}

	v, err, _ := s.statusGroup.Do(hex.EncodeToString(plateHash), func() (interface{}, error) {
		return s.lookupStatus(ctx, plateHash), nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*sessionDomain.PlateStatus), nil
}

// lookupStatus resolves a plate status from the backends and caches
// definitive answers.
func (s *sessionUseCase) lookupStatus(ctx context.Context, plateHash []byte) *sessionDomain.PlateStatus {
	session, err := s.sessionRepo.GetActiveByPlateHash(ctx, plateHash)
	switch {
	case err == nil:
		status := &sessionDomain.PlateStatus{
			Parked: true,
			LotID:  session.LotID,
			Serial: session.Serial,
			Source: sessionDomain.SourceDatabase,
		}
		s.cache.Set(ctx, plateHash, status)
		return status

	case errors.Is(err, apperrors.ErrNotFound):
		status := &sessionDomain.PlateStatus{
			Parked: false,
			Source: sessionDomain.SourceDatabase,
		}
		s.cache.Set(ctx, plateHash, status)
		return status
	}

	s.logger.Warn("status lookup falling back to mirror", slog.Any("error", err))

	record, found := s.mirror.FindActiveByPlateHash(ctx, s.tokenID, plateHash)
	if found {
		return &sessionDomain.PlateStatus{
			Parked: true,
			LotID:  record.Metadata.LotID,
			Serial: record.Serial,
			Source: sessionDomain.SourceMirror,
		}
	}

	// The scan is bounded to the newest pages, so "no match" from the mirror
	// is not a definitive "not parked". Never cached.
	return &sessionDomain.PlateStatus{
		Parked: false,
		Source: sessionDomain.SourceUnknown,
	}
}

// List retrieves sessions ordered by entry time with pagination.
func (s *sessionUseCase) List(ctx context.Context, offset, limit int) ([]*sessionDomain.Session, error) {
	return s.sessionRepo.List(ctx, offset, limit)
}
