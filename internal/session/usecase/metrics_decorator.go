package usecase

import (
	"context"
	"time"

	"github.com/allisson/parkledger/internal/metrics"
	sessionDomain "github.com/allisson/parkledger/internal/session/domain"
)

// sessionUseCaseWithMetrics decorates SessionUseCase with metrics instrumentation.
type sessionUseCaseWithMetrics struct {
	next    SessionUseCase
	metrics metrics.BusinessMetrics
}

// NewSessionUseCaseWithMetrics wraps a SessionUseCase with metrics recording.
func NewSessionUseCaseWithMetrics(useCase SessionUseCase, m metrics.BusinessMetrics) SessionUseCase {
	return &sessionUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Park records metrics for session open operations.
func (s *sessionUseCaseWithMetrics) Park(
	ctx context.Context,
	plate, lotID string,
	entryTime time.Time,
) (*sessionDomain.Session, error) {
	start := time.Now()
	session, err := s.next.Park(ctx, plate, lotID, entryTime)

	status := "success"
	if err != nil {
		status = "error"
	}

	s.metrics.RecordOperation(ctx, "session", "park", status)
	s.metrics.RecordDuration(ctx, "session", "park", time.Since(start), status)

	return session, err
}

// Leave records metrics for session close operations.
func (s *sessionUseCaseWithMetrics) Leave(
	ctx context.Context,
	plate string,
	exitTime time.Time,
) (*sessionDomain.Session, error) {
	start := time.Now()
	session, err := s.next.Leave(ctx, plate, exitTime)

	status := "success"
	if err != nil {
		status = "error"
	}

	s.metrics.RecordOperation(ctx, "session", "leave", status)
	s.metrics.RecordDuration(ctx, "session", "leave", time.Since(start), status)

	return session, err
}

// Status records metrics for plate status lookups, labelling the answer source.
func (s *sessionUseCaseWithMetrics) Status(
	ctx context.Context,
	plate string,
) (*sessionDomain.PlateStatus, error) {
	start := time.Now()
	plateStatus, err := s.next.Status(ctx, plate)

	status := "success"
	if err != nil {
		status = "error"
	}

	s.metrics.RecordOperation(ctx, "session", "status", status)
	s.metrics.RecordDuration(ctx, "session", "status", time.Since(start), status)
	if plateStatus != nil {
		s.metrics.RecordOperation(ctx, "session", "status_source_"+string(plateStatus.Source), status)
	}

	return plateStatus, err
}

// List records metrics for session listing operations.
func (s *sessionUseCaseWithMetrics) List(
	ctx context.Context,
	offset, limit int,
) ([]*sessionDomain.Session, error) {
	start := time.Now()
	sessions, err := s.next.List(ctx, offset, limit)

	status := "success"
	if err != nil {
		status = "error"
	}

	s.metrics.RecordOperation(ctx, "session", "list", status)
	s.metrics.RecordDuration(ctx, "session", "list", time.Since(start), status)

	return sessions, err
}
