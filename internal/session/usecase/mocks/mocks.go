// Package mocks provides mock implementations for testing session use cases.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	ledgerDomain "github.com/allisson/parkledger/internal/ledger/domain"
	mirrorDomain "github.com/allisson/parkledger/internal/mirror/domain"
	sessionDomain "github.com/allisson/parkledger/internal/session/domain"
)

// MockSessionRepository is a mock implementation of SessionRepository for testing.
type MockSessionRepository struct {
	mock.Mock
}

// Create mocks the Create method of SessionRepository.
func (m *MockSessionRepository) Create(ctx context.Context, session *sessionDomain.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

// GetActiveByPlateHash mocks the GetActiveByPlateHash method of SessionRepository.
func (m *MockSessionRepository) GetActiveByPlateHash(
	ctx context.Context,
	plateHash []byte,
) (*sessionDomain.Session, error) {
	args := m.Called(ctx, plateHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sessionDomain.Session), args.Error(1)
}

// Update mocks the Update method of SessionRepository.
func (m *MockSessionRepository) Update(ctx context.Context, session *sessionDomain.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

// Delete mocks the Delete method of SessionRepository.
func (m *MockSessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// List mocks the List method of SessionRepository.
func (m *MockSessionRepository) List(
	ctx context.Context,
	offset, limit int,
) ([]*sessionDomain.Session, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*sessionDomain.Session), args.Error(1)
}

// MockTokenMinter is a mock implementation of TokenMinter for testing.
type MockTokenMinter struct {
	mock.Mock
}

// Mint mocks the Mint method of TokenMinter.
func (m *MockTokenMinter) Mint(
	ctx context.Context,
	tokenID string,
	meta sessionDomain.SessionMetadata,
) (*ledgerDomain.MintResult, error) {
	args := m.Called(ctx, tokenID, meta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledgerDomain.MintResult), args.Error(1)
}

// Burn mocks the Burn method of TokenMinter.
func (m *MockTokenMinter) Burn(ctx context.Context, tokenID string, serial int64) error {
	args := m.Called(ctx, tokenID, serial)
	return args.Error(0)
}

// MockMirrorScanner is a mock implementation of MirrorScanner for testing.
type MockMirrorScanner struct {
	mock.Mock
}

// FindActiveByPlateHash mocks the FindActiveByPlateHash method of MirrorScanner.
func (m *MockMirrorScanner) FindActiveByPlateHash(
	ctx context.Context,
	tokenID string,
	plateHash []byte,
) (*mirrorDomain.ActiveRecord, bool) {
	args := m.Called(ctx, tokenID, plateHash)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*mirrorDomain.ActiveRecord), args.Bool(1)
}

// MockPlateHasher is a mock implementation of PlateHasher for testing.
type MockPlateHasher struct {
	mock.Mock
}

// Hash mocks the Hash method of PlateHasher.
func (m *MockPlateHasher) Hash(plate string) []byte {
	args := m.Called(plate)
	return args.Get(0).([]byte)
}

// MockStatusCache is a mock implementation of StatusCache for testing.
type MockStatusCache struct {
	mock.Mock
}

// Get mocks the Get method of StatusCache.
func (m *MockStatusCache) Get(
	ctx context.Context,
	plateHash []byte,
) (*sessionDomain.PlateStatus, bool) {
	args := m.Called(ctx, plateHash)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*sessionDomain.PlateStatus), args.Bool(1)
}

// Set mocks the Set method of StatusCache.
func (m *MockStatusCache) Set(
	ctx context.Context,
	plateHash []byte,
	status *sessionDomain.PlateStatus,
) {
	m.Called(ctx, plateHash, status)
}

// Invalidate mocks the Invalidate method of StatusCache.
func (m *MockStatusCache) Invalidate(ctx context.Context, plateHash []byte) {
	m.Called(ctx, plateHash)
}
