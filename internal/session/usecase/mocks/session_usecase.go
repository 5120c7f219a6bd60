package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	sessionDomain "github.com/allisson/parkledger/internal/session/domain"
)

// MockSessionUseCase is a mock implementation of SessionUseCase for testing.
type MockSessionUseCase struct {
	mock.Mock
}

// Park mocks the Park method of SessionUseCase.
func (m *MockSessionUseCase) Park(
	ctx context.Context,
	plate, lotID string,
	entryTime time.Time,
) (*sessionDomain.Session, error) {
	args := m.Called(ctx, plate, lotID, entryTime)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sessionDomain.Session), args.Error(1)
}

// Leave mocks the Leave method of SessionUseCase.
func (m *MockSessionUseCase) Leave(
	ctx context.Context,
	plate string,
	exitTime time.Time,
) (*sessionDomain.Session, error) {
	args := m.Called(ctx, plate, exitTime)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sessionDomain.Session), args.Error(1)
}

// Status mocks the Status method of SessionUseCase.
func (m *MockSessionUseCase) Status(
	ctx context.Context,
	plate string,
) (*sessionDomain.PlateStatus, error) {
	args := m.Called(ctx, plate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sessionDomain.PlateStatus), args.Error(1)
}

// List mocks the List method of SessionUseCase.
func (m *MockSessionUseCase) List(
	ctx context.Context,
	offset, limit int,
) ([]*sessionDomain.Session, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*sessionDomain.Session), args.Error(1)
}
