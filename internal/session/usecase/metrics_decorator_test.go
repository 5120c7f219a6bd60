package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/parkledger/internal/metrics"
	sessionDomain "github.com/allisson/parkledger/internal/session/domain"
	"github.com/allisson/parkledger/internal/session/usecase/mocks"
)

func TestSessionUseCaseWithMetrics(t *testing.T) {
	ctx := context.Background()

	newDecorated := func(t *testing.T) (*mocks.MockSessionUseCase, SessionUseCase) {
		t.Helper()
		next := &mocks.MockSessionUseCase{}
		decorated := NewSessionUseCaseWithMetrics(next, metrics.NewNoOpBusinessMetrics())
		return next, decorated
	}

	t.Run("Park passes through result and error", func(t *testing.T) {
		next, decorated := newDecorated(t)
		entryTime := time.Now()
		session, err := sessionDomain.NewSession(testPlateHash(), "LOT-001", testTokenID, entryTime)
		require.NoError(t, err)

		next.On("Park", ctx, "ABC1234", "LOT-001", entryTime).Return(session, nil)

		got, err := decorated.Park(ctx, "ABC1234", "LOT-001", entryTime)

		require.NoError(t, err)
		assert.Equal(t, session, got)
		next.AssertExpectations(t)
	})

	t.Run("Leave passes through errors", func(t *testing.T) {
		next, decorated := newDecorated(t)
		exitTime := time.Now()

		next.On("Leave", ctx, "ABC1234", exitTime).
			Return(nil, sessionDomain.ErrSessionNotFound)

		_, err := decorated.Leave(ctx, "ABC1234", exitTime)

		assert.ErrorIs(t, err, sessionDomain.ErrSessionNotFound)
		next.AssertExpectations(t)
	})

	t.Run("Status passes through the source label", func(t *testing.T) {
		next, decorated := newDecorated(t)
		status := &sessionDomain.PlateStatus{Parked: true, Source: sessionDomain.SourceMirror}

		next.On("Status", ctx, "ABC1234").Return(status, nil)

		got, err := decorated.Status(ctx, "ABC1234")

		require.NoError(t, err)
		assert.Equal(t, status, got)
		next.AssertExpectations(t)
	})

	t.Run("List passes through", func(t *testing.T) {
		next, decorated := newDecorated(t)

		next.On("List", ctx, 0, 50).Return([]*sessionDomain.Session{}, nil)

		sessions, err := decorated.List(ctx, 0, 50)

		require.NoError(t, err)
		assert.Empty(t, sessions)
		next.AssertExpectations(t)
	})
}
