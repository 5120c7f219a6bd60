package dto_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sessionDomain "github.com/allisson/parkledger/internal/session/domain"
	"github.com/allisson/parkledger/internal/session/http/dto"
)

func newSession(t *testing.T) *sessionDomain.Session {
	t.Helper()
	session, err := sessionDomain.NewSession(
		bytes.Repeat([]byte{0x42}, sessionDomain.PlateHashSize),
		"LOT-001",
		"0.0.4567",
		time.Date(2023, 11, 14, 22, 13, 20, 0, time.UTC),
	)
	require.NoError(t, err)
	session.Serial = 7
	session.TransactionID = "0.0.1111@123"
	return session
}

func TestMapSessionToResponse(t *testing.T) {
	session := newSession(t)

	response := dto.MapSessionToResponse(session)

	assert.Equal(t, session.ID.String(), response.ID)
	assert.Equal(t, "LOT-001", response.LotID)
	assert.Equal(t, "0.0.4567", response.TokenID)
	assert.Equal(t, int64(7), response.Serial)
	assert.Equal(t, "0.0.1111@123", response.TransactionID)
	assert.Equal(t, session.EntryTime, response.EntryTime)
	assert.Nil(t, response.ExitTime)
	assert.Equal(t, "active", response.Status)
}

func TestMapSessionToResponse_ClosedSession(t *testing.T) {
	session := newSession(t)
	exitTime := time.Date(2023, 11, 15, 8, 0, 0, 0, time.UTC)
	session.Close(exitTime)

	response := dto.MapSessionToResponse(session)

	require.NotNil(t, response.ExitTime)
	assert.True(t, response.ExitTime.Equal(exitTime))
	assert.Equal(t, "closed", response.Status)
}

func TestMapSessionsToListResponse(t *testing.T) {
	sessions := []*sessionDomain.Session{newSession(t), newSession(t)}

	response := dto.MapSessionsToListResponse(sessions)

	assert.Len(t, response.Data, 2)
	assert.Equal(t, sessions[0].ID.String(), response.Data[0].ID)
	assert.Equal(t, sessions[1].ID.String(), response.Data[1].ID)
}

func TestMapSessionsToListResponse_Empty(t *testing.T) {
	response := dto.MapSessionsToListResponse(nil)

	assert.NotNil(t, response.Data)
	assert.Empty(t, response.Data)
}

func TestMapPlateStatusToResponse(t *testing.T) {
	status := &sessionDomain.PlateStatus{
		Parked: true,
		LotID:  "LOT-001",
		Serial: 7,
		Source: sessionDomain.SourceMirror,
	}

	response := dto.MapPlateStatusToResponse(status)

	assert.True(t, response.Parked)
	assert.Equal(t, "LOT-001", response.LotID)
	assert.Equal(t, int64(7), response.Serial)
	assert.Equal(t, "mirror", response.Source)
}
