// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	"time"

	sessionDomain "github.com/allisson/parkledger/internal/session/domain"
)

// SessionResponse represents a parking session in API responses.
// The plate digest never appears in responses; sessions are addressed by id
// and looked up by plate through dedicated endpoints.
type SessionResponse struct {
	ID            string     `json:"id"`
	LotID         string     `json:"lot_id"`
	TokenID       string     `json:"token_id"`
	Serial        int64      `json:"serial"`
	TransactionID string     `json:"transaction_id,omitempty"`
	EntryTime     time.Time  `json:"entry_time"`
	ExitTime      *time.Time `json:"exit_time,omitempty"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// MapSessionToResponse converts a domain session to a response.
func MapSessionToResponse(session *sessionDomain.Session) SessionResponse {
	return SessionResponse{
		ID:            session.ID.String(),
		LotID:         session.LotID,
		TokenID:       session.TokenID,
		Serial:        session.Serial,
		TransactionID: session.TransactionID,
		EntryTime:     session.EntryTime,
		ExitTime:      session.ExitTime,
		Status:        string(session.Status),
		CreatedAt:     session.CreatedAt,
		UpdatedAt:     session.UpdatedAt,
	}
}

// ListSessionsResponse represents a paginated list of sessions in API responses.
type ListSessionsResponse struct {
	Data []SessionResponse `json:"data"`
}

// MapSessionsToListResponse converts a slice of domain sessions to a list response.
func MapSessionsToListResponse(sessions []*sessionDomain.Session) ListSessionsResponse {
	data := make([]SessionResponse, 0, len(sessions))
	for _, session := range sessions {
		data = append(data, MapSessionToResponse(session))
	}

	return ListSessionsResponse{
		Data: data,
	}
}

// PlateStatusResponse represents an advisory plate status answer.
type PlateStatusResponse struct {
	Parked bool   `json:"parked"`
	LotID  string `json:"lot_id,omitempty"`
	Serial int64  `json:"serial,omitempty"`
	Source string `json:"source"`
}

// MapPlateStatusToResponse converts a domain plate status to a response.
func MapPlateStatusToResponse(status *sessionDomain.PlateStatus) PlateStatusResponse {
	return PlateStatusResponse{
		Parked: status.Parked,
		LotID:  status.LotID,
		Serial: status.Serial,
		Source: string(status.Source),
	}
}
