// Package http provides HTTP handlers for parking session operations.
// Plates only travel over the operator API; the ledger side of every
// operation carries the encrypted metadata envelope instead.
package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	validation "github.com/jellydator/validation"

	"github.com/allisson/parkledger/internal/httputil"
	"github.com/allisson/parkledger/internal/session/http/dto"
	sessionUseCase "github.com/allisson/parkledger/internal/session/usecase"
	customValidation "github.com/allisson/parkledger/internal/validation"
)

// SessionHandler handles HTTP requests for parking session operations.
type SessionHandler struct {
	sessionUseCase sessionUseCase.SessionUseCase
	logger         *slog.Logger
}

// NewSessionHandler creates a new session handler with required dependencies.
func NewSessionHandler(
	useCase sessionUseCase.SessionUseCase,
	logger *slog.Logger,
) *SessionHandler {
	return &SessionHandler{
		sessionUseCase: useCase,
		logger:         logger,
	}
}

// ParkHandler opens a parking session for a plate.
// POST /v1/sessions
// Returns 201 Created with the session, 409 when the plate already has an
// active session, 502 when the ledger rejects the mint.
func (h *SessionHandler) ParkHandler(c *gin.Context) {
	var req dto.ParkRequest

	// Parse and bind JSON
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	// Validate request
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	entryTime := time.Now().UTC()
	if req.EntryTime != nil {
		entryTime = req.EntryTime.UTC()
	}

	session, err := h.sessionUseCase.Park(c.Request.Context(), req.Plate, req.LotID, entryTime)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapSessionToResponse(session))
}

// LeaveHandler closes the active session for a plate.
// DELETE /v1/sessions/:plate
// Returns 200 OK with the closed session, 404 when no active session exists,
// 502 when the ledger rejects the burn (the session stays active).
func (h *SessionHandler) LeaveHandler(c *gin.Context) {
	plate := c.Param("plate")
	if err := validation.Validate(plate, validation.Required, customValidation.PlateNumber); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	session, err := h.sessionUseCase.Leave(c.Request.Context(), plate, time.Now().UTC())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapSessionToResponse(session))
}

// StatusHandler answers whether a plate is currently parked.
// GET /v1/plates/:plate/status
// Returns 200 OK with the advisory answer and its source label.
func (h *SessionHandler) StatusHandler(c *gin.Context) {
	plate := c.Param("plate")
	if err := validation.Validate(plate, validation.Required, customValidation.PlateNumber); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	status, err := h.sessionUseCase.Status(c.Request.Context(), plate)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapPlateStatusToResponse(status))
}

// ListHandler retrieves sessions with pagination support.
// GET /v1/sessions?offset=0&limit=50
// Returns 200 OK with the paginated session list.
func (h *SessionHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	sessions, err := h.sessionUseCase.List(c.Request.Context(), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapSessionsToListResponse(sessions))
}
