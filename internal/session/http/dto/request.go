// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	"time"

	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/parkledger/internal/validation"
)

// ParkRequest contains the parameters for opening a parking session.
// EntryTime is optional; the server clock is used when absent.
type ParkRequest struct {
	Plate     string     `json:"plate" binding:"required"`
	LotID     string     `json:"lot_id" binding:"required"`
	EntryTime *time.Time `json:"entry_time,omitempty"`
}

// Validate checks if the park request is valid.
func (r *ParkRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Plate,
			validation.Required,
			customValidation.NoWhitespace,
			customValidation.PlateNumber,
		),
		validation.Field(&r.LotID,
			validation.Required,
			customValidation.NotBlank,
			customValidation.LotID,
		),
	)
}
