// Package validation provides custom validation rules for the application.
package validation

import (
	"regexp"
	"strings"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/parkledger/internal/errors"
)

var (
	// plateRegex accepts plate numbers as letters, digits, spaces and hyphens.
	// Normalization strips the separators before hashing, so the rule only has
	// to reject characters that could never appear on a plate.
	plateRegex = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9 \-]{0,15}$`)

	// tokenIDRegex matches ledger entity identifiers like "0.0.4567".
	tokenIDRegex = regexp.MustCompile(`^\d+\.\d+\.\d+$`)
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// PlateNumber validates vehicle plate number format.
var PlateNumber = validation.NewStringRuleWithError(
	func(s string) bool {
		return plateRegex.MatchString(s)
	},
	validation.NewError("validation_plate_number", "must be a valid plate number"),
)

// LotID validates that a lot identifier fits in the metadata layout, which
// stores its length in a single byte.
var LotID = validation.NewStringRuleWithError(
	func(s string) bool {
		return len(s) > 0 && len(s) <= 255
	},
	validation.NewError("validation_lot_id", "must be between 1 and 255 bytes"),
)

// TokenID validates ledger token identifier format.
var TokenID = validation.NewStringRuleWithError(
	func(s string) bool {
		return tokenIDRegex.MatchString(s)
	},
	validation.NewError("validation_token_id", "must be a valid token identifier"),
)

// NoWhitespace validates that string doesn't contain leading/trailing whitespace
var NoWhitespace = validation.NewStringRuleWithError(
	func(s string) bool {
		return s == strings.TrimSpace(s)
	},
	validation.NewError("validation_no_whitespace", "must not contain leading or trailing whitespace"),
)

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)
