package validation

import (
	"strings"
	"testing"

	validation "github.com/jellydator/validation"
	"github.com/stretchr/testify/assert"

	apperrors "github.com/allisson/parkledger/internal/errors"
)

func TestPlateNumber(t *testing.T) {
	tests := []struct {
		name    string
		plate   string
		wantErr bool
	}{
		{"plain plate", "ABC1234", false},
		{"plate with hyphen", "ABC-1234", false},
		{"plate with space", "ABC 1234", false},
		{"lowercase accepted", "abc1234", false},
		{"empty", "", true},
		{"leading separator", "-ABC123", true},
		{"punctuation", "ABC_123!", true},
		{"too long", strings.Repeat("A", 17), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.Validate(tt.plate, PlateNumber)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLotID(t *testing.T) {
	tests := []struct {
		name    string
		lotID   string
		wantErr bool
	}{
		{"short id", "LOT-001", false},
		{"single byte", "A", false},
		{"255 bytes", strings.Repeat("x", 255), false},
		{"empty", "", true},
		{"256 bytes", strings.Repeat("x", 256), true},
		{"multibyte overflow", strings.Repeat("é", 128), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.Validate(tt.lotID, LotID)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTokenID(t *testing.T) {
	tests := []struct {
		name    string
		tokenID string
		wantErr bool
	}{
		{"valid token id", "0.0.4567", false},
		{"missing realm", "0.4567", true},
		{"letters", "a.b.c", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.Validate(tt.tokenID, TokenID)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNotBlank(t *testing.T) {
	assert.NoError(t, validation.Validate("value", NotBlank))
	assert.Error(t, validation.Validate("   ", NotBlank))
	assert.Error(t, validation.Validate("", NotBlank))
}

func TestNoWhitespace(t *testing.T) {
	assert.NoError(t, validation.Validate("value", NoWhitespace))
	assert.Error(t, validation.Validate(" value", NoWhitespace))
	assert.Error(t, validation.Validate("value ", NoWhitespace))
}

func TestBase64(t *testing.T) {
	assert.NoError(t, validation.Validate("aGVsbG8=", Base64))
	assert.NoError(t, validation.Validate("", Base64))
	assert.Error(t, validation.Validate("not-base64!!", Base64))
}

func TestWrapValidationError(t *testing.T) {
	t.Run("nil error passes through", func(t *testing.T) {
		assert.NoError(t, WrapValidationError(nil))
	})

	t.Run("wraps as invalid input", func(t *testing.T) {
		err := WrapValidationError(validation.Validate("", NotBlank))
		assert.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
	})
}
