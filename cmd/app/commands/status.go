package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/jellydator/validation"

	"github.com/allisson/parkledger/internal/app"
	"github.com/allisson/parkledger/internal/config"
	"github.com/allisson/parkledger/internal/session/http/dto"
	appValidation "github.com/allisson/parkledger/internal/validation"
)

// RunStatus performs a one-shot plate status lookup through the container and
// prints the result as JSON. Uses the same cache/store/mirror resolution the
// HTTP surface uses.
func RunStatus(ctx context.Context, w io.Writer, plate string) error {
	if err := validation.Validate(plate, validation.Required, appValidation.PlateNumber); err != nil {
		return fmt.Errorf("invalid plate: %w", err)
	}

	cfg := config.Load()
	container := app.NewContainer(cfg)
	logger := container.Logger()

	defer closeContainer(container, logger)

	useCase, err := container.SessionUseCase()
	if err != nil {
		return fmt.Errorf("failed to initialize session use case: %w", err)
	}

	status, err := useCase.Status(ctx, plate)
	if err != nil {
		return fmt.Errorf("failed to look up plate status: %w", err)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(dto.MapPlateStatusToResponse(status))
}
