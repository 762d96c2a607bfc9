package commands

import (
	"context"
)

// DevicesCommand lists all connected devices
func DevicesCommand(ctx context.Context, cfg Config) *CommandResponse {
	serials, err := cfg.newReporter().ListDevices(ctx)
	if err != nil {
		return NewErrorResponse(err)
	}

	return NewSuccessResponse(map[string]interface{}{
		"devices": serials,
	})
}
