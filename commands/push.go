package commands

import (
	"context"
	"fmt"
)

// PushRequest represents the parameters for pushing a file to the device
type PushRequest struct {
	Config
	LocalFile  string `json:"localFile"`
	RemoteFile string `json:"remoteFile"`
}

// PushCommand copies a local file onto the single connected device
func PushCommand(ctx context.Context, req PushRequest) *CommandResponse {
	if req.LocalFile == "" || req.RemoteFile == "" {
		return NewErrorResponse(fmt.Errorf("both local and remote paths are required"))
	}

	serial, err := req.newReporter().PushFile(ctx, req.LocalFile, req.RemoteFile)
	if err != nil {
		return NewErrorResponse(fmt.Errorf("error pushing file: %w", err))
	}

	return NewSuccessResponse(map[string]interface{}{
		"device":     serial,
		"localFile":  req.LocalFile,
		"remoteFile": req.RemoteFile,
	})
}
