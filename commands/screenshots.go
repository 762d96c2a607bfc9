package commands

import (
	"context"
	"fmt"

	"github.com/mobile-next/screenshot-reporter/utils"
)

// PullRequest represents the parameters for pulling screenshots
type PullRequest struct {
	Config
	OutputDir string `json:"outputDir,omitempty"`
	Archive   bool   `json:"archive,omitempty"`
}

// PullScreenshotsCommand pulls the device screenshots into a report directory
func PullScreenshotsCommand(ctx context.Context, req PullRequest) *CommandResponse {
	outputDir := req.OutputDir
	if outputDir == "" {
		outputDir = req.DefaultOutputDir()
	}

	report, err := req.newReporter().PullScreenshots(ctx, outputDir)
	if err != nil {
		return NewErrorResponse(fmt.Errorf("error pulling screenshots: %w", err))
	}

	if req.Archive {
		archivePath := report.OutputDir + ".zip"
		if err := utils.ArchiveDir(report.OutputDir, archivePath); err != nil {
			return NewErrorResponse(err)
		}
		utils.Info("Wrote screenshots archive to %s", archivePath)
		report.Archive = archivePath
	}

	return NewSuccessResponse(report)
}

// CleanScreenshotsCommand removes old screenshots from the device
func CleanScreenshotsCommand(ctx context.Context, cfg Config) *CommandResponse {
	if err := cfg.newReporter().CleanScreenshotsFromDevice(ctx); err != nil {
		return NewErrorResponse(fmt.Errorf("error cleaning screenshots: %w", err))
	}

	return NewSuccessResponse(map[string]interface{}{
		"cleaned": true,
	})
}

// GrantPermissionsCommand grants storage permissions to the app under test
func GrantPermissionsCommand(ctx context.Context, cfg Config) *CommandResponse {
	if cfg.AppPackage == "" {
		return NewErrorResponse(fmt.Errorf("app package is required"))
	}

	granted, err := cfg.newReporter().GrantPermissions(ctx)
	if err != nil {
		return NewErrorResponse(fmt.Errorf("error granting permissions: %w", err))
	}

	return NewSuccessResponse(map[string]interface{}{
		"package": cfg.AppPackage,
		"granted": granted,
	})
}

// SetupCommand cleans the device and grants permissions before a test run
func SetupCommand(ctx context.Context, cfg Config) *CommandResponse {
	if cfg.AppPackage == "" {
		return NewErrorResponse(fmt.Errorf("app package is required"))
	}

	granted, err := cfg.newReporter().Setup(ctx)
	if err != nil {
		return NewErrorResponse(fmt.Errorf("error setting up device: %w", err))
	}

	return NewSuccessResponse(map[string]interface{}{
		"package": cfg.AppPackage,
		"cleaned": true,
		"granted": granted,
	})
}
