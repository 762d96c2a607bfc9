package commands

import (
	"path/filepath"
	"time"

	"github.com/mobile-next/screenshot-reporter/devices"
	"github.com/mobile-next/screenshot-reporter/screenshots"
	"github.com/mobile-next/screenshot-reporter/utils"
)

// CommandResponse represents a standardized response format for all commands
type CommandResponse struct {
	Status    string      `json:"status"`
	Data      interface{} `json:"data,omitempty"`
	Error     string      `json:"error,omitempty"`
	ErrorKind string      `json:"errorKind,omitempty"`
}

// NewSuccessResponse creates a success response
func NewSuccessResponse(data interface{}) *CommandResponse {
	return &CommandResponse{
		Status: "ok",
		Data:   data,
	}
}

// NewErrorResponse creates an error response. Errors raised by the adb
// client or the workflow also carry their kind.
func NewErrorResponse(err error) *CommandResponse {
	response := &CommandResponse{
		Status: "error",
		Error:  err.Error(),
	}
	if kind, ok := devices.KindOf(err); ok {
		response.ErrorKind = kind.String()
	}
	return response
}

// Config holds the settings shared by every device command.
type Config struct {
	SdkDir     string        `json:"sdkDir,omitempty"`
	ProjectDir string        `json:"projectDir,omitempty"`
	AppPackage string        `json:"appPackage,omitempty"`
	Timeout    time.Duration `json:"timeout"`
	Quiet      bool          `json:"quiet"`

	// Runner overrides process execution, used by tests.
	Runner devices.Runner `json:"-"`
}

// ResolvedSdkDir returns the SDK root this config points at, if any.
func (c Config) ResolvedSdkDir() string {
	return devices.FindAndroidSdk(c.SdkDir, c.ProjectDir)
}

// AdbPath returns the adb binary derived from the SDK root.
func (c Config) AdbPath() string {
	return devices.AdbPathForSdk(c.ResolvedSdkDir())
}

// DefaultOutputDir is where reports go when no output directory is given.
func (c Config) DefaultOutputDir() string {
	projectDir := c.ProjectDir
	if projectDir == "" {
		projectDir = "."
	}
	return filepath.Join(projectDir, "build", "reports", "screenshots")
}

func (c Config) newAdb() *devices.Adb {
	opts := []devices.Option{devices.WithTimeout(c.Timeout)}
	if !c.Quiet {
		opts = append(opts, devices.WithSink(devices.NewLoggerSink(utils.Logger())))
	}
	if c.Runner != nil {
		opts = append(opts, devices.WithRunner(c.Runner))
	}

	adbPath := c.AdbPath()
	utils.Verbose("Using adb at %s", adbPath)
	return devices.NewAdb(adbPath, opts...)
}

func (c Config) newReporter() *screenshots.Reporter {
	return screenshots.NewReporter(c.AppPackage, c.newAdb(), utils.Logger())
}
