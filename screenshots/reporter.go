// Package screenshots collects spoon screenshots from the single connected
// device into a report directory and prepares devices for screenshot runs.
package screenshots

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mobile-next/screenshot-reporter/devices"
	"github.com/sirupsen/logrus"
)

const (
	// DeviceScreenshotDir is the directory spoon writes to under external storage.
	DeviceScreenshotDir = "app_spoon-screenshots"
	// MarshmallowAPILevel is the first API level with runtime permissions.
	MarshmallowAPILevel = 23
)

// Bridge is the subset of the adb client the workflow drives.
type Bridge interface {
	ListDevices(ctx context.Context) ([]devices.DeviceID, error)
	GetExternalStoragePath(ctx context.Context, device devices.DeviceID) (devices.RemotePath, error)
	PullFolder(ctx context.Context, device devices.DeviceID, remoteDir devices.RemotePath, localDir devices.LocalPath) error
	PushFile(ctx context.Context, device devices.DeviceID, localFile devices.LocalPath, remoteFile devices.RemotePath) error
	ClearFolder(ctx context.Context, device devices.DeviceID, remoteDir devices.RemotePath) error
	GetAPILevel(ctx context.Context, device devices.DeviceID) (int, error)
	GrantExternalStoragePermissions(ctx context.Context, device devices.DeviceID, appPackage string) error
}

// Reporter runs the pull, clean and grant intents against one device.
type Reporter struct {
	appPackage string
	adb        Bridge
	log        logrus.FieldLogger
}

// NewReporter creates a reporter for appPackage using the given adb bridge.
func NewReporter(appPackage string, adb Bridge, log logrus.FieldLogger) *Reporter {
	return &Reporter{
		appPackage: appPackage,
		adb:        adb,
		log:        log,
	}
}

// Report describes a finished pull.
type Report struct {
	OutputDir string   `json:"outputDir"`
	Device    string   `json:"device"`
	Entries   []string `json:"entries"`
	Pulled    bool     `json:"pulled"`
	Archive   string   `json:"archive,omitempty"`
}

func (r *Reporter) runLogger(intent string) logrus.FieldLogger {
	return r.log.WithFields(logrus.Fields{
		"run":    uuid.NewString(),
		"intent": intent,
	})
}

// PullScreenshots resets outputDir, pulls the device screenshot directory
// into it and flattens the result so each test's folder sits directly under
// outputDir. A missing directory on the device is only a warning.
func (r *Reporter) PullScreenshots(ctx context.Context, outputDir string) (*Report, error) {
	log := r.runLogger("pull")

	local, err := devices.NewLocalPath(outputDir)
	if err != nil {
		return nil, err
	}

	if err := resetReportDir(local.Path()); err != nil {
		return nil, err
	}

	device, err := r.getRunningDevice(ctx)
	if err != nil {
		return nil, err
	}

	pulled, err := r.pullExternalDirectory(ctx, log, device, DeviceScreenshotDir, local)
	if err != nil {
		return nil, err
	}

	if err := simplifyDirectoryStructure(local.Path(), DeviceScreenshotDir); err != nil {
		return nil, err
	}

	entries, err := listReportEntries(local.Path())
	if err != nil {
		return nil, err
	}

	log.Infof("Wrote screenshots report to file://%s", local.Path())

	return &Report{
		OutputDir: local.Path(),
		Device:    device.Serial(),
		Entries:   entries,
		Pulled:    pulled,
	}, nil
}

func (r *Reporter) pullExternalDirectory(ctx context.Context, log logrus.FieldLogger, device devices.DeviceID, directoryName string, outputDir devices.LocalPath) (bool, error) {
	externalDir, err := r.screenshotsDir(ctx, device, directoryName)
	if err != nil {
		return false, err
	}

	log.Infof("Pulling files from %q on device [%s]...", externalDir.EscapedPath(), device)
	err = r.adb.PullFolder(ctx, device, externalDir, outputDir)
	if devices.IsKind(err, devices.NoSuchRemotePath) {
		log.Warn("Directory not found on device, no screenshots were pulled.")
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to pull %s: %w", externalDir, err)
	}

	return true, nil
}

// CleanScreenshotsFromDevice removes the screenshot directory from the device.
func (r *Reporter) CleanScreenshotsFromDevice(ctx context.Context) error {
	log := r.runLogger("clean")

	device, err := r.getRunningDevice(ctx)
	if err != nil {
		return err
	}

	screenshotsFolder, err := r.screenshotsDir(ctx, device, DeviceScreenshotDir)
	if err != nil {
		return err
	}

	log.Infof("Cleaning existing screenshots on %q from device [%s]...", screenshotsFolder.EscapedPath(), device)
	return r.adb.ClearFolder(ctx, device, screenshotsFolder)
}

// GrantPermissions grants external storage access to the app on API 23 and
// above. Older devices grant at install time, so nothing is sent to them.
// It returns whether grants were issued.
func (r *Reporter) GrantPermissions(ctx context.Context) (bool, error) {
	log := r.runLogger("grant")

	device, err := r.getRunningDevice(ctx)
	if err != nil {
		return false, err
	}

	apiLevel, err := r.adb.GetAPILevel(ctx, device)
	if err != nil {
		return false, err
	}

	if apiLevel < MarshmallowAPILevel {
		log.Debugf("Device [%s] is on API %d, no runtime permissions to grant", device, apiLevel)
		return false, nil
	}

	log.Infof("Granting read/write storage permission to device [%s]...", device)
	if err := r.adb.GrantExternalStoragePermissions(ctx, device, r.appPackage); err != nil {
		return false, err
	}

	return true, nil
}

// Setup prepares the device for a screenshot run: old screenshots are
// removed, then storage permissions are granted.
func (r *Reporter) Setup(ctx context.Context) (bool, error) {
	if err := r.CleanScreenshotsFromDevice(ctx); err != nil {
		return false, err
	}
	return r.GrantPermissions(ctx)
}

// PushFile copies a local file onto the running device.
func (r *Reporter) PushFile(ctx context.Context, localFile, remoteFile string) (string, error) {
	device, err := r.getRunningDevice(ctx)
	if err != nil {
		return "", err
	}

	local, err := devices.NewLocalPath(localFile)
	if err != nil {
		return "", err
	}

	r.runLogger("push").Infof("Pushing %q to %q on device [%s]...", local.EscapedPath(), devices.EscapePath(remoteFile), device)
	if err := r.adb.PushFile(ctx, device, local, devices.NewRemotePath(remoteFile)); err != nil {
		return "", err
	}

	return device.Serial(), nil
}

// ListDevices returns the serials of all connected devices.
func (r *Reporter) ListDevices(ctx context.Context) ([]string, error) {
	ids, err := r.adb.ListDevices(ctx)
	if err != nil {
		return nil, err
	}

	serials := make([]string, 0, len(ids))
	for _, id := range ids {
		serials = append(serials, id.Serial())
	}
	return serials, nil
}

func (r *Reporter) screenshotsDir(ctx context.Context, device devices.DeviceID, directoryName string) (devices.RemotePath, error) {
	externalStorage, err := r.adb.GetExternalStoragePath(ctx, device)
	if err != nil {
		return devices.RemotePath{}, err
	}
	return externalStorage.Resolve(directoryName), nil
}

// getRunningDevice returns the only connected device. Zero or several
// devices is a precondition failure; no device is ever picked for the user.
func (r *Reporter) getRunningDevice(ctx context.Context) (devices.DeviceID, error) {
	found, err := r.adb.ListDevices(ctx)
	if err != nil {
		return devices.DeviceID{}, err
	}

	if len(found) == 0 {
		return devices.DeviceID{}, devices.NewError(devices.PreconditionFailure, "no devices found")
	}

	if len(found) > 1 {
		return devices.DeviceID{}, devices.NewError(devices.PreconditionFailure,
			fmt.Sprintf("multiple devices found (%d), only one connected device is supported", len(found)))
	}

	return found[0], nil
}
