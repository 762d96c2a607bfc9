package commands

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mobile-next/screenshot-reporter/devices"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRunner struct {
	responses map[string]string
	pull      func(local string) error
	calls     []string
	binaries  []string
}

func newStubRunner(serials ...string) *stubRunner {
	listing := "List of devices attached\n"
	for _, serial := range serials {
		listing += serial + "\tdevice\n"
	}
	r := &stubRunner{responses: map[string]string{"devices": listing}}
	for _, serial := range serials {
		r.responses["-s "+serial+" shell echo $EXTERNAL_STORAGE"] = "/sdcard"
		r.responses["-s "+serial+" shell getprop ro.build.version.sdk"] = "33"
	}
	return r
}

func (r *stubRunner) Run(ctx context.Context, binary string, args ...string) ([]byte, error) {
	key := strings.Join(args, " ")
	r.calls = append(r.calls, key)
	r.binaries = append(r.binaries, binary)
	if len(args) > 2 && args[2] == "pull" && r.pull != nil {
		if err := r.pull(args[len(args)-1]); err != nil {
			return nil, err
		}
	}
	return []byte(r.responses[key]), nil
}

func testConfig(runner devices.Runner) Config {
	return Config{
		SdkDir:     "/opt/android-sdk",
		AppPackage: "com.example.app",
		Quiet:      true,
		Runner:     runner,
	}
}

func TestNewErrorResponse_IncludesKind(t *testing.T) {
	response := NewErrorResponse(devices.NewError(devices.PreconditionFailure, "no devices found"))
	assert.Equal(t, "error", response.Status)
	assert.Equal(t, "no devices found", response.Error)
	assert.Equal(t, "precondition_failure", response.ErrorKind)

	plain := NewErrorResponse(errors.New("boom"))
	assert.Empty(t, plain.ErrorKind)
}

func TestConfig_AdbPathFromSdk(t *testing.T) {
	runner := newStubRunner()
	DevicesCommand(context.Background(), testConfig(runner))

	require.NotEmpty(t, runner.binaries)
	assert.True(t, strings.HasPrefix(runner.binaries[0], filepath.Join("/opt/android-sdk", "platform-tools", "adb")))
}

func TestConfig_DefaultOutputDir(t *testing.T) {
	cfg := Config{ProjectDir: "/work/app"}
	assert.Equal(t, filepath.Join("/work/app", "build", "reports", "screenshots"), cfg.DefaultOutputDir())
}

func TestDevicesCommand(t *testing.T) {
	response := DevicesCommand(context.Background(), testConfig(newStubRunner("A", "B")))

	require.Equal(t, "ok", response.Status)
	data := response.Data.(map[string]interface{})
	assert.Equal(t, []string{"A", "B"}, data["devices"])
}

func TestPullScreenshotsCommand_WithArchive(t *testing.T) {
	runner := newStubRunner("A")
	runner.pull = func(local string) error {
		dir := filepath.Join(local, "app_spoon-screenshots", "testA")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
		return os.WriteFile(filepath.Join(dir, "shot.png"), []byte("png"), 0o644)
	}

	outputDir := filepath.Join(t.TempDir(), "screenshots")
	response := PullScreenshotsCommand(context.Background(), PullRequest{
		Config:    testConfig(runner),
		OutputDir: outputDir,
		Archive:   true,
	})

	require.Equal(t, "ok", response.Status, response.Error)
	assert.DirExists(t, filepath.Join(outputDir, "testA"))
	assert.FileExists(t, outputDir+".zip")
}

func TestPullScreenshotsCommand_NoDevices(t *testing.T) {
	response := PullScreenshotsCommand(context.Background(), PullRequest{
		Config:    testConfig(newStubRunner()),
		OutputDir: t.TempDir(),
	})

	assert.Equal(t, "error", response.Status)
	assert.Equal(t, "precondition_failure", response.ErrorKind)
	assert.Contains(t, response.Error, "no devices found")
}

func TestGrantPermissionsCommand_RequiresPackage(t *testing.T) {
	cfg := testConfig(newStubRunner("A"))
	cfg.AppPackage = ""

	response := GrantPermissionsCommand(context.Background(), cfg)

	assert.Equal(t, "error", response.Status)
	assert.Contains(t, response.Error, "app package is required")
}

func TestSetupCommand(t *testing.T) {
	runner := newStubRunner("A")
	response := SetupCommand(context.Background(), testConfig(runner))

	require.Equal(t, "ok", response.Status, response.Error)
	data := response.Data.(map[string]interface{})
	assert.Equal(t, true, data["granted"])
	assert.Contains(t, runner.calls, "-s A shell rm -rf /sdcard/app_spoon-screenshots")
	assert.Contains(t, runner.calls, "-s A shell pm grant com.example.app android.permission.WRITE_EXTERNAL_STORAGE")
}

func TestCleanScreenshotsCommand(t *testing.T) {
	runner := newStubRunner("A")
	response := CleanScreenshotsCommand(context.Background(), testConfig(runner))

	require.Equal(t, "ok", response.Status, response.Error)
	assert.Contains(t, runner.calls, "-s A shell rm -rf /sdcard/app_spoon-screenshots")
}

func TestPushCommand_RequiresPaths(t *testing.T) {
	response := PushCommand(context.Background(), PushRequest{Config: testConfig(newStubRunner("A"))})
	assert.Equal(t, "error", response.Status)
}

func TestReadOSRelease(t *testing.T) {
	path := filepath.Join(t.TempDir(), "os-release")
	content := "NAME=\"Ubuntu\"\nPRETTY_NAME=\"Ubuntu 22.04.4 LTS\"\nID=ubuntu\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	assert.Equal(t, "Ubuntu 22.04.4 LTS", readOSRelease(path))
	assert.Empty(t, readOSRelease(filepath.Join(t.TempDir(), "missing")))
}

func TestDoctorCommand_MissingAdb(t *testing.T) {
	cfg := testConfig(newStubRunner())
	cfg.SdkDir = filepath.Join(t.TempDir(), "no-sdk")

	response := DoctorCommand(context.Background(), "dev", cfg)

	require.Equal(t, "ok", response.Status)
	info := response.Data.(DoctorInfo)
	assert.Equal(t, cfg.SdkDir, info.SdkDir)
	assert.Equal(t, devices.AdbPathForSdk(cfg.SdkDir), info.ADBPath)
	assert.False(t, info.ADBFound)
	assert.Empty(t, info.ADBVersion)
}
