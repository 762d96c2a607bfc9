package devices

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"
)

const (
	adbErrorMarker     = "adb: error:"
	noSuchFileSuffix   = "No such file or directory"
	daemonBannerPrefix = "* "

	// DefaultCommandTimeout bounds a single adb invocation. Large pulls over a
	// slow USB link can take minutes.
	DefaultCommandTimeout = 10 * time.Minute

	ReadExternalStoragePermission  = "android.permission.READ_EXTERNAL_STORAGE"
	WriteExternalStoragePermission = "android.permission.WRITE_EXTERNAL_STORAGE"
)

// DeviceID identifies a connected device by its adb serial. It is only
// obtained from Adb.ListDevices.
type DeviceID struct {
	serial string
}

func (d DeviceID) Serial() string {
	return d.serial
}

func (d DeviceID) String() string {
	return d.serial
}

// Adb issues adb commands and classifies their textual responses. Every
// call blocks until the adb process exits.
type Adb struct {
	binary  string
	runner  Runner
	sink    OutputSink
	timeout time.Duration
}

type Option func(*Adb)

// WithRunner replaces the process runner, mostly for tests.
func WithRunner(runner Runner) Option {
	return func(a *Adb) {
		a.runner = runner
	}
}

// WithSink sets where command lines and their output are echoed.
func WithSink(sink OutputSink) Option {
	return func(a *Adb) {
		a.sink = sink
	}
}

// WithTimeout bounds every adb invocation. Zero disables the bound.
func WithTimeout(timeout time.Duration) Option {
	return func(a *Adb) {
		a.timeout = timeout
	}
}

// NewAdb creates a client for the adb binary at the given path.
func NewAdb(binary string, opts ...Option) *Adb {
	a := &Adb{
		binary:  binary,
		runner:  ExecRunner{},
		sink:    NopSink{},
		timeout: DefaultCommandTimeout,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Binary returns the path of the adb executable this client runs.
func (a *Adb) Binary() string {
	return a.binary
}

// ListDevices returns the serial of every device adb reports, in order.
func (a *Adb) ListDevices(ctx context.Context) ([]DeviceID, error) {
	output, err := a.run(ctx, "devices")
	if err != nil {
		return nil, err
	}
	return parseAdbDevicesOutput(output), nil
}

func parseAdbDevicesOutput(output string) []DeviceID {
	lines := strings.Split(strings.TrimSpace(output), "\n")

	// adb prints daemon startup notices before the header
	lines = lo.DropWhile(lines, func(line string) bool {
		return strings.HasPrefix(line, daemonBannerPrefix)
	})
	if len(lines) == 0 {
		return []DeviceID{}
	}

	records := lo.Filter(lines[1:], func(line string, _ int) bool {
		return strings.TrimSpace(line) != ""
	})

	return lo.Map(records, func(line string, _ int) DeviceID {
		serial, _, _ := strings.Cut(strings.TrimRight(line, "\r"), "\t")
		return DeviceID{serial: serial}
	})
}

// GetExternalStoragePath returns the device's $EXTERNAL_STORAGE.
func (a *Adb) GetExternalStoragePath(ctx context.Context, device DeviceID) (RemotePath, error) {
	output, err := a.runOnDevice(ctx, device, "shell", "echo", "$EXTERNAL_STORAGE")
	if err != nil {
		return RemotePath{}, err
	}
	return NewRemotePath(strings.TrimSpace(output)), nil
}

// PullFolder copies a remote directory tree into a local directory. A
// missing remote directory is reported as NoSuchRemotePath.
func (a *Adb) PullFolder(ctx context.Context, device DeviceID, remoteDir RemotePath, localDir LocalPath) error {
	_, err := a.runOnDevice(ctx, device, "pull", remoteDir.Path(), localDir.Path())
	return err
}

// PushFile copies a single local file onto the device.
func (a *Adb) PushFile(ctx context.Context, device DeviceID, localFile LocalPath, remoteFile RemotePath) error {
	_, err := a.runOnDevice(ctx, device, "push", localFile.Path(), remoteFile.Path())
	return err
}

// ClearFolder removes a remote directory recursively. It succeeds when the
// directory does not exist.
func (a *Adb) ClearFolder(ctx context.Context, device DeviceID, remoteDir RemotePath) error {
	_, err := a.runOnDevice(ctx, device, "shell", "rm", "-rf", remoteDir.EscapedPath())
	return err
}

// GetAPILevel reads ro.build.version.sdk.
func (a *Adb) GetAPILevel(ctx context.Context, device DeviceID) (int, error) {
	output, err := a.runOnDevice(ctx, device, "shell", "getprop", "ro.build.version.sdk")
	if err != nil {
		return 0, err
	}

	value := strings.TrimSpace(output)
	level, err := strconv.Atoi(value)
	if err != nil {
		return 0, WrapError(MalformedResponse, fmt.Sprintf("invalid API level %q on device %s", value, device), err)
	}

	return level, nil
}

// GrantPermission grants a runtime permission to an installed package.
func (a *Adb) GrantPermission(ctx context.Context, device DeviceID, appPackage, permission string) error {
	_, err := a.runOnDevice(ctx, device, "shell", "pm", "grant", appPackage, permission)
	return err
}

// GrantExternalStoragePermissions grants read and write external storage
// access to appPackage.
func (a *Adb) GrantExternalStoragePermissions(ctx context.Context, device DeviceID, appPackage string) error {
	for _, permission := range []string{ReadExternalStoragePermission, WriteExternalStoragePermission} {
		if err := a.GrantPermission(ctx, device, appPackage, permission); err != nil {
			return err
		}
	}
	return nil
}

// Version returns the "Android Debug Bridge version" line of `adb version`.
func (a *Adb) Version(ctx context.Context) (string, error) {
	output, err := a.run(ctx, "version")
	if err != nil {
		return "", err
	}

	for _, line := range strings.Split(output, "\n") {
		if strings.Contains(line, "Android Debug Bridge version") {
			return strings.TrimSpace(line), nil
		}
	}

	return output, nil
}

func (a *Adb) runOnDevice(ctx context.Context, device DeviceID, args ...string) (string, error) {
	return a.run(ctx, append([]string{"-s", device.serial}, args...)...)
}

func (a *Adb) run(ctx context.Context, args ...string) (string, error) {
	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	commandLine := "adb " + strings.Join(args, " ")
	a.sink.Command(commandLine)

	rawOutput, runErr := a.runner.Run(ctx, a.binary, args...)
	for _, line := range strings.Split(strings.TrimSpace(string(rawOutput)), "\n") {
		a.sink.Response(strings.TrimRight(line, "\r"))
	}

	output, err := parseResponse(string(rawOutput))
	if err != nil {
		return "", err
	}

	if runErr != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", WrapError(BridgeCommandError, fmt.Sprintf("%s timed out after %s", commandLine, a.timeout), runErr)
		}
		if output != "" {
			return "", WrapError(BridgeCommandError, output, runErr)
		}
		return "", WrapError(BridgeCommandError, fmt.Sprintf("%s failed", commandLine), runErr)
	}

	return output, nil
}

// parseResponse turns an "adb: error:" response into a typed error and
// returns any other response trimmed.
func parseResponse(response string) (string, error) {
	trimmed := strings.TrimSpace(response)
	if !strings.HasPrefix(trimmed, adbErrorMarker) {
		return trimmed, nil
	}

	message := strings.TrimSpace(strings.TrimPrefix(trimmed, adbErrorMarker))
	if strings.HasSuffix(message, noSuchFileSuffix) {
		return "", NewError(NoSuchRemotePath, trimmed)
	}

	return "", NewError(BridgeCommandError, message)
}
