package commands

import (
	"context"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"gopkg.in/ini.v1"
)

type DoctorInfo struct {
	Version        string `json:"version"`
	OS             string `json:"os"`
	OSVersion      string `json:"os_version"`
	AndroidHome    string `json:"android_home,omitempty"`
	AndroidSdkRoot string `json:"android_sdk_root,omitempty"`
	SdkDir         string `json:"sdk_dir"`
	ADBPath        string `json:"adb_path"`
	ADBFound       bool   `json:"adb_found"`
	ADBVersion     string `json:"adb_version,omitempty"`
}

func adbExists(adbPath string) bool {
	if _, err := os.Stat(adbPath); err == nil {
		return true
	}
	_, err := exec.LookPath(adbPath)
	return err == nil
}

func getOSVersion() string {
	switch runtime.GOOS {
	case "darwin":
		cmd := exec.Command("sw_vers", "-productVersion")
		output, err := cmd.CombinedOutput()
		if err != nil {
			return ""
		}
		return strings.TrimSpace(string(output))
	case "windows":
		cmd := exec.Command("cmd", "/c", "ver")
		output, err := cmd.CombinedOutput()
		if err != nil {
			return ""
		}
		return strings.TrimSpace(string(output))
	case "linux":
		return readOSRelease("/etc/os-release")
	default:
		return ""
	}
}

// readOSRelease returns PRETTY_NAME from an os-release file.
func readOSRelease(path string) string {
	cfg, err := ini.Load(path)
	if err != nil {
		return ""
	}
	return strings.Trim(cfg.Section("").Key("PRETTY_NAME").String(), `"`)
}

// DoctorCommand performs system diagnostics and returns information about the environment
func DoctorCommand(ctx context.Context, version string, cfg Config) *CommandResponse {
	sdkDir := cfg.ResolvedSdkDir()
	adb := cfg.newAdb()

	info := DoctorInfo{
		Version:        version,
		OS:             runtime.GOOS,
		OSVersion:      getOSVersion(),
		AndroidHome:    os.Getenv("ANDROID_HOME"),
		AndroidSdkRoot: os.Getenv("ANDROID_SDK_ROOT"),
		SdkDir:         sdkDir,
		ADBPath:        adb.Binary(),
		ADBFound:       adbExists(adb.Binary()),
	}

	// get adb version if adb is available
	if info.ADBFound {
		adbVersion, err := adb.Version(ctx)
		if err == nil {
			info.ADBVersion = adbVersion
		}
	}

	return NewSuccessResponse(info)
}
