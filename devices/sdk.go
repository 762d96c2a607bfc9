package devices

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/mobile-next/screenshot-reporter/utils"
	"gopkg.in/ini.v1"
)

const (
	LocalPropertiesFile = "local.properties"
	sdkDirKey           = "sdk.dir"
)

// ReadLocalPropertiesSdkDir returns sdk.dir from <projectDir>/local.properties,
// or an empty string when the file or the key is absent.
func ReadLocalPropertiesSdkDir(projectDir string) (string, error) {
	propertiesPath := filepath.Join(projectDir, LocalPropertiesFile)
	if _, err := os.Stat(propertiesPath); errors.Is(err, os.ErrNotExist) {
		return "", nil
	}

	// Properties files only treat # and ; as comments at the start of a line.
	cfg, err := ini.LoadSources(ini.LoadOptions{IgnoreInlineComment: true}, propertiesPath)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", propertiesPath, err)
	}

	value := cfg.Section("").Key(sdkDirKey).String()
	return unescapeProperty(value), nil
}

// unescapeProperty undoes java.util.Properties escaping, which Android Studio
// writes on Windows (C\:\\Users\\...).
func unescapeProperty(value string) string {
	replacer := strings.NewReplacer(`\\`, `\`, `\:`, `:`, `\=`, `=`, `\ `, ` `)
	return strings.TrimSpace(replacer.Replace(value))
}

// FindAndroidSdk resolves the SDK root. An explicit directory wins, then
// sdk.dir from local.properties, then ANDROID_HOME, ANDROID_SDK_ROOT and
// the platform default install locations. Returns "" when nothing exists.
func FindAndroidSdk(explicit, projectDir string) string {
	if explicit != "" {
		return explicit
	}

	if projectDir != "" {
		sdkDir, err := ReadLocalPropertiesSdkDir(projectDir)
		if err != nil {
			utils.Warn("Ignoring %s: %v", LocalPropertiesFile, err)
		} else if sdkDir != "" {
			return sdkDir
		}
	}

	for _, env := range []string{"ANDROID_HOME", "ANDROID_SDK_ROOT"} {
		if sdkPath := os.Getenv(env); sdkPath != "" && dirExists(sdkPath) {
			return sdkPath
		}
	}

	for _, candidate := range defaultSdkLocations() {
		if dirExists(candidate) {
			return candidate
		}
	}

	return ""
}

func defaultSdkLocations() []string {
	var locations []string

	if homeDir := os.Getenv("HOME"); homeDir != "" {
		locations = append(locations,
			filepath.Join(homeDir, "Library", "Android", "sdk"),
			filepath.Join(homeDir, "Android", "Sdk"),
		)
	}

	if runtime.GOOS == "windows" {
		if localAppData := os.Getenv("LOCALAPPDATA"); localAppData != "" {
			locations = append(locations, filepath.Join(localAppData, "Android", "Sdk"))
		}
		if userProfile := os.Getenv("USERPROFILE"); userProfile != "" {
			locations = append(locations, filepath.Join(userProfile, "AppData", "Local", "Android", "Sdk"))
		}
	}

	return locations
}

// AdbPathForSdk returns <sdkDir>/platform-tools/adb, falling back to adb on
// PATH when sdkDir is empty.
func AdbPathForSdk(sdkDir string) string {
	if sdkDir == "" {
		if adbPath, err := exec.LookPath("adb"); err == nil {
			return adbPath
		}
		return "adb"
	}

	adbPath := filepath.Join(sdkDir, "platform-tools", "adb")
	if runtime.GOOS == "windows" {
		adbPath += ".exe"
	}
	return adbPath
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
