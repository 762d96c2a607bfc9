package cli

import (
	"testing"

	"github.com/mobile-next/screenshot-reporter/commands"
	"github.com/mobile-next/screenshot-reporter/devices"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_RegistersIntents(t *testing.T) {
	names := map[string]bool{}
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
	}

	for _, want := range []string{"pull", "clean", "grant", "setup", "devices", "push", "doctor"} {
		assert.True(t, names[want], "missing subcommand %q", want)
	}
}

func TestRootCommand_TimeoutDefault(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("timeout")
	require.NotNil(t, flag)
	assert.Equal(t, devices.DefaultCommandTimeout.String(), flag.DefValue)
}

func TestCurrentConfig_ReflectsFlags(t *testing.T) {
	require.NoError(t, rootCmd.PersistentFlags().Set("package", "com.example.app"))
	require.NoError(t, rootCmd.PersistentFlags().Set("quiet", "true"))
	t.Cleanup(func() {
		_ = rootCmd.PersistentFlags().Set("package", "")
		_ = rootCmd.PersistentFlags().Set("quiet", "false")
	})

	cfg := currentConfig()
	assert.Equal(t, "com.example.app", cfg.AppPackage)
	assert.True(t, cfg.Quiet)
	assert.Equal(t, devices.DefaultCommandTimeout, cfg.Timeout)
}

func TestPrintResponse(t *testing.T) {
	require.NoError(t, printResponse(commands.NewSuccessResponse([]string{"A"})))

	err := printResponse(commands.NewErrorResponse(devices.NewError(devices.PreconditionFailure, "no devices found")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no devices found")
}
