package utils

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()

	buf := &bytes.Buffer{}
	out := logger.Out
	logger.SetOutput(buf)
	t.Cleanup(func() { logger.SetOutput(out) })

	return buf
}

func TestSetVerbose(t *testing.T) {
	// save original state and restore after test
	original := Logger().GetLevel()
	defer Logger().SetLevel(original)

	SetVerbose(true)
	assert.Equal(t, logrus.DebugLevel, Logger().GetLevel())

	SetVerbose(false)
	assert.Equal(t, logrus.InfoLevel, Logger().GetLevel())
}

func TestVerbose_SuppressedWhenDisabled(t *testing.T) {
	original := Logger().GetLevel()
	defer Logger().SetLevel(original)
	buf := captureLogs(t)

	SetVerbose(false)
	Verbose("test message %s %d", "arg", 42)

	assert.Empty(t, buf.String())
}

func TestVerbose_WrittenWhenEnabled(t *testing.T) {
	original := Logger().GetLevel()
	defer Logger().SetLevel(original)
	buf := captureLogs(t)

	SetVerbose(true)
	Verbose("test message %s %d", "arg", 42)

	assert.Contains(t, buf.String(), "test message arg 42")
}

func TestInfoAndWarn(t *testing.T) {
	buf := captureLogs(t)

	Info("test info %s", "message")
	Warn("test warn %s", "message")

	assert.Contains(t, buf.String(), "test info message")
	assert.Contains(t, buf.String(), "level=warning")
}

func TestLogger_TextFormatter(t *testing.T) {
	formatter, ok := Logger().Formatter.(*logrus.TextFormatter)

	assert.True(t, ok)
	assert.True(t, formatter.FullTimestamp)
	assert.Equal(t, "15:04:05.000000", formatter.TimestampFormat)
}
