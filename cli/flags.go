package cli

import "time"

var (
	verbose bool
	quiet   bool

	// all commands
	sdkDir     string
	projectDir string
	appPackage string
	adbTimeout time.Duration

	// for pull command
	pullOutputDir string
	pullArchive   bool
)
