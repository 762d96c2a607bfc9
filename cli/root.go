package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mobile-next/screenshot-reporter/commands"
	"github.com/mobile-next/screenshot-reporter/devices"
	"github.com/mobile-next/screenshot-reporter/utils"
	"github.com/spf13/cobra"
)

const version = "dev"

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "screenshot-reporter",
	Short: "Collect spoon screenshots from a connected Android device",
	Long: `Pulls screenshots written by spoon on a connected Android device into a report directory,
and prepares the device for screenshot tests by cleaning old screenshots and granting storage permissions.`,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func GetVersion() string {
	return version
}

func initConfig() {
	utils.SetVerbose(verbose)
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "do not echo adb commands and their output")
	rootCmd.PersistentFlags().StringVar(&sdkDir, "sdk-dir", "", "Android SDK root (defaults to local.properties, ANDROID_HOME or ANDROID_SDK_ROOT)")
	rootCmd.PersistentFlags().StringVar(&projectDir, "project-dir", ".", "project directory containing local.properties")
	rootCmd.PersistentFlags().StringVarP(&appPackage, "package", "p", "", "application package id, e.g. com.example.app")
	rootCmd.PersistentFlags().DurationVar(&adbTimeout, "timeout", devices.DefaultCommandTimeout, "maximum duration of a single adb command (0 disables)")
}

// Execute runs the root command
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func currentConfig() commands.Config {
	return commands.Config{
		SdkDir:     sdkDir,
		ProjectDir: projectDir,
		AppPackage: appPackage,
		Timeout:    adbTimeout,
		Quiet:      quiet,
	}
}

// printJson is a helper function to print JSON responses
func printJson(data interface{}) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		utils.Logger().Fatal(err)
	}
	fmt.Println(string(jsonData))
}

// printResponse prints a response and turns an error status into an error
func printResponse(response *commands.CommandResponse) error {
	printJson(response)
	if response.Status == "error" {
		return fmt.Errorf("%s", response.Error)
	}
	return nil
}
