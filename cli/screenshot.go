package cli

import (
	"github.com/mobile-next/screenshot-reporter/commands"
	"github.com/spf13/cobra"
)

var pullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Pull screenshots from the connected device into a report directory",
	Long: `Deletes and recreates the output directory, pulls the spoon screenshot directory from the
device's external storage and flattens it so every test has its own folder directly under the output directory.
A missing screenshot directory on the device is reported as a warning.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		req := commands.PullRequest{
			Config:    currentConfig(),
			OutputDir: pullOutputDir,
			Archive:   pullArchive,
		}

		return printResponse(commands.PullScreenshotsCommand(cmd.Context(), req))
	},
}

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove screenshots from the connected device",
	Long:  `Removes the spoon screenshot directory from the device's external storage. Succeeds if it is already absent.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printResponse(commands.CleanScreenshotsCommand(cmd.Context(), currentConfig()))
	},
}

var grantCmd = &cobra.Command{
	Use:   "grant",
	Short: "Grant storage permissions to the app under test",
	Long:  `Grants READ_EXTERNAL_STORAGE and WRITE_EXTERNAL_STORAGE to the package on devices running API 23 or newer.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printResponse(commands.GrantPermissionsCommand(cmd.Context(), currentConfig()))
	},
}

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Prepare the connected device for a screenshot run",
	Long:  `Removes old screenshots from the device and grants storage permissions to the package.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printResponse(commands.SetupCommand(cmd.Context(), currentConfig()))
	},
}

func init() {
	rootCmd.AddCommand(pullCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(grantCmd)
	rootCmd.AddCommand(setupCmd)

	// pull command flags
	pullCmd.Flags().StringVarP(&pullOutputDir, "output", "o", "", "report directory (default <project-dir>/build/reports/screenshots)")
	pullCmd.Flags().BoolVar(&pullArchive, "zip", false, "also write the report as <output>.zip")
}
