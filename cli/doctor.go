package cli

import (
	"github.com/mobile-next/screenshot-reporter/commands"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run system diagnostics",
	Long:  `Reports the resolved Android SDK, the adb binary in use and its version`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printResponse(commands.DoctorCommand(cmd.Context(), GetVersion(), currentConfig()))
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
