package cli

import (
	"github.com/mobile-next/screenshot-reporter/commands"
	"github.com/spf13/cobra"
)

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "List connected devices",
	Long:  `Lists the serial of every device reported by adb.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printResponse(commands.DevicesCommand(cmd.Context(), currentConfig()))
	},
}

var pushCmd = &cobra.Command{
	Use:   "push [local] [remote]",
	Short: "Push a file to the connected device",
	Long:  `Copies a local file to the given path on the single connected device.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := commands.PushRequest{
			Config:     currentConfig(),
			LocalFile:  args[0],
			RemoteFile: args[1],
		}

		return printResponse(commands.PushCommand(cmd.Context(), req))
	},
}

func init() {
	rootCmd.AddCommand(devicesCmd)
	rootCmd.AddCommand(pushCmd)
}
