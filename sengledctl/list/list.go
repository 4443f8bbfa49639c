package list

import (
	"github.com/asnowfix/lights-sengled/sengledctl/options"

	"github.com/spf13/cobra"
)

var Cmd = &cobra.Command{
	Use:   "list",
	Short: "List registered devices",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		devices, err := options.Api.GetDevices(cmd.Context())
		if err != nil {
			return err
		}
		return options.PrintResult(devices)
	},
}
