package toggle

import (
	"fmt"

	"github.com/asnowfix/lights-sengled/sengledctl/options"

	"github.com/spf13/cobra"
)

var Cmd = &cobra.Command{
	Use:   "switch <device> on|off",
	Short: "Turn devices on or off",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		device, err := options.LookupDevice(ctx, options.Api, args[0])
		if err != nil {
			return err
		}
		switch args[1] {
		case "on":
			return options.Api.TurnOn(ctx, device)
		case "off":
			return options.Api.TurnOff(ctx, device)
		default:
			return fmt.Errorf("unknown operation %s", args[1])
		}
	},
}
