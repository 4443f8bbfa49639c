package set

import (
	"fmt"
	"strconv"

	"github.com/asnowfix/lights-sengled/pkg/sengled"
	"github.com/asnowfix/lights-sengled/sengledctl/options"

	"github.com/spf13/cobra"
)

var Cmd = &cobra.Command{
	Use:   "set",
	Short: "Change device state",
}

func init() {
	Cmd.AddCommand(brightnessCmd)
	Cmd.AddCommand(colorCmd)
	Cmd.AddCommand(temperatureCmd)
}

var brightnessCmd = &cobra.Command{
	Use:   "brightness <device> <0-255>",
	Short: "Set device brightness",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		device, err := options.LookupDevice(ctx, options.Api, args[0])
		if err != nil {
			return err
		}
		level, err := strconv.ParseUint(args[1], 10, 8)
		if err != nil {
			return fmt.Errorf("brightness %q: want 0-255", args[1])
		}
		return options.Api.SetBrightness(ctx, device, uint8(level))
	},
}

var colorCmd = &cobra.Command{
	Use:   "color <device> <R:G:B>",
	Short: "Set device color",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		device, err := options.LookupDevice(ctx, options.Api, args[0])
		if err != nil {
			return err
		}
		color, err := sengled.ParseColor(args[1])
		if err != nil {
			return err
		}
		return options.Api.SetColor(ctx, device, color)
	},
}

var temperatureCmd = &cobra.Command{
	Use:   "temperature <device> <0-100>",
	Short: "Set white color temperature (0: warmest, 100: coldest)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		device, err := options.LookupDevice(ctx, options.Api, args[0])
		if err != nil {
			return err
		}
		percent, err := strconv.ParseUint(args[1], 10, 8)
		if err != nil || percent > 100 {
			return fmt.Errorf("temperature %q: want 0-100", args[1])
		}
		return options.Api.SetColorTemperature(ctx, device, uint8(percent))
	},
}
