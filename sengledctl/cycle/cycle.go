package cycle

import (
	"time"

	"github.com/asnowfix/lights-sengled/pkg/sengled"
	"github.com/asnowfix/lights-sengled/sengledctl/options"

	"github.com/spf13/cobra"
)

var interval time.Duration

func init() {
	Cmd.Flags().DurationVarP(&interval, "interval", "i", 200*time.Millisecond, "time between color changes")
}

var Cmd = &cobra.Command{
	Use:   "cycle <device> <R:G:B> <R:G:B> [R:G:B]...",
	Short: "Cycle a device through colors until interrupted",
	Args:  cobra.MinimumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		device, err := options.LookupDevice(ctx, options.Api, args[0])
		if err != nil {
			return err
		}

		colors := make([]sengled.Color, 0, len(args)-1)
		for _, arg := range args[1:] {
			color, err := sengled.ParseColor(arg)
			if err != nil {
				return err
			}
			colors = append(colors, color)
		}

		tick := time.NewTicker(interval)
		defer tick.Stop()

		for i := 0; ; i++ {
			if err := options.Api.SetColor(ctx, device, colors[i%len(colors)]); err != nil {
				return err
			}
			select {
			case <-ctx.Done():
				return nil
			case <-tick.C:
			}
		}
	},
}
