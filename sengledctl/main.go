package main

import (
	"fmt"
	"os"
	"time"

	"github.com/asnowfix/lights-sengled/hlog"
	"github.com/asnowfix/lights-sengled/pkg/sengled"
	"github.com/asnowfix/lights-sengled/sengledctl/cycle"
	"github.com/asnowfix/lights-sengled/sengledctl/list"
	"github.com/asnowfix/lights-sengled/sengledctl/options"
	"github.com/asnowfix/lights-sengled/sengledctl/set"
	"github.com/asnowfix/lights-sengled/sengledctl/toggle"

	"github.com/spf13/cobra"
)

var Commit string

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sengledctl",
	Short: "Control Sengled cloud-connected lights",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" {
			return nil
		}
		hlog.InitWithDebug(options.Flags.Verbose, options.Flags.Debug)
		log := hlog.Logger

		ctx := options.CommandLineContext(log, options.Flags.CommandTimeout)
		cmd.SetContext(ctx)

		user, pass, err := options.Credentials()
		if err != nil {
			return err
		}
		api, err := sengled.NewE(ctx, log, user, pass)
		if err != nil {
			return err
		}
		options.Api = api
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if options.Api != nil {
			options.Api.Close()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&options.Flags.Verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVarP(&options.Flags.Debug, "debug", "d", false, "debug output")
	rootCmd.PersistentFlags().BoolVarP(&options.Flags.Json, "json", "j", false, "JSON output (default: YAML)")
	rootCmd.PersistentFlags().StringVar(&options.Flags.User, "user", "", "account user (default: $SENGLED_USER)")
	rootCmd.PersistentFlags().StringVar(&options.Flags.Pass, "pass", "", "account password (default: $SENGLED_PASS)")
	rootCmd.PersistentFlags().DurationVarP(&options.Flags.CommandTimeout, "timeout", "t", 30*time.Second, "command timeout (0: none)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(list.Cmd)
	rootCmd.AddCommand(toggle.Cmd)
	rootCmd.AddCommand(set.Cmd)
	rootCmd.AddCommand(cycle.Cmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(Commit)
	},
}
