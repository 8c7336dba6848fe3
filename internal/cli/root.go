// Package cli provides the parterm command line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath     string
	nonInteractive bool
)

var rootCmd = &cobra.Command{
	Use:           "parterm",
	Short:         "parterm terminal application",
	Long:          "parterm is an interactive terminal application with user-installable themes.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to the config file")
	rootCmd.PersistentFlags().BoolVar(&nonInteractive, "non-interactive", false, "never prompt; fail instead of waiting for a TTY")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var preflight *PreflightError
		if asPreflight(err, &preflight) {
			fmt.Fprintln(os.Stderr, preflight.Message)
			if preflight.Hint != "" {
				fmt.Fprintln(os.Stderr, "hint: "+preflight.Hint)
			}
			if preflight.NextStep != "" {
				fmt.Fprintln(os.Stderr, "next: "+preflight.NextStep)
			}
		} else {
			fmt.Fprintln(os.Stderr, "error: "+err.Error())
		}
		os.Exit(1)
	}
}
