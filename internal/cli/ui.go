package cli

import (
	"github.com/spf13/cobra"

	"github.com/parterm/parterm/internal/theme"
	"github.com/parterm/parterm/internal/tui"
)

func init() {
	rootCmd.AddCommand(uiCmd)
}

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Launch the parterm TUI",
	Long:  "Launch the parterm terminal user interface with the theme picker.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI()
	},
}

func runTUI() error {
	if IsNonInteractive() {
		return &PreflightError{
			Message:  "TUI requires an interactive terminal",
			Hint:     "Run without --non-interactive and with a TTY, or use CLI subcommands",
			NextStep: "parterm --help",
		}
	}

	// Console logging would corrupt the alternate screen; log to file only.
	a, err := setupApp(false)
	if err != nil {
		return err
	}
	if err := a.loadThemes(); err != nil {
		return err
	}

	if a.cfg.WatchThemes {
		watcher, watchErr := theme.NewWatcher(a.manager)
		if watchErr == nil {
			watchErr = watcher.Start()
		}
		// Live reload is a convenience; run without it on failure.
		if watchErr == nil {
			defer watcher.Stop()
		}
	}

	return tui.RunPicker(a.manager, a.registry)
}
