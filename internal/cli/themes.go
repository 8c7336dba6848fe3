package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/parterm/parterm/internal/config"
)

func init() {
	themesCmd.AddCommand(themesListCmd)
	themesCmd.AddCommand(themesSetCmd)
	themesCmd.AddCommand(themesValidateCmd)
	themesCmd.AddCommand(themesDirCmd)
	rootCmd.AddCommand(themesCmd)
}

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "Manage parterm themes",
}

var themesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List installed themes",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := setupApp(true)
		if err != nil {
			return err
		}
		if err := a.loadThemes(); err != nil {
			return err
		}

		names, err := a.manager.ListThemes()
		if err != nil {
			return err
		}
		sort.Strings(names)

		active := a.registry.ActiveTheme()
		for _, name := range names {
			marker := " "
			if name == active {
				marker = "*"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", marker, name)
		}
		return nil
	},
}

var themesSetCmd = &cobra.Command{
	Use:   "set <theme>",
	Short: "Select the startup theme",
	Long:  "Select the theme activated at startup, e.g. par_dark. The choice is saved to the config file.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := setupApp(true)
		if err != nil {
			return err
		}
		if err := a.loadThemes(); err != nil {
			return err
		}

		name := args[0]
		if err := a.manager.ChangeTheme(name); err != nil {
			return err
		}
		if err := config.SaveTheme(configPath, name); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Theme set to %s\n", name)
		return nil
	},
}

var themesValidateCmd = &cobra.Command{
	Use:   "validate <name>",
	Short: "Check that a theme file loads",
	Long:  "Check that <name>.json in the theme folder passes access policy and schema validation.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := setupApp(true)
		if err != nil {
			return err
		}

		if err := a.manager.ValidateTheme(args[0]); err != nil {
			return fmt.Errorf("theme %s is not loadable: %w", args[0], err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Theme %s is valid\n", args[0])
		return nil
	},
}

var themesDirCmd = &cobra.Command{
	Use:   "dir",
	Short: "Print the theme folder, creating and seeding it if needed",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := setupApp(true)
		if err != nil {
			return err
		}
		if err := a.manager.EnsureDefaultTheme(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), a.manager.ThemesDir())
		return nil
	},
}
