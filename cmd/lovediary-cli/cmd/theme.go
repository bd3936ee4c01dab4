package cmd

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"lovediary/internal/adapters/system"
	"lovediary/internal/application/commands"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Inspect the light and dark design tokens",
}

var themeShowCmd = &cobra.Command{
	Use:   "show [light|dark]",
	Short: "Print the color roles and shadow levels of a mode",
	Long: `Print the color roles and shadow levels of the light or dark bundle.

Without an argument the system appearance decides.

Examples:
  lovediary-cli theme show
  lovediary-cli theme show dark`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		mode := ""
		if len(args) == 1 {
			mode = args[0]
		} else {
			m, err := system.DefaultDetector()()
			if err != nil {
				logger.Debug("system appearance unavailable, using light", "err", err)
			}
			mode = m.String()
		}

		result, err := commands.NewThemeTokensCommand(mode).Execute(ctx)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "mode: %s\n\n", result.Mode)
		for _, k := range sortedKeys(result.Colors) {
			fmt.Fprintf(out, "  %-20s %s\n", k, result.Colors[k])
		}
		fmt.Fprintln(out)
		for _, k := range sortedKeys(result.Shadows) {
			sh := result.Shadows[k]
			fmt.Fprintf(out, "  shadow.%-13s %s  y=%.0f blur=%.0f opacity=%.2f\n", k, sh.Color, sh.OffsetY, sh.Blur, sh.Opacity)
		}
		return nil
	},
}

var themeDetectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Print the system appearance",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := system.DefaultDetector()()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), m)
		return nil
	},
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func init() {
	themeCmd.AddCommand(themeShowCmd)
	themeCmd.AddCommand(themeDetectCmd)
	rootCmd.AddCommand(themeCmd)
}
