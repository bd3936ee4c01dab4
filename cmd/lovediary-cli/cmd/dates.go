package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"lovediary/internal/application/commands"
)

var daysCmd = &cobra.Command{
	Use:   "days <from> <to>",
	Short: "Count whole days between two dates",
	Long: `Count whole 24-hour periods between two dates, in either order.

Dates are YYYY-MM-DD (local time) or RFC3339.

Examples:
  lovediary-cli days 2023-07-15 2024-07-15
  lovediary-cli days 2024-07-15T10:00:00Z 2024-07-10T09:00:00Z`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		daysCmd := commands.NewDaysBetweenCommand(args[0], args[1], nil)
		result, err := daysCmd.Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

var relativeCmd = &cobra.Command{
	Use:   "relative <date>",
	Short: "Describe how long ago a date was",
	Long: `Describe how long ago a date was: Today, Yesterday, N days ago,
N weeks ago, N months ago or N years ago.

Examples:
  lovediary-cli relative 2024-02-14`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		relCmd := commands.NewRelativeDateCommand(args[0], now(), nil)
		result, err := relCmd.Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), result.Label)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(daysCmd)
	rootCmd.AddCommand(relativeCmd)
}
