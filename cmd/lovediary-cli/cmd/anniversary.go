package cmd

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"lovediary/internal/application"
	"lovediary/internal/application/commands"
	"lovediary/internal/domain"
)

var (
	anniversaryStart string
	anniversaryCopy  bool
)

var anniversaryCmd = &cobra.Command{
	Use:   "anniversary",
	Short: "Show how long you have been together",
	Long: `Show years, months and total days together and the next anniversary.

Uses the stored profile unless --start is given.

Examples:
  lovediary-cli anniversary
  lovediary-cli anniversary --start 2023-07-15 --copy`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		var profile *domain.Profile
		var info domain.AnniversaryInfo

		if anniversaryStart != "" {
			start, err := application.ParseDate("start", anniversaryStart, nil)
			if err != nil {
				return err
			}
			info = domain.GetAnniversaryInfo(start, now())
		} else {
			s, err := GetStore()
			if err != nil {
				return err
			}
			result, err := commands.NewAnniversaryCommand(s, now()).Execute(ctx)
			if err != nil {
				return fmt.Errorf("%w (set one with: lovediary-cli profile set)", err)
			}
			profile, info = result.Profile, result.Info
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Years:            %d\n", info.Years)
		fmt.Fprintf(out, "Months:           %d\n", info.Months)
		fmt.Fprintf(out, "Total days:       %d\n", info.TotalDays)
		fmt.Fprintf(out, "Next anniversary: %s (in %d days)\n",
			domain.FormatDate(info.NextAnniversary, domain.DateFormatLong, now()), info.DaysUntilNext)

		if anniversaryCopy {
			summary := commands.SummarizeAnniversary(profile, info)
			if err := clipboard.WriteAll(summary); err != nil {
				return fmt.Errorf("failed to copy to clipboard: %w", err)
			}
			fmt.Fprintln(out, "Copied summary to clipboard")
		}
		return nil
	},
}

func init() {
	anniversaryCmd.Flags().StringVar(&anniversaryStart, "start", "", "relationship start date (YYYY-MM-DD)")
	anniversaryCmd.Flags().BoolVar(&anniversaryCopy, "copy", false, "copy a summary to the clipboard")
	rootCmd.AddCommand(anniversaryCmd)
}
