package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"lovediary/internal/application/commands"
	"lovediary/internal/domain"
)

var (
	entriesQuery string
	entriesMood  string
)

var entriesCmd = &cobra.Command{
	Use:   "entries",
	Short: "List diary entries grouped by day",
	Long: `List the diary feed grouped by calendar day, newest first.

Results can be narrowed with a fuzzy search over text and author, and with a
mood filter.

Examples:
  lovediary-cli entries
  lovediary-cli entries --query sunset
  lovediary-cli entries --mood cozy`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		searchCmd := commands.NewSearchEntriesCommand(GetEntries(), entriesQuery, domain.MoodType(entriesMood))
		results, err := searchCmd.Execute(ctx)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(results) == 0 {
			fmt.Fprintln(out, "No entries found")
			return nil
		}

		found := make([]domain.Entry, len(results))
		for i, r := range results {
			found[i] = r.Entry
		}
		groups := commands.LabelGroups(domain.GroupEntriesByDate(found, domain.EntryTimestamp, nil), now(), nil)

		for _, g := range groups {
			fmt.Fprintf(out, "%s\n", g.Label)
			for _, e := range g.Entries {
				mood, _ := domain.LookupMood(e.Mood)
				fmt.Fprintf(out, "  [%s] %s %s %s ♥%d\n", e.ID, domain.FormatTime(e.Timestamp), e.Author.Name, mood.Emoji, e.LoveIndex)
				fmt.Fprintf(out, "      %s\n", domain.TruncateText(e.Text, 72))
			}
		}
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Average love index and mood distribution",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		result, err := commands.NewLoveStatsCommand(GetEntries()).Execute(ctx)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, result.Message)
		for _, mc := range result.MoodCounts {
			mood, _ := domain.LookupMood(mc.Mood)
			fmt.Fprintf(out, "  %s %-10s %d\n", mood.Emoji, mood.Label, mc.Count)
		}
		return nil
	},
}

func init() {
	entriesCmd.Flags().StringVarP(&entriesQuery, "query", "q", "", "fuzzy search text")
	entriesCmd.Flags().StringVarP(&entriesMood, "mood", "m", "", "only entries with this mood")
	rootCmd.AddCommand(entriesCmd)
	rootCmd.AddCommand(statsCmd)
}
