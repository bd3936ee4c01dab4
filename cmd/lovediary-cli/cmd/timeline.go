package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"lovediary/internal/application"
	"lovediary/internal/application/commands"
	"lovediary/internal/domain"
)

var timelineStart string

var timelineCmd = &cobra.Command{
	Use:   "timeline",
	Short: "Show the relationship timeline and this year's recap",
	Long: `Show every milestone, oldest first: the first date and anniversaries
derived from the relationship start plus the sample milestones. Ends with a
recap of the current year of the diary.

Uses the stored profile unless --start is given.

Examples:
  lovediary-cli timeline
  lovediary-cli timeline --start 2023-07-15`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		var timeline *commands.TimelineCommand
		if timelineStart != "" {
			start, err := application.ParseDate("start", timelineStart, nil)
			if err != nil {
				return err
			}
			timeline = commands.NewTimelineCommand(nil, GetEntries(), GetMilestones(), now())
			timeline.Start = start
		} else {
			s, err := GetStore()
			if err != nil {
				return err
			}
			timeline = commands.NewTimelineCommand(s, GetEntries(), GetMilestones(), now())
		}

		result, err := timeline.Execute(ctx)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, m := range result.Milestones {
			style, _ := domain.LookupMilestoneStyle(m.Kind)
			fmt.Fprintf(out, "%s  %s  %s\n", m.Date.Format("Jan 2, 2006"), style.Emoji, m.Title)
			if m.Description != "" {
				fmt.Fprintf(out, "      %s\n", domain.TruncateText(m.Description, 72))
			}
		}

		recap := result.Recap
		moods := make([]string, len(recap.TopMoods))
		for i, t := range recap.TopMoods {
			mood, _ := domain.LookupMood(t)
			moods[i] = mood.Emoji
		}
		fmt.Fprintf(out, "\n%d recap\n", recap.Year)
		fmt.Fprintf(out, "  Days together:  %d\n", recap.TotalDays)
		fmt.Fprintf(out, "  Diary entries:  %d\n", recap.DiaryEntries)
		fmt.Fprintf(out, "  Love index:     %d%%\n", recap.AverageLoveIndex)
		fmt.Fprintf(out, "  Top moods:      %s\n", strings.Join(moods, " "))
		return nil
	},
}

func init() {
	timelineCmd.Flags().StringVar(&timelineStart, "start", "", "relationship start date (YYYY-MM-DD)")
	rootCmd.AddCommand(timelineCmd)
}
