package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"lovediary/internal/application/commands"
	"lovediary/internal/domain"
)

var (
	profileYou     string
	profilePartner string
	profileSince   string
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage the relationship profile",
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Store names and the relationship start date",
	Long: `Store your name, your partner's name and the date you got together.

Examples:
  lovediary-cli profile set --you Alex --partner Sam --since 2023-07-15`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		s, err := GetStore()
		if err != nil {
			return err
		}

		setCmd := commands.NewSetProfileCommand(s, profileYou, profilePartner, profileSince, now())
		result, err := setCmd.Execute(ctx)
		if err != nil {
			return err
		}

		logger.Debug("profile saved", "start", result.Profile.StartDate)
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the stored profile",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		s, err := GetStore()
		if err != nil {
			return err
		}

		p, err := commands.NewShowProfileCommand(s).Execute(ctx)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "You:      %s\n", p.YourName)
		fmt.Fprintf(out, "Partner:  %s\n", p.PartnerName)
		fmt.Fprintf(out, "Since:    %s (%s)\n",
			domain.FormatDate(p.StartDate, domain.DateFormatLong, now()),
			domain.FormatRelativeDate(p.StartDate, now()))
		return nil
	},
}

func init() {
	profileSetCmd.Flags().StringVar(&profileYou, "you", "", "your name")
	profileSetCmd.Flags().StringVar(&profilePartner, "partner", "", "partner's name")
	profileSetCmd.Flags().StringVar(&profileSince, "since", "", "relationship start date (YYYY-MM-DD)")

	profileCmd.AddCommand(profileSetCmd)
	profileCmd.AddCommand(profileShowCmd)
	rootCmd.AddCommand(profileCmd)
}
