package cmd

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"lovediary/internal/domain"
)

var challengeSeed uint64

var challengeCmd = &cobra.Command{
	Use:   "challenge",
	Short: "Suggest a couple challenge",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		seed := challengeSeed
		if seed == 0 {
			seed = uint64(now().UnixNano())
		}
		rng := rand.New(rand.NewPCG(seed, seed>>1))

		c, ok := domain.PickRandom(rng, domain.Challenges)
		if !ok {
			return fmt.Errorf("no challenges available")
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s (%s, %s)\n", c.Title, c.Cadence, c.Category)
		fmt.Fprintf(out, "  %s\n", c.Description)
		if c.Reward != "" {
			fmt.Fprintf(out, "  Reward: %s\n", c.Reward)
		}
		return nil
	},
}

func init() {
	challengeCmd.Flags().Uint64Var(&challengeSeed, "seed", 0, "random seed (0 picks one)")
	rootCmd.AddCommand(challengeCmd)
}
