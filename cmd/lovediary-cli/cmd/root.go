package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"lovediary/internal/adapters/memory"
	"lovediary/internal/adapters/sqlite"
	"lovediary/internal/config"
	"lovediary/internal/logging"
	"lovediary/internal/ports"
)

var (
	dbPath   string
	logLevel string

	logger     *log.Logger
	store      *sqlite.Store
	entries    ports.EntryRepository
	milestones ports.MilestoneRepository

	// now is replaced in tests
	now = time.Now
)

var rootCmd = &cobra.Command{
	Use:   "lovediary-cli",
	Short: "CLI for the Love Diary",
	Long: `lovediary-cli answers the relationship questions of the Love Diary
from the command line: days together, the next anniversary, love index
stats over the diary feed, the relationship timeline and the light/dark
design tokens.

The relationship profile is stored in a local SQLite database. Diary
entries are sample data held in memory.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		logger = logging.New(cmd.ErrOrStderr(), "lovediary", logLevel)
		entries = memory.NewSampleRepository(now())
		milestones = memory.NewSampleMilestones(now())
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if store == nil {
			return nil
		}
		err := store.Close()
		store = nil
		return err
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", config.DatabasePath(), "path to the profile database")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", config.LogLevel(), "log level (debug, info, warn, error)")
}

// GetStore opens the profile database on first use
func GetStore() (ports.ProfileStore, error) {
	if store != nil {
		return store, nil
	}
	s := sqlite.NewStore()
	if err := s.Open(dbPath); err != nil {
		return nil, err
	}
	logger.Debug("opened profile database", "path", s.Path())
	store = s
	return store, nil
}

// GetEntries returns the in-memory diary feed
func GetEntries() ports.EntryRepository {
	return entries
}

// GetMilestones returns the in-memory timeline milestones
func GetMilestones() ports.MilestoneRepository {
	return milestones
}
