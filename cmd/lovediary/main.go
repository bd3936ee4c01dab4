package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"lovediary/internal/adapters/editor"
	"lovediary/internal/adapters/memory"
	"lovediary/internal/adapters/sqlite"
	"lovediary/internal/adapters/system"
	"lovediary/internal/adapters/tui"
	"lovediary/internal/appearance"
	"lovediary/internal/config"
	"lovediary/internal/domain"
	"lovediary/internal/logging"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run owns every resource of the session so that their deferred cleanup runs
// on error paths too
func run() error {
	dbFlag := flag.String("db", config.DatabasePath(), "path to the profile database")
	levelFlag := flag.String("log-level", config.LogLevel(), "log level (debug, info, warn, error)")
	logFlag := flag.String("log-file", "", "write logs to this file (the screen belongs to the UI)")
	flag.Parse()

	var out io.Writer = io.Discard
	if *logFlag != "" {
		f, err := os.OpenFile(*logFlag, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	logger := logging.New(out, "lovediary", *levelFlag)

	store := sqlite.NewStore()
	if err := store.Open(*dbFlag); err != nil {
		return fmt.Errorf("cannot open %s: %w", *dbFlag, err)
	}
	defer store.Close()

	resolver := appearance.New(appearance.WithLogger(logger))
	source := system.NewSource(system.DefaultDetector(),
		system.WithInterval(config.PollInterval()),
		system.WithLogger(logger),
	)
	detach := resolver.Attach(source)
	defer detach()

	if forced := config.Appearance(); forced != "" {
		if m, err := domain.ParseMode(forced); err != nil {
			logger.Warn("ignoring LOVEDIARY_APPEARANCE", "err", err)
		} else {
			resolver.SetMode(m)
		}
	}

	started := time.Now()
	app := tui.NewApp(tui.Deps{
		Appearance: resolver,
		Profiles:   store,
		Entries:    memory.NewSampleRepository(started),
		Milestones: memory.NewSampleMilestones(started),
		Editor:     editor.NewOpener(),
		Now:        time.Now,
		Location:   time.Local,
		Logger:     logger,
	})
	defer app.Close()

	p := tea.NewProgram(app, tea.WithAltScreen())

	_, err := p.Run()
	return err
}
