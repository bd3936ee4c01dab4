package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	mcpadapter "lovediary/internal/adapters/mcp"
	"lovediary/internal/adapters/memory"
	"lovediary/internal/adapters/sqlite"
	"lovediary/internal/adapters/system"
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

// run serves until stdin closes; every exit path detaches from the system
// appearance and closes the store
func run() error {
	dbFlag := flag.String("db", config.DatabasePath(), "path to the profile database")
	levelFlag := flag.String("log-level", config.LogLevel(), "log level (debug, info, warn, error)")
	flag.Parse()

	// stdout carries the protocol
	logger := logging.New(os.Stderr, "lovediary-mcp", *levelFlag)

	store := sqlite.NewStore()
	if err := store.Open(*dbFlag); err != nil {
		return fmt.Errorf("cannot open profile database %s: %w", *dbFlag, err)
	}
	defer store.Close()

	resolver := appearance.New(appearance.WithLogger(logger))
	if forced := config.Appearance(); forced != "" {
		m, err := domain.ParseMode(forced)
		if err != nil {
			logger.Warn("ignoring LOVEDIARY_APPEARANCE", "err", err)
		} else {
			resolver.SetMode(m)
		}
	}
	source := system.NewSource(system.DefaultDetector(),
		system.WithInterval(config.PollInterval()),
		system.WithLogger(logger),
	)
	detach := resolver.Attach(source)
	defer detach()

	mcpServer := server.NewMCPServer(
		"lovediary-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	started := time.Now()
	mcpadapter.Register(mcpServer, mcpadapter.Deps{
		Profiles:   store,
		Entries:    memory.NewSampleRepository(started),
		Milestones: memory.NewSampleMilestones(started),
		Appearance: resolver,
	})

	logger.Info("serving on stdio", "db", store.Path())
	if err := server.ServeStdio(mcpServer); err != nil {
		return fmt.Errorf("server stopped: %w", err)
	}
	return nil
}
