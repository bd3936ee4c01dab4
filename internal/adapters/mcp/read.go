package mcp

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"lovediary/internal/application/commands"
	"lovediary/internal/domain"
)

// RegisterReadTools adds all read-only tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, deps Deps) {
	s.AddTool(daysBetweenTool(), daysBetweenHandler(deps))
	s.AddTool(relativeDateTool(), relativeDateHandler(deps))
	s.AddTool(anniversaryTool(), anniversaryHandler(deps))
	s.AddTool(loveStatsTool(), loveStatsHandler(deps))
	s.AddTool(listEntriesTool(), listEntriesHandler(deps))
	s.AddTool(timelineTool(), timelineHandler(deps))
	s.AddTool(themeTokensTool(), themeTokensHandler(deps))
}

// --- days_between ---

func daysBetweenTool() mcp.Tool {
	return mcp.NewTool("days_between",
		mcp.WithDescription("Count whole days between two dates, regardless of order."),
		mcp.WithString("from",
			mcp.Description("First date (YYYY-MM-DD or RFC3339)"),
			mcp.Required(),
		),
		mcp.WithString("to",
			mcp.Description("Second date (YYYY-MM-DD or RFC3339)"),
			mcp.Required(),
		),
	)
}

func daysBetweenHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewDaysBetweenCommand(req.GetString("from", ""), req.GetString("to", ""), deps.Location)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- relative_date ---

func relativeDateTool() mcp.Tool {
	return mcp.NewTool("relative_date",
		mcp.WithDescription("Describe how long ago a date was (Today, Yesterday, N days/weeks/months/years ago)."),
		mcp.WithString("date",
			mcp.Description("Date to describe (YYYY-MM-DD or RFC3339)"),
			mcp.Required(),
		),
	)
}

func relativeDateHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewRelativeDateCommand(req.GetString("date", ""), deps.now(), deps.Location)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Label), nil
	}
}

// --- anniversary ---

func anniversaryTool() mcp.Tool {
	return mcp.NewTool("anniversary",
		mcp.WithDescription("Relationship timespan: years, months, total days and the next anniversary. Uses the stored profile unless start_date is given."),
		mcp.WithString("start_date",
			mcp.Description("Relationship start date (YYYY-MM-DD). Omit to use the stored profile."),
		),
	)
}

func anniversaryHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		now := deps.now()

		if raw := req.GetString("start_date", ""); raw != "" {
			start, err := parseDate("start_date", raw, deps)
			if err != nil {
				return toolError(err)
			}
			info := domain.GetAnniversaryInfo(start, now)
			return mcp.NewToolResultText(formatAnniversary(info)), nil
		}

		result, err := commands.NewAnniversaryCommand(deps.Profiles, now).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message + "\n" + formatAnniversary(result.Info)), nil
	}
}

func formatAnniversary(info domain.AnniversaryInfo) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "years: %d\n", info.Years)
	fmt.Fprintf(&sb, "months: %d\n", info.Months)
	fmt.Fprintf(&sb, "days: %d\n", info.Days)
	fmt.Fprintf(&sb, "total_days: %d\n", info.TotalDays)
	fmt.Fprintf(&sb, "next_anniversary: %s\n", info.NextAnniversary.Format("2006-01-02"))
	fmt.Fprintf(&sb, "days_until_next: %d\n", info.DaysUntilNext)
	return sb.String()
}

// --- timeline ---

func timelineTool() mcp.Tool {
	return mcp.NewTool("timeline",
		mcp.WithDescription("Relationship milestones oldest first, with a recap of the current year. Uses the stored profile unless start_date is given."),
		mcp.WithString("start_date",
			mcp.Description("Relationship start date (YYYY-MM-DD). Omit to use the stored profile."),
		),
	)
}

func timelineHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewTimelineCommand(deps.Profiles, deps.Entries, deps.Milestones, deps.now())
		cmd.Location = deps.Location

		if raw := req.GetString("start_date", ""); raw != "" {
			start, err := parseDate("start_date", raw, deps)
			if err != nil {
				return toolError(err)
			}
			cmd.Start = start
		}

		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		sb.WriteString(result.Message + "\n")
		for _, m := range result.Milestones {
			fmt.Fprintf(&sb, "%s [%s] %s", m.Date.Format("2006-01-02"), m.Kind, m.Title)
			if m.Description != "" {
				fmt.Fprintf(&sb, ": %s", m.Description)
			}
			sb.WriteString("\n")
		}

		recap := result.Recap
		moods := make([]string, len(recap.TopMoods))
		for i, t := range recap.TopMoods {
			moods[i] = string(t)
		}
		fmt.Fprintf(&sb, "recap_year: %d\n", recap.Year)
		fmt.Fprintf(&sb, "total_days: %d\n", recap.TotalDays)
		fmt.Fprintf(&sb, "diary_entries: %d\n", recap.DiaryEntries)
		fmt.Fprintf(&sb, "average_love_index: %d\n", recap.AverageLoveIndex)
		fmt.Fprintf(&sb, "top_moods: %s\n", strings.Join(moods, ", "))
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- love_stats ---

func loveStatsTool() mcp.Tool {
	return mcp.NewTool("love_stats",
		mcp.WithDescription("Average love index of the diary feed, its heart level and the mood distribution."),
	)
}

func loveStatsHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewLoveStatsCommand(deps.Entries).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		sb.WriteString(result.Message)
		sb.WriteByte('\n')
		for _, mc := range result.MoodCounts {
			fmt.Fprintf(&sb, "%s  %d\n", mc.Mood, mc.Count)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- list_entries ---

func listEntriesTool() mcp.Tool {
	return mcp.NewTool("list_entries",
		mcp.WithDescription("List diary entries grouped by date. Optionally fuzzy-search by text/author and filter by mood."),
		mcp.WithString("query",
			mcp.Description("Search text (at least 2 characters to filter)"),
		),
		mcp.WithString("mood",
			mcp.Description("Only entries with this mood (e.g. joyful, loving, cozy)"),
		),
	)
}

func listEntriesHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query := req.GetString("query", "")
		mood := domain.MoodType(req.GetString("mood", ""))

		results, err := commands.NewSearchEntriesCommand(deps.Entries, query, mood).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if len(results) == 0 {
			return mcp.NewToolResultText("No entries found."), nil
		}

		entries := make([]domain.Entry, len(results))
		for i, r := range results {
			entries[i] = r.Entry
		}

		now := deps.now()
		groups := commands.LabelGroups(domain.GroupEntriesByDate(entries, domain.EntryTimestamp, deps.Location), now, deps.Location)

		var sb strings.Builder
		for _, g := range groups {
			fmt.Fprintf(&sb, "## %s (%s)\n", g.Label, g.Date)
			for _, e := range g.Entries {
				fmt.Fprintf(&sb, "%s  %s  %s  %s  ♥%d  %s\n",
					e.ID, domain.FormatTime(e.Timestamp), e.Author.Name, e.Mood, e.LoveIndex,
					domain.TruncateText(e.Text, 80))
			}
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- theme_tokens ---

func themeTokensTool() mcp.Tool {
	return mcp.NewTool("theme_tokens",
		mcp.WithDescription("Design tokens (color roles and shadow levels) for an appearance mode."),
		mcp.WithString("mode",
			mcp.Description("light or dark. Omit for the current appearance."),
			mcp.Enum("light", "dark"),
		),
	)
}

func themeTokensHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		mode := req.GetString("mode", "")
		if mode == "" {
			mode = domain.ModeLight.String()
			if deps.Appearance != nil {
				mode = deps.Appearance.Mode().String()
			}
		}

		result, err := commands.NewThemeTokensCommand(mode).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "mode: %s\n", result.Mode)
		for _, k := range sortedKeys(result.Colors) {
			fmt.Fprintf(&sb, "%s  %s\n", k, result.Colors[k])
		}
		for _, k := range sortedKeys(result.Shadows) {
			sh := result.Shadows[k]
			fmt.Fprintf(&sb, "shadow.%s  %s  opacity=%.2f  elevation=%d\n", k, sh.Color, sh.Opacity, sh.Elevation)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
