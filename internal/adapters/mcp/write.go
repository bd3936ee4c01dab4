package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"lovediary/internal/application"
	"lovediary/internal/application/commands"
	"lovediary/internal/domain"
)

// RegisterWriteTools adds all tools that change state to the MCP server.
func RegisterWriteTools(s *server.MCPServer, deps Deps) {
	s.AddTool(setProfileTool(), setProfileHandler(deps))
	s.AddTool(addEntryTool(), addEntryHandler(deps))
	s.AddTool(likeEntryTool(), likeEntryHandler(deps))
	if deps.Milestones != nil {
		s.AddTool(addMilestoneTool(), addMilestoneHandler(deps))
	}
	if deps.Appearance != nil {
		s.AddTool(setAppearanceTool(), setAppearanceHandler(deps))
	}
}

// --- set_profile ---

func setProfileTool() mcp.Tool {
	return mcp.NewTool("set_profile",
		mcp.WithDescription("Store the couple's names and the relationship start date."),
		mcp.WithString("your_name",
			mcp.Description("Your name"),
			mcp.Required(),
		),
		mcp.WithString("partner_name",
			mcp.Description("Partner's name"),
			mcp.Required(),
		),
		mcp.WithString("start_date",
			mcp.Description("Relationship start date (YYYY-MM-DD)"),
			mcp.Required(),
		),
	)
}

func setProfileHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewSetProfileCommand(deps.Profiles,
			req.GetString("your_name", ""),
			req.GetString("partner_name", ""),
			req.GetString("start_date", ""),
			deps.now(),
		)
		cmd.Location = deps.Location

		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- add_entry ---

func addEntryTool() mcp.Tool {
	return mcp.NewTool("add_entry",
		mcp.WithDescription("Add a text entry to the top of the diary feed. Entries live in memory only."),
		mcp.WithString("text",
			mcp.Description("Entry text (10 to 5000 characters)"),
			mcp.Required(),
		),
		mcp.WithString("author",
			mcp.Description("Author name (default: You)"),
		),
		mcp.WithBoolean("partner",
			mcp.Description("Whether the author is the partner"),
		),
		mcp.WithString("mood",
			mcp.Description("Mood (e.g. joyful, loving, cozy)"),
		),
		mcp.WithNumber("love_index",
			mcp.Description("Love index 0-100 (default 50)"),
		),
		mcp.WithBoolean("private",
			mcp.Description("Keep the entry private"),
		),
	)
}

func addEntryHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		author := domain.Author{
			Name:      req.GetString("author", "You"),
			IsPartner: req.GetBool("partner", false),
		}

		cmd := commands.NewDraftEntryCommand(deps.Entries, author,
			req.GetString("text", ""),
			domain.MoodType(req.GetString("mood", "")),
			req.GetInt("love_index", 50),
			deps.now(),
		)
		cmd.Private = req.GetBool("private", false)

		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprintf("%s (id %s)", result.Message, result.Entry.ID)), nil
	}
}

// --- like_entry ---

func likeEntryTool() mcp.Tool {
	return mcp.NewTool("like_entry",
		mcp.WithDescription("Like or unlike a diary entry."),
		mcp.WithString("id",
			mcp.Description("Entry ID"),
			mcp.Required(),
		),
	)
}

func likeEntryHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewToggleLikeCommand(deps.Entries, req.GetString("id", "")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- add_milestone ---

func addMilestoneTool() mcp.Tool {
	return mcp.NewTool("add_milestone",
		mcp.WithDescription("Add a milestone to the relationship timeline. Milestones live in memory only."),
		mcp.WithString("title",
			mcp.Description("Milestone title"),
			mcp.Required(),
		),
		mcp.WithString("date",
			mcp.Description("Milestone date (YYYY-MM-DD)"),
			mcp.Required(),
		),
		mcp.WithString("kind",
			mcp.Description("first_date, anniversary, first_kiss, travel, birthday, first_argument, moved_in, engaged, married, baby or custom (default)"),
		),
		mcp.WithString("description",
			mcp.Description("A few words about the moment"),
		),
	)
}

func addMilestoneHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewAddMilestoneCommand(deps.Milestones,
			domain.MilestoneKind(req.GetString("kind", "")),
			req.GetString("title", ""),
			req.GetString("date", ""),
			req.GetString("description", ""),
		)
		cmd.Location = deps.Location

		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprintf("%s (id %s)", result.Message, result.Milestone.ID)), nil
	}
}

// --- set_appearance ---

func setAppearanceTool() mcp.Tool {
	return mcp.NewTool("set_appearance",
		mcp.WithDescription("Pin the appearance to light or dark, or follow the system again."),
		mcp.WithString("mode",
			mcp.Description("light, dark or system"),
			mcp.Required(),
			mcp.Enum("light", "dark", "system"),
		),
	)
}

func setAppearanceHandler(deps Deps) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		raw := req.GetString("mode", "")
		if raw == "system" {
			deps.Appearance.FollowSystem()
			return mcp.NewToolResultText(fmt.Sprintf("Following system appearance (%s)", deps.Appearance.Mode())), nil
		}

		m, err := application.ParseMode(raw)
		if err != nil {
			return toolError(err)
		}
		deps.Appearance.SetMode(m)
		return mcp.NewToolResultText(fmt.Sprintf("Appearance set to %s", m)), nil
	}
}

func parseDate(field, raw string, deps Deps) (time.Time, error) {
	return application.ParseDate(field, raw, deps.Location)
}
