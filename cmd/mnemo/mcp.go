package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/mnemo-chat/mnemo/internal/memory"
	"github.com/mnemo-chat/mnemo/internal/persona"
	"github.com/mnemo-chat/mnemo/modules/memory/file"
)

// mcpCmd serves the memory store and classifier as MCP tools over stdio,
// so an LLM client can recall and record facts mid-conversation.
func mcpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Serve memory tools over the Model Context Protocol (stdio)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfgPath, _ := cmd.Flags().GetString("config")
			dataDir, _ := cmd.Flags().GetString("data-dir")

			mod, err := loadMemoryModule(cfgPath, dataDir)
			if err != nil {
				return err
			}

			s := server.NewMCPServer("mnemo", version,
				server.WithToolCapabilities(false),
			)
			registerMCPTools(s, mod)
			return server.ServeStdio(s)
		},
	}
	cmd.Flags().StringP("config", "c", "", "Path to configuration file")
	cmd.Flags().String("data-dir", "", "Override the data directory")
	return cmd
}

func registerMCPTools(s *server.MCPServer, mod *file.Module) {
	s.AddTool(
		mcp.NewTool("memory_search",
			mcp.WithDescription("Search the user's remembered conversation entries by relevance"),
			mcp.WithString("query", mcp.Required(), mcp.Description("Free-text search query")),
			mcp.WithNumber("limit", mcp.Description("Maximum results, default 10")),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			query, err := req.RequireString("query")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			limit := int(req.GetFloat("limit", memory.DefaultSearchLimit))

			idx := mod.Cache().Get(ctx)
			results := memory.Search(idx, query, limit)
			if len(results) == 0 {
				return mcp.NewToolResultText("No matching memories."), nil
			}

			var b strings.Builder
			for i, res := range results {
				fmt.Fprintf(&b, "%d. (%.1f) %s", i+1, res.Score, res.Entry.Content)
				if res.Entry.Context != "" {
					fmt.Fprintf(&b, " [%s]", res.Entry.Context)
				}
				b.WriteString("\n")
			}
			return mcp.NewToolResultText(b.String()), nil
		},
	)

	s.AddTool(
		mcp.NewTool("memory_append",
			mcp.WithDescription("Record one new memory entry"),
			mcp.WithString("content", mcp.Required(), mcp.Description("The fact or utterance to remember")),
			mcp.WithString("speaker", mcp.Description("\"user\" or \"companion\", default user")),
			mcp.WithString("context", mcp.Description("Optional provenance tag")),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			content, err := req.RequireString("content")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			speaker := memory.Speaker(req.GetString("speaker", string(memory.SpeakerUser)))
			if speaker != memory.SpeakerUser && speaker != memory.SpeakerCompanion {
				return mcp.NewToolResultError("speaker must be \"user\" or \"companion\""), nil
			}

			entry := memory.NewEntry(speaker, content, req.GetString("context", ""))
			if err := mod.Store().Append(ctx, entry); err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			mod.Cache().Invalidate()
			return mcp.NewToolResultText("Remembered as " + entry.ID), nil
		},
	)

	s.AddTool(
		mcp.NewTool("classify_mode",
			mcp.WithDescription("Classify which personality mode fits a message"),
			mcp.WithString("message", mcp.Required(), mcp.Description("The user message to classify")),
		),
		func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			message, err := req.RequireString("message")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			result := persona.Evaluate(message, nil)
			style := persona.StyleFor(result.Mode)
			text := fmt.Sprintf("mode: %s\nsentiment: %s\nurgency: %s\ncomplexity: %s\ntone: %s\nresponse pattern: %s",
				result.Mode, result.Sentiment, result.Urgency, result.Complexity,
				style.Tone, style.ResponsePattern)
			return mcp.NewToolResultText(text), nil
		},
	)
}
