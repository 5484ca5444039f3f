// Package server exposes airis capabilities as MCP tools over stdio.
//
// This is the composition root for host integrations: it wires the
// confidence scorer, repo indexer, and research planner into an MCP
// server and relays their responses as JSON text content. Argument
// translation lives here; business logic stays in the domain packages.
package server

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/airisdev/airis-agent/internal/budget"
	"github.com/airisdev/airis-agent/internal/confidence"
	"github.com/airisdev/airis-agent/internal/history"
	"github.com/airisdev/airis-agent/internal/logger"
	"github.com/airisdev/airis-agent/internal/repoindex"
	"github.com/airisdev/airis-agent/internal/research"
)

// Version is injected at build time via ldflags.
var Version = "dev"

// Deps carries the wired components the server dispatches to.
// History may be nil when assessment recording is disabled.
type Deps struct {
	Scorer  *confidence.Scorer
	Tracker *budget.Tracker
	History *history.Store
	Log     *logger.ConsoleLogger
}

// New creates the MCP server with the confidence_check, repo_index, and
// deep_research tools registered.
func New(deps Deps) (*server.MCPServer, error) {
	if deps.Scorer == nil {
		return nil, fmt.Errorf("scorer is required")
	}
	if deps.Tracker == nil {
		deps.Tracker = budget.NewTracker()
	}
	if deps.Log == nil {
		deps.Log = logger.NewConsoleLogger(nil, "info")
	}

	s := server.NewMCPServer(
		"airis-agent",
		Version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)

	s.AddTool(confidenceCheckTool(), confidenceCheckHandler(deps))
	s.AddTool(repoIndexTool(), repoIndexHandler(deps))
	s.AddTool(deepResearchTool(), deepResearchHandler(deps))

	return s, nil
}

// ServeStdio runs the server over stdin/stdout until the host closes the
// stream.
func ServeStdio(s *server.MCPServer) error {
	return server.ServeStdio(s)
}

func confidenceCheckTool() mcp.Tool {
	return mcp.NewTool("confidence_check",
		mcp.WithDescription(
			"Pre-implementation confidence assessment. "+
				"Returns score (0.0-1.0), action (proceed/present_alternatives/ask_questions), "+
				"and an itemized checklist. Prevents wrong-direction work."),
		mcp.WithString("task",
			mcp.Required(),
			mcp.Description("Description of the task to assess"),
		),
		mcp.WithString("complexity",
			mcp.Description("Task complexity: simple, medium, or complex"),
			mcp.Enum("simple", "medium", "complex"),
		),
		mcp.WithBoolean("duplicate_check_complete",
			mcp.Description("Whether duplicate work has been checked"),
		),
		mcp.WithBoolean("architecture_check_complete",
			mcp.Description("Whether architecture compliance has been verified"),
		),
		mcp.WithBoolean("official_docs_verified",
			mcp.Description("Whether official documentation has been reviewed"),
		),
		mcp.WithBoolean("oss_reference_complete",
			mcp.Description("Whether OSS references have been consulted"),
		),
		mcp.WithBoolean("root_cause_identified",
			mcp.Description("Whether root cause has been identified (for bugs)"),
		),
		mcp.WithBoolean("has_official_docs",
			mcp.Description("Whether official documentation exists for this domain"),
		),
		mcp.WithBoolean("has_similar_examples",
			mcp.Description("Whether similar examples exist in the codebase"),
		),
	)
}

func confidenceCheckHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		task, err := request.RequireString("task")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		req := confidence.Request{
			Task:                      task,
			Complexity:                confidence.Complexity(request.GetString("complexity", "")),
			DuplicateCheckComplete:    request.GetBool("duplicate_check_complete", false),
			ArchitectureCheckComplete: request.GetBool("architecture_check_complete", false),
			OfficialDocsVerified:      request.GetBool("official_docs_verified", false),
			OSSReferenceComplete:      request.GetBool("oss_reference_complete", false),
			RootCauseIdentified:       request.GetBool("root_cause_identified", false),
			HasOfficialDocs:           request.GetBool("has_official_docs", false),
			HasSimilarExamples:        request.GetBool("has_similar_examples", false),
		}

		resp, err := deps.Scorer.Assess(req)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		tokens, err := deps.Tracker.Record(req.Complexity)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		if deps.History != nil {
			record := history.FromResponse(req, resp, tokens)
			if _, err := deps.History.Record(ctx, record); err != nil {
				// History is best-effort; the assessment still succeeds.
				deps.Log.Warnf("record assessment: %v", err)
			}
		}

		result := struct {
			confidence.Response
			TokensAllocated int          `json:"tokens_allocated"`
			Session         budget.Usage `json:"session"`
		}{Response: resp, TokensAllocated: tokens, Session: deps.Tracker.Snapshot()}

		return jsonResult(result)
	}
}

func repoIndexTool() mcp.Tool {
	return mcp.NewTool("repo_index",
		mcp.WithDescription(
			"Generates PROJECT_INDEX.{md,json} with codebase structure. "+
				"Optional on-disk output for context reduction."),
		mcp.WithString("repo_path",
			mcp.Required(),
			mcp.Description("Absolute path to the repository"),
		),
		mcp.WithString("mode",
			mcp.Description("Indexing depth: quick, full, update"),
			mcp.Enum("quick", "full", "update"),
		),
		mcp.WithBoolean("include_docs",
			mcp.Description("Include documentation files"),
		),
		mcp.WithBoolean("include_tests",
			mcp.Description("Include test files"),
		),
		mcp.WithNumber("max_entries",
			mcp.Description("Maximum entries per category"),
		),
		mcp.WithString("output_dir",
			mcp.Description("Optional directory to write index files"),
		),
	)
}

func repoIndexHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		repoPath, err := request.RequireString("repo_path")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		req := repoindex.Request{
			RepoPath:   repoPath,
			Mode:       repoindex.Mode(request.GetString("mode", "full")),
			SkipDocs:   !request.GetBool("include_docs", true),
			SkipTests:  !request.GetBool("include_tests", true),
			MaxEntries: request.GetInt("max_entries", repoindex.DefaultMaxEntries),
			OutputDir:  request.GetString("output_dir", ""),
		}

		resp, err := repoindex.Generate(req)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		result := struct {
			Markdown    string          `json:"markdown"`
			Stats       repoindex.Stats `json:"stats"`
			OutputPaths []string        `json:"output_paths"`
		}{Markdown: resp.Markdown, Stats: resp.Stats, OutputPaths: resp.OutputPaths}

		return jsonResult(result)
	}
}

func deepResearchTool() mcp.Tool {
	return mcp.NewTool("deep_research",
		mcp.WithDescription(
			"Creates a wave/queries plan for multi-step research. "+
				"Returns findings, sources, and a confidence estimate."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Research query to investigate"),
		),
		mcp.WithString("depth",
			mcp.Description("Research depth level"),
			mcp.Enum("quick", "standard", "deep", "exhaustive"),
		),
		mcp.WithArray("constraints",
			mcp.Description("Additional constraints or focus areas"),
			mcp.WithStringItems(),
		),
		mcp.WithArray("seed_sources",
			mcp.Description("Initial sources to start from"),
			mcp.WithStringItems(),
		),
	)
}

func deepResearchHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query, err := request.RequireString("query")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		req := research.Request{
			Query:       query,
			Depth:       research.Depth(request.GetString("depth", "standard")),
			Constraints: request.GetStringSlice("constraints", nil),
			SeedSources: request.GetStringSlice("seed_sources", nil),
		}

		resp, err := research.Plan(req)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		return jsonResult(resp)
	}
}

// jsonResult marshals v as indented JSON text content.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}
