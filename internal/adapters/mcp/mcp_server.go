// Package mcp provides the MCP (Model Context Protocol) server implementation.
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/xvierd/turskmind/internal/domain"
	"github.com/xvierd/turskmind/internal/ports"
)

const timeLayout = "2006-01-02T15:04:05"

// Server implements the MCP server using mark3labs/mcp-go.
type Server struct {
	server        *server.MCPServer
	stateProvider ports.MCPStateProvider
	ctx           context.Context
	cancel        context.CancelFunc
}

// NewServer creates a new MCP server instance.
func NewServer(stateProvider ports.MCPStateProvider, version string) *Server {
	s := &Server{
		stateProvider: stateProvider,
	}

	s.server = server.NewMCPServer(
		"turskmind",
		version,
		server.WithLogging(),
	)

	s.registerTools()

	return s
}

// registerTools registers all available MCP tools.
func (s *Server) registerTools() {
	s.server.AddTool(
		mcp.NewTool(
			"list_practices",
			mcp.WithDescription("List the guided wellness practices with their durations"),
		),
		s.handleListPractices,
	)

	startTool := mcp.NewTool(
		"start_practice",
		mcp.WithDescription("Start the countdown for a practice. Only one practice can run at a time"),
		mcp.WithString(
			"practice",
			mcp.Required(),
			mcp.Description("Practice key (meditation, breathing, ritual) or part of its name"),
		),
	)
	s.server.AddTool(startTool, s.handleStartPractice)

	s.server.AddTool(
		mcp.NewTool(
			"get_countdown",
			mcp.WithDescription("Get the running practice with its remaining time and progress, plus the sessions started this run"),
		),
		s.handleGetCountdown,
	)

	s.server.AddTool(
		mcp.NewTool(
			"cancel_practice",
			mcp.WithDescription("Stop the running practice countdown"),
		),
		s.handleCancelPractice,
	)

	s.server.AddTool(
		mcp.NewTool(
			"get_affirmation",
			mcp.WithDescription("Get a random Tüürk-inspired affirmation"),
		),
		s.handleGetAffirmation,
	)

	saveTool := mcp.NewTool(
		"save_custom_affirmation",
		mcp.WithDescription("Acknowledge a custom affirmation. Nothing is stored"),
		mcp.WithString(
			"text",
			mcp.Required(),
			mcp.Description("The affirmation text"),
		),
	)
	s.server.AddTool(saveTool, s.handleSaveCustomAffirmation)

	s.server.AddTool(
		mcp.NewTool(
			"get_progress",
			mcp.WithDescription("Get the wellness progress dashboard and achievement"),
		),
		s.handleGetProgress,
	)
}

// Start begins serving MCP requests over stdio.
func (s *Server) Start(ctx context.Context) error {
	s.ctx, s.cancel = context.WithCancel(ctx)

	return server.ServeStdio(s.server)
}

// Stop gracefully shuts down the server.
func (s *Server) Stop() error {
	if s.cancel != nil {
		s.cancel()
	}
	return nil
}

// IsRunning returns true if the server is active.
func (s *Server) IsRunning() bool {
	if s.ctx == nil {
		return false
	}
	return s.ctx.Err() == nil
}

// Ensure Server implements ports.MCPHandler.
var _ ports.MCPHandler = (*Server)(nil)

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}

// isUserError reports domain errors that belong in a tool result rather
// than a protocol error.
func isUserError(err error) bool {
	return errors.Is(err, domain.ErrPracticeNotFound) ||
		errors.Is(err, domain.ErrSessionAlreadyActive) ||
		errors.Is(err, domain.ErrNoActiveSession) ||
		errors.Is(err, domain.ErrEmptyAffirmation)
}

func sessionData(session *domain.PracticeSession) map[string]any {
	data := map[string]any{
		"id":         session.ID,
		"practice":   session.PracticeKey,
		"label":      session.Label,
		"status":     string(session.Status),
		"duration":   domain.FormatRemaining(session.Duration),
		"started_at": session.StartedAt.Format(timeLayout),
	}
	if session.EndedAt != nil {
		data["ended_at"] = session.EndedAt.Format(timeLayout)
	}
	return data
}

// handleListPractices handles the list_practices tool.
func (s *Server) handleListPractices(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var practices []map[string]any
	for _, p := range domain.Practices() {
		practices = append(practices, map[string]any{
			"key":      p.Key,
			"label":    p.Label,
			"seconds":  p.Seconds(),
			"duration": domain.FormatRemaining(p.Duration),
		})
	}
	return jsonResult(map[string]any{
		"practices": practices,
		"tip":       domain.QuickTip,
	})
}

// handleStartPractice handles the start_practice tool.
func (s *Server) handleStartPractice(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	practice, err := request.RequireString("practice")
	if err != nil {
		return mcp.NewToolResultError("practice is required: " + err.Error()), nil
	}

	session, err := s.stateProvider.StartPractice(ctx, practice)
	if err != nil {
		if isUserError(err) {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return nil, fmt.Errorf("failed to start practice: %w", err)
	}

	return jsonResult(map[string]any{
		"message": domain.StartMessage(session.Label),
		"session": sessionData(session),
	})
}

// handleGetCountdown handles the get_countdown tool.
func (s *Server) handleGetCountdown(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	state, err := s.stateProvider.GetCurrentState(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current state: %w", err)
	}

	sessions, err := s.stateProvider.GetHistory(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get history: %w", err)
	}
	history := make([]map[string]any, 0, len(sessions))
	for _, session := range sessions {
		history = append(history, sessionData(session))
	}

	result := map[string]any{
		"active":             state.IsSessionActive(),
		"completed_this_run": state.CompletedThisRun,
		"history":            history,
	}
	if state.IsSessionActive() {
		result["session"] = sessionData(state.ActiveSession)
		result["remaining"] = state.LastTick.Clock()
		result["remaining_minutes"] = state.LastTick.Minutes()
		result["remaining_seconds"] = state.LastTick.Seconds()
		result["progress"] = state.LastTick.Progress
	}
	return jsonResult(result)
}

// handleCancelPractice handles the cancel_practice tool.
func (s *Server) handleCancelPractice(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	session, err := s.stateProvider.CancelPractice(ctx)
	if err != nil {
		if isUserError(err) {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return nil, fmt.Errorf("failed to cancel practice: %w", err)
	}

	return jsonResult(map[string]any{
		"message": fmt.Sprintf("Stopped '%s'.", session.Label),
		"session": sessionData(session),
	})
}

// handleGetAffirmation handles the get_affirmation tool.
func (s *Server) handleGetAffirmation(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(s.stateProvider.RandomAffirmation()), nil
}

// handleSaveCustomAffirmation handles the save_custom_affirmation tool.
func (s *Server) handleSaveCustomAffirmation(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ack, err := s.stateProvider.SaveCustomAffirmation(request.GetString("text", ""))
	if err != nil {
		if isUserError(err) {
			return mcp.NewToolResultError(ack.Message), nil
		}
		return nil, fmt.Errorf("failed to save affirmation: %w", err)
	}
	return mcp.NewToolResultText(ack.Message), nil
}

// handleGetProgress handles the get_progress tool.
func (s *Server) handleGetProgress(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	dashboard, err := s.stateProvider.GetProgress(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get progress: %w", err)
	}

	return jsonResult(map[string]any{
		"records":     dashboard.Records,
		"total":       dashboard.Total,
		"achievement": dashboard.Tier.Label(),
		"message":     dashboard.Tier.Message(),
	})
}
