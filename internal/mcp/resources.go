// ABOUTME: MCP resource implementations for the workout tracker.
// ABOUTME: Provides hypertrophy://program, hypertrophy://history/recent, and hypertrophy://workout/active.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	programURI       = "hypertrophy://program"
	recentHistoryURI = "hypertrophy://history/recent"
	activeWorkoutURI = "hypertrophy://workout/active"
)

func (s *Server) registerResources() {
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         programURI,
		Name:        "Program",
		Description: "Program week, rotation day, scheme, and the exercise roster with this week's targets",
		MIMEType:    "application/json",
	}, s.handleProgramResource)

	s.mcpServer.AddResource(&mcp.Resource{
		URI:         recentHistoryURI,
		Name:        "Recent Workouts",
		Description: "Last 10 completed workouts",
		MIMEType:    "application/json",
	}, s.handleRecentHistoryResource)

	s.mcpServer.AddResource(&mcp.Resource{
		URI:         activeWorkoutURI,
		Name:        "Active Workout",
		Description: "The workout in progress, if any",
		MIMEType:    "application/json",
	}, s.handleActiveWorkoutResource)
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// Resource handlers

func (s *Server) handleProgramResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := map[string]any{
		"status":  buildStatus(s.ctrl),
		"scheme":  s.ctrl.Scheme(),
		"targets": buildTargets(s.ctrl, s.ctrl.Week()),
	}
	return jsonResource(programURI, result)
}

func (s *Server) handleRecentHistoryResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sessions := recentSessions(s.ctrl.State(), 10)
	result := map[string]any{
		"sessions": sessions,
		"count":    len(sessions),
		"total":    len(s.ctrl.State().WorkoutHistory),
	}
	return jsonResource(recentHistoryURI, result)
}

func (s *Server) handleActiveWorkoutResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := map[string]any{
		"active":  s.ctrl.IsActive(),
		"workout": buildActive(s.ctrl),
	}
	return jsonResource(activeWorkoutURI, result)
}
