// ABOUTME: MCP tool implementations for the workout tracker.
// ABOUTME: Provides program status, targets, the active workout flow, history, edits, and export/import.
package mcp

import (
	"context"
	"fmt"

	"github.com/harperreed/hypertrophy/internal/models"
	"github.com/harperreed/hypertrophy/internal/session"
	"github.com/harperreed/hypertrophy/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_status",
		Description: "Show the program week, rotation day, and today's exercises with targets",
	}, s.handleGetStatus)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_targets",
		Description: "Get target weight, reps, and sets for every exercise in a program week",
	}, s.handleGetTargets)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "start_workout",
		Description: "Start today's workout. Replaces a workout already in progress",
	}, s.handleStartWorkout)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_active_workout",
		Description: "Show the current exercise, set, and progress of the workout in progress",
	}, s.handleGetActiveWorkout)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "record_set",
		Description: "Record the current set of the current exercise. Recording the same set twice has no effect",
	}, s.handleRecordSet)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "set_scratch_reps",
		Description: "Set the reps to record for a reps-tracked exercise in the active workout",
	}, s.handleSetScratchReps)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "set_scratch_time",
		Description: "Set the hold time in seconds for a time-tracked exercise in the active workout",
	}, s.handleSetScratchTime)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "next_exercise",
		Description: "Move to the next exercise, wrapping to the next set after the last exercise",
	}, s.handleNextExercise)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "previous_exercise",
		Description: "Move to the previous exercise, wrapping to the previous set before the first exercise",
	}, s.handlePreviousExercise)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "finish_workout",
		Description: "Finish the active workout, save it to history, and advance the program",
	}, s.handleFinishWorkout)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "cancel_workout",
		Description: "Discard the active workout. Weight and rep updates already recorded are kept",
	}, s.handleCancelWorkout)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_history",
		Description: "List completed workouts, newest first",
	}, s.handleListHistory)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "update_exercise",
		Description: "Change an exercise's current weight or its base weight, reps, or hold time",
	}, s.handleUpdateExercise)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "update_user",
		Description: "Change the lifter's name or weight unit",
	}, s.handleUpdateUser)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "export_data",
		Description: "Export all program data as JSON, YAML, or Markdown",
	}, s.handleExportData)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "import_data",
		Description: "Replace all program data with previously exported JSON",
	}, s.handleImportData)
}

// Tool input/output types

type emptyInput struct{}

type getTargetsInput struct {
	Week int `json:"week,omitempty" jsonschema:"Program week (defaults to the current week)"`
}

type recordSetInput struct {
	Weight float64 `json:"weight,omitempty" jsonschema:"Weight lifted, in the lifter's unit"`
	Reps   int     `json:"reps,omitempty" jsonschema:"Reps completed"`
	Time   int     `json:"time,omitempty" jsonschema:"Seconds held, for time-tracked exercises"`
}

type scratchRepsInput struct {
	ExerciseID int `json:"exercise_id" jsonschema:"Exercise ID"`
	Reps       int `json:"reps" jsonschema:"Reps to record"`
}

type scratchTimeInput struct {
	ExerciseID int `json:"exercise_id" jsonschema:"Exercise ID"`
	Seconds    int `json:"seconds" jsonschema:"Hold time in seconds"`
}

type listHistoryInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"Max results (default 10)"`
}

type updateExerciseInput struct {
	ExerciseID int      `json:"exercise_id" jsonschema:"Exercise ID"`
	Weight     *float64 `json:"weight,omitempty" jsonschema:"New current weight"`
	BaseWeight *float64 `json:"base_weight,omitempty" jsonschema:"New base weight; also resets the current weight"`
	BaseReps   *int     `json:"base_reps,omitempty" jsonschema:"New base reps; also resets the current reps"`
	BaseTime   *int     `json:"base_time,omitempty" jsonschema:"New base hold time in seconds; also resets the current time"`
}

type updateUserInput struct {
	Name string `json:"name,omitempty" jsonschema:"Lifter name"`
	Unit string `json:"unit,omitempty" jsonschema:"Weight unit: kg or lbs"`
}

type exportInput struct {
	Format string `json:"format,omitempty" jsonschema:"Export format: json (default), yaml, or markdown"`
}

type importInput struct {
	Data string `json:"data" jsonschema:"JSON text produced by export_data"`
}

type resultOutput struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

type exportOutput struct {
	Format string `json:"format"`
	Data   string `json:"data"`
}

func fromResult(r session.Result, message string) resultOutput {
	out := resultOutput{Success: r.Success, Error: r.Error}
	if r.Success {
		out.Message = message
	}
	return out
}

// Tool handlers

func (s *Server) handleGetStatus(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return nil, buildStatus(s.ctrl), nil
}

func (s *Server) handleGetTargets(ctx context.Context, req *mcp.CallToolRequest, input getTargetsInput) (*mcp.CallToolResult, any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	week := input.Week
	if week == 0 {
		week = s.ctrl.Week()
	}
	return nil, buildTargets(s.ctrl, week), nil
}

func (s *Server) handleStartWorkout(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := s.ctrl.StartWorkout()
	if !res.Success {
		return nil, fromResult(res, ""), nil
	}
	return nil, buildActive(s.ctrl), nil
}

func (s *Server) handleGetActiveWorkout(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if v := buildActive(s.ctrl); v != nil {
		return nil, v, nil
	}
	return nil, map[string]any{"message": "No workout in progress."}, nil
}

func (s *Server) handleRecordSet(ctx context.Context, req *mcp.CallToolRequest, input recordSetInput) (*mcp.CallToolResult, any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ctrl.IsActive() {
		return nil, nil, fmt.Errorf("no workout in progress")
	}

	var seconds *int
	if input.Time > 0 {
		seconds = &input.Time
	}
	recorded := s.ctrl.RecordSet(input.Weight, input.Reps, seconds)

	return nil, map[string]any{
		"recorded": recorded,
		"workout":  buildActive(s.ctrl),
	}, nil
}

func (s *Server) handleSetScratchReps(ctx context.Context, req *mcp.CallToolRequest, input scratchRepsInput) (*mcp.CallToolResult, resultOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ctrl.SetScratchReps(input.ExerciseID, input.Reps) {
		return nil, resultOutput{}, fmt.Errorf("exercise %d is not in the active workout", input.ExerciseID)
	}
	return nil, resultOutput{Success: true, Message: fmt.Sprintf("Reps for exercise %d set to %d", input.ExerciseID, input.Reps)}, nil
}

func (s *Server) handleSetScratchTime(ctx context.Context, req *mcp.CallToolRequest, input scratchTimeInput) (*mcp.CallToolResult, resultOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ctrl.SetScratchTime(input.ExerciseID, input.Seconds) {
		return nil, resultOutput{}, fmt.Errorf("exercise %d is not in the active workout", input.ExerciseID)
	}
	return nil, resultOutput{Success: true, Message: fmt.Sprintf("Hold time for exercise %d set to %ds", input.ExerciseID, input.Seconds)}, nil
}

func (s *Server) handleNextExercise(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ctrl.IsActive() {
		return nil, nil, fmt.Errorf("no workout in progress")
	}
	moved := s.ctrl.AdvanceCursor()
	return nil, map[string]any{"moved": moved, "workout": buildActive(s.ctrl)}, nil
}

func (s *Server) handlePreviousExercise(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ctrl.IsActive() {
		return nil, nil, fmt.Errorf("no workout in progress")
	}
	moved := s.ctrl.RetreatCursor()
	return nil, map[string]any{"moved": moved, "workout": buildActive(s.ctrl)}, nil
}

func (s *Server) handleFinishWorkout(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ws, ok := s.ctrl.FinishWorkout()
	if !ok {
		return nil, nil, fmt.Errorf("no workout in progress")
	}
	return nil, map[string]any{
		"session": ws,
		"status":  buildStatus(s.ctrl),
	}, nil
}

func (s *Server) handleCancelWorkout(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, resultOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ctrl.IsActive() {
		return nil, resultOutput{Success: true, Message: "No workout in progress."}, nil
	}
	s.ctrl.CancelWorkout()
	return nil, resultOutput{Success: true, Message: "Workout cancelled."}, nil
}

func (s *Server) handleListHistory(ctx context.Context, req *mcp.CallToolRequest, input listHistoryInput) (*mcp.CallToolResult, any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if input.Limit <= 0 {
		input.Limit = 10
	}
	sessions := recentSessions(s.ctrl.State(), input.Limit)
	if len(sessions) == 0 {
		return nil, map[string]any{"message": "No workouts found."}, nil
	}
	return nil, map[string]any{"sessions": sessions}, nil
}

func (s *Server) handleUpdateExercise(ctx context.Context, req *mcp.CallToolRequest, input updateExerciseInput) (*mcp.CallToolResult, any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ctrl.State().ExerciseByID(input.ExerciseID) == nil {
		return nil, nil, fmt.Errorf("exercise not found: %d", input.ExerciseID)
	}

	if input.BaseWeight != nil {
		s.ctrl.UpdateExerciseBaseWeight(input.ExerciseID, *input.BaseWeight)
	}
	if input.Weight != nil {
		s.ctrl.UpdateExerciseWeight(input.ExerciseID, *input.Weight)
	}
	if input.BaseReps != nil {
		s.ctrl.UpdateExerciseBaseReps(input.ExerciseID, *input.BaseReps)
	}
	if input.BaseTime != nil {
		s.ctrl.UpdateExerciseBaseTime(input.ExerciseID, *input.BaseTime)
	}

	return nil, s.ctrl.State().ExerciseByID(input.ExerciseID), nil
}

func (s *Server) handleUpdateUser(ctx context.Context, req *mcp.CallToolRequest, input updateUserInput) (*mcp.CallToolResult, any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := s.ctrl.State().User
	if input.Name != "" {
		user.Name = input.Name
	}
	if input.Unit != "" {
		if !models.IsValidWeightUnit(input.Unit) {
			return nil, nil, fmt.Errorf("unknown unit: %s (use kg or lbs)", input.Unit)
		}
		user.Unit = models.WeightUnit(input.Unit)
	}

	s.ctrl.UpdateUser(user.Name, user.Unit)
	return nil, s.ctrl.State().User, nil
}

func (s *Server) handleExportData(ctx context.Context, req *mcp.CallToolRequest, input exportInput) (*mcp.CallToolResult, exportOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	format := input.Format
	if format == "" {
		format = "json"
	}

	var data []byte
	var err error
	switch format {
	case "json":
		data, err = s.ctrl.Export()
	case "yaml":
		data, err = storage.ExportYAML(s.ctrl.State())
	case "markdown", "md":
		data = []byte(storage.ExportMarkdown(s.ctrl.State(), nil))
	default:
		return nil, exportOutput{}, fmt.Errorf("unknown format: %s (use json, yaml, or markdown)", format)
	}
	if err != nil {
		return nil, exportOutput{}, fmt.Errorf("failed to export: %w", err)
	}

	return nil, exportOutput{Format: format, Data: string(data)}, nil
}

func (s *Server) handleImportData(ctx context.Context, req *mcp.CallToolRequest, input importInput) (*mcp.CallToolResult, resultOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := s.ctrl.Import([]byte(input.Data))
	return nil, fromResult(res, "Data imported."), nil
}
