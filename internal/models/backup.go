// ABOUTME: JSON backup format for the full WorkoutState.
// ABOUTME: Exports indented JSON and validates the top-level shape on import.
package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Import refusal reasons.
const (
	ReasonWorkoutActive      = "Cannot import data while a workout is active"
	ReasonInvalidJSON        = "Invalid JSON format"
	ReasonInvalidStructure   = "Invalid data structure"
	ReasonNoExercises        = "No exercises found"
	ReasonInvalidHistoryList = "Invalid workout history format"
)

// ImportError explains why imported data was refused.
type ImportError struct {
	Reason string
	Err    error
}

func (e *ImportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Reason, e.Err)
	}
	return e.Reason
}

func (e *ImportError) Unwrap() error {
	return e.Err
}

// ExportJSON serializes state as indented JSON without the storage envelope.
func ExportJSON(state *WorkoutState) ([]byte, error) {
	return json.MarshalIndent(state, "", "  ")
}

// importShape captures the top-level fields for presence and type checks.
type importShape struct {
	User           json.RawMessage `json:"user"`
	Program        json.RawMessage `json:"program"`
	Exercises      json.RawMessage `json:"exercises"`
	WorkoutHistory json.RawMessage `json:"workoutHistory"`
}

// ImportJSON parses exported JSON. It checks that the top-level fields exist,
// that exercises is a non-empty list and that workoutHistory is a list.
// Nothing deeper is validated.
func ImportJSON(data []byte) (*WorkoutState, error) {
	var decoded any
	if err := json.Unmarshal(data, &decoded); err != nil {
		return nil, &ImportError{Reason: ReasonInvalidJSON, Err: err}
	}
	if decoded == nil {
		return nil, &ImportError{Reason: ReasonInvalidJSON}
	}
	if _, ok := decoded.(map[string]any); !ok {
		return nil, &ImportError{Reason: ReasonInvalidStructure}
	}

	var shape importShape
	if err := json.Unmarshal(data, &shape); err != nil {
		return nil, &ImportError{Reason: ReasonInvalidStructure, Err: err}
	}

	if isAbsent(shape.User) || isAbsent(shape.Program) || isAbsent(shape.Exercises) || isAbsent(shape.WorkoutHistory) {
		return nil, &ImportError{Reason: ReasonInvalidStructure}
	}

	var exercises []json.RawMessage
	if !isArray(shape.Exercises) || json.Unmarshal(shape.Exercises, &exercises) != nil || len(exercises) == 0 {
		return nil, &ImportError{Reason: ReasonNoExercises}
	}

	if !isArray(shape.WorkoutHistory) {
		return nil, &ImportError{Reason: ReasonInvalidHistoryList}
	}

	var state WorkoutState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, &ImportError{Reason: ReasonInvalidStructure, Err: err}
	}
	return &state, nil
}

// isAbsent treats missing, null, and falsy scalars as absent.
func isAbsent(raw json.RawMessage) bool {
	switch string(bytes.TrimSpace(raw)) {
	case "", "null", "false", "0", `""`:
		return true
	}
	return false
}

func isArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}
