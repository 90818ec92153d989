// ABOUTME: Tests for the JSON backup format.
// ABOUTME: Covers round-trip fidelity and every import refusal reason.
package models

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func backupSample() *WorkoutState {
	state := NewInitialState(DayA)
	date := time.Date(2026, 1, 5, 18, 0, 0, 0, time.UTC)
	hold := 45
	state.Program.LastWorkoutDate = &date
	state.Program.TotalWorkoutsCompleted = 1
	state.Program.CurrentDay = DayB
	state.WorkoutHistory = []WorkoutSession{{
		ID:   "0f8fad5b-d9cb-469f-a165-70867728950e",
		Date: date,
		Week: 1,
		Day:  DayA,
		Exercises: []CompletedExercise{
			{ExerciseID: 1, Sets: []CompletedSet{{Weight: 20, Reps: 10, Completed: true}}},
			{ExerciseID: 6, Sets: []CompletedSet{{Time: &hold, Completed: true}}},
		},
	}}
	return state
}

func TestExportImportJSONRoundTrip(t *testing.T) {
	state := backupSample()

	data, err := ExportJSON(state)
	if err != nil {
		t.Fatalf("ExportJSON failed: %v", err)
	}
	if !strings.Contains(string(data), "\n  \"user\"") {
		t.Errorf("Expected 2-space indented output, got:\n%s", data)
	}
	if strings.Contains(string(data), `"version"`) {
		t.Error("Export should not include the storage envelope")
	}

	got, err := ImportJSON(data)
	if err != nil {
		t.Fatalf("ImportJSON failed: %v", err)
	}
	if got.Program.CurrentDay != DayB {
		t.Errorf("CurrentDay mismatch: got %s", got.Program.CurrentDay)
	}
	if len(got.WorkoutHistory) != 1 || got.WorkoutHistory[0].SetCount() != 2 {
		t.Errorf("History not preserved: %+v", got.WorkoutHistory)
	}
	if got.WorkoutHistory[0].Exercises[1].Sets[0].Time == nil || *got.WorkoutHistory[0].Exercises[1].Sets[0].Time != 45 {
		t.Error("Hold time not preserved")
	}
	if !got.Program.LastWorkoutDate.Equal(*state.Program.LastWorkoutDate) {
		t.Error("LastWorkoutDate not preserved")
	}
}

func TestImportJSONRejections(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		reason string
	}{
		{"not json", "not json", ReasonInvalidJSON},
		{"null", "null", ReasonInvalidJSON},
		{"array", "[1,2]", ReasonInvalidStructure},
		{"empty object", "{}", ReasonInvalidStructure},
		{"missing history", `{"user":{},"program":{},"exercises":[{}]}`, ReasonInvalidStructure},
		{"null user", `{"user":null,"program":{},"exercises":[{}],"workoutHistory":[]}`, ReasonInvalidStructure},
		{"empty exercises", `{"user":{},"program":{},"exercises":[],"workoutHistory":[]}`, ReasonNoExercises},
		{"exercises object", `{"user":{},"program":{},"exercises":{"a":1},"workoutHistory":[]}`, ReasonNoExercises},
		{"history object", `{"user":{},"program":{},"exercises":[{}],"workoutHistory":{}}`, ReasonInvalidHistoryList},
		{"history string", `{"user":{},"program":{},"exercises":[{}],"workoutHistory":"x"}`, ReasonInvalidHistoryList},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ImportJSON([]byte(tt.input))
			var ie *ImportError
			if !errors.As(err, &ie) {
				t.Fatalf("Expected ImportError, got %v", err)
			}
			if ie.Reason != tt.reason {
				t.Errorf("Reason = %q, want %q", ie.Reason, tt.reason)
			}
		})
	}
}

func TestImportJSONMinimalShape(t *testing.T) {
	input := `{"user":{"name":"A","unit":"lbs"},"program":{"currentWeek":3,"currentDay":"C"},"exercises":[{"id":9,"name":"Curl","baseWeight":10,"currentWeight":10,"workoutDay":"C"}],"workoutHistory":[]}`
	got, err := ImportJSON([]byte(input))
	if err != nil {
		t.Fatalf("ImportJSON failed: %v", err)
	}
	if got.User.Unit != UnitLbs || got.Program.CurrentWeek != 3 {
		t.Errorf("Unexpected state: %+v", got)
	}
	if got.Exercises[0].Discipline() != TrackWeight {
		t.Errorf("Missing trackingType should default to weight")
	}
}
