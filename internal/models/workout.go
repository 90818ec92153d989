// ABOUTME: Exercise roster and workout history models.
// ABOUTME: Sessions and completed sets are append-only records once written.
package models

import (
	"time"

	"github.com/google/uuid"
)

// DefaultHoldSeconds is the hold-time used when a time exercise has no target.
const DefaultHoldSeconds = 30

// Exercise is a movement in the program roster. Only the fields matching
// TrackingType are meaningful.
type Exercise struct {
	ID            int          `json:"id" yaml:"id"`
	Name          string       `json:"name" yaml:"name"`
	BaseWeight    float64      `json:"baseWeight" yaml:"base_weight"`
	CurrentWeight float64      `json:"currentWeight" yaml:"current_weight"`
	WorkoutDay    Day          `json:"workoutDay" yaml:"workout_day"`
	TrackingType  TrackingType `json:"trackingType,omitempty" yaml:"tracking_type,omitempty"`
	BaseTime      int          `json:"baseTime,omitempty" yaml:"base_time,omitempty"`
	CurrentTime   int          `json:"currentTime,omitempty" yaml:"current_time,omitempty"`
	BaseReps      int          `json:"baseReps,omitempty" yaml:"base_reps,omitempty"`
	CurrentReps   int          `json:"currentReps,omitempty" yaml:"current_reps,omitempty"`
}

// Discipline returns the tracking type, defaulting to weight.
func (e *Exercise) Discipline() TrackingType {
	if e.TrackingType == "" {
		return TrackWeight
	}
	return e.TrackingType
}

// IsBodyweight reports whether the exercise carries no external load.
func (e *Exercise) IsBodyweight() bool {
	return e.BaseWeight == 0
}

// HoldTarget returns the current hold-time, falling back to base and then the default.
func (e *Exercise) HoldTarget() int {
	if e.CurrentTime > 0 {
		return e.CurrentTime
	}
	if e.BaseTime > 0 {
		return e.BaseTime
	}
	return DefaultHoldSeconds
}

// RepsTarget returns the current reps, falling back to base reps.
func (e *Exercise) RepsTarget() int {
	if e.CurrentReps > 0 {
		return e.CurrentReps
	}
	return e.BaseReps
}

// CompletedSet is one executed set.
type CompletedSet struct {
	Weight    float64 `json:"weight" yaml:"weight"`
	Reps      int     `json:"reps" yaml:"reps"`
	Time      *int    `json:"time,omitempty" yaml:"time,omitempty"`
	Completed bool    `json:"completed" yaml:"completed"`
}

// CompletedExercise groups the sets recorded for one exercise in a session.
type CompletedExercise struct {
	ExerciseID int            `json:"exerciseId" yaml:"exercise_id"`
	Sets       []CompletedSet `json:"sets" yaml:"sets"`
}

// WorkoutSession is a finished workout as stored in history.
type WorkoutSession struct {
	ID        string              `json:"id,omitempty" yaml:"id,omitempty"`
	Date      time.Time           `json:"date" yaml:"date"`
	Week      int                 `json:"week" yaml:"week"`
	Day       Day                 `json:"day" yaml:"day"`
	Exercises []CompletedExercise `json:"exercises" yaml:"exercises"`
}

// NewWorkoutSession creates a session with a generated ID.
func NewWorkoutSession(date time.Time, week int, day Day, exercises []CompletedExercise) *WorkoutSession {
	return &WorkoutSession{
		ID:        uuid.New().String(),
		Date:      date,
		Week:      week,
		Day:       day,
		Exercises: exercises,
	}
}

// ShortID returns the 8-character ID prefix used in listings.
func (s *WorkoutSession) ShortID() string {
	if len(s.ID) < 8 {
		return s.ID
	}
	return s.ID[:8]
}

// SetCount returns the total number of sets recorded in the session.
func (s *WorkoutSession) SetCount() int {
	n := 0
	for _, ce := range s.Exercises {
		n += len(ce.Sets)
	}
	return n
}
