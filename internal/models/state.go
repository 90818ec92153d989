// ABOUTME: Persisted root state: user profile, program rotation, roster, and history.
// ABOUTME: Provides the seeded initial program and roster lookup helpers.
package models

import "time"

// User is the profile of the single local user.
type User struct {
	Name string     `json:"name" yaml:"name"`
	Unit WeightUnit `json:"unit" yaml:"unit"`
}

// Program is the rotation state of the multi-week program.
type Program struct {
	CurrentWeek            int        `json:"currentWeek" yaml:"current_week"`
	CurrentDay             Day        `json:"currentDay" yaml:"current_day"`
	LastWorkoutDate        *time.Time `json:"lastWorkoutDate" yaml:"last_workout_date"`
	TotalWorkoutsCompleted int        `json:"totalWorkoutsCompleted" yaml:"total_workouts_completed"`
}

// WorkoutState is the unit of persistence, export, and import.
type WorkoutState struct {
	User           User             `json:"user" yaml:"user"`
	Program        Program          `json:"program" yaml:"program"`
	Exercises      []Exercise       `json:"exercises" yaml:"exercises"`
	WorkoutHistory []WorkoutSession `json:"workoutHistory" yaml:"workout_history"`
}

// DefaultExercises returns the seeded roster, split two per day across the
// A/B/C rotation. Each session trains two movements, so a full pass over the
// roster takes three workouts rather than one.
func DefaultExercises() []Exercise {
	return []Exercise{
		{ID: 1, Name: "Dumbbell Goblet Squat", BaseWeight: 20, WorkoutDay: DayA, TrackingType: TrackWeight},
		{ID: 2, Name: "Push-Ups", BaseWeight: 0, WorkoutDay: DayA, TrackingType: TrackReps, BaseReps: 15},
		{ID: 3, Name: "Dumbbell Overhead Press", BaseWeight: 20, WorkoutDay: DayB, TrackingType: TrackWeight},
		{ID: 4, Name: "Dumbbell Romanian Deadlift", BaseWeight: 20, WorkoutDay: DayB, TrackingType: TrackWeight},
		{ID: 5, Name: "Dumbbell Bent-Over Row", BaseWeight: 10, WorkoutDay: DayC, TrackingType: TrackWeight},
		{ID: 6, Name: "Plank", BaseWeight: 0, WorkoutDay: DayC, TrackingType: TrackTime, BaseTime: 30, CurrentTime: 30},
	}
}

// NewInitialState builds a fresh program at week 1 on the given first day.
func NewInitialState(firstDay Day) *WorkoutState {
	exercises := DefaultExercises()
	for i := range exercises {
		ex := &exercises[i]
		ex.CurrentWeight = ex.BaseWeight
		if ex.CurrentTime == 0 {
			ex.CurrentTime = ex.BaseTime
		}
		if ex.CurrentReps == 0 {
			ex.CurrentReps = ex.BaseReps
		}
	}

	return &WorkoutState{
		User: User{
			Name: "Lifter",
			Unit: UnitKg,
		},
		Program: Program{
			CurrentWeek: 1,
			CurrentDay:  firstDay,
		},
		Exercises:      exercises,
		WorkoutHistory: []WorkoutSession{},
	}
}

// ExerciseByID returns a pointer into the roster, or nil.
func (s *WorkoutState) ExerciseByID(id int) *Exercise {
	for i := range s.Exercises {
		if s.Exercises[i].ID == id {
			return &s.Exercises[i]
		}
	}
	return nil
}

// ExercisesForDay returns the roster entries scheduled on day, in roster order.
func (s *WorkoutState) ExercisesForDay(day Day) []Exercise {
	var out []Exercise
	for _, ex := range s.Exercises {
		if ex.WorkoutDay == day {
			out = append(out, ex)
		}
	}
	return out
}

// SessionByIDPrefix finds a history entry by ID or ID prefix.
// Returns nil when nothing or more than one session matches.
func (s *WorkoutState) SessionByIDPrefix(prefix string) *WorkoutSession {
	var match *WorkoutSession
	for i := range s.WorkoutHistory {
		ws := &s.WorkoutHistory[i]
		if len(prefix) > 0 && len(ws.ID) >= len(prefix) && ws.ID[:len(prefix)] == prefix {
			if match != nil {
				return nil
			}
			match = ws
		}
	}
	return match
}
