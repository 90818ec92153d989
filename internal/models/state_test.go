// ABOUTME: Tests for WorkoutState, the seeded roster, and enum validators.
// ABOUTME: Validates initial program values and roster lookups.
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInitialState(t *testing.T) {
	s := NewInitialState(DayA)

	assert.Equal(t, "Lifter", s.User.Name)
	assert.Equal(t, UnitKg, s.User.Unit)
	assert.Equal(t, 1, s.Program.CurrentWeek)
	assert.Equal(t, DayA, s.Program.CurrentDay)
	assert.Nil(t, s.Program.LastWorkoutDate)
	assert.Zero(t, s.Program.TotalWorkoutsCompleted)
	assert.NotNil(t, s.WorkoutHistory)
	assert.Empty(t, s.WorkoutHistory)
	require.Len(t, s.Exercises, 6)

	for _, ex := range s.Exercises {
		assert.Equal(t, ex.BaseWeight, ex.CurrentWeight, "exercise %d current weight", ex.ID)
	}

	pushUps := s.ExerciseByID(2)
	require.NotNil(t, pushUps)
	assert.Equal(t, TrackReps, pushUps.Discipline())
	assert.Equal(t, 15, pushUps.CurrentReps)

	plank := s.ExerciseByID(6)
	require.NotNil(t, plank)
	assert.Equal(t, 30, plank.CurrentTime)
}

func TestExerciseByIDReturnsRosterPointer(t *testing.T) {
	s := NewInitialState(DayA)

	ex := s.ExerciseByID(1)
	require.NotNil(t, ex)
	ex.CurrentWeight = 42.5

	assert.Equal(t, 42.5, s.Exercises[0].CurrentWeight)
	assert.Nil(t, s.ExerciseByID(999))
}

func TestExercisesForDay(t *testing.T) {
	s := NewInitialState(DayA)

	dayA := s.ExercisesForDay(DayA)
	require.Len(t, dayA, 2)
	assert.Equal(t, 1, dayA[0].ID)
	assert.Equal(t, 2, dayA[1].ID)

	assert.Len(t, s.ExercisesForDay(DayB), 2)
	assert.Len(t, s.ExercisesForDay(DayC), 2)
	assert.Empty(t, s.ExercisesForDay(Day("Z")))
}

func TestSessionByIDPrefix(t *testing.T) {
	s := NewInitialState(DayA)
	s.WorkoutHistory = []WorkoutSession{
		{ID: "abc12345-0000"},
		{ID: "abd99999-0000"},
	}

	got := s.SessionByIDPrefix("abc")
	require.NotNil(t, got)
	assert.Equal(t, "abc12345-0000", got.ID)

	assert.Nil(t, s.SessionByIDPrefix("ab"), "ambiguous prefix")
	assert.Nil(t, s.SessionByIDPrefix("zzz"))
	assert.Nil(t, s.SessionByIDPrefix(""))
}

func TestEnumValidators(t *testing.T) {
	assert.True(t, IsValidWeightUnit("kg"))
	assert.True(t, IsValidWeightUnit("lbs"))
	assert.False(t, IsValidWeightUnit("stone"))

	assert.True(t, IsValidTrackingType("time"))
	assert.False(t, IsValidTrackingType("distance"))

	assert.Equal(t, DayB, ParseDay(" b "))
}
