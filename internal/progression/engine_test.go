// ABOUTME: Tests for the progression rules.
// ABOUTME: Covers rep tiers, weight bands, unit conversion, rounding, and rotation.
package progression

import (
	"testing"

	"github.com/harperreed/hypertrophy/internal/models"
	"github.com/stretchr/testify/assert"
)

func squat(base float64) models.Exercise {
	return models.Exercise{ID: 1, Name: "Squat", BaseWeight: base, CurrentWeight: base, WorkoutDay: models.DayA}
}

func TestTargetReps(t *testing.T) {
	s := DefaultScheme()

	tests := []struct {
		week int
		want int
	}{
		{1, 10},
		{2, 10},
		{3, 11},
		{12, 11},
		{0, 11},
		{13, 11},
		{-4, 11},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, s.TargetReps(tt.week), "week %d", tt.week)
	}
}

func TestTargetSetsConstant(t *testing.T) {
	s := DefaultScheme()
	assert.Equal(t, 3, s.TargetSets())
}

func TestTargetWeightKg(t *testing.T) {
	s := DefaultScheme()
	ex := squat(20)

	tests := []struct {
		week int
		want float64
	}{
		{1, 20},
		{2, 20},
		{3, 22.5},
		{5, 27.5},
		{12, 45},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, s.TargetWeight(ex, tt.week, models.UnitKg), "week %d", tt.week)
	}
}

func TestTargetWeightLbsRoundsToWholePounds(t *testing.T) {
	s := DefaultScheme()
	ex := squat(44)

	assert.Equal(t, 44.0, s.TargetWeight(ex, 1, models.UnitLbs))
	// 44 lb + 2.5 kg (5.51 lb) = 49.51 lb
	assert.Equal(t, 50.0, s.TargetWeight(ex, 3, models.UnitLbs))
	// 44 lb + 7.5 kg (16.53 lb) = 60.53 lb
	assert.Equal(t, 61.0, s.TargetWeight(ex, 5, models.UnitLbs))
}

func TestTargetWeightRoundsToHalfKilo(t *testing.T) {
	s := DefaultScheme()
	s.WeightBands = []WeightBand{{FromWeek: 1, ToWeek: 12, IncrementKg: 1.1}}
	ex := squat(20)

	// 20 + 2*1.1 = 22.2 -> 22
	assert.Equal(t, 22.0, s.TargetWeight(ex, 2, models.UnitKg))
	// 20 + 3*1.1 = 23.3 -> 23.5
	assert.Equal(t, 23.5, s.TargetWeight(ex, 3, models.UnitKg))
}

func TestTargetWeightOutOfRangeFallsBack(t *testing.T) {
	s := DefaultScheme()

	ex := squat(20)
	ex.CurrentWeight = 31.5
	for _, week := range []int{-1, 0, 13, 100} {
		for _, unit := range models.AllWeightUnits {
			assert.Equal(t, 31.5, s.TargetWeight(ex, week, unit), "week %d unit %s", week, unit)
		}
	}

	noCurrent := squat(20)
	noCurrent.CurrentWeight = 0
	assert.Equal(t, 20.0, s.TargetWeight(noCurrent, 13, models.UnitKg))

	offStep := squat(20)
	offStep.CurrentWeight = 27.3
	assert.Equal(t, 27.3, s.TargetWeight(offStep, 13, models.UnitKg), "fallback is not rounded")
}

func TestTargetWeightBodyweightAlwaysZero(t *testing.T) {
	s := DefaultScheme()
	pushUps := models.Exercise{ID: 2, Name: "Push-Ups", TrackingType: models.TrackReps, BaseReps: 15, CurrentWeight: 12}

	for week := -2; week <= 15; week++ {
		for _, unit := range models.AllWeightUnits {
			assert.Zero(t, s.TargetWeight(pushUps, week, unit), "week %d unit %s", week, unit)
		}
	}
}

func TestTargetWeightPiecewiseBands(t *testing.T) {
	s := DefaultScheme()
	s.WeightBands = []WeightBand{
		{FromWeek: 1, ToWeek: 2, IncrementKg: 0},
		{FromWeek: 3, ToWeek: 6, IncrementKg: 2.5},
		{FromWeek: 7, ToWeek: 8, IncrementKg: 0},
		{FromWeek: 9, ToWeek: 12, IncrementKg: 1},
	}
	ex := squat(20)

	assert.Equal(t, 30.0, s.TargetWeight(ex, 6, models.UnitKg))
	assert.Equal(t, 30.0, s.TargetWeight(ex, 8, models.UnitKg), "deload band holds")
	assert.Equal(t, 34.0, s.TargetWeight(ex, 12, models.UnitKg))
}

func TestNextDayCycles(t *testing.T) {
	for _, rotation := range [][]models.Day{
		{models.DayA, models.DayB},
		{models.DayA, models.DayB, models.DayC},
	} {
		s := DefaultScheme()
		s.Rotation = rotation

		for _, start := range rotation {
			day := start
			for i := 0; i < len(rotation); i++ {
				day = s.NextDay(day)
			}
			assert.Equal(t, start, day, "rotation %v from %s", rotation, start)
		}
	}

	s := DefaultScheme()
	assert.Equal(t, models.DayB, s.NextDay(models.DayA))
	assert.Equal(t, models.DayC, s.NextDay(models.DayB))
	assert.Equal(t, models.DayA, s.NextDay(models.DayC))
	assert.Equal(t, models.DayA, s.NextDay(models.Day("Q")), "unknown day restarts rotation")
}

func TestShouldAdvanceWeek(t *testing.T) {
	s := DefaultScheme()

	assert.False(t, s.ShouldAdvanceWeek(models.DayA, true))
	assert.False(t, s.ShouldAdvanceWeek(models.DayB, true))
	assert.True(t, s.ShouldAdvanceWeek(models.DayC, true))
	for _, d := range s.Rotation {
		assert.False(t, s.ShouldAdvanceWeek(d, false))
	}

	s.Rotation = []models.Day{models.DayA, models.DayB}
	assert.True(t, s.ShouldAdvanceWeek(models.DayB, true))
	assert.False(t, s.ShouldAdvanceWeek(models.DayC, true))
}

func TestIsValidWeek(t *testing.T) {
	s := DefaultScheme()

	assert.False(t, s.IsValidWeek(0))
	assert.True(t, s.IsValidWeek(1))
	assert.True(t, s.IsValidWeek(12))
	assert.False(t, s.IsValidWeek(13))
}
