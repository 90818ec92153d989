// ABOUTME: Pure progression rules: target reps, sets, and weight per program week.
// ABOUTME: Also owns rotation rules (next day, week advancement, week bounds).
package progression

import (
	"math"

	"github.com/harperreed/hypertrophy/internal/models"
)

// KgPerLb converts between the display units.
const KgPerLb = 2.20462

// TargetReps returns the rep target for week. Weeks outside every tier use
// the last tier's value.
func (s Scheme) TargetReps(week int) int {
	if len(s.RepTiers) == 0 {
		return 0
	}
	for _, t := range s.RepTiers {
		if week >= t.FromWeek && week <= t.ToWeek {
			return t.Reps
		}
	}
	return s.RepTiers[len(s.RepTiers)-1].Reps
}

// TargetSets returns the number of sets per exercise. It is constant for the
// whole program.
func (s Scheme) TargetSets() int {
	return s.Sets
}

// TargetWeight returns the load for ex at week, in unit.
//
// Bodyweight exercises always return 0. Weeks outside every weight band
// return the exercise's current weight (or its base weight when no current
// weight is set) without extrapolating. That fallback is returned as stored,
// not rounded to the 0.5 kg / 1 lb step that in-band targets use.
func (s Scheme) TargetWeight(ex models.Exercise, week int, unit models.WeightUnit) float64 {
	if ex.IsBodyweight() {
		return 0
	}

	if !s.inBand(week) {
		if ex.CurrentWeight != 0 {
			return ex.CurrentWeight
		}
		return ex.BaseWeight
	}

	baseKg := ex.BaseWeight
	if unit == models.UnitLbs {
		baseKg = ex.BaseWeight / KgPerLb
	}

	targetKg := baseKg + s.cumulativeIncrement(week)

	if unit == models.UnitLbs {
		return math.Round(targetKg * KgPerLb)
	}
	return RoundKg(targetKg)
}

// RoundKg rounds to the nearest 0.5 kg.
func RoundKg(w float64) float64 {
	return math.Round(w*2) / 2
}

func (s Scheme) inBand(week int) bool {
	for _, b := range s.WeightBands {
		if b.contains(week) {
			return true
		}
	}
	return false
}

// cumulativeIncrement sums the per-week increments of weeks 1..week.
func (s Scheme) cumulativeIncrement(week int) float64 {
	var total float64
	for w := 1; w <= week; w++ {
		for _, b := range s.WeightBands {
			if b.contains(w) {
				total += b.IncrementKg
				break
			}
		}
	}
	return total
}

// ShouldAdvanceWeek is true only when a workout was completed on the last
// day of the rotation.
func (s Scheme) ShouldAdvanceWeek(day models.Day, completed bool) bool {
	return completed && len(s.Rotation) > 0 && day == s.LastDay()
}

// NextDay returns the cyclic successor of day. Days outside the rotation
// restart it at the first day.
func (s Scheme) NextDay(day models.Day) models.Day {
	i := s.dayIndex(day)
	if i < 0 {
		return s.FirstDay()
	}
	return s.Rotation[(i+1)%len(s.Rotation)]
}

// IsValidWeek reports whether week lies within the program.
func (s Scheme) IsValidWeek(week int) bool {
	return week >= 1 && week <= s.ProgramLength
}
