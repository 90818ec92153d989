// ABOUTME: Enum types shared by the workout model: weight units, rotation days, tracking disciplines.
// ABOUTME: Each enum carries its valid set and a string validator for CLI and MCP input.
package models

import "strings"

// WeightUnit is the display unit for weights.
type WeightUnit string

const (
	UnitKg  WeightUnit = "kg"
	UnitLbs WeightUnit = "lbs"
)

// AllWeightUnits returns all valid weight units.
var AllWeightUnits = []WeightUnit{UnitKg, UnitLbs}

// IsValidWeightUnit checks if a string is a valid weight unit.
func IsValidWeightUnit(s string) bool {
	for _, u := range AllWeightUnits {
		if string(u) == s {
			return true
		}
	}
	return false
}

// Day is a rotation day label.
type Day string

const (
	DayA Day = "A"
	DayB Day = "B"
	DayC Day = "C"
)

// ParseDay normalises user input ("a", " B ") into a Day.
// It does not check the day against any rotation.
func ParseDay(s string) Day {
	return Day(strings.ToUpper(strings.TrimSpace(s)))
}

// TrackingType is the primary progression metric of an exercise.
type TrackingType string

const (
	TrackWeight TrackingType = "weight"
	TrackReps   TrackingType = "reps"
	TrackTime   TrackingType = "time"
)

// AllTrackingTypes returns all valid tracking disciplines.
var AllTrackingTypes = []TrackingType{TrackWeight, TrackReps, TrackTime}

// IsValidTrackingType checks if a string is a valid tracking discipline.
func IsValidTrackingType(s string) bool {
	for _, tt := range AllTrackingTypes {
		if string(tt) == s {
			return true
		}
	}
	return false
}
