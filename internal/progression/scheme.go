// ABOUTME: Program scheme definition: length, rotation, rep tiers, and weight bands.
// ABOUTME: Loads custom schemes from YAML or TOML program files.
package progression

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/harperreed/hypertrophy/internal/models"
	"gopkg.in/yaml.v3"
)

// RepTier sets the target reps for an inclusive week range.
type RepTier struct {
	FromWeek int `json:"fromWeek" yaml:"from_week" toml:"from_week"`
	ToWeek   int `json:"toWeek" yaml:"to_week" toml:"to_week"`
	Reps     int `json:"reps" yaml:"reps" toml:"reps"`
}

// WeightBand adds IncrementKg for every week in an inclusive range.
// A zero increment holds the weight constant across the band.
type WeightBand struct {
	FromWeek    int     `json:"fromWeek" yaml:"from_week" toml:"from_week"`
	ToWeek      int     `json:"toWeek" yaml:"to_week" toml:"to_week"`
	IncrementKg float64 `json:"incrementKg" yaml:"increment_kg" toml:"increment_kg"`
}

func (b WeightBand) contains(week int) bool {
	return week >= b.FromWeek && week <= b.ToWeek
}

// Scheme holds every constant the progression rules depend on.
type Scheme struct {
	Name          string       `json:"name" yaml:"name" toml:"name"`
	ProgramLength int          `json:"programLength" yaml:"program_length" toml:"program_length"`
	Rotation      []models.Day `json:"rotation" yaml:"rotation" toml:"rotation"`
	Sets          int          `json:"sets" yaml:"sets" toml:"sets"`
	RepTiers      []RepTier    `json:"repTiers" yaml:"rep_tiers" toml:"rep_tier"`
	WeightBands   []WeightBand `json:"weightBands" yaml:"weight_bands" toml:"weight_band"`
}

// DefaultScheme is the 12-week, three-day hypertrophy program:
// two form-focus weeks at base weight, then +2.5 kg per week.
func DefaultScheme() Scheme {
	return Scheme{
		Name:          "12-week hypertrophy",
		ProgramLength: 12,
		Rotation:      []models.Day{models.DayA, models.DayB, models.DayC},
		Sets:          3,
		RepTiers: []RepTier{
			{FromWeek: 1, ToWeek: 2, Reps: 10},
			{FromWeek: 3, ToWeek: 12, Reps: 11},
		},
		WeightBands: []WeightBand{
			{FromWeek: 1, ToWeek: 2, IncrementKg: 0},
			{FromWeek: 3, ToWeek: 12, IncrementKg: 2.5},
		},
	}
}

// FirstDay returns the first day of the rotation.
func (s Scheme) FirstDay() models.Day {
	if len(s.Rotation) == 0 {
		return models.DayA
	}
	return s.Rotation[0]
}

// LastDay returns the final day of the rotation.
func (s Scheme) LastDay() models.Day {
	if len(s.Rotation) == 0 {
		return models.DayA
	}
	return s.Rotation[len(s.Rotation)-1]
}

// HasDay reports whether day is part of the rotation.
func (s Scheme) HasDay(day models.Day) bool {
	return s.dayIndex(day) >= 0
}

func (s Scheme) dayIndex(day models.Day) int {
	for i, d := range s.Rotation {
		if d == day {
			return i
		}
	}
	return -1
}

// Validate checks the scheme for values the rules cannot work with.
func (s Scheme) Validate() error {
	var errs []error
	if s.ProgramLength < 1 {
		errs = append(errs, fmt.Errorf("program_length must be at least 1, got %d", s.ProgramLength))
	}
	if len(s.Rotation) == 0 {
		errs = append(errs, errors.New("rotation must list at least one day"))
	}
	seen := make(map[models.Day]bool, len(s.Rotation))
	for _, d := range s.Rotation {
		if d == "" {
			errs = append(errs, errors.New("rotation contains an empty day label"))
			continue
		}
		if seen[d] {
			errs = append(errs, fmt.Errorf("rotation lists day %q twice", d))
		}
		seen[d] = true
	}
	if s.Sets < 1 {
		errs = append(errs, fmt.Errorf("sets must be at least 1, got %d", s.Sets))
	}
	if len(s.RepTiers) == 0 {
		errs = append(errs, errors.New("at least one rep tier is required"))
	}
	for i, t := range s.RepTiers {
		if t.FromWeek > t.ToWeek {
			errs = append(errs, fmt.Errorf("rep tier %d: from_week %d after to_week %d", i, t.FromWeek, t.ToWeek))
		}
		if t.Reps < 1 {
			errs = append(errs, fmt.Errorf("rep tier %d: reps must be positive", i))
		}
	}
	for i, b := range s.WeightBands {
		if b.FromWeek > b.ToWeek {
			errs = append(errs, fmt.Errorf("weight band %d: from_week %d after to_week %d", i, b.FromWeek, b.ToWeek))
		}
	}
	return errors.Join(errs...)
}

// LoadScheme reads a program file. The format follows the extension:
// .yaml/.yml or .toml. Fields left out keep their DefaultScheme value.
func LoadScheme(path string) (Scheme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scheme{}, fmt.Errorf("read program file: %w", err)
	}

	s := DefaultScheme()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &s)
	case ".toml":
		err = toml.Unmarshal(data, &s)
	default:
		return Scheme{}, fmt.Errorf("unsupported program file format: %q (use .yaml or .toml)", filepath.Ext(path))
	}
	if err != nil {
		return Scheme{}, fmt.Errorf("parse program file: %w", err)
	}

	if err := s.Validate(); err != nil {
		return Scheme{}, fmt.Errorf("invalid program %s: %w", path, err)
	}
	return s, nil
}
