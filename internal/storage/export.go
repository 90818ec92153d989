// ABOUTME: Human-readable exports of the full WorkoutState.
// ABOUTME: Renders YAML and Markdown history tables; the JSON backup format lives in models.
package storage

import (
	"fmt"
	"strings"
	"time"

	"github.com/harperreed/hypertrophy/internal/models"
	"gopkg.in/yaml.v3"
)

// ExportYAML exports state as YAML.
func ExportYAML(state *models.WorkoutState) ([]byte, error) {
	return yaml.Marshal(state)
}

// ExportMarkdown renders the program, roster, and history as Markdown tables.
// When since is set, only sessions on or after it are listed.
func ExportMarkdown(state *models.WorkoutState, since *time.Time) string {
	var sb strings.Builder
	now := time.Now()

	sb.WriteString(fmt.Sprintf("# Workout Export - %s\n\n", now.Format("2006-01-02")))
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", now.Format(time.RFC3339)))

	sb.WriteString("## Program\n\n")
	sb.WriteString(fmt.Sprintf("- Lifter: %s (%s)\n", state.User.Name, state.User.Unit))
	sb.WriteString(fmt.Sprintf("- Week: %d\n", state.Program.CurrentWeek))
	sb.WriteString(fmt.Sprintf("- Next day: %s\n", state.Program.CurrentDay))
	sb.WriteString(fmt.Sprintf("- Workouts completed: %d\n\n", state.Program.TotalWorkoutsCompleted))

	sb.WriteString("## Exercises\n\n")
	sb.WriteString("| ID | Name | Day | Tracking | Current |\n")
	sb.WriteString("|----|------|-----|----------|---------|\n")
	for _, ex := range state.Exercises {
		sb.WriteString(fmt.Sprintf("| %d | %s | %s | %s | %s |\n",
			ex.ID, ex.Name, ex.WorkoutDay, ex.Discipline(), FormatCurrent(ex, state.User.Unit)))
	}
	sb.WriteString("\n")

	var sessions []models.WorkoutSession
	for _, ws := range state.WorkoutHistory {
		if since != nil && ws.Date.Before(*since) {
			continue
		}
		sessions = append(sessions, ws)
	}

	if len(sessions) > 0 {
		sb.WriteString("## History\n\n")
		sb.WriteString("| Date | Week | Day | Exercise | Sets |\n")
		sb.WriteString("|------|------|-----|----------|------|\n")
		for _, ws := range sessions {
			for _, ce := range ws.Exercises {
				name := fmt.Sprintf("#%d", ce.ExerciseID)
				if ex := state.ExerciseByID(ce.ExerciseID); ex != nil {
					name = ex.Name
				}
				sb.WriteString(fmt.Sprintf("| %s | %d | %s | %s | %s |\n",
					ws.Date.Format("2006-01-02 15:04"), ws.Week, ws.Day, name, FormatSets(ce.Sets, state.User.Unit)))
			}
		}
	}

	return sb.String()
}

// FormatCurrent renders an exercise's current value for its discipline.
func FormatCurrent(ex models.Exercise, unit models.WeightUnit) string {
	switch ex.Discipline() {
	case models.TrackReps:
		return fmt.Sprintf("%d reps", ex.RepsTarget())
	case models.TrackTime:
		return fmt.Sprintf("%ds", ex.HoldTarget())
	default:
		return fmt.Sprintf("%g %s", ex.CurrentWeight, unit)
	}
}

// FormatSets renders sets compactly: "20x10, 22.5x9" or "45s, 50s".
func FormatSets(sets []models.CompletedSet, unit models.WeightUnit) string {
	parts := make([]string, 0, len(sets))
	for _, s := range sets {
		switch {
		case s.Time != nil && s.Weight == 0 && s.Reps == 0:
			parts = append(parts, fmt.Sprintf("%ds", *s.Time))
		case s.Weight == 0:
			parts = append(parts, fmt.Sprintf("%d reps", s.Reps))
		default:
			parts = append(parts, fmt.Sprintf("%g%sx%d", s.Weight, unit, s.Reps))
		}
	}
	return strings.Join(parts, ", ")
}
