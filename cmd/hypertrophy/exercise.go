// ABOUTME: CLI commands for the exercise roster.
// ABOUTME: Lists exercises and edits current or base weight, reps, and hold time.
package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/harperreed/hypertrophy/internal/models"
	"github.com/harperreed/hypertrophy/internal/session"
	"github.com/harperreed/hypertrophy/internal/storage"
	"github.com/spf13/cobra"
)

var exerciseCmd = &cobra.Command{
	Use:     "exercise",
	Aliases: []string{"ex"},
	Short:   "List and edit exercises",
	Long: `List the exercise roster and adjust its numbers.

COMMANDS:

  list                   Show every exercise with base and current values
  weight <id> <w>        Set the current working weight
  base-weight <id> <w>   Set the base weight (also resets the current weight)
  base-reps <id> <n>     Set base reps for a bodyweight exercise
  base-time <id> <s>     Set base hold time for a timed exercise

EXAMPLES:

  hypertrophy exercise list
  hypertrophy exercise base-weight 1 16
  hypertrophy exercise base-time 6 45`,
	RunE: func(cmd *cobra.Command, args []string) error {
		printExercises(cmd.OutOrStdout(), ctrl)
		return nil
	},
}

var exerciseListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List exercises",
	RunE: func(cmd *cobra.Command, args []string) error {
		printExercises(cmd.OutOrStdout(), ctrl)
		return nil
	},
}

// newExerciseEditCmd builds an "<id> <value>" command around a roster update.
func newExerciseEditCmd(use, short, label string, apply func(c *session.Controller, id int, value float64) bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id> <value>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid exercise id: %s", args[0])
			}
			value, err := strconv.ParseFloat(args[1], 64)
			if err != nil || value < 0 {
				return fmt.Errorf("invalid %s: %s", label, args[1])
			}
			if !apply(ctrl, id, value) {
				return fmt.Errorf("exercise %d not found", id)
			}
			ex := ctrl.State().ExerciseByID(id)
			color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ %s %s set to %g\n", ex.Name, label, value)
			return nil
		},
	}
}

func printExercises(w io.Writer, c *session.Controller) {
	faint := color.New(color.Faint)
	for _, ex := range c.State().Exercises {
		var base string
		switch ex.Discipline() {
		case models.TrackReps:
			base = fmt.Sprintf("base %d reps", ex.BaseReps)
		case models.TrackTime:
			base = fmt.Sprintf("base %ds", ex.BaseTime)
		default:
			base = fmt.Sprintf("base %s", formatWeight(ex.BaseWeight, c.Unit()))
		}
		fmt.Fprintf(w, "%s %s %s %s  %s\n",
			faint.Sprintf("#%d", ex.ID),
			faint.Sprintf("[%s]", ex.WorkoutDay),
			padRight(ex.Name, 28),
			padRight(storage.FormatCurrent(ex, c.Unit()), 10),
			faint.Sprint(base))
	}
}

func init() {
	exerciseCmd.AddCommand(exerciseListCmd)
	exerciseCmd.AddCommand(newExerciseEditCmd("weight", "Set the current working weight", "weight",
		func(c *session.Controller, id int, v float64) bool { return c.UpdateExerciseWeight(id, v) }))
	exerciseCmd.AddCommand(newExerciseEditCmd("base-weight", "Set the base weight", "base weight",
		func(c *session.Controller, id int, v float64) bool { return c.UpdateExerciseBaseWeight(id, v) }))
	exerciseCmd.AddCommand(newExerciseEditCmd("base-reps", "Set base reps", "base reps",
		func(c *session.Controller, id int, v float64) bool { return c.UpdateExerciseBaseReps(id, int(v)) }))
	exerciseCmd.AddCommand(newExerciseEditCmd("base-time", "Set base hold time in seconds", "base time",
		func(c *session.Controller, id int, v float64) bool { return c.UpdateExerciseBaseTime(id, int(v)) }))
	rootCmd.AddCommand(exerciseCmd)
}
