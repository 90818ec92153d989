// ABOUTME: CLI commands for program status and weekly targets.
// ABOUTME: Shows the current week and day, today's exercises, and targets for any week.
package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/hypertrophy/internal/models"
	"github.com/harperreed/hypertrophy/internal/session"
	"github.com/spf13/cobra"
)

var targetsWeek int

var statusCmd = &cobra.Command{
	Use:     "status",
	Aliases: []string{"st"},
	Short:   "Show program week, day, and today's targets",
	RunE: func(cmd *cobra.Command, args []string) error {
		printStatus(cmd.OutOrStdout(), ctrl)
		return nil
	},
}

var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "Show targets for every exercise in a week",
	Long: `Show target weight, reps, and sets for every exercise in a program week.

Weeks outside the program fall back to each exercise's current weight.

EXAMPLES:

  hypertrophy targets            # This week
  hypertrophy targets --week 8   # Week 8`,
	RunE: func(cmd *cobra.Command, args []string) error {
		week := targetsWeek
		if week == 0 {
			week = ctrl.Week()
		}
		if !ctrl.Scheme().IsValidWeek(week) {
			color.New(color.FgYellow).Fprintf(cmd.ErrOrStderr(), "⚠ Week %d is outside the %d-week program\n", week, ctrl.Scheme().ProgramLength)
		}
		printTargets(cmd.OutOrStdout(), ctrl, week)
		return nil
	},
}

func printStatus(w io.Writer, c *session.Controller) {
	st := c.State()
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	bold.Fprintf(w, "%s · Week %d of %d · Day %s\n", st.User.Name, c.Week(), c.Scheme().ProgramLength, c.Day())
	fmt.Fprintf(w, "Workouts completed: %d\n", st.Program.TotalWorkoutsCompleted)
	if st.Program.LastWorkoutDate != nil {
		fmt.Fprintf(w, "Last workout: %s\n", st.Program.LastWorkoutDate.Local().Format("2006-01-02 15:04"))
	}
	if c.IsActive() {
		color.New(color.FgYellow).Fprintln(w, "A workout is in progress.")
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Today (%d sets × %d reps):\n", c.TargetSetsForWeek(), c.TargetRepsForWeek())
	today := c.CurrentDayExercises()
	if len(today) == 0 {
		faint.Fprintln(w, "  nothing scheduled")
	}
	for _, ex := range today {
		fmt.Fprintf(w, "  %s %s %s\n",
			faint.Sprintf("#%d", ex.ID),
			padRight(ex.Name, 28),
			describeTarget(ex, c.TargetWeightFor(ex.ID), c.TargetRepsForWeek(), c.Unit()))
	}

	next := c.NextDayExercises()
	if len(next) > 0 {
		names := make([]string, 0, len(next))
		for _, ex := range next {
			names = append(names, ex.Name)
		}
		faint.Fprintf(w, "\nNext (day %s): %s\n", c.Scheme().NextDay(c.Day()), strings.Join(names, ", "))
	}
}

func printTargets(w io.Writer, c *session.Controller, week int) {
	scheme := c.Scheme()
	faint := color.New(color.Faint)

	color.New(color.Bold).Fprintf(w, "Week %d: %d sets × %d reps\n", week, scheme.TargetSets(), scheme.TargetReps(week))
	for _, ex := range c.State().Exercises {
		target := scheme.TargetWeight(ex, week, c.Unit())
		fmt.Fprintf(w, "  %s %s %s %s\n",
			faint.Sprintf("#%d", ex.ID),
			faint.Sprintf("[%s]", ex.WorkoutDay),
			padRight(ex.Name, 28),
			describeTarget(ex, target, scheme.TargetReps(week), c.Unit()))
	}
}

// describeTarget renders the target for an exercise's discipline.
func describeTarget(ex models.Exercise, weight float64, reps int, unit models.WeightUnit) string {
	switch ex.Discipline() {
	case models.TrackReps:
		return fmt.Sprintf("%d reps", ex.RepsTarget())
	case models.TrackTime:
		return fmt.Sprintf("%ds hold", ex.HoldTarget())
	default:
		return fmt.Sprintf("%s × %d", formatWeight(weight, unit), reps)
	}
}

func formatWeight(w float64, unit models.WeightUnit) string {
	return fmt.Sprintf("%g %s", w, unit)
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

func init() {
	targetsCmd.Flags().IntVarP(&targetsWeek, "week", "w", 0, "program week (default: current week)")
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(targetsCmd)
}
