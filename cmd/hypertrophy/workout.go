// ABOUTME: Interactive workout command.
// ABOUTME: Reads one command per line to record sets, move between exercises, and finish or cancel.
package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/hypertrophy/internal/models"
	"github.com/harperreed/hypertrophy/internal/session"
	"github.com/harperreed/hypertrophy/internal/storage"
	"github.com/spf13/cobra"
)

const workoutHelp = `Commands:
  done [weight] [reps]   record the current set (defaults to the targets)
  weight <w>             change the weight for the current exercise
  reps <n>               set the reps to record for a bodyweight exercise
  time <s>               set the hold time for a timed exercise
  next, prev             move between exercises
  status                 show progress for every exercise
  finish                 save the workout and advance the program
  cancel                 discard the workout`

var workoutCmd = &cobra.Command{
	Use:     "workout",
	Aliases: []string{"w"},
	Short:   "Run today's workout interactively",
	Long: `Start today's workout and record it set by set.

Sets go round-robin: set 1 of every exercise, then set 2, and so on. After
each recorded set the cursor moves to the next exercise.

` + workoutHelp + `

Closing input (Ctrl-D) before 'finish' discards the workout. Weight and rep
changes recorded along the way are kept.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWorkout(ctrl, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func runWorkout(c *session.Controller, in io.Reader, out io.Writer) error {
	res := c.StartWorkout()
	if !res.Success {
		color.New(color.FgYellow).Fprintf(out, "⚠ %s\n", res.Error)
		return nil
	}

	color.New(color.FgGreen).Fprintf(out, "✓ Week %d, day %s started\n", c.Week(), c.Day())
	fmt.Fprintln(out, "Type 'help' for commands.")
	printPosition(out, c)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		done, err := handleWorkoutCommand(c, fields, out)
		if err != nil {
			color.New(color.FgRed).Fprintf(out, "✗ %v\n", err)
			continue
		}
		if done {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	if c.IsActive() {
		c.CancelWorkout()
		color.New(color.FgYellow).Fprintln(out, "\nInput closed; workout discarded.")
	}
	return nil
}

// handleWorkoutCommand runs one REPL command. It reports whether the
// workout has ended.
func handleWorkoutCommand(c *session.Controller, fields []string, out io.Writer) (bool, error) {
	ex, ok := c.CurrentExercise()
	if !ok {
		return true, nil
	}

	switch strings.ToLower(fields[0]) {
	case "done", "d":
		return false, recordCurrentSet(c, ex, fields[1:], out)

	case "weight":
		w, err := floatArg(fields, "weight")
		if err != nil {
			return false, err
		}
		c.SetActiveWeight(ex.ID, w)
		fmt.Fprintf(out, "%s weight set to %s\n", ex.Name, formatWeight(w, c.Unit()))

	case "reps":
		n, err := intArg(fields, "reps")
		if err != nil {
			return false, err
		}
		if !c.SetScratchReps(ex.ID, n) {
			return false, fmt.Errorf("cannot set reps for %s", ex.Name)
		}
		fmt.Fprintf(out, "%s reps set to %d\n", ex.Name, n)

	case "time":
		s, err := intArg(fields, "time")
		if err != nil {
			return false, err
		}
		if !c.SetScratchTime(ex.ID, s) {
			return false, fmt.Errorf("cannot set time for %s", ex.Name)
		}
		fmt.Fprintf(out, "%s hold set to %ds\n", ex.Name, s)

	case "next", "n":
		if !c.AdvanceCursor() {
			fmt.Fprintln(out, "Last exercise of the last set. Type 'finish' to save.")
			return false, nil
		}
		printPosition(out, c)

	case "prev", "p":
		if !c.RetreatCursor() {
			fmt.Fprintln(out, "Already at the first exercise.")
			return false, nil
		}
		printPosition(out, c)

	case "status", "s":
		printWorkoutOverview(out, c)

	case "finish", "f":
		if !c.IsWorkoutComplete() {
			color.New(color.FgYellow).Fprintln(out, "⚠ Not every set is recorded; saving what was done.")
		}
		ws, _ := c.FinishWorkout()
		color.New(color.FgGreen).Fprintf(out, "✓ Workout saved (%d sets, ID %s)\n", ws.SetCount(), ws.ShortID())
		fmt.Fprintf(out, "Next: week %d, day %s\n", c.Week(), c.Day())
		return true, nil

	case "cancel", "quit", "q":
		c.CancelWorkout()
		color.New(color.FgYellow).Fprintln(out, "Workout discarded.")
		return true, nil

	case "help", "?":
		fmt.Fprintln(out, workoutHelp)

	default:
		return false, fmt.Errorf("unknown command %q (type 'help')", fields[0])
	}
	return false, nil
}

func recordCurrentSet(c *session.Controller, ex models.Exercise, args []string, out io.Writer) error {
	weight := c.TargetWeightFor(ex.ID)
	reps := c.TargetRepsForWeek()
	if ex.Discipline() == models.TrackReps {
		reps = c.ScratchReps(ex.ID)
	}

	if len(args) > 0 {
		v, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid weight: %s", args[0])
		}
		weight = v
	}
	if len(args) > 1 {
		v, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid reps: %s", args[1])
		}
		reps = v
	}

	progress, _ := c.CurrentProgress()
	if !c.RecordSet(weight, reps, nil) {
		fmt.Fprintln(out, "This set is already recorded. Use 'next' to move on.")
		return nil
	}

	updated, _ := c.CurrentProgress()
	last := updated.CompletedSets[len(updated.CompletedSets)-1]
	color.New(color.FgGreen).Fprintf(out, "✓ %s set %d: %s\n", ex.Name, progress.CurrentSet, storage.FormatSets([]models.CompletedSet{last}, c.Unit()))

	if c.AdvanceCursor() {
		printPosition(out, c)
		return nil
	}
	if c.IsWorkoutComplete() {
		color.New(color.FgGreen).Fprintln(out, "All sets done. Type 'finish' to save.")
	}
	return nil
}

func printPosition(out io.Writer, c *session.Controller) {
	ex, ok := c.CurrentExercise()
	if !ok {
		return
	}
	progress, _ := c.CurrentProgress()

	var target string
	switch ex.Discipline() {
	case models.TrackReps:
		target = fmt.Sprintf("%d reps", c.ScratchReps(ex.ID))
	case models.TrackTime:
		target = fmt.Sprintf("%ds hold", c.ScratchTime(ex.ID))
	default:
		target = fmt.Sprintf("%s × %d (current %s)",
			formatWeight(c.TargetWeightFor(ex.ID), c.Unit()),
			c.TargetRepsForWeek(),
			formatWeight(ex.CurrentWeight, c.Unit()))
	}

	color.New(color.Bold).Fprintf(out, "Set %d/%d · %s\n", progress.CurrentSet, progress.TotalSets, ex.Name)
	fmt.Fprintf(out, "  target: %s\n", target)
}

func printWorkoutOverview(out io.Writer, c *session.Controller) {
	active := c.Active()
	if active == nil {
		return
	}
	faint := color.New(color.Faint)
	for i, ce := range active.CompletedExercises {
		name := fmt.Sprintf("#%d", ce.ExerciseID)
		if ex := c.State().ExerciseByID(ce.ExerciseID); ex != nil {
			name = ex.Name
		}
		marker := " "
		if i == active.ExerciseIndex {
			marker = ">"
		}
		check := faint.Sprint("·")
		if c.IsExerciseComplete(ce.ExerciseID) {
			check = color.GreenString("✓")
		}
		fmt.Fprintf(out, "%s %s %s %d/%d %s\n", marker, check, padRight(name, 28), len(ce.Sets), c.TargetSetsForWeek(),
			faint.Sprint(storage.FormatSets(ce.Sets, c.Unit())))
	}
}

func floatArg(fields []string, name string) (float64, error) {
	if len(fields) < 2 {
		return 0, fmt.Errorf("usage: %s <value>", name)
	}
	v, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %s", name, fields[1])
	}
	return v, nil
}

func intArg(fields []string, name string) (int, error) {
	if len(fields) < 2 {
		return 0, fmt.Errorf("usage: %s <value>", name)
	}
	v, err := strconv.Atoi(fields[1])
	if err != nil || v < 0 {
		return 0, fmt.Errorf("invalid %s: %s", name, fields[1])
	}
	return v, nil
}

func init() {
	rootCmd.AddCommand(workoutCmd)
}
