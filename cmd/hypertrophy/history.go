// ABOUTME: CLI commands for browsing workout history.
// ABOUTME: Lists completed sessions newest first and shows one session in detail.
package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/harperreed/hypertrophy/internal/models"
	"github.com/harperreed/hypertrophy/internal/storage"
	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:     "history",
	Aliases: []string{"hist", "h"},
	Short:   "List completed workouts",
	Long: `List completed workouts, newest first.

OUTPUT FORMAT:

  Each line shows: ID  DATE  WEEK/DAY  SETS

  The ID is an 8-character prefix you can use with 'history show'.

EXAMPLES:

  hypertrophy history           # Last 20 workouts
  hypertrophy history -n 5      # Last 5 workouts
  hypertrophy history show 3f2a # Sets recorded in one workout`,
	RunE: func(cmd *cobra.Command, args []string) error {
		printHistory(cmd.OutOrStdout(), ctrl.State(), historyLimit)
		return nil
	},
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show the sets recorded in a workout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st := ctrl.State()
		ws := st.SessionByIDPrefix(args[0])
		if ws == nil {
			return fmt.Errorf("no single workout matches %q", args[0])
		}
		printSession(cmd.OutOrStdout(), st, ws, ctrl.Unit())
		return nil
	},
}

func printHistory(w io.Writer, st *models.WorkoutState, limit int) {
	if len(st.WorkoutHistory) == 0 {
		fmt.Fprintln(w, "No workouts recorded yet.")
		return
	}

	faint := color.New(color.Faint)
	count := 0
	for i := len(st.WorkoutHistory) - 1; i >= 0; i-- {
		if limit > 0 && count >= limit {
			break
		}
		ws := st.WorkoutHistory[i]
		fmt.Fprintf(w, "%s  %s  week %2d day %s  %d sets\n",
			faint.Sprint(ws.ShortID()),
			ws.Date.Local().Format("2006-01-02 15:04"),
			ws.Week, ws.Day, ws.SetCount())
		count++
	}
}

func printSession(w io.Writer, st *models.WorkoutState, ws *models.WorkoutSession, unit models.WeightUnit) {
	color.New(color.Bold).Fprintf(w, "Week %d, day %s · %s\n", ws.Week, ws.Day, ws.Date.Local().Format("Mon 2006-01-02 15:04"))
	color.New(color.Faint).Fprintf(w, "ID: %s\n", ws.ID)

	for _, ce := range ws.Exercises {
		name := fmt.Sprintf("#%d", ce.ExerciseID)
		if ex := st.ExerciseByID(ce.ExerciseID); ex != nil {
			name = ex.Name
		}
		sets := storage.FormatSets(ce.Sets, unit)
		if sets == "" {
			sets = "skipped"
		}
		fmt.Fprintf(w, "  %s %s\n", padRight(name, 28), sets)
	}
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "max workouts to show (0 for all)")
	historyCmd.AddCommand(historyShowCmd)
	rootCmd.AddCommand(historyCmd)
}
