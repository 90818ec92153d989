// ABOUTME: CLI command for restarting the program.
// ABOUTME: Restores the default roster and wipes history after confirmation.
package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var resetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restart the program from week 1",
	Long: `Restart the program from week 1, day A.

This is a DESTRUCTIVE operation. The exercise roster returns to its default
weights and all workout history is deleted. Export a backup first:

  hypertrophy export json -o backup.json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if !resetYes {
			fmt.Fprintln(out, "This will DELETE all workout history and reset every exercise.")
			fmt.Fprint(out, "Type 'reset' to confirm: ")
			line, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if strings.TrimSpace(line) != "reset" {
				fmt.Fprintln(out, "Canceled.")
				return nil
			}
		}

		ctrl.ResetProgram()
		color.New(color.FgGreen).Fprintln(out, "✓ Program reset to week 1, day A")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVarP(&resetYes, "yes", "y", false, "skip confirmation")
	rootCmd.AddCommand(resetCmd)
}
