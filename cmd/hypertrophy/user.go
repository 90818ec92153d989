// ABOUTME: CLI command for the user profile.
// ABOUTME: Shows or updates the display name and weight unit.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/hypertrophy/internal/models"
	"github.com/spf13/cobra"
)

var (
	userName string
	userUnit string
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Show or update the user profile",
	Long: `Show or update your name and preferred weight unit.

Switching units does not convert stored weights; targets are computed in
the new unit from then on.

EXAMPLES:

  hypertrophy user                 # Show the profile
  hypertrophy user --name Sam      # Rename
  hypertrophy user --unit lbs      # Switch to pounds`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		u := ctrl.State().User

		if userName == "" && userUnit == "" {
			fmt.Fprintf(out, "Name: %s\nUnit: %s\n", u.Name, u.Unit)
			return nil
		}

		name := u.Name
		if userName != "" {
			name = userName
		}
		unit := u.Unit
		if userUnit != "" {
			if !models.IsValidWeightUnit(userUnit) {
				return fmt.Errorf("unknown unit: %s (use kg or lbs)", userUnit)
			}
			unit = models.WeightUnit(userUnit)
		}

		if !ctrl.UpdateUser(name, unit) {
			return fmt.Errorf("failed to update user")
		}
		color.New(color.FgGreen).Fprintf(out, "✓ %s (%s)\n", name, unit)
		return nil
	},
}

func init() {
	userCmd.Flags().StringVar(&userName, "name", "", "display name")
	userCmd.Flags().StringVar(&userUnit, "unit", "", "weight unit: kg or lbs")
	rootCmd.AddCommand(userCmd)
}
