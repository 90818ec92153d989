// ABOUTME: CLI command for starting the MCP server.
// ABOUTME: Runs the stdio MCP server over the shared session controller.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/harperreed/hypertrophy/internal/mcp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

The server communicates via stdin/stdout and drives the same workout flow as
'hypertrophy workout'. Logs go to stderr.

CLAUDE DESKTOP CONFIGURATION:

  {
    "mcpServers": {
      "hypertrophy": {
        "command": "hypertrophy",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  get_status, get_targets            Program position and targets
  start_workout, get_active_workout  Begin and inspect today's workout
  record_set, set_scratch_reps,
  set_scratch_time                   Record sets
  next_exercise, previous_exercise   Move the cursor
  finish_workout, cancel_workout     End the workout
  list_history                       Completed workouts
  update_exercise, update_user       Edit roster and profile
  export_data, import_data           JSON backup and restore

AVAILABLE RESOURCES:

  hypertrophy://program          Program position and roster
  hypertrophy://history/recent   Recent workouts
  hypertrophy://workout/active   The workout in progress`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(ctrl, logrus.StandardLogger())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(sigChan)
		go func() {
			select {
			case <-sigChan:
				cancel()
			case <-ctx.Done():
			}
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
